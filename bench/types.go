package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/gophloop/loopforge/cfg"
	"github.com/gophloop/loopforge/lsg"
	"github.com/gophloop/loopforge/scenario"
)

// EngineKind selects which loop-recognition engine a run drives.
type EngineKind string

const (
	EngineTarjan EngineKind = "tarjan"
	EngineFWBW   EngineKind = "fwbw"
)

// Kind names one of the fixed CFG shapes the scenario package knows how to
// build. It mirrors the BuildX family one-for-one.
type Kind string

const (
	KindDiamond           Kind = "diamond"
	KindStraight          Kind = "straight"
	KindBaseLoop          Kind = "base_loop"
	KindNestedLoop        Kind = "nested_loop"
	KindMultipleExitLoop  Kind = "multiple_exit_loop"
	KindSequentialLoops   Kind = "sequential_loops"
	KindLoopWithBranches  Kind = "loop_with_branches"
	KindScalableIslands   Kind = "scalable_islands"
)

// ErrUnknownKind is returned by Scenario.Build for a Kind not in the fixed
// set above.
var ErrUnknownKind = errors.New("bench: unknown scenario kind")

// ErrUnknownEngine is returned when an EngineKind other than EngineTarjan or
// EngineFWBW is requested.
var ErrUnknownEngine = errors.New("bench: unknown engine")

// Scenario is a named recipe (kind + size parameter) that Build turns into a
// freshly constructed MaoCFG. Size means island count for
// KindScalableIslands, straight-run length for KindStraight, and is ignored
// by every fixed-shape kind.
type Scenario struct {
	Name string
	Kind Kind
	Size int
}

// Build constructs the CFG this scenario describes, starting every shape at
// block 0.
func (sc Scenario) Build() (*cfg.MaoCFG, error) {
	g := cfg.NewMaoCFG()

	switch sc.Kind {
	case KindDiamond:
		scenario.BuildDiamond(g, 0)
	case KindStraight:
		scenario.BuildStraight(g, 0, sc.Size)
	case KindBaseLoop:
		scenario.BuildBaseLoop(g, 0)
	case KindNestedLoop:
		scenario.BuildNestedLoop(g, 0)
	case KindMultipleExitLoop:
		scenario.BuildMultipleExitLoop(g, 0)
	case KindSequentialLoops:
		scenario.BuildSequentialLoops(g, 0)
	case KindLoopWithBranches:
		scenario.BuildLoopWithBranches(g, 0)
	case KindScalableIslands:
		if _, err := scenario.BuildScalableIslands(g, sc.Size); err != nil {
			return nil, fmt.Errorf("bench: building scenario %q: %w", sc.Name, err)
		}
	default:
		return nil, fmt.Errorf("bench: scenario %q: %w: %q", sc.Name, ErrUnknownKind, sc.Kind)
	}

	return g, nil
}

// RunResult is the outcome of driving one scenario through one engine.
type RunResult struct {
	Scenario string
	Engine   EngineKind
	Loops    int
	Duration time.Duration
	LSG      *lsg.LoopStructureGraph
}

// ComparisonResult is the outcome of driving one scenario through both
// engines over the same freshly built CFG.
type ComparisonResult struct {
	Scenario string
	Tarjan   RunResult
	FWBW     RunResult
	Agree    bool
}
