package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gophloop/loopforge/cfg"
	"github.com/gophloop/loopforge/fwbw"
	"github.com/gophloop/loopforge/lsg"
	"github.com/gophloop/loopforge/tarjan"
)

// Harness runs scenarios through the two recognition engines, timing each
// call and logging scenario/engine/count/duration through logger. A nil
// logger is replaced with zap.NewNop, matching the ambient stack's
// never-a-package-global convention.
type Harness struct {
	logger *zap.Logger
}

// New returns a Harness that logs through logger, or discards logs entirely
// if logger is nil.
func New(logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harness{logger: logger}
}

// Run builds sc's CFG, drives it through engine, and returns the timed
// result.
func (h *Harness) Run(ctx context.Context, sc Scenario, engine EngineKind) (RunResult, error) {
	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}

	g, err := sc.Build()
	if err != nil {
		return RunResult{}, err
	}

	loops, out, err := h.runEngine(g, engine)
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{Scenario: sc.Name, Engine: engine, Loops: loops.count, Duration: loops.elapsed, LSG: out}
	h.logger.Info("run complete",
		zap.String("scenario", sc.Name),
		zap.String("engine", string(engine)),
		zap.Int("loops", result.Loops),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// Compare runs both engines over the same freshly built CFG and reports a
// cross-engine agreement flag alongside each timed result.
func (h *Harness) Compare(ctx context.Context, sc Scenario) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}

	g, err := sc.Build()
	if err != nil {
		return ComparisonResult{}, err
	}

	tCounted, tOut, err := h.runEngine(g, EngineTarjan)
	if err != nil {
		return ComparisonResult{}, err
	}
	fCounted, fOut, err := h.runEngine(g, EngineFWBW)
	if err != nil {
		return ComparisonResult{}, err
	}

	tarjanResult := RunResult{Scenario: sc.Name, Engine: EngineTarjan, Loops: tCounted.count, Duration: tCounted.elapsed, LSG: tOut}
	fwbwResult := RunResult{Scenario: sc.Name, Engine: EngineFWBW, Loops: fCounted.count, Duration: fCounted.elapsed, LSG: fOut}
	agreed := agree(tOut, fOut)

	if !agreed {
		h.logger.Warn("cross-engine disagreement",
			zap.String("scenario", sc.Name),
			zap.Int("tarjan_loops", tarjanResult.Loops),
			zap.Int("fwbw_loops", fwbwResult.Loops),
		)
	} else {
		h.logger.Info("compare complete",
			zap.String("scenario", sc.Name),
			zap.Int("loops", tarjanResult.Loops),
			zap.Duration("tarjan_duration", tarjanResult.Duration),
			zap.Duration("fwbw_duration", fwbwResult.Duration),
		)
	}

	return ComparisonResult{Scenario: sc.Name, Tarjan: tarjanResult, FWBW: fwbwResult, Agree: agreed}, nil
}

// RunScalingSweep builds a scalable-islands scenario at each requested
// island count and compares both engines at each size, stopping early if
// ctx is cancelled between scenarios.
func (h *Harness) RunScalingSweep(ctx context.Context, counts []int) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(counts))
	for _, n := range counts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		sc := Scenario{Name: fmt.Sprintf("scalable_islands_%d", n), Kind: KindScalableIslands, Size: n}
		cmp, err := h.Compare(ctx, sc)
		if err != nil {
			return results, fmt.Errorf("bench: scaling sweep at %d islands: %w", n, err)
		}
		results = append(results, cmp)
	}
	return results, nil
}

type timedCount struct {
	count   int
	elapsed time.Duration
}

func (h *Harness) runEngine(g *cfg.MaoCFG, engine EngineKind) (timedCount, *lsg.LoopStructureGraph, error) {
	out := lsg.New()
	start := time.Now()

	var loops int
	switch engine {
	case EngineTarjan:
		loops = tarjan.FindTarjanLoops(g, out)
	case EngineFWBW:
		loops = fwbw.FindFWBWLoops(g, out)
	default:
		return timedCount{}, nil, fmt.Errorf("bench: %w: %q", ErrUnknownEngine, engine)
	}

	return timedCount{count: loops, elapsed: time.Since(start)}, out, nil
}
