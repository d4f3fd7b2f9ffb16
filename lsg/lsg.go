package lsg

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gophloop/loopforge/cfg"
)

// LoopStructureGraph owns every SimpleLoop created against it and tracks
// which of them have been published via AddLoop. A single mutex guards both
// the allocation counter and the published list; this is the "LSG mutex"
// the concurrent FWBW engine is required to serialize CreateNewLoop and
// AddLoop calls on.
type LoopStructureGraph struct {
	mu      sync.Mutex
	nextSeq int
	loops   []*SimpleLoop
	root    *SimpleLoop
}

// New returns an empty loop structure graph.
func New() *LoopStructureGraph {
	return &LoopStructureGraph{}
}

// CreateNewLoop allocates a fresh, empty SimpleLoop owned by g. The loop is
// not enumerable via GetNumLoops or Dump until it is passed to AddLoop.
func (g *LoopStructureGraph) CreateNewLoop() *SimpleLoop {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextSeq++
	return &SimpleLoop{
		seq:       g.nextSeq,
		memberSet: make(map[*cfg.BasicBlock]struct{}),
	}
}

// AddLoop registers loop for enumeration via GetNumLoops, Dump, and
// CalculateNestingLevel.
func (g *LoopStructureGraph) AddLoop(loop *SimpleLoop) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loops = append(g.loops, loop)
}

// GetNumLoops returns the number of loops registered via AddLoop.
func (g *LoopStructureGraph) GetNumLoops() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.loops)
}

// SetRoot designates an optional root loop, useful for a driver that wants
// a single entry point into the forest for pretty-printing. It plays no
// part in CalculateNestingLevel.
func (g *LoopStructureGraph) SetRoot(l *SimpleLoop) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.root = l
}

// Root returns the loop last passed to SetRoot, or nil.
func (g *LoopStructureGraph) Root() *SimpleLoop {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.root
}

// Loops returns the registered loops in AddLoop (registration) order.
func (g *LoopStructureGraph) Loops() []*SimpleLoop {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*SimpleLoop, len(g.loops))
	copy(out, g.loops)
	return out
}

// CalculateNestingLevel assigns each registered loop a depth: 0 if it has
// no parent, else one more than its parent's depth. It is implemented as a
// memoized post-order walk so repeated ancestors are resolved once each,
// and is idempotent and safe to call on an empty LSG.
//
// A parent chain that cycles back on itself is a caller bug (nothing in
// this package or the engines is supposed to produce one); rather than
// loop forever this panics with the offending loop's sequence number.
func (g *LoopStructureGraph) CalculateNestingLevel() {
	g.mu.Lock()
	loops := make([]*SimpleLoop, len(g.loops))
	copy(loops, g.loops)
	g.mu.Unlock()

	resolved := make(map[*SimpleLoop]bool, len(loops))
	visiting := make(map[*SimpleLoop]bool, len(loops))

	var resolve func(l *SimpleLoop) int
	resolve = func(l *SimpleLoop) int {
		l.mu.RLock()
		if resolved[l] {
			d := l.depth
			l.mu.RUnlock()
			return d
		}
		parent := l.parent
		l.mu.RUnlock()

		if visiting[l] {
			panic(fmt.Sprintf("lsg: cyclic parent chain detected at loop #%d", l.seq))
		}
		visiting[l] = true

		depth := 0
		if parent != nil {
			depth = 1 + resolve(parent)
		}
		visiting[l] = false
		resolved[l] = true

		l.mu.Lock()
		l.depth = depth
		l.mu.Unlock()
		return depth
	}

	for _, l := range loops {
		resolve(l)
	}
}

// Dump writes every registered loop, in registration order, to w: its
// sequence number, nesting depth, and sorted member IDs.
func (g *LoopStructureGraph) Dump(w io.Writer) {
	for _, l := range g.Loops() {
		members := l.Members()
		ids := make([]int, len(members))
		for i, m := range members {
			ids[i] = m.ID()
		}
		fmt.Fprintf(w, "loop #%d depth=%d members=%v\n", l.seq, l.Depth(), ids)
	}
}

// DumpStderr is a convenience wrapper around Dump(os.Stderr), matching the
// diagnostic convention the rest of the harness uses.
func (g *LoopStructureGraph) DumpStderr() {
	g.Dump(os.Stderr)
}
