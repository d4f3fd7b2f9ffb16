package lsg

import (
	"sort"
	"sync"

	"github.com/gophloop/loopforge/cfg"
)

// SimpleLoop is an opaque handle to one recognized loop: a non-empty,
// insertion-unique set of member blocks, an optional parent loop, an
// optional header block, and a derived nesting depth filled in by
// LoopStructureGraph.CalculateNestingLevel.
//
// A SimpleLoop is only ever constructed by a LoopStructureGraph via
// CreateNewLoop; callers hold non-owning handles.
type SimpleLoop struct {
	mu sync.RWMutex

	seq       int // allocation order, used for stable Dump output
	members   []*cfg.BasicBlock
	memberSet map[*cfg.BasicBlock]struct{}
	parent    *SimpleLoop
	header    *cfg.BasicBlock
	depth     int
	reducible bool
}

// AddNode inserts bb into the loop's member set. Re-adding an existing
// member is a no-op.
func (l *SimpleLoop) AddNode(bb *cfg.BasicBlock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.memberSet[bb]; ok {
		return
	}
	l.memberSet[bb] = struct{}{}
	l.members = append(l.members, bb)
}

// Members returns the loop's member blocks, sorted by ascending ID for
// deterministic inspection and printing.
func (l *SimpleLoop) Members() []*cfg.BasicBlock {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*cfg.BasicBlock, len(l.members))
	copy(out, l.members)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Len reports the number of member blocks.
func (l *SimpleLoop) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.members)
}

// SetParent designates p as the loop immediately containing this one. It
// may be called more than once; only the last call before
// CalculateNestingLevel matters.
func (l *SimpleLoop) SetParent(p *SimpleLoop) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.parent = p
}

// Parent returns the loop's current parent, or nil if it is outermost.
func (l *SimpleLoop) Parent() *SimpleLoop {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.parent
}

// SetHeader records the loop's entry block, as computed by the caller's
// header-discovery rule.
func (l *SimpleLoop) SetHeader(bb *cfg.BasicBlock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.header = bb
}

// Header returns the loop's entry block, or nil if none was ever set.
func (l *SimpleLoop) Header() *cfg.BasicBlock {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.header
}

// SetReducible records whether the loop has a single entry block reachable
// from outside the loop (the classic reducibility test). Neither engine is
// required to set this; it defaults to false.
func (l *SimpleLoop) SetReducible(r bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reducible = r
}

// Reducible reports the value last passed to SetReducible.
func (l *SimpleLoop) Reducible() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.reducible
}

// Depth returns the loop's nesting depth as computed by the owning LSG's
// last CalculateNestingLevel call. It is 0 until that has run.
func (l *SimpleLoop) Depth() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.depth
}
