package fwbw

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gophloop/loopforge/cfg"
	"github.com/gophloop/loopforge/lsg"
)

// ParallelThreshold is the working-set size above which a partition's
// recursion is spawned as an independent goroutine rather than processed
// inline on the current goroutine. It matches the source engine's tuning
// constant; callers may lower it in tests to exercise the parallel path on
// small graphs.
var ParallelThreshold = 50

// idSet is a working set of block IDs. The engine partitions the CFG by ID
// rather than by pointer so that set arithmetic (intersection, difference)
// stays cheap and side-effect-free on the underlying blocks.
type idSet map[int]struct{}

func newIDSet(ids []int) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s idSet) clone() idSet {
	out := make(idSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s idSet) sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func intersect(a, b idSet) idSet {
	out := make(idSet)
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func difference(a, b idSet) idSet {
	out := make(idSet)
	for id := range a {
		if _, ok := b[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// engine holds everything one FindFWBWLoops call needs: the ID->block
// mapping built once from the frozen CFG, the LSG loops are emitted into,
// and the node->loop association map guarded by its own mutex, kept
// separate from the LSG's internal mutex per the lock-ordering rule.
type engine struct {
	idToNode map[int]*cfg.BasicBlock

	out *lsg.LoopStructureGraph

	nodeMu   sync.Mutex
	nodeLoop map[*cfg.BasicBlock]*lsg.SimpleLoop
}

// FindFWBWLoops runs the Forward/Backward-Trim engine over g, registering
// loops into out, and returns the number of loops the call added.
func FindFWBWLoops(g *cfg.MaoCFG, out *lsg.LoopStructureGraph) int {
	before := out.GetNumLoops()

	blocks := g.BasicBlocks()
	e := &engine{
		idToNode: make(map[int]*cfg.BasicBlock, len(blocks)),
		out:      out,
		nodeLoop: make(map[*cfg.BasicBlock]*lsg.SimpleLoop, len(blocks)),
	}
	ids := make([]int, 0, len(blocks))
	for _, b := range blocks {
		e.idToNode[b.ID()] = b
		ids = append(ids, b.ID())
	}

	e.recurse(newIDSet(ids))
	out.CalculateNestingLevel()

	return out.GetNumLoops() - before
}

// recurse implements the divide-and-conquer decomposition of one working
// set of block IDs. See doc.go for why its three recursive remainders never
// overlap within a single top-level call.
func (e *engine) recurse(s idSet) {
	if len(s) == 0 {
		return
	}
	if len(s) == 1 {
		// The size<=1 base case would otherwise miss a singleton self-loop
		// reached directly from the top-level call (a one-block CFG), since
		// it never reaches the |C|==1 self-edge check further down.
		for id := range s {
			if e.idToNode[id].HasSelfEdge() {
				e.emit(s, id)
			}
		}
		return
	}

	s = e.trimForward(s)
	s = e.trimBackward(s)
	if len(s) == 0 {
		return
	}

	pivot := s.sorted()[0]
	desc := e.reachable(pivot, s, true)
	pred := e.reachable(pivot, s, false)
	scc := intersect(pred, desc)

	predMinusSCC := difference(pred, scc)
	descMinusSCC := difference(desc, scc)
	rem := difference(difference(s, pred), desc)

	var g errgroup.Group
	for _, part := range []idSet{predMinusSCC, descMinusSCC, rem} {
		if len(part) == 0 {
			continue
		}
		if len(part) > ParallelThreshold {
			part := part
			g.Go(func() error {
				e.recurse(part)
				return nil
			})
		} else {
			e.recurse(part)
		}
	}
	_ = g.Wait() // engine goroutines never return an error; barrier only.

	if len(scc) > 1 || (len(scc) == 1 && e.idToNode[pivot].HasSelfEdge()) {
		e.emit(scc, pivot)
	}
}

// trimForward repeatedly removes blocks with no predecessor left in the
// set, stripping acyclic prefix material that cannot belong to any SCC of
// s.
func (e *engine) trimForward(s idSet) idSet {
	return e.trim(s, func(b *cfg.BasicBlock) []*cfg.BasicBlock { return b.Predecessors() })
}

// trimBackward repeatedly removes blocks with no successor left in the
// set, stripping acyclic suffix material.
func (e *engine) trimBackward(s idSet) idSet {
	return e.trim(s, func(b *cfg.BasicBlock) []*cfg.BasicBlock { return b.Successors() })
}

func (e *engine) trim(s idSet, neighborsOf func(*cfg.BasicBlock) []*cfg.BasicBlock) idSet {
	s = s.clone()
	for {
		changed := false
		for id := range s {
			hasNeighborInSet := false
			for _, n := range neighborsOf(e.idToNode[id]) {
				if _, ok := s[n.ID()]; ok {
					hasNeighborInSet = true
					break
				}
			}
			if !hasNeighborInSet {
				delete(s, id)
				changed = true
			}
		}
		if !changed {
			return s
		}
	}
}

// reachable returns every block in s reachable from start by following
// successor edges (forward) or predecessor edges (backward), staying
// within s.
func (e *engine) reachable(start int, s idSet, forward bool) idSet {
	visited := idSet{start: {}}
	stack := []int{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		node := e.idToNode[cur]
		var neighbors []*cfg.BasicBlock
		if forward {
			neighbors = node.Successors()
		} else {
			neighbors = node.Predecessors()
		}
		for _, nb := range neighbors {
			id := nb.ID()
			if _, inSet := s[id]; !inSet {
				continue
			}
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			stack = append(stack, id)
		}
	}
	return visited
}

// emit registers scc as a loop, computing its header and reducibility, and
// resolving nesting against any block already claimed by a prior loop.
func (e *engine) emit(scc idSet, pivot int) {
	ids := scc.sorted()

	members := make(map[*cfg.BasicBlock]struct{}, len(ids))
	for _, id := range ids {
		members[e.idToNode[id]] = struct{}{}
	}

	var header *cfg.BasicBlock
	for _, id := range ids {
		b := e.idToNode[id]
		if b.HasExternalPredecessor(members) {
			header = b
			break
		}
	}
	if header == nil {
		header = e.idToNode[ids[0]]
	}

	loop := e.out.CreateNewLoop()
	loop.SetHeader(header)
	loop.SetReducible(isReducible(members))

	e.nodeMu.Lock()
	for _, id := range ids {
		b := e.idToNode[id]
		if prior, claimed := e.nodeLoop[b]; claimed && prior != loop {
			prior.SetParent(loop)
			continue
		}
		loop.AddNode(b)
		e.nodeLoop[b] = loop
	}
	e.nodeMu.Unlock()

	e.out.AddLoop(loop)
}

// isReducible reports whether the loop has a single entry: at most one
// member with a predecessor outside the loop.
func isReducible(members map[*cfg.BasicBlock]struct{}) bool {
	entries := 0
	for b := range members {
		if b.HasExternalPredecessor(members) {
			entries++
			if entries > 1 {
				return false
			}
		}
	}
	return true
}
