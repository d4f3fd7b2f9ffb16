package tarjan

import (
	"github.com/gophloop/loopforge/cfg"
	"github.com/gophloop/loopforge/lsg"
)

// undefined marks a block that StrongConnect has not yet visited.
const undefined = -1

// walker encapsulates the mutable state of one Tarjan run: discovery
// indices, low-links, the working stack, and the monotonically increasing
// index counter. It is built and discarded per FindTarjanLoops call.
type walker struct {
	g   *cfg.MaoCFG
	lsg *lsg.LoopStructureGraph

	index int
	disc  map[*cfg.BasicBlock]int
	low   map[*cfg.BasicBlock]int

	onStack map[*cfg.BasicBlock]bool
	stack   []*cfg.BasicBlock

	numLoopsEmitted int
}

// FindTarjanLoops runs Tarjan's algorithm from g's start block, registering
// one SimpleLoop per qualifying strongly connected component into out, and
// returns the number of loops that call added. An empty CFG, or one with no
// block 0, yields zero loops without error.
func FindTarjanLoops(g *cfg.MaoCFG, out *lsg.LoopStructureGraph) int {
	start := g.GetStartBasicBlock()
	if start == nil {
		return 0
	}

	blocks := g.BasicBlocks()
	w := &walker{
		g:       g,
		lsg:     out,
		disc:    make(map[*cfg.BasicBlock]int, len(blocks)),
		low:     make(map[*cfg.BasicBlock]int, len(blocks)),
		onStack: make(map[*cfg.BasicBlock]bool, len(blocks)),
	}
	for _, b := range blocks {
		w.disc[b] = undefined
		w.low[b] = undefined
	}

	w.strongConnect(start)
	out.CalculateNestingLevel()
	return w.numLoopsEmitted
}

// strongConnect is the classic recursive Tarjan step: assign v a discovery
// index and low-link, push it, recurse into unvisited successors updating
// low-links, and pop the stack into a fresh SCC whenever v.low == v.disc.
func (w *walker) strongConnect(v *cfg.BasicBlock) {
	w.disc[v] = w.index
	w.low[v] = w.index
	w.index++
	w.stack = append(w.stack, v)
	w.onStack[v] = true

	for _, succ := range v.Successors() {
		if w.disc[succ] == undefined {
			w.strongConnect(succ)
			if w.low[succ] < w.low[v] {
				w.low[v] = w.low[succ]
			}
		} else if w.onStack[succ] {
			if w.disc[succ] < w.low[v] {
				w.low[v] = w.disc[succ]
			}
		}
	}

	if w.low[v] != w.disc[v] {
		return
	}

	// v roots an SCC: pop the stack down to and including v.
	var component []*cfg.BasicBlock
	for {
		n := len(w.stack) - 1
		top := w.stack[n]
		w.stack = w.stack[:n]
		w.onStack[top] = false
		component = append(component, top)
		if top == v {
			break
		}
	}

	w.emitIfLoop(component)
}

// emitIfLoop registers component as a loop when it qualifies: more than one
// block, or a single block with a self-edge.
func (w *walker) emitIfLoop(component []*cfg.BasicBlock) {
	isLoop := len(component) > 1 || (len(component) == 1 && component[0].HasSelfEdge())
	if !isLoop {
		return
	}

	loop := w.lsg.CreateNewLoop()
	members := make(map[*cfg.BasicBlock]struct{}, len(component))
	for _, b := range component {
		members[b] = struct{}{}
		loop.AddNode(b)
	}
	loop.SetHeader(findHeader(component, members))
	w.lsg.AddLoop(loop)
	w.numLoopsEmitted++
}

// findHeader returns the component member with a predecessor outside the
// component, scanning in the SCC-pop order produced by strongConnect; if no
// member qualifies (the component contains the CFG's every entry point),
// the member discovered first is returned. That is the SCC's root, which
// strongConnect pops last.
func findHeader(component []*cfg.BasicBlock, members map[*cfg.BasicBlock]struct{}) *cfg.BasicBlock {
	for _, b := range component {
		if b.HasExternalPredecessor(members) {
			return b
		}
	}
	return component[len(component)-1]
}
