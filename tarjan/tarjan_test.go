package tarjan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophloop/loopforge/cfg"
	"github.com/gophloop/loopforge/lsg"
	"github.com/gophloop/loopforge/tarjan"
)

func memberIDs(l *lsg.SimpleLoop) []int {
	members := l.Members()
	ids := make([]int, len(members))
	for i, m := range members {
		ids[i] = m.ID()
	}
	return ids
}

func TestFindTarjanLoops_EmptyCFG(t *testing.T) {
	g := cfg.NewMaoCFG()
	out := lsg.New()
	assert.Equal(t, 0, tarjan.FindTarjanLoops(g, out))
}

func TestFindTarjanLoops_SingleNodeNoEdges(t *testing.T) {
	g := cfg.NewMaoCFG()
	g.CreateNode(0)
	out := lsg.New()
	assert.Equal(t, 0, tarjan.FindTarjanLoops(g, out))
}

func TestFindTarjanLoops_SingleSelfLoop(t *testing.T) {
	g := cfg.NewMaoCFG()
	cfg.NewBasicBlockEdge(g, 0, 0)

	out := lsg.New()
	assert.Equal(t, 1, tarjan.FindTarjanLoops(g, out))
	assert.Equal(t, []int{0}, memberIDs(out.Loops()[0]))
}

func TestFindTarjanLoops_SimpleBackEdgeLoop(t *testing.T) {
	g := cfg.NewMaoCFG()
	cfg.NewBasicBlockEdge(g, 0, 1)
	cfg.NewBasicBlockEdge(g, 1, 2)
	cfg.NewBasicBlockEdge(g, 2, 3)
	cfg.NewBasicBlockEdge(g, 3, 1)

	out := lsg.New()
	assert.Equal(t, 1, tarjan.FindTarjanLoops(g, out))
	assert.Equal(t, []int{1, 2, 3}, memberIDs(out.Loops()[0]))
}

// The literal graph from the nested-loops scenario is, as a whole, a single
// maximal strongly connected component: node 1 is reachable from node 4 via
// the outer back edge, and node 4 is reachable from node 1 through nodes 2
// and 3, so {1,2,3,4} are all mutually reachable. Tarjan (and FWBW, see
// fwbw_test.go) therefore correctly report exactly one loop here; splitting
// it into a {2,3} inner loop and a {1,2,3,4} outer loop requires dominance
// information neither engine computes. See DESIGN.md.
func TestFindTarjanLoops_MutuallyReachableLoopIsOneComponent(t *testing.T) {
	g := cfg.NewMaoCFG()
	cfg.NewBasicBlockEdge(g, 0, 1)
	cfg.NewBasicBlockEdge(g, 1, 2)
	cfg.NewBasicBlockEdge(g, 2, 3)
	cfg.NewBasicBlockEdge(g, 3, 2)
	cfg.NewBasicBlockEdge(g, 3, 4)
	cfg.NewBasicBlockEdge(g, 4, 1)
	cfg.NewBasicBlockEdge(g, 4, 5)

	out := lsg.New()
	assert.Equal(t, 1, tarjan.FindTarjanLoops(g, out))
	assert.Equal(t, []int{1, 2, 3, 4}, memberIDs(out.Loops()[0]))
	assert.Equal(t, 0, out.Loops()[0].Depth())
}

func TestFindTarjanLoops_TwoDisjointLoopsInSeries(t *testing.T) {
	g := cfg.NewMaoCFG()
	cfg.NewBasicBlockEdge(g, 0, 1)
	cfg.NewBasicBlockEdge(g, 1, 2)
	cfg.NewBasicBlockEdge(g, 2, 1)
	cfg.NewBasicBlockEdge(g, 2, 3)
	cfg.NewBasicBlockEdge(g, 3, 4)
	cfg.NewBasicBlockEdge(g, 4, 3)
	cfg.NewBasicBlockEdge(g, 4, 5)
	cfg.NewBasicBlockEdge(g, 5, 6)
	cfg.NewBasicBlockEdge(g, 6, 7)

	out := lsg.New()
	assert.Equal(t, 2, tarjan.FindTarjanLoops(g, out))

	var sets [][]int
	for _, l := range out.Loops() {
		sets = append(sets, memberIDs(l))
		assert.Equal(t, 0, l.Depth(), "tarjan never sets parent links")
	}
	assert.ElementsMatch(t, [][]int{{1, 2}, {3, 4}}, sets)
}

func TestFindTarjanLoops_Determinism(t *testing.T) {
	build := func() *cfg.MaoCFG {
		g := cfg.NewMaoCFG()
		cfg.NewBasicBlockEdge(g, 0, 1)
		cfg.NewBasicBlockEdge(g, 1, 2)
		cfg.NewBasicBlockEdge(g, 2, 1)
		cfg.NewBasicBlockEdge(g, 2, 3)
		return g
	}

	out1 := lsg.New()
	tarjan.FindTarjanLoops(build(), out1)
	out2 := lsg.New()
	tarjan.FindTarjanLoops(build(), out2)

	assert.Equal(t, memberIDs(out1.Loops()[0]), memberIDs(out2.Loops()[0]))
}

func TestFindTarjanLoops_HeaderHasExternalPredecessor(t *testing.T) {
	g := cfg.NewMaoCFG()
	cfg.NewBasicBlockEdge(g, 0, 1)
	cfg.NewBasicBlockEdge(g, 1, 2)
	cfg.NewBasicBlockEdge(g, 2, 3)
	cfg.NewBasicBlockEdge(g, 3, 1)

	out := lsg.New()
	tarjan.FindTarjanLoops(g, out)

	loop := out.Loops()[0]
	assert.Equal(t, 1, loop.Header().ID())
}
