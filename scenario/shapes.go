package scenario

import (
	"fmt"

	"github.com/gophloop/loopforge/cfg"
)

// ErrTooFewIslands is returned by BuildScalableIslands when asked for fewer
// than one independent loop island.
var ErrTooFewIslands = fmt.Errorf("scenario: numIslands must be >= 1")

// BuildDiamond wires a four-block if/else diamond rooted at start:
// start branches to start+1 and start+2, both of which rejoin at start+3.
// It contains no cycle by itself and returns the ID of the join block.
func BuildDiamond(g *cfg.MaoCFG, start int) int {
	cfg.NewBasicBlockEdge(g, start, start+1)
	cfg.NewBasicBlockEdge(g, start, start+2)
	cfg.NewBasicBlockEdge(g, start+1, start+3)
	cfg.NewBasicBlockEdge(g, start+2, start+3)
	return start + 3
}

// BuildConnect wires a single edge from start to end, independent of the ID
// distance between them. Used to stitch shapes together or add back edges.
func BuildConnect(g *cfg.MaoCFG, start, end int) {
	cfg.NewBasicBlockEdge(g, start, end)
}

// BuildStraight chains n edges start -> start+1 -> ... -> start+n and
// returns start+n. n == 0 creates no edges and returns start unchanged.
func BuildStraight(g *cfg.MaoCFG, start, n int) int {
	for i := 0; i < n; i++ {
		BuildConnect(g, start+i, start+i+1)
	}
	return start + n
}

// BuildBaseLoop constructs a single reducible loop with two diamonds in its
// body and a back edge from the footer to from, the block just before the
// header:
//
//	header -> diamond1 -> d11 -> diamond2 -> footer -> from (back edge)
//
// plus the diamonds' own internal back edges (diamond2 -> d11, diamond1 ->
// header) that make every block in the loop mutually reachable. Returns the
// ID of the block immediately after the loop.
func BuildBaseLoop(g *cfg.MaoCFG, from int) int {
	header := BuildStraight(g, from, 1)
	diamond1 := BuildDiamond(g, header)
	d11 := BuildStraight(g, diamond1, 1)
	diamond2 := BuildDiamond(g, d11)
	footer := BuildStraight(g, diamond2, 1)
	BuildConnect(g, diamond2, d11)
	BuildConnect(g, diamond1, header)

	BuildConnect(g, footer, from)
	return BuildStraight(g, footer, 1)
}

// BuildNestedLoop constructs an outer loop with a two-block inner loop in
// its body:
//
//	outerHeader -> innerHeader -> innerBody(2) -> innerHeader (inner back edge)
//	innerBody -> outerTail -> outerHeader (outer back edge)
//
// Because outerTail is reachable from innerHeader and the outer back edge
// leads from outerTail to outerHeader, every block from outerHeader
// through outerTail is mutually reachable: a pure SCC-based engine reports
// this as one loop, not a nested pair. See DESIGN.md.
func BuildNestedLoop(g *cfg.MaoCFG, from int) int {
	outerHeader := BuildStraight(g, from, 1)
	innerHeader := BuildStraight(g, outerHeader, 1)
	innerBody := BuildStraight(g, innerHeader, 2)
	BuildConnect(g, innerBody, innerHeader)
	outerTail := BuildStraight(g, innerBody, 1)
	BuildConnect(g, outerTail, outerHeader)
	return BuildStraight(g, outerTail, 1)
}

// BuildMultipleExitLoop constructs a header, a diamond, and two straight
// paths out of the diamond's join block (ifNode). Both paths start at ifNode
// with the same IDs, so exit1 (ifNode+1) lies on the second path and merge
// is the same block as path2 (ifNode+2): merge gets a back edge to the
// header and a self-edge. The result is a single loop from header through
// merge; no edge leaves the loop, and the returned merge block is itself a
// member of the loop.
func BuildMultipleExitLoop(g *cfg.MaoCFG, from int) int {
	header := BuildStraight(g, from, 1)
	ifNode := BuildDiamond(g, header)

	exit1 := BuildStraight(g, ifNode, 1)

	path2 := BuildStraight(g, ifNode, 2)
	BuildConnect(g, path2, header)

	merge := BuildStraight(g, exit1, 1)
	BuildConnect(g, path2, merge)

	return merge
}

// BuildSequentialLoops constructs two independent BuildBaseLoop shapes back
// to back, exercising an engine's ability to report disjoint loops within a
// single connected CFG.
func BuildSequentialLoops(g *cfg.MaoCFG, from int) int {
	loop1 := BuildBaseLoop(g, from)
	return BuildBaseLoop(g, loop1)
}

// BuildLoopWithBranches constructs a loop whose body forks into a diamond of
// its own before rejoining and taking the back edge to the header:
//
//	header -> branch -> path1(2) -> merge
//	branch -> path2(diamond)
//	merge -> header (back edge)
//
// path1 and the path2 diamond reuse the same IDs after branch, so the
// diamond's join block is merge itself and BuildConnect(path2, merge) adds
// a self-edge on merge.
func BuildLoopWithBranches(g *cfg.MaoCFG, from int) int {
	header := BuildStraight(g, from, 1)
	branch := BuildDiamond(g, header)
	path1 := BuildStraight(g, branch, 2)
	path2 := BuildDiamond(g, branch)
	merge := BuildStraight(g, path1, 1)
	BuildConnect(g, path2, merge)
	BuildConnect(g, merge, header)
	return BuildStraight(g, merge, 1)
}

// varietyBuilders cycles through the single-loop shapes above so
// BuildScalableIslands produces a mix of loop structures rather than
// numIslands copies of the same one. Each builder yields exactly one loop,
// so an island is one strongly connected component.
var varietyBuilders = []func(*cfg.MaoCFG, int) int{
	BuildBaseLoop,
	BuildNestedLoop,
	BuildMultipleExitLoop,
	BuildLoopWithBranches,
}

// BuildScalableIslands builds a CFG containing numIslands independent loop
// shapes, each chosen round-robin from the fixed set of shapes above and
// separated by a gap block so no two islands share a strongly connected
// component. It returns the ID of the last block created, or an error if
// numIslands < 1.
func BuildScalableIslands(g *cfg.MaoCFG, numIslands int) (int, error) {
	if numIslands < 1 {
		return 0, ErrTooFewIslands
	}

	g.CreateNode(0)
	current := 0

	for i := 0; i < numIslands; i++ {
		build := varietyBuilders[i%len(varietyBuilders)]
		current = build(g, current)

		if i < numIslands-1 {
			next := current + 1
			g.CreateNode(next)
			BuildConnect(g, current, next)
			current = next
		}
	}

	return current, nil
}
