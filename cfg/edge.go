package cfg

// BasicBlockEdge represents the act of connecting two blocks by ID. It
// records only its two endpoints; callers that only need the wiring side
// effect can discard the returned value.
type BasicBlockEdge struct {
	from *BasicBlock
	to   *BasicBlock
}

// NewBasicBlockEdge wires an edge from -> to into cfg, materializing either
// endpoint if it does not already exist. Parallel edges between the same
// pair of IDs are permitted: each call appends independently to both
// adjacency lists rather than deduplicating.
func NewBasicBlockEdge(g *MaoCFG, from, to int) *BasicBlockEdge {
	g.mu.Lock()
	defer g.mu.Unlock()

	fromBlock := g.createNodeLocked(from)
	toBlock := g.createNodeLocked(to)
	fromBlock.succ = append(fromBlock.succ, toBlock)
	toBlock.pred = append(toBlock.pred, fromBlock)

	return &BasicBlockEdge{from: fromBlock, to: toBlock}
}

// From and To return the edge's endpoints.
func (e *BasicBlockEdge) From() *BasicBlock { return e.from }
func (e *BasicBlockEdge) To() *BasicBlock   { return e.to }
