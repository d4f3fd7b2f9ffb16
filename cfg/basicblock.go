package cfg

// BasicBlock is a single node of a MaoCFG, identified by a small
// non-negative integer ID unique within its owning CFG. Its successor and
// predecessor lists are ordered by insertion and may contain the same
// neighbor more than once when parallel edges are constructed between the
// same pair of IDs.
type BasicBlock struct {
	id   int
	succ []*BasicBlock
	pred []*BasicBlock
}

// ID returns the block's identity within its CFG.
func (b *BasicBlock) ID() int {
	return b.id
}

// Successors returns a copy of the block's outgoing neighbors, in
// insertion order.
func (b *BasicBlock) Successors() []*BasicBlock {
	out := make([]*BasicBlock, len(b.succ))
	copy(out, b.succ)
	return out
}

// Predecessors returns a copy of the block's incoming neighbors, in
// insertion order.
func (b *BasicBlock) Predecessors() []*BasicBlock {
	out := make([]*BasicBlock, len(b.pred))
	copy(out, b.pred)
	return out
}

// NumSuccessors and NumPredecessors report adjacency-list lengths without
// the copying cost of Successors/Predecessors.
func (b *BasicBlock) NumSuccessors() int   { return len(b.succ) }
func (b *BasicBlock) NumPredecessors() int { return len(b.pred) }

// HasSelfEdge reports whether the block has at least one edge to itself.
func (b *BasicBlock) HasSelfEdge() bool {
	for _, s := range b.succ {
		if s == b {
			return true
		}
	}
	return false
}

// HasExternalPredecessor reports whether any of the block's predecessors
// falls outside the given member set. It is the primitive header-discovery
// check used by both engines.
func (b *BasicBlock) HasExternalPredecessor(members map[*BasicBlock]struct{}) bool {
	for _, p := range b.pred {
		if _, in := members[p]; !in {
			return true
		}
	}
	return false
}
