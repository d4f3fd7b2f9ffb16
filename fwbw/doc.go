// Package fwbw implements the Forward/Backward-Trim loop-recognition
// engine: FindFWBWLoops recursively partitions a cfg.MaoCFG's block IDs by
// trimming acyclic fringe material, splitting the remainder around a
// deterministically chosen pivot into its strongly connected component and
// three disjoint remainders, and recursing on the remainders — optionally
// in parallel once a partition grows past ParallelThreshold.
//
// The recursion's three remainders are always pairwise disjoint (see
// DESIGN.md), so within one FindFWBWLoops call a block is only ever visited
// by one branch of the recursion tree. The "already claimed by another
// loop" check in emit is therefore a safety net rather than the primary
// route to nested output; it is kept because it is cheap and matches the
// source engine's behavior.
package fwbw
