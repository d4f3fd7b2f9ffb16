// Package tarjan implements single-threaded Tarjan strongly-connected-
// component decomposition as a loop-recognition engine: FindTarjanLoops
// walks a cfg.MaoCFG from its start block and registers one lsg.SimpleLoop
// per qualifying strongly connected component into a lsg.LoopStructureGraph.
//
// The engine never sets a loop's parent; every loop it emits ends up at
// nesting depth 0. Nested loop structure is still recoverable from member
// set containment by a caller that wants it, but this package does not
// compute it.
package tarjan
