// Package loopforge recognizes natural loops in a control-flow graph and
// benchmarks two loop-recognition engines against synthetic CFGs of known
// shape and tunable size.
//
// The core lives in four packages:
//
//	cfg/    — basic blocks, directed edges, and the MaoCFG they live in
//	lsg/    — the loop structure graph: simple loops, nesting, dumping
//	tarjan/ — single-threaded recursive SCC-based loop recognition
//	fwbw/   — divide-and-conquer Forward/Backward-Trim loop recognition
//
// Around that core, scenario/ builds synthetic CFGs of known loop shape,
// bench/ times both engines over them and reports cross-engine agreement,
// config/ describes a benchmark run as a YAML document, and cmd/loopforge
// is the command-line front end tying it all together.
package loopforge
