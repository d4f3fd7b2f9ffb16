// Package cfg models a control-flow graph as basic blocks connected by
// directed edges. It is the shared substrate the loop-recognition engines
// in tarjan and fwbw consume: a MaoCFG owns every BasicBlock it creates,
// hands out non-owning pointers, and is safe to build concurrently even
// though the benchmark driver in this repository builds it single-threaded.
//
// A MaoCFG is mutable only during construction. Once an engine has run
// against it, callers must treat it as read-only; nothing in this package
// enforces that after the fact.
package cfg
