// Package scenario builds synthetic cfg.MaoCFG instances shaped like the
// classic Havlak loop-finder driver's test topologies: diamonds, straight
// runs, single and nested loops, multi-exit loops, sequential loops, and a
// scalable field of independent loop islands. bench uses these to drive
// both recognition engines over CFGs of known loop structure and tunable
// size.
package scenario
