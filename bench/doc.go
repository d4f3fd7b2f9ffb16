// Package bench drives scenario-built CFGs through the tarjan and fwbw
// loop-recognition engines, times each run, and reports single-engine and
// cross-engine results. It is the benchmark harness the command-line front
// end and the scaling sweep both sit on top of.
package bench
