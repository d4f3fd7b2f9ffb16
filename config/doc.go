// Package config describes, in one YAML document, which scenarios a
// benchmark run should exercise, at what sizes, through which engines, and
// with what FWBW parallel threshold, so a run is reproducible from a
// checked-in file rather than command-line flags alone.
package config
