//go:build vex_baseline_sse4

package vex

// amd64 only: on any other GOARCH the compiled order cannot end with SSE4,
// and the registry validation aborts the binary during package init.
const baselineTarget = SSE4
