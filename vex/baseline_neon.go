//go:build vex_baseline_neon

package vex

// arm64 only: on any other GOARCH the compiled order cannot end with NEON,
// and the registry validation aborts the binary during package init.
const baselineTarget = NEON
