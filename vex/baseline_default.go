//go:build !vex_baseline_sse4 && !vex_baseline_neon

package vex

// baselineTarget is the weakest variant the binary may assume executable.
// Raising it (vex_baseline_sse4, vex_baseline_neon) drops the weaker
// variants from the compiled set entirely. Setting both tags at once is a
// build error by construction: baselineTarget would be declared twice.
const baselineTarget = Scalar
