//go:build vex_static

package vex

// Tooling/analysis mode: a single-variant build. Export collapses to static
// dispatch, and neither the detector nor the chosen-target cache is ever
// consulted.
func compiledTargets() []Target {
	return []Target{baselineTarget}
}
