//go:build wasm && !vex_static

package vex

// WASM SIMD128 is a compile-time property of the wasm binary, not a runtime
// one, so it is always in the compiled set here.
func compiledTargets() []Target {
	return []Target{WASM, Scalar}
}
