// Package vex is a multi-target compilation-and-dispatch engine for SIMD
// routines. A routine is written once, instantiated once per compiled
// hardware variant (AVX-512, AVX2, SSE4, SVE, NEON, WASM SIMD128, RVV, or a
// scalar fallback), and exported as a dispatch table. The first call through
// the table probes the CPU, picks the best variant this binary carries, and
// caches the answer for the rest of the process; every later call is a
// single atomic load plus an indirect call.
//
// Basic usage, with variant files produced by cmd/vexgen:
//
//	var sumTable = vex.Export("Sum", vex.Variants[func([]float32) float32]{
//		vex.AVX2:   sumAVX2,
//		vex.SSE4:   sumSSE4,
//		vex.Scalar: sumScalar,
//	})
//
//	func Sum(x []float32) float32 {
//		return sumTable.Dispatch()(x)
//	}
//
// The set of compiled variants is fixed at build time by GOARCH and by the
// vex_static, vex_noavx3, vex_nosve, vex_baseline_sse4 and vex_baseline_neon
// build tags. The VEX_NO_SIMD and VEX_TARGET environment variables narrow
// the detected capability set at runtime without rebuilding.
package vex
