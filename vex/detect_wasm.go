package vex

// detectHost for wasm. SIMD128 support cannot be probed from inside the
// module; if the binary was compiled with it and loaded at all, it runs.
func detectHost() TargetSet {
	return SetOf(WASM)
}
