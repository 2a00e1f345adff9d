//go:build !amd64 && !arm64 && !wasm && !riscv64 && !vex_static

package vex

func compiledTargets() []Target {
	return []Target{Scalar}
}
