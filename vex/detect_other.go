//go:build !amd64 && !arm64 && !wasm && !riscv64

package vex

func detectHost() TargetSet {
	return SetOf(Scalar)
}
