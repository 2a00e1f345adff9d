//go:build riscv64 && !vex_static

package vex

func compiledTargets() []Target {
	return []Target{RVV, Scalar}
}
