//go:build arm64 && !vex_static

package vex

func compiledTargets() []Target {
	order := make([]Target, 0, 3)
	if !excludeSVE {
		order = append(order, SVE)
	}
	order = append(order, NEON)
	if baselineTarget == Scalar {
		order = append(order, Scalar)
	}
	return order
}
