//go:build amd64 && !vex_static

package vex

func compiledTargets() []Target {
	order := make([]Target, 0, 4)
	if !excludeAVX3 {
		order = append(order, AVX3)
	}
	order = append(order, AVX2, SSE4)
	if baselineTarget == Scalar {
		order = append(order, Scalar)
	}
	return order
}
