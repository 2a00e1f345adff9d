package vex

// compiledOrder is the priority-ordered list of targets this binary carries
// implementations for. It is fixed at build time by the targets_*.go file
// selected for the current GOARCH and by the vex_* build tags, and is
// validated before main runs. The last entry is always baselineTarget.
var compiledOrder = func() []Target {
	order := compiledTargets()
	validateCompiled(order)
	return order
}()

var compiledSet = SetOf(compiledOrder...)

// validateCompiled rejects registry configurations that would make dispatch
// unsound. These are build defects, so the check aborts before main.
func validateCompiled(order []Target) {
	if len(order) == 0 {
		abortf("vex: no compiled targets; the build tags exclude every variant including the baseline")
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			abortf("vex: compiled targets out of priority order: %s before %s", order[i-1], order[i])
		}
	}
	if last := order[len(order)-1]; last != baselineTarget {
		abortf("vex: baseline target %s is not the final compiled variant (got %s)", baselineTarget, last)
	}
}

// Compiled returns the compiled targets in priority order, most specialized
// first. The final entry is the baseline, Scalar in default builds.
func Compiled() []Target {
	out := make([]Target, len(compiledOrder))
	copy(out, compiledOrder)
	return out
}

// CompiledSet returns the compiled targets as a set.
func CompiledSet() TargetSet {
	return compiledSet
}

// Baseline returns the weakest target this binary is allowed to assume the
// host can execute.
func Baseline() Target {
	return baselineTarget
}
