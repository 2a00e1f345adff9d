package vex

import (
	"runtime"
	"sync/atomic"
)

// Lifecycle states of the chosen-target cache. The packed word is
// state<<8 | tableIndex, so the zero value reads as "uninitialized" and
// yields index 0, the reserved initializer slot.
const (
	stateUninitialized uint32 = iota
	stateResolving
	stateReady
)

// chosenTarget caches which table index dispatch uses for the rest of the
// process. The resolving state marks the window between the first cold call
// and publication: the caller that claims it runs the detector, and
// concurrent cold callers yield until its answer lands rather than compute a
// redundant one (either would be correct, since the answer is a pure
// function of host and build). Publication is a single atomic store of the
// fully-formed word, so no reader can observe a torn value, and once ready
// the cache is never written again (outside test resets).
type chosenTarget struct {
	packed atomic.Uint32
}

func (c *chosenTarget) index() int {
	w := c.packed.Load()
	if w>>8 != stateReady {
		return 0
	}
	return int(w & 0xff)
}

func (c *chosenTarget) publish(idx int) {
	c.packed.Store(stateReady<<8 | uint32(idx))
}

func (c *chosenTarget) reset() {
	c.packed.Store(0)
}

// engine binds a target registry, a capability detector, and the
// chosen-target cache. The package owns one process-wide instance; tests
// construct private ones to exercise registries this build did not compile.
type engine struct {
	order    []Target // priority order, baseline last
	baseline Target
	detect   Detector
	chosen   chosenTarget
}

func newEngine(order []Target, baseline Target, detect Detector) *engine {
	return &engine{order: order, baseline: baseline, detect: detect}
}

// global is the process-wide engine. Its registry comes from the build
// (compiledOrder), its detector from the host probe.
var global = newEngine(compiledOrder, baselineTarget, SupportedTargets)

// selectIndex picks the highest-priority compiled target the host supports
// and returns it with its dispatch-table index (slot 0 is reserved for the
// initializer, so real variants start at 1). An empty intersection means the
// detector reported hardware weaker than the build floor; the baseline is
// used regardless, since the binary already required it to start running.
func selectIndex(order []Target, baseline Target, supported TargetSet) (Target, int) {
	for i, t := range order {
		if supported.Has(t) {
			return t, i + 1
		}
	}
	for i, t := range order {
		if t == baseline {
			return t, i + 1
		}
	}
	// validateCompiled guarantees the baseline is in order, so this is
	// unreachable for the global engine; keep test engines total anyway.
	return order[len(order)-1], len(order)
}

// resolve computes and publishes the chosen index. Callers must have
// claimed the resolving state first.
func (e *engine) resolve() int {
	_, idx := selectIndex(e.order, e.baseline, e.detect())
	e.chosen.publish(idx)
	return idx
}

// chosenIndex is the dispatch fast path: one atomic load once the cache is
// ready. A cold caller claims the resolving state and runs the detector;
// callers that observe the state already claimed yield until the winner
// publishes, so detection runs once per cache lifetime.
func (e *engine) chosenIndex() int {
	for {
		if idx := e.chosen.index(); idx != 0 {
			return idx
		}
		if e.chosen.packed.CompareAndSwap(stateUninitialized<<8, stateResolving<<8) {
			return e.resolve()
		}
		runtime.Gosched()
	}
}

func (e *engine) chosenTarget() Target {
	return e.order[e.chosenIndex()-1]
}

// ChosenTarget returns the variant all dispatch tables use for the rest of
// the process, resolving it on first use.
func ChosenTarget() Target {
	return global.chosenTarget()
}

// Supported returns the detector's view of the host, with the process-wide
// overrides applied.
func Supported() TargetSet {
	return global.detect()
}

// SetSupportedForTest replaces the detected capability set and resets the
// chosen-target cache, so the next dispatch re-resolves against the given
// set. Passing zero restores hardware detection. Only for tests; calling
// this while other goroutines dispatch is a race by definition.
func SetSupportedForTest(s TargetSet) {
	if s == 0 {
		global.detect = SupportedTargets
	} else {
		global.detect = func() TargetSet { return s }
	}
	global.chosen.reset()
}
