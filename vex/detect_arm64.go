package vex

import "golang.org/x/sys/cpu"

// detectHost probes ARM64 CPU features. NEON (ASIMD) is part of the ARMv8-A
// base architecture, so it is effectively always present; the check exists
// for symmetry and for stripped-down cores that hide it.
func detectHost() TargetSet {
	var s TargetSet
	if cpu.ARM64.HasSVE {
		s = s.With(SVE)
	}
	if cpu.ARM64.HasASIMD {
		s = s.With(NEON)
	}
	return s
}
