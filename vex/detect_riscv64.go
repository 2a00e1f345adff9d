package vex

import "golang.org/x/sys/cpu"

func detectHost() TargetSet {
	var s TargetSet
	if cpu.RISCV64.HasV {
		s = s.With(RVV)
	}
	return s
}
