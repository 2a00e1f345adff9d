package vex

import "github.com/klauspost/cpuid/v2"

// detectHost probes x86-64 CPU features. AVX3 requires the same AVX-512
// extension cluster every 512-bit code path in this module may use
// (F, BW, CD, DQ, VL); a CPU missing any of them reports AVX2 at best.
func detectHost() TargetSet {
	var s TargetSet
	if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512CD, cpuid.AVX512DQ, cpuid.AVX512VL) {
		s = s.With(AVX3)
	}
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3, cpuid.BMI2) {
		s = s.With(AVX2)
	}
	if cpuid.CPU.Supports(cpuid.SSE42) {
		s = s.With(SSE4)
	}
	return s
}
