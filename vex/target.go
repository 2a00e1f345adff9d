package vex

import "strings"

// Target identifies one hardware SIMD instruction-set variant. The constant
// order is the priority order: most specialized first, Scalar always last.
// A smaller value always outranks a larger one.
type Target uint8

const (
	// AVX3 is x86-64 AVX-512 with the F/BW/CD/DQ/VL extensions (512-bit).
	AVX3 Target = iota

	// AVX2 is x86-64 AVX2 with FMA and BMI2 (256-bit).
	AVX2

	// SSE4 is x86-64 SSE4.2 (128-bit).
	SSE4

	// SVE is the ARM Scalable Vector Extension (128-bit and up).
	SVE

	// NEON is ARM Advanced SIMD (128-bit), baseline on all ARMv8-A cores.
	NEON

	// WASM is WebAssembly SIMD128.
	WASM

	// RVV is the RISC-V Vector extension.
	RVV

	// Scalar is the pure Go fallback. It is compiled into every default
	// build and terminates every priority order.
	Scalar

	numTargets int = iota
)

// String returns the lowercase name of the target.
func (t Target) String() string {
	switch t {
	case AVX3:
		return "avx3"
	case AVX2:
		return "avx2"
	case SSE4:
		return "sse4"
	case SVE:
		return "sve"
	case NEON:
		return "neon"
	case WASM:
		return "wasm"
	case RVV:
		return "rvv"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// VectorBytes returns the vector register width in bytes for this target.
// For the scalable ISAs (SVE, RVV) this is the architectural minimum, the
// only width a build can assume. Scalar reports the widest single element.
func (t Target) VectorBytes() int {
	switch t {
	case AVX3:
		return 64
	case AVX2:
		return 32
	case SSE4, SVE, NEON, WASM, RVV:
		return 16
	case Scalar:
		return 8
	default:
		return 0
	}
}

// ParseTarget parses a lowercase target name as produced by String.
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avx3", "avx512":
		return AVX3, true
	case "avx2":
		return AVX2, true
	case "sse4":
		return SSE4, true
	case "sve":
		return SVE, true
	case "neon":
		return NEON, true
	case "wasm":
		return WASM, true
	case "rvv":
		return RVV, true
	case "scalar":
		return Scalar, true
	default:
		return Scalar, false
	}
}

// TargetSet is a bitmask over Target.
type TargetSet uint16

// SetOf returns the set containing exactly the given targets.
func SetOf(targets ...Target) TargetSet {
	var s TargetSet
	for _, t := range targets {
		s = s.With(t)
	}
	return s
}

// With returns s with t added.
func (s TargetSet) With(t Target) TargetSet {
	return s | 1<<t
}

// Without returns s with t removed.
func (s TargetSet) Without(t Target) TargetSet {
	return s &^ (1 << t)
}

// Has reports whether t is a member of s.
func (s TargetSet) Has(t Target) bool {
	return s&(1<<t) != 0
}

// And returns the intersection of s and o.
func (s TargetSet) And(o TargetSet) TargetSet {
	return s & o
}

// Or returns the union of s and o.
func (s TargetSet) Or(o TargetSet) TargetSet {
	return s | o
}

// Targets returns the members of s in priority order.
func (s TargetSet) Targets() []Target {
	out := make([]Target, 0, numTargets)
	for t := Target(0); int(t) < numTargets; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// capAt removes every target that outranks limit, leaving limit and weaker
// members untouched. Used by the VEX_TARGET override.
func (s TargetSet) capAt(limit Target) TargetSet {
	for t := Target(0); t < limit; t++ {
		s = s.Without(t)
	}
	return s
}

// String returns the members of s in priority order, pipe-separated.
func (s TargetSet) String() string {
	if s == 0 {
		return "none"
	}
	names := make([]string, 0, numTargets)
	for _, t := range s.Targets() {
		names = append(names, t.String())
	}
	return strings.Join(names, "|")
}
