package vex

import (
	"fmt"
	"os"
	"strconv"
)

// Detector reports which targets the current CPU can execute. Detectors must
// be pure functions of the host: safe to call repeatedly and concurrently,
// with every call returning the same set.
type Detector func() TargetSet

// SupportedTargets is the default Detector. It probes the host CPU, applies
// the VEX_NO_SIMD and VEX_TARGET environment overrides, and always includes
// the baseline so the engine has a variant it may legally run.
func SupportedTargets() TargetSet {
	if noSimdEnv() {
		return SetOf(baselineTarget, Scalar)
	}
	s := detectHost().With(Scalar).With(baselineTarget)
	if limit, ok := targetEnv(); ok {
		s = s.capAt(limit).With(baselineTarget)
	}
	return s
}

// noSimdEnv reports whether the VEX_NO_SIMD environment variable requests
// the scalar fallback regardless of CPU capabilities. Any non-empty value
// that does not parse as false counts as set.
func noSimdEnv() bool {
	val := os.Getenv("VEX_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// targetEnv reads the VEX_TARGET override, which caps the supported set at
// the named target. Unknown names are reported once to stderr and ignored.
func targetEnv() (Target, bool) {
	val := os.Getenv("VEX_TARGET")
	if val == "" {
		return Scalar, false
	}
	t, ok := ParseTarget(val)
	if !ok {
		fmt.Fprintf(os.Stderr, "vex: ignoring unknown VEX_TARGET %q\n", val)
		return Scalar, false
	}
	return t, true
}
