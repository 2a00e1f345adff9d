//go:build vex_nosve

package vex

// Escape hatch for toolchains that miscompile SVE code paths.
const excludeSVE = true
