//go:build vex_noavx3

package vex

// Escape hatch for toolchains that miscompile 512-bit code paths.
const excludeAVX3 = true
