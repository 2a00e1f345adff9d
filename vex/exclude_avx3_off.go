//go:build !vex_noavx3

package vex

const excludeAVX3 = false
