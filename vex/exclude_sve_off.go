//go:build !vex_nosve

package vex

const excludeSVE = false
