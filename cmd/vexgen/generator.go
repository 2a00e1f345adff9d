package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimd/go-vex/vex"
)

// Generator orchestrates one vexgen run: parse the input once, instantiate
// its routines once per target, and emit the singleton dispatch artifacts on
// the authoritative (scalar) pass.
type Generator struct {
	InputFile  string
	OutputDir  string
	Targets    []genTarget
	PackageOut string
	Skip       map[vex.Target]map[string]bool
}

// Run executes the generator.
func (g *Generator) Run() error {
	pkg, routines, err := ParseRoutines(g.InputFile)
	if err != nil {
		return err
	}
	if g.PackageOut != "" {
		pkg = g.PackageOut
	}

	prefix := strings.TrimSuffix(filepath.Base(g.InputFile), ".go")

	for _, t := range g.Targets {
		kept := g.keptRoutines(routines, t)
		if len(kept) > 0 {
			src, err := EmitVariants(pkg, kept, t)
			if err != nil {
				return fmt.Errorf("target %s: %w", t.ID, err)
			}
			name := prefix + t.suffix() + ".gen.go"
			if err := g.write(name, src); err != nil {
				return err
			}
		}

		if t.authoritative() {
			// The dispatch table covers every routine, including ones
			// skipped on some targets; those slots stay empty.
			src, err := EmitDispatch(pkg, routines)
			if err != nil {
				return fmt.Errorf("dispatch: %w", err)
			}
			name := "z_" + prefix + "_dispatch.gen.go"
			if err := g.write(name, src); err != nil {
				return err
			}
		}
	}
	return nil
}

// keptRoutines filters out routines the -skip flag rules out for a target.
func (g *Generator) keptRoutines(routines []Routine, t genTarget) []Routine {
	skipped := g.Skip[t.ID]
	if len(skipped) == 0 {
		return routines
	}
	kept := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if !skipped[r.Group] {
			kept = append(kept, r)
		}
	}
	return kept
}

func (g *Generator) write(name string, src []byte) error {
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("vexgen: wrote %s\n", path)
	return nil
}
