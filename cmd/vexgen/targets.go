package main

import (
	"fmt"
	"strings"

	"github.com/gosimd/go-vex/vex"
)

// genTarget describes one code-generation target. The build tags mirror the
// registry in the vex package: a variant file must compile exactly when its
// target is in the compiled set.
type genTarget struct {
	ID       vex.Target
	Name     string // identifier suffix, e.g. "AVX2"
	Const    string // engine constant, e.g. "vex.AVX2"
	BuildTag string // build constraint for the variant file, empty for scalar
}

// allTargets returns every generation target in priority order, scalar last.
// Scalar has no build tag: it is compiled into every build and doubles as
// the authoritative pass that emits the singleton dispatch artifacts. SSE4
// and NEON can be promoted to the build baseline, so their variant files
// must stay compiled in vex_static builds carrying the matching baseline
// tag, or the sole table slot of such a build would be empty; every other
// non-scalar target drops out of static builds unconditionally.
func allTargets() []genTarget {
	return []genTarget{
		{vex.AVX3, "AVX3", "vex.AVX3", "amd64 && !vex_noavx3 && !vex_static"},
		{vex.AVX2, "AVX2", "vex.AVX2", "amd64 && !vex_static"},
		{vex.SSE4, "SSE4", "vex.SSE4", "amd64 && (!vex_static || vex_baseline_sse4)"},
		{vex.SVE, "SVE", "vex.SVE", "arm64 && !vex_nosve && !vex_static"},
		{vex.NEON, "NEON", "vex.NEON", "arm64 && (!vex_static || vex_baseline_neon)"},
		{vex.WASM, "WASM", "vex.WASM", "wasm && !vex_static"},
		{vex.RVV, "RVV", "vex.RVV", "riscv64 && !vex_static"},
		{vex.Scalar, "Scalar", "vex.Scalar", ""},
	}
}

func availableTargetNames() string {
	names := make([]string, 0, 8)
	for _, t := range allTargets() {
		names = append(names, t.ID.String())
	}
	return strings.Join(names, ",")
}

// parseTargets resolves a comma-separated target list. "all" selects every
// target. Scalar is appended if missing: the authoritative pass is not
// optional, or the singleton artifacts would never be emitted.
func parseTargets(s string) ([]genTarget, error) {
	if strings.TrimSpace(s) == "all" {
		return allTargets(), nil
	}

	requested := map[vex.Target]bool{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := vex.ParseTarget(name)
		if !ok {
			return nil, fmt.Errorf("unknown target %q (valid: %s)", name, availableTargetNames())
		}
		requested[id] = true
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("no targets requested")
	}
	requested[vex.Scalar] = true

	out := make([]genTarget, 0, len(requested))
	for _, t := range allTargets() {
		if requested[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

// suffix returns the filename suffix for this target (e.g. "_avx2").
func (t genTarget) suffix() string {
	return "_" + t.ID.String()
}

// authoritative reports whether this pass emits the singleton artifacts.
func (t genTarget) authoritative() bool {
	return t.ID == vex.Scalar
}

// parseSkip parses "target:routine" pairs naming instantiations a known
// toolchain limitation rules out. The affected table slots stay empty, which
// the engine treats as fatal if ever chosen.
func parseSkip(s string) (map[vex.Target]map[string]bool, error) {
	skip := map[vex.Target]map[string]bool{}
	if strings.TrimSpace(s) == "" {
		return skip, nil
	}
	for _, pair := range strings.Split(s, ",") {
		target, routine, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return nil, fmt.Errorf("malformed -skip entry %q, want target:routine", pair)
		}
		id, ok := vex.ParseTarget(target)
		if !ok {
			return nil, fmt.Errorf("unknown target in -skip entry %q", pair)
		}
		if id == vex.Scalar {
			return nil, fmt.Errorf("cannot skip the scalar pass (%q): it emits the dispatch table", pair)
		}
		if skip[id] == nil {
			skip[id] = map[string]bool{}
		}
		skip[id][routine] = true
	}
	return skip, nil
}
