package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gosimd/go-vex/vex"
)

const testInput = `package axpy

import "github.com/gosimd/go-vex/vex"

func axpyBase(t vex.Target, a float32, x, y []float32) {
	_ = vex.Scalable[float32]().Lanes(t)
}

func dotBase(t vex.Target, x, y []float32) float32 {
	return 0
}

// helperBase has no target parameter and must be ignored.
func helperBase(n int) int { return n }
`

func writeTestInput(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "axpy.go")
	if err := os.WriteFile(path, []byte(testInput), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    int
		wantErr bool
	}{
		{"all", "all", 8, false},
		{"subset keeps scalar", "avx2,neon", 3, false},
		{"scalar implied", "avx2", 2, false},
		{"unknown", "mmx", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTargets(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTargets(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != tt.want {
				t.Errorf("parseTargets(%q) returned %d targets, want %d", tt.spec, len(got), tt.want)
			}
			if got[len(got)-1].ID != vex.Scalar {
				t.Errorf("parseTargets(%q) does not end with scalar", tt.spec)
			}
		})
	}
}

func TestBaselineCapableTargetsSurviveStatic(t *testing.T) {
	tags := map[vex.Target]string{}
	for _, gt := range allTargets() {
		tags[gt.ID] = gt.BuildTag
	}

	// A vex_static build raised to a baseline above scalar compiles exactly
	// that target, so its variant file must not drop out of the build.
	if want := "amd64 && (!vex_static || vex_baseline_sse4)"; tags[vex.SSE4] != want {
		t.Errorf("sse4 build tag = %q, want %q", tags[vex.SSE4], want)
	}
	if want := "arm64 && (!vex_static || vex_baseline_neon)"; tags[vex.NEON] != want {
		t.Errorf("neon build tag = %q, want %q", tags[vex.NEON], want)
	}

	// Targets that can never be the baseline leave static builds outright.
	for _, id := range []vex.Target{vex.AVX3, vex.AVX2, vex.SVE, vex.WASM, vex.RVV} {
		if !strings.Contains(tags[id], "!vex_static") || strings.Contains(tags[id], "||") {
			t.Errorf("%s build tag = %q, want unconditional !vex_static", id, tags[id])
		}
	}
}

func TestParseSkip(t *testing.T) {
	skip, err := parseSkip("avx3:axpy, neon:dot")
	if err != nil {
		t.Fatal(err)
	}
	if !skip[vex.AVX3]["axpy"] || !skip[vex.NEON]["dot"] {
		t.Errorf("parseSkip missing entries: %v", skip)
	}

	if _, err := parseSkip("scalar:axpy"); err == nil {
		t.Error("parseSkip allowed skipping the scalar pass")
	}
	if _, err := parseSkip("avx3"); err == nil {
		t.Error("parseSkip allowed a malformed entry")
	}
}

func TestParseRoutines(t *testing.T) {
	pkg, routines, err := ParseRoutines(writeTestInput(t))
	if err != nil {
		t.Fatal(err)
	}
	if pkg != "axpy" {
		t.Errorf("package = %q, want axpy", pkg)
	}
	if len(routines) != 2 {
		t.Fatalf("parsed %d routines, want 2 (helperBase must be ignored)", len(routines))
	}

	axpy := routines[0]
	if axpy.Group != "axpy" || axpy.Exported != "Axpy" {
		t.Errorf("group/exported = %q/%q", axpy.Group, axpy.Exported)
	}
	if got := axpy.ParamList(); got != "a float32, x, y []float32" {
		t.Errorf("ParamList = %q", got)
	}
	if got := axpy.ArgList(); got != "a, x, y" {
		t.Errorf("ArgList = %q", got)
	}
	if got := axpy.FuncType(); got != "func(a float32, x, y []float32)" {
		t.Errorf("FuncType = %q", got)
	}

	dot := routines[1]
	if got := dot.FuncType(); got != "func(x, y []float32) float32" {
		t.Errorf("dot FuncType = %q", got)
	}
	if got := dot.ResultList(); got != " float32" {
		t.Errorf("dot ResultList = %q", got)
	}
}

func TestEmitVariants(t *testing.T) {
	_, routines, err := ParseRoutines(writeTestInput(t))
	if err != nil {
		t.Fatal(err)
	}

	avx2 := allTargets()[1]
	src, err := EmitVariants("axpy", routines, avx2)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by vexgen. DO NOT EDIT.",
		"//go:build amd64 && !vex_static",
		"func axpyAVX2(a float32, x, y []float32) {",
		"axpyBase(vex.AVX2, a, x, y)",
		"func dotAVX2(x, y []float32) float32 {",
		"return dotBase(vex.AVX2, x, y)",
		"axpyVariants[vex.AVX2] = axpyAVX2",
		"dotVariants[vex.AVX2] = dotAVX2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("variant file missing %q:\n%s", want, out)
		}
	}
}

func TestEmitVariantsScalarHasNoBuildTag(t *testing.T) {
	_, routines, err := ParseRoutines(writeTestInput(t))
	if err != nil {
		t.Fatal(err)
	}
	scalar := allTargets()[len(allTargets())-1]
	src, err := EmitVariants("axpy", routines, scalar)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "//go:build") {
		t.Errorf("scalar variant file must have no build tag:\n%s", src)
	}
}

func TestEmitDispatch(t *testing.T) {
	_, routines, err := ParseRoutines(writeTestInput(t))
	if err != nil {
		t.Fatal(err)
	}
	src, err := EmitDispatch("axpy", routines)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)

	for _, want := range []string{
		"var axpyVariants = vex.Variants[func(a float32, x, y []float32)]{}",
		"var axpyTable *vex.Func[func(a float32, x, y []float32)]",
		`axpyTable = vex.Export("Axpy", axpyVariants)`,
		"func Axpy(a float32, x, y []float32) {",
		"axpyTable.Dispatch()(a, x, y)",
		"func Dot(x, y []float32) float32 {",
		"return dotTable.Dispatch()(x, y)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dispatch file missing %q:\n%s", want, out)
		}
	}
}

func TestGeneratorRun(t *testing.T) {
	input := writeTestInput(t)
	outDir := t.TempDir()

	targets, err := parseTargets("all")
	if err != nil {
		t.Fatal(err)
	}
	skip, err := parseSkip("avx3:axpy")
	if err != nil {
		t.Fatal(err)
	}

	gen := &Generator{
		InputFile: input,
		OutputDir: outDir,
		Targets:   targets,
		Skip:      skip,
	}
	if err := gen.Run(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	for _, want := range []string{
		"axpy_avx3.gen.go",
		"axpy_avx2.gen.go",
		"axpy_sse4.gen.go",
		"axpy_sve.gen.go",
		"axpy_neon.gen.go",
		"axpy_wasm.gen.go",
		"axpy_rvv.gen.go",
		"axpy_scalar.gen.go",
		"z_axpy_dispatch.gen.go",
	} {
		if !names[want] {
			t.Errorf("missing generated file %s (got %v)", want, names)
		}
	}

	// The skipped avx3:axpy instantiation must be absent while dotAVX3 stays.
	avx3, err := os.ReadFile(filepath.Join(outDir, "axpy_avx3.gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(avx3), "axpyAVX3") {
		t.Error("skipped routine still instantiated for avx3")
	}
	if !strings.Contains(string(avx3), "dotAVX3") {
		t.Error("unskipped routine missing from avx3 pass")
	}

	// The dispatch file lists every routine regardless of skips.
	dispatch, err := os.ReadFile(filepath.Join(outDir, "z_axpy_dispatch.gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dispatch), "func Axpy(") || !strings.Contains(string(dispatch), "func Dot(") {
		t.Error("dispatch file missing exported wrappers")
	}
}
