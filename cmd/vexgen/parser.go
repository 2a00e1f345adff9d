package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Routine is a portable base function eligible for per-target instantiation:
// unexported, named <group>Base, first parameter a vex.Target.
type Routine struct {
	BaseName string // "axpyBase"
	Group    string // "axpy", the shared prefix of all generated identifiers
	Exported string // "Axpy", the dispatching wrapper
	Params   []Field // parameters after the leading target parameter
	Results  []Field
}

// Field is one parameter or result group, e.g. "x, y []float32".
type Field struct {
	Names []string
	Type  string
}

var titler = cases.Title(language.Und, cases.NoLower)

// ParseRoutines reads the input file and returns its package name and every
// dispatchable base routine. Generic base routines are rejected: the table's
// function type must be concrete, so element-type expansion belongs in the
// operation library, before vexgen runs.
func ParseRoutines(path string) (string, []Routine, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var routines []Routine
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil {
			continue
		}
		name := fn.Name.Name
		if !strings.HasSuffix(name, "Base") || ast.IsExported(name) {
			continue
		}
		if !hasLeadingTargetParam(fset, fn.Type) {
			continue
		}
		if fn.Type.TypeParams != nil {
			return "", nil, fmt.Errorf("%s: generic base routines are not supported; expand element types before generation", name)
		}

		group := strings.TrimSuffix(name, "Base")
		r := Routine{
			BaseName: name,
			Group:    group,
			Exported: titler.String(group),
			Params:   fieldGroups(fset, fn.Type.Params.List[1:]),
		}
		if fn.Type.Results != nil {
			r.Results = fieldGroups(fset, fn.Type.Results.List)
		}
		if err := validateParamNames(r); err != nil {
			return "", nil, fmt.Errorf("%s: %w", name, err)
		}
		routines = append(routines, r)
	}

	if len(routines) == 0 {
		return "", nil, fmt.Errorf("%s: no base routines found (want an unexported func <group>Base with a leading vex.Target parameter)", path)
	}
	return file.Name.Name, routines, nil
}

func hasLeadingTargetParam(fset *token.FileSet, ft *ast.FuncType) bool {
	if ft.Params == nil || len(ft.Params.List) == 0 {
		return false
	}
	return typeString(fset, ft.Params.List[0].Type) == "vex.Target"
}

func fieldGroups(fset *token.FileSet, fields []*ast.Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		g := Field{Type: typeString(fset, f.Type)}
		for _, n := range f.Names {
			g.Names = append(g.Names, n.Name)
		}
		out = append(out, g)
	}
	return out
}

// validateParamNames rejects unnamed parameters: the generated wrappers must
// forward arguments by name.
func validateParamNames(r Routine) error {
	for _, p := range r.Params {
		if len(p.Names) == 0 {
			return fmt.Errorf("parameter of type %s is unnamed", p.Type)
		}
	}
	return nil
}

func typeString(fset *token.FileSet, expr ast.Expr) string {
	var sb strings.Builder
	if err := printer.Fprint(&sb, fset, expr); err != nil {
		return ""
	}
	return sb.String()
}

// ParamList renders the wrapper parameter list, e.g.
// "a float32, x, y []float32".
func (r Routine) ParamList() string {
	parts := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		parts = append(parts, strings.Join(p.Names, ", ")+" "+p.Type)
	}
	return strings.Join(parts, ", ")
}

// ArgList renders the forwarded arguments, e.g. "a, x, y".
func (r Routine) ArgList() string {
	var args []string
	for _, p := range r.Params {
		args = append(args, p.Names...)
	}
	return strings.Join(args, ", ")
}

// ResultList renders the result types, e.g. "float32" or "(int, error)".
func (r Routine) ResultList() string {
	parts := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		typ := res.Type
		for range res.Names {
			parts = append(parts, typ)
		}
		if len(res.Names) == 0 {
			parts = append(parts, typ)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return " " + parts[0]
	default:
		return " (" + strings.Join(parts, ", ") + ")"
	}
}

// FuncType renders the routine's table function type, e.g.
// "func(a float32, x, y []float32) float32".
func (r Routine) FuncType() string {
	return "func(" + r.ParamList() + ")" + r.ResultList()
}

// VariantName returns the collision-free instantiation name for a target,
// e.g. "axpyAVX2".
func (r Routine) VariantName(t genTarget) string {
	return r.Group + t.Name
}

// VariantsVar returns the per-routine registration map name, e.g.
// "axpyVariants".
func (r Routine) VariantsVar() string {
	return r.Group + "Variants"
}

// TableVar returns the per-routine dispatch table name, e.g. "axpyTable".
func (r Routine) TableVar() string {
	return r.Group + "Table"
}
