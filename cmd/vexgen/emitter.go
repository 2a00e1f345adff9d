package main

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

const enginePath = "github.com/gosimd/go-vex/vex"

// EmitVariants renders one build-tagged variant file: the per-target
// instantiation of every routine, plus the init that registers each one in
// its routine's variant map. Registration runs during package init, before
// the z_-prefixed dispatch file builds the table.
func EmitVariants(pkg string, routines []Routine, t genTarget) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by vexgen. DO NOT EDIT.\n\n")
	if t.BuildTag != "" {
		fmt.Fprintf(&buf, "//go:build %s\n\n", t.BuildTag)
	}
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import %q\n\n", enginePath)

	for _, r := range routines {
		ret := ""
		if len(r.Results) > 0 {
			ret = "return "
		}
		fmt.Fprintf(&buf, "// %s is the %s instantiation of %s.\n", r.VariantName(t), t.ID, r.BaseName)
		fmt.Fprintf(&buf, "func %s(%s)%s {\n", r.VariantName(t), r.ParamList(), r.ResultList())
		args := r.ArgList()
		if args != "" {
			args = ", " + args
		}
		fmt.Fprintf(&buf, "\t%s%s(%s%s)\n", ret, r.BaseName, t.Const, args)
		fmt.Fprintf(&buf, "}\n\n")
	}

	fmt.Fprintf(&buf, "func init() {\n")
	for _, r := range routines {
		fmt.Fprintf(&buf, "\t%s[%s] = %s\n", r.VariantsVar(), t.Const, r.VariantName(t))
	}
	fmt.Fprintf(&buf, "}\n")

	return formatted(buf.Bytes())
}

// EmitDispatch renders the singleton artifacts for every routine: the
// variant map, the dispatch table, and the exported call-through wrapper.
// Emitted once, by the authoritative pass, into a z_-prefixed file so its
// init runs after every variant registration.
func EmitDispatch(pkg string, routines []Routine) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by vexgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import %q\n\n", enginePath)

	for _, r := range routines {
		ft := r.FuncType()
		fmt.Fprintf(&buf, "// %s collects the compiled instantiations of %s; the\n", r.VariantsVar(), r.BaseName)
		fmt.Fprintf(&buf, "// build-tagged variant files register into it during package init.\n")
		fmt.Fprintf(&buf, "var %s = vex.Variants[%s]{}\n\n", r.VariantsVar(), ft)
		fmt.Fprintf(&buf, "var %s *vex.Func[%s]\n\n", r.TableVar(), ft)
	}

	fmt.Fprintf(&buf, "func init() {\n")
	for _, r := range routines {
		fmt.Fprintf(&buf, "\t%s = vex.Export(%q, %s)\n", r.TableVar(), r.Exported, r.VariantsVar())
	}
	fmt.Fprintf(&buf, "}\n\n")

	for _, r := range routines {
		ret := ""
		if len(r.Results) > 0 {
			ret = "return "
		}
		fmt.Fprintf(&buf, "// %s runs the best compiled variant of %s for this CPU.\n", r.Exported, r.BaseName)
		fmt.Fprintf(&buf, "func %s(%s)%s {\n", r.Exported, r.ParamList(), r.ResultList())
		fmt.Fprintf(&buf, "\t%s%s.Dispatch()(%s)\n", ret, r.TableVar(), r.ArgList())
		fmt.Fprintf(&buf, "}\n\n")
	}

	return formatted(buf.Bytes())
}

func formatted(src []byte) ([]byte, error) {
	out, err := imports.Process("generated.go", src, nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n\n%s", err, src)
	}
	return out, nil
}
