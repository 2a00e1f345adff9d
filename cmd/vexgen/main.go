// Copyright 2025 go-vex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vexgen instantiates dispatched routines once per hardware target.
//
// Input files contain portable routine bodies named <group>Base whose first
// parameter is a vex.Target. For every requested target, vexgen emits a
// build-tagged variant file holding a collision-free instantiation of each
// routine (the wrapper passes the target constant, so each instantiation
// compiles against a fixed lane geometry). The scalar pass is the
// authoritative one: it additionally emits the singleton artifacts — the
// per-routine variant map, the vex.Export dispatch table, and the exported
// call-through wrapper — exactly once, in a z_-prefixed file so its init
// runs after every variant registration.
//
// Usage:
//
//	vexgen -input axpy.go -output . -targets all
//	vexgen -input axpy.go -targets avx2,scalar -skip avx3:axpy
//
// Or via go:generate:
//
//	//go:generate go run github.com/gosimd/go-vex/cmd/vexgen -input $GOFILE -output . -targets all
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	inputFile  = flag.String("input", "", "input Go source file (required)")
	outputDir  = flag.String("output", ".", "output directory")
	targets    = flag.String("targets", "all", "comma-separated targets ("+availableTargetNames()+") or 'all'")
	packageOut = flag.String("pkg", "", "output package name (default: same as input)")
	skipPairs  = flag.String("skip", "", "comma-separated target:routine pairs that cannot be instantiated; their table slots stay empty")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	targetList, err := parseTargets(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	skip, err := parseSkip(*skipPairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:  *inputFile,
		OutputDir:  *outputDir,
		Targets:    targetList,
		PackageOut: *packageOut,
		Skip:       skip,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
