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

// Command vexinfo prints the dispatch engine's view of the current host:
// which targets this binary compiled, what the CPU supports, and which
// variant dispatch will use.
package main

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/gosimd/go-vex/vex"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Print("Compiled targets: ")
	for i, t := range vex.Compiled() {
		if i > 0 {
			fmt.Print(" > ")
		}
		fmt.Print(t)
	}
	fmt.Println()
	fmt.Printf("Baseline target:  %s\n", vex.Baseline())
	fmt.Printf("Supported set:    %s\n", vex.Supported())
	fmt.Printf("Chosen target:    %s\n", vex.ChosenTarget())
	fmt.Println()

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features()
	case "arm64":
		printARM64Features()
	}
}

func printAMD64Features() {
	fmt.Println("=== github.com/klauspost/cpuid/v2 ===")
	fmt.Printf("  Brand:      %s\n", cpuid.CPU.BrandName)
	fmt.Printf("  Vendor:     %s\n", cpuid.CPU.VendorString)
	fmt.Printf("  SSE4.2:     %v\n", cpuid.CPU.Supports(cpuid.SSE42))
	fmt.Printf("  AVX2:       %v\n", cpuid.CPU.Supports(cpuid.AVX2))
	fmt.Printf("  FMA3:       %v\n", cpuid.CPU.Supports(cpuid.FMA3))
	fmt.Printf("  BMI2:       %v\n", cpuid.CPU.Supports(cpuid.BMI2))
	fmt.Printf("  AVX512F:    %v\n", cpuid.CPU.Supports(cpuid.AVX512F))
	fmt.Printf("  AVX512BW:   %v\n", cpuid.CPU.Supports(cpuid.AVX512BW))
	fmt.Printf("  AVX512CD:   %v\n", cpuid.CPU.Supports(cpuid.AVX512CD))
	fmt.Printf("  AVX512DQ:   %v\n", cpuid.CPU.Supports(cpuid.AVX512DQ))
	fmt.Printf("  AVX512VL:   %v\n", cpuid.CPU.Supports(cpuid.AVX512VL))
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
}
