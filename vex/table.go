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

package vex

// Variants maps each compiled target to its implementation of one routine.
// F is the routine's function type; every entry must share it exactly.
type Variants[F any] map[Target]F

// Func is a per-routine dispatch table: one slot per compiled target in
// priority order, baseline last, with slot 0 reserved for the initializer.
// The table is built once, during package initialization, and never mutated
// afterward, so concurrent dispatch needs no synchronization.
//
// Slot 0 never holds a callable variant. An index of 0 means the
// chosen-target cache is still cold, and Dispatch performs the one-time
// resolution the reserved slot stands for before forwarding to the real
// slot. A compiled target with no implementation leaves its slot explicitly
// empty; choosing an empty slot is a process-fatal defect, never a silent
// fallback to a different variant.
type Func[F any] struct {
	name   string
	eng    *engine
	slots  []F
	ok     []bool
	static bool
}

// Export builds the dispatch table for the named routine. It is intended to
// be called from a package-level var declaration in generated code, once per
// routine per process. Entries for targets outside the compiled set are
// dropped; compiled targets missing from impls leave an empty slot.
func Export[F any](name string, impls Variants[F]) *Func[F] {
	return newFunc(global, name, impls)
}

func newFunc[F any](eng *engine, name string, impls Variants[F]) *Func[F] {
	n := len(eng.order)
	f := &Func[F]{
		name:   name,
		eng:    eng,
		slots:  make([]F, n+1),
		ok:     make([]bool, n+1),
		static: n == 1,
	}
	for i, t := range eng.order {
		impl, exists := impls[t]
		if !exists {
			continue
		}
		f.slots[i+1] = impl
		f.ok[i+1] = true
	}
	return f
}

// Dispatch returns the implementation for the chosen target. The first call
// in the process resolves the chosen target; afterwards this is one atomic
// load and a table index. Single-variant builds skip even that and return
// the sole implementation without consulting detector or cache.
func (f *Func[F]) Dispatch() F {
	idx := 1
	if !f.static {
		idx = f.eng.chosenIndex()
	}
	if !f.ok[idx] {
		abortf("vex: routine %s has no %s implementation (table slot %d) but the chosen target selected it",
			f.name, f.eng.order[idx-1], idx)
	}
	return f.slots[idx]
}

// Name returns the routine name passed to Export.
func (f *Func[F]) Name() string {
	return f.name
}

// Variants returns the targets with populated slots, in priority order.
func (f *Func[F]) Variants() []Target {
	out := make([]Target, 0, len(f.eng.order))
	for i, t := range f.eng.order {
		if f.ok[i+1] {
			out = append(out, t)
		}
	}
	return out
}
