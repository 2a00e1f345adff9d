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

import "unsafe"

// Lanes constrains the element types that can populate SIMD lanes.
type Lanes interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Desc pairs an element type with a lane-count policy. Routine bodies use it
// to size their loops per target; the engine is otherwise oblivious to
// element semantics.
type Desc[T Lanes] struct {
	cap int // 0 means use the widest vector the target supports
}

// Scalable describes "use the widest vector this target supports".
func Scalable[T Lanes]() Desc[T] {
	return Desc[T]{}
}

// Capped describes "use at most n lanes", for algorithms with a fixed block
// shape. n must be at least 1.
func Capped[T Lanes](n int) Desc[T] {
	if n < 1 {
		n = 1
	}
	return Desc[T]{cap: n}
}

// Lanes returns the number of elements of T a vector holds on target t.
// Scalar is always a single lane.
func (d Desc[T]) Lanes(t Target) int {
	if t == Scalar {
		return 1
	}
	var zero T
	n := t.VectorBytes() / int(unsafe.Sizeof(zero))
	if n < 1 {
		n = 1
	}
	if d.cap > 0 && n > d.cap {
		n = d.cap
	}
	return n
}
