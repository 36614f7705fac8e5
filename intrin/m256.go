// Copyright 2026 go-intrin Authors
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

package intrin

import (
	"fmt"
	"math"
)

// M256 is a 256-bit register holding eight float32 lanes.
// The zero value is the all-zero register.
type M256 struct {
	v [8]float32
}

// M256FromArray builds a register from lanes in index order.
func M256FromArray(a [8]float32) M256 {
	return M256{v: a}
}

// Array returns the lanes in index order.
func (m M256) Array() [8]float32 {
	return m.v
}

// M256FromBits reinterprets eight bit patterns as float32 lanes.
// NaN payloads survive the trip.
func M256FromBits(b [8]uint32) M256 {
	var m M256
	for i, x := range b {
		m.v[i] = math.Float32frombits(x)
	}
	return m
}

// Bits returns the raw bit pattern of each lane.
func (m M256) Bits() [8]uint32 {
	var b [8]uint32
	for i, x := range m.v {
		b[i] = math.Float32bits(x)
	}
	return b
}

// String implements fmt.Stringer.
func (m M256) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. Numeric verbs apply to each lane in
// turn; %b, %o, %x and %X format the raw lane bits instead.
func (m M256) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		b := m.Bits()
		formatLanes(f, verb, "M256", b[:])
	default:
		formatLanes(f, verb, "M256", m.v[:])
	}
}
