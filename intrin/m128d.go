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

// M128d is a 128-bit register holding two float64 lanes.
// The zero value is the all-zero register.
type M128d struct {
	v [2]float64
}

// M128dFromArray builds a register from lanes in index order.
func M128dFromArray(a [2]float64) M128d {
	return M128d{v: a}
}

// Array returns the lanes in index order.
func (m M128d) Array() [2]float64 {
	return m.v
}

// M128dFromBits reinterprets two bit patterns as float64 lanes.
// NaN payloads survive the trip.
func M128dFromBits(b [2]uint64) M128d {
	var m M128d
	for i, x := range b {
		m.v[i] = math.Float64frombits(x)
	}
	return m
}

// Bits returns the raw bit pattern of each lane.
func (m M128d) Bits() [2]uint64 {
	var b [2]uint64
	for i, x := range m.v {
		b[i] = math.Float64bits(x)
	}
	return b
}

// String implements fmt.Stringer.
func (m M128d) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. Numeric verbs apply to each lane in
// turn; %b, %o, %x and %X format the raw lane bits instead.
func (m M128d) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		b := m.Bits()
		formatLanes(f, verb, "M128d", b[:])
	default:
		formatLanes(f, verb, "M128d", m.v[:])
	}
}
