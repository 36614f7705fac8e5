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

// M256d is a 256-bit register holding four float64 lanes.
// The zero value is the all-zero register.
type M256d struct {
	v [4]float64
}

// M256dFromArray builds a register from lanes in index order.
func M256dFromArray(a [4]float64) M256d {
	return M256d{v: a}
}

// Array returns the lanes in index order.
func (m M256d) Array() [4]float64 {
	return m.v
}

// M256dFromBits reinterprets four bit patterns as float64 lanes.
// NaN payloads survive the trip.
func M256dFromBits(b [4]uint64) M256d {
	var m M256d
	for i, x := range b {
		m.v[i] = math.Float64frombits(x)
	}
	return m
}

// Bits returns the raw bit pattern of each lane.
func (m M256d) Bits() [4]uint64 {
	var b [4]uint64
	for i, x := range m.v {
		b[i] = math.Float64bits(x)
	}
	return b
}

// String implements fmt.Stringer.
func (m M256d) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. Numeric verbs apply to each lane in
// turn; %b, %o, %x and %X format the raw lane bits instead.
func (m M256d) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		b := m.Bits()
		formatLanes(f, verb, "M256d", b[:])
	default:
		formatLanes(f, verb, "M256d", m.v[:])
	}
}
