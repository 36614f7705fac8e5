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

import "fmt"

// M128i is a 128-bit integer register. It carries no lane type of its
// own: the byte image is little endian, and each view method decodes
// the same sixteen bytes at a different lane width. The zero value is
// the all-zero register.
type M128i struct {
	v [16]byte
}

// M128iFromI8x16 builds a register from sixteen int8 lanes.
func M128iFromI8x16(a [16]int8) M128i {
	var m M128i
	for i, x := range a {
		m.v[i] = byte(x)
	}
	return m
}

// I8x16 returns the register as sixteen int8 lanes.
func (m M128i) I8x16() [16]int8 {
	var a [16]int8
	for i, x := range m.v {
		a[i] = int8(x)
	}
	return a
}

// M128iFromU8x16 builds a register from sixteen uint8 lanes.
func M128iFromU8x16(a [16]uint8) M128i {
	return M128i{v: a}
}

// U8x16 returns the register as sixteen uint8 lanes.
func (m M128i) U8x16() [16]uint8 {
	return m.v
}

// M128iFromI16x8 builds a register from eight int16 lanes.
func M128iFromI16x8(a [8]int16) M128i {
	var m M128i
	for i, x := range a {
		putI16(m.v[:], i, x)
	}
	return m
}

// I16x8 returns the register as eight int16 lanes.
func (m M128i) I16x8() [8]int16 {
	var a [8]int16
	for i := range a {
		a[i] = getI16(m.v[:], i)
	}
	return a
}

// M128iFromU16x8 builds a register from eight uint16 lanes.
func M128iFromU16x8(a [8]uint16) M128i {
	var m M128i
	for i, x := range a {
		putU16(m.v[:], i, x)
	}
	return m
}

// U16x8 returns the register as eight uint16 lanes.
func (m M128i) U16x8() [8]uint16 {
	var a [8]uint16
	for i := range a {
		a[i] = getU16(m.v[:], i)
	}
	return a
}

// M128iFromI32x4 builds a register from four int32 lanes.
func M128iFromI32x4(a [4]int32) M128i {
	var m M128i
	for i, x := range a {
		putI32(m.v[:], i, x)
	}
	return m
}

// I32x4 returns the register as four int32 lanes.
func (m M128i) I32x4() [4]int32 {
	var a [4]int32
	for i := range a {
		a[i] = getI32(m.v[:], i)
	}
	return a
}

// M128iFromU32x4 builds a register from four uint32 lanes.
func M128iFromU32x4(a [4]uint32) M128i {
	var m M128i
	for i, x := range a {
		putU32(m.v[:], i, x)
	}
	return m
}

// U32x4 returns the register as four uint32 lanes.
func (m M128i) U32x4() [4]uint32 {
	var a [4]uint32
	for i := range a {
		a[i] = getU32(m.v[:], i)
	}
	return a
}

// M128iFromI64x2 builds a register from two int64 lanes.
func M128iFromI64x2(a [2]int64) M128i {
	var m M128i
	for i, x := range a {
		putI64(m.v[:], i, x)
	}
	return m
}

// I64x2 returns the register as two int64 lanes.
func (m M128i) I64x2() [2]int64 {
	var a [2]int64
	for i := range a {
		a[i] = getI64(m.v[:], i)
	}
	return a
}

// M128iFromU64x2 builds a register from two uint64 lanes.
func M128iFromU64x2(a [2]uint64) M128i {
	var m M128i
	for i, x := range a {
		putU64(m.v[:], i, x)
	}
	return m
}

// U64x2 returns the register as two uint64 lanes.
func (m M128i) U64x2() [2]uint64 {
	var a [2]uint64
	for i := range a {
		a[i] = getU64(m.v[:], i)
	}
	return a
}

// String implements fmt.Stringer.
func (m M128i) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. The default view is four int32
// lanes; %b, %o, %x and %X use the unsigned view.
func (m M128i) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		u := m.U32x4()
		formatLanes(f, verb, "M128i", u[:])
	default:
		s := m.I32x4()
		formatLanes(f, verb, "M128i", s[:])
	}
}
