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

// M256i is a 256-bit integer register with a little-endian byte image,
// viewable at any lane width. The zero value is the all-zero register.
type M256i struct {
	v [32]byte
}

// M256iFromI8x32 builds a register from thirty-two int8 lanes.
func M256iFromI8x32(a [32]int8) M256i {
	var m M256i
	for i, x := range a {
		m.v[i] = byte(x)
	}
	return m
}

// I8x32 returns the register as thirty-two int8 lanes.
func (m M256i) I8x32() [32]int8 {
	var a [32]int8
	for i, x := range m.v {
		a[i] = int8(x)
	}
	return a
}

// M256iFromU8x32 builds a register from thirty-two uint8 lanes.
func M256iFromU8x32(a [32]uint8) M256i {
	return M256i{v: a}
}

// U8x32 returns the register as thirty-two uint8 lanes.
func (m M256i) U8x32() [32]uint8 {
	return m.v
}

// M256iFromI16x16 builds a register from sixteen int16 lanes.
func M256iFromI16x16(a [16]int16) M256i {
	var m M256i
	for i, x := range a {
		putI16(m.v[:], i, x)
	}
	return m
}

// I16x16 returns the register as sixteen int16 lanes.
func (m M256i) I16x16() [16]int16 {
	var a [16]int16
	for i := range a {
		a[i] = getI16(m.v[:], i)
	}
	return a
}

// M256iFromU16x16 builds a register from sixteen uint16 lanes.
func M256iFromU16x16(a [16]uint16) M256i {
	var m M256i
	for i, x := range a {
		putU16(m.v[:], i, x)
	}
	return m
}

// U16x16 returns the register as sixteen uint16 lanes.
func (m M256i) U16x16() [16]uint16 {
	var a [16]uint16
	for i := range a {
		a[i] = getU16(m.v[:], i)
	}
	return a
}

// M256iFromI32x8 builds a register from eight int32 lanes.
func M256iFromI32x8(a [8]int32) M256i {
	var m M256i
	for i, x := range a {
		putI32(m.v[:], i, x)
	}
	return m
}

// I32x8 returns the register as eight int32 lanes.
func (m M256i) I32x8() [8]int32 {
	var a [8]int32
	for i := range a {
		a[i] = getI32(m.v[:], i)
	}
	return a
}

// M256iFromU32x8 builds a register from eight uint32 lanes.
func M256iFromU32x8(a [8]uint32) M256i {
	var m M256i
	for i, x := range a {
		putU32(m.v[:], i, x)
	}
	return m
}

// U32x8 returns the register as eight uint32 lanes.
func (m M256i) U32x8() [8]uint32 {
	var a [8]uint32
	for i := range a {
		a[i] = getU32(m.v[:], i)
	}
	return a
}

// M256iFromI64x4 builds a register from four int64 lanes.
func M256iFromI64x4(a [4]int64) M256i {
	var m M256i
	for i, x := range a {
		putI64(m.v[:], i, x)
	}
	return m
}

// I64x4 returns the register as four int64 lanes.
func (m M256i) I64x4() [4]int64 {
	var a [4]int64
	for i := range a {
		a[i] = getI64(m.v[:], i)
	}
	return a
}

// M256iFromU64x4 builds a register from four uint64 lanes.
func M256iFromU64x4(a [4]uint64) M256i {
	var m M256i
	for i, x := range a {
		putU64(m.v[:], i, x)
	}
	return m
}

// U64x4 returns the register as four uint64 lanes.
func (m M256i) U64x4() [4]uint64 {
	var a [4]uint64
	for i := range a {
		a[i] = getU64(m.v[:], i)
	}
	return a
}

// String implements fmt.Stringer.
func (m M256i) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. The default view is eight int32
// lanes; %b, %o, %x and %X use the unsigned view.
func (m M256i) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		u := m.U32x8()
		formatLanes(f, verb, "M256i", u[:])
	default:
		s := m.I32x8()
		formatLanes(f, verb, "M256i", s[:])
	}
}
