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

// M512i is a 512-bit integer register with a little-endian byte image,
// viewable at any lane width. The zero value is the all-zero register.
type M512i struct {
	v [64]byte
}

// M512iFromI8x64 builds a register from sixty-four int8 lanes.
func M512iFromI8x64(a [64]int8) M512i {
	var m M512i
	for i, x := range a {
		m.v[i] = byte(x)
	}
	return m
}

// I8x64 returns the register as sixty-four int8 lanes.
func (m M512i) I8x64() [64]int8 {
	var a [64]int8
	for i, x := range m.v {
		a[i] = int8(x)
	}
	return a
}

// M512iFromU8x64 builds a register from sixty-four uint8 lanes.
func M512iFromU8x64(a [64]uint8) M512i {
	return M512i{v: a}
}

// U8x64 returns the register as sixty-four uint8 lanes.
func (m M512i) U8x64() [64]uint8 {
	return m.v
}

// M512iFromI16x32 builds a register from thirty-two int16 lanes.
func M512iFromI16x32(a [32]int16) M512i {
	var m M512i
	for i, x := range a {
		putI16(m.v[:], i, x)
	}
	return m
}

// I16x32 returns the register as thirty-two int16 lanes.
func (m M512i) I16x32() [32]int16 {
	var a [32]int16
	for i := range a {
		a[i] = getI16(m.v[:], i)
	}
	return a
}

// M512iFromU16x32 builds a register from thirty-two uint16 lanes.
func M512iFromU16x32(a [32]uint16) M512i {
	var m M512i
	for i, x := range a {
		putU16(m.v[:], i, x)
	}
	return m
}

// U16x32 returns the register as thirty-two uint16 lanes.
func (m M512i) U16x32() [32]uint16 {
	var a [32]uint16
	for i := range a {
		a[i] = getU16(m.v[:], i)
	}
	return a
}

// M512iFromI32x16 builds a register from sixteen int32 lanes.
func M512iFromI32x16(a [16]int32) M512i {
	var m M512i
	for i, x := range a {
		putI32(m.v[:], i, x)
	}
	return m
}

// I32x16 returns the register as sixteen int32 lanes.
func (m M512i) I32x16() [16]int32 {
	var a [16]int32
	for i := range a {
		a[i] = getI32(m.v[:], i)
	}
	return a
}

// M512iFromU32x16 builds a register from sixteen uint32 lanes.
func M512iFromU32x16(a [16]uint32) M512i {
	var m M512i
	for i, x := range a {
		putU32(m.v[:], i, x)
	}
	return m
}

// U32x16 returns the register as sixteen uint32 lanes.
func (m M512i) U32x16() [16]uint32 {
	var a [16]uint32
	for i := range a {
		a[i] = getU32(m.v[:], i)
	}
	return a
}

// M512iFromI64x8 builds a register from eight int64 lanes.
func M512iFromI64x8(a [8]int64) M512i {
	var m M512i
	for i, x := range a {
		putI64(m.v[:], i, x)
	}
	return m
}

// I64x8 returns the register as eight int64 lanes.
func (m M512i) I64x8() [8]int64 {
	var a [8]int64
	for i := range a {
		a[i] = getI64(m.v[:], i)
	}
	return a
}

// M512iFromU64x8 builds a register from eight uint64 lanes.
func M512iFromU64x8(a [8]uint64) M512i {
	var m M512i
	for i, x := range a {
		putU64(m.v[:], i, x)
	}
	return m
}

// U64x8 returns the register as eight uint64 lanes.
func (m M512i) U64x8() [8]uint64 {
	var a [8]uint64
	for i := range a {
		a[i] = getU64(m.v[:], i)
	}
	return a
}

// String implements fmt.Stringer.
func (m M512i) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter. The default view is sixteen int32
// lanes; %b, %o, %x and %X use the unsigned view.
func (m M512i) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		u := m.U32x16()
		formatLanes(f, verb, "M512i", u[:])
	default:
		s := m.I32x16()
		formatLanes(f, verb, "M512i", s[:])
	}
}
