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
	"encoding/binary"
	"fmt"
	"io"
)

// This file provides the little-endian lane accessors shared by the
// integer register types and the lane saturation helpers used by the
// packed arithmetic operations. Lane i of width w lives at bytes
// [w*i, w*i+w) of the register image.

func getU16(b []byte, lane int) uint16 { return binary.LittleEndian.Uint16(b[2*lane:]) }
func getU32(b []byte, lane int) uint32 { return binary.LittleEndian.Uint32(b[4*lane:]) }
func getU64(b []byte, lane int) uint64 { return binary.LittleEndian.Uint64(b[8*lane:]) }

func putU16(b []byte, lane int, v uint16) { binary.LittleEndian.PutUint16(b[2*lane:], v) }
func putU32(b []byte, lane int, v uint32) { binary.LittleEndian.PutUint32(b[4*lane:], v) }
func putU64(b []byte, lane int, v uint64) { binary.LittleEndian.PutUint64(b[8*lane:], v) }

func getI16(b []byte, lane int) int16 { return int16(getU16(b, lane)) }
func getI32(b []byte, lane int) int32 { return int32(getU32(b, lane)) }
func getI64(b []byte, lane int) int64 { return int64(getU64(b, lane)) }

func putI16(b []byte, lane int, v int16) { putU16(b, lane, uint16(v)) }
func putI32(b []byte, lane int, v int32) { putU32(b, lane, uint32(v)) }
func putI64(b []byte, lane int, v int64) { putU64(b, lane, uint64(v)) }

// satI8 clamps a widened intermediate to the int8 range.
func satI8(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

// satU8 clamps a widened intermediate to the uint8 range.
func satU8(v int32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// satI16 clamps a widened intermediate to the int16 range.
func satI16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// satU16 clamps a widened intermediate to the uint16 range.
func satU16(v int32) uint16 {
	if v > 65535 {
		return 65535
	}
	if v < 0 {
		return 0
	}
	return uint16(v)
}

// minF32 follows the MINPS operand order rule: when the lanes are
// equal, zeroes of opposite sign, or either is NaN, the second operand
// wins.
func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// maxF32 follows the MAXPS operand order rule: when the lanes are
// equal, zeroes of opposite sign, or either is NaN, the second operand
// wins.
func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minF64 is minF32 for float64 lanes (MINPD).
func minF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// maxF64 is maxF32 for float64 lanes (MAXPD).
func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// maskBits32 is all ones when b is true, for comparison mask lanes.
func maskBits32(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

// maskBits64 is all ones when b is true, for comparison mask lanes.
func maskBits64(b bool) uint64 {
	if b {
		return 0xFFFFFFFFFFFFFFFF
	}
	return 0
}

// formatLanes writes lanes as "Name(l0, l1, ...)" using the verb and
// flags captured in f for each lane.
func formatLanes[T any](f fmt.State, verb rune, name string, lanes []T) {
	spec := fmt.FormatString(f, verb)
	io.WriteString(f, name)
	io.WriteString(f, "(")
	for i, v := range lanes {
		if i > 0 {
			io.WriteString(f, ", ")
		}
		fmt.Fprintf(f, spec, v)
	}
	io.WriteString(f, ")")
}
