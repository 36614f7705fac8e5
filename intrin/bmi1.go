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

import "math/bits"

// AndNotU32 computes (NOT a) AND b.
// Models _andn_u32 (ANDN).
func AndNotU32(a, b uint32) uint32 {
	return ^a & b
}

// AndNotU64 computes (NOT a) AND b.
// Models _andn_u64 (ANDN).
func AndNotU64(a, b uint64) uint64 {
	return ^a & b
}

// BitExtractU32 extracts length bits of a starting at start. Both
// controls are read modulo 256; a start at or past the top returns 0
// and an overlong length keeps every bit above start.
// Models _bextr_u32 (BEXTR).
func BitExtractU32(a, start, length uint32) uint32 {
	start &= 0xFF
	length &= 0xFF
	if start >= 32 {
		return 0
	}
	a >>= start
	if length >= 32 {
		return a
	}
	return a & (1<<length - 1)
}

// BitExtractU64 extracts length bits of a starting at start. Both
// controls are read modulo 256; a start at or past the top returns 0
// and an overlong length keeps every bit above start.
// Models _bextr_u64 (BEXTR).
func BitExtractU64(a uint64, start, length uint32) uint64 {
	start &= 0xFF
	length &= 0xFF
	if start >= 64 {
		return 0
	}
	a >>= start
	if length >= 64 {
		return a
	}
	return a & (1<<length - 1)
}

// BitExtract2U32 extracts bits of a under a packed control word: bits
// 0..7 hold the start and bits 8..15 the length.
// Models _bextr2_u32 (BEXTR).
func BitExtract2U32(a, control uint32) uint32 {
	return BitExtractU32(a, control&0xFF, control>>8&0xFF)
}

// BitExtract2U64 extracts bits of a under a packed control word: bits
// 0..7 hold the start and bits 8..15 the length.
// Models _bextr2_u64 (BEXTR).
func BitExtract2U64(a, control uint64) uint64 {
	return BitExtractU64(a, uint32(control&0xFF), uint32(control>>8&0xFF))
}

// BitLowestSetValueU32 isolates the lowest set bit of a. Zero input
// gives zero.
// Models _blsi_u32 (BLSI).
func BitLowestSetValueU32(a uint32) uint32 {
	return a & -a
}

// BitLowestSetValueU64 isolates the lowest set bit of a. Zero input
// gives zero.
// Models _blsi_u64 (BLSI).
func BitLowestSetValueU64(a uint64) uint64 {
	return a & -a
}

// BitLowestSetMaskU32 masks all bits up to and including the lowest
// set bit of a. Zero input gives all ones.
// Models _blsmsk_u32 (BLSMSK).
func BitLowestSetMaskU32(a uint32) uint32 {
	return a ^ (a - 1)
}

// BitLowestSetMaskU64 masks all bits up to and including the lowest
// set bit of a. Zero input gives all ones.
// Models _blsmsk_u64 (BLSMSK).
func BitLowestSetMaskU64(a uint64) uint64 {
	return a ^ (a - 1)
}

// BitLowestSetResetU32 clears the lowest set bit of a. Zero input
// gives zero.
// Models _blsr_u32 (BLSR).
func BitLowestSetResetU32(a uint32) uint32 {
	return a & (a - 1)
}

// BitLowestSetResetU64 clears the lowest set bit of a. Zero input
// gives zero.
// Models _blsr_u64 (BLSR).
func BitLowestSetResetU64(a uint64) uint64 {
	return a & (a - 1)
}

// TrailingZeroCountU32 counts the trailing zero bits of a. Zero
// input gives 32.
// Models _tzcnt_u32 (TZCNT).
func TrailingZeroCountU32(a uint32) uint32 {
	return uint32(bits.TrailingZeros32(a))
}

// TrailingZeroCountU64 counts the trailing zero bits of a. Zero
// input gives 64.
// Models _tzcnt_u64 (TZCNT).
func TrailingZeroCountU64(a uint64) uint64 {
	return uint64(bits.TrailingZeros64(a))
}
