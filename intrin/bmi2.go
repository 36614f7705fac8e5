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

// BitZeroHighIndexU32 clears every bit of a at or above index. Only
// the low 8 bits of the index are read; values of 32 and up leave a
// unchanged.
// Models _bzhi_u32 (BZHI).
func BitZeroHighIndexU32(a, index uint32) uint32 {
	index &= 0xFF
	if index >= 32 {
		return a
	}
	return a & (1<<index - 1)
}

// BitZeroHighIndexU64 clears every bit of a at or above index. Only
// the low 8 bits of the index are read; values of 64 and up leave a
// unchanged.
// Models _bzhi_u64 (BZHI).
func BitZeroHighIndexU64(a uint64, index uint32) uint64 {
	index &= 0xFF
	if index >= 64 {
		return a
	}
	return a & (1<<index - 1)
}

// MulExtendedU32 multiplies a and b, returning the low 32 bits of
// the product and storing the high 32 in extra.
// Models _mulx_u32 (MULX).
func MulExtendedU32(a, b uint32, extra *uint32) uint32 {
	hi, lo := bits.Mul32(a, b)
	*extra = hi
	return lo
}

// MulExtendedU64 multiplies a and b, returning the low 64 bits of
// the product and storing the high 64 in extra.
// Models _mulx_u64 (MULX).
func MulExtendedU64(a, b uint64, extra *uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	*extra = hi
	return lo
}

// PopulationDepositU32 scatters the low bits of a into the set bit
// positions of mask, low to high. All other result bits are zero.
// Models _pdep_u32 (PDEP).
func PopulationDepositU32(a, mask uint32) uint32 {
	var r uint32
	for m := mask; m != 0; m &= m - 1 {
		if a&1 != 0 {
			r |= m & -m
		}
		a >>= 1
	}
	return r
}

// PopulationDepositU64 scatters the low bits of a into the set bit
// positions of mask, low to high. All other result bits are zero.
// Models _pdep_u64 (PDEP).
func PopulationDepositU64(a, mask uint64) uint64 {
	var r uint64
	for m := mask; m != 0; m &= m - 1 {
		if a&1 != 0 {
			r |= m & -m
		}
		a >>= 1
	}
	return r
}

// PopulationExtractU32 gathers the bits of a at the set bit
// positions of mask into the low bits of the result, low to high.
// Models _pext_u32 (PEXT).
func PopulationExtractU32(a, mask uint32) uint32 {
	var r uint32
	i := uint(0)
	for m := mask; m != 0; m &= m - 1 {
		if a&(m&-m) != 0 {
			r |= 1 << i
		}
		i++
	}
	return r
}

// PopulationExtractU64 gathers the bits of a at the set bit
// positions of mask into the low bits of the result, low to high.
// Models _pext_u64 (PEXT).
func PopulationExtractU64(a, mask uint64) uint64 {
	var r uint64
	i := uint(0)
	for m := mask; m != 0; m &= m - 1 {
		if a&(m&-m) != 0 {
			r |= 1 << i
		}
		i++
	}
	return r
}
