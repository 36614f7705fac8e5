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

import "math"

// This file holds the typed control values consumed by operations that
// the hardware encodes as immediate bytes, along with their evaluators.
// Every constant carries the exact hardware encoding. Evaluators mask
// the control to its encoded field width first, so any value a caller
// manages to convert in still selects some documented behavior instead
// of panicking, the same way the instruction would decode it.

// Mask8 is an 8-lane bitmask; bit i set means lane i is active.
type Mask8 = uint8

// Mask16 is a 16-lane bitmask; bit i set means lane i is active.
type Mask16 = uint16

// Mask32 is a 32-lane bitmask; bit i set means lane i is active.
type Mask32 = uint32

// Mask64 is a 64-lane bitmask; bit i set means lane i is active.
type Mask64 = uint64

// CmpOp selects a floating-point comparison predicate for the
// CmpOpMask family. Values are the VCMPPS/VCMPPD immediate encodings.
// The signaling (OS/US) and quiet (OQ/UQ) variants of one predicate
// compare identically; they differ only in which exceptions the
// hardware raises, and this model raises none.
type CmpOp int32

const (
	CmpEqualOrdered             CmpOp = 0x00 // _CMP_EQ_OQ
	CmpLessThanOrdered          CmpOp = 0x01 // _CMP_LT_OS
	CmpLessEqualOrdered         CmpOp = 0x02 // _CMP_LE_OS
	CmpUnordered                CmpOp = 0x03 // _CMP_UNORD_Q
	CmpNotEqualUnordered        CmpOp = 0x04 // _CMP_NEQ_UQ
	CmpNotLessThanUnordered     CmpOp = 0x05 // _CMP_NLT_US
	CmpNotLessEqualUnordered    CmpOp = 0x06 // _CMP_NLE_US
	CmpOrdered                  CmpOp = 0x07 // _CMP_ORD_Q
	CmpEqualUnordered           CmpOp = 0x08 // _CMP_EQ_UQ
	CmpNotGreaterEqualUnordered CmpOp = 0x09 // _CMP_NGE_US
	CmpNotGreaterThanUnordered  CmpOp = 0x0A // _CMP_NGT_US
	CmpFalse                    CmpOp = 0x0B // _CMP_FALSE_OQ
	CmpNotEqualOrdered          CmpOp = 0x0C // _CMP_NEQ_OQ
	CmpGreaterEqualOrdered      CmpOp = 0x0D // _CMP_GE_OS
	CmpGreaterThanOrdered       CmpOp = 0x0E // _CMP_GT_OS
	CmpTrue                     CmpOp = 0x0F // _CMP_TRUE_UQ
)

// cmpOpF64 evaluates one comparison predicate. The encoding space is
// five bits; the upper encodings repeat the lower sixteen with
// signaling behavior, so only the low four bits pick the predicate.
func cmpOpF64(op CmpOp, x, y float64) bool {
	unord := math.IsNaN(x) || math.IsNaN(y)
	switch op & 0x0F {
	case 0x00:
		return !unord && x == y
	case 0x01:
		return !unord && x < y
	case 0x02:
		return !unord && x <= y
	case 0x03:
		return unord
	case 0x04:
		return unord || x != y
	case 0x05:
		return unord || !(x < y)
	case 0x06:
		return unord || !(x <= y)
	case 0x07:
		return !unord
	case 0x08:
		return unord || x == y
	case 0x09:
		return unord || !(x >= y)
	case 0x0A:
		return unord || !(x > y)
	case 0x0B:
		return false
	case 0x0C:
		return !unord && x != y
	case 0x0D:
		return !unord && x >= y
	case 0x0E:
		return !unord && x > y
	default:
		return true
	}
}

func cmpOpF32(op CmpOp, x, y float32) bool {
	return cmpOpF64(op, float64(x), float64(y))
}

// CmpIntOp selects an integer comparison predicate for the AVX-512
// style CmpOpMask family. Values are the _MM_CMPINT_ encodings.
type CmpIntOp int32

const (
	CmpIntEq    CmpIntOp = 0 // _MM_CMPINT_EQ
	CmpIntLt    CmpIntOp = 1 // _MM_CMPINT_LT
	CmpIntLe    CmpIntOp = 2 // _MM_CMPINT_LE
	CmpIntFalse CmpIntOp = 3 // _MM_CMPINT_FALSE
	CmpIntNeq   CmpIntOp = 4 // _MM_CMPINT_NE
	CmpIntNlt   CmpIntOp = 5 // _MM_CMPINT_NLT
	CmpIntNle   CmpIntOp = 6 // _MM_CMPINT_NLE
	CmpIntTrue  CmpIntOp = 7 // _MM_CMPINT_TRUE
)

// intLane covers the integer lane types of this package.
type intLane interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// cmpIntOp evaluates one integer predicate. The encoding is three bits.
func cmpIntOp[T intLane](op CmpIntOp, x, y T) bool {
	switch op & 7 {
	case 0:
		return x == y
	case 1:
		return x < y
	case 2:
		return x <= y
	case 3:
		return false
	case 4:
		return x != y
	case 5:
		return !(x < y)
	case 6:
		return !(x <= y)
	default:
		return true
	}
}

// RoundMode selects the rounding direction for the Round family.
// Values are the _MM_FROUND_ composites; all carry the no-exception
// bit the way ROUNDPS is normally issued.
type RoundMode int32

const (
	RoundNearest RoundMode = 0x08 // _MM_FROUND_TO_NEAREST_INT | _MM_FROUND_NO_EXC
	RoundNegInf  RoundMode = 0x09 // _MM_FROUND_TO_NEG_INF | _MM_FROUND_NO_EXC
	RoundPosInf  RoundMode = 0x0A // _MM_FROUND_TO_POS_INF | _MM_FROUND_NO_EXC
	RoundZero    RoundMode = 0x0B // _MM_FROUND_TO_ZERO | _MM_FROUND_NO_EXC
	RoundCurrent RoundMode = 0x0C // _MM_FROUND_CUR_DIRECTION | _MM_FROUND_NO_EXC
)

// roundF64 rounds to an integral value in the selected direction.
// The model has no MXCSR, so the current-direction mode rounds to
// nearest even, Go's ambient behavior.
func roundF64(x float64, mode RoundMode) float64 {
	if mode&0x04 != 0 {
		return math.RoundToEven(x)
	}
	switch mode & 0x03 {
	case 0x00:
		return math.RoundToEven(x)
	case 0x01:
		return math.Floor(x)
	case 0x02:
		return math.Ceil(x)
	default:
		return math.Trunc(x)
	}
}

// roundF32 rounds to an integral value in the selected direction.
// Rounding through float64 is exact: every float32 and every reachable
// integral result round-trips.
func roundF32(x float32, mode RoundMode) float32 {
	return float32(roundF64(float64(x), mode))
}

// SearchCtl composes the control byte of the string search family
// (PCMPISTRI and friends) from _SIDD_ bits: a lane interpretation, an
// aggregation, an optional polarity, and an output selector. The
// output bit is shared: in index searches it picks first or last
// match, in mask searches it picks bit or unit mask output.
type SearchCtl int32

const (
	// Lane interpretation (bits 1:0).
	SearchU8  SearchCtl = 0x00 // _SIDD_UBYTE_OPS
	SearchU16 SearchCtl = 0x01 // _SIDD_UWORD_OPS
	SearchI8  SearchCtl = 0x02 // _SIDD_SBYTE_OPS
	SearchI16 SearchCtl = 0x03 // _SIDD_SWORD_OPS

	// Aggregation (bits 3:2).
	SearchEqAny     SearchCtl = 0x00 // _SIDD_CMP_EQUAL_ANY
	SearchRanges    SearchCtl = 0x04 // _SIDD_CMP_RANGES
	SearchEqEach    SearchCtl = 0x08 // _SIDD_CMP_EQUAL_EACH
	SearchEqOrdered SearchCtl = 0x0C // _SIDD_CMP_EQUAL_ORDERED

	// Polarity (bits 5:4).
	SearchNegate       SearchCtl = 0x10 // _SIDD_NEGATIVE_POLARITY
	SearchMaskedNegate SearchCtl = 0x30 // _SIDD_MASKED_NEGATIVE_POLARITY

	// Output (bit 6).
	SearchFirst    SearchCtl = 0x00 // _SIDD_LEAST_SIGNIFICANT
	SearchLast     SearchCtl = 0x40 // _SIDD_MOST_SIGNIFICANT
	SearchBitMask  SearchCtl = 0x00 // _SIDD_BIT_MASK
	SearchUnitMask SearchCtl = 0x40 // _SIDD_UNIT_MASK
)
