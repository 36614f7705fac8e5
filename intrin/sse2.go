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

// This file models the SSE2 instruction family: integer operations on
// M128i, float64 operations on M128d, the converts between them, and
// the bit-pattern casts that join all three 128-bit register views.

// AddI8M128i performs lanewise wrapping addition of int8 lanes.
// Models _mm_add_epi8 (PADDB).
func AddI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return M128iFromI8x16(r)
}

// AddI16M128i performs lanewise wrapping addition of int16 lanes.
// Models _mm_add_epi16 (PADDW).
func AddI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return M128iFromI16x8(r)
}

// AddI32M128i performs lanewise wrapping addition of int32 lanes.
// Models _mm_add_epi32 (PADDD).
func AddI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return M128iFromI32x4(r)
}

// AddI64M128i performs lanewise wrapping addition of int64 lanes.
// Models _mm_add_epi64 (PADDQ).
func AddI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	var r [2]int64
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return M128iFromI64x2(r)
}

// AddM128d performs lanewise addition.
// Models _mm_add_pd (ADDPD).
func AddM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// AddM128dS adds the low lanes; the high lane carries over from a.
// Models _mm_add_sd (ADDSD).
func AddM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = a.v[0] + b.v[0]
	return r
}

// AddSaturatingI8M128i performs lanewise saturating addition of int8
// lanes.
// Models _mm_adds_epi8 (PADDSB).
func AddSaturatingI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = satI8(int32(x[i]) + int32(y[i]))
	}
	return M128iFromI8x16(r)
}

// AddSaturatingI16M128i performs lanewise saturating addition of int16
// lanes.
// Models _mm_adds_epi16 (PADDSW).
func AddSaturatingI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = satI16(int32(x[i]) + int32(y[i]))
	}
	return M128iFromI16x8(r)
}

// AddSaturatingU8M128i performs lanewise saturating addition of uint8
// lanes.
// Models _mm_adds_epu8 (PADDUSB).
func AddSaturatingU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [16]uint8
	for i := range r {
		r[i] = satU8(int32(x[i]) + int32(y[i]))
	}
	return M128iFromU8x16(r)
}

// AddSaturatingU16M128i performs lanewise saturating addition of
// uint16 lanes.
// Models _mm_adds_epu16 (PADDUSW).
func AddSaturatingU16M128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = satU16(int32(x[i]) + int32(y[i]))
	}
	return M128iFromU16x8(r)
}

// AndM128d performs a bitwise AND of the register images.
// Models _mm_and_pd (ANDPD).
func AndM128d(a, b M128d) M128d {
	ab, bb := a.Bits(), b.Bits()
	return M128dFromBits([2]uint64{ab[0] & bb[0], ab[1] & bb[1]})
}

// AndM128i performs a bitwise AND.
// Models _mm_and_si128 (PAND).
func AndM128i(a, b M128i) M128i {
	var r M128i
	for i := range r.v {
		r.v[i] = a.v[i] & b.v[i]
	}
	return r
}

// AndNotM128d performs a bitwise (NOT a) AND b of the register images.
// Models _mm_andnot_pd (ANDNPD).
func AndNotM128d(a, b M128d) M128d {
	ab, bb := a.Bits(), b.Bits()
	return M128dFromBits([2]uint64{^ab[0] & bb[0], ^ab[1] & bb[1]})
}

// AndNotM128i performs a bitwise (NOT a) AND b.
// Models _mm_andnot_si128 (PANDN).
func AndNotM128i(a, b M128i) M128i {
	var r M128i
	for i := range r.v {
		r.v[i] = ^a.v[i] & b.v[i]
	}
	return r
}

// OrM128d performs a bitwise OR of the register images.
// Models _mm_or_pd (ORPD).
func OrM128d(a, b M128d) M128d {
	ab, bb := a.Bits(), b.Bits()
	return M128dFromBits([2]uint64{ab[0] | bb[0], ab[1] | bb[1]})
}

// OrM128i performs a bitwise OR.
// Models _mm_or_si128 (POR).
func OrM128i(a, b M128i) M128i {
	var r M128i
	for i := range r.v {
		r.v[i] = a.v[i] | b.v[i]
	}
	return r
}

// XorM128d performs a bitwise XOR of the register images.
// Models _mm_xor_pd (XORPD).
func XorM128d(a, b M128d) M128d {
	ab, bb := a.Bits(), b.Bits()
	return M128dFromBits([2]uint64{ab[0] ^ bb[0], ab[1] ^ bb[1]})
}

// XorM128i performs a bitwise XOR.
// Models _mm_xor_si128 (PXOR).
func XorM128i(a, b M128i) M128i {
	var r M128i
	for i := range r.v {
		r.v[i] = a.v[i] ^ b.v[i]
	}
	return r
}

// AverageU8M128i performs a lanewise rounded average of uint8 lanes,
// (a + b + 1) >> 1.
// Models _mm_avg_epu8 (PAVGB).
func AverageU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [16]uint8
	for i := range r {
		r[i] = uint8((uint16(x[i]) + uint16(y[i]) + 1) >> 1)
	}
	return M128iFromU8x16(r)
}

// AverageU16M128i performs a lanewise rounded average of uint16 lanes,
// (a + b + 1) >> 1.
// Models _mm_avg_epu16 (PAVGW).
func AverageU16M128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = uint16((uint32(x[i]) + uint32(y[i]) + 1) >> 1)
	}
	return M128iFromU16x8(r)
}

// ByteShlImmU128M128i shifts the whole register left by imm bytes,
// toward the high lanes. Shifts of 16 or more clear the register.
// Models _mm_slli_si128 (PSLLDQ).
func ByteShlImmU128M128i(a M128i, imm int) M128i {
	var r M128i
	if imm < 0 || imm > 15 {
		return r
	}
	copy(r.v[imm:], a.v[:16-imm])
	return r
}

// ByteShrImmU128M128i shifts the whole register right by imm bytes,
// toward the low lanes. Shifts of 16 or more clear the register.
// Models _mm_srli_si128 (PSRLDQ).
func ByteShrImmU128M128i(a M128i, imm int) M128i {
	var r M128i
	if imm < 0 || imm > 15 {
		return r
	}
	copy(r.v[:16-imm], a.v[imm:])
	return r
}

// CastToM128FromM128d reinterprets the register image, no conversion.
// Models _mm_castpd_ps.
func CastToM128FromM128d(a M128d) M128 {
	return M128FromBits(CastToM128iFromM128d(a).U32x4())
}

// CastToM128iFromM128d reinterprets the register image, no conversion.
// Models _mm_castpd_si128.
func CastToM128iFromM128d(a M128d) M128i {
	return M128iFromU64x2(a.Bits())
}

// CastToM128dFromM128 reinterprets the register image, no conversion.
// Models _mm_castps_pd.
func CastToM128dFromM128(a M128) M128d {
	return M128dFromBits(CastToM128iFromM128(a).U64x2())
}

// CastToM128iFromM128 reinterprets the register image, no conversion.
// Models _mm_castps_si128.
func CastToM128iFromM128(a M128) M128i {
	return M128iFromU32x4(a.Bits())
}

// CastToM128dFromM128i reinterprets the register image, no conversion.
// Models _mm_castsi128_pd.
func CastToM128dFromM128i(a M128i) M128d {
	return M128dFromBits(a.U64x2())
}

// CastToM128FromM128i reinterprets the register image, no conversion.
// Models _mm_castsi128_ps.
func CastToM128FromM128i(a M128i) M128 {
	return M128FromBits(a.U32x4())
}

// CmpEqMaskI8M128i marks int8 lanes where a == b.
// Models _mm_cmpeq_epi8 (PCMPEQB).
func CmpEqMaskI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		if x[i] == y[i] {
			r[i] = -1
		}
	}
	return M128iFromI8x16(r)
}

// CmpEqMaskI16M128i marks int16 lanes where a == b.
// Models _mm_cmpeq_epi16 (PCMPEQW).
func CmpEqMaskI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		if x[i] == y[i] {
			r[i] = -1
		}
	}
	return M128iFromI16x8(r)
}

// CmpEqMaskI32M128i marks int32 lanes where a == b.
// Models _mm_cmpeq_epi32 (PCMPEQD).
func CmpEqMaskI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		if x[i] == y[i] {
			r[i] = -1
		}
	}
	return M128iFromI32x4(r)
}

// CmpGtMaskI8M128i marks int8 lanes where a > b.
// Models _mm_cmpgt_epi8 (PCMPGTB).
func CmpGtMaskI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		if x[i] > y[i] {
			r[i] = -1
		}
	}
	return M128iFromI8x16(r)
}

// CmpGtMaskI16M128i marks int16 lanes where a > b.
// Models _mm_cmpgt_epi16 (PCMPGTW).
func CmpGtMaskI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		if x[i] > y[i] {
			r[i] = -1
		}
	}
	return M128iFromI16x8(r)
}

// CmpGtMaskI32M128i marks int32 lanes where a > b.
// Models _mm_cmpgt_epi32 (PCMPGTD).
func CmpGtMaskI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		if x[i] > y[i] {
			r[i] = -1
		}
	}
	return M128iFromI32x4(r)
}

// CmpLtMaskI8M128i marks int8 lanes where a < b.
// Models _mm_cmplt_epi8 (PCMPGTB with swapped operands).
func CmpLtMaskI8M128i(a, b M128i) M128i {
	return CmpGtMaskI8M128i(b, a)
}

// CmpLtMaskI16M128i marks int16 lanes where a < b.
// Models _mm_cmplt_epi16 (PCMPGTW with swapped operands).
func CmpLtMaskI16M128i(a, b M128i) M128i {
	return CmpGtMaskI16M128i(b, a)
}

// CmpLtMaskI32M128i marks int32 lanes where a < b.
// Models _mm_cmplt_epi32 (PCMPGTD with swapped operands).
func CmpLtMaskI32M128i(a, b M128i) M128i {
	return CmpGtMaskI32M128i(b, a)
}

// cmpMaskM128d builds a lane mask from a float64 predicate.
func cmpMaskM128d(a, b M128d, pred func(x, y float64) bool) M128d {
	return M128dFromBits([2]uint64{
		maskBits64(pred(a.v[0], b.v[0])),
		maskBits64(pred(a.v[1], b.v[1])),
	})
}

// cmpMaskM128dS masks only the low lane; the high lane carries over
// from a.
func cmpMaskM128dS(a, b M128d, pred func(x, y float64) bool) M128d {
	bits := a.Bits()
	bits[0] = maskBits64(pred(a.v[0], b.v[0]))
	return M128dFromBits(bits)
}

// CmpEqMaskM128d performs a lanewise ordered equality comparison; NaN
// lanes produce all-zero.
// Models _mm_cmpeq_pd (CMPEQPD).
func CmpEqMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x == y })
}

// CmpEqMaskM128dS compares the low lanes for ordered equality.
// Models _mm_cmpeq_sd (CMPEQSD).
func CmpEqMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x == y })
}

// CmpGeMaskM128d performs a lanewise ordered a >= b comparison.
// Models _mm_cmpge_pd.
func CmpGeMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x >= y })
}

// CmpGeMaskM128dS compares the low lanes for ordered a >= b.
// Models _mm_cmpge_sd.
func CmpGeMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x >= y })
}

// CmpGtMaskM128d performs a lanewise ordered a > b comparison.
// Models _mm_cmpgt_pd.
func CmpGtMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x > y })
}

// CmpGtMaskM128dS compares the low lanes for ordered a > b.
// Models _mm_cmpgt_sd.
func CmpGtMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x > y })
}

// CmpLeMaskM128d performs a lanewise ordered a <= b comparison.
// Models _mm_cmple_pd (CMPLEPD).
func CmpLeMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x <= y })
}

// CmpLeMaskM128dS compares the low lanes for ordered a <= b.
// Models _mm_cmple_sd (CMPLESD).
func CmpLeMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x <= y })
}

// CmpLtMaskM128d performs a lanewise ordered a < b comparison.
// Models _mm_cmplt_pd (CMPLTPD).
func CmpLtMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x < y })
}

// CmpLtMaskM128dS compares the low lanes for ordered a < b.
// Models _mm_cmplt_sd (CMPLTSD).
func CmpLtMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x < y })
}

// CmpNeqMaskM128d performs a lanewise unordered inequality comparison;
// NaN lanes produce all-one.
// Models _mm_cmpneq_pd (CMPNEQPD).
func CmpNeqMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x != y })
}

// CmpNeqMaskM128dS compares the low lanes for unordered inequality.
// Models _mm_cmpneq_sd (CMPNEQSD).
func CmpNeqMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x != y })
}

// CmpNgeMaskM128d performs a lanewise NOT (a >= b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpnge_pd.
func CmpNgeMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return !(x >= y) })
}

// CmpNgeMaskM128dS compares the low lanes for NOT (a >= b).
// Models _mm_cmpnge_sd.
func CmpNgeMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return !(x >= y) })
}

// CmpNgtMaskM128d performs a lanewise NOT (a > b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpngt_pd.
func CmpNgtMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return !(x > y) })
}

// CmpNgtMaskM128dS compares the low lanes for NOT (a > b).
// Models _mm_cmpngt_sd.
func CmpNgtMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return !(x > y) })
}

// CmpNleMaskM128d performs a lanewise NOT (a <= b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpnle_pd (CMPNLEPD).
func CmpNleMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return !(x <= y) })
}

// CmpNleMaskM128dS compares the low lanes for NOT (a <= b).
// Models _mm_cmpnle_sd (CMPNLESD).
func CmpNleMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return !(x <= y) })
}

// CmpNltMaskM128d performs a lanewise NOT (a < b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpnlt_pd (CMPNLTPD).
func CmpNltMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return !(x < y) })
}

// CmpNltMaskM128dS compares the low lanes for NOT (a < b).
// Models _mm_cmpnlt_sd (CMPNLTSD).
func CmpNltMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return !(x < y) })
}

// CmpOrdMaskM128d marks lanes where neither input is NaN.
// Models _mm_cmpord_pd (CMPORDPD).
func CmpOrdMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x == x && y == y })
}

// CmpOrdMaskM128dS compares the low lanes for orderedness.
// Models _mm_cmpord_sd (CMPORDSD).
func CmpOrdMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x == x && y == y })
}

// CmpUnordMaskM128d marks lanes where either input is NaN.
// Models _mm_cmpunord_pd (CMPUNORDPD).
func CmpUnordMaskM128d(a, b M128d) M128d {
	return cmpMaskM128d(a, b, func(x, y float64) bool { return x != x || y != y })
}

// CmpUnordMaskM128dS compares the low lanes for unorderedness.
// Models _mm_cmpunord_sd (CMPUNORDSD).
func CmpUnordMaskM128dS(a, b M128d) M128d {
	return cmpMaskM128dS(a, b, func(x, y float64) bool { return x != x || y != y })
}

// CmpEqI32M128dS compares the low lanes for equality, 1 for true and 0
// for false. NaN in either lane gives 0.
// Models _mm_comieq_sd (COMISD).
func CmpEqI32M128dS(a, b M128d) int32 {
	if a.v[0] == b.v[0] {
		return 1
	}
	return 0
}

// CmpGeI32M128dS compares the low lanes for a >= b, 1 for true and 0
// for false.
// Models _mm_comige_sd (COMISD).
func CmpGeI32M128dS(a, b M128d) int32 {
	if a.v[0] >= b.v[0] {
		return 1
	}
	return 0
}

// CmpGtI32M128dS compares the low lanes for a > b, 1 for true and 0
// for false.
// Models _mm_comigt_sd (COMISD).
func CmpGtI32M128dS(a, b M128d) int32 {
	if a.v[0] > b.v[0] {
		return 1
	}
	return 0
}

// CmpLeI32M128dS compares the low lanes for a <= b, 1 for true and 0
// for false.
// Models _mm_comile_sd (COMISD).
func CmpLeI32M128dS(a, b M128d) int32 {
	if a.v[0] <= b.v[0] {
		return 1
	}
	return 0
}

// CmpLtI32M128dS compares the low lanes for a < b, 1 for true and 0
// for false.
// Models _mm_comilt_sd (COMISD).
func CmpLtI32M128dS(a, b M128d) int32 {
	if a.v[0] < b.v[0] {
		return 1
	}
	return 0
}

// CmpNeqI32M128dS compares the low lanes for inequality, 1 for true
// and 0 for false. NaN in either lane gives 1.
// Models _mm_comineq_sd (COMISD).
func CmpNeqI32M128dS(a, b M128d) int32 {
	if a.v[0] != b.v[0] {
		return 1
	}
	return 0
}

// ConvertToM128dFromM128i rounds the lower two int32 lanes to float64.
// Models _mm_cvtepi32_pd (CVTDQ2PD).
func ConvertToM128dFromM128i(a M128i) M128d {
	x := a.I32x4()
	return M128d{v: [2]float64{float64(x[0]), float64(x[1])}}
}

// ConvertToM128FromM128i rounds each int32 lane to float32.
// Models _mm_cvtepi32_ps (CVTDQ2PS).
func ConvertToM128FromM128i(a M128i) M128 {
	x := a.I32x4()
	var r M128
	for i := range r.v {
		r.v[i] = float32(x[i])
	}
	return r
}

// ConvertToI32M128iFromM128 rounds each float32 lane to int32, to
// nearest with ties to even. NaN and out-of-range lanes give the
// integer indefinite, the minimum int32.
// Models _mm_cvtps_epi32 (CVTPS2DQ).
func ConvertToI32M128iFromM128(a M128) M128i {
	var r [4]int32
	for i, x := range a.v {
		r[i] = cvtRoundF64ToI32(float64(x))
	}
	return M128iFromI32x4(r)
}

// TruncateToI32M128iFromM128 truncates each float32 lane to int32.
// NaN and out-of-range lanes give the integer indefinite.
// Models _mm_cvttps_epi32 (CVTTPS2DQ).
func TruncateToI32M128iFromM128(a M128) M128i {
	var r [4]int32
	for i, x := range a.v {
		r[i] = cvtTruncF64ToI32(float64(x))
	}
	return M128iFromI32x4(r)
}

// ConvertToI32M128iFromM128d rounds both float64 lanes to int32 in the
// lower two lanes; the upper two lanes are zero.
// Models _mm_cvtpd_epi32 (CVTPD2DQ).
func ConvertToI32M128iFromM128d(a M128d) M128i {
	return M128iFromI32x4([4]int32{
		cvtRoundF64ToI32(a.v[0]),
		cvtRoundF64ToI32(a.v[1]),
		0,
		0,
	})
}

// TruncateToI32M128iFromM128d truncates both float64 lanes to int32 in
// the lower two lanes; the upper two lanes are zero.
// Models _mm_cvttpd_epi32 (CVTTPD2DQ).
func TruncateToI32M128iFromM128d(a M128d) M128i {
	return M128iFromI32x4([4]int32{
		cvtTruncF64ToI32(a.v[0]),
		cvtTruncF64ToI32(a.v[1]),
		0,
		0,
	})
}

// ConvertToM128FromM128d rounds both float64 lanes to float32 in the
// lower two lanes; the upper two lanes are zero.
// Models _mm_cvtpd_ps (CVTPD2PS).
func ConvertToM128FromM128d(a M128d) M128 {
	return M128{v: [4]float32{float32(a.v[0]), float32(a.v[1]), 0, 0}}
}

// ConvertToM128dFromLowerM128 widens the lower two float32 lanes to
// float64.
// Models _mm_cvtps_pd (CVTPS2PD).
func ConvertToM128dFromLowerM128(a M128) M128d {
	return M128d{v: [2]float64{float64(a.v[0]), float64(a.v[1])}}
}

// ConvertI32ReplaceM128dS rounds i to float64 and replaces the low
// lane; the high lane carries over from a.
// Models _mm_cvtsi32_sd (CVTSI2SD).
func ConvertI32ReplaceM128dS(a M128d, i int32) M128d {
	r := a
	r.v[0] = float64(i)
	return r
}

// ConvertI64ReplaceM128dS rounds i to float64 and replaces the low
// lane; the high lane carries over from a.
// Models _mm_cvtsi64_sd (CVTSI2SD).
func ConvertI64ReplaceM128dS(a M128d, i int64) M128d {
	r := a
	r.v[0] = float64(i)
	return r
}

// ConvertM128SReplaceM128dS widens the low float32 lane of b and
// replaces the low lane; the high lane carries over from a.
// Models _mm_cvtss_sd (CVTSS2SD).
func ConvertM128SReplaceM128dS(a M128d, b M128) M128d {
	r := a
	r.v[0] = float64(b.v[0])
	return r
}

// ConvertM128dSReplaceM128S rounds the low float64 lane of b to
// float32 and replaces the low lane; upper lanes carry over from a.
// Models _mm_cvtsd_ss (CVTSD2SS).
func ConvertM128dSReplaceM128S(a M128, b M128d) M128 {
	r := a
	r.v[0] = float32(b.v[0])
	return r
}

// GetF64M128dS returns the low lane.
// Models _mm_cvtsd_f64.
func GetF64M128dS(a M128d) float64 {
	return a.v[0]
}

// ConvertGetI32M128dS rounds the low lane to int32, to nearest with
// ties to even. NaN and out-of-range values give the integer
// indefinite.
// Models _mm_cvtsd_si32 (CVTSD2SI).
func ConvertGetI32M128dS(a M128d) int32 {
	return cvtRoundF64ToI32(a.v[0])
}

// ConvertGetI64M128dS rounds the low lane to int64, to nearest with
// ties to even. NaN and out-of-range values give the integer
// indefinite.
// Models _mm_cvtsd_si64 (CVTSD2SI).
func ConvertGetI64M128dS(a M128d) int64 {
	return cvtRoundF64ToI64(a.v[0])
}

// TruncateGetI32M128dS truncates the low lane to int32. NaN and
// out-of-range values give the integer indefinite.
// Models _mm_cvttsd_si32 (CVTTSD2SI).
func TruncateGetI32M128dS(a M128d) int32 {
	return cvtTruncF64ToI32(a.v[0])
}

// TruncateGetI64M128dS truncates the low lane to int64. NaN and
// out-of-range values give the integer indefinite.
// Models _mm_cvttsd_si64 (CVTTSD2SI).
func TruncateGetI64M128dS(a M128d) int64 {
	return cvtTruncF64ToI64(a.v[0])
}

// SetI32M128iS sets the low int32 lane, zeroing the rest.
// Models _mm_cvtsi32_si128 (MOVD).
func SetI32M128iS(i int32) M128i {
	var m M128i
	putI32(m.v[:], 0, i)
	return m
}

// GetI32FromM128iS returns the low int32 lane.
// Models _mm_cvtsi128_si32 (MOVD).
func GetI32FromM128iS(a M128i) int32 {
	return getI32(a.v[:], 0)
}

// SetI64M128iS sets the low int64 lane, zeroing the high lane.
// Models _mm_cvtsi64_si128 (MOVQ).
func SetI64M128iS(i int64) M128i {
	var m M128i
	putI64(m.v[:], 0, i)
	return m
}

// GetI64FromM128iS returns the low int64 lane.
// Models _mm_cvtsi128_si64 (MOVQ).
func GetI64FromM128iS(a M128i) int64 {
	return getI64(a.v[:], 0)
}

// DivM128d performs lanewise division.
// Models _mm_div_pd (DIVPD).
func DivM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// DivM128dS divides the low lanes; the high lane carries over from a.
// Models _mm_div_sd (DIVSD).
func DivM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = a.v[0] / b.v[0]
	return r
}

// LoadM128d loads the referenced value.
// Models _mm_load_pd (MOVAPD).
func LoadM128d(a *M128d) M128d {
	return *a
}

// LoadF64M128dS loads the referenced float64 into the low lane; the
// high lane is zero.
// Models _mm_load_sd (MOVSD).
func LoadF64M128dS(a *float64) M128d {
	var r M128d
	r.v[0] = *a
	return r
}

// LoadSplatM128d loads the referenced float64 into both lanes.
// Models _mm_load1_pd.
func LoadSplatM128d(a *float64) M128d {
	return SetSplatM128d(*a)
}

// LoadReverseM128d loads the referenced value with lanes swapped.
// Models _mm_loadr_pd.
func LoadReverseM128d(a *M128d) M128d {
	return M128d{v: [2]float64{a.v[1], a.v[0]}}
}

// LoadUnalignedM128d loads two float64 values from the array.
// Models _mm_loadu_pd (MOVUPD).
func LoadUnalignedM128d(a *[2]float64) M128d {
	return M128d{v: *a}
}

// LoadM128i loads the referenced value.
// Models _mm_load_si128 (MOVDQA).
func LoadM128i(a *M128i) M128i {
	return *a
}

// LoadUnalignedM128i loads sixteen bytes from the array.
// Models _mm_loadu_si128 (MOVDQU).
func LoadUnalignedM128i(a *[16]byte) M128i {
	return M128i{v: *a}
}

// LoadI64M128iS loads the low int64 lane of the referenced value,
// zeroing the high lane.
// Models _mm_loadl_epi64 (MOVQ).
func LoadI64M128iS(a *M128i) M128i {
	var r M128i
	copy(r.v[:8], a.v[:8])
	return r
}

// MaxM128d performs a lanewise maximum with the MAXPD operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm_max_pd (MAXPD).
func MaxM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = maxF64(a.v[i], b.v[i])
	}
	return r
}

// MaxM128dS takes the maximum of the low lanes; the high lane carries
// over from a.
// Models _mm_max_sd (MAXSD).
func MaxM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = maxF64(a.v[0], b.v[0])
	return r
}

// MaxU8M128i performs a lanewise maximum of uint8 lanes.
// Models _mm_max_epu8 (PMAXUB).
func MaxU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [16]uint8
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromU8x16(r)
}

// MaxI16M128i performs a lanewise maximum of int16 lanes.
// Models _mm_max_epi16 (PMAXSW).
func MaxI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromI16x8(r)
}

// MinM128d performs a lanewise minimum with the MINPD operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm_min_pd (MINPD).
func MinM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = minF64(a.v[i], b.v[i])
	}
	return r
}

// MinM128dS takes the minimum of the low lanes; the high lane carries
// over from a.
// Models _mm_min_sd (MINSD).
func MinM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = minF64(a.v[0], b.v[0])
	return r
}

// MinU8M128i performs a lanewise minimum of uint8 lanes.
// Models _mm_min_epu8 (PMINUB).
func MinU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [16]uint8
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromU8x16(r)
}

// MinI16M128i performs a lanewise minimum of int16 lanes.
// Models _mm_min_epi16 (PMINSW).
func MinI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromI16x8(r)
}

// MoveM128dS builds [b0, a1].
// Models _mm_move_sd (MOVSD).
func MoveM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = b.v[0]
	return r
}

// MoveI64M128iS keeps the low int64 lane and zeroes the high lane.
// Models _mm_move_epi64 (MOVQ).
func MoveI64M128iS(a M128i) M128i {
	var r M128i
	copy(r.v[:8], a.v[:8])
	return r
}

// MoveMaskM128d gathers the sign bit of each lane into the low two
// bits of the result.
// Models _mm_movemask_pd (MOVMSKPD).
func MoveMaskM128d(a M128d) int32 {
	var m int32
	for i, x := range a.v {
		if math.Signbit(x) {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskI8M128i gathers the sign bit of each int8 lane into the low
// sixteen bits of the result.
// Models _mm_movemask_epi8 (PMOVMSKB).
func MoveMaskI8M128i(a M128i) int32 {
	var m int32
	for i, x := range a.v {
		if x&0x80 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MulM128d performs lanewise multiplication.
// Models _mm_mul_pd (MULPD).
func MulM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// MulM128dS multiplies the low lanes; the high lane carries over from
// a.
// Models _mm_mul_sd (MULSD).
func MulM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = a.v[0] * b.v[0]
	return r
}

// MulI16KeepHighM128i multiplies int16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm_mulhi_epi16 (PMULHW).
func MulI16KeepHighM128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = int16((int32(x[i]) * int32(y[i])) >> 16)
	}
	return M128iFromI16x8(r)
}

// MulU16KeepHighM128i multiplies uint16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm_mulhi_epu16 (PMULHUW).
func MulU16KeepHighM128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = uint16((uint32(x[i]) * uint32(y[i])) >> 16)
	}
	return M128iFromU16x8(r)
}

// MulI16KeepLowM128i multiplies int16 lanes and keeps the low half of
// each 32-bit product.
// Models _mm_mullo_epi16 (PMULLW).
func MulI16KeepLowM128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = x[i] * y[i]
	}
	return M128iFromI16x8(r)
}

// MulWidenU32OddM128i multiplies lane 0 by lane 0 and lane 2 by lane
// 2, widening each product to uint64.
// Models _mm_mul_epu32 (PMULUDQ).
func MulWidenU32OddM128i(a, b M128i) M128i {
	x, y := a.U32x4(), b.U32x4()
	return M128iFromU64x2([2]uint64{
		uint64(x[0]) * uint64(y[0]),
		uint64(x[2]) * uint64(y[2]),
	})
}

// MulI16HorizontalAddM128i multiplies int16 lanes into 32-bit
// products, then sums each adjacent pair into an int32 lane.
// Models _mm_madd_epi16 (PMADDWD).
func MulI16HorizontalAddM128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [4]int32
	for i := range r {
		r[i] = int32(x[2*i])*int32(y[2*i]) + int32(x[2*i+1])*int32(y[2*i+1])
	}
	return M128iFromI32x4(r)
}

// SumAbsDiffU8M128i sums the absolute differences of the uint8 lanes
// in each 64-bit half into that half's low 16 bits.
// Models _mm_sad_epu8 (PSADBW).
func SumAbsDiffU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [2]uint64
	for i := range r {
		var sum uint64
		for j := 8 * i; j < 8*i+8; j++ {
			d := int32(x[j]) - int32(y[j])
			if d < 0 {
				d = -d
			}
			sum += uint64(d)
		}
		r[i] = sum
	}
	return M128iFromU64x2(r)
}

// PackI16ToI8M128i narrows the int16 lanes of a then b into int8 lanes
// with signed saturation.
// Models _mm_packs_epi16 (PACKSSWB).
func PackI16ToI8M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [16]int8
	for i := range x {
		r[i] = satI8(int32(x[i]))
		r[i+8] = satI8(int32(y[i]))
	}
	return M128iFromI8x16(r)
}

// PackI16ToU8M128i narrows the int16 lanes of a then b into uint8
// lanes with unsigned saturation.
// Models _mm_packus_epi16 (PACKUSWB).
func PackI16ToU8M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [16]uint8
	for i := range x {
		r[i] = satU8(int32(x[i]))
		r[i+8] = satU8(int32(y[i]))
	}
	return M128iFromU8x16(r)
}

// PackI32ToI16M128i narrows the int32 lanes of a then b into int16
// lanes with signed saturation.
// Models _mm_packs_epi32 (PACKSSDW).
func PackI32ToI16M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [8]int16
	for i := range x {
		r[i] = satI16(x[i])
		r[i+4] = satI16(y[i])
	}
	return M128iFromI16x8(r)
}

// SetI8M128i sets the int8 lanes from the args, first arg high.
// Models _mm_set_epi8.
func SetI8M128i(e15, e14, e13, e12, e11, e10, e9, e8, e7, e6, e5, e4, e3, e2, e1, e0 int8) M128i {
	return M128iFromI8x16([16]int8{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
	})
}

// SetI16M128i sets the int16 lanes from the args, first arg high.
// Models _mm_set_epi16.
func SetI16M128i(e7, e6, e5, e4, e3, e2, e1, e0 int16) M128i {
	return M128iFromI16x8([8]int16{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetI32M128i sets the int32 lanes from the args, first arg high.
// Models _mm_set_epi32.
func SetI32M128i(e3, e2, e1, e0 int32) M128i {
	return M128iFromI32x4([4]int32{e0, e1, e2, e3})
}

// SetI64M128i sets the int64 lanes from the args, first arg high.
// Models _mm_set_epi64x.
func SetI64M128i(e1, e0 int64) M128i {
	return M128iFromI64x2([2]int64{e0, e1})
}

// SetM128d sets the lanes from the args, first arg high.
// Models _mm_set_pd.
func SetM128d(one, zero float64) M128d {
	return M128d{v: [2]float64{zero, one}}
}

// SetM128dS sets the low lane, zeroing the high lane.
// Models _mm_set_sd.
func SetM128dS(a float64) M128d {
	var r M128d
	r.v[0] = a
	return r
}

// SetReversedI8M128i sets the int8 lanes from the args, first arg low.
// Models _mm_setr_epi8.
func SetReversedI8M128i(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 int8) M128i {
	return M128iFromI8x16([16]int8{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
	})
}

// SetReversedI16M128i sets the int16 lanes from the args, first arg
// low.
// Models _mm_setr_epi16.
func SetReversedI16M128i(e0, e1, e2, e3, e4, e5, e6, e7 int16) M128i {
	return M128iFromI16x8([8]int16{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetReversedI32M128i sets the int32 lanes from the args, first arg
// low.
// Models _mm_setr_epi32.
func SetReversedI32M128i(e0, e1, e2, e3 int32) M128i {
	return M128iFromI32x4([4]int32{e0, e1, e2, e3})
}

// SetReversedM128d sets the lanes from the args, first arg low.
// Models _mm_setr_pd.
func SetReversedM128d(zero, one float64) M128d {
	return M128d{v: [2]float64{zero, one}}
}

// SetSplatI8M128i sets all int8 lanes to the same value.
// Models _mm_set1_epi8.
func SetSplatI8M128i(a int8) M128i {
	var r [16]int8
	for i := range r {
		r[i] = a
	}
	return M128iFromI8x16(r)
}

// SetSplatI16M128i sets all int16 lanes to the same value.
// Models _mm_set1_epi16.
func SetSplatI16M128i(a int16) M128i {
	var r [8]int16
	for i := range r {
		r[i] = a
	}
	return M128iFromI16x8(r)
}

// SetSplatI32M128i sets all int32 lanes to the same value.
// Models _mm_set1_epi32.
func SetSplatI32M128i(a int32) M128i {
	var r [4]int32
	for i := range r {
		r[i] = a
	}
	return M128iFromI32x4(r)
}

// SetSplatI64M128i sets both int64 lanes to the same value.
// Models _mm_set1_epi64x.
func SetSplatI64M128i(a int64) M128i {
	return M128iFromI64x2([2]int64{a, a})
}

// SetSplatM128d sets both lanes to the same value.
// Models _mm_set1_pd.
func SetSplatM128d(a float64) M128d {
	return M128d{v: [2]float64{a, a}}
}

// ZeroedM128d returns the all-zero register.
// Models _mm_setzero_pd (XORPD).
func ZeroedM128d() M128d {
	return M128d{}
}

// ZeroedM128i returns the all-zero register.
// Models _mm_setzero_si128 (PXOR).
func ZeroedM128i() M128i {
	return M128i{}
}

// ShlImmU16M128i shifts each 16-bit lane left by imm bits. Shifts of
// 16 or more clear the register.
// Models _mm_slli_epi16 (PSLLW).
func ShlImmU16M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 15 {
		return M128i{}
	}
	x := a.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] << imm
	}
	return M128iFromU16x8(r)
}

// ShlImmU32M128i shifts each 32-bit lane left by imm bits. Shifts of
// 32 or more clear the register.
// Models _mm_slli_epi32 (PSLLD).
func ShlImmU32M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 31 {
		return M128i{}
	}
	x := a.U32x4()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] << imm
	}
	return M128iFromU32x4(r)
}

// ShlImmU64M128i shifts each 64-bit lane left by imm bits. Shifts of
// 64 or more clear the register.
// Models _mm_slli_epi64 (PSLLQ).
func ShlImmU64M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 63 {
		return M128i{}
	}
	x := a.U64x2()
	return M128iFromU64x2([2]uint64{x[0] << imm, x[1] << imm})
}

// ShrImmU16M128i shifts each 16-bit lane right by imm bits, shifting
// in zeroes. Shifts of 16 or more clear the register.
// Models _mm_srli_epi16 (PSRLW).
func ShrImmU16M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 15 {
		return M128i{}
	}
	x := a.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] >> imm
	}
	return M128iFromU16x8(r)
}

// ShrImmU32M128i shifts each 32-bit lane right by imm bits, shifting
// in zeroes. Shifts of 32 or more clear the register.
// Models _mm_srli_epi32 (PSRLD).
func ShrImmU32M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 31 {
		return M128i{}
	}
	x := a.U32x4()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] >> imm
	}
	return M128iFromU32x4(r)
}

// ShrImmU64M128i shifts each 64-bit lane right by imm bits, shifting
// in zeroes. Shifts of 64 or more clear the register.
// Models _mm_srli_epi64 (PSRLQ).
func ShrImmU64M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 63 {
		return M128i{}
	}
	x := a.U64x2()
	return M128iFromU64x2([2]uint64{x[0] >> imm, x[1] >> imm})
}

// ShrImmI16M128i shifts each 16-bit lane right by imm bits, shifting
// in sign bits. Shifts of 16 or more fill each lane with its sign.
// Models _mm_srai_epi16 (PSRAW).
func ShrImmI16M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 15 {
		imm = 15
	}
	x := a.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = x[i] >> imm
	}
	return M128iFromI16x8(r)
}

// ShrImmI32M128i shifts each 32-bit lane right by imm bits, shifting
// in sign bits. Shifts of 32 or more fill each lane with its sign.
// Models _mm_srai_epi32 (PSRAD).
func ShrImmI32M128i(a M128i, imm int) M128i {
	if imm < 0 || imm > 31 {
		imm = 31
	}
	x := a.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = x[i] >> imm
	}
	return M128iFromI32x4(r)
}

// shiftCount reads the shift count every ShlAll and ShrAll variant
// shares: the low 64 bits of the count register.
func shiftCount(count M128i) uint64 {
	return getU64(count.v[:], 0)
}

// ShlAllU16M128i shifts every 16-bit lane left by the low 64 bits of
// count. Counts above 15 clear the register.
// Models _mm_sll_epi16 (PSLLW).
func ShlAllU16M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 15 {
		return M128i{}
	}
	return ShlImmU16M128i(a, int(c))
}

// ShlAllU32M128i shifts every 32-bit lane left by the low 64 bits of
// count. Counts above 31 clear the register.
// Models _mm_sll_epi32 (PSLLD).
func ShlAllU32M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 31 {
		return M128i{}
	}
	return ShlImmU32M128i(a, int(c))
}

// ShlAllU64M128i shifts both 64-bit lanes left by the low 64 bits of
// count. Counts above 63 clear the register.
// Models _mm_sll_epi64 (PSLLQ).
func ShlAllU64M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 63 {
		return M128i{}
	}
	return ShlImmU64M128i(a, int(c))
}

// ShrAllU16M128i shifts every 16-bit lane right by the low 64 bits of
// count, shifting in zeroes. Counts above 15 clear the register.
// Models _mm_srl_epi16 (PSRLW).
func ShrAllU16M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 15 {
		return M128i{}
	}
	return ShrImmU16M128i(a, int(c))
}

// ShrAllU32M128i shifts every 32-bit lane right by the low 64 bits of
// count, shifting in zeroes. Counts above 31 clear the register.
// Models _mm_srl_epi32 (PSRLD).
func ShrAllU32M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 31 {
		return M128i{}
	}
	return ShrImmU32M128i(a, int(c))
}

// ShrAllU64M128i shifts both 64-bit lanes right by the low 64 bits of
// count, shifting in zeroes. Counts above 63 clear the register.
// Models _mm_srl_epi64 (PSRLQ).
func ShrAllU64M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 63 {
		return M128i{}
	}
	return ShrImmU64M128i(a, int(c))
}

// ShrAllI16M128i shifts every 16-bit lane right by the low 64 bits of
// count, shifting in sign bits. Counts above 15 fill each lane with
// its sign.
// Models _mm_sra_epi16 (PSRAW).
func ShrAllI16M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 15 {
		c = 15
	}
	return ShrImmI16M128i(a, int(c))
}

// ShrAllI32M128i shifts every 32-bit lane right by the low 64 bits of
// count, shifting in sign bits. Counts above 31 fill each lane with
// its sign.
// Models _mm_sra_epi32 (PSRAD).
func ShrAllI32M128i(a M128i, count M128i) M128i {
	c := shiftCount(count)
	if c > 31 {
		c = 31
	}
	return ShrImmI32M128i(a, int(c))
}

// ShuffleI32M128i picks each int32 lane from a by index. Each index is
// masked to 0..3, so out-of-range values wrap.
// Models _mm_shuffle_epi32 (PSHUFD).
func ShuffleI32M128i(a M128i, z, o, t, e int) M128i {
	x := a.I32x4()
	return M128iFromI32x4([4]int32{
		x[z&0b11],
		x[o&0b11],
		x[t&0b11],
		x[e&0b11],
	})
}

// ShuffleLowI16M128i picks the low four int16 lanes from the low half
// of a by index; the high half carries over. Each index is masked to
// 0..3.
// Models _mm_shufflelo_epi16 (PSHUFLW).
func ShuffleLowI16M128i(a M128i, z, o, t, e int) M128i {
	x := a.I16x8()
	r := x
	r[0] = x[z&0b11]
	r[1] = x[o&0b11]
	r[2] = x[t&0b11]
	r[3] = x[e&0b11]
	return M128iFromI16x8(r)
}

// ShuffleHighI16M128i picks the high four int16 lanes from the high
// half of a by index; the low half carries over. Each index is masked
// to 0..3.
// Models _mm_shufflehi_epi16 (PSHUFHW).
func ShuffleHighI16M128i(a M128i, z, o, t, e int) M128i {
	x := a.I16x8()
	r := x
	r[4] = x[4+(z&0b11)]
	r[5] = x[4+(o&0b11)]
	r[6] = x[4+(t&0b11)]
	r[7] = x[4+(e&0b11)]
	return M128iFromI16x8(r)
}

// ShuffleM128d picks lane 0 from a and lane 1 from b by index. Each
// index is masked to 0..1.
// Models _mm_shuffle_pd (SHUFPD).
func ShuffleM128d(a, b M128d, z, o int) M128d {
	return M128d{v: [2]float64{a.v[z&0b1], b.v[o&0b1]}}
}

// SqrtM128d performs a lanewise square root.
// Models _mm_sqrt_pd (SQRTPD).
func SqrtM128d(a M128d) M128d {
	return M128d{v: [2]float64{math.Sqrt(a.v[0]), math.Sqrt(a.v[1])}}
}

// SqrtM128dS takes the square root of the low lane of b; the high lane
// carries over from a.
// Models _mm_sqrt_sd (SQRTSD).
func SqrtM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = math.Sqrt(b.v[0])
	return r
}

// StoreM128d stores the value to the reference.
// Models _mm_store_pd (MOVAPD).
func StoreM128d(r *M128d, a M128d) {
	*r = a
}

// StoreF64M128dS stores the low lane to the reference.
// Models _mm_store_sd (MOVSD).
func StoreF64M128dS(r *float64, a M128d) {
	*r = a.v[0]
}

// StoreSplatM128d stores the low lane to both lanes of the reference.
// Models _mm_store1_pd.
func StoreSplatM128d(r *M128d, a M128d) {
	*r = SetSplatM128d(a.v[0])
}

// StoreReverseM128d stores the value with lanes swapped.
// Models _mm_storer_pd.
func StoreReverseM128d(r *M128d, a M128d) {
	*r = M128d{v: [2]float64{a.v[1], a.v[0]}}
}

// StoreUnalignedM128d stores the lanes into the array.
// Models _mm_storeu_pd (MOVUPD).
func StoreUnalignedM128d(r *[2]float64, a M128d) {
	*r = a.v
}

// StoreM128i stores the value to the reference.
// Models _mm_store_si128 (MOVDQA).
func StoreM128i(r *M128i, a M128i) {
	*r = a
}

// StoreUnalignedM128i stores the bytes into the array.
// Models _mm_storeu_si128 (MOVDQU).
func StoreUnalignedM128i(r *[16]byte, a M128i) {
	*r = a.v
}

// StoreI64M128iS stores the low int64 lane to the reference.
// Models _mm_storel_epi64 (MOVQ).
func StoreI64M128iS(r *int64, a M128i) {
	*r = getI64(a.v[:], 0)
}

// SubI8M128i performs lanewise wrapping subtraction of int8 lanes.
// Models _mm_sub_epi8 (PSUBB).
func SubI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return M128iFromI8x16(r)
}

// SubI16M128i performs lanewise wrapping subtraction of int16 lanes.
// Models _mm_sub_epi16 (PSUBW).
func SubI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return M128iFromI16x8(r)
}

// SubI32M128i performs lanewise wrapping subtraction of int32 lanes.
// Models _mm_sub_epi32 (PSUBD).
func SubI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return M128iFromI32x4(r)
}

// SubI64M128i performs lanewise wrapping subtraction of int64 lanes.
// Models _mm_sub_epi64 (PSUBQ).
func SubI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	return M128iFromI64x2([2]int64{x[0] - y[0], x[1] - y[1]})
}

// SubSaturatingI8M128i performs lanewise saturating subtraction of
// int8 lanes.
// Models _mm_subs_epi8 (PSUBSB).
func SubSaturatingI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = satI8(int32(x[i]) - int32(y[i]))
	}
	return M128iFromI8x16(r)
}

// SubSaturatingI16M128i performs lanewise saturating subtraction of
// int16 lanes.
// Models _mm_subs_epi16 (PSUBSW).
func SubSaturatingI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = satI16(int32(x[i]) - int32(y[i]))
	}
	return M128iFromI16x8(r)
}

// SubSaturatingU8M128i performs lanewise saturating subtraction of
// uint8 lanes; results below zero clamp to zero.
// Models _mm_subs_epu8 (PSUBUSB).
func SubSaturatingU8M128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.U8x16()
	var r [16]uint8
	for i := range r {
		r[i] = satU8(int32(x[i]) - int32(y[i]))
	}
	return M128iFromU8x16(r)
}

// SubSaturatingU16M128i performs lanewise saturating subtraction of
// uint16 lanes; results below zero clamp to zero.
// Models _mm_subs_epu16 (PSUBUSW).
func SubSaturatingU16M128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = satU16(int32(x[i]) - int32(y[i]))
	}
	return M128iFromU16x8(r)
}

// SubM128d performs lanewise subtraction.
// Models _mm_sub_pd (SUBPD).
func SubM128d(a, b M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// SubM128dS subtracts the low lanes; the high lane carries over from
// a.
// Models _mm_sub_sd (SUBSD).
func SubM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = a.v[0] - b.v[0]
	return r
}

// UnpackHighI8M128i interleaves the high int8 lanes of a and b.
// Models _mm_unpackhi_epi8 (PUNPCKHBW).
func UnpackHighI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := 0; i < 8; i++ {
		r[2*i] = x[8+i]
		r[2*i+1] = y[8+i]
	}
	return M128iFromI8x16(r)
}

// UnpackHighI16M128i interleaves the high int16 lanes of a and b.
// Models _mm_unpackhi_epi16 (PUNPCKHWD).
func UnpackHighI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[2*i] = x[4+i]
		r[2*i+1] = y[4+i]
	}
	return M128iFromI16x8(r)
}

// UnpackHighI32M128i interleaves the high int32 lanes of a and b.
// Models _mm_unpackhi_epi32 (PUNPCKHDQ).
func UnpackHighI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	return M128iFromI32x4([4]int32{x[2], y[2], x[3], y[3]})
}

// UnpackHighI64M128i interleaves the high int64 lanes of a and b.
// Models _mm_unpackhi_epi64 (PUNPCKHQDQ).
func UnpackHighI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	return M128iFromI64x2([2]int64{x[1], y[1]})
}

// UnpackLowI8M128i interleaves the low int8 lanes of a and b.
// Models _mm_unpacklo_epi8 (PUNPCKLBW).
func UnpackLowI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := 0; i < 8; i++ {
		r[2*i] = x[i]
		r[2*i+1] = y[i]
	}
	return M128iFromI8x16(r)
}

// UnpackLowI16M128i interleaves the low int16 lanes of a and b.
// Models _mm_unpacklo_epi16 (PUNPCKLWD).
func UnpackLowI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[2*i] = x[i]
		r[2*i+1] = y[i]
	}
	return M128iFromI16x8(r)
}

// UnpackLowI32M128i interleaves the low int32 lanes of a and b.
// Models _mm_unpacklo_epi32 (PUNPCKLDQ).
func UnpackLowI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	return M128iFromI32x4([4]int32{x[0], y[0], x[1], y[1]})
}

// UnpackLowI64M128i interleaves the low int64 lanes of a and b.
// Models _mm_unpacklo_epi64 (PUNPCKLQDQ).
func UnpackLowI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	return M128iFromI64x2([2]int64{x[0], y[0]})
}

// UnpackHighM128d interleaves the high lanes of a and b.
// Models _mm_unpackhi_pd (UNPCKHPD).
func UnpackHighM128d(a, b M128d) M128d {
	return M128d{v: [2]float64{a.v[1], b.v[1]}}
}

// UnpackLowM128d interleaves the low lanes of a and b.
// Models _mm_unpacklo_pd (UNPCKLPD).
func UnpackLowM128d(a, b M128d) M128d {
	return M128d{v: [2]float64{a.v[0], b.v[0]}}
}
