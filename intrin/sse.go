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

// This file models the SSE instruction family: float32 operations on
// M128. Comparison Mask functions fill each lane with all ones or all
// zeroes; their S forms compare only lane 0 and carry lanes 1..3 over
// from the first operand, as the hardware scalar forms do.

// AddM128 performs lanewise addition.
// Models _mm_add_ps (ADDPS).
func AddM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// AddM128S adds the low lanes; upper lanes carry over from a.
// Models _mm_add_ss (ADDSS).
func AddM128S(a, b M128) M128 {
	r := a
	r.v[0] = a.v[0] + b.v[0]
	return r
}

// AndM128 performs a bitwise AND of the register images.
// Models _mm_and_ps (ANDPS).
func AndM128(a, b M128) M128 {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint32
	for i := range r {
		r[i] = ab[i] & bb[i]
	}
	return M128FromBits(r)
}

// AndNotM128 performs a bitwise (NOT a) AND b of the register images.
// Models _mm_andnot_ps (ANDNPS).
func AndNotM128(a, b M128) M128 {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint32
	for i := range r {
		r[i] = ^ab[i] & bb[i]
	}
	return M128FromBits(r)
}

// cmpMaskM128 builds a lane mask from a float32 predicate.
func cmpMaskM128(a, b M128, pred func(x, y float32) bool) M128 {
	var r [4]uint32
	for i := range r {
		r[i] = maskBits32(pred(a.v[i], b.v[i]))
	}
	return M128FromBits(r)
}

// cmpMaskM128S masks only the low lane; upper lanes carry over from a.
func cmpMaskM128S(a, b M128, pred func(x, y float32) bool) M128 {
	bits := a.Bits()
	bits[0] = maskBits32(pred(a.v[0], b.v[0]))
	return M128FromBits(bits)
}

// CmpEqMaskM128 performs a lanewise ordered equality comparison; NaN
// lanes produce all-zero.
// Models _mm_cmpeq_ps (CMPEQPS).
func CmpEqMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x == y })
}

// CmpEqMaskM128S compares the low lanes for ordered equality.
// Models _mm_cmpeq_ss (CMPEQSS).
func CmpEqMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x == y })
}

// CmpGeMaskM128 performs a lanewise ordered a >= b comparison.
// Models _mm_cmpge_ps (CMPLEPS with swapped operands).
func CmpGeMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x >= y })
}

// CmpGeMaskM128S compares the low lanes for ordered a >= b.
// Models _mm_cmpge_ss.
func CmpGeMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x >= y })
}

// CmpGtMaskM128 performs a lanewise ordered a > b comparison.
// Models _mm_cmpgt_ps.
func CmpGtMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x > y })
}

// CmpGtMaskM128S compares the low lanes for ordered a > b.
// Models _mm_cmpgt_ss.
func CmpGtMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x > y })
}

// CmpLeMaskM128 performs a lanewise ordered a <= b comparison.
// Models _mm_cmple_ps (CMPLEPS).
func CmpLeMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x <= y })
}

// CmpLeMaskM128S compares the low lanes for ordered a <= b.
// Models _mm_cmple_ss (CMPLESS).
func CmpLeMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x <= y })
}

// CmpLtMaskM128 performs a lanewise ordered a < b comparison.
// Models _mm_cmplt_ps (CMPLTPS).
func CmpLtMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x < y })
}

// CmpLtMaskM128S compares the low lanes for ordered a < b.
// Models _mm_cmplt_ss (CMPLTSS).
func CmpLtMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x < y })
}

// CmpNeqMaskM128 performs a lanewise unordered inequality comparison;
// NaN lanes produce all-one.
// Models _mm_cmpneq_ps (CMPNEQPS).
func CmpNeqMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x != y })
}

// CmpNeqMaskM128S compares the low lanes for unordered inequality.
// Models _mm_cmpneq_ss (CMPNEQSS).
func CmpNeqMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x != y })
}

// CmpNgeMaskM128 performs a lanewise NOT (a >= b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpnge_ps.
func CmpNgeMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return !(x >= y) })
}

// CmpNgeMaskM128S compares the low lanes for NOT (a >= b).
// Models _mm_cmpnge_ss.
func CmpNgeMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return !(x >= y) })
}

// CmpNgtMaskM128 performs a lanewise NOT (a > b) comparison; NaN lanes
// produce all-one.
// Models _mm_cmpngt_ps.
func CmpNgtMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return !(x > y) })
}

// CmpNgtMaskM128S compares the low lanes for NOT (a > b).
// Models _mm_cmpngt_ss.
func CmpNgtMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return !(x > y) })
}

// CmpNleMaskM128 performs a lanewise NOT (a <= b) comparison; NaN
// lanes produce all-one.
// Models _mm_cmpnle_ps (CMPNLEPS).
func CmpNleMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return !(x <= y) })
}

// CmpNleMaskM128S compares the low lanes for NOT (a <= b).
// Models _mm_cmpnle_ss (CMPNLESS).
func CmpNleMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return !(x <= y) })
}

// CmpNltMaskM128 performs a lanewise NOT (a < b) comparison; NaN lanes
// produce all-one.
// Models _mm_cmpnlt_ps (CMPNLTPS).
func CmpNltMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return !(x < y) })
}

// CmpNltMaskM128S compares the low lanes for NOT (a < b).
// Models _mm_cmpnlt_ss (CMPNLTSS).
func CmpNltMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return !(x < y) })
}

// CmpOrdMaskM128 marks lanes where neither input is NaN.
// Models _mm_cmpord_ps (CMPORDPS).
func CmpOrdMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x == x && y == y })
}

// CmpOrdMaskM128S compares the low lanes for orderedness.
// Models _mm_cmpord_ss (CMPORDSS).
func CmpOrdMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x == x && y == y })
}

// CmpUnordMaskM128 marks lanes where either input is NaN.
// Models _mm_cmpunord_ps (CMPUNORDPS).
func CmpUnordMaskM128(a, b M128) M128 {
	return cmpMaskM128(a, b, func(x, y float32) bool { return x != x || y != y })
}

// CmpUnordMaskM128S compares the low lanes for unorderedness.
// Models _mm_cmpunord_ss (CMPUNORDSS).
func CmpUnordMaskM128S(a, b M128) M128 {
	return cmpMaskM128S(a, b, func(x, y float32) bool { return x != x || y != y })
}

// CmpEqI32M128S compares the low lanes for equality, 1 for true and 0
// for false. NaN in either lane gives 0.
// Models _mm_comieq_ss (COMISS).
func CmpEqI32M128S(a, b M128) int32 {
	if a.v[0] == b.v[0] {
		return 1
	}
	return 0
}

// CmpGeI32M128S compares the low lanes for a >= b, 1 for true and 0
// for false.
// Models _mm_comige_ss (COMISS).
func CmpGeI32M128S(a, b M128) int32 {
	if a.v[0] >= b.v[0] {
		return 1
	}
	return 0
}

// CmpGtI32M128S compares the low lanes for a > b, 1 for true and 0 for
// false.
// Models _mm_comigt_ss (COMISS).
func CmpGtI32M128S(a, b M128) int32 {
	if a.v[0] > b.v[0] {
		return 1
	}
	return 0
}

// CmpLeI32M128S compares the low lanes for a <= b, 1 for true and 0
// for false.
// Models _mm_comile_ss (COMISS).
func CmpLeI32M128S(a, b M128) int32 {
	if a.v[0] <= b.v[0] {
		return 1
	}
	return 0
}

// CmpLtI32M128S compares the low lanes for a < b, 1 for true and 0 for
// false.
// Models _mm_comilt_ss (COMISS).
func CmpLtI32M128S(a, b M128) int32 {
	if a.v[0] < b.v[0] {
		return 1
	}
	return 0
}

// CmpNeqI32M128S compares the low lanes for inequality, 1 for true and
// 0 for false. NaN in either lane gives 1.
// Models _mm_comineq_ss (COMISS).
func CmpNeqI32M128S(a, b M128) int32 {
	if a.v[0] != b.v[0] {
		return 1
	}
	return 0
}

// ConvertReplaceI32M128S rounds i to float32 and replaces the low
// lane; upper lanes carry over from a.
// Models _mm_cvtsi32_ss (CVTSI2SS).
func ConvertReplaceI32M128S(a M128, i int32) M128 {
	r := a
	r.v[0] = float32(i)
	return r
}

// ConvertReplaceI64M128S rounds i to float32 and replaces the low
// lane; upper lanes carry over from a.
// Models _mm_cvtsi64_ss (CVTSI2SS).
func ConvertReplaceI64M128S(a M128, i int64) M128 {
	r := a
	r.v[0] = float32(i)
	return r
}

// GetF32M128S returns the low lane.
// Models _mm_cvtss_f32 (MOVSS).
func GetF32M128S(a M128) float32 {
	return a.v[0]
}

// ConvertGetI32M128S rounds the low lane to int32, to nearest with
// ties to even. NaN and out-of-range values give the integer
// indefinite, the minimum int32.
// Models _mm_cvtss_si32 (CVTSS2SI).
func ConvertGetI32M128S(a M128) int32 {
	return cvtRoundF64ToI32(float64(a.v[0]))
}

// ConvertGetI64M128S rounds the low lane to int64, to nearest with
// ties to even. NaN and out-of-range values give the integer
// indefinite, the minimum int64.
// Models _mm_cvtss_si64 (CVTSS2SI).
func ConvertGetI64M128S(a M128) int64 {
	return cvtRoundF64ToI64(float64(a.v[0]))
}

// DivM128 performs lanewise division.
// Models _mm_div_ps (DIVPS).
func DivM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// DivM128S divides the low lanes; upper lanes carry over from a.
// Models _mm_div_ss (DIVSS).
func DivM128S(a, b M128) M128 {
	r := a
	r.v[0] = a.v[0] / b.v[0]
	return r
}

// LoadM128 loads the referenced value.
// Models _mm_load_ps (MOVAPS).
func LoadM128(a *M128) M128 {
	return *a
}

// LoadSplatM128 loads the referenced float32 into all lanes.
// Models _mm_load_ps1 (MOVSS + shuffle).
func LoadSplatM128(a *float32) M128 {
	return SetSplatM128(*a)
}

// LoadF32M128S loads the referenced float32 into the low lane; upper
// lanes are zero.
// Models _mm_load_ss (MOVSS).
func LoadF32M128S(a *float32) M128 {
	var r M128
	r.v[0] = *a
	return r
}

// LoadReverseM128 loads the referenced value with lanes reversed.
// Models _mm_loadr_ps (MOVAPS + shuffle).
func LoadReverseM128(a *M128) M128 {
	v := a.v
	return M128{v: [4]float32{v[3], v[2], v[1], v[0]}}
}

// LoadUnalignedM128 loads four float32 values from the array.
// Models _mm_loadu_ps (MOVUPS).
func LoadUnalignedM128(a *[4]float32) M128 {
	return M128{v: *a}
}

// MaxM128 performs a lanewise maximum. The lane from b wins whenever
// the lanes are equal, zeroes of opposite sign, or either is NaN.
// Models _mm_max_ps (MAXPS).
func MaxM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = maxF32(a.v[i], b.v[i])
	}
	return r
}

// MaxM128S takes the maximum of the low lanes; upper lanes carry over
// from a.
// Models _mm_max_ss (MAXSS).
func MaxM128S(a, b M128) M128 {
	r := a
	r.v[0] = maxF32(a.v[0], b.v[0])
	return r
}

// MinM128 performs a lanewise minimum. The lane from b wins whenever
// the lanes are equal, zeroes of opposite sign, or either is NaN.
// Models _mm_min_ps (MINPS).
func MinM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = minF32(a.v[i], b.v[i])
	}
	return r
}

// MinM128S takes the minimum of the low lanes; upper lanes carry over
// from a.
// Models _mm_min_ss (MINSS).
func MinM128S(a, b M128) M128 {
	r := a
	r.v[0] = minF32(a.v[0], b.v[0])
	return r
}

// MoveM128S builds [b0, a1, a2, a3].
// Models _mm_move_ss (MOVSS).
func MoveM128S(a, b M128) M128 {
	r := a
	r.v[0] = b.v[0]
	return r
}

// MoveHighLowM128 builds [b2, b3, a2, a3].
// Models _mm_movehl_ps (MOVHLPS).
func MoveHighLowM128(a, b M128) M128 {
	return M128{v: [4]float32{b.v[2], b.v[3], a.v[2], a.v[3]}}
}

// MoveLowHighM128 builds [a0, a1, b0, b1].
// Models _mm_movelh_ps (MOVLHPS).
func MoveLowHighM128(a, b M128) M128 {
	return M128{v: [4]float32{a.v[0], a.v[1], b.v[0], b.v[1]}}
}

// MoveMaskM128 gathers the sign bit of each lane into the low four
// bits of the result.
// Models _mm_movemask_ps (MOVMSKPS).
func MoveMaskM128(a M128) int32 {
	var m int32
	for i, x := range a.v {
		if math.Signbit(float64(x)) {
			m |= 1 << i
		}
	}
	return m
}

// MulM128 performs lanewise multiplication.
// Models _mm_mul_ps (MULPS).
func MulM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// MulM128S multiplies the low lanes; upper lanes carry over from a.
// Models _mm_mul_ss (MULSS).
func MulM128S(a, b M128) M128 {
	r := a
	r.v[0] = a.v[0] * b.v[0]
	return r
}

// OrM128 performs a bitwise OR of the register images.
// Models _mm_or_ps (ORPS).
func OrM128(a, b M128) M128 {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint32
	for i := range r {
		r[i] = ab[i] | bb[i]
	}
	return M128FromBits(r)
}

// ReciprocalM128 performs a lanewise approximate reciprocal. The
// hardware promises a relative error of at most 1.5 * 2^-12; this
// model returns the correctly rounded value, which is inside that
// envelope.
// Models _mm_rcp_ps (RCPPS).
func ReciprocalM128(a M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = 1 / a.v[i]
	}
	return r
}

// ReciprocalM128S takes the approximate reciprocal of the low lane;
// upper lanes carry over from a.
// Models _mm_rcp_ss (RCPSS).
func ReciprocalM128S(a M128) M128 {
	r := a
	r.v[0] = 1 / a.v[0]
	return r
}

// ReciprocalSqrtM128 performs a lanewise approximate reciprocal square
// root, within the same error envelope as ReciprocalM128.
// Models _mm_rsqrt_ps (RSQRTPS).
func ReciprocalSqrtM128(a M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = float32(1 / math.Sqrt(float64(a.v[i])))
	}
	return r
}

// ReciprocalSqrtM128S takes the approximate reciprocal square root of
// the low lane; upper lanes carry over from a.
// Models _mm_rsqrt_ss (RSQRTSS).
func ReciprocalSqrtM128S(a M128) M128 {
	r := a
	r.v[0] = float32(1 / math.Sqrt(float64(a.v[0])))
	return r
}

// SetM128 sets the lanes from the args, first arg high.
// [SetM128(3, 2, 1, 0)] == [0, 1, 2, 3]
// Models _mm_set_ps.
func SetM128(three, two, one, zero float32) M128 {
	return M128{v: [4]float32{zero, one, two, three}}
}

// SetM128S sets the low lane, zeroing the rest.
// Models _mm_set_ss.
func SetM128S(a float32) M128 {
	var r M128
	r.v[0] = a
	return r
}

// SetSplatM128 sets all lanes to the same value.
// Models _mm_set1_ps.
func SetSplatM128(a float32) M128 {
	return M128{v: [4]float32{a, a, a, a}}
}

// SetReversedM128 sets the lanes from the args, first arg low.
// Models _mm_setr_ps.
func SetReversedM128(zero, one, two, three float32) M128 {
	return M128{v: [4]float32{zero, one, two, three}}
}

// ZeroedM128 returns the all-zero register.
// Models _mm_setzero_ps (XORPS).
func ZeroedM128() M128 {
	return M128{}
}

// ShuffleM128 picks lanes by index: the low two results from a, the
// high two from b. Each index is masked to 0..3, so out-of-range
// values wrap.
// [1,2,3,4] with [5,6,7,8] by (0, 1, 2, 3) -> [1, 2, 7, 8]
// Models _mm_shuffle_ps (SHUFPS).
func ShuffleM128(a, b M128, z, o, t, e int) M128 {
	return M128{v: [4]float32{
		a.v[z&0b11],
		a.v[o&0b11],
		b.v[t&0b11],
		b.v[e&0b11],
	}}
}

// SqrtM128 performs a lanewise square root.
// Models _mm_sqrt_ps (SQRTPS).
func SqrtM128(a M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = float32(math.Sqrt(float64(a.v[i])))
	}
	return r
}

// SqrtM128S takes the square root of the low lane; upper lanes carry
// over from a.
// Models _mm_sqrt_ss (SQRTSS).
func SqrtM128S(a M128) M128 {
	r := a
	r.v[0] = float32(math.Sqrt(float64(a.v[0])))
	return r
}

// StoreM128 stores the value to the reference.
// Models _mm_store_ps (MOVAPS).
func StoreM128(r *M128, a M128) {
	*r = a
}

// StoreF32M128S stores the low lane to the reference.
// Models _mm_store_ss (MOVSS).
func StoreF32M128S(r *float32, a M128) {
	*r = a.v[0]
}

// StoreSplatM128 stores the low lane to all lanes of the reference.
// Models _mm_store1_ps.
func StoreSplatM128(r *M128, a M128) {
	*r = SetSplatM128(a.v[0])
}

// StoreReverseM128 stores the value with lanes reversed.
// Models _mm_storer_ps.
func StoreReverseM128(r *M128, a M128) {
	*r = M128{v: [4]float32{a.v[3], a.v[2], a.v[1], a.v[0]}}
}

// StoreUnalignedM128 stores the lanes into the array.
// Models _mm_storeu_ps (MOVUPS).
func StoreUnalignedM128(r *[4]float32, a M128) {
	*r = a.v
}

// SubM128 performs lanewise subtraction.
// Models _mm_sub_ps (SUBPS).
func SubM128(a, b M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// SubM128S subtracts the low lanes; upper lanes carry over from a.
// Models _mm_sub_ss (SUBSS).
func SubM128S(a, b M128) M128 {
	r := a
	r.v[0] = a.v[0] - b.v[0]
	return r
}

// TransposeFourM128 treats the four registers as a 4x4 matrix and
// transposes it in place.
// Models _MM_TRANSPOSE4_PS.
func TransposeFourM128(a, b, c, d *M128) {
	av, bv, cv, dv := a.v, b.v, c.v, d.v
	a.v = [4]float32{av[0], bv[0], cv[0], dv[0]}
	b.v = [4]float32{av[1], bv[1], cv[1], dv[1]}
	c.v = [4]float32{av[2], bv[2], cv[2], dv[2]}
	d.v = [4]float32{av[3], bv[3], cv[3], dv[3]}
}

// UnpackHighM128 interleaves the high lanes of a and b.
// [1,2,3,4] with [5,6,7,8] -> [3, 7, 4, 8]
// Models _mm_unpackhi_ps (UNPCKHPS).
func UnpackHighM128(a, b M128) M128 {
	return M128{v: [4]float32{a.v[2], b.v[2], a.v[3], b.v[3]}}
}

// UnpackLowM128 interleaves the low lanes of a and b.
// [1,2,3,4] with [5,6,7,8] -> [1, 5, 2, 6]
// Models _mm_unpacklo_ps (UNPCKLPS).
func UnpackLowM128(a, b M128) M128 {
	return M128{v: [4]float32{a.v[0], b.v[0], a.v[1], b.v[1]}}
}

// XorM128 performs a bitwise XOR of the register images.
// Models _mm_xor_ps (XORPS).
func XorM128(a, b M128) M128 {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint32
	for i := range r {
		r[i] = ab[i] ^ bb[i]
	}
	return M128FromBits(r)
}
