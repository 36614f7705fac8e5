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

// AddM256 performs lanewise addition.
// Models _mm256_add_ps (VADDPS).
func AddM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// AddM256d performs lanewise addition.
// Models _mm256_add_pd (VADDPD).
func AddM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// AddHorizontalM256 sums adjacent lane pairs within each 128-bit half,
// a pairs below b pairs.
// [1, 2, 3, 4, 5, 6, 7, 8] with [10, 20, 30, 40, 50, 60, 70, 80]
// -> [3, 7, 30, 70, 11, 15, 110, 150]
// Models _mm256_hadd_ps (VHADDPS).
func AddHorizontalM256(a, b M256) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+0] + a.v[h+1]
		r.v[h+1] = a.v[h+2] + a.v[h+3]
		r.v[h+2] = b.v[h+0] + b.v[h+1]
		r.v[h+3] = b.v[h+2] + b.v[h+3]
	}
	return r
}

// AddHorizontalM256d sums adjacent lane pairs within each 128-bit
// half, a pairs below b pairs.
// Models _mm256_hadd_pd (VHADDPD).
func AddHorizontalM256d(a, b M256d) M256d {
	return M256d{v: [4]float64{
		a.v[0] + a.v[1],
		b.v[0] + b.v[1],
		a.v[2] + a.v[3],
		b.v[2] + b.v[3],
	}}
}

// SubHorizontalM256 subtracts within adjacent lane pairs within each
// 128-bit half, a pairs below b pairs.
// Models _mm256_hsub_ps (VHSUBPS).
func SubHorizontalM256(a, b M256) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+0] - a.v[h+1]
		r.v[h+1] = a.v[h+2] - a.v[h+3]
		r.v[h+2] = b.v[h+0] - b.v[h+1]
		r.v[h+3] = b.v[h+2] - b.v[h+3]
	}
	return r
}

// SubHorizontalM256d subtracts within adjacent lane pairs within each
// 128-bit half, a pairs below b pairs.
// Models _mm256_hsub_pd (VHSUBPD).
func SubHorizontalM256d(a, b M256d) M256d {
	return M256d{v: [4]float64{
		a.v[0] - a.v[1],
		b.v[0] - b.v[1],
		a.v[2] - a.v[3],
		b.v[2] - b.v[3],
	}}
}

// AddSubM256 subtracts in the even lanes and adds in the odd lanes.
// Models _mm256_addsub_ps (VADDSUBPS).
func AddSubM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = a.v[i] - b.v[i]
		} else {
			r.v[i] = a.v[i] + b.v[i]
		}
	}
	return r
}

// AddSubM256d subtracts in the even lanes and adds in the odd lanes.
// Models _mm256_addsub_pd (VADDSUBPD).
func AddSubM256d(a, b M256d) M256d {
	return M256d{v: [4]float64{
		a.v[0] - b.v[0],
		a.v[1] + b.v[1],
		a.v[2] - b.v[2],
		a.v[3] + b.v[3],
	}}
}

// AndM256 performs a bitwise AND of the register images.
// Models _mm256_and_ps (VANDPS).
func AndM256(a, b M256) M256 {
	ab, bb := a.Bits(), b.Bits()
	var r [8]uint32
	for i := range r {
		r[i] = ab[i] & bb[i]
	}
	return M256FromBits(r)
}

// AndM256d performs a bitwise AND of the register images.
// Models _mm256_and_pd (VANDPD).
func AndM256d(a, b M256d) M256d {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint64
	for i := range r {
		r[i] = ab[i] & bb[i]
	}
	return M256dFromBits(r)
}

// AndNotM256 performs a bitwise (NOT a) AND b of the register images.
// Models _mm256_andnot_ps (VANDNPS).
func AndNotM256(a, b M256) M256 {
	ab, bb := a.Bits(), b.Bits()
	var r [8]uint32
	for i := range r {
		r[i] = ^ab[i] & bb[i]
	}
	return M256FromBits(r)
}

// AndNotM256d performs a bitwise (NOT a) AND b of the register images.
// Models _mm256_andnot_pd (VANDNPD).
func AndNotM256d(a, b M256d) M256d {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint64
	for i := range r {
		r[i] = ^ab[i] & bb[i]
	}
	return M256dFromBits(r)
}

// OrM256 performs a bitwise OR of the register images.
// Models _mm256_or_ps (VORPS).
func OrM256(a, b M256) M256 {
	ab, bb := a.Bits(), b.Bits()
	var r [8]uint32
	for i := range r {
		r[i] = ab[i] | bb[i]
	}
	return M256FromBits(r)
}

// OrM256d performs a bitwise OR of the register images.
// Models _mm256_or_pd (VORPD).
func OrM256d(a, b M256d) M256d {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint64
	for i := range r {
		r[i] = ab[i] | bb[i]
	}
	return M256dFromBits(r)
}

// XorM256 performs a bitwise XOR of the register images.
// Models _mm256_xor_ps (VXORPS).
func XorM256(a, b M256) M256 {
	ab, bb := a.Bits(), b.Bits()
	var r [8]uint32
	for i := range r {
		r[i] = ab[i] ^ bb[i]
	}
	return M256FromBits(r)
}

// XorM256d performs a bitwise XOR of the register images.
// Models _mm256_xor_pd (VXORPD).
func XorM256d(a, b M256d) M256d {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint64
	for i := range r {
		r[i] = ab[i] ^ bb[i]
	}
	return M256dFromBits(r)
}

// BlendImmM256 picks each lane from b where the matching bit of imm is
// set, from a where it is clear.
// Models _mm256_blend_ps (VBLENDPS).
func BlendImmM256(a, b M256, imm int) M256 {
	r := a
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendImmM256d picks each lane from b where the matching bit of imm
// is set, from a where it is clear.
// Models _mm256_blend_pd (VBLENDPD).
func BlendImmM256d(a, b M256d, imm int) M256d {
	r := a
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingM256 picks each lane from b where the matching mask lane
// has its sign bit set, from a where it is clear.
// Models _mm256_blendv_ps (VBLENDVPS).
func BlendVaryingM256(a, b, mask M256) M256 {
	r := a
	for i, m := range mask.Bits() {
		if m>>31 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingM256d picks each lane from b where the matching mask
// lane has its sign bit set, from a where it is clear.
// Models _mm256_blendv_pd (VBLENDVPD).
func BlendVaryingM256d(a, b, mask M256d) M256d {
	r := a
	for i, m := range mask.Bits() {
		if m>>63 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// CastToM256dFromM256 reinterprets the register image, no conversion.
// Models _mm256_castps_pd.
func CastToM256dFromM256(a M256) M256d {
	return M256dFromBits(CastToM256iFromM256(a).U64x4())
}

// CastToM256iFromM256 reinterprets the register image, no conversion.
// Models _mm256_castps_si256.
func CastToM256iFromM256(a M256) M256i {
	return M256iFromU32x8(a.Bits())
}

// CastToM256FromM256d reinterprets the register image, no conversion.
// Models _mm256_castpd_ps.
func CastToM256FromM256d(a M256d) M256 {
	return M256FromBits(CastToM256iFromM256d(a).U32x8())
}

// CastToM256iFromM256d reinterprets the register image, no conversion.
// Models _mm256_castpd_si256.
func CastToM256iFromM256d(a M256d) M256i {
	return M256iFromU64x4(a.Bits())
}

// CastToM256FromM256i reinterprets the register image, no conversion.
// Models _mm256_castsi256_ps.
func CastToM256FromM256i(a M256i) M256 {
	return M256FromBits(a.U32x8())
}

// CastToM256dFromM256i reinterprets the register image, no conversion.
// Models _mm256_castsi256_pd.
func CastToM256dFromM256i(a M256i) M256d {
	return M256dFromBits(a.U64x4())
}

// CeilM256 rounds each lane toward positive infinity.
// Models _mm256_ceil_ps (VROUNDPS).
func CeilM256(a M256) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = float32(math.Ceil(float64(x)))
	}
	return r
}

// CeilM256d rounds each lane toward positive infinity.
// Models _mm256_ceil_pd (VROUNDPD).
func CeilM256d(a M256d) M256d {
	var r M256d
	for i, x := range a.v {
		r.v[i] = math.Ceil(x)
	}
	return r
}

// FloorM256 rounds each lane toward negative infinity.
// Models _mm256_floor_ps (VROUNDPS).
func FloorM256(a M256) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = float32(math.Floor(float64(x)))
	}
	return r
}

// FloorM256d rounds each lane toward negative infinity.
// Models _mm256_floor_pd (VROUNDPD).
func FloorM256d(a M256d) M256d {
	var r M256d
	for i, x := range a.v {
		r.v[i] = math.Floor(x)
	}
	return r
}

// RoundM256 rounds each lane by mode.
// Models _mm256_round_ps (VROUNDPS).
func RoundM256(a M256, mode RoundMode) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = roundF32(x, mode)
	}
	return r
}

// RoundM256d rounds each lane by mode.
// Models _mm256_round_pd (VROUNDPD).
func RoundM256d(a M256d, mode RoundMode) M256d {
	var r M256d
	for i, x := range a.v {
		r.v[i] = roundF64(x, mode)
	}
	return r
}

// CmpOpMaskM128 compares lanes by op, an all-ones lane for true and
// all-zero for false.
// Models _mm_cmp_ps (VCMPPS).
func CmpOpMaskM128(a, b M128, op CmpOp) M128 {
	var r [4]uint32
	for i := range r {
		r[i] = maskBits32(cmpOpF32(op, a.v[i], b.v[i]))
	}
	return M128FromBits(r)
}

// CmpOpMaskM128S compares the low lanes by op; the upper lanes carry
// over from a.
// Models _mm_cmp_ss (VCMPSS).
func CmpOpMaskM128S(a, b M128, op CmpOp) M128 {
	bits := a.Bits()
	bits[0] = maskBits32(cmpOpF32(op, a.v[0], b.v[0]))
	return M128FromBits(bits)
}

// CmpOpMaskM128d compares lanes by op, an all-ones lane for true and
// all-zero for false.
// Models _mm_cmp_pd (VCMPPD).
func CmpOpMaskM128d(a, b M128d, op CmpOp) M128d {
	var r [2]uint64
	for i := range r {
		r[i] = maskBits64(cmpOpF64(op, a.v[i], b.v[i]))
	}
	return M128dFromBits(r)
}

// CmpOpMaskM128dS compares the low lanes by op; the high lane carries
// over from a.
// Models _mm_cmp_sd (VCMPSD).
func CmpOpMaskM128dS(a, b M128d, op CmpOp) M128d {
	bits := a.Bits()
	bits[0] = maskBits64(cmpOpF64(op, a.v[0], b.v[0]))
	return M128dFromBits(bits)
}

// CmpOpMaskM256 compares lanes by op, an all-ones lane for true and
// all-zero for false.
// Models _mm256_cmp_ps (VCMPPS).
func CmpOpMaskM256(a, b M256, op CmpOp) M256 {
	var r [8]uint32
	for i := range r {
		r[i] = maskBits32(cmpOpF32(op, a.v[i], b.v[i]))
	}
	return M256FromBits(r)
}

// CmpOpMaskM256d compares lanes by op, an all-ones lane for true and
// all-zero for false.
// Models _mm256_cmp_pd (VCMPPD).
func CmpOpMaskM256d(a, b M256d, op CmpOp) M256d {
	var r [4]uint64
	for i := range r {
		r[i] = maskBits64(cmpOpF64(op, a.v[i], b.v[i]))
	}
	return M256dFromBits(r)
}

// ConvertToM256dFromI32M128i rounds each int32 lane to float64.
// Models _mm256_cvtepi32_pd (VCVTDQ2PD).
func ConvertToM256dFromI32M128i(a M128i) M256d {
	x := a.I32x4()
	var r M256d
	for i := range r.v {
		r.v[i] = float64(x[i])
	}
	return r
}

// ConvertToM256FromI32M256i rounds each int32 lane to float32.
// Models _mm256_cvtepi32_ps (VCVTDQ2PS).
func ConvertToM256FromI32M256i(a M256i) M256 {
	x := a.I32x8()
	var r M256
	for i := range r.v {
		r.v[i] = float32(x[i])
	}
	return r
}

// ConvertToI32M128iFromM256d rounds each float64 lane to int32, to
// nearest with ties to even. NaN and out-of-range lanes give the
// integer indefinite.
// Models _mm256_cvtpd_epi32 (VCVTPD2DQ).
func ConvertToI32M128iFromM256d(a M256d) M128i {
	var r [4]int32
	for i, x := range a.v {
		r[i] = cvtRoundF64ToI32(x)
	}
	return M128iFromI32x4(r)
}

// TruncateToI32M128iFromM256d truncates each float64 lane to int32.
// NaN and out-of-range lanes give the integer indefinite.
// Models _mm256_cvttpd_epi32 (VCVTTPD2DQ).
func TruncateToI32M128iFromM256d(a M256d) M128i {
	var r [4]int32
	for i, x := range a.v {
		r[i] = cvtTruncF64ToI32(x)
	}
	return M128iFromI32x4(r)
}

// ConvertToI32M256iFromM256 rounds each float32 lane to int32, to
// nearest with ties to even. NaN and out-of-range lanes give the
// integer indefinite.
// Models _mm256_cvtps_epi32 (VCVTPS2DQ).
func ConvertToI32M256iFromM256(a M256) M256i {
	var r [8]int32
	for i, x := range a.v {
		r[i] = cvtRoundF64ToI32(float64(x))
	}
	return M256iFromI32x8(r)
}

// TruncateToI32M256iFromM256 truncates each float32 lane to int32. NaN
// and out-of-range lanes give the integer indefinite.
// Models _mm256_cvttps_epi32 (VCVTTPS2DQ).
func TruncateToI32M256iFromM256(a M256) M256i {
	var r [8]int32
	for i, x := range a.v {
		r[i] = cvtTruncF64ToI32(float64(x))
	}
	return M256iFromI32x8(r)
}

// ConvertToM128FromM256d rounds each float64 lane to float32.
// Models _mm256_cvtpd_ps (VCVTPD2PS).
func ConvertToM128FromM256d(a M256d) M128 {
	var r M128
	for i, x := range a.v {
		r.v[i] = float32(x)
	}
	return r
}

// ConvertToM256dFromM128 widens each float32 lane to float64.
// Models _mm256_cvtps_pd (VCVTPS2PD).
func ConvertToM256dFromM128(a M128) M256d {
	var r M256d
	for i, x := range a.v {
		r.v[i] = float64(x)
	}
	return r
}

// GetF32M256S returns the low lane.
// Models _mm256_cvtss_f32.
func GetF32M256S(a M256) float32 {
	return a.v[0]
}

// GetF64M256dS returns the low lane.
// Models _mm256_cvtsd_f64.
func GetF64M256dS(a M256d) float64 {
	return a.v[0]
}

// GetI32FromM256iS returns the low int32 lane.
// Models _mm256_cvtsi256_si32.
func GetI32FromM256iS(a M256i) int32 {
	return getI32(a.v[:], 0)
}

// DivM256 performs lanewise division.
// Models _mm256_div_ps (VDIVPS).
func DivM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// DivM256d performs lanewise division.
// Models _mm256_div_pd (VDIVPD).
func DivM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// DotProductM256 runs the four-lane dot product in each 128-bit half:
// the high imm nibble selects inputs, the low nibble selects outputs.
// Models _mm256_dp_ps (VDPPS).
func DotProductM256(a, b M256, imm int) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		var sum float32
		for i := 0; i < 4; i++ {
			if imm>>(4+i)&1 != 0 {
				sum += a.v[h+i] * b.v[h+i]
			}
		}
		for i := 0; i < 4; i++ {
			if imm>>i&1 != 0 {
				r.v[h+i] = sum
			}
		}
	}
	return r
}

// DuplicateOddLanesM256 copies each odd lane into the even lane below
// it.
// Models _mm256_movehdup_ps (VMOVSHDUP).
func DuplicateOddLanesM256(a M256) M256 {
	var r M256
	for i := 0; i < 8; i += 2 {
		r.v[i] = a.v[i+1]
		r.v[i+1] = a.v[i+1]
	}
	return r
}

// DuplicateEvenLanesM256 copies each even lane into the odd lane above
// it.
// Models _mm256_moveldup_ps (VMOVSLDUP).
func DuplicateEvenLanesM256(a M256) M256 {
	var r M256
	for i := 0; i < 8; i += 2 {
		r.v[i] = a.v[i]
		r.v[i+1] = a.v[i]
	}
	return r
}

// DuplicateEvenLanesM256d copies each even lane into the odd lane
// above it.
// Models _mm256_movedup_pd (VMOVDDUP).
func DuplicateEvenLanesM256d(a M256d) M256d {
	return M256d{v: [4]float64{a.v[0], a.v[0], a.v[2], a.v[2]}}
}

// ExtractI32FromM256i returns the int32 lane picked by imm, masked to
// 0..7.
// Models _mm256_extract_epi32.
func ExtractI32FromM256i(a M256i, imm int) int32 {
	return a.I32x8()[imm&0b111]
}

// ExtractI64FromM256i returns the int64 lane picked by imm, masked to
// 0..3.
// Models _mm256_extract_epi64.
func ExtractI64FromM256i(a M256i, imm int) int64 {
	return a.I64x4()[imm&0b11]
}

// ExtractM128FromM256 returns the 128-bit half picked by imm, masked
// to 0..1.
// Models _mm256_extractf128_ps (VEXTRACTF128).
func ExtractM128FromM256(a M256, imm int) M128 {
	var r M128
	copy(r.v[:], a.v[(imm&0b1)*4:])
	return r
}

// ExtractM128dFromM256d returns the 128-bit half picked by imm, masked
// to 0..1.
// Models _mm256_extractf128_pd (VEXTRACTF128).
func ExtractM128dFromM256d(a M256d, imm int) M128d {
	var r M128d
	copy(r.v[:], a.v[(imm&0b1)*2:])
	return r
}

// ExtractM128iFromM256i returns the 128-bit half picked by imm, masked
// to 0..1.
// Models _mm256_extractf128_si256 (VEXTRACTF128).
func ExtractM128iFromM256i(a M256i, imm int) M128i {
	var r M128i
	copy(r.v[:], a.v[(imm&0b1)*16:])
	return r
}

// InsertI8ToM256i replaces the int8 lane picked by imm, masked to
// 0..31.
// Models _mm256_insert_epi8.
func InsertI8ToM256i(a M256i, i int8, imm int) M256i {
	r := a
	r.v[imm&0b11111] = byte(i)
	return r
}

// InsertI16ToM256i replaces the int16 lane picked by imm, masked to
// 0..15.
// Models _mm256_insert_epi16.
func InsertI16ToM256i(a M256i, i int16, imm int) M256i {
	r := a
	putI16(r.v[:], imm&0b1111, i)
	return r
}

// InsertI32ToM256i replaces the int32 lane picked by imm, masked to
// 0..7.
// Models _mm256_insert_epi32.
func InsertI32ToM256i(a M256i, i int32, imm int) M256i {
	r := a
	putI32(r.v[:], imm&0b111, i)
	return r
}

// InsertI64ToM256i replaces the int64 lane picked by imm, masked to
// 0..3.
// Models _mm256_insert_epi64.
func InsertI64ToM256i(a M256i, i int64, imm int) M256i {
	r := a
	putI64(r.v[:], imm&0b11, i)
	return r
}

// InsertM128ToM256 replaces the 128-bit half picked by imm, masked to
// 0..1.
// Models _mm256_insertf128_ps (VINSERTF128).
func InsertM128ToM256(a M256, b M128, imm int) M256 {
	r := a
	copy(r.v[(imm&0b1)*4:], b.v[:])
	return r
}

// InsertM128dToM256d replaces the 128-bit half picked by imm, masked
// to 0..1.
// Models _mm256_insertf128_pd (VINSERTF128).
func InsertM128dToM256d(a M256d, b M128d, imm int) M256d {
	r := a
	copy(r.v[(imm&0b1)*2:], b.v[:])
	return r
}

// InsertM128iToM256i replaces the 128-bit half picked by imm, masked
// to 0..1.
// Models _mm256_insertf128_si256 (VINSERTF128).
func InsertM128iToM256i(a M256i, b M128i, imm int) M256i {
	r := a
	copy(r.v[(imm&0b1)*16:], b.v[:])
	return r
}

// LoadM256 loads the referenced value.
// Models _mm256_load_ps (VMOVAPS).
func LoadM256(a *M256) M256 {
	return *a
}

// LoadM256d loads the referenced value.
// Models _mm256_load_pd (VMOVAPD).
func LoadM256d(a *M256d) M256d {
	return *a
}

// LoadM256i loads the referenced value.
// Models _mm256_load_si256 (VMOVDQA).
func LoadM256i(a *M256i) M256i {
	return *a
}

// LoadF32SplatM256 loads the referenced float32 into every lane.
// Models _mm256_broadcast_ss (VBROADCASTSS).
func LoadF32SplatM256(a *float32) M256 {
	return SetSplatM256(*a)
}

// LoadF64SplatM256d loads the referenced float64 into every lane.
// Models _mm256_broadcast_sd (VBROADCASTSD).
func LoadF64SplatM256d(a *float64) M256d {
	return SetSplatM256d(*a)
}

// LoadM128SplatM256 loads the referenced value into both halves.
// Models _mm256_broadcast_ps (VBROADCASTF128).
func LoadM128SplatM256(a *M128) M256 {
	var r M256
	copy(r.v[:4], a.v[:])
	copy(r.v[4:], a.v[:])
	return r
}

// LoadM128dSplatM256d loads the referenced value into both halves.
// Models _mm256_broadcast_pd (VBROADCASTF128).
func LoadM128dSplatM256d(a *M128d) M256d {
	var r M256d
	copy(r.v[:2], a.v[:])
	copy(r.v[2:], a.v[:])
	return r
}

// LoadMaskedM128 loads each lane whose mask lane has its sign bit set,
// zeroing the rest.
// Models _mm_maskload_ps (VMASKMOVPS).
func LoadMaskedM128(a *M128, mask M128i) M128 {
	var r M128
	for i := range r.v {
		if getU32(mask.v[:], i)>>31 != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

// LoadMaskedM128d loads each lane whose mask lane has its sign bit
// set, zeroing the rest.
// Models _mm_maskload_pd (VMASKMOVPD).
func LoadMaskedM128d(a *M128d, mask M128i) M128d {
	var r M128d
	for i := range r.v {
		if getU64(mask.v[:], i)>>63 != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

// LoadMaskedM256 loads each lane whose mask lane has its sign bit set,
// zeroing the rest.
// Models _mm256_maskload_ps (VMASKMOVPS).
func LoadMaskedM256(a *M256, mask M256i) M256 {
	var r M256
	for i := range r.v {
		if getU32(mask.v[:], i)>>31 != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

// LoadMaskedM256d loads each lane whose mask lane has its sign bit
// set, zeroing the rest.
// Models _mm256_maskload_pd (VMASKMOVPD).
func LoadMaskedM256d(a *M256d, mask M256i) M256d {
	var r M256d
	for i := range r.v {
		if getU64(mask.v[:], i)>>63 != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

// StoreMaskedM128 stores each lane whose mask lane has its sign bit
// set, leaving the rest untouched.
// Models _mm_maskstore_ps (VMASKMOVPS).
func StoreMaskedM128(r *M128, mask M128i, a M128) {
	for i := range a.v {
		if getU32(mask.v[:], i)>>31 != 0 {
			r.v[i] = a.v[i]
		}
	}
}

// StoreMaskedM128d stores each lane whose mask lane has its sign bit
// set, leaving the rest untouched.
// Models _mm_maskstore_pd (VMASKMOVPD).
func StoreMaskedM128d(r *M128d, mask M128i, a M128d) {
	for i := range a.v {
		if getU64(mask.v[:], i)>>63 != 0 {
			r.v[i] = a.v[i]
		}
	}
}

// StoreMaskedM256 stores each lane whose mask lane has its sign bit
// set, leaving the rest untouched.
// Models _mm256_maskstore_ps (VMASKMOVPS).
func StoreMaskedM256(r *M256, mask M256i, a M256) {
	for i := range a.v {
		if getU32(mask.v[:], i)>>31 != 0 {
			r.v[i] = a.v[i]
		}
	}
}

// StoreMaskedM256d stores each lane whose mask lane has its sign bit
// set, leaving the rest untouched.
// Models _mm256_maskstore_pd (VMASKMOVPD).
func StoreMaskedM256d(r *M256d, mask M256i, a M256d) {
	for i := range a.v {
		if getU64(mask.v[:], i)>>63 != 0 {
			r.v[i] = a.v[i]
		}
	}
}

// LoadUnalignedM256 loads eight float32 values from the array.
// Models _mm256_loadu_ps (VMOVUPS).
func LoadUnalignedM256(a *[8]float32) M256 {
	return M256{v: *a}
}

// LoadUnalignedM256d loads four float64 values from the array.
// Models _mm256_loadu_pd (VMOVUPD).
func LoadUnalignedM256d(a *[4]float64) M256d {
	return M256d{v: *a}
}

// LoadUnalignedM256i loads thirty-two bytes from the array.
// Models _mm256_loadu_si256 (VMOVDQU).
func LoadUnalignedM256i(a *[32]byte) M256i {
	return M256i{v: *a}
}

// LoadUnalignedHiLoM256 loads the high half from hi and the low half
// from lo.
// Models _mm256_loadu2_m128.
func LoadUnalignedHiLoM256(hi, lo *[4]float32) M256 {
	var r M256
	copy(r.v[:4], lo[:])
	copy(r.v[4:], hi[:])
	return r
}

// LoadUnalignedHiLoM256d loads the high half from hi and the low half
// from lo.
// Models _mm256_loadu2_m128d.
func LoadUnalignedHiLoM256d(hi, lo *[2]float64) M256d {
	var r M256d
	copy(r.v[:2], lo[:])
	copy(r.v[2:], hi[:])
	return r
}

// LoadUnalignedHiLoM256i loads the high half from hi and the low half
// from lo.
// Models _mm256_loadu2_m128i.
func LoadUnalignedHiLoM256i(hi, lo *[16]byte) M256i {
	var r M256i
	copy(r.v[:16], lo[:])
	copy(r.v[16:], hi[:])
	return r
}

// MaxM256 performs a lanewise maximum with the MAXPS operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm256_max_ps (VMAXPS).
func MaxM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = maxF32(a.v[i], b.v[i])
	}
	return r
}

// MaxM256d performs a lanewise maximum with the MAXPD operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm256_max_pd (VMAXPD).
func MaxM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = maxF64(a.v[i], b.v[i])
	}
	return r
}

// MinM256 performs a lanewise minimum with the MINPS operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm256_min_ps (VMINPS).
func MinM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = minF32(a.v[i], b.v[i])
	}
	return r
}

// MinM256d performs a lanewise minimum with the MINPD operand order
// rule: b wins on equal lanes, zeroes of opposite sign, and NaN.
// Models _mm256_min_pd (VMINPD).
func MinM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = minF64(a.v[i], b.v[i])
	}
	return r
}

// MoveMaskM256 gathers the sign bit of each lane into the low eight
// bits of the result.
// Models _mm256_movemask_ps (VMOVMSKPS).
func MoveMaskM256(a M256) int32 {
	var m int32
	for i, x := range a.v {
		if math.Signbit(float64(x)) {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskM256d gathers the sign bit of each lane into the low four
// bits of the result.
// Models _mm256_movemask_pd (VMOVMSKPD).
func MoveMaskM256d(a M256d) int32 {
	var m int32
	for i, x := range a.v {
		if math.Signbit(x) {
			m |= 1 << i
		}
	}
	return m
}

// MulM256 performs lanewise multiplication.
// Models _mm256_mul_ps (VMULPS).
func MulM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// MulM256d performs lanewise multiplication.
// Models _mm256_mul_pd (VMULPD).
func MulM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// PermuteM128 picks each lane from a by index. Each index is masked to
// 0..3.
// Models _mm_permute_ps (VPERMILPS).
func PermuteM128(a M128, z, o, t, e int) M128 {
	return M128{v: [4]float32{a.v[z&0b11], a.v[o&0b11], a.v[t&0b11], a.v[e&0b11]}}
}

// PermuteM128d picks each lane from a by index. Each index is masked
// to 0..1.
// Models _mm_permute_pd (VPERMILPD).
func PermuteM128d(a M128d, z, o int) M128d {
	return M128d{v: [2]float64{a.v[z&0b1], a.v[o&0b1]}}
}

// PermuteM256 picks lanes within each 128-bit half of a by the same
// four indices. Each index is masked to 0..3.
// Models _mm256_permute_ps (VPERMILPS).
func PermuteM256(a M256, z, o, t, e int) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+(z&0b11)]
		r.v[h+1] = a.v[h+(o&0b11)]
		r.v[h+2] = a.v[h+(t&0b11)]
		r.v[h+3] = a.v[h+(e&0b11)]
	}
	return r
}

// PermuteM256d picks each lane within its 128-bit half of a: indices z
// and o pick in the low half, t and e in the high half, each masked to
// 0..1.
// Models _mm256_permute_pd (VPERMILPD).
func PermuteM256d(a M256d, z, o, t, e int) M256d {
	return M256d{v: [4]float64{
		a.v[z&0b1],
		a.v[o&0b1],
		a.v[2+(t&0b1)],
		a.v[2+(e&0b1)],
	}}
}

// permute2Half resolves one VPERM2F128 selector nibble against the
// four 128-bit halves of a and b.
func permute2Half[T any](dst []T, aLo, aHi, bLo, bHi []T, sel int) {
	if sel&0b1000 != 0 {
		clear(dst)
		return
	}
	switch sel & 0b11 {
	case 0:
		copy(dst, aLo)
	case 1:
		copy(dst, aHi)
	case 2:
		copy(dst, bLo)
	case 3:
		copy(dst, bHi)
	}
}

// PermuteF128InM256 builds each 128-bit half of the result from the
// halves of a and b: the low imm nibble picks the low half, the high
// nibble the high half. Selector values 0 to 3 pick a low, a high, b
// low, b high; bit 3 of a nibble zeroes that half instead.
// Models _mm256_permute2f128_ps (VPERM2F128).
func PermuteF128InM256(a, b M256, imm int) M256 {
	var r M256
	permute2Half(r.v[:4], a.v[:4], a.v[4:], b.v[:4], b.v[4:], imm)
	permute2Half(r.v[4:], a.v[:4], a.v[4:], b.v[:4], b.v[4:], imm>>4)
	return r
}

// PermuteF128InM256d builds each 128-bit half of the result from the
// halves of a and b, selectors as in PermuteF128InM256.
// Models _mm256_permute2f128_pd (VPERM2F128).
func PermuteF128InM256d(a, b M256d, imm int) M256d {
	var r M256d
	permute2Half(r.v[:2], a.v[:2], a.v[2:], b.v[:2], b.v[2:], imm)
	permute2Half(r.v[2:], a.v[:2], a.v[2:], b.v[:2], b.v[2:], imm>>4)
	return r
}

// PermuteI128InM256i builds each 128-bit half of the result from the
// halves of a and b, selectors as in PermuteF128InM256.
// Models _mm256_permute2f128_si256 (VPERM2F128).
func PermuteI128InM256i(a, b M256i, imm int) M256i {
	var r M256i
	permute2Half(r.v[:16], a.v[:16], a.v[16:], b.v[:16], b.v[16:], imm)
	permute2Half(r.v[16:], a.v[:16], a.v[16:], b.v[:16], b.v[16:], imm>>4)
	return r
}

// PermuteVaryingM128 picks each lane from a by the low two bits of the
// matching int32 lane of v.
// Models _mm_permutevar_ps (VPERMILPS).
func PermuteVaryingM128(a M128, v M128i) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = a.v[getU32(v.v[:], i)&0b11]
	}
	return r
}

// PermuteVaryingM128d picks each lane from a by bit 1 of the matching
// int64 lane of v.
// Models _mm_permutevar_pd (VPERMILPD).
func PermuteVaryingM128d(a M128d, v M128i) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = a.v[getU64(v.v[:], i)>>1&0b1]
	}
	return r
}

// PermuteVaryingM256 picks each lane within its 128-bit half of a by
// the low two bits of the matching int32 lane of v.
// Models _mm256_permutevar_ps (VPERMILPS).
func PermuteVaryingM256(a M256, v M256i) M256 {
	var r M256
	for i := range r.v {
		h := i &^ 0b11
		r.v[i] = a.v[h+int(getU32(v.v[:], i)&0b11)]
	}
	return r
}

// PermuteVaryingM256d picks each lane within its 128-bit half of a by
// bit 1 of the matching int64 lane of v.
// Models _mm256_permutevar_pd (VPERMILPD).
func PermuteVaryingM256d(a M256d, v M256i) M256d {
	var r M256d
	for i := range r.v {
		h := i &^ 0b1
		r.v[i] = a.v[h+int(getU64(v.v[:], i)>>1&0b1)]
	}
	return r
}

// ReciprocalM256 approximates 1/a per lane within a relative error of
// 1.5 * 2^-12.
// Models _mm256_rcp_ps (VRCPPS).
func ReciprocalM256(a M256) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = float32(1 / float64(x))
	}
	return r
}

// ReciprocalSqrtM256 approximates 1/sqrt(a) per lane within a relative
// error of 1.5 * 2^-12.
// Models _mm256_rsqrt_ps (VRSQRTPS).
func ReciprocalSqrtM256(a M256) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = float32(1 / math.Sqrt(float64(x)))
	}
	return r
}

// SetI8M256i sets the int8 lanes from the args, first arg high.
// Models _mm256_set_epi8.
func SetI8M256i(
	e31, e30, e29, e28, e27, e26, e25, e24,
	e23, e22, e21, e20, e19, e18, e17, e16,
	e15, e14, e13, e12, e11, e10, e9, e8,
	e7, e6, e5, e4, e3, e2, e1, e0 int8,
) M256i {
	return M256iFromI8x32([32]int8{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
		e16, e17, e18, e19, e20, e21, e22, e23,
		e24, e25, e26, e27, e28, e29, e30, e31,
	})
}

// SetI16M256i sets the int16 lanes from the args, first arg high.
// Models _mm256_set_epi16.
func SetI16M256i(
	e15, e14, e13, e12, e11, e10, e9, e8,
	e7, e6, e5, e4, e3, e2, e1, e0 int16,
) M256i {
	return M256iFromI16x16([16]int16{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
	})
}

// SetI32M256i sets the int32 lanes from the args, first arg high.
// Models _mm256_set_epi32.
func SetI32M256i(e7, e6, e5, e4, e3, e2, e1, e0 int32) M256i {
	return M256iFromI32x8([8]int32{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetI64M256i sets the int64 lanes from the args, first arg high.
// Models _mm256_set_epi64x.
func SetI64M256i(e3, e2, e1, e0 int64) M256i {
	return M256iFromI64x4([4]int64{e0, e1, e2, e3})
}

// SetM128M256 builds the register from two halves.
// Models _mm256_set_m128.
func SetM128M256(hi, lo M128) M256 {
	var r M256
	copy(r.v[:4], lo.v[:])
	copy(r.v[4:], hi.v[:])
	return r
}

// SetM128dM256d builds the register from two halves.
// Models _mm256_set_m128d.
func SetM128dM256d(hi, lo M128d) M256d {
	var r M256d
	copy(r.v[:2], lo.v[:])
	copy(r.v[2:], hi.v[:])
	return r
}

// SetM128iM256i builds the register from two halves.
// Models _mm256_set_m128i.
func SetM128iM256i(hi, lo M128i) M256i {
	var r M256i
	copy(r.v[:16], lo.v[:])
	copy(r.v[16:], hi.v[:])
	return r
}

// SetM256 sets the lanes from the args, first arg high.
// Models _mm256_set_ps.
func SetM256(e7, e6, e5, e4, e3, e2, e1, e0 float32) M256 {
	return M256{v: [8]float32{e0, e1, e2, e3, e4, e5, e6, e7}}
}

// SetM256d sets the lanes from the args, first arg high.
// Models _mm256_set_pd.
func SetM256d(e3, e2, e1, e0 float64) M256d {
	return M256d{v: [4]float64{e0, e1, e2, e3}}
}

// SetReversedI8M256i sets the int8 lanes from the args, first arg low.
// Models _mm256_setr_epi8.
func SetReversedI8M256i(
	e0, e1, e2, e3, e4, e5, e6, e7,
	e8, e9, e10, e11, e12, e13, e14, e15,
	e16, e17, e18, e19, e20, e21, e22, e23,
	e24, e25, e26, e27, e28, e29, e30, e31 int8,
) M256i {
	return M256iFromI8x32([32]int8{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
		e16, e17, e18, e19, e20, e21, e22, e23,
		e24, e25, e26, e27, e28, e29, e30, e31,
	})
}

// SetReversedI16M256i sets the int16 lanes from the args, first arg
// low.
// Models _mm256_setr_epi16.
func SetReversedI16M256i(
	e0, e1, e2, e3, e4, e5, e6, e7,
	e8, e9, e10, e11, e12, e13, e14, e15 int16,
) M256i {
	return M256iFromI16x16([16]int16{
		e0, e1, e2, e3, e4, e5, e6, e7,
		e8, e9, e10, e11, e12, e13, e14, e15,
	})
}

// SetReversedI32M256i sets the int32 lanes from the args, first arg
// low.
// Models _mm256_setr_epi32.
func SetReversedI32M256i(e0, e1, e2, e3, e4, e5, e6, e7 int32) M256i {
	return M256iFromI32x8([8]int32{e0, e1, e2, e3, e4, e5, e6, e7})
}

// SetReversedI64M256i sets the int64 lanes from the args, first arg
// low.
// Models _mm256_setr_epi64x.
func SetReversedI64M256i(e0, e1, e2, e3 int64) M256i {
	return M256iFromI64x4([4]int64{e0, e1, e2, e3})
}

// SetReversedM128M256 builds the register from two halves, low first.
// Models _mm256_setr_m128.
func SetReversedM128M256(lo, hi M128) M256 {
	return SetM128M256(hi, lo)
}

// SetReversedM128dM256d builds the register from two halves, low
// first.
// Models _mm256_setr_m128d.
func SetReversedM128dM256d(lo, hi M128d) M256d {
	return SetM128dM256d(hi, lo)
}

// SetReversedM128iM256i builds the register from two halves, low
// first.
// Models _mm256_setr_m128i.
func SetReversedM128iM256i(lo, hi M128i) M256i {
	return SetM128iM256i(hi, lo)
}

// SetReversedM256 sets the lanes from the args, first arg low.
// Models _mm256_setr_ps.
func SetReversedM256(e0, e1, e2, e3, e4, e5, e6, e7 float32) M256 {
	return M256{v: [8]float32{e0, e1, e2, e3, e4, e5, e6, e7}}
}

// SetReversedM256d sets the lanes from the args, first arg low.
// Models _mm256_setr_pd.
func SetReversedM256d(e0, e1, e2, e3 float64) M256d {
	return M256d{v: [4]float64{e0, e1, e2, e3}}
}

// SetSplatI8M256i sets all int8 lanes to the same value.
// Models _mm256_set1_epi8.
func SetSplatI8M256i(a int8) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = byte(a)
	}
	return r
}

// SetSplatI16M256i sets all int16 lanes to the same value.
// Models _mm256_set1_epi16.
func SetSplatI16M256i(a int16) M256i {
	var r M256i
	for i := 0; i < 16; i++ {
		putI16(r.v[:], i, a)
	}
	return r
}

// SetSplatI32M256i sets all int32 lanes to the same value.
// Models _mm256_set1_epi32.
func SetSplatI32M256i(a int32) M256i {
	var r M256i
	for i := 0; i < 8; i++ {
		putI32(r.v[:], i, a)
	}
	return r
}

// SetSplatI64M256i sets all int64 lanes to the same value.
// Models _mm256_set1_epi64x.
func SetSplatI64M256i(a int64) M256i {
	var r M256i
	for i := 0; i < 4; i++ {
		putI64(r.v[:], i, a)
	}
	return r
}

// SetSplatM256 sets all lanes to the same value.
// Models _mm256_set1_ps.
func SetSplatM256(a float32) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a
	}
	return r
}

// SetSplatM256d sets all lanes to the same value.
// Models _mm256_set1_pd.
func SetSplatM256d(a float64) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = a
	}
	return r
}

// ShuffleM256 picks lanes within each 128-bit half: the low two of a
// half from a, the high two from b. Each index is masked to 0..3.
// Models _mm256_shuffle_ps (VSHUFPS).
func ShuffleM256(a, b M256, z, o, t, e int) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+(z&0b11)]
		r.v[h+1] = a.v[h+(o&0b11)]
		r.v[h+2] = b.v[h+(t&0b11)]
		r.v[h+3] = b.v[h+(e&0b11)]
	}
	return r
}

// ShuffleM256d picks each lane within its 128-bit half, alternating a
// and b as the source. Each index is masked to 0..1.
// Models _mm256_shuffle_pd (VSHUFPD).
func ShuffleM256d(a, b M256d, z, o, t, e int) M256d {
	return M256d{v: [4]float64{
		a.v[z&0b1],
		b.v[o&0b1],
		a.v[2+(t&0b1)],
		b.v[2+(e&0b1)],
	}}
}

// SqrtM256 performs a lanewise square root.
// Models _mm256_sqrt_ps (VSQRTPS).
func SqrtM256(a M256) M256 {
	var r M256
	for i, x := range a.v {
		r.v[i] = float32(math.Sqrt(float64(x)))
	}
	return r
}

// SqrtM256d performs a lanewise square root.
// Models _mm256_sqrt_pd (VSQRTPD).
func SqrtM256d(a M256d) M256d {
	var r M256d
	for i, x := range a.v {
		r.v[i] = math.Sqrt(x)
	}
	return r
}

// StoreM256 stores the value to the reference.
// Models _mm256_store_ps (VMOVAPS).
func StoreM256(r *M256, a M256) {
	*r = a
}

// StoreM256d stores the value to the reference.
// Models _mm256_store_pd (VMOVAPD).
func StoreM256d(r *M256d, a M256d) {
	*r = a
}

// StoreM256i stores the value to the reference.
// Models _mm256_store_si256 (VMOVDQA).
func StoreM256i(r *M256i, a M256i) {
	*r = a
}

// StoreUnalignedM256 stores the lanes into the array.
// Models _mm256_storeu_ps (VMOVUPS).
func StoreUnalignedM256(r *[8]float32, a M256) {
	*r = a.v
}

// StoreUnalignedM256d stores the lanes into the array.
// Models _mm256_storeu_pd (VMOVUPD).
func StoreUnalignedM256d(r *[4]float64, a M256d) {
	*r = a.v
}

// StoreUnalignedM256i stores the bytes into the array.
// Models _mm256_storeu_si256 (VMOVDQU).
func StoreUnalignedM256i(r *[32]byte, a M256i) {
	*r = a.v
}

// StoreUnalignedHiLoM256 stores the high half to hi and the low half
// to lo.
// Models _mm256_storeu2_m128.
func StoreUnalignedHiLoM256(hi, lo *[4]float32, a M256) {
	copy(lo[:], a.v[:4])
	copy(hi[:], a.v[4:])
}

// StoreUnalignedHiLoM256d stores the high half to hi and the low half
// to lo.
// Models _mm256_storeu2_m128d.
func StoreUnalignedHiLoM256d(hi, lo *[2]float64, a M256d) {
	copy(lo[:], a.v[:2])
	copy(hi[:], a.v[2:])
}

// StoreUnalignedHiLoM256i stores the high half to hi and the low half
// to lo.
// Models _mm256_storeu2_m128i.
func StoreUnalignedHiLoM256i(hi, lo *[16]byte, a M256i) {
	copy(lo[:], a.v[:16])
	copy(hi[:], a.v[16:])
}

// SubM256 performs lanewise subtraction.
// Models _mm256_sub_ps (VSUBPS).
func SubM256(a, b M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// SubM256d performs lanewise subtraction.
// Models _mm256_sub_pd (VSUBPD).
func SubM256d(a, b M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// UnpackHighM256 interleaves the high lanes of each 128-bit half of a
// and b.
// Models _mm256_unpackhi_ps (VUNPCKHPS).
func UnpackHighM256(a, b M256) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+2]
		r.v[h+1] = b.v[h+2]
		r.v[h+2] = a.v[h+3]
		r.v[h+3] = b.v[h+3]
	}
	return r
}

// UnpackHighM256d interleaves the high lanes of each 128-bit half of a
// and b.
// Models _mm256_unpackhi_pd (VUNPCKHPD).
func UnpackHighM256d(a, b M256d) M256d {
	return M256d{v: [4]float64{a.v[1], b.v[1], a.v[3], b.v[3]}}
}

// UnpackLowM256 interleaves the low lanes of each 128-bit half of a
// and b.
// Models _mm256_unpacklo_ps (VUNPCKLPS).
func UnpackLowM256(a, b M256) M256 {
	var r M256
	for h := 0; h < 8; h += 4 {
		r.v[h+0] = a.v[h+0]
		r.v[h+1] = b.v[h+0]
		r.v[h+2] = a.v[h+1]
		r.v[h+3] = b.v[h+1]
	}
	return r
}

// UnpackLowM256d interleaves the low lanes of each 128-bit half of a
// and b.
// Models _mm256_unpacklo_pd (VUNPCKLPD).
func UnpackLowM256d(a, b M256d) M256d {
	return M256d{v: [4]float64{a.v[0], b.v[0], a.v[2], b.v[2]}}
}

// ZeroExtendM128 places a in the low half and zeroes the high half.
// Models _mm256_zextps128_ps256.
func ZeroExtendM128(a M128) M256 {
	var r M256
	copy(r.v[:4], a.v[:])
	return r
}

// ZeroExtendM128d places a in the low half and zeroes the high half.
// Models _mm256_zextpd128_pd256.
func ZeroExtendM128d(a M128d) M256d {
	var r M256d
	copy(r.v[:2], a.v[:])
	return r
}

// ZeroExtendM128i places a in the low half and zeroes the high half.
// Models _mm256_zextsi128_si256.
func ZeroExtendM128i(a M128i) M256i {
	var r M256i
	copy(r.v[:16], a.v[:])
	return r
}

// ZeroedM256 returns the all-zero register.
// Models _mm256_setzero_ps (VXORPS).
func ZeroedM256() M256 {
	return M256{}
}

// ZeroedM256d returns the all-zero register.
// Models _mm256_setzero_pd (VXORPD).
func ZeroedM256d() M256d {
	return M256d{}
}

// ZeroedM256i returns the all-zero register.
// Models _mm256_setzero_si256 (VPXOR).
func ZeroedM256i() M256i {
	return M256i{}
}
