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

// Most 256-bit integer operations work on each 128-bit half
// independently, exactly as two copies of the 128-bit instruction.
// The helpers below split and rejoin halves so each such operation
// can reuse its 128-bit model.

func m256iHalves(a M256i) (lo, hi M128i) {
	copy(lo.v[:], a.v[:16])
	copy(hi.v[:], a.v[16:])
	return lo, hi
}

func m256iJoin(lo, hi M128i) M256i {
	var r M256i
	copy(r.v[:16], lo.v[:])
	copy(r.v[16:], hi.v[:])
	return r
}

// perHalf applies a 128-bit two-operand operation to each half.
func perHalf(a, b M256i, op func(x, y M128i) M128i) M256i {
	al, ah := m256iHalves(a)
	bl, bh := m256iHalves(b)
	return m256iJoin(op(al, bl), op(ah, bh))
}

// perHalf1 applies a 128-bit one-operand operation to each half.
func perHalf1(a M256i, op func(x M128i) M128i) M256i {
	al, ah := m256iHalves(a)
	return m256iJoin(op(al), op(ah))
}

// AbsI8M256i takes the lanewise absolute value of int8 lanes.
// Models _mm256_abs_epi8 (VPABSB).
func AbsI8M256i(a M256i) M256i {
	return perHalf1(a, AbsI8M128i)
}

// AbsI16M256i takes the lanewise absolute value of int16 lanes.
// Models _mm256_abs_epi16 (VPABSW).
func AbsI16M256i(a M256i) M256i {
	return perHalf1(a, AbsI16M128i)
}

// AbsI32M256i takes the lanewise absolute value of int32 lanes.
// Models _mm256_abs_epi32 (VPABSD).
func AbsI32M256i(a M256i) M256i {
	return perHalf1(a, AbsI32M128i)
}

// AddI8M256i performs lanewise wrapping addition of int8 lanes.
// Models _mm256_add_epi8 (VPADDB).
func AddI8M256i(a, b M256i) M256i {
	return perHalf(a, b, AddI8M128i)
}

// AddI16M256i performs lanewise wrapping addition of int16 lanes.
// Models _mm256_add_epi16 (VPADDW).
func AddI16M256i(a, b M256i) M256i {
	return perHalf(a, b, AddI16M128i)
}

// AddI32M256i performs lanewise wrapping addition of int32 lanes.
// Models _mm256_add_epi32 (VPADDD).
func AddI32M256i(a, b M256i) M256i {
	return perHalf(a, b, AddI32M128i)
}

// AddI64M256i performs lanewise wrapping addition of int64 lanes.
// Models _mm256_add_epi64 (VPADDQ).
func AddI64M256i(a, b M256i) M256i {
	return perHalf(a, b, AddI64M128i)
}

// AddSaturatingI8M256i performs lanewise saturating addition of int8
// lanes.
// Models _mm256_adds_epi8 (VPADDSB).
func AddSaturatingI8M256i(a, b M256i) M256i {
	return perHalf(a, b, AddSaturatingI8M128i)
}

// AddSaturatingI16M256i performs lanewise saturating addition of int16
// lanes.
// Models _mm256_adds_epi16 (VPADDSW).
func AddSaturatingI16M256i(a, b M256i) M256i {
	return perHalf(a, b, AddSaturatingI16M128i)
}

// AddSaturatingU8M256i performs lanewise saturating addition of uint8
// lanes.
// Models _mm256_adds_epu8 (VPADDUSB).
func AddSaturatingU8M256i(a, b M256i) M256i {
	return perHalf(a, b, AddSaturatingU8M128i)
}

// AddSaturatingU16M256i performs lanewise saturating addition of
// uint16 lanes.
// Models _mm256_adds_epu16 (VPADDUSW).
func AddSaturatingU16M256i(a, b M256i) M256i {
	return perHalf(a, b, AddSaturatingU16M128i)
}

// SubI8M256i performs lanewise wrapping subtraction of int8 lanes.
// Models _mm256_sub_epi8 (VPSUBB).
func SubI8M256i(a, b M256i) M256i {
	return perHalf(a, b, SubI8M128i)
}

// SubI16M256i performs lanewise wrapping subtraction of int16 lanes.
// Models _mm256_sub_epi16 (VPSUBW).
func SubI16M256i(a, b M256i) M256i {
	return perHalf(a, b, SubI16M128i)
}

// SubI32M256i performs lanewise wrapping subtraction of int32 lanes.
// Models _mm256_sub_epi32 (VPSUBD).
func SubI32M256i(a, b M256i) M256i {
	return perHalf(a, b, SubI32M128i)
}

// SubI64M256i performs lanewise wrapping subtraction of int64 lanes.
// Models _mm256_sub_epi64 (VPSUBQ).
func SubI64M256i(a, b M256i) M256i {
	return perHalf(a, b, SubI64M128i)
}

// SubSaturatingI8M256i performs lanewise saturating subtraction of
// int8 lanes.
// Models _mm256_subs_epi8 (VPSUBSB).
func SubSaturatingI8M256i(a, b M256i) M256i {
	return perHalf(a, b, SubSaturatingI8M128i)
}

// SubSaturatingI16M256i performs lanewise saturating subtraction of
// int16 lanes.
// Models _mm256_subs_epi16 (VPSUBSW).
func SubSaturatingI16M256i(a, b M256i) M256i {
	return perHalf(a, b, SubSaturatingI16M128i)
}

// SubSaturatingU8M256i performs lanewise saturating subtraction of
// uint8 lanes.
// Models _mm256_subs_epu8 (VPSUBUSB).
func SubSaturatingU8M256i(a, b M256i) M256i {
	return perHalf(a, b, SubSaturatingU8M128i)
}

// SubSaturatingU16M256i performs lanewise saturating subtraction of
// uint16 lanes.
// Models _mm256_subs_epu16 (VPSUBUSW).
func SubSaturatingU16M256i(a, b M256i) M256i {
	return perHalf(a, b, SubSaturatingU16M128i)
}

// CombinedByteShrImmM256i runs CombinedByteShrImmM128i on each 128-bit
// half pair.
// Models _mm256_alignr_epi8 (VPALIGNR).
func CombinedByteShrImmM256i(a, b M256i, imm int) M256i {
	return perHalf(a, b, func(x, y M128i) M128i {
		return CombinedByteShrImmM128i(x, y, imm)
	})
}

// AndM256i performs a bitwise AND.
// Models _mm256_and_si256 (VPAND).
func AndM256i(a, b M256i) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = a.v[i] & b.v[i]
	}
	return r
}

// AndNotM256i performs a bitwise (NOT a) AND b.
// Models _mm256_andnot_si256 (VPANDN).
func AndNotM256i(a, b M256i) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = ^a.v[i] & b.v[i]
	}
	return r
}

// OrM256i performs a bitwise OR.
// Models _mm256_or_si256 (VPOR).
func OrM256i(a, b M256i) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = a.v[i] | b.v[i]
	}
	return r
}

// XorM256i performs a bitwise XOR.
// Models _mm256_xor_si256 (VPXOR).
func XorM256i(a, b M256i) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = a.v[i] ^ b.v[i]
	}
	return r
}

// AverageU8M256i performs a lanewise rounded average of uint8 lanes.
// Models _mm256_avg_epu8 (VPAVGB).
func AverageU8M256i(a, b M256i) M256i {
	return perHalf(a, b, AverageU8M128i)
}

// AverageU16M256i performs a lanewise rounded average of uint16 lanes.
// Models _mm256_avg_epu16 (VPAVGW).
func AverageU16M256i(a, b M256i) M256i {
	return perHalf(a, b, AverageU16M128i)
}

// BlendImmI32M128i picks each int32 lane from b where the matching bit
// of imm is set, from a where it is clear.
// Models _mm_blend_epi32 (VPBLENDD).
func BlendImmI32M128i(a, b M128i, imm int) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		if imm>>i&1 != 0 {
			r[i] = y[i]
		} else {
			r[i] = x[i]
		}
	}
	return M128iFromI32x4(r)
}

// BlendImmI32M256i picks each int32 lane from b where the matching bit
// of imm is set, from a where it is clear.
// Models _mm256_blend_epi32 (VPBLENDD).
func BlendImmI32M256i(a, b M256i, imm int) M256i {
	x, y := a.I32x8(), b.I32x8()
	var r [8]int32
	for i := range r {
		if imm>>i&1 != 0 {
			r[i] = y[i]
		} else {
			r[i] = x[i]
		}
	}
	return M256iFromI32x8(r)
}

// BlendImmI16M256i picks int16 lanes from b by the imm bits; bit i of
// the low eight controls lane i in both halves.
// Models _mm256_blend_epi16 (VPBLENDW).
func BlendImmI16M256i(a, b M256i, imm int) M256i {
	return perHalf(a, b, func(x, y M128i) M128i {
		return BlendImmI16M128i(x, y, imm)
	})
}

// BlendVaryingI8M256i picks each byte from b where the matching mask
// byte has its high bit set, from a where it is clear.
// Models _mm256_blendv_epi8 (VPBLENDVB).
func BlendVaryingI8M256i(a, b, mask M256i) M256i {
	r := a
	for i, m := range mask.v {
		if m&0x80 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// ByteShlImmU128M256i shifts each 128-bit half left by imm bytes,
// toward the high lanes. Shifts of 16 or more clear the halves.
// Models _mm256_bslli_epi128 (VPSLLDQ).
func ByteShlImmU128M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i {
		return ByteShlImmU128M128i(x, imm)
	})
}

// ByteShrImmU128M256i shifts each 128-bit half right by imm bytes,
// toward the low lanes. Shifts of 16 or more clear the halves.
// Models _mm256_bsrli_epi128 (VPSRLDQ).
func ByteShrImmU128M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i {
		return ByteShrImmU128M128i(x, imm)
	})
}

// CmpEqMaskI8M256i marks int8 lanes where a == b.
// Models _mm256_cmpeq_epi8 (VPCMPEQB).
func CmpEqMaskI8M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpEqMaskI8M128i)
}

// CmpEqMaskI16M256i marks int16 lanes where a == b.
// Models _mm256_cmpeq_epi16 (VPCMPEQW).
func CmpEqMaskI16M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpEqMaskI16M128i)
}

// CmpEqMaskI32M256i marks int32 lanes where a == b.
// Models _mm256_cmpeq_epi32 (VPCMPEQD).
func CmpEqMaskI32M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpEqMaskI32M128i)
}

// CmpEqMaskI64M256i marks int64 lanes where a == b.
// Models _mm256_cmpeq_epi64 (VPCMPEQQ).
func CmpEqMaskI64M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpEqMaskI64M128i)
}

// CmpGtMaskI8M256i marks int8 lanes where a > b.
// Models _mm256_cmpgt_epi8 (VPCMPGTB).
func CmpGtMaskI8M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpGtMaskI8M128i)
}

// CmpGtMaskI16M256i marks int16 lanes where a > b.
// Models _mm256_cmpgt_epi16 (VPCMPGTW).
func CmpGtMaskI16M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpGtMaskI16M128i)
}

// CmpGtMaskI32M256i marks int32 lanes where a > b.
// Models _mm256_cmpgt_epi32 (VPCMPGTD).
func CmpGtMaskI32M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpGtMaskI32M128i)
}

// CmpGtMaskI64M256i marks int64 lanes where a > b.
// Models _mm256_cmpgt_epi64 (VPCMPGTQ).
func CmpGtMaskI64M256i(a, b M256i) M256i {
	return perHalf(a, b, CmpGtMaskI64M128i)
}

// ConvertI8ToI16M256i sign-extends all sixteen int8 lanes to int16.
// Models _mm256_cvtepi8_epi16 (VPMOVSXBW).
func ConvertI8ToI16M256i(a M128i) M256i {
	x := a.I8x16()
	var r M256i
	for i, v := range x {
		putI16(r.v[:], i, int16(v))
	}
	return r
}

// ConvertI8Lower8ToI32M256i sign-extends the lower eight int8 lanes to
// int32.
// Models _mm256_cvtepi8_epi32 (VPMOVSXBD).
func ConvertI8Lower8ToI32M256i(a M128i) M256i {
	x := a.I8x16()
	var r M256i
	for i := 0; i < 8; i++ {
		putI32(r.v[:], i, int32(x[i]))
	}
	return r
}

// ConvertI8Lower4ToI64M256i sign-extends the lower four int8 lanes to
// int64.
// Models _mm256_cvtepi8_epi64 (VPMOVSXBQ).
func ConvertI8Lower4ToI64M256i(a M128i) M256i {
	x := a.I8x16()
	var r M256i
	for i := 0; i < 4; i++ {
		putI64(r.v[:], i, int64(x[i]))
	}
	return r
}

// ConvertI16ToI32M256i sign-extends all eight int16 lanes to int32.
// Models _mm256_cvtepi16_epi32 (VPMOVSXWD).
func ConvertI16ToI32M256i(a M128i) M256i {
	x := a.I16x8()
	var r M256i
	for i, v := range x {
		putI32(r.v[:], i, int32(v))
	}
	return r
}

// ConvertI16Lower4ToI64M256i sign-extends the lower four int16 lanes
// to int64.
// Models _mm256_cvtepi16_epi64 (VPMOVSXWQ).
func ConvertI16Lower4ToI64M256i(a M128i) M256i {
	x := a.I16x8()
	var r M256i
	for i := 0; i < 4; i++ {
		putI64(r.v[:], i, int64(x[i]))
	}
	return r
}

// ConvertI32ToI64M256i sign-extends all four int32 lanes to int64.
// Models _mm256_cvtepi32_epi64 (VPMOVSXDQ).
func ConvertI32ToI64M256i(a M128i) M256i {
	x := a.I32x4()
	var r M256i
	for i, v := range x {
		putI64(r.v[:], i, int64(v))
	}
	return r
}

// ConvertU8ToU16M256i zero-extends all sixteen uint8 lanes to uint16.
// Models _mm256_cvtepu8_epi16 (VPMOVZXBW).
func ConvertU8ToU16M256i(a M128i) M256i {
	x := a.U8x16()
	var r M256i
	for i, v := range x {
		putU16(r.v[:], i, uint16(v))
	}
	return r
}

// ConvertU8Lower8ToU32M256i zero-extends the lower eight uint8 lanes
// to uint32.
// Models _mm256_cvtepu8_epi32 (VPMOVZXBD).
func ConvertU8Lower8ToU32M256i(a M128i) M256i {
	x := a.U8x16()
	var r M256i
	for i := 0; i < 8; i++ {
		putU32(r.v[:], i, uint32(x[i]))
	}
	return r
}

// ConvertU8Lower4ToU64M256i zero-extends the lower four uint8 lanes to
// uint64.
// Models _mm256_cvtepu8_epi64 (VPMOVZXBQ).
func ConvertU8Lower4ToU64M256i(a M128i) M256i {
	x := a.U8x16()
	var r M256i
	for i := 0; i < 4; i++ {
		putU64(r.v[:], i, uint64(x[i]))
	}
	return r
}

// ConvertU16ToU32M256i zero-extends all eight uint16 lanes to uint32.
// Models _mm256_cvtepu16_epi32 (VPMOVZXWD).
func ConvertU16ToU32M256i(a M128i) M256i {
	x := a.U16x8()
	var r M256i
	for i, v := range x {
		putU32(r.v[:], i, uint32(v))
	}
	return r
}

// ConvertU16Lower4ToU64M256i zero-extends the lower four uint16 lanes
// to uint64.
// Models _mm256_cvtepu16_epi64 (VPMOVZXWQ).
func ConvertU16Lower4ToU64M256i(a M128i) M256i {
	x := a.U16x8()
	var r M256i
	for i := 0; i < 4; i++ {
		putU64(r.v[:], i, uint64(x[i]))
	}
	return r
}

// ConvertU32ToU64M256i zero-extends all four uint32 lanes to uint64.
// Models _mm256_cvtepu32_epi64 (VPMOVZXDQ).
func ConvertU32ToU64M256i(a M128i) M256i {
	x := a.U32x4()
	var r M256i
	for i, v := range x {
		putU64(r.v[:], i, uint64(v))
	}
	return r
}

// ExtractI8AsI32FromM256i returns the uint8 lane picked by imm, masked
// to 0..31, zero-extended to int32.
// Models _mm256_extract_epi8 (VPEXTRB).
func ExtractI8AsI32FromM256i(a M256i, imm int) int32 {
	return int32(a.v[imm&0b11111])
}

// ExtractI16AsI32FromM256i returns the uint16 lane picked by imm,
// masked to 0..15, zero-extended to int32.
// Models _mm256_extract_epi16 (VPEXTRW).
func ExtractI16AsI32FromM256i(a M256i, imm int) int32 {
	return int32(getU16(a.v[:], imm&0b1111))
}

// AddHorizontalI16M256i sums adjacent int16 lane pairs with wrapping
// within each 128-bit half, a pairs below b pairs.
// Models _mm256_hadd_epi16 (VPHADDW).
func AddHorizontalI16M256i(a, b M256i) M256i {
	return perHalf(a, b, AddHorizontalI16M128i)
}

// AddHorizontalI32M256i sums adjacent int32 lane pairs with wrapping
// within each 128-bit half, a pairs below b pairs.
// Models _mm256_hadd_epi32 (VPHADDD).
func AddHorizontalI32M256i(a, b M256i) M256i {
	return perHalf(a, b, AddHorizontalI32M128i)
}

// AddHorizontalSaturatingI16M256i sums adjacent int16 lane pairs with
// saturation within each 128-bit half, a pairs below b pairs.
// Models _mm256_hadds_epi16 (VPHADDSW).
func AddHorizontalSaturatingI16M256i(a, b M256i) M256i {
	return perHalf(a, b, AddHorizontalSaturatingI16M128i)
}

// SubHorizontalI16M256i subtracts within adjacent int16 lane pairs
// with wrapping within each 128-bit half, a pairs below b pairs.
// Models _mm256_hsub_epi16 (VPHSUBW).
func SubHorizontalI16M256i(a, b M256i) M256i {
	return perHalf(a, b, SubHorizontalI16M128i)
}

// SubHorizontalI32M256i subtracts within adjacent int32 lane pairs
// with wrapping within each 128-bit half, a pairs below b pairs.
// Models _mm256_hsub_epi32 (VPHSUBD).
func SubHorizontalI32M256i(a, b M256i) M256i {
	return perHalf(a, b, SubHorizontalI32M128i)
}

// SubHorizontalSaturatingI16M256i subtracts within adjacent int16 lane
// pairs with saturation within each 128-bit half, a pairs below b
// pairs.
// Models _mm256_hsubs_epi16 (VPHSUBSW).
func SubHorizontalSaturatingI16M256i(a, b M256i) M256i {
	return perHalf(a, b, SubHorizontalSaturatingI16M128i)
}

// MulI16HorizontalAddM256i multiplies int16 lanes into 32-bit
// products, then sums each adjacent pair into an int32 lane.
// Models _mm256_madd_epi16 (VPMADDWD).
func MulI16HorizontalAddM256i(a, b M256i) M256i {
	return perHalf(a, b, MulI16HorizontalAddM128i)
}

// MulU8I8AddHorizontalSaturatingM256i multiplies uint8 lanes of a by
// the int8 lanes of b, then sums each adjacent product pair into an
// int16 lane with saturation.
// Models _mm256_maddubs_epi16 (VPMADDUBSW).
func MulU8I8AddHorizontalSaturatingM256i(a, b M256i) M256i {
	return perHalf(a, b, MulU8I8AddHorizontalSaturatingM128i)
}

// LoadMaskedI32M128i loads each int32 lane whose mask lane has its
// sign bit set, zeroing the rest.
// Models _mm_maskload_epi32 (VPMASKMOVD).
func LoadMaskedI32M128i(a *M128i, mask M128i) M128i {
	var r M128i
	for i := 0; i < 4; i++ {
		if getU32(mask.v[:], i)>>31 != 0 {
			putU32(r.v[:], i, getU32(a.v[:], i))
		}
	}
	return r
}

// LoadMaskedI64M128i loads each int64 lane whose mask lane has its
// sign bit set, zeroing the rest.
// Models _mm_maskload_epi64 (VPMASKMOVQ).
func LoadMaskedI64M128i(a *M128i, mask M128i) M128i {
	var r M128i
	for i := 0; i < 2; i++ {
		if getU64(mask.v[:], i)>>63 != 0 {
			putU64(r.v[:], i, getU64(a.v[:], i))
		}
	}
	return r
}

// LoadMaskedI32M256i loads each int32 lane whose mask lane has its
// sign bit set, zeroing the rest.
// Models _mm256_maskload_epi32 (VPMASKMOVD).
func LoadMaskedI32M256i(a *M256i, mask M256i) M256i {
	var r M256i
	for i := 0; i < 8; i++ {
		if getU32(mask.v[:], i)>>31 != 0 {
			putU32(r.v[:], i, getU32(a.v[:], i))
		}
	}
	return r
}

// LoadMaskedI64M256i loads each int64 lane whose mask lane has its
// sign bit set, zeroing the rest.
// Models _mm256_maskload_epi64 (VPMASKMOVQ).
func LoadMaskedI64M256i(a *M256i, mask M256i) M256i {
	var r M256i
	for i := 0; i < 4; i++ {
		if getU64(mask.v[:], i)>>63 != 0 {
			putU64(r.v[:], i, getU64(a.v[:], i))
		}
	}
	return r
}

// StoreMaskedI32M128i stores each int32 lane whose mask lane has its
// sign bit set, leaving the rest untouched.
// Models _mm_maskstore_epi32 (VPMASKMOVD).
func StoreMaskedI32M128i(r *M128i, mask M128i, a M128i) {
	for i := 0; i < 4; i++ {
		if getU32(mask.v[:], i)>>31 != 0 {
			putU32(r.v[:], i, getU32(a.v[:], i))
		}
	}
}

// StoreMaskedI64M128i stores each int64 lane whose mask lane has its
// sign bit set, leaving the rest untouched.
// Models _mm_maskstore_epi64 (VPMASKMOVQ).
func StoreMaskedI64M128i(r *M128i, mask M128i, a M128i) {
	for i := 0; i < 2; i++ {
		if getU64(mask.v[:], i)>>63 != 0 {
			putU64(r.v[:], i, getU64(a.v[:], i))
		}
	}
}

// StoreMaskedI32M256i stores each int32 lane whose mask lane has its
// sign bit set, leaving the rest untouched.
// Models _mm256_maskstore_epi32 (VPMASKMOVD).
func StoreMaskedI32M256i(r *M256i, mask M256i, a M256i) {
	for i := 0; i < 8; i++ {
		if getU32(mask.v[:], i)>>31 != 0 {
			putU32(r.v[:], i, getU32(a.v[:], i))
		}
	}
}

// StoreMaskedI64M256i stores each int64 lane whose mask lane has its
// sign bit set, leaving the rest untouched.
// Models _mm256_maskstore_epi64 (VPMASKMOVQ).
func StoreMaskedI64M256i(r *M256i, mask M256i, a M256i) {
	for i := 0; i < 4; i++ {
		if getU64(mask.v[:], i)>>63 != 0 {
			putU64(r.v[:], i, getU64(a.v[:], i))
		}
	}
}

// MaxI8M256i performs a lanewise maximum of int8 lanes.
// Models _mm256_max_epi8 (VPMAXSB).
func MaxI8M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxI8M128i)
}

// MaxI16M256i performs a lanewise maximum of int16 lanes.
// Models _mm256_max_epi16 (VPMAXSW).
func MaxI16M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxI16M128i)
}

// MaxI32M256i performs a lanewise maximum of int32 lanes.
// Models _mm256_max_epi32 (VPMAXSD).
func MaxI32M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxI32M128i)
}

// MaxU8M256i performs a lanewise maximum of uint8 lanes.
// Models _mm256_max_epu8 (VPMAXUB).
func MaxU8M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxU8M128i)
}

// MaxU16M256i performs a lanewise maximum of uint16 lanes.
// Models _mm256_max_epu16 (VPMAXUW).
func MaxU16M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxU16M128i)
}

// MaxU32M256i performs a lanewise maximum of uint32 lanes.
// Models _mm256_max_epu32 (VPMAXUD).
func MaxU32M256i(a, b M256i) M256i {
	return perHalf(a, b, MaxU32M128i)
}

// MinI8M256i performs a lanewise minimum of int8 lanes.
// Models _mm256_min_epi8 (VPMINSB).
func MinI8M256i(a, b M256i) M256i {
	return perHalf(a, b, MinI8M128i)
}

// MinI16M256i performs a lanewise minimum of int16 lanes.
// Models _mm256_min_epi16 (VPMINSW).
func MinI16M256i(a, b M256i) M256i {
	return perHalf(a, b, MinI16M128i)
}

// MinI32M256i performs a lanewise minimum of int32 lanes.
// Models _mm256_min_epi32 (VPMINSD).
func MinI32M256i(a, b M256i) M256i {
	return perHalf(a, b, MinI32M128i)
}

// MinU8M256i performs a lanewise minimum of uint8 lanes.
// Models _mm256_min_epu8 (VPMINUB).
func MinU8M256i(a, b M256i) M256i {
	return perHalf(a, b, MinU8M128i)
}

// MinU16M256i performs a lanewise minimum of uint16 lanes.
// Models _mm256_min_epu16 (VPMINUW).
func MinU16M256i(a, b M256i) M256i {
	return perHalf(a, b, MinU16M128i)
}

// MinU32M256i performs a lanewise minimum of uint32 lanes.
// Models _mm256_min_epu32 (VPMINUD).
func MinU32M256i(a, b M256i) M256i {
	return perHalf(a, b, MinU32M128i)
}

// MoveMaskI8M256i gathers the sign bit of each int8 lane into the
// result.
// Models _mm256_movemask_epi8 (VPMOVMSKB).
func MoveMaskI8M256i(a M256i) int32 {
	var m int32
	for i, x := range a.v {
		if x&0x80 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MultiPackedSumAbsDiffU8M256i computes eight sliding 4-byte sums of
// absolute differences in each 128-bit half: the low three imm bits
// control the low half and the next three the high half, as in
// MultiPackedSumAbsDiffU8M128i.
// Models _mm256_mpsadbw_epu8 (VMPSADBW).
func MultiPackedSumAbsDiffU8M256i(a, b M256i, imm int) M256i {
	al, ah := m256iHalves(a)
	bl, bh := m256iHalves(b)
	return m256iJoin(
		MultiPackedSumAbsDiffU8M128i(al, bl, imm&0b111),
		MultiPackedSumAbsDiffU8M128i(ah, bh, imm>>3&0b111),
	)
}

// MulWidenI32OddM256i multiplies the even int32 lanes, widening each
// product to int64.
// Models _mm256_mul_epi32 (VPMULDQ).
func MulWidenI32OddM256i(a, b M256i) M256i {
	return perHalf(a, b, MulWidenI32OddM128i)
}

// MulWidenU32OddM256i multiplies the even uint32 lanes, widening each
// product to uint64.
// Models _mm256_mul_epu32 (VPMULUDQ).
func MulWidenU32OddM256i(a, b M256i) M256i {
	return perHalf(a, b, MulWidenU32OddM128i)
}

// MulI16KeepHighM256i multiplies int16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm256_mulhi_epi16 (VPMULHW).
func MulI16KeepHighM256i(a, b M256i) M256i {
	return perHalf(a, b, MulI16KeepHighM128i)
}

// MulU16KeepHighM256i multiplies uint16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm256_mulhi_epu16 (VPMULHUW).
func MulU16KeepHighM256i(a, b M256i) M256i {
	return perHalf(a, b, MulU16KeepHighM128i)
}

// MulI16ScaleRoundM256i multiplies int16 lanes into 32-bit products,
// keeps bits 16..30 of each, and rounds to the nearest value.
// Models _mm256_mulhrs_epi16 (VPMULHRSW).
func MulI16ScaleRoundM256i(a, b M256i) M256i {
	return perHalf(a, b, MulI16ScaleRoundM128i)
}

// MulI16KeepLowM256i multiplies int16 lanes and keeps the low half of
// each 32-bit product.
// Models _mm256_mullo_epi16 (VPMULLW).
func MulI16KeepLowM256i(a, b M256i) M256i {
	return perHalf(a, b, MulI16KeepLowM128i)
}

// MulI32KeepLowM256i multiplies int32 lanes and keeps the low half of
// each 64-bit product.
// Models _mm256_mullo_epi32 (VPMULLD).
func MulI32KeepLowM256i(a, b M256i) M256i {
	return perHalf(a, b, MulI32KeepLowM128i)
}

// PackI16ToI8M256i narrows int16 lanes to int8 with signed saturation,
// a then b within each 128-bit half.
// Models _mm256_packs_epi16 (VPACKSSWB).
func PackI16ToI8M256i(a, b M256i) M256i {
	return perHalf(a, b, PackI16ToI8M128i)
}

// PackI32ToI16M256i narrows int32 lanes to int16 with signed
// saturation, a then b within each 128-bit half.
// Models _mm256_packs_epi32 (VPACKSSDW).
func PackI32ToI16M256i(a, b M256i) M256i {
	return perHalf(a, b, PackI32ToI16M128i)
}

// PackI16ToU8M256i narrows int16 lanes to uint8 with unsigned
// saturation, a then b within each 128-bit half.
// Models _mm256_packus_epi16 (VPACKUSWB).
func PackI16ToU8M256i(a, b M256i) M256i {
	return perHalf(a, b, PackI16ToU8M128i)
}

// PackI32ToU16M256i narrows int32 lanes to uint16 with unsigned
// saturation, a then b within each 128-bit half.
// Models _mm256_packus_epi32 (VPACKUSDW).
func PackI32ToU16M256i(a, b M256i) M256i {
	return perHalf(a, b, PackI32ToU16M128i)
}

// PermuteI64M256i picks each int64 lane from a by index, crossing the
// 128-bit halves. Each index is masked to 0..3.
// Models _mm256_permute4x64_epi64 (VPERMQ).
func PermuteI64M256i(a M256i, z, o, t, e int) M256i {
	x := a.I64x4()
	return M256iFromI64x4([4]int64{
		x[z&0b11],
		x[o&0b11],
		x[t&0b11],
		x[e&0b11],
	})
}

// PermuteF64M256d picks each lane from a by index, crossing the
// 128-bit halves. Each index is masked to 0..3.
// Models _mm256_permute4x64_pd (VPERMPD).
func PermuteF64M256d(a M256d, z, o, t, e int) M256d {
	return M256d{v: [4]float64{
		a.v[z&0b11],
		a.v[o&0b11],
		a.v[t&0b11],
		a.v[e&0b11],
	}}
}

// PermuteVaryingI32M256i picks each int32 lane from a by the low three
// bits of the matching index lane, crossing the 128-bit halves.
// Models _mm256_permutevar8x32_epi32 (VPERMD).
func PermuteVaryingI32M256i(a, idx M256i) M256i {
	var r M256i
	for i := 0; i < 8; i++ {
		j := int(getU32(idx.v[:], i) & 0b111)
		putU32(r.v[:], i, getU32(a.v[:], j))
	}
	return r
}

// PermuteVaryingAcrossM256 picks each lane from a by the low three
// bits of the matching index lane, crossing the 128-bit halves.
// Models _mm256_permutevar8x32_ps (VPERMPS).
func PermuteVaryingAcrossM256(a M256, idx M256i) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = a.v[getU32(idx.v[:], i)&0b111]
	}
	return r
}

// SumAbsDiffU8M256i sums the absolute differences of the uint8 lanes
// in each 64-bit quarter into that quarter's low 16 bits.
// Models _mm256_sad_epu8 (VPSADBW).
func SumAbsDiffU8M256i(a, b M256i) M256i {
	return perHalf(a, b, SumAbsDiffU8M128i)
}

// ShuffleI32M256i picks int32 lanes within each 128-bit half of a by
// the same four indices. Each index is masked to 0..3.
// Models _mm256_shuffle_epi32 (VPSHUFD).
func ShuffleI32M256i(a M256i, z, o, t, e int) M256i {
	return perHalf1(a, func(x M128i) M128i {
		return ShuffleI32M128i(x, z, o, t, e)
	})
}

// ShuffleVarI8M256i picks each byte within its 128-bit half of a by
// the matching index byte of v, masked to 0..15. An index with its
// high bit set zeroes that byte instead.
// Models _mm256_shuffle_epi8 (VPSHUFB).
func ShuffleVarI8M256i(a, v M256i) M256i {
	return perHalf(a, v, ShuffleVarI8M128i)
}

// ShuffleLowI16M256i picks the low four int16 lanes of each 128-bit
// half by index; the high quads carry over. Each index is masked to
// 0..3.
// Models _mm256_shufflelo_epi16 (VPSHUFLW).
func ShuffleLowI16M256i(a M256i, z, o, t, e int) M256i {
	return perHalf1(a, func(x M128i) M128i {
		return ShuffleLowI16M128i(x, z, o, t, e)
	})
}

// ShuffleHighI16M256i picks the high four int16 lanes of each 128-bit
// half by index; the low quads carry over. Each index is masked to
// 0..3.
// Models _mm256_shufflehi_epi16 (VPSHUFHW).
func ShuffleHighI16M256i(a M256i, z, o, t, e int) M256i {
	return perHalf1(a, func(x M128i) M128i {
		return ShuffleHighI16M128i(x, z, o, t, e)
	})
}

// SignApplyI8M256i negates, keeps, or zeroes each int8 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm256_sign_epi8 (VPSIGNB).
func SignApplyI8M256i(a, b M256i) M256i {
	return perHalf(a, b, SignApplyI8M128i)
}

// SignApplyI16M256i negates, keeps, or zeroes each int16 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm256_sign_epi16 (VPSIGNW).
func SignApplyI16M256i(a, b M256i) M256i {
	return perHalf(a, b, SignApplyI16M128i)
}

// SignApplyI32M256i negates, keeps, or zeroes each int32 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm256_sign_epi32 (VPSIGND).
func SignApplyI32M256i(a, b M256i) M256i {
	return perHalf(a, b, SignApplyI32M128i)
}

// ShlImmU16M256i shifts each 16-bit lane left by imm bits. Shifts of
// 16 or more clear the register.
// Models _mm256_slli_epi16 (VPSLLW).
func ShlImmU16M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlImmU16M128i(x, imm) })
}

// ShlImmU32M256i shifts each 32-bit lane left by imm bits. Shifts of
// 32 or more clear the register.
// Models _mm256_slli_epi32 (VPSLLD).
func ShlImmU32M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlImmU32M128i(x, imm) })
}

// ShlImmU64M256i shifts each 64-bit lane left by imm bits. Shifts of
// 64 or more clear the register.
// Models _mm256_slli_epi64 (VPSLLQ).
func ShlImmU64M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlImmU64M128i(x, imm) })
}

// ShrImmU16M256i shifts each 16-bit lane right by imm bits, shifting
// in zeroes. Shifts of 16 or more clear the register.
// Models _mm256_srli_epi16 (VPSRLW).
func ShrImmU16M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrImmU16M128i(x, imm) })
}

// ShrImmU32M256i shifts each 32-bit lane right by imm bits, shifting
// in zeroes. Shifts of 32 or more clear the register.
// Models _mm256_srli_epi32 (VPSRLD).
func ShrImmU32M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrImmU32M128i(x, imm) })
}

// ShrImmU64M256i shifts each 64-bit lane right by imm bits, shifting
// in zeroes. Shifts of 64 or more clear the register.
// Models _mm256_srli_epi64 (VPSRLQ).
func ShrImmU64M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrImmU64M128i(x, imm) })
}

// ShrImmI16M256i shifts each 16-bit lane right by imm bits, shifting
// in sign bits. Shifts of 16 or more fill each lane with its sign.
// Models _mm256_srai_epi16 (VPSRAW).
func ShrImmI16M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrImmI16M128i(x, imm) })
}

// ShrImmI32M256i shifts each 32-bit lane right by imm bits, shifting
// in sign bits. Shifts of 32 or more fill each lane with its sign.
// Models _mm256_srai_epi32 (VPSRAD).
func ShrImmI32M256i(a M256i, imm int) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrImmI32M128i(x, imm) })
}

// ShlAllU16M256i shifts every 16-bit lane left by the low 64 bits of
// count. Counts above 15 clear the register.
// Models _mm256_sll_epi16 (VPSLLW).
func ShlAllU16M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlAllU16M128i(x, count) })
}

// ShlAllU32M256i shifts every 32-bit lane left by the low 64 bits of
// count. Counts above 31 clear the register.
// Models _mm256_sll_epi32 (VPSLLD).
func ShlAllU32M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlAllU32M128i(x, count) })
}

// ShlAllU64M256i shifts every 64-bit lane left by the low 64 bits of
// count. Counts above 63 clear the register.
// Models _mm256_sll_epi64 (VPSLLQ).
func ShlAllU64M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShlAllU64M128i(x, count) })
}

// ShrAllU16M256i shifts every 16-bit lane right by the low 64 bits of
// count, shifting in zeroes. Counts above 15 clear the register.
// Models _mm256_srl_epi16 (VPSRLW).
func ShrAllU16M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrAllU16M128i(x, count) })
}

// ShrAllU32M256i shifts every 32-bit lane right by the low 64 bits of
// count, shifting in zeroes. Counts above 31 clear the register.
// Models _mm256_srl_epi32 (VPSRLD).
func ShrAllU32M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrAllU32M128i(x, count) })
}

// ShrAllU64M256i shifts every 64-bit lane right by the low 64 bits of
// count, shifting in zeroes. Counts above 63 clear the register.
// Models _mm256_srl_epi64 (VPSRLQ).
func ShrAllU64M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrAllU64M128i(x, count) })
}

// ShrAllI16M256i shifts every 16-bit lane right by the low 64 bits of
// count, shifting in sign bits. Counts above 15 fill each lane with
// its sign.
// Models _mm256_sra_epi16 (VPSRAW).
func ShrAllI16M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrAllI16M128i(x, count) })
}

// ShrAllI32M256i shifts every 32-bit lane right by the low 64 bits of
// count, shifting in sign bits. Counts above 31 fill each lane with
// its sign.
// Models _mm256_sra_epi32 (VPSRAD).
func ShrAllI32M256i(a M256i, count M128i) M256i {
	return perHalf1(a, func(x M128i) M128i { return ShrAllI32M128i(x, count) })
}

// ShlEachU32M128i shifts each 32-bit lane left by its own count lane.
// Counts above 31 clear the lane.
// Models _mm_sllv_epi32 (VPSLLVD).
func ShlEachU32M128i(a, count M128i) M128i {
	var r M128i
	for i := 0; i < 4; i++ {
		if c := getU32(count.v[:], i); c <= 31 {
			putU32(r.v[:], i, getU32(a.v[:], i)<<c)
		}
	}
	return r
}

// ShlEachU64M128i shifts each 64-bit lane left by its own count lane.
// Counts above 63 clear the lane.
// Models _mm_sllv_epi64 (VPSLLVQ).
func ShlEachU64M128i(a, count M128i) M128i {
	var r M128i
	for i := 0; i < 2; i++ {
		if c := getU64(count.v[:], i); c <= 63 {
			putU64(r.v[:], i, getU64(a.v[:], i)<<c)
		}
	}
	return r
}

// ShrEachU32M128i shifts each 32-bit lane right by its own count lane,
// shifting in zeroes. Counts above 31 clear the lane.
// Models _mm_srlv_epi32 (VPSRLVD).
func ShrEachU32M128i(a, count M128i) M128i {
	var r M128i
	for i := 0; i < 4; i++ {
		if c := getU32(count.v[:], i); c <= 31 {
			putU32(r.v[:], i, getU32(a.v[:], i)>>c)
		}
	}
	return r
}

// ShrEachU64M128i shifts each 64-bit lane right by its own count lane,
// shifting in zeroes. Counts above 63 clear the lane.
// Models _mm_srlv_epi64 (VPSRLVQ).
func ShrEachU64M128i(a, count M128i) M128i {
	var r M128i
	for i := 0; i < 2; i++ {
		if c := getU64(count.v[:], i); c <= 63 {
			putU64(r.v[:], i, getU64(a.v[:], i)>>c)
		}
	}
	return r
}

// ShrEachI32M128i shifts each 32-bit lane right by its own count lane,
// shifting in sign bits. Counts above 31 fill the lane with its sign.
// Models _mm_srav_epi32 (VPSRAVD).
func ShrEachI32M128i(a, count M128i) M128i {
	var r M128i
	for i := 0; i < 4; i++ {
		c := getU32(count.v[:], i)
		if c > 31 {
			c = 31
		}
		putI32(r.v[:], i, getI32(a.v[:], i)>>c)
	}
	return r
}

// ShlEachU32M256i shifts each 32-bit lane left by its own count lane.
// Counts above 31 clear the lane.
// Models _mm256_sllv_epi32 (VPSLLVD).
func ShlEachU32M256i(a, count M256i) M256i {
	return perHalf(a, count, ShlEachU32M128i)
}

// ShlEachU64M256i shifts each 64-bit lane left by its own count lane.
// Counts above 63 clear the lane.
// Models _mm256_sllv_epi64 (VPSLLVQ).
func ShlEachU64M256i(a, count M256i) M256i {
	return perHalf(a, count, ShlEachU64M128i)
}

// ShrEachU32M256i shifts each 32-bit lane right by its own count lane,
// shifting in zeroes. Counts above 31 clear the lane.
// Models _mm256_srlv_epi32 (VPSRLVD).
func ShrEachU32M256i(a, count M256i) M256i {
	return perHalf(a, count, ShrEachU32M128i)
}

// ShrEachU64M256i shifts each 64-bit lane right by its own count lane,
// shifting in zeroes. Counts above 63 clear the lane.
// Models _mm256_srlv_epi64 (VPSRLVQ).
func ShrEachU64M256i(a, count M256i) M256i {
	return perHalf(a, count, ShrEachU64M128i)
}

// ShrEachI32M256i shifts each 32-bit lane right by its own count lane,
// shifting in sign bits. Counts above 31 fill the lane with its sign.
// Models _mm256_srav_epi32 (VPSRAVD).
func ShrEachI32M256i(a, count M256i) M256i {
	return perHalf(a, count, ShrEachI32M128i)
}

// UnpackHighI8M256i interleaves the high int8 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpackhi_epi8 (VPUNPCKHBW).
func UnpackHighI8M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackHighI8M128i)
}

// UnpackHighI16M256i interleaves the high int16 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpackhi_epi16 (VPUNPCKHWD).
func UnpackHighI16M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackHighI16M128i)
}

// UnpackHighI32M256i interleaves the high int32 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpackhi_epi32 (VPUNPCKHDQ).
func UnpackHighI32M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackHighI32M128i)
}

// UnpackHighI64M256i interleaves the high int64 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpackhi_epi64 (VPUNPCKHQDQ).
func UnpackHighI64M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackHighI64M128i)
}

// UnpackLowI8M256i interleaves the low int8 lanes of each 128-bit half
// of a and b.
// Models _mm256_unpacklo_epi8 (VPUNPCKLBW).
func UnpackLowI8M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackLowI8M128i)
}

// UnpackLowI16M256i interleaves the low int16 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpacklo_epi16 (VPUNPCKLWD).
func UnpackLowI16M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackLowI16M128i)
}

// UnpackLowI32M256i interleaves the low int32 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpacklo_epi32 (VPUNPCKLDQ).
func UnpackLowI32M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackLowI32M128i)
}

// UnpackLowI64M256i interleaves the low int64 lanes of each 128-bit
// half of a and b.
// Models _mm256_unpacklo_epi64 (VPUNPCKLQDQ).
func UnpackLowI64M256i(a, b M256i) M256i {
	return perHalf(a, b, UnpackLowI64M128i)
}
