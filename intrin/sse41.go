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

// BlendImmI16M128i picks each int16 lane from b where the matching
// bit of imm is set, from a where it is clear.
// Models _mm_blend_epi16 (PBLENDW).
func BlendImmI16M128i(a, b M128i, imm int) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		if imm>>i&1 != 0 {
			r[i] = y[i]
		} else {
			r[i] = x[i]
		}
	}
	return M128iFromI16x8(r)
}

// BlendImmM128d picks each lane from b where the matching bit of imm
// is set, from a where it is clear.
// Models _mm_blend_pd (BLENDPD).
func BlendImmM128d(a, b M128d, imm int) M128d {
	r := a
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendImmM128 picks each lane from b where the matching bit of imm is
// set, from a where it is clear.
// Models _mm_blend_ps (BLENDPS).
func BlendImmM128(a, b M128, imm int) M128 {
	r := a
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingI8M128i picks each byte from b where the matching mask
// byte has its high bit set, from a where it is clear.
// Models _mm_blendv_epi8 (PBLENDVB).
func BlendVaryingI8M128i(a, b, mask M128i) M128i {
	r := a
	for i, m := range mask.v {
		if m&0x80 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingM128d picks each lane from b where the matching mask
// lane has its sign bit set, from a where it is clear.
// Models _mm_blendv_pd (BLENDVPD).
func BlendVaryingM128d(a, b, mask M128d) M128d {
	r := a
	for i, m := range mask.Bits() {
		if m>>63 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingM128 picks each lane from b where the matching mask lane
// has its sign bit set, from a where it is clear.
// Models _mm_blendv_ps (BLENDVPS).
func BlendVaryingM128(a, b, mask M128) M128 {
	r := a
	for i, m := range mask.Bits() {
		if m>>31 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// CeilM128d rounds each lane toward positive infinity.
// Models _mm_ceil_pd (ROUNDPD).
func CeilM128d(a M128d) M128d {
	return M128d{v: [2]float64{math.Ceil(a.v[0]), math.Ceil(a.v[1])}}
}

// CeilM128 rounds each lane toward positive infinity.
// Models _mm_ceil_ps (ROUNDPS).
func CeilM128(a M128) M128 {
	var r M128
	for i, x := range a.v {
		r.v[i] = float32(math.Ceil(float64(x)))
	}
	return r
}

// CeilM128dS rounds the low lane of b toward positive infinity; the
// high lane carries over from a.
// Models _mm_ceil_sd (ROUNDSD).
func CeilM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = math.Ceil(b.v[0])
	return r
}

// CeilM128S rounds the low lane of b toward positive infinity; the
// upper lanes carry over from a.
// Models _mm_ceil_ss (ROUNDSS).
func CeilM128S(a, b M128) M128 {
	r := a
	r.v[0] = float32(math.Ceil(float64(b.v[0])))
	return r
}

// FloorM128d rounds each lane toward negative infinity.
// Models _mm_floor_pd (ROUNDPD).
func FloorM128d(a M128d) M128d {
	return M128d{v: [2]float64{math.Floor(a.v[0]), math.Floor(a.v[1])}}
}

// FloorM128 rounds each lane toward negative infinity.
// Models _mm_floor_ps (ROUNDPS).
func FloorM128(a M128) M128 {
	var r M128
	for i, x := range a.v {
		r.v[i] = float32(math.Floor(float64(x)))
	}
	return r
}

// FloorM128dS rounds the low lane of b toward negative infinity; the
// high lane carries over from a.
// Models _mm_floor_sd (ROUNDSD).
func FloorM128dS(a, b M128d) M128d {
	r := a
	r.v[0] = math.Floor(b.v[0])
	return r
}

// FloorM128S rounds the low lane of b toward negative infinity; the
// upper lanes carry over from a.
// Models _mm_floor_ss (ROUNDSS).
func FloorM128S(a, b M128) M128 {
	r := a
	r.v[0] = float32(math.Floor(float64(b.v[0])))
	return r
}

// RoundM128d rounds each lane by mode.
// Models _mm_round_pd (ROUNDPD).
func RoundM128d(a M128d, mode RoundMode) M128d {
	return M128d{v: [2]float64{roundF64(a.v[0], mode), roundF64(a.v[1], mode)}}
}

// RoundM128 rounds each lane by mode.
// Models _mm_round_ps (ROUNDPS).
func RoundM128(a M128, mode RoundMode) M128 {
	var r M128
	for i, x := range a.v {
		r.v[i] = roundF32(x, mode)
	}
	return r
}

// RoundM128dS rounds the low lane of b by mode; the high lane carries
// over from a.
// Models _mm_round_sd (ROUNDSD).
func RoundM128dS(a, b M128d, mode RoundMode) M128d {
	r := a
	r.v[0] = roundF64(b.v[0], mode)
	return r
}

// RoundM128S rounds the low lane of b by mode; the upper lanes carry
// over from a.
// Models _mm_round_ss (ROUNDSS).
func RoundM128S(a, b M128, mode RoundMode) M128 {
	r := a
	r.v[0] = roundF32(b.v[0], mode)
	return r
}

// CmpEqMaskI64M128i marks int64 lanes where a == b.
// Models _mm_cmpeq_epi64 (PCMPEQQ).
func CmpEqMaskI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	var r [2]int64
	for i := range r {
		if x[i] == y[i] {
			r[i] = -1
		}
	}
	return M128iFromI64x2(r)
}

// ConvertI8Lower8ToI16M128i sign-extends the lower eight int8 lanes to
// int16.
// Models _mm_cvtepi8_epi16 (PMOVSXBW).
func ConvertI8Lower8ToI16M128i(a M128i) M128i {
	x := a.I8x16()
	var r [8]int16
	for i := range r {
		r[i] = int16(x[i])
	}
	return M128iFromI16x8(r)
}

// ConvertI8Lower4ToI32M128i sign-extends the lower four int8 lanes to
// int32.
// Models _mm_cvtepi8_epi32 (PMOVSXBD).
func ConvertI8Lower4ToI32M128i(a M128i) M128i {
	x := a.I8x16()
	var r [4]int32
	for i := range r {
		r[i] = int32(x[i])
	}
	return M128iFromI32x4(r)
}

// ConvertI8Lower2ToI64M128i sign-extends the lower two int8 lanes to
// int64.
// Models _mm_cvtepi8_epi64 (PMOVSXBQ).
func ConvertI8Lower2ToI64M128i(a M128i) M128i {
	x := a.I8x16()
	return M128iFromI64x2([2]int64{int64(x[0]), int64(x[1])})
}

// ConvertI16Lower4ToI32M128i sign-extends the lower four int16 lanes
// to int32.
// Models _mm_cvtepi16_epi32 (PMOVSXWD).
func ConvertI16Lower4ToI32M128i(a M128i) M128i {
	x := a.I16x8()
	var r [4]int32
	for i := range r {
		r[i] = int32(x[i])
	}
	return M128iFromI32x4(r)
}

// ConvertI16Lower2ToI64M128i sign-extends the lower two int16 lanes to
// int64.
// Models _mm_cvtepi16_epi64 (PMOVSXWQ).
func ConvertI16Lower2ToI64M128i(a M128i) M128i {
	x := a.I16x8()
	return M128iFromI64x2([2]int64{int64(x[0]), int64(x[1])})
}

// ConvertI32Lower2ToI64M128i sign-extends the lower two int32 lanes to
// int64.
// Models _mm_cvtepi32_epi64 (PMOVSXDQ).
func ConvertI32Lower2ToI64M128i(a M128i) M128i {
	x := a.I32x4()
	return M128iFromI64x2([2]int64{int64(x[0]), int64(x[1])})
}

// ConvertU8Lower8ToU16M128i zero-extends the lower eight uint8 lanes
// to uint16.
// Models _mm_cvtepu8_epi16 (PMOVZXBW).
func ConvertU8Lower8ToU16M128i(a M128i) M128i {
	x := a.U8x16()
	var r [8]uint16
	for i := range r {
		r[i] = uint16(x[i])
	}
	return M128iFromU16x8(r)
}

// ConvertU8Lower4ToU32M128i zero-extends the lower four uint8 lanes to
// uint32.
// Models _mm_cvtepu8_epi32 (PMOVZXBD).
func ConvertU8Lower4ToU32M128i(a M128i) M128i {
	x := a.U8x16()
	var r [4]uint32
	for i := range r {
		r[i] = uint32(x[i])
	}
	return M128iFromU32x4(r)
}

// ConvertU8Lower2ToU64M128i zero-extends the lower two uint8 lanes to
// uint64.
// Models _mm_cvtepu8_epi64 (PMOVZXBQ).
func ConvertU8Lower2ToU64M128i(a M128i) M128i {
	x := a.U8x16()
	return M128iFromU64x2([2]uint64{uint64(x[0]), uint64(x[1])})
}

// ConvertU16Lower4ToU32M128i zero-extends the lower four uint16 lanes
// to uint32.
// Models _mm_cvtepu16_epi32 (PMOVZXWD).
func ConvertU16Lower4ToU32M128i(a M128i) M128i {
	x := a.U16x8()
	var r [4]uint32
	for i := range r {
		r[i] = uint32(x[i])
	}
	return M128iFromU32x4(r)
}

// ConvertU16Lower2ToU64M128i zero-extends the lower two uint16 lanes
// to uint64.
// Models _mm_cvtepu16_epi64 (PMOVZXWQ).
func ConvertU16Lower2ToU64M128i(a M128i) M128i {
	x := a.U16x8()
	return M128iFromU64x2([2]uint64{uint64(x[0]), uint64(x[1])})
}

// ConvertU32Lower2ToU64M128i zero-extends the lower two uint32 lanes
// to uint64.
// Models _mm_cvtepu32_epi64 (PMOVZXDQ).
func ConvertU32Lower2ToU64M128i(a M128i) M128i {
	x := a.U32x4()
	return M128iFromU64x2([2]uint64{uint64(x[0]), uint64(x[1])})
}

// DotProductM128d multiplies the lanes selected by the high imm bits,
// sums the products, and writes the sum to the lanes selected by the
// low imm bits, zeroing the rest. Bits 4 and 5 select inputs, bits 0
// and 1 select outputs.
// Models _mm_dp_pd (DPPD).
func DotProductM128d(a, b M128d, imm int) M128d {
	var sum float64
	for i := range a.v {
		if imm>>(4+i)&1 != 0 {
			sum += a.v[i] * b.v[i]
		}
	}
	var r M128d
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = sum
		}
	}
	return r
}

// DotProductM128 multiplies the lanes selected by the high imm nibble,
// sums the products, and writes the sum to the lanes selected by the
// low nibble, zeroing the rest.
// Models _mm_dp_ps (DPPS).
func DotProductM128(a, b M128, imm int) M128 {
	var sum float32
	for i := range a.v {
		if imm>>(4+i)&1 != 0 {
			sum += a.v[i] * b.v[i]
		}
	}
	var r M128
	for i := range r.v {
		if imm>>i&1 != 0 {
			r.v[i] = sum
		}
	}
	return r
}

// ExtractI32ImmM128i returns the int32 lane picked by imm, masked to
// 0..3.
// Models _mm_extract_epi32 (PEXTRD).
func ExtractI32ImmM128i(a M128i, imm int) int32 {
	return a.I32x4()[imm&0b11]
}

// ExtractI64ImmM128i returns the int64 lane picked by imm, masked to
// 0..1.
// Models _mm_extract_epi64 (PEXTRQ).
func ExtractI64ImmM128i(a M128i, imm int) int64 {
	return a.I64x2()[imm&0b1]
}

// ExtractI8AsI32ImmM128i returns the uint8 lane picked by imm, masked
// to 0..15, zero-extended to int32.
// Models _mm_extract_epi8 (PEXTRB).
func ExtractI8AsI32ImmM128i(a M128i, imm int) int32 {
	return int32(a.v[imm&0b1111])
}

// ExtractF32AsI32BitsImmM128 returns the bit pattern of the float32
// lane picked by imm, masked to 0..3.
// Models _mm_extract_ps (EXTRACTPS).
func ExtractF32AsI32BitsImmM128(a M128, imm int) int32 {
	return int32(math.Float32bits(a.v[imm&0b11]))
}

// InsertI32ImmM128i replaces the int32 lane picked by imm, masked to
// 0..3.
// Models _mm_insert_epi32 (PINSRD).
func InsertI32ImmM128i(a M128i, i int32, imm int) M128i {
	x := a.I32x4()
	x[imm&0b11] = i
	return M128iFromI32x4(x)
}

// InsertI64ImmM128i replaces the int64 lane picked by imm, masked to
// 0..1.
// Models _mm_insert_epi64 (PINSRQ).
func InsertI64ImmM128i(a M128i, i int64, imm int) M128i {
	x := a.I64x2()
	x[imm&0b1] = i
	return M128iFromI64x2(x)
}

// InsertI8ImmM128i replaces the int8 lane picked by imm, masked to
// 0..15.
// Models _mm_insert_epi8 (PINSRB).
func InsertI8ImmM128i(a M128i, i int8, imm int) M128i {
	x := a.I8x16()
	x[imm&0b1111] = i
	return M128iFromI8x16(x)
}

// InsertF32ImmM128 copies the lane of b picked by from into the lane
// of a picked by to, then zeroes the lanes whose bits are set in
// zeroed. Lane picks are masked to 0..3 and zeroed to its low four
// bits.
// Models _mm_insert_ps (INSERTPS).
func InsertF32ImmM128(a, b M128, from, to, zeroed int) M128 {
	r := a
	r.v[to&0b11] = b.v[from&0b11]
	for i := range r.v {
		if zeroed>>i&1 != 0 {
			r.v[i] = 0
		}
	}
	return r
}

// MaxI8M128i performs a lanewise maximum of int8 lanes.
// Models _mm_max_epi8 (PMAXSB).
func MaxI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromI8x16(r)
}

// MaxI32M128i performs a lanewise maximum of int32 lanes.
// Models _mm_max_epi32 (PMAXSD).
func MaxI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromI32x4(r)
}

// MaxU16M128i performs a lanewise maximum of uint16 lanes.
// Models _mm_max_epu16 (PMAXUW).
func MaxU16M128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromU16x8(r)
}

// MaxU32M128i performs a lanewise maximum of uint32 lanes.
// Models _mm_max_epu32 (PMAXUD).
func MaxU32M128i(a, b M128i) M128i {
	x, y := a.U32x4(), b.U32x4()
	var r [4]uint32
	for i := range r {
		r[i] = max(x[i], y[i])
	}
	return M128iFromU32x4(r)
}

// MinI8M128i performs a lanewise minimum of int8 lanes.
// Models _mm_min_epi8 (PMINSB).
func MinI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromI8x16(r)
}

// MinI32M128i performs a lanewise minimum of int32 lanes.
// Models _mm_min_epi32 (PMINSD).
func MinI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromI32x4(r)
}

// MinU16M128i performs a lanewise minimum of uint16 lanes.
// Models _mm_min_epu16 (PMINUW).
func MinU16M128i(a, b M128i) M128i {
	x, y := a.U16x8(), b.U16x8()
	var r [8]uint16
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromU16x8(r)
}

// MinU32M128i performs a lanewise minimum of uint32 lanes.
// Models _mm_min_epu32 (PMINUD).
func MinU32M128i(a, b M128i) M128i {
	x, y := a.U32x4(), b.U32x4()
	var r [4]uint32
	for i := range r {
		r[i] = min(x[i], y[i])
	}
	return M128iFromU32x4(r)
}

// MinPositionU16M128i finds the minimum uint16 lane: the low result
// lane holds the value, the next holds the index of its first
// occurrence, and the rest are zero.
// Models _mm_minpos_epu16 (PHMINPOSUW).
func MinPositionU16M128i(a M128i) M128i {
	x := a.U16x8()
	best, at := x[0], 0
	for i, v := range x {
		if v < best {
			best, at = v, i
		}
	}
	var r [8]uint16
	r[0] = best
	r[1] = uint16(at)
	return M128iFromU16x8(r)
}

// MultiPackedSumAbsDiffU8M128i computes eight sliding 4-byte sums of
// absolute differences. Bit 2 of imm picks the 4-byte aligned window
// base in a, bits 0 and 1 pick the 4-byte block of b; result lane j
// compares a's window starting at base+j against that block.
// Models _mm_mpsadbw_epu8 (MPSADBW).
func MultiPackedSumAbsDiffU8M128i(a, b M128i, imm int) M128i {
	x, y := a.U8x16(), b.U8x16()
	aOff := (imm >> 2 & 1) * 4
	bOff := (imm & 0b11) * 4
	var r [8]uint16
	for j := range r {
		var sum uint16
		for i := 0; i < 4; i++ {
			d := int32(x[aOff+j+i]) - int32(y[bOff+i])
			if d < 0 {
				d = -d
			}
			sum += uint16(d)
		}
		r[j] = sum
	}
	return M128iFromU16x8(r)
}

// MulWidenI32OddM128i multiplies lane 0 by lane 0 and lane 2 by lane
// 2, widening each product to int64.
// Models _mm_mul_epi32 (PMULDQ).
func MulWidenI32OddM128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	return M128iFromI64x2([2]int64{
		int64(x[0]) * int64(y[0]),
		int64(x[2]) * int64(y[2]),
	})
}

// MulI32KeepLowM128i multiplies int32 lanes and keeps the low half of
// each 64-bit product.
// Models _mm_mullo_epi32 (PMULLD).
func MulI32KeepLowM128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		r[i] = x[i] * y[i]
	}
	return M128iFromI32x4(r)
}

// PackI32ToU16M128i narrows the int32 lanes of a then b into uint16
// lanes with unsigned saturation.
// Models _mm_packus_epi32 (PACKUSDW).
func PackI32ToU16M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [8]uint16
	for i := range x {
		r[i] = satU16(x[i])
		r[i+4] = satU16(y[i])
	}
	return M128iFromU16x8(r)
}

// TestAllOnesM128i returns 1 when every bit of a is set.
// Models _mm_test_all_ones (PTEST).
func TestAllOnesM128i(a M128i) int32 {
	for _, b := range a.v {
		if b != 0xFF {
			return 0
		}
	}
	return 1
}

// TestAllZeroesM128i returns 1 when a AND mask has no bits set.
// Models _mm_test_all_zeros (PTEST).
func TestAllZeroesM128i(a, mask M128i) int32 {
	for i := range a.v {
		if a.v[i]&mask.v[i] != 0 {
			return 0
		}
	}
	return 1
}

// TestMixedOnesAndZeroesM128i returns 1 when a AND mask has at least
// one bit set and at least one bit clear within mask.
// Models _mm_test_mix_ones_zeros (PTEST).
func TestMixedOnesAndZeroesM128i(a, mask M128i) int32 {
	var anySet, anyClear bool
	for i := range a.v {
		if a.v[i]&mask.v[i] != 0 {
			anySet = true
		}
		if ^a.v[i]&mask.v[i] != 0 {
			anyClear = true
		}
	}
	if anySet && anyClear {
		return 1
	}
	return 0
}
