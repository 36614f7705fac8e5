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

// AbsI8M128i takes the lanewise absolute value of int8 lanes. The
// minimum value has no positive counterpart and stays unchanged.
// Models _mm_abs_epi8 (PABSB).
func AbsI8M128i(a M128i) M128i {
	x := a.I8x16()
	var r [16]int8
	for i, v := range x {
		if v < 0 {
			v = -v
		}
		r[i] = v
	}
	return M128iFromI8x16(r)
}

// AbsI16M128i takes the lanewise absolute value of int16 lanes. The
// minimum value has no positive counterpart and stays unchanged.
// Models _mm_abs_epi16 (PABSW).
func AbsI16M128i(a M128i) M128i {
	x := a.I16x8()
	var r [8]int16
	for i, v := range x {
		if v < 0 {
			v = -v
		}
		r[i] = v
	}
	return M128iFromI16x8(r)
}

// AbsI32M128i takes the lanewise absolute value of int32 lanes. The
// minimum value has no positive counterpart and stays unchanged.
// Models _mm_abs_epi32 (PABSD).
func AbsI32M128i(a M128i) M128i {
	x := a.I32x4()
	var r [4]int32
	for i, v := range x {
		if v < 0 {
			v = -v
		}
		r[i] = v
	}
	return M128iFromI32x4(r)
}

// AddHorizontalI16M128i sums adjacent int16 lane pairs with wrapping,
// a pairs low and b pairs high.
// Models _mm_hadd_epi16 (PHADDW).
func AddHorizontalI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[i] = x[2*i] + x[2*i+1]
		r[i+4] = y[2*i] + y[2*i+1]
	}
	return M128iFromI16x8(r)
}

// AddHorizontalI32M128i sums adjacent int32 lane pairs with wrapping,
// a pairs low and b pairs high.
// Models _mm_hadd_epi32 (PHADDD).
func AddHorizontalI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	return M128iFromI32x4([4]int32{
		x[0] + x[1],
		x[2] + x[3],
		y[0] + y[1],
		y[2] + y[3],
	})
}

// AddHorizontalSaturatingI16M128i sums adjacent int16 lane pairs with
// saturation, a pairs low and b pairs high.
// Models _mm_hadds_epi16 (PHADDSW).
func AddHorizontalSaturatingI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[i] = satI16(int32(x[2*i]) + int32(x[2*i+1]))
		r[i+4] = satI16(int32(y[2*i]) + int32(y[2*i+1]))
	}
	return M128iFromI16x8(r)
}

// SubHorizontalI16M128i subtracts within adjacent int16 lane pairs
// with wrapping, a pairs low and b pairs high.
// Models _mm_hsub_epi16 (PHSUBW).
func SubHorizontalI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[i] = x[2*i] - x[2*i+1]
		r[i+4] = y[2*i] - y[2*i+1]
	}
	return M128iFromI16x8(r)
}

// SubHorizontalI32M128i subtracts within adjacent int32 lane pairs
// with wrapping, a pairs low and b pairs high.
// Models _mm_hsub_epi32 (PHSUBD).
func SubHorizontalI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	return M128iFromI32x4([4]int32{
		x[0] - x[1],
		x[2] - x[3],
		y[0] - y[1],
		y[2] - y[3],
	})
}

// SubHorizontalSaturatingI16M128i subtracts within adjacent int16 lane
// pairs with saturation, a pairs low and b pairs high.
// Models _mm_hsubs_epi16 (PHSUBSW).
func SubHorizontalSaturatingI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := 0; i < 4; i++ {
		r[i] = satI16(int32(x[2*i]) - int32(x[2*i+1]))
		r[i+4] = satI16(int32(y[2*i]) - int32(y[2*i+1]))
	}
	return M128iFromI16x8(r)
}

// MulU8I8AddHorizontalSaturatingM128i multiplies uint8 lanes of a by
// the int8 lanes of b, then sums each adjacent product pair into an
// int16 lane with saturation.
// Models _mm_maddubs_epi16 (PMADDUBSW).
func MulU8I8AddHorizontalSaturatingM128i(a, b M128i) M128i {
	x, y := a.U8x16(), b.I8x16()
	var r [8]int16
	for i := range r {
		p0 := int32(x[2*i]) * int32(y[2*i])
		p1 := int32(x[2*i+1]) * int32(y[2*i+1])
		r[i] = satI16(p0 + p1)
	}
	return M128iFromI16x8(r)
}

// MulI16ScaleRoundM128i multiplies int16 lanes into 32-bit products,
// keeps bits 16..30 of each, and rounds to the nearest value.
// Models _mm_mulhrs_epi16 (PMULHRSW).
func MulI16ScaleRoundM128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		r[i] = int16((((int32(x[i]) * int32(y[i])) >> 14) + 1) >> 1)
	}
	return M128iFromI16x8(r)
}

// ShuffleVarI8M128i picks each byte of the result from a by the
// matching index byte of v, masked to 0..15. An index with its high
// bit set zeroes that byte instead.
// Models _mm_shuffle_epi8 (PSHUFB).
func ShuffleVarI8M128i(a, v M128i) M128i {
	var r M128i
	for i, idx := range v.v {
		if idx&0x80 == 0 {
			r.v[i] = a.v[idx&0x0F]
		}
	}
	return r
}

// SignApplyI8M128i negates, keeps, or zeroes each int8 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm_sign_epi8 (PSIGNB).
func SignApplyI8M128i(a, b M128i) M128i {
	x, y := a.I8x16(), b.I8x16()
	var r [16]int8
	for i := range r {
		switch {
		case y[i] < 0:
			r[i] = -x[i]
		case y[i] > 0:
			r[i] = x[i]
		}
	}
	return M128iFromI8x16(r)
}

// SignApplyI16M128i negates, keeps, or zeroes each int16 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm_sign_epi16 (PSIGNW).
func SignApplyI16M128i(a, b M128i) M128i {
	x, y := a.I16x8(), b.I16x8()
	var r [8]int16
	for i := range r {
		switch {
		case y[i] < 0:
			r[i] = -x[i]
		case y[i] > 0:
			r[i] = x[i]
		}
	}
	return M128iFromI16x8(r)
}

// SignApplyI32M128i negates, keeps, or zeroes each int32 lane of a as
// the matching lane of b is negative, positive, or zero.
// Models _mm_sign_epi32 (PSIGND).
func SignApplyI32M128i(a, b M128i) M128i {
	x, y := a.I32x4(), b.I32x4()
	var r [4]int32
	for i := range r {
		switch {
		case y[i] < 0:
			r[i] = -x[i]
		case y[i] > 0:
			r[i] = x[i]
		}
	}
	return M128iFromI32x4(r)
}

// CombinedByteShrImmM128i concatenates a above b into a 32-byte value,
// shifts it right by imm bytes, and keeps the low 16. Shifts of 32 or
// more clear the register.
// Models _mm_alignr_epi8 (PALIGNR).
func CombinedByteShrImmM128i(a, b M128i, imm int) M128i {
	var r M128i
	if imm < 0 || imm > 31 {
		return r
	}
	var wide [32]byte
	copy(wide[:16], b.v[:])
	copy(wide[16:], a.v[:])
	copy(r.v[:], wide[imm:])
	return r
}
