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

// The pack, unpack and shuffle instructions at 512 bits run as four
// copies of the 128-bit instruction, one per 128-bit chunk. The
// helpers below split a register into chunks and rejoin them so those
// operations can reuse their 128-bit models.

func m512iQuarters(a M512i) [4]M128i {
	var q [4]M128i
	for i := range q {
		copy(q[i].v[:], a.v[16*i:])
	}
	return q
}

func m512iJoin(q [4]M128i) M512i {
	var r M512i
	for i := range q {
		copy(r.v[16*i:], q[i].v[:])
	}
	return r
}

// perQuarter applies a 128-bit two-operand operation to each chunk.
func perQuarter(a, b M512i, op func(x, y M128i) M128i) M512i {
	qa, qb := m512iQuarters(a), m512iQuarters(b)
	var q [4]M128i
	for i := range q {
		q[i] = op(qa[i], qb[i])
	}
	return m512iJoin(q)
}

// ZeroedM512i returns an all-zero register.
// Models _mm512_setzero_si512 (VPXORQ).
func ZeroedM512i() M512i {
	return M512i{}
}

// ZeroedM512d returns an all-zero register.
// Models _mm512_setzero_pd (VXORPD).
func ZeroedM512d() M512d {
	return M512d{}
}

// ZeroedM512 returns an all-zero register.
// Models _mm512_setzero_ps (VXORPS).
func ZeroedM512() M512 {
	return M512{}
}

// SetSplatI8M512i sets all int8 lanes to i.
// Models _mm512_set1_epi8 (VPBROADCASTB).
func SetSplatI8M512i(i int8) M512i {
	var r M512i
	for j := range r.v {
		r.v[j] = byte(i)
	}
	return r
}

// SetSplatI16M512i sets all int16 lanes to i.
// Models _mm512_set1_epi16 (VPBROADCASTW).
func SetSplatI16M512i(i int16) M512i {
	var r M512i
	for j := 0; j < 32; j++ {
		putI16(r.v[:], j, i)
	}
	return r
}

// SetSplatI32M512i sets all int32 lanes to i.
// Models _mm512_set1_epi32 (VPBROADCASTD).
func SetSplatI32M512i(i int32) M512i {
	var r M512i
	for j := 0; j < 16; j++ {
		putI32(r.v[:], j, i)
	}
	return r
}

// SetSplatI64M512i sets all int64 lanes to i.
// Models _mm512_set1_epi64 (VPBROADCASTQ).
func SetSplatI64M512i(i int64) M512i {
	var r M512i
	for j := 0; j < 8; j++ {
		putI64(r.v[:], j, i)
	}
	return r
}

// SetSplatM512d sets all lanes to f.
// Models _mm512_set1_pd (VBROADCASTSD).
func SetSplatM512d(f float64) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = f
	}
	return r
}

// SetSplatM512 sets all lanes to f.
// Models _mm512_set1_ps (VBROADCASTSS).
func SetSplatM512(f float32) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = f
	}
	return r
}

// SetSplatI8M512iS broadcasts the lowest int8 lane of a to all lanes.
// Models _mm512_broadcastb_epi8 (VPBROADCASTB).
func SetSplatI8M512iS(a M128i) M512i {
	return SetSplatI8M512i(int8(a.v[0]))
}

// SetSplatI16M512iS broadcasts the lowest int16 lane of a to all
// lanes.
// Models _mm512_broadcastw_epi16 (VPBROADCASTW).
func SetSplatI16M512iS(a M128i) M512i {
	return SetSplatI16M512i(getI16(a.v[:], 0))
}

// SetSplatI32M512iS broadcasts the lowest int32 lane of a to all
// lanes.
// Models _mm512_broadcastd_epi32 (VPBROADCASTD).
func SetSplatI32M512iS(a M128i) M512i {
	return SetSplatI32M512i(getI32(a.v[:], 0))
}

// SetSplatI64M512iS broadcasts the lowest int64 lane of a to all
// lanes.
// Models _mm512_broadcastq_epi64 (VPBROADCASTQ).
func SetSplatI64M512iS(a M128i) M512i {
	return SetSplatI64M512i(getI64(a.v[:], 0))
}

// LoadM512 loads an array into a register.
// Models _mm512_loadu_ps (VMOVUPS).
func LoadM512(a *[16]float32) M512 {
	return M512{v: *a}
}

// LoadM512d loads an array into a register.
// Models _mm512_loadu_pd (VMOVUPD).
func LoadM512d(a *[8]float64) M512d {
	return M512d{v: *a}
}

// LoadM512i loads an int32 array into a register.
// Models _mm512_loadu_si512 (VMOVDQU32).
func LoadM512i(a *[16]int32) M512i {
	return M512iFromI32x16(*a)
}

// StoreM512 stores the lanes of a into an array.
// Models _mm512_storeu_ps (VMOVUPS).
func StoreM512(r *[16]float32, a M512) {
	*r = a.v
}

// StoreM512d stores the lanes of a into an array.
// Models _mm512_storeu_pd (VMOVUPD).
func StoreM512d(r *[8]float64, a M512d) {
	*r = a.v
}

// StoreM512i stores a into r.
// Models _mm512_storeu_si512 (VMOVDQU32).
func StoreM512i(r *M512i, a M512i) {
	*r = a
}

// AddI8M512i performs lanewise wrapping addition of int8 lanes.
// Models _mm512_add_epi8 (VPADDB).
func AddI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(int8(a.v[i]) + int8(b.v[i]))
	}
	return r
}

// AddI16M512i performs lanewise wrapping addition of int16 lanes.
// Models _mm512_add_epi16 (VPADDW).
func AddI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, getI16(a.v[:], i)+getI16(b.v[:], i))
	}
	return r
}

// AddI32M512i performs lanewise wrapping addition of int32 lanes.
// Models _mm512_add_epi32 (VPADDD).
func AddI32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, getI32(a.v[:], i)+getI32(b.v[:], i))
	}
	return r
}

// AddI64M512i performs lanewise wrapping addition of int64 lanes.
// Models _mm512_add_epi64 (VPADDQ).
func AddI64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putI64(r.v[:], i, getI64(a.v[:], i)+getI64(b.v[:], i))
	}
	return r
}

// AddM512 performs lanewise addition.
// Models _mm512_add_ps (VADDPS).
func AddM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// AddM512d performs lanewise addition.
// Models _mm512_add_pd (VADDPD).
func AddM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

// SubI8M512i performs lanewise wrapping subtraction of int8 lanes.
// Models _mm512_sub_epi8 (VPSUBB).
func SubI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(int8(a.v[i]) - int8(b.v[i]))
	}
	return r
}

// SubI16M512i performs lanewise wrapping subtraction of int16 lanes.
// Models _mm512_sub_epi16 (VPSUBW).
func SubI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, getI16(a.v[:], i)-getI16(b.v[:], i))
	}
	return r
}

// SubI32M512i performs lanewise wrapping subtraction of int32 lanes.
// Models _mm512_sub_epi32 (VPSUBD).
func SubI32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, getI32(a.v[:], i)-getI32(b.v[:], i))
	}
	return r
}

// SubI64M512i performs lanewise wrapping subtraction of int64 lanes.
// Models _mm512_sub_epi64 (VPSUBQ).
func SubI64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putI64(r.v[:], i, getI64(a.v[:], i)-getI64(b.v[:], i))
	}
	return r
}

// SubM512 performs lanewise subtraction.
// Models _mm512_sub_ps (VSUBPS).
func SubM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// SubM512d performs lanewise subtraction.
// Models _mm512_sub_pd (VSUBPD).
func SubM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

// AddSaturatingI8M512i performs lanewise saturating addition of int8
// lanes.
// Models _mm512_adds_epi8 (VPADDSB).
func AddSaturatingI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(satI8(int32(int8(a.v[i])) + int32(int8(b.v[i]))))
	}
	return r
}

// AddSaturatingI16M512i performs lanewise saturating addition of
// int16 lanes.
// Models _mm512_adds_epi16 (VPADDSW).
func AddSaturatingI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, satI16(int32(getI16(a.v[:], i))+int32(getI16(b.v[:], i))))
	}
	return r
}

// AddSaturatingU8M512i performs lanewise saturating addition of uint8
// lanes.
// Models _mm512_adds_epu8 (VPADDUSB).
func AddSaturatingU8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(satU8(int32(a.v[i]) + int32(b.v[i])))
	}
	return r
}

// AddSaturatingU16M512i performs lanewise saturating addition of
// uint16 lanes.
// Models _mm512_adds_epu16 (VPADDUSW).
func AddSaturatingU16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, satU16(int32(getU16(a.v[:], i))+int32(getU16(b.v[:], i))))
	}
	return r
}

// SubSaturatingI8M512i performs lanewise saturating subtraction of
// int8 lanes.
// Models _mm512_subs_epi8 (VPSUBSB).
func SubSaturatingI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(satI8(int32(int8(a.v[i])) - int32(int8(b.v[i]))))
	}
	return r
}

// SubSaturatingI16M512i performs lanewise saturating subtraction of
// int16 lanes.
// Models _mm512_subs_epi16 (VPSUBSW).
func SubSaturatingI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, satI16(int32(getI16(a.v[:], i))-int32(getI16(b.v[:], i))))
	}
	return r
}

// SubSaturatingU8M512i performs lanewise saturating subtraction of
// uint8 lanes.
// Models _mm512_subs_epu8 (VPSUBUSB).
func SubSaturatingU8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(satU8(int32(a.v[i]) - int32(b.v[i])))
	}
	return r
}

// SubSaturatingU16M512i performs lanewise saturating subtraction of
// uint16 lanes.
// Models _mm512_subs_epu16 (VPSUBUSW).
func SubSaturatingU16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, satU16(int32(getU16(a.v[:], i))-int32(getU16(b.v[:], i))))
	}
	return r
}

// MulM512 performs lanewise multiplication.
// Models _mm512_mul_ps (VMULPS).
func MulM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// MulM512d performs lanewise multiplication.
// Models _mm512_mul_pd (VMULPD).
func MulM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

// MulI16KeepLowM512i multiplies int16 lanes and keeps the low half of
// each 32-bit product.
// Models _mm512_mullo_epi16 (VPMULLW).
func MulI16KeepLowM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, getI16(a.v[:], i)*getI16(b.v[:], i))
	}
	return r
}

// MulI32KeepLowM512i multiplies int32 lanes and keeps the low half of
// each 64-bit product.
// Models _mm512_mullo_epi32 (VPMULLD).
func MulI32KeepLowM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, getI32(a.v[:], i)*getI32(b.v[:], i))
	}
	return r
}

// MulWidenI32OddM512i multiplies the even int32 lanes, widening each
// product to int64.
// Models _mm512_mul_epi32 (VPMULDQ).
func MulWidenI32OddM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		x := int64(getI32(a.v[:], 2*i))
		y := int64(getI32(b.v[:], 2*i))
		putI64(r.v[:], i, x*y)
	}
	return r
}

// MulWidenU32OddM512i multiplies the even uint32 lanes, widening each
// product to uint64.
// Models _mm512_mul_epu32 (VPMULUDQ).
func MulWidenU32OddM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		x := uint64(getU32(a.v[:], 2*i))
		y := uint64(getU32(b.v[:], 2*i))
		putU64(r.v[:], i, x*y)
	}
	return r
}

// MulI16KeepHighM512i multiplies int16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm512_mulhi_epi16 (VPMULHW).
func MulI16KeepHighM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		p := int32(getI16(a.v[:], i)) * int32(getI16(b.v[:], i))
		putI16(r.v[:], i, int16(p>>16))
	}
	return r
}

// MulU16KeepHighM512i multiplies uint16 lanes and keeps the high half
// of each 32-bit product.
// Models _mm512_mulhi_epu16 (VPMULHUW).
func MulU16KeepHighM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		p := uint32(getU16(a.v[:], i)) * uint32(getU16(b.v[:], i))
		putU16(r.v[:], i, uint16(p>>16))
	}
	return r
}

// DivM512 performs lanewise division.
// Models _mm512_div_ps (VDIVPS).
func DivM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// DivM512d performs lanewise division.
// Models _mm512_div_pd (VDIVPD).
func DivM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// SqrtM512 takes the lanewise square root.
// Models _mm512_sqrt_ps (VSQRTPS).
func SqrtM512(a M512) M512 {
	var r M512
	for i, x := range a.v {
		r.v[i] = float32(math.Sqrt(float64(x)))
	}
	return r
}

// SqrtM512d takes the lanewise square root.
// Models _mm512_sqrt_pd (VSQRTPD).
func SqrtM512d(a M512d) M512d {
	var r M512d
	for i, x := range a.v {
		r.v[i] = math.Sqrt(x)
	}
	return r
}

// AddM512S adds the lowest lanes, keeping the other lanes of a.
// Models _mm512_mask_add_ps (VADDPS).
func AddM512S(a, b M512) M512 {
	r := a
	r.v[0] = a.v[0] + b.v[0]
	return r
}

// AddM512dS adds the lowest lanes, keeping the other lanes of a.
// Models _mm512_mask_add_pd (VADDPD).
func AddM512dS(a, b M512d) M512d {
	r := a
	r.v[0] = a.v[0] + b.v[0]
	return r
}

// SubM512S subtracts the lowest lanes, keeping the other lanes of a.
// Models _mm512_mask_sub_ps (VSUBPS).
func SubM512S(a, b M512) M512 {
	r := a
	r.v[0] = a.v[0] - b.v[0]
	return r
}

// SubM512dS subtracts the lowest lanes, keeping the other lanes of a.
// Models _mm512_mask_sub_pd (VSUBPD).
func SubM512dS(a, b M512d) M512d {
	r := a
	r.v[0] = a.v[0] - b.v[0]
	return r
}

// MulM512S multiplies the lowest lanes, keeping the other lanes of a.
// Models _mm512_mask_mul_ps (VMULPS).
func MulM512S(a, b M512) M512 {
	r := a
	r.v[0] = a.v[0] * b.v[0]
	return r
}

// MulM512dS multiplies the lowest lanes, keeping the other lanes of
// a.
// Models _mm512_mask_mul_pd (VMULPD).
func MulM512dS(a, b M512d) M512d {
	r := a
	r.v[0] = a.v[0] * b.v[0]
	return r
}

// FusedMulAddM512 computes (a * b) + c lanewise with a single
// rounding.
// Models _mm512_fmadd_ps (VFMADD).
func FusedMulAddM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulAddM512d computes (a * b) + c lanewise with a single
// rounding.
// Models _mm512_fmadd_pd (VFMADD).
func FusedMulAddM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulSubM512 computes (a * b) - c lanewise with a single
// rounding.
// Models _mm512_fmsub_ps (VFMSUB).
func FusedMulSubM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulSubM512d computes (a * b) - c lanewise with a single
// rounding.
// Models _mm512_fmsub_pd (VFMSUB).
func FusedMulSubM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegAddM512 computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm512_fnmadd_ps (VFNMADD).
func FusedMulNegAddM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegAddM512d computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm512_fnmadd_pd (VFNMADD).
func FusedMulNegAddM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegSubM512 computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm512_fnmsub_ps (VFNMSUB).
func FusedMulNegSubM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegSubM512d computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm512_fnmsub_pd (VFNMSUB).
func FusedMulNegSubM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulAddSubM512 computes (a * b) - c in the even lanes and
// (a * b) + c in the odd lanes, each with a single rounding.
// Models _mm512_fmaddsub_ps (VFMADDSUB).
func FusedMulAddSubM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		}
	}
	return r
}

// FusedMulAddSubM512d computes (a * b) - c in the even lanes and
// (a * b) + c in the odd lanes, each with a single rounding.
// Models _mm512_fmaddsub_pd (VFMADDSUB).
func FusedMulAddSubM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
		} else {
			r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
		}
	}
	return r
}

// FusedMulSubAddM512 computes (a * b) + c in the even lanes and
// (a * b) - c in the odd lanes, each with a single rounding.
// Models _mm512_fmsubadd_ps (VFMSUBADD).
func FusedMulSubAddM512(a, b, c M512) M512 {
	var r M512
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		}
	}
	return r
}

// FusedMulSubAddM512d computes (a * b) + c in the even lanes and
// (a * b) - c in the odd lanes, each with a single rounding.
// Models _mm512_fmsubadd_pd (VFMSUBADD).
func FusedMulSubAddM512d(a, b, c M512d) M512d {
	var r M512d
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
		} else {
			r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
		}
	}
	return r
}

// CmpOpMaskI8M512i compares int8 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epi8_mask (VPCMPB).
func CmpOpMaskI8M512i(a, b M512i, op CmpIntOp) Mask64 {
	var m Mask64
	for i := range a.v {
		if cmpIntOp(op, int8(a.v[i]), int8(b.v[i])) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskU8M512i compares uint8 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epu8_mask (VPCMPUB).
func CmpOpMaskU8M512i(a, b M512i, op CmpIntOp) Mask64 {
	var m Mask64
	for i := range a.v {
		if cmpIntOp(op, a.v[i], b.v[i]) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskI16M512i compares int16 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epi16_mask (VPCMPW).
func CmpOpMaskI16M512i(a, b M512i, op CmpIntOp) Mask32 {
	var m Mask32
	for i := 0; i < 32; i++ {
		if cmpIntOp(op, getI16(a.v[:], i), getI16(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskU16M512i compares uint16 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epu16_mask (VPCMPUW).
func CmpOpMaskU16M512i(a, b M512i, op CmpIntOp) Mask32 {
	var m Mask32
	for i := 0; i < 32; i++ {
		if cmpIntOp(op, getU16(a.v[:], i), getU16(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskI32M512i compares int32 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epi32_mask (VPCMPD).
func CmpOpMaskI32M512i(a, b M512i, op CmpIntOp) Mask16 {
	var m Mask16
	for i := 0; i < 16; i++ {
		if cmpIntOp(op, getI32(a.v[:], i), getI32(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskU32M512i compares uint32 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epu32_mask (VPCMPUD).
func CmpOpMaskU32M512i(a, b M512i, op CmpIntOp) Mask16 {
	var m Mask16
	for i := 0; i < 16; i++ {
		if cmpIntOp(op, getU32(a.v[:], i), getU32(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskI64M512i compares int64 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epi64_mask (VPCMPQ).
func CmpOpMaskI64M512i(a, b M512i, op CmpIntOp) Mask8 {
	var m Mask8
	for i := 0; i < 8; i++ {
		if cmpIntOp(op, getI64(a.v[:], i), getI64(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskU64M512i compares uint64 lanes under op, one mask bit per
// lane.
// Models _mm512_cmp_epu64_mask (VPCMPUQ).
func CmpOpMaskU64M512i(a, b M512i, op CmpIntOp) Mask8 {
	var m Mask8
	for i := 0; i < 8; i++ {
		if cmpIntOp(op, getU64(a.v[:], i), getU64(b.v[:], i)) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskM512 compares lanes under op, one mask bit per lane.
// Models _mm512_cmp_ps_mask (VCMPPS).
func CmpOpMaskM512(a, b M512, op CmpOp) Mask16 {
	var m Mask16
	for i := range a.v {
		if cmpOpF32(op, a.v[i], b.v[i]) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskM512d compares lanes under op, one mask bit per lane.
// Models _mm512_cmp_pd_mask (VCMPPD).
func CmpOpMaskM512d(a, b M512d, op CmpOp) Mask8 {
	var m Mask8
	for i := range a.v {
		if cmpOpF64(op, a.v[i], b.v[i]) {
			m |= 1 << i
		}
	}
	return m
}

// CmpOpMaskM512S compares only the lowest lanes under op, the result
// confined to bit 0.
// Models _mm512_mask_cmp_ps_mask (VCMPPS).
func CmpOpMaskM512S(a, b M512, op CmpOp) Mask16 {
	if cmpOpF32(op, a.v[0], b.v[0]) {
		return 1
	}
	return 0
}

// CmpOpMaskM512dS compares only the lowest lanes under op, the result
// confined to bit 0.
// Models _mm512_mask_cmp_pd_mask (VCMPPD).
func CmpOpMaskM512dS(a, b M512d, op CmpOp) Mask8 {
	if cmpOpF64(op, a.v[0], b.v[0]) {
		return 1
	}
	return 0
}

// CmpOpLanesI8M512i compares int8 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epi8_mask followed by a mask expansion.
func CmpOpLanesI8M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI8M512i(CmpOpMaskI8M512i(a, b, op))
}

// CmpOpLanesU8M512i compares uint8 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epu8_mask followed by a mask expansion.
func CmpOpLanesU8M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI8M512i(CmpOpMaskU8M512i(a, b, op))
}

// CmpOpLanesI16M512i compares int16 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epi16_mask followed by a mask expansion.
func CmpOpLanesI16M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI16M512i(CmpOpMaskI16M512i(a, b, op))
}

// CmpOpLanesU16M512i compares uint16 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epu16_mask followed by a mask expansion.
func CmpOpLanesU16M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI16M512i(CmpOpMaskU16M512i(a, b, op))
}

// CmpOpLanesI32M512i compares int32 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epi32_mask followed by a mask expansion.
func CmpOpLanesI32M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI32M512i(CmpOpMaskI32M512i(a, b, op))
}

// CmpOpLanesU32M512i compares uint32 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epu32_mask followed by a mask expansion.
func CmpOpLanesU32M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI32M512i(CmpOpMaskU32M512i(a, b, op))
}

// CmpOpLanesI64M512i compares int64 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epi64_mask followed by a mask expansion.
func CmpOpLanesI64M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI64M512i(CmpOpMaskI64M512i(a, b, op))
}

// CmpOpLanesU64M512i compares uint64 lanes under op, filling matching
// lanes with all ones.
// Models _mm512_cmp_epu64_mask followed by a mask expansion.
func CmpOpLanesU64M512i(a, b M512i, op CmpIntOp) M512i {
	return ExpandMaskI64M512i(CmpOpMaskU64M512i(a, b, op))
}

// CmpOpLanesM512 compares lanes under op, filling matching lanes with
// all ones.
// Models _mm512_cmp_ps_mask followed by a mask expansion.
func CmpOpLanesM512(a, b M512, op CmpOp) M512 {
	return ExpandMaskM512(CmpOpMaskM512(a, b, op))
}

// CmpOpLanesM512d compares lanes under op, filling matching lanes
// with all ones.
// Models _mm512_cmp_pd_mask followed by a mask expansion.
func CmpOpLanesM512d(a, b M512d, op CmpOp) M512d {
	return ExpandMaskM512d(CmpOpMaskM512d(a, b, op))
}

// AndM512i performs a bitwise AND.
// Models _mm512_and_si512 (VPANDQ).
func AndM512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = a.v[i] & b.v[i]
	}
	return r
}

// AndM512 performs a bitwise AND of the lane bit patterns.
// Models _mm512_and_ps (VANDPS).
func AndM512(a, b M512) M512 {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] &= y[i]
	}
	return M512FromBits(x)
}

// AndM512d performs a bitwise AND of the lane bit patterns.
// Models _mm512_and_pd (VANDPD).
func AndM512d(a, b M512d) M512d {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] &= y[i]
	}
	return M512dFromBits(x)
}

// AndNotM512i performs a bitwise (NOT a) AND b.
// Models _mm512_andnot_si512 (VPANDNQ).
func AndNotM512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = ^a.v[i] & b.v[i]
	}
	return r
}

// AndNotM512 performs a bitwise (NOT a) AND b of the lane bit
// patterns.
// Models _mm512_andnot_ps (VANDNPS).
func AndNotM512(a, b M512) M512 {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] = ^x[i] & y[i]
	}
	return M512FromBits(x)
}

// AndNotM512d performs a bitwise (NOT a) AND b of the lane bit
// patterns.
// Models _mm512_andnot_pd (VANDNPD).
func AndNotM512d(a, b M512d) M512d {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] = ^x[i] & y[i]
	}
	return M512dFromBits(x)
}

// OrM512i performs a bitwise OR.
// Models _mm512_or_si512 (VPORQ).
func OrM512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = a.v[i] | b.v[i]
	}
	return r
}

// OrM512 performs a bitwise OR of the lane bit patterns.
// Models _mm512_or_ps (VORPS).
func OrM512(a, b M512) M512 {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] |= y[i]
	}
	return M512FromBits(x)
}

// OrM512d performs a bitwise OR of the lane bit patterns.
// Models _mm512_or_pd (VORPD).
func OrM512d(a, b M512d) M512d {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] |= y[i]
	}
	return M512dFromBits(x)
}

// XorM512i performs a bitwise XOR.
// Models _mm512_xor_si512 (VPXORQ).
func XorM512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = a.v[i] ^ b.v[i]
	}
	return r
}

// XorM512 performs a bitwise XOR of the lane bit patterns.
// Models _mm512_xor_ps (VXORPS).
func XorM512(a, b M512) M512 {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] ^= y[i]
	}
	return M512FromBits(x)
}

// XorM512d performs a bitwise XOR of the lane bit patterns.
// Models _mm512_xor_pd (VXORPD).
func XorM512d(a, b M512d) M512d {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] ^= y[i]
	}
	return M512dFromBits(x)
}

// AverageU8M512i performs a lanewise rounded average of uint8 lanes.
// Models _mm512_avg_epu8 (VPAVGB).
func AverageU8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte((int32(a.v[i]) + int32(b.v[i]) + 1) >> 1)
	}
	return r
}

// AverageU16M512i performs a lanewise rounded average of uint16
// lanes.
// Models _mm512_avg_epu16 (VPAVGW).
func AverageU16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		s := uint32(getU16(a.v[:], i)) + uint32(getU16(b.v[:], i)) + 1
		putU16(r.v[:], i, uint16(s>>1))
	}
	return r
}

// BlendVaryingI8M512i picks each int8 lane from b where its mask bit
// is set, from a where it is clear.
// Models _mm512_mask_blend_epi8 (VPBLENDMB).
func BlendVaryingI8M512i(a, b M512i, mask Mask64) M512i {
	r := a
	for i := range r.v {
		if mask>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingI16M512i picks each int16 lane from b where its mask
// bit is set, from a where it is clear.
// Models _mm512_mask_blend_epi16 (VPBLENDMW).
func BlendVaryingI16M512i(a, b M512i, mask Mask32) M512i {
	r := a
	for i := 0; i < 32; i++ {
		if mask>>i&1 != 0 {
			putU16(r.v[:], i, getU16(b.v[:], i))
		}
	}
	return r
}

// BlendVaryingI32M512i picks each int32 lane from b where its mask
// bit is set, from a where it is clear.
// Models _mm512_mask_blend_epi32 (VPBLENDMD).
func BlendVaryingI32M512i(a, b M512i, mask Mask16) M512i {
	r := a
	for i := 0; i < 16; i++ {
		if mask>>i&1 != 0 {
			putU32(r.v[:], i, getU32(b.v[:], i))
		}
	}
	return r
}

// BlendVaryingM512 picks each lane from b where its mask bit is set,
// from a where it is clear.
// Models _mm512_mask_blend_ps (VBLENDMPS).
func BlendVaryingM512(a, b M512, mask Mask16) M512 {
	r := a
	for i := range r.v {
		if mask>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendVaryingM512d picks each lane from b where its mask bit is set,
// from a where it is clear.
// Models _mm512_mask_blend_pd (VBLENDMPD).
func BlendVaryingM512d(a, b M512d, mask Mask8) M512d {
	r := a
	for i := range r.v {
		if mask>>i&1 != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// ConvertI8ToI16M512i sign-extends all thirty-two int8 lanes to
// int16.
// Models _mm512_cvtepi8_epi16 (VPMOVSXBW).
func ConvertI8ToI16M512i(a M256i) M512i {
	var r M512i
	for i := range a.v {
		putI16(r.v[:], i, int16(int8(a.v[i])))
	}
	return r
}

// ConvertU8ToU16M512i zero-extends all thirty-two uint8 lanes to
// uint16.
// Models _mm512_cvtepu8_epi16 (VPMOVZXBW).
func ConvertU8ToU16M512i(a M256i) M512i {
	var r M512i
	for i := range a.v {
		putU16(r.v[:], i, uint16(a.v[i]))
	}
	return r
}

// ConvertI16ToI32M512i sign-extends all sixteen int16 lanes to int32.
// Models _mm512_cvtepi16_epi32 (VPMOVSXWD).
func ConvertI16ToI32M512i(a M256i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, int32(getI16(a.v[:], i)))
	}
	return r
}

// ConvertU16ToU32M512i zero-extends all sixteen uint16 lanes to
// uint32.
// Models _mm512_cvtepu16_epi32 (VPMOVZXWD).
func ConvertU16ToU32M512i(a M256i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putU32(r.v[:], i, uint32(getU16(a.v[:], i)))
	}
	return r
}

// ConvertI16ToI8M256i narrows each int16 lane to int8, keeping the
// low 8 bits.
// Models _mm512_cvtepi16_epi8 (VPMOVWB).
func ConvertI16ToI8M256i(a M512i) M256i {
	var r M256i
	for i := range r.v {
		r.v[i] = byte(getI16(a.v[:], i))
	}
	return r
}

// ConvertToI64M512iFromM512d rounds each lane to the nearest int64.
// Lanes out of the int64 range, infinities and NaN become the
// minimum int64.
// Models _mm512_cvtpd_epi64 (VCVTPD2QQ).
func ConvertToI64M512iFromM512d(a M512d) M512i {
	var r M512i
	for i, x := range a.v {
		putI64(r.v[:], i, cvtRoundF64ToI64(x))
	}
	return r
}

// ConvertToI32M512iFromM512 rounds each lane to the nearest int32.
// Lanes out of the int32 range, infinities and NaN become the
// minimum int32.
// Models _mm512_cvtps_epi32 (VCVTPS2DQ).
func ConvertToI32M512iFromM512(a M512) M512i {
	var r M512i
	for i, x := range a.v {
		putI32(r.v[:], i, cvtRoundF64ToI32(float64(x)))
	}
	return r
}

// TruncateToI32M512iFromM512 truncates each lane toward zero to
// int32. Lanes out of the int32 range, infinities and NaN become the
// minimum int32.
// Models _mm512_cvttps_epi32 (VCVTTPS2DQ).
func TruncateToI32M512iFromM512(a M512) M512i {
	var r M512i
	for i, x := range a.v {
		putI32(r.v[:], i, cvtTruncF64ToI32(float64(x)))
	}
	return r
}

// TruncateToI64M512iFromM512d truncates each lane toward zero to
// int64. Lanes out of the int64 range, infinities and NaN become the
// minimum int64.
// Models _mm512_cvttpd_epi64 (VCVTTPD2QQ).
func TruncateToI64M512iFromM512d(a M512d) M512i {
	var r M512i
	for i, x := range a.v {
		putI64(r.v[:], i, cvtTruncF64ToI64(x))
	}
	return r
}

// ConvertToM512dFromI32M256i converts each int32 lane to float64.
// Models _mm512_cvtepi32_pd (VCVTDQ2PD).
func ConvertToM512dFromI32M256i(a M256i) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = float64(getI32(a.v[:], i))
	}
	return r
}

// ConvertToM512FromI32M512i converts each int32 lane to float32.
// Models _mm512_cvtepi32_ps (VCVTDQ2PS).
func ConvertToM512FromI32M512i(a M512i) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = float32(getI32(a.v[:], i))
	}
	return r
}

// PackI32ToI16M512i narrows int32 lanes to int16 with signed
// saturation, a then b within each 128-bit chunk.
// Models _mm512_packs_epi32 (VPACKSSDW).
func PackI32ToI16M512i(a, b M512i) M512i {
	return perQuarter(a, b, PackI32ToI16M128i)
}

// PackI16ToU8M512i narrows int16 lanes to uint8 with unsigned
// saturation, a then b within each 128-bit chunk.
// Models _mm512_packus_epi16 (VPACKUSWB).
func PackI16ToU8M512i(a, b M512i) M512i {
	return perQuarter(a, b, PackI16ToU8M128i)
}

// UnpackHighI8M512i interleaves the high int8 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpackhi_epi8 (VPUNPCKHBW).
func UnpackHighI8M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackHighI8M128i)
}

// UnpackHighI16M512i interleaves the high int16 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpackhi_epi16 (VPUNPCKHWD).
func UnpackHighI16M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackHighI16M128i)
}

// UnpackHighI32M512i interleaves the high int32 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpackhi_epi32 (VPUNPCKHDQ).
func UnpackHighI32M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackHighI32M128i)
}

// UnpackLowI8M512i interleaves the low int8 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpacklo_epi8 (VPUNPCKLBW).
func UnpackLowI8M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackLowI8M128i)
}

// UnpackLowI16M512i interleaves the low int16 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpacklo_epi16 (VPUNPCKLWD).
func UnpackLowI16M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackLowI16M128i)
}

// UnpackLowI32M512i interleaves the low int32 lanes of each 128-bit
// chunk of a and b.
// Models _mm512_unpacklo_epi32 (VPUNPCKLDQ).
func UnpackLowI32M512i(a, b M512i) M512i {
	return perQuarter(a, b, UnpackLowI32M128i)
}

// ShlEachU16M512i shifts each 16-bit lane left by its own count lane.
// Counts above 15 clear the lane.
// Models _mm512_sllv_epi16 (VPSLLVW).
func ShlEachU16M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		if c := getU16(count.v[:], i); c <= 15 {
			putU16(r.v[:], i, getU16(a.v[:], i)<<c)
		}
	}
	return r
}

// ShlEachU32M512i shifts each 32-bit lane left by its own count lane.
// Counts above 31 clear the lane.
// Models _mm512_sllv_epi32 (VPSLLVD).
func ShlEachU32M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		if c := getU32(count.v[:], i); c <= 31 {
			putU32(r.v[:], i, getU32(a.v[:], i)<<c)
		}
	}
	return r
}

// ShlEachU64M512i shifts each 64-bit lane left by its own count lane.
// Counts above 63 clear the lane.
// Models _mm512_sllv_epi64 (VPSLLVQ).
func ShlEachU64M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		if c := getU64(count.v[:], i); c <= 63 {
			putU64(r.v[:], i, getU64(a.v[:], i)<<c)
		}
	}
	return r
}

// ShrEachU16M512i shifts each 16-bit lane right by its own count
// lane, shifting in zeroes. Counts above 15 clear the lane.
// Models _mm512_srlv_epi16 (VPSRLVW).
func ShrEachU16M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		if c := getU16(count.v[:], i); c <= 15 {
			putU16(r.v[:], i, getU16(a.v[:], i)>>c)
		}
	}
	return r
}

// ShrEachU32M512i shifts each 32-bit lane right by its own count
// lane, shifting in zeroes. Counts above 31 clear the lane.
// Models _mm512_srlv_epi32 (VPSRLVD).
func ShrEachU32M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		if c := getU32(count.v[:], i); c <= 31 {
			putU32(r.v[:], i, getU32(a.v[:], i)>>c)
		}
	}
	return r
}

// ShrEachU64M512i shifts each 64-bit lane right by its own count
// lane, shifting in zeroes. Counts above 63 clear the lane.
// Models _mm512_srlv_epi64 (VPSRLVQ).
func ShrEachU64M512i(a, count M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		if c := getU64(count.v[:], i); c <= 63 {
			putU64(r.v[:], i, getU64(a.v[:], i)>>c)
		}
	}
	return r
}

// ShlAllU16M512i shifts every 16-bit lane left by count. Counts above
// 15 clear the register.
// Models _mm512_sllv_epi16 with a broadcast count (VPSLLVW).
func ShlAllU16M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 15 {
		return r
	}
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, getU16(a.v[:], i)<<count)
	}
	return r
}

// ShlAllU32M512i shifts every 32-bit lane left by count. Counts above
// 31 clear the register.
// Models _mm512_sllv_epi32 with a broadcast count (VPSLLVD).
func ShlAllU32M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 31 {
		return r
	}
	for i := 0; i < 16; i++ {
		putU32(r.v[:], i, getU32(a.v[:], i)<<count)
	}
	return r
}

// ShlAllU64M512i shifts every 64-bit lane left by count. Counts above
// 63 clear the register.
// Models _mm512_sllv_epi64 with a broadcast count (VPSLLVQ).
func ShlAllU64M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 63 {
		return r
	}
	for i := 0; i < 8; i++ {
		putU64(r.v[:], i, getU64(a.v[:], i)<<count)
	}
	return r
}

// ShrAllU16M512i shifts every 16-bit lane right by count, shifting in
// zeroes. Counts above 15 clear the register.
// Models _mm512_srlv_epi16 with a broadcast count (VPSRLVW).
func ShrAllU16M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 15 {
		return r
	}
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, getU16(a.v[:], i)>>count)
	}
	return r
}

// ShrAllU32M512i shifts every 32-bit lane right by count, shifting in
// zeroes. Counts above 31 clear the register.
// Models _mm512_srlv_epi32 with a broadcast count (VPSRLVD).
func ShrAllU32M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 31 {
		return r
	}
	for i := 0; i < 16; i++ {
		putU32(r.v[:], i, getU32(a.v[:], i)>>count)
	}
	return r
}

// ShrAllU64M512i shifts every 64-bit lane right by count, shifting in
// zeroes. Counts above 63 clear the register.
// Models _mm512_srlv_epi64 with a broadcast count (VPSRLVQ).
func ShrAllU64M512i(a M512i, count uint) M512i {
	var r M512i
	if count > 63 {
		return r
	}
	for i := 0; i < 8; i++ {
		putU64(r.v[:], i, getU64(a.v[:], i)>>count)
	}
	return r
}

// ShrAllI16M512i shifts every 16-bit lane right by count, shifting in
// sign bits. Counts above 15 fill each lane with its sign.
// Models _mm512_srav_epi16 with a broadcast count (VPSRAVW).
func ShrAllI16M512i(a M512i, count uint) M512i {
	count = min(count, 15)
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, getI16(a.v[:], i)>>count)
	}
	return r
}

// ShrAllI32M512i shifts every 32-bit lane right by count, shifting in
// sign bits. Counts above 31 fill each lane with its sign.
// Models _mm512_srav_epi32 with a broadcast count (VPSRAVD).
func ShrAllI32M512i(a M512i, count uint) M512i {
	count = min(count, 31)
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, getI32(a.v[:], i)>>count)
	}
	return r
}

// ShrAllI64M512i shifts every 64-bit lane right by count, shifting in
// sign bits. Counts above 63 fill each lane with its sign.
// Models _mm512_srav_epi64 with a broadcast count (VPSRAVQ).
func ShrAllI64M512i(a M512i, count uint) M512i {
	count = min(count, 63)
	var r M512i
	for i := 0; i < 8; i++ {
		putI64(r.v[:], i, getI64(a.v[:], i)>>count)
	}
	return r
}

// AbsI8M512i takes the lanewise absolute value of int8 lanes. The
// minimum value stays unchanged.
// Models _mm512_abs_epi8 (VPABSB).
func AbsI8M512i(a M512i) M512i {
	var r M512i
	for i := range r.v {
		x := int8(a.v[i])
		if x < 0 {
			x = -x
		}
		r.v[i] = byte(x)
	}
	return r
}

// AbsI16M512i takes the lanewise absolute value of int16 lanes. The
// minimum value stays unchanged.
// Models _mm512_abs_epi16 (VPABSW).
func AbsI16M512i(a M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		x := getI16(a.v[:], i)
		if x < 0 {
			x = -x
		}
		putI16(r.v[:], i, x)
	}
	return r
}

// AbsI32M512i takes the lanewise absolute value of int32 lanes. The
// minimum value stays unchanged.
// Models _mm512_abs_epi32 (VPABSD).
func AbsI32M512i(a M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		x := getI32(a.v[:], i)
		if x < 0 {
			x = -x
		}
		putI32(r.v[:], i, x)
	}
	return r
}

// MoveMaskI8M512i gathers the sign bit of each int8 lane.
// Models _mm512_movepi8_mask (VPMOVB2M).
func MoveMaskI8M512i(a M512i) Mask64 {
	var m Mask64
	for i, x := range a.v {
		if x&0x80 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskI16M512i gathers the sign bit of each int16 lane.
// Models _mm512_movepi16_mask (VPMOVW2M).
func MoveMaskI16M512i(a M512i) Mask32 {
	var m Mask32
	for i := 0; i < 32; i++ {
		if getU16(a.v[:], i)>>15 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskI32M512i gathers the sign bit of each int32 lane.
// Models _mm512_movepi32_mask (VPMOVD2M).
func MoveMaskI32M512i(a M512i) Mask16 {
	var m Mask16
	for i := 0; i < 16; i++ {
		if getU32(a.v[:], i)>>31 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskI64M512i gathers the sign bit of each int64 lane.
// Models _mm512_movepi64_mask (VPMOVQ2M).
func MoveMaskI64M512i(a M512i) Mask8 {
	var m Mask8
	for i := 0; i < 8; i++ {
		if getU64(a.v[:], i)>>63 != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskM512 gathers the sign bit of each lane.
// Models _mm512_movepi32_mask on the float bit patterns (VPMOVD2M).
func MoveMaskM512(a M512) Mask16 {
	var m Mask16
	for i, x := range a.v {
		if math.Signbit(float64(x)) {
			m |= 1 << i
		}
	}
	return m
}

// MoveMaskM512d gathers the sign bit of each lane.
// Models _mm512_movepi64_mask on the float bit patterns (VPMOVQ2M).
func MoveMaskM512d(a M512d) Mask8 {
	var m Mask8
	for i, x := range a.v {
		if math.Signbit(x) {
			m |= 1 << i
		}
	}
	return m
}

// ExpandMaskI8M512i fills each int8 lane with ones where its mask bit
// is set.
// Models _mm512_maskz_mov_epi8 over an all-ones register (VMOVDQU8).
func ExpandMaskI8M512i(mask Mask64) M512i {
	var r M512i
	for i := range r.v {
		if mask>>i&1 != 0 {
			r.v[i] = 0xFF
		}
	}
	return r
}

// ExpandMaskI16M512i fills each int16 lane with ones where its mask
// bit is set.
// Models _mm512_maskz_mov_epi16 over an all-ones register (VMOVDQU16).
func ExpandMaskI16M512i(mask Mask32) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		if mask>>i&1 != 0 {
			putU16(r.v[:], i, 0xFFFF)
		}
	}
	return r
}

// ExpandMaskI32M512i fills each int32 lane with ones where its mask
// bit is set.
// Models _mm512_maskz_mov_epi32 over an all-ones register (VMOVDQU32).
func ExpandMaskI32M512i(mask Mask16) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		if mask>>i&1 != 0 {
			putU32(r.v[:], i, 0xFFFFFFFF)
		}
	}
	return r
}

// ExpandMaskI64M512i fills each int64 lane with ones where its mask
// bit is set.
// Models _mm512_maskz_mov_epi64 over an all-ones register (VMOVDQU64).
func ExpandMaskI64M512i(mask Mask8) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		if mask>>i&1 != 0 {
			putU64(r.v[:], i, ^uint64(0))
		}
	}
	return r
}

// ExpandMaskM512 fills each lane's bit pattern with ones where its
// mask bit is set.
// Models _mm512_maskz_mov_ps over an all-ones register (VMOVDQU32).
func ExpandMaskM512(mask Mask16) M512 {
	var b [16]uint32
	for i := range b {
		b[i] = maskBits32(mask>>i&1 != 0)
	}
	return M512FromBits(b)
}

// ExpandMaskM512d fills each lane's bit pattern with ones where its
// mask bit is set.
// Models _mm512_maskz_mov_pd over an all-ones register (VMOVDQU64).
func ExpandMaskM512d(mask Mask8) M512d {
	var b [8]uint64
	for i := range b {
		b[i] = maskBits64(mask>>i&1 != 0)
	}
	return M512dFromBits(b)
}

// MulI16HorizontalAddM512i multiplies int16 lanes into 32-bit
// products, then sums each adjacent pair into an int32 lane.
// Models _mm512_madd_epi16 (VPMADDWD).
func MulI16HorizontalAddM512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		lo := int32(getI16(a.v[:], 2*i)) * int32(getI16(b.v[:], 2*i))
		hi := int32(getI16(a.v[:], 2*i+1)) * int32(getI16(b.v[:], 2*i+1))
		putI32(r.v[:], i, lo+hi)
	}
	return r
}

// ExtractM256iFromM512i returns the 256-bit half of a picked by the
// low bit of imm.
// Models _mm512_extracti64x4_epi64 (VEXTRACTI64X4).
func ExtractM256iFromM512i(a M512i, imm int) M256i {
	var r M256i
	copy(r.v[:], a.v[(imm&0b1)*32:])
	return r
}

// ExtractM256FromM512 returns the 256-bit half of a picked by the low
// bit of imm.
// Models _mm512_extractf32x8_ps (VEXTRACTF32X8).
func ExtractM256FromM512(a M512, imm int) M256 {
	var r M256
	copy(r.v[:], a.v[(imm&0b1)*8:])
	return r
}

// ExtractM256dFromM512d returns the 256-bit half of a picked by the
// low bit of imm.
// Models _mm512_extractf64x4_pd (VEXTRACTF64X4).
func ExtractM256dFromM512d(a M512d, imm int) M256d {
	var r M256d
	copy(r.v[:], a.v[(imm&0b1)*4:])
	return r
}

// InsertM256iToM512i replaces the 256-bit half of a picked by the low
// bit of imm with b.
// Models _mm512_inserti64x4 (VINSERTI64X4).
func InsertM256iToM512i(a M512i, b M256i, imm int) M512i {
	r := a
	copy(r.v[(imm&0b1)*32:], b.v[:])
	return r
}

// InsertM256ToM512 replaces the 256-bit half of a picked by the low
// bit of imm with b.
// Models _mm512_insertf32x8 (VINSERTF32X8).
func InsertM256ToM512(a M512, b M256, imm int) M512 {
	r := a
	copy(r.v[(imm&0b1)*8:], b.v[:])
	return r
}

// InsertM256dToM512d replaces the 256-bit half of a picked by the low
// bit of imm with b.
// Models _mm512_insertf64x4 (VINSERTF64X4).
func InsertM256dToM512d(a M512d, b M256d, imm int) M512d {
	r := a
	copy(r.v[(imm&0b1)*4:], b.v[:])
	return r
}

// CastToM512iFromM256i extends a, zeroing the upper half.
// Models _mm512_zextsi256_si512 (VMOVDQA).
func CastToM512iFromM256i(a M256i) M512i {
	var r M512i
	copy(r.v[:], a.v[:])
	return r
}

// CastToM512FromM256 extends a, zeroing the upper half.
// Models _mm512_zextps256_ps512 (VMOVAPS).
func CastToM512FromM256(a M256) M512 {
	var r M512
	copy(r.v[:], a.v[:])
	return r
}

// CastToM512dFromM256d extends a, zeroing the upper half.
// Models _mm512_zextpd256_pd512 (VMOVAPD).
func CastToM512dFromM256d(a M256d) M512d {
	var r M512d
	copy(r.v[:], a.v[:])
	return r
}

// CastToM256iFromM512i truncates a to its lower half.
// Models _mm512_castsi512_si256 (VMOVDQA).
func CastToM256iFromM512i(a M512i) M256i {
	var r M256i
	copy(r.v[:], a.v[:])
	return r
}

// CastToM256FromM512 truncates a to its lower half.
// Models _mm512_castps512_ps256 (VMOVAPS).
func CastToM256FromM512(a M512) M256 {
	var r M256
	copy(r.v[:], a.v[:8])
	return r
}

// CastToM256dFromM512d truncates a to its lower half.
// Models _mm512_castpd512_pd256 (VMOVAPD).
func CastToM256dFromM512d(a M512d) M256d {
	var r M256d
	copy(r.v[:], a.v[:4])
	return r
}

// CastToM512FromM512i reinterprets the bits of a.
// Models _mm512_castsi512_ps.
func CastToM512FromM512i(a M512i) M512 {
	var b [16]uint32
	for i := range b {
		b[i] = getU32(a.v[:], i)
	}
	return M512FromBits(b)
}

// CastToM512dFromM512i reinterprets the bits of a.
// Models _mm512_castsi512_pd.
func CastToM512dFromM512i(a M512i) M512d {
	var b [8]uint64
	for i := range b {
		b[i] = getU64(a.v[:], i)
	}
	return M512dFromBits(b)
}

// CastToM512iFromM512 reinterprets the bits of a.
// Models _mm512_castps_si512.
func CastToM512iFromM512(a M512) M512i {
	var r M512i
	for i, x := range a.Bits() {
		putU32(r.v[:], i, x)
	}
	return r
}

// CastToM512iFromM512d reinterprets the bits of a.
// Models _mm512_castpd_si512.
func CastToM512iFromM512d(a M512d) M512i {
	var r M512i
	for i, x := range a.Bits() {
		putU64(r.v[:], i, x)
	}
	return r
}

// CastToM512dFromM512 reinterprets the bits of a.
// Models _mm512_castps_pd.
func CastToM512dFromM512(a M512) M512d {
	return CastToM512dFromM512i(CastToM512iFromM512(a))
}

// CastToM512FromM512d reinterprets the bits of a.
// Models _mm512_castpd_ps.
func CastToM512FromM512d(a M512d) M512 {
	return CastToM512FromM512i(CastToM512iFromM512d(a))
}

// ShuffleI32M512i picks int32 lanes within each 128-bit chunk of a by
// the same four indices. Each index is masked to 0..3.
// Models _mm512_shuffle_epi32 (VPSHUFD).
func ShuffleI32M512i(a M512i, z, o, t, e int) M512i {
	q := m512iQuarters(a)
	for i := range q {
		q[i] = ShuffleI32M128i(q[i], z, o, t, e)
	}
	return m512iJoin(q)
}

// ShuffleM512 picks lanes within each 128-bit chunk: the low pair
// from a by z and o, the high pair from b by t and e. Each index is
// masked to 0..3.
// Models _mm512_shuffle_ps (VSHUFPS).
func ShuffleM512(a, b M512, z, o, t, e int) M512 {
	var r M512
	for c := 0; c < 16; c += 4 {
		r.v[c+0] = a.v[c+(z&0b11)]
		r.v[c+1] = a.v[c+(o&0b11)]
		r.v[c+2] = b.v[c+(t&0b11)]
		r.v[c+3] = b.v[c+(e&0b11)]
	}
	return r
}

// ShuffleM512d picks each even lane from a and each odd lane from b
// within its 128-bit chunk, choosing the low or high lane of the
// chunk by the matching bit of imm.
// Models _mm512_shuffle_pd (VSHUFPD).
func ShuffleM512d(a, b M512d, imm int) M512d {
	var r M512d
	for i := 0; i < 8; i += 2 {
		r.v[i] = a.v[i+(imm>>i&0b1)]
		r.v[i+1] = b.v[i+(imm>>(i+1)&0b1)]
	}
	return r
}

// PermuteVaryingI32M512i picks each int32 lane from a by the low four
// bits of the matching index lane, crossing all chunks.
// Models _mm512_permutexvar_epi32 (VPERMD).
func PermuteVaryingI32M512i(a, idx M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		j := int(getU32(idx.v[:], i) & 0b1111)
		putU32(r.v[:], i, getU32(a.v[:], j))
	}
	return r
}

// PermuteVaryingI64M512i picks each int64 lane from a by the low
// three bits of the matching index lane, crossing all chunks.
// Models _mm512_permutexvar_epi64 (VPERMQ).
func PermuteVaryingI64M512i(a, idx M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		j := int(getU64(idx.v[:], i) & 0b111)
		putU64(r.v[:], i, getU64(a.v[:], j))
	}
	return r
}

// Permute2I32M512i picks each int32 lane from the 32-lane
// concatenation of a and b by the low five bits of the matching index
// lane; indices 16 and above select from b.
// Models _mm512_permutex2var_epi32 (VPERMT2D).
func Permute2I32M512i(a, idx, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		j := int(getU32(idx.v[:], i) & 0b11111)
		src := &a
		if j >= 16 {
			src = &b
			j -= 16
		}
		putU32(r.v[:], i, getU32(src.v[:], j))
	}
	return r
}

// RoundM512 rounds each lane in the direction picked by mode.
// Models _mm512_roundscale_ps (VRNDSCALEPS).
func RoundM512(a M512, mode RoundMode) M512 {
	var r M512
	for i, x := range a.v {
		r.v[i] = roundF32(x, mode)
	}
	return r
}

// RoundM512d rounds each lane in the direction picked by mode.
// Models _mm512_roundscale_pd (VRNDSCALEPD).
func RoundM512d(a M512d, mode RoundMode) M512d {
	var r M512d
	for i, x := range a.v {
		r.v[i] = roundF64(x, mode)
	}
	return r
}

// ReduceAddM512 sums all lanes, pairing each lane with the matching
// lane of the upper half and halving until one remains.
// Models _mm512_reduce_add_ps.
func ReduceAddM512(a M512) float32 {
	v := a.v[:]
	for n := len(v); n > 1; n /= 2 {
		for i := 0; i < n/2; i++ {
			v[i] += v[i+n/2]
		}
	}
	return v[0]
}

// ReduceAddM512d sums all lanes, pairing each lane with the matching
// lane of the upper half and halving until one remains.
// Models _mm512_reduce_add_pd.
func ReduceAddM512d(a M512d) float64 {
	v := a.v[:]
	for n := len(v); n > 1; n /= 2 {
		for i := 0; i < n/2; i++ {
			v[i] += v[i+n/2]
		}
	}
	return v[0]
}

// MaxI8M512i performs a lanewise maximum of int8 lanes.
// Models _mm512_max_epi8 (VPMAXSB).
func MaxI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(max(int8(a.v[i]), int8(b.v[i])))
	}
	return r
}

// MaxU8M512i performs a lanewise maximum of uint8 lanes.
// Models _mm512_max_epu8 (VPMAXUB).
func MaxU8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = max(a.v[i], b.v[i])
	}
	return r
}

// MaxI16M512i performs a lanewise maximum of int16 lanes.
// Models _mm512_max_epi16 (VPMAXSW).
func MaxI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, max(getI16(a.v[:], i), getI16(b.v[:], i)))
	}
	return r
}

// MaxU16M512i performs a lanewise maximum of uint16 lanes.
// Models _mm512_max_epu16 (VPMAXUW).
func MaxU16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, max(getU16(a.v[:], i), getU16(b.v[:], i)))
	}
	return r
}

// MaxI32M512i performs a lanewise maximum of int32 lanes.
// Models _mm512_max_epi32 (VPMAXSD).
func MaxI32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, max(getI32(a.v[:], i), getI32(b.v[:], i)))
	}
	return r
}

// MaxU32M512i performs a lanewise maximum of uint32 lanes.
// Models _mm512_max_epu32 (VPMAXUD).
func MaxU32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putU32(r.v[:], i, max(getU32(a.v[:], i), getU32(b.v[:], i)))
	}
	return r
}

// MaxI64M512i performs a lanewise maximum of int64 lanes.
// Models _mm512_max_epi64 (VPMAXSQ).
func MaxI64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putI64(r.v[:], i, max(getI64(a.v[:], i), getI64(b.v[:], i)))
	}
	return r
}

// MaxU64M512i performs a lanewise maximum of uint64 lanes.
// Models _mm512_max_epu64 (VPMAXUQ).
func MaxU64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putU64(r.v[:], i, max(getU64(a.v[:], i), getU64(b.v[:], i)))
	}
	return r
}

// MinI8M512i performs a lanewise minimum of int8 lanes.
// Models _mm512_min_epi8 (VPMINSB).
func MinI8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = byte(min(int8(a.v[i]), int8(b.v[i])))
	}
	return r
}

// MinU8M512i performs a lanewise minimum of uint8 lanes.
// Models _mm512_min_epu8 (VPMINUB).
func MinU8M512i(a, b M512i) M512i {
	var r M512i
	for i := range r.v {
		r.v[i] = min(a.v[i], b.v[i])
	}
	return r
}

// MinI16M512i performs a lanewise minimum of int16 lanes.
// Models _mm512_min_epi16 (VPMINSW).
func MinI16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putI16(r.v[:], i, min(getI16(a.v[:], i), getI16(b.v[:], i)))
	}
	return r
}

// MinU16M512i performs a lanewise minimum of uint16 lanes.
// Models _mm512_min_epu16 (VPMINUW).
func MinU16M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 32; i++ {
		putU16(r.v[:], i, min(getU16(a.v[:], i), getU16(b.v[:], i)))
	}
	return r
}

// MinI32M512i performs a lanewise minimum of int32 lanes.
// Models _mm512_min_epi32 (VPMINSD).
func MinI32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putI32(r.v[:], i, min(getI32(a.v[:], i), getI32(b.v[:], i)))
	}
	return r
}

// MinU32M512i performs a lanewise minimum of uint32 lanes.
// Models _mm512_min_epu32 (VPMINUD).
func MinU32M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 16; i++ {
		putU32(r.v[:], i, min(getU32(a.v[:], i), getU32(b.v[:], i)))
	}
	return r
}

// MinI64M512i performs a lanewise minimum of int64 lanes.
// Models _mm512_min_epi64 (VPMINSQ).
func MinI64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putI64(r.v[:], i, min(getI64(a.v[:], i), getI64(b.v[:], i)))
	}
	return r
}

// MinU64M512i performs a lanewise minimum of uint64 lanes.
// Models _mm512_min_epu64 (VPMINUQ).
func MinU64M512i(a, b M512i) M512i {
	var r M512i
	for i := 0; i < 8; i++ {
		putU64(r.v[:], i, min(getU64(a.v[:], i), getU64(b.v[:], i)))
	}
	return r
}

// MaxM512 performs a lanewise maximum. When either lane is NaN or
// both are zero, the b lane wins.
// Models _mm512_max_ps (VMAXPS).
func MaxM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = maxF32(a.v[i], b.v[i])
	}
	return r
}

// MaxM512d performs a lanewise maximum. When either lane is NaN or
// both are zero, the b lane wins.
// Models _mm512_max_pd (VMAXPD).
func MaxM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = maxF64(a.v[i], b.v[i])
	}
	return r
}

// MinM512 performs a lanewise minimum. When either lane is NaN or
// both are zero, the b lane wins.
// Models _mm512_min_ps (VMINPS).
func MinM512(a, b M512) M512 {
	var r M512
	for i := range r.v {
		r.v[i] = minF32(a.v[i], b.v[i])
	}
	return r
}

// MinM512d performs a lanewise minimum. When either lane is NaN or
// both are zero, the b lane wins.
// Models _mm512_min_pd (VMINPD).
func MinM512d(a, b M512d) M512d {
	var r M512d
	for i := range r.v {
		r.v[i] = minF64(a.v[i], b.v[i])
	}
	return r
}

// LoadMaskedI8M512i loads each int8 lane whose mask bit is set,
// taking the rest from src.
// Models _mm512_mask_loadu_epi8 (VMOVDQU8).
func LoadMaskedI8M512i(src M512i, mask Mask64, a *[64]int8) M512i {
	r := src
	for i := range a {
		if mask>>i&1 != 0 {
			r.v[i] = byte(a[i])
		}
	}
	return r
}

// LoadMaskedI16M512i loads each int16 lane whose mask bit is set,
// taking the rest from src.
// Models _mm512_mask_loadu_epi16 (VMOVDQU16).
func LoadMaskedI16M512i(src M512i, mask Mask32, a *[32]int16) M512i {
	r := src
	for i := range a {
		if mask>>i&1 != 0 {
			putI16(r.v[:], i, a[i])
		}
	}
	return r
}

// LoadMaskedI32M512i loads each int32 lane whose mask bit is set,
// taking the rest from src.
// Models _mm512_mask_loadu_epi32 (VMOVDQU32).
func LoadMaskedI32M512i(src M512i, mask Mask16, a *[16]int32) M512i {
	r := src
	for i := range a {
		if mask>>i&1 != 0 {
			putI32(r.v[:], i, a[i])
		}
	}
	return r
}

// LoadMaskedM512 loads each lane whose mask bit is set, taking the
// rest from src.
// Models _mm512_mask_loadu_ps (VMOVUPS).
func LoadMaskedM512(src M512, mask Mask16, a *[16]float32) M512 {
	r := src
	for i := range a {
		if mask>>i&1 != 0 {
			r.v[i] = a[i]
		}
	}
	return r
}

// LoadMaskedM512d loads each lane whose mask bit is set, taking the
// rest from src.
// Models _mm512_mask_loadu_pd (VMOVUPD).
func LoadMaskedM512d(src M512d, mask Mask8, a *[8]float64) M512d {
	r := src
	for i := range a {
		if mask>>i&1 != 0 {
			r.v[i] = a[i]
		}
	}
	return r
}

// StoreMaskedI8M512i stores each int8 lane whose mask bit is set,
// leaving the rest untouched.
// Models _mm512_mask_storeu_epi8 (VMOVDQU8).
func StoreMaskedI8M512i(r *[64]int8, mask Mask64, a M512i) {
	for i := range r {
		if mask>>i&1 != 0 {
			r[i] = int8(a.v[i])
		}
	}
}

// StoreMaskedI16M512i stores each int16 lane whose mask bit is set,
// leaving the rest untouched.
// Models _mm512_mask_storeu_epi16 (VMOVDQU16).
func StoreMaskedI16M512i(r *[32]int16, mask Mask32, a M512i) {
	for i := range r {
		if mask>>i&1 != 0 {
			r[i] = getI16(a.v[:], i)
		}
	}
}

// StoreMaskedI32M512i stores each int32 lane whose mask bit is set,
// leaving the rest untouched.
// Models _mm512_mask_storeu_epi32 (VMOVDQU32).
func StoreMaskedI32M512i(r *[16]int32, mask Mask16, a M512i) {
	for i := range r {
		if mask>>i&1 != 0 {
			r[i] = getI32(a.v[:], i)
		}
	}
}

// StoreMaskedM512 stores each lane whose mask bit is set, leaving the
// rest untouched.
// Models _mm512_mask_storeu_ps (VMOVUPS).
func StoreMaskedM512(r *[16]float32, mask Mask16, a M512) {
	for i := range r {
		if mask>>i&1 != 0 {
			r[i] = a.v[i]
		}
	}
}

// StoreMaskedM512d stores each lane whose mask bit is set, leaving
// the rest untouched.
// Models _mm512_mask_storeu_pd (VMOVUPD).
func StoreMaskedM512d(r *[8]float64, mask Mask8, a M512d) {
	for i := range r {
		if mask>>i&1 != 0 {
			r[i] = a.v[i]
		}
	}
}
