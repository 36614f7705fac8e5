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

// The AES round operations work on the FIPS-197 state laid out
// column-major in the register: bytes 0..3 are column 0, with row r
// of column c at byte 4*c+r. The S-box pair is built at init from
// the GF(2^8) multiplicative inverse and the affine transform rather
// than spelled out as 512 literals.

var aesSbox, aesInvSbox [256]byte

func init() {
	for i := 0; i < 256; i++ {
		inv := gf8Inv(byte(i))
		s := inv ^ rotlB(inv, 1) ^ rotlB(inv, 2) ^ rotlB(inv, 3) ^ rotlB(inv, 4) ^ 0x63
		aesSbox[i] = s
		aesInvSbox[s] = byte(i)
	}
}

func rotlB(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

// gf8Mul multiplies in GF(2^8) modulo the AES polynomial
// x^8 + x^4 + x^3 + x + 1.
func gf8Mul(a, b byte) byte {
	var p byte
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			p ^= a
		}
		if a&0x80 != 0 {
			a = a<<1 ^ 0x1B
		} else {
			a <<= 1
		}
	}
	return p
}

// gf8Inv returns the multiplicative inverse a^254, with 0 mapping to
// 0.
func gf8Inv(a byte) byte {
	r := byte(1)
	for i := 0; i < 254; i++ {
		r = gf8Mul(r, a)
	}
	return r
}

// Row r of column c moves left by r columns under ShiftRows and
// right by r columns under its inverse.
var (
	aesShiftRows    = [16]int{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	aesInvShiftRows = [16]int{0, 13, 10, 7, 4, 1, 14, 11, 8, 5, 2, 15, 12, 9, 6, 3}
)

func aesSubShift(a M128i, sbox *[256]byte, perm *[16]int) M128i {
	var r M128i
	for i := range r.v {
		r.v[i] = sbox[a.v[perm[i]]]
	}
	return r
}

func aesMixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		b0, b1, b2, b3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c+0] = gf8Mul(b0, 2) ^ gf8Mul(b1, 3) ^ b2 ^ b3
		s[c+1] = b0 ^ gf8Mul(b1, 2) ^ gf8Mul(b2, 3) ^ b3
		s[c+2] = b0 ^ b1 ^ gf8Mul(b2, 2) ^ gf8Mul(b3, 3)
		s[c+3] = gf8Mul(b0, 3) ^ b1 ^ b2 ^ gf8Mul(b3, 2)
	}
}

func aesInvMixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		b0, b1, b2, b3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c+0] = gf8Mul(b0, 14) ^ gf8Mul(b1, 11) ^ gf8Mul(b2, 13) ^ gf8Mul(b3, 9)
		s[c+1] = gf8Mul(b0, 9) ^ gf8Mul(b1, 14) ^ gf8Mul(b2, 11) ^ gf8Mul(b3, 13)
		s[c+2] = gf8Mul(b0, 13) ^ gf8Mul(b1, 9) ^ gf8Mul(b2, 14) ^ gf8Mul(b3, 11)
		s[c+3] = gf8Mul(b0, 11) ^ gf8Mul(b1, 13) ^ gf8Mul(b2, 9) ^ gf8Mul(b3, 14)
	}
}

// AesEncryptM128i performs one full round of encryption on the state
// a: ShiftRows, SubBytes, MixColumns, then XOR with roundKey.
// Models _mm_aesenc_si128 (AESENC).
func AesEncryptM128i(a, roundKey M128i) M128i {
	r := aesSubShift(a, &aesSbox, &aesShiftRows)
	aesMixColumns(&r.v)
	return XorM128i(r, roundKey)
}

// AesEncryptLastM128i performs the final round of encryption on the
// state a: ShiftRows and SubBytes without MixColumns, then XOR with
// roundKey.
// Models _mm_aesenclast_si128 (AESENCLAST).
func AesEncryptLastM128i(a, roundKey M128i) M128i {
	return XorM128i(aesSubShift(a, &aesSbox, &aesShiftRows), roundKey)
}

// AesDecryptM128i performs one full round of decryption on the state
// a: InvShiftRows, InvSubBytes, InvMixColumns, then XOR with
// roundKey. The round keys must come through InvMixColumns for the
// equivalent inverse cipher this round implements.
// Models _mm_aesdec_si128 (AESDEC).
func AesDecryptM128i(a, roundKey M128i) M128i {
	r := aesSubShift(a, &aesInvSbox, &aesInvShiftRows)
	aesInvMixColumns(&r.v)
	return XorM128i(r, roundKey)
}

// AesDecryptLastM128i performs the final round of decryption on the
// state a: InvShiftRows and InvSubBytes without InvMixColumns, then
// XOR with roundKey.
// Models _mm_aesdeclast_si128 (AESDECLAST).
func AesDecryptLastM128i(a, roundKey M128i) M128i {
	return XorM128i(aesSubShift(a, &aesInvSbox, &aesInvShiftRows), roundKey)
}

// AesInvMixColumnsM128i applies InvMixColumns to a, turning an
// encryption round key into its decryption counterpart.
// Models _mm_aesimc_si128 (AESIMC).
func AesInvMixColumnsM128i(a M128i) M128i {
	r := a
	aesInvMixColumns(&r.v)
	return r
}

// AesKeyGenAssistM128i computes the key expansion helper values for
// the two odd int32 lanes of a: each even result lane holds SubWord
// of the lane above it, each odd result lane additionally rotates
// and XORs in the low 8 bits of imm as the round constant.
// Models _mm_aeskeygenassist_si128 (AESKEYGENASSIST).
func AesKeyGenAssistM128i(a M128i, imm int) M128i {
	rcon := uint32(imm & 0xFF)
	x1 := aesSubWord(getU32(a.v[:], 1))
	x3 := aesSubWord(getU32(a.v[:], 3))
	var r M128i
	putU32(r.v[:], 0, x1)
	putU32(r.v[:], 1, aesRotWord(x1)^rcon)
	putU32(r.v[:], 2, x3)
	putU32(r.v[:], 3, aesRotWord(x3)^rcon)
	return r
}

func aesSubWord(x uint32) uint32 {
	return uint32(aesSbox[byte(x)]) |
		uint32(aesSbox[byte(x>>8)])<<8 |
		uint32(aesSbox[byte(x>>16)])<<16 |
		uint32(aesSbox[byte(x>>24)])<<24
}

func aesRotWord(x uint32) uint32 {
	return x>>8 | x<<24
}
