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

// CmpGtMaskI64M128i marks int64 lanes where a > b.
// Models _mm_cmpgt_epi64 (PCMPGTQ).
func CmpGtMaskI64M128i(a, b M128i) M128i {
	x, y := a.I64x2(), b.I64x2()
	var r [2]int64
	for i := range r {
		if x[i] > y[i] {
			r[i] = -1
		}
	}
	return M128iFromI64x2(r)
}

// crc32cPoly is the Castagnoli polynomial in reflected bit order, the
// one the CRC32 instruction is hard-wired to.
const crc32cPoly = 0x82F63B78

func crc32Step(crc uint32, v byte) uint32 {
	crc ^= uint32(v)
	for i := 0; i < 8; i++ {
		if crc&1 != 0 {
			crc = crc>>1 ^ crc32cPoly
		} else {
			crc >>= 1
		}
	}
	return crc
}

// Crc32U8 accumulates the byte into a running CRC-32C value.
// Models _mm_crc32_u8 (CRC32).
func Crc32U8(crc uint32, v uint8) uint32 {
	return crc32Step(crc, v)
}

// Crc32U16 accumulates the uint16 into a running CRC-32C value, low
// byte first.
// Models _mm_crc32_u16 (CRC32).
func Crc32U16(crc uint32, v uint16) uint32 {
	crc = crc32Step(crc, byte(v))
	return crc32Step(crc, byte(v>>8))
}

// Crc32U32 accumulates the uint32 into a running CRC-32C value, low
// byte first.
// Models _mm_crc32_u32 (CRC32).
func Crc32U32(crc uint32, v uint32) uint32 {
	for i := 0; i < 4; i++ {
		crc = crc32Step(crc, byte(v>>(8*i)))
	}
	return crc
}

// Crc32U64 accumulates the uint64 into a running CRC-32C value, low
// byte first. Only the low 32 bits of crc participate; the result is
// zero-extended.
// Models _mm_crc32_u64 (CRC32).
func Crc32U64(crc uint64, v uint64) uint64 {
	c := uint32(crc)
	for i := 0; i < 8; i++ {
		c = crc32Step(c, byte(v>>(8*i)))
	}
	return uint64(c)
}

// strState carries one string-search comparison after lane decode:
// lane values widened to int32, valid lengths, and the lane count the
// control byte implies.
type strState struct {
	n      int
	a, b   [16]int32
	la, lb int
	signed bool
}

func strDecode(r M128i, signed, word bool, lanes *[16]int32) {
	if word {
		for i := 0; i < 8; i++ {
			if signed {
				lanes[i] = int32(getI16(r.v[:], i))
			} else {
				lanes[i] = int32(getU16(r.v[:], i))
			}
		}
		return
	}
	for i := 0; i < 16; i++ {
		if signed {
			lanes[i] = int32(int8(r.v[i]))
		} else {
			lanes[i] = int32(r.v[i])
		}
	}
}

func strClampLen(l int32, n int) int {
	if l < 0 {
		l = -l
	}
	if int(l) > n {
		return n
	}
	return int(l)
}

func strImplicitLen(lanes *[16]int32, n int) int {
	for i := 0; i < n; i++ {
		if lanes[i] == 0 {
			return i
		}
	}
	return n
}

func newStrState(needle, haystack M128i, ctl SearchCtl) strState {
	var s strState
	word := ctl&0b01 != 0
	s.signed = ctl&0b10 != 0
	s.n = 16
	if word {
		s.n = 8
	}
	strDecode(needle, s.signed, word, &s.a)
	strDecode(haystack, s.signed, word, &s.b)
	return s
}

// intRes1 computes the aggregated per-position match bits, bit j for
// haystack position j, following the aggregation and the invalid-lane
// rules of the PCMPxSTRx family.
func (s *strState) intRes1(ctl SearchCtl) uint32 {
	var bits uint32
	switch ctl & 0b1100 {
	case SearchEqAny:
		for j := 0; j < s.lb; j++ {
			for i := 0; i < s.la; i++ {
				if s.a[i] == s.b[j] {
					bits |= 1 << j
					break
				}
			}
		}
	case SearchRanges:
		cmpGe := func(x, y int32) bool {
			if s.signed {
				return x >= y
			}
			return uint32(x) >= uint32(y)
		}
		for j := 0; j < s.lb; j++ {
			for k := 0; 2*k+1 < s.la; k++ {
				if cmpGe(s.b[j], s.a[2*k]) && cmpGe(s.a[2*k+1], s.b[j]) {
					bits |= 1 << j
					break
				}
			}
		}
	case SearchEqEach:
		for j := 0; j < s.n; j++ {
			nv, hv := j < s.la, j < s.lb
			switch {
			case nv && hv:
				if s.a[j] == s.b[j] {
					bits |= 1 << j
				}
			case !nv && !hv:
				bits |= 1 << j
			}
		}
	case SearchEqOrdered:
		for j := 0; j < s.n; j++ {
			match := true
			for i := 0; i < s.la; i++ {
				jj := j + i
				if jj >= s.lb {
					match = false
					break
				}
				if s.a[i] != s.b[jj] {
					match = false
					break
				}
			}
			if match {
				bits |= 1 << j
			}
		}
	}
	return bits
}

// intRes2 applies the polarity bits to the aggregated match bits.
func (s *strState) intRes2(bits uint32, ctl SearchCtl) uint32 {
	switch ctl & SearchMaskedNegate {
	case SearchNegate:
		bits ^= 1<<s.n - 1
	case SearchMaskedNegate:
		bits ^= 1<<s.lb - 1
	}
	return bits & (1<<s.n - 1)
}

func (s *strState) index(bits uint32, ctl SearchCtl) int32 {
	if bits == 0 {
		return int32(s.n)
	}
	if ctl&SearchLast != 0 {
		for j := s.n - 1; j >= 0; j-- {
			if bits>>j&1 != 0 {
				return int32(j)
			}
		}
	}
	for j := 0; j < s.n; j++ {
		if bits>>j&1 != 0 {
			return int32(j)
		}
	}
	return int32(s.n)
}

func (s *strState) mask(bits uint32, ctl SearchCtl) M128i {
	var r M128i
	if ctl&SearchUnitMask != 0 {
		width := 16 / s.n
		for j := 0; j < s.n; j++ {
			if bits>>j&1 != 0 {
				for k := 0; k < width; k++ {
					r.v[j*width+k] = 0xFF
				}
			}
		}
		return r
	}
	putU16(r.v[:], 0, uint16(bits))
	return r
}

// StrSearchIndexM128i searches for needle in haystack and returns the
// position of the first or last match, or the lane count when there is
// no match. The strings end at the first zero lane, or at the end of
// the register.
//
// The control composes a lane interpretation (SearchU8 and friends), a
// search operation, an optional polarity, and SearchFirst or
// SearchLast:
//
//   - SearchEqAny matches haystack lanes equal to any needle lane.
//   - SearchRanges reads needle lane pairs as low/high bounds and
//     matches haystack lanes inside any pair.
//   - SearchEqEach matches lanes equal at the same position.
//   - SearchEqOrdered matches positions where the whole needle occurs
//     as a substring.
//
// Models _mm_cmpistri (PCMPISTRI).
func StrSearchIndexM128i(needle, haystack M128i, ctl SearchCtl) int32 {
	s := newStrState(needle, haystack, ctl)
	s.la = strImplicitLen(&s.a, s.n)
	s.lb = strImplicitLen(&s.b, s.n)
	return s.index(s.intRes2(s.intRes1(ctl), ctl), ctl)
}

// StrSearchIndexExplicitM128i is StrSearchIndexM128i with the string
// lengths passed explicitly instead of read from zero lanes. Negative
// lengths count as their absolute value and lengths clamp to the lane
// count.
// Models _mm_cmpestri (PCMPESTRI).
func StrSearchIndexExplicitM128i(needle M128i, needleLen int32, haystack M128i, haystackLen int32, ctl SearchCtl) int32 {
	s := newStrState(needle, haystack, ctl)
	s.la = strClampLen(needleLen, s.n)
	s.lb = strClampLen(haystackLen, s.n)
	return s.index(s.intRes2(s.intRes1(ctl), ctl), ctl)
}

// StrSearchMaskM128i searches for needle in haystack and returns the
// matches as a mask: with SearchBitMask one bit per haystack position
// in the low lanes, with SearchUnitMask an all-ones lane per match.
// The strings end at the first zero lane, or at the end of the
// register. The control byte composes as in StrSearchIndexM128i.
// Models _mm_cmpistrm (PCMPISTRM).
func StrSearchMaskM128i(needle, haystack M128i, ctl SearchCtl) M128i {
	s := newStrState(needle, haystack, ctl)
	s.la = strImplicitLen(&s.a, s.n)
	s.lb = strImplicitLen(&s.b, s.n)
	return s.mask(s.intRes2(s.intRes1(ctl), ctl), ctl)
}

// StrSearchMaskExplicitM128i is StrSearchMaskM128i with the string
// lengths passed explicitly instead of read from zero lanes. Negative
// lengths count as their absolute value and lengths clamp to the lane
// count.
// Models _mm_cmpestrm (PCMPESTRM).
func StrSearchMaskExplicitM128i(needle M128i, needleLen int32, haystack M128i, haystackLen int32, ctl SearchCtl) M128i {
	s := newStrState(needle, haystack, ctl)
	s.la = strClampLen(needleLen, s.n)
	s.lb = strClampLen(haystackLen, s.n)
	return s.mask(s.intRes2(s.intRes1(ctl), ctl), ctl)
}
