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

import (
	"encoding/binary"
	"hash/crc32"
	"testing"
)

func TestCmpGtMaskI64M128i(t *testing.T) {
	a := M128iFromI64x2([2]int64{5, -9223372036854775808})
	b := M128iFromI64x2([2]int64{-5, 9223372036854775807})
	if got, want := CmpGtMaskI64M128i(a, b).I64x2(), [2]int64{-1, 0}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// The CRC32 instruction runs the raw reflected division. The standard
// CRC-32C check sum is the same division with the state inverted going
// in and coming out, which is what hash/crc32 computes.
func crc32cOf(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = Crc32U8(crc, b)
	}
	return ^crc
}

func TestCrc32AgainstHashCrc32(t *testing.T) {
	table := crc32.MakeTable(crc32.Castagnoli)
	inputs := []string{
		"",
		"a",
		"123456789",
		"The quick brown fox jumps over the lazy dog",
		string(make([]byte, 100)),
	}
	for _, in := range inputs {
		got := crc32cOf([]byte(in))
		want := crc32.Checksum([]byte(in), table)
		if got != want {
			t.Errorf("%q: got %#x, want %#x", in, got, want)
		}
	}
}

func TestCrc32CheckValue(t *testing.T) {
	// The reference check value for CRC-32C.
	if got := crc32cOf([]byte("123456789")); got != 0xE3069283 {
		t.Errorf("got %#x, want 0xE3069283", got)
	}
}

func TestCrc32WideSteps(t *testing.T) {
	data := []byte("0123456789abcdef")

	byByte := uint32(0)
	for _, b := range data {
		byByte = Crc32U8(byByte, b)
	}

	byU16 := uint32(0)
	for i := 0; i < len(data); i += 2 {
		byU16 = Crc32U16(byU16, binary.LittleEndian.Uint16(data[i:]))
	}
	if byU16 != byByte {
		t.Errorf("u16 steps: got %#x, want %#x", byU16, byByte)
	}

	byU32 := uint32(0)
	for i := 0; i < len(data); i += 4 {
		byU32 = Crc32U32(byU32, binary.LittleEndian.Uint32(data[i:]))
	}
	if byU32 != byByte {
		t.Errorf("u32 steps: got %#x, want %#x", byU32, byByte)
	}

	byU64 := uint64(0)
	for i := 0; i < len(data); i += 8 {
		byU64 = Crc32U64(byU64, binary.LittleEndian.Uint64(data[i:]))
	}
	if uint32(byU64) != byByte || byU64>>32 != 0 {
		t.Errorf("u64 steps: got %#x, want %#x", byU64, byByte)
	}

	// Only the low half of the running value participates.
	if got, want := Crc32U64(0xDEADBEEF00000000|uint64(byByte), 1), Crc32U64(uint64(byByte), 1); got != want {
		t.Errorf("high state bits leaked: got %#x, want %#x", got, want)
	}
}

func strReg(s string) M128i {
	var r M128i
	copy(r.v[:], s)
	return r
}

func TestStrSearchIndexM128i(t *testing.T) {
	haystack := strReg("some test words.")

	tests := []struct {
		name   string
		needle string
		ctl    SearchCtl
		want   int32
	}{
		{"eq_any_first", "e", SearchU8 | SearchEqAny | SearchFirst, 3},
		{"eq_any_last", "e", SearchU8 | SearchEqAny | SearchLast, 6},
		{"eq_any_missing", "z", SearchU8 | SearchEqAny | SearchFirst, 16},
		{"eq_any_set", "ot", SearchU8 | SearchEqAny | SearchFirst, 1},
		{"substring", "st", SearchU8 | SearchEqOrdered | SearchFirst, 7},
		{"substring_missing", "sz", SearchU8 | SearchEqOrdered | SearchFirst, 16},
		{"negated", "s", SearchU8 | SearchEqAny | SearchNegate | SearchFirst, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrSearchIndexM128i(strReg(tt.needle), haystack, tt.ctl); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStrSearchRangesM128i(t *testing.T) {
	// Lane pairs in the needle are inclusive ranges.
	lower := strReg("az")
	if got := StrSearchIndexM128i(lower, strReg("Hello World!"), SearchU8|SearchRanges|SearchFirst); got != 1 {
		t.Errorf("first lowercase: got %d, want 1", got)
	}

	digits := strReg("09")
	if got := StrSearchIndexM128i(digits, strReg("price: 42 usd"), SearchU8|SearchRanges|SearchFirst); got != 7 {
		t.Errorf("first digit: got %d, want 7", got)
	}
	if got := StrSearchIndexM128i(digits, strReg("price: 42 usd"), SearchU8|SearchRanges|SearchLast); got != 8 {
		t.Errorf("last digit: got %d, want 8", got)
	}
}

func TestStrSearchIndexExplicitM128i(t *testing.T) {
	needle := strReg("eeee")
	haystack := strReg("some test words.")

	// Explicit lengths override the zero terminator scan; a length of
	// one turns the needle into a single lane.
	if got := StrSearchIndexExplicitM128i(needle, 1, haystack, 16, SearchU8|SearchEqAny|SearchFirst); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	// Negative lengths count as their absolute value.
	if got := StrSearchIndexExplicitM128i(needle, -1, haystack, -16, SearchU8|SearchEqAny|SearchLast); got != 6 {
		t.Errorf("negative lengths: got %d, want 6", got)
	}
	// A short haystack length hides later matches.
	if got := StrSearchIndexExplicitM128i(needle, 1, haystack, 3, SearchU8|SearchEqAny|SearchFirst); got != 16 {
		t.Errorf("clipped haystack: got %d, want 16", got)
	}
}

func TestStrSearchMaskM128i(t *testing.T) {
	haystack := strReg("some test words.")

	// Bit mask output: one bit per haystack position, in the low 16
	// bits of the result.
	m := StrSearchMaskM128i(strReg("e"), haystack, SearchU8|SearchEqAny|SearchBitMask)
	if got, want := m.U16x8()[0], uint16(1<<3|1<<6); got != want {
		t.Errorf("bit mask: got %#x, want %#x", got, want)
	}
	if rest := m.U64x2(); rest[0]>>16 != 0 || rest[1] != 0 {
		t.Errorf("bit mask upper lanes not clear: %#x", rest)
	}

	// Unit mask output: a full lane of ones per match.
	u := StrSearchMaskM128i(strReg("e"), haystack, SearchU8|SearchEqAny|SearchUnitMask).U8x16()
	for i, v := range u {
		want := uint8(0)
		if i == 3 || i == 6 {
			want = 0xFF
		}
		if v != want {
			t.Errorf("unit mask lane %d: got %#x, want %#x", i, v, want)
		}
	}
}

func TestStrSearchEqEachM128i(t *testing.T) {
	// Positionwise comparison. Lanes past both string ends count as
	// matches, which is why equal four-lane strings light all bits.
	m := StrSearchMaskM128i(strReg("abcd"), strReg("abcd"), SearchU8|SearchEqEach|SearchBitMask)
	if got := m.U16x8()[0]; got != 0xFFFF {
		t.Errorf("equal strings: got %#x, want 0xFFFF", got)
	}

	m = StrSearchMaskM128i(strReg("abcd"), strReg("abxd"), SearchU8|SearchEqEach|SearchBitMask)
	if got, want := m.U16x8()[0], uint16(0xFFFF&^(1<<2)); got != want {
		t.Errorf("one mismatch: got %#x, want %#x", got, want)
	}

	// With explicit lengths the valid windows differ lane by lane.
	me := StrSearchMaskExplicitM128i(strReg("ab"), 2, strReg("ab"), 5, SearchU8|SearchEqEach|SearchBitMask)
	if got, want := me.U16x8()[0], uint16(0xFFE3); got != want {
		t.Errorf("explicit lengths: got %#x, want %#x", got, want)
	}
}

func TestStrSearchU16M128i(t *testing.T) {
	// Word lanes: eight uint16 values per register.
	var needle, haystack M128i
	putU16(needle.v[:], 0, 500)
	for i, v := range [8]uint16{100, 200, 300, 400, 500, 600, 700, 800} {
		putU16(haystack.v[:], i, v)
	}

	if got := StrSearchIndexExplicitM128i(needle, 1, haystack, 8, SearchU16|SearchEqAny|SearchFirst); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	// No match reports the word lane count, not 16.
	putU16(needle.v[:], 0, 999)
	if got := StrSearchIndexExplicitM128i(needle, 1, haystack, 8, SearchU16|SearchEqAny|SearchFirst); got != 8 {
		t.Errorf("missing: got %d, want 8", got)
	}
}

// Benchmarks

func BenchmarkCrc32U64(b *testing.B) {
	var crc uint64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crc = Crc32U64(crc, 0x0123456789ABCDEF)
	}
	_ = crc
}

func BenchmarkStrSearchIndexM128i(b *testing.B) {
	needle := strReg("World")
	haystack := strReg("Hello World!")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StrSearchIndexM128i(needle, haystack, SearchU8|SearchEqOrdered|SearchFirst)
	}
}
