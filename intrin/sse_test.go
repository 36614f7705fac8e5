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
	"math"
	"testing"
)

var nan32 = float32(math.NaN())

func TestAddM128(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float32
		want [4]float32
	}{
		{
			name: "simple",
			a:    [4]float32{1, 2, 3, 4},
			b:    [4]float32{10, 20, 30, 40},
			want: [4]float32{11, 22, 33, 44},
		},
		{
			name: "negatives",
			a:    [4]float32{-1, -2, 3, 4},
			b:    [4]float32{1, 2, -3, -4},
			want: [4]float32{0, 0, 0, 0},
		},
		{
			name: "infinity",
			a:    [4]float32{float32(math.Inf(1)), 1, 2, 3},
			b:    [4]float32{1, 1, 1, 1},
			want: [4]float32{float32(math.Inf(1)), 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddM128(M128FromArray(tt.a), M128FromArray(tt.b)).Array()
			for i := 0; i < len(tt.want); i++ {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAddM128S(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{10, 20, 30, 40})
	got := AddM128S(a, b).Array()
	want := [4]float32{11, 2, 3, 4}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSubM128(t *testing.T) {
	a := M128FromArray([4]float32{10, 20, 30, 40})
	b := M128FromArray([4]float32{1, 2, 3, 4})
	got := SubM128(a, b).Array()
	want := [4]float32{9, 18, 27, 36}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	got = SubM128S(a, b).Array()
	want = [4]float32{9, 20, 30, 40}
	if got != want {
		t.Errorf("scalar form: got %v, want %v", got, want)
	}
}

func TestMulDivM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{2, 4, 8, 16})

	got := MulM128(a, b).Array()
	want := [4]float32{2, 8, 24, 64}
	if got != want {
		t.Errorf("mul: got %v, want %v", got, want)
	}

	got = DivM128(b, a).Array()
	want = [4]float32{2, 2, 8.0 / 3.0, 4}
	if got != want {
		t.Errorf("div: got %v, want %v", got, want)
	}

	got = DivM128(a, ZeroedM128()).Array()
	for i, v := range got {
		if !math.IsInf(float64(v), 1) {
			t.Errorf("lane %d: dividing by zero got %v, want +Inf", i, v)
		}
	}
}

func TestBitwiseM128(t *testing.T) {
	a := M128FromBits([4]uint32{0xF0F0F0F0, 0xFFFFFFFF, 0, 0x12345678})
	b := M128FromBits([4]uint32{0x0F0F0F0F, 0xFFFF0000, 0xAAAAAAAA, 0x12345678})

	tests := []struct {
		name string
		got  [4]uint32
		want [4]uint32
	}{
		{"and", AndM128(a, b).Bits(), [4]uint32{0, 0xFFFF0000, 0, 0x12345678}},
		{"or", OrM128(a, b).Bits(), [4]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xAAAAAAAA, 0x12345678}},
		{"xor", XorM128(a, b).Bits(), [4]uint32{0xFFFFFFFF, 0x0000FFFF, 0xAAAAAAAA, 0}},
		{"andnot", AndNotM128(a, b).Bits(), [4]uint32{0x0F0F0F0F, 0, 0xAAAAAAAA, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.want); i++ {
				if tt.got[i] != tt.want[i] {
					t.Errorf("lane %d: got %#x, want %#x", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCmpMaskM128(t *testing.T) {
	const all = 0xFFFFFFFF
	a := M128FromArray([4]float32{1, 2, 3, nan32})
	b := M128FromArray([4]float32{1, 5, 2, 1})

	tests := []struct {
		name string
		got  [4]uint32
		want [4]uint32
	}{
		{"eq", CmpEqMaskM128(a, b).Bits(), [4]uint32{all, 0, 0, 0}},
		{"ge", CmpGeMaskM128(a, b).Bits(), [4]uint32{all, 0, all, 0}},
		{"gt", CmpGtMaskM128(a, b).Bits(), [4]uint32{0, 0, all, 0}},
		{"le", CmpLeMaskM128(a, b).Bits(), [4]uint32{all, all, 0, 0}},
		{"lt", CmpLtMaskM128(a, b).Bits(), [4]uint32{0, all, 0, 0}},
		{"neq", CmpNeqMaskM128(a, b).Bits(), [4]uint32{0, all, all, all}},
		{"nge", CmpNgeMaskM128(a, b).Bits(), [4]uint32{0, all, 0, all}},
		{"ngt", CmpNgtMaskM128(a, b).Bits(), [4]uint32{all, all, 0, all}},
		{"nle", CmpNleMaskM128(a, b).Bits(), [4]uint32{0, 0, all, all}},
		{"nlt", CmpNltMaskM128(a, b).Bits(), [4]uint32{all, 0, all, all}},
		{"ord", CmpOrdMaskM128(a, b).Bits(), [4]uint32{all, all, all, 0}},
		{"unord", CmpUnordMaskM128(a, b).Bits(), [4]uint32{0, 0, 0, all}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.want); i++ {
				if tt.got[i] != tt.want[i] {
					t.Errorf("lane %d: got %#x, want %#x", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCmpMaskM128S(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{1, 9, 9, 9})

	got := CmpEqMaskM128S(a, b).Bits()
	want := [4]uint32{0xFFFFFFFF, math.Float32bits(2), math.Float32bits(3), math.Float32bits(4)}
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestCmpI32M128S(t *testing.T) {
	a := M128FromArray([4]float32{2, 0, 0, 0})
	b := M128FromArray([4]float32{3, 0, 0, 0})
	n := M128FromArray([4]float32{nan32, 0, 0, 0})

	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"eq", CmpEqI32M128S(a, a), 1},
		{"eq_differs", CmpEqI32M128S(a, b), 0},
		{"lt", CmpLtI32M128S(a, b), 1},
		{"ge", CmpGeI32M128S(a, b), 0},
		{"gt", CmpGtI32M128S(b, a), 1},
		{"le", CmpLeI32M128S(a, b), 1},
		{"neq", CmpNeqI32M128S(a, b), 1},
		{"eq_nan", CmpEqI32M128S(n, a), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestMinMaxM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 8, -3, 0})
	b := M128FromArray([4]float32{5, 2, -7, 0})

	got := MinM128(a, b).Array()
	want := [4]float32{1, 2, -7, 0}
	if got != want {
		t.Errorf("min: got %v, want %v", got, want)
	}

	got = MaxM128(a, b).Array()
	want = [4]float32{5, 8, -3, 0}
	if got != want {
		t.Errorf("max: got %v, want %v", got, want)
	}
}

func TestMinMaxM128SecondOperandWins(t *testing.T) {
	// The hardware min and max return the second operand when the
	// inputs do not order: NaN in either lane, or zeros of opposite
	// sign.
	nan := M128FromArray([4]float32{nan32, 5, nan32, 5})
	num := M128FromArray([4]float32{5, nan32, 5, nan32})

	got := MinM128(nan, num).Array()
	if got[0] != 5 || !math.IsNaN(float64(got[1])) {
		t.Errorf("min(nan, x): got %v", got)
	}
	got = MaxM128(nan, num).Array()
	if got[0] != 5 || !math.IsNaN(float64(got[1])) {
		t.Errorf("max(nan, x): got %v", got)
	}

	pz := M128FromBits([4]uint32{0, 0x80000000, 0, 0})
	nz := M128FromBits([4]uint32{0x80000000, 0, 0, 0})
	if bits := MinM128(pz, nz).Bits(); bits[0] != 0x80000000 || bits[1] != 0 {
		t.Errorf("min over signed zeros: got %#x", bits)
	}
	if bits := MaxM128(pz, nz).Bits(); bits[0] != 0x80000000 || bits[1] != 0 {
		t.Errorf("max over signed zeros: got %#x", bits)
	}
}

func TestMoveMaskM128(t *testing.T) {
	tests := []struct {
		name  string
		input [4]float32
		want  int32
	}{
		{"none", [4]float32{1, 2, 3, 4}, 0b0000},
		{"all", [4]float32{-1, -2, -3, -4}, 0b1111},
		{"mixed", [4]float32{-1, 2, -3, 4}, 0b0101},
		{"negative_zero", [4]float32{float32(math.Copysign(0, -1)), 0, 0, 0}, 0b0001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveMaskM128(M128FromArray(tt.input)); got != tt.want {
				t.Errorf("got %#b, want %#b", got, tt.want)
			}
		})
	}
}

func TestMoveM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{5, 6, 7, 8})

	if got, want := MoveM128S(a, b).Array(), [4]float32{5, 2, 3, 4}; got != want {
		t.Errorf("move scalar: got %v, want %v", got, want)
	}
	if got, want := MoveHighLowM128(a, b).Array(), [4]float32{7, 8, 3, 4}; got != want {
		t.Errorf("high to low: got %v, want %v", got, want)
	}
	if got, want := MoveLowHighM128(a, b).Array(), [4]float32{1, 2, 5, 6}; got != want {
		t.Errorf("low to high: got %v, want %v", got, want)
	}
}

func TestShuffleM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{5, 6, 7, 8})

	tests := []struct {
		name       string
		z, o, t, e int
		want       [4]float32
	}{
		{"identity", 0, 1, 2, 3, [4]float32{1, 2, 7, 8}},
		{"splat_zero", 0, 0, 0, 0, [4]float32{1, 1, 5, 5}},
		{"reverse", 3, 2, 1, 0, [4]float32{4, 3, 6, 5}},
		{"index_masked", 4, 5, 6, 7, [4]float32{1, 2, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShuffleM128(a, b, tt.z, tt.o, tt.t, tt.e).Array()
			for i := 0; i < len(tt.want); i++ {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnpackM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{5, 6, 7, 8})

	if got, want := UnpackHighM128(a, b).Array(), [4]float32{3, 7, 4, 8}; got != want {
		t.Errorf("high: got %v, want %v", got, want)
	}
	if got, want := UnpackLowM128(a, b).Array(), [4]float32{1, 5, 2, 6}; got != want {
		t.Errorf("low: got %v, want %v", got, want)
	}
}

func TestTransposeFourM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{5, 6, 7, 8})
	c := M128FromArray([4]float32{9, 10, 11, 12})
	d := M128FromArray([4]float32{13, 14, 15, 16})

	TransposeFourM128(&a, &b, &c, &d)

	want := [4][4]float32{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	for i, row := range [4]M128{a, b, c, d} {
		if got := row.Array(); got != want[i] {
			t.Errorf("row %d: got %v, want %v", i, got, want[i])
		}
	}
}

func TestSqrtM128(t *testing.T) {
	a := M128FromArray([4]float32{4, 9, 0.25, 2})
	got := SqrtM128(a).Array()
	want := [4]float32{2, 3, 0.5, float32(math.Sqrt(2))}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	neg := SqrtM128(M128FromArray([4]float32{-1, 1, 1, 1})).Array()
	if !math.IsNaN(float64(neg[0])) {
		t.Errorf("sqrt(-1): got %v, want NaN", neg[0])
	}

	s := SqrtM128S(M128FromArray([4]float32{16, 5, 6, 7})).Array()
	if wantS := [4]float32{4, 5, 6, 7}; s != wantS {
		t.Errorf("scalar form: got %v, want %v", s, wantS)
	}
}

func TestReciprocalM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 0.25, -4})
	got := ReciprocalM128(a).Array()
	want := [4]float32{1, 0.5, 4, -0.25}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	inf := ReciprocalM128(ZeroedM128()).Array()
	for i, v := range inf {
		if !math.IsInf(float64(v), 1) {
			t.Errorf("lane %d: 1/0 got %v, want +Inf", i, v)
		}
	}

	rs := ReciprocalSqrtM128(M128FromArray([4]float32{4, 16, 1, 0.25})).Array()
	if want := [4]float32{0.5, 0.25, 1, 2}; rs != want {
		t.Errorf("rsqrt: got %v, want %v", rs, want)
	}
}

func TestSetM128(t *testing.T) {
	if got, want := SetM128(3, 2, 1, 0).Array(), [4]float32{0, 1, 2, 3}; got != want {
		t.Errorf("set: got %v, want %v", got, want)
	}
	if got, want := SetReversedM128(0, 1, 2, 3).Array(), [4]float32{0, 1, 2, 3}; got != want {
		t.Errorf("set reversed: got %v, want %v", got, want)
	}
	if got, want := SetM128S(7).Array(), [4]float32{7, 0, 0, 0}; got != want {
		t.Errorf("set scalar: got %v, want %v", got, want)
	}
	if got, want := SetSplatM128(3).Array(), [4]float32{3, 3, 3, 3}; got != want {
		t.Errorf("splat: got %v, want %v", got, want)
	}
	if got, want := ZeroedM128().Array(), ([4]float32{}); got != want {
		t.Errorf("zeroed: got %v, want %v", got, want)
	}
}

func TestLoadStoreM128(t *testing.T) {
	src := M128FromArray([4]float32{1, 2, 3, 4})

	if got := LoadM128(&src).Array(); got != src.Array() {
		t.Errorf("load: got %v", got)
	}
	if got, want := LoadReverseM128(&src).Array(), [4]float32{4, 3, 2, 1}; got != want {
		t.Errorf("load reverse: got %v, want %v", got, want)
	}

	f := float32(9)
	if got, want := LoadSplatM128(&f).Array(), [4]float32{9, 9, 9, 9}; got != want {
		t.Errorf("load splat: got %v, want %v", got, want)
	}
	if got, want := LoadF32M128S(&f).Array(), [4]float32{9, 0, 0, 0}; got != want {
		t.Errorf("load scalar: got %v, want %v", got, want)
	}

	arr := [4]float32{5, 6, 7, 8}
	if got := LoadUnalignedM128(&arr).Array(); got != arr {
		t.Errorf("load unaligned: got %v", got)
	}

	var dst M128
	StoreM128(&dst, src)
	if dst.Array() != src.Array() {
		t.Errorf("store: got %v", dst.Array())
	}
	StoreReverseM128(&dst, src)
	if got, want := dst.Array(), [4]float32{4, 3, 2, 1}; got != want {
		t.Errorf("store reverse: got %v, want %v", got, want)
	}
	StoreSplatM128(&dst, src)
	if got, want := dst.Array(), [4]float32{1, 1, 1, 1}; got != want {
		t.Errorf("store splat: got %v, want %v", got, want)
	}
	var out [4]float32
	StoreUnalignedM128(&out, src)
	if out != src.Array() {
		t.Errorf("store unaligned: got %v", out)
	}
	var scalar float32
	StoreF32M128S(&scalar, src)
	if scalar != 1 {
		t.Errorf("store scalar: got %v, want 1", scalar)
	}
}

func TestConvertI32M128S(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})

	if got, want := ConvertReplaceI32M128S(a, 9).Array(), [4]float32{9, 2, 3, 4}; got != want {
		t.Errorf("replace i32: got %v, want %v", got, want)
	}
	if got, want := ConvertReplaceI64M128S(a, 1<<33).Array(), [4]float32{float32(1 << 33), 2, 3, 4}; got != want {
		t.Errorf("replace i64: got %v, want %v", got, want)
	}
	if got := GetF32M128S(a); got != 1 {
		t.Errorf("get f32: got %v, want 1", got)
	}

	// Conversions round to nearest even.
	half := M128FromArray([4]float32{2.5, 0, 0, 0})
	if got := ConvertGetI32M128S(half); got != 2 {
		t.Errorf("get i32 of 2.5: got %d, want 2", got)
	}
	if got := ConvertGetI64M128S(M128FromArray([4]float32{-2.5, 0, 0, 0})); got != -2 {
		t.Errorf("get i64 of -2.5: got %d, want -2", got)
	}
}

// Each operand expression runs exactly once per call, so expressions
// with side effects behave the same as with any other Go function.
func TestOperandsEvaluateOnce(t *testing.T) {
	calls := 0
	next := func() M128 {
		calls++
		return M128FromArray([4]float32{1, 2, 3, 4})
	}
	if got := AddM128(next(), next()); got.Array() != [4]float32{2, 4, 6, 8} {
		t.Errorf("add: got %v", got.Array())
	}
	if calls != 2 {
		t.Errorf("two operands: %d evaluations, want 2", calls)
	}

	calls = 0
	v := next()
	if got := ShuffleM128(v, v, 3, 2, 1, 0); got.Array() != [4]float32{4, 3, 2, 1} {
		t.Errorf("shuffle: got %v", got.Array())
	}
	if calls != 1 {
		t.Errorf("shared operand: %d evaluations, want 1", calls)
	}
}

// Benchmarks

func BenchmarkAddM128(b *testing.B) {
	x := M128FromArray([4]float32{1.5, -2.25, 3.75, -4.125})
	y := M128FromArray([4]float32{0.5, 0.25, 0.125, 0.0625})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AddM128(x, y)
	}
}

func BenchmarkShuffleM128(b *testing.B) {
	x := M128FromArray([4]float32{1, 2, 3, 4})
	y := M128FromArray([4]float32{5, 6, 7, 8})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ShuffleM128(x, y, 3, 1, 2, 0)
	}
}
