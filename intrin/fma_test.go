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
	"math/big"
	"testing"
)

func TestFusedMulM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{5, 6, 7, 8})
	c := M128FromArray([4]float32{1, 1, 1, 1})

	tests := []struct {
		name string
		f    func(a, b, c M128) M128
		want [4]float32
	}{
		{"fmadd", FusedMulAddM128, [4]float32{6, 13, 22, 33}},
		{"fmsub", FusedMulSubM128, [4]float32{4, 11, 20, 31}},
		{"fnmadd", FusedMulNegAddM128, [4]float32{-4, -11, -20, -31}},
		{"fnmsub", FusedMulNegSubM128, [4]float32{-6, -13, -22, -33}},
		{"fmaddsub", FusedMulAddSubM128, [4]float32{4, 13, 20, 33}},
		{"fmsubadd", FusedMulSubAddM128, [4]float32{6, 11, 22, 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f(a, b, c).Array()
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFusedMulM128d(t *testing.T) {
	a := M128dFromArray([2]float64{2, 3})
	b := M128dFromArray([2]float64{5, 7})
	c := M128dFromArray([2]float64{1, 1})

	if got, want := FusedMulAddM128d(a, b, c).Array(), [2]float64{11, 22}; got != want {
		t.Errorf("fmadd: got %v, want %v", got, want)
	}
	// The low lane subtracts c, the high lane adds it.
	if got, want := FusedMulAddSubM128d(a, b, c).Array(), [2]float64{9, 22}; got != want {
		t.Errorf("fmaddsub: got %v, want %v", got, want)
	}
	if got, want := FusedMulSubAddM128d(a, b, c).Array(), [2]float64{11, 20}; got != want {
		t.Errorf("fmsubadd: got %v, want %v", got, want)
	}
	if got, want := FusedMulNegAddM128d(a, b, c).Array(), [2]float64{-9, -20}; got != want {
		t.Errorf("fnmadd: got %v, want %v", got, want)
	}
}

func TestFusedMulScalarForms(t *testing.T) {
	a := M128FromArray([4]float32{2, 20, 30, 40})
	b := M128FromArray([4]float32{3, 9, 9, 9})
	c := M128FromArray([4]float32{4, 9, 9, 9})

	got := FusedMulAddM128S(a, b, c).Array()
	if got != ([4]float32{10, 20, 30, 40}) {
		t.Errorf("fmadd scalar: got %v", got)
	}
	if got := FusedMulNegSubM128S(a, b, c).Array(); got != ([4]float32{-10, 20, 30, 40}) {
		t.Errorf("fnmsub scalar: got %v", got)
	}

	d := FusedMulSubM128dS(M128dFromArray([2]float64{3, 70}), M128dFromArray([2]float64{4, 9}), M128dFromArray([2]float64{2, 9})).Array()
	if d != ([2]float64{10, 70}) {
		t.Errorf("fmsub scalar double: got %v", d)
	}
}

func TestFusedMulM256(t *testing.T) {
	a := SetSplatM256(3)
	b := SetSplatM256(4)
	c := SetSplatM256(5)
	got := FusedMulAddM256(a, b, c).Array()
	for i, g := range got {
		if g != 17 {
			t.Errorf("lane %d: got %v, want 17", i, g)
		}
	}
	gotD := FusedMulNegSubM256d(SetSplatM256d(3), SetSplatM256d(4), SetSplatM256d(5)).Array()
	for i, g := range gotD {
		if g != -17 {
			t.Errorf("double lane %d: got %v, want -17", i, g)
		}
	}
}

// A fused multiply-add rounds once. With x = 1+2^-12 the square is
// 1+2^-11+2^-24; the product alone rounds the 2^-24 tail away, so
// the unfused path loses it entirely while the fused path keeps it.
func TestFusedMulSingleRounding(t *testing.T) {
	x := float32(1) + 1.0/4096
	c := float32(1) + 1.0/2048

	unfused := x*x - c
	if unfused != 0 {
		t.Fatalf("unfused: got %g, want 0", unfused)
	}
	got := FusedMulAddM128S(SetSplatM128(x), SetSplatM128(x), SetSplatM128(-c)).Array()[0]
	if want := float32(1.0 / (1 << 24)); got != want {
		t.Errorf("fused: got %g, want %g", got, want)
	}
}

func TestFusedMulF32Oracle(t *testing.T) {
	// 500 bits hold any x*y+z over float32 inputs exactly, so the
	// Float32 call performs the only rounding.
	oracle := func(x, y, z float32) float32 {
		bx := new(big.Float).SetPrec(500).SetFloat64(float64(x))
		by := new(big.Float).SetPrec(500).SetFloat64(float64(y))
		bz := new(big.Float).SetPrec(500).SetFloat64(float64(z))
		bx.Mul(bx, by).Add(bx, bz)
		f, _ := bx.Float32()
		return f
	}

	state := uint32(0x2545F491)
	next := func() float32 {
		state = state*1664525 + 1013904223
		return math.Float32frombits(state)
	}
	finite := func(f float32) bool {
		v := float64(f)
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}

	for n := 0; n < 4000; {
		x, y, z := next(), next(), next()
		if !finite(x) || !finite(y) || !finite(z) {
			continue
		}
		n++
		got := FusedMulAddM128S(SetSplatM128(x), SetSplatM128(y), SetSplatM128(z)).Array()[0]
		want := oracle(x, y, z)
		if got == 0 && want == 0 {
			continue // zero signs differ between the paths
		}
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Fatalf("fma(%x, %x, %x): got %x, want %x", x, y, z, got, want)
		}
	}
}

func TestFusedMulF64MatchesMathFMA(t *testing.T) {
	cases := [][3]float64{
		{2, 3, 4},
		{1 + 0x1p-26, 1 + 0x1p-26, -(1 + 0x1p-25)},
		{0x1p-1000, 0x1p-100, 0x1p-1074},
		{-math.MaxFloat64, 2, math.MaxFloat64},
		{math.Pi, math.E, -8.5},
	}
	for _, c := range cases {
		got := FusedMulAddM128dS(SetSplatM128d(c[0]), SetSplatM128d(c[1]), SetSplatM128d(c[2])).Array()[0]
		want := math.FMA(c[0], c[1], c[2])
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("fma(%g, %g, %g): got %x, want %x", c[0], c[1], c[2], got, want)
		}
	}
}

// Benchmarks

func BenchmarkFusedMulAddM256(b *testing.B) {
	x := M256FromArray([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
	y := M256FromArray([8]float32{0.5, 0.25, 0.125, 0.0625, 2, 4, 8, 16})
	z := M256FromArray([8]float32{1, -1, 1, -1, 1, -1, 1, -1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FusedMulAddM256(x, y, z)
	}
}
