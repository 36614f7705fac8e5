package intrin

import (
	"math"
	"testing"
)

func TestAddIntM128i(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		tests := []struct {
			name string
			a, b [16]int8
			want [16]int8
		}{
			{
				name: "simple",
				a:    [16]int8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
				b:    [16]int8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				want: [16]int8{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
			},
			{
				name: "wraps",
				a:    [16]int8{127, -128, 100, -100},
				b:    [16]int8{1, -1, 100, -100},
				want: [16]int8{-128, 127, -56, 56},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := AddI8M128i(M128iFromI8x16(tt.a), M128iFromI8x16(tt.b)).I8x16()
				for i := 0; i < len(tt.want); i++ {
					if got[i] != tt.want[i] {
						t.Errorf("lane %d: got %d, want %d", i, got[i], tt.want[i])
					}
				}
			})
		}
	})

	t.Run("int16", func(t *testing.T) {
		a := M128iFromI16x8([8]int16{32767, -32768, 1000, -1000, 0, 1, 2, 3})
		b := M128iFromI16x8([8]int16{1, -1, 1000, -1000, 0, 1, 2, 3})
		got := AddI16M128i(a, b).I16x8()
		want := [8]int16{-32768, 32767, 2000, -2000, 0, 2, 4, 6}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("int32", func(t *testing.T) {
		a := M128iFromI32x4([4]int32{math.MaxInt32, math.MinInt32, 7, -7})
		b := M128iFromI32x4([4]int32{1, -1, 3, 3})
		got := AddI32M128i(a, b).I32x4()
		want := [4]int32{math.MinInt32, math.MaxInt32, 10, -4}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("int64", func(t *testing.T) {
		a := M128iFromI64x2([2]int64{math.MaxInt64, -5})
		b := M128iFromI64x2([2]int64{1, 10})
		got := AddI64M128i(a, b).I64x2()
		want := [2]int64{math.MinInt64, 5}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})
}

func TestSubIntM128i(t *testing.T) {
	a := M128iFromI8x16([16]int8{-128, 127, 10, 0})
	b := M128iFromI8x16([16]int8{1, -1, 20, 0})
	got := SubI8M128i(a, b).I8x16()
	want := [16]int8{127, -128, -10, 0}
	for i := 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("int8 lane %d: got %d, want %d", i, got[i], want[i])
		}
	}

	got32 := SubI32M128i(
		M128iFromI32x4([4]int32{math.MinInt32, 10, 0, 5}),
		M128iFromI32x4([4]int32{1, 4, 0, -5}),
	).I32x4()
	want32 := [4]int32{math.MaxInt32, 6, 0, 10}
	for i := 0; i < len(want32); i++ {
		if got32[i] != want32[i] {
			t.Errorf("int32 lane %d: got %d, want %d", i, got32[i], want32[i])
		}
	}
}

func TestSaturatingM128i(t *testing.T) {
	t.Run("add_int8", func(t *testing.T) {
		a := M128iFromI8x16([16]int8{127, 127, -128, -128, 100, -100, 0, 1})
		b := M128iFromI8x16([16]int8{1, 127, -1, -128, 100, -100, 0, 1})
		got := AddSaturatingI8M128i(a, b).I8x16()
		want := [16]int8{127, 127, -128, -128, 127, -128, 0, 2}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("add_uint8", func(t *testing.T) {
		a := M128iFromU8x16([16]uint8{255, 200, 0, 7})
		b := M128iFromU8x16([16]uint8{1, 100, 0, 8})
		got := AddSaturatingU8M128i(a, b).U8x16()
		want := [16]uint8{255, 255, 0, 15}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("add_int16", func(t *testing.T) {
		a := M128iFromI16x8([8]int16{32767, -32768, 30000, -30000})
		b := M128iFromI16x8([8]int16{1, -1, 10000, -10000})
		got := AddSaturatingI16M128i(a, b).I16x8()
		want := [8]int16{32767, -32768, 32767, -32768}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("add_uint16", func(t *testing.T) {
		a := M128iFromU16x8([8]uint16{65535, 60000, 0, 1})
		b := M128iFromU16x8([8]uint16{1, 10000, 0, 1})
		got := AddSaturatingU16M128i(a, b).U16x8()
		want := [8]uint16{65535, 65535, 0, 2}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("sub_int8", func(t *testing.T) {
		a := M128iFromI8x16([16]int8{-128, 127, 0, 10})
		b := M128iFromI8x16([16]int8{1, -1, 0, 3})
		got := SubSaturatingI8M128i(a, b).I8x16()
		want := [16]int8{-128, 127, 0, 7}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("sub_uint8", func(t *testing.T) {
		a := M128iFromU8x16([16]uint8{0, 5, 200, 255})
		b := M128iFromU8x16([16]uint8{1, 10, 100, 255})
		got := SubSaturatingU8M128i(a, b).U8x16()
		want := [16]uint8{0, 0, 100, 0}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("sub_int16", func(t *testing.T) {
		a := M128iFromI16x8([8]int16{-32768, 32767, 0, 100})
		b := M128iFromI16x8([8]int16{1, -1, 0, 300})
		got := SubSaturatingI16M128i(a, b).I16x8()
		want := [8]int16{-32768, 32767, 0, -200}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("sub_uint16", func(t *testing.T) {
		a := M128iFromU16x8([8]uint16{0, 60000, 7, 0})
		b := M128iFromU16x8([8]uint16{1, 50000, 7, 0})
		got := SubSaturatingU16M128i(a, b).U16x8()
		want := [8]uint16{0, 10000, 0, 0}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})
}

func TestAverageM128i(t *testing.T) {
	// Averages round up on the half.
	a := M128iFromU8x16([16]uint8{0, 1, 255, 254, 100})
	b := M128iFromU8x16([16]uint8{0, 2, 255, 255, 101})
	got := AverageU8M128i(a, b).U8x16()
	want := [16]uint8{0, 2, 255, 255, 101}
	for i := 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("uint8 lane %d: got %d, want %d", i, got[i], want[i])
		}
	}

	a16 := M128iFromU16x8([8]uint16{0, 1, 65535, 30000})
	b16 := M128iFromU16x8([8]uint16{0, 2, 65535, 30001})
	got16 := AverageU16M128i(a16, b16).U16x8()
	want16 := [8]uint16{0, 2, 65535, 30001}
	for i := 0; i < len(want16); i++ {
		if got16[i] != want16[i] {
			t.Errorf("uint16 lane %d: got %d, want %d", i, got16[i], want16[i])
		}
	}
}

func TestByteShiftM128i(t *testing.T) {
	a := M128iFromU8x16([16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})

	tests := []struct {
		name string
		got  [16]uint8
		want [16]uint8
	}{
		{"shl_0", ByteShlImmU128M128i(a, 0).U8x16(), [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{"shl_4", ByteShlImmU128M128i(a, 4).U8x16(), [16]uint8{0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"shl_16", ByteShlImmU128M128i(a, 16).U8x16(), [16]uint8{}},
		{"shr_4", ByteShrImmU128M128i(a, 4).U8x16(), [16]uint8{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0}},
		{"shr_20", ByteShrImmU128M128i(a, 20).U8x16(), [16]uint8{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.want); i++ {
				if tt.got[i] != tt.want[i] {
					t.Errorf("lane %d: got %d, want %d", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCmpIntMaskM128i(t *testing.T) {
	a := M128iFromI32x4([4]int32{1, 5, -3, 0})
	b := M128iFromI32x4([4]int32{1, 2, 0, 0})

	if got, want := CmpEqMaskI32M128i(a, b).I32x4(), [4]int32{-1, 0, 0, -1}; got != want {
		t.Errorf("eq: got %v, want %v", got, want)
	}
	if got, want := CmpGtMaskI32M128i(a, b).I32x4(), [4]int32{0, -1, 0, 0}; got != want {
		t.Errorf("gt: got %v, want %v", got, want)
	}
	if got, want := CmpLtMaskI32M128i(a, b).I32x4(), [4]int32{0, 0, -1, 0}; got != want {
		t.Errorf("lt: got %v, want %v", got, want)
	}

	a8 := M128iFromI8x16([16]int8{5, -5, 0, 127})
	b8 := M128iFromI8x16([16]int8{5, 5, 1, -128})
	if got, want := CmpEqMaskI8M128i(a8, b8).I8x16(), ([16]int8{-1, 0, 0, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}); got != want {
		t.Errorf("eq int8: got %v, want %v", got, want)
	}
	if got, want := CmpGtMaskI8M128i(a8, b8).I8x16(), ([16]int8{0, 0, 0, -1}); got != want {
		t.Errorf("gt int8: got %v, want %v", got, want)
	}
}

func TestMulI16M128i(t *testing.T) {
	a := M128iFromI16x8([8]int16{300, 16384, -16384, -1, 0, 1, 2, 3})
	b := M128iFromI16x8([8]int16{300, 4, 4, -1, 0, 1, 2, 3})

	if got, want := MulI16KeepLowM128i(a, b).I16x8(), [8]int16{24464, 0, 0, 1, 0, 1, 4, 9}; got != want {
		t.Errorf("keep low: got %v, want %v", got, want)
	}
	if got, want := MulI16KeepHighM128i(a, b).I16x8(), [8]int16{1, 1, -1, 0, 0, 0, 0, 0}; got != want {
		t.Errorf("keep high: got %v, want %v", got, want)
	}

	ua := M128iFromU16x8([8]uint16{50000, 65535, 2, 0})
	ub := M128iFromU16x8([8]uint16{50000, 65535, 3, 9})
	if got, want := MulU16KeepHighM128i(ua, ub).U16x8(), [8]uint16{38146, 65534, 0, 0}; got != want {
		t.Errorf("unsigned keep high: got %v, want %v", got, want)
	}
}

func TestMulWidenU32OddM128i(t *testing.T) {
	a := M128iFromU32x4([4]uint32{0xFFFFFFFF, 7, 3, 7})
	b := M128iFromU32x4([4]uint32{0xFFFFFFFF, 7, 5, 7})
	got := MulWidenU32OddM128i(a, b).U64x2()
	want := [2]uint64{0xFFFFFFFE00000001, 15}
	for i := 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMulI16HorizontalAddM128i(t *testing.T) {
	a := M128iFromI16x8([8]int16{1, 2, 3, 4, 5, 6, 7, 8})
	b := M128iFromI16x8([8]int16{1, 1, 1, 1, 2, 2, 2, 2})
	got := MulI16HorizontalAddM128i(a, b).I32x4()
	want := [4]int32{3, 7, 22, 30}
	for i := 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
		}
	}

	// -32768 * -32768 in both pair slots is the one input whose sum
	// does not fit the int32 accumulator; it wraps.
	m := M128iFromI16x8([8]int16{-32768, -32768})
	if got := MulI16HorizontalAddM128i(m, m).I32x4()[0]; got != math.MinInt32 {
		t.Errorf("extreme pair: got %d, want %d", got, math.MinInt32)
	}
}

func TestSumAbsDiffU8M128i(t *testing.T) {
	a := M128iFromU8x16([16]uint8{1, 2, 3, 4, 5, 6, 7, 8, 255, 0, 0, 0, 0, 0, 0, 0})
	b := M128iFromU8x16([16]uint8{8, 7, 6, 5, 4, 3, 2, 1, 0, 255, 0, 0, 0, 0, 0, 0})
	got := SumAbsDiffU8M128i(a, b).U64x2()
	want := [2]uint64{32, 510}
	for i := 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("half %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPackM128i(t *testing.T) {
	a := M128iFromI16x8([8]int16{1, -1, 300, -300, 127, -128, 128, -129})
	b := M128iFromI16x8([8]int16{0, 32767, -32768, 5, 6, 7, 8, 9})

	if got, want := PackI16ToI8M128i(a, b).I8x16(), [16]int8{
		1, -1, 127, -128, 127, -128, 127, -128,
		0, 127, -128, 5, 6, 7, 8, 9,
	}; got != want {
		t.Errorf("signed: got %v, want %v", got, want)
	}

	if got, want := PackI16ToU8M128i(a, b).U8x16(), [16]uint8{
		1, 0, 255, 0, 127, 0, 128, 0,
		0, 255, 0, 5, 6, 7, 8, 9,
	}; got != want {
		t.Errorf("unsigned: got %v, want %v", got, want)
	}

	c := M128iFromI32x4([4]int32{70000, -70000, 10, -10})
	d := M128iFromI32x4([4]int32{32767, -32768, 32768, -32769})
	if got, want := PackI32ToI16M128i(c, d).I16x8(), [8]int16{
		32767, -32768, 10, -10,
		32767, -32768, 32767, -32768,
	}; got != want {
		t.Errorf("dword: got %v, want %v", got, want)
	}
}

func TestUnpackM128i(t *testing.T) {
	a := M128iFromI8x16([16]int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	b := M128iFromI8x16([16]int8{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31})

	if got, want := UnpackLowI8M128i(a, b).I8x16(), [16]int8{
		0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23,
	}; got != want {
		t.Errorf("low int8: got %v, want %v", got, want)
	}
	if got, want := UnpackHighI8M128i(a, b).I8x16(), [16]int8{
		8, 24, 9, 25, 10, 26, 11, 27, 12, 28, 13, 29, 14, 30, 15, 31,
	}; got != want {
		t.Errorf("high int8: got %v, want %v", got, want)
	}

	a16 := M128iFromI16x8([8]int16{0, 1, 2, 3, 4, 5, 6, 7})
	b16 := M128iFromI16x8([8]int16{8, 9, 10, 11, 12, 13, 14, 15})
	if got, want := UnpackLowI16M128i(a16, b16).I16x8(), [8]int16{0, 8, 1, 9, 2, 10, 3, 11}; got != want {
		t.Errorf("low int16: got %v, want %v", got, want)
	}
	if got, want := UnpackHighI16M128i(a16, b16).I16x8(), [8]int16{4, 12, 5, 13, 6, 14, 7, 15}; got != want {
		t.Errorf("high int16: got %v, want %v", got, want)
	}

	a32 := M128iFromI32x4([4]int32{0, 1, 2, 3})
	b32 := M128iFromI32x4([4]int32{4, 5, 6, 7})
	if got, want := UnpackLowI32M128i(a32, b32).I32x4(), [4]int32{0, 4, 1, 5}; got != want {
		t.Errorf("low int32: got %v, want %v", got, want)
	}
	if got, want := UnpackHighI32M128i(a32, b32).I32x4(), [4]int32{2, 6, 3, 7}; got != want {
		t.Errorf("high int32: got %v, want %v", got, want)
	}

	a64 := M128iFromI64x2([2]int64{0, 1})
	b64 := M128iFromI64x2([2]int64{2, 3})
	if got, want := UnpackLowI64M128i(a64, b64).I64x2(), [2]int64{0, 2}; got != want {
		t.Errorf("low int64: got %v, want %v", got, want)
	}
	if got, want := UnpackHighI64M128i(a64, b64).I64x2(), [2]int64{1, 3}; got != want {
		t.Errorf("high int64: got %v, want %v", got, want)
	}
}

func TestShiftImmM128i(t *testing.T) {
	a16 := M128iFromU16x8([8]uint16{1, 0x8000, 0xFFFF, 3})

	if got, want := ShlImmU16M128i(a16, 1).U16x8(), [8]uint16{2, 0, 0xFFFE, 6}; got != want {
		t.Errorf("shl 1: got %v, want %v", got, want)
	}
	if got, want := ShlImmU16M128i(a16, 16).U16x8(), ([8]uint16{}); got != want {
		t.Errorf("shl 16: got %v, want %v", got, want)
	}
	if got, want := ShrImmU16M128i(a16, 1).U16x8(), [8]uint16{0, 0x4000, 0x7FFF, 1}; got != want {
		t.Errorf("shr 1: got %v, want %v", got, want)
	}

	s16 := M128iFromI16x8([8]int16{-2, 2, -32768, 32767})
	if got, want := ShrImmI16M128i(s16, 1).I16x8(), [8]int16{-1, 1, -16384, 16383}; got != want {
		t.Errorf("sar 1: got %v, want %v", got, want)
	}
	if got, want := ShrImmI16M128i(s16, 40).I16x8(), [8]int16{-1, 0, -1, 0}; got != want {
		t.Errorf("sar overlong: got %v, want %v", got, want)
	}

	s32 := M128iFromI32x4([4]int32{-8, 8, math.MinInt32, math.MaxInt32})
	if got, want := ShrImmI32M128i(s32, 2).I32x4(), [4]int32{-2, 2, math.MinInt32 / 4, math.MaxInt32 / 4}; got != want {
		t.Errorf("sar32 2: got %v, want %v", got, want)
	}

	a64 := M128iFromU64x2([2]uint64{1, 1 << 63})
	if got, want := ShlImmU64M128i(a64, 1).U64x2(), [2]uint64{2, 0}; got != want {
		t.Errorf("shl64 1: got %v, want %v", got, want)
	}
	if got, want := ShrImmU64M128i(a64, 63).U64x2(), [2]uint64{0, 1}; got != want {
		t.Errorf("shr64 63: got %v, want %v", got, want)
	}
}

func TestShiftAllM128i(t *testing.T) {
	a := M128iFromU32x4([4]uint32{1, 2, 0x80000000, 0xFFFFFFFF})

	if got, want := ShlAllU32M128i(a, SetI64M128i(0, 4)).U32x4(), [4]uint32{16, 32, 0, 0xFFFFFFF0}; got != want {
		t.Errorf("shl by 4: got %v, want %v", got, want)
	}
	// The count is the whole low 64 bits, so any high garbage there
	// pushes it out of range and clears the lanes.
	if got, want := ShlAllU32M128i(a, SetI64M128i(0, 1<<33)).U32x4(), ([4]uint32{}); got != want {
		t.Errorf("shl by 2^33: got %v, want %v", got, want)
	}
	if got, want := ShrAllU32M128i(a, SetI64M128i(0, 32)).U32x4(), ([4]uint32{}); got != want {
		t.Errorf("shr by 32: got %v, want %v", got, want)
	}

	s := M128iFromI32x4([4]int32{-64, 64, -1, 1})
	if got, want := ShrAllI32M128i(s, SetI64M128i(0, 3)).I32x4(), [4]int32{-8, 8, -1, 0}; got != want {
		t.Errorf("sar by 3: got %v, want %v", got, want)
	}
	if got, want := ShrAllI32M128i(s, SetI64M128i(0, 99)).I32x4(), [4]int32{-1, 0, -1, 0}; got != want {
		t.Errorf("sar by 99: got %v, want %v", got, want)
	}
}

func TestShuffleM128i(t *testing.T) {
	a := M128iFromI32x4([4]int32{10, 11, 12, 13})

	if got, want := ShuffleI32M128i(a, 3, 3, 0, 0).I32x4(), [4]int32{13, 13, 10, 10}; got != want {
		t.Errorf("dword: got %v, want %v", got, want)
	}
	if got, want := ShuffleI32M128i(a, 6, 1, 2, 3).I32x4(), [4]int32{12, 11, 12, 13}; got != want {
		t.Errorf("dword wrap: got %v, want %v", got, want)
	}

	w := M128iFromI16x8([8]int16{0, 1, 2, 3, 4, 5, 6, 7})
	if got, want := ShuffleLowI16M128i(w, 3, 2, 1, 0).I16x8(), [8]int16{3, 2, 1, 0, 4, 5, 6, 7}; got != want {
		t.Errorf("low words: got %v, want %v", got, want)
	}
	if got, want := ShuffleHighI16M128i(w, 3, 2, 1, 0).I16x8(), [8]int16{0, 1, 2, 3, 7, 6, 5, 4}; got != want {
		t.Errorf("high words: got %v, want %v", got, want)
	}

	d := M128dFromArray([2]float64{1, 2})
	e := M128dFromArray([2]float64{3, 4})
	if got, want := ShuffleM128d(d, e, 1, 0).Array(), [2]float64{2, 3}; got != want {
		t.Errorf("double: got %v, want %v", got, want)
	}
}

func TestConvertM128(t *testing.T) {
	t.Run("round_to_nearest_even", func(t *testing.T) {
		a := M128FromArray([4]float32{2.5, 3.5, -2.5, 0.5})
		got := ConvertToI32M128iFromM128(a).I32x4()
		want := [4]int32{2, 4, -2, 0}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("truncate", func(t *testing.T) {
		a := M128FromArray([4]float32{2.9, -2.9, 0.99, -0.99})
		got := TruncateToI32M128iFromM128(a).I32x4()
		want := [4]int32{2, -2, 0, 0}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		a := M128FromArray([4]float32{nan32, 3e9, -3e9, float32(math.Inf(1))})
		got := ConvertToI32M128iFromM128(a).I32x4()
		want := [4]int32{math.MinInt32, math.MinInt32, math.MinInt32, math.MinInt32}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("widen_int32", func(t *testing.T) {
		a := M128iFromI32x4([4]int32{1, -2, 100, math.MinInt32})
		got := ConvertToM128FromM128i(a).Array()
		want := [4]float32{1, -2, 100, float32(math.MinInt32)}
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestConvertM128d(t *testing.T) {
	a := M128dFromArray([2]float64{2.5, -3.5})
	if got, want := ConvertToI32M128iFromM128d(a).I32x4(), [4]int32{2, -4, 0, 0}; got != want {
		t.Errorf("round: got %v, want %v", got, want)
	}
	if got, want := TruncateToI32M128iFromM128d(a).I32x4(), [4]int32{2, -3, 0, 0}; got != want {
		t.Errorf("trunc: got %v, want %v", got, want)
	}

	if got, want := ConvertToM128dFromM128i(M128iFromI32x4([4]int32{7, -9, 0, 0})).Array(), [2]float64{7, -9}; got != want {
		t.Errorf("from int32: got %v, want %v", got, want)
	}

	f := ConvertToM128FromM128d(M128dFromArray([2]float64{1.5, -2.25})).Array()
	if want := [4]float32{1.5, -2.25, 0, 0}; f != want {
		t.Errorf("narrow: got %v, want %v", f, want)
	}

	d := ConvertToM128dFromLowerM128(M128FromArray([4]float32{0.5, 8, 9, 10})).Array()
	if want := [2]float64{0.5, 8}; d != want {
		t.Errorf("widen: got %v, want %v", d, want)
	}

	if got := ConvertGetI32M128dS(M128dFromArray([2]float64{-0.5, 99})); got != 0 {
		t.Errorf("get i32: got %d, want 0", got)
	}
	if got := TruncateGetI32M128dS(M128dFromArray([2]float64{-0.9, 99})); got != 0 {
		t.Errorf("trunc get i32: got %d, want 0", got)
	}
	if got := ConvertGetI64M128dS(M128dFromArray([2]float64{1e15 + 0.5, 99})); got != 1000000000000000 {
		t.Errorf("get i64: got %d", got)
	}
}

func TestMoveMaskM128i(t *testing.T) {
	tests := []struct {
		name  string
		input [16]int8
		want  int32
	}{
		{"none", [16]int8{1, 2, 3}, 0},
		{"low_byte", [16]int8{-1}, 1},
		{"all", [16]int8{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, 0xFFFF},
		{"alternating", [16]int8{-1, 0, -1, 0, -1, 0, -1, 0, -1, 0, -1, 0, -1, 0, -1, 0}, 0x5555},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveMaskI8M128i(M128iFromI8x16(tt.input)); got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}

	d := M128dFromArray([2]float64{-1, 1})
	if got := MoveMaskM128d(d); got != 0b01 {
		t.Errorf("double: got %#b, want 0b01", got)
	}
}

func TestMinMaxIntM128i(t *testing.T) {
	a := M128iFromU8x16([16]uint8{1, 200, 3, 255})
	b := M128iFromU8x16([16]uint8{2, 100, 3, 0})
	if got, want := MinU8M128i(a, b).U8x16(), [16]uint8{1, 100, 3, 0}; got != want {
		t.Errorf("min u8: got %v, want %v", got, want)
	}
	if got, want := MaxU8M128i(a, b).U8x16(), [16]uint8{2, 200, 3, 255}; got != want {
		t.Errorf("max u8: got %v, want %v", got, want)
	}

	c := M128iFromI16x8([8]int16{-5, 5, 0, 32767})
	d := M128iFromI16x8([8]int16{5, -5, 0, -32768})
	if got, want := MinI16M128i(c, d).I16x8(), [8]int16{-5, -5, 0, -32768}; got != want {
		t.Errorf("min i16: got %v, want %v", got, want)
	}
	if got, want := MaxI16M128i(c, d).I16x8(), [8]int16{5, 5, 0, 32767}; got != want {
		t.Errorf("max i16: got %v, want %v", got, want)
	}
}

func TestM128dArithmetic(t *testing.T) {
	a := M128dFromArray([2]float64{1.5, -2})
	b := M128dFromArray([2]float64{0.5, 4})

	if got, want := AddM128d(a, b).Array(), [2]float64{2, 2}; got != want {
		t.Errorf("add: got %v, want %v", got, want)
	}
	if got, want := SubM128d(a, b).Array(), [2]float64{1, -6}; got != want {
		t.Errorf("sub: got %v, want %v", got, want)
	}
	if got, want := MulM128d(a, b).Array(), [2]float64{0.75, -8}; got != want {
		t.Errorf("mul: got %v, want %v", got, want)
	}
	if got, want := DivM128d(a, b).Array(), [2]float64{3, -0.5}; got != want {
		t.Errorf("div: got %v, want %v", got, want)
	}
	if got, want := AddM128dS(a, b).Array(), [2]float64{2, -2}; got != want {
		t.Errorf("add scalar: got %v, want %v", got, want)
	}
	if got, want := SqrtM128d(M128dFromArray([2]float64{9, 2})).Array(), [2]float64{3, math.Sqrt2}; got != want {
		t.Errorf("sqrt: got %v, want %v", got, want)
	}

	if got, want := MinM128d(a, b).Array(), [2]float64{0.5, -2}; got != want {
		t.Errorf("min: got %v, want %v", got, want)
	}
	if got, want := MaxM128d(a, b).Array(), [2]float64{1.5, 4}; got != want {
		t.Errorf("max: got %v, want %v", got, want)
	}
}

func TestCmpMaskM128d(t *testing.T) {
	nan := math.NaN()
	a := M128dFromArray([2]float64{1, nan})
	b := M128dFromArray([2]float64{1, 1})

	if got, want := CmpEqMaskM128d(a, b).Bits(), ([2]uint64{1<<64 - 1, 0}); got != want {
		t.Errorf("eq: got %#x, want %#x", got, want)
	}
	if got, want := CmpNeqMaskM128d(a, b).Bits(), ([2]uint64{0, 1<<64 - 1}); got != want {
		t.Errorf("neq: got %#x, want %#x", got, want)
	}
	if got, want := CmpUnordMaskM128d(a, b).Bits(), ([2]uint64{0, 1<<64 - 1}); got != want {
		t.Errorf("unord: got %#x, want %#x", got, want)
	}
	if got, want := CmpNltMaskM128d(a, b).Bits(), ([2]uint64{1<<64 - 1, 1<<64 - 1}); got != want {
		t.Errorf("nlt: got %#x, want %#x", got, want)
	}
}

func TestSetM128i(t *testing.T) {
	got := SetI8M128i(15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0).I8x16()
	want := [16]int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if got != want {
		t.Errorf("set i8: got %v, want %v", got, want)
	}
	if got := SetReversedI8M128i(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15).I8x16(); got != want {
		t.Errorf("set reversed i8: got %v, want %v", got, want)
	}

	if got, want := SetI32M128i(3, 2, 1, 0).I32x4(), [4]int32{0, 1, 2, 3}; got != want {
		t.Errorf("set i32: got %v, want %v", got, want)
	}
	if got, want := SetI64M128i(1, 0).I64x2(), [2]int64{0, 1}; got != want {
		t.Errorf("set i64: got %v, want %v", got, want)
	}
	if got, want := SetSplatI16M128i(-7).I16x8(), [8]int16{-7, -7, -7, -7, -7, -7, -7, -7}; got != want {
		t.Errorf("splat i16: got %v, want %v", got, want)
	}
	if got, want := SetM128d(1, 0).Array(), [2]float64{0, 1}; got != want {
		t.Errorf("set double: got %v, want %v", got, want)
	}
	if got, want := SetM128dS(4).Array(), [2]float64{4, 0}; got != want {
		t.Errorf("set double scalar: got %v, want %v", got, want)
	}
}

func TestScalarLanesM128i(t *testing.T) {
	if got := GetI32FromM128iS(SetI32M128iS(-9)); got != -9 {
		t.Errorf("i32 round trip: got %d", got)
	}
	if got := GetI64FromM128iS(SetI64M128iS(1 << 40)); got != 1<<40 {
		t.Errorf("i64 round trip: got %d", got)
	}

	// The upper lane clears.
	a := M128iFromI64x2([2]int64{3, 9})
	if got, want := MoveI64M128iS(a).I64x2(), [2]int64{3, 0}; got != want {
		t.Errorf("move: got %v, want %v", got, want)
	}
}

func TestCastM128iRoundTrip(t *testing.T) {
	a := M128FromArray([4]float32{1, -2, 3.5, nan32})
	back := CastToM128FromM128i(CastToM128iFromM128(a))
	if got, want := back.Bits(), a.Bits(); got != want {
		t.Errorf("float bits changed: got %#x, want %#x", got, want)
	}

	d := M128dFromArray([2]float64{-0.5, math.Inf(-1)})
	backd := CastToM128dFromM128i(CastToM128iFromM128d(d))
	if got, want := backd.Bits(), d.Bits(); got != want {
		t.Errorf("double bits changed: got %#x, want %#x", got, want)
	}
}

func TestLoadStoreM128i(t *testing.T) {
	src := M128iFromI32x4([4]int32{1, 2, 3, 4})

	if got := LoadM128i(&src); got.I32x4() != src.I32x4() {
		t.Errorf("load: got %v", got.I32x4())
	}

	var raw [16]byte
	StoreUnalignedM128i(&raw, src)
	if got := LoadUnalignedM128i(&raw); got.I32x4() != src.I32x4() {
		t.Errorf("unaligned round trip: got %v", got.I32x4())
	}

	if got, want := LoadI64M128iS(&src).I64x2()[1], int64(0); got != want {
		t.Errorf("load low quad: high lane got %d", got)
	}

	var dst M128i
	StoreI64M128iS(&dst, src)
	if got := dst.I64x2(); got[0] != src.I64x2()[0] || got[1] != 0 {
		t.Errorf("store low quad: got %v", got)
	}

	d := M128dFromArray([2]float64{5, 6})
	if got, want := LoadReverseM128d(&d).Array(), [2]float64{6, 5}; got != want {
		t.Errorf("load reverse: got %v, want %v", got, want)
	}
	f := 2.5
	if got, want := LoadSplatM128d(&f).Array(), [2]float64{2.5, 2.5}; got != want {
		t.Errorf("load splat: got %v, want %v", got, want)
	}
}
