package intrin

import (
	"math"
	"testing"
)

func TestArithmeticM256(t *testing.T) {
	a := M256FromArray([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := M256FromArray([8]float32{8, 7, 6, 5, 4, 3, 2, 1})

	if got, want := AddM256(a, b).Array(), [8]float32{9, 9, 9, 9, 9, 9, 9, 9}; got != want {
		t.Errorf("add: got %v, want %v", got, want)
	}
	if got, want := SubM256(a, b).Array(), [8]float32{-7, -5, -3, -1, 1, 3, 5, 7}; got != want {
		t.Errorf("sub: got %v, want %v", got, want)
	}
	if got, want := MulM256(a, b).Array(), [8]float32{8, 14, 18, 20, 20, 18, 14, 8}; got != want {
		t.Errorf("mul: got %v, want %v", got, want)
	}
	if got, want := DivM256(a, SetSplatM256(2)).Array(), [8]float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}; got != want {
		t.Errorf("div: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{1, 2, 3, 4})
	e := M256dFromArray([4]float64{0.5, 0.5, 0.5, 0.5})
	if got, want := AddM256d(d, e).Array(), [4]float64{1.5, 2.5, 3.5, 4.5}; got != want {
		t.Errorf("add double: got %v, want %v", got, want)
	}
	if got, want := SqrtM256d(M256dFromArray([4]float64{1, 4, 9, 16})).Array(), [4]float64{1, 2, 3, 4}; got != want {
		t.Errorf("sqrt double: got %v, want %v", got, want)
	}
}

func TestHorizontalM256(t *testing.T) {
	a := M256FromArray([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := M256FromArray([8]float32{10, 20, 30, 40, 50, 60, 70, 80})

	// Pairs stay inside their 128-bit half: a's low pairs, then b's
	// low pairs, then the high halves.
	if got, want := AddHorizontalM256(a, b).Array(), [8]float32{3, 7, 30, 70, 11, 15, 110, 150}; got != want {
		t.Errorf("hadd: got %v, want %v", got, want)
	}
	if got, want := SubHorizontalM256(a, b).Array(), [8]float32{-1, -1, -10, -10, -1, -1, -10, -10}; got != want {
		t.Errorf("hsub: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{1, 2, 3, 4})
	e := M256dFromArray([4]float64{10, 20, 30, 40})
	if got, want := AddHorizontalM256d(d, e).Array(), [4]float64{3, 30, 7, 70}; got != want {
		t.Errorf("hadd double: got %v, want %v", got, want)
	}

	if got, want := AddSubM256(a, b).Array(), [8]float32{-9, 22, -27, 44, -45, 66, -63, 88}; got != want {
		t.Errorf("addsub: got %v, want %v", got, want)
	}
}

func TestBlendM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	b := M256FromArray([8]float32{10, 11, 12, 13, 14, 15, 16, 17})

	if got, want := BlendImmM256(a, b, 0b10100101).Array(), [8]float32{10, 1, 12, 3, 4, 15, 6, 17}; got != want {
		t.Errorf("imm: got %v, want %v", got, want)
	}

	mask := M256FromBits([8]uint32{1 << 31, 0, 1 << 31, 0, 0, 0, 0, 1 << 31})
	if got, want := BlendVaryingM256(a, b, mask).Array(), [8]float32{10, 1, 12, 3, 4, 5, 6, 17}; got != want {
		t.Errorf("varying: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{0, 1, 2, 3})
	e := M256dFromArray([4]float64{10, 11, 12, 13})
	if got, want := BlendImmM256d(d, e, 0b0110).Array(), [4]float64{0, 11, 12, 3}; got != want {
		t.Errorf("imm double: got %v, want %v", got, want)
	}
}

func TestCmpOpMaskM256(t *testing.T) {
	const all = 0xFFFFFFFF
	a := M256FromArray([8]float32{1, 2, 3, nan32, 5, 6, 7, 8})
	b := M256FromArray([8]float32{1, 5, 2, 1, 5, 9, 6, 8})

	tests := []struct {
		name string
		op   CmpOp
		want [8]uint32
	}{
		{"eq_ordered", CmpEqualOrdered, [8]uint32{all, 0, 0, 0, all, 0, 0, all}},
		{"lt_ordered", CmpLessThanOrdered, [8]uint32{0, all, 0, 0, 0, all, 0, 0}},
		{"neq_unordered", CmpNotEqualUnordered, [8]uint32{0, all, all, all, 0, all, all, 0}},
		{"nlt_unordered", CmpNotLessThanUnordered, [8]uint32{all, 0, all, all, all, 0, all, all}},
		{"unord", CmpUnordered, [8]uint32{0, 0, 0, all, 0, 0, 0, 0}},
		{"ord", CmpOrdered, [8]uint32{all, all, all, 0, all, all, all, all}},
		{"false", CmpFalse, [8]uint32{}},
		{"true", CmpTrue, [8]uint32{all, all, all, all, all, all, all, all}},
		{"ge_ordered", CmpGreaterEqualOrdered, [8]uint32{all, 0, all, 0, all, 0, all, all}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CmpOpMaskM256(a, b, tt.op).Bits()
			for i := 0; i < len(tt.want); i++ {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %#x, want %#x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCmpOpMaskM128Forms(t *testing.T) {
	a := M128FromArray([4]float32{1, nan32, 3, 4})
	b := M128FromArray([4]float32{2, 2, 2, 2})

	if got, want := CmpOpMaskM128(a, b, CmpLessThanOrdered).Bits(), ([4]uint32{0xFFFFFFFF, 0, 0, 0}); got != want {
		t.Errorf("m128: got %#x, want %#x", got, want)
	}
	// The scalar form masks lane 0 and carries a's upper lanes.
	s := CmpOpMaskM128S(a, b, CmpLessThanOrdered).Bits()
	if s[0] != 0xFFFFFFFF || s[2] != math.Float32bits(3) {
		t.Errorf("m128 scalar: got %#x", s)
	}

	d := M128dFromArray([2]float64{5, 1})
	e := M128dFromArray([2]float64{5, 2})
	if got, want := CmpOpMaskM128d(d, e, CmpEqualOrdered).Bits(), ([2]uint64{1<<64 - 1, 0}); got != want {
		t.Errorf("m128d: got %#x, want %#x", got, want)
	}

	f := M256dFromArray([4]float64{1, 2, 3, 4})
	g := M256dFromArray([4]float64{4, 3, 2, 1})
	if got, want := CmpOpMaskM256d(f, g, CmpGreaterThanOrdered).Bits(), ([4]uint64{0, 0, 1<<64 - 1, 1<<64 - 1}); got != want {
		t.Errorf("m256d: got %#x, want %#x", got, want)
	}
}

func TestConvertM256(t *testing.T) {
	i := M256iFromI32x8([8]int32{0, 1, -2, 3, -4, 5, -6, 7})
	if got, want := ConvertToM256FromI32M256i(i).Array(), [8]float32{0, 1, -2, 3, -4, 5, -6, 7}; got != want {
		t.Errorf("to float: got %v, want %v", got, want)
	}

	f := M256FromArray([8]float32{0.5, 1.5, 2.5, -0.5, -1.5, -2.5, 10.9, -10.9})
	if got, want := ConvertToI32M256iFromM256(f).I32x8(), [8]int32{0, 2, 2, 0, -2, -2, 11, -11}; got != want {
		t.Errorf("round: got %v, want %v", got, want)
	}
	if got, want := TruncateToI32M256iFromM256(f).I32x8(), [8]int32{0, 1, 2, 0, -1, -2, 10, -10}; got != want {
		t.Errorf("truncate: got %v, want %v", got, want)
	}

	d := ConvertToM256dFromI32M128i(M128iFromI32x4([4]int32{-1, 0, 1, 2}))
	if got, want := d.Array(), [4]float64{-1, 0, 1, 2}; got != want {
		t.Errorf("to double: got %v, want %v", got, want)
	}
	if got, want := ConvertToI32M128iFromM256d(M256dFromArray([4]float64{1.5, 2.5, -1.5, -2.5})).I32x4(), [4]int32{2, 2, -2, -2}; got != want {
		t.Errorf("from double: got %v, want %v", got, want)
	}
	if got, want := ConvertToM128FromM256d(M256dFromArray([4]float64{0.25, 0.5, 0.75, 1})).Array(), [4]float32{0.25, 0.5, 0.75, 1}; got != want {
		t.Errorf("narrow double: got %v, want %v", got, want)
	}
	if got, want := ConvertToM256dFromM128(M128FromArray([4]float32{4, 3, 2, 1})).Array(), [4]float64{4, 3, 2, 1}; got != want {
		t.Errorf("widen float: got %v, want %v", got, want)
	}
}

func TestDotProductM256(t *testing.T) {
	a := M256FromArray([8]float32{1, 2, 3, 4, 1, 1, 1, 1})
	b := M256FromArray([8]float32{10, 20, 30, 40, 2, 2, 2, 2})
	// Each 128-bit half gets its own dot product.
	got := DotProductM256(a, b, 0xF1).Array()
	want := [8]float32{300, 0, 0, 0, 8, 0, 0, 0}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractInsertM256(t *testing.T) {
	a := M256iFromI32x8([8]int32{0, 1, 2, 3, 4, 5, 6, 7})

	if got := ExtractI32FromM256i(a, 5); got != 5 {
		t.Errorf("extract i32: got %d, want 5", got)
	}
	if got := ExtractI64FromM256i(M256iFromI64x4([4]int64{9, 8, 7, 6}), 2); got != 7 {
		t.Errorf("extract i64: got %d, want 7", got)
	}

	f := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	if got, want := ExtractM128FromM256(f, 1).Array(), [4]float32{4, 5, 6, 7}; got != want {
		t.Errorf("extract high half: got %v, want %v", got, want)
	}
	if got, want := ExtractM128FromM256(f, 2).Array(), [4]float32{0, 1, 2, 3}; got != want {
		t.Errorf("extract wrap: got %v, want %v", got, want)
	}

	ins := InsertM128ToM256(f, M128FromArray([4]float32{9, 9, 9, 9}), 0)
	if got, want := ins.Array(), [8]float32{9, 9, 9, 9, 4, 5, 6, 7}; got != want {
		t.Errorf("insert half: got %v, want %v", got, want)
	}
	if got := InsertI16ToM256i(a, -1, 15).I16x16()[15]; got != -1 {
		t.Errorf("insert i16: got %d, want -1", got)
	}
	if got := InsertI64ToM256i(a, 42, 3).I64x4()[3]; got != 42 {
		t.Errorf("insert i64: got %d, want 42", got)
	}
}

func TestDuplicateLanesM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	if got, want := DuplicateOddLanesM256(a).Array(), [8]float32{1, 1, 3, 3, 5, 5, 7, 7}; got != want {
		t.Errorf("odd: got %v, want %v", got, want)
	}
	if got, want := DuplicateEvenLanesM256(a).Array(), [8]float32{0, 0, 2, 2, 4, 4, 6, 6}; got != want {
		t.Errorf("even: got %v, want %v", got, want)
	}
	d := M256dFromArray([4]float64{1, 2, 3, 4})
	if got, want := DuplicateEvenLanesM256d(d).Array(), [4]float64{1, 1, 3, 3}; got != want {
		t.Errorf("even double: got %v, want %v", got, want)
	}
}

func TestLoadMaskedM256(t *testing.T) {
	src := M256FromArray([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
	mask := M256iFromI32x8([8]int32{-1, 0, -1, 0, 0, 0, 0, -1})

	got := LoadMaskedM256(&src, mask).Array()
	want := [8]float32{1, 0, 3, 0, 0, 0, 0, 8}
	if got != want {
		t.Errorf("load: got %v, want %v", got, want)
	}

	var dst M256
	StoreMaskedM256(&dst, mask, src)
	if got := dst.Array(); got != want {
		t.Errorf("store: got %v, want %v", got, want)
	}

	// A positive mask lane leaves the stored lane untouched.
	dst = SetSplatM256(9)
	StoreMaskedM256(&dst, mask, src)
	if got, want := dst.Array(), [8]float32{1, 9, 3, 9, 9, 9, 9, 8}; got != want {
		t.Errorf("store merge: got %v, want %v", got, want)
	}

	d := M128dFromArray([2]float64{5, 6})
	md := M128iFromI64x2([2]int64{0, -1})
	if got, want := LoadMaskedM128d(&d, md).Array(), [2]float64{0, 6}; got != want {
		t.Errorf("double: got %v, want %v", got, want)
	}
}

func TestLoadUnalignedHiLoM256(t *testing.T) {
	hi := [4]float32{4, 5, 6, 7}
	lo := [4]float32{0, 1, 2, 3}
	a := LoadUnalignedHiLoM256(&hi, &lo)
	if got, want := a.Array(), [8]float32{0, 1, 2, 3, 4, 5, 6, 7}; got != want {
		t.Errorf("load: got %v, want %v", got, want)
	}

	var hi2, lo2 [4]float32
	StoreUnalignedHiLoM256(&hi2, &lo2, a)
	if hi2 != hi || lo2 != lo {
		t.Errorf("store: got hi %v lo %v", hi2, lo2)
	}
}

func TestMoveMaskM256(t *testing.T) {
	a := M256FromArray([8]float32{-1, 1, -1, 1, 1, 1, 1, -1})
	if got := MoveMaskM256(a); got != 0b10000101 {
		t.Errorf("float: got %#b", got)
	}
	d := M256dFromArray([4]float64{1, -1, 1, -1})
	if got := MoveMaskM256d(d); got != 0b1010 {
		t.Errorf("double: got %#b", got)
	}
}

func TestPermuteM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})

	// The same four indices apply to both halves.
	if got, want := PermuteM256(a, 3, 2, 1, 0).Array(), [8]float32{3, 2, 1, 0, 7, 6, 5, 4}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	p := PermuteM128(M128FromArray([4]float32{10, 20, 30, 40}), 1, 1, 2, 2)
	if got, want := p.Array(), [4]float32{20, 20, 30, 30}; got != want {
		t.Errorf("m128: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{0, 1, 2, 3})
	if got, want := PermuteM256d(d, 1, 0, 1, 0).Array(), [4]float64{1, 0, 3, 2}; got != want {
		t.Errorf("double: got %v, want %v", got, want)
	}
}

func TestPermuteF128InM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	b := M256FromArray([8]float32{10, 11, 12, 13, 14, 15, 16, 17})

	tests := []struct {
		name string
		imm  int
		want [8]float32
	}{
		{"swap_halves", 0x01, [8]float32{4, 5, 6, 7, 0, 1, 2, 3}},
		{"b_then_a", 0x02, [8]float32{10, 11, 12, 13, 0, 1, 2, 3}},
		{"high_of_both", 0x31, [8]float32{4, 5, 6, 7, 14, 15, 16, 17}},
		{"zero_low", 0x18, [8]float32{0, 0, 0, 0, 4, 5, 6, 7}},
		{"zero_high", 0x80, [8]float32{0, 1, 2, 3, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PermuteF128InM256(a, b, tt.imm).Array()
			for i := 0; i < len(tt.want); i++ {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPermuteVaryingM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	idx := M256iFromI32x8([8]int32{3, 3, 0, 0, 2, 6, 1, 5})
	// Indices stay within the lane's own half; only the low two bits
	// count.
	got := PermuteVaryingM256(a, idx).Array()
	want := [8]float32{3, 3, 0, 0, 6, 6, 5, 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	v := PermuteVaryingM128(M128FromArray([4]float32{10, 20, 30, 40}), M128iFromI32x4([4]int32{3, 2, 1, 0}))
	if got, want := v.Array(), [4]float32{40, 30, 20, 10}; got != want {
		t.Errorf("m128: got %v, want %v", got, want)
	}
}

func TestShuffleM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	b := M256FromArray([8]float32{10, 11, 12, 13, 14, 15, 16, 17})

	got := ShuffleM256(a, b, 0, 1, 2, 3).Array()
	want := [8]float32{0, 1, 12, 13, 4, 5, 16, 17}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{0, 1, 2, 3})
	e := M256dFromArray([4]float64{10, 11, 12, 13})
	if got, want := ShuffleM256d(d, e, 1, 1, 0, 0).Array(), [4]float64{1, 11, 2, 12}; got != want {
		t.Errorf("double: got %v, want %v", got, want)
	}
}

func TestUnpackM256(t *testing.T) {
	a := M256FromArray([8]float32{0, 1, 2, 3, 4, 5, 6, 7})
	b := M256FromArray([8]float32{10, 11, 12, 13, 14, 15, 16, 17})

	if got, want := UnpackLowM256(a, b).Array(), [8]float32{0, 10, 1, 11, 4, 14, 5, 15}; got != want {
		t.Errorf("low: got %v, want %v", got, want)
	}
	if got, want := UnpackHighM256(a, b).Array(), [8]float32{2, 12, 3, 13, 6, 16, 7, 17}; got != want {
		t.Errorf("high: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{0, 1, 2, 3})
	e := M256dFromArray([4]float64{10, 11, 12, 13})
	if got, want := UnpackLowM256d(d, e).Array(), [4]float64{0, 10, 2, 12}; got != want {
		t.Errorf("low double: got %v, want %v", got, want)
	}
	if got, want := UnpackHighM256d(d, e).Array(), [4]float64{1, 11, 3, 13}; got != want {
		t.Errorf("high double: got %v, want %v", got, want)
	}
}

func TestSetM256(t *testing.T) {
	if got, want := SetM256(7, 6, 5, 4, 3, 2, 1, 0).Array(), [8]float32{0, 1, 2, 3, 4, 5, 6, 7}; got != want {
		t.Errorf("set: got %v, want %v", got, want)
	}
	if got, want := SetReversedM256(0, 1, 2, 3, 4, 5, 6, 7).Array(), [8]float32{0, 1, 2, 3, 4, 5, 6, 7}; got != want {
		t.Errorf("set reversed: got %v, want %v", got, want)
	}
	if got, want := SetSplatI32M256i(-2).I32x8(), [8]int32{-2, -2, -2, -2, -2, -2, -2, -2}; got != want {
		t.Errorf("splat i32: got %v, want %v", got, want)
	}
	if got, want := SetM128iM256i(M128iFromI64x2([2]int64{3, 4}), M128iFromI64x2([2]int64{1, 2})).I64x4(), [4]int64{1, 2, 3, 4}; got != want {
		t.Errorf("from halves: got %v, want %v", got, want)
	}

	if got, want := ZeroExtendM128(M128FromArray([4]float32{1, 2, 3, 4})).Array(), [8]float32{1, 2, 3, 4, 0, 0, 0, 0}; got != want {
		t.Errorf("zero extend: got %v, want %v", got, want)
	}
}

func TestCastM256RoundTrip(t *testing.T) {
	a := M256FromBits([8]uint32{1, 2, 3, 4, 5, 6, 7, 0x80000000})
	if got := CastToM256FromM256i(CastToM256iFromM256(a)).Bits(); got != a.Bits() {
		t.Errorf("via m256i: got %#x", got)
	}
	if got := CastToM256FromM256d(CastToM256dFromM256(a)).Bits(); got != a.Bits() {
		t.Errorf("via m256d: got %#x", got)
	}
}

func TestMinMaxM256(t *testing.T) {
	a := M256FromArray([8]float32{1, 8, -3, 0, nan32, 2, 7, -9})
	b := M256FromArray([8]float32{5, 2, -7, 0, 1, nan32, 7, 9})

	gotMin := MinM256(a, b).Array()
	gotMax := MaxM256(a, b).Array()
	// NaN in either operand hands the lane to b.
	if gotMin[0] != 1 || gotMin[2] != -7 || gotMin[4] != 1 || !math.IsNaN(float64(gotMin[5])) {
		t.Errorf("min: got %v", gotMin)
	}
	if gotMax[1] != 8 || gotMax[7] != 9 || gotMax[4] != 1 || !math.IsNaN(float64(gotMax[5])) {
		t.Errorf("max: got %v", gotMax)
	}

	d := M256dFromArray([4]float64{1, -2, 3, -4})
	e := M256dFromArray([4]float64{-1, 2, -3, 4})
	if got, want := MinM256d(d, e).Array(), [4]float64{-1, -2, -3, -4}; got != want {
		t.Errorf("min double: got %v, want %v", got, want)
	}
	if got, want := MaxM256d(d, e).Array(), [4]float64{1, 2, 3, 4}; got != want {
		t.Errorf("max double: got %v, want %v", got, want)
	}
}

func TestRoundingM256(t *testing.T) {
	a := M256FromArray([8]float32{1.5, -1.5, 2.5, -2.5, 0.5, -0.5, 7.1, -7.1})

	if got, want := RoundM256(a, RoundNearest).Array(), [8]float32{2, -2, 2, -2, 0, 0, 7, -7}; got != want {
		t.Errorf("nearest: got %v, want %v", got, want)
	}
	if got, want := CeilM256(a).Array(), [8]float32{2, -1, 3, -2, 1, 0, 8, -7}; got != want {
		t.Errorf("ceil: got %v, want %v", got, want)
	}
	if got, want := FloorM256(a).Array(), [8]float32{1, -2, 2, -3, 0, -1, 7, -8}; got != want {
		t.Errorf("floor: got %v, want %v", got, want)
	}

	d := M256dFromArray([4]float64{1.5, -1.5, 0.5, -0.5})
	if got, want := RoundM256d(d, RoundZero).Array(), [4]float64{1, -1, 0, 0}; got != want {
		t.Errorf("toward zero: got %v, want %v", got, want)
	}
}

func TestBitwiseM256(t *testing.T) {
	a := M256FromBits([8]uint32{0xFF00FF00, 0x0F0F0F0F, 0, 0xFFFFFFFF, 1, 2, 4, 8})
	b := M256FromBits([8]uint32{0x00FF00FF, 0xF0F0F0F0, 0xFFFFFFFF, 0, 1, 2, 4, 8})

	if got := AndM256(a, b).Bits(); got != ([8]uint32{0, 0, 0, 0, 1, 2, 4, 8}) {
		t.Errorf("and: got %#x", got)
	}
	if got := OrM256(a, b).Bits(); got != ([8]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 1, 2, 4, 8}) {
		t.Errorf("or: got %#x", got)
	}
	if got := XorM256(a, b).Bits(); got != ([8]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0, 0, 0, 0}) {
		t.Errorf("xor: got %#x", got)
	}
	if got := AndNotM256(a, b).Bits(); got != ([8]uint32{0x00FF00FF, 0xF0F0F0F0, 0xFFFFFFFF, 0, 0, 0, 0, 0}) {
		t.Errorf("andnot: got %#x", got)
	}
}
