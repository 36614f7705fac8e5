package intrin

import (
	"math"
	"testing"
)

// FuzzM128Bits checks that float lanes preserve arbitrary bit patterns,
// including NaN payloads, signed zeros and denormals.
func FuzzM128Bits(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0))
	f.Add(uint32(0x3F800000), uint32(0xBF800000), uint32(0x7F800000), uint32(0xFF800000))
	f.Add(uint32(0x7FC00123), uint32(0xFFC00001), uint32(0x80000000), uint32(0x00000001))
	f.Add(math.Float32bits(float32(math.Pi)), uint32(0x007FFFFF), uint32(0x7F7FFFFF), uint32(0xFFFFFFFF))

	f.Fuzz(func(t *testing.T, b0, b1, b2, b3 uint32) {
		bits := [4]uint32{b0, b1, b2, b3}
		if got := M128FromBits(bits).Bits(); got != bits {
			t.Errorf("M128 bits: got %08x, want %08x", got, bits)
		}
	})
}

func FuzzM128dBits(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0x7FF8000000000ABC), uint64(0x8000000000000000))
	f.Add(math.Float64bits(math.Pi), uint64(0xFFFFFFFFFFFFFFFF))

	f.Fuzz(func(t *testing.T, b0, b1 uint64) {
		bits := [2]uint64{b0, b1}
		if got := M128dFromBits(bits).Bits(); got != bits {
			t.Errorf("M128d bits: got %016x, want %016x", got, bits)
		}
	})
}

// FuzzM128iViews checks that the lane views of an integer register agree:
// reading one view and rebuilding through another must not disturb the bytes.
func FuzzM128iViews(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0x0123456789ABCDEF), uint64(0xFEDCBA9876543210))
	f.Add(uint64(0x8080808080808080), uint64(0x7F7F7F7F7F7F7F7F))

	f.Fuzz(func(t *testing.T, lo, hi uint64) {
		m := M128iFromU64x2([2]uint64{lo, hi})
		if got := M128iFromU8x16(m.U8x16()).U64x2(); got != [2]uint64{lo, hi} {
			t.Errorf("u8 view: got %016x, want [%016x %016x]", got, lo, hi)
		}
		if got := M128iFromI16x8(m.I16x8()).U64x2(); got != [2]uint64{lo, hi} {
			t.Errorf("i16 view: got %016x, want [%016x %016x]", got, lo, hi)
		}
		if got := M128iFromU32x4(m.U32x4()).U64x2(); got != [2]uint64{lo, hi} {
			t.Errorf("u32 view: got %016x, want [%016x %016x]", got, lo, hi)
		}
	})
}
