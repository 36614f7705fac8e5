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

// AbsFloat32x4 clears the sign bit of each lane, NaN included.
// Models vabsq_f32 (FABS).
func AbsFloat32x4(x Float32x4) Float32x4 {
	var r Float32x4
	for i, f := range x.v {
		r.v[i] = math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
	}
	return r
}

// AbsFloat64x2 clears the sign bit of each lane, NaN included.
// Models vabsq_f64 (FABS).
func AbsFloat64x2(x Float64x2) Float64x2 {
	var r Float64x2
	for i, f := range x.v {
		r.v[i] = math.Abs(f)
	}
	return r
}

// AbsInt8x16 takes the lanewise absolute value. The minimum value
// stays unchanged.
// Models vabsq_s8 (ABS).
func AbsInt8x16(x Int8x16) Int8x16 {
	r := x
	for i, l := range r.v {
		if l < 0 {
			r.v[i] = -l
		}
	}
	return r
}

// AbsInt16x8 takes the lanewise absolute value. The minimum value
// stays unchanged.
// Models vabsq_s16 (ABS).
func AbsInt16x8(x Int16x8) Int16x8 {
	r := x
	for i, l := range r.v {
		if l < 0 {
			r.v[i] = -l
		}
	}
	return r
}

// AbsInt32x4 takes the lanewise absolute value. The minimum value
// stays unchanged.
// Models vabsq_s32 (ABS).
func AbsInt32x4(x Int32x4) Int32x4 {
	r := x
	for i, l := range r.v {
		if l < 0 {
			r.v[i] = -l
		}
	}
	return r
}

// AbsInt64x2 takes the lanewise absolute value. The minimum value
// stays unchanged.
// Models vabsq_s64 (ABS).
func AbsInt64x2(x Int64x2) Int64x2 {
	r := x
	for i, l := range r.v {
		if l < 0 {
			r.v[i] = -l
		}
	}
	return r
}

// AddFloat32x4 performs lanewise addition.
// Models vaddq_f32 (FADD).
func AddFloat32x4(x, y Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddFloat64x2 performs lanewise addition.
// Models vaddq_f64 (FADD).
func AddFloat64x2(x, y Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddInt8x16 performs lanewise wrapping addition.
// Models vaddq_s8 (ADD).
func AddInt8x16(x, y Int8x16) Int8x16 {
	var r Int8x16
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddInt16x8 performs lanewise wrapping addition.
// Models vaddq_s16 (ADD).
func AddInt16x8(x, y Int16x8) Int16x8 {
	var r Int16x8
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddInt32x4 performs lanewise wrapping addition.
// Models vaddq_s32 (ADD).
func AddInt32x4(x, y Int32x4) Int32x4 {
	var r Int32x4
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddInt64x2 performs lanewise wrapping addition.
// Models vaddq_s64 (ADD).
func AddInt64x2(x, y Int64x2) Int64x2 {
	var r Int64x2
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddUint8x16 performs lanewise wrapping addition.
// Models vaddq_u8 (ADD).
func AddUint8x16(x, y Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddUint16x8 performs lanewise wrapping addition.
// Models vaddq_u16 (ADD).
func AddUint16x8(x, y Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddUint32x4 performs lanewise wrapping addition.
// Models vaddq_u32 (ADD).
func AddUint32x4(x, y Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// AddUint64x2 performs lanewise wrapping addition.
// Models vaddq_u64 (ADD).
func AddUint64x2(x, y Uint64x2) Uint64x2 {
	var r Uint64x2
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// HorizontalAddFloat32x4 sums all lanes, pairing the low and high
// halves first.
// Models vaddvq_f32 (FADDP).
func HorizontalAddFloat32x4(x Float32x4) float32 {
	return (x.v[0] + x.v[1]) + (x.v[2] + x.v[3])
}

// HorizontalAddFloat64x2 sums both lanes.
// Models vaddvq_f64 (FADDP).
func HorizontalAddFloat64x2(x Float64x2) float64 {
	return x.v[0] + x.v[1]
}

// HorizontalAddInt8x16 sums all lanes, wrapping at int8.
// Models vaddvq_s8 (ADDV).
func HorizontalAddInt8x16(x Int8x16) int8 {
	var s int8
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddInt16x8 sums all lanes, wrapping at int16.
// Models vaddvq_s16 (ADDV).
func HorizontalAddInt16x8(x Int16x8) int16 {
	var s int16
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddInt32x4 sums all lanes, wrapping at int32.
// Models vaddvq_s32 (ADDV).
func HorizontalAddInt32x4(x Int32x4) int32 {
	var s int32
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddInt64x2 sums both lanes, wrapping at int64.
// Models vaddvq_s64 (ADDP).
func HorizontalAddInt64x2(x Int64x2) int64 {
	return x.v[0] + x.v[1]
}

// HorizontalAddUint8x16 sums all lanes, wrapping at uint8.
// Models vaddvq_u8 (ADDV).
func HorizontalAddUint8x16(x Uint8x16) uint8 {
	var s uint8
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddUint16x8 sums all lanes, wrapping at uint16.
// Models vaddvq_u16 (ADDV).
func HorizontalAddUint16x8(x Uint16x8) uint16 {
	var s uint16
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddUint32x4 sums all lanes, wrapping at uint32.
// Models vaddvq_u32 (ADDV).
func HorizontalAddUint32x4(x Uint32x4) uint32 {
	var s uint32
	for _, l := range x.v {
		s += l
	}
	return s
}

// HorizontalAddUint64x2 sums both lanes, wrapping at uint64.
// Models vaddvq_u64 (ADDP).
func HorizontalAddUint64x2(x Uint64x2) uint64 {
	return x.v[0] + x.v[1]
}
