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

// fmaF32 computes x*y + z with a single rounding. The float64
// product of two float32 values is exact, so only the addition can
// err: its error term is recovered with a TwoSum and the sum nudged
// to an odd mantissa when inexact, after which the narrowing
// conversion rounds as if from the exact value.
func fmaF32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return float32(s)
	}
	p1 := s - float64(z)
	z1 := s - p1
	t := (p - p1) + (float64(z) - z1)
	if t != 0 && math.Float64bits(s)&1 == 0 {
		if t > 0 {
			s = math.Nextafter(s, math.Inf(1))
		} else {
			s = math.Nextafter(s, math.Inf(-1))
		}
	}
	return float32(s)
}

// FusedMulAddM128 computes (a * b) + c lanewise with a single
// rounding.
// Models _mm_fmadd_ps (VFMADD).
func FusedMulAddM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulAddM128d computes (a * b) + c lanewise with a single
// rounding.
// Models _mm_fmadd_pd (VFMADD).
func FusedMulAddM128d(a, b, c M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulAddM128S computes (a * b) + c in the lowest lanes with a
// single rounding, keeping the other lanes of a.
// Models _mm_fmadd_ss (VFMADD).
func FusedMulAddM128S(a, b, c M128) M128 {
	r := a
	r.v[0] = fmaF32(a.v[0], b.v[0], c.v[0])
	return r
}

// FusedMulAddM128dS computes (a * b) + c in the lowest lanes with a
// single rounding, keeping the other lane of a.
// Models _mm_fmadd_sd (VFMADD).
func FusedMulAddM128dS(a, b, c M128d) M128d {
	r := a
	r.v[0] = math.FMA(a.v[0], b.v[0], c.v[0])
	return r
}

// FusedMulAddM256 computes (a * b) + c lanewise with a single
// rounding.
// Models _mm256_fmadd_ps (VFMADD).
func FusedMulAddM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulAddM256d computes (a * b) + c lanewise with a single
// rounding.
// Models _mm256_fmadd_pd (VFMADD).
func FusedMulAddM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulSubM128 computes (a * b) - c lanewise with a single
// rounding.
// Models _mm_fmsub_ps (VFMSUB).
func FusedMulSubM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulSubM128d computes (a * b) - c lanewise with a single
// rounding.
// Models _mm_fmsub_pd (VFMSUB).
func FusedMulSubM128d(a, b, c M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulSubM128S computes (a * b) - c in the lowest lanes with a
// single rounding, keeping the other lanes of a.
// Models _mm_fmsub_ss (VFMSUB).
func FusedMulSubM128S(a, b, c M128) M128 {
	r := a
	r.v[0] = fmaF32(a.v[0], b.v[0], -c.v[0])
	return r
}

// FusedMulSubM128dS computes (a * b) - c in the lowest lanes with a
// single rounding, keeping the other lane of a.
// Models _mm_fmsub_sd (VFMSUB).
func FusedMulSubM128dS(a, b, c M128d) M128d {
	r := a
	r.v[0] = math.FMA(a.v[0], b.v[0], -c.v[0])
	return r
}

// FusedMulSubM256 computes (a * b) - c lanewise with a single
// rounding.
// Models _mm256_fmsub_ps (VFMSUB).
func FusedMulSubM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulSubM256d computes (a * b) - c lanewise with a single
// rounding.
// Models _mm256_fmsub_pd (VFMSUB).
func FusedMulSubM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegAddM128 computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm_fnmadd_ps (VFNMADD).
func FusedMulNegAddM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegAddM128d computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm_fnmadd_pd (VFNMADD).
func FusedMulNegAddM128d(a, b, c M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegAddM128S computes -(a * b) + c in the lowest lanes with
// a single rounding, keeping the other lanes of a.
// Models _mm_fnmadd_ss (VFNMADD).
func FusedMulNegAddM128S(a, b, c M128) M128 {
	r := a
	r.v[0] = fmaF32(-a.v[0], b.v[0], c.v[0])
	return r
}

// FusedMulNegAddM128dS computes -(a * b) + c in the lowest lanes
// with a single rounding, keeping the other lane of a.
// Models _mm_fnmadd_sd (VFNMADD).
func FusedMulNegAddM128dS(a, b, c M128d) M128d {
	r := a
	r.v[0] = math.FMA(-a.v[0], b.v[0], c.v[0])
	return r
}

// FusedMulNegAddM256 computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm256_fnmadd_ps (VFNMADD).
func FusedMulNegAddM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegAddM256d computes -(a * b) + c lanewise with a single
// rounding.
// Models _mm256_fnmadd_pd (VFNMADD).
func FusedMulNegAddM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], c.v[i])
	}
	return r
}

// FusedMulNegSubM128 computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm_fnmsub_ps (VFNMSUB).
func FusedMulNegSubM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegSubM128d computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm_fnmsub_pd (VFNMSUB).
func FusedMulNegSubM128d(a, b, c M128d) M128d {
	var r M128d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegSubM128S computes -(a * b) - c in the lowest lanes with
// a single rounding, keeping the other lanes of a.
// Models _mm_fnmsub_ss (VFNMSUB).
func FusedMulNegSubM128S(a, b, c M128) M128 {
	r := a
	r.v[0] = fmaF32(-a.v[0], b.v[0], -c.v[0])
	return r
}

// FusedMulNegSubM128dS computes -(a * b) - c in the lowest lanes
// with a single rounding, keeping the other lane of a.
// Models _mm_fnmsub_sd (VFNMSUB).
func FusedMulNegSubM128dS(a, b, c M128d) M128d {
	r := a
	r.v[0] = math.FMA(-a.v[0], b.v[0], -c.v[0])
	return r
}

// FusedMulNegSubM256 computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm256_fnmsub_ps (VFNMSUB).
func FusedMulNegSubM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		r.v[i] = fmaF32(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulNegSubM256d computes -(a * b) - c lanewise with a single
// rounding.
// Models _mm256_fnmsub_pd (VFNMSUB).
func FusedMulNegSubM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		r.v[i] = math.FMA(-a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// FusedMulAddSubM128 computes (a * b) - c in the even lanes and
// (a * b) + c in the odd lanes, each with a single rounding.
// Models _mm_fmaddsub_ps (VFMADDSUB).
func FusedMulAddSubM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		}
	}
	return r
}

// FusedMulAddSubM128d computes (a * b) - c in the low lane and
// (a * b) + c in the high lane, each with a single rounding.
// Models _mm_fmaddsub_pd (VFMADDSUB).
func FusedMulAddSubM128d(a, b, c M128d) M128d {
	var r M128d
	r.v[0] = math.FMA(a.v[0], b.v[0], -c.v[0])
	r.v[1] = math.FMA(a.v[1], b.v[1], c.v[1])
	return r
}

// FusedMulAddSubM256 computes (a * b) - c in the even lanes and
// (a * b) + c in the odd lanes, each with a single rounding.
// Models _mm256_fmaddsub_ps (VFMADDSUB).
func FusedMulAddSubM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		}
	}
	return r
}

// FusedMulAddSubM256d computes (a * b) - c in the even lanes and
// (a * b) + c in the odd lanes, each with a single rounding.
// Models _mm256_fmaddsub_pd (VFMADDSUB).
func FusedMulAddSubM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
		} else {
			r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
		}
	}
	return r
}

// FusedMulSubAddM128 computes (a * b) + c in the even lanes and
// (a * b) - c in the odd lanes, each with a single rounding.
// Models _mm_fmsubadd_ps (VFMSUBADD).
func FusedMulSubAddM128(a, b, c M128) M128 {
	var r M128
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		}
	}
	return r
}

// FusedMulSubAddM128d computes (a * b) + c in the low lane and
// (a * b) - c in the high lane, each with a single rounding.
// Models _mm_fmsubadd_pd (VFMSUBADD).
func FusedMulSubAddM128d(a, b, c M128d) M128d {
	var r M128d
	r.v[0] = math.FMA(a.v[0], b.v[0], c.v[0])
	r.v[1] = math.FMA(a.v[1], b.v[1], -c.v[1])
	return r
}

// FusedMulSubAddM256 computes (a * b) + c in the even lanes and
// (a * b) - c in the odd lanes, each with a single rounding.
// Models _mm256_fmsubadd_ps (VFMSUBADD).
func FusedMulSubAddM256(a, b, c M256) M256 {
	var r M256
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = fmaF32(a.v[i], b.v[i], c.v[i])
		} else {
			r.v[i] = fmaF32(a.v[i], b.v[i], -c.v[i])
		}
	}
	return r
}

// FusedMulSubAddM256d computes (a * b) + c in the even lanes and
// (a * b) - c in the odd lanes, each with a single rounding.
// Models _mm256_fmsubadd_pd (VFMSUBADD).
func FusedMulSubAddM256d(a, b, c M256d) M256d {
	var r M256d
	for i := range r.v {
		if i&1 == 0 {
			r.v[i] = math.FMA(a.v[i], b.v[i], c.v[i])
		} else {
			r.v[i] = math.FMA(a.v[i], b.v[i], -c.v[i])
		}
	}
	return r
}
