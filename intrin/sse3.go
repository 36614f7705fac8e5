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

// AddSubM128d subtracts in lane 0 and adds in lane 1.
// [10, 20] with [1, 2] -> [9, 22]
// Models _mm_addsub_pd (ADDSUBPD).
func AddSubM128d(a, b M128d) M128d {
	return M128d{v: [2]float64{a.v[0] - b.v[0], a.v[1] + b.v[1]}}
}

// AddSubM128 subtracts in the even lanes and adds in the odd lanes.
// [10, 20, 30, 40] with [1, 2, 3, 4] -> [9, 22, 27, 44]
// Models _mm_addsub_ps (ADDSUBPS).
func AddSubM128(a, b M128) M128 {
	return M128{v: [4]float32{
		a.v[0] - b.v[0],
		a.v[1] + b.v[1],
		a.v[2] - b.v[2],
		a.v[3] + b.v[3],
	}}
}

// AddHorizontalM128d sums the lanes of a into lane 0 and the lanes of
// b into lane 1.
// Models _mm_hadd_pd (HADDPD).
func AddHorizontalM128d(a, b M128d) M128d {
	return M128d{v: [2]float64{a.v[0] + a.v[1], b.v[0] + b.v[1]}}
}

// AddHorizontalM128 sums adjacent lane pairs, a pairs low and b pairs
// high.
// [1, 2, 3, 4] with [10, 20, 30, 40] -> [3, 7, 30, 70]
// Models _mm_hadd_ps (HADDPS).
func AddHorizontalM128(a, b M128) M128 {
	return M128{v: [4]float32{
		a.v[0] + a.v[1],
		a.v[2] + a.v[3],
		b.v[0] + b.v[1],
		b.v[2] + b.v[3],
	}}
}

// SubHorizontalM128d subtracts within the lanes of a into lane 0 and
// within b into lane 1.
// Models _mm_hsub_pd (HSUBPD).
func SubHorizontalM128d(a, b M128d) M128d {
	return M128d{v: [2]float64{a.v[0] - a.v[1], b.v[0] - b.v[1]}}
}

// SubHorizontalM128 subtracts within adjacent lane pairs, a pairs low
// and b pairs high.
// Models _mm_hsub_ps (HSUBPS).
func SubHorizontalM128(a, b M128) M128 {
	return M128{v: [4]float32{
		a.v[0] - a.v[1],
		a.v[2] - a.v[3],
		b.v[0] - b.v[1],
		b.v[2] - b.v[3],
	}}
}

// DuplicateLowLaneM128dS copies the low lane into both lanes.
// Models _mm_movedup_pd (MOVDDUP).
func DuplicateLowLaneM128dS(a M128d) M128d {
	return M128d{v: [2]float64{a.v[0], a.v[0]}}
}

// DuplicateOddLanesM128 copies each odd lane into the even lane below
// it.
// [1, 2, 3, 4] -> [2, 2, 4, 4]
// Models _mm_movehdup_ps (MOVSHDUP).
func DuplicateOddLanesM128(a M128) M128 {
	return M128{v: [4]float32{a.v[1], a.v[1], a.v[3], a.v[3]}}
}

// DuplicateEvenLanesM128 copies each even lane into the odd lane above
// it.
// [1, 2, 3, 4] -> [1, 1, 3, 3]
// Models _mm_moveldup_ps (MOVSLDUP).
func DuplicateEvenLanesM128(a M128) M128 {
	return M128{v: [4]float32{a.v[0], a.v[0], a.v[2], a.v[2]}}
}
