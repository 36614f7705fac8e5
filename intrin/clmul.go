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

// MulI64CarrylessM128i multiplies one int64 lane of a by one of b
// without carries, XORing partial products instead of adding them.
// Bit 0 of imm picks the a lane and bit 4 picks the b lane; the full
// 128-bit product fills the result.
// Models _mm_clmulepi64_si128 (PCLMULQDQ).
func MulI64CarrylessM128i(a, b M128i, imm int) M128i {
	x := getU64(a.v[:], imm&0b1)
	y := getU64(b.v[:], imm>>4&0b1)
	var lo, hi uint64
	for i := uint(0); i < 64; i++ {
		if y>>i&1 != 0 {
			lo ^= x << i
			if i != 0 {
				hi ^= x >> (64 - i)
			}
		}
	}
	var r M128i
	putU64(r.v[:], 0, lo)
	putU64(r.v[:], 1, hi)
	return r
}
