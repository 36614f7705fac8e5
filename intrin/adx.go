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

import "math/bits"

// AddCarryU32 adds a, b and the incoming carry, storing the sum in
// out and returning the outgoing carry. Any nonzero cIn counts as a
// set carry.
// Models _addcarryx_u32 (ADCX).
func AddCarryU32(cIn uint8, a, b uint32, out *uint32) uint8 {
	var carry uint32
	if cIn != 0 {
		carry = 1
	}
	sum, carryOut := bits.Add32(a, b, carry)
	*out = sum
	return uint8(carryOut)
}

// AddCarryU64 adds a, b and the incoming carry, storing the sum in
// out and returning the outgoing carry. Any nonzero cIn counts as a
// set carry.
// Models _addcarryx_u64 (ADCX).
func AddCarryU64(cIn uint8, a, b uint64, out *uint64) uint8 {
	var carry uint64
	if cIn != 0 {
		carry = 1
	}
	sum, carryOut := bits.Add64(a, b, carry)
	*out = sum
	return uint8(carryOut)
}
