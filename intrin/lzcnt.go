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

// LeadingZeroCountU32 counts the leading zero bits of a. Zero input
// gives 32.
// Models _lzcnt_u32 (LZCNT).
func LeadingZeroCountU32(a uint32) uint32 {
	return uint32(bits.LeadingZeros32(a))
}

// LeadingZeroCountU64 counts the leading zero bits of a. Zero input
// gives 64.
// Models _lzcnt_u64 (LZCNT).
func LeadingZeroCountU64(a uint64) uint64 {
	return uint64(bits.LeadingZeros64(a))
}
