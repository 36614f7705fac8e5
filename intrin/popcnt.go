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

// PopulationCountI32 counts the set bits of a.
// Models _popcnt32 (POPCNT).
func PopulationCountI32(a int32) int32 {
	return int32(bits.OnesCount32(uint32(a)))
}

// PopulationCountI64 counts the set bits of a.
// Models _popcnt64 (POPCNT).
func PopulationCountI64(a int64) int32 {
	return int32(bits.OnesCount64(uint64(a)))
}
