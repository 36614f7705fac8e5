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

// Float to integer conversion helpers shared by the convert
// operations. The CVT family rounds to nearest with ties to even, the
// CVTT family truncates, and both return the integer indefinite value
// (the minimum integer) for NaN inputs and results outside the
// destination range.

// two63 is 2^63, the first float64 value past the int64 range.
// math.MaxInt64 itself is not representable as a float64.
const two63 = 9223372036854775808.0

func cvtRoundF64ToI32(x float64) int32 {
	r := math.RoundToEven(x)
	if math.IsNaN(r) || r < math.MinInt32 || r > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(r)
}

func cvtTruncF64ToI32(x float64) int32 {
	r := math.Trunc(x)
	if math.IsNaN(r) || r < math.MinInt32 || r > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(r)
}

func cvtRoundF64ToI64(x float64) int64 {
	r := math.RoundToEven(x)
	if math.IsNaN(r) || r < math.MinInt64 || r >= two63 {
		return math.MinInt64
	}
	return int64(r)
}

func cvtTruncF64ToI64(x float64) int64 {
	r := math.Trunc(x)
	if math.IsNaN(r) || r < math.MinInt64 || r >= two63 {
		return math.MinInt64
	}
	return int64(r)
}
