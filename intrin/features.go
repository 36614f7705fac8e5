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

// Feature identifies one of the instruction sets modeled by this
// package.
type Feature int

const (
	// FeatureSSE covers the m128 float operations.
	FeatureSSE Feature = iota

	// FeatureSSE2 covers the m128i integer and m128d double operations.
	FeatureSSE2

	// FeatureSSE3 covers the addsub and horizontal float operations.
	FeatureSSE3

	// FeatureSSSE3 covers byte shuffles, sign application and
	// horizontal integer adds.
	FeatureSSSE3

	// FeatureSSE41 covers blends, 32-bit extract/insert and packed
	// min/max extensions.
	FeatureSSE41

	// FeatureSSE42 covers the string search operations and 64-bit
	// compares.
	FeatureSSE42

	// FeatureAVX covers the 256-bit float operations.
	FeatureAVX

	// FeatureAVX2 covers the 256-bit integer operations.
	FeatureAVX2

	// FeatureAVX512F covers the 512-bit foundation operations.
	FeatureAVX512F

	// FeatureAVX512BW covers the 512-bit byte and word operations.
	FeatureAVX512BW

	// FeatureAVX512DQ covers the 512-bit doubleword and quadword
	// extensions such as the 64-bit float converts.
	FeatureAVX512DQ

	// FeatureFMA covers the fused multiply-add families.
	FeatureFMA

	// FeatureAES covers the AES round operations.
	FeatureAES

	// FeaturePCLMULQDQ covers the carryless multiply. On ARM the
	// equivalent is PMULL.
	FeaturePCLMULQDQ

	// FeatureBMI1 covers the first bit manipulation group.
	FeatureBMI1

	// FeatureBMI2 covers the second bit manipulation group.
	FeatureBMI2

	// FeaturePOPCNT covers the population count operations.
	FeaturePOPCNT

	// FeatureLZCNT covers the leading zero count operations.
	FeatureLZCNT

	// FeatureADX covers the carry chain additions.
	FeatureADX

	// FeatureCRC32 covers the CRC32C accumulation operations.
	FeatureCRC32

	// FeatureNEON covers the ARM 128-bit vector operations.
	FeatureNEON

	featureCount
)

// String returns the conventional lowercase name of the feature.
func (f Feature) String() string {
	switch f {
	case FeatureSSE:
		return "sse"
	case FeatureSSE2:
		return "sse2"
	case FeatureSSE3:
		return "sse3"
	case FeatureSSSE3:
		return "ssse3"
	case FeatureSSE41:
		return "sse4.1"
	case FeatureSSE42:
		return "sse4.2"
	case FeatureAVX:
		return "avx"
	case FeatureAVX2:
		return "avx2"
	case FeatureAVX512F:
		return "avx512f"
	case FeatureAVX512BW:
		return "avx512bw"
	case FeatureAVX512DQ:
		return "avx512dq"
	case FeatureFMA:
		return "fma"
	case FeatureAES:
		return "aes"
	case FeaturePCLMULQDQ:
		return "pclmulqdq"
	case FeatureBMI1:
		return "bmi1"
	case FeatureBMI2:
		return "bmi2"
	case FeaturePOPCNT:
		return "popcnt"
	case FeatureLZCNT:
		return "lzcnt"
	case FeatureADX:
		return "adx"
	case FeatureCRC32:
		return "crc32"
	case FeatureNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// hostFeatures is the set detected at startup.
// Set by init() in features_*.go files; absent architectures report
// nothing.
var hostFeatures [featureCount]bool

// HostHas reports whether the running CPU implements f natively.
// The operations in this package never consult it; every function
// computes its result on any host. The report serves callers that
// pair these models with native kernels.
func HostHas(f Feature) bool {
	return f >= 0 && f < featureCount && hostFeatures[f]
}

// HostFeatures returns the natively implemented features in
// declaration order.
func HostFeatures() []Feature {
	var fs []Feature
	for f := Feature(0); f < featureCount; f++ {
		if hostFeatures[f] {
			fs = append(fs, f)
		}
	}
	return fs
}
