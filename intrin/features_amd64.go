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

//go:build amd64

package intrin

import "golang.org/x/sys/cpu"

func init() {
	// SSE and SSE2 are part of the x86-64 base architecture.
	hostFeatures[FeatureSSE] = true
	hostFeatures[FeatureSSE2] = true
	hostFeatures[FeatureSSE3] = cpu.X86.HasSSE3
	hostFeatures[FeatureSSSE3] = cpu.X86.HasSSSE3
	hostFeatures[FeatureSSE41] = cpu.X86.HasSSE41
	hostFeatures[FeatureSSE42] = cpu.X86.HasSSE42
	hostFeatures[FeatureAVX] = cpu.X86.HasAVX
	hostFeatures[FeatureAVX2] = cpu.X86.HasAVX2
	hostFeatures[FeatureAVX512F] = cpu.X86.HasAVX512F
	hostFeatures[FeatureAVX512BW] = cpu.X86.HasAVX512BW
	hostFeatures[FeatureAVX512DQ] = cpu.X86.HasAVX512DQ
	hostFeatures[FeatureFMA] = cpu.X86.HasFMA
	hostFeatures[FeatureAES] = cpu.X86.HasAES
	hostFeatures[FeaturePCLMULQDQ] = cpu.X86.HasPCLMULQDQ
	hostFeatures[FeatureBMI1] = cpu.X86.HasBMI1
	hostFeatures[FeatureBMI2] = cpu.X86.HasBMI2
	hostFeatures[FeaturePOPCNT] = cpu.X86.HasPOPCNT
	// LZCNT detection: use BMI1 as a proxy (both ship with the same
	// Haswell/Piledriver generation and x/sys/cpu does not expose
	// LZCNT on its own).
	hostFeatures[FeatureLZCNT] = cpu.X86.HasBMI1
	hostFeatures[FeatureADX] = cpu.X86.HasADX
	// The x86 CRC32 instructions arrived with SSE4.2.
	hostFeatures[FeatureCRC32] = cpu.X86.HasSSE42
}
