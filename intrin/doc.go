// Package intrin provides typed, bit-exact models of CPU SIMD and
// bit-manipulation instructions.
//
// Register values are fixed-width value types: M128, M128d and M128i for
// the 128-bit x86 registers, M256/M256d/M256i and M512/M512d/M512i for
// the wider ones, and Int8x16 through Float64x2 for the ARM NEON view of
// a 128-bit register. Each supported instruction is one exported
// function over those types, named for what it does:
//
//	<Operation><LaneType><Register>[S]
//
// AddM128 adds the float32 lanes of two 128-bit registers, AddI16M128i
// adds int16 lanes of two 128-bit integer registers, and a trailing S
// marks the scalar forms that touch only lane 0 and carry every other
// lane over from the first operand. Comparisons that fill each lane
// with all ones or all zeroes carry Mask in their name; AVX-512 style
// comparisons return bitmasks (Mask8 through Mask64) instead.
//
// Instructions that the hardware encodes with an immediate control byte
// take ordinary arguments here. Multi-field controls (shuffles,
// permutes, blends, MPSADBW) take one argument per field; each field is
// masked to its legal bit width before packing, so out-of-range values
// wrap exactly the way the hardware encoding would, and never panic.
// Single-vocabulary controls are typed constants carrying the real
// hardware encodings: see CmpOp, CmpIntOp, RoundMode and SearchCtl.
//
// Every function is pure Go, total, and runs on any GOOS/GOARCH with
// results bit-identical to the instruction it models, so the package
// needs no CPU feature checks of its own. HostHas and HostFeatures
// report what the running CPU supports, for callers pairing these
// models with native kernels that do need the real instructions.
package intrin
