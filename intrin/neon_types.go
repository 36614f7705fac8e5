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

import "fmt"

// The NEON view of a 128-bit register carries its lane type in the
// type, unlike the x86 M128i. Each type below models one ARM vector
// register interpretation; zero values are all-zero registers.

// Int8x16 is a 128-bit NEON register of sixteen int8 lanes.
type Int8x16 struct {
	v [16]int8
}

// Int8x16FromArray builds a register from lanes in index order.
func Int8x16FromArray(a [16]int8) Int8x16 {
	return Int8x16{v: a}
}

// Array returns the lanes in index order.
func (m Int8x16) Array() [16]int8 {
	return m.v
}

// String implements fmt.Stringer.
func (m Int8x16) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Int8x16) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Int8x16", m.v[:])
}

// Int16x8 is a 128-bit NEON register of eight int16 lanes.
type Int16x8 struct {
	v [8]int16
}

// Int16x8FromArray builds a register from lanes in index order.
func Int16x8FromArray(a [8]int16) Int16x8 {
	return Int16x8{v: a}
}

// Array returns the lanes in index order.
func (m Int16x8) Array() [8]int16 {
	return m.v
}

// String implements fmt.Stringer.
func (m Int16x8) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Int16x8) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Int16x8", m.v[:])
}

// Int32x4 is a 128-bit NEON register of four int32 lanes.
type Int32x4 struct {
	v [4]int32
}

// Int32x4FromArray builds a register from lanes in index order.
func Int32x4FromArray(a [4]int32) Int32x4 {
	return Int32x4{v: a}
}

// Array returns the lanes in index order.
func (m Int32x4) Array() [4]int32 {
	return m.v
}

// String implements fmt.Stringer.
func (m Int32x4) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Int32x4) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Int32x4", m.v[:])
}

// Int64x2 is a 128-bit NEON register of two int64 lanes.
type Int64x2 struct {
	v [2]int64
}

// Int64x2FromArray builds a register from lanes in index order.
func Int64x2FromArray(a [2]int64) Int64x2 {
	return Int64x2{v: a}
}

// Array returns the lanes in index order.
func (m Int64x2) Array() [2]int64 {
	return m.v
}

// String implements fmt.Stringer.
func (m Int64x2) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Int64x2) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Int64x2", m.v[:])
}

// Uint8x16 is a 128-bit NEON register of sixteen uint8 lanes.
type Uint8x16 struct {
	v [16]uint8
}

// Uint8x16FromArray builds a register from lanes in index order.
func Uint8x16FromArray(a [16]uint8) Uint8x16 {
	return Uint8x16{v: a}
}

// Array returns the lanes in index order.
func (m Uint8x16) Array() [16]uint8 {
	return m.v
}

// String implements fmt.Stringer.
func (m Uint8x16) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Uint8x16) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Uint8x16", m.v[:])
}

// Uint16x8 is a 128-bit NEON register of eight uint16 lanes.
type Uint16x8 struct {
	v [8]uint16
}

// Uint16x8FromArray builds a register from lanes in index order.
func Uint16x8FromArray(a [8]uint16) Uint16x8 {
	return Uint16x8{v: a}
}

// Array returns the lanes in index order.
func (m Uint16x8) Array() [8]uint16 {
	return m.v
}

// String implements fmt.Stringer.
func (m Uint16x8) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Uint16x8) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Uint16x8", m.v[:])
}

// Uint32x4 is a 128-bit NEON register of four uint32 lanes.
type Uint32x4 struct {
	v [4]uint32
}

// Uint32x4FromArray builds a register from lanes in index order.
func Uint32x4FromArray(a [4]uint32) Uint32x4 {
	return Uint32x4{v: a}
}

// Array returns the lanes in index order.
func (m Uint32x4) Array() [4]uint32 {
	return m.v
}

// String implements fmt.Stringer.
func (m Uint32x4) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Uint32x4) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Uint32x4", m.v[:])
}

// Uint64x2 is a 128-bit NEON register of two uint64 lanes.
type Uint64x2 struct {
	v [2]uint64
}

// Uint64x2FromArray builds a register from lanes in index order.
func Uint64x2FromArray(a [2]uint64) Uint64x2 {
	return Uint64x2{v: a}
}

// Array returns the lanes in index order.
func (m Uint64x2) Array() [2]uint64 {
	return m.v
}

// String implements fmt.Stringer.
func (m Uint64x2) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Uint64x2) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Uint64x2", m.v[:])
}

// Float32x4 is a 128-bit NEON register of four float32 lanes.
type Float32x4 struct {
	v [4]float32
}

// Float32x4FromArray builds a register from lanes in index order.
func Float32x4FromArray(a [4]float32) Float32x4 {
	return Float32x4{v: a}
}

// Array returns the lanes in index order.
func (m Float32x4) Array() [4]float32 {
	return m.v
}

// String implements fmt.Stringer.
func (m Float32x4) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Float32x4) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Float32x4", m.v[:])
}

// Float64x2 is a 128-bit NEON register of two float64 lanes.
type Float64x2 struct {
	v [2]float64
}

// Float64x2FromArray builds a register from lanes in index order.
func Float64x2FromArray(a [2]float64) Float64x2 {
	return Float64x2{v: a}
}

// Array returns the lanes in index order.
func (m Float64x2) Array() [2]float64 {
	return m.v
}

// String implements fmt.Stringer.
func (m Float64x2) String() string {
	return fmt.Sprint(m)
}

// Format implements fmt.Formatter, applying the verb to each lane.
func (m Float64x2) Format(f fmt.State, verb rune) {
	formatLanes(f, verb, "Float64x2", m.v[:])
}
