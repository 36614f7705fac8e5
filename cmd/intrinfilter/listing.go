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

package main

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escapes for the -color listing.
const (
	ansiBlue  = "\033[94m"
	ansiBeige = "\033[36m"
	ansiGreen = "\033[92m"
	ansiReset = "\x1b[0m"
)

// signature renders "_mm_add_epi32(__m128i a, __m128i b)". With color
// the parameter types print beige inside a blue signature.
func signature(x *Intrinsic, color bool) string {
	var sb strings.Builder
	if color {
		sb.WriteString(ansiBlue)
	}
	sb.WriteString(x.Name)
	sb.WriteByte('(')
	for i, p := range x.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		if color {
			sb.WriteString(ansiBeige)
		}
		sb.WriteString(p.Type)
		if color {
			sb.WriteString(ansiBlue)
		}
		if p.Varname != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Varname)
		}
	}
	sb.WriteByte(')')
	if color {
		sb.WriteString(ansiReset)
	}
	return sb.String()
}

func instructionLine(in Instruction, color bool) string {
	name := strings.ToLower(in.Name)
	if color {
		name = ansiGreen + name + ansiReset
	}
	if in.Form == "" {
		return name
	}
	return name + " " + in.Form
}

// writeListing prints one intrinsic. A single instruction shares the
// signature line; more than one get a line each below it.
func writeListing(w io.Writer, x *Intrinsic, color bool) {
	sig := signature(x, color)
	if len(x.Instructions) == 1 {
		fmt.Fprintf(w, "%s: %s\n", sig, instructionLine(x.Instructions[0], color))
		return
	}
	fmt.Fprintln(w, sig)
	for _, in := range x.Instructions {
		fmt.Fprintln(w, instructionLine(in, color))
	}
}

// docLine renders the "Models" line the catalogue doc comments carry,
// ready to paste under a function summary.
func docLine(x *Intrinsic) string {
	if len(x.Instructions) == 0 {
		return fmt.Sprintf("// Models %s.", x.Name)
	}
	names := make([]string, len(x.Instructions))
	for i, in := range x.Instructions {
		names[i] = strings.ToUpper(in.Name)
	}
	return fmt.Sprintf("// Models %s (%s).", x.Name, strings.Join(names, ", "))
}
