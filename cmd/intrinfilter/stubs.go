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
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"
)

// goTypes maps the operand types of the data XML to the types of the
// intrin package. Operand types outside the map (pointers, tile
// registers, mask pairs) have no stub mapping, and their intrinsics
// are skipped.
var goTypes = map[string]string{
	"__m128":             "M128",
	"__m128d":            "M128d",
	"__m128i":            "M128i",
	"__m256":             "M256",
	"__m256d":            "M256d",
	"__m256i":            "M256i",
	"__m512":             "M512",
	"__m512d":            "M512d",
	"__m512i":            "M512i",
	"__mmask8":           "Mask8",
	"__mmask16":          "Mask16",
	"__mmask32":          "Mask32",
	"__mmask64":          "Mask64",
	"char":               "int8",
	"short":              "int16",
	"int":                "int32",
	"const int":          "int",
	"__int32":            "int32",
	"__int64":            "int64",
	"long long":          "int64",
	"unsigned char":      "uint8",
	"unsigned short":     "uint16",
	"unsigned int":       "uint32",
	"unsigned __int32":   "uint32",
	"unsigned __int64":   "uint64",
	"unsigned long long": "uint64",
	"float":              "float32",
	"double":             "float64",
}

// goName converts an intrinsic name to an exported Go identifier:
// _mm_add_epi32 becomes MmAddEpi32. Catalogue names are chosen by hand
// afterwards; the mechanical name only keeps the stub compilable.
func goName(cname string) string {
	var sb strings.Builder
	for _, p := range strings.Split(strings.TrimLeft(cname, "_"), "_") {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

// wrapComment writes text as "// " lines broken near 72 columns.
func wrapComment(sb *strings.Builder, text string) {
	line := "//"
	for _, word := range strings.Fields(text) {
		if len(line)+1+len(word) > 72 && line != "//" {
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = "//"
		}
		line += " " + word
	}
	if line != "//" {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// stubFor renders one stub, or "" when an operand type has no mapping.
func stubFor(x *Intrinsic) string {
	ret := ""
	if x.Return.Type != "void" {
		t, ok := goTypes[x.Return.Type]
		if !ok {
			return ""
		}
		ret = " " + t
	}
	var params []string
	for _, p := range x.Parameters {
		if p.Type == "void" {
			continue
		}
		t, ok := goTypes[p.Type]
		if !ok {
			return ""
		}
		name := p.Varname
		if name == "" {
			name = fmt.Sprintf("a%d", len(params))
		}
		params = append(params, name+" "+t)
	}

	name := goName(x.Name)
	var sb strings.Builder
	wrapComment(&sb, name+": "+x.Description)
	sb.WriteString(docLine(x))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "func %s(%s)%s {\n\tpanic(\"not implemented\")\n}\n", name, strings.Join(params, ", "), ret)
	return sb.String()
}

// writeStubs emits a compilable stub file for the matching intrinsics
// and reports how many it wrote.
func writeStubs(path, pkg string, r io.Reader, f Filter) (int, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by intrinfilter. DO NOT EDIT.\n\npackage %s\n\n", pkg)

	n, skipped := 0, 0
	err := walkIntrinsics(r, func(x *Intrinsic) error {
		if !f.Match(x) {
			return nil
		}
		s := stubFor(x)
		if s == "" {
			skipped++
			return nil
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("no stubbable intrinsics matched")
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d matching intrinsics with unmapped operand types\n", skipped)
	}

	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed: %v\n", err)
		formatted = buf.Bytes()
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return 0, fmt.Errorf("write stubs: %w", err)
	}
	return n, nil
}
