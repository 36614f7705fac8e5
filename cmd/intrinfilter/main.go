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

// Command intrinfilter reads the Intel Intrinsics Guide data XML and
// prints the intrinsics together with the instructions behind them.
//
// Usage:
//
//	intrinfilter -tech AVX2 data-3.6.9.xml             # one technology
//	intrinfilter -name madd data-3.6.9.xml.zst         # name substring
//	intrinfilter -doc -tech SSE2 data-3.6.9.xml.gz     # catalogue doc lines
//	intrinfilter -stubs sse2_stubs.go -tech SSE2 data-3.6.9.xml
//
// The data file is published at
// https://www.intel.com/content/dam/develop/public/us/en/include/intrinsics-guide/data-latest.xml
// and is huge for a text file, so .gz and .zst copies are read
// transparently.
//
// Intrinsics with no instruction form are skipped unless -all is set.
// Most of those are casts that only change the type and never touch
// the bits, but some are gaps in the XML itself.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	techFlag  = flag.String("tech", "", "Only intrinsics of this technology (SSE2, AVX2, AVX-512, ...)")
	nameFlag  = flag.String("name", "", "Only intrinsics whose name contains this substring")
	docMode   = flag.Bool("doc", false, "Print catalogue doc lines instead of a listing")
	stubFile  = flag.String("stubs", "", "Write a Go stub file for the matching intrinsics")
	stubPkg   = flag.String("pkg", "intrin", "Package name for the -stubs file")
	allFlag   = flag.Bool("all", false, "Keep intrinsics with no instruction form")
	colorFlag = flag.Bool("color", false, "Colorize the listing with ANSI escapes")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one data XML file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	f := Filter{
		Tech:    *techFlag,
		Name:    *nameFlag,
		KeepAll: *allFlag,
	}

	if err := run(flag.Arg(0), f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, f Filter) error {
	in, err := openData(path)
	if err != nil {
		return err
	}
	defer in.Close()

	switch {
	case *stubFile != "":
		n, err := writeStubs(*stubFile, *stubPkg, in, f)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d stubs to %s\n", n, *stubFile)
		return nil
	case *docMode:
		return walkIntrinsics(in, func(x *Intrinsic) error {
			if f.Match(x) {
				fmt.Println(docLine(x))
			}
			return nil
		})
	default:
		return walkIntrinsics(in, func(x *Intrinsic) error {
			if f.Match(x) {
				writeListing(os.Stdout, x, *colorFlag)
			}
			return nil
		})
	}
}
