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
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Intrinsic is one <intrinsic> element of the Intel data XML.
type Intrinsic struct {
	Tech         string        `xml:"tech,attr"`
	Name         string        `xml:"name,attr"`
	CPUID        []string      `xml:"CPUID"`
	Category     string        `xml:"category"`
	Return       Operand       `xml:"return"`
	Parameters   []Operand     `xml:"parameter"`
	Description  string        `xml:"description"`
	Instructions []Instruction `xml:"instruction"`
}

// Operand is a <return> or <parameter> element.
type Operand struct {
	Type    string `xml:"type,attr"`
	Varname string `xml:"varname,attr"`
	Etype   string `xml:"etype,attr"`
}

// Instruction is one assembly form of an intrinsic.
type Instruction struct {
	Name string `xml:"name,attr"`
	Form string `xml:"form,attr"`
	Xed  string `xml:"xed,attr"`
}

// Filter selects intrinsics. The zero value matches everything that
// has at least one instruction form.
type Filter struct {
	Tech    string // exact technology match, empty matches all
	Name    string // name substring, empty matches all
	KeepAll bool   // keep intrinsics with no instruction form
}

// Match reports whether x passes the filter.
func (f Filter) Match(x *Intrinsic) bool {
	if f.Tech != "" && x.Tech != f.Tech {
		return false
	}
	if f.Name != "" && !strings.Contains(x.Name, f.Name) {
		return false
	}
	if !f.KeepAll && len(x.Instructions) == 0 {
		return false
	}
	return true
}

// dataFile pairs a decompressing reader with the closers behind it.
type dataFile struct {
	io.Reader
	close func() error
}

func (d *dataFile) Close() error { return d.close() }

// openData opens path, decompressing .gz and .zst transparently.
func openData(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &dataFile{Reader: zr, close: func() error {
			if err := zr.Close(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd %s: %w", path, err)
		}
		return &dataFile{Reader: zr, close: func() error {
			zr.Close()
			return f.Close()
		}}, nil
	}
	return f, nil
}

// walkIntrinsics streams the <intrinsic> elements of the data XML
// through fn. The data file is too large to load whole, so elements
// decode one at a time.
func walkIntrinsics(r io.Reader, fn func(*Intrinsic) error) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read data XML: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "intrinsic" {
			continue
		}
		var x Intrinsic
		if err := dec.DecodeElement(&x, &se); err != nil {
			return fmt.Errorf("decode intrinsic: %w", err)
		}
		if err := fn(&x); err != nil {
			return err
		}
	}
}
