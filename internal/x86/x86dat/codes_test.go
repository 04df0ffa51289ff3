// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86dat

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompileCodes(t *testing.T) {
	tests := []struct {
		name   string
		tokens string
		tag    string
		tuple  byte
		want   []byte
	}{
		{
			name:   "single literal",
			tokens: "c3",
			want:   []byte{0x01, 0xc3},
		},
		{
			name:   "literal run splits at four",
			tokens: "66 0f 3a 0b 01 02",
			want:   []byte{0x04, 0x66, 0x0f, 0x3a, 0x0b, 0x02, 0x01, 0x02},
		},
		{
			name:   "modrm",
			tokens: "00 /r",
			tag:    "mr",
			want:   []byte{0x01, 0x00, 0x10, 0x01, 0x00},
		},
		{
			name:   "modrm digit",
			tokens: "f7 /3",
			tag:    "m",
			want:   []byte{0x01, 0xf7, 0x11, 0x03, 0x00},
		},
		{
			name:   "plus register",
			tokens: "b8+r id",
			tag:    "ri",
			want:   []byte{0x08, 0x00, 0xb8, 0x1a, 0x01},
		},
		{
			name:   "two immediates",
			tokens: "c8 iw ib",
			tag:    "ii",
			want:   []byte{0x01, 0xc8, 0x19, 0x00, 0x18, 0x01},
		},
		{
			name:   "prefixes",
			tokens: "o16 np 0f c7",
			want:   []byte{0x28, 0x2e, 0x02, 0x0f, 0xc7},
		},
		{
			name:   "branch",
			tokens: "e9 rel",
			tag:    "i",
			want:   []byte{0x01, 0xe9, 0x24, 0x00},
		},
		{
			name:   "far pointer",
			tokens: "9a rel16 seg",
			tag:    "ii",
			want:   []byte{0x01, 0x9a, 0x21, 0x00, 0x23, 0x01},
		},
		{
			name:   "vex",
			tokens: "vex.nds.lz.f3.0f38.w0 f3 /1",
			tag:    "vm",
			want:   []byte{0x30, 0x02, 0x02, 0x00, 0x01, 0xf3, 0x11, 0x01, 0x01},
		},
		{
			name:   "vex without vvvv",
			tokens: "vex.lz.f2.0f3a.w0 f0 /r ib",
			tag:    "rmi",
			want:   []byte{0x30, 0x03, 0x03, 0xff, 0x01, 0xf0, 0x10, 0x00, 0x01, 0x18, 0x02},
		},
		{
			name:   "evex",
			tokens: "evex.nds.512.66.0f.w1 58 /r",
			tag:    "rvm",
			tuple:  1,
			want:   []byte{0x31, 0x01, 0x19, 0x01, 0x01, 0x01, 0x58, 0x10, 0x00, 0x02},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got, err := compileCodes(strings.Fields(test.tokens), test.tag, test.tuple)
			if err != nil {
				t.Fatalf("compileCodes(%q, %q): %v", test.tokens, test.tag, err)
			}

			if !bytes.Equal(got, test.want) {
				t.Fatalf("compileCodes(%q, %q) = %#x, want %#x", test.tokens, test.tag, got, test.want)
			}
		})
	}
}

func TestCompileCodesErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens string
		tag    string
	}{
		{"modrm without tags", "00 /r", ""},
		{"digit without rm", "f7 /3", ""},
		{"plus register without tag", "b8+r", ""},
		{"immediate without tag", "c8 iw", ""},
		{"leftover immediate", "c3", "i"},
		{"unknown token", "00 /9", "m"},
		{"prefix without map", "vex.128.66.w0 58 /r", "rm"},
		{"bad prefix field", "vex.128.66.0f.w9 58 /r", "rm"},
		{"bad tag letter", "00 /r", "mq"},
	}

	for _, test := range tests {
		if _, err := compileCodes(strings.Fields(test.tokens), test.tag, 0); err == nil {
			t.Errorf("%s: no error", test.name)
		}
	}
}
