// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86dat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"x86db.dev/x86db/internal/x86"
)

func opFlags(t *testing.T, s string) x86.OpFlags {
	t.Helper()
	flags, err := x86.ParseOpFlags(s)
	if err != nil {
		t.Fatalf("ParseOpFlags(%q): %v", s, err)
	}

	return flags
}

func TestParseInstructions(t *testing.T) {
	const data = `
; A comment line.

ADD     rm8,reg8         [mr: 00 /r]       8086,LOCK,SM
RET     void             [	c3]        8086
ENTER   imm16,imm8       [ii: c8 iw ib]    186
VADDPS  zmmreg|mask|z,zmmreg,zmmrm512|b32|er  [rvm:fv: evex.nds.512.0f.w0 58 /r]  FUTURE,AVX512,SM
`

	got, err := ParseInstructions(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseInstructions(): %v", err)
	}

	want := []*Instruction{
		{
			Mnemonic: "add",
			Operands: []Operand{
				{Types: opFlags(t, "rm8")},
				{Types: opFlags(t, "reg8")},
			},
			Tag:   "mr",
			Code:  []byte{0x01, 0x00, 0x10, 0x01, 0x00},
			Flags: x86.CPU8086 | x86.FlagLock | x86.FlagSM,
			Line:  4,
		},
		{
			Mnemonic: "ret",
			Code:     []byte{0x01, 0xc3},
			Flags:    x86.CPU8086,
			Line:     5,
		},
		{
			Mnemonic: "enter",
			Operands: []Operand{
				{Types: opFlags(t, "imm16")},
				{Types: opFlags(t, "imm8")},
			},
			Tag:   "ii",
			Code:  []byte{0x01, 0xc8, 0x19, 0x00, 0x18, 0x01},
			Flags: x86.CPU186,
			Line:  6,
		},
		{
			Mnemonic: "vaddps",
			Operands: []Operand{
				{Types: opFlags(t, "zmmreg"), Deco: x86.DecoMask | x86.DecoZeroing},
				{Types: opFlags(t, "zmmreg")},
				{Types: opFlags(t, "zmmrm512"), Deco: x86.DecoB32 | x86.DecoRounding},
			},
			Tag:   "rvm",
			Tuple: x86.TupleFV,
			Code:  []byte{0x31, 0x01, 0x08, 0x01, 0x01, 0x01, 0x58, 0x10, 0x00, 0x02},
			Flags: x86.CPUFuture | x86.FlagAVX512F | x86.FlagSM,
			Line:  7,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseInstructions(): (-want, +got)\n%s", diff)
	}
}

func TestParseInstructionsErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no codes section", "ADD rm8,reg8 00 /r 8086"},
		{"missing operands", "ADD [mr: 00 /r] 8086"},
		{"bad operand type", "ADD rm9,reg8 [mr: 00 /r] 8086"},
		{"tag too short", "ADD rm8,reg8 [m: 00 /r] 8086"},
		{"bad tuple", "VADDPS zmmreg,zmmreg,zmmrm512 [rvm:xx: evex.512.0f.w0 58 /r] FUTURE,AVX512"},
		{"bad tag letter", "ADD rm8,reg8 [mx: 00 /r] 8086"},
		{"bad code token", "ADD rm8,reg8 [mr: 00 /8] 8086"},
		{"bad flags", "ADD rm8,reg8 [mr: 00 /r] 8086,WAT"},
		{"too many operands", "X reg8,reg8,reg8,reg8,reg8 [-----: 00] 8086"},
	}

	for _, test := range tests {
		if _, err := ParseInstructions(strings.NewReader(test.line)); err == nil {
			t.Errorf("%s: no error for %q", test.name, test.line)
		}
	}
}

func TestParseRegisters(t *testing.T) {
	const data = `
; Comments and blanks are skipped.
al         reg_al   reg8    0
st0        fpu0     fpureg  0   aliases=st
xmm8-xmm11 xmmreg   xmmreg  8   long
xmm28-xmm31 xmmreg  xmmreg  28  long,evex
`

	got, err := ParseRegisters(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseRegisters(): %v", err)
	}

	want := []*Register{
		{Name: "al", Type: opFlags(t, "reg_al"), Class: "reg8", Encoding: 0, Line: 3},
		{Name: "st0", Type: opFlags(t, "fpu0"), Class: "fpureg", Encoding: 0, Aliases: []string{"st"}, Line: 4},
		{Name: "xmm8", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 8, Long: true, Line: 5},
		{Name: "xmm9", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 9, Long: true, Line: 5},
		{Name: "xmm10", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 10, Long: true, Line: 5},
		{Name: "xmm11", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 11, Long: true, Line: 5},
		{Name: "xmm28", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 28, Long: true, EVEX: true, Line: 6},
		{Name: "xmm29", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 29, Long: true, EVEX: true, Line: 6},
		{Name: "xmm30", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 30, Long: true, EVEX: true, Line: 6},
		{Name: "xmm31", Type: opFlags(t, "xmmreg"), Class: "xmmreg", Encoding: 31, Long: true, EVEX: true, Line: 6},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseRegisters(): (-want, +got)\n%s", diff)
	}
}

func TestParseRegistersErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few columns", "al reg_al reg8"},
		{"bad type", "al reg_9 reg8 0"},
		{"bad number", "al reg_al reg8 zero"},
		{"bad flag", "al reg_al reg8 0 shiny"},
		{"mixed range", "xmm8-ymm15 xmmreg xmmreg 8"},
		{"descending range", "xmm15-xmm8 xmmreg xmmreg 8"},
	}

	for _, test := range tests {
		if _, err := ParseRegisters(strings.NewReader(test.line)); err == nil {
			t.Errorf("%s: no error for %q", test.name, test.line)
		}
	}
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"rax", []string{"rax"}},
		{"cr0-cr3", []string{"cr0", "cr1", "cr2", "cr3"}},
		{"r8b-r11b", []string{"r8b", "r9b", "r10b", "r11b"}},
		{"xmm9-xmm9", []string{"xmm9"}},
	}

	for _, test := range tests {
		got, err := expandRange(test.name)
		if err != nil {
			t.Fatalf("expandRange(%q): %v", test.name, err)
		}

		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("expandRange(%q): (-want, +got)\n%s", test.name, diff)
		}
	}
}
