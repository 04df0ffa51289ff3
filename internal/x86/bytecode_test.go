// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodeRefSteps(t *testing.T) {
	// The first recipe in the blob: adc rm8, reg8.
	got, err := CodeRef(0).Steps()
	if err != nil {
		t.Fatalf("CodeRef(0).Steps(): %v", err)
	}

	want := []CodeStep{
		{Cmd: CmdLit1, Args: []byte{0x10}},
		{Cmd: CmdModRM, Args: []byte{0x01, 0x00}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CodeRef(0).Steps(): (-want, +got)\n%s", diff)
	}
}

func TestCodeRefBytes(t *testing.T) {
	got := CodeRef(0).Bytes()
	want := []byte{0x01, 0x10, 0x10, 0x01, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("CodeRef(0).Bytes() = %x, want %x", got, want)
	}
}

func TestCodeRefString(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"adc rm8, reg8", "10 /r1:0"},
		{"adc rm32, reg32", "o32 11 /r1:0"},
		{"add reg_al, imm8", "04 ib1"},
		{"enter imm16, imm8", "c8 iw0 ib1"},
		{"vaddps xmmreg, xmmreg, xmmrm128", "vex.m1.00.v1 58 /r0:2"},
		{"vaddps zmmreg|mask|z, zmmreg, zmmrm512|b32|er", "evex.m1.08.fv.v1 58 /r0:2"},
	}

	for _, test := range tests {
		mnemonic, _, _ := strings.Cut(test.template, " ")
		tmpl := findTemplate(t, mnemonic, test.template)
		if got := tmpl.Code.String(); got != test.want {
			t.Errorf("%q code = %q, want %q", test.template, got, test.want)
		}
	}
}

func TestCodeRefErrors(t *testing.T) {
	if _, err := CodeRef(len(Bytecodes) + 16).Steps(); err == nil {
		t.Errorf("Steps() on an out-of-range reference: no error")
	}

	// Recipes with defects cannot come from the
	// generator, so synthesise them at the end of the
	// blob.
	n := len(Bytecodes)
	defer func() { Bytecodes = Bytecodes[:n] }()

	Bytecodes = append(Bytecodes, 0xfe, 0x00)
	if _, err := CodeRef(n).Steps(); err == nil {
		t.Errorf("Steps() on an unknown command: no error")
	}

	Bytecodes = Bytecodes[:n]
	Bytecodes = append(Bytecodes, byte(CmdLit2), 0xaa)
	if _, err := CodeRef(n).Steps(); err == nil {
		t.Errorf("Steps() on a truncated recipe: no error")
	}

	// A recipe whose arguments end exactly at the end of
	// the blob, with no terminator after them.
	Bytecodes = Bytecodes[:n]
	Bytecodes = append(Bytecodes, byte(CmdLit1), 0x90)
	if _, err := CodeRef(n).Steps(); err == nil {
		t.Errorf("Steps() on an unterminated recipe: no error")
	}
}

func TestValidateCode(t *testing.T) {
	valid := [][]byte{
		{byte(CmdLit1), 0xf4},
		{byte(CmdO16), byte(CmdLit1), 0x11, byte(CmdModRM), 0x10, 0x01},
	}
	for _, code := range valid {
		if err := validateCode(code); err != nil {
			t.Errorf("validateCode(%x): %v", code, err)
		}
	}

	invalid := [][]byte{
		{0xfe},
		{byte(CmdLit2), 0xaa},
		{byte(CmdLit1), 0xf4, byte(CmdEnd)},
		{byte(CmdEVEX), 0x01, 0x08},
	}
	for _, code := range invalid {
		if err := validateCode(code); err == nil {
			t.Errorf("validateCode(%x): no error", code)
		}
	}
}
