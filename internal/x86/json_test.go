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

func TestTemplateToJSON(t *testing.T) {
	tmpl := findTemplate(t, "vaddps", "vaddps zmmreg|mask|z, zmmreg, zmmrm512|b32|er")
	got := tmpl.ToJSON()
	want := TemplateJSON{
		Mnemonic: "vaddps",
		Operands: []OperandJSON{
			{Type: "zmmreg", Decorators: "mask|z"},
			{Type: "zmmreg"},
			{Type: "zmmrm512", Decorators: "b32|er"},
		},
		Code:  "31010801010158100002",
		Flags: []string{"FUTURE", "AVX512", "SM"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToJSON(): (-want, +got)\n%s", diff)
	}
}

func TestRegisterToJSON(t *testing.T) {
	tests := []struct {
		reg  *Register
		want RegisterJSON
	}{
		{
			reg:  EAX,
			want: RegisterJSON{Name: "eax", Class: "reg32", Encoding: 0, MinMode: 16},
		},
		{
			reg:  ST0,
			want: RegisterJSON{Name: "st0", Class: "fpureg", Encoding: 0, MinMode: 16, Aliases: []string{"st"}},
		},
		{
			reg:  XMM31,
			want: RegisterJSON{Name: "xmm31", Class: "xmmreg", Encoding: 31, EVEX: true, MinMode: 64},
		},
		{
			// Lives outside the encoding-ordered class
			// arrays.
			reg:  SPL,
			want: RegisterJSON{Name: "spl", Class: "reg8", Encoding: 4, MinMode: 64},
		},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, test.reg.ToJSON()); diff != "" {
			t.Errorf("%s.ToJSON(): (-want, +got)\n%s", test.reg, diff)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf); err != nil {
		t.Fatalf("EncodeJSON(): %v", err)
	}

	db, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON(): %v", err)
	}

	templates := 0
	for i := range Templates {
		if !Templates[i].sentinel() {
			templates++
		}
	}
	if len(db.Instructions) != templates {
		t.Fatalf("decoded %d instructions, want %d", len(db.Instructions), templates)
	}

	// Every decoded template resolves back to an
	// identical table row.
	n := 0
	for i := range Templates {
		tmpl := &Templates[i]
		if tmpl.sentinel() {
			continue
		}

		back, err := db.Instructions[n].Template()
		n++
		if err != nil {
			t.Fatalf("instruction %d (%q): %v", n-1, tmpl, err)
		}

		if diff := cmp.Diff(*tmpl, back); diff != "" {
			t.Fatalf("instruction %d (%q): (-want, +got)\n%s", n-1, tmpl, diff)
		}
	}

	for _, reg := range db.Registers {
		back, err := reg.Register()
		if err != nil {
			t.Fatalf("register %q: %v", reg.Name, err)
		}

		if back.Name != reg.Name {
			t.Fatalf("register %q resolved to %q", reg.Name, back.Name)
		}
	}
}

func TestDecodeJSONUnknownField(t *testing.T) {
	in := `{"instructions": [], "registers": [], "extra": 1}`
	if _, err := DecodeJSON(strings.NewReader(in)); err == nil {
		t.Fatalf("DecodeJSON() with an unknown field: no error")
	}
}

func TestTemplateJSONErrors(t *testing.T) {
	tests := []TemplateJSON{
		{Mnemonic: "nosuchinstruction", Code: "c3", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "bogus"}, {Type: "reg8"}}, Code: "00", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8", Decorators: "bogus"}, {Type: "reg8"}}, Code: "00", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8"}, {Type: "reg8"}}, Code: "zz", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8"}, {Type: "reg8"}}, Code: "01c3", Flags: []string{"8086", "WAT"}},
		// Recipes that decode as hex but are not complete
		// command sequences must be rejected before they
		// reach the blob.
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8"}, {Type: "reg8"}}, Code: "02aa", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8"}, {Type: "reg8"}}, Code: "00", Flags: []string{"8086"}},
		{Mnemonic: "add", Operands: []OperandJSON{{Type: "rm8"}, {Type: "reg8"}}, Code: "fe", Flags: []string{"8086"}},
	}

	blobLen := len(Bytecodes)
	for i, test := range tests {
		if _, err := test.Template(); err == nil {
			t.Errorf("case %d: no error", i)
		}
	}

	if len(Bytecodes) != blobLen {
		t.Errorf("rejected recipes grew the blob from %d to %d bytes", blobLen, len(Bytecodes))
	}
}

func TestRegisterJSONErrors(t *testing.T) {
	if _, err := (RegisterJSON{Name: "bogus"}).Register(); err == nil {
		t.Errorf("unknown register: no error")
	}

	if _, err := (RegisterJSON{Name: "eax", Encoding: 3}).Register(); err == nil {
		t.Errorf("wrong encoding: no error")
	}
}

func TestInternCode(t *testing.T) {
	// An existing recipe yields its existing offset.
	existing := CodeRef(0).Bytes()
	if ref := internCode(existing); ref != 0 {
		t.Fatalf("internCode(existing) = %d, want 0", ref)
	}

	// A new recipe is appended and terminated.
	recipe := []byte{byte(CmdLit2), 0xde, 0xad}
	ref := internCode(recipe)
	if int(ref) >= len(Bytecodes) {
		t.Fatalf("internCode() returned offset %d outside the blob", ref)
	}

	if got := ref.Bytes(); !bytes.Equal(got, recipe) {
		t.Fatalf("interned recipe reads back as %x, want %x", got, recipe)
	}

	// Interning it again is a no-op.
	if again := internCode(recipe); again != ref {
		t.Fatalf("internCode() = %d on the second call, want %d", again, ref)
	}
}

func TestInternFlags(t *testing.T) {
	existing := FlagSets[0]
	if idx := internFlags(existing); idx != 0 {
		t.Fatalf("internFlags(existing) = %d, want 0", idx)
	}

	novel := CPUFuture | FlagUndoc | FlagSM2
	idx := internFlags(novel)
	if FlagSets[idx] != novel {
		t.Fatalf("FlagSets[%d] = %q, want %q", idx, FlagSets[idx], novel)
	}

	if again := internFlags(novel); again != idx {
		t.Fatalf("internFlags() = %d on the second call, want %d", again, idx)
	}
}
