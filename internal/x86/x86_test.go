// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"sort"
	"strings"
	"testing"
)

func mustOpFlags(t *testing.T, s string) OpFlags {
	t.Helper()
	flags, err := ParseOpFlags(s)
	if err != nil {
		t.Fatalf("ParseOpFlags(%q): %v", s, err)
	}

	return flags
}

// findTemplate returns the template for mnemonic whose
// rendering matches want.
func findTemplate(t *testing.T, mnemonic, want string) *Template {
	t.Helper()
	for _, tmpl := range Lookup(mnemonic) {
		if tmpl.String() == want {
			return tmpl
		}
	}

	t.Fatalf("no template %q", want)
	return nil
}

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		count    int
	}{
		{"add", 12},
		{"ADD", 12},
		{"Add", 12},
		{"hlt", 1},
		{"movsd", 3},
		{"nosuchinstruction", 0},
	}

	for _, test := range tests {
		if got := len(Lookup(test.mnemonic)); got != test.count {
			t.Errorf("len(Lookup(%q)) = %d, want %d", test.mnemonic, got, test.count)
		}
	}

	// The string-op and SSE2 forms of movsd share one
	// group.
	movsd := Lookup("movsd")
	if movsd[0].Operands != 0 {
		t.Errorf("movsd form 0 has %d operands, want 0", movsd[0].Operands)
	}
	if movsd[1].Operands != 2 || movsd[1].Types[0]&RegXMM == 0 {
		t.Errorf("movsd form 1 = %q, want an SSE2 form", movsd[1])
	}
}

func TestMnemonics(t *testing.T) {
	names := Mnemonics()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Mnemonics() is not sorted")
	}

	for _, name := range []string{"add", "mov", "ret", "vaddps", "kmovw"} {
		i := sort.SearchStrings(names, name)
		if i == len(names) || names[i] != name {
			t.Errorf("Mnemonics() does not contain %q", name)
		}
	}

	for _, name := range names {
		if len(Lookup(name)) == 0 {
			t.Errorf("Lookup(%q) is empty for a listed mnemonic", name)
		}
	}
}

func TestTemplateString(t *testing.T) {
	tests := []struct {
		mnemonic string
		form     int
		want     string
	}{
		{"add", 0, "add rm8, reg8"},
		{"add", 7, "add reg_eax, imm32"},
		{"hlt", 0, "hlt"},
		{"enter", 0, "enter imm16, imm8"},
		{"vaddps", 4, "vaddps zmmreg|mask|z, zmmreg, zmmrm512|b32|er"},
	}

	for _, test := range tests {
		tmpls := Lookup(test.mnemonic)
		if test.form >= len(tmpls) {
			t.Fatalf("Lookup(%q) has %d forms, want at least %d", test.mnemonic, len(tmpls), test.form+1)
		}

		if got := tmpls[test.form].String(); got != test.want {
			t.Errorf("template %q form %d = %q, want %q", test.mnemonic, test.form, got, test.want)
		}
	}
}

func TestTemplateCPUFlags(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"add rm8, reg8", "8086,LOCK,SM"},
		{"hlt", "8086,PRIV"},
		{"vaddps zmmreg|mask|z, zmmreg, zmmrm512|b32|er", "FUTURE,AVX512,SM"},
	}

	for _, test := range tests {
		mnemonic, _, _ := strings.Cut(test.template, " ")
		tmpl := findTemplate(t, mnemonic, test.template)
		if got := tmpl.CPUFlags().String(); got != test.want {
			t.Errorf("%q flags = %q, want %q", test.template, got, test.want)
		}
	}
}

func TestTemplateMatches(t *testing.T) {
	tests := []struct {
		template string
		args     []string
		want     MatchResult
	}{
		{"add rm32, reg32", []string{"reg32", "reg32"}, Match},
		{"add rm32, reg32", []string{"mem32", "reg32"}, Match},
		{"add rm32, reg32", []string{"mem", "reg32"}, MismatchOperandSizeMissing},
		{"add rm32, reg32", []string{"reg32"}, MismatchOperandCount},
		{"add rm32, reg32", []string{"reg32", "imm8"}, MismatchInvalidOperand},
		{"add rm32, reg32", []string{"reg32", "reg16"}, MismatchOperandSize},
		{"add rm32, imm32", []string{"reg32", "imm"}, Match},
		{"add rm32, imm32", []string{"reg32", "imm16"}, MismatchOperandSize},
		{"add reg_eax, imm32", []string{"reg_eax", "imm32"}, Match},
		{"add reg_eax, imm32", []string{"reg32", "imm32"}, MismatchWrongRegister},
		{"shl rm32, reg_cl", []string{"reg32", "reg_cl"}, Match},
		{"shl rm32, reg_cl", []string{"reg32", "reg8"}, MismatchWrongRegister},
		{"hlt", []string{}, Match},
		{"ret imm16", []string{"imm"}, Match},
	}

	for _, test := range tests {
		mnemonic, _, _ := strings.Cut(test.template, " ")
		tmpl := findTemplate(t, mnemonic, test.template)

		args := make([]OpFlags, len(test.args))
		for i, arg := range test.args {
			args[i] = mustOpFlags(t, arg)
		}

		if got := tmpl.Matches(args); got != test.want {
			t.Errorf("%q.Matches(%v) = %v, want %v", test.template, test.args, got, test.want)
		}
	}
}

func TestTableInvariants(t *testing.T) {
	if len(Templates) == 0 {
		t.Fatal("empty template table")
	}

	if last := &Templates[len(Templates)-1]; !last.sentinel() {
		t.Errorf("template table does not end with a sentinel row")
	}

	prevOp := OpNone
	for i := range Templates {
		tmpl := &Templates[i]
		if tmpl.sentinel() {
			if prevOp == OpNone {
				t.Errorf("template %d: consecutive sentinel rows", i)
			}

			prevOp = OpNone
			continue
		}

		// Groups are contiguous and alphabetical.
		if prevOp != OpNone && tmpl.Op != prevOp {
			t.Errorf("template %d (%q): group of %q not terminated by a sentinel", i, tmpl, prevOp)
		}
		prevOp = tmpl.Op

		if tmpl.Operands < 0 || tmpl.Operands > MaxOperands {
			t.Errorf("template %d (%q): %d operands", i, tmpl, tmpl.Operands)
		}

		for j := 0; j < MaxOperands+1; j++ {
			if j < tmpl.Operands && tmpl.Types[j] == 0 {
				t.Errorf("template %d (%q): operand %d has no type", i, tmpl, j)
			}
			if j >= tmpl.Operands && (tmpl.Types[j] != 0 || tmpl.Deco[j] != 0) {
				t.Errorf("template %d (%q): data beyond operand count at %d", i, tmpl, j)
			}
		}

		if int(tmpl.Flags) >= len(FlagSets) {
			t.Errorf("template %d (%q): flag set %d out of range", i, tmpl, tmpl.Flags)
		}

		if _, err := tmpl.Code.Steps(); err != nil {
			t.Errorf("template %d (%q): bad recipe: %v", i, tmpl, err)
		}
	}

	// Alphabetical group order.
	var prev string
	for i := range Templates {
		tmpl := &Templates[i]
		if tmpl.sentinel() {
			continue
		}

		if name := tmpl.Mnemonic(); name < prev {
			t.Fatalf("template %d (%q): group out of order after %q", i, tmpl, prev)
		} else {
			prev = name
		}
	}
}

func TestMatchResultString(t *testing.T) {
	tests := []struct {
		result MatchResult
		want   string
	}{
		{Match, "match"},
		{MismatchOperandCount, "wrong operand count"},
		{MismatchOperandSize, "operand size mismatch"},
		{MatchResult(99), "MatchResult(99)"},
	}

	for _, test := range tests {
		if got := test.result.String(); got != test.want {
			t.Errorf("MatchResult(%d).String() = %q, want %q", test.result, got, test.want)
		}
	}
}
