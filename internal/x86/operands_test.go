// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"
)

func TestParseOpFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want OpFlags
	}{
		{
			name: "void",
			text: "void",
			want: 0,
		},
		{
			name: "plain register",
			text: "reg32",
			want: OpRegister | RegGPR | Bits32,
		},
		{
			name: "register or memory",
			text: "rm64",
			want: OpRegister | OpMemory | RegGPR | Bits64,
		},
		{
			name: "exact register",
			text: "reg_cl",
			want: OpRegister | RegGPR | Bits8 | SpecCount,
		},
		{
			name: "sized immediate",
			text: "imm16",
			want: OpImmediate | Bits16,
		},
		{
			name: "sign extended immediate",
			text: "sbytedword",
			want: OpImmediate | ImmSByte | Bits32,
		},
		{
			name: "short branch target",
			text: "rel8",
			want: OpImmediate | ImmShort | Bits8,
		},
		{
			name: "far memory",
			text: "mem|far",
			want: OpMemory | ImmFar,
		},
		{
			name: "x87 reversed form",
			text: "fpureg|to",
			want: OpRegister | RegFPU | Bits80 | OpTo,
		},
		{
			name: "opmask register or memory",
			text: "krm16",
			want: OpRegister | OpMemory | RegOpmask | Bits16,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOpFlags(test.text)
			if err != nil {
				t.Fatalf("ParseOpFlags(%q): %v", test.text, err)
			}

			if got != test.want {
				t.Fatalf("ParseOpFlags(%q) = %#x, want %#x", test.text, uint64(got), uint64(test.want))
			}

			// Parsing the rendering must give the same
			// flags back.
			rendered := got.String()
			again, err := ParseOpFlags(rendered)
			if err != nil {
				t.Fatalf("ParseOpFlags(%q): %v", rendered, err)
			}

			if again != got {
				t.Fatalf("round trip %q -> %q -> %#x, want %#x", test.text, rendered, uint64(again), uint64(got))
			}
		})
	}
}

func TestParseOpFlagsErrors(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"reg33",
		"reg32|reg64",
		"far",
		"reg32|bogus",
	}

	for _, text := range tests {
		if _, err := ParseOpFlags(text); err == nil {
			t.Errorf("ParseOpFlags(%q): no error", text)
		}
	}
}

func TestOpFlagsString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags OpFlags
		want  string
	}{
		{0, "void"},
		{OpRegister | RegGPR | Bits32, "reg32"},
		{OpRegister | RegGPR | Bits8 | SpecAccum, "reg_al"},
		{OpImmediate | ImmNear, "rel"},
		{OpImmediate | ImmShort | Bits8, "rel8"},
		{OpMemory | ImmFar, "mem|far"},
		{OpRegister | RegFPU | Bits80 | OpTo, "fpureg|to"},
	}

	for _, test := range tests {
		if got := test.flags.String(); got != test.want {
			t.Errorf("OpFlags(%#x).String() = %q, want %q", uint64(test.flags), got, test.want)
		}
	}
}
