// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"
)

func TestParseDecoFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want DecoFlags
	}{
		{"mask", DecoMask},
		{"mask|z", DecoMask | DecoZeroing},
		{"b32", DecoBroadcast | DecoBr32},
		{"b64", DecoBroadcast | DecoBr64},
		{"er", DecoRounding},
		{"sae", DecoSAE},
		{"b32|er", DecoBroadcast | DecoBr32 | DecoRounding},
	}

	for _, test := range tests {
		got, err := ParseDecoFlags(test.text)
		if err != nil {
			t.Fatalf("ParseDecoFlags(%q): %v", test.text, err)
		}

		if got != test.want {
			t.Fatalf("ParseDecoFlags(%q) = %#x, want %#x", test.text, uint32(got), uint32(test.want))
		}

		if rendered := got.String(); rendered != test.text {
			t.Fatalf("DecoFlags(%#x).String() = %q, want %q", uint32(got), rendered, test.text)
		}
	}

	if _, err := ParseDecoFlags("b128"); err == nil {
		t.Errorf("ParseDecoFlags(%q): no error", "b128")
	}
}

func TestDecoFlagsAccessors(t *testing.T) {
	t.Parallel()

	flags := DecoMask | DecoZeroing | DecoB32
	if !flags.Masked() {
		t.Errorf("DecoFlags(%v).Masked() = false, want true", flags)
	}
	if !flags.Zeroing() {
		t.Errorf("DecoFlags(%v).Zeroing() = false, want true", flags)
	}
	if got := flags.Broadcast(); got != 32 {
		t.Errorf("DecoFlags(%v).Broadcast() = %d, want 32", flags, got)
	}
	if flags.Rounding() {
		t.Errorf("DecoFlags(%v).Rounding() = true, want false", flags)
	}

	flags = DecoRounding | DecoSAE | DecoB64
	if flags.Masked() {
		t.Errorf("DecoFlags(%v).Masked() = true, want false", flags)
	}
	if got := flags.Broadcast(); got != 64 {
		t.Errorf("DecoFlags(%v).Broadcast() = %d, want 64", flags, got)
	}
	if !flags.Rounding() {
		t.Errorf("DecoFlags(%v).Rounding() = false, want true", flags)
	}
	if !flags.SAE() {
		t.Errorf("DecoFlags(%v).SAE() = false, want true", flags)
	}

	if got := DecoFlags(0).Broadcast(); got != 0 {
		t.Errorf("DecoFlags(0).Broadcast() = %d, want 0", got)
	}
}
