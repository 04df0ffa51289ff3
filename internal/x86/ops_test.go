// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		name string
		want Op
	}{
		{"add", OpAdd},
		{"ADD", OpAdd},
		{"cmpxchg8b", OpCmpxchg8b},
		{"vaddps", OpVaddps},
	}

	for _, test := range tests {
		got, err := ParseOp(test.name)
		if err != nil {
			t.Fatalf("ParseOp(%q): %v", test.name, err)
		}

		if got != test.want {
			t.Errorf("ParseOp(%q) = %v, want %v", test.name, got, test.want)
		}
	}

	for _, name := range []string{"", "addq", "none"} {
		if _, err := ParseOp(name); err == nil {
			t.Errorf("ParseOp(%q): no error", name)
		}
	}
}

func TestOpString(t *testing.T) {
	if got := OpAdd.String(); got != "add" {
		t.Errorf("OpAdd.String() = %q, want %q", got, "add")
	}

	if got := OpNone.String(); got != "" {
		t.Errorf("OpNone.String() = %q, want %q", got, "")
	}

	if got := Op(60000).String(); got != "Op(60000)" {
		t.Errorf("Op(60000).String() = %q, want %q", got, "Op(60000)")
	}
}

func TestOpsSorted(t *testing.T) {
	// Mnemonics are assigned identifiers in sorted
	// order, so the groups in Templates are alphabetical
	// by construction.
	for op := OpNone + 2; int(op) < len(opNames); op++ {
		if opNames[op-1] >= opNames[op] {
			t.Fatalf("mnemonic %q does not sort before %q", opNames[op-1], opNames[op])
		}
	}
}
