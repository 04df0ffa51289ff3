// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86_test

import (
	"bytes"
	"sort"
	"testing"

	"x86db.dev/x86db/internal/x86"
	"x86db.dev/x86db/internal/x86/x86dat"
)

// TestTemplatesMatchData re-parses the embedded
// insns.dat and checks the generated template table
// against it row by row.
func TestTemplatesMatchData(t *testing.T) {
	insns, err := x86dat.ParseInstructions(bytes.NewReader(x86.InsnsData))
	if err != nil {
		t.Fatalf("parsing insns.dat: %v", err)
	}

	// The generator orders rows by mnemonic, keeping
	// the source order within each mnemonic.
	sort.SliceStable(insns, func(i, j int) bool {
		return insns[i].Mnemonic < insns[j].Mnemonic
	})

	var rows []*x86.Template
	for i := range x86.Templates {
		tmpl := &x86.Templates[i]
		if tmpl.Op != x86.OpNone {
			rows = append(rows, tmpl)
		}
	}

	if len(rows) != len(insns) {
		t.Fatalf("table has %d rows, insns.dat has %d", len(rows), len(insns))
	}

	for i, insn := range insns {
		tmpl := rows[i]
		if tmpl.Mnemonic() != insn.Mnemonic {
			t.Fatalf("row %d is %q, insns.dat line %d is %q", i, tmpl.Mnemonic(), insn.Line, insn.Mnemonic)
		}

		if tmpl.Operands != len(insn.Operands) {
			t.Errorf("%q (line %d): %d operands in the table, %d in insns.dat", tmpl, insn.Line, tmpl.Operands, len(insn.Operands))
			continue
		}

		for j, operand := range insn.Operands {
			if tmpl.Types[j] != operand.Types {
				t.Errorf("%q (line %d): operand %d type %q, insns.dat has %q", tmpl, insn.Line, j, tmpl.Types[j], operand.Types)
			}
			if tmpl.Deco[j] != operand.Deco {
				t.Errorf("%q (line %d): operand %d decorators %q, insns.dat has %q", tmpl, insn.Line, j, tmpl.Deco[j], operand.Deco)
			}
		}

		if !bytes.Equal(tmpl.Code.Bytes(), insn.Code) {
			t.Errorf("%q (line %d): code %x, insns.dat compiles to %x", tmpl, insn.Line, tmpl.Code.Bytes(), insn.Code)
		}

		if got := tmpl.CPUFlags(); got != insn.Flags {
			t.Errorf("%q (line %d): flags %q, insns.dat has %q", tmpl, insn.Line, got, insn.Flags)
		}
	}
}

// TestRegistersMatchData re-parses the embedded
// regs.dat and checks the generated register tables
// against it.
func TestRegistersMatchData(t *testing.T) {
	regs, err := x86dat.ParseRegisters(bytes.NewReader(x86.RegsData))
	if err != nil {
		t.Fatalf("parsing regs.dat: %v", err)
	}

	total := len(x86.Reg8REX)
	for _, token := range x86.RegisterClassNames() {
		total += len(x86.RegisterClass(token))
	}
	if len(regs) != total {
		t.Fatalf("regs.dat has %d registers, the tables have %d", len(regs), total)
	}

	for _, reg := range regs {
		r := x86.RegisterByName(reg.Name)
		if r == nil {
			t.Errorf("register %q (line %d) is not in the tables", reg.Name, reg.Line)
			continue
		}

		if r.Name != reg.Name {
			t.Errorf("register %q (line %d) resolves to %q", reg.Name, reg.Line, r.Name)
		}
		if r.Type != reg.Type {
			t.Errorf("register %q (line %d): type %q, regs.dat has %q", reg.Name, reg.Line, r.Type, reg.Type)
		}
		if r.Encoding != reg.Encoding {
			t.Errorf("register %q (line %d): encoding %d, regs.dat has %d", reg.Name, reg.Line, r.Encoding, reg.Encoding)
		}
		if r.EVEX != reg.EVEX {
			t.Errorf("register %q (line %d): EVEX %v, regs.dat has %v", reg.Name, reg.Line, r.EVEX, reg.EVEX)
		}

		wantMode := uint8(16)
		if reg.Long {
			wantMode = 64
		}
		if r.MinMode != wantMode {
			t.Errorf("register %q (line %d): min mode %d, want %d", reg.Name, reg.Line, r.MinMode, wantMode)
		}

		for _, alias := range reg.Aliases {
			if x86.RegisterByName(alias) != r {
				t.Errorf("alias %q (line %d) does not resolve to %q", alias, reg.Line, reg.Name)
			}
		}

		// The REX-only byte registers have no
		// encoding-ordered class array.
		if reg.Class == "reg8rex" {
			continue
		}

		class := x86.RegisterClass(reg.Class)
		if class == nil {
			t.Errorf("register %q (line %d): unknown class %q", reg.Name, reg.Line, reg.Class)
			continue
		}

		if int(reg.Encoding) >= len(class) || class[reg.Encoding] != r {
			t.Errorf("register %q (line %d) is not at index %d of class %q", reg.Name, reg.Line, reg.Encoding, reg.Class)
		}
	}
}
