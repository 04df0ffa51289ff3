// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 contains structured information on the
// x86 instruction set architecture: the instruction
// template table, the register tables, and the opcode
// bytecode blob the templates reference.
//
// The tables are immutable, compiled-in data, generated
// from the .dat sources in the data directory by gen-x86.
// They describe which operand forms each mnemonic
// accepts and how an external encoder would emit them;
// this package itself never produces machine code.
package x86

import (
	"fmt"
	"sort"
	"strings"
)

// Mode represents an x86
// CPU mode, as a number
// of bits.
type Mode struct {
	Int    uint8
	String string
}

var (
	Mode16 = Mode{16, "16"}
	Mode32 = Mode{32, "32"}
	Mode64 = Mode{64, "64"}
	Modes  = []Mode{Mode16, Mode32, Mode64}
)

// MaxOperands is the largest number of operands any
// instruction form can take. The operand arrays in a
// template are one entry wider so that decorated
// forms retain the original five-wide row shape.
const MaxOperands = 4

// Template describes one operand-encoding of an
// instruction mnemonic. A mnemonic with several
// valid forms has one template per form.
type Template struct {
	Op       Op                     // The symbolic instruction identifier.
	Operands int                    // The number of operands, 0 to MaxOperands.
	Types    [MaxOperands + 1]OpFlags   // The acceptable operand classes, one per operand.
	Deco     [MaxOperands + 1]DecoFlags // The permitted AVX-512 decorators, one per operand. Zero means none.
	Code     CodeRef                // The offset of the encoding recipe in the bytecode blob.
	Flags    FlagIndex              // The index of the CPU/feature flag set in FlagSets.
}

// sentinel reports whether t is one of the zero rows
// that terminate each mnemonic's group in Templates.
func (t *Template) sentinel() bool {
	return t.Op == OpNone
}

// Mnemonic returns the assembly mnemonic for the
// template, in lower case.
func (t *Template) Mnemonic() string {
	return t.Op.String()
}

// CPUFlags returns the template's CPU/feature flag set.
func (t *Template) CPUFlags() Flags {
	return FlagSets[t.Flags]
}

// String returns a readable rendering of the template,
// such as "add rm32, reg32".
func (t *Template) String() string {
	var s strings.Builder
	s.WriteString(t.Mnemonic())
	for i := 0; i < t.Operands; i++ {
		if i == 0 {
			s.WriteByte(' ')
		} else {
			s.WriteString(", ")
		}

		s.WriteString(t.Types[i].String())
		if t.Deco[i] != 0 {
			s.WriteByte('|')
			s.WriteString(t.Deco[i].String())
		}
	}

	return s.String()
}

// MatchResult indicates whether a set of operand types
// is accepted by a template, according to
// Template.Matches.
type MatchResult uint8

const (
	Match MatchResult = iota
	MismatchOperandCount
	MismatchInvalidOperand
	MismatchWrongRegister
	MismatchOperandSizeMissing
	MismatchOperandSize
)

func (m MatchResult) String() string {
	switch m {
	case Match:
		return "match"
	case MismatchOperandCount:
		return "wrong operand count"
	case MismatchInvalidOperand:
		return "invalid operand"
	case MismatchWrongRegister:
		return "wrong register"
	case MismatchOperandSizeMissing:
		return "operand size missing"
	case MismatchOperandSize:
		return "operand size mismatch"
	default:
		return fmt.Sprintf("MatchResult(%d)", m)
	}
}

// Matches indicates whether operands with the given
// types would be accepted by this template. This is a
// query on the table only: it considers operand
// classes, exact-register requirements, and sizes, not
// operand values.
func (t *Template) Matches(args []OpFlags) MatchResult {
	if len(args) != t.Operands {
		return MismatchOperandCount
	}

	for i, arg := range args {
		want := t.Types[i]

		// Every class bit the operand carries must be
		// acceptable to the template. Sizes are checked
		// separately below.
		if arg&^(want|MaskSize) != 0 {
			return MismatchInvalidOperand
		}

		// A template that names an exact register
		// (reg_eax, reg_cl, ...) only matches an operand
		// carrying the same requirement.
		if spec := want & MaskSpec; spec != 0 && arg&spec != spec {
			return MismatchWrongRegister
		}

		asize := arg & MaskSize
		wsize := want & MaskSize
		switch {
		case wsize == 0 || asize&wsize != 0:
			// Size agreement, or the template is unsized.
		case asize == 0:
			// Immediates may be unsized: whether the value
			// fits is the encoder's concern, not ours.
			// Bare memory operands must state a size.
			if arg&OpImmediate == 0 {
				return MismatchOperandSizeMissing
			}
		default:
			return MismatchOperandSize
		}
	}

	return Match
}

// byMnemonic indexes the flat template table,
// excluding the sentinel rows.
var byMnemonic = make(map[string][]*Template)

func init() {
	for i := range Templates {
		t := &Templates[i]
		if t.sentinel() {
			continue
		}

		name := t.Mnemonic()
		byMnemonic[name] = append(byMnemonic[name], t)
	}
}

// Lookup returns the templates for the given mnemonic,
// in table order, or nil if the mnemonic is unknown.
// The lookup is case-insensitive.
func Lookup(mnemonic string) []*Template {
	return byMnemonic[strings.ToLower(mnemonic)]
}

// Mnemonics returns the sorted list of all instruction
// mnemonics in the table.
func Mnemonics() []string {
	names := make([]string, 0, len(byMnemonic))
	for name := range byMnemonic {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
