// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// OpFlags describes the set of operand types a
// template position accepts, as a bitmask. The mask
// for a concrete operand (a parsed argument) is a
// subset of the mask of any template position that
// accepts it, sizes aside.
type OpFlags uint64

const (
	// Operand classes.
	OpRegister OpFlags = 1 << iota
	OpImmediate
	OpMemory

	// Register classes.
	RegGPR
	RegSegment
	RegControl
	RegDebug
	RegTest
	RegFPU
	RegMMX
	RegXMM
	RegYMM
	RegZMM
	RegBound
	RegOpmask

	// Operand sizes, in bits.
	Bits8
	Bits16
	Bits32
	Bits64
	Bits80
	Bits128
	Bits256
	Bits512

	// Immediate and branch-target refinements.
	ImmUnity // The constant 1, as in the one-bit shift forms.
	ImmSByte // A byte immediate, sign-extended to the operand size.
	ImmNear  // A near branch target.
	ImmShort // A short (8-bit displacement) branch target.
	ImmFar   // A far (segment:offset) branch target.

	// Reversed-direction marker for the x87 "to" forms.
	OpTo

	// Exact-register requirements.
	SpecAccum // al, ax, eax or rax, chosen by size.
	SpecCount // cl, cx or ecx, chosen by size.
	SpecData  // dx.
	SpecST0   // st0.
	SpecXMM0  // xmm0.
	SpecCS
	SpecSS
	SpecDS
	SpecES
	SpecFS
	SpecGS
)

const (
	// Masks for each group of bits above.
	MaskClass    = OpRegister | OpImmediate | OpMemory
	MaskRegClass = RegGPR | RegSegment | RegControl | RegDebug | RegTest | RegFPU | RegMMX | RegXMM | RegYMM | RegZMM | RegBound | RegOpmask
	MaskSize     = Bits8 | Bits16 | Bits32 | Bits64 | Bits80 | Bits128 | Bits256 | Bits512
	MaskImm      = ImmUnity | ImmSByte | ImmNear | ImmShort | ImmFar
	MaskSpec     = SpecAccum | SpecCount | SpecData | SpecST0 | SpecXMM0 | SpecCS | SpecSS | SpecDS | SpecES | SpecFS | SpecGS

	// Common combinations.
	OpRegMem = OpRegister | OpMemory
)

// opFlagNames maps each operand type token, as spelt
// in insns.dat and in the JSON form, to its bitmask.
// The reverse mapping used by OpFlags.String prefers
// earlier entries of opFlagOrder on ties.
var opFlagNames = map[string]OpFlags{
	"void": 0,

	"imm":        OpImmediate,
	"imm8":       OpImmediate | Bits8,
	"imm16":      OpImmediate | Bits16,
	"imm32":      OpImmediate | Bits32,
	"imm64":      OpImmediate | Bits64,
	"unity":      OpImmediate | ImmUnity,
	"sbyteword":  OpImmediate | ImmSByte | Bits16,
	"sbytedword": OpImmediate | ImmSByte | Bits32,

	"rel":   OpImmediate | ImmNear,
	"rel8":  OpImmediate | ImmShort | Bits8,
	"rel16": OpImmediate | ImmNear | Bits16,
	"rel32": OpImmediate | ImmNear | Bits32,
	"ptr":   OpImmediate | ImmFar,

	"mem":    OpMemory,
	"mem8":   OpMemory | Bits8,
	"mem16":  OpMemory | Bits16,
	"mem32":  OpMemory | Bits32,
	"mem64":  OpMemory | Bits64,
	"mem80":  OpMemory | Bits80,
	"mem128": OpMemory | Bits128,
	"mem256": OpMemory | Bits256,
	"mem512": OpMemory | Bits512,

	"reg8":  OpRegister | RegGPR | Bits8,
	"reg16": OpRegister | RegGPR | Bits16,
	"reg32": OpRegister | RegGPR | Bits32,
	"reg64": OpRegister | RegGPR | Bits64,
	"rm8":   OpRegMem | RegGPR | Bits8,
	"rm16":  OpRegMem | RegGPR | Bits16,
	"rm32":  OpRegMem | RegGPR | Bits32,
	"rm64":  OpRegMem | RegGPR | Bits64,

	"reg_al":  OpRegister | RegGPR | Bits8 | SpecAccum,
	"reg_ax":  OpRegister | RegGPR | Bits16 | SpecAccum,
	"reg_eax": OpRegister | RegGPR | Bits32 | SpecAccum,
	"reg_rax": OpRegister | RegGPR | Bits64 | SpecAccum,
	"reg_cl":  OpRegister | RegGPR | Bits8 | SpecCount,
	"reg_cx":  OpRegister | RegGPR | Bits16 | SpecCount,
	"reg_ecx": OpRegister | RegGPR | Bits32 | SpecCount,
	"reg_dx":  OpRegister | RegGPR | Bits16 | SpecData,

	"sreg":   OpRegister | RegSegment | Bits16,
	"reg_cs": OpRegister | RegSegment | Bits16 | SpecCS,
	"reg_ss": OpRegister | RegSegment | Bits16 | SpecSS,
	"reg_ds": OpRegister | RegSegment | Bits16 | SpecDS,
	"reg_es": OpRegister | RegSegment | Bits16 | SpecES,
	"reg_fs": OpRegister | RegSegment | Bits16 | SpecFS,
	"reg_gs": OpRegister | RegSegment | Bits16 | SpecGS,

	"creg": OpRegister | RegControl,
	"dreg": OpRegister | RegDebug,
	"treg": OpRegister | RegTest,

	"fpureg": OpRegister | RegFPU | Bits80,
	"fpu0":   OpRegister | RegFPU | Bits80 | SpecST0,

	"mmxreg":  OpRegister | RegMMX | Bits64,
	"mmxrm64": OpRegMem | RegMMX | Bits64,

	"xmmreg":   OpRegister | RegXMM | Bits128,
	"xmm0":     OpRegister | RegXMM | Bits128 | SpecXMM0,
	"xmmrm32":  OpRegMem | RegXMM | Bits32,
	"xmmrm64":  OpRegMem | RegXMM | Bits64,
	"xmmrm128": OpRegMem | RegXMM | Bits128,

	"ymmreg":   OpRegister | RegYMM | Bits256,
	"ymmrm256": OpRegMem | RegYMM | Bits256,

	"zmmreg":   OpRegister | RegZMM | Bits512,
	"zmmrm512": OpRegMem | RegZMM | Bits512,

	"bndreg": OpRegister | RegBound,

	"kreg":  OpRegister | RegOpmask,
	"krm8":  OpRegMem | RegOpmask | Bits8,
	"krm16": OpRegMem | RegOpmask | Bits16,
	"krm32": OpRegMem | RegOpmask | Bits32,
	"krm64": OpRegMem | RegOpmask | Bits64,

	// Modifiers that combine with a base token.
	"near":  ImmNear,
	"short": ImmShort,
	"far":   ImmFar,
	"to":    OpTo,
}

// opFlagModifiers are the tokens in opFlagNames that
// refine a base token rather than stand alone.
var opFlagModifiers = map[string]bool{
	"near":  true,
	"short": true,
	"far":   true,
	"to":    true,
}

// opFlagOrder lists the standalone tokens, most
// specific first, for use by OpFlags.String.
var opFlagOrder []string

func init() {
	for name := range opFlagNames {
		if name == "void" || opFlagModifiers[name] {
			continue
		}

		opFlagOrder = append(opFlagOrder, name)
	}

	// Sort by descending popcount, then by name for
	// determinism, so that (for example) reg_al is
	// preferred over reg8 when both match exactly.
	sort.Slice(opFlagOrder, func(i, j int) bool {
		a, b := opFlagOrder[i], opFlagOrder[j]
		pa := bits.OnesCount64(uint64(opFlagNames[a]))
		pb := bits.OnesCount64(uint64(opFlagNames[b]))
		if pa != pb {
			return pa > pb
		}

		return a < b
	})
}

// ParseOpFlags parses an operand type description,
// such as "rm32" or "fpureg|to", returning the
// corresponding bitmask.
func ParseOpFlags(s string) (OpFlags, error) {
	var flags OpFlags
	seenBase := false
	for _, part := range strings.Split(s, "|") {
		bits, ok := opFlagNames[part]
		if !ok {
			return 0, fmt.Errorf("invalid operand type %q in %q", part, s)
		}

		if !opFlagModifiers[part] {
			if seenBase && part != "void" {
				return 0, fmt.Errorf("invalid operand type %q: multiple base tokens", s)
			}

			seenBase = true
		}

		flags |= bits
	}

	if !seenBase {
		return 0, fmt.Errorf("invalid operand type %q: no base token", s)
	}

	return flags, nil
}

// String returns the operand type in the notation of
// ParseOpFlags.
func (f OpFlags) String() string {
	if f == 0 {
		return "void"
	}

	// Exact token, possibly with modifiers stripped.
	mods := f & (MaskImm | OpTo)
	base := f
	var suffix []string
	for _, mod := range []struct {
		name string
		bits OpFlags
	}{
		{"near", ImmNear},
		{"short", ImmShort},
		{"far", ImmFar},
		{"to", OpTo},
	} {
		if mods&mod.bits == 0 {
			continue
		}

		// Only strip the modifier if no token spells
		// the full mask (rel8 includes "short").
		if _, ok := exactOpFlagToken(base); ok {
			break
		}

		base &^= mod.bits
		suffix = append(suffix, mod.name)
	}

	if name, ok := exactOpFlagToken(base); ok {
		if len(suffix) == 0 {
			return name
		}

		return name + "|" + strings.Join(suffix, "|")
	}

	return fmt.Sprintf("opflags(%#x)", uint64(f))
}

func exactOpFlagToken(f OpFlags) (string, bool) {
	for _, name := range opFlagOrder {
		if opFlagNames[name] == f {
			return name, true
		}
	}

	return "", false
}
