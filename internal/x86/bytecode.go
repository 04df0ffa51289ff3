// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// The encoding recipe of a template is a short
// bytecode program stored in the shared Bytecodes
// blob. Each recipe is a sequence of commands, some
// with argument bytes, terminated by CmdEnd. An
// external encoder would interpret the commands in
// order to emit one instruction; here they are only
// stored, validated, and printed.

// CodeCmd is one bytecode command.
type CodeCmd byte

const (
	CmdEnd CodeCmd = 0x00 // End of recipe.

	// Literal opcode bytes. The command is followed by
	// one to four bytes to emit verbatim.
	CmdLit1 CodeCmd = 0x01
	CmdLit2 CodeCmd = 0x02
	CmdLit3 CodeCmd = 0x03
	CmdLit4 CodeCmd = 0x04

	// CmdPlusReg emits a base opcode byte with the
	// register number of an operand added in. Args:
	// operand index, base byte.
	CmdPlusReg CodeCmd = 0x08

	// CmdModRM emits a ModR/M byte (and any SIB and
	// displacement) with the reg field taken from one
	// operand and the r/m field from another. Args:
	// reg operand index, r/m operand index.
	CmdModRM CodeCmd = 0x10

	// CmdModRMDigit is CmdModRM with a constant opcode
	// extension in the reg field. Args: digit 0 to 7,
	// r/m operand index.
	CmdModRMDigit CodeCmd = 0x11

	// Immediates. Args: operand index.
	CmdImm8  CodeCmd = 0x18
	CmdImm16 CodeCmd = 0x19
	CmdImm32 CodeCmd = 0x1a
	CmdImm64 CodeCmd = 0x1b

	// Branch displacements and far pointers. Args:
	// operand index.
	CmdRel8  CodeCmd = 0x20
	CmdRel16 CodeCmd = 0x21
	CmdRel32 CodeCmd = 0x22
	CmdSeg   CodeCmd = 0x23 // The segment word of a far pointer.
	CmdRel   CodeCmd = 0x24 // A displacement sized by the operand size.

	// Size overrides and mandatory prefixes. No args.
	CmdO16  CodeCmd = 0x28 // 16-bit operand size.
	CmdO32  CodeCmd = 0x29 // 32-bit operand size.
	CmdO64  CodeCmd = 0x2a // 64-bit operand size (REX.W).
	CmdA16  CodeCmd = 0x2b // 16-bit address size.
	CmdA32  CodeCmd = 0x2c // 32-bit address size.
	CmdA64  CodeCmd = 0x2d // 64-bit address size.
	CmdNP   CodeCmd = 0x2e // No SIMD prefix permitted.
	CmdWait CodeCmd = 0x2f // An x87 wait prefix byte.

	// CmdVEX introduces a VEX prefix. Args: the map
	// selector, a W/L/pp byte, and the operand index
	// encoded in vvvv (0xff if vvvv is unused).
	CmdVEX CodeCmd = 0x30

	// CmdEVEX introduces an EVEX prefix. Args: the map
	// selector, a W/L'L/pp byte, the tuple type for
	// compressed displacement scaling, and the operand
	// index encoded in vvvv (0xff if unused).
	CmdEVEX CodeCmd = 0x31
)

// NoOperand marks an unused operand-index argument in
// CmdVEX and CmdEVEX.
const NoOperand = 0xff

// Tuple types for EVEX compressed displacement
// scaling.
const (
	TupleNone byte = iota
	TupleFV        // Full vector.
	TupleHV        // Half vector.
	TupleFVM       // Full vector memory.
	TupleT1S       // One scalar element.
	TupleT1F32     // One 32-bit scalar.
	TupleT1F64     // One 64-bit scalar.
	TupleT2        // Two elements.
	TupleT4        // Four elements.
	TupleT8        // Eight elements.
	TupleHVM       // Half vector memory.
	TupleQVM       // Quarter vector memory.
	TupleOVM       // Eighth vector memory.
	TupleM128      // 128-bit memory.
	TupleDUP       // MOVDDUP loads.
)

var tupleNames = map[byte]string{
	TupleNone:  "",
	TupleFV:    "fv",
	TupleHV:    "hv",
	TupleFVM:   "fvm",
	TupleT1S:   "t1s",
	TupleT1F32: "t1f32",
	TupleT1F64: "t1f64",
	TupleT2:    "t2",
	TupleT4:    "t4",
	TupleT8:    "t8",
	TupleHVM:   "hvm",
	TupleQVM:   "qvm",
	TupleOVM:   "ovm",
	TupleM128:  "m128",
	TupleDUP:   "dup",
}

// TupleByName maps the tuple spellings used in
// insns.dat encoding columns to their values.
var TupleByName = map[string]byte{
	"fv":    TupleFV,
	"hv":    TupleHV,
	"fvm":   TupleFVM,
	"t1s":   TupleT1S,
	"t1f32": TupleT1F32,
	"t1f64": TupleT1F64,
	"t2":    TupleT2,
	"t4":    TupleT4,
	"t8":    TupleT8,
	"hvm":   TupleHVM,
	"qvm":   TupleQVM,
	"ovm":   TupleOVM,
	"m128":  TupleM128,
	"dup":   TupleDUP,
}

// codeArgLen gives the number of argument bytes that
// follow each command.
func codeArgLen(cmd CodeCmd) (int, bool) {
	switch cmd {
	case CmdEnd,
		CmdO16, CmdO32, CmdO64,
		CmdA16, CmdA32, CmdA64,
		CmdNP, CmdWait:
		return 0, true
	case CmdLit1, CmdImm8, CmdImm16, CmdImm32, CmdImm64,
		CmdRel8, CmdRel16, CmdRel32, CmdSeg, CmdRel:
		return 1, true
	case CmdLit2, CmdPlusReg, CmdModRM, CmdModRMDigit:
		return 2, true
	case CmdLit3, CmdVEX:
		return 3, true
	case CmdLit4, CmdEVEX:
		return 4, true
	default:
		return 0, false
	}
}

// validateCode checks that code is a complete,
// unterminated recipe: known commands only, each with
// its full argument bytes, ending exactly at the end of
// the slice. CmdEnd must not appear; it is added when
// the recipe is stored in the blob.
func validateCode(code []byte) error {
	for i := 0; i < len(code); {
		cmd := CodeCmd(code[i])
		i++
		if cmd == CmdEnd {
			return fmt.Errorf("unexpected terminator at offset %d", i-1)
		}

		n, ok := codeArgLen(cmd)
		if !ok {
			return fmt.Errorf("invalid bytecode command %#02x at offset %d", byte(cmd), i-1)
		}

		if i+n > len(code) {
			return fmt.Errorf("command %#02x at offset %d is missing argument bytes", byte(cmd), i-1)
		}

		i += n
	}

	return nil
}

// CodeStep is one decoded command of a recipe.
type CodeStep struct {
	Cmd  CodeCmd
	Args []byte
}

// CodeRef locates an encoding recipe: it is the byte
// offset of the recipe's first command in Bytecodes.
type CodeRef uint32

// Steps decodes the recipe into its command sequence,
// excluding the terminating CmdEnd. It returns an
// error if the reference or the recipe is malformed.
func (c CodeRef) Steps() ([]CodeStep, error) {
	if int(c) >= len(Bytecodes) {
		return nil, fmt.Errorf("code offset %d outside the bytecode blob (%d bytes)", c, len(Bytecodes))
	}

	var steps []CodeStep
	i := int(c)
	for {
		if i >= len(Bytecodes) {
			return nil, fmt.Errorf("truncated recipe at offset %d", c)
		}

		cmd := CodeCmd(Bytecodes[i])
		i++
		if cmd == CmdEnd {
			return steps, nil
		}

		n, ok := codeArgLen(cmd)
		if !ok {
			return nil, fmt.Errorf("invalid bytecode command %#02x at offset %d", byte(cmd), i-1)
		}

		if i+n > len(Bytecodes) {
			return nil, fmt.Errorf("truncated recipe at offset %d", c)
		}

		steps = append(steps, CodeStep{Cmd: cmd, Args: Bytecodes[i : i+n : i+n]})
		i += n
	}
}

// Bytes returns the raw recipe, without the
// terminating CmdEnd. It panics if the reference is
// malformed; the table invariants rule that out for
// generated references.
func (c CodeRef) Bytes() []byte {
	steps, err := c.Steps()
	if err != nil {
		panic(err)
	}

	n := 0
	for _, step := range steps {
		n += 1 + len(step.Args)
	}

	return Bytecodes[c : int(c)+n : int(c)+n]
}

// String renders the recipe in a compact notation
// similar to an opcode reference: literal bytes in
// hex, "/r" and "/3" for ModR/M forms, "ib" to "iq"
// for immediates, prefixed by any size overrides.
func (c CodeRef) String() string {
	steps, err := c.Steps()
	if err != nil {
		return fmt.Sprintf("bad code (%v)", err)
	}

	var parts []string
	for _, step := range steps {
		parts = append(parts, step.String())
	}

	return strings.Join(parts, " ")
}

func (s CodeStep) String() string {
	switch s.Cmd {
	case CmdLit1, CmdLit2, CmdLit3, CmdLit4:
		var b []string
		for _, a := range s.Args {
			b = append(b, fmt.Sprintf("%02x", a))
		}

		return strings.Join(b, " ")
	case CmdPlusReg:
		return fmt.Sprintf("%02x+r%d", s.Args[1], s.Args[0])
	case CmdModRM:
		return fmt.Sprintf("/r%d:%d", s.Args[0], s.Args[1])
	case CmdModRMDigit:
		return fmt.Sprintf("/%d:%d", s.Args[0], s.Args[1])
	case CmdImm8:
		return fmt.Sprintf("ib%d", s.Args[0])
	case CmdImm16:
		return fmt.Sprintf("iw%d", s.Args[0])
	case CmdImm32:
		return fmt.Sprintf("id%d", s.Args[0])
	case CmdImm64:
		return fmt.Sprintf("iq%d", s.Args[0])
	case CmdRel8:
		return fmt.Sprintf("rel8:%d", s.Args[0])
	case CmdRel16:
		return fmt.Sprintf("rel16:%d", s.Args[0])
	case CmdRel32:
		return fmt.Sprintf("rel32:%d", s.Args[0])
	case CmdRel:
		return fmt.Sprintf("rel:%d", s.Args[0])
	case CmdSeg:
		return fmt.Sprintf("seg:%d", s.Args[0])
	case CmdO16:
		return "o16"
	case CmdO32:
		return "o32"
	case CmdO64:
		return "o64"
	case CmdA16:
		return "a16"
	case CmdA32:
		return "a32"
	case CmdA64:
		return "a64"
	case CmdNP:
		return "np"
	case CmdWait:
		return "wait"
	case CmdVEX:
		s2 := fmt.Sprintf("vex.m%d.%02x", s.Args[0], s.Args[1])
		if s.Args[2] != NoOperand {
			s2 += fmt.Sprintf(".v%d", s.Args[2])
		}

		return s2
	case CmdEVEX:
		s2 := fmt.Sprintf("evex.m%d.%02x", s.Args[0], s.Args[1])
		if name := tupleNames[s.Args[2]]; name != "" {
			s2 += "." + name
		}

		if s.Args[3] != NoOperand {
			s2 += fmt.Sprintf(".v%d", s.Args[3])
		}

		return s2
	default:
		return fmt.Sprintf("cmd(%#02x)", byte(s.Cmd))
	}
}
