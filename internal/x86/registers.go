// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"sort"
	"strings"
)

// Register describes one x86 register.
//
// The register tables in regtables.go group the
// registers into classes, ordered by hardware
// encoding: within each class array, a register's
// index is its Encoding.
type Register struct {
	Name     string   // The assembly name, in lower case.
	Type     OpFlags  // The operand mask the register satisfies, such as OpRegister|RegGPR|Bits32.
	Encoding uint8    // The hardware register number.
	EVEX     bool     // Whether the register is only addressable with an EVEX prefix.
	MinMode  uint8    // The smallest CPU mode (in bits) with the register.
	Aliases  []string // Any alternative names.
}

// Bits returns the register's width in bits, or 0 for
// the classes whose width depends on the CPU mode.
func (r *Register) Bits() int {
	switch r.Type & MaskSize {
	case Bits8:
		return 8
	case Bits16:
		return 16
	case Bits32:
		return 32
	case Bits64:
		return 64
	case Bits80:
		return 80
	case Bits128:
		return 128
	case Bits256:
		return 256
	case Bits512:
		return 512
	default:
		return 0
	}
}

func (r *Register) String() string { return r.Name }

// registerClasses lists each register class array
// under its operand type token. The token is the one
// a register of the class satisfies without any
// exact-register refinement.
var registerClasses = map[string][]*Register{
	"reg8":   Reg8[:],
	"reg16":  Reg16[:],
	"reg32":  Reg32[:],
	"reg64":  Reg64[:],
	"sreg":   Sregs[:],
	"creg":   Cregs[:],
	"dreg":   Dregs[:],
	"treg":   Tregs[:],
	"fpureg": FPURegs[:],
	"mmxreg": MMXRegs[:],
	"xmmreg": XMMRegs[:],
	"ymmreg": YMMRegs[:],
	"zmmreg": ZMMRegs[:],
	"bndreg": BoundRegs[:],
	"kreg":   OpmaskRegs[:],
}

// registersByName indexes every register, including
// the REX-only 8-bit forms and all aliases.
var registersByName = make(map[string]*Register)

func init() {
	index := func(regs []*Register) {
		for _, r := range regs {
			if r == nil {
				continue
			}

			registersByName[r.Name] = r
			for _, alias := range r.Aliases {
				registersByName[alias] = r
			}
		}
	}

	for _, regs := range registerClasses {
		index(regs)
	}

	// The REX-only byte registers shadow ah to bh at
	// the same encodings and live outside reg8.
	index(Reg8REX[:])
}

// RegisterByName returns the register with the given
// name or alias, or nil if there is none. The lookup
// is case-insensitive.
func RegisterByName(name string) *Register {
	return registersByName[strings.ToLower(name)]
}

// RegisterClass returns the registers of the class
// named by the given operand type token ("reg32",
// "xmmreg", ...), ordered by hardware encoding, or
// nil if the token does not name a register class.
func RegisterClass(token string) []*Register {
	return registerClasses[token]
}

// RegisterClassNames returns the operand type tokens
// that name a register class, sorted.
func RegisterClassNames() []string {
	names := make([]string, 0, len(registerClasses))
	for name := range registerClasses {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
