// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
)

// The JSON form of the database is self-describing:
// operand types, decorators, and flags appear as their
// symbolic names and recipes as hex, so other tools
// can consume the tables without this package's bit
// assignments.

// TemplateJSON is the interchange form of a Template.
type TemplateJSON struct {
	Mnemonic string        `json:"mnemonic"`
	Operands []OperandJSON `json:"operands,omitempty"`
	Code     string        `json:"code"`
	Flags    []string      `json:"flags"`
}

// OperandJSON is the interchange form of one operand
// position.
type OperandJSON struct {
	Type       string `json:"type"`
	Decorators string `json:"decorators,omitempty"`
}

// RegisterJSON is the interchange form of a Register.
type RegisterJSON struct {
	Name     string   `json:"name"`
	Class    string   `json:"class"`
	Encoding uint8    `json:"encoding"`
	EVEX     bool     `json:"evex,omitempty"`
	MinMode  uint8    `json:"min_mode"`
	Aliases  []string `json:"aliases,omitempty"`
}

// DatabaseJSON is the interchange form of the whole
// database.
type DatabaseJSON struct {
	Instructions []TemplateJSON `json:"instructions"`
	Registers    []RegisterJSON `json:"registers"`
}

// ToJSON converts a template to its interchange form.
func (t *Template) ToJSON() TemplateJSON {
	out := TemplateJSON{
		Mnemonic: t.Mnemonic(),
		Code:     hex.EncodeToString(t.Code.Bytes()),
		Flags:    strings.Split(t.CPUFlags().String(), ","),
	}

	for i := 0; i < t.Operands; i++ {
		out.Operands = append(out.Operands, OperandJSON{
			Type:       t.Types[i].String(),
			Decorators: t.Deco[i].String(),
		})
	}

	return out
}

// ToJSON converts a register to its interchange form.
// The class is the operand type token of the class
// array containing the register.
func (r *Register) ToJSON() RegisterJSON {
	return RegisterJSON{
		Name:     r.Name,
		Class:    r.classToken(),
		Encoding: r.Encoding,
		EVEX:     r.EVEX,
		MinMode:  r.MinMode,
		Aliases:  r.Aliases,
	}
}

func (r *Register) classToken() string {
	for _, token := range RegisterClassNames() {
		for _, other := range registerClasses[token] {
			if other == r {
				return token
			}
		}
	}

	// The REX-only byte registers are reg8 forms that
	// live outside the encoding-ordered array.
	return "reg8"
}

// EncodeJSON writes the full database to w: every
// template in table order, then every register,
// grouped by class in encoding order.
func EncodeJSON(w io.Writer) error {
	var db DatabaseJSON
	for i := range Templates {
		t := &Templates[i]
		if t.sentinel() {
			continue
		}

		db.Instructions = append(db.Instructions, t.ToJSON())
	}

	for _, token := range RegisterClassNames() {
		for _, r := range registerClasses[token] {
			if r == nil {
				continue
			}

			db.Registers = append(db.Registers, r.ToJSON())
		}
	}

	for _, r := range Reg8REX {
		db.Registers = append(db.Registers, r.ToJSON())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")

	return enc.Encode(db)
}

// DecodeJSON reads a database in the interchange form.
func DecodeJSON(r io.Reader) (*DatabaseJSON, error) {
	var db DatabaseJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&db); err != nil {
		return nil, fmt.Errorf("decoding database: %w", err)
	}

	return &db, nil
}

// Template converts the interchange form back,
// interning the recipe into the bytecode blob if it is
// not already present.
func (t TemplateJSON) Template() (Template, error) {
	op, err := ParseOp(t.Mnemonic)
	if err != nil {
		return Template{}, err
	}

	out := Template{Op: op, Operands: len(t.Operands)}
	if out.Operands > MaxOperands {
		return Template{}, fmt.Errorf("instruction %s has %d operands, more than the limit of %d", t.Mnemonic, out.Operands, MaxOperands)
	}

	for i, operand := range t.Operands {
		out.Types[i], err = ParseOpFlags(operand.Type)
		if err != nil {
			return Template{}, fmt.Errorf("instruction %s: %v", t.Mnemonic, err)
		}

		if operand.Decorators != "" {
			out.Deco[i], err = ParseDecoFlags(operand.Decorators)
			if err != nil {
				return Template{}, fmt.Errorf("instruction %s: %v", t.Mnemonic, err)
			}
		}
	}

	code, err := hex.DecodeString(t.Code)
	if err != nil {
		return Template{}, fmt.Errorf("instruction %s: invalid code %q: %v", t.Mnemonic, t.Code, err)
	}

	if err := validateCode(code); err != nil {
		return Template{}, fmt.Errorf("instruction %s: invalid code %q: %v", t.Mnemonic, t.Code, err)
	}

	flags, err := ParseFlags(strings.Join(t.Flags, ","))
	if err != nil {
		return Template{}, fmt.Errorf("instruction %s: %v", t.Mnemonic, err)
	}

	// Interning happens last, once the whole template is
	// known to be well formed.
	out.Code = internCode(code)
	out.Flags = internFlags(flags)

	return out, nil
}

// Register resolves the interchange form against the
// compiled-in register tables.
func (r RegisterJSON) Register() (*Register, error) {
	reg := RegisterByName(r.Name)
	if reg == nil {
		return nil, fmt.Errorf("unknown register %q", r.Name)
	}

	if reg.Encoding != r.Encoding {
		return nil, fmt.Errorf("register %s: encoding %d does not match table encoding %d", r.Name, r.Encoding, reg.Encoding)
	}

	return reg, nil
}

var (
	internMu   sync.Mutex
	internOnce sync.Once
	codeIndex  map[string]CodeRef
	flagsIndex map[Flags]FlagIndex
)

func buildInternIndexes() {
	codeIndex = make(map[string]CodeRef)
	for i := range Templates {
		t := &Templates[i]
		if t.sentinel() {
			continue
		}

		codeIndex[string(t.Code.Bytes())] = t.Code
	}

	flagsIndex = make(map[Flags]FlagIndex, len(FlagSets))
	for i, flags := range FlagSets {
		flagsIndex[flags] = FlagIndex(i)
	}
}

// internCode returns a reference for the recipe,
// appending it to the blob if no existing recipe has
// the same bytes.
func internCode(code []byte) CodeRef {
	internMu.Lock()
	defer internMu.Unlock()
	internOnce.Do(buildInternIndexes)

	if ref, ok := codeIndex[string(code)]; ok {
		return ref
	}

	ref := CodeRef(len(Bytecodes))
	Bytecodes = append(Bytecodes, code...)
	Bytecodes = append(Bytecodes, byte(CmdEnd))
	codeIndex[string(code)] = ref

	return ref
}

// internFlags returns the index of the flag set,
// appending it to FlagSets if it is new.
func internFlags(flags Flags) FlagIndex {
	internMu.Lock()
	defer internMu.Unlock()
	internOnce.Do(buildInternIndexes)

	if idx, ok := flagsIndex[flags]; ok {
		return idx
	}

	idx := FlagIndex(len(FlagSets))
	FlagSets = append(FlagSets, flags)
	flagsIndex[flags] = idx

	return idx
}
