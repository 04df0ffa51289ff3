// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86dat parses the .dat source files that the
// x86 tables are generated from.
//
// The two formats are line-oriented: a semicolon
// starts a comment, blank lines are ignored, and each
// remaining line describes one instruction template or
// one register (or register range).
package x86dat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"x86db.dev/x86db/internal/x86"
)

// Instruction is one parsed instruction template line.
type Instruction struct {
	Mnemonic string    // The instruction mnemonic, in lower case.
	Operands []Operand // The operand types, in order.
	Tag      string    // The operand binding tag, one letter per operand.
	Tuple    byte      // The EVEX tuple type, or x86.TupleNone.
	Code     []byte    // The compiled encoding recipe, without the terminator.
	Flags    x86.Flags // The CPU and attribute flags.
	Line     int       // The source line number.
}

// Operand is one operand position of a template line.
type Operand struct {
	Types x86.OpFlags
	Deco  x86.DecoFlags
}

// Register is one parsed register line, after range
// expansion.
type Register struct {
	Name     string
	Type     x86.OpFlags // The operand type token's bitmask.
	Class    string      // The class array token, such as "reg32".
	Encoding uint8
	Long     bool // Whether the register needs 64-bit mode.
	EVEX     bool // Whether the register needs an EVEX prefix.
	Aliases  []string
	Line     int
}

// ParseInstructions parses an insns.dat stream.
func ParseInstructions(r io.Reader) ([]*Instruction, error) {
	var out []*Instruction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := trimComment(scanner.Text())
		if text == "" {
			continue
		}

		insn, err := parseInstruction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}

		insn.Line = line
		out = append(out, insn)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseInstruction(text string) (*Instruction, error) {
	open := strings.IndexByte(text, '[')
	end := strings.IndexByte(text, ']')
	if open < 0 || end < open {
		return nil, fmt.Errorf("no [codes] section in %q", text)
	}

	head := strings.Fields(text[:open])
	if len(head) != 2 {
		return nil, fmt.Errorf("want mnemonic and operands before the codes, got %q", text[:open])
	}

	insn := &Instruction{Mnemonic: strings.ToLower(head[0])}
	if head[1] != "void" {
		for _, field := range strings.Split(head[1], ",") {
			operand, err := parseOperand(field)
			if err != nil {
				return nil, err
			}

			insn.Operands = append(insn.Operands, operand)
		}
	}

	if len(insn.Operands) > x86.MaxOperands {
		return nil, fmt.Errorf("%d operands, more than the limit of %d", len(insn.Operands), x86.MaxOperands)
	}

	// The codes section is "codes", "tag: codes", or
	// "tag:tuple: codes".
	section := text[open+1 : end]
	var tag, tuple, codes string
	switch parts := strings.Split(section, ":"); len(parts) {
	case 1:
		codes = parts[0]
	case 2:
		tag, codes = parts[0], parts[1]
	case 3:
		tag, tuple, codes = parts[0], parts[1], parts[2]
	default:
		return nil, fmt.Errorf("malformed codes section %q", section)
	}

	insn.Tag = strings.TrimSpace(tag)
	if insn.Tag != "" && len(insn.Tag) != len(insn.Operands) {
		return nil, fmt.Errorf("tag %q does not cover %d operands", insn.Tag, len(insn.Operands))
	}

	if tuple != "" {
		t, ok := x86.TupleByName[strings.TrimSpace(tuple)]
		if !ok {
			return nil, fmt.Errorf("invalid tuple type %q", tuple)
		}

		insn.Tuple = t
	}

	code, err := compileCodes(strings.Fields(codes), insn.Tag, insn.Tuple)
	if err != nil {
		return nil, err
	}

	insn.Code = code

	flags, err := x86.ParseFlags(strings.TrimSpace(text[end+1:]))
	if err != nil {
		return nil, err
	}

	insn.Flags = flags

	return insn, nil
}

func parseOperand(field string) (Operand, error) {
	var operand Operand
	var types, decos []string
	for _, part := range strings.Split(field, "|") {
		if x86.IsDecorator(part) {
			decos = append(decos, part)
		} else {
			types = append(types, part)
		}
	}

	flags, err := x86.ParseOpFlags(strings.Join(types, "|"))
	if err != nil {
		return Operand{}, err
	}

	operand.Types = flags
	if len(decos) > 0 {
		deco, err := x86.ParseDecoFlags(strings.Join(decos, "|"))
		if err != nil {
			return Operand{}, err
		}

		operand.Deco = deco
	}

	return operand, nil
}

// rangeName matches register names for range
// expansion, splitting the trailing number out of
// names like "xmm15" and "r8b".
var rangeName = regexp.MustCompile(`^([a-z]+)(\d+)([a-z]*)$`)

// ParseRegisters parses a regs.dat stream, expanding
// ranges such as "xmm8-xmm15" into one Register per
// name.
func ParseRegisters(r io.Reader) ([]*Register, error) {
	var out []*Register
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := trimComment(scanner.Text())
		if text == "" {
			continue
		}

		regs, err := parseRegisterLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}

		for _, reg := range regs {
			reg.Line = line
		}

		out = append(out, regs...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseRegisterLine(text string) ([]*Register, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 && len(fields) != 5 {
		return nil, fmt.Errorf("want 4 or 5 columns, got %d in %q", len(fields), text)
	}

	typ, err := x86.ParseOpFlags(fields[1])
	if err != nil {
		return nil, err
	}

	number, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid register number %q", fields[3])
	}

	proto := Register{Type: typ, Class: fields[2]}
	if len(fields) == 5 {
		for _, flag := range strings.Split(fields[4], ",") {
			switch {
			case flag == "long":
				proto.Long = true
			case flag == "evex":
				proto.EVEX = true
			case strings.HasPrefix(flag, "aliases="):
				proto.Aliases = strings.Split(flag[len("aliases="):], ":")
			default:
				return nil, fmt.Errorf("invalid register flag %q", flag)
			}
		}
	}

	names, err := expandRange(fields[0])
	if err != nil {
		return nil, err
	}

	out := make([]*Register, len(names))
	for i, name := range names {
		reg := proto
		reg.Name = name
		reg.Encoding = uint8(number + i)
		out[i] = &reg
	}

	return out, nil
}

func expandRange(name string) ([]string, error) {
	first, last, ok := strings.Cut(name, "-")
	if !ok {
		return []string{name}, nil
	}

	fm := rangeName.FindStringSubmatch(first)
	lm := rangeName.FindStringSubmatch(last)
	if fm == nil || lm == nil || fm[1] != lm[1] || fm[3] != lm[3] {
		return nil, fmt.Errorf("malformed register range %q", name)
	}

	lo, _ := strconv.Atoi(fm[2])
	hi, _ := strconv.Atoi(lm[2])
	if lo > hi {
		return nil, fmt.Errorf("descending register range %q", name)
	}

	names := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		names = append(names, fmt.Sprintf("%s%d%s", fm[1], i, fm[3]))
	}

	return names, nil
}

func trimComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}
