// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command gen-x86 generates the x86 instruction and
// register tables from the .dat sources.
//
// It produces three files in the output directory:
// ops.go with the mnemonic enumeration, tables.go with
// the template table, the flag sets, and the bytecode
// blob, and regtables.go with the register tables.
package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"x86db.dev/x86db/internal/x86"
	"x86db.dev/x86db/internal/x86/x86dat"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen-x86: ")

	var data, out string
	flag.StringVar(&data, "data", "data", "directory with insns.dat and regs.dat")
	flag.StringVar(&out, "out", ".", "directory to write the generated files to")
	flag.Parse()

	if err := generate(data, out); err != nil {
		log.Fatal(err)
	}
}

func generate(data, out string) error {
	insns, err := readInstructions(filepath.Join(data, "insns.dat"))
	if err != nil {
		return err
	}

	regs, err := readRegisters(filepath.Join(data, "regs.dat"))
	if err != nil {
		return err
	}

	files := []struct {
		name  string
		model any
	}{
		{"ops.go", opsModel(insns)},
		{"tables.go", tablesModel(insns)},
		{"regtables.go", regsModel(regs)},
	}

	for _, file := range files {
		if err := writeFile(filepath.Join(out, file.name), file.name+".tmpl", file.model); err != nil {
			return err
		}
	}

	return nil
}

func readInstructions(name string) ([]*x86dat.Instruction, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	insns, err := x86dat.ParseInstructions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}

	// Group the templates by mnemonic, keeping the
	// source order within each group.
	sort.SliceStable(insns, func(i, j int) bool {
		return insns[i].Mnemonic < insns[j].Mnemonic
	})

	return insns, nil
}

func readRegisters(name string) ([]*x86dat.Register, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	regs, err := x86dat.ParseRegisters(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}

	return regs, nil
}

func writeFile(name, tmpl string, model any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, model); err != nil {
		return fmt.Errorf("executing %s: %v", tmpl, err)
	}

	pretty, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %v", name, err)
	}

	if err := os.WriteFile(name, pretty, 0644); err != nil {
		return err
	}

	return nil
}

// goName turns a mnemonic into its Op constant suffix.
func goName(mnemonic string) string {
	return strings.ToUpper(mnemonic[:1]) + mnemonic[1:]
}

// Ops is the view model for ops.go.
type Ops struct {
	Ops []OpName
}

type OpName struct {
	Name   string
	GoName string
}

func opsModel(insns []*x86dat.Instruction) *Ops {
	model := new(Ops)
	seen := make(map[string]bool)
	for _, insn := range insns {
		if seen[insn.Mnemonic] {
			continue
		}

		seen[insn.Mnemonic] = true
		model.Ops = append(model.Ops, OpName{
			Name:   insn.Mnemonic,
			GoName: goName(insn.Mnemonic),
		})
	}

	return model
}

// Tables is the view model for tables.go.
type Tables struct {
	Chunks   []Chunk
	FlagSets []FlagSet
	Groups   []Group
}

// Chunk is one recipe in the bytecode blob.
type Chunk struct {
	Offset int
	Bytes  string // The recipe bytes as Go source, terminator included.
	Desc   string // The first template using the recipe.
}

type FlagSet struct {
	Index int
	Text  string
}

// Group is the set of templates for one mnemonic.
type Group struct {
	Mnemonic string
	Rows     []string // One Template literal per row.
}

func tablesModel(insns []*x86dat.Instruction) *Tables {
	model := new(Tables)

	offsets := make(map[string]int)
	blobLen := 0
	internCode := func(insn *x86dat.Instruction) int {
		key := string(insn.Code)
		if off, ok := offsets[key]; ok {
			return off
		}

		off := blobLen
		offsets[key] = off
		blobLen += len(insn.Code) + 1

		var src strings.Builder
		for _, b := range insn.Code {
			fmt.Fprintf(&src, "0x%02x, ", b)
		}

		src.WriteString("0x00,")
		model.Chunks = append(model.Chunks, Chunk{
			Offset: off,
			Bytes:  src.String(),
			Desc:   describe(insn),
		})

		return off
	}

	flagIndexes := make(map[x86.Flags]int)
	internFlags := func(flags x86.Flags) int {
		if idx, ok := flagIndexes[flags]; ok {
			return idx
		}

		idx := len(model.FlagSets)
		flagIndexes[flags] = idx
		model.FlagSets = append(model.FlagSets, FlagSet{Index: idx, Text: flags.String()})

		return idx
	}

	for _, insn := range insns {
		code := internCode(insn)
		flags := internFlags(insn.Flags)

		if n := len(model.Groups); n == 0 || model.Groups[n-1].Mnemonic != insn.Mnemonic {
			model.Groups = append(model.Groups, Group{Mnemonic: insn.Mnemonic})
		}

		group := &model.Groups[len(model.Groups)-1]
		group.Rows = append(group.Rows, rowLiteral(insn, code, flags))
	}

	return model
}

func describe(insn *x86dat.Instruction) string {
	var s strings.Builder
	s.WriteString(insn.Mnemonic)
	for i, operand := range insn.Operands {
		if i == 0 {
			s.WriteByte(' ')
		} else {
			s.WriteString(", ")
		}

		s.WriteString(operand.Types.String())
	}

	return s.String()
}

// rowLiteral renders one Template composite literal.
// Operand types and flags appear in their token form
// so the table reads like the .dat source.
func rowLiteral(insn *x86dat.Instruction, code, flags int) string {
	var s strings.Builder
	fmt.Fprintf(&s, "{Op: Op%s", goName(insn.Mnemonic))
	if len(insn.Operands) > 0 {
		fmt.Fprintf(&s, ", Operands: %d", len(insn.Operands))

		types := make([]string, len(insn.Operands))
		decos := make([]string, len(insn.Operands))
		hasDeco := false
		for i, operand := range insn.Operands {
			types[i] = fmt.Sprintf("%q", operand.Types.String())
			decos[i] = fmt.Sprintf("%q", operand.Deco.String())
			if operand.Deco != 0 {
				hasDeco = true
			}
		}

		fmt.Fprintf(&s, ", Types: opflags(%s)", strings.Join(types, ", "))
		if hasDeco {
			fmt.Fprintf(&s, ", Deco: decoflags(%s)", strings.Join(decos, ", "))
		}
	}

	fmt.Fprintf(&s, ", Code: 0x%02x, Flags: %d},", code, flags)

	return s.String()
}

// Registers is the view model for regtables.go.
type Registers struct {
	Vars    []string // One Register literal per register.
	Classes []Class
}

// Class is one register class array.
type Class struct {
	ArrayName string
	Size      int
	Vars      []string
}

// classArrays maps the class column of regs.dat to the
// array variable and its fixed size.
var classArrays = []struct {
	token string
	array string
	size  int
}{
	{"reg8", "Reg8", 16},
	{"reg8rex", "Reg8REX", 4},
	{"reg16", "Reg16", 16},
	{"reg32", "Reg32", 16},
	{"reg64", "Reg64", 16},
	{"sreg", "Sregs", 6},
	{"creg", "Cregs", 16},
	{"dreg", "Dregs", 16},
	{"treg", "Tregs", 8},
	{"fpureg", "FPURegs", 8},
	{"mmxreg", "MMXRegs", 8},
	{"xmmreg", "XMMRegs", 32},
	{"ymmreg", "YMMRegs", 32},
	{"zmmreg", "ZMMRegs", 32},
	{"bndreg", "BoundRegs", 4},
	{"kreg", "OpmaskRegs", 8},
}

func regsModel(regs []*x86dat.Register) *Registers {
	model := new(Registers)
	byClass := make(map[string][]*x86dat.Register)
	for _, reg := range regs {
		model.Vars = append(model.Vars, registerLiteral(reg))
		byClass[reg.Class] = append(byClass[reg.Class], reg)
	}

	for _, class := range classArrays {
		vars := make([]string, 0, class.size)
		for _, reg := range byClass[class.token] {
			vars = append(vars, strings.ToUpper(reg.Name))
		}

		if len(vars) != class.size {
			log.Fatalf("register class %s has %d registers, want %d", class.token, len(vars), class.size)
		}

		model.Classes = append(model.Classes, Class{
			ArrayName: class.array,
			Size:      class.size,
			Vars:      vars,
		})
	}

	return model
}

func registerLiteral(reg *x86dat.Register) string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s = &Register{Name: %q, Type: opflag(%q), Encoding: %d",
		strings.ToUpper(reg.Name), reg.Name, reg.Type.String(), reg.Encoding)
	if reg.EVEX {
		s.WriteString(", EVEX: true")
	}

	minMode := 16
	if reg.Long {
		minMode = 64
	}

	fmt.Fprintf(&s, ", MinMode: %d", minMode)
	if len(reg.Aliases) > 0 {
		fmt.Fprintf(&s, ", Aliases: []string{")
		for i, alias := range reg.Aliases {
			if i > 0 {
				s.WriteString(", ")
			}

			fmt.Fprintf(&s, "%q", alias)
		}

		s.WriteString("}")
	}

	s.WriteString("}")

	return s.String()
}
