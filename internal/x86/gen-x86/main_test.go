// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"

	"x86db.dev/x86db/internal/x86"
	"x86db.dev/x86db/internal/x86/x86dat"
)

func parseInsns(t *testing.T, data string) []*x86dat.Instruction {
	t.Helper()
	insns, err := x86dat.ParseInstructions(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseInstructions(): %v", err)
	}

	return insns
}

func opflagFor(t *testing.T, token string) x86.OpFlags {
	t.Helper()
	flags, err := x86.ParseOpFlags(token)
	if err != nil {
		t.Fatalf("ParseOpFlags(%q): %v", token, err)
	}

	return flags
}

func TestGoName(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     string
	}{
		{"add", "Add"},
		{"cmpxchg8b", "Cmpxchg8b"},
		{"vaddps", "Vaddps"},
	}

	for _, test := range tests {
		if got := goName(test.mnemonic); got != test.want {
			t.Errorf("goName(%q) = %q, want %q", test.mnemonic, got, test.want)
		}
	}
}

func TestOpsModel(t *testing.T) {
	insns := parseInsns(t, `
ADD  rm8,reg8   [mr: 00 /r]  8086,LOCK,SM
ADD  reg8,rm8   [rm: 02 /r]  8086,SM
RET  void       [	c3]   8086
`)

	got := opsModel(insns)
	want := &Ops{Ops: []OpName{
		{Name: "add", GoName: "Add"},
		{Name: "ret", GoName: "Ret"},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("opsModel(): (-want, +got)\n%s", diff)
	}
}

func TestTablesModel(t *testing.T) {
	// retn compiles to the bytes of ret, so the blob
	// stores that recipe once.
	insns := parseInsns(t, `
CLC   void           [	f8]          8086
CMC   void           [	f5]          8086
RET   void           [	c3]          8086
RETN  void           [	c3]          8086
XCHG  reg_ax,reg16   [-r: o16 90+r]  8086,ND
`)

	got := tablesModel(insns)

	chunks := []Chunk{
		{Offset: 0, Bytes: "0x01, 0xf8, 0x00,", Desc: "clc"},
		{Offset: 3, Bytes: "0x01, 0xf5, 0x00,", Desc: "cmc"},
		{Offset: 6, Bytes: "0x01, 0xc3, 0x00,", Desc: "ret"},
		{Offset: 9, Bytes: "0x28, 0x08, 0x01, 0x90, 0x00,", Desc: "xchg reg_ax, reg16"},
	}
	if diff := cmp.Diff(chunks, got.Chunks); diff != "" {
		t.Fatalf("tablesModel() chunks: (-want, +got)\n%s", diff)
	}

	flagSets := []FlagSet{
		{Index: 0, Text: "8086"},
		{Index: 1, Text: "8086,ND"},
	}
	if diff := cmp.Diff(flagSets, got.FlagSets); diff != "" {
		t.Fatalf("tablesModel() flag sets: (-want, +got)\n%s", diff)
	}

	var rows []string
	for _, group := range got.Groups {
		rows = append(rows, group.Mnemonic+":")
		rows = append(rows, group.Rows...)
	}

	want := strings.Join([]string{
		"clc:",
		"{Op: OpClc, Code: 0x00, Flags: 0},",
		"cmc:",
		"{Op: OpCmc, Code: 0x03, Flags: 0},",
		"ret:",
		"{Op: OpRet, Code: 0x06, Flags: 0},",
		"retn:",
		"{Op: OpRetn, Code: 0x06, Flags: 0},",
		"xchg:",
		`{Op: OpXchg, Operands: 2, Types: opflags("reg_ax", "reg16"), Code: 0x09, Flags: 1},`,
	}, "\n")

	if got := strings.Join(rows, "\n"); got != want {
		t.Fatalf("tablesModel() rows:\n%s", diff.Format(got, want))
	}
}

func TestTablesModelDecorators(t *testing.T) {
	insns := parseInsns(t, `
VADDPS  zmmreg|mask|z,zmmreg,zmmrm512|b32|er  [rvm:fv: evex.nds.512.0f.w0 58 /r]  FUTURE,AVX512,SM
`)

	got := tablesModel(insns)
	want := `{Op: OpVaddps, Operands: 3, Types: opflags("zmmreg", "zmmreg", "zmmrm512"), Deco: decoflags("mask|z", "", "b32|er"), Code: 0x00, Flags: 0},`
	if len(got.Groups) != 1 || len(got.Groups[0].Rows) != 1 {
		t.Fatalf("tablesModel() produced %d groups", len(got.Groups))
	}

	if row := got.Groups[0].Rows[0]; row != want {
		t.Fatalf("tablesModel() row:\n%s", diff.Format(row, want))
	}
}

func TestRegisterLiteral(t *testing.T) {
	tests := []struct {
		reg  *x86dat.Register
		want string
	}{
		{
			reg:  &x86dat.Register{Name: "eax", Type: opflagFor(t, "reg_eax"), Class: "reg32", Encoding: 0},
			want: `EAX = &Register{Name: "eax", Type: opflag("reg_eax"), Encoding: 0, MinMode: 16}`,
		},
		{
			reg:  &x86dat.Register{Name: "st0", Type: opflagFor(t, "fpu0"), Class: "fpureg", Encoding: 0, Aliases: []string{"st"}},
			want: `ST0 = &Register{Name: "st0", Type: opflag("fpu0"), Encoding: 0, MinMode: 16, Aliases: []string{"st"}}`,
		},
		{
			reg:  &x86dat.Register{Name: "zmm31", Type: opflagFor(t, "zmmreg"), Class: "zmmreg", Encoding: 31, Long: true, EVEX: true},
			want: `ZMM31 = &Register{Name: "zmm31", Type: opflag("zmmreg"), Encoding: 31, EVEX: true, MinMode: 64}`,
		},
	}

	for _, test := range tests {
		if got := registerLiteral(test.reg); got != test.want {
			t.Errorf("registerLiteral(%s):\n%s", test.reg.Name, diff.Format(got, test.want))
		}
	}
}
