// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package lookup

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"hlt"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(got, "hlt") || !strings.Contains(got, "[f4]") || !strings.Contains(got, "8086,PRIV") {
		t.Fatalf("Main() printed %q", got)
	}
}

func TestLookupUnknownMnemonic(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"nosuchinstruction"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if want := "nosuchinstruction: no instruction data found\n"; buf.String() != want {
		t.Fatalf("Main() printed %q, want %q", buf.String(), want)
	}
}

func TestLookupModeFilter(t *testing.T) {
	// jcxz is invalid in 64-bit mode, so the mode
	// filter leaves nothing to print.
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"-mode", "64", "jcxz"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("Main() printed %q, want no output", buf.String())
	}

	if err := Main(context.Background(), &buf, []string{"-mode", "20", "jcxz"}); err == nil {
		t.Fatalf("Main() accepted an invalid CPU mode")
	}
}

func TestLookupMatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"-match", "reg32,imm", "inc"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "(wrong operand count)") {
		t.Fatalf("Main() printed %q, want a match annotation on every line", out)
	}

	if err := Main(context.Background(), &buf, []string{"-match", "bogus", "inc"}); err == nil {
		t.Fatalf("Main() accepted an invalid operand type")
	}
}
