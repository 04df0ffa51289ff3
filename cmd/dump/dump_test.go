// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"regs"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "x86dat.Register") || !strings.Contains(out, `Name: (string) (len=3) "rax"`) {
		t.Fatalf("Main() printed:\n%s", out)
	}

	buf.Reset()
	if err := Main(context.Background(), &buf, []string{"insns"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if !strings.Contains(buf.String(), "x86dat.Instruction") {
		t.Fatalf("Main() printed no instructions")
	}
}

func TestDumpUnknownTarget(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"stuff"}); err == nil {
		t.Fatalf("Main() accepted an unknown dump target")
	}
}
