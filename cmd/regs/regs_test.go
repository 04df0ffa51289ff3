// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package regs

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRegs(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"sreg"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "sreg:") {
		t.Fatalf("Main() printed %q", out)
	}

	for _, name := range []string{"es", "cs", "ss", "ds", "fs", "gs"} {
		if !strings.Contains(out, name) {
			t.Errorf("Main() output is missing %q:\n%s", name, out)
		}
	}
}

func TestRegsAllClasses(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, nil); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	for _, header := range []string{"reg8:", "reg64:", "zmmreg:", "kreg:"} {
		if !strings.Contains(buf.String(), header) {
			t.Errorf("Main() output is missing class %q", header)
		}
	}

	// The alias and mode notes come through.
	if !strings.Contains(buf.String(), "aka st") {
		t.Errorf("Main() output is missing the st0 alias note")
	}
}

func TestRegsUnknownClass(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"hexreg"}); err == nil {
		t.Fatalf("Main() accepted an unknown register class")
	}
}
