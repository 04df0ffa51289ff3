// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"-verify"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	var db struct {
		Instructions []json.RawMessage `json:"instructions"`
		Registers    []json.RawMessage `json:"registers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &db); err != nil {
		t.Fatalf("Main() wrote invalid JSON: %v", err)
	}

	if len(db.Instructions) == 0 || len(db.Registers) == 0 {
		t.Fatalf("Main() wrote %d instructions and %d registers", len(db.Instructions), len(db.Registers))
	}
}

func TestExportToFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "x86.json")
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, []string{"-o", name}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("Main() wrote %d bytes to standard output with -o", buf.Len())
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}

	if err := roundTrip(data); err != nil {
		t.Fatalf("round trip: %v", err)
	}
}
