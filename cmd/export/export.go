// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package export writes the instruction and register
// tables as JSON.
package export

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"x86db.dev/x86db/internal/x86"
)

var program = filepath.Base(os.Args[0])

// Main writes the full database in the JSON
// interchange form.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("export", flag.ExitOnError)

	var help, verify bool
	var out string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&verify, "verify", false, "Decode the JSON again and check it against the tables.")
	flags.StringVar(&out, "o", "", "Write to this file instead of standard output.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	if flags.NArg() != 0 {
		flags.Usage()
	}

	var buf bytes.Buffer
	if err := x86.EncodeJSON(&buf); err != nil {
		return err
	}

	if verify {
		if err := roundTrip(buf.Bytes()); err != nil {
			return fmt.Errorf("verifying JSON: %w", err)
		}
	}

	if out == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	return os.WriteFile(out, buf.Bytes(), 0644)
}

// roundTrip decodes the JSON and resolves every entry
// against the compiled-in tables.
func roundTrip(data []byte) error {
	db, err := x86.DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	for _, insn := range db.Instructions {
		if _, err := insn.Template(); err != nil {
			return err
		}
	}

	for _, reg := range db.Registers {
		if _, err := reg.Register(); err != nil {
			return err
		}
	}

	return nil
}
