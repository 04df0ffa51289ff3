// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package dump prints the parsed .dat sources in full,
// for debugging the parser and the generator.
package dump

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"x86db.dev/x86db/internal/x86"
	"x86db.dev/x86db/internal/x86/x86dat"
)

var program = filepath.Base(os.Args[0])

// Main parses the embedded .dat sources and dumps the
// result. With no arguments it dumps both files;
// "insns" and "regs" select one.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("dump", flag.ExitOnError)

	var help bool
	flags.BoolVar(&help, "h", false, "Show this message and exit.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [insns|regs]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	which := "all"
	switch flags.NArg() {
	case 0:
	case 1:
		which = flags.Arg(0)
	default:
		flags.Usage()
	}

	if which != "all" && which != "insns" && which != "regs" {
		return fmt.Errorf("unknown dump target %q", which)
	}

	if which == "all" || which == "insns" {
		insns, err := x86dat.ParseInstructions(bytes.NewReader(x86.InsnsData))
		if err != nil {
			return err
		}

		spew.Fdump(w, insns)
	}

	if which == "all" || which == "regs" {
		regs, err := x86dat.ParseRegisters(bytes.NewReader(x86.RegsData))
		if err != nil {
			return err
		}

		spew.Fdump(w, regs)
	}

	return nil
}
