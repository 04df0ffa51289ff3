// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package lookup prints the instruction templates for
// one or more mnemonics.
package lookup

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"

	"x86db.dev/x86db/internal/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints the templates for the mnemonics given as
// arguments, one template per line with its encoding
// recipe and CPU flags.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("lookup", flag.ExitOnError)

	var help bool
	var mode, match string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&mode, "mode", env.Str("X86DB_MODE", ""), "Only show templates valid in this CPU mode (16, 32 or 64).")
	flags.StringVar(&match, "match", "", "Annotate each template with whether it accepts these comma-separated operand types.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] MNEMONIC...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	mnemonics := flags.Args()
	if len(mnemonics) == 0 {
		flags.Usage()
	}

	var cpuMode *x86.Mode
	if mode != "" {
		for i := range x86.Modes {
			if x86.Modes[i].String == mode {
				cpuMode = &x86.Modes[i]
			}
		}

		if cpuMode == nil {
			return fmt.Errorf("invalid CPU mode %q", mode)
		}
	}

	var matchArgs []x86.OpFlags
	if match != "" {
		for _, field := range strings.Split(match, ",") {
			arg, err := x86.ParseOpFlags(field)
			if err != nil {
				return err
			}

			matchArgs = append(matchArgs, arg)
		}
	}

	for i, mnemonic := range mnemonics {
		if i > 0 {
			fmt.Fprintln(w)
		}

		templates := x86.Lookup(mnemonic)
		if templates == nil {
			fmt.Fprintf(w, "%s: no instruction data found\n", mnemonic)
			continue
		}

		for _, t := range templates {
			if cpuMode != nil && !t.CPUFlags().Supports(*cpuMode) {
				continue
			}

			fmt.Fprintf(w, "%-40s  [%s]  %s", t, t.Code, t.CPUFlags())
			if matchArgs != nil {
				fmt.Fprintf(w, "  (%s)", t.Matches(matchArgs))
			}

			fmt.Fprintln(w)
		}
	}

	return nil
}
