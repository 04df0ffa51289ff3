// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package regs prints the register tables.
package regs

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"x86db.dev/x86db/internal/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints the register classes given as arguments
// ("reg32", "xmmreg", ...), or every class with no
// arguments, one register per line in encoding order.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("regs", flag.ExitOnError)

	var help bool
	flags.BoolVar(&help, "h", false, "Show this message and exit.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [CLASS...]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	classes := flags.Args()
	if len(classes) == 0 {
		classes = x86.RegisterClassNames()
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for i, class := range classes {
		regs := x86.RegisterClass(class)
		if regs == nil {
			return fmt.Errorf("unknown register class %q", class)
		}

		if i > 0 {
			fmt.Fprintln(tw)
		}

		fmt.Fprintf(tw, "%s:\n", class)
		for _, reg := range regs {
			var notes []string
			if reg.MinMode == 64 {
				notes = append(notes, "64-bit mode")
			}

			if reg.EVEX {
				notes = append(notes, "EVEX")
			}

			if len(reg.Aliases) > 0 {
				notes = append(notes, "aka "+strings.Join(reg.Aliases, ", "))
			}

			bits := "-"
			if n := reg.Bits(); n != 0 {
				bits = fmt.Sprintf("%d bits", n)
			}

			fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n",
				reg.Name, reg.Encoding, bits, strings.Join(notes, ", "))
		}
	}

	return tw.Flush()
}
