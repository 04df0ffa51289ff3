// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command x86db queries and maintains the x86
// instruction database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"x86db.dev/x86db/cmd/dump"
	"x86db.dev/x86db/cmd/export"
	"x86db.dev/x86db/cmd/lookup"
	"x86db.dev/x86db/cmd/regs"
)

// A command is one x86db subcommand.
type command struct {
	name        string
	description string
	run         func(ctx context.Context, w io.Writer, args []string) error
}

// The table drives both dispatch and the usage text.
// Keep it alphabetical.
var commands = []command{
	{"dump", "Print the parsed .dat sources in full", dump.Main},
	{"export", "Write the instruction and register tables as JSON", export.Main},
	{"lookup", "Print the instruction templates for one or more mnemonics", lookup.Main},
	{"regs", "Print the register tables", regs.Main},
}

var program = filepath.Base(os.Args[0])

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  %s COMMAND [OPTIONS]\n\nCommands:\n", program)
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-7s  %s\n", cmd.name, cmd.description)
	}

	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}

		log.SetPrefix(cmd.name + ": ")
		if err := cmd.run(context.Background(), os.Stdout, args[1:]); err != nil {
			log.Fatal(err)
		}

		return
	}

	fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", program, args[0])
	usage()
}
