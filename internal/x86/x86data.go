// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	_ "embed"
)

//go:generate go run ./gen-x86 -data data -out .

// The .dat sources the tables are generated from,
// embedded so that tools and tests can cross-check
// the generated tables against them.
var (
	//go:embed data/insns.dat
	InsnsData []byte

	//go:embed data/regs.dat
	RegsData []byte
)

// opflag resolves one operand type token. The
// generated tables use it so that the register
// definitions read the same way as the .dat sources.
func opflag(token string) OpFlags {
	flags, err := ParseOpFlags(token)
	if err != nil {
		panic(err)
	}

	return flags
}

// opflags builds the operand type array of a template
// row from its token form.
func opflags(tokens ...string) (out [MaxOperands + 1]OpFlags) {
	for i, token := range tokens {
		out[i] = opflag(token)
	}

	return out
}

// decoflags builds the decorator array of a template
// row from its token form. Empty strings mean no
// decorators.
func decoflags(tokens ...string) (out [MaxOperands + 1]DecoFlags) {
	for i, token := range tokens {
		if token == "" {
			continue
		}

		flags, err := ParseDecoFlags(token)
		if err != nil {
			panic(err)
		}

		out[i] = flags
	}

	return out
}

// flags resolves a comma-separated flags column.
func flags(s string) Flags {
	flags, err := ParseFlags(s)
	if err != nil {
		panic(err)
	}

	return flags
}
