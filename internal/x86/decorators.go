// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// DecoFlags describes the AVX-512 decorators a
// template position permits: opmask selection,
// zeroing-masking, embedded broadcast, embedded
// rounding control, and suppress-all-exceptions.
//
// The field layout is kept close to the EVEX prefix:
// the low four bits are the opmask register field.
type DecoFlags uint32

const (
	DecoMask      DecoFlags = 0x0f    // Opmask register field ({k1} to {k7}).
	DecoZeroing   DecoFlags = 1 << 4  // Zeroing-masking ({z}).
	DecoBroadcast DecoFlags = 1 << 5  // Embedded broadcast ({1to<n>}).
	DecoRounding  DecoFlags = 1 << 6  // Embedded rounding control ({rn-sae} etc).
	DecoSAE       DecoFlags = 1 << 7  // Suppress all exceptions ({sae}).

	// Broadcast element sizes.
	DecoBr32 DecoFlags = 1 << 8 // 32-bit broadcast elements.
	DecoBr64 DecoFlags = 1 << 9 // 64-bit broadcast elements.

	// Composite names, as used in insns.dat.
	DecoB32 = DecoBroadcast | DecoBr32
	DecoB64 = DecoBroadcast | DecoBr64
)

// decoNames maps each decorator token, as spelt in
// insns.dat, to its bitmask.
var decoNames = map[string]DecoFlags{
	"mask": DecoMask,
	"z":    DecoZeroing,
	"b32":  DecoB32,
	"b64":  DecoB64,
	"er":   DecoRounding,
	"sae":  DecoSAE,
}

// decoOrder fixes the rendering order of
// DecoFlags.String.
var decoOrder = []string{"mask", "z", "b32", "b64", "er", "sae"}

// IsDecorator reports whether name is a decorator
// token.
func IsDecorator(name string) bool {
	_, ok := decoNames[name]
	return ok
}

// ParseDecoFlags parses a decorator constraint, such
// as "mask|z" or "b32", returning the corresponding
// bitmask.
func ParseDecoFlags(s string) (DecoFlags, error) {
	var flags DecoFlags
	for _, part := range strings.Split(s, "|") {
		bits, ok := decoNames[part]
		if !ok {
			return 0, fmt.Errorf("invalid decorator %q in %q", part, s)
		}

		flags |= bits
	}

	return flags, nil
}

// String returns the decorator constraint in the
// notation of ParseDecoFlags.
func (f DecoFlags) String() string {
	if f == 0 {
		return ""
	}

	var parts []string
	rest := f
	for _, name := range decoOrder {
		bits := decoNames[name]
		if rest&bits != bits {
			continue
		}

		parts = append(parts, name)
		rest &^= bits
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("decoflags(%#x)", uint32(rest)))
	}

	return strings.Join(parts, "|")
}

// Masked reports whether an opmask decorator is
// permitted.
func (f DecoFlags) Masked() bool { return f&DecoMask != 0 }

// Zeroing reports whether zeroing-masking is
// permitted.
func (f DecoFlags) Zeroing() bool { return f&DecoZeroing != 0 }

// Broadcast returns the broadcast element size in
// bits, or 0 if embedded broadcast is not permitted.
func (f DecoFlags) Broadcast() int {
	switch {
	case f&DecoBr32 != 0:
		return 32
	case f&DecoBr64 != 0:
		return 64
	default:
		return 0
	}
}

// Rounding reports whether embedded rounding control
// is permitted.
func (f DecoFlags) Rounding() bool { return f&DecoRounding != 0 }

// SAE reports whether suppress-all-exceptions is
// permitted.
func (f DecoFlags) SAE() bool { return f&DecoSAE != 0 }
