// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Flags describes the CPU requirements and attributes
// of an instruction template. The low byte holds the
// baseline CPU level as an ordered enumeration; the
// remaining bits are independent feature and
// attribute flags.
type Flags uint64

// FlagIndex is the index of a flag set in FlagSets.
// Templates store the index rather than the flags, as
// the distinct combinations are few.
type FlagIndex uint16

// CPU levels, in ascending order.
const (
	CPU8086 Flags = iota + 1
	CPU186
	CPU286
	CPU386
	CPU486
	CPUPentium
	CPUP6
	CPUKatmai
	CPUWillamette
	CPUPrescott
	CPUX64
	CPUNehalem
	CPUWestmere
	CPUSandyBridge
	CPUFuture

	MaskCPU Flags = 0xff
)

// Feature flags.
const (
	FlagFPU Flags = 1 << (8 + iota)
	FlagMMX
	FlagSSE
	FlagSSE2
	FlagSSE3
	FlagSSSE3
	FlagSSE41
	FlagSSE42
	FlagAVX
	FlagAVX2
	FlagFMA
	FlagBMI1
	FlagBMI2
	FlagMPX
	FlagAVX512F
	FlagAVX512BW
	FlagAVX512DQ
	FlagAVX512CD
	FlagAVX512VL
)

// Attribute flags.
const (
	FlagPriv     Flags = 1 << (40 + iota) // Privileged instruction.
	FlagUndoc                             // Undocumented instruction.
	FlagObsolete                          // Removed from modern CPUs.
	FlagLock                              // Lockable if the destination is memory.
	FlagNoLong                            // Invalid in 64-bit mode.
	FlagLongOnly                          // Only valid in 64-bit mode.
	FlagND                                // Suppressed when tables are inverted for decoding.
	FlagSM                                // Operand sizes must match.
	FlagSM2                               // The first two operand sizes must match.
)

// flagNames maps each flag token, as spelt in the
// flags column of insns.dat, to its value. CPU levels
// occupy the low byte and replace rather than OR.
var flagNames = map[string]Flags{
	"8086":        CPU8086,
	"186":         CPU186,
	"286":         CPU286,
	"386":         CPU386,
	"486":         CPU486,
	"PENT":        CPUPentium,
	"P6":          CPUP6,
	"KATMAI":      CPUKatmai,
	"WILLAMETTE":  CPUWillamette,
	"PRESCOTT":    CPUPrescott,
	"X64":         CPUX64,
	"NEHALEM":     CPUNehalem,
	"WESTMERE":    CPUWestmere,
	"SANDYBRIDGE": CPUSandyBridge,
	"FUTURE":      CPUFuture,

	"FPU":      FlagFPU,
	"MMX":      FlagMMX,
	"SSE":      FlagSSE,
	"SSE2":     FlagSSE2,
	"SSE3":     FlagSSE3,
	"SSSE3":    FlagSSSE3,
	"SSE41":    FlagSSE41,
	"SSE42":    FlagSSE42,
	"AVX":      FlagAVX,
	"AVX2":     FlagAVX2,
	"FMA":      FlagFMA,
	"BMI1":     FlagBMI1,
	"BMI2":     FlagBMI2,
	"MPX":      FlagMPX,
	"AVX512":   FlagAVX512F,
	"AVX512BW": FlagAVX512BW,
	"AVX512DQ": FlagAVX512DQ,
	"AVX512CD": FlagAVX512CD,
	"AVX512VL": FlagAVX512VL,

	"PRIV":     FlagPriv,
	"UNDOC":    FlagUndoc,
	"OBSOLETE": FlagObsolete,
	"LOCK":     FlagLock,
	"NOLONG":   FlagNoLong,
	"LONG":     FlagLongOnly,
	"ND":       FlagND,
	"SM":       FlagSM,
	"SM2":      FlagSM2,
}

// flagOrder fixes the rendering order of Flags.String,
// CPU level excluded.
var flagOrder = []string{
	"FPU", "MMX", "SSE", "SSE2", "SSE3", "SSSE3", "SSE41", "SSE42",
	"AVX", "AVX2", "FMA", "BMI1", "BMI2", "MPX",
	"AVX512", "AVX512BW", "AVX512DQ", "AVX512CD", "AVX512VL",
	"PRIV", "UNDOC", "OBSOLETE", "LOCK", "NOLONG", "LONG", "ND", "SM", "SM2",
}

// cpuNames maps the CPU levels back to their tokens.
var cpuNames = map[Flags]string{
	CPU8086:        "8086",
	CPU186:         "186",
	CPU286:         "286",
	CPU386:         "386",
	CPU486:         "486",
	CPUPentium:     "PENT",
	CPUP6:          "P6",
	CPUKatmai:      "KATMAI",
	CPUWillamette:  "WILLAMETTE",
	CPUPrescott:    "PRESCOTT",
	CPUX64:         "X64",
	CPUNehalem:     "NEHALEM",
	CPUWestmere:    "WESTMERE",
	CPUSandyBridge: "SANDYBRIDGE",
	CPUFuture:      "FUTURE",
}

// ParseFlags parses a comma-separated flags column,
// such as "8086,SM,LOCK". A missing CPU level defaults
// to 8086.
func ParseFlags(s string) (Flags, error) {
	var flags Flags
	for _, part := range strings.Split(s, ",") {
		bits, ok := flagNames[part]
		if !ok {
			return 0, fmt.Errorf("invalid instruction flag %q in %q", part, s)
		}

		if bits&MaskCPU != 0 {
			if flags&MaskCPU != 0 {
				return 0, fmt.Errorf("invalid instruction flags %q: multiple CPU levels", s)
			}

			flags |= bits
			continue
		}

		flags |= bits
	}

	if flags&MaskCPU == 0 {
		flags |= CPU8086
	}

	return flags, nil
}

// String returns the flags in the notation of
// ParseFlags.
func (f Flags) String() string {
	parts := []string{cpuNames[f&MaskCPU]}
	if parts[0] == "" {
		parts[0] = fmt.Sprintf("cpu(%d)", uint64(f&MaskCPU))
	}

	for _, name := range flagOrder {
		if f&flagNames[name] != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, ",")
}

// CPU returns the baseline CPU level.
func (f Flags) CPU() Flags { return f & MaskCPU }

// Supports reports whether the instruction is valid in
// the given CPU mode.
func (f Flags) Supports(mode Mode) bool {
	if f&FlagNoLong != 0 && mode.Int == 64 {
		return false
	}

	if f&FlagLongOnly != 0 && mode.Int != 64 {
		return false
	}

	return true
}

// Privileged reports whether the instruction needs
// ring 0.
func (f Flags) Privileged() bool { return f&FlagPriv != 0 }

// Lockable reports whether a LOCK prefix is accepted
// when the destination is memory.
func (f Flags) Lockable() bool { return f&FlagLock != 0 }
