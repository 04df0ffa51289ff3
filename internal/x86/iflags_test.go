// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Flags
	}{
		{"8086", CPU8086},
		{"8086,SM,LOCK", CPU8086 | FlagSM | FlagLock},
		{"386,PRIV", CPU386 | FlagPriv},
		{"X64,LONG", CPUX64 | FlagLongOnly},
		{"KATMAI,SSE", CPUKatmai | FlagSSE},
		{"AVX512,AVX512VL,SM", CPU8086 | FlagAVX512F | FlagAVX512VL | FlagSM},
		{"FUTURE,AVX512BW,SM", CPUFuture | FlagAVX512BW | FlagSM},
	}

	for _, test := range tests {
		got, err := ParseFlags(test.text)
		if err != nil {
			t.Fatalf("ParseFlags(%q): %v", test.text, err)
		}

		if got != test.want {
			t.Fatalf("ParseFlags(%q) = %#x, want %#x", test.text, uint64(got), uint64(test.want))
		}
	}

	errors := []string{
		"",
		"8086,386",
		"8086,WAT",
	}
	for _, text := range errors {
		if _, err := ParseFlags(text); err == nil {
			t.Errorf("ParseFlags(%q): no error", text)
		}
	}
}

func TestFlagsString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags Flags
		want  string
	}{
		{CPU8086, "8086"},
		{CPU186 | FlagSM, "186,SM"},
		{CPU386 | FlagLock | FlagSM, "386,LOCK,SM"},
		{CPUWillamette | FlagSSE2 | FlagSM, "WILLAMETTE,SSE2,SM"},
		{CPU8086 | FlagAVX512F | FlagAVX512VL, "8086,AVX512,AVX512VL"},
	}

	for _, test := range tests {
		if got := test.flags.String(); got != test.want {
			t.Errorf("Flags(%#x).String() = %q, want %q", uint64(test.flags), got, test.want)
		}

		// The rendering must parse back to the same
		// flags.
		again, err := ParseFlags(test.want)
		if err != nil {
			t.Fatalf("ParseFlags(%q): %v", test.want, err)
		}

		if again != test.flags {
			t.Errorf("ParseFlags(%q) = %#x, want %#x", test.want, uint64(again), uint64(test.flags))
		}
	}
}

func TestFlagsSupports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags Flags
		mode  Mode
		want  bool
	}{
		{CPU8086, Mode16, true},
		{CPU8086, Mode64, true},
		{CPU8086 | FlagNoLong, Mode32, true},
		{CPU8086 | FlagNoLong, Mode64, false},
		{CPUX64 | FlagLongOnly, Mode64, true},
		{CPUX64 | FlagLongOnly, Mode32, false},
		{CPUX64 | FlagLongOnly, Mode16, false},
	}

	for _, test := range tests {
		if got := test.flags.Supports(test.mode); got != test.want {
			t.Errorf("Flags(%q).Supports(%s) = %v, want %v", test.flags, test.mode.String, got, test.want)
		}
	}
}

func TestFlagsAccessors(t *testing.T) {
	t.Parallel()

	flags := CPU386 | FlagPriv | FlagLock
	if got := flags.CPU(); got != CPU386 {
		t.Errorf("Flags(%q).CPU() = %#x, want %#x", flags, uint64(got), uint64(CPU386))
	}
	if !flags.Privileged() {
		t.Errorf("Flags(%q).Privileged() = false, want true", flags)
	}
	if !flags.Lockable() {
		t.Errorf("Flags(%q).Lockable() = false, want true", flags)
	}
	if (CPU8086).Privileged() {
		t.Errorf("Flags(%q).Privileged() = true, want false", CPU8086)
	}
}
