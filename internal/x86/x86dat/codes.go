// Copyright 2024 The x86db Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86dat

import (
	"fmt"
	"strconv"
	"strings"

	"x86db.dev/x86db/internal/x86"
)

// compileCodes translates the tokens of a codes column
// into a bytecode recipe, without the terminating
// command. The tag supplies the operand index bound to
// each encoding slot.
func compileCodes(tokens []string, tag string, tuple byte) ([]byte, error) {
	c := newCodeAssembler()
	c.tuple = tuple
	for i, r := range tag {
		switch r {
		case 'r':
			c.reg = i
		case 'm':
			c.rm = i
		case 'v':
			c.vvvv = i
		case 'i':
			c.imms = append(c.imms, i)
		case '-':
			// Not encoded.
		default:
			return nil, fmt.Errorf("invalid tag letter %q in %q", r, tag)
		}
	}

	for _, token := range tokens {
		if err := c.token(token); err != nil {
			return nil, err
		}
	}

	c.flush()
	if len(c.imms) > 0 {
		return nil, fmt.Errorf("operand %d is tagged as an immediate but has no slot", c.imms[0])
	}

	return c.out, nil
}

type codeAssembler struct {
	out   []byte
	run   []byte // Pending literal bytes, flushed in runs of up to four.
	tuple byte
	reg   int
	rm    int
	vvvv  int
	imms  []int
}

// newCodeAssembler starts a recipe with no operands
// bound to any encoding slot.
func newCodeAssembler() *codeAssembler {
	return &codeAssembler{reg: -1, rm: -1, vvvv: -1}
}

func (c *codeAssembler) emit(b ...byte) {
	c.flush()
	c.out = append(c.out, b...)
}

func (c *codeAssembler) flush() {
	for len(c.run) > 0 {
		n := len(c.run)
		if n > 4 {
			n = 4
		}

		c.out = append(c.out, byte(x86.CmdLit1)+byte(n-1))
		c.out = append(c.out, c.run[:n]...)
		c.run = c.run[n:]
	}
}

func (c *codeAssembler) nextImm() (byte, error) {
	if len(c.imms) == 0 {
		return 0, fmt.Errorf("an immediate slot has no tagged operand")
	}

	i := c.imms[0]
	c.imms = c.imms[1:]

	return byte(i), nil
}

func (c *codeAssembler) token(token string) error {
	// Plain literal byte.
	if len(token) == 2 && isHex(token) {
		b, _ := strconv.ParseUint(token, 16, 8)
		c.run = append(c.run, byte(b))
		return nil
	}

	// A base opcode byte with a register number added.
	if len(token) == 4 && strings.HasSuffix(token, "+r") && isHex(token[:2]) {
		if c.reg < 0 {
			return fmt.Errorf("%q needs an operand tagged r", token)
		}

		b, _ := strconv.ParseUint(token[:2], 16, 8)
		c.emit(byte(x86.CmdPlusReg), byte(c.reg), byte(b))

		return nil
	}

	switch token {
	case "/r":
		if c.reg < 0 || c.rm < 0 {
			return fmt.Errorf("/r needs operands tagged r and m")
		}

		c.emit(byte(x86.CmdModRM), byte(c.reg), byte(c.rm))

		return nil
	case "/0", "/1", "/2", "/3", "/4", "/5", "/6", "/7":
		if c.rm < 0 {
			return fmt.Errorf("%q needs an operand tagged m", token)
		}

		c.emit(byte(x86.CmdModRMDigit), token[1]-'0', byte(c.rm))

		return nil
	case "ib", "iw", "id", "iq":
		i, err := c.nextImm()
		if err != nil {
			return err
		}

		cmds := map[string]x86.CodeCmd{
			"ib": x86.CmdImm8,
			"iw": x86.CmdImm16,
			"id": x86.CmdImm32,
			"iq": x86.CmdImm64,
		}
		c.emit(byte(cmds[token]), i)

		return nil
	case "rel", "rel8", "rel16", "rel32", "seg":
		i, err := c.nextImm()
		if err != nil {
			return err
		}

		cmds := map[string]x86.CodeCmd{
			"rel":   x86.CmdRel,
			"rel8":  x86.CmdRel8,
			"rel16": x86.CmdRel16,
			"rel32": x86.CmdRel32,
			"seg":   x86.CmdSeg,
		}
		c.emit(byte(cmds[token]), i)

		return nil
	case "o16":
		c.emit(byte(x86.CmdO16))
		return nil
	case "o32":
		c.emit(byte(x86.CmdO32))
		return nil
	case "o64":
		c.emit(byte(x86.CmdO64))
		return nil
	case "a16":
		c.emit(byte(x86.CmdA16))
		return nil
	case "a32":
		c.emit(byte(x86.CmdA32))
		return nil
	case "a64":
		c.emit(byte(x86.CmdA64))
		return nil
	case "np":
		c.emit(byte(x86.CmdNP))
		return nil
	case "wait":
		c.emit(byte(x86.CmdWait))
		return nil
	}

	if strings.HasPrefix(token, "vex.") || strings.HasPrefix(token, "evex.") {
		return c.vexToken(token)
	}

	return fmt.Errorf("invalid code token %q", token)
}

// vexToken compiles a VEX or EVEX prefix descriptor
// such as "vex.nds.128.66.0f.wig". The W, L and pp
// fields are packed into one byte: pp in bits 0 to 1,
// L in bits 2 to 3, and W in bit 4.
func (c *codeAssembler) vexToken(token string) error {
	fields := strings.Split(token, ".")
	evex := fields[0] == "evex"

	var m, pp, l, w byte
	for _, field := range fields[1:] {
		switch field {
		case "nds", "ndd", "dds":
			// The vvvv binding comes from the tag.
		case "128", "l0", "lz", "lig":
			l = 0
		case "256", "l1":
			l = 1
		case "512":
			l = 2
		case "np":
			pp = 0
		case "66":
			pp = 1
		case "f3":
			pp = 2
		case "f2":
			pp = 3
		case "0f":
			m = 1
		case "0f38":
			m = 2
		case "0f3a":
			m = 3
		case "w0", "wig":
			w = 0
		case "w1":
			w = 1
		default:
			return fmt.Errorf("invalid prefix field %q in %q", field, token)
		}
	}

	if m == 0 {
		return fmt.Errorf("no opcode map in %q", token)
	}

	vvvv := byte(x86.NoOperand)
	if c.vvvv >= 0 {
		vvvv = byte(c.vvvv)
	}

	wlp := pp | l<<2 | w<<4
	if evex {
		c.emit(byte(x86.CmdEVEX), m, wlp, c.tuple, vvvv)
	} else {
		c.emit(byte(x86.CmdVEX), m, wlp, vvvv)
	}

	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !('0' <= b && b <= '9' || 'a' <= b && b <= 'f') {
			return false
		}
	}

	return true
}
