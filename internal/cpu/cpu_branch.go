/*
 * avrgo - Branch, jump, call and skip instructions.
 *
 * Copyright (c) 2024 avrgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package cpu

import "github.com/rcornwell/avrgo/internal/decode"

func execRJMP(c *CPU, op decode.Op) (uint16, int) {
	return uint16(int32(c.PC) + 1 + op.K), 2
}

func execRCALL(c *CPU, op decode.Op) (uint16, int) {
	c.pushReturn(c.PC + 1)
	return uint16(int32(c.PC) + 1 + op.K), 3
}

func execJMP(c *CPU, op decode.Op) (uint16, int) {
	return uint16(op.K), 3
}

func execCALL(c *CPU, op decode.Op) (uint16, int) {
	c.pushReturn(c.PC + 2)
	return uint16(op.K), 4
}

func execIJMP(c *CPU, op decode.Op) (uint16, int) {
	return c.RPair(regZ), 2
}

func execICALL(c *CPU, op decode.Op) (uint16, int) {
	c.pushReturn(c.PC + 1)
	return c.RPair(regZ), 3
}

func execRET(c *CPU, op decode.Op) (uint16, int) {
	return c.popReturn(), 4
}

func execRETI(c *CPU, op decode.Op) (uint16, int) {
	pc := c.popReturn()
	c.SREG.I = true
	return pc, 4
}

// pushReturn pushes a word-unit return address as two bytes: low byte
// first (ends up deeper on the stack), then high byte. This is the AVR
// convention, so a subsequent pop (high then low) reconstructs the PC.
func (c *CPU) pushReturn(pc uint16) {
	c.pushByte(byte(pc))
	c.pushByte(byte(pc >> 8))
}

func (c *CPU) popReturn() uint16 {
	hi := c.popByte()
	lo := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushByte(v byte) {
	sp := c.Mem.SP()
	c.Mem.Write(sp, v)
	if sp == 0 {
		debugStep("stack pointer wrapped to RAMEND on push")
		c.Mem.SetSP(c.Profile.RAMEnd)
		return
	}
	c.Mem.SetSP(sp - 1)
}

func (c *CPU) popByte() byte {
	sp := c.Mem.SP()
	if sp == c.Profile.RAMEnd {
		debugStep("stack pointer wrapped to 0 on pop")
		c.Mem.SetSP(0)
		return c.Mem.Read(0)
	}
	c.Mem.SetSP(sp + 1)
	return c.Mem.Read(sp + 1)
}

func execPUSH(c *CPU, op decode.Op) (uint16, int) {
	c.pushByte(c.R(op.Rr))
	return c.PC + 1, 2
}

func execPOP(c *CPU, op decode.Op) (uint16, int) {
	c.SetR(op.Rd, c.popByte())
	return c.PC + 1, 2
}

func execCPSE(c *CPU, op decode.Op) (uint16, int) {
	if c.R(op.Rd) == c.R(op.Rr) {
		words := c.skip(c.PC + 1)
		return c.PC + 1 + words, 1 + int(words)
	}
	return c.PC + 1, 1
}

func execSBRC(c *CPU, op decode.Op) (uint16, int) {
	if c.R(op.Rd)&(1<<uint(op.B)) == 0 {
		words := c.skip(c.PC + 1)
		return c.PC + 1 + words, 1 + int(words)
	}
	return c.PC + 1, 1
}

func execSBRS(c *CPU, op decode.Op) (uint16, int) {
	if c.R(op.Rd)&(1<<uint(op.B)) != 0 {
		words := c.skip(c.PC + 1)
		return c.PC + 1 + words, 1 + int(words)
	}
	return c.PC + 1, 1
}

func execSBIC(c *CPU, op decode.Op) (uint16, int) {
	if c.Mem.Read(uint16(0x20+op.A))&(1<<uint(op.B)) == 0 {
		words := c.skip(c.PC + 1)
		return c.PC + 1 + words, 1 + int(words)
	}
	return c.PC + 1, 1
}

func execSBIS(c *CPU, op decode.Op) (uint16, int) {
	if c.Mem.Read(uint16(0x20+op.A))&(1<<uint(op.B)) != 0 {
		words := c.skip(c.PC + 1)
		return c.PC + 1 + words, 1 + int(words)
	}
	return c.PC + 1, 1
}

func execBRBS(c *CPU, op decode.Op) (uint16, int) {
	if c.SREG.Bit(op.S) {
		return uint16(int32(c.PC) + 1 + op.K), 2
	}
	return c.PC + 1, 1
}

func execBRBC(c *CPU, op decode.Op) (uint16, int) {
	if !c.SREG.Bit(op.S) {
		return uint16(int32(c.PC) + 1 + op.K), 2
	}
	return c.PC + 1, 1
}
