/*
 * avrgo - Data transfer instructions: registers, I/O, SRAM, flash.
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

func execLDI(c *CPU, op decode.Op) (uint16, int) {
	c.SetR(op.Rd, byte(op.K))
	return c.PC + 1, 1
}

func execMOV(c *CPU, op decode.Op) (uint16, int) {
	c.SetR(op.Rd, c.R(op.Rr))
	return c.PC + 1, 1
}

func execMOVW(c *CPU, op decode.Op) (uint16, int) {
	c.SetRPair(op.Rd, c.RPair(op.Rr))
	return c.PC + 1, 1
}

func execIN(c *CPU, op decode.Op) (uint16, int) {
	c.SetR(op.Rd, c.Mem.Read(uint16(0x20+op.A)))
	return c.PC + 1, 1
}

func execOUT(c *CPU, op decode.Op) (uint16, int) {
	c.Mem.Write(uint16(0x20+op.A), c.R(op.Rr))
	return c.PC + 1, 1
}

func (c *CPU) ptrReg(p decode.Pointer) int {
	switch p {
	case decode.PointerX:
		return regX
	case decode.PointerY:
		return regY
	default:
		return regZ
	}
}

func execLD(c *CPU, op decode.Op) (uint16, int) {
	reg := c.ptrReg(op.Ptr)
	addr := c.RPair(reg)
	if op.Mode == decode.ModePreDec {
		addr--
	}
	if !c.segfault(addr) {
		return c.PC + 1, 2
	}
	v := c.Mem.Read(addr)
	if op.Mode == decode.ModePostInc {
		addr++
	}
	if op.Mode != decode.ModePlain {
		c.SetRPair(reg, addr)
	}
	c.SetR(op.Rd, v)
	return c.PC + 1, 2
}

func execST(c *CPU, op decode.Op) (uint16, int) {
	reg := c.ptrReg(op.Ptr)
	addr := c.RPair(reg)
	if op.Mode == decode.ModePreDec {
		addr--
	}
	if !c.segfault(addr) {
		return c.PC + 1, 2
	}
	c.Mem.Write(addr, c.R(op.Rr))
	if op.Mode == decode.ModePostInc {
		addr++
	}
	if op.Mode != decode.ModePlain {
		c.SetRPair(reg, addr)
	}
	return c.PC + 1, 2
}

func execLDD(c *CPU, op decode.Op) (uint16, int) {
	reg := c.ptrReg(op.Ptr)
	addr := c.RPair(reg) + uint16(op.Q)
	if !c.segfault(addr) {
		return c.PC + 1, 2
	}
	c.SetR(op.Rd, c.Mem.Read(addr))
	return c.PC + 1, 2
}

func execSTD(c *CPU, op decode.Op) (uint16, int) {
	reg := c.ptrReg(op.Ptr)
	addr := c.RPair(reg) + uint16(op.Q)
	if !c.segfault(addr) {
		return c.PC + 1, 2
	}
	c.Mem.Write(addr, c.R(op.Rr))
	return c.PC + 1, 2
}

func execLDS(c *CPU, op decode.Op) (uint16, int) {
	addr := uint16(op.K)
	if !c.segfault(addr) {
		return c.PC + 2, 2
	}
	c.SetR(op.Rd, c.Mem.Read(addr))
	return c.PC + 2, 2
}

func execSTS(c *CPU, op decode.Op) (uint16, int) {
	addr := uint16(op.K)
	if !c.segfault(addr) {
		return c.PC + 2, 2
	}
	c.Mem.Write(addr, c.R(op.Rr))
	return c.PC + 2, 2
}

func execLPM(c *CPU, op decode.Op) (uint16, int) {
	if op.Ptr == decode.PointerNone {
		c.SetR(0, c.Flash.ReadByte(uint32(c.RPair(regZ))))
		return c.PC + 1, 3
	}
	addr := c.RPair(regZ)
	c.SetR(op.Rd, c.Flash.ReadByte(uint32(addr)))
	if op.Mode == decode.ModePostInc {
		c.SetRPair(regZ, addr+1)
	}
	return c.PC + 1, 3
}

func execELPM(c *CPU, op decode.Op) (uint16, int) {
	return execLPM(c, op)
}

func execSBI(c *CPU, op decode.Op) (uint16, int) {
	addr := uint16(0x20 + op.A)
	c.Mem.Write(addr, c.Mem.Read(addr)|(1<<uint(op.B)))
	return c.PC + 1, 2
}

func execCBI(c *CPU, op decode.Op) (uint16, int) {
	addr := uint16(0x20 + op.A)
	c.Mem.Write(addr, c.Mem.Read(addr)&^(1<<uint(op.B)))
	return c.PC + 1, 2
}

func execBSET(c *CPU, op decode.Op) (uint16, int) {
	c.SREG.SetBit(op.S, true)
	return c.PC + 1, 1
}

func execBCLR(c *CPU, op decode.Op) (uint16, int) {
	c.SREG.SetBit(op.S, false)
	return c.PC + 1, 1
}

func execBST(c *CPU, op decode.Op) (uint16, int) {
	c.SREG.T = c.R(op.Rd)&(1<<uint(op.B)) != 0
	return c.PC + 1, 1
}

// execBLD sets the target bit to T, clearing it first. The source this was
// distilled from ORs T into Rd without clearing the bit, which only
// produces the right answer when the bit already happens to be 0.
func execBLD(c *CPU, op decode.Op) (uint16, int) {
	rd := c.R(op.Rd)
	rd &^= 1 << uint(op.B)
	if c.SREG.T {
		rd |= 1 << uint(op.B)
	}
	c.SetR(op.Rd, rd)
	return c.PC + 1, 1
}

func execNOP(c *CPU, op decode.Op) (uint16, int) {
	return c.PC + 1, 1
}

func execSLEEP(c *CPU, op decode.Op) (uint16, int) {
	c.State = Sleep
	return c.PC + 1, 1
}

func execBREAK(c *CPU, op decode.Op) (uint16, int) {
	c.State = Break
	return c.PC + 1, 1
}

// execTodo handles WDR, DES, XCH, SPM, EIJMP, EICALL: decoder-recognized,
// interpreter no-op.
func execTodo(c *CPU, op decode.Op) (uint16, int) {
	debugStep("todo: %v not implemented, treated as no-op", op.Instr)
	return c.PC + uint16(op.Words), 1
}
