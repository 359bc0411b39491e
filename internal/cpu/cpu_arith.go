/*
 * avrgo - Arithmetic and logic instructions.
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

func execADD(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	res := rd + rr
	c.addFlags(rd, rr, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execADC(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	carry := byte(0)
	if c.SREG.C {
		carry = 1
	}
	res := rd + rr + carry
	c.addFlags(rd, rr, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execSUB(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	res := rd - rr
	c.subFlags(rd, rr, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execSUBI(c *CPU, op decode.Op) (uint16, int) {
	rd := c.R(op.Rd)
	k := byte(op.K)
	res := rd - k
	c.subFlags(rd, k, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execSBC(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	carry := byte(0)
	if c.SREG.C {
		carry = 1
	}
	res := rd - rr - carry
	c.subFlags(rd, rr, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execSBCI(c *CPU, op decode.Op) (uint16, int) {
	rd := c.R(op.Rd)
	k := byte(op.K)
	carry := byte(0)
	if c.SREG.C {
		carry = 1
	}
	res := rd - k - carry
	c.subFlags(rd, k, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execAND(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) & c.R(op.Rr)
	c.SREG.V = false
	c.setZNS(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execANDI(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) & byte(op.K)
	c.SREG.V = false
	c.setZNS(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execOR(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) | c.R(op.Rr)
	c.SREG.V = false
	c.setZNS(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execORI(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) | byte(op.K)
	c.SREG.V = false
	c.setZNS(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execEOR(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) ^ c.R(op.Rr)
	c.SREG.V = false
	c.setZNS(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execCOM(c *CPU, op decode.Op) (uint16, int) {
	res := ^c.R(op.Rd)
	c.comFlags(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execNEG(c *CPU, op decode.Op) (uint16, int) {
	rd := c.R(op.Rd)
	res := byte(0) - rd
	c.negFlags(rd, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execINC(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) + 1
	c.incFlags(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execDEC(c *CPU, op decode.Op) (uint16, int) {
	res := c.R(op.Rd) - 1
	c.decFlags(res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execASR(c *CPU, op decode.Op) (uint16, int) {
	before := c.R(op.Rd)
	res := byte(int8(before) >> 1)
	c.asrFlags(before, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execLSR(c *CPU, op decode.Op) (uint16, int) {
	before := c.R(op.Rd)
	res := before >> 1
	c.lsrFlags(before, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execROR(c *CPU, op decode.Op) (uint16, int) {
	before := c.R(op.Rd)
	res := before >> 1
	if c.SREG.C {
		res |= 0x80
	}
	c.rorFlags(before, res)
	c.SetR(op.Rd, res)
	return c.PC + 1, 1
}

func execSWAP(c *CPU, op decode.Op) (uint16, int) {
	v := c.R(op.Rd)
	c.SetR(op.Rd, v<<4|v>>4)
	return c.PC + 1, 1
}

func execCP(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	c.subFlags(rd, rr, rd-rr)
	return c.PC + 1, 1
}

func execCPI(c *CPU, op decode.Op) (uint16, int) {
	rd := c.R(op.Rd)
	k := byte(op.K)
	c.subFlags(rd, k, rd-k)
	return c.PC + 1, 1
}

func execCPC(c *CPU, op decode.Op) (uint16, int) {
	rd, rr := c.R(op.Rd), c.R(op.Rr)
	carry := byte(0)
	if c.SREG.C {
		carry = 1
	}
	c.cpcFlags(rd, rr, rd-rr-carry)
	return c.PC + 1, 1
}

func execADIW(c *CPU, op decode.Op) (uint16, int) {
	before := c.RPair(op.Rd)
	res := before + uint16(op.K)
	c.adiwFlags(byte(before>>8), res)
	c.SetRPair(op.Rd, res)
	return c.PC + 1, 2
}

func execSBIW(c *CPU, op decode.Op) (uint16, int) {
	before := c.RPair(op.Rd)
	res := before - uint16(op.K)
	c.sbiwFlags(byte(before>>8), res)
	c.SetRPair(op.Rd, res)
	return c.PC + 1, 2
}

func execMUL(c *CPU, op decode.Op) (uint16, int) {
	res := uint16(c.R(op.Rd)) * uint16(c.R(op.Rr))
	c.SREG.C = res&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, res)
	return c.PC + 1, 2
}

func execMULS(c *CPU, op decode.Op) (uint16, int) {
	res := int16(int8(c.R(op.Rd))) * int16(int8(c.R(op.Rr)))
	c.SREG.C = uint16(res)&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, uint16(res))
	return c.PC + 1, 2
}

func execMULSU(c *CPU, op decode.Op) (uint16, int) {
	res := int16(int8(c.R(op.Rd))) * int16(c.R(op.Rr))
	c.SREG.C = uint16(res)&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, uint16(res))
	return c.PC + 1, 2
}

func execFMUL(c *CPU, op decode.Op) (uint16, int) {
	res := (uint16(c.R(op.Rd)) * uint16(c.R(op.Rr))) << 1
	c.SREG.C = res&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, res)
	return c.PC + 1, 1
}

func execFMULS(c *CPU, op decode.Op) (uint16, int) {
	res := uint16(int16(int8(c.R(op.Rd)))*int16(int8(c.R(op.Rr)))) << 1
	c.SREG.C = res&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, res)
	return c.PC + 1, 1
}

func execFMULSU(c *CPU, op decode.Op) (uint16, int) {
	res := uint16(int16(int8(c.R(op.Rd)))*int16(c.R(op.Rr))) << 1
	c.SREG.C = res&0x8000 != 0
	c.SREG.Z = res == 0
	c.SetRPair(0, res)
	return c.PC + 1, 1
}
