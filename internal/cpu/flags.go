/*
 * avrgo - SREG flag computation.
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

// setZNS sets Z, N and S (=N^V) from an 8-bit result. V must already be
// current in c.SREG when this is called.
func (c *CPU) setZNS(res byte) {
	c.SREG.Z = res == 0
	c.SREG.N = res&0x80 != 0
	c.SREG.S = c.SREG.N != c.SREG.V
}

// setZNS16 is the 16-bit counterpart used by ADIW/SBIW.
func (c *CPU) setZNS16(res uint16) {
	c.SREG.Z = res == 0
	c.SREG.N = res&0x8000 != 0
	c.SREG.S = c.SREG.N != c.SREG.V
}

// addFlags applies the ATmega ISA's ADD/ADC flag formulas given the
// pre-operation Rd, the operand Rr, and the 8-bit result.
func (c *CPU) addFlags(rd, rr, res byte) {
	carryBits := (rd & rr) | (rr &^ res) | (^res & rd)
	overflow := (rd & rr &^ res) | (^rd &^ rr & res)
	c.SREG.H = carryBits&0x08 != 0
	c.SREG.C = carryBits&0x80 != 0
	c.SREG.V = overflow&0x80 != 0
	c.setZNS(res)
}

// subFlags applies the ATmega ISA's SUB/SBC flag formulas.
func (c *CPU) subFlags(rd, rr, res byte) {
	carryBits := (^rd & rr) | (rr & res) | (res &^ rd)
	overflow := (rd &^ rr &^ res) | (^rd & rr & res)
	c.SREG.H = carryBits&0x08 != 0
	c.SREG.C = carryBits&0x80 != 0
	c.SREG.V = overflow&0x80 != 0
	c.setZNS(res)
}

// cpcFlags is subFlags but preserves Z when res==0, per CPC's documented
// behavior of never clearing a previously-set zero flag within a multi-byte
// compare chain.
func (c *CPU) cpcFlags(rd, rr, res byte) {
	carryBits := (^rd & rr) | (rr & res) | (res &^ rd)
	overflow := (rd &^ rr &^ res) | (^rd & rr & res)
	c.SREG.H = carryBits&0x08 != 0
	c.SREG.C = carryBits&0x80 != 0
	c.SREG.V = overflow&0x80 != 0
	c.SREG.N = res&0x80 != 0
	c.SREG.S = c.SREG.N != c.SREG.V
	if res != 0 {
		c.SREG.Z = false
	}
}

func (c *CPU) adiwFlags(rdhBefore byte, res uint16) {
	resHigh := byte(res >> 8)
	c.SREG.C = (^resHigh & rdhBefore) & 0x80 != 0
	c.SREG.V = (rdhBefore &^ resHigh) & 0x80 != 0
	c.setZNS16(res)
}

func (c *CPU) sbiwFlags(rdhBefore byte, res uint16) {
	resHigh := byte(res >> 8)
	c.SREG.C = (resHigh &^ rdhBefore) & 0x80 != 0
	c.SREG.V = (rdhBefore &^ resHigh) & 0x80 != 0
	c.setZNS16(res)
}

func (c *CPU) incFlags(res byte) {
	c.SREG.V = res == 0x80
	c.setZNS(res)
}

func (c *CPU) decFlags(res byte) {
	c.SREG.V = res == 0x7F
	c.setZNS(res)
}

func (c *CPU) comFlags(res byte) {
	c.SREG.C = true
	c.SREG.V = false
	c.setZNS(res)
}

func (c *CPU) negFlags(rd, res byte) {
	c.SREG.C = res != 0
	c.SREG.V = res == 0x80
	c.SREG.H = (res|rd)&0x08 != 0
	c.setZNS(res)
}

func (c *CPU) asrFlags(before, res byte) {
	c.SREG.C = before&0x01 != 0
	c.SREG.N = res&0x80 != 0
	c.SREG.V = c.SREG.N != c.SREG.C
	c.SREG.S = c.SREG.N != c.SREG.V
	c.SREG.Z = res == 0
}

func (c *CPU) lsrFlags(before, res byte) {
	c.SREG.C = before&0x01 != 0
	c.SREG.N = false
	c.SREG.V = c.SREG.N != c.SREG.C
	c.SREG.S = c.SREG.N != c.SREG.V
	c.SREG.Z = res == 0
}

func (c *CPU) rorFlags(before, res byte) {
	c.SREG.C = before&0x01 != 0
	c.SREG.N = res&0x80 != 0
	c.SREG.V = c.SREG.N != c.SREG.C
	c.SREG.S = c.SREG.N != c.SREG.V
	c.SREG.Z = res == 0
}
