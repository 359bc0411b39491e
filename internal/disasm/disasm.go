/*
 * avrgo - AVR disassembler.
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

// Package disasm renders a decode.Op as AVR assembly text. It is a pure
// function of the Op; it never touches CPU state, flash, or memory.
package disasm

import (
	"fmt"
	"strconv"

	"github.com/rcornwell/avrgo/internal/decode"
)

// branchSetCond names the eight SREG-bit branch conditions, indexed by s,
// for the BRBS (branch-if-set) polarity. branchClearCond holds the
// complementary BRBC mnemonics.
var branchSetCond = [8]string{"BRCS", "BREQ", "BRMI", "BRVS", "BRLT", "BRHS", "BRTS", "BRIE"}
var branchClearCond = [8]string{"BRCC", "BRNE", "BRPL", "BRVC", "BRGE", "BRHC", "BRTC", "BRID"}

var sregBitName = [8]string{"C", "Z", "N", "V", "S", "H", "T", "I"}

func ptrName(p decode.Pointer) string {
	switch p {
	case decode.PointerX:
		return "X"
	case decode.PointerY:
		return "Y"
	case decode.PointerZ:
		return "Z"
	default:
		return "?"
	}
}

func ptrOperand(p decode.Pointer, mode decode.PointerMode) string {
	name := ptrName(p)
	switch mode {
	case decode.ModePostInc:
		return name + "+"
	case decode.ModePreDec:
		return "-" + name
	default:
		return name
	}
}

func reg(n int) string {
	return "R" + strconv.Itoa(n)
}

// Format renders op as a single assembly-style line, e.g. "ADD R1,R2".
func Format(op decode.Op) string {
	switch op.Instr {
	case decode.NOP:
		return "NOP"
	case decode.MOVW:
		return fmt.Sprintf("MOVW %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.MULS:
		return fmt.Sprintf("MULS %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.MULSU:
		return fmt.Sprintf("MULSU %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.FMUL:
		return fmt.Sprintf("FMUL %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.FMULS:
		return fmt.Sprintf("FMULS %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.FMULSU:
		return fmt.Sprintf("FMULSU %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.CPC:
		return fmt.Sprintf("CPC %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.SBC:
		return fmt.Sprintf("SBC %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.ADD:
		if op.Rd == op.Rr {
			return fmt.Sprintf("LSL %s", reg(op.Rd))
		}
		return fmt.Sprintf("ADD %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.CPSE:
		return fmt.Sprintf("CPSE %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.CP:
		return fmt.Sprintf("CP %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.SUB:
		return fmt.Sprintf("SUB %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.ADC:
		if op.Rd == op.Rr {
			return fmt.Sprintf("ROL %s", reg(op.Rd))
		}
		return fmt.Sprintf("ADC %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.AND:
		return fmt.Sprintf("AND %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.EOR:
		if op.Rd == op.Rr {
			return fmt.Sprintf("CLR %s", reg(op.Rd))
		}
		return fmt.Sprintf("EOR %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.OR:
		return fmt.Sprintf("OR %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.MOV:
		return fmt.Sprintf("MOV %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.CPI:
		return fmt.Sprintf("CPI %s,%#x", reg(op.Rd), op.K)
	case decode.SBCI:
		return fmt.Sprintf("SBCI %s,%#x", reg(op.Rd), op.K)
	case decode.SUBI:
		return fmt.Sprintf("SUBI %s,%#x", reg(op.Rd), op.K)
	case decode.ORI:
		return fmt.Sprintf("ORI %s,%#x", reg(op.Rd), op.K)
	case decode.ANDI:
		return fmt.Sprintf("ANDI %s,%#x", reg(op.Rd), op.K)
	case decode.LDI:
		return fmt.Sprintf("LDI %s,%#x", reg(op.Rd), op.K)
	case decode.LDD:
		if op.Q == 0 {
			return fmt.Sprintf("LD %s,%s", reg(op.Rd), ptrName(op.Ptr))
		}
		return fmt.Sprintf("LDD %s,%s+%d", reg(op.Rd), ptrName(op.Ptr), op.Q)
	case decode.STD:
		if op.Q == 0 {
			return fmt.Sprintf("ST %s,%s", ptrName(op.Ptr), reg(op.Rr))
		}
		return fmt.Sprintf("STD %s+%d,%s", ptrName(op.Ptr), op.Q, reg(op.Rr))
	case decode.LDS:
		return fmt.Sprintf("LDS %s,%#x", reg(op.Rd), op.K)
	case decode.STS:
		return fmt.Sprintf("STS %#x,%s", op.K, reg(op.Rr))
	case decode.LD:
		return fmt.Sprintf("LD %s,%s", reg(op.Rd), ptrOperand(op.Ptr, op.Mode))
	case decode.ST:
		return fmt.Sprintf("ST %s,%s", ptrOperand(op.Ptr, op.Mode), reg(op.Rr))
	case decode.LPM:
		if op.Mode == decode.ModePlain && op.Ptr == decode.PointerNone {
			return "LPM"
		}
		return fmt.Sprintf("LPM %s,%s", reg(op.Rd), ptrOperand(op.Ptr, op.Mode))
	case decode.ELPM:
		if op.Mode == decode.ModePlain && op.Ptr == decode.PointerNone {
			return "ELPM"
		}
		return fmt.Sprintf("ELPM %s,%s", reg(op.Rd), ptrOperand(op.Ptr, op.Mode))
	case decode.POP:
		return fmt.Sprintf("POP %s", reg(op.Rd))
	case decode.PUSH:
		return fmt.Sprintf("PUSH %s", reg(op.Rr))
	case decode.COM:
		return fmt.Sprintf("COM %s", reg(op.Rd))
	case decode.NEG:
		return fmt.Sprintf("NEG %s", reg(op.Rd))
	case decode.SWAP:
		return fmt.Sprintf("SWAP %s", reg(op.Rd))
	case decode.INC:
		return fmt.Sprintf("INC %s", reg(op.Rd))
	case decode.DEC:
		return fmt.Sprintf("DEC %s", reg(op.Rd))
	case decode.ASR:
		return fmt.Sprintf("ASR %s", reg(op.Rd))
	case decode.LSR:
		return fmt.Sprintf("LSR %s", reg(op.Rd))
	case decode.ROR:
		return fmt.Sprintf("ROR %s", reg(op.Rd))
	case decode.BSET:
		return "SE" + sregBitName[op.S]
	case decode.BCLR:
		return "CL" + sregBitName[op.S]
	case decode.RET:
		return "RET"
	case decode.RETI:
		return "RETI"
	case decode.SLEEP:
		return "SLEEP"
	case decode.BREAK:
		return "BREAK"
	case decode.WDR:
		return "WDR"
	case decode.DES:
		return fmt.Sprintf("DES %#x", op.K)
	case decode.XCH:
		return fmt.Sprintf("XCH Z,%s", reg(op.Rd))
	case decode.SPM:
		return "SPM"
	case decode.IJMP:
		return "IJMP"
	case decode.EIJMP:
		return "EIJMP"
	case decode.ICALL:
		return "ICALL"
	case decode.EICALL:
		return "EICALL"
	case decode.JMP:
		return fmt.Sprintf("JMP %#x", op.K)
	case decode.CALL:
		return fmt.Sprintf("CALL %#x", op.K)
	case decode.ADIW:
		return fmt.Sprintf("ADIW %s,%#x", reg(op.Rd), op.K)
	case decode.SBIW:
		return fmt.Sprintf("SBIW %s,%#x", reg(op.Rd), op.K)
	case decode.CBI:
		return fmt.Sprintf("CBI %#x,%d", op.A, op.B)
	case decode.SBIC:
		return fmt.Sprintf("SBIC %#x,%d", op.A, op.B)
	case decode.SBI:
		return fmt.Sprintf("SBI %#x,%d", op.A, op.B)
	case decode.SBIS:
		return fmt.Sprintf("SBIS %#x,%d", op.A, op.B)
	case decode.MUL:
		return fmt.Sprintf("MUL %s,%s", reg(op.Rd), reg(op.Rr))
	case decode.IN:
		return fmt.Sprintf("IN %s,%#x", reg(op.Rd), op.A)
	case decode.OUT:
		return fmt.Sprintf("OUT %#x,%s", op.A, reg(op.Rr))
	case decode.RJMP:
		return fmt.Sprintf("RJMP %+d", op.K)
	case decode.RCALL:
		return fmt.Sprintf("RCALL %+d", op.K)
	case decode.BRBS:
		return fmt.Sprintf("%s %+d", branchSetCond[op.S], op.K)
	case decode.BRBC:
		return fmt.Sprintf("%s %+d", branchClearCond[op.S], op.K)
	case decode.BLD:
		return fmt.Sprintf("BLD %s,%d", reg(op.Rd), op.B)
	case decode.BST:
		return fmt.Sprintf("BST %s,%d", reg(op.Rd), op.B)
	case decode.SBRC:
		return fmt.Sprintf("SBRC %s,%d", reg(op.Rd), op.B)
	case decode.SBRS:
		return fmt.Sprintf("SBRS %s,%d", reg(op.Rd), op.B)
	default:
		return fmt.Sprintf(".DW %#04x", op.Raw)
	}
}
