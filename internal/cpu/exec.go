/*
 * avrgo - Instruction dispatch.
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

import (
	"github.com/rcornwell/avrgo/internal/decode"
	"github.com/rcornwell/avrgo/internal/disasm"
	"github.com/rcornwell/avrgo/util/debugf"
)

// execFn executes one decoded instruction and returns the PC (word index)
// to resume at and the number of cycles it cost.
type execFn func(c *CPU, op decode.Op) (nextPC uint16, cycles int)

var table [decode.InstrCount]execFn

func init() {
	createTable()
}

// createTable wires every Instr to its executor. Entries left nil decode
// to something the interpreter does not yet implement and are treated as
// UNDEF at step time.
func createTable() {
	table[decode.NOP] = execNOP
	table[decode.MOVW] = execMOVW
	table[decode.MULS] = execMULS
	table[decode.MULSU] = execMULSU
	table[decode.FMUL] = execFMUL
	table[decode.FMULS] = execFMULS
	table[decode.FMULSU] = execFMULSU
	table[decode.CPC] = execCPC
	table[decode.SBC] = execSBC
	table[decode.ADD] = execADD
	table[decode.CPSE] = execCPSE
	table[decode.CP] = execCP
	table[decode.SUB] = execSUB
	table[decode.ADC] = execADC
	table[decode.AND] = execAND
	table[decode.EOR] = execEOR
	table[decode.OR] = execOR
	table[decode.MOV] = execMOV
	table[decode.CPI] = execCPI
	table[decode.SBCI] = execSBCI
	table[decode.SUBI] = execSUBI
	table[decode.ORI] = execORI
	table[decode.ANDI] = execANDI
	table[decode.LDI] = execLDI
	table[decode.LDD] = execLDD
	table[decode.STD] = execSTD
	table[decode.LDS] = execLDS
	table[decode.STS] = execSTS
	table[decode.LD] = execLD
	table[decode.ST] = execST
	table[decode.LPM] = execLPM
	table[decode.ELPM] = execELPM
	table[decode.POP] = execPOP
	table[decode.PUSH] = execPUSH
	table[decode.COM] = execCOM
	table[decode.NEG] = execNEG
	table[decode.SWAP] = execSWAP
	table[decode.INC] = execINC
	table[decode.DEC] = execDEC
	table[decode.ASR] = execASR
	table[decode.LSR] = execLSR
	table[decode.ROR] = execROR
	table[decode.BSET] = execBSET
	table[decode.BCLR] = execBCLR
	table[decode.RET] = execRET
	table[decode.RETI] = execRETI
	table[decode.SLEEP] = execSLEEP
	table[decode.BREAK] = execBREAK
	table[decode.WDR] = execTodo
	table[decode.DES] = execTodo
	table[decode.XCH] = execTodo
	table[decode.SPM] = execTodo
	table[decode.IJMP] = execIJMP
	table[decode.EIJMP] = execTodo
	table[decode.ICALL] = execICALL
	table[decode.EICALL] = execTodo
	table[decode.JMP] = execJMP
	table[decode.CALL] = execCALL
	table[decode.ADIW] = execADIW
	table[decode.SBIW] = execSBIW
	table[decode.CBI] = execCBI
	table[decode.SBIC] = execSBIC
	table[decode.SBI] = execSBI
	table[decode.SBIS] = execSBIS
	table[decode.MUL] = execMUL
	table[decode.IN] = execIN
	table[decode.OUT] = execOUT
	table[decode.RJMP] = execRJMP
	table[decode.RCALL] = execRCALL
	table[decode.BRBS] = execBRBS
	table[decode.BRBC] = execBRBC
	table[decode.BLD] = execBLD
	table[decode.BST] = execBST
	table[decode.SBRC] = execSBRC
	table[decode.SBRS] = execSBRS
}

// Step decodes and executes the instruction at PC, advancing PC, cycle
// count, and (on a terminal condition) Exc or State.
func (c *CPU) Step() {
	op := decode.Decode(c.Flash, c.PC)

	if c.Trace {
		debugf.Debugf("cpu", debugMsk|debugInst, debugInst, "%04x: %s", c.PC, disasm.Format(op))
	}

	fn := table[op.Instr]
	if op.Instr == decode.UNDEF || fn == nil {
		c.Exc = Crash
		debugStep("crash: undefined opcode %#04x at pc=%#04x", op.Raw, c.PC)
		return
	}

	next, cycles := fn(c, op)
	c.PC = next
	c.Cycle += uint64(cycles)
}

// segfault checks a computed SRAM address against RAMEND, setting Exc and
// returning false if it is out of range. The caller must abandon the
// instruction's remaining side effects when this returns false.
func (c *CPU) segfault(addr uint16) bool {
	if addr > c.Mem.End() {
		c.Exc = Segfault
		debugStep("segfault: address %#04x exceeds RAMEND %#04x", addr, c.Mem.End())
		return false
	}
	return true
}

// skip decides, without side effects, how many words to advance past the
// instruction immediately following pc when a skip-next test matches.
func (c *CPU) skip(pc uint16) uint16 {
	next := decode.Decode(c.Flash, pc)
	return uint16(next.Words)
}
