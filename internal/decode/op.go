/*
 * avrgo - Decoded instruction representation.
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

package decode

// Instr is a closed enumeration of AVR instruction kinds. The decoder
// returns the canonical underlying instruction; alias mnemonics (LSL for
// ADD rd,rd, branch condition names, SEC/CLC/...) are resolved by the
// disassembler from the Op's fields, not by the decoder.
type Instr int

const (
	UNDEF Instr = iota
	NOP
	MOVW
	MULS
	MULSU
	FMUL
	FMULS
	FMULSU
	CPC
	SBC
	ADD
	CPSE
	CP
	SUB
	ADC
	AND
	EOR
	OR
	MOV
	CPI
	SBCI
	SUBI
	ORI
	ANDI
	LDI
	LDD
	STD
	LDS
	STS
	LD
	ST
	LPM
	ELPM
	POP
	PUSH
	COM
	NEG
	SWAP
	INC
	DEC
	ASR
	LSR
	ROR
	BSET
	BCLR
	RET
	RETI
	SLEEP
	BREAK
	WDR
	DES
	XCH
	SPM
	IJMP
	EIJMP
	ICALL
	EICALL
	JMP
	CALL
	ADIW
	SBIW
	CBI
	SBIC
	SBI
	SBIS
	MUL
	IN
	OUT
	RJMP
	RCALL
	BRBS
	BRBC
	BLD
	BST
	SBRC
	SBRS

	instrCount
)

// InstrCount is the number of distinct Instr values, for sizing dispatch
// tables indexed by Instr.
const InstrCount = int(instrCount)

// Pointer identifies which index register an LD/ST form addresses through.
type Pointer int

const (
	PointerNone Pointer = iota
	PointerX
	PointerY
	PointerZ
)

// PointerMode describes the auto-increment/decrement behavior of an
// X/Y/Z-indexed LD/ST.
type PointerMode int

const (
	ModePlain PointerMode = iota
	ModePostInc
	ModePreDec
)

// Op is the decoded form of one instruction. Only the fields relevant to
// Instr are meaningful; the rest are zero.
type Op struct {
	Instr Instr
	Raw   uint16
	Words int // 1 or 2; 2 for LDS/STS/JMP/CALL

	Rd int // destination register, 0..31
	Rr int // source register, 0..31
	K  int32
	A  int // I/O address, 0..63
	B  int // bit index, 0..7
	S  int // SREG bit index, 0..7
	Q  int // displacement, 0..63

	Ptr  Pointer
	Mode PointerMode
}
