/*
 * avrgo - AVR opcode decoder.
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

// Package decode maps AVR opcodes to a structured Op. Decode is pure: it
// reads only flash words, never CPU state, so the interpreter can use it to
// peek at the next instruction when sizing a skip.
package decode

// WordReader is the minimal flash interface decode needs: a little-endian
// word read by word index.
type WordReader interface {
	ReadWord(w uint16) uint16
}

// d5r5 extracts the standard 5-bit destination/5-bit source register fields
// used by ADD, SUB, CP, AND, MOV and friends.
func d5r5(raw uint16) (rd, rr int) {
	rd = int((raw >> 4) & 0x1F)
	rr = int((raw&0xF)) | int((raw>>5)&0x10)
	return
}

// d4k8 extracts the 4-bit-destination (offset by 16)/8-bit-immediate fields
// used by CPI, SBCI, SUBI, ORI, ANDI, LDI.
func d4k8(raw uint16) (rd int, k int32) {
	rd = 16 + int((raw>>4)&0xF)
	k = int32(((raw >> 4) & 0xF0) | (raw & 0xF))
	return
}

func signExtend(v uint16, bits int) int32 {
	shift := 32 - bits
	return int32(uint32(v)<<shift) >> shift
}

// Decode reads one instruction at word index pc and returns its decoded
// form. It is total over all 65536 raw words: unrecognized encodings
// decode to UNDEF.
func Decode(r WordReader, pc uint16) Op {
	raw := r.ReadWord(pc)
	op := decodeRaw(raw)
	if op.Words == 2 {
		second := r.ReadWord(pc + 1)
		switch op.Instr {
		case LDS, STS:
			op.K = int32(second)
		case JMP, CALL:
			op.K |= int32(second)
		}
	}
	return op
}

func decodeRaw(raw uint16) Op {
	op := Op{Raw: raw, Words: 1}

	switch {
	case raw == 0x0000:
		op.Instr = NOP

	case raw&0xFF00 == 0x0100:
		op.Instr = MOVW
		op.Rd = int((raw>>4)&0xF) * 2
		op.Rr = int(raw&0xF) * 2

	case raw&0xFF00 == 0x0200:
		op.Instr = MULS
		op.Rd = 16 + int((raw>>4)&0xF)
		op.Rr = 16 + int(raw&0xF)

	case raw&0xFF00 == 0x0300:
		op.Rd = 16 + int((raw>>4)&7)
		op.Rr = 16 + int(raw&7)
		// bit7 selects signed family, bit3 selects F-variant
		switch {
		case raw&0x0080 == 0 && raw&0x0008 == 0:
			op.Instr = MULSU
		case raw&0x0080 == 0 && raw&0x0008 != 0:
			op.Instr = FMUL
		case raw&0x0080 != 0 && raw&0x0008 == 0:
			op.Instr = FMULS
		default:
			op.Instr = FMULSU
		}

	case raw&0xFC00 == 0x0400:
		op.Instr = CPC
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x0800:
		op.Instr = SBC
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x0C00:
		op.Instr = ADD
		op.Rd, op.Rr = d5r5(raw)

	case raw&0xFC00 == 0x1000:
		op.Instr = CPSE
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x1400:
		op.Instr = CP
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x1800:
		op.Instr = SUB
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x1C00:
		op.Instr = ADC
		op.Rd, op.Rr = d5r5(raw)

	case raw&0xFC00 == 0x2000:
		op.Instr = AND
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x2400:
		op.Instr = EOR
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x2800:
		op.Instr = OR
		op.Rd, op.Rr = d5r5(raw)
	case raw&0xFC00 == 0x2C00:
		op.Instr = MOV
		op.Rd, op.Rr = d5r5(raw)

	case raw&0xF000 == 0x3000:
		op.Instr = CPI
		op.Rd, op.K = d4k8(raw)
	case raw&0xF000 == 0x4000:
		op.Instr = SBCI
		op.Rd, op.K = d4k8(raw)
	case raw&0xF000 == 0x5000:
		op.Instr = SUBI
		op.Rd, op.K = d4k8(raw)
	case raw&0xF000 == 0x6000:
		op.Instr = ORI
		op.Rd, op.K = d4k8(raw)
	case raw&0xF000 == 0x7000:
		op.Instr = ANDI
		op.Rd, op.K = d4k8(raw)
	case raw&0xF000 == 0xE000:
		op.Instr = LDI
		op.Rd, op.K = d4k8(raw)

	case raw&0xF000 == 0x8000 || raw&0xF000 == 0xA000:
		decodeLddStd(raw, &op)

	case raw&0xF000 == 0x9000:
		decode9000(raw, &op)

	case raw&0xF000 == 0xB000:
		op.A = int((raw>>5)&0x30) | int(raw&0xF)
		op.Rd = int((raw >> 4) & 0x1F)
		if raw&0x0800 == 0 {
			op.Instr = IN
		} else {
			op.Instr = OUT
			op.Rr = op.Rd
		}

	case raw&0xF000 == 0xC000:
		op.Instr = RJMP
		op.K = signExtend(raw&0x0FFF, 12)
	case raw&0xF000 == 0xD000:
		op.Instr = RCALL
		op.K = signExtend(raw&0x0FFF, 12)

	case raw&0xF000 == 0xF000:
		decodeF000(raw, &op)

	default:
		op.Instr = UNDEF
	}

	return op
}

func decodeLddStd(raw uint16, op *Op) {
	std := raw&0x0200 != 0
	if std {
		op.Instr = STD
	} else {
		op.Instr = LDD
	}
	op.Rd = int((raw >> 4) & 0x1F)
	op.Rr = op.Rd
	if raw&0x0008 != 0 {
		op.Ptr = PointerY
	} else {
		op.Ptr = PointerZ
	}
	op.Q = int((raw>>8)&0x20) | int((raw>>7)&0x18) | int(raw&7)
}

func decode9000(raw uint16, op *Op) {
	switch {
	case raw&0xFE00 == 0x9000:
		decodeLoadGroup(raw, op)
	case raw&0xFE00 == 0x9200:
		decodeStoreGroup(raw, op)
	case raw&0xFE00 == 0x9400:
		decodeMiscGroup(raw, op)
	case raw&0xFF00 == 0x9600:
		op.Instr = ADIW
		op.K = int32(((raw >> 2) & 0x30) | (raw & 0xF))
		op.Rd = 24 + int((raw>>3)&6)
		op.Rr = op.Rd
	case raw&0xFF00 == 0x9700:
		op.Instr = SBIW
		op.K = int32(((raw >> 2) & 0x30) | (raw & 0xF))
		op.Rd = 24 + int((raw>>3)&6)
		op.Rr = op.Rd
	case raw&0xFF00 == 0x9800:
		op.Instr = CBI
		op.A = int((raw >> 3) & 0x1F)
		op.B = int(raw & 7)
	case raw&0xFF00 == 0x9900:
		op.Instr = SBIC
		op.A = int((raw >> 3) & 0x1F)
		op.B = int(raw & 7)
	case raw&0xFF00 == 0x9A00:
		op.Instr = SBI
		op.A = int((raw >> 3) & 0x1F)
		op.B = int(raw & 7)
	case raw&0xFF00 == 0x9B00:
		op.Instr = SBIS
		op.A = int((raw >> 3) & 0x1F)
		op.B = int(raw & 7)
	case raw&0xFC00 == 0x9C00:
		op.Instr = MUL
		op.Rd, op.Rr = d5r5(raw)
	default:
		op.Instr = UNDEF
	}
}

func decodeLoadGroup(raw uint16, op *Op) {
	rd := int((raw >> 4) & 0x1F)
	op.Rd = rd
	op.Rr = rd
	switch raw & 0xF {
	case 0x0:
		op.Instr = LDS
		op.Words = 2
	case 0x1:
		op.Instr = LD
		op.Ptr, op.Mode = PointerZ, ModePostInc
	case 0x2:
		op.Instr = LD
		op.Ptr, op.Mode = PointerZ, ModePreDec
	case 0x4:
		op.Instr = LPM
		op.Ptr, op.Mode = PointerZ, ModePlain
	case 0x5:
		op.Instr = LPM
		op.Ptr, op.Mode = PointerZ, ModePostInc
	case 0x6:
		op.Instr = ELPM
		op.Ptr, op.Mode = PointerZ, ModePlain
	case 0x7:
		op.Instr = ELPM
		op.Ptr, op.Mode = PointerZ, ModePostInc
	case 0x9:
		op.Instr = LD
		op.Ptr, op.Mode = PointerY, ModePostInc
	case 0xA:
		op.Instr = LD
		op.Ptr, op.Mode = PointerY, ModePreDec
	case 0xC:
		op.Instr = LD
		op.Ptr, op.Mode = PointerX, ModePlain
	case 0xD:
		op.Instr = LD
		op.Ptr, op.Mode = PointerX, ModePostInc
	case 0xE:
		op.Instr = LD
		op.Ptr, op.Mode = PointerX, ModePreDec
	case 0xF:
		op.Instr = POP
	default:
		op.Instr = UNDEF
	}
}

func decodeStoreGroup(raw uint16, op *Op) {
	rr := int((raw >> 4) & 0x1F)
	op.Rr = rr
	op.Rd = rr
	switch raw & 0xF {
	case 0x0:
		op.Instr = STS
		op.Words = 2
	case 0x1:
		op.Instr = ST
		op.Ptr, op.Mode = PointerZ, ModePostInc
	case 0x2:
		op.Instr = ST
		op.Ptr, op.Mode = PointerZ, ModePreDec
	case 0x4:
		op.Instr = XCH
	case 0x9:
		op.Instr = ST
		op.Ptr, op.Mode = PointerY, ModePostInc
	case 0xA:
		op.Instr = ST
		op.Ptr, op.Mode = PointerY, ModePreDec
	case 0xC:
		op.Instr = ST
		op.Ptr, op.Mode = PointerX, ModePlain
	case 0xD:
		op.Instr = ST
		op.Ptr, op.Mode = PointerX, ModePostInc
	case 0xE:
		op.Instr = ST
		op.Ptr, op.Mode = PointerX, ModePreDec
	case 0xF:
		op.Instr = PUSH
	default:
		op.Instr = UNDEF
	}
}

func decodeMiscGroup(raw uint16, op *Op) {
	nibble := raw & 0xF
	rd := int((raw >> 4) & 0x1F)

	switch nibble {
	case 0x0:
		op.Instr = COM
		op.Rd = rd
	case 0x1:
		op.Instr = NEG
		op.Rd = rd
	case 0x2:
		op.Instr = SWAP
		op.Rd = rd
	case 0x3:
		op.Instr = INC
		op.Rd = rd
	case 0x5:
		op.Instr = ASR
		op.Rd = rd
	case 0x6:
		op.Instr = LSR
		op.Rd = rd
	case 0x7:
		op.Instr = ROR
		op.Rd = rd
	case 0x8:
		decodeFixedOrBitOp(raw, op)
	case 0x9:
		decodeIndirectJump(raw, op)
	case 0xA:
		op.Instr = DEC
		op.Rd = rd
	case 0xB:
		if raw&0xFF00 == 0x9400 {
			op.Instr = DES
			op.K = int32(rd)
		} else {
			op.Instr = UNDEF
		}
	case 0xC, 0xD:
		op.Instr = JMP
		op.Words = 2
		op.K = int32((((raw >> 3) & 0x3E) | (raw & 1))) << 16
	case 0xE, 0xF:
		op.Instr = CALL
		op.Words = 2
		op.K = int32((((raw >> 3) & 0x3E) | (raw & 1))) << 16
	default:
		op.Instr = UNDEF
	}
}

func decodeFixedOrBitOp(raw uint16, op *Op) {
	if raw&0xFF00 == 0x9400 {
		op.S = int((raw >> 4) & 7)
		if raw&0x0080 == 0 {
			op.Instr = BSET
		} else {
			op.Instr = BCLR
		}
		return
	}
	switch raw {
	case 0x9508:
		op.Instr = RET
	case 0x9518:
		op.Instr = RETI
	case 0x9588:
		op.Instr = SLEEP
	case 0x9598:
		op.Instr = BREAK
	case 0x95A8:
		op.Instr = WDR
	case 0x95C8:
		op.Instr = LPM
		op.Ptr, op.Mode = PointerZ, ModePlain
	case 0x95D8:
		op.Instr = ELPM
		op.Ptr, op.Mode = PointerZ, ModePlain
	case 0x95E8:
		op.Instr = SPM
	default:
		op.Instr = UNDEF
	}
}

func decodeIndirectJump(raw uint16, op *Op) {
	switch raw {
	case 0x9409:
		op.Instr = IJMP
	case 0x9419:
		op.Instr = EIJMP
	case 0x9509:
		op.Instr = ICALL
	case 0x9519:
		op.Instr = EICALL
	default:
		op.Instr = UNDEF
	}
}

func decodeF000(raw uint16, op *Op) {
	switch {
	case raw&0xFC00 == 0xF000:
		op.Instr = BRBS
		op.S = int(raw & 7)
		op.K = signExtend((raw>>3)&0x7F, 7)
	case raw&0xFC00 == 0xF400:
		op.Instr = BRBC
		op.S = int(raw & 7)
		op.K = signExtend((raw>>3)&0x7F, 7)
	case raw&0xFE00 == 0xF800:
		if raw&8 == 0 {
			op.Instr = BLD
			op.Rd = int((raw >> 4) & 0x1F)
			op.B = int(raw & 7)
		} else {
			op.Instr = UNDEF
		}
	case raw&0xFE00 == 0xFA00:
		if raw&8 == 0 {
			op.Instr = BST
			op.Rd = int((raw >> 4) & 0x1F)
			op.B = int(raw & 7)
		} else {
			op.Instr = UNDEF
		}
	case raw&0xFE00 == 0xFC00:
		if raw&8 == 0 {
			op.Instr = SBRC
			op.Rd = int((raw >> 4) & 0x1F)
			op.B = int(raw & 7)
		} else {
			op.Instr = UNDEF
		}
	case raw&0xFE00 == 0xFE00:
		if raw&8 == 0 {
			op.Instr = SBRS
			op.Rd = int((raw >> 4) & 0x1F)
			op.B = int(raw & 7)
		} else {
			op.Instr = UNDEF
		}
	default:
		op.Instr = UNDEF
	}
}
