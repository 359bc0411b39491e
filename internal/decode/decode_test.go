package decode

import "testing"

type flatMem []uint16

func (m flatMem) ReadWord(w uint16) uint16 {
	if int(w) >= len(m) {
		return 0
	}
	return m[w]
}

func TestDecodeTotality(t *testing.T) {
	for raw := 0; raw <= 0xFFFF; raw++ {
		op := decodeRaw(uint16(raw))
		if op.Words != 1 && op.Words != 2 {
			t.Fatalf("raw=%#04x: Words=%d, want 1 or 2", raw, op.Words)
		}
	}
}

func TestDecodeLDI(t *testing.T) {
	op := Decode(flatMem{0xE005}, 0)
	if op.Instr != LDI || op.Rd != 16 || op.K != 5 {
		t.Fatalf("got %+v, want LDI rd=16 k=5", op)
	}
}

func TestDecodeADD(t *testing.T) {
	op := Decode(flatMem{0x0C12}, 0)
	if op.Instr != ADD || op.Rd != 1 || op.Rr != 2 {
		t.Fatalf("got %+v, want ADD rd=1 rr=2", op)
	}
}

func TestDecodeSUB(t *testing.T) {
	op := Decode(flatMem{0x1834}, 0)
	if op.Instr != SUB || op.Rd != 3 || op.Rr != 4 {
		t.Fatalf("got %+v, want SUB rd=3 rr=4", op)
	}
}

func TestDecodeRJMPNegativeOffset(t *testing.T) {
	op := Decode(flatMem{0xCFFE}, 0)
	if op.Instr != RJMP || op.K != -2 {
		t.Fatalf("got %+v, want RJMP k=-2", op)
	}
}

func TestDecodeCPSE(t *testing.T) {
	op := Decode(flatMem{0x1211}, 0)
	if op.Instr != CPSE {
		t.Fatalf("got %+v, want CPSE", op)
	}
}

func TestDecodeNOP(t *testing.T) {
	op := Decode(flatMem{0x0000}, 0)
	if op.Instr != NOP {
		t.Fatalf("got %+v, want NOP", op)
	}
}

func TestDecodeJMPTwoWords(t *testing.T) {
	// JMP 0x000200: low word encodes bits, high word is absolute.
	op := Decode(flatMem{0x940C, 0x0200}, 0)
	if op.Instr != JMP || op.Words != 2 || op.K != 0x200 {
		t.Fatalf("got %+v, want JMP k=0x200", op)
	}
}

func TestDecodeCALLTwoWords(t *testing.T) {
	op := Decode(flatMem{0x940E, 0x0100}, 0)
	if op.Instr != CALL || op.Words != 2 || op.K != 0x100 {
		t.Fatalf("got %+v, want CALL k=0x100", op)
	}
}

func TestDecodeLDSSTS(t *testing.T) {
	lds := Decode(flatMem{0x9000, 0x0150}, 0)
	if lds.Instr != LDS || lds.Words != 2 || lds.K != 0x150 {
		t.Fatalf("got %+v, want LDS k=0x150", lds)
	}
	sts := Decode(flatMem{0x9200, 0x0160}, 0)
	if sts.Instr != STS || sts.Words != 2 || sts.K != 0x160 {
		t.Fatalf("got %+v, want STS k=0x160", sts)
	}
}

func TestDecodeFixedMiscEncodings(t *testing.T) {
	cases := []struct {
		raw   uint16
		instr Instr
	}{
		{0x9508, RET},
		{0x9518, RETI},
		{0x9588, SLEEP},
		{0x9598, BREAK},
		{0x95A8, WDR},
		{0x9409, IJMP},
		{0x9419, EIJMP},
		{0x9509, ICALL},
		{0x9519, EICALL},
	}
	for _, c := range cases {
		op := decodeRaw(c.raw)
		if op.Instr != c.instr {
			t.Fatalf("raw=%#04x: got %v, want %v", c.raw, op.Instr, c.instr)
		}
	}
}

func TestDecodeBSETBCLR(t *testing.T) {
	bset := decodeRaw(0x9408) // BSET s=0
	if bset.Instr != BSET || bset.S != 0 {
		t.Fatalf("got %+v, want BSET s=0", bset)
	}
	bclr := decodeRaw(0x9488) // BCLR s=0
	if bclr.Instr != BCLR || bclr.S != 0 {
		t.Fatalf("got %+v, want BCLR s=0", bclr)
	}
}

func TestDecodeSkipInstructions(t *testing.T) {
	sbrc := decodeRaw(0xFC01) // SBRC r0,b1
	if sbrc.Instr != SBRC || sbrc.B != 1 {
		t.Fatalf("got %+v, want SBRC b=1", sbrc)
	}
	sbrs := decodeRaw(0xFE01) // SBRS r0,b1
	if sbrs.Instr != SBRS || sbrs.B != 1 {
		t.Fatalf("got %+v, want SBRS b=1", sbrs)
	}
}

func TestDecodeBranch(t *testing.T) {
	op := decodeRaw(0xF001) // BRBS s=1, k=0
	if op.Instr != BRBS || op.S != 1 || op.K != 0 {
		t.Fatalf("got %+v, want BRBS s=1 k=0", op)
	}
}

func TestDecodeSBIfamily(t *testing.T) {
	cbi := decodeRaw(0x9800)
	if cbi.Instr != CBI {
		t.Fatalf("got %+v, want CBI", cbi)
	}
	sbi := decodeRaw(0x9A00)
	if sbi.Instr != SBI {
		t.Fatalf("got %+v, want SBI", sbi)
	}
}

func TestDecodeADIWSBIW(t *testing.T) {
	adiw := decodeRaw(0x9601) // rd pair 24, k=1
	if adiw.Instr != ADIW || adiw.Rd != 24 || adiw.K != 1 {
		t.Fatalf("got %+v, want ADIW rd=24 k=1", adiw)
	}
	sbiw := decodeRaw(0x9701) // rd pair 24, k=1
	if sbiw.Instr != SBIW || sbiw.Rd != 24 || sbiw.K != 1 {
		t.Fatalf("got %+v, want SBIW rd=24 k=1", sbiw)
	}
}

func TestDecodeInOut(t *testing.T) {
	in := decodeRaw(0xB000)
	if in.Instr != IN {
		t.Fatalf("got %+v, want IN", in)
	}
	out := decodeRaw(0xB800)
	if out.Instr != OUT {
		t.Fatalf("got %+v, want OUT", out)
	}
}
