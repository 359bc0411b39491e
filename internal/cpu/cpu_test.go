package cpu

import (
	"testing"

	"github.com/rcornwell/avrgo/internal/decode"
	"github.com/rcornwell/avrgo/internal/hexload"
)

func newTestCPU(t *testing.T, words []uint16) *CPU {
	t.Helper()
	c, err := New("atmega328p")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bytes := make([]byte, 0, len(words)*2)
	for _, w := range words {
		bytes = append(bytes, byte(w), byte(w>>8))
	}
	if err := c.Flash.Upload([]hexload.Chunk{{Base: 0, Bytes: bytes}}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return c
}

func TestStepLDIandADD(t *testing.T) {
	// LDI r16, 0x10 ; LDI r17, 0x20 ; ADD r16, r17
	c := newTestCPU(t, encode(t, []decode.Op{
		{Instr: decode.LDI, Rd: 16, K: 0x10},
		{Instr: decode.LDI, Rd: 17, K: 0x20},
		{Instr: decode.ADD, Rd: 16, Rr: 17},
	}))

	c.Step()
	c.Step()
	c.Step()

	if got := c.R(16); got != 0x30 {
		t.Errorf("r16 = %#x, want 0x30", got)
	}
	if c.PC != 3 {
		t.Errorf("PC = %d, want 3", c.PC)
	}
}

func TestPushPopRoundtrip(t *testing.T) {
	c := newTestCPU(t, nil)
	c.SetR(5, 0x42)
	sp := c.Mem.SP()
	c.pushByte(c.R(5))
	if c.Mem.SP() != sp-1 {
		t.Fatalf("SP after push = %#x, want %#x", c.Mem.SP(), sp-1)
	}
	v := c.popByte()
	if v != 0x42 {
		t.Errorf("popByte = %#x, want 0x42", v)
	}
	if c.Mem.SP() != sp {
		t.Errorf("SP after pop = %#x, want %#x", c.Mem.SP(), sp)
	}
}

func TestCallRetRoundtrip(t *testing.T) {
	c := newTestCPU(t, nil)
	c.PC = 0x0100
	c.pushReturn(c.PC + 2)
	pc := c.popReturn()
	if pc != 0x0102 {
		t.Errorf("popReturn = %#x, want 0x0102", pc)
	}
}

func TestBLDClearsBitFirst(t *testing.T) {
	c := newTestCPU(t, nil)
	c.SetR(3, 0xFF)
	c.SREG.T = false
	op := decode.Op{Instr: decode.BLD, Rd: 3, B: 2}
	execBLD(c, op)
	if got := c.R(3); got != 0xFB {
		t.Errorf("BLD with T=0 on set bit: r3 = %#08b, want %#08b", got, byte(0xFB))
	}
}

func TestBSTSetsT(t *testing.T) {
	c := newTestCPU(t, nil)
	c.SetR(4, 0x04)
	op := decode.Op{Instr: decode.BST, Rd: 4, B: 2}
	execBST(c, op)
	if !c.SREG.T {
		t.Errorf("BST did not set T from bit 2 of 0x04")
	}
}

func TestSegfaultOnOutOfRangeStore(t *testing.T) {
	c := newTestCPU(t, nil)
	c.SetRPair(regZ, c.Profile.RAMEnd+10)
	op := decode.Op{Instr: decode.ST, Rr: 1, Ptr: decode.PointerZ}
	execST(c, op)
	if c.Exc != Segfault {
		t.Errorf("Exc = %v, want Segfault", c.Exc)
	}
}

func TestCPSESkipsNextInstruction(t *testing.T) {
	c := newTestCPU(t, encode(t, []decode.Op{
		{Instr: decode.LDI, Rd: 16, K: 5},
		{Instr: decode.LDI, Rd: 17, K: 5},
		{Instr: decode.CPSE, Rd: 16, Rr: 17},
		{Instr: decode.LDI, Rd: 18, K: 0xFF}, // should be skipped
		{Instr: decode.LDI, Rd: 19, K: 7},
	}))
	for i := 0; i < 4; i++ {
		c.Step()
	}
	if c.R(18) != 0 {
		t.Errorf("r18 = %#x, want 0 (instruction should have been skipped)", c.R(18))
	}
	if c.R(19) != 7 {
		t.Errorf("r19 = %#x, want 7", c.R(19))
	}
}

// encode assembles Op values into the raw opcode words the decoder reads,
// for the few instructions (LDI, ADD, CPSE) the tests exercise through Step.
func encode(t *testing.T, ops []decode.Op) []uint16 {
	t.Helper()
	words := make([]uint16, 0, len(ops))
	for _, op := range ops {
		switch op.Instr {
		case decode.LDI:
			k := uint16(op.K)
			words = append(words, 0xE000|(k&0xF0)<<4|uint16(op.Rd-16)<<4|(k&0xF))
		case decode.ADD:
			words = append(words, 0x0C00|uint16(op.Rd&0x1F)<<4|uint16(op.Rr&0xF)|uint16(op.Rr&0x10)<<5)
		case decode.CPSE:
			words = append(words, 0x1000|uint16(op.Rd&0x1F)<<4|uint16(op.Rr&0xF)|uint16(op.Rr&0x10)<<5)
		default:
			t.Fatalf("encode: unsupported instr %v in test helper", op.Instr)
		}
	}
	return words
}
