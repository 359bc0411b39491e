package memory

import "testing"

func TestSPAliasing(t *testing.T) {
	m := New(0x08FF)
	m.SetSP(0x08FF)

	if got := m.Read(SPL); got != 0xFF {
		t.Fatalf("Read(SPL) = %#x, want 0xFF", got)
	}
	if got := m.Read(SPH); got != 0x08 {
		t.Fatalf("Read(SPH) = %#x, want 0x08", got)
	}

	m.Write(SPL, 0xFE)
	if m.SP() != 0x08FE {
		t.Fatalf("SP() = %#x, want 0x08FE after SPL write", m.SP())
	}

	m.Write(SPH, 0x07)
	if m.SP() != 0x07FE {
		t.Fatalf("SP() = %#x, want 0x07FE after SPH write", m.SP())
	}
}

func TestRegisterFileVisibleAtLowAddresses(t *testing.T) {
	m := New(0x08FF)
	m.Write(5, 0x42)
	if got := m.Read(5); got != 0x42 {
		t.Fatalf("Read(5) = %#x, want 0x42", got)
	}
}

func TestWriteWrapsPastRAMEND(t *testing.T) {
	m := New(0x0003)
	m.Write(4, 0xAB)
	if got := m.Read(0); got != 0xAB {
		t.Fatalf("expected wrap to address 0, got Read(0)=%#x", got)
	}
}

func TestWordAccessLittleEndian(t *testing.T) {
	m := New(0x08FF)
	m.WriteWord(0x0100, 0x1234)
	if got := m.Read(0x0100); got != 0x34 {
		t.Fatalf("low byte = %#x, want 0x34", got)
	}
	if got := m.Read(0x0101); got != 0x12 {
		t.Fatalf("high byte = %#x, want 0x12", got)
	}
	if got := m.ReadWord(0x0100); got != 0x1234 {
		t.Fatalf("ReadWord = %#x, want 0x1234", got)
	}
}
