package flash

import (
	"testing"

	"github.com/rcornwell/avrgo/internal/hexload"
)

func TestUploadAndReadWord(t *testing.T) {
	f := New(0x7FFF)
	chunks := []hexload.Chunk{
		{Base: 0x0100, Bytes: []byte{0x21, 0x46, 0x01, 0x36}},
	}
	if err := f.Upload(chunks); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got := f.ReadWord(0x80); got != 0x4621 {
		t.Fatalf("ReadWord(0x80) = %#x, want 0x4621", got)
	}
	if f.ProgEnd() != 0x0103 {
		t.Fatalf("ProgEnd = %#x, want 0x103", f.ProgEnd())
	}
}

func TestUploadExceedsFlash(t *testing.T) {
	f := New(0x0001)
	chunks := []hexload.Chunk{{Base: 0x0000, Bytes: []byte{1, 2, 3, 4}}}
	if err := f.Upload(chunks); err == nil {
		t.Fatalf("expected error for overflowing upload")
	}
}

func TestReadByteWraps(t *testing.T) {
	f := New(0x0003)
	chunks := []hexload.Chunk{{Base: 0, Bytes: []byte{0xAA, 0xBB, 0xCC, 0xDD}}}
	if err := f.Upload(chunks); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got := f.ReadByte(4); got != 0xAA {
		t.Fatalf("ReadByte(4) = %#x, want wrap to 0xAA", got)
	}
}
