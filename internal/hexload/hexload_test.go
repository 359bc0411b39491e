package hexload

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadReaderSingleRecord(t *testing.T) {
	// Concrete scenario from the record format spec: 16 bytes at 0x0100.
	const rec = ":10010000214601360121470136007EFE09D2190140\n:00000001FF\n"

	chunks, n, err := loadReader(strings.NewReader(rec))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if n != 16 {
		t.Fatalf("total = %d, want 16", n)
	}
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0].Base != 0x0100 {
		t.Fatalf("base = %#x, want 0x100", chunks[0].Base)
	}
	if len(chunks[0].Bytes) != 16 {
		t.Fatalf("size = %d, want 16", len(chunks[0].Bytes))
	}
}

func TestLoadReaderMergesContiguous(t *testing.T) {
	const rec = ":02000000AABB99\n:02000200CCDD53\n:00000001FF\n"

	chunks, n, err := loadReader(strings.NewReader(rec))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if n != 4 {
		t.Fatalf("total = %d, want 4", n)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected merge into a single chunk, got %d", len(chunks))
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	for i, b := range want {
		if chunks[0].Bytes[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, chunks[0].Bytes[i], b)
		}
	}
}

func TestLoadReaderNonContiguousSplits(t *testing.T) {
	const rec = ":02000000AABB99\n:02001000CCDD45\n:00000001FF\n"

	chunks, _, err := loadReader(strings.NewReader(rec))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected two chunks, got %d", len(chunks))
	}
	if chunks[1].Base != 0x10 {
		t.Fatalf("second base = %#x, want 0x10", chunks[1].Base)
	}
}

func TestLoadReaderChecksumMismatch(t *testing.T) {
	const rec = ":10010000214601360121470136007EFE09D2190141\n"

	_, _, err := loadReader(strings.NewReader(rec))
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("err = %v, want ErrChecksum", err)
	}
}

func TestLoadReaderMalformedMissingColon(t *testing.T) {
	const rec = "10010000214601360121470136007EFE09D2190140\n"

	_, _, err := loadReader(strings.NewReader(rec))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestLoadReaderShortRecord(t *testing.T) {
	const rec = ":00\n"

	_, _, err := loadReader(strings.NewReader(rec))
	if !errors.Is(err, ErrShort) {
		t.Fatalf("err = %v, want ErrShort", err)
	}
}

func TestLoadReaderExtendedSegmentAddress(t *testing.T) {
	// ESA record with payload 0x1000 sets segment=0x10000, then a data
	// record at offset 0 lands at absolute address 0x10000.
	const rec = ":020000021000EC\n:01000000AA55\n:00000001FF\n"

	chunks, _, err := loadReader(strings.NewReader(rec))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Base != 0x10000 {
		t.Fatalf("chunks = %+v, want base 0x10000", chunks)
	}
}
