package core

import (
	"testing"
	"time"

	"github.com/rcornwell/avrgo/internal/cpu"
	"github.com/rcornwell/avrgo/internal/hexload"
)

func newTestCore(t *testing.T, words []uint16) *Core {
	t.Helper()
	c, err := cpu.New("atmega328p")
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}
	bytes := make([]byte, 0, len(words)*2)
	for _, w := range words {
		bytes = append(bytes, byte(w), byte(w>>8))
	}
	if err := c.Flash.Upload([]hexload.Chunk{{Base: 0, Bytes: bytes}}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return New(c)
}

func TestStepCommandAdvancesOneInstruction(t *testing.T) {
	co := newTestCore(t, []uint16{0x0000, 0x0000}) // NOP, NOP
	go co.Start()
	defer co.Stop()

	co.Send(Step)
	waitForPC(t, co, 1)
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	co := newTestCore(t, []uint16{0x0000, 0x0000, 0x0000})
	co.SetBreakpoint(2)
	go co.Start()
	defer co.Stop()

	co.Send(Run)
	waitForPC(t, co, 2)

	time.Sleep(20 * time.Millisecond)
	if co.CPU.PC != 2 {
		t.Errorf("PC = %d, expected run loop to halt at breakpoint 2", co.CPU.PC)
	}
}

func waitForPC(t *testing.T, co *Core, want uint16) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for PC=%d, have %d", want, co.CPU.PC)
		default:
			if co.CPU.PC == want {
				return
			}
			time.Sleep(time.Millisecond)
		}
	}
}
