package parser

import (
	"testing"

	"github.com/rcornwell/avrgo/internal/core"
	"github.com/rcornwell/avrgo/internal/cpu"
)

func newTestCore(t *testing.T) *core.Core {
	t.Helper()
	c, err := cpu.New("atmega328p")
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}
	return core.New(c)
}

func TestProcessCommandQuit(t *testing.T) {
	quit, err := ProcessCommand("quit", newTestCore(t))
	if err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !quit {
		t.Errorf("quit command did not request exit")
	}
}

func TestProcessCommandBreakSetsBreakpoint(t *testing.T) {
	c := newTestCore(t)
	if _, err := ProcessCommand("break 100", c); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
}

func TestProcessCommandBreakRequiresAddress(t *testing.T) {
	_, err := ProcessCommand("break", newTestCore(t))
	if err == nil {
		t.Errorf("expected error for break with no address")
	}
}

func TestProcessCommandUnknown(t *testing.T) {
	_, err := ProcessCommand("frobnicate", newTestCore(t))
	if err == nil {
		t.Errorf("expected error for unknown command")
	}
}

func TestProcessCommandAmbiguous(t *testing.T) {
	// "st" matches both "step" and "stop".
	_, err := ProcessCommand("st", newTestCore(t))
	if err == nil {
		t.Errorf("expected ambiguous-command error")
	}
}

func TestCompleteCmd(t *testing.T) {
	matches := CompleteCmd("st")
	if len(matches) != 2 {
		t.Errorf("CompleteCmd(\"st\") = %v, want 2 matches (step, stop)", matches)
	}
}
