package disasm

import (
	"testing"

	"github.com/rcornwell/avrgo/internal/decode"
)

func TestFormatBasic(t *testing.T) {
	cases := []struct {
		op   decode.Op
		want string
	}{
		{decode.Op{Instr: decode.NOP}, "NOP"},
		{decode.Op{Instr: decode.LDI, Rd: 16, K: 5}, "LDI R16,0x5"},
		{decode.Op{Instr: decode.ADD, Rd: 1, Rr: 2}, "ADD R1,R2"},
		{decode.Op{Instr: decode.ADD, Rd: 3, Rr: 3}, "LSL R3"},
		{decode.Op{Instr: decode.RJMP, K: -2}, "RJMP -2"},
		{decode.Op{Instr: decode.PUSH, Rr: 5}, "PUSH R5"},
		{decode.Op{Instr: decode.POP, Rd: 6}, "POP R6"},
		{decode.Op{Instr: decode.UNDEF, Raw: 0xFFFF}, ".DW 0xffff"},
	}
	for _, c := range cases {
		if got := Format(c.op); got != c.want {
			t.Errorf("Format(%+v) = %q, want %q", c.op, got, c.want)
		}
	}
}

func TestFormatBranch(t *testing.T) {
	op := decode.Op{Instr: decode.BRBS, S: 1, K: 3}
	if got := Format(op); got != "BREQ +3" {
		t.Errorf("Format(BRBS s=1) = %q, want BREQ +3", got)
	}
}
