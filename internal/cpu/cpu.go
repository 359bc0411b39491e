/*
 * avrgo - CPU state.
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

// Package cpu holds AVR CPU state and the interpreter that steps it one
// instruction at a time.
package cpu

import (
	"fmt"

	"github.com/rcornwell/avrgo/internal/flash"
	"github.com/rcornwell/avrgo/internal/mcu"
	"github.com/rcornwell/avrgo/internal/memory"
	"github.com/rcornwell/avrgo/util/debugf"
)

const (
	debugCmd = 1 << iota
	debugInst
	debugData
	debugDetail
)

var debugOption = map[string]int{
	"CMD":    debugCmd,
	"INST":   debugInst,
	"DATA":   debugData,
	"DETAIL": debugDetail,
}

var debugMsk int

// Debug enables a named debug option.
func Debug(name string) error {
	mask, ok := debugOption[name]
	if !ok {
		return fmt.Errorf("cpu: unknown debug option: %s", name)
	}
	debugMsk |= mask
	return nil
}

// State is the run state of the CPU.
type State int

const (
	Normal State = iota
	Sleep
	Break
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Sleep:
		return "SLEEP"
	case Break:
		return "BREAK"
	default:
		return "UNKNOWN"
	}
}

// Exception is the terminal condition raised by a single Step, if any.
type Exception int

const (
	None Exception = iota
	Segfault
	Crash
)

func (e Exception) String() string {
	switch e {
	case None:
		return "none"
	case Segfault:
		return "segfault"
	case Crash:
		return "crash"
	default:
		return "unknown"
	}
}

// SREG holds the eight AVR status flags.
type SREG struct {
	C, Z, N, V, S, H, T, I bool
}

// Byte packs the flags into the SREG byte layout (I7 T6 H5 S4 V3 N2 Z1 C0).
func (s SREG) Byte() byte {
	var b byte
	if s.C {
		b |= 1 << 0
	}
	if s.Z {
		b |= 1 << 1
	}
	if s.N {
		b |= 1 << 2
	}
	if s.V {
		b |= 1 << 3
	}
	if s.S {
		b |= 1 << 4
	}
	if s.H {
		b |= 1 << 5
	}
	if s.T {
		b |= 1 << 6
	}
	if s.I {
		b |= 1 << 7
	}
	return b
}

// SetByte unpacks a raw SREG byte into the flag fields.
func (s *SREG) SetByte(b byte) {
	s.C = b&(1<<0) != 0
	s.Z = b&(1<<1) != 0
	s.N = b&(1<<2) != 0
	s.V = b&(1<<3) != 0
	s.S = b&(1<<4) != 0
	s.H = b&(1<<5) != 0
	s.T = b&(1<<6) != 0
	s.I = b&(1<<7) != 0
}

// Bit returns the flag named by SREG bit index 0..7 (C,Z,N,V,S,H,T,I).
func (s SREG) Bit(idx int) bool {
	return s.Byte()&(1<<uint(idx)) != 0
}

// SetBit sets or clears the flag named by SREG bit index 0..7.
func (s *SREG) SetBit(idx int, v bool) {
	b := s.Byte()
	if v {
		b |= 1 << uint(idx)
	} else {
		b &^= 1 << uint(idx)
	}
	s.SetByte(b)
}

// CPU is the emulator's exclusively-owned state: flash, data memory,
// registers, SREG, PC, and the cycle counter.
type CPU struct {
	Profile mcu.Profile
	Flash   *flash.Flash
	Mem     *memory.Memory

	PC    uint16 // word index
	SREG  SREG
	State State
	Exc   Exception
	Cycle uint64

	Trace bool // when true, Step logs a disassembly line per instruction
}

// New creates a CPU for the named device profile, with empty flash/memory
// sized per the profile and SP/PC/SREG reset to their documented initial
// values.
func New(profileName string) (*CPU, error) {
	p, err := mcu.Lookup(profileName)
	if err != nil {
		return nil, err
	}
	c := &CPU{
		Profile: p,
		Flash:   flash.New(p.FlashEnd),
		Mem:     memory.New(p.RAMEnd),
	}
	c.Reset()
	return c, nil
}

// Reset restores the documented initial CPU state: SP = RAMEND, PC = 0,
// SREG = 0, state = NORMAL.
func (c *CPU) Reset() {
	c.Mem.SetSP(c.Profile.RAMEnd)
	c.PC = 0
	c.SREG = SREG{}
	c.State = Normal
	c.Exc = None
	c.Cycle = 0
}

// R returns the value of general-purpose register n (0..31).
func (c *CPU) R(n int) byte {
	return c.Mem.Read(uint16(n))
}

// SetR stores v into general-purpose register n (0..31).
func (c *CPU) SetR(n int, v byte) {
	c.Mem.Write(uint16(n), v)
}

// RPair reads the 16-bit little-endian pair (n, n+1), used for X/Y/Z.
func (c *CPU) RPair(n int) uint16 {
	return uint16(c.R(n)) | uint16(c.R(n+1))<<8
}

// SetRPair writes a 16-bit little-endian pair at (n, n+1).
func (c *CPU) SetRPair(n int, v uint16) {
	c.SetR(n, byte(v))
	c.SetR(n+1, byte(v>>8))
}

const (
	regX = 26
	regY = 28
	regZ = 30
)

func debugStep(format string, a ...interface{}) {
	debugf.Debugf("cpu", debugMsk, debugInst, format, a...)
}
