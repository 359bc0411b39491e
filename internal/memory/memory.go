/*
 * avrgo - Unified data memory: registers, I/O space, SRAM.
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

// Package memory implements the unified byte-addressable view over the
// register file, I/O space, and SRAM, with SPL/SPH aliased to the CPU's
// stack pointer.
package memory

import (
	"fmt"

	"github.com/rcornwell/avrgo/util/debugf"
)

const (
	debugWarn = 1 << iota
	debugTrack
)

var debugOption = map[string]int{
	"WARN":  debugWarn,
	"TRACK": debugTrack,
}

var debugMsk int

// Debug enables a named debug option.
func Debug(name string) error {
	mask, ok := debugOption[name]
	if !ok {
		return fmt.Errorf("memory: unknown debug option: %s", name)
	}
	debugMsk |= mask
	return nil
}

// SPL and SPH are the fixed I/O addresses aliased to the stack pointer on
// the megaX8 family.
const (
	SPL = 0x5D
	SPH = 0x5E
)

// Memory is the emulator's unified address space.
type Memory struct {
	end   uint16 // RAMEND
	mem   []byte
	sp    uint16
	track []uint32 // write counts, only allocated when EnableTrack is called
}

// New returns a zero-initialized Memory of size end+1 bytes.
func New(end uint16) *Memory {
	return &Memory{
		end: end,
		mem: make([]byte, uint32(end)+1),
	}
}

// EnableTrack turns the optional "uninitialized read" warning on or off.
func (m *Memory) EnableTrack(on bool) {
	if on {
		if m.track == nil {
			m.track = make([]uint32, len(m.mem))
		}
		return
	}
	m.track = nil
}

// SP returns the current stack pointer.
func (m *Memory) SP() uint16 {
	return m.sp
}

// SetSP sets the stack pointer directly, bypassing the SPL/SPH aliasing
// (used for reset).
func (m *Memory) SetSP(sp uint16) {
	m.sp = sp
}

func (m *Memory) wrap(addr uint16) uint16 {
	size := uint32(m.end) + 1
	wrapped := uint32(addr) % size
	return uint16(wrapped)
}

// Read returns the byte at addr, aliasing SPL/SPH to the stack pointer and
// warning (without failing) on out-of-range addresses or unwritten SRAM
// when tracking is enabled.
func (m *Memory) Read(addr uint16) byte {
	if addr == SPL {
		return byte(m.sp)
	}
	if addr == SPH {
		return byte(m.sp >> 8)
	}
	if addr > m.end {
		wrapped := m.wrap(addr)
		debugf.Debugf("memory", debugMsk, debugWarn, "read past RAMEND: %#x wrapped to %#x", addr, wrapped)
		addr = wrapped
	}
	if m.track != nil && addr >= ramStart(m.end) && m.track[addr] == 0 {
		debugf.Debugf("memory", debugMsk, debugTrack, "uninitialized read at %#x", addr)
	}
	return m.mem[addr]
}

// Write stores v at addr, aliasing SPL/SPH to the stack pointer.
func (m *Memory) Write(addr uint16, v byte) {
	if addr == SPL {
		m.sp = (m.sp & 0xFF00) | uint16(v)
		return
	}
	if addr == SPH {
		m.sp = (m.sp & 0x00FF) | uint16(v)<<8
		return
	}
	if addr > m.end {
		wrapped := m.wrap(addr)
		debugf.Debugf("memory", debugMsk, debugWarn, "write past RAMEND: %#x wrapped to %#x", addr, wrapped)
		addr = wrapped
	}
	m.mem[addr] = v
	if m.track != nil {
		m.track[addr]++
	}
}

// ReadWord reads a little-endian 16-bit pair at addr.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit pair at addr.
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.Write(addr, byte(v))
	m.Write(addr+1, byte(v>>8))
}

// End returns RAMEND.
func (m *Memory) End() uint16 {
	return m.end
}

// Raw returns the underlying buffer, for dumps; callers must not mutate it.
func (m *Memory) Raw() []byte {
	return m.mem
}

// ramStart is only used to decide when memtrack warnings apply: the
// register file and I/O space are always "initialized" by convention.
func ramStart(_ uint16) uint16 {
	return 0x0100
}
