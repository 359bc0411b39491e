/*
 * avrgo - Flash program memory.
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

// Package flash implements the read-only program memory view: a flat byte
// array addressed by word for instruction fetch and by byte for LPM.
package flash

import (
	"fmt"

	"github.com/rcornwell/avrgo/internal/hexload"
	"github.com/rcornwell/avrgo/util/debugf"
)

const (
	debugWarn = 1 << iota
)

var debugOption = map[string]int{
	"WARN": debugWarn,
}

var debugMsk int

// Debug enables a named debug option. Unknown names return an error.
func Debug(name string) error {
	mask, ok := debugOption[name]
	if !ok {
		return fmt.Errorf("flash: unknown debug option: %s", name)
	}
	debugMsk |= mask
	return nil
}

// Flash is the emulator's program memory.
type Flash struct {
	end  uint32 // FLASHEND, last valid byte address
	mem  []byte
	last uint32 // highest programmed byte address (prog_end)
}

// New returns a zero-initialized Flash sized end+1 bytes.
func New(end uint16) *Flash {
	return &Flash{
		end: uint32(end),
		mem: make([]byte, uint32(end)+1),
	}
}

// Upload copies ordered, non-overlapping chunks into flash. Chunks must
// already be base-address ordered, as produced by hexload.Load.
func (f *Flash) Upload(chunks []hexload.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	last := chunks[len(chunks)-1]
	size := last.Base + uint32(len(last.Bytes))
	if size == 0 {
		return nil
	}
	progEnd := size - 1
	if progEnd > f.end {
		return fmt.Errorf("flash: program end %#x exceeds FLASHEND %#x", progEnd, f.end)
	}
	for _, c := range chunks {
		copy(f.mem[c.Base:], c.Bytes)
	}
	f.last = progEnd
	return nil
}

// ReadByte returns the byte at addr, wrapping modulo len(mem) and warning if
// addr is out of range, and warning (without wrapping effect on the return
// value beyond the wrap itself) if addr is past the programmed watermark.
func (f *Flash) ReadByte(addr uint32) byte {
	if addr > f.end {
		wrapped := addr % (f.end + 1)
		debugf.Debugf("flash", debugMsk, debugWarn, "read past FLASHEND: %#x wrapped to %#x", addr, wrapped)
		addr = wrapped
	} else if addr > f.last {
		debugf.Debugf("flash", debugMsk, debugWarn, "read past programmed end: %#x", addr)
	}
	return f.mem[addr]
}

// ReadWord returns the little-endian word at word-index w.
func (f *Flash) ReadWord(w uint16) uint16 {
	lo := f.ReadByte(2 * uint32(w))
	hi := f.ReadByte(2*uint32(w) + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// End returns FLASHEND.
func (f *Flash) End() uint32 {
	return f.end
}

// ProgEnd returns the highest programmed byte address.
func (f *Flash) ProgEnd() uint32 {
	return f.last
}
