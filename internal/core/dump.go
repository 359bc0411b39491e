/*
 * avrgo - Core state dump.
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

package core

import (
	"fmt"
	"strings"

	"github.com/rcornwell/avrgo/util/hexfmt"
)

// Dump renders the full register/IO/SRAM address space as a hex+ASCII
// listing, with the current SP and PC called out on a header line.
func (co *Core) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PC=%04x SP=%04x SREG=%02x CYCLE=%d STATE=%s\n",
		co.CPU.PC, co.CPU.Mem.SP(), co.CPU.SREG.Byte(), co.CPU.Cycle, co.CPU.State)
	b.WriteString(hexfmt.Dump(0, co.CPU.Mem.Raw()))
	return b.String()
}

// Regs renders the general-purpose register file as a single compact line.
func (co *Core) Regs() string {
	var b strings.Builder
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, "r%d=%02x ", i, co.CPU.R(i))
	}
	return b.String()
}
