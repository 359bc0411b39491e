/*
 * avrgo - Convert hex to strings.
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

package hexfmt

import "strings"

var hexMap = "0123456789ABCDEF"

func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

func FormatWord(str *strings.Builder, data uint16) {
	FormatByte(str, byte(data>>8))
	FormatByte(str, byte(data))
}

func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

// FormatASCII writes the printable-or-dot rendering of data, as used by
// the register/SRAM dump.
func FormatASCII(str *strings.Builder, data []byte) {
	for _, by := range data {
		if by >= 0x20 && by < 0x7f {
			str.WriteByte(by)
		} else {
			str.WriteByte('.')
		}
	}
}

// Dump renders a 16-byte-per-line hex+ASCII dump of data, with each line
// labeled by its address relative to base.
func Dump(base uint16, data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]
		FormatWord(&b, base+uint16(off))
		b.WriteString("  ")
		FormatBytes(&b, true, row)
		for pad := len(row); pad < 16; pad++ {
			b.WriteString("   ")
		}
		b.WriteString(" |")
		FormatASCII(&b, row)
		b.WriteString("|\n")
	}
	return b.String()
}
