/*
 * avrgo - Log debug data to a file
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

// Package debugf provides module-tagged, mask-gated debug logging shared by
// the flash, memory and cpu packages. Unlike the slog-based logger
// used for startup/shutdown messages, this is the high-frequency per-step
// diagnostic path and is off by default.
package debugf

import (
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug output. Passing nil discards it.
func SetOutput(w io.Writer) {
	if w == nil {
		out = io.Discard
		return
	}
	out = w
}

// Debugf writes a module-tagged message when mask&level is non-zero.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(out, module+": "+format+"\n", a...)
	}
}

// Addrf is like Debugf but prefixes the message with a hex address, for
// per-instruction traces keyed by PC.
func Addrf(module string, mask int, level int, addr uint16, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(out, "%s %04x: "+format+"\n", append([]interface{}{module, addr}, a...)...)
	}
}
