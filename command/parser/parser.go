/*
 * avrgo - Interactive console command parser.
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

// Package parser implements the small command language of the interactive
// debugger console: step, continue, stop, break, dump, regs and quit.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/rcornwell/avrgo/internal/core"
)

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *core.Core) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "continue", min: 1, process: cont},
	{name: "stop", min: 2, process: stop},
	{name: "break", min: 2, process: setBreak},
	{name: "dump", min: 1, process: dump},
	{name: "regs", min: 1, process: regs},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand runs one command line against core. The returned bool is
// true when the console should exit.
func ProcessCommand(commandLine string, c *core.Core) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(&line, c)
}

// CompleteCmd returns the set of command names matching a partial line, for
// the console's tab-completion.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matches := matchList(name)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// getWord returns the next run of non-space characters, advancing past it.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return l.line[start:l.pos]
}

func step(_ *cmdLine, c *core.Core) (bool, error) {
	c.Send(core.Step)
	return false, nil
}

func cont(_ *cmdLine, c *core.Core) (bool, error) {
	c.Send(core.Run)
	return false, nil
}

func stop(_ *cmdLine, c *core.Core) (bool, error) {
	c.Send(core.Stop)
	return false, nil
}

func setBreak(line *cmdLine, c *core.Core) (bool, error) {
	word := line.getWord()
	if word == "" {
		return false, errors.New("break requires an address")
	}
	addr, err := strconv.ParseUint(word, 16, 16)
	if err != nil {
		return false, fmt.Errorf("invalid address %q: %w", word, err)
	}
	c.SetBreakpoint(uint16(addr))
	return false, nil
}

func dump(_ *cmdLine, c *core.Core) (bool, error) {
	fmt.Print(c.Dump())
	return false, nil
}

func regs(_ *cmdLine, c *core.Core) (bool, error) {
	fmt.Println(c.Regs())
	return false, nil
}

func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	return true, nil
}
