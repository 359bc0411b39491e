/*
 * avrgo - Fetch-execute run loop.
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

// Package core drives a cpu.CPU through a fetch-execute loop in its own
// goroutine, so a signal handler or an interactive console can request
// start/stop/step without blocking the loop itself.
package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rcornwell/avrgo/internal/cpu"
)

// Command is a control message sent to a running Core.
type Command int

const (
	Run Command = iota
	Stop
	Step
)

// Core owns one CPU and the goroutine that steps it.
type Core struct {
	CPU *cpu.CPU

	wg      sync.WaitGroup
	done    chan struct{}
	cmd     chan Command
	running bool

	breakpoints map[uint16]bool
}

// New wraps an already-initialized CPU.
func New(c *cpu.CPU) *Core {
	return &Core{
		CPU:         c,
		done:        make(chan struct{}),
		cmd:         make(chan Command, 8),
		breakpoints: make(map[uint16]bool),
	}
}

// SetBreakpoint arms a breakpoint at a word-index PC.
func (co *Core) SetBreakpoint(pc uint16) {
	co.breakpoints[pc] = true
}

// ClearBreakpoint disarms a previously armed breakpoint.
func (co *Core) ClearBreakpoint(pc uint16) {
	delete(co.breakpoints, pc)
}

// Send queues a control command for the run loop.
func (co *Core) Send(c Command) {
	co.cmd <- c
}

// Start runs the fetch-execute loop until Stop is called or the CPU halts
// on an exception, a breakpoint, or SLEEP/BREAK.
func (co *Core) Start() {
	co.wg.Add(1)
	defer co.wg.Done()

	for {
		select {
		case <-co.done:
			slog.Info("core: shutdown")
			return
		case c := <-co.cmd:
			co.apply(c)
		default:
		}

		if !co.running {
			time.Sleep(time.Millisecond)
			continue
		}

		co.CPU.Step()

		if co.halted() {
			co.running = false
		}
	}
}

// Stop signals the run loop to exit and waits up to one second for it.
func (co *Core) Stop() {
	close(co.done)
	finished := make(chan struct{})
	go func() {
		co.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		slog.Warn("core: timed out waiting for CPU to stop")
	}
}

func (co *Core) apply(c Command) {
	switch c {
	case Run:
		co.running = true
	case Stop:
		co.running = false
	case Step:
		co.CPU.Step()
	}
}

// halted reports whether the CPU has hit a terminal condition: a non-None
// exception, a run state other than Normal, or an armed breakpoint at PC.
func (co *Core) halted() bool {
	if co.CPU.Exc != cpu.None {
		return true
	}
	if co.CPU.State != cpu.Normal {
		return true
	}
	return co.breakpoints[co.CPU.PC]
}
