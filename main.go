/*
 * avrgo - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/avrgo/command/reader"
	"github.com/rcornwell/avrgo/internal/core"
	"github.com/rcornwell/avrgo/internal/cpu"
	"github.com/rcornwell/avrgo/internal/hexload"
	"github.com/rcornwell/avrgo/util/logger"
)

var Logger *slog.Logger

func main() {
	os.Exit(run())
}

func run() int {
	optHelp := getopt.BoolLong("help", 'h', "Print usage")
	optDump := getopt.BoolLong("debug", 'd', "Enable per-step core dumps")
	optVerbose := getopt.BoolLong("verbose", 'v', "Enable verbose disassembly trace")
	optMCU := getopt.StringLong("mcu", 'm', "", "Device name, e.g. atmega328p")
	optInteractive := getopt.BoolLong("interactive", 'i', "Drop into the interactive console")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(nil, &slog.HandlerOptions{Level: programLevel}, optVerbose))
	slog.SetDefault(Logger)

	if *optMCU == "" {
		Logger.Error("avrgo: --mcu is required")
		return 1
	}

	args := getopt.Args()
	if len(args) != 1 {
		Logger.Error("avrgo: exactly one input file is required")
		return 1
	}
	path := args[0]

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hex":
	case ".elf":
		Logger.Error("avrgo: .elf input is reserved, not yet supported")
		return 1
	default:
		Logger.Error("avrgo: unrecognized file extension: " + ext)
		return 1
	}

	chunks, _, err := hexload.Load(path)
	if err != nil {
		Logger.Error("avrgo: " + err.Error())
		return 1
	}

	c, err := cpu.New(strings.ToLower(*optMCU))
	if err != nil {
		Logger.Error("avrgo: " + err.Error())
		return 1
	}
	if err := c.Flash.Upload(chunks); err != nil {
		Logger.Error("avrgo: " + err.Error())
		return 1
	}
	c.Trace = *optVerbose

	run := core.New(c)

	if *optInteractive {
		go run.Start()
		reader.ConsoleReader(run)
		run.Stop()
		return exitCode(c)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go run.Start()
	run.Send(core.Run)

	var lastCycle uint64
loop:
	for {
		select {
		case <-sigChan:
			fmt.Println("avrgo: interrupted")
			break loop
		default:
		}
		if c.State != cpu.Normal || c.Exc != cpu.None {
			break loop
		}
		if *optDump && c.Cycle != lastCycle {
			lastCycle = c.Cycle
			fmt.Print(run.Dump())
		}
		time.Sleep(time.Millisecond)
	}

	run.Stop()
	return exitCode(c)
}

// exitCode maps the CPU's terminal state to a process exit code: 0 for
// normal termination or a deliberate BREAK, non-zero for a runtime
// exception.
func exitCode(c *cpu.CPU) int {
	if c.Exc != cpu.None {
		Logger.Error("avrgo: " + c.Exc.String())
		return 2
	}
	return 0
}
