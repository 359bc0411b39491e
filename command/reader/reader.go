/*
 * avrgo - Interactive console reader.
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

// Package reader implements the liner-backed prompt loop for the
// interactive debugger console.
package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/rcornwell/avrgo/command/parser"
	"github.com/rcornwell/avrgo/internal/core"
)

// historyPath returns the path used to persist console history across
// runs, or "" if the user's cache directory can't be determined.
func historyPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "avrgo_history")
}

// ConsoleReader reads and executes commands against c until the user quits,
// aborts the prompt (Ctrl-C), or the prompt returns any other error (such as
// end of input on Ctrl-D).
func ConsoleReader(c *core.Core) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		return parser.CompleteCmd(line)
	})

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				slog.Warn("reading console history: " + err.Error())
			}
			f.Close()
		}
	}

	for {
		command, err := line.Prompt("avr> ")
		if err == nil {
			if command == "" {
				continue
			}
			line.AppendHistory(command)
			quit, cmdErr := parser.ProcessCommand(command, c)
			if cmdErr != nil {
				fmt.Println("Error: " + cmdErr.Error())
			}
			if quit {
				break
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		slog.Error("error reading line: " + err.Error())
		break
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			if _, err := line.WriteHistory(f); err != nil {
				slog.Warn("writing console history: " + err.Error())
			}
			f.Close()
		}
	}
}
