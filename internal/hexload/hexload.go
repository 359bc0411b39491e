/*
 * avrgo - Intel HEX loader.
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

// Package hexload parses Intel HEX text into address-ordered program chunks.
package hexload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Record types in byte 3 of a decoded line.
const (
	recData = 0x00
	recEOF  = 0x01
	recESA  = 0x02
)

var (
	ErrMalformed = errors.New("hexload: malformed record")
	ErrShort     = errors.New("hexload: short record")
	ErrChecksum  = errors.New("hexload: checksum mismatch")
)

// Chunk is a contiguous loaded program fragment.
type Chunk struct {
	Base  uint32
	Bytes []byte
}

// Load reads an Intel HEX file and returns its chunks in the order they were
// opened, along with the total byte count loaded.
func Load(path string) ([]Chunk, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("hexload: %w", err)
	}
	defer f.Close()
	return loadReader(f)
}

func loadReader(r io.Reader) ([]Chunk, int, error) {
	var chunks []Chunk
	var segment uint32
	total := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		bytes, err := decodeLine(line)
		if err != nil {
			return nil, 0, fmt.Errorf("hexload: line %d: %w", lineNo, err)
		}
		if len(bytes) < 4 {
			return nil, 0, fmt.Errorf("hexload: line %d: %w", lineNo, ErrShort)
		}

		length := int(bytes[0])
		if len(bytes) != 4+length+1 {
			return nil, 0, fmt.Errorf("hexload: line %d: %w", lineNo, ErrShort)
		}

		sum := byte(0)
		for _, b := range bytes {
			sum += b
		}
		if sum != 0 {
			return nil, 0, fmt.Errorf("hexload: line %d: %w", lineNo, ErrChecksum)
		}

		offset := uint32(bytes[1])<<8 | uint32(bytes[2])
		recType := bytes[3]
		payload := bytes[4 : 4+length]

		switch recType {
		case recESA:
			if length < 2 {
				return nil, 0, fmt.Errorf("hexload: line %d: %w", lineNo, ErrShort)
			}
			segment = (uint32(payload[0]) << 12) | (uint32(payload[1]) << 4)

		case recData:
			addr := segment | offset
			if n := len(chunks); n > 0 {
				last := &chunks[n-1]
				if addr == last.Base+uint32(len(last.Bytes)) {
					last.Bytes = append(last.Bytes, payload...)
					total += length
					continue
				}
			}
			buf := make([]byte, length)
			copy(buf, payload)
			chunks = append(chunks, Chunk{Base: addr, Bytes: buf})
			total += length

		case recEOF:
			return chunks, total, nil

		default:
			// Other record types (extended linear address, start
			// segment/linear address) are ignored; they do not appear in
			// the megaX8 toolchain's default output.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("hexload: %w", err)
	}
	return chunks, total, nil
}

func decodeLine(line string) ([]byte, error) {
	if line[0] != ':' {
		return nil, ErrMalformed
	}
	hexPart := line[1:]
	for len(hexPart) > 0 && (hexPart[len(hexPart)-1] == '\r' || hexPart[len(hexPart)-1] == '\n') {
		hexPart = hexPart[:len(hexPart)-1]
	}
	if len(hexPart)%2 != 0 {
		return nil, ErrMalformed
	}
	out := make([]byte, len(hexPart)/2)
	for i := range out {
		hi, ok1 := hexDigit(hexPart[2*i])
		lo, ok2 := hexDigit(hexPart[2*i+1])
		if !ok1 || !ok2 {
			return nil, ErrMalformed
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}
