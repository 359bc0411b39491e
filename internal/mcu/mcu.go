/*
 * avrgo - Device profile registry.
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

// Package mcu holds per-device constants (DeviceProfile) and a small
// self-registration registry modeled on the way individual device models
// register themselves with the emulator at init time.
package mcu

import "fmt"

// Profile describes the fixed characteristics of one AVR device variant.
type Profile struct {
	Name      string
	FlashEnd  uint16 // last valid byte address in flash
	RAMStart  uint16 // first general SRAM address
	RAMEnd    uint16 // last valid SRAM address
	Signature [3]byte
	Fuse      [3]byte // low, high, extended
}

var registry = map[string]Profile{}

// Register adds a profile under name. Called from each device's init().
func Register(name string, p Profile) {
	registry[name] = p
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	p, ok := registry[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown device: %s", name)
	}
	return p, nil
}

// Names returns the registered device names, for usage/help text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
