// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package ascii provides utility functions and types to drive Intcode programs
// that use the ASCII convention: input lines are sent one character per cell,
// each line terminated by a newline (10), and output values in the range
// 0..255 are characters.
package ascii

import (
	"strconv"

	"github.com/db47h/intcode/vm"
)

// Newline is the line terminator appended to every encoded line.
const Newline vm.Cell = '\n'

// Encode converts lines of text to input values. Each line is sent as the byte
// values of its characters followed by Newline.
func Encode(lines ...string) []vm.Cell {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	in := make([]vm.Cell, 0, n)
	for _, l := range lines {
		for k := 0; k < len(l); k++ {
			in = append(in, vm.Cell(l[k]))
		}
		in = append(in, Newline)
	}
	return in
}

// AppendDecoded appends the text representation of output values to b and
// returns the extended buffer. Values in the range 0..255 are appended as a
// single byte, any other value as its decimal representation.
func AppendDecoded(b []byte, out []vm.Cell) []byte {
	for _, v := range out {
		if v >= 0 && v < 256 {
			b = append(b, byte(v))
			continue
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return b
}

// Decode returns the text representation of output values. See AppendDecoded.
func Decode(out []vm.Cell) string {
	return string(AppendDecoded(make([]byte, 0, len(out)), out))
}
