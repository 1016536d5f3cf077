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

package vm

import "strconv"

// ParseError is returned by Parse when the program text contains a token that
// is not a valid integer.
type ParseError struct {
	Index int    // index of the offending token
	Token string // offending token
	Err   error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	s := "token " + strconv.Itoa(e.Index) + ": invalid cell value " + strconv.Quote(e.Token)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// OpcodeError is returned when the instruction at PC does not decode to a
// known opcode.
type OpcodeError struct {
	PC  int
	Raw Cell
}

func (e *OpcodeError) Error() string {
	return "unknown opcode " + strconv.FormatInt(int64(e.Raw), 10) + " @pc=" + strconv.Itoa(e.PC)
}

// ModeError is returned when an operand of the instruction at PC uses an
// addressing mode that is either undefined or not allowed for that operand
// (immediate mode for a write destination).
type ModeError struct {
	PC      int
	Raw     Cell
	Operand int
	Mode    Mode
}

func (e *ModeError) Error() string {
	what := "invalid addressing mode "
	if e.Mode == Immediate {
		what = "illegal destination addressing mode "
	}
	return what + strconv.Itoa(int(e.Mode)) + " for operand " + strconv.Itoa(e.Operand) +
		" of instruction " + strconv.FormatInt(int64(e.Raw), 10) + " @pc=" + strconv.Itoa(e.PC)
}

// AddressError reports an access to a negative memory address.
type AddressError struct {
	Addr int
}

func (e *AddressError) Error() string {
	return "negative memory address " + strconv.Itoa(e.Addr)
}
