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

// Opcode is the operation selector of an instruction, that is the instruction
// cell value modulo 100.
type Opcode int

// Intcode opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLess
	OpEqual
	OpAdjustBase
	OpHalt Opcode = 99
)

// MaxArity is the largest number of operands an instruction can have.
const MaxArity = 3

// opFunc implements the effect of an opcode. v holds the resolved source
// operands. For opcodes with a destination operand, the returned value is
// stored at the destination address.
type opFunc func(i *Instance, v []Cell) (Cell, error)

type opInfo struct {
	name  string
	arity int
	store bool // last operand is a write destination
	exec  opFunc
}

var opcodes = [100]opInfo{
	OpAdd: {"add", 3, true, func(_ *Instance, v []Cell) (Cell, error) {
		return v[0] + v[1], nil
	}},
	OpMul: {"mul", 3, true, func(_ *Instance, v []Cell) (Cell, error) {
		return v[0] * v[1], nil
	}},
	OpIn:  {"in", 1, true, (*Instance).popInput},
	OpOut: {"out", 1, false, (*Instance).pushOutput},
	OpJumpIfTrue: {"jt", 2, false, func(i *Instance, v []Cell) (Cell, error) {
		if v[0] != 0 {
			i.next = int(v[1])
		}
		return 0, nil
	}},
	OpJumpIfFalse: {"jf", 2, false, func(i *Instance, v []Cell) (Cell, error) {
		if v[0] == 0 {
			i.next = int(v[1])
		}
		return 0, nil
	}},
	OpLess: {"lt", 3, true, func(_ *Instance, v []Cell) (Cell, error) {
		return flag(v[0] < v[1]), nil
	}},
	OpEqual: {"eq", 3, true, func(_ *Instance, v []Cell) (Cell, error) {
		return flag(v[0] == v[1]), nil
	}},
	OpAdjustBase: {"arb", 1, false, func(i *Instance, v []Cell) (Cell, error) {
		i.base += int(v[0])
		return 0, nil
	}},
	OpHalt: {"hlt", 0, false, nil},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, info := range opcodes {
		if info.name != "" {
			opcodeIndex[info.name] = Opcode(op)
		}
	}
}

func flag(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Arity returns the number of operands of op, or 0 if op is invalid.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].arity
}

// HasDest returns true if the last operand of op is a write destination.
func (op Opcode) HasDest() bool {
	return op.Valid() && opcodes[op].store
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opcodes[op].name
}

// LookupOpcode returns the opcode with the given mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is an operand addressing mode.
type Mode int

// Addressing modes.
const (
	Position  Mode = iota // operand is an address
	Immediate             // operand is the value
	Relative              // operand plus the relative base is an address
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
