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

import (
	"strconv"
	"strings"
)

// Instruction is a decoded instruction. It is only valid until the next write
// to memory.
type Instruction struct {
	PC    int            // address of the instruction cell
	Raw   Cell           // raw instruction cell
	Op    Opcode         // opcode
	Arity int            // number of operands
	Modes [MaxArity]Mode // addressing mode of each operand
	Args  [MaxArity]Cell // raw operand cells
}

var pow10 = [...]Cell{100, 1000, 10000}

// Decode decodes the instruction at address pc.
//
// It returns an *OpcodeError if the opcode is unknown, or a *ModeError if any
// of the operands has an undefined addressing mode or if the destination
// operand uses immediate mode.
func Decode(m *Memory, pc int) (Instruction, error) {
	raw := m.Read(pc)
	in := Instruction{PC: pc, Raw: raw}
	if raw < 0 {
		return in, &OpcodeError{pc, raw}
	}
	in.Op = Opcode(raw % 100)
	if !in.Op.Valid() {
		return in, &OpcodeError{pc, raw}
	}
	info := &opcodes[in.Op]
	in.Arity = info.arity
	for k := 0; k < in.Arity; k++ {
		mode := Mode(raw / pow10[k] % 10)
		if mode > Relative || info.store && k == in.Arity-1 && mode == Immediate {
			return in, &ModeError{pc, raw, k, mode}
		}
		in.Modes[k] = mode
		in.Args[k] = m.Read(pc + 1 + k)
	}
	return in, nil
}

// Size returns the number of cells used by the instruction.
func (in *Instruction) Size() int {
	return 1 + in.Arity
}

// String returns the instruction in assembler syntax.
func (in *Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for k := 0; k < in.Arity; k++ {
		b.WriteByte(' ')
		switch in.Modes[k] {
		case Immediate:
			b.WriteByte('#')
		case Relative:
			b.WriteByte('@')
		}
		b.WriteString(strconv.FormatInt(int64(in.Args[k]), 10))
	}
	return b.String()
}

// load returns the value of operand k.
func (i *Instance) load(in *Instruction, k int) Cell {
	switch in.Modes[k] {
	case Immediate:
		return in.Args[k]
	case Relative:
		return i.Mem.Read(i.base + int(in.Args[k]))
	default:
		return i.Mem.Read(int(in.Args[k]))
	}
}

// addr returns the address designated by operand k.
func (i *Instance) addr(in *Instruction, k int) int {
	if in.Modes[k] == Relative {
		return i.base + int(in.Args[k])
	}
	return int(in.Args[k])
}

// step executes a single instruction. Memory access violations panic and must
// be recovered by the caller.
func (i *Instance) step() error {
	in, err := Decode(&i.Mem, i.PC)
	if err != nil {
		return err
	}
	if i.log != nil && i.log.AllowLevel(traceLevel) {
		i.log.Debugf("%8d  %-24s rb=%d", in.PC, in.String(), i.base)
	}
	switch in.Op {
	case OpHalt:
		i.status = Halted
		return nil
	case OpIn:
		if len(i.input) == 0 {
			// retried on the next Run
			i.status = Waiting
			return nil
		}
	}

	info := &opcodes[in.Op]
	n := in.Arity
	if info.store {
		n--
	}
	var v [MaxArity]Cell
	for k := 0; k < n; k++ {
		v[k] = i.load(&in, k)
	}
	dst := -1
	if info.store {
		dst = i.addr(&in, n)
		if dst < 0 {
			return &AddressError{dst}
		}
	}

	i.next = in.PC + in.Size()
	r, err := info.exec(i, v[:n])
	if err != nil {
		return err
	}
	if dst >= 0 {
		i.Mem.Write(dst, r)
	}
	i.PC = i.next
	i.insCount++
	return nil
}
