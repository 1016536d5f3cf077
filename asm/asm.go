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

package asm

import (
	"fmt"
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// alternate mnemonics
var aliases = map[string]vm.Opcode{
	"mult": vm.OpMul,
	"inp":  vm.OpIn,
	"jnz":  vm.OpJumpIfTrue,
	"jz":   vm.OpJumpIfFalse,
	"rbo":  vm.OpAdjustBase,
	"halt": vm.OpHalt,
}

func lookup(s string) (vm.Opcode, bool) {
	if op, ok := vm.LookupOpcode(s); ok {
		return op, true
	}
	op, ok := aliases[s]
	return op, ok
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	p := newParser()
	return p.Parse(name, r)
}

// Disassemble writes a disassembly of the instruction in mem at position pc to
// the specified io.Writer and returns the position of the next instruction and
// any write error. Cells that do not decode to a valid instruction are written
// as a .dat directive.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	// cap the slice so that Decode never writes to the caller's memory
	m := vm.Memory(mem[:len(mem):len(mem)])
	in, err := vm.Decode(&m, pc)
	if err != nil || pc+in.Size() > len(mem) {
		ew.WriteString(".dat ")
		ew.WriteInt(int64(mem[pc]))
		return pc + 1, ew.Err
	}
	ew.WriteString(in.String())
	return pc + in.Size(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
