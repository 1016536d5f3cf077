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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Shows various aspects of the assembler syntax.
func ExampleAssemble() {
	code := `
		( a constant definition. Does not generate any code on its own )
		.equ BASE 100

		arb #BASE
		in @0		( read a value at BASE+0 )
		mul @0 #2 @1	( double it into BASE+1 )
		out @1
		jt #1 #end	( unconditional jump )
		'x'		( raw cell, skipped )
	:end	hlt
	`

	mem, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mem)

	asm.DisassembleAll(mem, 0, os.Stdout)

	i, _ := vm.New(mem, vm.Input(21))
	if err = i.Run(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(i.DrainOutput(), i.Status())

	// Output:
	// [109 100 203 0 21202 0 2 1 204 1 1105 1 14 120 99]
	//          0	arb #100
	//          2	in @0
	//          4	mul @0 #2 @1
	//          8	out @1
	//         10	jt #1 #14
	//         13	.dat 120
	//         14	hlt
	// [42] halted
}

// Disassemble writes one instruction at a time and returns the address of the
// next one.
func ExampleDisassemble() {
	mem := []vm.Cell{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}

	for pc := 0; pc < len(mem); {
		var err error
		fmt.Printf("% 4d\t", pc)
		pc, err = asm.Disassemble(mem, pc, os.Stdout)
		if err != nil {
			panic(err)
		}
		fmt.Println()
	}

	fmt.Println("Partial disassembly with DisassembleAll:")

	// Set base accordingly so that the address column is correct.
	asm.DisassembleAll(mem[2:8], 2, os.Stdout)

	// Output:
	//    0	in 9
	//    2	eq 9 10 9
	//    6	out 9
	//    8	hlt
	//    9	.dat -1
	//   10	.dat 8
	// Partial disassembly with DisassembleAll:
	//          2	eq 9 10 9
	//          6	out 9
}
