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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	operands	description
//	------	---	-----	--------	-----------------------------------------------
//	1	add		a b dst		store a + b at dst
//	2	mul	mult	a b dst		store a * b at dst
//	3	in	inp	dst		store the next input value at dst
//	4	out		a		output a
//	5	jt	jnz	a t		jump to t if a != 0
//	6	jf	jz	a t		jump to t if a == 0
//	7	lt		a b dst		store 1 at dst if a < b, 0 otherwise
//	8	eq		a b dst		store 1 at dst if a == b, 0 otherwise
//	9	arb	rbo	a		add a to the relative base
//	99	hlt	halt			halt
//
// Operands:
//
// An operand without prefix uses position mode: the operand is an address. A
// '#' prefix selects immediate mode and a '@' prefix relative mode:
//
//	add #1 #2 100	( store 3 at address 100 )
//	add 100 #-1 100	( decrement the value at address 100 )
//	arb #5
//	out @-1		( output the value at address relative base - 1 )
//
// The addressing modes are encoded into the instruction cell by the assembler,
// so "add #1 #2 100" compiles to 1101,1,2,100. Immediate mode for a destination
// operand is an error.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Literals and label/const identifiers:
//
// Input is split at white space into tokens. An operand value may be a Go
// integer literal (see strconv.ParseInt), a Go character literal between single
// quotes, a constant defined with .equ, or a label name. Any integer, character
// or constant found where an instruction is expected is compiled as-is into the
// next cell.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operand values (without the ':' prefix). Forward references are fine:
//
//	jt #1 #start	( jump to start )
//	:buf .dat 0
//	:start
//		in buf
//		out buf
//		hlt
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.org <value>
//
// Will place the next cell at the address specified by the given integer
// literal or named constant.
//
//	.dat <value>
//
// Will compile the specified integer value, named constant, character literal
// or label address as-is into the next cell.
package asm
