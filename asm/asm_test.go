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
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C = vm.Memory

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		code string
		exp  C
	}{
		{"immediate", "add #100 #-1 4 out 4 hlt", C{1101, 100, -1, 4, 4, 4, 99}},
		{"relative", "arb #5 add @1 #2 @-3", C{109, 5, 21201, 1, 2, -3}},
		{"labels", "jt #1 #start :buf .dat 0 :start in buf out buf hlt", C{1105, 1, 4, 0, 3, 3, 4, 3, 99}},
		{"equ/org", ".equ N 42 out #N .org 5 hlt", C{104, 42, 0, 0, 0, 99}},
		{"raw", "1 2 'A' 0x10 -7", C{1, 2, 65, 16, -7}},
		{"aliases", "mult #2 #3 0 inp 0 jnz 0 #0 jz #0 #0 rbo #1 halt", C{1102, 2, 3, 0, 3, 0, 1005, 0, 0, 1106, 0, 0, 109, 1, 99}},
		{"comments", "( a comment\n spanning lines ) hlt ( another )", C{99}},
		{"label data", ":self .dat self .dat end :end", C{0, 2}},
		{"empty", "", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem, err := asm.Assemble(test.name, strings.NewReader(test.code))
			require.NoError(t, err)
			assert.Equal(t, test.exp, mem)
		})
	}
}

// check some errors. We're not checking the full messages, rather that they
// are reported at all and point at the correct place.
func TestAssemble_errors(t *testing.T) {
	tests := []struct {
		code string
		msg  string
		line int
	}{
		{"add 1 2 #3", "Immediate destination", 1},
		{"jt #1 nowhere", "Missing label definition for nowhere", 1},
		{"hlt\nfoo", "Unknown mnemonic: foo", 2},
		{"add 1", "Missing operands for add", 1},
		{"hlt .org", "Missing directive argument", 1},
		{".bogus", "Unknown dot directive", 1},
		{":x\n:x", "Label redefinition: x", 2},
		{".org bar", "Expected integer or constant", 1},
		{"( unterminated", "Unterminated comment", 1},
		{"out #", "Missing operand value", 1},
		{".equ X 1 :X", "previously defined as a constant", 1},
	}
	for _, test := range tests {
		_, err := asm.Assemble("test_errors", strings.NewReader(test.code))
		if !assert.Error(t, err, test.code) {
			continue
		}
		errs, ok := err.(asm.ErrAsm)
		require.True(t, ok, "%T", err)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Msg, test.msg, test.code)
		assert.Equal(t, test.line, errs[0].Pos.Line, test.code)
		assert.Equal(t, "test_errors", errs[0].Pos.Filename)
	}
}

func TestAssemble_maxErrors(t *testing.T) {
	code := strings.Repeat("bad ", 20)
	_, err := asm.Assemble("many", strings.NewReader(code))
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)
	assert.Len(t, errs, 10)
	assert.Equal(t, 10, strings.Count(err.Error(), "\n")+1)
}

func TestDisassemble(t *testing.T) {
	mem := C{1101, 100, -1, 4, 204, -3, 42, 99, 1001, 5}
	var b bytes.Buffer
	var pcs []int
	for pc := 0; pc < len(mem); {
		pcs = append(pcs, pc)
		next, err := asm.Disassemble(mem, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
		pc = next
	}
	assert.Equal(t, []int{0, 4, 6, 7, 8, 9}, pcs)
	assert.Equal(t, "add #100 #-1 4\nout @-3\n.dat 42\nhlt\n.dat 1001\n.dat 5\n", b.String())
	// Disassemble must not touch the caller's memory
	assert.Len(t, mem, 10)
}

// Disassembling and re-assembling a program must yield the same program.
func TestDisassemble_roundTrip(t *testing.T) {
	src := `
		arb #3
		:loop
		in @0
		eq @0 #0 flag
		jt flag #end
		mul @0 #2 @1
		out @1
		lt #1 #2 flag
		jf #0 #loop
		:end hlt
		:flag .dat 0`
	mem, err := asm.Assemble("roundtrip", strings.NewReader(src))
	require.NoError(t, err)

	var b bytes.Buffer
	for pc := 0; pc < len(mem); {
		pc, err = asm.Disassemble(mem, pc, &b)
		require.NoError(t, err)
		b.WriteByte(' ')
	}
	again, err := asm.Assemble("again", &b)
	require.NoError(t, err)
	assert.Equal(t, mem, again)
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, assert.AnError
	}
	w.n--
	return len(p), nil
}

func TestDisassembleAll_writeError(t *testing.T) {
	err := asm.DisassembleAll(C{99, 99, 99}, 0, &failWriter{n: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}
