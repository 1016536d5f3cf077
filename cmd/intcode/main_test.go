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
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestStepLimit(t *testing.T) {
	i, err := vm.New(vm.Memory{1105, 1, 0})
	require.NoError(t, err)
	err = stepLimit(50)(i)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step limit")
	assert.Equal(t, int64(50), i.InstructionCount())

	i, err = vm.New(vm.Memory{104, 1, 99})
	require.NoError(t, err)
	require.NoError(t, stepLimit(50)(i))
	assert.True(t, i.Halted())
}

func TestRunNumeric(t *testing.T) {
	// output twice the sum of two input values until 0, 0 is read
	prog, err := vm.Parse("3,30,3,31,1,30,31,32,1006,32,20,102,2,32,33,4,33,1105,1,0,99")
	require.NoError(t, err)
	i, err := vm.New(prog)
	require.NoError(t, err)

	var b bytes.Buffer
	err = runNumeric(i, stepLimit(0), strings.NewReader("1,2\n3\n4\n"), &b, "? ")
	require.NoError(t, err)
	assert.Equal(t, "? 6\n? ? 14\n? ", b.String())
	assert.True(t, i.Waiting())

	err = runNumeric(i, stepLimit(0), strings.NewReader("x\n"), &b, "")
	assert.Error(t, err)
}

func TestFeed(t *testing.T) {
	dir := t.TempDir()
	c := defaultConfig()
	c.Input = []int64{7, -1}
	c.With = []string{writeFile(t, dir, "a.txt", "NOT A J\nWALK\n")}
	i, err := vm.New(vm.Memory{99})
	require.NoError(t, err)
	require.NoError(t, feed(&c, i))
	assert.Equal(t, 2+8+5, i.Pending())

	c.With = []string{filepath.Join(dir, "missing.txt")}
	assert.Error(t, feed(&c, i))
}

func TestSaveRestore(t *testing.T) {
	dir := t.TempDir()
	c := defaultConfig()
	c.Program = writeFile(t, dir, "prog.txt", "3,0,4,0,99\n")
	c.Save = filepath.Join(dir, "state.cbor")
	c.Dump = true

	i, err := newVM(&c)
	require.NoError(t, err)
	require.NoError(t, i.Run())
	require.True(t, i.Waiting())
	var b bytes.Buffer
	require.NoError(t, finish(&c, i, &b))
	assert.Equal(t, "3,0,4,0,99\n", b.String())

	r := defaultConfig()
	r.Restore = c.Save
	r.MemSize = 100
	j, err := newVM(&r)
	require.NoError(t, err)
	assert.True(t, j.Waiting())
	assert.Equal(t, 100, j.Mem.Len())
	j.Feed(42)
	require.NoError(t, j.Run())
	assert.Equal(t, []vm.Cell{42}, j.DrainOutput())

	r.Restore = c.Program
	_, err = newVM(&r)
	assert.Error(t, err)
}
