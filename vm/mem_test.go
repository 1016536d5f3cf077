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
package vm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_grow(t *testing.T) {
	m := vm.Memory{1, 2, 3}
	assert.Equal(t, vm.Cell(0), m.Read(10))
	assert.Equal(t, 11, m.Len())
	assert.Equal(t, vm.Memory{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0}, m)

	m.Write(12, 42)
	assert.Equal(t, 13, m.Len())
	assert.Equal(t, vm.Cell(42), m.Read(12))

	// never shrinks
	m.Read(1)
	assert.Equal(t, 13, m.Len())
}

func TestMemory_growReuse(t *testing.T) {
	// spare capacity with stale contents must read back as zero
	backing := vm.Memory{1, 2, 3, 4, 5, 6, 7, 8}
	m := backing[:2]
	assert.Equal(t, vm.Cell(0), m.Read(5))
	assert.Equal(t, vm.Memory{1, 2, 0, 0, 0, 0}, m)
}

func TestMemory_negative(t *testing.T) {
	var m vm.Memory
	assert.PanicsWithError(t, "negative memory address -1", func() { m.Read(-1) })
	assert.PanicsWithError(t, "negative memory address -3", func() { m.Write(-3, 1) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(name, []byte("3,0,4,0,99\n"), 0o644))

	mem, err := vm.Load(name)
	require.NoError(t, err)
	assert.Equal(t, vm.Memory{3, 0, 4, 0, 99}, mem)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1,2,three"), 0o644))
	_, err = vm.Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = vm.Load(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	mem, err := vm.Parse(" 1, -2 ,+3\n,\t4\n")
	require.NoError(t, err)
	assert.Equal(t, vm.Memory{1, -2, 3, 4}, mem)
}
