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

// Cell is the raw type stored in a memory location.
type Cell int64

// Memory is the VM's address space. It grows on demand: any access to an
// address past the end first zero-extends it up to and including that address.
// Memory never shrinks.
//
// Accessing a negative address is a caller bug and panics with an
// *AddressError. Instance.Run and Instance.Step recover such panics and report
// them as regular errors.
type Memory []Cell

func (m *Memory) grow(addr int) {
	if addr < 0 {
		panic(&AddressError{addr})
	}
	if addr < len(*m) {
		return
	}
	if l := len(*m); addr < cap(*m) {
		*m = (*m)[:addr+1]
		clear((*m)[l:])
		return
	}
	// at least double to keep successive small extensions cheap
	n := 2 * cap(*m)
	if n <= addr {
		n = addr + 1
	}
	t := make(Memory, addr+1, n)
	copy(t, *m)
	*m = t
}

// Read returns the value at address addr.
func (m *Memory) Read(addr int) Cell {
	m.grow(addr)
	return (*m)[addr]
}

// Write stores v at address addr.
func (m *Memory) Write(addr int, v Cell) {
	m.grow(addr)
	(*m)[addr] = v
}

// Len returns the current size of the memory in cells.
func (m *Memory) Len() int {
	return len(*m)
}
