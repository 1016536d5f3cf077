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

import "github.com/pkg/errors"

// Feed appends values to the input queue. If the instance was waiting for
// input, it becomes runnable again.
func (i *Instance) Feed(values ...Cell) {
	i.input = append(i.input, values...)
	if i.status == Waiting && len(i.input) > 0 {
		i.status = Running
	}
}

// Pending returns the number of input values not yet consumed.
func (i *Instance) Pending() int {
	return len(i.input)
}

// DrainOutput returns the values output so far and clears the output queue.
// Calling it again without running the instance returns an empty slice.
func (i *Instance) DrainOutput() []Cell {
	out := i.output
	i.output = nil
	return out
}

// Output returns the values output so far without clearing the output queue.
// The returned slice must not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

func (i *Instance) popInput(_ []Cell) (Cell, error) {
	v := i.input[0]
	i.input = i.input[1:]
	if len(i.input) == 0 {
		// release the backing array
		i.input = nil
	}
	return v, nil
}

func (i *Instance) pushOutput(v []Cell) (Cell, error) {
	if i.outH != nil {
		if err := i.outH(i, v[0]); err != nil {
			return 0, errors.Wrap(err, "output handler failed")
		}
		return 0, nil
	}
	i.output = append(i.output, v[0])
	return 0, nil
}
