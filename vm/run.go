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

// Run starts or resumes execution of the VM until the program halts or
// suspends on an input instruction with an empty input queue. Check Status,
// Halted or Waiting to tell which.
//
// If an error occurs, the instance is aborted and the PC will point to the
// instruction that triggered the error. The same error is returned by any
// further call to Run. Calling Run on a halted instance is a no-op.
func (i *Instance) Run() error {
	for {
		if err := i.Step(); err != nil {
			return err
		}
		if i.status != Running {
			return nil
		}
	}
}

// Step executes a single instruction. A halt, or an input instruction with an
// empty input queue, only changes the instance status.
//
// Drivers can use Step to impose their own step limit:
//
//	for n := 0; n < limit && i.Status() == vm.Running; n++ {
//		if err := i.Step(); err != nil {
//			return err
//		}
//	}
func (i *Instance) Step() (err error) {
	switch i.status {
	case Halted:
		return nil
	case Aborted:
		return i.err
	case Waiting:
		i.status = Running
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d", i.PC, len(i.Mem))
			default:
				panic(e)
			}
		}
		if err != nil {
			i.status = Aborted
			i.err = err
		}
	}()
	return i.step()
}
