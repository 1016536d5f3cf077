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

// Package vm implements an Intcode virtual machine.
//
// An Instance owns a growable Memory initialized from a comma separated
// program. Each call to Run decodes and executes instructions until the program
// either halts or executes an input instruction while its input queue is empty.
// In the latter case, Run returns with the instance in the Waiting state and
// the program counter still pointing at the input instruction. The caller then
// supplies more values with Feed and calls Run again, which resumes exactly
// where the machine left off:
//
//	i, _ := vm.New(mem)
//	for {
//		if err := i.Run(); err != nil {
//			// the program crashed
//		}
//		out := i.DrainOutput()
//		// ...
//		if i.Halted() {
//			break
//		}
//		i.Feed(nextInput(out)...)
//	}
//
// Run never blocks. There is no timeout or cancellation built into the VM:
// drivers that need to bound runaway programs should call Step in their own
// loop and count instructions.
//
// Instructions are decoded fresh from memory on every cycle, so self modifying
// programs behave as expected.
//
// Errors (unknown opcodes, illegal addressing modes, negative addresses) are
// fatal: the instance switches to the Aborted state and every subsequent call
// to Run or Step returns the same error. Use errors.Cause from
// github.com/pkg/errors to get at the typed error.
package vm
