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
package ascii_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

// Shows a scripted session with a program that greets whoever it is told
// about.
func ExampleConsole() {
	mem, err := asm.Assemble("greet", strings.NewReader(`
		out #'?' out #10
		:read
			in c
			eq c #10 f
			jt f #done
			out c
			jt #1 #read
		:done
			out #'!' out #10
			hlt
		:c .dat 0
		:f .dat 0`))
	if err != nil {
		fmt.Println(err)
		return
	}
	i, _ := vm.New(mem)
	c := ascii.NewConsole(i, os.Stdout)
	c.SetPrompt("> ")
	if err = c.Interact(strings.NewReader("gopher\n")); err != nil {
		fmt.Println(err)
	}

	// Output:
	// ?
	// > gopher!
}
