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

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Parse parses a program made of signed integers separated by commas.
// Whitespace around values is ignored. Any invalid token results in a
// *ParseError.
func Parse(program string) (Memory, error) {
	program = strings.TrimSpace(program)
	if program == "" {
		return nil, &ParseError{0, "", nil}
	}
	toks := strings.Split(program, ",")
	mem := make(Memory, len(toks))
	for n, tok := range toks {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return nil, &ParseError{n, tok, err}
		}
		mem[n] = Cell(v)
	}
	return mem, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Memory, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	mem, err := Parse(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return mem, nil
}

// Dump writes the contents of the VM memory to the specified io.Writer, in the
// format accepted by Parse, followed by a newline.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for n, v := range i.Mem {
		if n > 0 {
			ew.Write([]byte{','})
		}
		ew.WriteInt(int64(v))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
