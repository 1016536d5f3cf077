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
package ascii

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrHalted is returned when sending input to a program that has halted.
var ErrHalted = errors.New("program halted")

// Console drives a vm.Instance with lines of text and writes its decoded output
// to an io.Writer.
type Console struct {
	i      *vm.Instance
	w      *ici.ErrWriter
	prompt string
	run    func(*vm.Instance) error
	buf    []byte
}

// NewConsole returns a new Console for the given instance. Decoded program
// output is written to w.
func NewConsole(i *vm.Instance, w io.Writer) *Console {
	return &Console{i: i, w: ici.NewErrWriter(w), run: (*vm.Instance).Run}
}

// SetRunFunc replaces the function used to run the instance, which defaults to
// (*vm.Instance).Run. This enables drivers to use custom run loops, with a step
// limit for example.
func (c *Console) SetRunFunc(run func(*vm.Instance) error) {
	c.run = run
}

// SetPrompt sets the prompt written by Interact before reading each line. An
// empty prompt disables it.
func (c *Console) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Instance returns the instance driven by the console.
func (c *Console) Instance() *vm.Instance {
	return c.i
}

// Run runs the program until it halts or waits for input, then writes any
// output.
func (c *Console) Run() error {
	err := c.run(c.i)
	// flush whatever was output before a failure
	if werr := c.flush(); err == nil {
		err = werr
	}
	return err
}

func (c *Console) flush() error {
	out := c.i.DrainOutput()
	if len(out) == 0 {
		return c.w.Err
	}
	c.buf = AppendDecoded(c.buf[:0], out)
	c.w.Write(c.buf)
	return c.w.Err
}

// Send feeds the given lines to the program and runs it. It returns ErrHalted
// if the program has already halted.
func (c *Console) Send(lines ...string) error {
	if c.i.Halted() {
		return ErrHalted
	}
	c.i.Feed(Encode(lines...)...)
	return c.Run()
}

// Interact runs the program and then sends it lines read from r, one at a
// time, each time it waits for input. Leading and trailing white space is
// removed from every line. Interact returns when the program halts or when r
// is exhausted, in which case the error is nil.
func (c *Console) Interact(r io.Reader) error {
	if err := c.Run(); err != nil {
		return err
	}
	s := bufio.NewScanner(r)
	for !c.i.Halted() {
		if c.prompt != "" {
			c.w.WriteString(c.prompt)
			if c.w.Err != nil {
				return c.w.Err
			}
		}
		if !s.Scan() {
			return errors.Wrap(s.Err(), "read failed")
		}
		if err := c.Send(strings.TrimSpace(s.Text())); err != nil {
			return err
		}
	}
	return nil
}
