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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode")

// flushReader flushes w before each read so that prompts and program output
// are visible before blocking on input.
type flushReader struct {
	r io.Reader
	w *bufio.Writer
}

func (f flushReader) Read(p []byte) (int, error) {
	if err := f.w.Flush(); err != nil {
		return 0, err
	}
	return f.r.Read(p)
}

func setupLogging(c *config) {
	v := c.Log.Verbosity
	if c.Debug && v < 2 {
		v = 2
	}
	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(v, path)
}

// stepLimit returns a run function that aborts once the instance has executed
// limit instructions. A zero limit disables the check.
func stepLimit(limit int64) func(*vm.Instance) error {
	if limit == 0 {
		return (*vm.Instance).Run
	}
	return func(i *vm.Instance) error {
		for i.Status() == vm.Running {
			if i.InstructionCount() >= limit {
				return errors.Errorf("step limit reached after %d instructions @pc=%d", limit, i.PC)
			}
			if err := i.Step(); err != nil {
				return err
			}
		}
		return i.Err()
	}
}

func readLines(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "input file")
	}
	defer f.Close()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, errors.Wrapf(s.Err(), "read %s", fileName)
}

func newVM(c *config) (*vm.Instance, error) {
	var opts []vm.Option
	if c.Debug {
		opts = append(opts, vm.Trace(commonlog.GetLogger("intcode.vm")))
	}
	if c.Restore != "" {
		b, err := os.ReadFile(c.Restore)
		if err != nil {
			return nil, errors.Wrap(err, "restore")
		}
		i, err := vm.New(nil, opts...)
		if err != nil {
			return nil, err
		}
		if err = i.UnmarshalBinary(b); err != nil {
			return nil, errors.Wrapf(err, "restore %s", c.Restore)
		}
		log.Infof("restored %s: pc=%d, %s, %d instructions", c.Restore, i.PC, i.Status(), i.InstructionCount())
		return i, i.SetOptions(vm.MemSize(c.MemSize))
	}
	mem, err := vm.Load(c.Program)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %d cells", c.Program, len(mem))
	return vm.New(mem, append(opts, vm.MemSize(c.MemSize))...)
}

// feed queues the numeric input and the lines of the --with files.
func feed(c *config, i *vm.Instance) error {
	for _, v := range c.Input {
		i.Feed(vm.Cell(v))
	}
	for _, fn := range c.With {
		lines, err := readLines(fn)
		if err != nil {
			return err
		}
		i.Feed(ascii.Encode(lines...)...)
	}
	return nil
}

func writeOutput(w io.Writer, out []vm.Cell) error {
	var b []byte
	for _, v := range out {
		b = strconv.AppendInt(b[:0], int64(v), 10)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

// runNumeric runs the program, printing output values one per line. When the
// program waits for input, a line of comma separated values is read from r.
func runNumeric(i *vm.Instance, run func(*vm.Instance) error, r io.Reader, w io.Writer, prompt string) error {
	s := bufio.NewScanner(r)
	for {
		err := run(i)
		if werr := writeOutput(w, i.DrainOutput()); err == nil {
			err = werr
		}
		if err != nil || i.Halted() {
			return err
		}
		if prompt != "" {
			if _, err = io.WriteString(w, prompt); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
		if !s.Scan() {
			log.Noticef("end of input, program waiting @pc=%d", i.PC)
			return errors.Wrap(s.Err(), "read failed")
		}
		in, err := vm.Parse(s.Text())
		if err != nil {
			return errors.Wrap(err, "invalid input")
		}
		i.Feed(in...)
	}
}

func finish(c *config, i *vm.Instance, w io.Writer) error {
	if c.Dump {
		if err := i.Dump(w); err != nil {
			return err
		}
	}
	if c.Save != "" {
		b, err := i.MarshalBinary()
		if err != nil {
			return err
		}
		if err = os.WriteFile(c.Save, b, 0o644); err != nil {
			return errors.Wrap(err, "save")
		}
		log.Infof("saved %s: pc=%d, %s", c.Save, i.PC, i.Status())
	}
	return nil
}

func atExit(c *config, i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !c.Debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil && i.PC >= 0 && i.PC < len(i.Mem) {
		fmt.Fprintf(os.Stderr, "PC: %d, base: %d, status: %v, instructions: %d\n", i.PC, i.Base(), i.Status(), i.InstructionCount())
		fmt.Fprint(os.Stderr, "PC: ")
		asm.Disassemble(i.Mem, i.PC, os.Stderr)
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance
	var c config

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		atExit(&c, i, err)
	}()

	c, _, err = parseConfig(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			err = nil
		}
		return
	}
	setupLogging(&c)

	if i, err = newVM(&c); err != nil {
		return
	}
	if c.Disasm {
		err = asm.DisassembleAll(i.Mem, 0, stdout)
		return
	}
	if err = feed(&c, i); err != nil {
		return
	}

	in := flushReader{os.Stdin, stdout}
	prompt := ""
	if isTerminal(os.Stdin) {
		prompt = c.Prompt
	}
	run := stepLimit(c.Steps)
	if c.ASCII {
		con := ascii.NewConsole(i, stdout)
		con.SetPrompt(prompt)
		con.SetRunFunc(run)
		err = con.Interact(in)
	} else {
		err = runNumeric(i, run, in, stdout, prompt)
	}
	log.Infof("%s after %d instructions", i.Status(), i.InstructionCount())
	if err == nil {
		err = finish(&c, i, stdout)
	}
}
