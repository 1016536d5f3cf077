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
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const defaultConfigFile = "intcode.toml"

type logConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// config holds the command settings. It is loaded from a TOML file, then
// overridden by command line flags.
type config struct {
	Program  string    `toml:"program"`
	Input    []int64   `toml:"input"`
	With     []string  `toml:"with"`
	ASCII    bool      `toml:"ascii"`
	Prompt   string    `toml:"prompt"`
	Steps    int64     `toml:"steps"`
	MemSize  int       `toml:"mem-size"`
	Save     string    `toml:"save"`
	Restore  string    `toml:"restore"`
	Log      logConfig `toml:"log"`
	Debug    bool      `toml:"-"`
	Disasm   bool      `toml:"-"`
	Dump     bool      `toml:"-"`
	File     string    `toml:"-"`
	Explicit bool      `toml:"-"`
}

func defaultConfig() config {
	return config{
		Prompt: "> ",
		File:   defaultConfigFile,
	}
}

func newFlagSet(c *config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("intcode", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&c.File, "config", "c", c.File, "load settings from TOML `file`")
	fs.StringVarP(&c.Program, "program", "p", c.Program, "Intcode program `file`")
	fs.Int64SliceVarP(&c.Input, "input", "i", c.Input, "comma separated `values` queued as initial input")
	fs.StringArrayVarP(&c.With, "with", "w", c.With, "send the lines of `file` as ASCII input (can be specified multiple times)")
	fs.BoolVarP(&c.ASCII, "ascii", "a", c.ASCII, "ASCII mode: read input lines from stdin and decode output as text")
	fs.StringVar(&c.Prompt, "prompt", c.Prompt, "ASCII mode prompt, only shown when stdin is a terminal")
	fs.Int64Var(&c.Steps, "steps", c.Steps, "abort after `n` instructions (0 means no limit)")
	fs.IntVar(&c.MemSize, "mem-size", c.MemSize, "preallocate memory to `cells` cells")
	fs.StringVar(&c.Save, "save", c.Save, "save a snapshot of the machine to `file` on exit")
	fs.StringVar(&c.Restore, "restore", c.Restore, "resume from the snapshot in `file` instead of loading a program")
	fs.BoolVar(&c.Disasm, "disasm", c.Disasm, "disassemble the program and exit")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "dump memory to stdout on exit")
	fs.CountVarP(&c.Log.Verbosity, "verbose", "v", "increase log verbosity (can be specified multiple times)")
	fs.StringVar(&c.Log.File, "log", c.Log.File, "write log messages to `file` instead of stderr")
	fs.BoolVarP(&c.Debug, "debug", "d", c.Debug, "trace every instruction and print stack traces on errors")
	return fs
}

// loadFile decodes the TOML file fileName into c. Keys that do not map to a
// setting are reported as errors. A missing file is an error only if
// mustExist is true.
func (c *config) loadFile(fileName string, mustExist bool) error {
	md, err := toml.DecodeFile(fileName, c)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) && !mustExist {
			return nil
		}
		return errors.Wrapf(err, "config %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		ks := make([]string, len(keys))
		for n, k := range keys {
			ks[n] = k.String()
		}
		return errors.Errorf("config %s: unknown settings: %s", fileName, strings.Join(ks, ", "))
	}
	return nil
}

// merge copies the values of the flags that have been set in fs from f to c.
func (c *config) merge(fs *pflag.FlagSet, f *config) {
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "program":
			c.Program = f.Program
		case "input":
			c.Input = f.Input
		case "with":
			c.With = f.With
		case "ascii":
			c.ASCII = f.ASCII
		case "prompt":
			c.Prompt = f.Prompt
		case "steps":
			c.Steps = f.Steps
		case "mem-size":
			c.MemSize = f.MemSize
		case "save":
			c.Save = f.Save
		case "restore":
			c.Restore = f.Restore
		case "verbose":
			c.Log.Verbosity = f.Log.Verbosity
		case "log":
			c.Log.File = f.Log.File
		}
	})
	c.Debug = f.Debug
	c.Disasm = f.Disasm
	c.Dump = f.Dump
	c.File = f.File
	c.Explicit = fs.Changed("config")
}

// parseConfig parses the command line arguments and the configuration file they
// point to. Settings from the command line take precedence.
func parseConfig(args []string) (config, *pflag.FlagSet, error) {
	f := defaultConfig()
	fs := newFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		return f, fs, err
	}
	if f.Program == "" && fs.NArg() > 0 {
		f.Program = fs.Arg(0)
		if err := fs.Set("program", f.Program); err != nil {
			return f, fs, err
		}
	}

	c := defaultConfig()
	if err := c.loadFile(f.File, fs.Changed("config")); err != nil {
		return c, fs, err
	}
	c.merge(fs, &f)
	if c.Steps < 0 {
		return c, fs, errors.Errorf("invalid step limit %d", c.Steps)
	}
	if c.Program == "" && c.Restore == "" {
		return c, fs, errors.New("no program file specified")
	}
	return c, fs, nil
}
