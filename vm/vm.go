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
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// Status is the run status of an Instance.
type Status int

// Run states.
const (
	Running Status = iota // executing, or ready to execute
	Waiting               // blocked on an input instruction with an empty input queue
	Halted                // executed a halt instruction
	Aborted               // stopped on a fatal error
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Waiting:
		return "waiting for input"
	case Halted:
		return "halted"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

const traceLevel = commonlog.Debug

// Logger is the interface used for instruction tracing. It is satisfied by
// commonlog.Logger.
type Logger interface {
	AllowLevel(level commonlog.Level) bool
	Debugf(format string, args ...any)
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      Memory // Memory
	base     int
	next     int
	status   Status
	err      error
	input    []Cell
	output   []Cell
	outH     OutHandler
	log      Logger
	insCount int64
}

// Option interface
type Option func(*Instance) error

// OutHandler is the function prototype for custom output handlers.
type OutHandler func(i *Instance, v Cell) error

// Input queues the given values as initial input.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.Feed(values...); return nil }
}

// MemSize preallocates memory so that it is at least cells long. Memory grows
// on demand regardless of this setting.
func MemSize(cells int) Option {
	return func(i *Instance) error {
		if cells < 0 {
			return errors.Errorf("invalid memory size %d", cells)
		}
		if cells > 0 {
			i.Mem.grow(cells - 1)
		}
		return nil
	}
}

// BindOutHandler sets a custom output handler. Values written by output
// instructions are passed to the handler instead of being queued for
// DrainOutput. If the handler returns an error, the instance is aborted.
func BindOutHandler(h OutHandler) Option {
	return func(i *Instance) error {
		i.outH = h
		return nil
	}
}

// Trace enables instruction tracing: every decoded instruction is logged at
// debug level. A nil Logger disables tracing.
func Trace(l Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The mem parameter is the initial memory contents, usually obtained from
// Parse or Load. It is copied, so the same program can be used to create
// several independent instances.
//
// Options will be set by calling SetOptions.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: make(Memory, len(mem)),
	}
	copy(i.Mem, mem)
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Status returns the current run status.
func (i *Instance) Status() Status {
	return i.status
}

// Halted returns true if the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.status == Halted
}

// Waiting returns true if the program is suspended on an input instruction.
func (i *Instance) Waiting() bool {
	return i.status == Waiting
}

// Err returns the error that aborted the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// Base returns the current relative base.
func (i *Instance) Base() int {
	return i.base
}

// InstructionCount returns the number of instructions executed since the
// instance was created.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
