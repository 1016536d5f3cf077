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
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

type snapshot struct {
	PC       int    `cbor:"1,keyasint"`
	Base     int    `cbor:"2,keyasint"`
	Status   Status `cbor:"3,keyasint"`
	Mem      []Cell `cbor:"4,keyasint"`
	Input    []Cell `cbor:"5,keyasint,omitempty"`
	Output   []Cell `cbor:"6,keyasint,omitempty"`
	InsCount int64  `cbor:"7,keyasint"`
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// MarshalBinary implements encoding.BinaryMarshaler. It saves the machine
// state: program counter, relative base, memory, pending input, undrained
// output, status and instruction count. Options are not saved.
//
// An aborted instance cannot be saved.
func (i *Instance) MarshalBinary() ([]byte, error) {
	if i.status == Aborted {
		return nil, errors.Wrap(i.err, "cannot snapshot aborted instance")
	}
	b, err := snapshotEncMode.Marshal(&snapshot{
		PC:       i.PC,
		Base:     i.base,
		Status:   i.status,
		Mem:      i.Mem,
		Input:    i.input,
		Output:   i.output,
		InsCount: i.insCount,
	})
	return b, errors.Wrap(err, "snapshot encoding failed")
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// machine state with the one saved by MarshalBinary. Options previously set on
// the instance are kept.
func (i *Instance) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "snapshot decoding failed")
	}
	switch s.Status {
	case Running, Waiting, Halted:
	default:
		return errors.Errorf("invalid snapshot status %d", s.Status)
	}
	if s.PC < 0 {
		return errors.Errorf("invalid snapshot pc %d", s.PC)
	}
	i.PC = s.PC
	i.base = s.Base
	i.status = s.Status
	i.err = nil
	i.Mem = s.Mem
	i.input = s.Input
	i.output = s.Output
	i.insCount = s.InsCount
	return nil
}
