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
// The intcode command line tool runs Intcode programs, either with numeric
// input and output, or as an ASCII console.
//
// Usage:
//
//	intcode [flags] [program file]
//
//	-c, --config file
//		  load settings from TOML file (default "intcode.toml")
//	-p, --program file
//		  Intcode program file
//	-i, --input values
//		  comma separated values queued as initial input
//	-w, --with file
//		  send the lines of file as ASCII input (can be specified multiple times)
//	-a, --ascii
//		  ASCII mode: read input lines from stdin and decode output as text
//	    --prompt string
//		  ASCII mode prompt, only shown when stdin is a terminal (default "> ")
//	    --steps n
//		  abort after n instructions (0 means no limit)
//	    --mem-size cells
//		  preallocate memory to cells cells
//	    --save file
//		  save a snapshot of the machine to file on exit
//	    --restore file
//		  resume from the snapshot in file instead of loading a program
//	    --disasm
//		  disassemble the program and exit
//	    --dump
//		  dump memory to stdout on exit
//	-v, --verbose
//		  increase log verbosity (can be specified multiple times)
//	    --log file
//		  write log messages to file instead of stderr
//	-d, --debug
//		  trace every instruction and print stack traces on errors
//
// Program files contain comma separated integers, as accepted by vm.Parse.
//
// In numeric mode (the default), output values are printed one per line. When
// the program waits for input, a line of comma separated values is read from
// stdin. In ASCII mode, each line read from stdin is sent as characters
// terminated by a newline, and output values in the range 0..255 are printed
// as characters. In both modes, the program stops when it halts or when stdin
// is exhausted.
//
// -with: the lines of the given files are queued as ASCII input before running
// the program, after any -input values. Use it for scripted sessions, like
// springdroid programs:
//
//	intcode -a -w springscript.txt day21.txt
//
// -steps: the limit applies to the total number of instructions executed by
// the machine, including those executed before a snapshot was saved.
//
// -save, -restore: a snapshot holds the full machine state, including pending
// input and output. A program waiting for input can be saved on exit and
// resumed later:
//
//	intcode -a --save game.cbor day25.txt < commands.txt
//	intcode -a --restore game.cbor --save game.cbor
//
// -debug: will log every instruction executed and print a full stacktrace
// should the VM crash.
//
// Settings can also be read from a TOML file. Keys match the long flag names,
// log settings go in a [log] table. Command line flags override the file:
//
//	program = "day25.txt"
//	ascii = true
//	steps = 10000000
//
//	[log]
//	verbosity = 1
//	file = "intcode.log"
package main
