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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stTop   = iota // accept anything
	stOper         // instruction operand
	stDat          // .dat value
	stOrg          // .org address
	stEqu          // .equ value
)

type parser struct {
	i       vm.Memory
	pc      int
	end     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	state   int
	op      vm.Opcode // instruction being assembled
	opPC    int       // address of its opcode cell
	opArg   int       // index of the next operand
	errs    ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	p.i.Write(p.pc, v)
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) tokError(msg string) {
	p.error(p.s.Position, msg)
}

// literal converts integers, chars and constants to a value.
func (p *parser) literal(s string) (v vm.Cell, ok bool, err error) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true, nil
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			return 0, false, err
		}
		if tail != "" {
			return 0, false, strconv.ErrSyntax
		}
		return vm.Cell(r), true, nil
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true, nil
	}
	return 0, false, nil
}

func isLabelName(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case ':', '.', '#', '@', '\'', '(', ')':
		return false
	}
	return !unicode.IsDigit(rune(s[0])) && s[0] != '-' && s[0] != '+'
}

// value writes the cell for an operand or .dat argument. Unknown identifiers
// are treated as label references.
func (p *parser) value(s string) {
	v, ok, err := p.literal(s)
	switch {
	case err != nil:
		p.tokError("Invalid literal " + s + ": " + err.Error())
		p.write(0)
	case ok:
		p.write(v)
	case isLabelName(s):
		p.useLabel(s)
		p.write(0)
	default:
		p.tokError("Invalid operand: " + s)
		p.write(0)
	}
}

func (p *parser) operand(s string) {
	mode := vm.Position
	switch s[0] {
	case '#':
		mode = vm.Immediate
		s = s[1:]
	case '@':
		mode = vm.Relative
		s = s[1:]
	}
	if s == "" {
		p.tokError("Missing operand value")
	}
	if mode == vm.Immediate && p.op.HasDest() && p.opArg == p.op.Arity()-1 {
		p.tokError("Immediate destination operand for " + p.op.String())
	}
	if mode != vm.Position {
		pow := vm.Cell(100)
		for k := 0; k < p.opArg; k++ {
			pow *= 10
		}
		p.i[p.opPC] += vm.Cell(mode) * pow
	}
	if s != "" {
		p.value(s)
	} else {
		p.write(0)
	}
	p.opArg++
	if p.opArg == p.op.Arity() {
		p.state = stTop
	}
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		p.state = stOrg
	case ".dat":
		p.state = stDat
	case ".equ":
		t := p.s.Scan()
		if t != scanner.Ident {
			p.tokError(".equ: expected identifier, got " + p.s.TokenText())
			return
		}
		p.cstName = p.s.TokenText()
		if l, ok := p.labels[p.cstName]; ok {
			p.tokError(".equ: redefinition of " + p.cstName + ", previously defined/used as a label here: " + l.pos.String())
			return
		}
		p.cstPos = p.s.Position
		p.state = stEqu
	default:
		p.tokError("Unknown dot directive: " + s)
	}
}

func (p *parser) defineLabel(s string) {
	n := s[1:]
	if !isLabelName(n) {
		p.tokError("Invalid label name: " + s)
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.tokError("Label redefinition: " + n + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.tokError("Label redefinition: " + n + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

func (p *parser) token(s string) {
	switch p.state {
	case stOper:
		p.operand(s)
		return
	case stDat:
		p.value(s)
		p.state = stTop
		return
	case stOrg, stEqu:
		v, ok, err := p.literal(s)
		if err != nil || !ok {
			p.tokError("Expected integer or constant, got " + s)
		} else if p.state == stOrg {
			if v < 0 {
				p.tokError("Negative .org address " + s)
			} else {
				p.pc = int(v)
			}
		} else {
			p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
		}
		p.state = stTop
		return
	}

	switch s[0] {
	case ':':
		p.defineLabel(s)
		return
	case '.':
		p.directive(s)
		return
	}
	if op, ok := lookup(s); ok {
		p.op = op
		p.opPC = p.pc
		p.opArg = 0
		p.write(vm.Cell(op))
		if op.Arity() > 0 {
			p.state = stOper
		}
		return
	}
	// raw cell
	v, ok, err := p.literal(s)
	switch {
	case err != nil:
		p.tokError("Invalid literal " + s + ": " + err.Error())
	case ok:
		p.write(v)
	default:
		p.tokError("Unknown mnemonic: " + s)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.tokError("Unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.tokError("Unterminated comment")
				break
			}
			continue
		}
		p.token(s)
	}

	switch p.state {
	case stOper:
		p.error(p.s.Pos(), "Missing operands for "+p.op.String())
	case stDat, stOrg, stEqu:
		p.error(p.s.Pos(), "Missing directive argument")
	}

	// resolve labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "Missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	return p.i[:p.end:p.end], nil
}

// Error is a single assembler error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm holds the errors reported by Assemble.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for n := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[n].Error())
	}
	return b.String()
}

func (e ErrAsm) sort() {
	// insertion sort, there are at most maxErrors entries
	for n := 1; n < len(e); n++ {
		for k := n; k > 0 && e[k].Pos.Offset < e[k-1].Pos.Offset; k-- {
			e[k], e[k-1] = e[k-1], e[k]
		}
	}
}
