/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package interp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnterminatedList is returned when input ends inside an open list; the
// REPL uses this to switch to a continuation prompt instead of reporting a
// hard syntax error.
var ErrUnterminatedList = errors.New("expecting matching )")

type tokKind int

const (
	tokLParen tokKind = iota
	tokRParen
	tokQuote
	tokQuasiquote
	tokUnquote
	tokSplice
	tokString
	tokAtom
)

type token struct {
	kind tokKind
	text string
}

var escapeReplacer = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
)

// tokenize splits src into tokens. Unknown escape sequences pass the
// trailing character through literally, as required by the surface syntax.
func tokenize(src string) ([]token, error) {
	var toks []token
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ';':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == '\'':
			toks = append(toks, token{tokQuote, "'"})
			i++
		case c == '`':
			toks = append(toks, token{tokQuasiquote, "`"})
			i++
		case c == '~' && i+1 < n && src[i+1] == '@':
			toks = append(toks, token{tokSplice, "~@"})
			i += 2
		case c == '~':
			toks = append(toks, token{tokUnquote, "~"})
			i++
		case c == '"':
			start := i
			i++
			var b strings.Builder
			closed := false
			for i < n {
				if src[i] == '\\' && i+1 < n {
					decoded := escapeReplacer.Replace(src[i : i+2])
					if decoded == src[i:i+2] {
						decoded = src[i+1 : i+2]
					}
					b.WriteString(decoded)
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					closed = true
					break
				}
				b.WriteByte(src[i])
				i++
			}
			if !closed {
				return nil, ErrUnterminatedList
			}
			_ = start
			toks = append(toks, token{tokString, b.String()})
		default:
			start := i
			for i < n && !isDelim(src[i]) {
				i++
			}
			toks = append(toks, token{tokAtom, src[start:i]})
		}
	}
	return toks, nil
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '\'', '`', '~', '"', ';':
		return true
	default:
		return false
	}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parseForm() (Value, error) {
	t, ok := p.next()
	if !ok {
		return nil, errors.New("unexpected end of input")
	}
	switch t.kind {
	case tokLParen:
		return p.parseList()
	case tokRParen:
		return nil, errors.New("unexpected )")
	case tokQuote:
		return p.parseWrapped(symQuote)
	case tokQuasiquote:
		return p.parseWrapped(symQuasiquote)
	case tokUnquote:
		return p.parseWrapped(symUnquote)
	case tokSplice:
		return p.parseWrapped(symSpliceUnq)
	case tokString:
		return String(t.text), nil
	default:
		return parseAtom(t.text), nil
	}
}

func (p *parser) parseWrapped(head *Symbol) (Value, error) {
	inner, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	return List{head, inner}, nil
}

func (p *parser) parseList() (Value, error) {
	var elems List
	for {
		t, ok := p.peek()
		if !ok {
			return nil, ErrUnterminatedList
		}
		if t.kind == tokRParen {
			p.pos++
			if elems == nil {
				return Empty, nil
			}
			return elems, nil
		}
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
}

func parseAtom(text string) Value {
	if text == "nil" {
		return Nil
	}
	if text == "true" {
		return True
	}
	if text == "false" {
		return False
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Number(n)
	}
	return Intern(text)
}

// ReadString parses exactly one form from src. It returns ErrUnterminatedList
// if src ends inside an open list or string, so callers (the REPL) can
// offer a continuation prompt instead of a hard failure.
func ReadString(src string) (Value, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("no form to read")
	}
	p := &parser{toks: toks}
	v, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadAll parses every top-level form in src in order, for callers (the
// REPL's prelude loader) that step through a whole file rather than one line.
func ReadAll(src string) ([]Value, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var forms []Value
	for {
		if _, ok := p.peek(); !ok {
			return forms, nil
		}
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}
