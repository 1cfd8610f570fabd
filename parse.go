package mathparse

import (
	"strings"
)

// AddSub  = MulDiv { ('+' | '-') MulDiv }
// MulDiv  = Power { ('*' | '/') Power }
// Power   = Bracket [ '^' Power ]
// Bracket = num | '(' AddSub ')'
//
// Whitespace may appear before and after any token.

// Expr is a parsed expression. It is immutable and may be evaluated any number
// of times, including concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *addsub
	// src is the parsed source and end is the offset at which parsing stopped.
	src string
	end int
}

// Parse parses an expression from the start of src. The given options are
// applied in order.
//
// By default, parsing stops after the longest prefix of src that is an
// expression, so "1abc" parses as 1. Rest reports what was left over, and the
// RequireEnd option makes leftover input an error instead.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	s := scan(src)
	n, err := parseaddsub(s, &p)
	if err != nil {
		return nil, err
	}
	if p.end && s.pos < len(s.src) {
		return nil, &TrailingError{Col: s.col(), Text: s.rest()}
	}
	return &Expr{n: n, src: src, end: s.pos}, nil
}

func parseaddsub(s *scanner, p *parsectx) (*addsub, error) {
	s.skip()
	m, err := parsemuldiv(s, p)
	if err != nil {
		return nil, err
	}
	n := &addsub{m: m}
	for {
		s.skip()
		op := binop(s.peek())
		if op != opAdd && op != opSub {
			return n, nil
		}
		s.pos++
		s.skip()
		m, err := parsemuldiv(s, p)
		if err != nil {
			return nil, err
		}
		n = &addsub{op: op, rest: n, m: m}
	}
}

func parsemuldiv(s *scanner, p *parsectx) (*muldiv, error) {
	s.skip()
	pw, err := parsepower(s, p)
	if err != nil {
		return nil, err
	}
	n := &muldiv{p: pw}
	for {
		s.skip()
		op := binop(s.peek())
		if op != opMul && op != opDiv {
			return n, nil
		}
		s.pos++
		s.skip()
		pw, err := parsepower(s, p)
		if err != nil {
			return nil, err
		}
		n = &muldiv{op: op, rest: n, p: pw}
	}
}

// parsepower parses an exponentiation chain. The exponent is parsed by
// recursion, so a^b^c is a^(b^c).
func parsepower(s *scanner, p *parsectx) (*power, error) {
	s.skip()
	b, err := parsebracket(s, p)
	if err != nil {
		return nil, err
	}
	s.skip()
	if !s.accept('^') {
		return &power{b: b}, nil
	}
	s.skip()
	exp, err := parsepower(s, p)
	if err != nil {
		return nil, err
	}
	return &power{exp: exp, b: b}, nil
}

// parsebracket parses a literal or a parenthesized expression. A literal is
// always tried first; anything that is not one must be an open bracket.
func parsebracket(s *scanner, p *parsectx) (*bracket, error) {
	s.skip()
	if n, ok := s.literal(); ok {
		return &bracket{lit: n}, nil
	}
	open := s.col()
	if !s.accept('(') {
		if s.pos >= len(s.src) {
			return nil, &EmptyExpressionError{Col: s.col()}
		}
		return nil, &TermError{Col: s.col(), Text: s.token()}
	}
	if p.maxdepth > 0 && p.depth >= p.maxdepth {
		return nil, &DepthError{Col: open, Max: p.maxdepth}
	}
	p.depth++
	s.skip()
	sub, err := parseaddsub(s, p)
	p.depth--
	if err != nil {
		return nil, err
	}
	s.skip()
	if !s.accept(')') {
		return nil, &BracketError{Col: s.col(), Open: open, Text: s.token()}
	}
	return &bracket{sub: sub}, nil
}

// Rest returns the part of the source after the parsed expression. It is
// empty unless the source had trailing input that is not part of the
// expression.
func (e *Expr) Rest() string {
	return e.src[e.end:]
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each operation.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
