package mathparse

import (
	"strconv"
	"strings"
)

// Each grammar level has its own node type. A level either holds a single
// operand from the level below it or combines such an operand with more of
// its own level.

// addsub is a sum or difference chain. With op == opNone, only m is set.
// Otherwise rest is everything to the left of the last operator and m is the
// operand to its right.
type addsub struct {
	op   opKind
	rest *addsub
	m    *muldiv
}

// muldiv is a product or quotient chain, laid out like addsub.
type muldiv struct {
	op   opKind
	rest *muldiv
	p    *power
}

// power is an exponentiation chain. b is the first operand parsed, the base.
// If exp is non-nil, it is everything to the right of the ^, the exponent.
type power struct {
	exp *power
	b   *bracket
}

// bracket is an atom: a literal if sub is nil, otherwise a parenthesized
// subexpression.
type bracket struct {
	lit int32
	sub *addsub
}

type opKind int8

const (
	opNone opKind = iota

	opAdd // rest + m
	opSub // rest - m
	opMul // rest * p
	opDiv // rest / p
	opPow // b ^ exp
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=opKind -trimprefix=op
//go:generate go mod tidy

// binop gets the operator kind for an operator byte. If there is no such
// operator, the result is opNone.
func binop(c byte) opKind {
	switch c {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	case '^':
		return opPow
	default:
		return opNone
	}
}

// sym is the inverse of binop.
func (k opKind) sym() string {
	switch k {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "^"
	default:
		panic("mathparse: no symbol for operator " + k.String())
	}
}

// The fmt methods write each operator node as a group, alternating round and
// square brackets with depth so that nesting is easy to follow. Nodes that
// only pass through a lower level add nothing.

func (n *addsub) fmt(b *strings.Builder, square bool) {
	if n.op == opNone {
		n.m.fmt(b, square)
		return
	}
	group(b, square, func(square bool) {
		n.rest.fmt(b, square)
		b.WriteString(" " + n.op.sym() + " ")
		n.m.fmt(b, square)
	})
}

func (n *muldiv) fmt(b *strings.Builder, square bool) {
	if n.op == opNone {
		n.p.fmt(b, square)
		return
	}
	group(b, square, func(square bool) {
		n.rest.fmt(b, square)
		b.WriteString(" " + n.op.sym() + " ")
		n.p.fmt(b, square)
	})
}

func (n *power) fmt(b *strings.Builder, square bool) {
	if n.exp == nil {
		n.b.fmt(b, square)
		return
	}
	group(b, square, func(square bool) {
		n.b.fmt(b, square)
		b.WriteString(" ^ ")
		n.exp.fmt(b, square)
	})
}

func (n *bracket) fmt(b *strings.Builder, square bool) {
	if n.sub == nil {
		b.WriteString(strconv.FormatInt(int64(n.lit), 10))
		return
	}
	n.sub.fmt(b, square)
}

// group writes a bracketed group and calls f to fill it with the bracket
// style for its children.
func group(b *strings.Builder, square bool, f func(square bool)) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	f(!square)
	b.WriteByte(r)
}
