package mathparse

import (
	"math"
	"strconv"
)

// Eval evaluates the expression. The error, if not nil, is an
// *ArithmeticError from the first operation that overflowed or divided by
// zero.
func (e *Expr) Eval() (int32, error) {
	return e.n.eval()
}

func (n *addsub) eval() (int32, error) {
	if n.op == opNone {
		return n.m.eval()
	}
	l, err := n.rest.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.m.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case opAdd:
		return checked(opAdd, l, r, int64(l)+int64(r))
	case opSub:
		return checked(opSub, l, r, int64(l)-int64(r))
	default:
		panic("mathparse: invalid sum node " + n.op.String())
	}
}

func (n *muldiv) eval() (int32, error) {
	if n.op == opNone {
		return n.p.eval()
	}
	l, err := n.rest.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.p.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case opMul:
		return checked(opMul, l, r, int64(l)*int64(r))
	case opDiv:
		if r == 0 {
			return 0, &ArithmeticError{Op: "/", L: l, R: r, Reason: "division by zero"}
		}
		// Go's integer division truncates toward zero. Only MinInt32 / -1
		// leaves the range, and the int64 quotient catches it.
		return checked(opDiv, l, r, int64(l)/int64(r))
	default:
		panic("mathparse: invalid product node " + n.op.String())
	}
}

func (n *power) eval() (int32, error) {
	b, err := n.b.eval()
	if n.exp == nil || err != nil {
		return b, err
	}
	e, err := n.exp.eval()
	if err != nil {
		return 0, err
	}
	f := math.Trunc(powi(float64(b), e))
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0, &ArithmeticError{Op: "^", L: b, R: e, Reason: "result is not finite"}
	case f < math.MinInt32, f > math.MaxInt32:
		return 0, &ArithmeticError{Op: "^", L: b, R: e, Reason: "overflow"}
	}
	return int32(f), nil
}

func (n *bracket) eval() (int32, error) {
	if n.sub == nil {
		return n.lit, nil
	}
	return n.sub.eval()
}

// checked converts the exact result v of l op r back to an int32, or reports
// overflow.
func checked(op opKind, l, r int32, v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &ArithmeticError{Op: op.sym(), L: l, R: r, Reason: "overflow"}
	}
	return int32(v), nil
}

// powi raises x to an integer power by repeated squaring. Negative powers give
// the reciprocal, so fractional results are possible, and 0 to a negative
// power is +Inf.
func powi(x float64, n int32) float64 {
	u := uint32(n)
	if n < 0 {
		u = uint32(-int64(n))
	}
	r := 1.0
	for u != 0 {
		if u&1 != 0 {
			r *= x
		}
		u >>= 1
		x *= x
	}
	if n < 0 {
		return 1 / r
	}
	return r
}

// EvalString is a shortcut to parse and evaluate a string expression. The
// error is either an InputError from parsing or an *ArithmeticError from
// evaluation.
func EvalString(src string, opts ...ParseOption) (int32, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// Calc parses and evaluates src. If src does not start with a valid
// expression, the result is 0, false. Trailing input after the expression is
// ignored. Brackets nested more than 65536 deep are treated as invalid.
//
// Arithmetic faults are not recoverable through Calc. Like integer division by
// zero in Go itself, an overflow or zero divisor panics, here with the
// *ArithmeticError describing it. Use Parse and Expr.Eval to handle them as
// errors instead.
func Calc(src string) (int32, bool) {
	e, err := Parse(src, MaxDepth(calcDepth))
	if err != nil {
		return 0, false
	}
	r, err := e.Eval()
	if err != nil {
		panic(err)
	}
	return r, true
}

// calcDepth is the bracket nesting limit for Calc.
const calcDepth = 1 << 16

// ArithmeticError is an error from an operation whose result is not an int32.
type ArithmeticError struct {
	// Op is the operator symbol.
	Op string
	// L and R are the operands. For ^, L is the base and R the exponent.
	L, R int32
	// Reason describes the fault.
	Reason string
}

func (err *ArithmeticError) Error() string {
	return strconv.Itoa(int(err.L)) + " " + err.Op + " " + strconv.Itoa(int(err.R)) + ": " + err.Reason
}
