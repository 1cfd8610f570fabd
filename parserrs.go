package mathparse

import "strconv"

// TermError is an error indicating that a term was expected but the input
// held neither a number nor an open bracket. It implements InputError.
type TermError struct {
	// Col is the position of the unexpected text.
	Col int
	// Text is the unexpected token: a digit run too large to be a number, or
	// a single byte.
	Text string
}

func (err *TermError) Error() string {
	if isDigits(err.Text) {
		return errpos(err.Col, "number "+err.Text+" out of range")
	}
	return errpos(err.Col, "expected number or ( but found "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket with no matching close
// bracket. It implements InputError.
type BracketError struct {
	// Col is the position where the close bracket was expected.
	Col int
	// Open is the position of the open bracket.
	Open int
	// Text is what was found instead of the close bracket, or the empty
	// string at the end of input.
	Text string
}

func (err *BracketError) Error() string {
	msg := "open bracket at " + strconv.Itoa(err.Open) + " with no close bracket"
	if err.Text != "" {
		msg += " before " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that the input ended where a
// term was expected. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression at end")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input after a complete expression when
// parsing with RequireEnd. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unparsed byte.
	Col int
	// Text is the unparsed input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError is an error indicating brackets nested more deeply than allowed
// by MaxDepth. It implements InputError.
type DepthError struct {
	// Col is the position of the open bracket that exceeded the limit.
	Col int
	// Max is the limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "brackets nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte column of the
	// start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TermError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
)
