package mathparse

import (
	"strconv"
	"strings"
)

// Operators contains the bytes which are binary operators.
const Operators = "+-*/^"

// Whitespace contains the bytes skipped between tokens.
const Whitespace = " \t\r\n"

// scanner is a cursor over an expression source. Only ASCII is meaningful to
// the grammar, so it works in bytes.
type scanner struct {
	src string
	pos int
}

func scan(src string) *scanner {
	return &scanner{src: src}
}

// skip advances past any run of whitespace, including an empty one.
func (s *scanner) skip() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at the end of input.
func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// accept consumes c if it is the next byte.
func (s *scanner) accept(c byte) bool {
	if s.peek() != c || c == 0 {
		return false
	}
	s.pos++
	return true
}

// digits consumes the longest run of ASCII digits, which may be empty.
func (s *scanner) digits() string {
	start := s.pos
	for s.pos < len(s.src) && '0' <= s.src[s.pos] && s.src[s.pos] <= '9' {
		s.pos++
	}
	return s.src[start:s.pos]
}

// literal scans an integer literal. If the digit run is empty or does not fit
// in an int32, nothing is consumed and ok is false.
func (s *scanner) literal() (n int32, ok bool) {
	start := s.pos
	d := s.digits()
	v, err := strconv.ParseInt(d, 10, 32)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return int32(v), true
}

// col is the 1-based column of the scanner's position.
func (s *scanner) col() int {
	return s.pos + 1
}

// rest returns the unconsumed input.
func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// token returns a short excerpt of the input at the scanner's position for
// error messages. It is a digit run if one starts here, else a single byte.
func (s *scanner) token() string {
	if s.pos >= len(s.src) {
		return ""
	}
	start := s.pos
	d := s.digits()
	s.pos = start
	if d != "" {
		return d
	}
	return s.src[start : start+1]
}

func isSpace(c byte) bool {
	return strings.IndexByte(Whitespace, c) >= 0
}
