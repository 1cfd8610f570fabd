package mathparse

import (
	"testing"
)

func TestLiteral(t *testing.T) {
	cases := []struct {
		src string
		n   int32
		ok  bool
		pos int
	}{
		{"0", 0, true, 1},
		{"1", 1, true, 1},
		{"007", 7, true, 3},
		{"2147483647", 2147483647, true, 10},
		{"2147483648", 0, false, 0},
		{"99999999999999999999", 0, false, 0},
		{"12+3", 12, true, 2},
		{"12 3", 12, true, 2},
		{"", 0, false, 0},
		{"(1)", 0, false, 0},
		{"-1", 0, false, 0},
		{"+1", 0, false, 0},
		{"1.5", 1, true, 1},
		{"1_000", 1, true, 1},
		{" 1", 0, false, 0},
	}
	for _, c := range cases {
		s := scan(c.src)
		n, ok := s.literal()
		if n != c.n || ok != c.ok {
			t.Errorf("scanning %q: want %d, %t; got %d, %t", c.src, c.n, c.ok, n, ok)
		}
		if s.pos != c.pos {
			t.Errorf("scanning %q: want position %d, got %d", c.src, c.pos, s.pos)
		}
	}
}

func TestSkip(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"", 0},
		{"1", 0},
		{" 1", 1},
		{" \t \r\n 1", 6},
		{"\v1", 0},
		{"    ", 4},
	}
	for _, c := range cases {
		s := scan(c.src)
		s.skip()
		if s.pos != c.pos {
			t.Errorf("skipping %q: want position %d, got %d", c.src, c.pos, s.pos)
		}
	}
}

func TestAccept(t *testing.T) {
	s := scan("(")
	if s.accept(')') {
		t.Error("accepted ) from (")
	}
	if !s.accept('(') {
		t.Error("didn't accept ( from (")
	}
	if s.accept(0) {
		t.Error("accepted NUL at end of input")
	}
	if s.peek() != 0 {
		t.Errorf("peek at end gave %q", s.peek())
	}
}

func TestToken(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"abc", "a"},
		{"123abc", "123"},
		{")", ")"},
	}
	for _, c := range cases {
		s := scan(c.src)
		if got := s.token(); got != c.want {
			t.Errorf("token of %q: want %q, got %q", c.src, c.want, got)
		}
		if s.pos != 0 {
			t.Errorf("token of %q moved the scanner to %d", c.src, s.pos)
		}
	}
}
