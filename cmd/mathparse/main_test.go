package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/mathparse"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		src  string
		echo bool
		opts []mathparse.ParseOption
		want string
	}{
		{"value", "2 ^ (1 + 3 * 2)", false, nil, "128\n"},
		{"echo", "2* 2 + 3", true, nil, "([2 * 2] + 3) : 7\n"},
		{"invalid", "(1+2", false, nil, "no result: 5: open bracket at 1 with no close bracket\n"},
		{"fault", "1/0", false, nil, "arithmetic fault: 1 / 0: division by zero\n"},
		{"trailing", "1abc", false, nil, "1\n"},
		{"strict", "1abc", false, []mathparse.ParseOption{mathparse.RequireEnd()}, "no result: 2: unexpected \"abc\" after expression\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			run(&b, c.src, c.echo, c.opts...)
			if got := b.String(); got != c.want {
				t.Errorf("wrong output: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestReadall(t *testing.T) {
	in := "1+1\n\n  \n2*3\n"
	got, err := readall(strings.NewReader(in), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "1+1" || got[1] != "2*3" {
		t.Errorf("wrong lines: %q", got)
	}
	got, err = readall(strings.NewReader(in), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != in {
		t.Errorf("wrong whole input: %q", got)
	}
}

func TestInfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs")
	if err := os.WriteFile(name, []byte("1+1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := infile(name, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(f)
	if err != nil || string(b) != "1+1\n" {
		t.Errorf("read %q, %v", b, err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if _, err := f.Read(make([]byte, 1)); err == nil {
		t.Error("read after close succeeded")
	}
	if f, err := infile("", false); f != nil || err != nil {
		t.Errorf("no input gave %v, %v", f, err)
	}
	if f, err := infile("-", false); f == nil || err != nil {
		t.Errorf("stdin gave %v, %v", f, err)
	}
}
