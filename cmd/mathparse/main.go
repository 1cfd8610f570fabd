package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/mathparse"
)

func main() {
	log.SetFlags(0)
	var (
		inname           string
		nl, echo, strict bool
		depth            int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&strict, "strict", false, "reject input after the end of an expression")
	flag.IntVar(&depth, "depth", 0, "maximum bracket nesting (0 for no limit)")
	flag.Parse()
	if depth < 0 {
		log.Fatalf("depth (%d) must not be negative", depth)
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		in, err := readall(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, in...)
	}
	srcs = append(srcs, flag.Args()...)

	opts := []mathparse.ParseOption{mathparse.MaxDepth(depth)}
	if strict {
		opts = append(opts, mathparse.RequireEnd())
	}
	preset := mathparse.ParsingPreset(opts...)
	for _, src := range srcs {
		run(os.Stdout, src, echo, preset)
	}
}

// run parses and evaluates one expression and prints the outcome to w.
func run(w io.Writer, src string, echo bool, opts ...mathparse.ParseOption) {
	a, err := mathparse.Parse(src, opts...)
	if err != nil {
		fmt.Fprintln(w, "no result:", err)
		return
	}
	if echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	r, err := a.Eval()
	var ae *mathparse.ArithmeticError
	switch {
	case errors.As(err, &ae):
		fmt.Fprintln(w, "arithmetic fault:", ae)
	case err != nil:
		fmt.Fprintln(w, err)
	default:
		fmt.Fprintln(w, r)
	}
}

// readall reads the whole input as one expression, or as one expression per
// non-blank line if lines is true.
func readall(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
