package mathparse

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	endopt   struct{}
	depthopt int
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// end indicates that the whole source must be an expression.
	end bool
	// maxdepth is the deepest allowed bracket nesting, or 0 for no limit.
	maxdepth int
	// depth is the bracket nesting at the parser's position.
	depth int
}

// RequireEnd tells the parser that the entire source must be one expression.
// Without it, parsing stops quietly at the first byte that cannot continue
// the expression.
func RequireEnd() ParseOption {
	return endopt{}
}

func (endopt) parseOption(p parsectx) parsectx {
	p.end = true
	return p
}

// MaxDepth limits how deeply brackets may nest. With n == 0, which is the
// default, there is no limit, and parsing recurses once per open bracket:
// untrusted input with millions of brackets can exhaust the goroutine stack,
// which is fatal. Panics if n is negative.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("mathparse: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// ParsingPreset creates a parsing preset to use the same options for many
// calls to Parse. A preset panics when it would change any option from the
// default, but it is safe to apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.end || p.maxdepth != 0 {
		panic("mathparse: preset applied to non-default parse config")
	}
	p.end = o.end
	p.maxdepth = o.maxdepth
	return p
}
