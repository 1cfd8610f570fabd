// Package mathparse implements a small integer calculator.
//
// Expressions contain non-negative integer literals, parentheses, and the
// binary operators + - * / and ^. Whitespace between tokens is ignored. There
// are no variables and no unary minus, although subtraction can still produce
// negative results. "2 ^ (1 + 3 * 2)" is 128.
//
// Every value is an int32. Division truncates toward zero. Exponentiation is
// right-associative and computed through a float64 intermediate, so
// "2 ^ (0 - 1)" is 0 rather than an error. Arithmetic that would overflow an
// int32, and division by zero, are faults rather than wrapped values.
//
// Calc is the simplest entry point. Parse and Expr.Eval separate the two
// stages and report errors with position information.
package mathparse
