// SPDX-License-Identifier: MIT

// Package symbolic provides an immutable scalar expression tree with
// normalized sums and products, numeric evaluation, and a dense expression
// matrix.
//
// The expression model E is a closed set of node forms:
//
//   - Variable — a named unknown with a process-unique identity
//   - Constant — a float64 literal
//   - *Addition — flat n-ary sum: c0 + c1*e1 + c2*e2 + ...
//   - *Multiplication — flat n-ary product: c0 * b1^p1 * b2^p2 * ...
//   - *UnaryExpression — abs, log, exp, sqrt, sin, cos, tan, asin, acos,
//     atan, sinh, cosh, tanh, ceil, floor
//   - *BinaryExpression — division, pow, atan2, min, max
//   - *IfThenElse — symbolic conditional (no numeric semantics)
//   - *UninterpretedFunction — opaque named application
//
// Why normalized n-ary forms?
//
//   - Associativity is resolved at construction: x+(y+z) and (x+y)+z build
//     the identical node, so structural equality is meaningful.
//   - Term and factor order is explicit slice order, never map order, so
//     every downstream rendering of a tree is deterministic.
//   - Like terms merge as they are added (2*x + 3*x becomes 5*x), keeping
//     trees small without a separate simplification pass.
//
// Construction:
//
//	x := symbolic.NewVariable("x")
//	y := symbolic.NewVariable("y")
//	e := symbolic.Add(symbolic.Mul(x, x), symbolic.Mul(symbolic.Constant(2), y))
//
// The sugar constructors (Add, Sub, Neg, Mul, Div, Pow, the function
// wrappers) normalize and constant-fold; NewAddition and NewMultiplication
// build nodes verbatim for callers that already hold normalized parts.
// Nodes are immutable after construction and safe for concurrent use.
//
// Evaluation:
//
//	v, err := symbolic.Evaluate(e, symbolic.Environment{x: 1.5, y: 2.0})
//
// Errors:
//
//	ErrUnboundVariable   – Evaluate met a variable missing from the environment
//	ErrNotEvaluable      – Evaluate met if-then-else or an uninterpreted function
//	ErrInvalidDimensions – non-positive matrix shape
//	ErrDimensionMismatch – flat entry slice disagrees with rows*cols
//	ErrIndexOutOfRange   – matrix access outside bounds
//
// Matrix stores expressions row-major ((r, c) at index r*cols + c), matching
// the layout consumers use for flat output buffers.
package symbolic
