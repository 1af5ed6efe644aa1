// SPDX-License-Identifier: MIT

// Package codegen turns symbolic expression trees into compilable C source:
// scalar functions over a flat double vector, and batch functions filling a
// flat double matrix.
//
// 🚀 What does it generate?
//
//	For each request the emitter produces a self-contained C fragment that
//	depends only on <math.h>:
//	  • double f(const double* p)            — scalar evaluation
//	  • void   g(const double* p, double* m) — one store per matrix entry
//	  • f_meta_t / f_meta()                  — buffer sizes for the caller
//
// ✨ Key properties:
//   - structural rendering: the tree is printed as-is, fully parenthesized,
//     with no reassociation or folding, so output is byte-deterministic
//   - shortest round-trip constants: the C double parses back to the exact
//     float64 that was in the tree
//   - variables resolve through an explicit position binding (p[i]), never
//     through names
//   - all-or-nothing output: on any error no partial text escapes
//   - no global state: concurrent emission over shared trees is safe
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/RuslanAgishev/drake/codegen"
//	  "github.com/RuslanAgishev/drake/symbolic"
//	)
//
//	x := symbolic.NewVariable("x")
//	y := symbolic.NewVariable("y")
//	e := symbolic.Add(symbolic.Mul(x, x), symbolic.Mul(symbolic.Constant(2), y))
//
//	src, meta, err := codegen.ScalarFunction("f", []symbolic.Variable{x, y}, e)
//	// double f(const double* p) {
//	//     return (0 + (1 * pow(p[0], 2)) + (2 * p[1]));
//	// }
//	// ... f_meta_t typedef and f_meta() follow; meta.InputSize == 2
//
// Matrix requests go through BatchFunction / WriteBatchFunction with a
// *symbolic.Matrix; entry (r, c) lands in m[r*cols + c].
//
// Errors:
//
//	ErrUnboundVariable      – expression uses a variable outside the parameter list
//	ErrUnsupportedConstruct – if-then-else or uninterpreted function in the tree
//	ErrMalformedInput       – bad function name, duplicate parameters, nil input,
//	                          non-finite constant
//	ErrDepthExceeded        – nesting beyond WithMaxDepth (DefaultMaxDepth 8192)
//
// See example_test.go for complete generated listings.
package codegen
