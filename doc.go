// Package drake turns symbolic arithmetic into compilable C evaluators —
// build an expression tree once, generate an allocation-free function for
// your hot numeric loops.
//
// 🚀 What is drake?
//
//	A small, deterministic code generation toolkit in two layers:
//		• symbolic/ — immutable expression trees: variables, constants,
//		  normalized sums & products, the <math.h> function catalogue,
//		  direct evaluation, dense expression matrices
//		• codegen/  — the lowering visitor and emitters: scalar functions
//		  (double f(const double* p)) and batch matrix functions
//		  (void g(const double* p, double* m)), each with a _meta companion
//
// ✨ Why choose drake?
//
//   - Byte-deterministic – identical input trees always emit identical C,
//     so builds reproduce and caches never miss
//   - All-or-nothing – unsupported constructs fail with sentinel errors
//     before a single byte of partial output escapes
//   - Pure generation – no file I/O, no global state, safe to run
//     concurrently; callers own every buffer
//   - Toolchain-ready – cmd/drakegen drives the generators from declarative
//     HCL job documents and writes complete .c listings
//
// Quick taste:
//
//	x := symbolic.NewVariable("x")
//	y := symbolic.NewVariable("y")
//	e := symbolic.Add(symbolic.Mul(x, x), symbolic.Mul(symbolic.Constant(2), y))
//	src, meta, _ := codegen.ScalarFunction("f", []symbolic.Variable{x, y}, e)
//	// src holds "double f(const double* p) { ... }" with f_meta() attached;
//	// meta.InputSize == 2 tells the caller how long p must be.
//
// Everything is organized under:
//
//	symbolic/     — expression model, construction, evaluation, Matrix
//	codegen/      — Lower, ScalarFunction, BatchFunction, WriteBatchFunction
//	cmd/drakegen/ — the job-document CLI
//
// Dive into the package docs for the full error taxonomy, the generated
// text contract, and runnable examples.
//
//	go get github.com/RuslanAgishev/drake
package drake
