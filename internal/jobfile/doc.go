// Package jobfile loads code generation jobs from HCL documents.
//
// A job file declares functions to generate. Scalar functions bind an
// expression over named parameters; matrix functions bind a row-major list
// of expressions to a rows x cols output:
//
//	function "f" {
//	  parameters = ["x", "y"]
//	  expression = x * x + 2 * y
//	}
//
//	matrix_function "g" {
//	  parameters  = ["x", "y"]
//	  rows        = 1
//	  cols        = 2
//	  expressions = [x + y, x * y]
//	}
//
// Expressions use HCL's native arithmetic grammar (+, -, *, /, unary minus,
// parentheses, numeric literals) plus the function vocabulary abs, log,
// exp, sqrt, sin, cos, tan, asin, acos, atan, atan2, sinh, cosh, tanh,
// min, max, ceil, floor and pow. Identifiers must be declared parameters;
// each block scopes its own.
//
// Load returns the declared blocks translated into symbolic trees, in
// document order, ready to hand to the codegen emitters.
package jobfile
