// SPDX-License-Identifier: MIT

// Package codegen: result metadata types.

package codegen

// Shape is the row/column extent of a generated matrix output.
type Shape struct {
	Rows int
	Cols int
}

// Meta describes a generated function alongside its C source: how many
// input slots the parameter vector p has and, for matrix functions, the
// shape of the output buffer m. Output is nil for scalar functions.
//
// The same facts are embedded in the generated source as the
// <name>_meta_t struct and the <name>_meta() accessor, so C callers can
// size their buffers without consulting Go.
type Meta struct {
	InputSize int
	Output    *Shape
}
