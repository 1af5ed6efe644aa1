// SPDX-License-Identifier: MIT

// Package codegen: sentinel error set.
// Emitters fail with exactly these sentinels, wrapped with the offending
// detail via %w; callers branch with errors.Is. Generated text is all-or-
// nothing: on any error the emitters return no partial output.

package codegen

import "errors"

var (
	// ErrUnboundVariable means the expression references a variable that is
	// not covered by the parameter binding. The wrap names the variable.
	ErrUnboundVariable = errors.New("codegen: variable not bound to a parameter slot")

	// ErrUnsupportedConstruct means the expression contains a node form that
	// has no C rendering (if-then-else, uninterpreted functions).
	ErrUnsupportedConstruct = errors.New("codegen: unsupported construct")

	// ErrMalformedInput covers invalid requests: a nil expression or matrix,
	// a function name that is not a C identifier, duplicate parameters, or a
	// non-finite constant in the tree.
	ErrMalformedInput = errors.New("codegen: malformed input")

	// ErrDepthExceeded means the expression tree is nested deeper than the
	// configured limit (DefaultMaxDepth unless WithMaxDepth overrides it).
	ErrDepthExceeded = errors.New("codegen: expression nesting exceeds depth limit")
)
