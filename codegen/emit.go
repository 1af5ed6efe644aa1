// SPDX-License-Identifier: MIT

// Package codegen: shared request validation and the metadata companion
// emitted after every generated function.

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RuslanAgishev/drake/symbolic"
)

// validateRequest rejects the failure modes common to both emitters before
// any text is produced: a name that is not a C identifier, or a parameter
// list binding the same variable to two slots.
func validateRequest(name string, parameters []symbolic.Variable) error {
	if !isCIdentifier(name) {
		return fmt.Errorf("function name %q: %w", name, ErrMalformedInput)
	}
	seen := make(map[symbolic.VariableID]struct{}, len(parameters))
	for _, p := range parameters {
		if _, dup := seen[p.ID()]; dup {
			return fmt.Errorf("duplicate parameter %q (id %d): %w", p.Name(), p.ID(), ErrMalformedInput)
		}
		seen[p.ID()] = struct{}{}
	}

	return nil
}

// isCIdentifier reports whether s is a plain C identifier: ASCII letters,
// digits and underscore, not starting with a digit.
func isCIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		alpha := c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		digit := '0' <= c && c <= '9'
		if !alpha && (i == 0 || !digit) {
			return false
		}
	}

	return true
}

// writeMetaType appends the typedef for <name>_meta_t. The p block is
// always present; withOutput adds the m block used by matrix functions.
func writeMetaType(sb *strings.Builder, name string, withOutput bool) {
	sb.WriteString("typedef struct {\n")
	sb.WriteString("    /* p: input, vector */\n")
	sb.WriteString("    struct { int size; } p;\n")
	if withOutput {
		sb.WriteString("    /* m: output, matrix */\n")
		sb.WriteString("    struct { int rows; int cols; } m;\n")
	}
	sb.WriteString("} ")
	sb.WriteString(name)
	sb.WriteString("_meta_t;\n")
}

// writeScalarMetaAccessor appends <name>_meta() returning {{inputSize}}.
func writeScalarMetaAccessor(sb *strings.Builder, name string, inputSize int) {
	sb.WriteString(name)
	sb.WriteString("_meta_t ")
	sb.WriteString(name)
	sb.WriteString("_meta() { return {{")
	sb.WriteString(strconv.Itoa(inputSize))
	sb.WriteString("}}; }\n")
}

// writeBatchMetaAccessor appends <name>_meta() returning
// {{inputSize}, {rows, cols}}.
func writeBatchMetaAccessor(sb *strings.Builder, name string, inputSize, rows, cols int) {
	sb.WriteString(name)
	sb.WriteString("_meta_t ")
	sb.WriteString(name)
	sb.WriteString("_meta() { return {{")
	sb.WriteString(strconv.Itoa(inputSize))
	sb.WriteString("}, {")
	sb.WriteString(strconv.Itoa(rows))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(cols))
	sb.WriteString("}}; }\n")
}
