// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RuslanAgishev/drake/symbolic"
)

// BatchFunction renders every entry of m as one C function
//
//	void <name>(const double* p, double* m) { m[i] = <expression>; ... }
//
// writing entry (r, c) to m[r*cols + c], the matrix's own row-major order.
// The typedef and <name>_meta() accessor follow, reporting the parameter
// count and the output shape so callers can size both buffers.
func BatchFunction(name string, parameters []symbolic.Variable, m *symbolic.Matrix, opts ...Option) (string, Meta, error) {
	var sb strings.Builder
	meta, err := WriteBatchFunction(&sb, name, parameters, m, opts...)
	if err != nil {
		return "", Meta{}, err
	}

	return sb.String(), meta, nil
}

// WriteBatchFunction is BatchFunction writing to w instead of returning a
// string. The output is buffered and written in a single call only after
// every entry lowered cleanly, so a failing entry never leaves partial text
// in w. Entry errors carry the flat index of the offending cell.
func WriteBatchFunction(w io.Writer, name string, parameters []symbolic.Variable, m *symbolic.Matrix, opts ...Option) (Meta, error) {
	if err := validateRequest(name, parameters); err != nil {
		return Meta{}, err
	}
	if m == nil {
		return Meta{}, fmt.Errorf("nil matrix: %w", ErrMalformedInput)
	}

	o := gatherOptions(opts...)
	var sb strings.Builder
	v := &visitor{bindings: BindParameters(parameters), sb: &sb, maxDepth: o.maxDepth}

	sb.WriteString("void ")
	sb.WriteString(name)
	sb.WriteString("(const double* p, double* m) {\n")
	for i, e := range m.Data() {
		sb.WriteString("    m[")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("] = ")
		if err := v.visit(e, 0); err != nil {
			return Meta{}, fmt.Errorf("entry %d: %w", i, err)
		}
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	writeMetaType(&sb, name, true)
	writeBatchMetaAccessor(&sb, name, len(parameters), m.Rows(), m.Cols())

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return Meta{}, fmt.Errorf("write %s: %w", name, err)
	}

	return Meta{InputSize: len(parameters), Output: &Shape{Rows: m.Rows(), Cols: m.Cols()}}, nil
}
