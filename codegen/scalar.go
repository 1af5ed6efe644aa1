// SPDX-License-Identifier: MIT

package codegen

import (
	"strings"

	"github.com/RuslanAgishev/drake/symbolic"
)

// ScalarFunction renders e as a self-contained C function
//
//	double <name>(const double* p) { return <expression>; }
//
// followed by the <name>_meta_t typedef and the <name>_meta() accessor
// reporting how many slots p must have. The parameter at position i is read
// from p[i]; every variable in e must appear in parameters.
//
// The returned Meta mirrors the embedded metadata (Output is nil for
// scalars). On any error no text is returned: ErrMalformedInput for a bad
// name, duplicate parameters, a nil expression or a non-finite constant;
// ErrUnboundVariable and ErrUnsupportedConstruct from lowering; and
// ErrDepthExceeded past the recursion ceiling.
func ScalarFunction(name string, parameters []symbolic.Variable, e symbolic.Expression, opts ...Option) (string, Meta, error) {
	if err := validateRequest(name, parameters); err != nil {
		return "", Meta{}, err
	}
	body, err := Lower(e, BindParameters(parameters), opts...)
	if err != nil {
		return "", Meta{}, err
	}

	var sb strings.Builder
	sb.WriteString("double ")
	sb.WriteString(name)
	sb.WriteString("(const double* p) {\n")
	sb.WriteString("    return ")
	sb.WriteString(body)
	sb.WriteString(";\n")
	sb.WriteString("}\n")
	writeMetaType(&sb, name, false)
	writeScalarMetaAccessor(&sb, name, len(parameters))

	return sb.String(), Meta{InputSize: len(parameters)}, nil
}
