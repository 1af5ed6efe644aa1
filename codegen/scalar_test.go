// SPDX-License-Identifier: MIT

package codegen_test

import (
	"testing"

	"github.com/RuslanAgishev/drake/codegen"
	"github.com/RuslanAgishev/drake/symbolic"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalarFunction_Golden pins the complete generated listing for
// f(x, y) = x^2 + 2y.
func TestScalarFunction_Golden(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	e := symbolic.Add(symbolic.Mul(x, x), symbolic.Mul(symbolic.Constant(2), y))

	src, meta, err := codegen.ScalarFunction("f", []symbolic.Variable{x, y}, e)
	require.NoError(t, err)

	want := `double f(const double* p) {
    return (0 + (1 * pow(p[0], 2)) + (2 * p[1]));
}
typedef struct {
    /* p: input, vector */
    struct { int size; } p;
} f_meta_t;
f_meta_t f_meta() { return {{2}}; }
`
	if diff := cmp.Diff(want, src); diff != "" {
		t.Errorf("generated source mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, codegen.Meta{InputSize: 2}, meta)
}

// TestScalarFunction_ParameterOrderDecidesSlots verifies that slots follow
// the parameter list, not construction order.
func TestScalarFunction_ParameterOrderDecidesSlots(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	e := symbolic.Sub(x, y)

	src, _, err := codegen.ScalarFunction("g", []symbolic.Variable{y, x}, e)
	require.NoError(t, err)
	assert.Contains(t, src, "return (0 + p[1] + (-1 * p[0]));",
		"x is second in the parameter list, so it reads p[1]")
}

// TestScalarFunction_NoParameters verifies a constant function over an
// empty parameter vector.
func TestScalarFunction_NoParameters(t *testing.T) {
	src, meta, err := codegen.ScalarFunction("k", nil, symbolic.Constant(3.5))
	require.NoError(t, err)

	assert.Contains(t, src, "double k(const double* p) {\n    return 3.5;\n}\n")
	assert.Contains(t, src, "k_meta_t k_meta() { return {{0}}; }\n")
	assert.Equal(t, codegen.Meta{InputSize: 0}, meta)
}

// TestScalarFunction_RejectsBadNames verifies the C identifier check.
func TestScalarFunction_RejectsBadNames(t *testing.T) {
	x := symbolic.NewVariable("x")
	params := []symbolic.Variable{x}

	for _, name := range []string{"", "9lives", "foo-bar", "has space", "tab\tname"} {
		src, _, err := codegen.ScalarFunction(name, params, x)
		assert.ErrorIs(t, err, codegen.ErrMalformedInput, "name %q must be rejected", name)
		assert.Empty(t, src)
	}

	for _, name := range []string{"f", "_private", "snake_case_9", "CamelCase"} {
		_, _, err := codegen.ScalarFunction(name, params, x)
		assert.NoError(t, err, "name %q is a valid C identifier", name)
	}
}

// TestScalarFunction_RejectsDuplicateParameters verifies that one variable
// cannot claim two slots.
func TestScalarFunction_RejectsDuplicateParameters(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	src, _, err := codegen.ScalarFunction("f", []symbolic.Variable{x, y, x}, x)
	assert.ErrorIs(t, err, codegen.ErrMalformedInput)
	assert.Contains(t, err.Error(), "duplicate parameter")
	assert.Empty(t, src)
}

// TestScalarFunction_PropagatesLoweringErrors verifies that lowering
// failures surface unchanged and yield no text.
func TestScalarFunction_PropagatesLoweringErrors(t *testing.T) {
	x := symbolic.NewVariable("x")
	z := symbolic.NewVariable("z")

	src, _, err := codegen.ScalarFunction("f", []symbolic.Variable{x}, symbolic.Add(x, z))
	assert.ErrorIs(t, err, codegen.ErrUnboundVariable)
	assert.Empty(t, src)

	src, _, err = codegen.ScalarFunction("f", []symbolic.Variable{x}, nil)
	assert.ErrorIs(t, err, codegen.ErrMalformedInput)
	assert.Empty(t, src)
}
