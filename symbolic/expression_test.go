// SPDX-License-Identifier: MIT

package symbolic_test

import (
	"testing"

	"github.com/RuslanAgishev/drake/symbolic"
	"github.com/stretchr/testify/assert"
)

// TestExpression_String covers the flat notation for every node form.
func TestExpression_String(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	cases := []struct {
		name string
		expr symbolic.Expression
		want string
	}{
		{"variable", x, "x"},
		{"integer constant", symbolic.Constant(2), "2"},
		{"fractional constant", symbolic.Constant(3.5), "3.5"},
		{"small constant", symbolic.Constant(1e-9), "1e-09"},
		{"sum", symbolic.Add(symbolic.Constant(2), x, symbolic.Mul(symbolic.Constant(3), y)), "(2 + x + 3 * y)"},
		{"product", symbolic.Mul(symbolic.Constant(3), x), "(3 * x)"},
		{"product with power", symbolic.Mul(x, x), "(1 * pow(x, 2))"},
		{"division", symbolic.Div(x, y), "(x / y)"},
		{"pow", symbolic.Pow(x, symbolic.Constant(2)), "pow(x, 2)"},
		{"unary function", symbolic.Sin(x), "sin(x)"},
		{"binary function", symbolic.Atan2(y, x), "atan2(y, x)"},
		{"min", symbolic.Min(x, y), "min(x, y)"},
		{"conditional", symbolic.NewIfThenElse(x, y, symbolic.Constant(0)), "(if x then y else 0)"},
		{"uninterpreted", symbolic.NewUninterpretedFunction("phi", x, y), "phi(x, y)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.expr.String())
		})
	}
}

// TestEqual_VariablesCompareByID verifies that display names carry no
// identity.
func TestEqual_VariablesCompareByID(t *testing.T) {
	a := symbolic.NewVariable("x")
	b := symbolic.NewVariable("x")

	assert.True(t, symbolic.Equal(a, a))
	assert.False(t, symbolic.Equal(a, b), "same name, different mint, different variable")
}

// TestEqual_OrderIsSignificant verifies that term order is part of a node's
// identity.
func TestEqual_OrderIsSignificant(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	assert.False(t, symbolic.Equal(symbolic.Add(x, y), symbolic.Add(y, x)),
		"operand order decides term order, which is part of identity")
	assert.True(t, symbolic.Equal(symbolic.Add(x, y), symbolic.Add(x, y)))
}

// TestEqual_DistinguishesKindsAndShapes spot-checks structural comparison
// across node forms.
func TestEqual_DistinguishesKindsAndShapes(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	assert.False(t, symbolic.Equal(symbolic.Sin(x), symbolic.Cos(x)), "unary kind differs")
	assert.False(t, symbolic.Equal(symbolic.Div(x, y), symbolic.Div(y, x)), "operand roles differ")
	assert.True(t, symbolic.Equal(
		symbolic.NewUninterpretedFunction("f", x),
		symbolic.NewUninterpretedFunction("f", x)))
	assert.False(t, symbolic.Equal(
		symbolic.NewUninterpretedFunction("f", x),
		symbolic.NewUninterpretedFunction("g", x)), "name differs")
	assert.False(t, symbolic.Equal(x, nil))
	assert.True(t, symbolic.Equal(nil, nil))
}

// TestKind_String verifies the diagnostic names used in error messages.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "addition", symbolic.KindAddition.String())
	assert.Equal(t, "atan2", symbolic.KindAtan2.String())
	assert.Equal(t, "if-then-else", symbolic.KindIfThenElse.String())
	assert.Equal(t, "uninterpreted function", symbolic.KindUninterpretedFunction.String())
}
