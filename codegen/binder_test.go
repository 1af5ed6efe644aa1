// SPDX-License-Identifier: MIT

package codegen_test

import (
	"testing"

	"github.com/RuslanAgishev/drake/codegen"
	"github.com/RuslanAgishev/drake/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBindParameters_PositionIsSlot verifies that position i binds to
// slot i.
func TestBindParameters_PositionIsSlot(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	z := symbolic.NewVariable("z")

	b := codegen.BindParameters([]symbolic.Variable{z, x, y})
	require.Len(t, b, 3)
	assert.Equal(t, 0, b[z.ID()])
	assert.Equal(t, 1, b[x.ID()])
	assert.Equal(t, 2, b[y.ID()])
}

// TestBindParameters_IdentityNotName verifies that two variables sharing a
// display name get separate slots.
func TestBindParameters_IdentityNotName(t *testing.T) {
	a := symbolic.NewVariable("x")
	b := symbolic.NewVariable("x")

	m := codegen.BindParameters([]symbolic.Variable{a, b})
	require.Len(t, m, 2)
	assert.Equal(t, 0, m[a.ID()])
	assert.Equal(t, 1, m[b.ID()])
}

// TestBindParameters_FirstOccurrenceWins verifies the duplicate policy of
// the raw binder. The emitters reject duplicates before binding; the binder
// itself keeps the first slot.
func TestBindParameters_FirstOccurrenceWins(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	m := codegen.BindParameters([]symbolic.Variable{x, y, x})
	require.Len(t, m, 2)
	assert.Equal(t, 0, m[x.ID()], "repeated variable keeps its first slot")
	assert.Equal(t, 1, m[y.ID()])
}

// TestBindParameters_Empty verifies binding an empty parameter list.
func TestBindParameters_Empty(t *testing.T) {
	m := codegen.BindParameters(nil)
	assert.Empty(t, m)
}
