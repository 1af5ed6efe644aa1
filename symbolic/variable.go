// SPDX-License-Identifier: MIT

package symbolic

import "sync/atomic"

// VariableID identifies a Variable for the lifetime of the process.
// Fresh IDs are handed out by NewVariable; two variables are the same
// variable exactly when their IDs are equal, regardless of display name.
type VariableID uint64

var lastVariableID atomic.Uint64

// Variable is a named scalar unknown. It is a small value type: copy it
// freely, compare it with ==, use it as a map key. The display name carries
// no identity; NewVariable("x") called twice yields two distinct variables
// that merely print alike.
type Variable struct {
	id   VariableID
	name string
}

// NewVariable mints a fresh variable with the given display name.
// IDs start at 1, so the zero Variable never collides with a minted one.
func NewVariable(name string) Variable {
	return Variable{id: VariableID(lastVariableID.Add(1)), name: name}
}

// ID returns the process-unique identity of v.
func (v Variable) ID() VariableID { return v.id }

// Name returns the display name given at construction.
func (v Variable) Name() string { return v.name }

// Kind reports KindVariable.
func (v Variable) Kind() Kind { return KindVariable }

// String returns the display name.
func (v Variable) String() string { return v.name }

func (v Variable) isExpression() {}
