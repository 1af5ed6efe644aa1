// SPDX-License-Identifier: MIT

package codegen

import "github.com/RuslanAgishev/drake/symbolic"

// IndexMap assigns each variable identity its slot in the flat C parameter
// vector p: a variable mapped to i is rendered as p[i].
type IndexMap map[symbolic.VariableID]int

// BindParameters derives the binding from an ordered parameter list: the
// variable at position i binds to slot i. A repeated variable keeps its
// first slot; later positions are ignored here and rejected by the emitters
// up front, where the duplication can be reported against the request.
func BindParameters(parameters []symbolic.Variable) IndexMap {
	m := make(IndexMap, len(parameters))
	for i, p := range parameters {
		if _, ok := m[p.ID()]; !ok {
			m[p.ID()] = i
		}
	}

	return m
}
