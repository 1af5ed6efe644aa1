// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RuslanAgishev/drake/symbolic"
)

// cFuncName maps function-like expression kinds to the C99 <math.h> routine
// that implements them on doubles. Kinds absent from the table (division,
// the branching forms) render through dedicated paths or not at all.
var cFuncName = map[symbolic.Kind]string{
	symbolic.KindAbs:   "fabs",
	symbolic.KindLog:   "log",
	symbolic.KindExp:   "exp",
	symbolic.KindSqrt:  "sqrt",
	symbolic.KindPow:   "pow",
	symbolic.KindSin:   "sin",
	symbolic.KindCos:   "cos",
	symbolic.KindTan:   "tan",
	symbolic.KindAsin:  "asin",
	symbolic.KindAcos:  "acos",
	symbolic.KindAtan:  "atan",
	symbolic.KindAtan2: "atan2",
	symbolic.KindSinh:  "sinh",
	symbolic.KindCosh:  "cosh",
	symbolic.KindTanh:  "tanh",
	symbolic.KindMin:   "fmin",
	symbolic.KindMax:   "fmax",
	symbolic.KindCeil:  "ceil",
	symbolic.KindFloor: "floor",
}

// Lower renders e as a single C expression over the parameter vector p,
// using bindings to resolve each variable to its p[i] slot.
//
// The rendering is fully parenthesized and purely structural: no
// reassociation, no folding, no reordering, so the same tree always yields
// byte-identical text. Constants render in shortest round-trip form, which
// keeps the C double bit-exact with the Go value. Returns
// ErrUnboundVariable, ErrUnsupportedConstruct, ErrMalformedInput or
// ErrDepthExceeded; on error the returned string is empty.
func Lower(e symbolic.Expression, bindings IndexMap, opts ...Option) (string, error) {
	o := gatherOptions(opts...)
	var sb strings.Builder
	v := &visitor{bindings: bindings, sb: &sb, maxDepth: o.maxDepth}
	if err := v.visit(e, 0); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// visitor walks an expression tree and appends C fragments to sb. One
// visitor may render many expressions against the same binding; each visit
// call appends exactly one complete C expression.
type visitor struct {
	bindings IndexMap
	sb       *strings.Builder
	maxDepth int
}

func (v *visitor) visit(e symbolic.Expression, depth int) error {
	if e == nil {
		return fmt.Errorf("nil expression: %w", ErrMalformedInput)
	}
	if depth >= v.maxDepth {
		return fmt.Errorf("depth %d: %w", v.maxDepth, ErrDepthExceeded)
	}

	switch x := e.(type) {
	case symbolic.Variable:
		return v.visitVariable(x)
	case symbolic.Constant:
		return v.writeConstant(float64(x))
	case *symbolic.Addition:
		return v.visitAddition(x, depth)
	case *symbolic.Multiplication:
		return v.visitMultiplication(x, depth)
	case *symbolic.UnaryExpression:
		return v.visitCall(x.Kind(), depth, x.Arg())
	case *symbolic.BinaryExpression:
		if x.Kind() == symbolic.KindDivision {
			return v.visitDivision(x, depth)
		}
		return v.visitCall(x.Kind(), depth, x.First(), x.Second())
	default:
		// *symbolic.IfThenElse and *symbolic.UninterpretedFunction carry no
		// C rendering.
		return fmt.Errorf("%s: %w", e.Kind(), ErrUnsupportedConstruct)
	}
}

func (v *visitor) visitVariable(x symbolic.Variable) error {
	i, ok := v.bindings[x.ID()]
	if !ok {
		return fmt.Errorf("variable %q (id %d): %w", x.Name(), x.ID(), ErrUnboundVariable)
	}
	v.sb.WriteString("p[")
	v.sb.WriteString(strconv.Itoa(i))
	v.sb.WriteByte(']')

	return nil
}

// writeConstant renders val in shortest round-trip decimal form. Non-finite
// values have no C literal and are rejected rather than emitted as inf/nan
// tokens the compiler would refuse.
func (v *visitor) writeConstant(val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("non-finite constant %v: %w", val, ErrMalformedInput)
	}
	v.sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))

	return nil
}

// visitAddition renders (c0 + t1 + ... + tn) with each scaled term wrapped
// as (coeff * expr); a coefficient of exactly 1 renders the bare term.
func (v *visitor) visitAddition(x *symbolic.Addition, depth int) error {
	v.sb.WriteByte('(')
	if err := v.writeConstant(x.Constant()); err != nil {
		return err
	}
	for _, t := range x.Terms() {
		v.sb.WriteString(" + ")
		if t.Coeff == 1 {
			if err := v.visit(t.Expr, depth+1); err != nil {
				return err
			}
			continue
		}
		v.sb.WriteByte('(')
		if err := v.writeConstant(t.Coeff); err != nil {
			return err
		}
		v.sb.WriteString(" * ")
		if err := v.visit(t.Expr, depth+1); err != nil {
			return err
		}
		v.sb.WriteByte(')')
	}
	v.sb.WriteByte(')')

	return nil
}

// visitMultiplication renders (c0 * f1 * ... * fn) with each factor as
// pow(base, exponent); an exponent of exactly the literal 1 renders the
// bare base.
func (v *visitor) visitMultiplication(x *symbolic.Multiplication, depth int) error {
	v.sb.WriteByte('(')
	if err := v.writeConstant(x.Constant()); err != nil {
		return err
	}
	for _, f := range x.Factors() {
		v.sb.WriteString(" * ")
		if isLiteralOne(f.Exponent) {
			if err := v.visit(f.Base, depth+1); err != nil {
				return err
			}
			continue
		}
		v.sb.WriteString("pow(")
		if err := v.visit(f.Base, depth+1); err != nil {
			return err
		}
		v.sb.WriteString(", ")
		if err := v.visit(f.Exponent, depth+1); err != nil {
			return err
		}
		v.sb.WriteByte(')')
	}
	v.sb.WriteByte(')')

	return nil
}

func (v *visitor) visitDivision(x *symbolic.BinaryExpression, depth int) error {
	v.sb.WriteByte('(')
	if err := v.visit(x.First(), depth+1); err != nil {
		return err
	}
	v.sb.WriteString(" / ")
	if err := v.visit(x.Second(), depth+1); err != nil {
		return err
	}
	v.sb.WriteByte(')')

	return nil
}

// visitCall renders name(arg) or name(arg1, arg2) for the <math.h> family.
func (v *visitor) visitCall(kind symbolic.Kind, depth int, args ...symbolic.Expression) error {
	name, ok := cFuncName[kind]
	if !ok {
		return fmt.Errorf("%s: %w", kind, ErrUnsupportedConstruct)
	}
	v.sb.WriteString(name)
	v.sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := v.visit(a, depth+1); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')

	return nil
}

func isLiteralOne(e symbolic.Expression) bool {
	c, ok := e.(symbolic.Constant)
	return ok && float64(c) == 1
}
