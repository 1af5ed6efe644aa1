// SPDX-License-Identifier: MIT

package symbolic

import (
	"strconv"
	"strings"
)

// Kind discriminates the concrete forms an Expression can take.
// The set is closed: consumers may type-switch over the concrete types or
// switch over Kind and rely on covering every case.
type Kind uint8

const (
	KindVariable Kind = iota
	KindConstant
	KindAddition
	KindMultiplication
	KindDivision
	KindPow
	KindAbs
	KindLog
	KindExp
	KindSqrt
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	KindAtan2
	KindSinh
	KindCosh
	KindTanh
	KindMin
	KindMax
	KindCeil
	KindFloor
	KindIfThenElse
	KindUninterpretedFunction
)

var kindNames = [...]string{
	KindVariable:              "variable",
	KindConstant:              "constant",
	KindAddition:              "addition",
	KindMultiplication:        "multiplication",
	KindDivision:              "division",
	KindPow:                   "pow",
	KindAbs:                   "abs",
	KindLog:                   "log",
	KindExp:                   "exp",
	KindSqrt:                  "sqrt",
	KindSin:                   "sin",
	KindCos:                   "cos",
	KindTan:                   "tan",
	KindAsin:                  "asin",
	KindAcos:                  "acos",
	KindAtan:                  "atan",
	KindAtan2:                 "atan2",
	KindSinh:                  "sinh",
	KindCosh:                  "cosh",
	KindTanh:                  "tanh",
	KindMin:                   "min",
	KindMax:                   "max",
	KindCeil:                  "ceil",
	KindFloor:                 "floor",
	KindIfThenElse:            "if-then-else",
	KindUninterpretedFunction: "uninterpreted function",
}

// String returns a lower-case human-readable name, e.g. "addition".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Expression is a node of an immutable scalar expression tree. The interface
// is sealed: the only implementations are Variable, Constant, *Addition,
// *Multiplication, *UnaryExpression, *BinaryExpression, *IfThenElse and
// *UninterpretedFunction. Expressions are never mutated after construction,
// so they may be shared across goroutines and reused as subtrees freely.
type Expression interface {
	// Kind reports which concrete form the node is.
	Kind() Kind
	// String renders the tree in the flat normalized notation, e.g.
	// "(2 + x + 3 * y)". It is meant for logs and test failure messages.
	String() string

	isExpression()
}

// Constant is a floating-point literal leaf.
type Constant float64

// Kind reports KindConstant.
func (c Constant) Kind() Kind { return KindConstant }

// Value returns the literal as a float64.
func (c Constant) Value() float64 { return float64(c) }

// String renders the shortest decimal form that round-trips to the same
// float64, e.g. "2", "3.5", "1e-09".
func (c Constant) String() string { return formatFloat(float64(c)) }

func (c Constant) isExpression() {}

// Term is one summand of an Addition: Coeff * Expr.
type Term struct {
	Coeff float64
	Expr  Expression
}

// Addition is the flat n-ary sum
//
//	constant + terms[0].Coeff*terms[0].Expr + terms[1].Coeff*terms[1].Expr + ...
//
// Terms are kept in insertion order with structurally distinct expressions;
// the slice order is part of the node's identity and drives deterministic
// rendering.
type Addition struct {
	constant float64
	terms    []Term
}

// Kind reports KindAddition.
func (a *Addition) Kind() Kind { return KindAddition }

// Constant returns the standalone summand.
func (a *Addition) Constant() float64 { return a.constant }

// Terms returns the ordered summands. The slice is owned by the node and
// must not be modified.
func (a *Addition) Terms() []Term { return a.terms }

func (a *Addition) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatFloat(a.constant))
	for _, t := range a.terms {
		sb.WriteString(" + ")
		if t.Coeff != 1 {
			sb.WriteString(formatFloat(t.Coeff))
			sb.WriteString(" * ")
		}
		sb.WriteString(t.Expr.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (a *Addition) isExpression() {}

// Factor is one multiplicand of a Multiplication: Base ^ Exponent.
type Factor struct {
	Base     Expression
	Exponent Expression
}

// Multiplication is the flat n-ary product
//
//	constant * factors[0].Base^factors[0].Exponent * ...
//
// Factors are kept in insertion order with structurally distinct bases.
type Multiplication struct {
	constant float64
	factors  []Factor
}

// Kind reports KindMultiplication.
func (m *Multiplication) Kind() Kind { return KindMultiplication }

// Constant returns the standalone coefficient.
func (m *Multiplication) Constant() float64 { return m.constant }

// Factors returns the ordered multiplicands. The slice is owned by the node
// and must not be modified.
func (m *Multiplication) Factors() []Factor { return m.factors }

func (m *Multiplication) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatFloat(m.constant))
	for _, f := range m.factors {
		sb.WriteString(" * ")
		if isOne(f.Exponent) {
			sb.WriteString(f.Base.String())
		} else {
			sb.WriteString("pow(")
			sb.WriteString(f.Base.String())
			sb.WriteString(", ")
			sb.WriteString(f.Exponent.String())
			sb.WriteByte(')')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func (m *Multiplication) isExpression() {}

// UnaryExpression applies a single-argument function (abs, log, exp, sqrt,
// the trigonometric and hyperbolic family, ceil, floor) to one operand.
type UnaryExpression struct {
	kind Kind
	arg  Expression
}

// Kind reports which function the node applies.
func (u *UnaryExpression) Kind() Kind { return u.kind }

// Arg returns the operand.
func (u *UnaryExpression) Arg() Expression { return u.arg }

func (u *UnaryExpression) String() string {
	return u.kind.String() + "(" + u.arg.String() + ")"
}

func (u *UnaryExpression) isExpression() {}

// BinaryExpression applies a two-argument operation: division, pow, atan2,
// min or max.
type BinaryExpression struct {
	kind   Kind
	first  Expression
	second Expression
}

// Kind reports which operation the node applies.
func (b *BinaryExpression) Kind() Kind { return b.kind }

// First returns the left operand (the dividend, base, or y of atan2).
func (b *BinaryExpression) First() Expression { return b.first }

// Second returns the right operand (the divisor, exponent, or x of atan2).
func (b *BinaryExpression) Second() Expression { return b.second }

func (b *BinaryExpression) String() string {
	if b.kind == KindDivision {
		return "(" + b.first.String() + " / " + b.second.String() + ")"
	}
	return b.kind.String() + "(" + b.first.String() + ", " + b.second.String() + ")"
}

func (b *BinaryExpression) isExpression() {}

// IfThenElse is a symbolic conditional. It has no numeric semantics here;
// holders of branching expressions are expected to resolve the branch before
// evaluation or code generation.
type IfThenElse struct {
	cond Expression
	then Expression
	els  Expression
}

// Kind reports KindIfThenElse.
func (i *IfThenElse) Kind() Kind { return KindIfThenElse }

// Cond returns the condition operand.
func (i *IfThenElse) Cond() Expression { return i.cond }

// Then returns the branch taken when the condition holds.
func (i *IfThenElse) Then() Expression { return i.then }

// Else returns the branch taken otherwise.
func (i *IfThenElse) Else() Expression { return i.els }

func (i *IfThenElse) String() string {
	return "(if " + i.cond.String() + " then " + i.then.String() + " else " + i.els.String() + ")"
}

func (i *IfThenElse) isExpression() {}

// UninterpretedFunction is an opaque named application f(args...). The name
// is the only meaning the node carries.
type UninterpretedFunction struct {
	name string
	args []Expression
}

// Kind reports KindUninterpretedFunction.
func (u *UninterpretedFunction) Kind() Kind { return KindUninterpretedFunction }

// Name returns the function name.
func (u *UninterpretedFunction) Name() string { return u.name }

// Args returns the ordered arguments. The slice is owned by the node and
// must not be modified.
func (u *UninterpretedFunction) Args() []Expression { return u.args }

func (u *UninterpretedFunction) String() string {
	var sb strings.Builder
	sb.WriteString(u.name)
	sb.WriteByte('(')
	for i, a := range u.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (u *UninterpretedFunction) isExpression() {}

// formatFloat renders v in the shortest form that parses back to the same
// float64 ('g' with precision -1).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isOne reports whether e is the literal constant 1.
func isOne(e Expression) bool {
	c, ok := e.(Constant)
	return ok && float64(c) == 1
}

// Equal reports structural equality of two expression trees. Variables
// compare by ID, constants by exact float64 equality, and composite nodes
// compare kind, layout and children recursively. Term and factor order is
// significant.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Variable:
		return x.id == b.(Variable).id
	case Constant:
		return x == b.(Constant)
	case *Addition:
		y := b.(*Addition)
		if x.constant != y.constant || len(x.terms) != len(y.terms) {
			return false
		}
		for i, t := range x.terms {
			if t.Coeff != y.terms[i].Coeff || !Equal(t.Expr, y.terms[i].Expr) {
				return false
			}
		}
		return true
	case *Multiplication:
		y := b.(*Multiplication)
		if x.constant != y.constant || len(x.factors) != len(y.factors) {
			return false
		}
		for i, f := range x.factors {
			if !Equal(f.Base, y.factors[i].Base) || !Equal(f.Exponent, y.factors[i].Exponent) {
				return false
			}
		}
		return true
	case *UnaryExpression:
		return Equal(x.arg, b.(*UnaryExpression).arg)
	case *BinaryExpression:
		y := b.(*BinaryExpression)
		return Equal(x.first, y.first) && Equal(x.second, y.second)
	case *IfThenElse:
		y := b.(*IfThenElse)
		return Equal(x.cond, y.cond) && Equal(x.then, y.then) && Equal(x.els, y.els)
	case *UninterpretedFunction:
		y := b.(*UninterpretedFunction)
		if x.name != y.name || len(x.args) != len(y.args) {
			return false
		}
		for i, arg := range x.args {
			if !Equal(arg, y.args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
