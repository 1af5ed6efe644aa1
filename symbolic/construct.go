// SPDX-License-Identifier: MIT

package symbolic

import "math"

// Constructors build expressions in normalized form: sums and products are
// flattened into their n-ary nodes, like terms merge, and operations on
// literal constants fold when the result is finite. Normalization is a
// construction-time concern; the node types themselves never rewrite.

// Add returns the normalized sum of the operands.
// Nested sums flatten, constants accumulate into the standalone summand,
// products contribute their leading coefficient to the term coefficient, and
// structurally equal terms merge in first-appearance order. A sum that
// collapses to a single unscaled term or to a literal returns that directly.
func Add(operands ...Expression) Expression {
	var b addBuilder
	for _, e := range operands {
		b.add(1, e)
	}
	return b.build()
}

// Sub returns a - b in normalized form.
func Sub(a, b Expression) Expression {
	var bld addBuilder
	bld.add(1, a)
	bld.add(-1, b)
	return bld.build()
}

// Neg returns -e in normalized form.
func Neg(e Expression) Expression {
	return Mul(Constant(-1), e)
}

// Mul returns the normalized product of the operands.
// Nested products flatten, constants accumulate into the coefficient, pow
// nodes contribute base^exponent directly, and factors with structurally
// equal bases merge by adding exponents. A zero coefficient collapses the
// whole product to 0.
func Mul(operands ...Expression) Expression {
	b := mulBuilder{constant: 1}
	for _, e := range operands {
		b.mul(e)
	}
	return b.build()
}

// Div returns a / b. Constant operands fold when the divisor is nonzero and
// the result finite; division by the literal 1 returns the dividend.
func Div(a, b Expression) Expression {
	if isOne(b) {
		return a
	}
	if ca, ok := a.(Constant); ok {
		if cb, ok := b.(Constant); ok && float64(cb) != 0 {
			if v := float64(ca) / float64(cb); isFinite(v) {
				return Constant(v)
			}
		}
	}
	return &BinaryExpression{kind: KindDivision, first: a, second: b}
}

// Pow returns base raised to exp. Literal operands fold when the result is
// finite; exp == 1 returns base, exp == 0 returns 1.
func Pow(base, exp Expression) Expression {
	if c, ok := exp.(Constant); ok {
		switch float64(c) {
		case 1:
			return base
		case 0:
			return Constant(1)
		}
		if cb, ok := base.(Constant); ok {
			if v := math.Pow(float64(cb), float64(c)); isFinite(v) {
				return Constant(v)
			}
		}
	}
	return &BinaryExpression{kind: KindPow, first: base, second: exp}
}

// Abs returns |e|.
func Abs(e Expression) Expression { return unary(KindAbs, e, math.Abs) }

// Log returns the natural logarithm of e.
func Log(e Expression) Expression { return unary(KindLog, e, math.Log) }

// Exp returns the exponential of e.
func Exp(e Expression) Expression { return unary(KindExp, e, math.Exp) }

// Sqrt returns the square root of e.
func Sqrt(e Expression) Expression { return unary(KindSqrt, e, math.Sqrt) }

// Sin returns the sine of e.
func Sin(e Expression) Expression { return unary(KindSin, e, math.Sin) }

// Cos returns the cosine of e.
func Cos(e Expression) Expression { return unary(KindCos, e, math.Cos) }

// Tan returns the tangent of e.
func Tan(e Expression) Expression { return unary(KindTan, e, math.Tan) }

// Asin returns the arcsine of e.
func Asin(e Expression) Expression { return unary(KindAsin, e, math.Asin) }

// Acos returns the arccosine of e.
func Acos(e Expression) Expression { return unary(KindAcos, e, math.Acos) }

// Atan returns the arctangent of e.
func Atan(e Expression) Expression { return unary(KindAtan, e, math.Atan) }

// Sinh returns the hyperbolic sine of e.
func Sinh(e Expression) Expression { return unary(KindSinh, e, math.Sinh) }

// Cosh returns the hyperbolic cosine of e.
func Cosh(e Expression) Expression { return unary(KindCosh, e, math.Cosh) }

// Tanh returns the hyperbolic tangent of e.
func Tanh(e Expression) Expression { return unary(KindTanh, e, math.Tanh) }

// Ceil returns e rounded up to an integer.
func Ceil(e Expression) Expression { return unary(KindCeil, e, math.Ceil) }

// Floor returns e rounded down to an integer.
func Floor(e Expression) Expression { return unary(KindFloor, e, math.Floor) }

// Atan2 returns the two-argument arctangent atan2(y, x).
func Atan2(y, x Expression) Expression { return binary(KindAtan2, y, x, math.Atan2) }

// Min returns the smaller of a and b.
func Min(a, b Expression) Expression { return binary(KindMin, a, b, math.Min) }

// Max returns the larger of a and b.
func Max(a, b Expression) Expression { return binary(KindMax, a, b, math.Max) }

// NewIfThenElse builds a symbolic conditional. No folding is attempted.
func NewIfThenElse(cond, then, els Expression) Expression {
	return &IfThenElse{cond: cond, then: then, els: els}
}

// NewUninterpretedFunction builds an opaque application name(args...).
func NewUninterpretedFunction(name string, args ...Expression) Expression {
	return &UninterpretedFunction{name: name, args: args}
}

// NewAddition builds a sum node verbatim: constant plus the given terms in
// order. Duplicate (structurally equal) term expressions merge into the
// first occurrence; beyond that no simplification is applied, so a
// single-term coefficient-1 node stays an *Addition. An empty term list
// yields the constant alone.
func NewAddition(constant float64, terms ...Term) Expression {
	merged := make([]Term, 0, len(terms))
	for _, t := range terms {
		if i := findTerm(merged, t.Expr); i >= 0 {
			merged[i].Coeff += t.Coeff
		} else {
			merged = append(merged, t)
		}
	}
	if len(merged) == 0 {
		return Constant(constant)
	}
	return &Addition{constant: constant, terms: merged}
}

// NewMultiplication builds a product node verbatim: constant times the given
// factors in order. Duplicate (structurally equal) bases merge by adding
// exponents; beyond that no simplification is applied. An empty factor list
// yields the constant alone.
func NewMultiplication(constant float64, factors ...Factor) Expression {
	merged := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if i := findFactor(merged, f.Base); i >= 0 {
			merged[i].Exponent = Add(merged[i].Exponent, f.Exponent)
		} else {
			merged = append(merged, f)
		}
	}
	if len(merged) == 0 {
		return Constant(constant)
	}
	return &Multiplication{constant: constant, factors: merged}
}

func unary(k Kind, e Expression, f func(float64) float64) Expression {
	if c, ok := e.(Constant); ok {
		if v := f(float64(c)); isFinite(v) {
			return Constant(v)
		}
	}
	return &UnaryExpression{kind: k, arg: e}
}

func binary(k Kind, a, b Expression, f func(float64, float64) float64) Expression {
	if ca, ok := a.(Constant); ok {
		if cb, ok := b.(Constant); ok {
			if v := f(float64(ca), float64(cb)); isFinite(v) {
				return Constant(v)
			}
		}
	}
	return &BinaryExpression{kind: k, first: a, second: b}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// addBuilder accumulates coeff*expr contributions for a normalized sum.
type addBuilder struct {
	constant float64
	terms    []Term
}

func (b *addBuilder) add(coeff float64, e Expression) {
	switch x := e.(type) {
	case Constant:
		b.constant += coeff * float64(x)
	case *Addition:
		b.constant += coeff * x.constant
		for _, t := range x.terms {
			b.add(coeff*t.Coeff, t.Expr)
		}
	case *Multiplication:
		// Pull the product's leading coefficient into the term coefficient
		// so that 3*y contributes the term (y, 3) rather than an opaque
		// product with coefficient 1.
		if x.constant != 1 {
			b.addTerm(coeff*x.constant, stripCoefficient(x))
			return
		}
		b.addTerm(coeff, e)
	default:
		b.addTerm(coeff, e)
	}
}

func (b *addBuilder) addTerm(coeff float64, e Expression) {
	if i := findTerm(b.terms, e); i >= 0 {
		b.terms[i].Coeff += coeff
		return
	}
	b.terms = append(b.terms, Term{Coeff: coeff, Expr: e})
}

func (b *addBuilder) build() Expression {
	terms := b.terms[:0]
	for _, t := range b.terms {
		if t.Coeff != 0 {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return Constant(b.constant)
	}
	if b.constant == 0 && len(terms) == 1 {
		// A sum of exactly one scaled term is that product, not a sum.
		if terms[0].Coeff == 1 {
			return terms[0].Expr
		}
		return Mul(Constant(terms[0].Coeff), terms[0].Expr)
	}
	return &Addition{constant: b.constant, terms: terms}
}

// stripCoefficient rebuilds m with coefficient 1. A lone exponent-1 factor
// collapses to its base.
func stripCoefficient(m *Multiplication) Expression {
	if len(m.factors) == 1 && isOne(m.factors[0].Exponent) {
		return m.factors[0].Base
	}
	return &Multiplication{constant: 1, factors: m.factors}
}

// mulBuilder accumulates base^exponent contributions for a normalized
// product.
type mulBuilder struct {
	constant float64
	factors  []Factor
}

func (b *mulBuilder) mul(e Expression) {
	switch x := e.(type) {
	case Constant:
		b.constant *= float64(x)
	case *Multiplication:
		b.constant *= x.constant
		for _, f := range x.factors {
			b.mulFactor(f.Base, f.Exponent)
		}
	case *BinaryExpression:
		// A pow node joins the product as base^exponent so that
		// x^2 * x merges into x^3 instead of stacking opaque factors.
		if x.kind == KindPow {
			b.mulFactor(x.first, x.second)
			return
		}
		b.mulFactor(e, Constant(1))
	default:
		b.mulFactor(e, Constant(1))
	}
}

func (b *mulBuilder) mulFactor(base, exp Expression) {
	if i := findFactor(b.factors, base); i >= 0 {
		b.factors[i].Exponent = Add(b.factors[i].Exponent, exp)
		return
	}
	b.factors = append(b.factors, Factor{Base: base, Exponent: exp})
}

func (b *mulBuilder) build() Expression {
	if b.constant == 0 {
		return Constant(0)
	}
	factors := b.factors[:0]
	for _, f := range b.factors {
		if !isZero(f.Exponent) {
			factors = append(factors, f)
		}
	}
	if len(factors) == 0 {
		return Constant(b.constant)
	}
	if b.constant == 1 && len(factors) == 1 && isOne(factors[0].Exponent) {
		return factors[0].Base
	}
	return &Multiplication{constant: b.constant, factors: factors}
}

func isZero(e Expression) bool {
	c, ok := e.(Constant)
	return ok && float64(c) == 0
}

func findTerm(terms []Term, e Expression) int {
	for i, t := range terms {
		if Equal(t.Expr, e) {
			return i
		}
	}
	return -1
}

func findFactor(factors []Factor, base Expression) int {
	for i, f := range factors {
		if Equal(f.Base, base) {
			return i
		}
	}
	return -1
}
