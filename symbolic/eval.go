// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math"
)

// Environment maps variables to the values substituted during evaluation.
type Environment map[Variable]float64

// Evaluate computes the numeric value of e under env.
//
// Every variable reached during the walk must be bound, otherwise the walk
// stops with ErrUnboundVariable naming the offender. If-then-else nodes and
// uninterpreted functions yield ErrNotEvaluable. IEEE-754 semantics apply
// throughout: division by zero and domain errors produce infinities or NaN
// rather than failing.
func Evaluate(e Expression, env Environment) (float64, error) {
	switch x := e.(type) {
	case Variable:
		v, ok := env[x]
		if !ok {
			return 0, fmt.Errorf("variable %q (id %d): %w", x.name, x.id, ErrUnboundVariable)
		}
		return v, nil
	case Constant:
		return float64(x), nil
	case *Addition:
		acc := x.constant
		for _, t := range x.terms {
			v, err := Evaluate(t.Expr, env)
			if err != nil {
				return 0, err
			}
			acc += t.Coeff * v
		}
		return acc, nil
	case *Multiplication:
		acc := x.constant
		for _, f := range x.factors {
			base, err := Evaluate(f.Base, env)
			if err != nil {
				return 0, err
			}
			exp, err := Evaluate(f.Exponent, env)
			if err != nil {
				return 0, err
			}
			acc *= math.Pow(base, exp)
		}
		return acc, nil
	case *UnaryExpression:
		v, err := Evaluate(x.arg, env)
		if err != nil {
			return 0, err
		}
		return evalUnary(x.kind, v), nil
	case *BinaryExpression:
		a, err := Evaluate(x.first, env)
		if err != nil {
			return 0, err
		}
		b, err := Evaluate(x.second, env)
		if err != nil {
			return 0, err
		}
		return evalBinary(x.kind, a, b), nil
	default:
		return 0, fmt.Errorf("%s: %w", e.Kind(), ErrNotEvaluable)
	}
}

func evalUnary(k Kind, v float64) float64 {
	switch k {
	case KindAbs:
		return math.Abs(v)
	case KindLog:
		return math.Log(v)
	case KindExp:
		return math.Exp(v)
	case KindSqrt:
		return math.Sqrt(v)
	case KindSin:
		return math.Sin(v)
	case KindCos:
		return math.Cos(v)
	case KindTan:
		return math.Tan(v)
	case KindAsin:
		return math.Asin(v)
	case KindAcos:
		return math.Acos(v)
	case KindAtan:
		return math.Atan(v)
	case KindSinh:
		return math.Sinh(v)
	case KindCosh:
		return math.Cosh(v)
	case KindTanh:
		return math.Tanh(v)
	case KindCeil:
		return math.Ceil(v)
	case KindFloor:
		return math.Floor(v)
	}
	panic("symbolic: evalUnary called with non-unary kind " + k.String())
}

func evalBinary(k Kind, a, b float64) float64 {
	switch k {
	case KindDivision:
		return a / b
	case KindPow:
		return math.Pow(a, b)
	case KindAtan2:
		return math.Atan2(a, b)
	case KindMin:
		return math.Min(a, b)
	case KindMax:
		return math.Max(a, b)
	}
	panic("symbolic: evalBinary called with non-binary kind " + k.String())
}
