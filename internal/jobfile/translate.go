package jobfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/RuslanAgishev/drake/symbolic"
)

// scope maps declared parameter names to their minted variables. Each block
// gets a fresh scope; names never leak between blocks.
type scope map[string]symbolic.Variable

var unaryCtors = map[string]func(symbolic.Expression) symbolic.Expression{
	"abs":   symbolic.Abs,
	"log":   symbolic.Log,
	"exp":   symbolic.Exp,
	"sqrt":  symbolic.Sqrt,
	"sin":   symbolic.Sin,
	"cos":   symbolic.Cos,
	"tan":   symbolic.Tan,
	"asin":  symbolic.Asin,
	"acos":  symbolic.Acos,
	"atan":  symbolic.Atan,
	"sinh":  symbolic.Sinh,
	"cosh":  symbolic.Cosh,
	"tanh":  symbolic.Tanh,
	"ceil":  symbolic.Ceil,
	"floor": symbolic.Floor,
}

var binaryCtors = map[string]func(a, b symbolic.Expression) symbolic.Expression{
	"pow":   symbolic.Pow,
	"atan2": symbolic.Atan2,
	"min":   symbolic.Min,
	"max":   symbolic.Max,
}

// translateDeferred converts a deferred gohcl expression. Job files are
// parsed from native syntax, so the dynamic type is always an hclsyntax
// node; anything else (JSON-syntax HCL) is out of scope.
func translateDeferred(expr hcl.Expression, sc scope) (symbolic.Expression, error) {
	syn, ok := expr.(hclsyntax.Expression)
	if !ok {
		return nil, fmt.Errorf("%s: non-native expression: %w", expr.Range(), ErrUnsupportedSyntax)
	}
	return translate(syn, sc)
}

// translateTuple converts the expressions attribute of a matrix_function
// block, which must be a literal list so each entry stays a distinct tree.
func translateTuple(expr hcl.Expression, sc scope) ([]symbolic.Expression, error) {
	syn, ok := expr.(hclsyntax.Expression)
	if !ok {
		return nil, fmt.Errorf("%s: non-native expression: %w", expr.Range(), ErrUnsupportedSyntax)
	}
	tuple, ok := syn.(*hclsyntax.TupleConsExpr)
	if !ok {
		return nil, fmt.Errorf("%s: expressions must be a list literal: %w", syn.Range(), ErrUnsupportedSyntax)
	}

	out := make([]symbolic.Expression, 0, len(tuple.Exprs))
	for i, item := range tuple.Exprs {
		e, err := translate(item, sc)
		if err != nil {
			return nil, fmt.Errorf("expressions[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// translate maps the arithmetic subset of the HCL grammar onto symbolic
// constructors.
func translate(expr hclsyntax.Expression, sc scope) (symbolic.Expression, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Number {
			return nil, fmt.Errorf("%s: literal must be a number: %w", e.Range(), ErrUnsupportedSyntax)
		}
		f, _ := e.Val.AsBigFloat().Float64()
		return symbolic.Constant(f), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return nil, fmt.Errorf("%s: only bare parameter names can be referenced: %w", e.Range(), ErrUnsupportedSyntax)
		}
		name := e.Traversal.RootName()
		v, ok := sc[name]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", e.Range(), name, ErrUnknownIdentifier)
		}
		return v, nil

	case *hclsyntax.ParenthesesExpr:
		return translate(e.Expression, sc)

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return nil, fmt.Errorf("%s: unary operator: %w", e.Range(), ErrUnsupportedSyntax)
		}
		sub, err := translate(e.Val, sc)
		if err != nil {
			return nil, err
		}
		return symbolic.Neg(sub), nil

	case *hclsyntax.BinaryOpExpr:
		lhs, err := translate(e.LHS, sc)
		if err != nil {
			return nil, err
		}
		rhs, err := translate(e.RHS, sc)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case hclsyntax.OpAdd:
			return symbolic.Add(lhs, rhs), nil
		case hclsyntax.OpSubtract:
			return symbolic.Sub(lhs, rhs), nil
		case hclsyntax.OpMultiply:
			return symbolic.Mul(lhs, rhs), nil
		case hclsyntax.OpDivide:
			return symbolic.Div(lhs, rhs), nil
		default:
			return nil, fmt.Errorf("%s: binary operator: %w", e.Range(), ErrUnsupportedSyntax)
		}

	case *hclsyntax.FunctionCallExpr:
		return translateCall(e, sc)

	default:
		return nil, fmt.Errorf("%s: %T: %w", expr.Range(), expr, ErrUnsupportedSyntax)
	}
}

func translateCall(e *hclsyntax.FunctionCallExpr, sc scope) (symbolic.Expression, error) {
	if ctor, ok := unaryCtors[e.Name]; ok {
		if len(e.Args) != 1 {
			return nil, fmt.Errorf("%s: %s takes 1 argument, got %d: %w", e.Range(), e.Name, len(e.Args), ErrBadArity)
		}
		arg, err := translate(e.Args[0], sc)
		if err != nil {
			return nil, err
		}
		return ctor(arg), nil
	}
	if ctor, ok := binaryCtors[e.Name]; ok {
		if len(e.Args) != 2 {
			return nil, fmt.Errorf("%s: %s takes 2 arguments, got %d: %w", e.Range(), e.Name, len(e.Args), ErrBadArity)
		}
		first, err := translate(e.Args[0], sc)
		if err != nil {
			return nil, err
		}
		second, err := translate(e.Args[1], sc)
		if err != nil {
			return nil, err
		}
		return ctor(first, second), nil
	}
	return nil, fmt.Errorf("%s: %q: %w", e.Range(), e.Name, ErrUnknownFunction)
}
