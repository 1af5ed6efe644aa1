package codegen_test

import (
	"testing"

	"github.com/RuslanAgishev/drake/codegen"
	"github.com/RuslanAgishev/drake/symbolic"
)

// wideSum builds x0 + 2*x1 + 3*x2 + ... over n fresh variables and returns
// the tree with its parameter list.
func wideSum(n int) (symbolic.Expression, []symbolic.Variable) {
	params := make([]symbolic.Variable, n)
	operands := make([]symbolic.Expression, n)
	for i := range params {
		params[i] = symbolic.NewVariable("v")
		operands[i] = symbolic.Mul(symbolic.Constant(float64(i+1)), params[i])
	}
	return symbolic.Add(operands...), params
}

// deepChain builds sin(cos(sin(...))) of the given depth over one variable.
func deepChain(depth int) (symbolic.Expression, []symbolic.Variable) {
	x := symbolic.NewVariable("x")
	e := symbolic.Expression(x)
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			e = symbolic.Sin(e)
		} else {
			e = symbolic.Cos(e)
		}
	}
	return e, []symbolic.Variable{x}
}

// benchmarkLower lowers a prepared tree b.N times.
func benchmarkLower(b *testing.B, e symbolic.Expression, params []symbolic.Variable) {
	bindings := codegen.BindParameters(params)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codegen.Lower(e, bindings); err != nil {
			b.Fatalf("Lower failed: %v", err)
		}
	}
}

// BenchmarkLower_WideSum64 lowers a 64-term flat sum.
func BenchmarkLower_WideSum64(b *testing.B) {
	e, params := wideSum(64)
	benchmarkLower(b, e, params)
}

// BenchmarkLower_WideSum1024 lowers a 1024-term flat sum.
func BenchmarkLower_WideSum1024(b *testing.B) {
	e, params := wideSum(1024)
	benchmarkLower(b, e, params)
}

// BenchmarkLower_DeepChain1000 lowers a 1000-deep alternating call chain.
func BenchmarkLower_DeepChain1000(b *testing.B) {
	e, params := deepChain(1000)
	benchmarkLower(b, e, params)
}

// BenchmarkScalarFunction benchmarks full scalar emission including framing
// and metadata.
func BenchmarkScalarFunction(b *testing.B) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	params := []symbolic.Variable{x, y}
	e := sampleExpression(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := codegen.ScalarFunction("f", params, e); err != nil {
			b.Fatalf("ScalarFunction failed: %v", err)
		}
	}
}

// BenchmarkBatchFunction_16x16 benchmarks matrix emission with 256 stores.
func BenchmarkBatchFunction_16x16(b *testing.B) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	params := []symbolic.Variable{x, y}

	entries := make([]symbolic.Expression, 16*16)
	for i := range entries {
		entries[i] = symbolic.Add(
			symbolic.Mul(symbolic.Constant(float64(i)), x),
			symbolic.Sin(symbolic.Mul(y, symbolic.Constant(float64(i%7+1)))),
		)
	}
	m, err := symbolic.MatrixFromSlice(16, 16, entries)
	if err != nil {
		b.Fatalf("matrix: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := codegen.BatchFunction("g", params, m); err != nil {
			b.Fatalf("BatchFunction failed: %v", err)
		}
	}
}
