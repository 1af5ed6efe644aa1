package jobfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/RuslanAgishev/drake/internal/ctxlog"
	"github.com/RuslanAgishev/drake/symbolic"
)

// Function is one generation request from a job document. Scalar requests
// carry Expression and a nil Matrix; matrix requests carry Matrix and a nil
// Expression. Parameters are freshly minted variables in declaration order,
// ready to use as the emitter parameter list.
type Function struct {
	Name       string
	Parameters []symbolic.Variable
	Expression symbolic.Expression
	Matrix     *symbolic.Matrix
}

// BlockType returns the job-file block type the request came from:
// "function" or "matrix_function".
func (f *Function) BlockType() string {
	if f.Matrix != nil {
		return "matrix_function"
	}
	return "function"
}

// Job is a parsed job document: the requests in document order.
type Job struct {
	Path      string
	Functions []*Function
}

// jobSchema lists the two block forms a job document may contain. Content
// enforces it strictly, so stray blocks and attributes become diagnostics
// instead of silently ignored text.
var jobSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "function", LabelNames: []string{"name"}},
		{Type: "matrix_function", LabelNames: []string{"name"}},
	},
}

// scalarBlock mirrors a function block. Expression stays a deferred
// hcl.Expression: its identifiers are the block's own parameters, which do
// not exist as HCL variables, so it must be translated rather than
// evaluated.
type scalarBlock struct {
	Parameters []string       `hcl:"parameters"`
	Expression hcl.Expression `hcl:"expression"`
}

// matrixBlock mirrors a matrix_function block. Expressions must be a list
// literal with rows*cols entries in row-major order.
type matrixBlock struct {
	Parameters  []string       `hcl:"parameters"`
	Rows        int            `hcl:"rows"`
	Cols        int            `hcl:"cols"`
	Expressions hcl.Expression `hcl:"expressions"`
}

// Load parses the job document at path and translates every block into a
// generation request. The returned slice preserves document order, so a
// caller emitting sequentially reproduces the file's layout.
func Load(ctx context.Context, path string) (*Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("parsing job document", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse job file %s: %s", path, diags.Error())
	}
	content, diags := file.Body.Content(jobSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode job file %s: %s", path, diags.Error())
	}

	job := &Job{Path: path}
	for _, block := range content.Blocks {
		var (
			fn  *Function
			err error
		)
		switch block.Type {
		case "function":
			fn, err = loadScalar(block)
		case "matrix_function":
			fn, err = loadMatrix(block)
		}
		if err != nil {
			return nil, fmt.Errorf("%s %q at %s: %w", block.Type, block.Labels[0], block.DefRange, err)
		}
		logger.Debug("loaded block", "type", block.Type, "name", fn.Name, "parameters", len(fn.Parameters))
		job.Functions = append(job.Functions, fn)
	}

	logger.Debug("job document loaded", "path", path, "functions", len(job.Functions))
	return job, nil
}

func loadScalar(block *hcl.Block) (*Function, error) {
	var sb scalarBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &sb); diags.HasErrors() {
		return nil, fmt.Errorf("decode body: %s", diags.Error())
	}
	params, sc, err := declareParameters(sb.Parameters)
	if err != nil {
		return nil, err
	}
	e, err := translateDeferred(sb.Expression, sc)
	if err != nil {
		return nil, err
	}

	return &Function{Name: block.Labels[0], Parameters: params, Expression: e}, nil
}

func loadMatrix(block *hcl.Block) (*Function, error) {
	var mb matrixBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &mb); diags.HasErrors() {
		return nil, fmt.Errorf("decode body: %s", diags.Error())
	}
	params, sc, err := declareParameters(mb.Parameters)
	if err != nil {
		return nil, err
	}
	entries, err := translateTuple(mb.Expressions, sc)
	if err != nil {
		return nil, err
	}
	if len(entries) != mb.Rows*mb.Cols {
		return nil, fmt.Errorf("%d expressions for %dx%d: %w", len(entries), mb.Rows, mb.Cols, ErrBadShape)
	}
	m, err := symbolic.MatrixFromSlice(mb.Rows, mb.Cols, entries)
	if err != nil {
		return nil, err
	}

	return &Function{Name: block.Labels[0], Parameters: params, Matrix: m}, nil
}

// declareParameters mints one fresh variable per declared name and builds
// the translation scope. Each block declares its own parameters; names
// never alias across blocks even when spelled identically.
func declareParameters(names []string) ([]symbolic.Variable, scope, error) {
	params := make([]symbolic.Variable, 0, len(names))
	sc := make(scope, len(names))
	for _, name := range names {
		if _, dup := sc[name]; dup {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrDuplicateParameter)
		}
		v := symbolic.NewVariable(name)
		sc[name] = v
		params = append(params, v)
	}

	return params, sc, nil
}
