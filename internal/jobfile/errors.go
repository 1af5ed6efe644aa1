package jobfile

import "errors"

var (
	// ErrUnknownIdentifier means an expression references a name that the
	// block's parameters list does not declare.
	ErrUnknownIdentifier = errors.New("jobfile: expression references an undeclared parameter")

	// ErrUnknownFunction means an expression calls a function outside the
	// supported vocabulary.
	ErrUnknownFunction = errors.New("jobfile: unknown function in expression")

	// ErrBadArity means a known function was called with the wrong number
	// of arguments.
	ErrBadArity = errors.New("jobfile: wrong number of arguments")

	// ErrUnsupportedSyntax means the expression uses HCL constructs outside
	// the arithmetic subset (conditionals, templates, objects, ...).
	ErrUnsupportedSyntax = errors.New("jobfile: unsupported expression syntax")

	// ErrBadShape means a matrix_function block's expressions list does not
	// hold exactly rows*cols entries.
	ErrBadShape = errors.New("jobfile: expression count disagrees with matrix shape")

	// ErrDuplicateParameter means a parameters list declares one name twice.
	ErrDuplicateParameter = errors.New("jobfile: parameter declared twice")
)
