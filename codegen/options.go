// SPDX-License-Identifier: MIT

// Package codegen: functional configuration for the emitters.
// One knob today: the recursion depth ceiling. Option constructors panic on
// nonsensical values (programmer error); resolved options flow through
// gatherOptions so defaults live in exactly one place.

package codegen

// DefaultMaxDepth is the tree depth ceiling applied when WithMaxDepth is
// not given. Deep enough for any machine-built expression seen in practice,
// shallow enough to fail cleanly long before the goroutine stack does.
const DefaultMaxDepth = 8192

const panicMaxDepthInvalid = "codegen: WithMaxDepth: depth must be > 0"

// Option mutates internal options. Public entry points accept ...Option and
// resolve them via gatherOptions; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; construct values only through the With* setters.
type Options struct {
	maxDepth int
}

// WithMaxDepth caps how deep the emitters will recurse into an expression
// tree before failing with ErrDepthExceeded. Panics if depth is not
// strictly positive.
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic(panicMaxDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{maxDepth: DefaultMaxDepth}
	for _, set := range user {
		set(&o)
	}

	return o
}
