// Package blocks provides tunable options and error definitions for the
// block partitioner over a factor.Graph.
package blocks

import (
	"context"
	"errors"

	"github.com/p2t2/figaro/factor"
)

// Sentinel errors for partition execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("blocks: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("blocks: invalid option supplied")
)

// Block is one jointly-resampled group of variables: a stochastic root
// together with the closure of its deterministic descendants. Members are
// sorted by ID and a Block is never empty.
type Block []*factor.Variable

// IDs returns the member variable IDs in block order.
func (b Block) IDs() []string {
	ids := make([]string, len(b))
	for i, v := range b {
		ids[i] = v.ID
	}

	return ids
}

// Contains reports whether the block includes the variable with the given ID.
func (b Block) Contains(id string) bool {
	for _, v := range b {
		if v.ID == id {
			return true
		}
	}

	return false
}

// Option configures Partition behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing partition execution.
type Options struct {
	// Ctx allows cancellation of the closure loop.
	Ctx context.Context

	// OnBlock is called once per finished block, in output order.
	OnBlock func(b Block)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context and a
// no-op OnBlock hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnBlock: func(Block) {},
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnBlock registers a callback invoked once per finished block.
func WithOnBlock(fn func(b Block)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBlock = fn
		}
	}
}
