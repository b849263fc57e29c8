// Package gibbs provides tunable options, capability contracts, and error
// definitions for the block Gibbs sweep engine.
package gibbs

import (
	"errors"
	"fmt"

	"github.com/p2t2/figaro/blocks"
	"github.com/p2t2/figaro/factor"
)

// Sentinel errors for sampler construction and execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gibbs: graph is nil")

	// ErrNoTargets is returned when no target variables are supplied.
	ErrNoTargets = errors.New("gibbs: no target variables")

	// ErrTargetUnknown is returned when a target ID is absent from the graph.
	ErrTargetUnknown = errors.New("gibbs: target variable not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gibbs: invalid option supplied")

	// ErrInfeasible is returned when no feasible initial assignment exists
	// within the initializer's budget. It is fatal for the run.
	ErrInfeasible = errors.New("gibbs: no feasible initial assignment")

	// ErrNotInitialized is returned when the chain is advanced before
	// Initialize has populated the state.
	ErrNotInitialized = errors.New("gibbs: sampler not initialized")
)

// BlockSampler is the per-block resampling capability: given the current
// chain state, draw new values for exactly its block's variables, mutating
// them in place. Implementations must not touch variables outside the block.
type BlockSampler interface {
	Sample(s *State)
}

// BlockInfo carries everything a factory needs to build one BlockSampler:
// the block itself and the factors touching any of its variables.
type BlockInfo struct {
	Block   blocks.Block
	Factors []*factor.Factor
}

// BlockSamplerFactory builds one BlockSampler per block at construction time.
type BlockSamplerFactory func(info BlockInfo) BlockSampler

// Initializer produces one feasible joint assignment covering every variable
// of the graph, consulted once before the first sweep. A failure is fatal.
type Initializer interface {
	Initialize(g *factor.Graph) (map[string]int, error)
}

// EvidenceSource contributes extra factors from an auxiliary model, merged
// into the run's factor set at construction (multi-model inference).
type EvidenceSource interface {
	Factors() []*factor.Factor
}

// Sample is one per-iteration output record. Values maps each target
// variable to its resolved value index; targets holding an irregular value
// are omitted, and Valid is true only if no target was omitted. Invalid
// records are reported for diagnostics, not treated as errors.
type Sample struct {
	Valid  bool
	Values map[string]int
}

// Option configures Sampler behavior via functional arguments. Invalid
// values are recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds all sampler knobs.
type Options struct {
	// BurnIn is the number of sweeps discarded before the first record.
	BurnIn int

	// Interval is the number of sweeps per recorded sample; 1 = no thinning.
	Interval int

	// Workers caps per-sweep block parallelism; 1 = sequential sweeps.
	Workers int

	// Seed feeds every derived rand source (block samplers, initializer).
	Seed uint64

	// Factory builds one BlockSampler per block. Nil selects the weighted
	// enumerating default.
	Factory BlockSamplerFactory

	// Init produces the feasible starting assignment. Nil selects the
	// random-restart default.
	Init Initializer

	// Evidence lists auxiliary factor sources merged into the run.
	Evidence []EvidenceSource

	// internal error recorded during option parsing
	err error
}

// Default configuration values.
const (
	defaultBurnIn   = 0
	defaultInterval = 1
	defaultWorkers  = 1
	defaultSeed     = uint64(1)
)

// DefaultOptions returns Options with sane defaults: no burn-in, no thinning,
// sequential sweeps, seed 1, and the built-in sampler and initializer.
func DefaultOptions() Options {
	return Options{
		BurnIn:   defaultBurnIn,
		Interval: defaultInterval,
		Workers:  defaultWorkers,
		Seed:     defaultSeed,
		err:      nil,
	}
}

// WithBurnIn discards n sweeps before the first recorded sample.
// Negative n is invalid.
func WithBurnIn(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: BurnIn cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.BurnIn = n
	}
}

// WithInterval records one sample every k sweeps (interval semantics:
// k−1 extra sweeps between records, k == 1 means no thinning).
// k < 1 is invalid.
func WithInterval(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Interval must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Interval = k
	}
}

// WithParallelism fans each sweep's blocks out across n workers, sampling
// against a snapshot of the pre-sweep state. n < 1 is invalid.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSeed fixes the seed all derived rand sources flow from.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBlockSamplerFactory installs a custom per-block sampler factory.
func WithBlockSamplerFactory(f BlockSamplerFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.Factory = f
		}
	}
}

// WithInitializer installs a custom chain initializer.
func WithInitializer(init Initializer) Option {
	return func(o *Options) {
		if init != nil {
			o.Init = init
		}
	}
}

// WithEvidence merges the factors of each auxiliary source into the run.
func WithEvidence(sources ...EvidenceSource) Option {
	return func(o *Options) {
		for _, src := range sources {
			if src != nil {
				o.Evidence = append(o.Evidence, src)
			}
		}
	}
}
