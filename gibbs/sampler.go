// Package gibbs implements the sweep engine driving the Markov chain: one
// pass over all blocks per sweep, burn-in and thinning control, and
// per-iteration sample extraction for the target variables.
package gibbs

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/p2t2/figaro/blocks"
	"github.com/p2t2/figaro/factor"
)

// Sampler drives a block Gibbs chain over one factor graph. Build it with
// New, seed it with Initialize, then advance it with Iterate, Collect, or
// Stream. A Sampler is not safe for concurrent use; the chain must evolve
// sequentially.
type Sampler struct {
	graph    *factor.Graph
	parts    []blocks.Block
	samplers []BlockSampler
	targets  []*factor.Variable
	state    *State

	burnIn   int
	interval int
	workers  int
	init     Initializer

	iterations  int
	initialized bool
}

// New builds a Sampler over g reporting the given target variables, applying
// any number of functional Options. Evidence factors are merged, blocks are
// partitioned, and one BlockSampler per block is constructed up front. All
// configuration is validated here — a malformed option surfaces as
// ErrOptionViolation from New, never from a later sweep.
func New(g *factor.Graph, targets []string, opts ...Option) (*Sampler, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	tvs := make([]*factor.Variable, len(targets))
	for i, id := range targets {
		v, ok := g.Variable(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTargetUnknown, id)
		}
		tvs[i] = v
	}

	merged, err := mergeEvidence(g, o.Evidence)
	if err != nil {
		return nil, err
	}

	parts, err := blocks.Partition(merged)
	if err != nil {
		return nil, err
	}

	factory := o.Factory
	if factory == nil {
		factory = weightedFactory(o.Seed)
	}
	samplers := make([]BlockSampler, len(parts))
	for i, b := range parts {
		samplers[i] = factory(BlockInfo{Block: b, Factors: touching(merged, b)})
	}

	init := o.Init
	if init == nil {
		init = NewRandomInitializer(o.Seed)
	}

	s := &Sampler{
		graph:    merged,
		parts:    parts,
		samplers: samplers,
		targets:  tvs,
		state:    NewState(merged.NumVariables()),
		burnIn:   o.BurnIn,
		interval: o.Interval,
		workers:  o.Workers,
		init:     init,
	}

	return s, nil
}

// mergeEvidence returns g itself when there are no auxiliary sources, or a
// fresh graph carrying g's variables and factors plus every evidence factor.
func mergeEvidence(g *factor.Graph, sources []EvidenceSource) (*factor.Graph, error) {
	if len(sources) == 0 {
		return g, nil
	}
	merged := factor.NewGraph()
	for _, v := range g.Variables() {
		if err := merged.AddVariable(v); err != nil {
			return nil, err
		}
	}
	for _, f := range g.Factors() {
		if err := merged.AddFactor(f); err != nil {
			return nil, err
		}
	}
	for _, src := range sources {
		for _, f := range src.Factors() {
			if err := merged.AddFactor(f); err != nil {
				return nil, err
			}
		}
	}

	return merged, nil
}

// touching collects the factors touching any variable of b, deduplicated,
// in registration order.
func touching(g *factor.Graph, b blocks.Block) []*factor.Factor {
	seen := make(map[*factor.Factor]bool)
	var fs []*factor.Factor
	for _, f := range g.Factors() {
		if seen[f] {
			continue
		}
		for _, v := range b {
			if f.Touches(v.ID) {
				seen[f] = true
				fs = append(fs, f)
				break
			}
		}
	}

	return fs
}

// weightedFactory derives one independent, reproducible rand source per
// block from the run seed and the block's construction position.
func weightedFactory(seed uint64) BlockSamplerFactory {
	next := uint64(0)
	return func(info BlockInfo) BlockSampler {
		src := rand.NewPCG(seed, next)
		next++

		return NewWeightedBlockSampler(info, src)
	}
}

// Initialize populates the chain state with one feasible joint assignment
// and runs the configured burn-in sweeps. It must complete before the first
// Iterate. An infeasible graph surfaces as ErrInfeasible; cancellation is
// honored between burn-in sweeps.
func (s *Sampler) Initialize(ctx context.Context) error {
	assignment, err := s.init.Initialize(s.graph)
	if err != nil {
		return err
	}
	for _, v := range s.graph.Variables() {
		if _, ok := assignment[v.ID]; !ok {
			return fmt.Errorf("%w: initializer left %q unassigned", ErrInfeasible, v.ID)
		}
	}
	s.state.fill(assignment)
	s.initialized = true
	s.iterations = 0

	for i := 0; i < s.burnIn; i++ {
		if err = s.Sweep(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Sweep invokes every block sampler exactly once, mutating the chain state
// in place. Order among blocks does not affect correctness: blocks are
// variable-disjoint. Returns the context's error if ctx is already
// cancelled; a started sweep always runs to completion so the state stays
// consistent.
func (s *Sampler) Sweep(ctx context.Context) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if s.workers == 1 {
		for _, bs := range s.samplers {
			bs.Sample(s.state)
		}

		return nil
	}

	return s.parallelSweep()
}

// parallelSweep fans blocks out across workers. Every block samples into its
// own copy of the pre-sweep snapshot, so cross-block reads see the previous
// sweep's completed values; each block's new values are merged back
// afterwards. Double-buffering trades copies for lock-free correctness.
func (s *Sampler) parallelSweep() error {
	snap := s.state.Snapshot()
	locals := make([]*State, len(s.samplers))

	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for i := range s.samplers {
		eg.Go(func() error {
			local := snap.Snapshot()
			s.samplers[i].Sample(local)
			locals[i] = local

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, b := range s.parts {
		for _, v := range b {
			if val, ok := locals[i].Value(v.ID); ok {
				s.state.Set(v.ID, val)
			}
		}
	}

	return nil
}

// Iterate advances one logical iteration: interval−1 thinning sweeps
// (skipped on the very first call, burn-in already advanced the chain), one
// recording sweep, then sample extraction. The only error source is
// cancellation between sweeps; an invalid sample is a normal outcome.
func (s *Sampler) Iterate(ctx context.Context) (Sample, error) {
	if !s.initialized {
		return Sample{}, ErrNotInitialized
	}

	thinning := 0
	if s.iterations > 0 {
		thinning = s.interval - 1
	}
	for i := 0; i < thinning; i++ {
		if err := s.Sweep(ctx); err != nil {
			return Sample{}, err
		}
	}
	if err := s.Sweep(ctx); err != nil {
		return Sample{}, err
	}
	s.iterations++

	return s.produceSample(), nil
}

// produceSample reads every target's current value from the chain state.
// Irregular targets are omitted; the record is Valid only if nothing was
// omitted.
func (s *Sampler) produceSample() Sample {
	out := Sample{Valid: true, Values: make(map[string]int, len(s.targets))}
	for _, t := range s.targets {
		val, ok := s.state.Value(t.ID)
		if !ok || !t.Regular(val) {
			out.Valid = false
			continue
		}
		out.Values[t.ID] = val
	}

	return out
}

// Collect runs the one-time harness: Initialize if needed, then n iterations,
// returning every record (valid and invalid; callers filter on Valid).
func (s *Sampler) Collect(ctx context.Context, n int) ([]Sample, error) {
	if !s.initialized {
		if err := s.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		rec, err := s.Iterate(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// Stream runs the anytime harness: a channel of records produced until ctx
// is cancelled. Interruption happens only between sweeps, so the chain state
// is never left half-updated. Initialize must have completed.
func (s *Sampler) Stream(ctx context.Context) (<-chan Sample, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make(chan Sample)
	go func() {
		defer close(out)
		for {
			rec, err := s.Iterate(ctx)
			if err != nil {
				return
			}
			select {
			case out <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Current returns the chain state's current value for the variable with the
// given ID. Useful for diagnostics and tests.
func (s *Sampler) Current(id string) (int, bool) {
	return s.state.Value(id)
}

// Blocks returns the block partition the sampler runs over.
func (s *Sampler) Blocks() []blocks.Block {
	return append([]blocks.Block(nil), s.parts...)
}

// Iterations returns the number of completed logical iterations.
func (s *Sampler) Iterations() int { return s.iterations }
