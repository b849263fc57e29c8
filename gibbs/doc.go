// Package gibbs drives a block Gibbs Markov chain over a factor.Graph:
// chain state, the sweep engine with burn-in and thinning, pluggable
// per-block samplers, a feasibility initializer, and one-time/anytime run
// harnesses.
//
// What
//
//   - State: the single mutable mapping from variable ID to current value
//     index. One State per run, exclusively owned by the Sampler, mutated in
//     place one block at a time.
//   - BlockSampler: the per-block resampling capability. One instance per
//     block, built by a BlockSamplerFactory from the block and the factors
//     touching it. The default, NewWeightedBlockSampler, enumerates the
//     block's joint assignments and draws one in proportion to the product of
//     its factors' values, other variables pinned to the current state.
//   - Initializer: produces one feasible joint assignment before the first
//     sweep. The default performs bounded random restarts with greedy repair;
//     exhausting the budget is fatal (ErrInfeasible).
//   - Sampler: the sweep engine. New validates all configuration eagerly,
//     Initialize seeds the state and runs burn-in, Iterate performs thinning
//     sweeps plus one recording sweep and extracts a Sample for the target
//     variables. Collect runs a fixed number of iterations; Stream yields
//     records until its context is cancelled.
//
// Sampling semantics
//
//	A Sample is Valid only if every target variable holds a regular value at
//	extraction time; irregular targets are omitted from the record. Invalid
//	samples are a normal outcome under lazy model expansion, reported rather
//	than failed.
//
// Concurrency
//
//	Sweeps are strictly sequential: each sweep observes all mutations of the
//	one before. Within a sweep, WithParallelism(n) fans blocks out across n
//	workers; every block samples against a snapshot of the pre-sweep state
//	(double-buffering), so cross-block reads never observe a half-updated
//	sweep. Cancellation is honored between sweeps only — a sweep is the
//	atomic unit of interruption, leaving the chain state consistent.
//
// Determinism
//
//	All randomness flows from WithSeed: per-block rand sources are derived
//	from the seed and the block's position, and the default initializer is
//	seeded the same way, so two runs with identical configuration produce
//	identical chains.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrNoTargets       if no target variables are supplied.
//   - ErrTargetUnknown   if a target is not registered in the graph.
//   - ErrOptionViolation if an invalid Option is supplied (rejected by New,
//     never deferred to the first sweep).
//   - ErrInfeasible      if no feasible initial assignment can be found.
//   - ErrNotInitialized  if Iterate/Stream runs before Initialize.
//   - Context errors     on cancellation between sweeps.
package gibbs
