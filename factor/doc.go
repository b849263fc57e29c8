// Package factor defines the immutable data model consumed by the sampler:
// finite-domain Variables, dense Factor tables, and the Graph container that
// ties them together.
//
// What
//
//   - Variable: one random quantity with a finite, ordered domain of value
//     indices 0..Size-1. One index may be a distinguished irregular marker
//     meaning "not yet resolved", produced by lazy model expansion.
//   - Kind: a closed tagged variant describing how a variable's value arises
//     (purely stochastic, function application, branch result, branch helper).
//     Each case carries exactly the data needed to compute the variable's
//     deterministic parents; exhaustive switching replaces runtime type
//     inspection.
//   - Factor: an ordered tuple of variables plus one numeric value per joint
//     assignment of their domains, stored row-major.
//   - Graph: the build-once container. Variables and factors are registered
//     during construction and are immutable afterwards; the sampler never
//     creates or destroys them.
//
// Determinism
//
//	Graph.Variables returns variables sorted by ID, and Graph.Touching
//	preserves factor registration order, so downstream algorithms that
//	iterate the graph are fully reproducible.
//
// Errors
//
//   - ErrNilVariable / ErrNilFactor     if a nil pointer is registered.
//   - ErrEmptyVariableID                if a variable has an empty ID.
//   - ErrDuplicateVariable              if an ID is registered twice.
//   - ErrVariableNotFound               if a factor references an unknown ID.
//   - ErrBadDomain                      if a domain size or irregular index is out of range.
//   - ErrTableSize                      if a factor table does not match its domain product.
package factor
