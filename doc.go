// Package figaro provides block Gibbs sampling over discrete factor graphs:
// approximate posterior inference by repeatedly resampling jointly-dependent
// groups of variables, conditioned on the rest of the current assignment.
//
// What you get:
//
//	A small, deterministic-by-seed inference core that brings together:
//		• Factor-graph primitives: finite-domain variables, dense factor tables
//		• Dependency-aware blocking: deterministic descendants sampled with
//		  their stochastic driver, never independently
//		• A sweep engine with burn-in, thinning, and per-iteration sample
//		  extraction, cancellable between sweeps
//		• Pluggable per-block samplers and chain initializers
//
// Everything is organized under three subpackages:
//
//	factor/ — Variable, Kind, Factor, and Graph container types
//	blocks/ — partitioning of variables into jointly-resampled blocks
//	gibbs/  — chain state, sweep engine, block samplers, run harness
//
// Quick ASCII example — a stochastic coin x driving a deterministic copy y:
//
//	    x ──(y = x)──▶ y
//
//	x and y land in one block; every sweep resamples them together, so the
//	chain never visits an assignment with y ≠ x.
//
// All randomness flows from caller-supplied seeds, so two runs with the same
// configuration produce the same chain. See each subpackage's doc.go for
// contracts, options, and error policy.
//
//	go get github.com/p2t2/figaro
package figaro
