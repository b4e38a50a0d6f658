// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for generators and multipliers.
// This file defines:
//   - Option (functional options over an internal options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - No hidden global randomness: Random draws from an explicit *rand.Rand,
//     either supplied (WithRand), seeded (WithSeed) or created per call.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Options that do not concern a given entry point are ignored by it
//     (e.g. WithSeed passed to MulBlocked).
package matrix

import (
	"math/rand"

	"github.com/katalvlaran/matmul/workerpool"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowsPerTask selects one contiguous chunk of rows per worker
	// (workerpool.ParallelFor). Positive values switch to batched hand-out.
	DefaultRowsPerTask = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandNil        = "matrix: WithRand(nil)"
	panicPoolNil        = "matrix: WithPool(nil)"
	panicRowsPerTaskNeg = "matrix: WithRowsPerTask: rows must be >= 0"
)

// Option mutates internal options. Later options override earlier ones.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options is the resolved configuration; fields stay unexported.
type options struct {
	rng         *rand.Rand       // randomness source for Random; nil => fresh per call
	pool        *workerpool.Pool // fork-join pool for MulParallel; nil => workerpool.Default()
	rowsPerTask int              // 0 => chunk per worker; >0 => batched hand-out
}

// WithRand provides an explicit randomness source for Random.
// A *rand.Rand is NOT goroutine-safe: do not share one across concurrent calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed creates a new seeded source for Random (reproducible draws).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPool selects the worker pool used by MulParallel. Panics on nil.
func WithPool(p *workerpool.Pool) Option {
	if p == nil {
		panic(panicPoolNil)
	}
	return func(o *options) {
		o.pool = p
	}
}

// WithRowsPerTask sets the row batch size handed to each parallel task.
// 0 keeps the default (one contiguous chunk per worker); panics on negatives.
func WithRowsPerTask(rows int) Option {
	if rows < 0 {
		panic(panicRowsPerTaskNeg)
	}
	return func(o *options) {
		o.rowsPerTask = rows
	}
}

// gatherOptions applies opts in order over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{
		rng:         nil,
		pool:        nil,
		rowsPerTask: DefaultRowsPerTask,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
