// SPDX-License-Identifier: MIT

// Package approx: functional configuration for construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - No dead switches: each option changes observable behavior (parallelism,
//     log output, metric series).
package approx

import (
	"log/slog"
	"runtime"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers per construction stage.
const DefaultWorkers = 0

const (
	panicWorkersInvalid = "approx: WithWorkers: workers must be >= 1"
	panicLoggerNil      = "approx: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration of one construction call.
type Options struct {
	workers int
	logger  *slog.Logger
	metrics *Metrics
}

// WithWorkers bounds the number of goroutines used within one stage
// (reduced operators, or the masks of a single order). 1 runs sequentially.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes stage-level debug records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics records construction outcomes and durations into m.
// A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
