package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/valvesearch/internal/logging"
)

// Sentinel errors for search execution.
var (
	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("search: negative time budget")

	// ErrBudgetTooLarge is returned when the budget does not fit a state key.
	ErrBudgetTooLarge = errors.New("search: time budget too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// MaxBudget is the largest accepted time budget, in minutes.
const MaxBudget = 1<<16 - 1

// defaultProgressEvery is how many calls pass between progress logs.
const defaultProgressEvery = 1_000_000

// Mode names a search flavour.
type Mode string

const (
	// ModeSingle is one agent with the whole budget.
	ModeSingle Mode = "single"
	// ModeDual is two cooperating agents sharing the opened valves.
	ModeDual Mode = "dual"
)

// Stats describes the work done by one solve.
type Stats struct {
	Calls     int64
	CacheHits int64
	CacheSize int
	Duration  time.Duration
}

// Option configures a solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs of a solve.
type Options struct {
	// Logger receives progress (debug) records.
	Logger *slog.Logger

	// Workers > 1 explores the first decision level concurrently with a
	// shared cache. The result does not depend on it.
	Workers int

	// CanonicalDualKeys lets label-swapped dual states share a cache entry.
	CanonicalDualKeys bool

	// ProgressEvery is the number of calls between progress logs; 0 disables them.
	ProgressEvery int64

	// Observer, if set, is called once per finished solve.
	Observer func(Mode, Stats)

	err error
}

// DefaultOptions returns sequential, non-canonical options with a no-op
// logger and the default progress interval.
func DefaultOptions() Options {
	return Options{
		Logger:        logging.NewNop(),
		Workers:       1,
		ProgressEvery: defaultProgressEvery,
	}
}

// WithLogger sets the logger used for progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of concurrent first-level workers.
// n == 0 keeps the sequential default; n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// WithCanonicalDualKeys merges label-swapped dual states in the cache.
func WithCanonicalDualKeys() Option {
	return func(o *Options) { o.CanonicalDualKeys = true }
}

// WithProgressEvery logs progress every n calls (0 disables).
func WithProgressEvery(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: progress interval cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithObserver registers a callback receiving the stats of every solve.
func WithObserver(fn func(Mode, Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func checkBudget(budget int) error {
	switch {
	case budget < 0:
		return fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	case budget > MaxBudget:
		return fmt.Errorf("%w: %d > %d", ErrBudgetTooLarge, budget, MaxBudget)
	}

	return nil
}
