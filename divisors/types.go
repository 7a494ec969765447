// SPDX-License-Identifier: MIT

package divisors

import (
	"context"
	"log/slog"

	"github.com/chotto2/amida/bitvec"
)

// DefaultMaxCells caps a table at 2^32 bits (512 MiB with the dense backend).
const DefaultMaxCells uint64 = 1 << 32

// DefaultMaxRows caps a table at 2^24 rows. Every row carries a fixed
// overhead of roughly 80 bytes on top of its bits, so a table of many
// narrow rows is bounded by this rather than by MaxCells.
const DefaultMaxRows uint64 = 1 << 24

// Option configures a Propagator.
type Option func(*Options)

// Options holds the tunables of a Propagator.
type Options struct {
	// Backend selects the bit vector storage for every row.
	Backend bitvec.Kind

	// Ctx is polled once per source index during Propagate.
	Ctx context.Context

	// Logger receives Debug records at phase boundaries.
	Logger *slog.Logger

	// MaxCells bounds (N+1)·M. Zero means no bound.
	MaxCells uint64

	// MaxRows bounds N+1. Zero means no bound.
	MaxRows uint64
}

// DefaultOptions returns the dense backend, a background context, a
// discarding logger, DefaultMaxCells and DefaultMaxRows.
func DefaultOptions() Options {
	return Options{
		Backend:  bitvec.DefaultKind,
		Ctx:      context.Background(),
		Logger:   slog.New(slog.DiscardHandler),
		MaxCells: DefaultMaxCells,
		MaxRows:  DefaultMaxRows,
	}
}

// WithBackend selects the bit vector backend.
func WithBackend(kind bitvec.Kind) Option {
	return func(o *Options) {
		o.Backend = kind
	}
}

// WithContext installs ctx for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l for diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCells sets the largest accepted (N+1)·M; 0 disables the check.
func WithMaxCells(limit uint64) Option {
	return func(o *Options) {
		o.MaxCells = limit
	}
}

// WithMaxRows sets the largest accepted N+1; 0 disables the check.
func WithMaxRows(limit uint64) Option {
	return func(o *Options) {
		o.MaxRows = limit
	}
}

// row is one index of the table: its witness bits and their running count.
type row struct {
	bits  bitvec.Vector
	count int
}
