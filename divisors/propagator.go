// SPDX-License-Identifier: MIT

package divisors

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"

	"github.com/chotto2/amida/bitvec"
)

// Propagator owns the divisor table B(0..N) and the counts c(0..N).
type Propagator struct {
	nMax int
	mMax int
	rows []row
	opts Options

	seeded     bool
	propagated bool
}

// New allocates N+1 independent, cleared rows of width M.
func New(nMax, mMax int, opts ...Option) (*Propagator, error) {
	// 1. Validate bounds
	if nMax < 0 || mMax < 0 {
		return nil, fmt.Errorf("%w: n=%d m=%d", ErrNegativeBound, nMax, mMax)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Size guard, overflow-safe; N+1 must itself be a valid length
	if nMax == math.MaxInt {
		return nil, fmt.Errorf("%w: n=%d has no representable row count", ErrTooLarge, nMax)
	}
	rowCount := uint64(nMax) + 1
	if o.MaxRows > 0 && rowCount > o.MaxRows {
		return nil, fmt.Errorf("%w: %d rows > %d", ErrTooLarge, rowCount, o.MaxRows)
	}
	if o.MaxCells > 0 {
		hi, cells := bits.Mul64(rowCount, uint64(mMax))
		if hi != 0 || cells > o.MaxCells {
			return nil, fmt.Errorf("%w: (%d+1)*%d bits > %d", ErrTooLarge, nMax, mMax, o.MaxCells)
		}
	}

	// 4. Allocate every row with its own vector
	rows := make([]row, nMax+1)
	for n := range rows {
		v, err := bitvec.New(o.Backend, uint(mMax))
		if err != nil {
			return nil, fmt.Errorf("divisors: allocate row %d: %w", n, err)
		}
		rows[n].bits = v
	}

	o.Logger.Debug("divisor table allocated",
		slog.Int("n_max", nMax),
		slog.Int("m_max", mMax),
		slog.String("backend", o.Backend.String()))

	return &Propagator{nMax: nMax, mMax: mMax, rows: rows, opts: o}, nil
}

// Run allocates, seeds and propagates in one call.
func Run(nMax, mMax int, opts ...Option) (*Propagator, error) {
	p, err := New(nMax, mMax, opts...)
	if err != nil {
		return nil, err
	}
	if err = p.SeedOrigin(); err != nil {
		return nil, err
	}
	if _, err = p.Propagate(); err != nil {
		return nil, err
	}

	return p, nil
}

// SeedOrigin sets bits 0..M-1 of B(0), so c(0) becomes M.
// It is the only writer of index 0 and may run once.
func (p *Propagator) SeedOrigin() error {
	if p.seeded {
		return ErrAlreadySeeded
	}

	origin := &p.rows[0]
	for m := 1; m <= p.mMax; m++ {
		origin.bits.Set(uint(m - 1))
		origin.count++
	}
	p.seeded = true

	p.opts.Logger.Debug("origin seeded", slog.Int("count", origin.count))

	return nil
}

// Propagate applies "m divides n implies m divides n+m" over the whole
// table in one ascending pass and returns the number of bits it set.
// Bits already present are left alone, so a repeated call returns 0.
func (p *Propagator) Propagate() (int, error) {
	if !p.seeded {
		return 0, ErrNotSeeded
	}

	ctx := p.opts.Ctx
	added := 0
	for n := 0; n <= p.nMax; n++ {
		select {
		case <-ctx.Done():
			return added, ctx.Err()
		default:
		}

		src := p.rows[n].bits
		for m := 1; m <= p.mMax; m++ {
			// larger m only lands further out of range
			if n+m > p.nMax {
				break
			}
			ofs := uint(m - 1)
			if !src.Test(ofs) {
				continue
			}
			dst := &p.rows[n+m]
			if dst.bits.Test(ofs) {
				continue
			}
			dst.bits.Set(ofs)
			dst.count++
			added++
		}
	}
	p.propagated = true

	p.opts.Logger.Debug("propagation finished", slog.Int("bits_set", added))

	return added, nil
}
