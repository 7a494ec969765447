// SPDX-License-Identifier: MIT

package divisors

import (
	"fmt"
	"log/slog"
)

// Verify checks the completed table against ordinary arithmetic:
//   - c(n) equals the popcount of B(n) for every n;
//   - B(0) holds every m in [1, M];
//   - for n >= 1, bit m-1 of B(n) is set exactly when n % m == 0.
//
// The first disagreement is returned wrapped in ErrMismatch.
func (p *Propagator) Verify() error {
	if !p.propagated {
		return ErrNotPropagated
	}

	for n, r := range p.rows {
		if pop := int(r.bits.Count()); pop != r.count {
			return fmt.Errorf("%w: c(%d)=%d but popcount=%d", ErrMismatch, n, r.count, pop)
		}
		for m := 1; m <= p.mMax; m++ {
			got := r.bits.Test(uint(m - 1))
			want := n%m == 0
			if got != want {
				return fmt.Errorf("%w: n=%d m=%d propagated=%t modulo=%t", ErrMismatch, n, m, got, want)
			}
		}
	}

	p.opts.Logger.Debug("table verified", slog.Int("rows", len(p.rows)))

	return nil
}
