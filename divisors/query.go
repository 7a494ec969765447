// SPDX-License-Identifier: MIT

package divisors

import "fmt"

// N returns the largest index of the table.
func (p *Propagator) N() int { return p.nMax }

// M returns the largest divisor considered.
func (p *Propagator) M() int { return p.mMax }

// Len returns the number of rows, N+1.
func (p *Propagator) Len() int { return len(p.rows) }

// Count returns c(n), the number of witness bits set for n.
func (p *Propagator) Count(n int) (int, error) {
	if err := p.checkIndex(n); err != nil {
		return 0, err
	}

	return p.rows[n].count, nil
}

// Has reports whether bit m-1 of B(n) is set.
func (p *Propagator) Has(n, m int) (bool, error) {
	if err := p.checkIndex(n); err != nil {
		return false, err
	}
	if m < 1 || m > p.mMax {
		return false, fmt.Errorf("%w: m=%d not in [1, %d]", ErrOutOfRange, m, p.mMax)
	}

	return p.rows[n].bits.Test(uint(m - 1)), nil
}

// Divisors lists the m in [1, M] whose bit is set in B(n), ascending.
func (p *Propagator) Divisors(n int) ([]int, error) {
	if err := p.checkIndex(n); err != nil {
		return nil, err
	}

	r := p.rows[n]
	out := make([]int, 0, r.count)
	for m := 1; m <= p.mMax; m++ {
		if r.bits.Test(uint(m - 1)) {
			out = append(out, m)
		}
	}

	return out, nil
}

func (p *Propagator) checkIndex(n int) error {
	if n < 0 || n > p.nMax {
		return fmt.Errorf("%w: n=%d not in [0, %d]", ErrOutOfRange, n, p.nMax)
	}

	return nil
}
