// SPDX-License-Identifier: MIT

package divisors

// Test bridge: lets divisors_test damage a finished table so Verify's
// mismatch paths can be exercised without widening the public API.

// SetBitUncounted sets bit m-1 of B(n) without touching c(n).
func (p *Propagator) SetBitUncounted(n, m int) {
	p.rows[n].bits.Set(uint(m - 1))
}

// SetBitCounted sets bit m-1 of B(n) and bumps c(n), bypassing the rule.
func (p *Propagator) SetBitCounted(n, m int) {
	p.rows[n].bits.Set(uint(m - 1))
	p.rows[n].count++
}
