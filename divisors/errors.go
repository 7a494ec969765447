// SPDX-License-Identifier: MIT

package divisors

import "errors"

var (
	// ErrNegativeBound is returned by New when N or M is negative.
	ErrNegativeBound = errors.New("divisors: bounds must be non-negative")

	// ErrTooLarge is returned by New when the table would hold more bits
	// or rows than the configured limits allow.
	ErrTooLarge = errors.New("divisors: table exceeds size limit")

	// ErrAlreadySeeded is returned when SeedOrigin is called more than once.
	ErrAlreadySeeded = errors.New("divisors: origin already seeded")

	// ErrNotSeeded is returned by Propagate when the origin is still empty.
	ErrNotSeeded = errors.New("divisors: origin not seeded")

	// ErrNotPropagated is returned by Verify until a Propagate call has
	// run to completion.
	ErrNotPropagated = errors.New("divisors: propagation not completed")

	// ErrOutOfRange indicates an index outside [0, N] or a divisor outside [1, M].
	ErrOutOfRange = errors.New("divisors: index out of range")

	// ErrMismatch reports that the propagated table disagrees with the
	// modulo reference or that a count disagrees with its bit vector.
	ErrMismatch = errors.New("divisors: table mismatch")
)
