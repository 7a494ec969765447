// SPDX-License-Identifier: MIT

// Package divisors computes, for every index n in [0, N], which values m in
// [1, M] divide n, without a single division or modulo operation.
//
// What:
//
//   - Every index n owns a bit vector B(n) of width M and a running count
//     c(n) of its set bits.
//   - The origin B(0) is seeded with every bit set: 0 is divisible by all m.
//   - Propagation walks n ascending and, for each m ascending, copies bit m-1
//     from B(n) to B(n+m). One pass suffices because every write goes to a
//     strictly larger index than the one it reads from.
//
// The outcome coincides with ordinary divisibility: bit m-1 of B(n) is set
// exactly when m divides n. Why the forwarding rule reproduces it is left as
// an empirical property; Verify checks it against the modulo reference.
//
// Pipeline:
//
//	p, err := divisors.New(n, m, opts...)  // allocate, all clear
//	err = p.SeedOrigin()                   // B(0) = all ones, c(0) = M
//	added, err := p.Propagate()            // fill B(1..N)
//
// Run performs the three steps in order.
//
// Complexity:
//
//   - Time:   O(N·min(N, M)) bit probes.
//   - Memory: O(N·M) bits plus O(N) row headers, bounded up front by
//     WithMaxCells and WithMaxRows.
//
// Options:
//
//   - WithBackend(kind)   bit vector storage (bitvec.KindBitSet by default)
//   - WithContext(ctx)    cancellation, checked once per source index
//   - WithLogger(l)       slog logger for phase diagnostics
//   - WithMaxCells(c)     refuse tables with more than c bits (0 disables)
//   - WithMaxRows(r)      refuse tables with more than r rows (0 disables)
//
// Errors:
//
//   - ErrNegativeBound    N or M below zero
//   - ErrTooLarge         N+1 or (N+1)·M exceeds its limit, or N+1 overflows int
//   - ErrAlreadySeeded    SeedOrigin called twice
//   - ErrNotSeeded        Propagate before SeedOrigin
//   - ErrNotPropagated    Verify before a completed Propagate
//   - ErrOutOfRange       query index outside [0, N] or divisor outside [1, M]
//   - ErrMismatch         Verify found a disagreement with the modulo reference
//
// A Propagator is not safe for concurrent mutation. Once Propagate has
// returned, the read-only queries may be called from several goroutines.
package divisors
