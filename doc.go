// SPDX-License-Identifier: MIT

// Package amida finds the divisors of every integer in [0, N] without
// dividing, by letting divisor bits flow forward from the origin.
//
// 🪜 How does it work?
//
//	Index 0 starts with every candidate divisor 1..M. Whenever n carries
//	divisor m, so does n+m. Walking n upward once spreads each divisor along
//	its own diagonal, like the rungs of an amida-kuji ladder:
//
//	    n: 0  1  2  3  4  5  6
//	 m=1:  *──*──*──*──*──*──*
//	 m=2:  *─────*─────*─────*
//	 m=3:  *────────*────────*
//
//	Row n of the finished table holds exactly the divisors of n.
//
// ✨ What is inside?
//
//   - Arbitrary width – divisor sets are bit vectors of any width, with
//     dense, roaring and big-integer backends
//   - One pass – every write lands on a larger index, so no fixed point is needed
//   - Self-checking – Verify compares the table with n % m == 0
//   - Reference output – the classic "n: d(n): divisors" star table
//
// Packages:
//
//	bitvec/            — Vector interface and its three backends
//	divisors/          — the propagation engine: New, SeedOrigin, Propagate, Verify
//	table/             — fixed-width text rendering of a finished table
//	internal/config/   — run parameters from flags, AMIDA_* env and a YAML file
//	internal/logging/  — slog text logger on stderr, level parsing
//	internal/cmd/      — cobra root command: config → propagate → verify → table
//	cmd/amida/         — process entry point, Ctrl-C cancellation
//
// Quick start:
//
//	go run github.com/chotto2/amida/cmd/amida --n-max 30 --dsp-max 30
package amida
