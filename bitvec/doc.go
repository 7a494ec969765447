// SPDX-License-Identifier: MIT

// Package bitvec provides arbitrary-width bit vectors behind a single small
// interface, so callers can index bits far beyond one machine word without
// caring how the bits are stored.
//
// What:
//
//   - Vector: Set, Test, Count and Width over bit offsets 0..Width()-1.
//   - Three interchangeable backends selected by Kind:
//   - KindBitSet  dense word slice (github.com/bits-and-blooms/bitset), the default
//   - KindRoaring compressed containers (github.com/RoaringBitmap/roaring/v2)
//   - KindBig     math/big.Int, one bit per offset of an arbitrary-precision integer
//
// Why:
//
//   - Widths are run parameters, not hardware constants.
//   - Swapping the backend lets results be cross-checked between independent
//     implementations of the same bit semantics.
//
// Complexity:
//
//   - Set/Test: O(1) for KindBitSet, O(log C) for KindRoaring (C containers),
//     O(1) amortized for KindBig.
//   - Count: O(W/64) for KindBitSet and KindBig, O(C) for KindRoaring.
//
// Errors:
//
//   - ErrUnknownKind     kind name not recognized by ParseKind / New
//   - ErrWidthTooLarge   width does not fit the backend's index space
package bitvec
