// SPDX-License-Identifier: MIT

package bitvec

import "errors"

var (
	// ErrUnknownKind is returned when a backend name or Kind value is not recognized.
	ErrUnknownKind = errors.New("bitvec: unknown vector kind")

	// ErrWidthTooLarge is returned when the requested width exceeds what the
	// backend can address (roaring is limited to 32-bit offsets).
	ErrWidthTooLarge = errors.New("bitvec: width exceeds backend capacity")
)
