// SPDX-License-Identifier: MIT

package bitvec

import (
	"fmt"
	"strings"
)

// Kind selects the storage backend of a Vector.
type Kind int

const (
	// KindBitSet stores bits in a dense []uint64 (bits-and-blooms/bitset).
	KindBitSet Kind = iota
	// KindRoaring stores bits in a compressed roaring bitmap.
	KindRoaring
	// KindBig stores bits in a math/big.Int.
	KindBig
)

// DefaultKind is used when no backend is configured.
const DefaultKind = KindBitSet

// Vector is a fixed-width bit vector. Offsets at or beyond Width() are
// outside the vector: Set ignores them and Test reports false.
type Vector interface {
	// Set turns on bit i.
	Set(i uint)
	// Test reports whether bit i is on.
	Test(i uint) bool
	// Count returns the number of bits that are on.
	Count() uint
	// Width returns the number of addressable bits.
	Width() uint
}

var kindNames = map[Kind]string{
	KindBitSet:  "bitset",
	KindRoaring: "roaring",
	KindBig:     "big",
}

// String returns the backend name accepted by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a backend name (case-insensitive) to its Kind.
// The empty string selects DefaultKind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultKind, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return DefaultKind, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds lists every supported backend in declaration order.
func Kinds() []Kind {
	return []Kind{KindBitSet, KindRoaring, KindBig}
}

// New allocates a cleared Vector of the given width using backend kind.
func New(kind Kind, width uint) (Vector, error) {
	switch kind {
	case KindBitSet:
		return newDense(width), nil
	case KindRoaring:
		c, err := newRoaring(width)
		if err != nil {
			return nil, err
		}

		return c, nil
	case KindBig:
		return newBig(width), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
