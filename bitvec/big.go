// SPDX-License-Identifier: MIT

package bitvec

import (
	"math/big"
	"math/bits"
)

// bigint keeps bits in an arbitrary-precision integer: bit i of the vector
// is bit i of the two's-complement value, which stays non-negative.
type bigint struct {
	x     big.Int
	width uint
}

func newBig(width uint) *bigint {
	return &bigint{width: width}
}

func (b *bigint) Set(i uint) {
	if i >= b.width {
		return
	}
	b.x.SetBit(&b.x, int(i), 1)
}

func (b *bigint) Test(i uint) bool {
	return i < b.width && b.x.Bit(int(i)) == 1
}

func (b *bigint) Count() uint {
	var n int
	for _, w := range b.x.Bits() {
		n += bits.OnesCount(uint(w))
	}

	return uint(n)
}

func (b *bigint) Width() uint { return b.width }
