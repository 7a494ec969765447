// SPDX-License-Identifier: MIT

package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxRoaringWidth is the size of roaring's 32-bit offset universe.
const maxRoaringWidth = uint64(1) << 32

// compressed wraps a 32-bit roaring bitmap.
type compressed struct {
	rb    *roaring.Bitmap
	width uint
}

func newRoaring(width uint) (*compressed, error) {
	if uint64(width) > maxRoaringWidth {
		return nil, fmt.Errorf("%w: roaring width %d > %d", ErrWidthTooLarge, width, maxRoaringWidth)
	}

	return &compressed{rb: roaring.New(), width: width}, nil
}

func (c *compressed) Set(i uint) {
	if i >= c.width {
		return
	}
	c.rb.Add(uint32(i))
}

func (c *compressed) Test(i uint) bool {
	return i < c.width && c.rb.Contains(uint32(i))
}

func (c *compressed) Count() uint { return uint(c.rb.GetCardinality()) }

func (c *compressed) Width() uint { return c.width }
