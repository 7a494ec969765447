// SPDX-License-Identifier: MIT

package bitvec

import "github.com/bits-and-blooms/bitset"

// dense wraps bitset.BitSet. The underlying set would grow on an
// out-of-range Set; the width check keeps the vector fixed-size.
type dense struct {
	bs    *bitset.BitSet
	width uint
}

func newDense(width uint) *dense {
	return &dense{bs: bitset.New(width), width: width}
}

func (d *dense) Set(i uint) {
	if i >= d.width {
		return
	}
	d.bs.Set(i)
}

func (d *dense) Test(i uint) bool {
	return i < d.width && d.bs.Test(i)
}

func (d *dense) Count() uint { return d.bs.Count() }

func (d *dense) Width() uint { return d.width }
