// SPDX-License-Identifier: MIT

package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chotto2/amida/bitvec"
)

// TestNew_AllKindsStartClear checks that every backend allocates an empty
// vector of the requested width.
func TestNew_AllKindsStartClear(t *testing.T) {
	for _, k := range bitvec.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v, err := bitvec.New(k, 200)
			require.NoError(t, err)
			assert.Equal(t, uint(200), v.Width())
			assert.Equal(t, uint(0), v.Count())
			for i := uint(0); i < 200; i++ {
				assert.False(t, v.Test(i), "bit %d should be clear", i)
			}
		})
	}
}

// TestVector_SetTestCount exercises offsets on both sides of the 64-bit word
// boundary and repeated sets of the same bit.
func TestVector_SetTestCount(t *testing.T) {
	offsets := []uint{0, 1, 63, 64, 65, 127, 128, 199}
	for _, k := range bitvec.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v, err := bitvec.New(k, 200)
			require.NoError(t, err)

			for _, i := range offsets {
				v.Set(i)
				v.Set(i) // second set must not change the count
			}
			assert.Equal(t, uint(len(offsets)), v.Count())
			for _, i := range offsets {
				assert.True(t, v.Test(i), "bit %d should be set", i)
			}
			assert.False(t, v.Test(2))
			assert.False(t, v.Test(100))
		})
	}
}

// TestVector_OutOfWidth verifies that offsets past Width are ignored.
func TestVector_OutOfWidth(t *testing.T) {
	for _, k := range bitvec.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v, err := bitvec.New(k, 10)
			require.NoError(t, err)

			v.Set(10)
			v.Set(1000)
			assert.False(t, v.Test(10))
			assert.False(t, v.Test(1000))
			assert.Equal(t, uint(0), v.Count())
			assert.Equal(t, uint(10), v.Width())
		})
	}
}

// TestVector_ZeroWidth: a zero-width vector is valid and holds nothing.
func TestVector_ZeroWidth(t *testing.T) {
	for _, k := range bitvec.Kinds() {
		v, err := bitvec.New(k, 0)
		require.NoError(t, err, k.String())
		v.Set(0)
		assert.False(t, v.Test(0), k.String())
		assert.Equal(t, uint(0), v.Count(), k.String())
	}
}

func TestNew_UnknownKind(t *testing.T) {
	v, err := bitvec.New(bitvec.Kind(42), 8)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, bitvec.ErrUnknownKind)
	assert.Contains(t, err.Error(), "Kind(42)")
}

func TestNew_RoaringWidthTooLarge(t *testing.T) {
	if ^uint(0) == uint(^uint32(0)) {
		t.Skip("uint cannot exceed 32 bits on this platform")
	}
	shift := 32
	wide := uint(1)<<shift + 1
	v, err := bitvec.New(bitvec.KindRoaring, wide)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, bitvec.ErrWidthTooLarge)
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want bitvec.Kind
	}{
		{"", bitvec.KindBitSet},
		{"bitset", bitvec.KindBitSet},
		{"  Roaring ", bitvec.KindRoaring},
		{"BIG", bitvec.KindBig},
	}
	for _, c := range cases {
		got, err := bitvec.ParseKind(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := bitvec.ParseKind("gmp")
	assert.ErrorIs(t, err, bitvec.ErrUnknownKind)
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range bitvec.Kinds() {
		got, err := bitvec.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
