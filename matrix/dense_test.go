// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for Descriptor allocation and
// checked access.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/jitgen/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative sizes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseOverflow ensures sizes whose byte length overflows int are rejected.
func TestNewDenseOverflow(t *testing.T) {
	sizes := [][3]int{
		{math.MaxInt / 2, 2, 8},   // x*stride
		{1, math.MaxInt, 1},       // y*rowstride
		{1, 1, math.MaxInt/4 + 1}, // planes*4
		{math.MaxInt, math.MaxInt, 8},
	}
	for _, sz := range sizes {
		d, err := matrix.NewDense(sz[0], sz[1], sz[2])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "size=%v", sz)
		require.Nil(t, d)
	}
}

// TestAtHugeStride ensures checked access does not wrap on oversized strides.
func TestAtHugeStride(t *testing.T) {
	d := &matrix.Descriptor{Dim: [2]int{1, 2}, Stride: [2]int{4, math.MaxInt - 1}, PlaneCount: 1, Data: make([]byte, 4)}

	_, err := d.At(0, 1, 0)
	require.ErrorIs(t, err, matrix.ErrBufferTooSmall)

	d.Stride[1] = -4
	require.ErrorIs(t, d.Set(0, 1, 0, 1), matrix.ErrInvalidStride)
}

// TestNewDenseZero verifies that zero-sized descriptors are valid and empty.
func TestNewDenseZero(t *testing.T) {
	d := MustDense(t, 0, 0, 8)
	require.True(t, d.Empty())
	require.Empty(t, d.Data)
	require.NoError(t, matrix.ValidateDescriptor(d))
}

// TestNewDenseLayout verifies packed strides and buffer length.
func TestNewDenseLayout(t *testing.T) {
	d := MustDense(t, 3, 2, 8)

	require.Equal(t, [2]int{32, 96}, d.Stride)
	require.Len(t, d.Data, 192)
	require.Equal(t, 6, d.Cells())
	require.Equal(t, 1*96+2*32+3*4, d.Offset(2, 1, 3))
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	d := MustDense(t, 2, 2, 3)

	_, err := d.At(-1, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = d.At(0, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = d.Set(0, 0, 3, 1.5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = d.Cell(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() and Cell().
func TestSetGet(t *testing.T) {
	d := MustDense(t, 2, 3, 2)

	require.NoError(t, d.Set(1, 2, 0, 7.5))
	require.NoError(t, d.Set(1, 2, 1, -0.25))

	v, err := d.At(1, 2, 0)
	require.NoError(t, err)
	require.Equal(t, float32(7.5), v)

	cell, err := d.Cell(1, 2)
	require.NoError(t, err)
	require.Equal(t, []float32{7.5, -0.25}, cell)
}

// TestSetTruncatedBuffer ensures a short Data slice yields an error, not a panic.
func TestSetTruncatedBuffer(t *testing.T) {
	d := MustDense(t, 2, 2, 1)
	d.Data = d.Data[:8]

	err := d.Set(1, 1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrBufferTooSmall)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestPaddedLayout verifies that writes through padded strides leave padding intact.
func TestPaddedLayout(t *testing.T) {
	d := padded(2, 2, 1, 4, 8)
	require.NoError(t, matrix.ValidateDescriptor(d))

	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			require.NoError(t, d.Set(i, j, 0, float32(j*2+i)))
		}
	}

	// cell pad is bytes 4..7 of each cell, row pad is the last 8 bytes of each row
	for j := 0; j < 2; j++ {
		row := d.Data[j*d.Stride[1] : (j+1)*d.Stride[1]]
		for i := 0; i < 2; i++ {
			require.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB}, row[i*8+4:i*8+8])
		}
		require.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB}, row[16:24])
	}
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	d := MustDense(t, 2, 2, 1)
	require.NoError(t, d.Set(0, 0, 0, 1))

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 0, 3))

	orig, err := d.At(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), orig)

	cloned, err := c.At(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(3), cloned)
}

// TestString checks the debug rendering.
func TestString(t *testing.T) {
	d := MustDense(t, 2, 1, 2)
	require.NoError(t, d.Set(0, 0, 0, 1))
	require.NoError(t, d.Set(0, 0, 1, 2))
	require.NoError(t, d.Set(1, 0, 0, 3.5))

	require.Equal(t, "[(1 2), (3.5 0)]\n", d.String())
}
