// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic descriptor fixtures.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/jitgen/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES a packed x×y descriptor with the given plane count or
// fails the test.
func MustDense(t *testing.T, x, y, planes int) *matrix.Descriptor {
	t.Helper()
	d, err := matrix.NewDense(x, y, planes)
	require.NoError(t, err)

	return d
}

// padded builds a descriptor whose cells and rows carry trailing padding
// bytes, each padding byte set to 0xAB so tests can prove it stays untouched.
func padded(x, y, planes, cellPad, rowPad int) *matrix.Descriptor {
	sx := planes*matrix.Float32Size + cellPad
	sy := x*sx + rowPad
	data := make([]byte, y*sy)
	for i := range data {
		data[i] = 0xAB
	}

	return &matrix.Descriptor{
		Dim:        [2]int{x, y},
		Stride:     [2]int{sx, sy},
		PlaneCount: planes,
		Data:       data,
	}
}
