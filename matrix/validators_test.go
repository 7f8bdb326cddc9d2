// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the descriptor validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/jitgen/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateDescriptor covers nil, negative dims, negative strides and short buffers.
func TestValidateDescriptor(t *testing.T) {
	t.Parallel()

	dense := func(x, y, p int) *matrix.Descriptor {
		d, err := matrix.NewDense(x, y, p)
		require.NoError(t, err)
		return d
	}
	short := dense(2, 2, 2)
	short.Data = short.Data[:len(short.Data)-1]

	tests := []struct {
		name    string
		d       *matrix.Descriptor
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"negative x", &matrix.Descriptor{Dim: [2]int{-1, 1}}, matrix.ErrInvalidDimensions},
		{"negative y", &matrix.Descriptor{Dim: [2]int{1, -1}}, matrix.ErrInvalidDimensions},
		{"negative planes", &matrix.Descriptor{PlaneCount: -2}, matrix.ErrInvalidDimensions},
		{"negative stride", &matrix.Descriptor{Dim: [2]int{1, 1}, Stride: [2]int{-4, 4}}, matrix.ErrInvalidStride},
		{"short buffer", short, matrix.ErrBufferTooSmall},
		{"row stride overflow", &matrix.Descriptor{Dim: [2]int{1, 2}, Stride: [2]int{4, math.MaxInt - 1}, PlaneCount: 1, Data: make([]byte, 4)}, matrix.ErrBufferTooSmall},
		{"column stride overflow", &matrix.Descriptor{Dim: [2]int{3, 1}, Stride: [2]int{math.MaxInt / 2, 0}, PlaneCount: 1, Data: make([]byte, 4)}, matrix.ErrBufferTooSmall},
		{"offset sum overflow", &matrix.Descriptor{Dim: [2]int{2, 2}, Stride: [2]int{math.MaxInt / 2, math.MaxInt / 2}, PlaneCount: 1, Data: make([]byte, 4)}, matrix.ErrBufferTooSmall},
		{"planecount overflow", &matrix.Descriptor{Dim: [2]int{1, 1}, PlaneCount: math.MaxInt, Data: make([]byte, 4)}, matrix.ErrBufferTooSmall},
		{"zero dims no data", &matrix.Descriptor{PlaneCount: 8}, nil},
		{"zero planes no data", &matrix.Descriptor{Dim: [2]int{4, 4}}, nil},
		{"packed 3x2x8", dense(3, 2, 8), nil},
		{"padded", padded(3, 2, 2, 4, 12), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDescriptor(tc.d)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestDescriptorErrorHierarchy ensures stride and buffer errors also match ErrInvalidDimensions.
func TestDescriptorErrorHierarchy(t *testing.T) {
	require.ErrorIs(t, matrix.ErrInvalidStride, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ErrBufferTooSmall, matrix.ErrInvalidDimensions)
	require.NotErrorIs(t, matrix.ErrInvalidDimensions, matrix.ErrBufferTooSmall)
	require.NotErrorIs(t, matrix.ErrOutOfRange, matrix.ErrInvalidDimensions)
}
