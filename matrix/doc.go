// SPDX-License-Identifier: MIT

// Package matrix describes strided multi-plane float32 buffers.
//
// A "matrix" here is a Jitter-style cell grid, not a linear-algebra object:
//
//   - Dim holds the number of columns (x) and rows (y).
//   - Stride holds the byte step along each axis.
//   - PlaneCount is the number of float32 channels per cell.
//
// The package provides:
//
//   - Descriptor, the borrowed view fillers write into.
//   - NewDense for packed, zeroed allocation.
//   - Checked accessors (At, Set, Cell) that return ErrOutOfRange instead of panicking.
//   - ValidateDescriptor, the canonical shape/stride/buffer check.
//
// See example_test.go for usage patterns.
package matrix
