// SPDX-License-Identifier: MIT

// Package matrix: domain types for strided multi-plane float32 buffers.
// This file contains ONLY the Descriptor type and its layout constants.
// Errors and validation live in dedicated files (errors.go, validators.go).
package matrix

// Float32Size is the byte width of one plane value.
const Float32Size = 4

// Axis indices into Dim and Stride.
const (
	AxisX = 0 // columns, dim[0]
	AxisY = 1 // rows, dim[1]
)

// Descriptor describes a caller-owned, two-dimensional buffer of cells, each
// cell holding PlaneCount float32 values (planes) in native byte order.
//
// Layout invariant:
//
//	cell(i, j)     = j*Stride[AxisY] + i*Stride[AxisX]   (byte offset)
//	plane(i, j, k) = cell(i, j) + k*Float32Size
//
// Strides are in bytes, as with Jitter's dimstride. Cells may be padded
// (Stride[AxisX] > PlaneCount*Float32Size) or rows may be padded
// (Stride[AxisY] > Dim[AxisX]*Stride[AxisX]); bytes outside addressed planes
// are never touched.
//
// A Descriptor does not own Data: functions that accept one borrow it for the
// duration of the call and keep no reference afterwards.
type Descriptor struct {
	Dim        [2]int // [size_x, size_y]
	Stride     [2]int // byte step per unit along x and y
	PlaneCount int    // planes per cell, >= 0
	Data       []byte // len must cover the last addressed plane
}

// Cells returns Dim[AxisX]*Dim[AxisY].
// Complexity: O(1).
func (d *Descriptor) Cells() int {
	return d.Dim[AxisX] * d.Dim[AxisY]
}

// Empty reports whether the descriptor addresses no plane at all.
// Complexity: O(1).
func (d *Descriptor) Empty() bool {
	return d.Dim[AxisX] == 0 || d.Dim[AxisY] == 0 || d.PlaneCount == 0
}
