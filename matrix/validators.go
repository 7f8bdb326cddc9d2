// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for descriptor validation.
//  - Keep fillers and accessors minimal by delegating shape/nil/bounds checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - ValidateDescriptor follows a fixed sequence: NotNil → Dims → Strides → Buffer.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the descriptor reference is non-nil.
//
// Returns ErrNilMatrix if d == nil.
// Complexity: O(1).
func ValidateNotNil(d *Descriptor) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures both dimensions and the plane count are non-negative.
// Zero is valid and means "nothing to address".
//
// Implementation: assumes d is not nil (caller must ensure).
// Complexity: O(1).
func ValidateDims(d *Descriptor) error {
	if d.Dim[AxisX] < 0 || d.Dim[AxisY] < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDims: dim=%v", d.Dim), ErrInvalidDimensions)
	}
	if d.PlaneCount < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDims: planecount=%d", d.PlaneCount), ErrInvalidDimensions)
	}

	return nil
}

// ValidateStrides ensures both strides are non-negative.
//
// Implementation: assumes d is not nil (caller must ensure).
// Complexity: O(1).
func ValidateStrides(d *Descriptor) error {
	if d.Stride[AxisX] < 0 || d.Stride[AxisY] < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateStrides: stride=%v", d.Stride), ErrInvalidStride)
	}

	return nil
}

// ValidateBuffer ensures the last addressed plane lies inside Data.
// With non-negative strides the furthest byte touched belongs to cell
// (Dim[x]-1, Dim[y]-1), plane PlaneCount-1.
//
// Offsets that overflow int are reported as ErrBufferTooSmall: no Data
// slice can hold them.
//
// Implementation: assumes dims and strides were already validated.
// Complexity: O(1).
func ValidateBuffer(d *Descriptor) error {
	if d.Empty() {
		return nil
	}
	need, ok := d.checkedOffset(d.Dim[AxisX]-1, d.Dim[AxisY]-1, d.PlaneCount-1)
	if ok {
		need, ok = addNonNeg(need, Float32Size)
	}
	if !ok {
		return validatorErrorf(fmt.Sprintf("ValidateBuffer: dim=%v stride=%v planecount=%d overflows int", d.Dim, d.Stride, d.PlaneCount), ErrBufferTooSmall)
	}
	if need > len(d.Data) {
		return validatorErrorf(fmt.Sprintf("ValidateBuffer: need %d bytes, have %d", need, len(d.Data)), ErrBufferTooSmall)
	}

	return nil
}

// ValidateDescriptor runs every descriptor check in order and returns the
// first failure.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidStride, ErrBufferTooSmall.
// Complexity: O(1).
func ValidateDescriptor(d *Descriptor) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if err := ValidateDims(d); err != nil {
		return err
	}
	if err := ValidateStrides(d); err != nil {
		return err
	}

	return ValidateBuffer(d)
}
