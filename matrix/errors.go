// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with context)
// and tests check them via errors.Is. No function panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Descriptor-shape errors form a small hierarchy: ErrInvalidStride and
// ErrBufferTooSmall both match ErrInvalidDimensions under errors.Is, so a
// caller that only cares about "malformed descriptor" checks one sentinel.

var (
	// ErrInvalidDimensions indicates a negative dimension or plane count,
	// or (via the hierarchy above) any other malformed descriptor.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrInvalidStride indicates a negative stride along either axis.
	ErrInvalidStride = shapeError("matrix: stride must be >= 0")

	// ErrBufferTooSmall indicates that the addressed cells do not fit in Data.
	ErrBufferTooSmall = shapeError("matrix: data buffer too small for dimensions and strides")

	// ErrOutOfRange indicates that a column, row or plane index is outside
	// valid bounds. Public indexers (At/Set/Cell) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Descriptor was used.
	ErrNilMatrix = errors.New("matrix: nil descriptor")
)

// descriptorError is a sentinel that also reports itself as ErrInvalidDimensions.
type descriptorError struct{ msg string }

func shapeError(msg string) error { return &descriptorError{msg: msg} }

func (e *descriptorError) Error() string { return e.msg }

// Is makes every descriptorError match ErrInvalidDimensions.
func (e *descriptorError) Is(target error) bool { return target == ErrInvalidDimensions }

// descErrorf wraps an underlying error with Descriptor method context.
func descErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Descriptor.%s(%d,%d,%d): %w", method, i, j, k, err)
}
