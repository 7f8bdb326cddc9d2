// SPDX-License-Identifier: MIT

// Package matrix provides the strided float32 buffer used by fillers and
// generators. Dense allocation packs cells tightly in row-major order, the
// layout Jitter uses for float32 matrices without padding.
package matrix

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// NewDense allocates a packed x×y Descriptor with the given plane count,
// initialized to zeros.
// Stage 1 (Validate): x, y and planes must be >= 0.
// Stage 2 (Prepare): derive strides with overflow checks, then allocate.
// Complexity: O(x*y*planes) time and memory.
func NewDense(x, y, planes int) (*Descriptor, error) {
	d := &Descriptor{Dim: [2]int{x, y}, PlaneCount: planes}
	if err := ValidateDims(d); err != nil {
		return nil, err
	}
	sx, okX := mulNonNeg(planes, Float32Size)
	sy, okY := mulNonNeg(x, sx)
	size, okSize := mulNonNeg(y, sy)
	if !okX || !okY || !okSize {
		return nil, validatorErrorf(fmt.Sprintf("NewDense(%d,%d,%d): size overflows int", x, y, planes), ErrInvalidDimensions)
	}
	d.Stride = [2]int{sx, sy}
	d.Data = make([]byte, size)

	return d, nil
}

// Offset returns the byte offset of plane k of cell (i, j).
// No bounds checking; see At/Set for checked access.
// Complexity: O(1).
func (d *Descriptor) Offset(i, j, k int) int {
	return j*d.Stride[AxisY] + i*d.Stride[AxisX] + k*Float32Size
}

// PutFloat32 stores v at byte offset off in native byte order.
// The caller guarantees off+Float32Size <= len(d.Data).
func (d *Descriptor) PutFloat32(off int, v float32) {
	binary.NativeEndian.PutUint32(d.Data[off:off+Float32Size], math.Float32bits(v))
}

// Float32 reads the value at byte offset off in native byte order.
func (d *Descriptor) Float32(off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(d.Data[off : off+Float32Size]))
}

// offsetOf computes the checked offset for (i, j, k) or returns ErrOutOfRange.
func (d *Descriptor) offsetOf(method string, i, j, k int) (int, error) {
	if i < 0 || i >= d.Dim[AxisX] || j < 0 || j >= d.Dim[AxisY] || k < 0 || k >= d.PlaneCount {
		return 0, descErrorf(method, i, j, k, ErrOutOfRange)
	}
	if d.Stride[AxisX] < 0 || d.Stride[AxisY] < 0 {
		return 0, descErrorf(method, i, j, k, ErrInvalidStride)
	}
	off, ok := d.checkedOffset(i, j, k)
	if !ok || off > len(d.Data)-Float32Size {
		return 0, descErrorf(method, i, j, k, ErrBufferTooSmall)
	}

	return off, nil
}

// At retrieves plane k of cell (i, j).
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (d *Descriptor) At(i, j, k int) (float32, error) {
	off, err := d.offsetOf("At", i, j, k)
	if err != nil {
		return 0, err
	}

	return d.Float32(off), nil
}

// Set assigns v to plane k of cell (i, j).
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (d *Descriptor) Set(i, j, k int, v float32) error {
	off, err := d.offsetOf("Set", i, j, k)
	if err != nil {
		return err
	}
	d.PutFloat32(off, v)

	return nil
}

// Cell returns a copy of all planes of cell (i, j).
// Complexity: O(PlaneCount).
func (d *Descriptor) Cell(i, j int) ([]float32, error) {
	out := make([]float32, d.PlaneCount)
	for k := range out {
		v, err := d.At(i, j, k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}

// Clone returns a deep copy of the descriptor, including padding bytes.
// The returned Descriptor is independent of the original.
// Complexity: O(len(Data)).
func (d *Descriptor) Clone() *Descriptor {
	data := make([]byte, len(d.Data))
	copy(data, d.Data)

	return &Descriptor{Dim: d.Dim, Stride: d.Stride, PlaneCount: d.PlaneCount, Data: data}
}

// String implements fmt.Stringer for easy debugging: one line per row,
// cells rendered as plane tuples.
// Complexity: O(x*y*planes).
func (d *Descriptor) String() string {
	var b strings.Builder
	for j := 0; j < d.Dim[AxisY]; j++ {
		b.WriteString("[")
		for i := 0; i < d.Dim[AxisX]; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(")
			for k := 0; k < d.PlaneCount; k++ {
				if k > 0 {
					b.WriteString(" ")
				}
				// direct read; String is for well-formed descriptors only
				fmt.Fprintf(&b, "%g", d.Float32(d.Offset(i, j, k)))
			}
			b.WriteString(")")
		}
		b.WriteString("]\n")
	}

	return b.String()
}
