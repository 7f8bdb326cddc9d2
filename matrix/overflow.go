// SPDX-License-Identifier: MIT

package matrix

import "math"

// mulNonNeg returns a*b for a, b >= 0, or ok=false if the product overflows int.
func mulNonNeg(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}

	return a * b, true
}

// addNonNeg returns a+b for a, b >= 0, or ok=false if the sum overflows int.
func addNonNeg(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}

	return a + b, true
}

// checkedOffset is Offset with overflow detection. All inputs, dims and
// strides must be >= 0; ok=false means the offset does not fit in an int.
func (d *Descriptor) checkedOffset(i, j, k int) (int, bool) {
	row, ok := mulNonNeg(j, d.Stride[AxisY])
	if !ok {
		return 0, false
	}
	col, ok := mulNonNeg(i, d.Stride[AxisX])
	if !ok {
		return 0, false
	}
	plane, ok := mulNonNeg(k, Float32Size)
	if !ok {
		return 0, false
	}
	off, ok := addNonNeg(row, col)
	if !ok {
		return 0, false
	}

	return addNonNeg(off, plane)
}
