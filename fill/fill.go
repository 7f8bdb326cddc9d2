// SPDX-License-Identifier: MIT

package fill

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/jitgen/matrix"
	"golang.org/x/text/transform"
)

// Fill loads the text file at path into d, one line per cell in row-major
// order (rows j outer, columns i inner).
//
// Implementation:
//   - Stage 1 (Validate): matrix.ValidateDescriptor; empty descriptors return nil
//     without opening the file.
//   - Stage 2 (Open): a file that cannot be opened yields zero lines, so the
//     call succeeds and d is unchanged.
//   - Stage 3 (Execute): FillReader over the decoded file; the file is closed
//     before return on every path.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (and its
//     ErrInvalidStride / ErrBufferTooSmall refinements).
//   - *ParseError (errors.Is(err, ErrParse)) on a malformed token.
//   - ErrSourceRead on I/O failure after open.
//
// Complexity: O(x*y*planes + file size) time, O(max line) memory.
func Fill(d *matrix.Descriptor, path string, opts ...Option) error {
	if err := matrix.ValidateDescriptor(d); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if d.Empty() {
		return nil
	}

	o := gatherOptions(opts...)
	if o.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(o.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		// unavailable source ≡ zero lines
		return nil
	}
	defer f.Close()

	return fill(d, f, o)
}

// FillReader runs the same row-major pass as Fill over r. The reader is not
// closed. Every Option except WithBaseDir applies.
func FillReader(d *matrix.Descriptor, r io.Reader, opts ...Option) error {
	if err := matrix.ValidateDescriptor(d); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if d.Empty() {
		return nil
	}

	return fill(d, r, gatherOptions(opts...))
}

// fill assumes d is validated and non-empty.
func fill(d *matrix.Descriptor, r io.Reader, o Options) error {
	sc := bufio.NewScanner(transform.NewReader(r, o.decoder()))
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, o.maxLineBytes)), o.maxLineBytes)

	planes := d.PlaneCount
	fields := make([]field, 0, planes)
	line := 0

	for j := 0; j < d.Dim[matrix.AxisY]; j++ {
		for i := 0; i < d.Dim[matrix.AxisX]; i++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("%w: after line %d: %w", ErrSourceRead, line, err)
				}
				// source exhausted: this and later cells stay as they were
				return nil
			}
			line++

			fields = splitFields(sc.Text(), planes, fields)
			cell := d.Offset(i, j, 0)
			for k, fd := range fields {
				v, err := parseFloat32(fd.text)
				if err != nil {
					return &ParseError{Line: line, Column: fd.start + 1, Plane: k, Token: fd.text, Err: err}
				}
				d.PutFloat32(cell+k*matrix.Float32Size, v)
			}
		}
	}

	return nil
}
