// SPDX-License-Identifier: MIT

// Package fill loads whitespace-delimited vertex text into a strided
// float32 matrix.
//
// Source format:
//
//	one cell per line, planes separated by any whitespace, no header
//	-1.0  0.0  0.25   0.0 0.0   0.0 0.0 1.0
//	-0.9  0.1  0.25   0.1 0.0   0.0 0.0 1.0
//
// The shape comes entirely from the caller's matrix.Descriptor:
//
//   - Cells are visited row-major, and each cell consumes exactly one line.
//   - Only the first min(PlaneCount, tokens) planes of a cell are written.
//     The remaining planes keep whatever the buffer held.
//   - When the source runs out, no further cell is touched.
//   - A missing or unreadable file counts as an empty source, not an error.
//   - A malformed token stops the pass with a *ParseError naming the line,
//     column and token.
//
// The filler keeps no state between calls and does no locking. The caller
// must hold exclusive access to Data for the duration of a call.
//
// Usage:
//
//	d, _ := matrix.NewDense(20, 20, 8)
//	if err := fill.Fill(d, "torus.txt"); err != nil {
//	  var pe *fill.ParseError
//	  if errors.As(err, &pe) { ... pe.Line, pe.Token ... }
//	}
package fill
