// SPDX-License-Identifier: MIT

// Package jitgen loads vertex data from plain text into strided float32
// matrices, the cell/plane buffers used by Jitter-style multimedia hosts.
//
// 🚀 What is jitgen?
//
//	A small, dependency-light toolkit built around one routine: read a
//	whitespace-delimited text file, one cell per line, and write it
//	row-major into a caller-owned buffer whose shape, byte strides and
//	plane count the caller decides.
//
// ✨ Key features:
//   - sparse fill: lines with fewer tokens than planes touch only what they have
//   - a missing source is an empty source, never an error
//   - malformed tokens report line, column and token instead of aborting
//   - UTF-8 / UTF-16 sources with BOM detection
//   - a trigger-driven generator with output modes and slog diagnostics
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/    — Descriptor (dim, stride, planecount, data), packed allocation, validators
//	fill/      — the text-to-matrix loader
//	generator/ — bang → fill → outlet adapter with attributes and logging
//
// Quick example:
//
//	d, _ := matrix.NewDense(2, 2, 1)
//	err := fill.Fill(d, "vertices.txt") // "1.0\n2.0\n3.0\n4.0\n"
//	// d cells, row-major: 1, 2, 3, 4
package jitgen
