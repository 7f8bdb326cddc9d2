// SPDX-License-Identifier: MIT

// Package fill: functional configuration for the text source. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package fill

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxLineBytes is the longest accepted source line, in decoded bytes.
	DefaultMaxLineBytes = 1 << 20

	// initialLineBuffer is the scanner's starting buffer size.
	initialLineBuffer = 4 << 10
)

const panicMaxLineInvalid = "fill: WithMaxLineBytes: n must be > 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	enc          encoding.Encoding // nil ⇒ UTF-8 with BOM sniffing
	maxLineBytes int               // DefaultMaxLineBytes
	baseDir      string            // "" ⇒ paths used as given
}

// WithEncoding decodes the source with enc instead of the default
// (UTF-8, with a leading BOM selecting UTF-8/UTF-16LE/UTF-16BE).
//
// Notes:
//   - Pass e.g. charmap.Windows1252 for legacy exports.
//   - nil restores the default.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *Options) { o.enc = enc }
}

// WithMaxLineBytes sets the longest accepted line. Longer lines fail the
// call with ErrSourceRead.
//
// Errors:
//   - Panics when n <= 0 (programmer error).
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// WithBaseDir resolves relative source paths against dir. Absolute paths
// are used unchanged.
func WithBaseDir(dir string) Option {
	return func(o *Options) { o.baseDir = dir }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{maxLineBytes: DefaultMaxLineBytes}
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// decoder returns the transformer used to decode the raw source bytes.
func (o Options) decoder() transform.Transformer {
	if o.enc != nil {
		return o.enc.NewDecoder()
	}

	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}
