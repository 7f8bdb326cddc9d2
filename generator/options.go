// SPDX-License-Identifier: MIT

package generator

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/jitgen/fill"
)

// Option configures a Generator at construction.
type Option func(*config)

type config struct {
	attrs    Attributes
	logger   *slog.Logger
	fillOpts []fill.Option
	now      func() time.Time
}

func defaultConfig() config {
	return config{attrs: DefaultAttributes(), now: time.Now}
}

// WithDim sets the matrix size. Negative values are reported by New.
func WithDim(x, y int) Option {
	return func(c *config) { c.attrs.Dim = [2]int{x, y} }
}

// WithPlaneCount overrides the forced 8-plane layout. Negative values are reported by New.
func WithPlaneCount(n int) Option {
	return func(c *config) { c.attrs.PlaneCount = n }
}

// WithSource sets the vertex file path.
func WithSource(path string) Option {
	return func(c *config) { c.attrs.Source = path }
}

// WithGreeting sets the message logged on every output.
func WithGreeting(s string) Option {
	return func(c *config) { c.attrs.Greeting = s }
}

// WithOutputMode sets the initial output mode. Unknown modes are reported by New.
func WithOutputMode(m OutputMode) Option {
	return func(c *config) { c.attrs.OutputMode = m }
}

// WithLogger gives this Generator its own logger instead of the package-wide one.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithFillOptions passes options through to every fill.Fill call.
func WithFillOptions(opts ...fill.Option) Option {
	return func(c *config) { c.fillOpts = append(c.fillOpts, opts...) }
}

// withClock replaces time.Now; used by tests.
func withClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}
