// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/jitgen/fill"
	"github.com/katalvlaran/jitgen/matrix"
)

// Generator owns one float32 matrix and refreshes it from a vertex text file
// on every trigger.
//
// Concurrency: all methods are safe for concurrent use. mu is held across the
// fill, standing in for the host's matrix lock, so fill.Fill always sees
// exclusive access to the buffer. The outlet is called after mu is released.
type Generator struct {
	mu       sync.Mutex
	attrs    Attributes
	mat      *matrix.Descriptor
	seq      uint64
	outlet   Outlet
	logger   *slog.Logger
	fillOpts []fill.Option
	now      func() time.Time
}

// New creates a Generator that sends frames to outlet.
//
// Errors:
//   - ErrNilOutlet if outlet is nil.
//   - matrix.ErrInvalidDimensions for negative dims or plane count.
//   - ErrBadOutputMode for an unknown mode.
func New(outlet Outlet, opts ...Option) (*Generator, error) {
	if outlet == nil {
		return nil, ErrNilOutlet
	}
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if !c.attrs.OutputMode.valid() {
		return nil, fmt.Errorf("generator: mode %d: %w", int(c.attrs.OutputMode), ErrBadOutputMode)
	}
	mat, err := matrix.NewDense(c.attrs.Dim[matrix.AxisX], c.attrs.Dim[matrix.AxisY], c.attrs.PlaneCount)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	return &Generator{
		attrs:    c.attrs,
		mat:      mat,
		outlet:   outlet,
		logger:   c.logger,
		fillOpts: c.fillOpts,
		now:      c.now,
	}, nil
}

// log returns the per-generator logger or the package-wide one.
func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}

	return Logger()
}

// Bang is the trigger entry point; it is identical to OutputMatrix.
func (g *Generator) Bang(ctx context.Context) error {
	return g.OutputMatrix(ctx)
}

// OutputMatrix runs one trigger according to the current OutputMode:
//   - OutputNone: nothing happens.
//   - OutputCalc: reload the source into the matrix, then output a copy.
//   - OutputBypass: output a copy of the current matrix.
//
// A failed reload or outlet call logs exactly one error record and returns
// the error; after a failed reload the outlet is not called.
func (g *Generator) OutputMatrix(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	attrs := g.attrs
	if attrs.OutputMode == OutputNone {
		g.mu.Unlock()

		return nil
	}
	if attrs.OutputMode == OutputCalc {
		if err := fill.Fill(g.mat, attrs.Source, g.fillOpts...); err != nil {
			g.mu.Unlock()
			g.log().LogAttrs(ctx, slog.LevelError, "generator: matrix_calc failed",
				slog.String("source", attrs.Source),
				slog.Any("dim", attrs.Dim),
				slog.String("error", err.Error()))

			return fmt.Errorf("generator: matrix_calc: %w", err)
		}
	} else {
		g.log().LogAttrs(ctx, slog.LevelDebug, "generator: bypass output", slog.Any("dim", attrs.Dim))
	}
	g.seq++
	frame := Frame{
		TraceID: uuid.New(),
		Seq:     g.seq,
		Time:    g.now(),
		Matrix:  g.mat.Clone(),
	}
	g.mu.Unlock()

	g.log().LogAttrs(ctx, slog.LevelInfo, attrs.Greeting,
		slog.String("trace_id", frame.TraceID.String()),
		slog.Uint64("seq", frame.Seq))

	if err := g.outlet.Output(ctx, frame); err != nil {
		g.log().LogAttrs(ctx, slog.LevelError, "generator: output failed",
			slog.String("trace_id", frame.TraceID.String()),
			slog.String("error", err.Error()))

		return fmt.Errorf("generator: output: %w", err)
	}

	return nil
}

// Attributes returns a snapshot of the current attributes.
func (g *Generator) Attributes() Attributes {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.attrs
}

// Matrix returns a copy of the current matrix.
func (g *Generator) Matrix() *matrix.Descriptor {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.mat.Clone()
}

// SetDim resizes the matrix. The new matrix is zeroed.
// Returns matrix.ErrInvalidDimensions for negative sizes; the old matrix is kept.
func (g *Generator) SetDim(x, y int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.realloc(x, y, g.attrs.PlaneCount)
}

// SetPlaneCount changes planes per cell. The new matrix is zeroed.
func (g *Generator) SetPlaneCount(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.realloc(g.attrs.Dim[matrix.AxisX], g.attrs.Dim[matrix.AxisY], n)
}

// realloc assumes g.mu is held.
func (g *Generator) realloc(x, y, planes int) error {
	mat, err := matrix.NewDense(x, y, planes)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	g.mat = mat
	g.attrs.Dim = [2]int{x, y}
	g.attrs.PlaneCount = planes
	g.log().LogAttrs(context.Background(), slog.LevelDebug, "generator: matrix reallocated",
		slog.Any("dim", g.attrs.Dim), slog.Int("planecount", planes))

	return nil
}

// SetSource changes the vertex file path used by the next OutputCalc trigger.
func (g *Generator) SetSource(path string) {
	g.mu.Lock()
	g.attrs.Source = path
	g.mu.Unlock()
}

// SetGreeting changes the message logged on output.
func (g *Generator) SetGreeting(s string) {
	g.mu.Lock()
	g.attrs.Greeting = s
	g.mu.Unlock()
}

// SetOutputMode changes what subsequent triggers do.
func (g *Generator) SetOutputMode(m OutputMode) error {
	if !m.valid() {
		return fmt.Errorf("generator: mode %d: %w", int(m), ErrBadOutputMode)
	}
	g.mu.Lock()
	g.attrs.OutputMode = m
	g.mu.Unlock()

	return nil
}
