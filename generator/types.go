// SPDX-License-Identifier: MIT

// Package generator defines the attribute set, output modes and outlet
// contract of the vertex-file matrix generator.
package generator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/jitgen/matrix"
)

// Sentinel errors for generator operations.
var (
	// ErrNilOutlet indicates New was called without an Outlet.
	ErrNilOutlet = errors.New("generator: outlet is nil")
	// ErrBadOutputMode indicates an OutputMode outside the defined set.
	ErrBadOutputMode = errors.New("generator: unknown output mode")
)

// OutputMode selects what a trigger does, mirroring Jitter's outputmode attribute.
type OutputMode int

const (
	// OutputNone ignores triggers.
	OutputNone OutputMode = iota
	// OutputCalc reloads the source into the matrix, then outputs it.
	OutputCalc
	// OutputBypass outputs the current matrix without reloading.
	OutputBypass
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputNone:
		return "none"
	case OutputCalc:
		return "calc"
	case OutputBypass:
		return "bypass"
	default:
		return "unknown"
	}
}

func (m OutputMode) valid() bool { return m >= OutputNone && m <= OutputBypass }

// Defaults describe a 20×20 float32 vertex matrix with 8 planes
// (position xyz, texcoord st, normal xyz).
const (
	DefaultDimX       = 20
	DefaultDimY       = 20
	DefaultPlaneCount = 8
	DefaultGreeting   = "hello world"
	DefaultOutputMode = OutputCalc
)

// Attributes is the user-facing configuration of a Generator.
type Attributes struct {
	Dim        [2]int     // [x, y]
	PlaneCount int        // planes per cell
	Source     string     // path of the vertex text file
	Greeting   string     // logged on every output
	OutputMode OutputMode // what Bang does
}

// DefaultAttributes returns Attributes with the documented defaults and no source.
func DefaultAttributes() Attributes {
	return Attributes{
		Dim:        [2]int{DefaultDimX, DefaultDimY},
		PlaneCount: DefaultPlaneCount,
		Greeting:   DefaultGreeting,
		OutputMode: DefaultOutputMode,
	}
}

// Frame is one emitted matrix. Matrix is a private copy owned by the receiver.
type Frame struct {
	TraceID uuid.UUID
	Seq     uint64
	Time    time.Time
	Matrix  *matrix.Descriptor
}

// Outlet receives frames. Output is called synchronously from Bang.
type Outlet interface {
	Output(ctx context.Context, f Frame) error
}

// OutletFunc adapts a function to the Outlet interface.
type OutletFunc func(ctx context.Context, f Frame) error

// Output calls fn(ctx, f).
func (fn OutletFunc) Output(ctx context.Context, f Frame) error { return fn(ctx, f) }
