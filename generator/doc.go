// SPDX-License-Identifier: MIT

// Package generator wraps the fill package in a trigger-driven object: each
// Bang reloads a vertex text file into an owned float32 matrix and hands a
// copy to an Outlet.
//
// It models the surface of a Jitter matrix generator (dim, planecount,
// outputmode, a greeting attribute) as plain Go, without any host SDK:
//
//	out := generator.OutletFunc(func(ctx context.Context, f generator.Frame) error {
//	  render(f.Matrix)
//	  return nil
//	})
//	g, err := generator.New(out, generator.WithSource("torus.txt"))
//	...
//	err = g.Bang(ctx)
//
// A failed trigger produces exactly one error record on the configured
// slog.Logger (see SetLogger, WithLogger) and returns the error to the caller.
package generator
