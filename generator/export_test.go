// SPDX-License-Identifier: MIT

package generator

// WithClock exposes withClock to generator_test.
var WithClock = withClock
