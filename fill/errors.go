// SPDX-License-Identifier: MIT

package fill

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError via errors.Is.
	ErrParse = errors.New("fill: malformed numeric token")

	// ErrSourceRead indicates an I/O failure after the source was opened,
	// including a line longer than the configured maximum.
	ErrSourceRead = errors.New("fill: source read failed")
)

// ParseError reports a token that is not a valid float literal.
// Line and Column are 1-based; Column is the byte offset of the token's first
// character within the decoded line. Plane is the destination plane index.
type ParseError struct {
	Line   int
	Column int
	Plane  int
	Token  string
	Err    error // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fill: line %d, column %d (plane %d): invalid float %q", e.Line, e.Column, e.Plane, e.Token)
}

// Is makes errors.Is(err, ErrParse) hold for any *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Unwrap exposes the strconv error (ErrSyntax / ErrRange).
func (e *ParseError) Unwrap() error { return e.Err }
