// SPDX-License-Identifier: MIT

package fill

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// field is one whitespace-delimited token and its 0-based byte offset.
type field struct {
	start int
	text  string
}

// splitFields appends up to limit tokens of line to dst[:0] and returns it.
// Whitespace follows unicode.IsSpace, as strings.Fields does; tokens past
// limit are never scanned.
// Complexity: O(len(line)) time, no allocation once dst has capacity.
func splitFields(line string, limit int, dst []field) []field {
	dst = dst[:0]
	start := -1
	for i := 0; i < len(line) && len(dst) < limit; {
		r, size := rune(line[i]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(line[i:])
		}
		if unicode.IsSpace(r) {
			if start >= 0 {
				dst = append(dst, field{start: start, text: line[start:i]})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 && len(dst) < limit {
		dst = append(dst, field{start: start, text: line[start:]})
	}

	return dst
}

// parseFloat32 parses a single token strictly: the whole token must be a
// valid float literal (no trailing garbage, unlike C's stof).
func parseFloat32(tok string) (float32, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, err
	}

	return float32(v), nil
}
