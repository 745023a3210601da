// Package baseconv converts numeral literals between arbitrary bases
// through a fixed-width 128-bit canonical value. Parsing and rendering
// are independent pure functions: a literal in any base from 2 to 36 can
// be parsed to a Uint128, and a Uint128 can be rendered into any base
// from 2 to 33, with optional digit grouping and zero padding applied to
// the rendered string.
package baseconv

import (
	"fmt"
	"strings"

	"github.com/znielsen/numconv/core/errors"
)

// Base ranges supported by the digit alphabet 0-9 then A-Z.
const (
	// MinBase is the smallest usable base for both parsing and rendering.
	MinBase = 2
	// MaxParseBase is the largest base ParseLiteral accepts.
	MaxParseBase = 36
	// MaxRenderBase is the largest base Render accepts.
	MaxRenderBase = 33
)

// ParseLiteral interprets literal as an unsigned integer in the given
// base. Every occurrence of sep is stripped first, wherever it appears;
// separator placement is not validated. Letter digits are accepted in
// either case.
//
// An empty literal (before or after stripping) fails with ErrInputBase.
// A digit invalid for the base, or a value exceeding 128 bits, fails
// with ErrBaseConversion.
func ParseLiteral(literal string, base uint32, sep rune) (Uint128, error) {
	if sep != 0 {
		literal = strings.ReplaceAll(literal, string(sep), "")
	}
	if literal == "" {
		return Uint128{}, fmt.Errorf("no number to convert was provided: %w", errors.ErrInputBase)
	}
	if base < MinBase || base > MaxParseBase {
		return Uint128{}, &errors.BaseRangeError{Base: base, Min: MinBase, Max: MaxParseBase, Err: errors.ErrInputBase}
	}

	var v Uint128
	for _, r := range literal {
		d, ok := digitValue(r)
		if !ok || uint32(d) >= base {
			return Uint128{}, &errors.ConversionError{
				Literal: literal,
				Base:    base,
				Reason:  fmt.Sprintf("invalid digit %q", r),
			}
		}
		var overflow bool
		v, overflow = v.mulAdd(uint64(base), uint64(d))
		if overflow {
			return Uint128{}, &errors.ConversionError{
				Literal: literal,
				Base:    base,
				Reason:  "value exceeds 128 bits",
			}
		}
	}
	return v, nil
}

// digitValue maps a digit rune to its numeric value, accepting 0-9 and
// letters in either case for values 10 through 35.
func digitValue(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return uint8(r-'A') + 10, true
	case r >= 'a' && r <= 'z':
		return uint8(r-'a') + 10, true
	}
	return 0, false
}
