// Package errors provides the terminal error kinds shared across numconv.
//
// Every failure during an invocation belongs to exactly one of three
// kinds: the input could not be resolved to a numeral, the numeral could
// not be converted in its declared base, or a requested target base was
// unusable. All three are terminal; the first one encountered aborts the
// remaining conversions.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure kinds
var (
	// ErrInputBase indicates no numeral was available to convert
	ErrInputBase = errors.New("input base error")
	// ErrBaseConversion indicates the numeral is invalid for its declared base
	ErrBaseConversion = errors.New("base conversion error")
	// ErrTargetBase indicates a requested output base is unusable
	ErrTargetBase = errors.New("target base error")
)

// ConversionError reports a numeral literal that could not be interpreted
// in its declared base.
type ConversionError struct {
	Literal string // Literal as supplied, separators already stripped
	Base    uint32 // Declared input base
	Reason  string // Human-readable cause (bad digit, overflow)
	Err     error  // Underlying error, if any
}

func (e *ConversionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("could not convert %q from base %d: %s", e.Literal, e.Base, e.Reason)
	}
	return fmt.Sprintf("could not convert %q from base %d", e.Literal, e.Base)
}

func (e *ConversionError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBaseConversion
}

// BaseRangeError reports a base outside the range a given operation
// supports. It unwraps to ErrTargetBase unless Err overrides the kind.
type BaseRangeError struct {
	Base uint32 // Offending base
	Min  uint32 // Smallest accepted base
	Max  uint32 // Largest accepted base
	Err  error  // Overriding sentinel, if any
}

func (e *BaseRangeError) Error() string {
	return fmt.Sprintf("invalid base %d: base must be between %d and %d inclusive", e.Base, e.Min, e.Max)
}

func (e *BaseRangeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrTargetBase
}
