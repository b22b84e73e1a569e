// Package dcmerr implements the two-kind error model the core reports
// failures through: INVALID for contract violations and NOMEM for failed
// allocations. Propagation is strictly local — every fallible operation in
// package dcm returns one of these and nothing retries or partially
// succeeds.
package dcmerr

import (
	"errors"
	"fmt"
)

// Code classifies an Error as one of the two kinds the core distinguishes.
type Code int

const (
	// Invalid marks a contract violation: unknown tag, VR mismatch, bad
	// length for a numeric array, oversized string value, out-of-range
	// index, locked container, duplicate tag, double assignment,
	// malformed Frame parameters, empty BOT, missing offsets.
	Invalid Code = iota
	// NoMem marks a failed allocation.
	NoMem
)

func (c Code) String() string {
	switch c {
	case Invalid:
		return "INVALID"
	case NoMem:
		return "NOMEM"
	default:
		return "UNKNOWN"
	}
}

// Error is the core's error value: a code, a short summary, and an
// optional detail naming the offending field or value.
type Error struct {
	Code    Code
	Summary string
	Detail  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Summary)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Summary, e.Detail)
}

// Invalidf builds an Invalid error from a formatted summary.
func Invalidf(detail string, format string, args ...any) *Error {
	return &Error{Code: Invalid, Summary: fmt.Sprintf(format, args...), Detail: detail}
}

// NoMemf builds a NoMem error from a formatted summary.
func NoMemf(detail string, format string, args ...any) *Error {
	return &Error{Code: NoMem, Summary: fmt.Sprintf(format, args...), Detail: detail}
}

// IsCode reports whether err is, or wraps, an *Error carrying the given
// Code, so callers can branch on error kind.
func IsCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}
