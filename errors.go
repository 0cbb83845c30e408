package linebreak

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error classification for failures returned by
// this package, following §7's error taxonomy.
type Code string

const (
	// CodeInvalidInput means items is empty, does not start with a Box, or
	// does not end with a forced Penalty.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeNoSolution means the search ended with an empty active set and
	// no forced terminator to fall back on — a caller contract violation,
	// since a well-formed item stream always ends in a forced break.
	CodeNoSolution Code = "NO_SOLUTION"
)

// Error is a structured error carrying a [Code] and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap enables errors.Is/errors.As to see through to Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a [*Error] carrying the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the [Code] from err, or "" if err is not a [*Error].
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
