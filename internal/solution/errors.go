package solution

import (
	"errors"
	"fmt"
)

// Parse failures are deterministic and permanent: a malformed document fails
// the same way on every attempt, so none of these conditions is retried.
var (
	// ErrUnexpectedEOF reports a stream that ended where a required line or
	// closing marker was still expected.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidProjectHeader reports a `Project(...)` line that does not
	// match the expected token and delimiter sequence.
	ErrInvalidProjectHeader = errors.New("invalid project header")

	// ErrInvalidGUID reports a GUID field that is not a parseable identifier.
	ErrInvalidGUID = errors.New("invalid GUID")

	// ErrMalformedSection reports a section that was opened but not closed
	// before the input ended or an unexpected sibling line began.
	ErrMalformedSection = errors.New("malformed section")

	// ErrMalformedLine reports a single line whose expected delimiter is
	// missing from the remainder of the line.
	ErrMalformedLine = errors.New("malformed line")

	// ErrEmptyField reports an empty project name or path. It is raised by
	// construction, independent of the scan that extracted the field.
	ErrEmptyField = errors.New("empty field")
)

// ParseError decorates a parse failure with the 1-based line number it was
// detected on. It wraps one of the sentinel errors above, so callers match
// with errors.Is.
type ParseError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying error kind for errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// errAt wraps err with the line number a failure was detected on.
func errAt(line int, err error) error {
	return &ParseError{Line: line, Err: err}
}
