// Package statement parses brokerage and depository PDF statements into holdings.
package statement

import (
	"errors"
	"fmt"
)

// ErrUnparseable indicates the file could not be recognized or decoded as a
// supported statement. Callers map this to HTTP 422.
var ErrUnparseable = errors.New("statement unparseable")

// ParseError wraps ErrUnparseable with the offending filename and reason.
type ParseError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %s: %s: %v", e.Filename, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot parse %s: %s", e.Filename, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrUnparseable
}

func unparseable(filename, reason string, err error) error {
	return &ParseError{Filename: filename, Reason: reason, Err: err}
}
