package packet

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("packet is not a well-formed record")
	ErrFormat = errors.New("packet field has a bad shape")
)

// ParseError reports that the outer record could not be read at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse packet: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FormatError reports a field whose content does not match its grammar.
type FormatError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("packet field %q: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("packet field %q: %s", e.Field, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErr(field, reason string, err error) *FormatError {
	return &FormatError{Field: field, Reason: reason, Err: err}
}
