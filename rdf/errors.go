package rdf

import (
	"errors"
	"fmt"
)

// Common codec errors.
var (
	// ErrUnknownFormat is returned for a format name the codec does not
	// support.
	ErrUnknownFormat = errors.New("unknown serialization format")
)

// ParseError describes a syntax error in Turtle-family input. Line and
// Column are 1-based and locate the offending token. A Parse that fails
// with a ParseError leaves its target store untouched.
type ParseError struct {
	Format Format
	Line   int
	Column int
	Msg    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: line %d, column %d: %s", e.Format, e.Line, e.Column, e.Msg)
}

// SerializeError describes an encoding failure.
type SerializeError struct {
	Format Format
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *SerializeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serialize %s: %s: %v", e.Format, e.Msg, e.Err)
	}
	return fmt.Sprintf("serialize %s: %s", e.Format, e.Msg)
}

// Unwrap returns the underlying cause, if any.
func (e *SerializeError) Unwrap() error { return e.Err }
