package parser

import (
	"fmt"
)

// ParseError describes a malformed record. It carries the 1-based line
// number and the raw line text so callers can report full context.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Text   string // Raw line text as read
	Reason string // What made the line malformed
	Cause  error  // Underlying error, if any
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error at line %d: %v (line: %q)", e.Line, e.Cause, e.Text)
	}
	return fmt.Sprintf("parse error at line %d: %s (line: %q)", e.Line, e.Reason, e.Text)
}

// Unwrap returns the underlying cause for error chain support
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(line int, text, reason string) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: reason}
}

func wrapParseError(line int, text string, cause error) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: cause.Error(), Cause: cause}
}

func errFieldCount(kind string, want, got int) error {
	return fmt.Errorf("%s record needs at least %d fields, got %d", kind, want, got)
}

func errMalformedLocation(loc string) error {
	return fmt.Errorf("invalid location %q: want reference:strand:exons", loc)
}

func errUnexpectedToken(tok string) error {
	return fmt.Errorf("unexpected trailing token %q", tok)
}
