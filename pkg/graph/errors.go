package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrDuplicateNodeID = errors.New("duplicate node id")
	ErrDuplicateEdgeID = errors.New("duplicate edge id")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrMissingSection  = errors.New("record before any section header")
	ErrNodeNotFound    = errors.New("node not found")
	ErrEdgeNotFound    = errors.New("edge not found")
	ErrSectionNotFound = errors.New("section not found")
)

// GraphError provides structured error information for graph construction
// and lookup operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "AddNode", "AddEdge")
	Entity  string // Entity type (e.g., "node", "edge", "section")
	ID      string // Entity id (if applicable)
	Section string // Owning section id (if applicable)
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Section != "" && e.ID != "" {
		return fmt.Sprintf("%s %s %q in section %q: %v", e.Op, e.Entity, e.ID, e.Section, e.Cause)
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func nodeError(op, id, section string, cause error) error {
	return &GraphError{Op: op, Entity: "node", ID: id, Section: section, Cause: cause}
}

func edgeError(op, id, section string, cause error) error {
	return &GraphError{Op: op, Entity: "edge", ID: id, Section: section, Cause: cause}
}

// IsNotFound returns true if the error is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) ||
		errors.Is(err, ErrEdgeNotFound) ||
		errors.Is(err, ErrSectionNotFound)
}

// LoadError wraps any error raised while streaming a file into a Collection
// with the line where loading stopped. The load is fail-fast: the first
// LoadError aborts the whole file and no partial Collection is returned.
type LoadError struct {
	Line  int    // 1-based line number where loading stopped
	Text  string // Raw line text
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed at line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Cause
}
