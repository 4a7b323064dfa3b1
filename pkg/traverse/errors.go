package traverse

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when an identity is requested for a path with no
// nodes
var ErrEmptyPath = errors.New("path has no nodes")

// InvariantError reports a path whose node and edge counts do not satisfy
// len(nodes) == len(edges) + 1. This is always a defect in the traversal
// engine, never a consequence of malformed input, and is kept distinct from
// parse-time errors so callers can tell the two failure classes apart.
type InvariantError struct {
	SectionID string
	Nodes     int
	Edges     int
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("structural invariant violated in section %q: %d nodes with %d edges (want nodes == edges+1)",
		e.SectionID, e.Nodes, e.Edges)
}
