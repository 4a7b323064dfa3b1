package graph

import (
	"github.com/calder-bio/tsg/pkg/model"
)

// NodeIndex is the stable handle for a node within its Section. Indices are
// assigned in insertion order and never change; downstream structures hold
// indices, never pointers into the arena.
type NodeIndex int

// EdgeIndex is the stable handle for an edge within its Section
type EdgeIndex int

// Section is one independent named sub-graph: an insertion-ordered arena of
// nodes and edges with bidirectional id/index lookup. Sections are built once
// during load and are read-only afterwards, so concurrent readers need no
// coordination.
type Section struct {
	ID string

	nodes []*model.NodeData
	edges []*model.EdgeData

	nodeByID map[string]NodeIndex
	edgeByID map[string]EdgeIndex

	// outgoing edges per node, in the order the edges were added
	outgoing [][]EdgeIndex
}

// NewSection creates a new empty section with the given id
func NewSection(id string) *Section {
	return &Section{
		ID:       id,
		nodeByID: make(map[string]NodeIndex),
		edgeByID: make(map[string]EdgeIndex),
	}
}

// AddNode inserts a node and returns its stable index. Fails with
// ErrDuplicateNodeID if the id already exists in this section.
func (s *Section) AddNode(node *model.NodeData) (NodeIndex, error) {
	if _, exists := s.nodeByID[node.ID]; exists {
		return 0, nodeError("AddNode", node.ID, s.ID, ErrDuplicateNodeID)
	}
	idx := NodeIndex(len(s.nodes))
	s.nodes = append(s.nodes, node)
	s.outgoing = append(s.outgoing, nil)
	s.nodeByID[node.ID] = idx
	return idx, nil
}

// AddEdge inserts an edge and returns its stable index. Both endpoints must
// already be present in this section; an unresolved endpoint fails with
// ErrUnknownEndpoint.
func (s *Section) AddEdge(edge *model.EdgeData) (EdgeIndex, error) {
	if _, exists := s.edgeByID[edge.ID]; exists {
		return 0, edgeError("AddEdge", edge.ID, s.ID, ErrDuplicateEdgeID)
	}
	from, ok := s.nodeByID[edge.Source]
	if !ok {
		return 0, edgeError("AddEdge", edge.Source, s.ID, ErrUnknownEndpoint)
	}
	if _, ok := s.nodeByID[edge.Target]; !ok {
		return 0, edgeError("AddEdge", edge.Target, s.ID, ErrUnknownEndpoint)
	}
	idx := EdgeIndex(len(s.edges))
	s.edges = append(s.edges, edge)
	s.edgeByID[edge.ID] = idx
	s.outgoing[from] = append(s.outgoing[from], idx)
	return idx, nil
}

// NodeByID resolves a node id to its data and index
func (s *Section) NodeByID(id string) (*model.NodeData, NodeIndex, error) {
	idx, ok := s.nodeByID[id]
	if !ok {
		return nil, 0, nodeError("NodeByID", id, s.ID, ErrNodeNotFound)
	}
	return s.nodes[idx], idx, nil
}

// NodeByIndex resolves a stable index to its node data
func (s *Section) NodeByIndex(idx NodeIndex) (*model.NodeData, error) {
	if idx < 0 || int(idx) >= len(s.nodes) {
		return nil, &GraphError{Op: "NodeByIndex", Entity: "node", Section: s.ID, Cause: ErrNodeNotFound}
	}
	return s.nodes[idx], nil
}

// EdgeByID resolves an edge id to its data and index
func (s *Section) EdgeByID(id string) (*model.EdgeData, EdgeIndex, error) {
	idx, ok := s.edgeByID[id]
	if !ok {
		return nil, 0, edgeError("EdgeByID", id, s.ID, ErrEdgeNotFound)
	}
	return s.edges[idx], idx, nil
}

// EdgeByIndex resolves a stable index to its edge data
func (s *Section) EdgeByIndex(idx EdgeIndex) (*model.EdgeData, error) {
	if idx < 0 || int(idx) >= len(s.edges) {
		return nil, &GraphError{Op: "EdgeByIndex", Entity: "edge", Section: s.ID, Cause: ErrEdgeNotFound}
	}
	return s.edges[idx], nil
}

// Nodes returns all nodes in insertion order. The slice is shared; callers
// must not modify it.
func (s *Section) Nodes() []*model.NodeData {
	return s.nodes
}

// Edges returns all edges in insertion order. The slice is shared; callers
// must not modify it.
func (s *Section) Edges() []*model.EdgeData {
	return s.edges
}

// NodeCount returns the number of nodes
func (s *Section) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of edges
func (s *Section) EdgeCount() int {
	return len(s.edges)
}

// Outgoing returns the outgoing edge indices of a node, in the order the
// edges were added during parse. This order is what makes traversal output
// reproducible.
func (s *Section) Outgoing(idx NodeIndex) []EdgeIndex {
	if idx < 0 || int(idx) >= len(s.outgoing) {
		return nil
	}
	return s.outgoing[idx]
}

// EdgeEndpoints resolves an edge index to its source and target node indices
func (s *Section) EdgeEndpoints(idx EdgeIndex) (NodeIndex, NodeIndex, error) {
	edge, err := s.EdgeByIndex(idx)
	if err != nil {
		return 0, 0, err
	}
	// endpoints were validated by AddEdge, so these lookups cannot miss
	return s.nodeByID[edge.Source], s.nodeByID[edge.Target], nil
}

// Sources returns the indices of all nodes whose read evidence marks them as
// traversal sources, in insertion order.
func (s *Section) Sources() []NodeIndex {
	var sources []NodeIndex
	for i, node := range s.nodes {
		if node.HasSource() {
			sources = append(sources, NodeIndex(i))
		}
	}
	return sources
}
