package traverse

import (
	"strings"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/model"
)

// Path is a source-to-sink walk through one section, representing a
// candidate transcript. It stores only stable indices, never a reference to
// the owning section: any operation that needs node or edge data takes the
// section as an explicit parameter. That keeps paths cheap, copyable and
// free to outlive whatever produced them.
type Path struct {
	// SectionID names the section the indices belong to
	SectionID string
	// Nodes is the ordered node-index sequence
	Nodes []graph.NodeIndex
	// Edges connects consecutive nodes; always one shorter than Nodes
	Edges []graph.EdgeIndex
	// Attributes accumulated for the path (renderers attach transcript
	// metadata here)
	Attributes []model.Attribute

	// identity is computed on first request and cached
	identity string
}

// Len returns the number of nodes in the path
func (p *Path) Len() int {
	return len(p.Nodes)
}

// IsEmpty reports whether the path has no nodes
func (p *Path) IsEmpty() bool {
	return len(p.Nodes) == 0
}

// Validate checks the node/edge-count invariant. A non-empty path must have
// exactly one more node than edges.
func (p *Path) Validate() error {
	if p.IsEmpty() && len(p.Edges) == 0 {
		return nil
	}
	if len(p.Nodes) != len(p.Edges)+1 {
		return &InvariantError{SectionID: p.SectionID, Nodes: len(p.Nodes), Edges: len(p.Edges)}
	}
	return nil
}

// NodeIDs resolves the path's node indices to their ids in order
func (p *Path) NodeIDs(sec *graph.Section) ([]string, error) {
	ids := make([]string, 0, len(p.Nodes))
	for _, idx := range p.Nodes {
		node, err := sec.NodeByIndex(idx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, node.ID)
	}
	return ids, nil
}

// Identity derives the path's stable identifier from its node-id sequence.
// The result is cached; the same node sequence always yields the same
// 16-character identifier across runs and processes. Fails with ErrEmptyPath
// on a path with zero nodes.
func (p *Path) Identity(sec *graph.Section) (string, error) {
	if p.identity != "" {
		return p.identity, nil
	}
	if p.IsEmpty() {
		return "", ErrEmptyPath
	}
	ids, err := p.NodeIDs(sec)
	if err != nil {
		return "", err
	}
	p.identity = Identity(strings.Join(ids, "-"))
	return p.identity, nil
}

// Render formats the path as a tab-separated P record:
//
//	P  <identity>  <n1>+  <e1>+  <n2>+  ...  <nk>+
func (p *Path) Render(sec *graph.Section) (string, error) {
	id, err := p.Identity(sec)
	if err != nil {
		return "", err
	}
	fields := []string{"P", id}
	for i, nodeIdx := range p.Nodes {
		node, err := sec.NodeByIndex(nodeIdx)
		if err != nil {
			return "", err
		}
		fields = append(fields, node.ID+"+")
		if i < len(p.Edges) {
			edge, err := sec.EdgeByIndex(p.Edges[i])
			if err != nil {
				return "", err
			}
			fields = append(fields, edge.ID+"+")
		}
	}
	return strings.Join(fields, "\t"), nil
}
