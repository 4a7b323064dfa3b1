package graph

import (
	"github.com/calder-bio/tsg/pkg/model"
)

// Collection is an ordered mapping from section id to Section, preserving
// first-seen order from the input file. It owns all sections for a run; once
// finalized by the loader it is read-only.
type Collection struct {
	sections []*Section
	byID     map[string]*Section
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]*Section)}
}

// openSection returns the section for id, creating it if this is the first
// time the id is seen
func (c *Collection) openSection(id string) *Section {
	if sec, ok := c.byID[id]; ok {
		return sec
	}
	sec := NewSection(id)
	c.sections = append(c.sections, sec)
	c.byID[id] = sec
	return sec
}

// Section resolves a section id
func (c *Collection) Section(id string) (*Section, error) {
	sec, ok := c.byID[id]
	if !ok {
		return nil, &GraphError{Op: "Section", Entity: "section", ID: id, Cause: ErrSectionNotFound}
	}
	return sec, nil
}

// Sections returns all sections in first-seen order. The slice is shared;
// callers must not modify it.
func (c *Collection) Sections() []*Section {
	return c.sections
}

// Len returns the number of sections
func (c *Collection) Len() int {
	return len(c.sections)
}

// AllNodes returns every node across all sections, section by section in
// first-seen order. Used for diagnostics and whole-file renderers.
func (c *Collection) AllNodes() []*model.NodeData {
	var nodes []*model.NodeData
	for _, sec := range c.sections {
		nodes = append(nodes, sec.Nodes()...)
	}
	return nodes
}

// AllEdges returns every edge across all sections, section by section in
// first-seen order
func (c *Collection) AllEdges() []*model.EdgeData {
	var edges []*model.EdgeData
	for _, sec := range c.sections {
		edges = append(edges, sec.Edges()...)
	}
	return edges
}

// NodeCount returns the total number of nodes across all sections
func (c *Collection) NodeCount() int {
	n := 0
	for _, sec := range c.sections {
		n += sec.NodeCount()
	}
	return n
}

// EdgeCount returns the total number of edges across all sections
func (c *Collection) EdgeCount() int {
	n := 0
	for _, sec := range c.sections {
		n += sec.EdgeCount()
	}
	return n
}
