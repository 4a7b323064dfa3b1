package model

import (
	"strings"
)

// NodeData is a vertex in the transcript segment graph: a genomic segment
// with exon structure and supporting reads. Immutable after construction.
type NodeData struct {
	ID          string
	ReferenceID string
	Strand      Strand
	Exons       Exons
	Reads       []ReadData
	// Sequence is the optional literal sequence; empty means absent
	Sequence string
	// Attributes keep insertion order so rendering is deterministic
	Attributes []Attribute
}

// ReferenceStart returns the start of the first exon
func (n *NodeData) ReferenceStart() uint64 {
	return n.Exons.First().Start
}

// ReferenceEnd returns the end of the last exon
func (n *NodeData) ReferenceEnd() uint64 {
	return n.Exons.Last().End
}

// Attribute returns the attribute with the given tag
func (n *NodeData) Attribute(tag string) (Attribute, bool) {
	for _, a := range n.Attributes {
		if a.Tag == tag {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasSource reports whether any supporting read seeds traversal
func (n *NodeData) HasSource() bool {
	for _, r := range n.Reads {
		if r.Identity == ReadSource {
			return true
		}
	}
	return false
}

// HasSink reports whether any supporting read terminates traversal
func (n *NodeData) HasSink() bool {
	for _, r := range n.Reads {
		if r.Identity == ReadSink {
			return true
		}
	}
	return false
}

// String renders the node as a tab-separated N record:
//
//	N  <id>  <reference>:<strand>:<exons>  <reads>  [<sequence>]  [attrs...]
func (n *NodeData) String() string {
	fields := []string{
		"N",
		n.ID,
		n.ReferenceID + ":" + n.Strand.String() + ":" + n.Exons.String(),
		FormatReads(n.Reads),
	}
	if n.Sequence != "" {
		fields = append(fields, n.Sequence)
	}
	for _, attr := range n.Attributes {
		fields = append(fields, attr.String())
	}
	return strings.Join(fields, "\t")
}

// EdgeData is a directed splice/connection relationship between two nodes of
// the same section. Immutable after construction.
type EdgeData struct {
	ID     string
	Source string
	Target string
	Reads  []ReadData
	// Attributes keep insertion order so rendering is deterministic
	Attributes []Attribute
}

// Attribute returns the attribute with the given tag
func (e *EdgeData) Attribute(tag string) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Tag == tag {
			return a, true
		}
	}
	return Attribute{}, false
}

// String renders the edge as a tab-separated E record:
//
//	E  <id>  <source>  <target>  [<reads>]  [attrs...]
func (e *EdgeData) String() string {
	fields := []string{"E", e.ID, e.Source, e.Target}
	if len(e.Reads) > 0 {
		fields = append(fields, FormatReads(e.Reads))
	}
	for _, attr := range e.Attributes {
		fields = append(fields, attr.String())
	}
	return strings.Join(fields, "\t")
}
