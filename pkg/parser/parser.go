// Package parser turns single lines of the transcript segment graph text
// format into typed records. It knows nothing about graphs: dispatching
// records into sections is the loader's job.
package parser

import (
	"strings"

	"github.com/calder-bio/tsg/pkg/model"
)

// RecordKind selects which payload a Record carries
type RecordKind uint8

const (
	// KindIgnorable is a blank or comment line
	KindIgnorable RecordKind = iota
	// KindSectionHeader introduces a new sub-graph
	KindSectionHeader
	// KindNode carries a NodeData payload
	KindNode
	// KindEdge carries an EdgeData payload
	KindEdge
)

// Record is one parsed input line
type Record struct {
	Kind      RecordKind
	SectionID string
	Node      *model.NodeData
	Edge      *model.EdgeData
}

// ParseLine parses one raw input line. Tokenization is whitespace-delimited
// and the first token selects the record kind. Any malformed line returns a
// *ParseError carrying the 1-based line number and the raw text; no partial
// record is ever returned.
func ParseLine(lineNo int, raw string) (Record, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Record{Kind: KindIgnorable}, nil
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "G":
		if len(fields) < 2 {
			return Record{}, newParseError(lineNo, raw, "section header is missing an identifier")
		}
		return Record{Kind: KindSectionHeader, SectionID: fields[1]}, nil
	case "N":
		node, err := parseNode(fields)
		if err != nil {
			return Record{}, wrapParseError(lineNo, raw, err)
		}
		return Record{Kind: KindNode, Node: node}, nil
	case "E":
		edge, err := parseEdge(fields)
		if err != nil {
			return Record{}, wrapParseError(lineNo, raw, err)
		}
		return Record{Kind: KindEdge, Edge: edge}, nil
	default:
		return Record{}, newParseError(lineNo, raw, "unknown record type "+fields[0])
	}
}

// parseNode decodes N <id> <reference>:<strand>:<exons> <reads> [<sequence>] [attrs...]
func parseNode(fields []string) (*model.NodeData, error) {
	if len(fields) < 4 {
		return nil, errFieldCount("node", 4, len(fields))
	}

	node := &model.NodeData{ID: fields[1]}

	location := fields[2]
	exonSep := strings.LastIndexByte(location, ':')
	if exonSep <= 0 {
		return nil, errMalformedLocation(location)
	}
	strandSep := strings.LastIndexByte(location[:exonSep], ':')
	if strandSep <= 0 {
		return nil, errMalformedLocation(location)
	}
	node.ReferenceID = location[:strandSep]

	strand, err := model.ParseStrand(location[strandSep+1 : exonSep])
	if err != nil {
		return nil, err
	}
	node.Strand = strand

	exons, err := model.ParseExons(location[exonSep+1:])
	if err != nil {
		return nil, err
	}
	node.Exons = exons

	reads, err := model.ParseReads(fields[3])
	if err != nil {
		return nil, err
	}
	node.Reads = reads

	for _, field := range fields[4:] {
		if model.IsAttributeToken(field) {
			attr, err := model.ParseAttribute(field)
			if err != nil {
				return nil, err
			}
			node.Attributes = append(node.Attributes, attr)
			continue
		}
		if node.Sequence != "" || len(node.Attributes) > 0 {
			return nil, errUnexpectedToken(field)
		}
		node.Sequence = field
	}
	return node, nil
}

// parseEdge decodes E <id> <source> <target> [<reads>] [attrs...]
func parseEdge(fields []string) (*model.EdgeData, error) {
	if len(fields) < 4 {
		return nil, errFieldCount("edge", 4, len(fields))
	}

	edge := &model.EdgeData{
		ID:     fields[1],
		Source: fields[2],
		Target: fields[3],
	}

	for _, field := range fields[4:] {
		if model.IsAttributeToken(field) {
			attr, err := model.ParseAttribute(field)
			if err != nil {
				return nil, err
			}
			edge.Attributes = append(edge.Attributes, attr)
			continue
		}
		if edge.Reads != nil || len(edge.Attributes) > 0 {
			return nil, errUnexpectedToken(field)
		}
		reads, err := model.ParseReads(field)
		if err != nil {
			return nil, err
		}
		edge.Reads = reads
	}
	return edge, nil
}
