package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/calder-bio/tsg/pkg/model"
)

// TestParseLine_SectionHeader tests header recognition
func TestParseLine_SectionHeader(t *testing.T) {
	record, err := ParseLine(1, "G\tgene42")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if record.Kind != KindSectionHeader {
		t.Fatalf("Expected section header, got kind %d", record.Kind)
	}
	if record.SectionID != "gene42" {
		t.Errorf("Expected section id gene42, got %q", record.SectionID)
	}
}

// TestParseLine_Node tests the full node grammar
func TestParseLine_Node(t *testing.T) {
	record, err := ParseLine(1, "N\tn1\tchr1:+:100-200,300-400\tr1:SO,r2:IN\tACGT\tptf:f:0.5")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if record.Kind != KindNode {
		t.Fatalf("Expected node record, got kind %d", record.Kind)
	}

	node := record.Node
	if node.ID != "n1" {
		t.Errorf("Expected id n1, got %q", node.ID)
	}
	if node.ReferenceID != "chr1" {
		t.Errorf("Expected reference chr1, got %q", node.ReferenceID)
	}
	if node.Strand != model.Forward {
		t.Errorf("Expected forward strand, got %s", node.Strand)
	}
	if node.Exons.Len() != 2 {
		t.Errorf("Expected 2 exons, got %d", node.Exons.Len())
	}
	if len(node.Reads) != 2 {
		t.Errorf("Expected 2 reads, got %d", len(node.Reads))
	}
	if node.Sequence != "ACGT" {
		t.Errorf("Expected sequence ACGT, got %q", node.Sequence)
	}
	if len(node.Attributes) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(node.Attributes))
	}
	f, err := node.Attributes[0].Value.AsFloat()
	if err != nil || f != 0.5 {
		t.Errorf("Expected float attribute 0.5, got %v (%v)", f, err)
	}
}

// TestParseLine_NodeWithoutSequence tests that trailing attributes are not
// mistaken for a sequence
func TestParseLine_NodeWithoutSequence(t *testing.T) {
	record, err := ParseLine(1, "N\tn1\tchr1:-:100-200\tr1:SO\tptc:i:3")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if record.Node.Sequence != "" {
		t.Errorf("Expected no sequence, got %q", record.Node.Sequence)
	}
	if len(record.Node.Attributes) != 1 {
		t.Errorf("Expected 1 attribute, got %d", len(record.Node.Attributes))
	}
	if record.Node.Strand != model.Reverse {
		t.Errorf("Expected reverse strand, got %s", record.Node.Strand)
	}
}

// TestParseLine_Edge tests the edge grammar
func TestParseLine_Edge(t *testing.T) {
	record, err := ParseLine(1, "E\te1\tn1\tn2\tr1:SO\tsvtype:Z:splice")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if record.Kind != KindEdge {
		t.Fatalf("Expected edge record, got kind %d", record.Kind)
	}

	edge := record.Edge
	if edge.ID != "e1" || edge.Source != "n1" || edge.Target != "n2" {
		t.Errorf("Unexpected edge %q: %q -> %q", edge.ID, edge.Source, edge.Target)
	}
	if len(edge.Reads) != 1 {
		t.Errorf("Expected 1 read, got %d", len(edge.Reads))
	}
	if len(edge.Attributes) != 1 {
		t.Errorf("Expected 1 attribute, got %d", len(edge.Attributes))
	}
}

// TestParseLine_Ignorable tests blank and comment lines
func TestParseLine_Ignorable(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "# a comment", "  # indented comment"} {
		record, err := ParseLine(1, line)
		if err != nil {
			t.Fatalf("ParseLine(%q) failed: %v", line, err)
		}
		if record.Kind != KindIgnorable {
			t.Errorf("Expected %q to be ignorable, got kind %d", line, record.Kind)
		}
	}
}

// TestParseLine_TooFewFields tests that a short node line produces a
// ParseError carrying the raw text and line number
func TestParseLine_TooFewFields(t *testing.T) {
	const raw = "N\tn1\tchr1:+:100-200"
	_, err := ParseLine(7, raw)
	if err == nil {
		t.Fatal("Expected error for short node line, got none")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if parseErr.Line != 7 {
		t.Errorf("Expected line 7, got %d", parseErr.Line)
	}
	if parseErr.Text != raw {
		t.Errorf("Expected raw text %q, got %q", raw, parseErr.Text)
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("Expected error message to carry the line number, got %q", err.Error())
	}
}

// TestParseLine_MalformedPayloads tests that bad field contents are rejected
func TestParseLine_MalformedPayloads(t *testing.T) {
	lines := []string{
		"N\tn1\tchr1:+\tr1:SO",             // location missing exons
		"N\tn1\tchr1:*:100-200\tr1:SO",     // bad strand
		"N\tn1\tchr1:+:100-abc\tr1:SO",     // bad coordinate
		"N\tn1\tchr1:+:100-200\tr1:XX",     // bad read identity
		"N\tn1\tchr1:+:100-200\tr1:SO\tACGT\tptf:f:zz", // bad attribute value
		"E\te1\tn1",                        // edge missing target
		"X\tn1\tfoo",                       // unknown record type
		"H\thdr",                           // not part of the grammar
		"L\te1\tn1\tn2",                    // not part of the grammar
	}
	for _, line := range lines {
		if _, err := ParseLine(1, line); err == nil {
			t.Errorf("Expected error for %q, got none", line)
		}
	}
}

// TestParseLine_NodeRoundTrip tests that rendering a parsed node reproduces
// the original record text
func TestParseLine_NodeRoundTrip(t *testing.T) {
	const raw = "N\tn1\tchr1:+:100-200,300-400\tr1:SO,r2:SI\tACGT\tptf:f:0.5\tgene:Z:BRCA1"
	record, err := ParseLine(1, raw)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if got := record.Node.String(); got != raw {
		t.Errorf("Round trip changed text:\n  in:  %q\n  out: %q", raw, got)
	}

	// and re-parsing the rendered text yields an equal node
	again, err := ParseLine(1, record.Node.String())
	if err != nil {
		t.Fatalf("Re-parse failed: %v", err)
	}
	if again.Node.String() != record.Node.String() {
		t.Error("Second round trip diverged")
	}
}
