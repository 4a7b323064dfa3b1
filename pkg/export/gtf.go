package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/model"
	"github.com/calder-bio/tsg/pkg/traverse"
)

// gtfSource is the fixed second column of every emitted GTF line
const gtfSource = "tsg"

// NodeGTF renders one exon line per exon of the node. Coordinates are
// written literally, the way the node recorded them. Extra attributes are
// appended after the node's own.
func NodeGTF(node *model.NodeData, extra []model.Attribute) string {
	lines := make([]string, 0, node.Exons.Len())
	for i, exon := range node.Exons.Exons {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\t%s\texon\t%d\t%d\t.\t%s\t.\t", node.ReferenceID, gtfSource, exon.Start, exon.End, node.Strand)
		fmt.Fprintf(&b, "exon_id \"%03d\"; ", i+1)
		for _, attr := range node.Attributes {
			fmt.Fprintf(&b, "%s \"%s\"; ", attr.Tag, attr.Value.Text())
		}
		for _, attr := range extra {
			fmt.Fprintf(&b, "%s \"%s\"; ", attr.Tag, attr.Value.Text())
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// PathGTF renders a path as a transcript line followed by the exon lines of
// each node, each carrying the transcript identity and its ordinal segment
// id.
func PathGTF(sec *graph.Section, path *traverse.Path) (string, error) {
	id, err := path.Identity(sec)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, ".\t%s\ttranscript\t.\t.\t.\t.\t.\ttranscript_id \"%s\";", gtfSource, id)
	for _, attr := range path.Attributes {
		fmt.Fprintf(&b, " %s \"%s\";", attr.Tag, attr.Value.Text())
	}

	for i, nodeIdx := range path.Nodes {
		node, err := sec.NodeByIndex(nodeIdx)
		if err != nil {
			return "", err
		}
		extra := []model.Attribute{
			{Tag: "transcript_id", Value: model.StringValue(id)},
			{Tag: "segment_id", Value: model.StringValue(fmt.Sprintf("%03d", i+1))},
		}
		b.WriteString("\n")
		b.WriteString(NodeGTF(node, extra))
	}
	return b.String(), nil
}

// WriteGTF renders every enumerated path as GTF. Returns the number of
// transcripts written.
func WriteGTF(w io.Writer, c *graph.Collection, results []traverse.SectionPaths) (int, error) {
	written := 0
	for _, sp := range results {
		sec, err := c.Section(sp.SectionID)
		if err != nil {
			return written, err
		}
		for _, path := range sp.Paths {
			block, err := PathGTF(sec, path)
			if err != nil {
				return written, err
			}
			if _, err := fmt.Fprintln(w, block); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
