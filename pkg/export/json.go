package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/model"
)

// NodeJSON builds the generic structured record for one node. Typed
// attributes are decoded to their native JSON representation; extra
// attributes, when given, are merged on top.
func NodeJSON(node *model.NodeData, extra []model.Attribute) (map[string]any, error) {
	reads := make([]string, len(node.Reads))
	for i, r := range node.Reads {
		reads[i] = r.String()
	}

	data := map[string]any{
		"id":        node.ID,
		"chrom":     node.ReferenceID,
		"ref_start": node.ReferenceStart(),
		"ref_end":   node.ReferenceEnd(),
		"strand":    node.Strand.String(),
		"exons":     fmt.Sprintf("[%s]", node.Exons),
		"reads":     reads,
	}
	for _, attr := range node.Attributes {
		data[attr.Tag] = attr.Value.Any()
	}
	for _, attr := range extra {
		data[attr.Tag] = attr.Value.Any()
	}
	return map[string]any{"data": data}, nil
}

// WriteJSON renders every node of the collection as one JSON object per
// line. Returns the number of records written.
func WriteJSON(w io.Writer, c *graph.Collection) (int, error) {
	enc := json.NewEncoder(w)
	written := 0
	for _, sec := range c.Sections() {
		for _, node := range sec.Nodes() {
			record, err := NodeJSON(node, []model.Attribute{
				{Tag: "section_id", Value: model.StringValue(sec.ID)},
			})
			if err != nil {
				return written, err
			}
			if err := enc.Encode(record); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
