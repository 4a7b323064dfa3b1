package export

import (
	"fmt"
	"io"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/traverse"
)

// WriteTSG re-serializes a collection in the transcript graph text format.
// Output is deterministic: sections in first-seen order, nodes and edges in
// insertion order. Returns the number of records written.
func WriteTSG(w io.Writer, c *graph.Collection) (int, error) {
	records := 0
	for _, sec := range c.Sections() {
		if _, err := fmt.Fprintf(w, "G\t%s\n", sec.ID); err != nil {
			return records, err
		}
		records++
		for _, node := range sec.Nodes() {
			if _, err := fmt.Fprintln(w, node.String()); err != nil {
				return records, err
			}
			records++
		}
		for _, edge := range sec.Edges() {
			if _, err := fmt.Fprintln(w, edge.String()); err != nil {
				return records, err
			}
			records++
		}
	}
	return records, nil
}

// WritePaths renders enumerated paths as tab-separated P records, grouped by
// section in collection order. Returns the number of paths written.
func WritePaths(w io.Writer, c *graph.Collection, results []traverse.SectionPaths) (int, error) {
	written := 0
	for _, sp := range results {
		sec, err := c.Section(sp.SectionID)
		if err != nil {
			return written, err
		}
		for _, path := range sp.Paths {
			line, err := path.Render(sec)
			if err != nil {
				return written, err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
