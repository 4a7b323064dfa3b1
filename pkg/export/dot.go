package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calder-bio/tsg/pkg/graph"
)

// SectionDOT renders one section as a Graphviz digraph. Node labels carry
// the segment's location summary; edge labels carry the edge id.
func SectionDOT(sec *graph.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", sec.ID)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box];\n")

	for _, node := range sec.Nodes() {
		label := fmt.Sprintf("%s\\n%s:%s:%s", node.ID, node.ReferenceID, node.Strand, node.Exons)
		fmt.Fprintf(&b, "  %q [label=\"%s\"];\n", node.ID, label)
	}
	for _, edge := range sec.Edges() {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", edge.Source, edge.Target, edge.ID)
	}

	b.WriteString("}\n")
	return b.String()
}

// WriteDOT writes one .dot file per section into dir, named after the
// section id. Returns the number of files written.
func WriteDOT(dir string, c *graph.Collection) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory %s: %w", dir, err)
	}
	written := 0
	for _, sec := range c.Sections() {
		path := filepath.Join(dir, sec.ID+".dot")
		if err := os.WriteFile(path, []byte(SectionDOT(sec)), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

// DOTDirFor derives the default DOT output directory for an input file:
// <stem>_dot next to the input.
func DOTDirFor(inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem+"_dot")
}
