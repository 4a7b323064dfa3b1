package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/traverse"
)

// PathSequence concatenates the literal sequences of the path's nodes. A
// node without a recorded sequence is an error: sequence export needs every
// segment spelled out.
func PathSequence(sec *graph.Section, path *traverse.Path) (string, error) {
	var b strings.Builder
	for _, nodeIdx := range path.Nodes {
		node, err := sec.NodeByIndex(nodeIdx)
		if err != nil {
			return "", err
		}
		if node.Sequence == "" {
			return "", fmt.Errorf("node %q has no sequence", node.ID)
		}
		b.WriteString(node.Sequence)
	}
	return b.String(), nil
}

// WriteFASTA renders every enumerated path as a FASTA record named by its
// identity. Returns the number of records written.
func WriteFASTA(w io.Writer, c *graph.Collection, results []traverse.SectionPaths) (int, error) {
	written := 0
	for _, sp := range results {
		sec, err := c.Section(sp.SectionID)
		if err != nil {
			return written, err
		}
		for _, path := range sp.Paths {
			id, err := path.Identity(sec)
			if err != nil {
				return written, err
			}
			seq, err := PathSequence(sec, path)
			if err != nil {
				return written, err
			}
			if _, err := fmt.Fprintf(w, ">%s\n%s\n", id, seq); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
