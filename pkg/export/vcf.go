package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/model"
	"github.com/calder-bio/tsg/pkg/traverse"
)

const vcfHeader = `##fileformat=VCFv4.2
##source=tsg
##INFO=<ID=EDGE,Number=1,Type=String,Description="Edge identifier">
##INFO=<ID=MATE,Number=1,Type=String,Description="Target segment identifier">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO`

// EdgeVCF renders an edge as one VCF record describing the junction between
// its endpoints. The position is the source segment's reference end.
func EdgeVCF(sec *graph.Section, edge *model.EdgeData) (string, error) {
	source, _, err := sec.NodeByID(edge.Source)
	if err != nil {
		return "", err
	}

	info := []string{
		"EDGE=" + edge.ID,
		"MATE=" + edge.Target,
	}
	for _, attr := range edge.Attributes {
		info = append(info, fmt.Sprintf("%s=%s", strings.ToUpper(attr.Tag), attr.Value.Text()))
	}

	return fmt.Sprintf("%s\t%d\t%s\tN\t<JUNCTION>\t.\t.\t%s",
		source.ReferenceID, source.ReferenceEnd(), edge.ID, strings.Join(info, ";")), nil
}

// WriteVCF renders the junctions of every enumerated path as VCF records,
// preceded by a fixed header. Returns the number of records written.
func WriteVCF(w io.Writer, c *graph.Collection, results []traverse.SectionPaths) (int, error) {
	if _, err := fmt.Fprintln(w, vcfHeader); err != nil {
		return 0, err
	}
	written := 0
	for _, sp := range results {
		sec, err := c.Section(sp.SectionID)
		if err != nil {
			return written, err
		}
		for _, path := range sp.Paths {
			for _, edgeIdx := range path.Edges {
				edge, err := sec.EdgeByIndex(edgeIdx)
				if err != nil {
					return written, err
				}
				record, err := EdgeVCF(sec, edge)
				if err != nil {
					return written, err
				}
				if _, err := fmt.Fprintln(w, record); err != nil {
					return written, err
				}
				written++
			}
		}
	}
	return written, nil
}
