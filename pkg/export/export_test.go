package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/traverse"
)

const exportFixture = `G	g1
N	n1	chr1:+:100-200	r1:SO	ACGT
N	n2	chr1:+:300-400	r1:SI	TTGG	ptc:i:2
E	e1	n1	n2	r1:SO	svtype:Z:splice
`

func loadFixture(t *testing.T) (*graph.Collection, []traverse.SectionPaths) {
	t.Helper()
	collection, err := graph.Load(strings.NewReader(exportFixture))
	require.NoError(t, err)

	results, err := traverse.NewEngine().TraverseAll(collection, 1)
	require.NoError(t, err)
	return collection, results
}

// TestWriteTSG_RoundTrip tests that serialized output reloads into an
// equivalent collection
func TestWriteTSG_RoundTrip(t *testing.T) {
	collection, _ := loadFixture(t)

	var buf bytes.Buffer
	records, err := WriteTSG(&buf, collection)
	require.NoError(t, err)
	assert.Equal(t, 4, records, "header + 2 nodes + 1 edge")

	reloaded, err := graph.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, collection.NodeCount(), reloaded.NodeCount())
	assert.Equal(t, collection.EdgeCount(), reloaded.EdgeCount())
	assert.Equal(t, collection.Len(), reloaded.Len())
}

// TestWritePaths tests P record output
func TestWritePaths(t *testing.T) {
	collection, results := loadFixture(t)

	var buf bytes.Buffer
	written, err := WritePaths(&buf, collection, results)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, "P", fields[0])
	assert.Equal(t, traverse.Identity("n1-n2"), fields[1])
	assert.Equal(t, []string{"n1+", "e1+", "n2+"}, fields[2:])
}

// TestWriteFASTA tests sequence concatenation under the path identity
func TestWriteFASTA(t *testing.T) {
	collection, results := loadFixture(t)

	var buf bytes.Buffer
	written, err := WriteFASTA(&buf, collection, results)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	want := ">" + traverse.Identity("n1-n2") + "\nACGTTTGG\n"
	assert.Equal(t, want, buf.String())
}

// TestWriteFASTA_MissingSequence tests that a sequence-less segment fails
// the export
func TestWriteFASTA_MissingSequence(t *testing.T) {
	collection, err := graph.Load(strings.NewReader(`G	g1
N	n1	chr1:+:100-200	r1:SO
N	n2	chr1:+:300-400	r1:SI
E	e1	n1	n2
`))
	require.NoError(t, err)
	results, err := traverse.NewEngine().TraverseAll(collection, 1)
	require.NoError(t, err)

	_, err = WriteFASTA(io.Discard, collection, results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sequence")
}

// TestWriteVCF tests junction records and header
func TestWriteVCF(t *testing.T) {
	collection, results := loadFixture(t)

	var buf bytes.Buffer
	written, err := WriteVCF(&buf, collection, results)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "##fileformat=VCFv4.2\n"))
	assert.Contains(t, out, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n")
	assert.Contains(t, out, "chr1\t200\te1\tN\t<JUNCTION>\t.\t.\tEDGE=e1;MATE=n2;SVTYPE=splice\n")
}

// TestWriteGTF tests transcript and exon lines
func TestWriteGTF(t *testing.T) {
	collection, results := loadFixture(t)

	var buf bytes.Buffer
	written, err := WriteGTF(&buf, collection, results)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	id := traverse.Identity("n1-n2")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "transcript line + one exon line per segment")

	assert.Equal(t, ".\ttsg\ttranscript\t.\t.\t.\t.\t.\ttranscript_id \""+id+"\";", lines[0])
	assert.Equal(t, "chr1\ttsg\texon\t100\t200\t.\t+\t.\texon_id \"001\"; transcript_id \""+id+"\"; segment_id \"001\";", lines[1])
	assert.Contains(t, lines[2], "chr1\ttsg\texon\t300\t400\t.\t+\t.\texon_id \"001\"; ptc \"2\";")
	assert.Contains(t, lines[2], "segment_id \"002\";")
}

// TestWriteJSON tests the per-node record stream
func TestWriteJSON(t *testing.T) {
	collection, _ := loadFixture(t)

	var buf bytes.Buffer
	written, err := WriteJSON(&buf, collection)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	data := first["data"]
	assert.Equal(t, "n1", data["id"])
	assert.Equal(t, "chr1", data["chrom"])
	assert.Equal(t, "+", data["strand"])
	assert.Equal(t, "g1", data["section_id"])
	assert.Equal(t, float64(100), data["ref_start"])
	assert.Equal(t, float64(200), data["ref_end"])

	var second map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, float64(2), second["data"]["ptc"], "typed attribute decoded to native JSON")
}

// TestSectionDOT tests the Graphviz rendering
func TestSectionDOT(t *testing.T) {
	collection, _ := loadFixture(t)
	sec, err := collection.Section("g1")
	require.NoError(t, err)

	dot := SectionDOT(sec)
	assert.Contains(t, dot, `digraph "g1" {`)
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `"n1" [label="n1\nchr1:+:100-200"];`)
	assert.Contains(t, dot, `"n1" -> "n2" [label="e1"];`)
}

// TestWriteDOT tests the one-file-per-section layout
func TestWriteDOT(t *testing.T) {
	collection, _ := loadFixture(t)

	dir := t.TempDir()
	written, err := WriteDOT(dir, collection)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	content, err := os.ReadFile(filepath.Join(dir, "g1.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"n1" -> "n2"`)
}

// TestDOTDirFor tests output-directory derivation
func TestDOTDirFor(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "sample_dot"), DOTDirFor(filepath.Join("data", "sample.tsg")))
	assert.Equal(t, "sample_dot", DOTDirFor("sample.tsg"))
}

// TestCreateOutput_Snappy tests that .sz output is snappy framed and
// readable back
func TestCreateOutput_Snappy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "graph.tsg.sz")

	w, err := CreateOutput(path, false)
	require.NoError(t, err)
	_, err = w.Write([]byte(exportFixture))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := io.ReadAll(snappy.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, exportFixture, string(decoded))
}

// TestCreateOutput_Plain tests uncompressed output
func TestCreateOutput_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.tsg")

	w, err := CreateOutput(path, false)
	require.NoError(t, err)
	_, err = w.Write([]byte("G\tg1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "G\tg1\n", string(content))
}
