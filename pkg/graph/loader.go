package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/snappy"

	"github.com/calder-bio/tsg/pkg/logging"
	"github.com/calder-bio/tsg/pkg/parser"
)

// maxLineBytes bounds scanner buffers; node records can carry full
// transcript sequences.
const maxLineBytes = 64 * 1024 * 1024

// Loader streams transcript graph text into a Collection. Loading is a
// single sequential pass and fail-fast: the first malformed record aborts
// the whole file and no partial Collection is returned.
type Loader struct {
	logger logging.Logger
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithLogger injects a diagnostic logger. The default loader is silent.
func WithLogger(logger logging.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader. Without options it logs nothing.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load streams the input line by line, feeding each line to the record
// parser and dispatching node and edge records into the section opened by
// the most recent header. A node or edge before any header fails with
// ErrMissingSection.
func (l *Loader) Load(r io.Reader) (*Collection, error) {
	start := time.Now()
	collection := NewCollection()

	var current *Section
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		record, err := parser.ParseLine(lineNo, raw)
		if err != nil {
			return nil, &LoadError{Line: lineNo, Text: raw, Cause: err}
		}

		switch record.Kind {
		case parser.KindIgnorable:
			continue
		case parser.KindSectionHeader:
			current = collection.openSection(record.SectionID)
			l.logger.Debug("opened section", logging.SectionID(record.SectionID))
		case parser.KindNode:
			if current == nil {
				return nil, &LoadError{Line: lineNo, Text: raw, Cause: nodeError("Load", record.Node.ID, "", ErrMissingSection)}
			}
			if _, err := current.AddNode(record.Node); err != nil {
				return nil, &LoadError{Line: lineNo, Text: raw, Cause: err}
			}
		case parser.KindEdge:
			if current == nil {
				return nil, &LoadError{Line: lineNo, Text: raw, Cause: edgeError("Load", record.Edge.ID, "", ErrMissingSection)}
			}
			if _, err := current.AddEdge(record.Edge); err != nil {
				return nil, &LoadError{Line: lineNo, Text: raw, Cause: err}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	l.logger.Info("loaded transcript graph",
		logging.Int("sections", collection.Len()),
		logging.Int("nodes", collection.NodeCount()),
		logging.Int("edges", collection.EdgeCount()),
		logging.Latency(time.Since(start)),
	)
	return collection, nil
}

// LoadFile loads a transcript graph file from disk. Files with a .sz
// extension are read through a snappy frame decoder.
func (l *Loader) LoadFile(path string) (*Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(file)
	}
	return l.Load(r)
}

// Load parses a transcript graph from a reader with a default silent loader
func Load(r io.Reader) (*Collection, error) {
	return NewLoader().Load(r)
}

// LoadFile parses a transcript graph file with a default silent loader
func LoadFile(path string) (*Collection, error) {
	return NewLoader().LoadFile(path)
}
