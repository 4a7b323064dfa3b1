package traverse

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/logging"
)

// Engine enumerates every source-to-sink walk per section. Sections are
// immutable by the time traversal runs, so one engine may process distinct
// sections concurrently with no shared mutable state.
type Engine struct {
	logger logging.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithLogger injects a diagnostic logger. The default engine is silent.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a traversal engine
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// walk holds the mutable state of one depth-first exploration
type walk struct {
	section *graph.Section
	nodes   []graph.NodeIndex
	edges   []graph.EdgeIndex
	// onPath guards against revisiting a node within the same walk, which
	// bounds traversal to simple paths and terminates even on cyclic input
	onPath map[graph.NodeIndex]bool
	// emitted records node sequences already emitted for this section, so
	// parallel edges between the same node pair yield one path, not one per
	// edge
	emitted map[string]bool
	paths   []*Path
}

// EnumeratePaths returns every distinct source-to-sink path in the section.
//
// For every node marked as a source, a depth-first walk follows outgoing
// edges in the order they were added during parse, so emission order is
// deterministic for identical input. A walk is emitted only when it reaches
// a sink; dead ends and in-walk revisits are abandoned silently. Sinks with
// outgoing edges are emitted and then extended, so longer source-to-sink
// walks through an earlier sink are still found. The same ordered node
// sequence is never emitted twice: parallel edges between a node pair offer
// multiple walks over one sequence, and only the first is kept.
//
// Every emitted path is checked against the node/edge-count invariant. A
// violation aborts this section with an *InvariantError; other sections are
// unaffected.
func (e *Engine) EnumeratePaths(sec *graph.Section) ([]*Path, error) {
	start := time.Now()

	w := &walk{
		section: sec,
		onPath:  make(map[graph.NodeIndex]bool),
		emitted: make(map[string]bool),
	}
	for _, source := range sec.Sources() {
		if err := w.explore(source); err != nil {
			return nil, err
		}
	}

	e.logger.Debug("enumerated paths",
		logging.SectionID(sec.ID),
		logging.Count(len(w.paths)),
		logging.Latency(time.Since(start)),
	)
	return w.paths, nil
}

// explore extends the walk to node and recurses over its outgoing edges
func (w *walk) explore(node graph.NodeIndex) error {
	if w.onPath[node] {
		// cycle guard: abandon this branch, not the run
		return nil
	}
	w.onPath[node] = true
	w.nodes = append(w.nodes, node)

	data, err := w.section.NodeByIndex(node)
	if err != nil {
		return err
	}
	if data.HasSink() {
		if err := w.emit(); err != nil {
			return err
		}
	}

	for _, edgeIdx := range w.section.Outgoing(node) {
		_, target, err := w.section.EdgeEndpoints(edgeIdx)
		if err != nil {
			return err
		}
		w.edges = append(w.edges, edgeIdx)
		if err := w.explore(target); err != nil {
			return err
		}
		w.edges = w.edges[:len(w.edges)-1]
	}

	w.nodes = w.nodes[:len(w.nodes)-1]
	delete(w.onPath, node)
	return nil
}

// sequenceKey encodes the walk's ordered node indices for duplicate
// detection
func (w *walk) sequenceKey() string {
	var b strings.Builder
	for i, n := range w.nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(n)))
	}
	return b.String()
}

// emit snapshots the current walk as a completed path. A node sequence that
// was already emitted for this section is skipped.
func (w *walk) emit() error {
	key := w.sequenceKey()
	if w.emitted[key] {
		return nil
	}
	w.emitted[key] = true

	path := &Path{
		SectionID: w.section.ID,
		Nodes:     append([]graph.NodeIndex(nil), w.nodes...),
		Edges:     append([]graph.EdgeIndex(nil), w.edges...),
	}
	if err := path.Validate(); err != nil {
		return err
	}
	w.paths = append(w.paths, path)
	return nil
}

// SectionPaths pairs a section id with its enumerated paths
type SectionPaths struct {
	SectionID string
	Paths     []*Path
	// Duration is how long this section's enumeration took, independent of
	// the other sections running alongside it
	Duration time.Duration
}

// TraverseAll enumerates paths for every section in the collection, running
// sections concurrently on a worker pool. Results keep the collection's
// section order regardless of scheduling. An invariant violation in one
// section is surfaced in the joined error while the remaining sections'
// paths are still returned.
func (e *Engine) TraverseAll(c *graph.Collection, workers int) ([]SectionPaths, error) {
	sections := c.Sections()
	results := make([]SectionPaths, len(sections))
	errs := make([]error, len(sections))

	pool := NewWorkerPool(workers)
	for i, sec := range sections {
		i, sec := i, sec
		pool.Submit(func() {
			start := time.Now()
			paths, err := e.EnumeratePaths(sec)
			results[i] = SectionPaths{SectionID: sec.ID, Paths: paths, Duration: time.Since(start)}
			errs[i] = err
		})
	}
	pool.Wait()

	return results, errors.Join(errs...)
}
