// Package export renders finished graph collections and enumerated paths
// into external formats. Renderers are read-only consumers of the core
// model: they resolve indices through explicitly passed sections and never
// mutate graph state.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
)

// fileWriter pairs a writer with the closers that must run in order
type fileWriter struct {
	io.Writer
	closers []io.Closer
}

// Close flushes and closes the underlying chain
func (f *fileWriter) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CreateOutput opens path for writing, creating parent directories. When
// compress is true or the path ends in .sz the stream is snappy-framed.
func CreateOutput(path string, compress bool) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if compress || strings.HasSuffix(path, ".sz") {
		sw := snappy.NewBufferedWriter(file)
		return &fileWriter{Writer: sw, closers: []io.Closer{sw, file}}, nil
	}
	return file, nil
}
