package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/calder-bio/tsg/pkg/config"
	"github.com/calder-bio/tsg/pkg/export"
	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/logging"
	"github.com/calder-bio/tsg/pkg/metrics"
	"github.com/calder-bio/tsg/pkg/traverse"
)

const usage = `tsg - transcript segment graph toolkit

Usage:
  tsg <command> [flags]

Commands:
  parse     Parse a transcript graph file and report its shape
  traverse  Enumerate all source-to-sink paths as P records
  dot       Export one Graphviz file per section
  gtf       Export enumerated paths as GTF transcripts
  fa        Export enumerated path sequences as FASTA
  vcf       Export path junctions as VCF records
  json      Export node records as JSON lines
  stats     Summarize a transcript graph file

Common flags:
  -i <file>    input transcript graph file (.tsg or .tsg.sz)
  -o <file>    output file (default: stdout)
  -c <file>    YAML configuration file
  -v           verbose (debug) logging
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	input := fs.String("i", "", "input transcript graph file")
	output := fs.String("o", "", "output file (default: stdout)")
	configPath := fs.String("c", "", "YAML configuration file")
	verbose := fs.Bool("v", false, "verbose (debug) logging")
	fs.Parse(os.Args[2:])

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsg: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if *verbose {
		logger.SetLevel(logging.DebugLevel)
	}
	log := logger.With(logging.String("run_id", uuid.NewString()))

	if *input == "" {
		fmt.Fprintln(os.Stderr, "tsg: -i <file> is required")
		os.Exit(2)
	}

	if err := run(cmd, *input, *output, cfg, log); err != nil {
		log.Error("command failed", logging.String("command", cmd), logging.Error(err))
		os.Exit(1)
	}
}

func run(cmd, input, output string, cfg *config.Config, log logging.Logger) error {
	start := time.Now()
	collection, err := graph.NewLoader(graph.WithLogger(log)).LoadFile(input)
	if err != nil {
		metrics.Default().RecordLoadError(errorKind(err))
		return err
	}
	metrics.Default().RecordLoad(collection.Len(), collection.NodeCount(), collection.EdgeCount(), time.Since(start))

	switch cmd {
	case "parse":
		log.Info("parsed transcript graph",
			logging.FilePath(input),
			logging.Int("sections", collection.Len()),
			logging.Int("nodes", collection.NodeCount()),
			logging.Int("edges", collection.EdgeCount()),
		)
		return nil
	case "dot":
		dir := output
		if dir == "" {
			dir = export.DOTDirFor(input)
		}
		if cfg.Output.Directory != "" {
			dir = cfg.Output.Directory
		}
		files, err := export.WriteDOT(dir, collection)
		if err != nil {
			return err
		}
		metrics.Default().RecordExport("dot", files)
		log.Info("wrote DOT files", logging.FilePath(dir), logging.Count(files))
		return nil
	case "json":
		return withOutput(output, cfg, func(w io.Writer) error {
			records, err := export.WriteJSON(w, collection)
			metrics.Default().RecordExport("json", records)
			return err
		})
	case "stats":
		return runStats(os.Stdout, input, collection, cfg, log)
	case "traverse", "gtf", "fa", "vcf":
		results, err := traversePaths(collection, cfg, log)
		if err != nil {
			return err
		}
		return withOutput(output, cfg, func(w io.Writer) error {
			var records int
			var werr error
			switch cmd {
			case "traverse":
				records, werr = export.WritePaths(w, collection, results)
			case "gtf":
				records, werr = export.WriteGTF(w, collection, results)
			case "fa":
				records, werr = export.WriteFASTA(w, collection, results)
			case "vcf":
				records, werr = export.WriteVCF(w, collection, results)
			}
			metrics.Default().RecordExport(cmd, records)
			return werr
		})
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// traversePaths enumerates paths for all sections on the configured worker
// count. Invariant violations are engine defects: they are surfaced and
// counted, and abort the run before any output is written.
func traversePaths(collection *graph.Collection, cfg *config.Config, log logging.Logger) ([]traverse.SectionPaths, error) {
	start := time.Now()
	engine := traverse.NewEngine(traverse.WithLogger(log))
	results, err := engine.TraverseAll(collection, cfg.Workers)
	if err != nil {
		metrics.Default().RecordInvariantViolation()
		return nil, err
	}

	total := 0
	for _, sp := range results {
		total += len(sp.Paths)
		metrics.Default().RecordTraversal(sp.SectionID, len(sp.Paths), sp.Duration)
	}
	log.Info("enumerated paths", logging.Int("paths", total), logging.Latency(time.Since(start)))
	return results, nil
}

// withOutput runs fn against the output file, or stdout when none is given
func withOutput(output string, cfg *config.Config, fn func(io.Writer) error) error {
	if output == "" {
		return fn(os.Stdout)
	}
	w, err := export.CreateOutput(output, cfg.Output.Compress)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// errorKind maps a load failure to a metrics label
func errorKind(err error) string {
	var loadErr *graph.LoadError
	if errors.As(err, &loadErr) {
		return "parse"
	}
	return "io"
}
