package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calder-bio/tsg/pkg/config"
	"github.com/calder-bio/tsg/pkg/graph"
	"github.com/calder-bio/tsg/pkg/logging"
	"github.com/calder-bio/tsg/pkg/traverse"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	totalStyle   = lipgloss.NewStyle().Bold(true)
)

// runStats prints a per-section summary of the collection: node and edge
// counts, source/sink counts and enumerated paths.
func runStats(w io.Writer, input string, collection *graph.Collection, cfg *config.Config, log logging.Logger) error {
	start := time.Now()
	engine := traverse.NewEngine(traverse.WithLogger(log))
	results, err := engine.TraverseAll(collection, cfg.Workers)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Transcript graph summary: "+input))
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-20s %8s %8s %8s %8s %8s", "SECTION", "NODES", "EDGES", "SOURCES", "SINKS", "PATHS")))

	totalPaths := 0
	for i, sec := range collection.Sections() {
		sources, sinks := 0, 0
		for _, node := range sec.Nodes() {
			if node.HasSource() {
				sources++
			}
			if node.HasSink() {
				sinks++
			}
		}
		paths := len(results[i].Paths)
		totalPaths += paths
		fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%-20s %8d %8d %8d %8d %8d",
			sec.ID, sec.NodeCount(), sec.EdgeCount(), sources, sinks, paths)))
	}

	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("%-20s %8d %8d %8s %8s %8d",
		"TOTAL", collection.NodeCount(), collection.EdgeCount(), "", "", totalPaths)))
	log.Debug("stats computed", logging.Latency(time.Since(start)))
	return nil
}
