package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func findMetric(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("Metric %q not gathered", name)
	return nil
}

// TestRegistry_RecordLoad tests the load gauges and histogram
func TestRegistry_RecordLoad(t *testing.T) {
	r := NewRegistry()
	r.RecordLoad(2, 40, 38, 150*time.Millisecond)

	families, err := r.Gather().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	sections := findMetric(t, families, "tsg_sections_loaded")
	if got := sections.GetMetric()[0].GetGauge().GetValue(); got != 2 {
		t.Errorf("Expected 2 sections, got %v", got)
	}
	nodes := findMetric(t, families, "tsg_nodes_loaded")
	if got := nodes.GetMetric()[0].GetGauge().GetValue(); got != 40 {
		t.Errorf("Expected 40 nodes, got %v", got)
	}

	duration := findMetric(t, families, "tsg_load_duration_seconds")
	if got := duration.GetMetric()[0].GetHistogram().GetSampleCount(); got != 1 {
		t.Errorf("Expected 1 duration sample, got %d", got)
	}
}

// TestRegistry_RecordTraversal tests the per-section labeled metrics
func TestRegistry_RecordTraversal(t *testing.T) {
	r := NewRegistry()
	r.RecordTraversal("gene1", 3, time.Millisecond)
	r.RecordTraversal("gene1", 2, time.Millisecond)
	r.RecordTraversal("gene2", 1, time.Millisecond)

	families, err := r.Gather().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	paths := findMetric(t, families, "tsg_paths_enumerated_total")
	totals := map[string]float64{}
	for _, m := range paths.GetMetric() {
		for _, label := range m.GetLabel() {
			if label.GetName() == "section" {
				totals[label.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	if totals["gene1"] != 5 || totals["gene2"] != 1 {
		t.Errorf("Unexpected per-section totals: %v", totals)
	}
}

// TestRegistry_Counters tests error, violation and export counters
func TestRegistry_Counters(t *testing.T) {
	r := NewRegistry()
	r.RecordLoadError("parse")
	r.RecordLoadError("parse")
	r.RecordLoadError("io")
	r.RecordInvariantViolation()
	r.RecordExport("gtf", 12)

	families, err := r.Gather().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	errors := findMetric(t, families, "tsg_load_errors_total")
	if len(errors.GetMetric()) != 2 {
		t.Errorf("Expected 2 error kinds, got %d", len(errors.GetMetric()))
	}

	violations := findMetric(t, families, "tsg_invariant_violations_total")
	if got := violations.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("Expected 1 violation, got %v", got)
	}

	exported := findMetric(t, families, "tsg_records_exported_total")
	if got := exported.GetMetric()[0].GetCounter().GetValue(); got != 12 {
		t.Errorf("Expected 12 exported records, got %v", got)
	}
}

// TestDefault_IsSingleton tests that the process-wide registry is shared
func TestDefault_IsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Expected Default to return the same registry")
	}
}
