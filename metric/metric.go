// Package metric defines the pipeline metrics for an export run. There is no
// scrape endpoint: the pipeline is a batch process, so collectors are
// gathered once at end of run and written as a plain-text snapshot.
package metric

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics contains the export pipeline metrics.
type Metrics struct {
	RecordsRead      prometheus.Counter
	SheetsBuilt      prometheus.Counter
	RecordsSkipped   *prometheus.CounterVec
	ValidationErrors prometheus.Counter
	ExportDuration   prometheus.Histogram
}

// NewMetrics creates a Metrics instance with all pipeline collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "oimkit",
				Subsystem: "export",
				Name:      "records_read_total",
				Help:      "Total number of raw records read from the source",
			},
		),

		SheetsBuilt: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "oimkit",
				Subsystem: "export",
				Name:      "sheets_built_total",
				Help:      "Total number of sheets successfully built",
			},
		),

		RecordsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "oimkit",
				Subsystem: "export",
				Name:      "records_skipped_total",
				Help:      "Total number of records skipped, by reason",
			},
			[]string{"reason"},
		),

		ValidationErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "oimkit",
				Subsystem: "export",
				Name:      "validation_errors_total",
				Help:      "Total number of schema violations in the produced document",
			},
		),

		ExportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "oimkit",
				Subsystem: "export",
				Name:      "duration_seconds",
				Help:      "End-to-end export duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register registers all collectors with the given registry.
func (m *Metrics) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		m.RecordsRead,
		m.SheetsBuilt,
		m.RecordsSkipped,
		m.ValidationErrors,
		m.ExportDuration,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return fmt.Errorf("metric registration failed: %w", err)
		}
	}
	return nil
}

// WriteSnapshot gathers the registry and writes one line per sample in
// "name{labels} value" form, sorted by metric name for stable output.
func WriteSnapshot(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s%s %s\n", mf.GetName(), formatLabels(m), formatValue(mf.GetType(), m)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSnapshotFile writes the snapshot to path, closing the file on every
// exit path.
func WriteSnapshotFile(path string, gatherer prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteSnapshot(f, gatherer); err != nil {
		return err
	}
	return f.Close()
}

func formatLabels(m *dto.Metric) string {
	labels := m.GetLabel()
	if len(labels) == 0 {
		return ""
	}
	out := "{"
	for i, lp := range labels {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return out + "}"
}

func formatValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "unsupported"
	}
}
