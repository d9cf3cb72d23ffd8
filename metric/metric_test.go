package metric

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndSnapshot(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(registry))

	m.RecordsRead.Add(3)
	m.SheetsBuilt.Add(2)
	m.RecordsSkipped.WithLabelValues("missing_label").Inc()
	m.ExportDuration.Observe(0.25)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, registry))
	out := buf.String()

	assert.Contains(t, out, "oimkit_export_records_read_total 3")
	assert.Contains(t, out, "oimkit_export_sheets_built_total 2")
	assert.Contains(t, out, `oimkit_export_records_skipped_total{reason="missing_label"} 1`)
	assert.Contains(t, out, "oimkit_export_duration_seconds count=1 sum=0.25")
}

func TestDoubleRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(registry))
	assert.Error(t, m.Register(registry))
}
