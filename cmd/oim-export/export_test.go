package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srappel/oimkit/config"
	"github.com/srappel/oimkit/errors"
	"github.com/srappel/oimkit/metric"
)

const sampleCSV = `RECORD,LOCATION,PUBLISHER,X1,X2,Y1,Y2,CATLOC,SCALE,PRODUCTION,DATE,YEAR1,YEAR1_TYPE,YEAR2,YEAR2_TYPE
NK 35-7,Milwaukee,Army Map Service,-90.0,-87.0,44.0,43.0,G4125 .U5,250000,2,1954,1954,97,1948,109
NK 35-8,Racine,,,,,,,,,,,,
,Missing Label,,,,,,,,,,,,
`

func writeSample(t *testing.T) (records, output string) {
	t.Helper()
	dir := t.TempDir()
	records = filepath.Join(dir, "geodex.csv")
	require.NoError(t, os.WriteFile(records, []byte(sampleCSV), 0644))
	return records, filepath.Join(dir, "index.geojson")
}

func testConfig(records, output string) *config.Config {
	cfg := config.Default()
	cfg.RecordsPath = records
	cfg.OutputPath = output
	return cfg
}

func newTestMetrics(t *testing.T) (*metric.Metrics, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	m := metric.NewMetrics()
	require.NoError(t, m.Register(registry))
	return m, registry
}

func TestExportEndToEnd(t *testing.T) {
	records, output := writeSample(t)
	cfg := testConfig(records, output)
	cfg.SchemaPath = "../../schemas/1.0.0.json"
	metrics, _ := newTestMetrics(t)

	require.NoError(t, export(cfg, metrics))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "FeatureCollection", parsed["type"])

	features := parsed["features"].([]any)
	require.Len(t, features, 2, "record without a label is skipped")

	first := features[0].(map[string]any)
	props := first["properties"].(map[string]any)
	assert.Equal(t, "NK 35-7", props["label"])
	assert.Equal(t, "colored", props["color"])
	assert.Equal(t, "1:250000", props["scale"])
	assert.Equal(t, "1954", props["datePub"])
	assert.Equal(t, "1948", props["dateSurvey"])
	assert.NotNil(t, first["geometry"])

	second := features[1].(map[string]any)
	assert.Equal(t, "NK 35-8", second["properties"].(map[string]any)["label"])
	assert.Nil(t, second["geometry"])
}

func TestExportStrictModeFails(t *testing.T) {
	records, output := writeSample(t)
	cfg := testConfig(records, output)
	cfg.Strict = true
	metrics, _ := newTestMetrics(t)

	err := export(cfg, metrics)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidRecord)
}

func TestExportFlip(t *testing.T) {
	records, output := writeSample(t)
	cfg := testConfig(records, output)
	cfg.Flip = true
	metrics, _ := newTestMetrics(t)

	require.NoError(t, export(cfg, metrics))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	features := parsed["features"].([]any)

	// Flip swaps label and title, so the third row (value only in LOCATION)
	// now builds a label and nothing is skipped.
	require.Len(t, features, 3)
	props := features[0].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "Milwaukee", props["label"])
	assert.Equal(t, "NK 35-7", props["title"])
	assert.Equal(t, "Racine", features[1].(map[string]any)["properties"].(map[string]any)["label"])
	assert.Equal(t, "Missing Label", features[2].(map[string]any)["properties"].(map[string]any)["label"])
}

func TestExportMissingRecords(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.csv"), filepath.Join(t.TempDir(), "o.geojson"))
	metrics, _ := newTestMetrics(t)

	err := export(cfg, metrics)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrResourceNotFound)
}

func TestExportMetricsCounts(t *testing.T) {
	records, output := writeSample(t)
	cfg := testConfig(records, output)
	metrics, registry := newTestMetrics(t)

	require.NoError(t, export(cfg, metrics))

	path := filepath.Join(t.TempDir(), "metrics.txt")
	require.NoError(t, metric.WriteSnapshotFile(path, registry))

	snapshot, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(snapshot), "oimkit_export_records_read_total 3")
	assert.Contains(t, string(snapshot), "oimkit_export_sheets_built_total 2")
	assert.Contains(t, string(snapshot), `oimkit_export_records_skipped_total{reason="missing_label"} 1`)
}
