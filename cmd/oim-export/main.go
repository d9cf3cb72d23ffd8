// Package main implements oim-export, which converts a CSV export of a
// cartographic index database into an OpenIndexMaps GeoJSON document.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srappel/oimkit/builder"
	"github.com/srappel/oimkit/config"
	"github.com/srappel/oimkit/errors"
	"github.com/srappel/oimkit/lookup"
	"github.com/srappel/oimkit/metric"
	"github.com/srappel/oimkit/record"
	"github.com/srappel/oimkit/schema"
	"github.com/srappel/oimkit/sheet"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "oim-export"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Export failed", "error", err, "class", errors.Classify(err).String())
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; missing files are not an error.
	_ = godotenv.Load()

	cliCfg, shouldExit := parseFlags()
	if shouldExit {
		return nil
	}

	cfg, err := resolveConfig(cliCfg)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	runID := uuid.NewString()
	slog.Info("Starting export",
		"run_id", runID,
		"records", cfg.RecordsPath,
		"output", cfg.OutputPath,
		"flip", cfg.Flip,
		"strict", cfg.Strict,
		"schema_version", cfg.SchemaVersion)

	registry := prometheus.NewRegistry()
	metrics := metric.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return err
	}

	start := time.Now()
	err = export(cfg, metrics)
	metrics.ExportDuration.Observe(time.Since(start).Seconds())

	if cliCfg.MetricsOut != "" {
		if merr := metric.WriteSnapshotFile(cliCfg.MetricsOut, registry); merr != nil {
			slog.Warn("Failed to write metrics snapshot", "path", cliCfg.MetricsOut, "error", merr)
		}
	}

	return err
}

// resolveConfig layers file config, environment overrides, and flags.
func resolveConfig(cliCfg *CLIConfig) (*config.Config, error) {
	cfg := config.Default()
	if cliCfg.ConfigPath != "" {
		loaded, err := config.LoadFile(cliCfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	cliCfg.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func export(cfg *config.Config, metrics *metric.Metrics) error {
	table := lookup.Default()
	if cfg.LookupPath != "" {
		loaded, err := lookup.Load(cfg.LookupPath)
		if err != nil {
			return err
		}
		table = loaded
		slog.Info("Loaded lookup overrides", "path", cfg.LookupPath)
	}

	src, err := record.OpenCSV(cfg.RecordsPath)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	b := builder.New(table)
	sheets, failures, err := b.BuildAll(src, cfg.Flip)
	if err != nil {
		return err
	}

	metrics.RecordsRead.Add(float64(len(sheets) + len(failures)))
	metrics.SheetsBuilt.Add(float64(len(sheets)))
	for _, f := range failures {
		metrics.RecordsSkipped.WithLabelValues("missing_label").Inc()
		slog.Warn("Skipped record", "index", f.Index, "field", f.Field, "reason", f.Err)
	}

	if len(failures) > 0 && cfg.Strict {
		return fmt.Errorf("strict mode: %d of %d records failed: %w",
			len(failures), len(sheets)+len(failures), errors.ErrInvalidRecord)
	}

	m := sheet.NewIndexMap()
	for _, s := range sheets {
		m.Add(s)
	}
	if err := m.WriteFile(cfg.OutputPath); err != nil {
		return err
	}
	slog.Info("Wrote index map", "path", cfg.OutputPath, "sheets", m.Len(), "skipped", len(failures))

	if cfg.SchemaPath != "" {
		report, err := schema.ValidateFile(cfg.OutputPath, cfg.SchemaPath)
		if err != nil {
			return err
		}
		if !report.Valid() {
			metrics.ValidationErrors.Add(float64(len(report)))
			for _, v := range report {
				slog.Error("Schema violation", "path", v.Path, "message", v.Message)
			}
			return fmt.Errorf("document has %d schema violations", len(report))
		}
		slog.Info("Document conforms to schema", "schema", cfg.SchemaPath)
	}

	return nil
}
