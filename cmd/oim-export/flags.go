package main

import (
	"flag"
	"fmt"

	"github.com/srappel/oimkit/config"
)

// CLIConfig holds command-line configuration. Flags override both the config
// file and environment variables.
type CLIConfig struct {
	ConfigPath  string
	RecordsPath string
	OutputPath  string
	SchemaPath  string
	LookupPath  string
	MetricsOut  string
	Flip        bool
	Strict      bool
	LogLevel    string
	LogFormat   string
	ShowVersion bool
}

func parseFlags() (*CLIConfig, bool) {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to JSON configuration file")
	flag.StringVar(&cfg.RecordsPath, "records", "", "CSV export of the index database (env: OIM_RECORDS_PATH)")
	flag.StringVar(&cfg.OutputPath, "out", "", "Output GeoJSON document path (env: OIM_OUTPUT_PATH)")
	flag.StringVar(&cfg.SchemaPath, "schema", "", "Validate the produced document against this JSON Schema (env: OIM_SCHEMA_PATH)")
	flag.StringVar(&cfg.LookupPath, "lookup", "", "YAML lookup-table overrides (env: OIM_LOOKUP_PATH)")
	flag.StringVar(&cfg.MetricsOut, "metrics-out", "", "Write a metrics snapshot to this path at end of run")
	flag.BoolVar(&cfg.Flip, "flip", false, "Swap label and title source fields (env: OIM_FLIP)")
	flag.BoolVar(&cfg.Strict, "strict", false, "Fail the run when any record is skipped (env: OIM_STRICT)")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error (env: OIM_LOG_LEVEL)")
	flag.StringVar(&cfg.LogFormat, "log-format", "", "Log format: json, text (env: OIM_LOG_FORMAT)")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.Parse()

	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return cfg, true
	}

	return cfg, false
}

// apply copies set flags onto the run configuration. Boolean flags only
// override when set on the command line, so a config-file "flip": true is
// not reset by the flag default.
func (c *CLIConfig) apply(cfg *config.Config) {
	if c.RecordsPath != "" {
		cfg.RecordsPath = c.RecordsPath
	}
	if c.OutputPath != "" {
		cfg.OutputPath = c.OutputPath
	}
	if c.SchemaPath != "" {
		cfg.SchemaPath = c.SchemaPath
	}
	if c.LookupPath != "" {
		cfg.LookupPath = c.LookupPath
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}

	flagSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })
	if flagSet["flip"] {
		cfg.Flip = c.Flip
	}
	if flagSet["strict"] {
		cfg.Strict = c.Strict
	}
}
