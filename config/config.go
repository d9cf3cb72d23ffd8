// Package config defines the configuration for an export run: where records
// come from, where the document goes, and which toggles apply. Configuration
// loads from a JSON file, then environment variables override file values.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/srappel/oimkit/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "OIM"

// Config represents one export run's configuration.
type Config struct {
	// RecordsPath is the CSV export of the index database. Required for
	// export runs.
	RecordsPath string `json:"records_path"`
	// OutputPath is where the GeoJSON document is written. Required for
	// export runs.
	OutputPath string `json:"output_path"`
	// SchemaPath optionally names a JSON Schema to validate the produced
	// document against.
	SchemaPath string `json:"schema_path,omitempty"`
	// LookupPath optionally overrides the compiled-in code tables.
	LookupPath string `json:"lookup_path,omitempty"`

	// Flip swaps the label and title source fields, compensating for
	// historically transposed records.
	Flip bool `json:"flip"`
	// Strict fails the run when any record is skipped.
	Strict bool `json:"strict"`

	// SchemaVersion names the OIM schema version the run targets.
	SchemaVersion string `json:"schema_version"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Default returns a Config with the defaults applied.
func Default() *Config {
	return &Config{
		SchemaVersion: "1.0.0",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// LoadFile reads a JSON configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapFatal(errors.ErrResourceNotFound, "Config", "LoadFile", path)
		}
		return nil, errors.Wrap(err, "Config", "LoadFile", "read config file")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapFatal(errors.ErrMalformedInput, "Config", "LoadFile", "parse config JSON: "+err.Error())
	}
	return cfg, nil
}

// ApplyEnv overrides config values from OIM_-prefixed environment variables.
// Empty variables are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPrefix + "_RECORDS_PATH"); v != "" {
		c.RecordsPath = v
	}
	if v := os.Getenv(EnvPrefix + "_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv(EnvPrefix + "_SCHEMA_PATH"); v != "" {
		c.SchemaPath = v
	}
	if v := os.Getenv(EnvPrefix + "_LOOKUP_PATH"); v != "" {
		c.LookupPath = v
	}
	if v := os.Getenv(EnvPrefix + "_FLIP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Flip = b
		}
	}
	if v := os.Getenv(EnvPrefix + "_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
	if v := os.Getenv(EnvPrefix + "_SCHEMA_VERSION"); v != "" {
		c.SchemaVersion = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// Validate checks that the configuration can drive an export run.
func (c *Config) Validate() error {
	if c.RecordsPath == "" {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate", "records_path")
	}
	if c.OutputPath == "" {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate", "output_path")
	}
	if c.SchemaVersion == "" {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate", "schema_version")
	}
	return nil
}
