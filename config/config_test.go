package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srappel/oimkit/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1.0.0", cfg.SchemaVersion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Flip)
}

func TestLoadFile(t *testing.T) {
	t.Run("file values over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"records_path": "geodex.csv", "output_path": "out.geojson", "flip": true}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "geodex.csv", cfg.RecordsPath)
		assert.True(t, cfg.Flip)
		assert.Equal(t, "1.0.0", cfg.SchemaVersion, "default retained when file is silent")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "none.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrResourceNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrMalformedInput)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OIM_RECORDS_PATH", "env.csv")
	t.Setenv("OIM_FLIP", "true")
	t.Setenv("OIM_STRICT", "not-a-bool")
	t.Setenv("OIM_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.RecordsPath = "file.csv"
	cfg.ApplyEnv()

	assert.Equal(t, "env.csv", cfg.RecordsPath, "env wins over file")
	assert.True(t, cfg.Flip)
	assert.False(t, cfg.Strict, "unparseable boolean ignored")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "complete config",
			mutate: func(c *Config) {
				c.RecordsPath = "geodex.csv"
				c.OutputPath = "out.geojson"
			},
		},
		{
			name:    "missing records path",
			mutate:  func(c *Config) { c.OutputPath = "out.geojson" },
			wantErr: true,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.RecordsPath = "geodex.csv" },
			wantErr: true,
		},
		{
			name: "missing schema version",
			mutate: func(c *Config) {
				c.RecordsPath = "geodex.csv"
				c.OutputPath = "out.geojson"
				c.SchemaVersion = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrMissingConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
