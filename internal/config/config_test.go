package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1920, cfg.Validation.MinWidth)
	assert.InDelta(t, 1.3, cfg.Validation.MinAspectRatio, 1e-9)
	assert.Equal(t, []string{"id", "image_url", "photographer_name", "width", "height"}, cfg.Validation.RequiredFields)
	assert.NotEmpty(t, cfg.Landmarks)
	assert.NotEmpty(t, cfg.Countries)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	yaml := `
data:
  dir: /tmp/landscape
validation:
  min_width: 1280
  min_aspect_ratio: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/landscape", cfg.Data.Dir)
	assert.Equal(t, 1280, cfg.Validation.MinWidth)
	assert.InDelta(t, 1.5, cfg.Validation.MinAspectRatio, 1e-9)
	// Untouched settings keep their defaults.
	assert.Equal(t, filepath.Join("db", "images.db"), cfg.Data.DB)
	assert.Len(t, cfg.Validation.RequiredFields, 5)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Validation, cfg.Validation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty required fields", func(c *Config) { c.Validation.RequiredFields = nil }, ErrNoRequiredFields},
		{"zero min width", func(c *Config) { c.Validation.MinWidth = 0 }, ErrInvalidMinWidth},
		{"ratio below one", func(c *Config) { c.Validation.MinAspectRatio = 0.5 }, ErrInvalidAspectRatio},
		{"missing data dir", func(c *Config) { c.Data.Dir = "" }, ErrMissingDataDir},
		{"missing db", func(c *Config) { c.Data.DB = "" }, ErrMissingDatabase},
		{"zero per query", func(c *Config) { c.Ingest.PerQuery = 0 }, ErrInvalidPerQuery},
		{"zero target count", func(c *Config) { c.Ingest.TargetCount = 0 }, ErrInvalidTargetCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestKeywordTableOrder(t *testing.T) {
	// "usa" must be matched before the state keywords so explicit
	// mentions win; just pin that the entries stay ordered.
	var usaIdx, utahIdx int
	for i, e := range DefaultCountries {
		switch e.Keyword {
		case "usa":
			usaIdx = i
		case "utah":
			utahIdx = i
		}
	}
	assert.Less(t, usaIdx, utahIdx)
}
