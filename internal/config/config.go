// Package config provides configuration for the landscape data pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// Configuration validation errors.
var (
	ErrNoRequiredFields   = errors.New("validation.required_fields must not be empty")
	ErrInvalidMinWidth    = errors.New("validation.min_width must be at least 1")
	ErrInvalidAspectRatio = errors.New("validation.min_aspect_ratio must be >= 1.0")
	ErrMissingDataDir     = errors.New("data.dir is required")
	ErrMissingDatabase    = errors.New("data.db is required")
	ErrInvalidPerQuery    = errors.New("ingest.per_query must be at least 1")
	ErrInvalidTargetCount = errors.New("ingest.target_count must be at least 1")
)

// Config is the complete pipeline configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Validation ValidationConfig `yaml:"validation"`
	Ingest     IngestConfig     `yaml:"ingest"`

	// Keyword tables are static compiled-in data, injected here so the
	// extractor stays a pure function of (text, tables).
	Landmarks model.KeywordTable `yaml:"-"`
	Countries model.KeywordTable `yaml:"-"`
}

// DataConfig describes where run artifacts live.
type DataConfig struct {
	Dir string `yaml:"dir"` // raw/cleaned metadata and the cleaning report
	DB  string `yaml:"db"`  // sqlite database file
}

// ValidationConfig holds the image quality thresholds.
type ValidationConfig struct {
	MinWidth       int      `yaml:"min_width"`        // pixels
	MinAspectRatio float64  `yaml:"min_aspect_ratio"` // width/height, rejects near-square images
	RequiredFields []string `yaml:"required_fields"`
}

// IngestConfig holds settings for the Unsplash ingestion collaborator.
type IngestConfig struct {
	BaseURL          string `yaml:"base_url"`
	TargetCount      int    `yaml:"target_count"`
	PerQuery         int    `yaml:"per_query"`
	RateLimitSeconds int    `yaml:"rate_limit_seconds"`
}

// Default returns the built-in configuration, matching the shipped
// pipeline.yaml.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
			DB:  filepath.Join("db", "images.db"),
		},
		Validation: ValidationConfig{
			MinWidth:       1920,
			MinAspectRatio: 1.3,
			RequiredFields: []string{"id", "image_url", "photographer_name", "width", "height"},
		},
		Ingest: IngestConfig{
			BaseURL:          "https://api.unsplash.com",
			TargetCount:      300,
			PerQuery:         10,
			RateLimitSeconds: 2,
		},
		Landmarks: DefaultLandmarks,
		Countries: DefaultCountries,
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for fatal errors. A pipeline must
// not start with a broken config.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return ErrMissingDataDir
	}
	if c.Data.DB == "" {
		return ErrMissingDatabase
	}
	if c.Validation.MinWidth < 1 {
		return ErrInvalidMinWidth
	}
	if c.Validation.MinAspectRatio < 1.0 {
		return ErrInvalidAspectRatio
	}
	if len(c.Validation.RequiredFields) == 0 {
		return ErrNoRequiredFields
	}
	if c.Ingest.PerQuery < 1 {
		return ErrInvalidPerQuery
	}
	if c.Ingest.TargetCount < 1 {
		return ErrInvalidTargetCount
	}
	return nil
}

// RawMetadataPath is the ingestion output / pipeline input artifact.
func (c *Config) RawMetadataPath() string {
	return filepath.Join(c.Data.Dir, "raw_metadata.json")
}

// CleanedMetadataPath is the cleaned metadata artifact.
func (c *Config) CleanedMetadataPath() string {
	return filepath.Join(c.Data.Dir, "cleaned_metadata.json")
}

// ReportPath is the cleaning report artifact.
func (c *Config) ReportPath() string {
	return filepath.Join(c.Data.Dir, "cleaning_report.txt")
}
