package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// LoadRaw reads the raw metadata batch produced by ingestion.
func LoadRaw(path string) ([]model.ImageRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw metadata: %w", err)
	}

	var records []model.ImageRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse raw metadata: %w", err)
	}

	fmt.Printf("📄 Loaded %d raw records\n", len(records))
	return records, nil
}

// SaveCleaned writes the enriched batch to the cleaned metadata file.
func SaveCleaned(path string, records []model.ImageRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cleaned metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned metadata: %w", err)
	}

	fmt.Printf("💾 Saved %d cleaned records to %s\n", len(records), path)
	return nil
}
