package pipeline

import (
	"errors"
	"fmt"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// ErrMissingID marks a malformed raw record. The ID is the join key for
// dedup and storage, so a record without one aborts the whole run.
var ErrMissingID = errors.New("raw record has no id")

// Deduplicate collapses records sharing an ID, keeping the first
// occurrence and preserving input order. Returns the unique records and
// the number removed.
func Deduplicate(records []model.ImageRecord) ([]model.ImageRecord, int, error) {
	seen := make(map[string]bool, len(records))
	unique := make([]model.ImageRecord, 0, len(records))
	removed := 0

	for i, rec := range records {
		if rec.ID == "" {
			return nil, 0, fmt.Errorf("%w (record %d)", ErrMissingID, i)
		}
		if seen[rec.ID] {
			removed++
			continue
		}
		seen[rec.ID] = true
		unique = append(unique, rec)
	}

	if removed > 0 {
		fmt.Printf("🧹 Removed %d duplicates\n", removed)
	}

	return unique, removed, nil
}
