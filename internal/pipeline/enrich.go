package pipeline

import (
	"fmt"
	"strings"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
	"github.com/Denger878/landscape-data-pipeline/pkg/utils"
)

// EnrichRecords augments validated records with derived fields: aspect
// ratio (2 decimals), megapixels (1 decimal), a whitespace-normalized
// description, and any location fields recoverable from the description
// text. Enrichment never rejects a record.
func EnrichRecords(records []model.ImageRecord, landmarks, countries model.KeywordTable) []model.ImageRecord {
	enriched := make([]model.ImageRecord, len(records))
	copy(enriched, records)

	for i := range enriched {
		rec := &enriched[i]

		if rec.Width > 0 && rec.Height > 0 {
			ratio := utils.Round(float64(rec.Width)/float64(rec.Height), 2)
			mp := utils.Round(float64(rec.Width)*float64(rec.Height)/1_000_000, 1)
			rec.AspectRatio = &ratio
			rec.Megapixels = &mp
		}

		if rec.Description != nil {
			collapsed := strings.Join(strings.Fields(*rec.Description), " ")
			rec.Description = &collapsed
		}

		ResolveLocation(rec, landmarks, countries)
	}

	fmt.Printf("✨ Enriched %d records\n", len(enriched))
	return enriched
}
