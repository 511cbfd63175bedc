package pipeline

import (
	"fmt"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// Analyze takes a snapshot of the raw batch before any cleaning:
// totals, download and location coverage, orientation histogram, and
// how many IDs occur more than once.
func Analyze(records []model.ImageRecord) model.Stats {
	stats := model.Stats{Total: len(records)}

	counts := make(map[string]int, len(records))
	for i := range records {
		rec := &records[i]

		if rec.Downloaded == 1 {
			stats.Downloaded++
		}
		if rec.FieldTruthy("location_name") {
			stats.WithLocation++
		}
		if rec.FieldTruthy("country") {
			stats.WithCountry++
		}

		switch {
		case rec.Width > rec.Height:
			stats.Landscape++
		case rec.Width < rec.Height:
			stats.Portrait++
		default:
			stats.Square++
		}

		counts[rec.ID]++
	}

	for _, n := range counts {
		if n > 1 {
			stats.Duplicates++
		}
	}

	fmt.Printf("📊 Analysis: %d total, %d downloaded, %d with location, %d duplicates\n",
		stats.Total, stats.Downloaded, stats.WithLocation, stats.Duplicates)

	return stats
}
