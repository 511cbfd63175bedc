// Package pipeline implements the metadata cleaning pipeline: analyze,
// deduplicate, validate, enrich, persist, report.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
	"github.com/Denger878/landscape-data-pipeline/internal/store"
	"github.com/Denger878/landscape-data-pipeline/pkg/utils"
)

// Run executes the full cleaning pipeline over the raw metadata batch:
// load -> analyze -> dedup -> validate -> enrich -> save -> persist ->
// report. Stages run strictly in sequence and any stage failure aborts
// the run, except report writing and run bookkeeping, which are logged
// and swallowed.
func Run(cfg *config.Config, st *store.Store) (*model.RunSummary, error) {
	runID := uuid.New().String()
	start := time.Now().UTC()
	fmt.Printf("🚀 Starting cleaning pipeline (run %s)\n", runID)

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	raw, err := LoadRaw(cfg.RawMetadataPath())
	if err != nil {
		return nil, err
	}

	stats := Analyze(raw)

	unique, removed, err := Deduplicate(raw)
	if err != nil {
		return nil, err
	}

	valid, failed := ValidateRecords(unique, cfg.Validation)

	cleaned := EnrichRecords(valid, cfg.Landmarks, cfg.Countries)

	if err := SaveCleaned(cfg.CleanedMetadataPath(), cleaned); err != nil {
		return nil, err
	}

	inserted, conflicts, err := st.InsertImages(cleaned)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		log.Printf("⚠️ Skipped %d records already present in the database", conflicts)
	}

	report := RenderReport(stats, failed, len(cleaned), cfg.Validation)
	if err := WriteReport(cfg.ReportPath(), report); err != nil {
		log.Printf("⚠️ Report not written: %v", err)
	}

	withLocation := 0
	for i := range cleaned {
		if cleaned[i].HasLocation() {
			withLocation++
		}
	}

	summary := &model.RunSummary{
		RunID:             runID,
		StartedAt:         start,
		FinishedAt:        time.Now().UTC(),
		Stats:             stats,
		Failed:            failed,
		DuplicatesRemoved: removed,
		Cleaned:           len(cleaned),
		Inserted:          inserted,
		Conflicts:         conflicts,
		QualityPct:        utils.Round(utils.Percent(len(cleaned), stats.Total), 1),
		LocationPct:       utils.Round(utils.Percent(withLocation, len(cleaned)), 1),
	}

	if err := st.SaveRun(summary); err != nil {
		log.Printf("⚠️ Run history not recorded: %v", err)
	}

	fmt.Printf("🏁 Cleaning complete: %d/%d images (%.1f%% quality) in %v\n",
		summary.Cleaned, stats.Total, summary.QualityPct, time.Since(start).Round(time.Millisecond))
	fmt.Printf("📍 Location coverage: %d/%d (%.1f%%)\n", withLocation, summary.Cleaned, summary.LocationPct)

	return summary, nil
}
