package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
	"github.com/Denger878/landscape-data-pipeline/pkg/utils"
)

// RenderReport builds the fixed-structure cleaning report. Every
// percentage guards against a zero total.
func RenderReport(stats model.Stats, failed model.FailureCounts, cleanedCount int, rules config.ValidationConfig) string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "DATA CLEANING REPORT\n%s\n\n", line)

	fmt.Fprintf(&b, "INITIAL DATA\n")
	fmt.Fprintf(&b, "  Total records: %d\n", stats.Total)
	fmt.Fprintf(&b, "  Successfully downloaded: %d\n", stats.Downloaded)
	fmt.Fprintf(&b, "  With location: %d (%.1f%%)\n", stats.WithLocation, utils.Percent(stats.WithLocation, stats.Total))
	fmt.Fprintf(&b, "  With country: %d (%.1f%%)\n\n", stats.WithCountry, utils.Percent(stats.WithCountry, stats.Total))

	fmt.Fprintf(&b, "ISSUES FOUND\n")
	fmt.Fprintf(&b, "  Duplicates: %d\n", stats.Duplicates)
	fmt.Fprintf(&b, "  Portrait orientation: %d\n\n", stats.Portrait)

	fmt.Fprintf(&b, "VALIDATION FAILURES\n")
	fmt.Fprintf(&b, "  Failed download: %d\n", failed.Download)
	fmt.Fprintf(&b, "  Wrong orientation: %d\n", failed.Orientation)
	fmt.Fprintf(&b, "  Aspect ratio < %.1f: %d\n", rules.MinAspectRatio, failed.AspectRatio)
	fmt.Fprintf(&b, "  Resolution < %dpx: %d\n", rules.MinWidth, failed.Resolution)
	fmt.Fprintf(&b, "  Missing fields: %d\n\n", failed.MissingFields)

	fmt.Fprintf(&b, "FINAL CLEAN DATASET\n")
	fmt.Fprintf(&b, "  Valid images: %d\n", cleanedCount)
	fmt.Fprintf(&b, "  Data quality: %.1f%%\n\n%s\n", utils.Percent(cleanedCount, stats.Total), line)

	return b.String()
}

// WriteReport persists the report to its side-channel file. Failures
// here are the caller's to log; they never abort a run.
func WriteReport(path string, report string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
