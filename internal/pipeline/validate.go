package pipeline

import (
	"fmt"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// Classify runs a record through the validation gates and returns the
// single outcome. Gate order is fixed and the first failing gate wins:
//
//  1. downloaded flag must be 1
//  2. landscape orientation (width strictly greater than height)
//  3. aspect ratio >= configured minimum (height 0 counts as ratio 0)
//  4. width >= configured minimum
//  5. every required field present and truthy
//
// Classify is a pure function of the record and the rules; callers fold
// outcomes into a FailureCounts aggregate.
func Classify(rec *model.ImageRecord, rules config.ValidationConfig) model.Outcome {
	if rec.Downloaded != 1 {
		return model.FailedDownload
	}

	if rec.Width <= rec.Height {
		return model.FailedOrientation
	}

	ratio := 0.0
	if rec.Height > 0 {
		ratio = float64(rec.Width) / float64(rec.Height)
	}
	if ratio < rules.MinAspectRatio {
		return model.FailedAspectRatio
	}

	if rec.Width < rules.MinWidth {
		return model.FailedResolution
	}

	for _, field := range rules.RequiredFields {
		if !rec.FieldTruthy(field) {
			return model.FailedMissingFields
		}
	}

	return model.Accepted
}

// ValidateRecords filters a batch through the gates, returning the
// accepted records in order plus the per-reason failure tally.
func ValidateRecords(records []model.ImageRecord, rules config.ValidationConfig) ([]model.ImageRecord, model.FailureCounts) {
	valid := make([]model.ImageRecord, 0, len(records))
	var failed model.FailureCounts

	for i := range records {
		outcome := Classify(&records[i], rules)
		if outcome == model.Accepted {
			valid = append(valid, records[i])
			continue
		}
		failed.Add(outcome)
	}

	fmt.Printf("🔍 Validation: %d/%d passed (failed: %d orientation, %d aspect ratio, %d resolution)\n",
		len(valid), len(records), failed.Orientation, failed.AspectRatio, failed.Resolution)

	return valid, failed
}
