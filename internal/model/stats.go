package model

import "time"

// Outcome classifies a record against the validation gates. Exactly one
// outcome applies per record; gates are checked in declaration order and
// the first failing gate wins.
type Outcome int

const (
	Accepted Outcome = iota
	FailedDownload
	FailedOrientation
	FailedAspectRatio
	FailedResolution
	FailedMissingFields
)

// String returns the reason label used in logs and reports.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case FailedDownload:
		return "failed_download"
	case FailedOrientation:
		return "failed_orientation"
	case FailedAspectRatio:
		return "failed_aspect_ratio"
	case FailedResolution:
		return "failed_resolution"
	case FailedMissingFields:
		return "failed_missing_fields"
	default:
		return "unknown"
	}
}

// FailureCounts tallies validation rejections per reason.
type FailureCounts struct {
	Download      int `json:"download"`
	Orientation   int `json:"orientation"`
	AspectRatio   int `json:"aspect_ratio"`
	Resolution    int `json:"resolution"`
	MissingFields int `json:"missing_fields"`
}

// Add folds a single outcome into the tally. Accepted is a no-op.
func (f *FailureCounts) Add(o Outcome) {
	switch o {
	case FailedDownload:
		f.Download++
	case FailedOrientation:
		f.Orientation++
	case FailedAspectRatio:
		f.AspectRatio++
	case FailedResolution:
		f.Resolution++
	case FailedMissingFields:
		f.MissingFields++
	}
}

// Total returns the number of rejected records.
func (f *FailureCounts) Total() int {
	return f.Download + f.Orientation + f.AspectRatio + f.Resolution + f.MissingFields
}

// Stats is the snapshot of a raw batch taken before any cleaning.
type Stats struct {
	Total        int `json:"total"`
	Downloaded   int `json:"downloaded"`
	WithLocation int `json:"with_location"`
	WithCountry  int `json:"with_country"`
	Landscape    int `json:"landscape_count"`
	Portrait     int `json:"portrait_count"`
	Square       int `json:"square_count"`
	Duplicates   int `json:"duplicates"`
}

// RunSummary is the result of one full pipeline run.
type RunSummary struct {
	RunID             string        `json:"run_id"`
	StartedAt         time.Time     `json:"started_at"`
	FinishedAt        time.Time     `json:"finished_at"`
	Stats             Stats         `json:"stats"`
	Failed            FailureCounts `json:"failed"`
	DuplicatesRemoved int           `json:"duplicates_removed"`
	Cleaned           int           `json:"cleaned"`
	Inserted          int           `json:"inserted"`
	Conflicts         int           `json:"conflicts"`
	QualityPct        float64       `json:"quality_pct"`
	LocationPct       float64       `json:"location_pct"`
}
