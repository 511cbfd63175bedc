package pipeline

import (
	"strings"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// ExtractFromText parses free text for location keywords and returns a
// (landmark, country) pair, either of which may be nil.
//
// Landmarks are checked first since they are more specific; on a
// landmark hit the country tables are still scanned so the pair can be
// completed. Matching is plain substring search on the lowercased text,
// so coincidental substrings can produce false positives.
func ExtractFromText(text string, landmarks, countries model.KeywordTable) (name, country *string) {
	if text == "" {
		return nil, nil
	}

	lower := strings.ToLower(text)

	for _, entry := range landmarks {
		if strings.Contains(lower, entry.Keyword) {
			name = model.StringPtr(entry.Canonical)
			for _, c := range countries {
				if strings.Contains(lower, c.Keyword) {
					country = model.StringPtr(c.Canonical)
					break
				}
			}
			return name, country
		}
	}

	for _, c := range countries {
		if strings.Contains(lower, c.Keyword) {
			return nil, model.StringPtr(c.Canonical)
		}
	}

	return nil, nil
}

// ResolveLocation fills the record's missing location fields from its
// description text. Structured location data supplied by the source
// always wins; text parsing only fills the blanks.
func ResolveLocation(rec *model.ImageRecord, landmarks, countries model.KeywordTable) {
	hasName := rec.FieldTruthy("location_name")
	hasCountry := rec.FieldTruthy("country")
	if hasName && hasCountry {
		return
	}

	var desc string
	if rec.Description != nil {
		desc = *rec.Description
	}

	name, country := ExtractFromText(desc, landmarks, countries)
	if !hasName && name != nil {
		rec.LocationName = name
	}
	if !hasCountry && country != nil {
		rec.Country = country
	}
}
