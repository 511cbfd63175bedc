package model

// ImageRecord represents a single image metadata record as produced by
// ingestion. Optional fields are pointers so "missing" and "empty" stay
// distinct; width/height are plain ints where 0 means absent or invalid
// (both fail the same validation gates either way).
type ImageRecord struct {
	ID                   string   `json:"id"`
	ImageURL             string   `json:"image_url"`
	DownloadURL          string   `json:"download_url"`
	PageURL              string   `json:"page_url"`
	LocationName         *string  `json:"location_name"`
	Country              *string  `json:"country"`
	Description          *string  `json:"description"`
	PhotographerName     string   `json:"photographer_name"`
	PhotographerUsername string   `json:"photographer_username"`
	Width                int      `json:"width"`
	Height               int      `json:"height"`
	Color                *string  `json:"color"`
	Source               string   `json:"source"`
	Query                string   `json:"query"`
	Downloaded           int      `json:"downloaded"`
	AspectRatio          *float64 `json:"aspect_ratio,omitempty"`
	Megapixels           *float64 `json:"megapixels,omitempty"`
}

// FieldTruthy reports whether the named field is present and truthy
// (non-empty string, non-zero number). Unknown field names are never
// truthy, so a misconfigured required-field list rejects every record
// instead of silently passing.
func (r *ImageRecord) FieldTruthy(name string) bool {
	switch name {
	case "id":
		return r.ID != ""
	case "image_url":
		return r.ImageURL != ""
	case "download_url":
		return r.DownloadURL != ""
	case "page_url":
		return r.PageURL != ""
	case "location_name":
		return strPresent(r.LocationName)
	case "country":
		return strPresent(r.Country)
	case "description":
		return strPresent(r.Description)
	case "photographer_name":
		return r.PhotographerName != ""
	case "photographer_username":
		return r.PhotographerUsername != ""
	case "width":
		return r.Width != 0
	case "height":
		return r.Height != 0
	case "color":
		return strPresent(r.Color)
	case "source":
		return r.Source != ""
	case "query":
		return r.Query != ""
	case "downloaded":
		return r.Downloaded != 0
	default:
		return false
	}
}

// Caption builds the display caption: "name, country" when both are
// present, otherwise whichever one is, otherwise nil.
func (r *ImageRecord) Caption() *string {
	name := strPresent(r.LocationName)
	country := strPresent(r.Country)

	switch {
	case name && country:
		c := *r.LocationName + ", " + *r.Country
		return &c
	case country:
		c := *r.Country
		return &c
	case name:
		c := *r.LocationName
		return &c
	default:
		return nil
	}
}

// HasLocation reports whether the record carries any location data.
func (r *ImageRecord) HasLocation() bool {
	return strPresent(r.LocationName) || strPresent(r.Country)
}

func strPresent(s *string) bool {
	return s != nil && *s != ""
}

// StringPtr is a convenience for building optional string fields.
func StringPtr(s string) *string {
	return &s
}

// KeywordEntry maps a lowercase search keyword to a canonical name.
type KeywordEntry struct {
	Keyword   string
	Canonical string
}

// KeywordTable is an ordered list of keyword mappings. Order is
// precedence: earlier, more specific keywords must win over later,
// broader ones, so this is a slice rather than a map.
type KeywordTable []KeywordEntry
