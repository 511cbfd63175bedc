package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

func testRules() config.ValidationConfig {
	return config.ValidationConfig{
		MinWidth:       1920,
		MinAspectRatio: 1.3,
		RequiredFields: []string{"id", "image_url", "photographer_name", "width", "height"},
	}
}

func validRecord() model.ImageRecord {
	return model.ImageRecord{
		ID:               "img-1",
		ImageURL:         "https://example.com/img-1.jpg",
		PhotographerName: "Jane Doe",
		Width:            2400,
		Height:           1600,
		Downloaded:       1,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ImageRecord)
		want   model.Outcome
	}{
		{
			name:   "valid record accepted",
			mutate: func(r *model.ImageRecord) {},
			want:   model.Accepted,
		},
		{
			name:   "not downloaded",
			mutate: func(r *model.ImageRecord) { r.Downloaded = 0 },
			want:   model.FailedDownload,
		},
		{
			name:   "portrait orientation",
			mutate: func(r *model.ImageRecord) { r.Width = 1600; r.Height = 2400 },
			want:   model.FailedOrientation,
		},
		{
			name:   "square counts as wrong orientation",
			mutate: func(r *model.ImageRecord) { r.Width = 2000; r.Height = 2000 },
			want:   model.FailedOrientation,
		},
		{
			name:   "near-square aspect ratio",
			mutate: func(r *model.ImageRecord) { r.Width = 1800; r.Height = 1600 },
			want:   model.FailedAspectRatio,
		},
		{
			name:   "low resolution",
			mutate: func(r *model.ImageRecord) { r.Width = 1600; r.Height = 900 },
			want:   model.FailedResolution,
		},
		{
			name:   "missing photographer",
			mutate: func(r *model.ImageRecord) { r.PhotographerName = "" },
			want:   model.FailedMissingFields,
		},
		{
			name:   "zero dimensions fail orientation",
			mutate: func(r *model.ImageRecord) { r.Height = 0; r.Width = 0 },
			want:   model.FailedOrientation,
		},
		{
			name:   "zero height treated as ratio zero",
			mutate: func(r *model.ImageRecord) { r.Height = 0; r.Width = 2400 },
			want:   model.FailedAspectRatio,
		},
		{
			name: "download gate checked before orientation",
			mutate: func(r *model.ImageRecord) {
				r.Downloaded = 0
				r.Width = 100
				r.Height = 200
			},
			want: model.FailedDownload,
		},
		{
			name: "orientation gate wins over resolution",
			mutate: func(r *model.ImageRecord) {
				r.Width = 800
				r.Height = 1200
			},
			want: model.FailedOrientation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			assert.Equal(t, tt.want, Classify(&rec, testRules()))
		})
	}
}

func TestClassifyUnknownRequiredField(t *testing.T) {
	rules := testRules()
	rules.RequiredFields = append(rules.RequiredFields, "no_such_field")

	rec := validRecord()
	assert.Equal(t, model.FailedMissingFields, Classify(&rec, rules))
}

func TestClassifyIdempotent(t *testing.T) {
	rules := testRules()
	records := []model.ImageRecord{
		validRecord(),
		{ID: "x", Downloaded: 1, Width: 1800, Height: 1600},
		{ID: "y", Downloaded: 0},
	}

	for i := range records {
		first := Classify(&records[i], rules)
		second := Classify(&records[i], rules)
		assert.Equal(t, first, second)
	}
}

func TestValidateRecords(t *testing.T) {
	rules := testRules()

	portrait := validRecord()
	portrait.ID = "portrait"
	portrait.Width, portrait.Height = 1000, 2000

	nearSquare := validRecord()
	nearSquare.ID = "near-square"
	nearSquare.Width, nearSquare.Height = 1800, 1600

	records := []model.ImageRecord{validRecord(), portrait, nearSquare}

	valid, failed := ValidateRecords(records, rules)

	assert.Len(t, valid, 1)
	assert.Equal(t, 1, failed.Orientation)
	assert.Equal(t, 1, failed.AspectRatio)
	assert.Equal(t, 2, failed.Total())

	// Accepted records satisfy every gate.
	for i := range valid {
		rec := &valid[i]
		assert.Greater(t, rec.Width, rec.Height)
		assert.GreaterOrEqual(t, float64(rec.Width)/float64(rec.Height), rules.MinAspectRatio)
		assert.GreaterOrEqual(t, rec.Width, rules.MinWidth)
		for _, field := range rules.RequiredFields {
			assert.True(t, rec.FieldTruthy(field), "field %s", field)
		}
	}
}
