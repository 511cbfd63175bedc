package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

func TestEnrichRecordsDerivedFields(t *testing.T) {
	records := []model.ImageRecord{
		{ID: "a", Width: 1920, Height: 1080},
		{ID: "b", Width: 2400, Height: 1600},
	}

	enriched := EnrichRecords(records, config.DefaultLandmarks, config.DefaultCountries)
	require.Len(t, enriched, 2)

	require.NotNil(t, enriched[0].AspectRatio)
	assert.InDelta(t, 1.78, *enriched[0].AspectRatio, 1e-9)
	require.NotNil(t, enriched[0].Megapixels)
	assert.InDelta(t, 2.1, *enriched[0].Megapixels, 1e-9)

	require.NotNil(t, enriched[1].AspectRatio)
	assert.InDelta(t, 1.5, *enriched[1].AspectRatio, 1e-9)
	require.NotNil(t, enriched[1].Megapixels)
	assert.InDelta(t, 3.8, *enriched[1].Megapixels, 1e-9)
}

func TestEnrichRecordsZeroDimensions(t *testing.T) {
	records := []model.ImageRecord{
		{ID: "a", Width: 0, Height: 1080},
		{ID: "b", Width: 1920, Height: 0},
	}

	enriched := EnrichRecords(records, nil, nil)
	for _, rec := range enriched {
		assert.Nil(t, rec.AspectRatio)
		assert.Nil(t, rec.Megapixels)
	}
}

func TestEnrichRecordsWhitespace(t *testing.T) {
	records := []model.ImageRecord{
		{ID: "a", Description: model.StringPtr("  a   mountain \t\n lake  ")},
		{ID: "b"},
	}

	enriched := EnrichRecords(records, nil, nil)
	require.NotNil(t, enriched[0].Description)
	assert.Equal(t, "a mountain lake", *enriched[0].Description)
	assert.Nil(t, enriched[1].Description)
}

func TestEnrichRecordsFillsLocation(t *testing.T) {
	records := []model.ImageRecord{
		{ID: "a", Description: model.StringPtr("sunrise over banff in canada")},
	}

	enriched := EnrichRecords(records, config.DefaultLandmarks, config.DefaultCountries)
	require.NotNil(t, enriched[0].LocationName)
	assert.Equal(t, "Banff National Park", *enriched[0].LocationName)
	require.NotNil(t, enriched[0].Country)
	assert.Equal(t, "Canada", *enriched[0].Country)
}

func TestEnrichRecordsDoesNotMutateInput(t *testing.T) {
	records := []model.ImageRecord{{ID: "a", Width: 1920, Height: 1080}}

	_ = EnrichRecords(records, nil, nil)
	// The input slice header is copied; derived fields only land on the
	// returned records.
	assert.Nil(t, records[0].AspectRatio)
}
