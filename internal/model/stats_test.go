package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureCountsAdd(t *testing.T) {
	var f FailureCounts

	f.Add(Accepted)
	f.Add(FailedDownload)
	f.Add(FailedOrientation)
	f.Add(FailedOrientation)
	f.Add(FailedAspectRatio)
	f.Add(FailedResolution)
	f.Add(FailedMissingFields)

	assert.Equal(t, 1, f.Download)
	assert.Equal(t, 2, f.Orientation)
	assert.Equal(t, 1, f.AspectRatio)
	assert.Equal(t, 1, f.Resolution)
	assert.Equal(t, 1, f.MissingFields)
	assert.Equal(t, 6, f.Total())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "failed_download", FailedDownload.String())
	assert.Equal(t, "failed_orientation", FailedOrientation.String())
	assert.Equal(t, "failed_aspect_ratio", FailedAspectRatio.String())
	assert.Equal(t, "failed_resolution", FailedResolution.String())
	assert.Equal(t, "failed_missing_fields", FailedMissingFields.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
