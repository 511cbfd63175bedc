package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

func TestRenderReport(t *testing.T) {
	stats := model.Stats{
		Total:        10,
		Downloaded:   8,
		WithLocation: 4,
		WithCountry:  6,
		Portrait:     3,
		Duplicates:   1,
	}
	failed := model.FailureCounts{
		Orientation: 3,
		AspectRatio: 1,
	}

	report := RenderReport(stats, failed, 5, testRules())

	assert.Contains(t, report, "DATA CLEANING REPORT")
	assert.Contains(t, report, "Total records: 10")
	assert.Contains(t, report, "Successfully downloaded: 8")
	assert.Contains(t, report, "With location: 4 (40.0%)")
	assert.Contains(t, report, "With country: 6 (60.0%)")
	assert.Contains(t, report, "Duplicates: 1")
	assert.Contains(t, report, "Wrong orientation: 3")
	assert.Contains(t, report, "Aspect ratio < 1.3: 1")
	assert.Contains(t, report, "Resolution < 1920px: 0")
	assert.Contains(t, report, "Valid images: 5")
	assert.Contains(t, report, "Data quality: 50.0%")
}

func TestRenderReportZeroTotal(t *testing.T) {
	report := RenderReport(model.Stats{}, model.FailureCounts{}, 0, testRules())

	assert.Contains(t, report, "Data quality: 0.0%")
	assert.Contains(t, report, "With location: 0 (0.0%)")
	assert.NotContains(t, report, "NaN")
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaning_report.txt")

	require.NoError(t, WriteReport(path, "report body\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(data))
}

func TestWriteReportFailure(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.txt"), "body")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to write report"))
}
