package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

func TestDeduplicate(t *testing.T) {
	records := []model.ImageRecord{
		{ID: "a", Query: "first"},
		{ID: "b"},
		{ID: "a", Query: "second"},
		{ID: "c"},
		{ID: "b"},
	}

	unique, removed, err := Deduplicate(records)
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	assert.LessOrEqual(t, len(unique), len(records))

	// Stable order, first occurrence kept.
	require.Len(t, unique, 3)
	assert.Equal(t, "a", unique[0].ID)
	assert.Equal(t, "first", unique[0].Query)
	assert.Equal(t, "b", unique[1].ID)
	assert.Equal(t, "c", unique[2].ID)

	// Every surviving ID occurs exactly once.
	seen := map[string]int{}
	for _, rec := range unique {
		seen[rec.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s", id)
	}
}

func TestDeduplicateNoDuplicates(t *testing.T) {
	records := []model.ImageRecord{{ID: "a"}, {ID: "b"}}

	unique, removed, err := Deduplicate(records)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, records, unique)
}

func TestDeduplicateEmpty(t *testing.T) {
	unique, removed, err := Deduplicate(nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, unique)
}

func TestDeduplicateMissingID(t *testing.T) {
	records := []model.ImageRecord{{ID: "a"}, {ID: ""}}

	_, _, err := Deduplicate(records)
	assert.ErrorIs(t, err, ErrMissingID)
}
