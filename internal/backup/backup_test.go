package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/closet/internal/models"
)

func testWardrobe() *models.Wardrobe {
	uploaded := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	top := models.Garment{
		ID:         1700000000001,
		Brand:      "Uniqlo",
		Name:       "Linen shirt",
		Image:      "data:image/jpeg;base64,aGVsbG8=",
		Source:     models.SourceLocal,
		UploadedAt: uploaded,
	}
	bottom := models.Garment{
		ID:         1700000000002,
		Brand:      "Levi's",
		Name:       "501",
		Image:      "data:image/png;base64,d29ybGQ=",
		Link:       "https://example.com/501",
		Source:     models.SourceLocal,
		UploadedAt: uploaded,
	}
	return &models.Wardrobe{
		Topwear:    []models.Garment{top},
		Bottomwear: []models.Garment{bottom},
		SavedOutfits: []models.Outfit{
			{ID: 1700000000003, Top: top, Bottom: bottom},
		},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	w := testWardrobe()

	data, err := Export(w, time.Now())
	require.NoError(t, err)

	restored, err := Import(data)
	require.NoError(t, err)

	assert.Equal(t, w.Topwear, restored.Topwear)
	assert.Equal(t, w.Bottomwear, restored.Bottomwear)
	assert.Equal(t, w.SavedOutfits, restored.SavedOutfits)
}

func TestExport_IncludesExportDate(t *testing.T) {
	exportedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err := Export(testWardrobe(), exportedAt)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "exportDate")
	assert.Contains(t, raw, "topwear")
	assert.Contains(t, raw, "bottomwear")
	assert.Contains(t, raw, "savedOutfits")
}

func TestImport_MissingFieldsDefaultToEmpty(t *testing.T) {
	input := []byte(`{"topwear":[{"id":1,"brand":"Acme","name":"tee","image":"data:image/png;base64,eA==","source":"local","uploadedAt":"2026-01-02T15:04:05Z"}]}`)

	w, err := Import(input)
	require.NoError(t, err)

	assert.Len(t, w.Topwear, 1)
	assert.NotNil(t, w.Bottomwear)
	assert.Empty(t, w.Bottomwear)
	assert.NotNil(t, w.SavedOutfits)
	assert.Empty(t, w.SavedOutfits)
}

func TestImport_ParseFailure(t *testing.T) {
	w, err := Import([]byte("not json at all"))
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1767225600000)
	assert.Equal(t, "closet-backup-1767225600000.json", Filename(at))

	// Distinct timestamps never collide
	assert.NotEqual(t, Filename(at), Filename(at.Add(time.Millisecond)))
}
