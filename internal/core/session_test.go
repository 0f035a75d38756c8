package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/closet/internal/models"
)

func fixedTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

// newTestSession returns a session with a deterministic clock.
func newTestSession(t *testing.T, w *models.Wardrobe) *Session {
	t.Helper()
	s := NewSession(w)
	s.now = fixedTime
	return s
}

func garment(id int64, name string) models.Garment {
	return models.Garment{
		ID:         id,
		Brand:      "Acme",
		Name:       name,
		Image:      "data:image/png;base64,aWNvbg==",
		Source:     models.SourceLocal,
		UploadedAt: fixedTime(),
	}
}

func TestSession_AddItem(t *testing.T) {
	s := newTestSession(t, nil)

	g := s.AddItem(models.CategoryTopwear, "Uniqlo", "Linen shirt", "data:image/jpeg;base64,eA==", "https://example.com")

	assert.Len(t, s.Wardrobe.Topwear, 1)
	assert.Len(t, s.Wardrobe.Bottomwear, 0)

	assert.Equal(t, fixedTime().UnixMilli(), g.ID)
	assert.Equal(t, "Uniqlo", g.Brand)
	assert.Equal(t, models.SourceLocal, g.Source)
	assert.Equal(t, fixedTime(), g.UploadedAt)
	assert.Equal(t, g, s.Wardrobe.Topwear[0])
}

func TestSession_AddItem_AppendsNewestLast(t *testing.T) {
	s := newTestSession(t, nil)

	s.AddItem(models.CategoryBottomwear, "", "first", "img", "")
	s.AddItem(models.CategoryBottomwear, "", "second", "img", "")

	require.Len(t, s.Wardrobe.Bottomwear, 2)
	assert.Equal(t, "first", s.Wardrobe.Bottomwear[0].Name)
	assert.Equal(t, "second", s.Wardrobe.Bottomwear[1].Name)
	assert.Len(t, s.Wardrobe.Topwear, 0)
}

func TestSession_Shuffle(t *testing.T) {
	w := &models.Wardrobe{
		Topwear:    []models.Garment{garment(1, "tee"), garment(2, "shirt"), garment(3, "hoodie")},
		Bottomwear: []models.Garment{garment(4, "jeans"), garment(5, "chinos")},
	}
	s := newTestSession(t, w)

	for i := 0; i < 50; i++ {
		top, bottom, err := s.Shuffle()
		require.NoError(t, err)
		require.NotNil(t, top)
		require.NotNil(t, bottom)

		// Picks are always members of their collections
		assert.Contains(t, []int64{1, 2, 3}, top.ID)
		assert.Contains(t, []int64{4, 5}, bottom.ID)

		selTop, selBottom := s.Selection()
		assert.Equal(t, top, selTop)
		assert.Equal(t, bottom, selBottom)
	}
}

func TestSession_Shuffle_EmptyBottomwear(t *testing.T) {
	w := &models.Wardrobe{
		Topwear: []models.Garment{garment(1, "tee"), garment(2, "shirt")},
	}
	s := newTestSession(t, w)

	top, bottom, err := s.Shuffle()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.Nil(t, top)
	assert.Nil(t, bottom)

	// Selections remain unset
	selTop, selBottom := s.Selection()
	assert.Nil(t, selTop)
	assert.Nil(t, selBottom)
}

func TestSession_Shuffle_FailureKeepsSelections(t *testing.T) {
	w := &models.Wardrobe{
		Topwear: []models.Garment{garment(1, "tee")},
	}
	s := newTestSession(t, w)
	s.SelectTop(&w.Topwear[0])

	_, _, err := s.Shuffle()
	require.ErrorIs(t, err, ErrEmptyCollection)

	selTop, selBottom := s.Selection()
	assert.Equal(t, &w.Topwear[0], selTop)
	assert.Nil(t, selBottom)
}

func TestSession_SaveOutfit_RequiresBothSelections(t *testing.T) {
	w := &models.Wardrobe{
		Topwear:    []models.Garment{garment(1, "tee")},
		Bottomwear: []models.Garment{garment(2, "jeans")},
	}
	s := newTestSession(t, w)

	_, err := s.SaveOutfit()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Len(t, s.Wardrobe.SavedOutfits, 0)

	s.SelectTop(&w.Topwear[0])
	_, err = s.SaveOutfit()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Len(t, s.Wardrobe.SavedOutfits, 0)
}

func TestSession_SaveOutfit_SnapshotsGarments(t *testing.T) {
	w := &models.Wardrobe{
		Topwear:    []models.Garment{garment(1, "tee")},
		Bottomwear: []models.Garment{garment(2, "jeans")},
	}
	s := newTestSession(t, w)

	require.NoError(t, s.SelectTopByID(1))
	require.NoError(t, s.SelectBottomByID(2))

	outfit, err := s.SaveOutfit()
	require.NoError(t, err)
	require.Len(t, s.Wardrobe.SavedOutfits, 1)
	assert.Equal(t, fixedTime().UnixMilli(), outfit.ID)

	// Deleting the garments does not touch the outfit's embedded copies
	assert.True(t, s.RemoveGarment(models.CategoryTopwear, 1))
	assert.True(t, s.RemoveGarment(models.CategoryBottomwear, 2))

	saved := s.Wardrobe.SavedOutfits[0]
	assert.Equal(t, "tee", saved.Top.Name)
	assert.Equal(t, "jeans", saved.Bottom.Name)
}

func TestSession_SaveThenRemoveOutfit(t *testing.T) {
	w := &models.Wardrobe{
		Topwear:      []models.Garment{garment(1, "tee")},
		Bottomwear:   []models.Garment{garment(2, "jeans")},
		SavedOutfits: []models.Outfit{{ID: 99, Top: garment(1, "tee"), Bottom: garment(2, "jeans")}},
	}
	s := newTestSession(t, w)
	prior := len(s.Wardrobe.SavedOutfits)

	require.NoError(t, s.SelectTopByID(1))
	require.NoError(t, s.SelectBottomByID(2))
	outfit, err := s.SaveOutfit()
	require.NoError(t, err)

	assert.True(t, s.RemoveOutfit(outfit.ID))
	assert.Len(t, s.Wardrobe.SavedOutfits, prior)

	// Unknown id is a no-op, not an error
	assert.False(t, s.RemoveOutfit(123456))
	assert.Len(t, s.Wardrobe.SavedOutfits, prior)
}

func TestSession_LoadSavedOutfit(t *testing.T) {
	top := garment(1, "tee")
	bottom := garment(2, "jeans")
	w := &models.Wardrobe{
		SavedOutfits: []models.Outfit{{ID: 7, Top: top, Bottom: bottom}},
	}
	s := newTestSession(t, w)

	require.NoError(t, s.LoadSavedOutfit(7))

	// Selections come from the outfit snapshot, not the live collections
	// (which are empty here).
	selTop, selBottom := s.Selection()
	require.NotNil(t, selTop)
	require.NotNil(t, selBottom)
	assert.Equal(t, top, *selTop)
	assert.Equal(t, bottom, *selBottom)
}

func TestSession_LoadSavedOutfit_NotFound(t *testing.T) {
	s := newTestSession(t, nil)

	err := s.LoadSavedOutfit(42)
	assert.ErrorIs(t, err, ErrOutfitNotFound)

	selTop, selBottom := s.Selection()
	assert.Nil(t, selTop)
	assert.Nil(t, selBottom)
}

func TestSession_SelectByID_NotFound(t *testing.T) {
	s := newTestSession(t, nil)

	assert.ErrorIs(t, s.SelectTopByID(1), ErrGarmentNotFound)
	assert.ErrorIs(t, s.SelectBottomByID(1), ErrGarmentNotFound)
}

func TestSession_RemoveGarment(t *testing.T) {
	w := &models.Wardrobe{
		Topwear: []models.Garment{garment(1, "tee"), garment(2, "shirt")},
	}
	s := newTestSession(t, w)

	assert.True(t, s.RemoveGarment(models.CategoryTopwear, 1))
	require.Len(t, s.Wardrobe.Topwear, 1)
	assert.Equal(t, int64(2), s.Wardrobe.Topwear[0].ID)

	assert.False(t, s.RemoveGarment(models.CategoryTopwear, 1))
	assert.Len(t, s.Wardrobe.Topwear, 1)
}
