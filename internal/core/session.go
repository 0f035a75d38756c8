// Package core implements the wardrobe aggregate: garment and outfit
// mutations plus the transient selection state.
package core

import (
	"math/rand"
	"time"

	"github.com/kilupskalvis/closet/internal/models"
)

// Session owns the in-memory wardrobe for one process run, together with
// the selection state. Selections are never persisted; every new session
// starts with none. Persisting wardrobe mutations is the caller's job —
// a mutation happens in memory first and a failed save never rolls it
// back.
type Session struct {
	Wardrobe *models.Wardrobe

	selectedTop    *models.Garment
	selectedBottom *models.Garment

	rng *rand.Rand
	now func() time.Time
}

// NewSession wraps a loaded wardrobe (or starts an empty one).
func NewSession(w *models.Wardrobe) *Session {
	if w == nil {
		w = &models.Wardrobe{}
	}
	w.Normalize()
	return &Session{
		Wardrobe: w,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// AddItem constructs a garment with a fresh id and timestamp and appends
// it to the category's collection (newest last).
func (s *Session) AddItem(cat models.Category, brand, name, image, link string) models.Garment {
	now := s.now()
	g := models.Garment{
		ID:         now.UnixMilli(),
		Brand:      brand,
		Name:       name,
		Image:      image,
		Link:       link,
		Source:     models.SourceLocal,
		UploadedAt: now,
	}
	s.Wardrobe.Append(cat, g)
	return g
}

// Selection returns the currently selected top and bottom, either of
// which may be nil.
func (s *Session) Selection() (top, bottom *models.Garment) {
	return s.selectedTop, s.selectedBottom
}

// SelectTop sets the selected top. No persistence side effect.
func (s *Session) SelectTop(g *models.Garment) {
	s.selectedTop = g
}

// SelectBottom sets the selected bottom. No persistence side effect.
func (s *Session) SelectBottom(g *models.Garment) {
	s.selectedBottom = g
}

// SelectTopByID selects a top out of the live wardrobe collection.
func (s *Session) SelectTopByID(id int64) error {
	g := s.Wardrobe.FindGarment(models.CategoryTopwear, id)
	if g == nil {
		return ErrGarmentNotFound
	}
	s.selectedTop = g
	return nil
}

// SelectBottomByID selects a bottom out of the live wardrobe collection.
func (s *Session) SelectBottomByID(id int64) error {
	g := s.Wardrobe.FindGarment(models.CategoryBottomwear, id)
	if g == nil {
		return ErrGarmentNotFound
	}
	s.selectedBottom = g
	return nil
}

// Shuffle picks one top and one bottom uniformly at random, independently
// and with replacement across calls, and sets both selections together.
// When either collection is empty it fails with ErrEmptyCollection and
// leaves the selections untouched.
func (s *Session) Shuffle() (top, bottom *models.Garment, err error) {
	tops := s.Wardrobe.Topwear
	bottoms := s.Wardrobe.Bottomwear
	if len(tops) == 0 || len(bottoms) == 0 {
		return nil, nil, ErrEmptyCollection
	}

	top = &tops[s.rng.Intn(len(tops))]
	bottom = &bottoms[s.rng.Intn(len(bottoms))]
	s.selectedTop, s.selectedBottom = top, bottom
	return top, bottom, nil
}

// SaveOutfit snapshots both selected garments into a new outfit appended
// to the saved outfits. It fails with ErrIncompleteSelection unless both
// selections are set.
func (s *Session) SaveOutfit() (*models.Outfit, error) {
	if s.selectedTop == nil || s.selectedBottom == nil {
		return nil, ErrIncompleteSelection
	}

	o := models.Outfit{
		ID:     s.now().UnixMilli(),
		Top:    s.selectedTop.Clone(),
		Bottom: s.selectedBottom.Clone(),
	}
	s.Wardrobe.SavedOutfits = append(s.Wardrobe.SavedOutfits, o)
	return &s.Wardrobe.SavedOutfits[len(s.Wardrobe.SavedOutfits)-1], nil
}

// LoadSavedOutfit restores both selections from a saved outfit's embedded
// garment copies. The selections come from the snapshot, not from the
// live collections, so the outfit shows its garments as they were saved
// even if they were removed since.
func (s *Session) LoadSavedOutfit(id int64) error {
	o := s.Wardrobe.FindOutfit(id)
	if o == nil {
		return ErrOutfitNotFound
	}

	top := o.Top.Clone()
	bottom := o.Bottom.Clone()
	s.selectedTop = &top
	s.selectedBottom = &bottom
	return nil
}

// RemoveOutfit removes the saved outfit with the given id; unknown ids
// are a no-op. It reports whether an outfit was removed.
func (s *Session) RemoveOutfit(id int64) bool {
	return s.Wardrobe.RemoveOutfit(id)
}

// RemoveGarment removes a garment from its category. Saved outfits keep
// their embedded copies. It reports whether a garment was removed.
func (s *Session) RemoveGarment(cat models.Category, id int64) bool {
	return s.Wardrobe.RemoveGarment(cat, id)
}
