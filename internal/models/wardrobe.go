package models

// Wardrobe is the persisted aggregate: two garment collections plus the
// saved outfits. Insertion order is display order.
type Wardrobe struct {
	Topwear      []Garment `json:"topwear"`
	Bottomwear   []Garment `json:"bottomwear"`
	SavedOutfits []Outfit  `json:"savedOutfits"`
}

// Normalize replaces nil collections with empty ones so that absent
// fields in parsed input default to empty rather than nil.
func (w *Wardrobe) Normalize() {
	if w.Topwear == nil {
		w.Topwear = []Garment{}
	}
	if w.Bottomwear == nil {
		w.Bottomwear = []Garment{}
	}
	if w.SavedOutfits == nil {
		w.SavedOutfits = []Outfit{}
	}
}

// Garments returns the collection for a category.
func (w *Wardrobe) Garments(cat Category) []Garment {
	if cat == CategoryTopwear {
		return w.Topwear
	}
	return w.Bottomwear
}

// Append adds a garment to the end of a category's collection.
func (w *Wardrobe) Append(cat Category, g Garment) {
	if cat == CategoryTopwear {
		w.Topwear = append(w.Topwear, g)
	} else {
		w.Bottomwear = append(w.Bottomwear, g)
	}
}

// FindGarment returns a pointer to the garment with the given id within
// a category, or nil if it is not present.
func (w *Wardrobe) FindGarment(cat Category, id int64) *Garment {
	coll := w.Garments(cat)
	for i := range coll {
		if coll[i].ID == id {
			return &coll[i]
		}
	}
	return nil
}

// RemoveGarment removes the garment with the given id from a category.
// Saved outfits are untouched: they hold their own garment copies.
// Removing an unknown id is a no-op and returns false.
func (w *Wardrobe) RemoveGarment(cat Category, id int64) bool {
	coll := w.Garments(cat)
	for i := range coll {
		if coll[i].ID == id {
			coll = append(coll[:i], coll[i+1:]...)
			if cat == CategoryTopwear {
				w.Topwear = coll
			} else {
				w.Bottomwear = coll
			}
			return true
		}
	}
	return false
}

// FindOutfit returns a pointer to the saved outfit with the given id,
// or nil if it is not present.
func (w *Wardrobe) FindOutfit(id int64) *Outfit {
	for i := range w.SavedOutfits {
		if w.SavedOutfits[i].ID == id {
			return &w.SavedOutfits[i]
		}
	}
	return nil
}

// RemoveOutfit removes the saved outfit with the given id. Removing an
// unknown id is a no-op and returns false.
func (w *Wardrobe) RemoveOutfit(id int64) bool {
	for i := range w.SavedOutfits {
		if w.SavedOutfits[i].ID == id {
			w.SavedOutfits = append(w.SavedOutfits[:i], w.SavedOutfits[i+1:]...)
			return true
		}
	}
	return false
}
