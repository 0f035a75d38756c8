package models

// Outfit is a saved pairing of one top and one bottom. Both garments are
// embedded deep copies, not references: deleting a garment from the
// wardrobe does not change outfits that were saved with it.
type Outfit struct {
	ID     int64   `json:"id"`
	Top    Garment `json:"top"`
	Bottom Garment `json:"bottom"`
}
