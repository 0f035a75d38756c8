// Package backup serializes the wardrobe to a portable JSON file and
// restores it, independent of the live store.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kilupskalvis/closet/internal/models"
)

// file is the portable backup shape. It matches the persisted slot
// except that the timestamp field is named exportDate.
type file struct {
	Topwear      []models.Garment `json:"topwear"`
	Bottomwear   []models.Garment `json:"bottomwear"`
	SavedOutfits []models.Outfit  `json:"savedOutfits"`
	ExportDate   time.Time        `json:"exportDate"`
}

// Filename returns the download name for a backup taken at t. The epoch
// millisecond suffix keeps repeated exports from colliding.
func Filename(t time.Time) string {
	return fmt.Sprintf("closet-backup-%d.json", t.UnixMilli())
}

// Export serializes the full aggregate plus an export timestamp.
func Export(w *models.Wardrobe, exportedAt time.Time) ([]byte, error) {
	w.Normalize()
	f := file{
		Topwear:      w.Topwear,
		Bottomwear:   w.Bottomwear,
		SavedOutfits: w.SavedOutfits,
		ExportDate:   exportedAt,
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// Import parses a backup file. Top-level fields absent from the input
// default to empty collections. On a parse failure nothing is returned,
// so the caller's wardrobe and store stay untouched.
func Import(data []byte) (*models.Wardrobe, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}

	w := &models.Wardrobe{
		Topwear:      f.Topwear,
		Bottomwear:   f.Bottomwear,
		SavedOutfits: f.SavedOutfits,
	}
	w.Normalize()
	return w, nil
}
