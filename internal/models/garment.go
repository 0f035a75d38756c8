// Package models defines the wardrobe data types persisted by closet.
package models

import (
	"fmt"
	"time"
)

// Category identifies which wardrobe collection a garment belongs to.
type Category string

const (
	CategoryTopwear    Category = "topwear"
	CategoryBottomwear Category = "bottomwear"
)

// SourceLocal marks garments ingested from the local filesystem.
const SourceLocal = "local"

// ParseCategory parses a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTopwear, CategoryBottomwear:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (want %s or %s)", s, CategoryTopwear, CategoryBottomwear)
}

// Garment is a single wardrobe item. It is immutable after creation;
// the only mutation is removal from its collection.
//
// IDs are creation timestamps in epoch milliseconds. They are not
// guaranteed unique under rapid same-millisecond creation; batch
// ingestion offsets ids positionally to avoid collisions within a batch.
type Garment struct {
	ID         int64     `json:"id"`
	Brand      string    `json:"brand"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Link       string    `json:"link,omitempty"`
	Source     string    `json:"source"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Clone returns a copy of the garment.
func (g Garment) Clone() Garment {
	return g
}

// Label returns a short human-readable description for CLI output.
func (g Garment) Label() string {
	if g.Brand == "" {
		return g.Name
	}
	return g.Brand + " " + g.Name
}
