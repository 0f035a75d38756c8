// Package store persists the wardrobe aggregate to a single named slot
// in an embedded bbolt database and enforces the storage quota.
//
// Every save is a full replace of the three collections; there is no
// partial or incremental persistence. A failed save never touches the
// in-memory aggregate that triggered it — the running session keeps the
// mutation and the slot simply lags until the next successful save.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/kilupskalvis/closet/internal/models"
)

var (
	bucketWardrobe = []byte("wardrobe")

	// slotKey is the single key the aggregate is persisted under.
	slotKey = []byte("wardrobeItems")
)

// ErrQuotaExceeded reports that the serialized slot does not fit the
// store's capacity. Callers show a free-up-space message for this and a
// generic one for any other save failure.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// snapshot is the persisted slot shape.
type snapshot struct {
	Topwear      []models.Garment `json:"topwear"`
	Bottomwear   []models.Garment `json:"bottomwear"`
	SavedOutfits []models.Outfit  `json:"savedOutfits"`
	SavedAt      time.Time        `json:"savedAt"`
}

// Store is the bbolt-backed wardrobe store.
type Store struct {
	db    *bolt.DB
	quota int64
	log   zerolog.Logger
}

// New opens or creates a bbolt database at the given path. quota is the
// store capacity in bytes.
func New(dbPath string, quota int64, log zerolog.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Store{db: db, quota: quota, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Initialize creates the required bucket.
func (s *Store) Initialize() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketWardrobe); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketWardrobe, err)
		}
		return nil
	})
}

// QuotaBytes returns the store capacity in bytes.
func (s *Store) QuotaBytes() int64 {
	return s.quota
}

// Save serializes the wardrobe into the slot, replacing whatever was
// there. It fails with ErrQuotaExceeded when the serialized form does
// not fit the quota; any other failure is returned wrapped.
func (s *Store) Save(w *models.Wardrobe) error {
	w.Normalize()
	snap := snapshot{
		Topwear:      w.Topwear,
		Bottomwear:   w.Bottomwear,
		SavedOutfits: w.SavedOutfits,
		SavedAt:      time.Now(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal wardrobe: %w", err)
	}

	if int64(len(data)) > s.quota {
		return fmt.Errorf("slot is %d bytes, capacity is %d: %w", len(data), s.quota, ErrQuotaExceeded)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWardrobe)
		if b == nil {
			return fmt.Errorf("wardrobe bucket not found")
		}
		return b.Put(slotKey, data)
	})
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}

	s.log.Debug().Int("bytes", len(data)).Msg("wardrobe saved")
	return nil
}

// Load returns the last-saved wardrobe. It reports ok=false when no slot
// exists or the stored content fails to parse; a parse failure only
// abandons the load, the slot itself is never deleted.
func (s *Store) Load() (*models.Wardrobe, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWardrobe)
		if b == nil {
			return nil
		}
		if v := b.Get(slotKey); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read slot: %w", err)
	}
	if data == nil {
		return nil, false, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn().Err(err).Msg("stored wardrobe is unreadable, treating as no data")
		return nil, false, nil
	}

	w := &models.Wardrobe{
		Topwear:      snap.Topwear,
		Bottomwear:   snap.Bottomwear,
		SavedOutfits: snap.SavedOutfits,
	}
	w.Normalize()
	return w, true, nil
}

// Usage returns the approximate slot size in mebibytes, rounded to the
// nearest 0.01. This is the serialized character length divided by
// 1024*1024, not a true byte count of the database file.
func (s *Store) Usage() (float64, error) {
	var length int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWardrobe)
		if b == nil {
			return nil
		}
		length = len(b.Get(slotKey))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("read slot: %w", err)
	}

	mib := float64(length) / 1024 / 1024
	return math.Round(mib*100) / 100, nil
}

// Clear deletes the slot. Callers gate this behind an irreversible-action
// confirmation.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWardrobe)
		if b == nil {
			return nil
		}
		return b.Delete(slotKey)
	})
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
