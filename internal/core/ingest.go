package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/closet/internal/codec"
	"github.com/kilupskalvis/closet/internal/models"
)

// ItemDetails carries optional metadata applied to ingested garments.
// An empty Name falls back to the image file name.
type ItemDetails struct {
	Brand string
	Name  string
	Link  string
}

// BulkResult reports the per-file outcomes of a bulk ingestion.
type BulkResult struct {
	Succeeded int
	Failed    int
	Errors    []error
}

// BulkAdd ingests image files independently: a file that fails validation
// or encoding is counted and skipped, and the rest of the batch
// continues. Ids are a base timestamp plus the file's position, so two
// items created in the same batch never collide.
func (s *Session) BulkAdd(cat models.Category, paths []string, details ItemDetails) BulkResult {
	base := s.now().UnixMilli()

	var res BulkResult
	for i, path := range paths {
		image, err := encodePath(path)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Errorf("%s: %w", filepath.Base(path), err))
			continue
		}

		name := details.Name
		if name == "" {
			name = nameFromPath(path)
		}

		s.Wardrobe.Append(cat, models.Garment{
			ID:         base + int64(i),
			Brand:      details.Brand,
			Name:       name,
			Image:      image,
			Link:       details.Link,
			Source:     models.SourceLocal,
			UploadedAt: s.now(),
		})
		res.Succeeded++
	}
	return res
}

// encodePath validates a file by declared type and size, then encodes it.
func encodePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mediaType := codec.MediaTypeForPath(path)
	if err := codec.Validate(mediaType, info.Size()); err != nil {
		return "", err
	}

	return codec.Encode(path, mediaType)
}

// nameFromPath derives a display name from the image file name.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
