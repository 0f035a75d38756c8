// Package codec validates garment image files and encodes them as
// embeddable data URIs. Validation is declared metadata and size only;
// file contents are never sniffed.
package codec

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the per-image size ceiling (5 MiB).
const MaxImageBytes = 5 * 1024 * 1024

// accepted declared media types.
var acceptedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidationError reports a file rejected before any persistence attempt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// MediaTypeForPath returns the media type declared by the file extension,
// or "" when the extension is not a known image type.
func MediaTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	return ""
}

// Validate rejects files whose declared media type is not JPEG or PNG,
// or whose size exceeds MaxImageBytes.
func Validate(mediaType string, size int64) error {
	if !acceptedTypes[mediaType] {
		return &ValidationError{Reason: fmt.Sprintf("unsupported image type %q (want JPEG or PNG)", mediaType)}
	}
	if size > MaxImageBytes {
		return &ValidationError{Reason: fmt.Sprintf("image is %.1f MiB, limit is 5 MiB", float64(size)/1024/1024)}
	}
	return nil
}

// Encode reads the file and returns a data URI embedding its bytes.
// A read failure is returned to the caller; it is never retried.
func Encode(path, mediaType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
