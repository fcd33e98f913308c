package imagestore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Store decodes inline base64 image payloads, normalizes them to JPEG and
// saves them under a media directory. Stored images are addressed by URL
// path.
type Store struct {
	dir       string
	urlPrefix string
}

// New creates a Store rooted at dir, serving files under urlPrefix.
func New(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// SaveBase64 decodes a base64 payload, with or without a data URI prefix
// ("data:image/png;base64,..."), re-encodes it as JPEG and returns the URL
// path of the stored file.
func (s *Store) SaveBase64(data string) (string, error) {
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := uuid.New().String() + ".jpg"
	if err := imaging.Save(img, filepath.Join(s.dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return s.urlPrefix + "/" + fileName, nil
}

// Dir returns the directory images are stored in.
func (s *Store) Dir() string {
	return s.dir
}
