// Package sigstore persists captured signature images on the local
// filesystem, named <timestamp>_<reader>_<book>.png so a reference alone
// tells you when and for whom it was captured.
package sigstore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const pngDataPrefix = "data:image/png;base64,"

var ErrBadPayload = errors.New("signature payload must be a base64 PNG data URL")

type Store struct{ dir string }

// New ensures dir exists and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save decodes a data:image/png;base64 payload and writes it under the
// store directory. The returned reference is the bare filename.
func (s *Store) Save(dataURL, readerNo, bookTomNo string, at time.Time) (string, error) {
	if !strings.HasPrefix(dataURL, pngDataPrefix) {
		return "", ErrBadPayload
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[len(pngDataPrefix):])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	name := fmt.Sprintf("%s_%s_%s.png",
		at.UTC().Format("20060102150405"), sanitize(readerNo), sanitize(bookTomNo))
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored artifact; used to clean up when the borrow that
// produced it does not commit.
func (s *Store) Remove(ref string) error {
	return os.Remove(filepath.Join(s.dir, sanitize(ref)))
}

// Path resolves a reference for serving. References with path separators
// are rejected so callers cannot escape the store directory.
func (s *Store) Path(ref string) (string, error) {
	if ref == "" || ref != sanitize(ref) || strings.Contains(ref, "..") {
		return "", os.ErrNotExist
	}
	p := filepath.Join(s.dir, ref)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// Reader and tom numbers may contain slashes (e.g. "123/2024"); they map
// to dashes in filenames.
func sanitize(s string) string {
	return strings.NewReplacer("/", "-", "\\", "-").Replace(s)
}
