// Package filestore persists uploaded transition photos on local disk.
// Stored names are generated, never caller-controlled, so uploads cannot
// collide or escape the storage directory.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// Storage writes uploads into a single flat directory.
type Storage struct {
	dir string
}

// NewStorage creates the storage directory if needed and returns a Storage
// rooted there.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the storage directory, for static serving.
func (s *Storage) Dir() string {
	return s.dir
}

// Save streams src into a freshly named file and returns the stored filename.
// Only the extension of the original name survives, lowercased and
// whitelisted to plain suffix characters.
func (s *Storage) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + safeExt(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if err = dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return name, nil
}

// safeExt extracts a usable file extension, empty when the original name has
// none or carries anything but letters and digits.
func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
