// internal/storage/paths.go
package storage

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImagePrefix and ImageExt frame every generated image key.
const (
	ImagePrefix = "flower_"
	ImageExt    = ".jpg"
)

// NewImageKey returns a fresh key of the form flower_<32 hex>.jpg.
func NewImageKey() string {
	return ImagePrefix + strings.ReplaceAll(uuid.NewString(), "-", "") + ImageExt
}

// KeyFromURL derives the blob key from a stored public URL: its last path segment.
func KeyFromURL(raw string) string {
	if u, err := url.Parse(strings.TrimSpace(raw)); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	raw = strings.TrimRight(raw, "/")
	return raw[strings.LastIndex(raw, "/")+1:]
}

// keyPath resolves a key to a file below root.
// Keys are flat names; anything that would leave root is rejected.
func keyPath(root, key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}

	fullPath := filepath.Join(root, key)
	cleanedPath := filepath.Clean(fullPath)
	cleanedRoot := filepath.Clean(root)
	if !strings.HasPrefix(cleanedPath, cleanedRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid path: potential path traversal")
	}
	return cleanedPath, nil
}
