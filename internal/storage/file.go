// filepath: internal/storage/file.go
// Package storage keeps product images as flat files under a root directory
// and hands out public URLs for them.
package storage

import (
	"context"
	"flowershop/internal/logging"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileStore is a filesystem-backed blob store.
type FileStore struct {
	Root    string
	BaseURL string // public prefix, e.g. http://host:8080/images
}

// NewFileStore creates the root directory if needed.
func NewFileStore(root, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage root %s: %w", root, err)
	}
	return &FileStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes data under key, replacing any existing blob, and returns its public URL.
// The content type is implied by the key's extension when the blob is served.
func (s *FileStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := keyPath(s.Root, key)
	if err != nil {
		return "", err
	}

	// Write to a temp file first so readers never see a partial image.
	tmp, err := os.CreateTemp(s.Root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not store file: %w", err)
	}

	logging.Log.Debugf("Stored blob %s (%d bytes, %s)", key, len(data), contentType)
	return s.PublicURL(key), nil
}

// Remove deletes the blob. A missing blob is not an error.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	path, err := keyPath(s.Root, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the URL under which key is served.
func (s *FileStore) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// BlobInfo describes a stored image.
type BlobInfo struct {
	Key     string
	ModTime time.Time
}

// List returns all stored images sorted by key. Files that do not look like
// generated image keys are ignored.
func (s *FileStore) List(ctx context.Context) ([]BlobInfo, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}
	blobs := make([]BlobInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), ImagePrefix) || filepath.Ext(e.Name()) != ImageExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		blobs = append(blobs, BlobInfo{Key: e.Name(), ModTime: info.ModTime()})
	}
	sort.Slice(blobs, func(i, j int) bool { return blobs[i].Key < blobs[j].Key })
	return blobs, nil
}
