// Package cache persists the unsorted category groups between runs so a
// rebuild within the freshness window skips the network entirely.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/output"
)

// Cache is a JSON snapshot of cv.Groups at a fixed path. Freshness is
// judged by file modification time.
type Cache struct {
	path string
}

// New creates a cache handle for the given path.
func New(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the snapshot file path.
func (c *Cache) Path() string {
	return c.path
}

// Fresh reports whether a snapshot exists and is younger than maxAge.
func (c *Cache) Fresh(maxAge time.Duration) bool {
	info, err := os.Stat(c.path)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < maxAge
}

// Load reads the snapshot. The boolean is false when no snapshot exists;
// a snapshot that exists but cannot be parsed is an error, since silently
// regenerating would mask a corrupted file.
func (c *Cache) Load() (cv.Groups, bool, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, output.NewSystemErrorWithCause("failed to read cache file: "+c.path, err)
	}

	var groups cv.Groups
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, false, output.NewSystemErrorWithCause("failed to parse cache file: "+c.path, err)
	}
	return groups, true, nil
}

// Save writes the snapshot using write-to-temp-then-rename for atomicity.
func (c *Cache) Save(groups cv.Groups) error {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize cache", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause("failed to create cache directory", err)
		}
	}

	if err := atomicWrite(c.path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write cache", err)
	}
	return nil
}

// atomicWrite writes data to path via a temp file in the same directory.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
