package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileCache stores entries as files under a root directory, fanned out
// by key hash. Each file carries an 8-byte expiry header followed by the
// raw payload, so binary artifacts are stored without re-encoding.
type FileCache struct {
	root string
}

const expiryHeaderLen = 8

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// Get retrieves a value. Corrupt and expired entries are removed and
// reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < expiryHeaderLen {
		_ = os.Remove(path)
		return nil, false, nil
	}

	expiry := int64(binary.BigEndian.Uint64(raw[:expiryHeaderLen]))
	if expiry != 0 && time.Now().UnixNano() > expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return raw[expiryHeaderLen:], true, nil
}

// Set stores a value with a time-to-live; a ttl of zero never expires.
// The entry is written to a temporary file and renamed into place, so
// concurrent readers never see a partial entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	raw := make([]byte, expiryHeaderLen+len(data))
	if ttl != 0 {
		binary.BigEndian.PutUint64(raw, uint64(time.Now().Add(ttl).UnixNano()))
	}
	copy(raw[expiryHeaderLen:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := filepath.Join(filepath.Dir(path), uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Delete removes a value. Deleting an absent key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for a file cache.
func (c *FileCache) Close() error { return nil }

// path fans keys out into 256 subdirectories by hash prefix so no single
// directory accumulates every entry.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".bin")
}

var _ Cache = (*FileCache)(nil)
