// Package cache provides artifact caching for rendered diagram outputs.
//
// Rendering a diagram to SVG, PNG or PDF is the slow part of the CLI, so
// outputs are cached keyed by a hash of the source document plus the
// render options. The [FileCache] stores entries on disk for CLI usage;
// [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by opaque string keys.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a time-to-live. A ttl of zero means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render parameters that distinguish artifacts
// produced from the same document.
type ArtifactKeyOpts struct {
	Format      string  // "svg", "png", "pdf", "dot"
	Labels      bool    // external names in node labels
	FixedLayout bool    // nodes pinned to stored coordinates
	Scale       float64 // raster scale factor (png only)
}

// Keyer derives cache keys for the artifact pipeline.
type Keyer interface {
	// DocumentKey identifies a parsed document by content.
	DocumentKey(data []byte) string
	// ArtifactKey identifies a rendered artifact by document hash and
	// render options.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key derivation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey hashes the document bytes.
func (k *DefaultKeyer) DocumentKey(data []byte) string {
	return "doc:" + Hash(data)
}

// ArtifactKey hashes the document hash together with the render options.
func (k *DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
