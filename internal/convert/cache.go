package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// BufferCache provides thread-safe caching of loaded pixel buffers to
// avoid redundant disk reads.
//
// Buffers are keyed by the exact path string they were loaded from;
// different spellings of the same path produce separate entries. Cached
// buffers remain in memory until Evict or Clear, so long-running processes
// handling many files should clean up periodically.
//
// BufferCache is safe for concurrent use. The buffers it hands out are
// not: callers mutating a cached buffer must coordinate among themselves.
type BufferCache struct {
	mu   sync.RWMutex
	bufs map[string]*pixbuf.Buffer
}

// NewBufferCache creates an empty cache ready for immediate use.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		bufs: make(map[string]*pixbuf.Buffer),
	}
}

// Load returns the buffer for path, reading it from disk on a cache miss.
func (c *BufferCache) Load(path string) (*pixbuf.Buffer, error) {
	c.mu.RLock()
	if b, ok := c.bufs[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bufs[path] = b
	c.mu.Unlock()

	return b, nil
}

// Store associates path with b, replacing any previous entry. Use it after
// writing a freshly created or mutated buffer to disk so later Load calls
// observe the same object.
func (c *BufferCache) Store(path string, b *pixbuf.Buffer) {
	c.mu.Lock()
	c.bufs[path] = b
	c.mu.Unlock()
}

// Evict removes the entry for path, if any. The next Load reads from disk.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.bufs, path)
	c.mu.Unlock()
}

// Clear drops every cached buffer.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.bufs = make(map[string]*pixbuf.Buffer)
	c.mu.Unlock()
}

// FileInfo contains metadata about an image file loaded through the cache.
type FileInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// PixelCount is Width*Height.
	PixelCount int `json:"pixel_count"`

	// Format is derived from the file extension: "ppm", "png", "jpeg",
	// "gif", "bmp", "tiff", "webp", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads the image at path (through the cache) and reports its
// metadata.
func LoadInfo(cache *BufferCache, path string) (*FileInfo, error) {
	b, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		format = "ppm"
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	return &FileInfo{
		Width:         b.Width(),
		Height:        b.Height(),
		PixelCount:    b.Width() * b.Height(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
