package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

func writePPM(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBufferCache_LoadCaches(t *testing.T) {
	path := writePPM(t, t.TempDir(), "a.ppm", "P3\n1 1\n255\n1 2 3\n")
	cache := NewBufferCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Remove the file; a cache hit must not touch the disk.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("Load should return the cached buffer instance")
	}
}

func TestBufferCache_Evict(t *testing.T) {
	dir := t.TempDir()
	path := writePPM(t, dir, "a.ppm", "P3\n1 1\n255\n1 2 3\n")
	cache := NewBufferCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatal(err)
	}
	cache.Evict(path)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should hit the disk and fail for a removed file")
	}
}

func TestBufferCache_Store(t *testing.T) {
	cache := NewBufferCache()
	b := pixbuf.New(2, 2)
	cache.Store("/virtual/made-up.ppm", b)

	got, err := cache.Load("/virtual/made-up.ppm")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != b {
		t.Error("Load should return the stored buffer instance")
	}
}

func TestBufferCache_Clear(t *testing.T) {
	cache := NewBufferCache()
	cache.Store("x.ppm", pixbuf.New(1, 1))
	cache.Clear()

	if _, err := cache.Load("x.ppm"); err == nil {
		t.Error("Load after Clear should miss and fail for a nonexistent path")
	}
}

func TestLoadInfo(t *testing.T) {
	content := "P3\n2 3\n255\n" +
		"0 0 0\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	path := writePPM(t, t.TempDir(), "a.ppm", content)

	info, err := LoadInfo(NewBufferCache(), path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Width != 2 || info.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 2x3", info.Width, info.Height)
	}
	if info.PixelCount != 6 {
		t.Errorf("PixelCount: got %d, want 6", info.PixelCount)
	}
	if info.Format != "ppm" {
		t.Errorf("Format: got %s, want ppm", info.Format)
	}
	if info.FileSizeBytes != int64(len(content)) {
		t.Errorf("FileSizeBytes: got %d, want %d", info.FileSizeBytes, len(content))
	}
}
