package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

func quadrantImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.NRGBA
			switch {
			case x < w/2 && y < h/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= w/2 && y < h/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < w/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	b := FromImage(quadrantImage(4, 4))

	if b.Width() != 4 || b.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", b.Width(), b.Height())
	}

	tests := []struct {
		x, y int
		want pixbuf.Color
	}{
		{0, 0, pixbuf.Color{R: 255}},
		{3, 0, pixbuf.Color{G: 255}},
		{0, 3, pixbuf.Color{B: 255}},
		{3, 3, pixbuf.White},
	}
	for _, tt := range tests {
		c, err := b.At(tt.x, tt.y)
		if err != nil {
			t.Fatalf("At(%d,%d) failed: %v", tt.x, tt.y, err)
		}
		if c != tt.want {
			t.Errorf("At(%d,%d): got %v, want %v", tt.x, tt.y, c, tt.want)
		}
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin must still map to
	// 0-based buffer coordinates.
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{255, 0, 0, 255})

	b := FromImage(img)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", b.Width(), b.Height())
	}
	c, err := b.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != (pixbuf.Color{R: 255}) {
		t.Errorf("At(0,0): got %v, want (255,0,0)", c)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	b := pixbuf.New(3, 2)
	if err := b.Set(1, 1, pixbuf.Color{R: 12, G: 34, B: 56}); err != nil {
		t.Fatal(err)
	}

	got := FromImage(ToImage(b))
	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		c, err := got.At(px.X, px.Y)
		if err != nil {
			t.Fatal(err)
		}
		if c != px.Color {
			t.Errorf("pixel (%d,%d): got %v, want %v", px.X, px.Y, c, px.Color)
		}
	}
}

func TestLoad_PPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.ppm")
	if err := os.WriteFile(path, []byte("P3\n1 1\n255\n9 8 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := b.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != (pixbuf.Color{R: 9, G: 8, B: 7}) {
		t.Errorf("At(0,0): got %v, want (9,8,7)", c)
	}
}

func TestLoad_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, quadrantImage(4, 4)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Width() != 4 || b.Height() != 4 {
		t.Errorf("dimensions: got %dx%d, want 4x4", b.Width(), b.Height())
	}
}

func TestSave_PPMAndBack(t *testing.T) {
	b := pixbuf.New(2, 2)
	if err := b.Set(0, 1, pixbuf.White); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "img.ppm")
	if err := Save(b, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := got.At(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c != pixbuf.White {
		t.Errorf("At(0,1): got %v, want White", c)
	}
}

func TestSave_PNGAndBack(t *testing.T) {
	b := FromImage(quadrantImage(4, 4))

	path := filepath.Join(t.TempDir(), "img.png")
	if err := Save(b, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := got.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != (pixbuf.Color{R: 255}) {
		t.Errorf("At(0,0): got %v, want (255,0,0)", c)
	}
}

func TestResize(t *testing.T) {
	b := FromImage(quadrantImage(8, 8))

	out, err := Resize(b, 4, 2)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if out.Width() != 4 || out.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", out.Width(), out.Height())
	}
	// Source untouched.
	if b.Width() != 8 || b.Height() != 8 {
		t.Errorf("source dimensions changed to %dx%d", b.Width(), b.Height())
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	b := pixbuf.New(2, 2)
	if _, err := Resize(b, 0, 4); err == nil {
		t.Error("Resize should reject zero width")
	}
	if _, err := Resize(b, 4, -1); err == nil {
		t.Error("Resize should reject negative height")
	}
}
