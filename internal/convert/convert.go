package convert

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ppmkit/ppmkit/internal/pixbuf"
	"github.com/ppmkit/ppmkit/internal/ppm"
)

// FromImage converts any image.Image into a pixel buffer.
//
// Native 16-bit color is scaled down to 8 bits per channel by dropping the
// low byte; alpha is discarded. The buffer dimensions match the image
// bounds.
func FromImage(img image.Image) *pixbuf.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pix := make([]pixbuf.Color, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			pix = append(pix, pixbuf.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}

	buf, _ := pixbuf.FromPixels(w, h, pix) // length matches by construction
	return buf
}

// ToImage converts a pixel buffer into a fully opaque NRGBA image.
func ToImage(b *pixbuf.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		i := img.PixOffset(px.X, px.Y)
		img.Pix[i+0] = px.Color.R
		img.Pix[i+1] = px.Color.G
		img.Pix[i+2] = px.Color.B
		img.Pix[i+3] = 0xff
	}
	return img
}

// Load reads the image at path into a pixel buffer.
//
// ".ppm" files go through the strict P3 decoder; everything else is
// decoded by the registered stdlib and golang.org/x/image formats (PNG,
// JPEG, GIF, BMP, TIFF, WebP).
func Load(path string) (*pixbuf.Buffer, error) {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return ppm.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// Save writes b to path, choosing the output format from the extension.
//
// ".ppm" destinations use the crash-safe P3 encoder; other extensions are
// handed to the imaging library (JPEG, PNG, GIF, TIFF, BMP). Only the PPM
// path carries the temp-file-plus-rename atomicity guarantee.
func Save(b *pixbuf.Buffer, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return ppm.WriteFile(path, b)
	}
	if err := imaging.Save(ToImage(b), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Resize returns a new buffer scaled to width x height using Lanczos
// resampling. The source buffer is left untouched.
func Resize(b *pixbuf.Buffer, width, height int) (*pixbuf.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid resize dimensions %dx%d", width, height)
	}
	return FromImage(imaging.Resize(ToImage(b), width, height, imaging.Lanczos)), nil
}
