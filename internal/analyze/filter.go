package analyze

import (
	"fmt"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ppmkit/ppmkit/internal/convert"
	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// Blur returns a Gaussian-blurred copy of b. Radius controls the kernel
// size; 0 returns an unchanged copy.
func Blur(b *pixbuf.Buffer, radius float64) *pixbuf.Buffer {
	return convert.FromImage(blur.Gaussian(convert.ToImage(b), radius))
}

// Grayscale returns a copy of b with every pixel reduced to its luminance.
func Grayscale(b *pixbuf.Buffer) *pixbuf.Buffer {
	return convert.FromImage(effect.Grayscale(convert.ToImage(b)))
}

// Edges returns an edge-detected copy of b: structural boundaries bright,
// flat regions dark.
func Edges(b *pixbuf.Buffer, radius float64) *pixbuf.Buffer {
	return convert.FromImage(effect.EdgeDetection(convert.ToImage(b), radius))
}

// Invert returns a copy of b with every channel inverted.
func Invert(b *pixbuf.Buffer) *pixbuf.Buffer {
	return convert.FromImage(effect.Invert(convert.ToImage(b)))
}

// Filter applies the named filter to b. Known names are "blur",
// "grayscale", "edges", and "invert"; radius is honored by blur and edges
// and ignored otherwise.
func Filter(b *pixbuf.Buffer, name string, radius float64) (*pixbuf.Buffer, error) {
	switch name {
	case "blur":
		return Blur(b, radius), nil
	case "grayscale":
		return Grayscale(b), nil
	case "edges":
		return Edges(b, radius), nil
	case "invert":
		return Invert(b), nil
	default:
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
}
