package pixbuf

import "fmt"

// BoundsError reports a pixel access outside a buffer's extent.
//
// It carries the offending coordinate and the buffer dimensions so callers
// can diagnose the violation without re-querying the buffer.
type BoundsError struct {
	X, Y          int // Coordinate that was requested
	Width, Height int // Extent of the buffer at the time of the access
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("x=%d y=%d is out of bounds of image with dimensions w=%d h=%d",
		e.X, e.Y, e.Width, e.Height)
}

// Buffer is an in-memory grid of RGB pixels stored row-major.
//
// The pixel at (x, y) lives at index y*width + x. The backing slice always
// holds exactly width*height entries: mutation replaces slots, never
// resizes. A zero-size Buffer (width or height 0) is valid and holds no
// pixels.
//
// Buffer is not safe for concurrent mutation; callers that share a Buffer
// across goroutines must synchronize access themselves.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// New creates a width x height buffer with every pixel set to Black.
//
// Dimensions must be non-negative. Zero is permitted for either dimension
// and yields an empty buffer.
func New(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// FromPixels wires an existing row-major pixel slice into a Buffer, taking
// ownership of the slice. The slice length must equal width*height; any
// other length violates the buffer invariant and is rejected.
func FromPixels(width, height int, pix []Color) (*Buffer, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match dimensions %dx%d", len(pix), width, height)
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// At returns the color at (x, y).
//
// Coordinates are 0-based with origin at the top-left. If (x, y) lies
// outside the buffer, At returns a *BoundsError; there is no clamping or
// wraparound.
func (b *Buffer) At(x, y int) (Color, error) {
	idx, err := b.index(x, y)
	if err != nil {
		return Color{}, err
	}
	return b.pix[idx], nil
}

// Set overwrites the color at (x, y).
//
// Like At, Set returns a *BoundsError for coordinates outside the buffer
// and never grows or shrinks the pixel grid.
func (b *Buffer) Set(x, y int, c Color) error {
	idx, err := b.index(x, y)
	if err != nil {
		return err
	}
	b.pix[idx] = c
	return nil
}

// index maps (x, y) to a flat row-major index, validating both axes.
// Checking each axis separately rules out coordinates like (width, 0)
// that a raw y*width+x < len(pix) test would let through.
func (b *Buffer) index(x, y int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, &BoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return y*b.width + x, nil
}
