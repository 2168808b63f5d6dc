package pixbuf

// Pixel is one element of a buffer scan: a coordinate and the color at it.
type Pixel struct {
	X     int
	Y     int
	Color Color
}

// PixelIterator walks a buffer's pixels in row-major order (y outer, x
// inner) without materializing an auxiliary collection.
//
// The iterator is lazy and finite; obtain a fresh one from Buffer.Pixels to
// restart the scan. It reads through to the buffer, so interleaved Set
// calls are observed by later Next calls.
type PixelIterator struct {
	buf *Buffer
	idx int
}

// Pixels returns an iterator positioned before the first pixel.
func (b *Buffer) Pixels() *PixelIterator {
	return &PixelIterator{buf: b}
}

// Next returns the next pixel and true, or a zero Pixel and false once the
// scan is exhausted. The cursor stops strictly before width*height, so the
// last pixel yielded is always (width-1, height-1).
func (it *PixelIterator) Next() (Pixel, bool) {
	if it.idx >= len(it.buf.pix) {
		return Pixel{}, false
	}
	p := Pixel{
		X:     it.idx % it.buf.width,
		Y:     it.idx / it.buf.width,
		Color: it.buf.pix[it.idx],
	}
	it.idx++
	return p, true
}
