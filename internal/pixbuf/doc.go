// Package pixbuf provides the in-memory pixel buffer at the heart of the
// toolkit.
//
// A Buffer is a rectangular grid of 8-bit RGB colors stored row-major: the
// pixel at (x, y) lives at index y*width + x, and the backing store always
// holds exactly width*height entries. Buffers are created blank (all
// pixels Black) via New, or assembled from decoded pixel data via
// FromPixels.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner; X grows
// rightward and Y grows downward. Accesses outside the grid return a
// *BoundsError carrying the offending coordinate and the buffer extent —
// there is no clamping, wraparound, or silent failure.
//
// # Iteration
//
// Buffer.Pixels returns a lazy cursor over every pixel in row-major order.
// Each call produces an independent, restartable scan:
//
//	it := buf.Pixels()
//	for px, ok := it.Next(); ok; px, ok = it.Next() {
//		// px.X, px.Y, px.Color
//	}
//
// # Thread Safety
//
// Buffers are not synchronized. The expected ownership model is a single
// writer; wrap a Buffer in your own locking if you must share it.
package pixbuf
