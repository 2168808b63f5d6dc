// Package convert bridges pixel buffers and the wider image ecosystem.
//
// It translates between pixbuf.Buffer and image.Image, loads and saves
// the common raster formats (PPM via the strict codec in internal/ppm;
// PNG, JPEG, GIF, BMP, TIFF and WebP via the stdlib and golang.org/x/image
// decoders), scales buffers with Lanczos resampling, and offers a
// concurrency-safe BufferCache for processes that touch the same files
// repeatedly.
//
// Alpha channels are dropped on import and emitted fully opaque on export;
// the buffer model is strictly 8-bit RGB.
package convert
