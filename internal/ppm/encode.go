package ppm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// Encode writes b to w in ASCII PPM ("P3") form: the magic line, the
// dimensions line, the max-value line, then one "<red> <green> <blue>"
// line per pixel in row-major order.
//
// Channels are uint8 by construction, so no clamping is performed. A
// failure while writing the body returns a *WriteError naming the pixel
// that could not be written.
func Encode(w io.Writer, b *pixbuf.Buffer) error {
	if _, err := io.WriteString(w, "P3\n"); err != nil {
		return fmt.Errorf("ppm: failed to write magic value to header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", b.Width(), b.Height()); err != nil {
		return fmt.Errorf("ppm: failed to write image dimensions to header: %w", err)
	}
	if _, err := io.WriteString(w, "255\n"); err != nil {
		return fmt.Errorf("ppm: failed to write max channel value to header: %w", err)
	}

	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", px.Color.R, px.Color.G, px.Color.B); err != nil {
			return &WriteError{X: px.X, Y: px.Y, Err: err}
		}
	}
	return nil
}

// WriteFile persists b to path crash-safely.
//
// The complete body is written to a sibling temporary file (path plus a
// ".tmp" suffix), synced and closed, and only then renamed atomically onto
// path. An interrupted or failed write therefore never leaves path holding
// a partial file: a pre-existing destination keeps its contents until the
// rename succeeds. On failure the temporary file is left in place for
// inspection.
//
// The naming scheme requires path to carry a file extension; extensionless
// destinations are rejected before any I/O.
func WriteFile(path string, b *pixbuf.Buffer) error {
	if filepath.Ext(path) == "" {
		return fmt.Errorf("ppm: destination %q has no file extension to derive a temporary name from", path)
	}
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", tmp, err)
	}

	if err := Encode(f, b); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("could not flush temporary destination %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close temporary destination %q: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not rename %q onto %q: %w", tmp, path, err)
	}
	return nil
}
