package ppm

import "fmt"

// FormatError reports a malformed line in a P3 stream: a wrong magic
// marker, a bad dimensions or max-value header line, or a pixel line with
// the wrong token count or an unparseable channel value.
type FormatError struct {
	Line     int    // 1-based line number within the stream
	Expected string // What the decoder required at this line
	Actual   string // The offending line content
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ppm: line %d: expected %s, got %q", e.Line, e.Expected, e.Actual)
}

// TruncatedError reports a stream that ended before supplying
// width*height pixels.
type TruncatedError struct {
	Width  int
	Height int
	Got    int // Pixels actually present
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("ppm: truncated file: got %d of %d pixels for %dx%d image",
		e.Got, e.Width*e.Height, e.Width, e.Height)
}

// ExcessError reports a pixel line beyond the width*height pixels the
// header promised. It is raised as soon as the surplus line is seen.
type ExcessError struct {
	Width  int
	Height int
	Line   int // 1-based line number of the first surplus pixel line
}

func (e *ExcessError) Error() string {
	return fmt.Sprintf("ppm: line %d: excess pixel data beyond %dx%d image",
		e.Line, e.Width, e.Height)
}

// WriteError reports a failure while writing a pixel line, identifying
// which pixel could not be written. It wraps the underlying I/O error.
type WriteError struct {
	X, Y int
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("ppm: failed to write pixel at x=%d y=%d: %v", e.X, e.Y, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
