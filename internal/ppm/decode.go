package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// Decode reads an ASCII PPM ("P3") stream and returns the fully populated
// pixel buffer it describes.
//
// Decoding is strict and all-or-nothing: any deviation from the layout
// documented in this package returns a typed error and no buffer. The
// stream is consumed line by line; no partial or streaming decode is
// offered.
//
// Errors are *FormatError for malformed lines, *TruncatedError when the
// stream ends short of width*height pixels, and *ExcessError as soon as a
// pixel line beyond width*height is seen.
func Decode(r io.Reader) (*pixbuf.Buffer, error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	magic, ok := next()
	if !ok || magic != "P3" {
		return nil, &FormatError{Line: 1, Expected: `magic "P3"`, Actual: magic}
	}

	dims, ok := next()
	if !ok {
		return nil, &FormatError{Line: 2, Expected: `dimensions "<width> <height>"`, Actual: ""}
	}
	width, height, err := parseDimensions(dims)
	if err != nil {
		return nil, &FormatError{Line: 2, Expected: `dimensions "<width> <height>"`, Actual: dims}
	}

	maxVal, ok := next()
	if !ok || maxVal != "255" {
		return nil, &FormatError{Line: 3, Expected: `max channel value "255"`, Actual: maxVal}
	}

	want := width * height
	pix := make([]pixbuf.Color, 0, want)
	for {
		text, ok := next()
		if !ok {
			break
		}
		if len(pix) == want {
			return nil, &ExcessError{Width: width, Height: height, Line: line}
		}
		c, err := parsePixel(text)
		if err != nil {
			return nil, &FormatError{Line: line, Expected: `pixel "<red> <green> <blue>"`, Actual: text}
		}
		pix = append(pix, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ppm: failed to read stream: %w", err)
	}
	if len(pix) < want {
		return nil, &TruncatedError{Width: width, Height: height, Got: len(pix)}
	}

	return pixbuf.FromPixels(width, height, pix)
}

// ReadFile decodes the PPM file at path. The file handle is released on
// every return path.
func ReadFile(path string) (*pixbuf.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// parseDimensions splits a header dimensions line into width and height.
// Exactly two single-space-separated non-negative integers are accepted.
func parseDimensions(s string) (width, height int, err error) {
	fields := strings.Split(s, " ")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	w, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return 0, 0, err
	}
	return int(w), int(h), nil
}

// parsePixel parses a "<red> <green> <blue>" line. ParseUint with a bit
// size of 8 enforces the [0,255] channel range.
func parsePixel(s string) (pixbuf.Color, error) {
	fields := strings.Split(s, " ")
	if len(fields) != 3 {
		return pixbuf.Color{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return pixbuf.Color{}, err
		}
		ch[i] = uint8(v)
	}
	return pixbuf.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
