// Package ppm implements a strict codec for the ASCII Portable PixMap
// ("P3") text format.
//
// # On-Disk Layout
//
// A P3 file is line-oriented, newline-terminated ASCII:
//
//	P3
//	<width> <height>
//	255
//	<r0> <g0> <b0>
//	<r1> <g1> <b1>
//	...
//
// with exactly width*height pixel lines in row-major order (y outer, x
// inner), each holding three space-separated decimal channel values in
// [0,255]. Only 8-bit channels are supported: a max-value line other than
// 255 is rejected, never rescaled. The binary "P6" variant, comments, and
// free-form whitespace are not supported.
//
// # Decoding
//
// Decode is all-or-nothing. Every violation — wrong magic, malformed
// header, bad pixel line, too few or too many pixels — returns a typed
// error (*FormatError, *TruncatedError, *ExcessError) and no buffer.
// Excess pixel data is reported as soon as the first surplus line is
// seen, not after consuming the rest of the stream.
//
// # Crash-Safe Encoding
//
// WriteFile never exposes a partially written file at the destination
// path. The full body goes to a sibling "<path>.tmp" file which is synced,
// closed, and atomically renamed onto the destination only once complete.
// A process crash mid-write leaves the previous destination contents (if
// any) untouched.
package ppm
