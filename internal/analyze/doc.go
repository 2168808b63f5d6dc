// Package analyze provides color analysis and pixel-level filters for
// buffers.
//
// Palette extraction tallies exact pixel colors and merges perceptually
// close shades using CIE Lab distance, so anti-aliasing fringes collapse
// into their parent color instead of polluting the result. Filters (blur,
// grayscale, edge detection, invert) run on the buffer's image.Image
// projection and return new buffers, leaving the input untouched.
package analyze
