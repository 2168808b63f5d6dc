package analyze

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// mergeDistance is the CIE Lab distance under which two colors are
// treated as the same palette entry. 0.05 groups shades the eye reads as
// one color while keeping distinct hues apart.
const mergeDistance = 0.05

// PaletteEntry is one color of an extracted palette with its frequency.
type PaletteEntry struct {
	Hex        string       `json:"hex"`        // Color as "#RRGGBB"
	RGB        pixbuf.Color `json:"rgb"`        // Color components
	Count      int          `json:"count"`      // Pixels grouped into this entry
	Percentage float64      `json:"percentage"` // Share of all pixels (0-100, one decimal)
}

// Palette extracts the up-to-count most frequent colors of b, most common
// first.
//
// Exact pixel colors are tallied, then merged perceptually: a color
// within mergeDistance (CIE Lab) of a more frequent one is folded into
// that entry rather than reported separately. An empty buffer yields an
// empty palette.
func Palette(b *pixbuf.Buffer, count int) []PaletteEntry {
	total := b.Width() * b.Height()
	if total == 0 || count <= 0 {
		return nil
	}

	tally := make(map[pixbuf.Color]int)
	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		tally[px.Color]++
	}

	type freq struct {
		color pixbuf.Color
		count int
	}
	distinct := make([]freq, 0, len(tally))
	for c, n := range tally {
		distinct = append(distinct, freq{color: c, count: n})
	}
	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].count != distinct[j].count {
			return distinct[i].count > distinct[j].count
		}
		return distinct[i].color.Hex() < distinct[j].color.Hex()
	})

	// Fold each color into the nearest established entry, or open a new one.
	var entries []PaletteEntry
	labs := make([]colorful.Color, 0, len(distinct))
	for _, f := range distinct {
		lab := toColorful(f.color)
		merged := false
		for i := range entries {
			if lab.DistanceLab(labs[i]) < mergeDistance {
				entries[i].Count += f.count
				merged = true
				break
			}
		}
		if !merged {
			entries = append(entries, PaletteEntry{
				Hex:   f.color.Hex(),
				RGB:   f.color,
				Count: f.count,
			})
			labs = append(labs, lab)
		}
	}

	// Merging can reorder totals; sort again before truncating.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Hex < entries[j].Hex
	})
	if len(entries) > count {
		entries = entries[:count]
	}
	for i := range entries {
		entries[i].Percentage = math.Round(float64(entries[i].Count)/float64(total)*1000) / 10
	}
	return entries
}

// Average returns the arithmetic mean color of b, or Black for an empty
// buffer.
func Average(b *pixbuf.Buffer) pixbuf.Color {
	total := b.Width() * b.Height()
	if total == 0 {
		return pixbuf.Black
	}

	var r, g, bl uint64
	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		r += uint64(px.Color.R)
		g += uint64(px.Color.G)
		bl += uint64(px.Color.B)
	}
	n := uint64(total)
	return pixbuf.Color{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n)}
}

func toColorful(c pixbuf.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
