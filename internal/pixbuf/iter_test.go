package pixbuf

import "testing"

func TestPixels_Completeness(t *testing.T) {
	const w, h = 4, 3
	b := New(w, h)

	seen := make(map[[2]int]int)
	count := 0
	it := b.Pixels()
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		seen[[2]int{px.X, px.Y}]++
		count++
	}

	if count != w*h {
		t.Fatalf("yielded %d pixels, want %d", count, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[[2]int{x, y}] != 1 {
				t.Errorf("coordinate (%d,%d) seen %d times, want exactly once", x, y, seen[[2]int{x, y}])
			}
		}
	}
}

func TestPixels_RowMajorOrder(t *testing.T) {
	b := New(3, 2)

	want := []struct{ x, y int }{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	}

	it := b.Pixels()
	for i, wc := range want {
		px, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted at step %d", i)
		}
		if px.X != wc.x || px.Y != wc.y {
			t.Errorf("step %d: got (%d,%d), want (%d,%d)", i, px.X, px.Y, wc.x, wc.y)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator should be exhausted after width*height pixels")
	}
}

func TestPixels_StopsAtLastPixel(t *testing.T) {
	b := New(2, 2)
	it := b.Pixels()

	var last Pixel
	for px, ok := it.Next(); ok; px, ok = it.Next() {
		last = px
	}
	if last.X != 1 || last.Y != 1 {
		t.Errorf("last pixel: got (%d,%d), want (1,1)", last.X, last.Y)
	}

	// Exhausted iterators stay exhausted.
	if _, ok := it.Next(); ok {
		t.Error("Next after exhaustion should keep returning false")
	}
}

func TestPixels_Restartable(t *testing.T) {
	b := New(2, 1)

	first := b.Pixels()
	first.Next()
	first.Next()

	second := b.Pixels()
	px, ok := second.Next()
	if !ok || px.X != 0 || px.Y != 0 {
		t.Errorf("fresh iterator should start at (0,0), got (%d,%d) ok=%v", px.X, px.Y, ok)
	}
}

func TestPixels_EmptyBuffer(t *testing.T) {
	for _, b := range []*Buffer{New(0, 0), New(0, 5), New(5, 0)} {
		if _, ok := b.Pixels().Next(); ok {
			t.Errorf("iterator over %dx%d buffer should yield nothing", b.Width(), b.Height())
		}
	}
}

func TestPixels_ObservesMutation(t *testing.T) {
	b := New(2, 1)
	it := b.Pixels()
	it.Next()

	red := Color{R: 255}
	if err := b.Set(1, 0, red); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	px, ok := it.Next()
	if !ok {
		t.Fatal("iterator exhausted early")
	}
	if px.Color != red {
		t.Errorf("iterator should observe mutation: got %v, want %v", px.Color, red)
	}
}
