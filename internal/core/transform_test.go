package core

import "testing"

func TestPixelToCellIndex(t *testing.T) {
	g := newTestGrid(t, 4, 5)
	g.Shift(20, 30)
	size := g.CellPixelSize()

	cases := []struct {
		name string
		x, y int
		idx  int
		ok   bool
	}{
		{"origin", 20, 30, 0, true},
		{"last pixel of first cell", 20 + size - 1, 30 + size - 1, 0, true},
		{"second column", 20 + size, 30, 1, true},
		{"last cell", 20 + 5*size - 1, 30 + 4*size - 1, 19, true},
		{"left of grid", 19, 30, 0, false},
		{"above grid", 20, 29, 0, false},
		{"right of grid", 20 + 5*size, 30, 0, false},
		{"below grid", 20, 30 + 4*size, 0, false},
		{"far negative", -1000, -1000, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := g.PixelToCellIndex(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && idx != tc.idx {
				t.Fatalf("idx = %d, want %d", idx, tc.idx)
			}
		})
	}
}

func TestPixelLeftOfGridIsNone(t *testing.T) {
	for _, off := range []int{0, 1, 11, 12, 250, -37} {
		g := newTestGrid(t, 3, 3)
		g.Shift(off, 0)
		if _, ok := g.PixelToCellIndex(off-1, 0); ok {
			t.Fatalf("offset %d: pixel x_offset-1 resolved to a cell", off)
		}
		if _, ok := g.PixelToCellIndex(off, 0); !ok {
			t.Fatalf("offset %d: pixel x_offset did not resolve", off)
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	views := []struct {
		dx, dy int
		scale  float64
	}{
		{0, 0, 0},
		{-17, 9, 0.7},
		{33, -50, 1.9},
		{5, 5, -0.8},
	}
	for _, v := range views {
		g := newTestGrid(t, 6, 9)
		g.Shift(v.dx, v.dy)
		g.SetScaleDelta(v.scale)

		var drawn []Rect
		g.Render(func(r Rect, _ Color) { drawn = append(drawn, r) })

		for y := -60; y < 160; y++ {
			for x := -60; x < 200; x++ {
				idx, ok := g.PixelToCellIndex(x, y)
				if !ok {
					continue
				}
				if r := drawn[idx]; !r.Contains(x, y) {
					t.Fatalf("scale %v: pixel (%d,%d) -> cell %d drawn at %+v", g.Scale(), x, y, idx, r)
				}
			}
		}
	}
}

func TestRenderTraversal(t *testing.T) {
	g := newTestGrid(t, 2, 3)
	g.Set(0, 1, Alive)
	g.Set(1, 2, Alive)
	g.Shift(4, 8)

	var rects []Rect
	var colors []Color
	g.Render(func(r Rect, c Color) {
		rects = append(rects, r)
		colors = append(colors, c)
	})

	if len(rects) != 6 {
		t.Fatalf("draw calls = %d, want 6", len(rects))
	}
	wantColors := []Color{Black, White, Black, Black, Black, White}
	for i, c := range colors {
		if c != wantColors[i] {
			t.Fatalf("draw %d colour = %+v, want %+v", i, c, wantColors[i])
		}
	}
	size := g.CellPixelSize()
	for i, r := range rects {
		row, col := i/3, i%3
		want := Rect{X: 4 + col*size, Y: 8 + row*size, W: size, H: size}
		if r != want {
			t.Fatalf("draw %d rect = %+v, want %+v", i, r, want)
		}
	}
	if g.Population() != 2 {
		t.Fatal("render mutated the grid")
	}
}

func TestRenderedCellContainsItsTopLeftPixel(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.Shift(20, 30)

	idx, ok := g.PixelToCellIndex(20, 30)
	if !ok || idx != 0 {
		t.Fatalf("PixelToCellIndex(20,30) = %d,%v, want 0,true", idx, ok)
	}
	var first *Rect
	g.Render(func(r Rect, _ Color) {
		if first == nil {
			first = &r
		}
	})
	if first == nil || !first.Contains(20, 30) {
		t.Fatalf("first rendered rect %+v does not contain (20,30)", first)
	}
}

func TestRenderAtMinimumScale(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	g.SetScaleDelta(-5)
	g.Render(func(r Rect, _ Color) {
		if r.Empty() {
			t.Fatalf("empty rect %+v at scale %v", r, g.Scale())
		}
	})
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 12, 0}, {11, 12, 0}, {12, 12, 1}, {-1, 12, -1}, {-12, 12, -1}, {-13, 12, -2},
	}
	for _, tc := range cases {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
