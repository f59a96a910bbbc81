package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

var (
	// White is used for live cells.
	White = Color{R: 255, G: 255, B: 255}
	// Black is used for dead cells.
	Black = Color{}
	// Background fills the canvas behind the grid and shows through the
	// spacing between cells.
	Background = Color{R: 40, G: 40, B: 48}
)

// Rect is an axis-aligned pixel rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// DrawRectFunc receives one filled rectangle per rendered cell.
type DrawRectFunc func(r Rect, c Color)

// Status captures the grid state shown on the HUD.
type Status struct {
	Width, Height int

	Generation uint64
	Population int
	Running    bool

	Scale            float64
	OffsetX, OffsetY int
}
