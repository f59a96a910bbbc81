package core

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultLegSize is the side of a cell in pixels at scale 1.
	DefaultLegSize = 10
	// DefaultSpacing is the gap in pixels kept on each side of a cell.
	DefaultSpacing = 1
	// MinScale is the smallest zoom factor SetScaleDelta allows.
	MinScale = 0.1
)

// ErrInvalidSize is returned by NewGrid for dimensions that cannot back a grid.
var ErrInvalidSize = errors.New("invalid grid size")

// Grid is a fixed-size toroidal Game of Life board together with the view
// state (pan offset, zoom) used to map it onto the screen.
type Grid struct {
	width, height int
	cells         []Cell
	next          []Cell

	running    bool
	generation uint64

	xOffset, yOffset int
	scale            float64
	legSize          int
	spacing          int
}

// NewGrid allocates a grid with every cell dead and the simulation paused.
func NewGrid(height, width int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, height, width)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows the cell index", ErrInvalidSize, height, width)
	}
	total := width * height
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, total),
		next:    make([]Cell, total),
		scale:   1,
		legSize: DefaultLegSize,
		spacing: DefaultSpacing,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells exposes the current generation in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.width + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.height + g.height) % g.height
	col = (col%g.width + g.width) % g.width
	return row, col
}

// Cell returns the state at (row, col), wrapping out-of-range coordinates.
func (g *Grid) Cell(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.cells[g.Index(row, col)]
}

// Set stores c at (row, col), wrapping out-of-range coordinates.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.cells[g.Index(row, col)] = c
}

// NeighborCount returns the number of live cells among the eight neighbours
// of (row, col). Edges wrap to the opposite side.
func (g *Grid) NeighborCount(row, col int) int {
	w, h := g.width, g.height
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + h) % h
			nc := (col + dc + w) % w
			if g.cells[nr*w+nc] == Alive {
				count++
			}
		}
	}
	return count
}

// AdvanceGeneration applies the B3/S23 rule to every cell. Each next state is
// computed from the current generation only; the buffers are swapped once the
// whole pass is done. Nothing happens while the grid is paused.
func (g *Grid) AdvanceGeneration() bool {
	if !g.running {
		return false
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.Index(row, col)
			g.next[idx] = nextState(g.cells[idx], g.NeighborCount(row, col))
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
	return true
}

func nextState(c Cell, neighbors int) Cell {
	switch {
	case c == Alive && neighbors < 2:
		return Dead
	case c == Alive && neighbors > 3:
		return Dead
	case c == Dead && neighbors == 3:
		return Alive
	default:
		return c
	}
}

// Running reports whether AdvanceGeneration currently has an effect.
func (g *Grid) Running() bool { return g.running }

// ToggleRunning flips between running and paused.
func (g *Grid) ToggleRunning() { g.running = !g.running }

// Pause stops the simulation.
func (g *Grid) Pause() { g.running = false }

// Run resumes the simulation.
func (g *Grid) Run() { g.running = true }

// Shift pans the grid by (dx, dy) pixels.
func (g *Grid) Shift(dx, dy int) {
	g.xOffset += dx
	g.yOffset += dy
}

// Offset returns the pixel position of the grid's top-left corner.
func (g *Grid) Offset() (int, int) { return g.xOffset, g.yOffset }

// Scale returns the current zoom factor.
func (g *Grid) Scale() float64 { return g.scale }

// SetScaleDelta adds delta to the zoom factor, never going below MinScale.
func (g *Grid) SetScaleDelta(delta float64) {
	g.scale += delta
	if g.scale < MinScale {
		g.scale = MinScale
	}
}

// Reset kills every cell. Dimensions, view state and the running flag are
// kept.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
	g.generation = 0
}

// Kill marks the cell under pixel (x, y) dead. It reports whether the pixel
// resolved to a cell.
func (g *Grid) Kill(x, y int) bool { return g.paint(x, y, Dead) }

// Revive marks the cell under pixel (x, y) alive. It reports whether the
// pixel resolved to a cell.
func (g *Grid) Revive(x, y int) bool { return g.paint(x, y, Alive) }

func (g *Grid) paint(x, y int, c Cell) bool {
	idx, ok := g.PixelToCellIndex(x, y)
	if !ok {
		return false
	}
	g.cells[idx] = c
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Generation returns the number of generations advanced since creation or
// the last Reset.
func (g *Grid) Generation() uint64 { return g.generation }

// Status snapshots the grid for display.
func (g *Grid) Status() Status {
	return Status{
		Width:      g.width,
		Height:     g.height,
		Generation: g.generation,
		Population: g.Population(),
		Running:    g.running,
		Scale:      g.scale,
		OffsetX:    g.xOffset,
		OffsetY:    g.yOffset,
	}
}
