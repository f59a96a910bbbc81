package core

import "math"

// CellPixelSize is the on-screen pitch of one cell, spacing included.
func (g *Grid) CellPixelSize() int {
	size := int(math.Floor(float64(g.legSize+g.spacing*2) * g.scale))
	if size < 1 {
		return 1
	}
	return size
}

// CellBounds returns the full pixel square owned by (row, col). Every pixel
// that PixelToCellIndex maps to the cell lies inside it.
func (g *Grid) CellBounds(row, col int) Rect {
	size := g.CellPixelSize()
	return Rect{
		X: g.xOffset + col*size,
		Y: g.yOffset + row*size,
		W: size,
		H: size,
	}
}

// PixelToCellIndex maps a screen pixel back to the linear index of the cell
// drawn there. It reports false for pixels outside the grid.
func (g *Grid) PixelToCellIndex(x, y int) (int, bool) {
	size := g.CellPixelSize()
	col := floorDiv(x-g.xOffset, size)
	row := floorDiv(y-g.yOffset, size)
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}
	return g.Index(row, col), true
}

// Render emits one rectangle per cell in row-major order: white for live
// cells, black for dead ones. Each rectangle is the cell's CellBounds, so every
// pixel PixelToCellIndex resolves lies inside the rectangle drawn for it. The
// grid is not modified.
func (g *Grid) Render(draw DrawRectFunc) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Black
			if g.cells[g.Index(row, col)] == Alive {
				c = White
			}
			draw(g.CellBounds(row, col), c)
		}
	}
}

// floorDiv divides rounding towards negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
