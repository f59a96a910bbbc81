//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"game-of-life/internal/core"
)

// Painter draws cell rectangles straight onto an ebiten screen image.
type Painter struct {
	target *ebiten.Image
	frames int
}

// NewPainter returns a painter with no target; call Begin before drawing.
func NewPainter() *Painter {
	return &Painter{}
}

// Begin selects the screen the following draw calls land on.
func (p *Painter) Begin(dst *ebiten.Image) {
	p.target = dst
}

// Frames returns how many frames have been presented.
func (p *Painter) Frames() int { return p.frames }

// Clear fills the whole target with c.
func (p *Painter) Clear(c core.Color) {
	if p.target == nil {
		return
	}
	p.target.Fill(rgba(c))
}

// FillRect draws r in c. Rectangles outside the target are clipped by ebiten.
func (p *Painter) FillRect(r core.Rect, c core.Color) {
	if p.target == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(p.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// Present ends the frame. ebiten shows the screen once Draw returns.
func (p *Painter) Present() {
	p.frames++
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
