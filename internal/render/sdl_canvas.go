//go:build sdl

package render

import (
	"log"

	"game-of-life/internal/core"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLCanvas draws through an SDL renderer.
type SDLCanvas struct {
	r      *sdl.Renderer
	failed bool
}

// NewSDLCanvas wraps an existing renderer.
func NewSDLCanvas(r *sdl.Renderer) *SDLCanvas {
	return &SDLCanvas{r: r}
}

// Clear fills the back buffer with c.
func (s *SDLCanvas) Clear(c core.Color) {
	s.check(s.r.SetDrawColor(c.R, c.G, c.B, 0xff))
	s.check(s.r.Clear())
}

// FillRect fills r with c.
func (s *SDLCanvas) FillRect(r core.Rect, c core.Color) {
	s.check(s.r.SetDrawColor(c.R, c.G, c.B, 0xff))
	s.check(s.r.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}))
}

// Present flips the back buffer. Draw errors seen during the frame are
// logged once.
func (s *SDLCanvas) Present() {
	s.r.Present()
	s.failed = false
}

func (s *SDLCanvas) check(err error) {
	if err == nil || s.failed {
		return
	}
	s.failed = true
	log.Printf("sdl draw: %v", err)
}
