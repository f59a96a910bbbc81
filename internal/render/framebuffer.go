package render

import "game-of-life/internal/core"

// Framebuffer is a software RGBA canvas. Pixels are stored row-major, four
// bytes per pixel, fully opaque.
type Framebuffer struct {
	w, h   int
	pix    []byte
	frames int
}

// NewFramebuffer allocates a framebuffer of w*h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the pixel buffer when the dimensions change.
func (fb *Framebuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == fb.w && h == fb.h && fb.pix != nil {
		return
	}
	fb.w, fb.h = w, h
	fb.pix = make([]byte, 4*w*h)
}

// Size returns the dimensions in pixels.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Pix exposes the RGBA bytes.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// Frames counts the presented frames.
func (fb *Framebuffer) Frames() int { return fb.frames }

// Clear fills the whole buffer with c.
func (fb *Framebuffer) Clear(c core.Color) {
	for i := 0; i < len(fb.pix); i += 4 {
		setRGBA(fb.pix[i:i+4], c)
	}
}

// FillRect fills r, clipped to the buffer, with c.
func (fb *Framebuffer) FillRect(r core.Rect, c core.Color) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, fb.w), min(r.Y+r.H, fb.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := fb.pix[4*(y*fb.w+x0) : 4*(y*fb.w+x1)]
		for i := 0; i < len(row); i += 4 {
			setRGBA(row[i:i+4], c)
		}
	}
}

// At returns the colour at (x, y); pixels outside the buffer read as black.
func (fb *Framebuffer) At(x, y int) core.Color {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return core.Black
	}
	base := 4 * (y*fb.w + x)
	return core.Color{R: fb.pix[base+0], G: fb.pix[base+1], B: fb.pix[base+2]}
}

// Present marks the end of a frame.
func (fb *Framebuffer) Present() { fb.frames++ }

func setRGBA(px []byte, c core.Color) {
	px[0] = c.R
	px[1] = c.G
	px[2] = c.B
	px[3] = 0xff
}
