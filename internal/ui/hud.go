//go:build ebiten

package ui

import (
	"image/color"

	"game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a status panel in the top-left corner of the screen.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD, initially shown or hidden.
func NewHUD(visible bool) *HUD {
	return &HUD{visible: visible}
}

// Update toggles the panel with the H key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel for the given snapshot on top of the screen.
func (h *HUD) Draw(screen *ebiten.Image, s core.Status, mode string) {
	if h == nil || !h.visible {
		return
	}
	lines := statusLines(s, mode)
	height := panelPadding*2 + len(lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	for i, line := range lines {
		if line == "" {
			continue
		}
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i >= len(lines)-len(helpLines) {
			fg = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+i*lineHeight+textBaseline, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

const (
	panelMargin  = 8
	panelPadding = 10
	panelWidth   = 230
	lineHeight   = 16
	textBaseline = 12
)
