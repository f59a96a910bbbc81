//go:build ebiten

package app

import (
	"game-of-life/internal/render"
	"game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]Key{
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyR:          KeyR,
	ebiten.KeyS:          KeyS,
}

var buttonBindings = []struct {
	eb  ebiten.MouseButton
	btn Button
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
	{ebiten.MouseButtonRight, ButtonRight},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.Painter
	hud     *ui.HUD

	queue   EventQueue
	keys    []ebiten.Key
	cursorX int
	cursorY int
	wheel   float64
}

// New constructs a Game driving the provided controller.
func New(ctrl *Controller, showHUD bool) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(showHUD),
	}
}

// Update translates this frame's input into events, applies them and
// advances the simulation on the tick cadence.
func (g *Game) Update() error {
	g.collect()
	if !g.ctrl.Drain(&g.queue) {
		return ebiten.Termination
	}
	g.ctrl.Tick()
	g.hud.Update()
	return nil
}

func (g *Game) collect() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(QuitEvent{})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyBindings[k]; ok {
			g.queue.Push(KeyDownEvent{Key: key})
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.cursorX || my != g.cursorY {
		g.cursorX, g.cursorY = mx, my
		g.queue.Push(MouseMotionEvent{X: mx, Y: my})
	}
	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.queue.Push(MouseButtonDownEvent{Button: b.btn, X: mx, Y: my})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.queue.Push(MouseButtonUpEvent{Button: b.btn})
		}
	}

	// Trackpads report fractional wheel offsets; only whole notches zoom.
	_, wy := ebiten.Wheel()
	g.wheel += wy
	if notches := int(g.wheel); notches != 0 {
		g.wheel -= float64(notches)
		g.queue.Push(MouseWheelEvent{Delta: notches})
	}
}

// Draw renders a new frame when the render cadence is due. The screen is not
// cleared between frames, so skipped draws keep the previous frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ctrl.RenderDue() {
		return
	}
	g.painter.Begin(screen)
	g.ctrl.Frame(g.painter)
	g.hud.Draw(screen, g.ctrl.Grid().Status(), g.ctrl.Mode().String())
}

// Layout keeps the logical screen equal to the window so cursor positions
// map one to one onto grid pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
