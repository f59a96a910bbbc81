package app

import (
	"time"

	"game-of-life/internal/core"
)

// ScaleStep is the zoom change per wheel notch.
const ScaleStep = 0.1

// Mode is the drag interaction started by a mouse button press.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModePaintingAlive
	ModePaintingDead
)

func (m Mode) String() string {
	switch m {
	case ModePanning:
		return "panning"
	case ModePaintingAlive:
		return "painting alive"
	case ModePaintingDead:
		return "painting dead"
	default:
		return "idle"
	}
}

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	Present()
}

// Controller owns the grid and turns input events and elapsed time into
// grid mutations and frames.
type Controller struct {
	grid *core.Grid
	mode Mode

	cursorX, cursorY int

	tick  *core.Cadence
	frame *core.Cadence

	background core.Color
	quit       bool
}

// NewController wires a grid to tick and render cadences. A nil clock uses
// time.Now.
func NewController(grid *core.Grid, tick, frame time.Duration, clock func() time.Time) *Controller {
	return &Controller{
		grid:       grid,
		tick:       core.NewCadence(tick, clock),
		frame:      core.NewCadence(frame, clock),
		background: core.Background,
	}
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Mode returns the active drag mode.
func (c *Controller) Mode() Mode { return c.mode }

// Quit reports whether a quit signal has been handled.
func (c *Controller) Quit() bool { return c.quit }

// HandleEvent applies a single input event.
func (c *Controller) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case QuitEvent:
		c.quit = true
	case KeyDownEvent:
		c.handleKey(e.Key)
	case MouseButtonDownEvent:
		c.cursorX, c.cursorY = e.X, e.Y
		switch e.Button {
		case ButtonLeft:
			c.mode = ModePaintingAlive
			c.grid.Revive(e.X, e.Y)
		case ButtonRight:
			c.mode = ModePaintingDead
			c.grid.Kill(e.X, e.Y)
		case ButtonMiddle:
			c.mode = ModePanning
		}
	case MouseButtonUpEvent:
		if c.mode == modeFor(e.Button) {
			c.mode = ModeIdle
		}
	case MouseMotionEvent:
		dx, dy := e.X-c.cursorX, e.Y-c.cursorY
		c.cursorX, c.cursorY = e.X, e.Y
		switch c.mode {
		case ModePanning:
			c.grid.Shift(dx, dy)
		case ModePaintingAlive:
			c.grid.Revive(e.X, e.Y)
		case ModePaintingDead:
			c.grid.Kill(e.X, e.Y)
		}
	case MouseWheelEvent:
		c.grid.SetScaleDelta(float64(e.Delta) * ScaleStep)
	}
}

func (c *Controller) handleKey(k Key) {
	switch k {
	case KeyEscape:
		c.quit = true
	case KeySpace:
		c.grid.ToggleRunning()
	case KeyRight:
		c.SingleStep()
	case KeyR:
		c.grid.Reset()
	case KeyS:
		c.grid.Randomize(time.Now().UnixNano())
	}
}

func modeFor(b Button) Mode {
	switch b {
	case ButtonLeft:
		return ModePaintingAlive
	case ButtonRight:
		return ModePaintingDead
	case ButtonMiddle:
		return ModePanning
	}
	return ModeIdle
}

// SingleStep advances exactly one generation whether or not the grid is
// running. The grid is left paused afterwards.
func (c *Controller) SingleStep() {
	c.grid.Run()
	c.grid.AdvanceGeneration()
	c.grid.Pause()
}

// Drain handles every pending event. It returns false once a quit signal has
// been seen; events queued behind it are left unread.
func (c *Controller) Drain(src EventSource) bool {
	for !c.quit {
		ev, ok := src.PollEvent()
		if !ok {
			break
		}
		c.HandleEvent(ev)
	}
	return !c.quit
}

// Tick advances one generation when the tick cadence is due. A paused grid
// still consumes the tick.
func (c *Controller) Tick() bool {
	if !c.tick.Ready() {
		return false
	}
	return c.grid.AdvanceGeneration()
}

// RenderDue reports whether the render cadence allows a new frame, and
// restarts it if so.
func (c *Controller) RenderDue() bool { return c.frame.Ready() }

// Frame clears the canvas, draws every cell and presents the result.
func (c *Controller) Frame(canvas Canvas) {
	canvas.Clear(c.background)
	c.grid.Render(canvas.FillRect)
	canvas.Present()
}

// Iterate runs one pass of the interaction loop: clear, drain input, tick the
// simulation and render when the frame cadence is due. It returns false when
// the loop should stop.
func (c *Controller) Iterate(src EventSource, canvas Canvas) bool {
	canvas.Clear(c.background)
	if !c.Drain(src) {
		return false
	}
	c.Tick()
	if c.RenderDue() {
		c.grid.Render(canvas.FillRect)
		canvas.Present()
	}
	return true
}

// Run iterates until a quit signal arrives, calling idle between
// iterations when it is non-nil.
func (c *Controller) Run(src EventSource, canvas Canvas, idle func()) {
	for c.Iterate(src, canvas) {
		if idle != nil {
			idle()
		}
	}
}
