//go:build sdl

package app

import "github.com/veandco/go-sdl2/sdl"

// SDLEvents is an EventSource over the SDL event queue.
type SDLEvents struct{}

// PollEvent returns the next SDL event the loop understands, skipping the
// rest. It never blocks.
func (SDLEvents) PollEvent() (Event, bool) {
	for raw := sdl.PollEvent(); raw != nil; raw = sdl.PollEvent() {
		if ev, ok := translateSDL(raw); ok {
			return ev, true
		}
	}
	return nil, false
}

func translateSDL(raw sdl.Event) (Event, bool) {
	switch e := raw.(type) {
	case *sdl.QuitEvent:
		return QuitEvent{}, true
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return nil, false
		}
		return KeyDownEvent{Key: sdlKey(e.Keysym.Sym)}, true
	case *sdl.MouseButtonEvent:
		btn, ok := sdlButton(e.Button)
		if !ok {
			return nil, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return MouseButtonDownEvent{Button: btn, X: int(e.X), Y: int(e.Y)}, true
		}
		return MouseButtonUpEvent{Button: btn}, true
	case *sdl.MouseMotionEvent:
		return MouseMotionEvent{X: int(e.X), Y: int(e.Y)}, true
	case *sdl.MouseWheelEvent:
		delta := int(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		if delta == 0 {
			return nil, false
		}
		return MouseWheelEvent{Delta: delta}, true
	}
	return nil, false
}

func sdlKey(k sdl.Keycode) Key {
	switch k {
	case sdl.K_ESCAPE:
		return KeyEscape
	case sdl.K_SPACE:
		return KeySpace
	case sdl.K_RIGHT:
		return KeyRight
	case sdl.K_r:
		return KeyR
	case sdl.K_s:
		return KeyS
	}
	return KeyUnknown
}

func sdlButton(b uint8) (Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return ButtonRight, true
	}
	return 0, false
}
