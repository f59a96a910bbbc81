package app

// Key identifies the keyboard keys the loop reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyRight
	KeyR
	KeyS
)

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is a discrete input event delivered by the windowing layer.
type Event interface {
	event()
}

// QuitEvent is sent when the window is closed.
type QuitEvent struct{}

// KeyDownEvent reports a key press.
type KeyDownEvent struct {
	Key Key
}

// MouseButtonDownEvent reports a button press at pixel (X, Y).
type MouseButtonDownEvent struct {
	Button Button
	X, Y   int
}

// MouseButtonUpEvent reports a button release.
type MouseButtonUpEvent struct {
	Button Button
}

// MouseMotionEvent reports the cursor's new position.
type MouseMotionEvent struct {
	X, Y int
}

// MouseWheelEvent reports wheel movement in notches; positive is away from
// the user.
type MouseWheelEvent struct {
	Delta int
}

func (QuitEvent) event()            {}
func (KeyDownEvent) event()         {}
func (MouseButtonDownEvent) event() {}
func (MouseButtonUpEvent) event()   {}
func (MouseMotionEvent) event()     {}
func (MouseWheelEvent) event()      {}

// EventSource is a non-blocking event pump.
type EventSource interface {
	// PollEvent returns the next pending event, or false when none is queued.
	PollEvent() (Event, bool)
}

// EventQueue is a FIFO EventSource backed by a slice.
type EventQueue struct {
	pending []Event
}

// Push appends events to the queue.
func (q *EventQueue) Push(evs ...Event) {
	q.pending = append(q.pending, evs...)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.pending) }

// PollEvent pops the oldest queued event.
func (q *EventQueue) PollEvent() (Event, bool) {
	if len(q.pending) == 0 {
		return nil, false
	}
	ev := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = nil
	}
	return ev, true
}
