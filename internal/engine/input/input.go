// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Mouse buttons.
const (
	ButtonLeft   = sdl.BUTTON_LEFT
	ButtonMiddle = sdl.BUTTON_MIDDLE
	ButtonRight  = sdl.BUTTON_RIGHT
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
	Width  int32
	Height int32
	MouseX int32
	MouseY int32
	Button uint8
	Wheel  int32 // positive scrolls away from the user
}

// Source yields the events received since the previous poll.
type Source interface {
	Poll() []Event
}

// Input polls SDL events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Poll drains the SDL queue. The returned slice is reused by the next call.
func (i *Input) Poll() []Event {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.events = append(i.events, e)
		}
	}
	return i.events
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: e.Data1, Height: e.Data2}, true
		}

	case *sdl.KeyboardEvent:
		key := FromKeycode(e.Keysym.Sym)
		if key == KeyUnknown {
			return Event{}, false
		}
		t := EventKeyDown
		if e.Type == sdl.KEYUP {
			t = EventKeyUp
		}
		return Event{Type: t, Key: key, Repeat: e.Repeat != 0}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: e.X, MouseY: e.Y}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		return Event{Type: t, MouseX: e.X, MouseY: e.Y, Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		if y != 0 {
			return Event{Type: EventWheel, Wheel: y}, true
		}
	}
	return Event{}, false
}
