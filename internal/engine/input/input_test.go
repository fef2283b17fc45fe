package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestFromKeycode(t *testing.T) {
	tests := []struct {
		code sdl.Keycode
		want Key
	}{
		{sdl.K_w, KeyW},
		{sdl.K_ESCAPE, KeyEscape},
		{sdl.K_l, KeyL},
		{sdl.K_F1, KeyUnknown},
	}
	for _, tt := range tests {
		if got := FromKeycode(tt.code); got != tt.want {
			t.Errorf("FromKeycode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"window move ignored", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_a}},
			Event{Type: EventKeyDown, Key: KeyA},
			true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_z}},
			Event{Type: EventKeyDown, Key: KeyZ, Repeat: true},
			true,
		},
		{
			"key up",
			&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_d}},
			Event{Type: EventKeyUp, Key: KeyD},
			true,
		},
		{"unmapped key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F5}}, Event{}, false},
		{
			"button",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20},
			Event{Type: EventMouseDown, Button: ButtonLeft, MouseX: 10, MouseY: 20},
			true,
		},
		{
			"motion",
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 5, Y: 6},
			Event{Type: EventMouseMove, MouseX: 5, MouseY: 6},
			true,
		},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1}, Event{Type: EventWheel, Wheel: 1}, true},
		{
			"flipped wheel",
			&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			Event{Type: EventWheel, Wheel: -1},
			true,
		},
		{"horizontal wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "escape" || Key(99).String() != "unknown" {
		t.Errorf("names = %q %q", KeyEscape.String(), Key(99).String())
	}
}
