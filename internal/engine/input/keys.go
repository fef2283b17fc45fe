package input

import "github.com/veandco/go-sdl2/sdl"

// Key is a key the scene responds to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyW
	KeyA
	KeyS
	KeyD
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyL
	KeyP
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyQ:       "q",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyZ:       "z",
	KeyX:       "x",
	KeyC:       "c",
	KeyV:       "v",
	KeyB:       "b",
	KeyL:       "l",
	KeyP:       "p",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

var sdlKeys = map[sdl.Keycode]Key{
	sdl.K_ESCAPE: KeyEscape,
	sdl.K_q:      KeyQ,
	sdl.K_w:      KeyW,
	sdl.K_a:      KeyA,
	sdl.K_s:      KeyS,
	sdl.K_d:      KeyD,
	sdl.K_z:      KeyZ,
	sdl.K_x:      KeyX,
	sdl.K_c:      KeyC,
	sdl.K_v:      KeyV,
	sdl.K_b:      KeyB,
	sdl.K_l:      KeyL,
	sdl.K_p:      KeyP,
}

// FromKeycode maps an SDL keycode to a Key. Keys the scene ignores map to
// KeyUnknown.
func FromKeycode(code sdl.Keycode) Key {
	return sdlKeys[code]
}
