package courier

// Key is a driving control, independent of the physical key bound to it.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

func (key Key) String() string {
	switch key {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// KeyState is the set of held controls. The host writes it from key down / up events; the game reads it once per frame.
type KeyState map[Key]bool

// Press marks the Key as held.
func (keys KeyState) Press(key Key) {
	keys[key] = true
}

// Release marks the Key as released.
func (keys KeyState) Release(key Key) {
	keys[key] = false
}

// Set marks the Key as held or released.
func (keys KeyState) Set(key Key, held bool) {
	keys[key] = held
}

// Held returns if the Key is held.
func (keys KeyState) Held(key Key) bool {
	return keys[key]
}
