package input

import "image"

// Keys is a bitmask of logical handheld buttons.
type Keys uint32

const (
	KeyA Keys = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyDRight
	KeyDLeft
	KeyDUp
	KeyDDown
	KeyR
	KeyL
	KeyX
	KeyY
	KeyZL
	KeyZR
	KeyTouch
)

// Has reports whether any key in mask is set.
func (k Keys) Has(mask Keys) bool { return k&mask != 0 }

var keyNames = []struct {
	key  Keys
	name string
}{
	{KeyA, "A"}, {KeyB, "B"}, {KeySelect, "SELECT"}, {KeyStart, "START"},
	{KeyDRight, "RIGHT"}, {KeyDLeft, "LEFT"}, {KeyDUp, "UP"}, {KeyDDown, "DOWN"},
	{KeyR, "R"}, {KeyL, "L"}, {KeyX, "X"}, {KeyY, "Y"},
	{KeyZL, "ZL"}, {KeyZR, "ZR"}, {KeyTouch, "TOUCH"},
}

// KeyByName returns the key with the given upper-case name.
func KeyByName(name string) (Keys, bool) {
	for _, kn := range keyNames {
		if kn.name == name {
			return kn.key, true
		}
	}
	return 0, false
}

func (k Keys) String() string {
	if k == 0 {
		return "none"
	}
	out := ""
	for _, kn := range keyNames {
		if k&kn.key == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += kn.name
	}
	return out
}

// State is the input snapshot for one tick.
type State struct {
	// Held contains every key that is down this tick.
	Held Keys
	// Down contains keys that went down since the previous tick.
	Down Keys
	// Touch is the pointer position on the bottom surface; valid while KeyTouch is held.
	Touch image.Point
	// HomeBlocked is set when the platform saw a home request it refused.
	HomeBlocked bool
}

// Pressed reports whether k went down this tick.
func (s State) Pressed(k Keys) bool { return s.Down.Has(k) }

// IsHeld reports whether k is down this tick.
func (s State) IsHeld(k Keys) bool { return s.Held.Has(k) }

// Source yields one State per call; the frame loop calls Poll once per tick.
type Source interface {
	Poll() State
}

// Press returns a state where k went down this tick.
func Press(k Keys) State { return State{Held: k, Down: k} }

// Hold returns a state where k is down but was already down last tick.
func Hold(k Keys) State { return State{Held: k} }
