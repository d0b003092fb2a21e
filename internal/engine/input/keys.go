package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independent of the backend.
type Key int

// Named keys. Letters follow KeyA contiguously up to KeyZ.
const (
	KeyUnknown Key = iota
	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyZ = KeyA + 25
)

var keyNames = map[string]Key{
	"space":     KeySpace,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
}

// ParseKey maps a config key name such as "space", "escape" or "p" to a Key.
// Names are case-insensitive.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return KeyA + Key(name[0]-'a'), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// String returns the config name of the key.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "unknown"
}

// MouseState is the pointer position in window pixels and the pressed button mask.
type MouseState struct {
	X, Y    int32
	Buttons uint32
}

// Pressed reports whether button (1 = left, 2 = middle, 3 = right) is held.
func (m MouseState) Pressed(button int) bool {
	if button < 1 || button > 32 {
		return false
	}
	return m.Buttons&(1<<uint(button-1)) != 0
}

// Poller reports the current device state. It is sampled, not event driven:
// KeyDown answers whether the key is held right now.
type Poller interface {
	KeyDown(k Key) bool
	Mouse() MouseState
}
