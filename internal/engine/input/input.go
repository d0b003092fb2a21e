// Package input samples keyboard and mouse state. The SDL2 backend drives the
// window; Snapshot stands in for it in headless runs.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types reported by Update.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed window event. Keys are sampled through
// KeyDown rather than reported here.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

var scancodes = map[Key]sdl.Scancode{
	KeySpace:     sdl.SCANCODE_SPACE,
	KeyEscape:    sdl.SCANCODE_ESCAPE,
	KeyEnter:     sdl.SCANCODE_RETURN,
	KeyTab:       sdl.SCANCODE_TAB,
	KeyBackspace: sdl.SCANCODE_BACKSPACE,
	KeyLeft:      sdl.SCANCODE_LEFT,
	KeyRight:     sdl.SCANCODE_RIGHT,
	KeyUp:        sdl.SCANCODE_UP,
	KeyDown:      sdl.SCANCODE_DOWN,
}

// Input is the SDL2 Poller. Update must run once per frame before sampling.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update pumps SDL events and records the ones the frame loop acts on.
// Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyDown reports whether k is held according to SDL's keyboard state.
func (i *Input) KeyDown(k Key) bool {
	sc, ok := scancode(k)
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

// Mouse returns the pointer position and button mask.
func (i *Input) Mouse() MouseState {
	x, y, buttons := sdl.GetMouseState()
	return MouseState{X: x, Y: y, Buttons: buttons}
}

func scancode(k Key) (sdl.Scancode, bool) {
	if k >= KeyA && k <= KeyZ {
		return sdl.SCANCODE_A + sdl.Scancode(k-KeyA), true
	}
	sc, ok := scancodes[k]
	return sc, ok
}
