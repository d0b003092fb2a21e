// Package events delivers per-frame and resize notifications from the frame
// loop to registered handlers.
package events

import "time"

// FrameEvent is emitted once per rendered or simulated frame.
type FrameEvent struct {
	Frame uint64
	Delta time.Duration
}

// ResizeEvent is emitted when the drawable size changes.
type ResizeEvent struct {
	Width  int
	Height int
}

// Handle removes a registered handler.
type Handle struct {
	remove func()
}

// Remove unregisters the handler. Calling it more than once is a no-op.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

type listener[E any] struct {
	id uint64
	fn func(E)
}

// listeners keeps handlers in registration order.
type listeners[E any] struct {
	next  uint64
	items []listener[E]
}

func (l *listeners[E]) add(fn func(E)) Handle {
	l.next++
	id := l.next
	l.items = append(l.items, listener[E]{id: id, fn: fn})
	return Handle{remove: func() { l.remove(id) }}
}

func (l *listeners[E]) remove(id uint64) {
	for i, it := range l.items {
		if it.id == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return
		}
	}
}

// call runs the handlers registered when the emit started. A handler removed
// by an earlier one in the same emit still runs this time.
func (l *listeners[E]) call(e E) {
	for _, it := range l.items {
		it.fn(e)
	}
}

// Bus fans frame and resize events out to handlers. It is used from the
// frame thread only.
type Bus struct {
	frame  listeners[FrameEvent]
	resize listeners[ResizeEvent]
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnFrame registers fn for every FrameEvent.
func (b *Bus) OnFrame(fn func(FrameEvent)) Handle {
	return b.frame.add(fn)
}

// OnResize registers fn for every ResizeEvent.
func (b *Bus) OnResize(fn func(ResizeEvent)) Handle {
	return b.resize.add(fn)
}

// EmitFrame delivers e to the frame handlers in registration order.
func (b *Bus) EmitFrame(e FrameEvent) {
	b.frame.call(e)
}

// EmitResize delivers e to the resize handlers in registration order.
func (b *Bus) EmitResize(e ResizeEvent) {
	b.resize.call(e)
}
