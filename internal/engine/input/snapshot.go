package input

// Snapshot is an in-memory Poller. Headless runs and tests set the state
// that the next poll should observe.
type Snapshot struct {
	keys  map[Key]bool
	mouse MouseState
}

// NewSnapshot creates a snapshot with no keys held.
func NewSnapshot() *Snapshot {
	return &Snapshot{keys: make(map[Key]bool)}
}

// Press marks k as held.
func (s *Snapshot) Press(k Key) {
	s.keys[k] = true
}

// Release marks k as up.
func (s *Snapshot) Release(k Key) {
	delete(s.keys, k)
}

// SetMouse replaces the mouse state.
func (s *Snapshot) SetMouse(m MouseState) {
	s.mouse = m
}

// KeyDown implements Poller.
func (s *Snapshot) KeyDown(k Key) bool {
	return s.keys[k]
}

// Mouse implements Poller.
func (s *Snapshot) Mouse() MouseState {
	return s.mouse
}
