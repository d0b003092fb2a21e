// Package animation drives the satellite rig frame by frame and toggles
// between animating and paused on key release.
package animation

import (
	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/engine/input"
	"github.com/Faultbox/satellite/internal/engine/scenegraph"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/internal/satellite"
)

// State is the animator mode.
type State int

const (
	Animating State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Animating:
		return "animating"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Bindings names the keys the animator reacts to.
type Bindings struct {
	Toggle input.Key
	Reset  input.Key
}

// Animator owns the animation state of one rig.
type Animator struct {
	rig      *satellite.Rig
	motion   Motion
	bindings Bindings

	state      State
	tick       uint64
	toggleDown bool
	mouse      input.MouseState
}

// New creates an animator for rig. It starts Animating unless startPaused.
func New(rig *satellite.Rig, motion Motion, bindings Bindings, startPaused bool) *Animator {
	a := &Animator{
		rig:      rig,
		motion:   motion,
		bindings: bindings,
		state:    Animating,
	}
	if startPaused {
		a.state = Paused
	}
	return a
}

// State returns the current mode.
func (a *Animator) State() State { return a.state }

// Tick returns the number of animated frames since start or the last reset.
func (a *Animator) Tick() uint64 { return a.tick }

// Mouse returns the mouse state sampled on the last frame.
func (a *Animator) Mouse() input.MouseState { return a.mouse }

// Frame advances one frame: motion first when animating, then a single
// input poll. The toggle fires on release of a key seen pressed earlier,
// so holding it flips nothing.
func (a *Animator) Frame(p input.Poller) {
	if a.state == Animating {
		a.tick++
		a.apply()
	}

	if p.KeyDown(a.bindings.Toggle) {
		a.toggleDown = true
	} else if a.toggleDown {
		a.toggleDown = false
		a.flip()
	}

	if p.KeyDown(a.bindings.Reset) {
		a.tick = 0
	}

	a.mouse = p.Mouse()
}

func (a *Animator) flip() {
	if a.state == Animating {
		a.state = Paused
	} else {
		a.state = Animating
	}
	logger.Info("animation toggled",
		zap.Stringer("state", a.state),
		zap.Uint64("tick", a.tick),
	)
}

func (a *Animator) apply() {
	m := a.motion
	spin(a.rig.Hub, m.Hub)
	a.rig.Hub.Translate(m.HubDrift)

	for _, c := range a.rig.Crosspieces {
		if c.Kind == satellite.Rolled {
			spin(c.Node, m.RolledCrosspiece)
		} else {
			spin(c.Node, m.YawedCrosspiece)
		}
	}

	for _, r := range a.rig.Rings {
		spin(r, m.Ring)
	}
}

func spin(n *scenegraph.Node, s Spin) {
	n.Rotate(s.Axis, s.Angle)
}
