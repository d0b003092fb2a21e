package animation

import "github.com/Faultbox/satellite/pkg/math"

// Spin is a fixed rotation applied every animated frame.
type Spin struct {
	Axis  math.Vec3
	Angle float32
}

// Motion holds the per-frame deltas applied to the rig.
type Motion struct {
	Hub      Spin
	HubDrift math.Vec3

	// Rolled and yawed crosspieces spin about different axes.
	RolledCrosspiece Spin
	YawedCrosspiece  Spin

	Ring Spin
}

// DefaultMotion returns the deltas tuned for a 60 Hz frame rate.
func DefaultMotion() Motion {
	return Motion{
		Hub:              Spin{Axis: math.V3(0, 1, 1), Angle: 0.01},
		HubDrift:         math.V3(0, 0, 0.005),
		RolledCrosspiece: Spin{Axis: math.V3(0, 1, 0), Angle: 0.1},
		YawedCrosspiece:  Spin{Axis: math.V3(0, 0, -1), Angle: 0.1},
		Ring:             Spin{Axis: math.V3(0, 0, -1), Angle: 0.05},
	}
}
