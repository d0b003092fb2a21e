// Package satellite composes the hub, arms, crosspieces, panel and rings of
// the satellite rig out of registered meshes.
package satellite

import (
	"fmt"

	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/pkg/math"
)

// Layout holds the placement constants of every part. Offsets are along the
// hub's X axis and in hub-local units.
type Layout struct {
	HubMesh     string
	HubPosition math.Vec3
	HubScale    math.Vec3

	ArmOffset float32
	ArmScale  math.Vec3

	CrosspieceOffset float32
	CrosspieceScale  math.Vec3

	PanelMesh  string
	PanelScale math.Vec3

	// RingMeshes are assigned to rings round-robin. By default every ring
	// instances the one Torus mesh.
	RingMeshes  []string
	RingCount   int
	RingOffset  float32
	RingSpacing float32
	RingScale   math.Vec3

	// Turn is the initial roll or yaw in radians given to crosspieces and rings.
	Turn float32
}

// DefaultLayout returns the rig as originally tuned for the 50-unit camera.
func DefaultLayout() Layout {
	return Layout{
		HubMesh:  mesh.CylinderName,
		HubScale: math.V3(4, 0.25, 0.25),

		ArmOffset: 0.6,
		ArmScale:  math.V3(0.25, 2, 2),

		CrosspieceOffset: 0.7,
		CrosspieceScale:  math.V3(0.5, 0.2, 0.2),

		PanelMesh:  mesh.CubeName,
		PanelScale: math.V3(0.5, 15, 10),

		RingMeshes:  []string{mesh.TorusName},
		RingCount:   2,
		RingOffset:  0.7,
		RingSpacing: 0.1,
		RingScale:   math.V3(0.5, 10, 1),

		Turn: math.Radians(90),
	}
}

// Validate checks the counts Compose depends on.
func (l Layout) Validate() error {
	if l.RingCount < 2 {
		return fmt.Errorf("ring count %d below 2: %w", l.RingCount, mesh.ErrInvalidParameter)
	}
	if len(l.RingMeshes) == 0 {
		return fmt.Errorf("no ring meshes: %w", mesh.ErrInvalidParameter)
	}
	return nil
}

// ringX returns the hub-local X offset of ring i. Rings alternate sides and
// step outward in pairs.
func (l Layout) ringX(i int) float32 {
	x := l.RingOffset + float32(i/2)*l.RingSpacing
	if i%2 == 1 {
		return -x
	}
	return x
}
