// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/satellite/pkg/math"
)

// Sun is a directional light placed by two angles in degrees.
type Sun struct {
	// Longitude is rotation around the Y axis (0-360).
	Longitude float32
	// Latitude is elevation from the horizon (0-90).
	Latitude float32
	Ambient  math.Vec3
}

// Direction returns the normalized vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	return SunDirection(s.Longitude, s.Latitude)
}

// SunDirection converts longitude/latitude angles to a direction vector.
func SunDirection(longitude, latitude float32) math.Vec3 {
	sinLon, cosLon := math32.Sincos(math.Radians(longitude))
	sinLat, cosLat := math32.Sincos(math.Radians(latitude))

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}
