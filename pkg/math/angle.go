package math

import stdmath "math"

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * stdmath.Pi / 180
}
