// Package camera provides the fixed look-at camera and the viewport it
// projects into.
package camera

import (
	"github.com/Faultbox/satellite/pkg/math"
)

// Camera looks from Position at Target with a perspective projection.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOVDegrees float32
	Near       float32
	Far        float32

	aspect float32
}

// New creates a camera with a square aspect until SetAspect is called.
func New(position, target, up math.Vec3, fovDegrees, near, far float32) *Camera {
	return &Camera{
		Position:   position,
		Target:     target,
		Up:         up,
		FOVDegrees: fovDegrees,
		Near:       near,
		Far:        far,
		aspect:     1,
	}
}

// SetAspect updates the aspect ratio from a viewport size. Degenerate sizes
// are ignored.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Aspect returns the current width/height ratio.
func (c *Camera) Aspect() float32 {
	return c.aspect
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOVDegrees), c.aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Rect is a pixel rectangle with its origin at the bottom left.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Viewport returns a rectangle covering the given fractions of a drawable
// surface, centered on it.
func Viewport(surfaceWidth, surfaceHeight int, fracWidth, fracHeight float32) Rect {
	w := int(float32(surfaceWidth)*fracWidth + 0.5)
	h := int(float32(surfaceHeight)*fracHeight + 0.5)
	return Rect{
		X:      (surfaceWidth - w) / 2,
		Y:      (surfaceHeight - h) / 2,
		Width:  w,
		Height: h,
	}
}
