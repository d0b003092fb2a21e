package mesh

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// CylinderName is the registry name of the cylinder.
const CylinderName = "Cylinder"

// MinResolution is the smallest sample count that still encloses an area.
const MinResolution = 3

const twoPi = 2 * math.Pi

// CylinderParams controls the cylinder geometry. The axis is X: the first
// circle sits at x = Start and the second at x = Start + Length.
type CylinderParams struct {
	Radius     float32
	Length     float32
	Start      float32
	Resolution int
	Material   string
}

// DefaultCylinderParams returns a unit-length cylinder of radius 1 centered on the origin.
func DefaultCylinderParams() CylinderParams {
	return CylinderParams{
		Radius:     1,
		Length:     1,
		Start:      -0.5,
		Resolution: 120,
		Material:   DefaultMaterial,
	}
}

var (
	cylinderCapColor  = [4]float32{0, 0, 1, 1}
	cylinderSideColor = [4]float32{0.2, 0.6, 0.5, 1}
)

// BuildCylinder samples two circles of p.Resolution points and emits three
// groups: a fan over the start cap, a stitched side wall and a fan over the end
// cap wound in reverse so both caps face outward.
func BuildCylinder(p CylinderParams) (*Mesh, error) {
	if p.Resolution < MinResolution {
		return nil, fmt.Errorf("cylinder resolution %d (min %d): %w", p.Resolution, MinResolution, ErrInvalidParameter)
	}
	if p.Radius <= 0 || p.Length <= 0 {
		return nil, fmt.Errorf("cylinder radius %g length %g must be positive: %w", p.Radius, p.Length, ErrInvalidParameter)
	}
	material := p.Material
	if material == "" {
		material = DefaultMaterial
	}

	r := p.Resolution
	x0 := p.Start
	x1 := p.Start + p.Length

	// Unit circle samples in the YZ plane, shared by both rings.
	sin := make([]float32, r)
	cos := make([]float32, r)
	for i := 0; i < r; i++ {
		sin[i], cos[i] = math32.Sincos(twoPi * float32(i) / float32(r))
	}
	ring := func(x float32, i int) [3]float32 {
		return [3]float32{x, sin[i] * p.Radius, cos[i] * p.Radius}
	}
	capUV := func(i int) [2]float32 {
		return [2]float32{0.5 + 0.5*sin[i], 0.5 + 0.5*cos[i]}
	}

	b := newBuilder(CylinderName, material)

	// Start cap: center first, then the ring; the last triangle closes back on sample 0.
	b.begin("cap.start", cylinderCapColor)
	startNormal := [3]float32{-1, 0, 0}
	b.vertex(Vertex{Position: [3]float32{x0, 0, 0}, Normal: startNormal, Color: cylinderCapColor, TexCoord: [2]float32{0.5, 0.5}})
	for i := 0; i < r; i++ {
		b.vertex(Vertex{Position: ring(x0, i), Normal: startNormal, Color: cylinderCapColor, TexCoord: capUV(i)})
	}
	for i := 0; i < r; i++ {
		b.triangle(0, 1+i, 1+(i+1)%r)
	}

	// Side wall: column i holds the start-ring sample at 2i and the end-ring sample at 2i+1.
	b.begin("side", cylinderSideColor)
	for i := 0; i < r; i++ {
		normal := [3]float32{0, sin[i], cos[i]}
		u := float32(i) / float32(r)
		b.vertex(Vertex{Position: ring(x0, i), Normal: normal, Color: cylinderSideColor, TexCoord: [2]float32{u, 0}})
		b.vertex(Vertex{Position: ring(x1, i), Normal: normal, Color: cylinderSideColor, TexCoord: [2]float32{u, 1}})
	}
	for i := 0; i < r; i++ {
		next := (i + 1) % r
		b.triangle(2*i, 2*i+1, 2*next)
		b.triangle(2*next, 2*i+1, 2*next+1)
	}

	// End cap: same fan, reversed angular order.
	b.begin("cap.end", cylinderCapColor)
	endNormal := [3]float32{1, 0, 0}
	b.vertex(Vertex{Position: [3]float32{x1, 0, 0}, Normal: endNormal, Color: cylinderCapColor, TexCoord: [2]float32{0.5, 0.5}})
	for i := 0; i < r; i++ {
		b.vertex(Vertex{Position: ring(x1, i), Normal: endNormal, Color: cylinderCapColor, TexCoord: capUV(i)})
	}
	for i := 0; i < r; i++ {
		b.triangle(0, 1+(i+1)%r, 1+i)
	}

	return b.finish(), nil
}
