package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// TorusName is the registry name of the default torus.
const TorusName = "Torus"

// TorusParams controls the torus geometry: a circle of CircleRadius swept
// around a loop of LoopRadius in the XY plane.
type TorusParams struct {
	LoopRadius    float32
	CircleRadius  float32
	LoopSamples   int
	CircleSamples int
}

// DefaultTorusParams returns the ring proportions used by the satellite rig.
func DefaultTorusParams() TorusParams {
	return TorusParams{
		LoopRadius:    0.6,
		CircleRadius:  0.2,
		LoopSamples:   90,
		CircleSamples: 30,
	}
}

// BuildTorus creates a torus of LoopSamples x CircleSamples vertices.
// Vertex (i, j) lives at index i*CircleSamples + j; the grid wraps in both
// directions so the surface closes without a seam.
func BuildTorus(name, material string, p TorusParams) (*Mesh, error) {
	if name == "" {
		return nil, fmt.Errorf("torus name is empty: %w", ErrInvalidParameter)
	}
	if p.LoopSamples < MinResolution || p.CircleSamples < MinResolution {
		return nil, fmt.Errorf("torus %q samples %dx%d (min %d): %w",
			name, p.LoopSamples, p.CircleSamples, MinResolution, ErrInvalidParameter)
	}
	if material == "" {
		material = DefaultMaterial
	}

	loops := p.LoopSamples
	circles := p.CircleSamples

	b := newBuilder(name, material)
	b.begin("surface", [4]float32{1, 1, 1, 1})

	for i := 0; i < loops; i++ {
		theta := twoPi * float32(i) / float32(loops)
		sinT, cosT := math32.Sincos(theta)
		center := [3]float32{p.LoopRadius * cosT, p.LoopRadius * sinT, 0}

		for j := 0; j < circles; j++ {
			phi := twoPi * float32(j) / float32(circles)
			sinP, cosP := math32.Sincos(phi)

			normal := [3]float32{cosT * cosP, sinT * cosP, sinP}
			u := float32(i) / float32(loops)
			v := float32(j) / float32(circles)

			b.vertex(Vertex{
				Position: [3]float32{
					center[0] + normal[0]*p.CircleRadius,
					center[1] + normal[1]*p.CircleRadius,
					center[2] + normal[2]*p.CircleRadius,
				},
				Normal:   normal,
				Color:    [4]float32{1 - u, u, v, 1},
				TexCoord: [2]float32{u, v},
			})
		}
	}

	at := func(i, j int) int {
		return (i%loops)*circles + j%circles
	}
	for i := 0; i < loops; i++ {
		for j := 0; j < circles; j++ {
			b.triangle(at(i+1, j), at(i, j+1), at(i, j))
			b.triangle(at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}

	return b.finish(), nil
}
