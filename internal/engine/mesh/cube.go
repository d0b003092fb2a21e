package mesh

// CubeName is the registry name of the unit cube.
const CubeName = "Cube"

// cubeFace describes one side of the unit cube: its four corners in
// counter-clockwise order seen from outside, the shared normal and a flat color.
type cubeFace struct {
	corners [4][3]float32
	normal  [3]float32
	color   [4]float32
}

var (
	cubeV0 = [3]float32{-0.5, -0.5, 0.5}
	cubeV1 = [3]float32{0.5, -0.5, 0.5}
	cubeV2 = [3]float32{0.5, 0.5, 0.5}
	cubeV3 = [3]float32{-0.5, 0.5, 0.5}
	cubeV4 = [3]float32{-0.5, -0.5, -0.5}
	cubeV5 = [3]float32{0.5, -0.5, -0.5}
	cubeV6 = [3]float32{0.5, 0.5, -0.5}
	cubeV7 = [3]float32{-0.5, 0.5, -0.5}
)

var cubeFaces = [6]cubeFace{
	{[4][3]float32{cubeV0, cubeV1, cubeV2, cubeV3}, [3]float32{0, 0, 1}, [4]float32{0, 0, 1, 1}},
	{[4][3]float32{cubeV1, cubeV5, cubeV6, cubeV2}, [3]float32{1, 0, 0}, [4]float32{1, 0, 1, 1}},
	{[4][3]float32{cubeV5, cubeV4, cubeV7, cubeV6}, [3]float32{0, 0, -1}, [4]float32{1, 1, 1, 1}},
	{[4][3]float32{cubeV4, cubeV0, cubeV3, cubeV7}, [3]float32{-1, 0, 0}, [4]float32{0, 1, 0, 1}},
	{[4][3]float32{cubeV3, cubeV2, cubeV6, cubeV7}, [3]float32{0, 1, 0}, [4]float32{1, 0, 0, 1}},
	{[4][3]float32{cubeV1, cubeV0, cubeV4, cubeV5}, [3]float32{0, -1, 0}, [4]float32{1, 1, 0, 1}},
}

var cubeUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// BuildCube creates a unit cube centered at the origin.
// Vertices are not shared between faces, so each face keeps a flat normal:
// 24 vertices, 12 triangles.
func BuildCube() *Mesh {
	b := newBuilder(CubeName, DefaultMaterial)
	b.begin("faces", [4]float32{1, 1, 1, 1})

	for i, face := range cubeFaces {
		for c := 0; c < 4; c++ {
			b.vertex(Vertex{
				Position: face.corners[c],
				Normal:   face.normal,
				Color:    face.color,
				TexCoord: cubeUVs[c],
			})
		}
		first := i * 4
		b.triangle(first+0, first+1, first+3)
		b.triangle(first+1, first+2, first+3)
	}

	return b.finish()
}
