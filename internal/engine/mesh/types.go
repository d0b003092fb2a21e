// Package mesh builds the procedural cube, cylinder and torus meshes and keeps
// them in a name-keyed registry for the scene graph to instance.
package mesh

// DefaultMaterial is the material every built-in mesh is tagged with.
const DefaultMaterial = "ObjectMaterial"

// Vertex represents a mesh vertex with position, normal, color and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
	TexCoord [2]float32
}

// Triangle holds three indices into the vertex list of the same mesh,
// counter-clockwise when seen from the side the normal points to.
type Triangle [3]uint32

// Group is a batch of vertices and triangles inside one mesh that was emitted
// together and shares one flat color.
type Group struct {
	Name          string
	FirstVertex   int
	VertexCount   int
	FirstTriangle int
	TriangleCount int
	Color         [4]float32
}

// Mesh holds the complete mesh data ready for GPU upload.
type Mesh struct {
	Name      string
	Material  string
	Vertices  []Vertex
	Triangles []Triangle
	Groups    []Group
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Indices flattens the triangle list into an index buffer.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, t[0], t[1], t[2])
	}
	return indices
}

// Group returns the named batch.
func (m *Mesh) Group(name string) (Group, bool) {
	for _, g := range m.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// builder accumulates vertices and triangles group by group.
type builder struct {
	mesh *Mesh
	cur  *Group
}

func newBuilder(name, material string) *builder {
	return &builder{mesh: &Mesh{Name: name, Material: material}}
}

func (b *builder) begin(name string, color [4]float32) {
	b.mesh.Groups = append(b.mesh.Groups, Group{
		Name:          name,
		FirstVertex:   len(b.mesh.Vertices),
		FirstTriangle: len(b.mesh.Triangles),
		Color:         color,
	})
	b.cur = &b.mesh.Groups[len(b.mesh.Groups)-1]
}

// vertex appends a vertex to the current group and returns its absolute index.
func (b *builder) vertex(v Vertex) uint32 {
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.cur.VertexCount++
	return uint32(len(b.mesh.Vertices) - 1)
}

// triangle appends a triangle whose indices are relative to the current group.
func (b *builder) triangle(a, c, d int) {
	base := uint32(b.cur.FirstVertex)
	b.mesh.Triangles = append(b.mesh.Triangles, Triangle{base + uint32(a), base + uint32(c), base + uint32(d)})
	b.cur.TriangleCount++
}

func (b *builder) finish() *Mesh {
	b.mesh.Bounds = computeBounds(b.mesh.Vertices)
	return b.mesh
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	bounds := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		updateBounds(&bounds, v.Position)
	}
	return bounds
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
