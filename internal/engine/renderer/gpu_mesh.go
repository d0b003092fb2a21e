package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/satellite/internal/engine/mesh"
)

// batch is one mesh group as an index range.
type batch struct {
	firstIndex int32
	indexCount int32
}

// gpuMesh is a mesh uploaded to vertex and index buffers.
type gpuMesh struct {
	vao, vbo, ebo uint32
	batches       []batch
	material      *material
}

func uploadMesh(m *mesh.Mesh, mat *material) *gpuMesh {
	g := &gpuMesh{material: mat}
	indices := m.Indices()
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)
	// TexCoord
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, int32(vertexSize), 10*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	for _, grp := range m.Groups {
		g.batches = append(g.batches, batch{
			firstIndex: int32(grp.FirstTriangle * 3),
			indexCount: int32(grp.TriangleCount * 3),
		})
	}
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	for _, b := range g.batches {
		gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, uintptr(b.firstIndex*4))
	}
	gl.BindVertexArray(0)
}

func (g *gpuMesh) delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
}
