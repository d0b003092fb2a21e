package scenegraph

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/pkg/math"
)

const eps = 1e-5

func newGraph(t *testing.T) *Graph {
	t.Helper()
	meshes := mesh.NewRegistry(mesh.RejectDuplicates)
	require.NoError(t, meshes.Register(mesh.BuildCube()))
	return New(meshes)
}

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestCreateNode(t *testing.T) {
	g := newGraph(t)

	a, err := g.CreateNode(nil, "a")
	require.NoError(t, err)
	assert.Same(t, g.Root(), a.Parent())

	b, err := g.CreateNode(a, "b")
	require.NoError(t, err)
	assert.Same(t, a, b.Parent())
	assert.Equal(t, []*Node{b}, a.Children())
	assert.Equal(t, 3, g.Len())

	got, err := g.Node("b")
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestCreateNodeErrors(t *testing.T) {
	g := newGraph(t)
	_, err := g.CreateNode(nil, "a")
	require.NoError(t, err)

	_, err = g.CreateNode(nil, "a")
	assert.ErrorIs(t, err, mesh.ErrDuplicateAsset)

	_, err = g.CreateNode(nil, RootName)
	assert.ErrorIs(t, err, mesh.ErrDuplicateAsset)

	_, err = g.CreateNode(nil, "")
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)

	other := newGraph(t)
	foreign, err := other.CreateNode(nil, "foreign")
	require.NoError(t, err)
	_, err = g.CreateNode(foreign, "child")
	assert.ErrorIs(t, err, mesh.ErrUnresolvedReference)
	assert.Equal(t, 2, g.Len(), "failed creations must not register nodes")
}

func TestAttach(t *testing.T) {
	g := newGraph(t)
	n, err := g.CreateNode(nil, "box")
	require.NoError(t, err)

	require.NoError(t, g.Attach(n, mesh.CubeName))
	require.NotNil(t, n.Mesh())
	assert.Equal(t, mesh.CubeName, n.Mesh().Name)

	err = g.Attach(n, "Missing")
	assert.ErrorIs(t, err, mesh.ErrUnresolvedReference)
	assert.Equal(t, mesh.CubeName, n.Mesh().Name, "failed attach keeps the previous mesh")

	_, err = g.Node("nope")
	assert.ErrorIs(t, err, mesh.ErrUnresolvedReference)
}

func TestDestroyRemovesDescendants(t *testing.T) {
	g := newGraph(t)
	a, _ := g.CreateNode(nil, "a")
	b, _ := g.CreateNode(a, "b")
	_, _ = g.CreateNode(b, "c")
	d, _ := g.CreateNode(nil, "d")

	require.NoError(t, g.Destroy(a))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []*Node{d}, g.Root().Children())

	for _, name := range []string{"a", "b", "c"} {
		_, err := g.Node(name)
		assert.ErrorIs(t, err, mesh.ErrUnresolvedReference, name)
	}

	// Names become free again.
	_, err := g.CreateNode(nil, "b")
	assert.NoError(t, err)

	assert.ErrorIs(t, g.Destroy(a), mesh.ErrUnresolvedReference)
	assert.ErrorIs(t, g.Destroy(g.Root()), mesh.ErrInvalidParameter)
}

func TestWalkOrder(t *testing.T) {
	g := newGraph(t)
	a, _ := g.CreateNode(nil, "a")
	_, _ = g.CreateNode(a, "a1")
	_, _ = g.CreateNode(a, "a2")
	_, _ = g.CreateNode(nil, "b")

	var names []string
	g.Walk(func(n *Node) bool {
		names = append(names, n.Name())
		return true
	})
	assert.Equal(t, []string{RootName, "a", "a1", "a2", "b"}, names)

	names = names[:0]
	g.Walk(func(n *Node) bool {
		names = append(names, n.Name())
		return n.Name() != "a"
	})
	assert.Equal(t, []string{RootName, "a", "b"}, names)
}

func TestTranslateIsAdditive(t *testing.T) {
	g := newGraph(t)
	n, _ := g.CreateNode(nil, "n")
	n.SetPosition(math.V3(1, 0, 0))
	n.Yaw(float32(stdmath.Pi / 2))
	n.Translate(math.V3(0, 0, 2))

	// Parent space: orientation does not affect translation.
	assertVec(t, math.V3(1, 0, 2), n.Position())
}

func TestRotateIsLocal(t *testing.T) {
	g := newGraph(t)
	n, _ := g.CreateNode(nil, "n")
	n.Roll(float32(stdmath.Pi / 2))
	n.Yaw(float32(stdmath.Pi / 2))

	// Local composition applies the yaw first: X goes to -Z and the roll
	// leaves it there. A parent-space yaw would have sent X to +Y.
	world := n.World()
	assertVec(t, math.V3(0, 0, -1), world.TransformDirection(math.UnitX))
	assertVec(t, math.V3(-1, 0, 0), world.TransformDirection(math.UnitY))
	assertVec(t, math.V3(0, 1, 0), world.TransformDirection(math.UnitZ))
}

func TestScaleIsMultiplicative(t *testing.T) {
	g := newGraph(t)
	n, _ := g.CreateNode(nil, "n")
	n.Scale(math.V3(2, 3, 4))
	n.Scale(math.V3(0.5, 2, 1))
	assertVec(t, math.V3(1, 6, 4), n.ScaleFactors())

	n.SetScale(math.V3(7, 7, 7))
	assertVec(t, math.V3(7, 7, 7), n.ScaleFactors())
}

func TestWorldComposesParentChain(t *testing.T) {
	g := newGraph(t)
	parent, _ := g.CreateNode(nil, "parent")
	child, _ := g.CreateNode(parent, "child")

	parent.SetPosition(math.V3(10, 0, 0))
	parent.Yaw(float32(stdmath.Pi / 2))
	parent.SetScale(math.V3(2, 2, 2))
	child.SetPosition(math.V3(1, 0, 0))

	// Child offset is scaled by 2, yawed onto -Z, then moved by the parent.
	assertVec(t, math.V3(10, 0, -2), child.World().Translation())

	// World is computed on demand from current state.
	parent.Translate(math.V3(0, 5, 0))
	assertVec(t, math.V3(10, 5, -2), child.World().Translation())
}
