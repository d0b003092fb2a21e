package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry(RejectDuplicates)

	first := BuildCube()
	require.NoError(t, r.Register(first))

	second := BuildCube()
	second.Material = "Other"
	err := r.Register(second)
	assert.ErrorIs(t, err, ErrDuplicateAsset)

	got, err := r.Get(CubeName)
	require.NoError(t, err)
	assert.Same(t, first, got, "first mesh must survive a rejected re-registration")
	assert.Equal(t, DefaultMaterial, got.Material)
	assert.Len(t, got.Vertices, 24)
}

func TestRegistryReplacePolicy(t *testing.T) {
	r := NewRegistry(ReplaceDuplicates)
	require.NoError(t, r.Register(BuildCube()))

	replacement := BuildCube()
	require.NoError(t, r.Register(replacement))

	got, err := r.Get(CubeName)
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryIsAllOrNothing(t *testing.T) {
	r := NewRegistry(RejectDuplicates)

	bad := BuildCube()
	bad.Triangles = append(bad.Triangles, Triangle{0, 1, 99})
	err := r.Register(bad)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.False(t, r.Has(CubeName))

	// A valid mesh of the same name still registers afterwards.
	require.NoError(t, r.Register(BuildCube()))
}

func TestRegistryUnresolved(t *testing.T) {
	r := NewRegistry(RejectDuplicates)
	_, err := r.Get("Missing")
	assert.ErrorIs(t, err, ErrUnresolvedReference)
	assert.ErrorIs(t, r.Register(nil), ErrInvalidParameter)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry(RejectDuplicates)
	cyl, err := BuildCylinder(DefaultCylinderParams())
	require.NoError(t, err)
	torus, err := BuildTorus(TorusName, DefaultMaterial, DefaultTorusParams())
	require.NoError(t, err)

	require.NoError(t, r.Register(torus))
	require.NoError(t, r.Register(cyl))
	require.NoError(t, r.Register(BuildCube()))

	assert.Equal(t, []string{CubeName, CylinderName, TorusName}, r.Names())
}
