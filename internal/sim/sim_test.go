package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/satellite/internal/animation"
	"github.com/Faultbox/satellite/internal/config"
	"github.com/Faultbox/satellite/internal/engine/events"
	"github.com/Faultbox/satellite/internal/engine/input"
	"github.com/Faultbox/satellite/internal/engine/mesh"
)

func TestBuildMeshesDefault(t *testing.T) {
	reg, err := BuildMeshes(config.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{mesh.CubeName, mesh.CylinderName, mesh.TorusName}, reg.Names())

	cyl, err := reg.Get(mesh.CylinderName)
	require.NoError(t, err)
	assert.Len(t, cyl.Triangles, 4*120)
}

func TestBuildMeshesReportsEveryBadTorus(t *testing.T) {
	cfg := config.Default()
	bad := cfg.Meshes.Tori[0]
	bad.Name = "Thin"
	bad.LoopSamples = 2
	worse := bad
	worse.Name = "Flat"
	worse.CircleSamples = 1
	cfg.Meshes.Tori = append(cfg.Meshes.Tori, bad, worse)

	_, err := BuildMeshes(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "Thin")
	assert.Contains(t, err.Error(), "Flat")
}

func TestNewWorld(t *testing.T) {
	w, err := New(config.Default(), input.NewSnapshot())
	require.NoError(t, err)

	assert.Len(t, w.Rig.Rings, 2)
	assert.Equal(t, 12, w.Graph.Len())
	assert.Equal(t, animation.Animating, w.Animator.State())
}

func TestNewWorldSpreadsRingsOverTori(t *testing.T) {
	cfg := config.Default()
	extra := cfg.Meshes.Tori[0]
	extra.Name = "Torus1"
	extra.CircleRadius = 0.1
	third := extra
	third.Name = "Torus2"
	cfg.Meshes.Tori = append(cfg.Meshes.Tori, extra, third)

	w, err := New(cfg, input.NewSnapshot())
	require.NoError(t, err)
	require.Len(t, w.Rig.Rings, 3)
	for i, name := range []string{"Torus", "Torus1", "Torus2"} {
		assert.Equal(t, name, w.Rig.Rings[i].Mesh().Name)
	}
}

func TestNewWorldRejectsUnknownKey(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.ToggleKey = "hyper"
	_, err := New(cfg, input.NewSnapshot())
	assert.Error(t, err)
}

func TestStepDrivesAnimator(t *testing.T) {
	keys := input.NewSnapshot()
	w, err := New(config.Default(), keys)
	require.NoError(t, err)

	var seen []uint64
	w.Bus.OnFrame(func(e events.FrameEvent) { seen = append(seen, e.Frame) })

	for i := 0; i < 3; i++ {
		w.Step(HeadlessDelta)
	}
	assert.Equal(t, []uint64{1, 2, 3}, seen)
	assert.Equal(t, uint64(3), w.Animator.Tick())

	keys.Press(input.KeySpace)
	w.Step(HeadlessDelta)
	keys.Release(input.KeySpace)
	w.Step(HeadlessDelta)
	assert.Equal(t, animation.Paused, w.Animator.State())

	w.Detach()
	w.Step(HeadlessDelta)
	assert.Equal(t, uint64(6), w.Frame())
	assert.Equal(t, uint64(5), w.Animator.Tick())
}

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	w, err := New(cfg, input.NewSnapshot())
	require.NoError(t, err)

	RunHeadless(w, 100)
	assert.Equal(t, uint64(100), w.Frame())
	assert.InDelta(t, 0.5, w.Rig.Hub.World().Translation().Z, 1e-3)
}

func TestRunHeadlessPaused(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.StartPaused = true
	w, err := New(cfg, input.NewSnapshot())
	require.NoError(t, err)

	RunHeadless(w, 10)
	assert.Equal(t, uint64(0), w.Animator.Tick())
	assert.Equal(t, float32(0), w.Rig.Hub.World().Translation().Z)
}
