// Package sim assembles the satellite scene from configuration and advances
// it frame by frame, with or without a window.
package sim

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/animation"
	"github.com/Faultbox/satellite/internal/config"
	"github.com/Faultbox/satellite/internal/engine/events"
	"github.com/Faultbox/satellite/internal/engine/input"
	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/internal/engine/scenegraph"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/internal/satellite"
)

// World is the built scene: meshes, graph, rig and the animator hooked to the
// frame bus.
type World struct {
	Meshes   *mesh.Registry
	Graph    *scenegraph.Graph
	Rig      *satellite.Rig
	Animator *animation.Animator
	Bus      *events.Bus

	frame   uint64
	animate events.Handle
}

// New builds the meshes, composes the rig and registers the animator on the
// frame bus. The animator samples p once per frame.
func New(cfg *config.Config, p input.Poller) (*World, error) {
	toggle, err := input.ParseKey(cfg.Animation.ToggleKey)
	if err != nil {
		return nil, fmt.Errorf("toggle key: %w", err)
	}
	reset, err := input.ParseKey(cfg.Animation.ResetKey)
	if err != nil {
		return nil, fmt.Errorf("reset key: %w", err)
	}

	meshes, err := BuildMeshes(cfg)
	if err != nil {
		return nil, fmt.Errorf("build meshes: %w", err)
	}

	layout := satellite.DefaultLayout()
	layout.RingMeshes = ringMeshes(cfg)
	if n := len(layout.RingMeshes); n > layout.RingCount {
		layout.RingCount = n
	}

	graph := scenegraph.New(meshes)
	rig, err := satellite.Compose(graph, layout)
	if err != nil {
		return nil, err
	}

	w := &World{
		Meshes: meshes,
		Graph:  graph,
		Rig:    rig,
		Animator: animation.New(rig, animation.DefaultMotion(), animation.Bindings{
			Toggle: toggle,
			Reset:  reset,
		}, cfg.Animation.StartPaused),
		Bus: events.NewBus(),
	}
	w.animate = w.Bus.OnFrame(func(events.FrameEvent) {
		w.Animator.Frame(p)
	})

	logger.Info("world ready",
		zap.Strings("meshes", meshes.Names()),
		zap.Int("nodes", graph.Len()),
		zap.Stringer("state", w.Animator.State()),
	)
	return w, nil
}

// Step emits one frame event.
func (w *World) Step(delta time.Duration) {
	w.frame++
	w.Bus.EmitFrame(events.FrameEvent{Frame: w.frame, Delta: delta})
}

// Frame returns the number of frames stepped so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Detach stops the animator from receiving frames.
func (w *World) Detach() {
	w.animate.Remove()
}
