// Package app runs the satellite scene in an SDL2 window.
package app

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/config"
	"github.com/Faultbox/satellite/internal/engine/camera"
	"github.com/Faultbox/satellite/internal/engine/events"
	"github.com/Faultbox/satellite/internal/engine/input"
	"github.com/Faultbox/satellite/internal/engine/lighting"
	"github.com/Faultbox/satellite/internal/engine/renderer"
	"github.com/Faultbox/satellite/internal/engine/window"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/internal/sim"
	"github.com/Faultbox/satellite/pkg/math"
)

// App is the windowed application instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
	world    *sim.World
}

// New creates the window, uploads the scene meshes and wires the frame bus.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config: cfg,
		input:  input.New(),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:          width,
		Height:         height,
		ViewportWidth:  cfg.Viewport.Width,
		ViewportHeight: cfg.Viewport.Height,
		Background:     cfg.Viewport.Background,
		Sun: lighting.Sun{
			Longitude: cfg.Light.Longitude,
			Latitude:  cfg.Light.Latitude,
			Ambient:   math.Vec3From(cfg.Light.Ambient),
		},
	})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create renderer: %w", err), a.window.Close())
	}

	a.world, err = sim.New(cfg, a.input)
	if err != nil {
		return nil, multierr.Append(err, a.Close())
	}
	if err := a.renderer.Upload(a.world.Meshes); err != nil {
		return nil, multierr.Append(fmt.Errorf("upload meshes: %w", err), a.Close())
	}

	cam := cfg.Camera
	a.camera = camera.New(
		math.Vec3From(cam.Position),
		math.Vec3From(cam.LookAt),
		math.Vec3From(cam.Up),
		cam.FOVDegrees, cam.Near, cam.Far,
	)
	vp := a.renderer.Viewport()
	a.camera.SetAspect(vp.Width, vp.Height)

	a.world.Bus.OnResize(func(e events.ResizeEvent) {
		vp := a.renderer.Resize(e.Width, e.Height)
		a.camera.SetAspect(vp.Width, vp.Height)
	})

	logger.Info("app initialized successfully")
	return a, nil
}

// Run drives frames until the window is closed.
func (a *App) Run() error {
	a.running = true

	var minFrame time.Duration
	if a.config.Run.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(a.config.Run.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Pump window events
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				// Drawable size can differ from the event's window size on high-DPI displays.
				w, h := a.window.DrawableSize()
				a.world.Bus.EmitResize(events.ResizeEvent{Width: w, Height: h})
			}
		}

		// 2. Animate and poll keys
		a.world.Step(dt)

		// 3. Render
		a.renderer.Begin()
		a.renderer.Draw(a.world.Graph, a.camera)
		a.renderer.End()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Uint64("tick", a.world.Animator.Tick()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

// Close releases the renderer and window.
func (a *App) Close() error {
	logger.Info("closing app")

	var err error
	if a.world != nil {
		a.world.Detach()
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		err = multierr.Append(err, a.window.Close())
		a.window = nil
	}
	return err
}
