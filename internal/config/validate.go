package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/satellite/internal/engine/mesh"
)

// Validate reports every setting that would stop the scene from being built.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if !fraction(c.Viewport.Width) || !fraction(c.Viewport.Height) {
		err = multierr.Append(err, fmt.Errorf("viewport %gx%g must be within (0, 1]", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera fov %g must be within (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera clip range [%g, %g] is empty", c.Camera.Near, c.Camera.Far))
	}
	if c.Light.Latitude < -90 || c.Light.Latitude > 90 {
		err = multierr.Append(err, fmt.Errorf("light latitude %g must be within [-90, 90]", c.Light.Latitude))
	}

	if c.Meshes.Cylinder.Resolution < mesh.MinResolution {
		err = multierr.Append(err, fmt.Errorf("cylinder resolution %d: %w", c.Meshes.Cylinder.Resolution, mesh.ErrInvalidParameter))
	}
	if len(c.Meshes.Tori) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one torus is required for the rings"))
	}
	seen := make(map[string]bool)
	for i, t := range c.Meshes.Tori {
		if t.Name == "" {
			err = multierr.Append(err, fmt.Errorf("torus %d has no name: %w", i, mesh.ErrInvalidParameter))
		}
		if seen[t.Name] {
			err = multierr.Append(err, fmt.Errorf("torus %q: %w", t.Name, mesh.ErrDuplicateAsset))
		}
		seen[t.Name] = true
		if t.LoopSamples < mesh.MinResolution || t.CircleSamples < mesh.MinResolution {
			err = multierr.Append(err, fmt.Errorf("torus %q samples %dx%d: %w", t.Name, t.LoopSamples, t.CircleSamples, mesh.ErrInvalidParameter))
		}
	}

	if c.Animation.ToggleKey == "" || c.Animation.ResetKey == "" {
		err = multierr.Append(err, fmt.Errorf("animation keys must be set"))
	} else if c.Animation.ToggleKey == c.Animation.ResetKey {
		err = multierr.Append(err, fmt.Errorf("toggle and reset share key %q", c.Animation.ToggleKey))
	}
	if c.Run.Headless && c.Run.Frames <= 0 {
		err = multierr.Append(err, fmt.Errorf("headless run needs a positive frame count"))
	}

	return err
}

func fraction(v float32) bool {
	return v > 0 && v <= 1
}
