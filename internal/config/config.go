// Package config handles startup configuration loading and management.
// A Config is built once before the window opens and is read-only afterwards.
package config

import "github.com/Faultbox/satellite/internal/engine/mesh"

// Config holds all application settings.
type Config struct {
	Window    WindowConfig    `yaml:"window" toml:"window"`
	Viewport  ViewportConfig  `yaml:"viewport" toml:"viewport"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Light     LightConfig     `yaml:"light" toml:"light"`
	Meshes    MeshConfig      `yaml:"meshes" toml:"meshes"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Run       RunConfig       `yaml:"run" toml:"run"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// ViewportConfig places the viewport inside the window as fractions of its size.
// The viewport is centered.
type ViewportConfig struct {
	Width      float32    `yaml:"width" toml:"width"`
	Height     float32    `yaml:"height" toml:"height"`
	Background [3]float32 `yaml:"background" toml:"background"`
}

// CameraConfig holds the fixed camera placement and projection.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position" toml:"position"`
	LookAt     [3]float32 `yaml:"look_at" toml:"look_at"`
	Up         [3]float32 `yaml:"up" toml:"up"`
	FOVDegrees float32    `yaml:"fov_degrees" toml:"fov_degrees"`
	Near       float32    `yaml:"near" toml:"near"`
	Far        float32    `yaml:"far" toml:"far"`
}

// MeshConfig holds the procedural mesh parameters.
type MeshConfig struct {
	Cylinder CylinderConfig `yaml:"cylinder" toml:"cylinder"`
	Tori     []TorusConfig  `yaml:"tori" toml:"tori"`
}

// CylinderConfig mirrors mesh.CylinderParams.
type CylinderConfig struct {
	Radius     float32 `yaml:"radius" toml:"radius"`
	Length     float32 `yaml:"length" toml:"length"`
	Start      float32 `yaml:"start" toml:"start"`
	Resolution int     `yaml:"resolution" toml:"resolution"`
	Material   string  `yaml:"material" toml:"material"`
}

// TorusConfig describes one named torus mesh.
type TorusConfig struct {
	Name          string  `yaml:"name" toml:"name"`
	Material      string  `yaml:"material" toml:"material"`
	LoopRadius    float32 `yaml:"loop_radius" toml:"loop_radius"`
	CircleRadius  float32 `yaml:"circle_radius" toml:"circle_radius"`
	LoopSamples   int     `yaml:"loop_samples" toml:"loop_samples"`
	CircleSamples int     `yaml:"circle_samples" toml:"circle_samples"`
}

// AnimationConfig holds animator key bindings.
type AnimationConfig struct {
	ToggleKey   string `yaml:"toggle_key" toml:"toggle_key"`
	ResetKey    string `yaml:"reset_key" toml:"reset_key"`
	StartPaused bool   `yaml:"start_paused" toml:"start_paused"`
}

// LightConfig places the directional light by angles in degrees.
type LightConfig struct {
	Longitude float32    `yaml:"longitude" toml:"longitude"`
	Latitude  float32    `yaml:"latitude" toml:"latitude"`
	Ambient   [3]float32 `yaml:"ambient" toml:"ambient"`
}

// RunConfig selects between the windowed loop and a fixed-length headless run.
type RunConfig struct {
	Headless bool `yaml:"headless" toml:"headless"`
	Frames   int  `yaml:"frames" toml:"frames"`
	FPSLimit int  `yaml:"fps_limit" toml:"fps_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with the demo's stock values.
func Default() *Config {
	cyl := mesh.DefaultCylinderParams()
	torus := mesh.DefaultTorusParams()

	return &Config{
		Window: WindowConfig{
			Title:      "Demo",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Viewport: ViewportConfig{
			Width:      0.95,
			Height:     0.95,
			Background: [3]float32{0, 0, 0},
		},
		Camera: CameraConfig{
			Position:   [3]float32{50, 0, 0},
			LookAt:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
			FOVDegrees: 20,
			Near:       0.1,
			Far:        1000,
		},
		Light: LightConfig{
			Longitude: 45,
			Latitude:  45,
			Ambient:   [3]float32{0.3, 0.3, 0.3},
		},
		Meshes: MeshConfig{
			Cylinder: CylinderConfig{
				Radius:     cyl.Radius,
				Length:     cyl.Length,
				Start:      cyl.Start,
				Resolution: cyl.Resolution,
				Material:   cyl.Material,
			},
			Tori: []TorusConfig{{
				Name:          mesh.TorusName,
				Material:      mesh.DefaultMaterial,
				LoopRadius:    torus.LoopRadius,
				CircleRadius:  torus.CircleRadius,
				LoopSamples:   torus.LoopSamples,
				CircleSamples: torus.CircleSamples,
			}},
		},
		Animation: AnimationConfig{
			ToggleKey:   "space",
			ResetKey:    "escape",
			StartPaused: false,
		},
		Run: RunConfig{
			Headless: false,
			Frames:   600,
			FPSLimit: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// CylinderParams converts the cylinder section for the mesh builder.
func (c *Config) CylinderParams() mesh.CylinderParams {
	cc := c.Meshes.Cylinder
	return mesh.CylinderParams{
		Radius:     cc.Radius,
		Length:     cc.Length,
		Start:      cc.Start,
		Resolution: cc.Resolution,
		Material:   cc.Material,
	}
}

// TorusParams converts one torus section for the mesh builder.
func (t TorusConfig) TorusParams() mesh.TorusParams {
	return mesh.TorusParams{
		LoopRadius:    t.LoopRadius,
		CircleRadius:  t.CircleRadius,
		LoopSamples:   t.LoopSamples,
		CircleSamples: t.CircleSamples,
	}
}
