// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Faultbox/galaxy/internal/engine/camera"
	"github.com/Faultbox/galaxy/internal/galaxy"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Galaxy     GalaxyConfig     `yaml:"galaxy"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Panel      PanelConfig      `yaml:"panel"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
}

// GalaxyConfig holds the generation parameters and the random seed.
// Seed 0 picks a time based seed at startup.
type GalaxyConfig struct {
	galaxy.Parameters `yaml:",inline"`
	Seed              uint64 `yaml:"seed"`
}

// CameraConfig holds the initial camera and orbit controls.
type CameraConfig struct {
	FOV           float32    `yaml:"fov"` // Vertical, degrees
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Position      [3]float32 `yaml:"position,flow"`
	Damping       bool       `yaml:"damping"`
	DampingFactor float32    `yaml:"damping_factor"`
}

// AnimationConfig holds animation settings.
type AnimationConfig struct {
	SpinSpeed float32 `yaml:"spin_speed"` // Radians per second about Y
}

// PanelConfig holds debug panel settings.
type PanelConfig struct {
	Enabled         bool    `yaml:"enabled"`
	LivePreview     bool    `yaml:"live_preview"`      // Regenerate while dragging
	LivePreviewRate float64 `yaml:"live_preview_rate"` // Regenerations per second while dragging
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: camera.DefaultMaxPixelRatio,
		},
		Galaxy: GalaxyConfig{
			Parameters: galaxy.DefaultParameters(),
		},
		Camera: CameraConfig{
			FOV:           75,
			Near:          0.1,
			Far:           100,
			Position:      [3]float32{3, 3, 3},
			Damping:       true,
			DampingFactor: 0.05,
		},
		Animation: AnimationConfig{
			SpinSpeed: galaxy.DefaultSpinSpeed,
		},
		Panel: PanelConfig{
			Enabled:         true,
			LivePreview:     false,
			LivePreviewRate: 10,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0,
		"graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	check(c.Graphics.MaxPixelRatio >= 1,
		"graphics: max_pixel_ratio %v must be at least 1", c.Graphics.MaxPixelRatio)

	check(c.Camera.FOV > 0 && c.Camera.FOV < 180,
		"camera: fov %v out of range (0, 180)", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near,
		"camera: invalid clip range near=%v far=%v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.DampingFactor > 0 && c.Camera.DampingFactor <= 1,
		"camera: damping_factor %v out of range (0, 1]", c.Camera.DampingFactor)

	check(!math.IsNaN(float64(c.Animation.SpinSpeed)) && !math.IsInf(float64(c.Animation.SpinSpeed), 0),
		"animation: spin_speed must be finite")

	check(!c.Panel.LivePreview || c.Panel.LivePreviewRate > 0,
		"panel: live_preview_rate %v must be positive", c.Panel.LivePreviewRate)

	switch strings.ToLower(c.Screenshot.Format) {
	case "", "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	if err := c.Galaxy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("galaxy: %w", err))
	}

	return errors.Join(errs...)
}
