// Package galaxy generates spiral-galaxy point clouds and keeps the displayed
// cloud in sync with its parameters.
package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidParameter is returned when a parameter set cannot produce a cloud.
	ErrInvalidParameter = errors.New("invalid galaxy parameter")

	// ErrResourceRelease is returned when the display cannot release the
	// previous cloud, typically because the graphics context is gone.
	ErrResourceRelease = errors.New("point cloud resources unavailable")
)

// ParameterError describes one rejected parameter.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// RGB is a colour with 0-255 channels, as edited in the panel.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color returns the colour in normalized [0,1] channel space.
func (c RGB) Color() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// MaxCount is the largest star count whose position and colour buffers can
// still be indexed by a GL draw call.
const MaxCount = math.MaxInt32 / 3

// Parameters controls the shape and colouring of a generated galaxy.
type Parameters struct {
	Count           int     `yaml:"count"`
	Size            float32 `yaml:"size"`
	Radius          float32 `yaml:"radius"`
	Branches        int     `yaml:"branches"`
	Spin            float32 `yaml:"spin"`
	Randomness      float32 `yaml:"randomness"`
	RandomnessPower float32 `yaml:"randomness_power"`
	InsideColor     RGB     `yaml:"inside_color"`
	OutsideColor    RGB     `yaml:"outside_color"`
}

// DefaultParameters returns the startup galaxy.
func DefaultParameters() Parameters {
	return Parameters{
		Count:           1000,
		Size:            0.02,
		Radius:          5,
		Branches:        3,
		Spin:            1,
		Randomness:      0.2,
		RandomnessPower: 3,
		InsideColor:     RGB{R: 224, G: 97, B: 24},
		OutsideColor:    RGB{R: 231, G: 231, B: 231},
	}
}

// Validate reports every parameter that would produce a degenerate or NaN cloud.
// A zero Count is valid and yields an empty cloud.
func (p Parameters) Validate() error {
	var errs []error
	reject := func(field string, value any, reason string) {
		errs = append(errs, &ParameterError{Field: field, Value: value, Reason: reason})
	}

	if p.Count < 0 {
		reject("count", p.Count, "must not be negative")
	} else if p.Count > MaxCount {
		reject("count", p.Count, fmt.Sprintf("must be at most %d", MaxCount))
	}
	if !finite(p.Size) || p.Size < 0 {
		reject("size", p.Size, "must be a finite value >= 0")
	}
	if !finite(p.Radius) || p.Radius <= 0 {
		reject("radius", p.Radius, "must be a finite value > 0")
	}
	if p.Branches < 1 {
		reject("branches", p.Branches, "must be at least 1")
	}
	if !finite(p.Spin) {
		reject("spin", p.Spin, "must be finite")
	}
	if !finite(p.Randomness) || p.Randomness < 0 {
		reject("randomness", p.Randomness, "must be a finite value >= 0")
	}
	if !finite(p.RandomnessPower) || p.RandomnessPower < 1 {
		reject("randomness_power", p.RandomnessPower, "must be a finite value >= 1")
	}

	return errors.Join(errs...)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
