package ui

import (
	"math"
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"
)

// NumberController binds a slider to a numeric value. Configure it with the
// chained setters, in the style of a lil-gui controller.
type NumberController struct {
	label   string
	id      string
	get     func() float64
	set     func(float64)
	integer bool

	min, max, step          float64
	hasMin, hasMax, hasStep bool
	format                  string

	onFinish func() error
}

func newNumber(label string, get func() float64, set func(float64), integer bool) *NumberController {
	c := &NumberController{
		label:   label,
		id:      label,
		get:     get,
		set:     set,
		integer: integer,
		format:  "%.3f",
	}
	if integer {
		c.step, c.hasStep = 1, true
		c.format = "%d"
	}
	return c
}

// Name sets the displayed label.
func (c *NumberController) Name(name string) *NumberController {
	c.label = name
	return c
}

// Min sets the lower bound.
func (c *NumberController) Min(v float64) *NumberController {
	c.min, c.hasMin = v, true
	return c
}

// Max sets the upper bound.
func (c *NumberController) Max(v float64) *NumberController {
	c.max, c.hasMax = v, true
	return c
}

// Step sets the increment values snap to. Non-positive steps are ignored.
func (c *NumberController) Step(v float64) *NumberController {
	if v > 0 {
		c.step, c.hasStep = v, true
		if !c.integer {
			c.format = "%." + strconv.Itoa(decimals(v)) + "f"
		}
	}
	return c
}

// Format sets the printf format shown on the slider.
func (c *NumberController) Format(format string) *NumberController {
	c.format = format
	return c
}

// OnFinishChange sets the callback run once an edit is complete.
func (c *NumberController) OnFinishChange(fn func() error) *NumberController {
	c.onFinish = fn
	return c
}

// Value returns the bound value.
func (c *NumberController) Value() float64 {
	return c.get()
}

// SetValue stores v after snapping and clamping.
func (c *NumberController) SetValue(v float64) {
	c.set(c.normalize(v))
}

// normalize applies step snapping then range clamping.
func (c *NumberController) normalize(v float64) float64 {
	if c.hasStep {
		offset := 0.0
		switch {
		case c.hasMin:
			offset = c.min
		case c.hasMax:
			offset = c.max
		}
		v = Snap(v, offset, c.step)
	}
	if c.hasMin && v < c.min {
		v = c.min
	}
	if c.hasMax && v > c.max {
		v = c.max
	}
	return v
}

func (c *NumberController) finish() error {
	if c.onFinish == nil {
		return nil
	}
	return c.onFinish()
}

// draw renders the slider and reports whether the value changed this frame
// and whether an edit just finished.
func (c *NumberController) draw() (changed, finished bool) {
	label := c.label + "##" + c.id
	lo, hi := c.sliderRange()

	if c.integer {
		v := int32(c.get())
		if imgui.SliderIntV(label, &v, int32(lo), int32(hi), c.format, imgui.SliderFlagsAlwaysClamp) {
			c.set(float64(v))
			changed = true
		}
	} else {
		v := float32(c.get())
		if imgui.SliderFloatV(label, &v, float32(lo), float32(hi), c.format, imgui.SliderFlagsAlwaysClamp) {
			c.set(float64(v))
			changed = true
		}
	}
	return changed, imgui.IsItemDeactivatedAfterEdit()
}

// sliderRange picks drag limits; an open bound falls back to a span around
// the current value.
func (c *NumberController) sliderRange() (lo, hi float64) {
	v := c.get()
	lo, hi = c.min, c.max
	if !c.hasMin {
		lo = min(v, hi) - math.Max(1, math.Abs(v))
	}
	if !c.hasMax {
		hi = max(v, lo) + math.Max(1, math.Abs(v))
	}
	return lo, hi
}

// Snap rounds v to the nearest multiple of step measured from offset and
// trims float noise to 15 significant digits.
func Snap(v, offset, step float64) float64 {
	if step <= 0 {
		return v
	}
	v = math.Round((v-offset)/step)*step + offset
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	return r
}

// decimals returns the number of fractional digits needed to show step.
func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}
