package galaxy

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultParametersValid(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Errorf("defaults should be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"zero count ok", func(p *Parameters) { p.Count = 0 }, ""},
		{"zero size ok", func(p *Parameters) { p.Size = 0 }, ""},
		{"negative spin ok", func(p *Parameters) { p.Spin = -5 }, ""},
		{"single branch ok", func(p *Parameters) { p.Branches = 1 }, ""},
		{"negative count", func(p *Parameters) { p.Count = -3 }, "count"},
		{"max count ok", func(p *Parameters) { p.Count = MaxCount }, ""},
		{"count past max", func(p *Parameters) { p.Count = MaxCount + 1 }, "count"},
		{"huge count", func(p *Parameters) { p.Count = math.MaxInt }, "count"},
		{"negative size", func(p *Parameters) { p.Size = -0.1 }, "size"},
		{"zero radius", func(p *Parameters) { p.Radius = 0 }, "radius"},
		{"negative radius", func(p *Parameters) { p.Radius = -1 }, "radius"},
		{"nan radius", func(p *Parameters) { p.Radius = nan }, "radius"},
		{"inf radius", func(p *Parameters) { p.Radius = inf }, "radius"},
		{"zero branches", func(p *Parameters) { p.Branches = 0 }, "branches"},
		{"inf spin", func(p *Parameters) { p.Spin = inf }, "spin"},
		{"negative randomness", func(p *Parameters) { p.Randomness = -0.2 }, "randomness"},
		{"power below one", func(p *Parameters) { p.RandomnessPower = 0.99 }, "randomness_power"},
		{"nan power", func(p *Parameters) { p.RandomnessPower = nan }, "randomness_power"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParameterError, got %T", err)
			}
			if pe.Field != tt.field {
				t.Errorf("field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}

func TestGenerateRejectsHugeCount(t *testing.T) {
	p := DefaultParameters()
	p.Count = math.MaxInt
	if _, err := Generate(p, FixedSource(0.5)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Generate() error = %v, want ErrInvalidParameter", err)
	}
}

func TestValidateReportsAll(t *testing.T) {
	p := DefaultParameters()
	p.Count = -1
	p.Branches = 0

	err := p.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "count") || !strings.Contains(msg, "branches") {
		t.Errorf("expected both fields in %q", msg)
	}
}

func TestRGBColor(t *testing.T) {
	c := RGB{R: 255, G: 0, B: 51}.Color()
	if c.R != 1 || c.G != 0 || math.Abs(c.B-0.2) > 1e-9 {
		t.Errorf("Color() = %+v", c)
	}
}
