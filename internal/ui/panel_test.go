package ui

import (
	"errors"
	"testing"
	"time"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		v, offset, step float64
		want            float64
	}{
		{0.0234, 0, 0.001, 0.023},
		{0.0236, 0, 0.001, 0.024},
		{1234.6, 0, 1, 1235},
		{-2.3456, -5, 0.001, -2.346},
		{0.1 + 0.2, 0, 0.1, 0.3},
		{7, 2, 5, 7},
		{3.3, 0, 0, 3.3},
	}

	for _, tt := range tests {
		if got := Snap(tt.v, tt.offset, tt.step); got != tt.want {
			t.Errorf("Snap(%v, %v, %v) = %v, want %v", tt.v, tt.offset, tt.step, got, tt.want)
		}
	}
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1, 0},
		{0.1, 1},
		{0.01, 2},
		{0.001, 3},
	}
	for _, tt := range tests {
		if got := decimals(tt.step); got != tt.want {
			t.Errorf("decimals(%v) = %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestNumberControllerNormalize(t *testing.T) {
	p := NewPanel("test")

	var size float32
	c := p.Float("size", &size).Min(0).Max(0.1).Step(0.001)

	c.SetValue(0.0567)
	if !approx(size, 0.057) {
		t.Errorf("size = %v, want 0.057", size)
	}
	c.SetValue(0.5)
	if !approx(size, 0.1) {
		t.Errorf("size = %v, want clamped 0.1", size)
	}
	c.SetValue(-1)
	if size != 0 {
		t.Errorf("size = %v, want clamped 0", size)
	}
	if c.format != "%.3f" {
		t.Errorf("format = %q, want %%.3f", c.format)
	}

	var count int
	ic := p.Int("count", &count).Min(0).Max(10000).Step(1)
	ic.SetValue(123.6)
	if count != 124 {
		t.Errorf("count = %d, want 124", count)
	}
	ic.SetValue(20000)
	if count != 10000 {
		t.Errorf("count = %d, want 10000", count)
	}
}

func TestChannelRange(t *testing.T) {
	p := NewPanel("test")
	var r uint8
	c := p.Folder("Inside Color (RGB 0-255)").Channel("r", &r)

	c.SetValue(300)
	if r != 255 {
		t.Errorf("r = %d, want 255", r)
	}
	c.SetValue(-4)
	if r != 0 {
		t.Errorf("r = %d, want 0", r)
	}
	if c.id != "Inside Color (RGB 0-255)/r" {
		t.Errorf("id = %q, want folder-scoped id", c.id)
	}
}

func TestCommitOnlyOnFinish(t *testing.T) {
	p := NewPanel("test")

	var radius float32 = 5
	commits := 0
	c := p.Float("radius", &radius).Min(0).Max(10).Step(0.01).OnFinishChange(func() error {
		commits++
		return nil
	})

	// Dragging changes the value without committing.
	radius = 6.1234
	p.handle(c, true, false)
	p.handle(c, true, false)
	if commits != 0 {
		t.Fatalf("commits while dragging = %d, want 0", commits)
	}
	if !approx(radius, 6.12) {
		t.Errorf("radius = %v, want snapped 6.12", radius)
	}

	// Releasing the slider commits once.
	p.handle(c, false, true)
	if commits != 1 {
		t.Errorf("commits after finish = %d, want 1", commits)
	}
}

func TestCommitErrorShown(t *testing.T) {
	p := NewPanel("test")

	var radius float32
	rejected := errors.New("radius must be > 0")
	fail := true
	c := p.Float("radius", &radius).OnFinishChange(func() error {
		if fail {
			return rejected
		}
		return nil
	})

	p.handle(c, false, true)
	msg, isErr := p.Message()
	if !isErr || msg != "radius: radius must be > 0" {
		t.Errorf("Message() = %q, %v", msg, isErr)
	}

	fail = false
	p.handle(c, false, true)
	if msg, isErr := p.Message(); isErr || msg != "" {
		t.Errorf("error message not cleared after a good commit: %q", msg)
	}
}

func TestLivePreviewThrottled(t *testing.T) {
	p := NewPanel("test")
	now := time.Unix(0, 0)
	p.now = func() time.Time { return now }
	p.SetLivePreview(true, 2)

	var spin float32
	commits := 0
	c := p.Float("spin", &spin).Min(-5).Max(5).OnFinishChange(func() error {
		commits++
		return nil
	})

	// Ten changed frames within 100ms: only the burst token is used.
	for i := 0; i < 10; i++ {
		p.handle(c, true, false)
		now = now.Add(10 * time.Millisecond)
	}
	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}

	now = now.Add(time.Second)
	p.handle(c, true, false)
	if commits != 2 {
		t.Errorf("commits after refill = %d, want 2", commits)
	}

	// Finishing always commits regardless of the limiter.
	p.handle(c, true, true)
	if commits != 3 {
		t.Errorf("commits after finish = %d, want 3", commits)
	}
}

func TestLivePreviewDisabled(t *testing.T) {
	p := NewPanel("test")
	p.SetLivePreview(true, 0)
	if p.livePreview {
		t.Error("live preview enabled with zero rate")
	}
}

func TestToggle(t *testing.T) {
	p := NewPanel("test")
	if !p.Visible() {
		t.Fatal("new panel should be visible")
	}
	p.Toggle()
	if p.Visible() {
		t.Error("Toggle() did not hide the panel")
	}
}

func approx(a float32, b float64) bool {
	d := float64(a) - b
	return d < 1e-6 && d > -1e-6
}
