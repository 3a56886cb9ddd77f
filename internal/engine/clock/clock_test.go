package clock

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestElapsedAndDelta(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithTime(ft.now)
	c.Start()

	ft.advance(250 * time.Millisecond)
	if got := c.Delta(); got != 250*time.Millisecond {
		t.Errorf("Delta() = %v, want 250ms", got)
	}

	ft.advance(750 * time.Millisecond)
	if got := c.Delta(); got != 750*time.Millisecond {
		t.Errorf("Delta() = %v, want 750ms", got)
	}
	if got := c.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", got)
	}
}

func TestAutoStart(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWithTime(ft.now)

	if got := c.Delta(); got != 0 {
		t.Errorf("first Delta() = %v, want 0", got)
	}
	ft.advance(2 * time.Second)
	if got := c.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() = %v, want 2s", got)
	}
}

func TestZeroValue(t *testing.T) {
	var c Clock
	if c.Elapsed() < 0 {
		t.Error("zero-value clock returned negative elapsed time")
	}
}
