package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func approxEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < epsilon
}

func TestPerspectiveViewLooksAtTarget(t *testing.T) {
	cam := NewPerspective(75, 16.0/9.0, 0.1, 100)
	cam.Position = mgl32.Vec3{3, 3, 3}
	cam.Target = mgl32.Vec3{0, 0, 0}

	// The target should land on the -Z axis in view space.
	v := cam.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approxEqual(v.X(), 0) || !approxEqual(v.Y(), 0) {
		t.Errorf("target in view space = %v, want on -Z axis", v)
	}
	if want := -float32(gomath.Sqrt(27)); !approxEqual(v.Z(), want) {
		t.Errorf("target depth = %v, want %v", v.Z(), want)
	}
}

func TestSetAspect(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 100)
	cam.SetAspect(2)
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect)
	}
	cam.SetAspect(0)
	if cam.Aspect != 2 {
		t.Errorf("Aspect changed to %v on zero input", cam.Aspect)
	}
}

func TestOrbitUpdatePreservesDistance(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{3, 3, 3}
	cam.Target = mgl32.Vec3{}
	ctrl := NewOrbitControls(cam)

	before := cam.Position.Len()
	ctrl.Rotate(100, 20, 800)
	if !ctrl.Update() {
		t.Fatal("Update() reported no movement after Rotate")
	}
	if after := cam.Position.Len(); !approxEqual(before, after) {
		t.Errorf("distance = %v, want %v", after, before)
	}
	if ctrl.Update() {
		t.Error("Update() without damping should settle immediately")
	}
}

func TestOrbitDampingSettles(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 5}
	ctrl := NewOrbitControls(cam)
	ctrl.EnableDamping = true

	ctrl.Rotate(200, 0, 800)
	if !ctrl.Update() {
		t.Fatal("first damped Update() should move")
	}
	for i := 0; i < 1000; i++ {
		ctrl.Update()
	}
	if ctrl.Update() {
		t.Error("damped motion did not settle")
	}
}

func TestOrbitPolarClamp(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 5}
	ctrl := NewOrbitControls(cam)
	ctrl.MaxPolar = gomath.Pi / 2

	// Dragging far up would flip past the horizon; clamp keeps y >= 0.
	ctrl.Rotate(0, -10000, 800)
	ctrl.Update()
	if cam.Position.Y() < -epsilon {
		t.Errorf("camera went below MaxPolar: %v", cam.Position)
	}
}

func TestOrbitZoomClamp(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 5}
	ctrl := NewOrbitControls(cam)
	ctrl.MinDistance = 2
	ctrl.MaxDistance = 8

	ctrl.Zoom(1)
	ctrl.Update()
	if d := cam.Position.Len(); !approxEqual(d, 5*0.95) {
		t.Errorf("distance after zoom in = %v, want %v", d, 5*0.95)
	}

	for i := 0; i < 100; i++ {
		ctrl.Zoom(1)
		ctrl.Update()
	}
	if d := cam.Position.Len(); !approxEqual(d, 2) {
		t.Errorf("distance = %v, want MinDistance 2", d)
	}

	for i := 0; i < 100; i++ {
		ctrl.Zoom(-1)
		ctrl.Update()
	}
	if d := cam.Position.Len(); !approxEqual(d, 8) {
		t.Errorf("distance = %v, want MaxDistance 8", d)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name          string
		vp            Viewport
		aspect        float32
		width, height int32
	}{
		{"standard", Viewport{Width: 1280, Height: 720, PixelRatio: 1}, 1280.0 / 720.0, 1280, 720},
		{"retina", Viewport{Width: 800, Height: 600, PixelRatio: 2}, 800.0 / 600.0, 1600, 1200},
		{"clamped ratio", Viewport{Width: 100, Height: 100, PixelRatio: 3}, 1, 200, 200},
		{"unset ratio", Viewport{Width: 640, Height: 480}, 640.0 / 480.0, 640, 480},
		{"degenerate", Viewport{}, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vp.Aspect(); !approxEqual(got, tt.aspect) {
				t.Errorf("Aspect() = %v, want %v", got, tt.aspect)
			}
			w, h := tt.vp.DrawableSize(DefaultMaxPixelRatio)
			if w != tt.width || h != tt.height {
				t.Errorf("DrawableSize() = %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
		})
	}
}
