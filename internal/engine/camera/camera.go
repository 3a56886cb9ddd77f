// Package camera provides the perspective camera, orbit controls and viewport
// maths used to look at the galaxy.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective is a pinhole camera looking at Target.
type Perspective struct {
	FovY   float32 // Vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fovY, aspect, near, far float32) *Perspective {
	return &Perspective{
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// SetAspect updates the aspect ratio after a resize. Non-positive values are ignored.
func (c *Perspective) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// Projection returns the projection matrix.
func (c *Perspective) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// View returns the view matrix.
func (c *Perspective) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// OrbitControls orbits a camera around its target with optional damping.
type OrbitControls struct {
	camera *Perspective

	EnableDamping bool
	DampingFactor float32

	RotateSpeed float32
	ZoomSpeed   float32

	MinDistance float32
	MaxDistance float32

	// Constraints on the polar angle measured from +Y, radians
	MinPolar float32
	MaxPolar float32

	thetaDelta float32
	phiDelta   float32
	scale      float32
}

// NewOrbitControls creates controls for cam.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	return &OrbitControls{
		camera:        cam,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0.5,
		MaxDistance:   50,
		MinPolar:      0,
		MaxPolar:      gomath.Pi,
		scale:         1,
	}
}

// Rotate queues a rotation from a pointer drag of (dx, dy) pixels in a
// viewport of the given height. A full-height drag turns 2π.
func (o *OrbitControls) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	o.thetaDelta -= 2 * gomath.Pi * dx / viewportHeight * o.RotateSpeed
	o.phiDelta -= 2 * gomath.Pi * dy / viewportHeight * o.RotateSpeed
}

// Zoom queues a dolly step. Positive wheel values move toward the target.
func (o *OrbitControls) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	step := float32(gomath.Pow(0.95, float64(o.ZoomSpeed)))
	if wheel > 0 {
		o.scale *= step
	} else {
		o.scale /= step
	}
}

// Update applies queued input to the camera. Call once per frame.
// It reports whether the camera moved.
func (o *OrbitControls) Update() bool {
	cam := o.camera
	offset := cam.Position.Sub(cam.Target)

	radius := offset.Len()
	theta, phi := float32(0), float32(0)
	if radius > 0 {
		theta = float32(gomath.Atan2(float64(offset.X()), float64(offset.Z())))
		phi = float32(gomath.Acos(float64(mgl32.Clamp(offset.Y()/radius, -1, 1))))
	}

	if o.EnableDamping {
		theta += o.thetaDelta * o.DampingFactor
		phi += o.phiDelta * o.DampingFactor
	} else {
		theta += o.thetaDelta
		phi += o.phiDelta
	}

	const eps = 1e-6
	phi = mgl32.Clamp(phi, max(o.MinPolar, eps), min(o.MaxPolar, gomath.Pi-eps))
	radius = mgl32.Clamp(radius*o.scale, o.MinDistance, o.MaxDistance)

	sinPhi := float32(gomath.Sin(float64(phi)))
	next := cam.Target.Add(mgl32.Vec3{
		radius * sinPhi * float32(gomath.Sin(float64(theta))),
		radius * float32(gomath.Cos(float64(phi))),
		radius * sinPhi * float32(gomath.Cos(float64(theta))),
	})

	if o.EnableDamping {
		o.thetaDelta *= 1 - o.DampingFactor
		o.phiDelta *= 1 - o.DampingFactor
	} else {
		o.thetaDelta = 0
		o.phiDelta = 0
	}
	o.scale = 1

	moved := next.Sub(cam.Position).LenSqr() > eps*eps
	cam.Position = next
	return moved
}
