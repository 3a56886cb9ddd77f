package scene

import "github.com/go-gl/mathgl/mgl32"

// Points is a drawable point cloud: geometry, material and a Y rotation.
type Points struct {
	Geometry  *Geometry
	Material  *PointsMaterial
	rotationY float32
}

// Count returns the number of points.
func (p *Points) Count() int {
	if p.Geometry == nil {
		return 0
	}
	return p.Geometry.Count()
}

// SetRotationY sets the rotation about the Y axis in radians.
func (p *Points) SetRotationY(angle float32) {
	p.rotationY = angle
}

// RotationY returns the rotation about the Y axis in radians.
func (p *Points) RotationY() float32 {
	return p.rotationY
}

// Model returns the model matrix.
func (p *Points) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(p.rotationY)
}
