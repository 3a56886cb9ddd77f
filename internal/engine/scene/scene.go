// Package scene holds the GPU-side galaxy: point geometry, point materials and
// the set of objects currently attached for drawing.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/galaxy"
	"github.com/Faultbox/galaxy/internal/logger"
)

// ErrForeignObject is returned for objects not built by this scene.
var ErrForeignObject = errors.New("object does not belong to this scene")

// Scene is the set of attached point clouds. It implements galaxy.Display.
type Scene struct {
	objects []*Points
	ready   func() error
	log     *zap.Logger
}

var _ galaxy.Display = (*Scene)(nil)

// New creates an empty scene. ready reports whether a GL context is current;
// nil means always ready.
func New(ready func() error) *Scene {
	return &Scene{
		ready: ready,
		log:   logger.Named("scene"),
	}
}

// Ready reports whether GPU resources can be created and released.
func (s *Scene) Ready() error {
	if s.ready == nil {
		return nil
	}
	return s.ready()
}

// Build uploads cloud and compiles a material of the given point size.
func (s *Scene) Build(cloud *galaxy.PointCloud, size float32) (galaxy.Object, error) {
	geometry, err := NewGeometry(cloud)
	if err != nil {
		return nil, fmt.Errorf("creating geometry: %w", err)
	}
	material, err := NewPointsMaterial(size)
	if err != nil {
		_ = geometry.Dispose()
		return nil, fmt.Errorf("creating material: %w", err)
	}
	return &Points{Geometry: geometry, Material: material}, nil
}

// Attach adds obj to the draw list. Attaching twice is a no-op.
func (s *Scene) Attach(obj galaxy.Object) {
	p, ok := obj.(*Points)
	if !ok {
		s.log.Warn("ignoring attach of foreign object", zap.String("type", fmt.Sprintf("%T", obj)))
		return
	}
	if slices.Contains(s.objects, p) {
		return
	}
	s.objects = append(s.objects, p)
}

// Detach removes obj from the draw list.
func (s *Scene) Detach(obj galaxy.Object) {
	p, ok := obj.(*Points)
	if !ok {
		return
	}
	s.objects = slices.DeleteFunc(s.objects, func(o *Points) bool { return o == p })
}

// ReleaseGeometry frees the vertex buffers of obj.
func (s *Scene) ReleaseGeometry(obj galaxy.Object) error {
	p, ok := obj.(*Points)
	if !ok || p.Geometry == nil {
		return ErrForeignObject
	}
	return p.Geometry.Dispose()
}

// ReleaseMaterial frees the shader program of obj.
func (s *Scene) ReleaseMaterial(obj galaxy.Object) error {
	p, ok := obj.(*Points)
	if !ok || p.Material == nil {
		return ErrForeignObject
	}
	return p.Material.Dispose()
}

// Objects returns the attached objects in draw order.
func (s *Scene) Objects() []*Points {
	return s.objects
}

// PointCount returns the total number of attached points.
func (s *Scene) PointCount() int {
	n := 0
	for _, p := range s.objects {
		n += p.Count()
	}
	return n
}

// Draw renders every attached object.
func (s *Scene) Draw(view, projection mgl32.Mat4, pointScale float32) {
	for _, p := range s.objects {
		if p.Material == nil || p.Geometry == nil {
			continue
		}
		p.Material.Bind(p.Model(), view, projection, pointScale)
		p.Geometry.Draw()
		p.Material.Unbind()
	}
}

// Destroy releases every attached object and empties the scene.
func (s *Scene) Destroy() {
	for _, p := range s.objects {
		if p.Geometry != nil && !p.Geometry.Released() {
			_ = p.Geometry.Dispose()
		}
		if p.Material != nil && !p.Material.Released() {
			_ = p.Material.Dispose()
		}
	}
	s.objects = nil
}
