package galaxy

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/logger"
)

// DefaultSpinSpeed is the cloud's rotation about the Y axis, in radians per second.
const DefaultSpinSpeed = 0.1

// Object is a point cloud uploaded to a Display.
type Object interface {
	Count() int
	SetRotationY(angle float32)
}

// Display owns the scene a generated cloud is shown in.
type Display interface {
	// Ready reports whether the graphics context can take resource calls.
	Ready() error
	Build(cloud *PointCloud, size float32) (Object, error)
	Attach(obj Object)
	Detach(obj Object)
	ReleaseGeometry(obj Object) error
	ReleaseMaterial(obj Object) error
}

// Stats describes the most recent successful regeneration.
type Stats struct {
	Points      int
	Duration    time.Duration
	Generations int
}

// Galaxy keeps exactly one generated cloud attached to a Display and rebuilds
// it whenever its parameters change.
type Galaxy struct {
	display   Display
	source    Source
	params    Parameters
	current   Object
	spinSpeed float32
	angle     float32
	stats     Stats

	// geometryFreed records a partial release of current, so a retry after a
	// failed material release does not free the geometry twice.
	geometryFreed bool

	log *zap.Logger
}

// New creates a Galaxy with nothing displayed yet.
func New(display Display, source Source) *Galaxy {
	return &Galaxy{
		display:   display,
		source:    source,
		spinSpeed: DefaultSpinSpeed,
		log:       logger.Named("galaxy"),
	}
}

// SetSpinSpeed sets the rotation rate used by Spin.
func (g *Galaxy) SetSpinSpeed(radPerSec float32) {
	g.spinSpeed = radPerSec
}

// Reseed replaces the random source. A zero seed picks one from the clock.
func (g *Galaxy) Reseed(seed uint64) {
	g.source = NewSource(seed)
}

// Params returns the parameters of the displayed cloud.
func (g *Galaxy) Params() Parameters {
	return g.params
}

// Current returns the displayed object, or nil before the first regeneration.
func (g *Galaxy) Current() Object {
	return g.current
}

// Stats returns metrics of the last successful regeneration.
func (g *Galaxy) Stats() Stats {
	return g.stats
}

// Regenerate replaces the displayed cloud with one built from p.
//
// Invalid parameters and an unavailable display leave the previous cloud and
// parameters in place. Otherwise the previous geometry and material are
// released once each and detached before the new cloud is attached.
//
// A Build failure happens after the previous cloud is gone, so nothing is
// displayed and Current returns nil until the next successful call.
func (g *Galaxy) Regenerate(p Parameters) error {
	if err := p.Validate(); err != nil {
		g.log.Warn("galaxy parameters rejected", zap.Error(err))
		return err
	}
	if err := g.display.Ready(); err != nil {
		err = fmt.Errorf("%w: %w", ErrResourceRelease, err)
		g.log.Error("regeneration skipped", zap.Error(err))
		return err
	}

	start := time.Now()
	cloud, err := Generate(p, g.source)
	if err != nil {
		return err
	}

	if err := g.release(); err != nil {
		g.log.Error("regeneration skipped", zap.Error(err))
		return err
	}

	obj, err := g.display.Build(cloud, p.Size)
	if err != nil {
		g.log.Error("building point cloud failed", zap.Error(err))
		return fmt.Errorf("building point cloud: %w", err)
	}
	obj.SetRotationY(g.angle)
	g.display.Attach(obj)

	g.current = obj
	g.geometryFreed = false
	g.params = p
	g.stats = Stats{
		Points:      cloud.Len(),
		Duration:    time.Since(start),
		Generations: g.stats.Generations + 1,
	}

	g.log.Debug("galaxy regenerated",
		zap.Int("count", p.Count),
		zap.Int("branches", p.Branches),
		zap.Duration("elapsed", g.stats.Duration),
	)
	return nil
}

// Refresh regenerates with the current parameters and a fresh set of draws.
func (g *Galaxy) Refresh() error {
	return g.Regenerate(g.params)
}

// Spin rotates the displayed cloud to match elapsed animation time.
func (g *Galaxy) Spin(elapsed time.Duration) {
	g.angle = float32(elapsed.Seconds()) * g.spinSpeed
	if g.current != nil {
		g.current.SetRotationY(g.angle)
	}
}

// Close releases the displayed cloud.
func (g *Galaxy) Close() error {
	return g.release()
}

func (g *Galaxy) release() error {
	if g.current == nil {
		return nil
	}
	if !g.geometryFreed {
		if err := g.display.ReleaseGeometry(g.current); err != nil {
			return fmt.Errorf("%w: geometry: %w", ErrResourceRelease, err)
		}
		g.geometryFreed = true
	}
	if err := g.display.ReleaseMaterial(g.current); err != nil {
		return fmt.Errorf("%w: material: %w", ErrResourceRelease, err)
	}
	g.display.Detach(g.current)
	g.current = nil
	g.geometryFreed = false
	return nil
}
