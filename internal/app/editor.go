package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/galaxy"
	"github.com/Faultbox/galaxy/internal/logger"
	"github.com/Faultbox/galaxy/internal/ui"
)

// editor owns the panel's working copy of the parameters and turns panel
// commits into regenerations.
type editor struct {
	galaxy *galaxy.Galaxy
	cfg    *config.Config
	edit   galaxy.Parameters
	seed   uint64

	spinSpeed float32

	// save writes the config; replaced in tests.
	save func(*config.Config) (string, error)
	now  func() time.Time
	log  *zap.Logger
}

func newEditor(g *galaxy.Galaxy, cfg *config.Config, seed uint64) *editor {
	return &editor{
		galaxy:    g,
		cfg:       cfg,
		edit:      cfg.Galaxy.Parameters,
		seed:      seed,
		spinSpeed: cfg.Animation.SpinSpeed,
		save:      (*config.Config).Save,
		now:       time.Now,
		log:       logger.Named("editor"),
	}
}

// commit regenerates from the working copy. A rejected edit resets the
// working copy to the parameters still on screen.
func (e *editor) commit() error {
	err := e.galaxy.Regenerate(e.edit)
	if err == nil {
		return nil
	}
	e.edit = e.galaxy.Params()
	if errors.Is(err, galaxy.ErrResourceRelease) {
		e.log.Error("regeneration skipped", zap.Error(err))
	}
	return err
}

// reseed draws a fresh seed and rebuilds with the current parameters.
func (e *editor) reseed() error {
	e.seed = uint64(e.now().UnixNano())
	e.galaxy.Reseed(e.seed)
	return e.galaxy.Refresh()
}

// reset restores the default parameters.
func (e *editor) reset() error {
	e.edit = galaxy.DefaultParameters()
	return e.commit()
}

// applySpin pushes the edited spin speed to the animation.
func (e *editor) applySpin() error {
	e.galaxy.SetSpinSpeed(e.spinSpeed)
	return nil
}

// savePreset writes the displayed parameters into the config file.
func (e *editor) savePreset(p *ui.Panel) func() error {
	return func() error {
		e.cfg.Galaxy.Parameters = e.galaxy.Params()
		e.cfg.Galaxy.Seed = e.seed
		e.cfg.Animation.SpinSpeed = e.spinSpeed
		path, err := e.save(e.cfg)
		if err != nil {
			return fmt.Errorf("saving preset: %w", err)
		}
		e.log.Info("preset saved", zap.String("path", path))
		p.SetMessage("Saved " + path)
		return nil
	}
}

// bind adds every galaxy control to p.
func (e *editor) bind(p *ui.Panel) {
	commit := e.commit

	p.Int("count", &e.edit.Count).Name("stars").Min(0).Max(10000).Step(1).OnFinishChange(commit)
	p.Float("size", &e.edit.Size).Min(0).Max(0.1).Step(0.001).OnFinishChange(commit)
	p.Float("radius", &e.edit.Radius).Min(0).Max(10).Step(0.01).OnFinishChange(commit)
	p.Int("branches", &e.edit.Branches).Min(2).Max(20).Step(1).OnFinishChange(commit)
	p.Float("spin", &e.edit.Spin).Min(-5).Max(5).Step(0.001).OnFinishChange(commit)
	p.Float("randomness", &e.edit.Randomness).Min(0).Max(2).Step(0.001).OnFinishChange(commit)
	p.Float("randomnessPower", &e.edit.RandomnessPower).Min(1).Max(10).Step(0.001).OnFinishChange(commit)

	bindColor(p.Folder("Inside Color (RGB 0-255)"), &e.edit.InsideColor, commit)
	bindColor(p.Folder("Outside Color (RGB 0-255)"), &e.edit.OutsideColor, commit)

	anim := p.Folder("Animation").Close()
	anim.Float("spin speed", &e.spinSpeed).Min(-2).Max(2).Step(0.01).OnFinishChange(e.applySpin)

	p.Button("Regenerate", e.reseed)
	p.Button("Reset", e.reset)
	p.Button("Save preset", e.savePreset(p))
}

func bindColor(f *ui.Folder, c *galaxy.RGB, commit func() error) {
	f.Channel("r", &c.R).Step(1).OnFinishChange(commit)
	f.Channel("g", &c.G).Step(1).OnFinishChange(commit)
	f.Channel("b", &c.B).Step(1).OnFinishChange(commit)
}
