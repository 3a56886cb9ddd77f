// Package viewer implements the panel-less galaxy viewer on SDL2.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/debug"
	"github.com/Faultbox/galaxy/internal/engine/camera"
	"github.com/Faultbox/galaxy/internal/engine/clock"
	"github.com/Faultbox/galaxy/internal/engine/input"
	"github.com/Faultbox/galaxy/internal/engine/renderer"
	"github.com/Faultbox/galaxy/internal/engine/scene"
	"github.com/Faultbox/galaxy/internal/engine/window"
	"github.com/Faultbox/galaxy/internal/galaxy"
	"github.com/Faultbox/galaxy/internal/logger"
)

// Options controls a viewer run.
type Options struct {
	Title string

	// ShotPath, when set, renders ShotFrames frames into a hidden window,
	// saves the last one there and exits.
	ShotPath   string
	ShotFrames int
}

// countStep is the change in star count per +/- key press.
const countStep = 1000

// Viewer is the main viewer instance.
type Viewer struct {
	cfg  *config.Config
	opts Options

	running  bool
	paused   bool
	dragging bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	camera   *camera.Perspective
	controls *camera.OrbitControls
	galaxy   *galaxy.Galaxy
	clock    *clock.Clock

	screenshots *debug.ScreenshotCapture

	// Spin angle freezes while paused, so animation time is tracked apart
	// from wall time.
	spinTime time.Duration

	log *zap.Logger
}

// New creates the window, renderer and first galaxy.
func New(cfg *config.Config, opts Options) (*Viewer, error) {
	if opts.Title == "" {
		opts.Title = "Galaxy"
	}
	if opts.ShotPath != "" && opts.ShotFrames < 1 {
		opts.ShotFrames = 1
	}

	v := &Viewer{
		cfg:  cfg,
		opts: opts,
		log:  logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.String("title", opts.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      opts.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen && opts.ShotPath == "",
		VSync:      cfg.Graphics.VSync,
		Hidden:     opts.ShotPath != "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:         w,
		Height:        h,
		PixelRatio:    v.window.PixelRatio(),
		MaxPixelRatio: cfg.Graphics.MaxPixelRatio,
		Offscreen:     opts.ShotPath != "",
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	v.camera = camera.NewPerspective(cfg.Camera.FOV, v.renderer.Viewport().Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	v.camera.Position = mgl32.Vec3(cfg.Camera.Position)
	v.camera.Target = mgl32.Vec3{}
	v.controls = camera.NewOrbitControls(v.camera)
	v.controls.EnableDamping = cfg.Camera.Damping
	v.controls.DampingFactor = cfg.Camera.DampingFactor

	v.scene = scene.New(v.window.ContextCurrent)
	v.galaxy = galaxy.New(v.scene, galaxy.NewSource(cfg.Galaxy.Seed))
	v.galaxy.SetSpinSpeed(cfg.Animation.SpinSpeed)
	if err := v.galaxy.Regenerate(cfg.Galaxy.Parameters); err != nil {
		v.Close()
		return nil, fmt.Errorf("initial galaxy: %w", err)
	}

	v.screenshots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "galaxy")
	v.screenshots.SetFormat(cfg.Screenshot.Format)
	v.clock = clock.New()

	v.log.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the main loop. It returns after quit or a completed capture.
func (v *Viewer) Run() error {
	v.running = true
	v.clock.Start()

	fpsTimer := time.Now()
	frameCount := 0
	frames := 0

	v.log.Info("starting render loop")

	for v.running {
		dt := v.clock.Delta()

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		if !v.paused {
			v.spinTime += dt
		}
		v.controls.Update()
		v.galaxy.Spin(v.spinTime)
		v.renderer.Render(v.scene, v.camera)

		frames++
		if v.opts.ShotPath != "" && frames >= v.opts.ShotFrames {
			return v.saveShot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies this frame's input.
func (v *Viewer) handleEvents() {
	_, height := v.window.Size()

	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.SetSize(event.Width, event.Height)
			v.renderer.SetPixelRatio(v.window.PixelRatio())
			v.camera.SetAspect(v.renderer.Viewport().Aspect())

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}
		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}
		case input.EventMouseMove:
			if v.dragging {
				v.controls.Rotate(float32(event.DeltaX), float32(event.DeltaY), float32(height))
			}
		case input.EventMouseWheel:
			v.controls.Zoom(event.Wheel)

		case input.EventKeyDown:
			if !event.Repeat {
				v.handleKey(event.Key)
			}
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_R:
		v.galaxy.Reseed(uint64(time.Now().UnixNano()))
		v.report(v.galaxy.Refresh())

	case sdl.SCANCODE_SPACE:
		v.paused = !v.paused
		v.log.Debug("spin toggled", zap.Bool("paused", v.paused))

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		v.report(v.setCount(v.galaxy.Params().Count + countStep))

	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		v.report(v.setCount(max(0, v.galaxy.Params().Count-countStep)))

	case sdl.SCANCODE_F12:
		v.screenshot()
	}
}

func (v *Viewer) setCount(n int) error {
	p := v.galaxy.Params()
	p.Count = n
	return v.galaxy.Regenerate(p)
}

func (v *Viewer) report(err error) {
	if err != nil {
		v.log.Warn("regeneration failed", zap.Error(err))
		return
	}
	v.window.SetTitle(fmt.Sprintf("%s - %d stars", v.opts.Title, v.galaxy.Params().Count))
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) saveShot() error {
	pixels, w, h := v.renderer.ReadPixels()
	if err := debug.WriteImage(v.opts.ShotPath, pixels, int(w), int(h)); err != nil {
		return fmt.Errorf("saving shot: %w", err)
	}
	v.log.Info("shot saved",
		zap.String("path", v.opts.ShotPath),
		zap.Int32("width", w),
		zap.Int32("height", h),
	)
	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.galaxy != nil {
		if err := v.galaxy.Close(); err != nil {
			v.log.Error("releasing galaxy", zap.Error(err))
		}
	}
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
