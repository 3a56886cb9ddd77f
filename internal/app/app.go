// Package app is the galaxy viewer with the ImGui control panel.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/debug"
	"github.com/Faultbox/galaxy/internal/engine/camera"
	"github.com/Faultbox/galaxy/internal/engine/clock"
	"github.com/Faultbox/galaxy/internal/engine/renderer"
	"github.com/Faultbox/galaxy/internal/engine/scene"
	"github.com/Faultbox/galaxy/internal/galaxy"
	"github.com/Faultbox/galaxy/internal/logger"
	"github.com/Faultbox/galaxy/internal/ui"
)

// Title is the window title.
const Title = "Galaxy"

var errWindowClosed = errors.New("window closed")

// App is the panel viewer.
type App struct {
	cfg *config.Config

	backend  *ui.Backend
	scene    *scene.Scene
	renderer *renderer.Renderer
	camera   *camera.Perspective
	controls *camera.OrbitControls
	galaxy   *galaxy.Galaxy
	editor   *editor
	clock    *clock.Clock

	panel       *ui.Panel
	stats       *ui.StatsOverlay
	screenshots *debug.ScreenshotCapture

	lastMousePos        imgui.Vec2
	titleGeneration     int
	screenshotRequested bool
	contextAlive        bool
	closed              bool

	log *zap.Logger
}

// New opens the window and builds the first galaxy.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	a.backend, err = ui.NewBackend(Title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}
	a.contextAlive = true
	a.backend.OnClose(a.release)

	a.renderer, err = renderer.New(renderer.Config{
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		PixelRatio:    1,
		MaxPixelRatio: cfg.Graphics.MaxPixelRatio,
		Offscreen:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.camera = camera.NewPerspective(cfg.Camera.FOV,
		float32(cfg.Graphics.Width)/float32(cfg.Graphics.Height),
		cfg.Camera.Near, cfg.Camera.Far)
	a.camera.Position = mgl32.Vec3(cfg.Camera.Position)
	a.camera.Target = mgl32.Vec3{}
	a.controls = camera.NewOrbitControls(a.camera)
	a.controls.EnableDamping = cfg.Camera.Damping
	a.controls.DampingFactor = cfg.Camera.DampingFactor
	a.controls.MaxDistance = cfg.Camera.Far * 0.5

	seed := cfg.Galaxy.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.scene = scene.New(a.ready)
	a.galaxy = galaxy.New(a.scene, galaxy.NewSource(seed))
	a.galaxy.SetSpinSpeed(cfg.Animation.SpinSpeed)

	a.panel = ui.NewPanel("Galaxy")
	a.panel.SetLivePreview(cfg.Panel.LivePreview, cfg.Panel.LivePreviewRate)
	a.editor = newEditor(a.galaxy, cfg, seed)
	a.editor.bind(a.panel)
	if !cfg.Panel.Enabled {
		a.panel.Toggle()
	}

	a.stats = ui.NewStatsOverlay()
	a.screenshots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "galaxy")
	a.screenshots.SetFormat(cfg.Screenshot.Format)

	if err := a.galaxy.Regenerate(cfg.Galaxy.Parameters); err != nil {
		return nil, fmt.Errorf("initial galaxy: %w", err)
	}

	a.clock = clock.New()
	a.log.Info("viewer ready",
		zap.Int("count", cfg.Galaxy.Count),
		zap.Uint64("seed", seed),
	)
	return a, nil
}

// windowTitle shows the displayed star count next to the app name.
func windowTitle(points int) string {
	return fmt.Sprintf("%s - %d stars", Title, points)
}

// ready gates GPU resource changes on the context being alive.
func (a *App) ready() error {
	if !a.contextAlive {
		return errWindowClosed
	}
	return nil
}

// Run blocks until the window closes.
func (a *App) Run() {
	a.clock.Start()
	a.backend.Run(a.frame)
}

// release frees GPU resources while the context is still current.
func (a *App) release() {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.galaxy.Close(); err != nil {
		a.log.Error("releasing galaxy", zap.Error(err))
	}
	a.scene.Destroy()
	a.renderer.Close()
	a.contextAlive = false
}

// Close releases anything the shutdown hook did not.
func (a *App) Close() {
	if a.contextAlive {
		a.release()
	}
	a.log.Info("viewer closed")
}

// frame runs once per display refresh inside the backend loop.
func (a *App) frame() {
	dt := a.clock.Delta()
	a.stats.Update(float64(dt) / float64(time.Millisecond))

	if a.screenshotRequested {
		a.screenshotRequested = false
		a.captureScreenshot()
	}
	a.handleKeys()

	_, _, w, h := ui.Viewport()
	a.renderer.SetSize(int(w), int(h))
	a.renderer.SetPixelRatio(ui.FramebufferScale())
	a.camera.SetAspect(a.renderer.Viewport().Aspect())

	a.controls.Update()
	a.galaxy.Spin(a.clock.Elapsed())
	a.renderer.Render(a.scene, a.camera)

	if ui.DrawSceneTexture(a.renderer.Texture()) {
		a.handleMouse(h)
	}

	st := a.galaxy.Stats()
	if st.Generations != a.titleGeneration {
		a.titleGeneration = st.Generations
		a.backend.SetWindowTitle(windowTitle(st.Points))
	}
	a.stats.Points = st.Points
	a.stats.Branches = a.galaxy.Params().Branches
	a.stats.Generations = st.Generations
	a.stats.LastBuild = st.Duration
	a.stats.Seed = a.editor.seed
	a.stats.Render()
	a.panel.Render()
}

func (a *App) handleKeys() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshotRequested = true
	}
	if ui.IsKeyPressed(imgui.KeyH) {
		a.panel.Toggle()
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		a.backend.SetShouldClose(true)
	}
}

// handleMouse orbits on left drag and zooms on wheel.
func (a *App) handleMouse(viewportHeight float32) {
	mousePos := imgui.MousePos()
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		a.controls.Rotate(mousePos.X-a.lastMousePos.X, mousePos.Y-a.lastMousePos.Y, viewportHeight)
	}
	a.lastMousePos = mousePos

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		a.controls.Zoom(wheel)
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		a.panel.SetMessage("Screenshot failed: " + err.Error())
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.panel.SetMessage("Screenshot: " + path)
}
