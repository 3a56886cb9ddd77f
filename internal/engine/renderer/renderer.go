// Package renderer draws a scene through a camera into the window or an
// offscreen framebuffer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/engine/camera"
	"github.com/Faultbox/galaxy/internal/engine/framebuffer"
	"github.com/Faultbox/galaxy/internal/engine/scene"
	"github.com/Faultbox/galaxy/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width         int // Viewport width in points
	Height        int // Viewport height in points
	PixelRatio    float32
	MaxPixelRatio float32
	Offscreen     bool // Render into a texture instead of the default framebuffer
	ClearColor    [4]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config      Config
	viewport    camera.Viewport
	framebuffer *framebuffer.Framebuffer
	log         *zap.Logger
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created and gl.Init has run!
func New(cfg Config) (*Renderer, error) {
	if cfg.MaxPixelRatio <= 0 {
		cfg.MaxPixelRatio = camera.DefaultMaxPixelRatio
	}

	r := &Renderer{
		config: cfg,
		viewport: camera.Viewport{
			Width:      cfg.Width,
			Height:     cfg.Height,
			PixelRatio: cfg.PixelRatio,
		},
		log: logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	if cfg.Offscreen {
		w, h := r.DrawableSize()
		fb, err := framebuffer.New(w, h)
		if err != nil {
			return nil, fmt.Errorf("creating render target: %w", err)
		}
		r.framebuffer = fb
	}

	return r, nil
}

// Close frees the offscreen target.
func (r *Renderer) Close() {
	r.log.Debug("closing renderer")
	if r.framebuffer != nil {
		r.framebuffer.Destroy()
		r.framebuffer = nil
	}
}

// SetSize handles a viewport resize, in points.
func (r *Renderer) SetSize(width, height int) {
	if width == r.viewport.Width && height == r.viewport.Height {
		return
	}
	r.viewport.Width = width
	r.viewport.Height = height
	r.resizeTarget()
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetPixelRatio sets the device pixel ratio; it is clamped to MaxPixelRatio.
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio == r.viewport.PixelRatio {
		return
	}
	r.viewport.PixelRatio = ratio
	r.resizeTarget()
}

func (r *Renderer) resizeTarget() {
	if r.framebuffer != nil {
		r.framebuffer.Resize(r.DrawableSize())
	}
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() camera.Viewport {
	return r.viewport
}

// DrawableSize returns the output size in pixels.
func (r *Renderer) DrawableSize() (width, height int32) {
	return r.viewport.DrawableSize(r.config.MaxPixelRatio)
}

// Render draws s as seen by cam.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	w, h := r.DrawableSize()
	if r.framebuffer != nil {
		restore := r.framebuffer.BindWithViewport()
		defer restore()
	} else {
		gl.Viewport(0, 0, w, h)
	}

	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	s.Draw(cam.View(), cam.Projection(), float32(h)*0.5)

	gl.Disable(gl.DEPTH_TEST)
}

// Texture returns the offscreen colour texture, 0 when rendering on screen.
func (r *Renderer) Texture() uint32 {
	if r.framebuffer == nil {
		return 0
	}
	return r.framebuffer.ColorTexture()
}

// ReadPixels reads the last rendered frame as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int32) {
	if r.framebuffer != nil {
		width, height = r.framebuffer.Size()
		return r.framebuffer.ReadPixels(), width, height
	}

	width, height = r.DrawableSize()
	pixels = make([]byte, int(width)*int(height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
