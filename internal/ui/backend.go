package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the ImGui SDL backend and its window.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window, the ImGui context and loads OpenGL.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// OnClose registers fn to run at shutdown while the GL context is still alive.
func (b *Backend) OnClose(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// SetShouldClose asks the loop to exit after the current frame.
func (b *Backend) SetShouldClose(value bool) {
	b.backend.SetShouldClose(value)
}

// Viewport returns the main viewport work area in points.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// FramebufferScale returns drawable pixels per point.
func FramebufferScale() float32 {
	scale := imgui.CurrentIO().DisplayFramebufferScale()
	if scale.X <= 0 {
		return 1
	}
	return scale.X
}

// DrawSceneTexture fills the work area with textureID behind all windows.
// It reports whether the image is hovered, so callers can route mouse input
// to the camera.
func DrawSceneTexture(textureID uint32) (hovered bool) {
	if textureID == 0 {
		return false
	}
	x, y, w, h := Viewport()

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
		hovered = imgui.IsItemHovered()
	}
	imgui.End()
	imgui.PopStyleVar()

	return hovered
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
