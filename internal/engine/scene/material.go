package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galaxy/internal/engine/scene/shaders"
	"github.com/Faultbox/galaxy/internal/engine/shader"
)

// PointsMaterial describes how a point cloud is shaded.
type PointsMaterial struct {
	Size            float32
	SizeAttenuation bool
	DepthWrite      bool
	VertexColors    bool
	Opacity         float32

	program  *shader.Program
	released bool
}

// NewPointsMaterial compiles the point program. The defaults match the galaxy
// look: attenuated, additive, vertex coloured and without depth writes.
func NewPointsMaterial(size float32) (*PointsMaterial, error) {
	program, err := shader.NewProgram(shaders.PointsVertexShader, shaders.PointsFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("points shader: %w", err)
	}
	return &PointsMaterial{
		Size:            size,
		SizeAttenuation: true,
		DepthWrite:      false,
		VertexColors:    true,
		Opacity:         1,
		program:         program,
	}, nil
}

// Released reports whether Dispose has run.
func (m *PointsMaterial) Released() bool {
	return m.released
}

// Bind applies GL state and uniforms. pointScale converts world size to
// pixels at unit distance, usually half the drawable height.
func (m *PointsMaterial) Bind(model, view, projection mgl32.Mat4, pointScale float32) {
	if m.released || m.program == nil {
		return
	}

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.DepthMask(m.DepthWrite)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)

	p := m.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, &model[0])
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, &view[0])
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, &projection[0])
	gl.Uniform1f(p.Uniform("uSize"), m.Size)
	gl.Uniform1f(p.Uniform("uScale"), pointScale)
	gl.Uniform1i(p.Uniform("uSizeAttenuation"), boolToInt(m.SizeAttenuation))
	gl.Uniform1i(p.Uniform("uVertexColors"), boolToInt(m.VertexColors))
	gl.Uniform1f(p.Uniform("uOpacity"), m.Opacity)
}

// Unbind restores the state Bind changed.
func (m *PointsMaterial) Unbind() {
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.UseProgram(0)
}

// Dispose frees the shader program.
func (m *PointsMaterial) Dispose() error {
	if m.released {
		return ErrAlreadyReleased
	}
	m.released = true
	if m.program != nil {
		m.program.Delete()
		m.program = nil
	}
	return nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
