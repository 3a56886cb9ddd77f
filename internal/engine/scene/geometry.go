package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/galaxy/internal/galaxy"
)

// ErrAlreadyReleased is returned when a geometry or material is released twice.
var ErrAlreadyReleased = errors.New("resource already released")

// Attribute locations shared with points.vert.
const (
	attribPosition = 0
	attribColor    = 1
)

// Geometry holds point positions and colours on the GPU.
type Geometry struct {
	vao         uint32
	positionVBO uint32
	colorVBO    uint32
	count       int32
	released    bool
}

// NewGeometry uploads cloud into a new vertex array.
func NewGeometry(cloud *galaxy.PointCloud) (*Geometry, error) {
	if len(cloud.Positions) != len(cloud.Colors) {
		return nil, fmt.Errorf("position/colour length mismatch: %d vs %d",
			len(cloud.Positions), len(cloud.Colors))
	}

	g := &Geometry{count: int32(cloud.Len())}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.positionVBO = uploadAttribute(attribPosition, cloud.Positions)
	g.colorVBO = uploadAttribute(attribColor, cloud.Colors)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		g.Dispose()
		return nil, fmt.Errorf("uploading geometry: GL error 0x%x", code)
	}
	return g, nil
}

// uploadAttribute creates a VBO of vec3 values bound to loc of the current VAO.
func uploadAttribute(loc uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

// Count returns the number of points.
func (g *Geometry) Count() int {
	return int(g.count)
}

// Released reports whether Dispose has run.
func (g *Geometry) Released() bool {
	return g.released
}

// Draw issues the point draw call. The caller binds the material first.
func (g *Geometry) Draw() {
	if g.released || g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.POINTS, 0, g.count)
	gl.BindVertexArray(0)
}

// Dispose frees the GPU buffers.
func (g *Geometry) Dispose() error {
	if g.released {
		return ErrAlreadyReleased
	}
	g.released = true

	if g.positionVBO != 0 {
		gl.DeleteBuffers(1, &g.positionVBO)
		g.positionVBO = 0
	}
	if g.colorVBO != 0 {
		gl.DeleteBuffers(1, &g.colorVBO)
		g.colorVBO = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	return nil
}
