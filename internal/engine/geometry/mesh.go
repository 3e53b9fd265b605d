// Package geometry builds the static meshes rendered by the scene.
package geometry

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute indices shared by all programs.
const (
	attrPosition = 0
	attrNormal   = 1
	attrTangent  = 2
	attrTexCoord = 3
)

const floatSize = 4

// Mesh owns a vertex array with its vertex and index buffers.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 { return m.indexCount }

// Bind makes the mesh's vertex array current.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = Mesh{}
}

// newMesh uploads vertices and indices and configures the attribute layout.
// floatsPerVertex is 3 for position-only meshes and 11 for the full
// position/normal/tangent/texcoord layout.
func newMesh(vertices []float32, indices []uint32, floatsPerVertex int32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := floatsPerVertex * floatSize

	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, stride, 0)

	if floatsPerVertex > 3 {
		gl.EnableVertexAttribArray(attrNormal)
		gl.VertexAttribPointerWithOffset(attrNormal, 3, gl.FLOAT, false, stride, 3*floatSize)

		gl.EnableVertexAttribArray(attrTangent)
		gl.VertexAttribPointerWithOffset(attrTangent, 3, gl.FLOAT, false, stride, 6*floatSize)

		gl.EnableVertexAttribArray(attrTexCoord)
		gl.VertexAttribPointerWithOffset(attrTexCoord, 2, gl.FLOAT, false, stride, 9*floatSize)
	}

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m
}
