package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumforge/shadowcast/internal/engine/shader"
)

// transformFloats is the packed TransformBlock: the view matrix transposed
// into 3 vec4 rows followed by the full projection matrix. Per std140 a
// column matrix is stored as an array of columns padded to vec4, so the
// 3x4 storage wastes nothing while a 4x3 layout would pad every column.
const transformFloats = 12 + 16

// TransformBlockBytes is the expected std140 size of the block.
const TransformBlockBytes = transformFloats * 4

// packTransformBlock lays out the view and projection matrices exactly as
// the shader-side TransformBlock expects them.
func packTransformBlock(worldToView, projection mgl32.Mat4) [transformFloats]float32 {
	var out [transformFloats]float32

	// Rows of the view matrix become the stored vec4 columns
	for row := 0; row < 3; row++ {
		out[row*4+0] = worldToView[0*4+row]
		out[row*4+1] = worldToView[1*4+row]
		out[row*4+2] = worldToView[2*4+row]
		out[row*4+3] = worldToView[3*4+row]
	}

	// Projection goes in as-is, column major
	copy(out[12:], projection[:])

	return out
}

// TransformBlock is the shared per-frame uniform region every program reads
// at the same binding slot. It is bound once at creation and never rebound
// per program.
type TransformBlock struct {
	ubo uint32
}

// NewTransformBlock allocates the UBO and validates the shader-reported block
// size against the CPU layout. A mismatch is a programming error that must
// abort startup, not something to detect per frame.
func NewTransformBlock(program uint32) (*TransformBlock, error) {
	size, err := shader.TransformBlockSize(program)
	if err != nil {
		return nil, err
	}
	if size != TransformBlockBytes {
		return nil, fmt.Errorf("TransformBlock layout mismatch: shader reports %d bytes, expected %d", size, TransformBlockBytes)
	}

	t := &TransformBlock{}
	gl.GenBuffers(1, &t.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, t.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, int(size), nil, gl.DYNAMIC_DRAW)

	// Bind the memory for usage by all programs
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.TransformBinding, t.ubo)

	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return t, nil
}

// Update uploads new view and projection matrices.
func (t *TransformBlock) Update(worldToView, projection mgl32.Mat4) {
	data := packTransformBlock(worldToView, projection)

	gl.BindBuffer(gl.UNIFORM_BUFFER, t.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, TransformBlockBytes, gl.Ptr(&data[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Destroy releases the UBO.
func (t *TransformBlock) Destroy() {
	if t.ubo != 0 {
		gl.DeleteBuffers(1, &t.ubo)
		t.ubo = 0
	}
}
