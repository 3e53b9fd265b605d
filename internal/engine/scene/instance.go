package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumforge/shadowcast/internal/engine/shader"
)

// MaxInstances is dictated by the 4096 vec4 uniform register limit: each
// instance takes 3 vec4 rows.
const MaxInstances = 1024

// instanceFloats is one transposed model matrix stored as 3 rows of vec4.
const instanceFloats = 12

// instanceBytes is the std140 size of one instance.
const instanceBytes = instanceFloats * 4

// rotationStepDeg is the per-index rotation of the cube instances.
const rotationStepDeg = 20.0

var rotationAxis = mgl32.Vec3{1, 1, 1}.Normalize()

// instanceTransforms fills dst with the transposed model matrices for the
// given cube positions and returns the number of instances written. Instance
// i rotates by i times the rotation step around the diagonal axis. Positions
// beyond MaxInstances are dropped; the GPU copy is sized by the return value
// so the staging array can never overrun the buffer.
func instanceTransforms(dst []float32, positions []mgl32.Vec3) int {
	count := len(positions)
	if count > MaxInstances {
		count = MaxInstances
	}

	for i := 0; i < count; i++ {
		angle := mgl32.DegToRad(float32(i) * rotationStepDeg)
		m := mgl32.Translate3D(positions[i].X(), positions[i].Y(), positions[i].Z()).
			Mul4(mgl32.HomogRotate3D(angle, rotationAxis))

		// Rows of the model matrix become the stored vec4 columns
		base := i * instanceFloats
		for row := 0; row < 3; row++ {
			dst[base+row*4+0] = m[0*4+row]
			dst[base+row*4+1] = m[1*4+row]
			dst[base+row*4+2] = m[2*4+row]
			dst[base+row*4+3] = m[3*4+row]
		}
	}

	return count
}

// InstanceBuffer is the uniform buffer holding the per-instance model
// matrices, rebuilt every frame.
type InstanceBuffer struct {
	ubo     uint32
	staging [MaxInstances * instanceFloats]float32
}

// NewInstanceBuffer allocates the UBO sized by what the instancing program
// reports for its InstanceBuffer block, validating the CPU-side layout.
func NewInstanceBuffer(program uint32) (*InstanceBuffer, error) {
	idx := gl.GetUniformBlockIndex(program, gl.Str("InstanceBuffer\x00"))
	if idx == gl.INVALID_INDEX {
		return nil, fmt.Errorf("program %d has no InstanceBuffer block", program)
	}

	var size int32
	gl.GetActiveUniformBlockiv(program, idx, gl.UNIFORM_BLOCK_DATA_SIZE, &size)
	if size != MaxInstances*instanceBytes {
		return nil, fmt.Errorf("InstanceBuffer layout mismatch: shader reports %d bytes, expected %d", size, MaxInstances*instanceBytes)
	}

	b := &InstanceBuffer{}
	gl.GenBuffers(1, &b.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, int(size), nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	return b, nil
}

// Update rebuilds the staging array from positions and maps exactly the
// active byte range into the UBO. The shared binding slot is left unbound on
// return so other passes are unaffected.
func (b *InstanceBuffer) Update(positions []mgl32.Vec3) error {
	count := instanceTransforms(b.staging[:], positions)

	gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.InstanceBinding, b.ubo)

	ptr := gl.MapBuffer(gl.UNIFORM_BUFFER, gl.WRITE_ONLY)
	if ptr == nil {
		gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.InstanceBinding, 0)
		return fmt.Errorf("mapping instance buffer failed")
	}
	dst := unsafe.Slice((*float32)(ptr), count*instanceFloats)
	copy(dst, b.staging[:count*instanceFloats])
	gl.UnmapBuffer(gl.UNIFORM_BUFFER)

	gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.InstanceBinding, 0)
	return nil
}

// Bind attaches the buffer to the shared instance binding slot for a draw.
func (b *InstanceBuffer) Bind() {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.InstanceBinding, b.ubo)
}

// Unbind detaches the buffer from the shared instance binding slot.
func (b *InstanceBuffer) Unbind() {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shader.InstanceBinding, 0)
}

// Destroy releases the UBO.
func (b *InstanceBuffer) Destroy() {
	if b.ubo != 0 {
		gl.DeleteBuffers(1, &b.ubo)
		b.ubo = 0
	}
}
