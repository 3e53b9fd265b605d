// Package render sequences the frame: depth priming, per-light shadow and
// accumulation passes, and the final tonemapped presentation.
package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// stencilOp describes the stencil update for one face orientation.
type stencilOp struct {
	face        uint32
	stencilFail uint32
	depthFail   uint32
	depthPass   uint32
}

// stencilOps returns the per-face stencil operations of the selected shadow
// volume algorithm. With depthFail set, back faces increment and front faces
// decrement when the depth test fails ("Carmack's reverse"), which stays
// correct with the camera inside a volume. Otherwise back faces decrement and
// front faces increment on depth pass, which requires the camera to be
// outside all volumes. Both count entries and exits of closed volumes, so
// they agree whenever the depth-pass precondition holds.
func stencilOps(depthFail bool) [2]stencilOp {
	if depthFail {
		return [2]stencilOp{
			{face: gl.BACK, stencilFail: gl.KEEP, depthFail: gl.INCR_WRAP, depthPass: gl.KEEP},
			{face: gl.FRONT, stencilFail: gl.KEEP, depthFail: gl.DECR_WRAP, depthPass: gl.KEEP},
		}
	}
	return [2]stencilOp{
		{face: gl.BACK, stencilFail: gl.KEEP, depthFail: gl.KEEP, depthPass: gl.DECR_WRAP},
		{face: gl.FRONT, stencilFail: gl.KEEP, depthFail: gl.KEEP, depthPass: gl.INCR_WRAP},
	}
}

// applyStencilOps sets the stencil state for the shadow volume pass: the test
// always passes, only the configured face operations update the buffer.
func applyStencilOps(ops [2]stencilOp) {
	gl.StencilFunc(gl.ALWAYS, 0x00, 0xff)
	for _, op := range ops {
		gl.StencilOpSeparate(op.face, op.stencilFail, op.depthFail, op.depthPass)
	}
}
