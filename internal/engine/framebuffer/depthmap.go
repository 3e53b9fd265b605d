package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DefaultDepthMapResolution is used when the configuration gives none.
const DefaultDepthMapResolution = 2048

// DepthMap is a depth-only render target sampled with comparison mode as the
// spotlight shadow map.
type DepthMap struct {
	fbo          uint32
	depthTexture uint32
	resolution   int32
	prevFBO      int32
	prevViewport [4]int32
}

// NewDepthMap creates a square depth-only target. Resolution should be a
// power of 2 (e.g., 1024, 2048, 4096).
func NewDepthMap(resolution int32) (*DepthMap, error) {
	if resolution <= 0 {
		resolution = DefaultDepthMapResolution
	}

	dm := &DepthMap{
		resolution: resolution,
	}

	// Generate framebuffer
	gl.GenFramebuffers(1, &dm.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, dm.fbo)

	// Generate depth texture
	gl.GenTextures(1, &dm.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, dm.depthTexture)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.DEPTH_COMPONENT24,
		resolution,
		resolution,
		0,
		gl.DEPTH_COMPONENT,
		gl.FLOAT,
		nil,
	)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Clamp to border with white (1.0) so everything outside the light
	// frustum is lit rather than shadowed
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := []float32{1.0, 1.0, 1.0, 1.0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	// Enable shadow comparison mode for sampler2DShadow
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	// Attach depth texture, no color buffer
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, dm.depthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		dm.Destroy()
		return nil, fmt.Errorf("depth map framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return dm, nil
}

// Bind makes the depth map the render target, saving the previous binding
// and viewport, and clears its depth to the far plane.
func (dm *DepthMap) Bind() {
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &dm.prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &dm.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, dm.fbo)
	gl.Viewport(0, 0, dm.resolution, dm.resolution)

	gl.ClearDepth(1.0)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// Unbind restores the previously bound framebuffer and viewport.
func (dm *DepthMap) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(dm.prevFBO))
	gl.Viewport(dm.prevViewport[0], dm.prevViewport[1], dm.prevViewport[2], dm.prevViewport[3])
}

// BindTexture binds the depth texture to the given texture unit for shadow
// sampling.
func (dm *DepthMap) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, dm.depthTexture)
}

// Resolution returns the depth map resolution.
func (dm *DepthMap) Resolution() int32 {
	return dm.resolution
}

// Destroy releases all GPU resources.
func (dm *DepthMap) Destroy() {
	if dm.fbo != 0 {
		gl.DeleteFramebuffers(1, &dm.fbo)
		dm.fbo = 0
	}
	if dm.depthTexture != 0 {
		gl.DeleteTextures(1, &dm.depthTexture)
		dm.depthTexture = 0
	}
}
