// Package framebuffer provides the offscreen render targets: the multisampled
// HDR scene target and the light-space depth map.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/lumforge/shadowcast/internal/logger"
)

// HDR is the multisampled floating-point scene target. The stencil shadow
// volumes need the packed depth-stencil attachment; tonemapping reads the
// color texture as sampler2DMS.
type HDR struct {
	fbo             uint32
	colorTexture    uint32
	depthStencilRBO uint32
	width           int32
	height          int32
	samples         int32
}

// NewHDR creates the HDR target. samples below 1 is treated as 1 so the
// target is always a multisample texture and one tonemap path suffices.
func NewHDR(width, height int32, samples int32) (*HDR, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if samples < 1 {
		samples = 1
	}

	fb := &HDR{
		width:   width,
		height:  height,
		samples: samples,
	}

	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating HDR framebuffer: %w", err)
	}

	return fb, nil
}

func (fb *HDR) create() error {
	// Create framebuffer object
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	// Floating-point multisample color attachment
	gl.GenTextures(1, &fb.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, fb.colorTexture)
	gl.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, fb.samples, gl.RGB16F, fb.width, fb.height, false)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D_MULTISAMPLE, fb.colorTexture, 0)

	// Packed depth-stencil renderbuffer for the shadow volume passes
	gl.GenRenderbuffers(1, &fb.depthStencilRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthStencilRBO)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.DEPTH24_STENCIL8, fb.width, fb.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.depthStencilRBO)

	// Check framebuffer completeness
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, 0)

	logger.Debug("HDR framebuffer created",
		zap.Int32("width", fb.width),
		zap.Int32("height", fb.height),
		zap.Int32("samples", fb.samples),
	)
	return nil
}

// Bind makes this framebuffer the current render target.
func (fb *HDR) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer.
func (fb *HDR) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ColorTexture returns the multisample color attachment for tonemapping.
func (fb *HDR) ColorTexture() uint32 {
	return fb.colorTexture
}

// Samples returns the sample count of the target.
func (fb *HDR) Samples() int32 {
	return fb.samples
}

// Size returns the framebuffer dimensions.
func (fb *HDR) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize recreates the attachments if the dimensions or sample count changed.
// Multisample storage cannot be respecified in place on all drivers, so the
// whole target is rebuilt.
func (fb *HDR) Resize(width, height, samples int32) error {
	if samples < 1 {
		samples = 1
	}
	if width == fb.width && height == fb.height && samples == fb.samples {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb.Destroy()
	fb.width = width
	fb.height = height
	fb.samples = samples
	return fb.create()
}

// BlitToScreen resolves the multisampled color into the default framebuffer,
// the non-tonemapped presentation path.
func (fb *HDR) BlitToScreen(dstWidth, dstHeight int32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, fb.width, fb.height,
		0, 0, dstWidth, dstHeight,
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Destroy releases all OpenGL resources.
func (fb *HDR) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
	if fb.depthStencilRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthStencilRBO)
		fb.depthStencilRBO = 0
	}
}
