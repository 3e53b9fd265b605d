package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lumforge/shadowcast/internal/engine/camera"
	"github.com/lumforge/shadowcast/internal/engine/framebuffer"
	"github.com/lumforge/shadowcast/internal/engine/lights"
	"github.com/lumforge/shadowcast/internal/engine/scene"
	"github.com/lumforge/shadowcast/internal/engine/shader"
	"github.com/lumforge/shadowcast/internal/logger"
)

// Settings are the per-frame render toggles.
type Settings struct {
	MSAASamples int32
	Wireframe   bool
	Tonemapping bool
	DepthFail   bool
}

// Renderer owns the offscreen targets and drives the frame sequence over the
// scene's draw commands.
type Renderer struct {
	programs *shader.Programs
	scene    *scene.Scene

	hdr *framebuffer.HDR
	// depthMap is nil unless the scene carries a spotlight
	depthMap *framebuffer.DepthMap

	width  int32
	height int32
}

// New creates the renderer with an HDR target matching the window size. A
// depth map target is created only for the spotlight pipeline.
func New(programs *shader.Programs, scn *scene.Scene, width, height, samples int32, spotlight bool, shadowMapResolution int32) (*Renderer, error) {
	r := &Renderer{
		programs: programs,
		scene:    scn,
		width:    width,
		height:   height,
	}

	var err error
	if r.hdr, err = framebuffer.NewHDR(width, height, samples); err != nil {
		return nil, err
	}

	if spotlight {
		if r.depthMap, err = framebuffer.NewDepthMap(shadowMapResolution); err != nil {
			r.hdr.Destroy()
			return nil, fmt.Errorf("creating shadow map: %w", err)
		}
	}

	return r, nil
}

// Resize recreates the HDR target for a new window size or sample count.
func (r *Renderer) Resize(width, height, samples int32) error {
	r.width = width
	r.height = height
	return r.hdr.Resize(width, height, samples)
}

// DrawFrame renders one complete frame and presents it into the currently
// bound default framebuffer.
func (r *Renderer) DrawFrame(cam *camera.Camera, set Settings) {
	s := r.scene

	s.UpdateTransformBlock(cam)
	if err := s.UpdateInstanceData(); err != nil {
		logger.Error("instance update failed", zap.Error(err))
		return
	}

	spotlight := r.depthMap != nil
	plan := buildFramePlan(s.Lights().Count(), spotlight)

	// Light-space depth goes first, before any color pass
	for _, st := range plan {
		if st.kind == stepShadowMap {
			r.renderShadowMap(cam, s.Lights().At(st.light))
		}
	}

	r.hdr.Bind()
	r.applyGlobalState(set)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, st := range plan {
		switch st.kind {
		case stepDepthPrime:
			r.depthPrime(cam)

		case stepShadowVolume:
			r.shadowVolumePass(cam, s.Lights().At(st.light), set.DepthFail)

		case stepDirectLight:
			r.lightPass(cam, s.Lights().At(st.light), scene.DirectLight, !spotlight)

		case stepAmbientLight:
			// Shadows must not affect ambient light
			gl.Disable(gl.STENCIL_TEST)
			r.lightPass(cam, s.Lights().At(st.light), scene.AmbientLight, false)
		}
	}

	// Leave the color write enabled for the presentation pass
	gl.ColorMask(true, true, true, true)
	gl.Disable(gl.STENCIL_TEST)

	r.present(set)
}

// applyGlobalState sets the frame-wide GPU state in the required order.
func (r *Renderer) applyGlobalState(set Settings) {
	if set.MSAASamples > 1 {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	if set.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	// Depth clamp keeps the infinity-projected shadow volume caps renderable
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.DEPTH_CLAMP)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(true)
}

// depthPrime renders the whole scene into the depth buffer only. Depth write
// stays disabled afterwards; the later passes rely on the primed buffer.
func (r *Renderer) depthPrime(cam *camera.Camera) {
	gl.ColorMask(false, false, false, false)

	ident := mgl32.Ident4()
	r.scene.DrawBackground(r.programs.DepthPass, scene.DepthPass, cam, nil, ident)
	r.scene.DrawObjects(r.programs.InstancingDepthPass, scene.DepthPass, cam, nil, ident)

	gl.DepthMask(false)
	gl.ColorMask(true, true, true, true)
}

// shadowVolumePass renders the extruded silhouettes into the stencil buffer.
// Color write is off, both winding orders render, and the selected convention
// decides which depth outcome updates which face.
func (r *Renderer) shadowVolumePass(cam *camera.Camera, light *lights.Light, depthFail bool) {
	gl.Clear(gl.STENCIL_BUFFER_BIT)
	gl.Enable(gl.STENCIL_TEST)

	gl.ColorMask(false, false, false, false)
	gl.Disable(gl.CULL_FACE)

	applyStencilOps(stencilOps(depthFail))

	r.scene.DrawObjects(r.programs.ShadowVolume, scene.ShadowVolume, cam, light, mgl32.Ident4())

	gl.Enable(gl.CULL_FACE)
	gl.ColorMask(true, true, true, true)
}

// lightPass accumulates one light's contribution additively. stencilGate
// restricts the direct contribution to pixels outside any shadow volume.
func (r *Renderer) lightPass(cam *camera.Camera, light *lights.Light, pass scene.Pass, stencilGate bool) {
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE)

	if stencilGate {
		// Pass only outside the shadow volume, never update the buffer
		gl.StencilFunc(gl.EQUAL, 0x00, 0xff)
		gl.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
	}

	background, objects := r.programs.Default, r.programs.Instancing
	ls := mgl32.Ident4()
	if light.IsSpot() {
		background, objects = r.programs.SpotDefault, r.programs.InstancingSpot
		ls = lightSpace(cam.Projection(), light.Position, light.Cone.Direction)
		r.depthMap.BindTexture(shader.UnitShadowMap)
	}

	r.scene.DrawBackground(background, pass, cam, light, ls)
	r.scene.DrawObjects(objects, pass, cam, light, ls)

	gl.Disable(gl.BLEND)
}

// renderShadowMap renders instanced object depth from the light's point of
// view, then restores the shared transform block to the main camera.
func (r *Renderer) renderShadowMap(cam *camera.Camera, light *lights.Light) {
	if !light.IsSpot() {
		return
	}

	r.depthMap.Bind()

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(true)

	// Front-face culling reduces shadow acne on closed geometry
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)

	view := lightView(light.Position, light.Cone.Direction)
	r.scene.UpdateTransformMatrices(view, cam.Projection())
	r.scene.DrawObjects(r.programs.InstancingDepthPass, scene.DepthPass, cam, nil, mgl32.Ident4())

	gl.CullFace(gl.BACK)
	r.depthMap.Unbind()

	r.scene.UpdateTransformBlock(cam)
}

// present moves the HDR result to the default framebuffer, either through the
// Reinhard tonemap resolve or a plain blit.
func (r *Renderer) present(set Settings) {
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if !set.Tonemapping {
		r.hdr.BlitToScreen(r.width, r.height)
		return
	}

	r.hdr.Unbind()
	gl.Viewport(0, 0, r.width, r.height)

	// Solid fill always
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.MULTISAMPLE)
	gl.Disable(gl.DEPTH_TEST)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.programs.Tonemap)
	gl.Uniform1f(shader.GetUniform(r.programs.Tonemap, "msaaLevel"), float32(r.hdr.Samples()))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, r.hdr.ColorTexture())
	// The texel fetch must not go through a sampler object
	gl.BindSampler(0, 0)

	gl.BindVertexArray(r.scene.VAO())
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Destroy releases the render targets.
func (r *Renderer) Destroy() {
	if r.hdr != nil {
		r.hdr.Destroy()
	}
	if r.depthMap != nil {
		r.depthMap.Destroy()
	}
}
