package scene

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumforge/shadowcast/internal/config"
	"github.com/lumforge/shadowcast/internal/engine/camera"
	"github.com/lumforge/shadowcast/internal/engine/geometry"
	"github.com/lumforge/shadowcast/internal/engine/lights"
	"github.com/lumforge/shadowcast/internal/engine/shader"
	"github.com/lumforge/shadowcast/internal/engine/texture"
)

const backgroundScale = 30.0

// Scene holds all drawable content: cube placements, lights, meshes,
// materials and the two shared uniform buffers.
type Scene struct {
	cubePositions []mgl32.Vec3
	lights        *lights.Store

	quad          *geometry.Mesh
	cube          *geometry.Mesh
	cubeAdjacency *geometry.Mesh

	// General use VAO for attribute-less draws (light markers, tonemap)
	vao uint32

	instances *InstanceBuffer
	transform *TransformBlock

	programs  *shader.Programs
	materials *texture.Materials
	samplers  *texture.Samplers
}

// generateCubePositions places the first cube half a meter above the origin
// and scatters the rest over the floor. Deterministic for a fixed seed.
func generateCubePositions(count int, rng *rand.Rand) []mgl32.Vec3 {
	if count < 1 {
		count = 1
	}

	positions := make([]mgl32.Vec3, 0, count)
	positions = append(positions, mgl32.Vec3{0.0, 0.5, 0.0})

	for i := 1; i < count; i++ {
		x := uniform(rng, -5.0, 5.0)
		y := uniform(rng, 1.0, 5.0)
		z := uniform(rng, -5.0, 5.0)
		positions = append(positions, mgl32.Vec3{x, y, z})
	}

	return positions
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// New builds the scene from the configuration. The instancing and transform
// buffers are sized and validated against the compiled programs.
func New(cfg config.SceneConfig, programs *shader.Programs, materials *texture.Materials, samplers *texture.Samplers) (*Scene, error) {
	s := &Scene{
		programs:  programs,
		materials: materials,
		samplers:  samplers,
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s.cubePositions = generateCubePositions(cfg.NumCubes, rng)
	s.lights = lights.NewStore(cfg.NumLights, cfg.Seed+1, cfg.Spotlight)

	s.quad = geometry.CreateQuad()
	s.cube = geometry.CreateCube()
	s.cubeAdjacency = geometry.CreateCubeWithAdjacency()

	gl.GenVertexArrays(1, &s.vao)

	var err error
	if s.instances, err = NewInstanceBuffer(programs.Instancing); err != nil {
		s.Destroy()
		return nil, err
	}
	if s.transform, err = NewTransformBlock(programs.Default); err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

// Lights returns the light store.
func (s *Scene) Lights() *lights.Store { return s.lights }

// CubeCount returns the number of cube instances.
func (s *Scene) CubeCount() int { return len(s.cubePositions) }

// VAO returns the general use vertex array for attribute-less draws.
func (s *Scene) VAO() uint32 { return s.vao }

// Advance moves the lights to animation time t.
func (s *Scene) Advance(t float32) {
	s.lights.Advance(t)
}

// UpdateTransformBlock uploads the camera's view and projection matrices into
// the shared uniform region.
func (s *Scene) UpdateTransformBlock(cam *camera.Camera) {
	s.transform.Update(cam.WorldToView(), cam.Projection())
}

// UpdateTransformMatrices uploads explicit view and projection matrices,
// used when rendering from a synthesized light camera.
func (s *Scene) UpdateTransformMatrices(worldToView, projection mgl32.Mat4) {
	s.transform.Update(worldToView, projection)
}

// UpdateInstanceData rebuilds and uploads the per-cube model matrices.
func (s *Scene) UpdateInstanceData() error {
	return s.instances.Update(s.cubePositions)
}

// mat4x3 extracts the 4 columns x 3 rows part of a model matrix in the
// column-major order glUniformMatrix4x3 expects.
func mat4x3(m mgl32.Mat4) [12]float32 {
	return [12]float32{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
		m[12], m[13], m[14],
	}
}

// updateProgramData uploads the per-pass uniforms: light position with the
// direct intensity flag in w, view position, light color with the ambient
// intensity conditionally zeroed, and the spot cone parameters when the
// program samples a shadow map.
func (s *Scene) updateProgramData(program uint32, pass Pass, cam *camera.Camera, light *lights.Light, lightSpace mgl32.Mat4) {
	if pass.NeedsLight() && light != nil {
		direct := float32(0.0)
		if pass.Direct {
			direct = 1.0
		}
		loc := shader.GetUniform(program, "lightPosWS")
		gl.Uniform4f(loc, light.Position.X(), light.Position.Y(), light.Position.Z(), direct)
	}

	if pass.IsLightPass() && light != nil {
		viewPos := cam.Position()
		gl.Uniform4f(shader.GetUniform(program, "viewPosWS"), viewPos.X(), viewPos.Y(), viewPos.Z(), 1.0)

		ambient := float32(0.0)
		if pass.Ambient {
			ambient = light.Color.W()
		}
		gl.Uniform4f(shader.GetUniform(program, "lightColor"),
			light.Color.X(), light.Color.Y(), light.Color.Z(), ambient)

		if light.IsSpot() {
			if loc := shader.GetUniform(program, "lightDirection"); loc >= 0 {
				d := light.Cone.Direction
				gl.Uniform3f(loc, d.X(), d.Y(), d.Z())
				gl.Uniform1f(shader.GetUniform(program, "cosInnerAngle"), light.Cone.CosInner())
				gl.Uniform1f(shader.GetUniform(program, "cosOuterAngle"), light.Cone.CosOuter())
				gl.Uniform1f(shader.GetUniform(program, "maxLightDistance"), light.Cone.Range)
				lightSpaceData := lightSpace
				gl.UniformMatrix4fv(shader.GetUniform(program, "lightSpaceMatrix"), 1, false, &lightSpaceData[0])
			}
		}
	}
}

// bindTextures attaches a material set to units 0 through 3 with the
// anisotropic sampler.
func (s *Scene) bindTextures(diffuse, normal, specular, occlusion uint32) {
	aniso := s.samplers.Get(texture.Anisotropic)

	gl.ActiveTexture(gl.TEXTURE0 + shader.UnitDiffuse)
	gl.BindTexture(gl.TEXTURE_2D, diffuse)
	gl.BindSampler(shader.UnitDiffuse, aniso)

	gl.ActiveTexture(gl.TEXTURE0 + shader.UnitNormal)
	gl.BindTexture(gl.TEXTURE_2D, normal)
	gl.BindSampler(shader.UnitNormal, aniso)

	gl.ActiveTexture(gl.TEXTURE0 + shader.UnitSpecular)
	gl.BindTexture(gl.TEXTURE_2D, specular)
	gl.BindSampler(shader.UnitSpecular, aniso)

	gl.ActiveTexture(gl.TEXTURE0 + shader.UnitOcclusion)
	gl.BindTexture(gl.TEXTURE_2D, occlusion)
	gl.BindSampler(shader.UnitOcclusion, aniso)
}

// DrawBackground renders the floor and the two walls.
func (s *Scene) DrawBackground(program uint32, pass Pass, cam *camera.Camera, light *lights.Light, lightSpace mgl32.Mat4) {
	gl.UseProgram(program)
	s.updateProgramData(program, pass, cam, light, lightSpace)

	if pass.IsLightPass() {
		s.bindTextures(s.materials.CheckerBoard, s.materials.Blue, s.materials.Grey, s.materials.White)
	}

	s.quad.Bind()
	modelLoc := shader.GetUniform(program, "modelToWorld")

	draw := func(m mgl32.Mat4) {
		data := mat4x3(m)
		gl.UniformMatrix4x3fv(modelLoc, 1, false, &data[0])
		gl.DrawElementsWithOffset(gl.TRIANGLES, s.quad.IndexCount(), gl.UNSIGNED_INT, 0)
	}

	halfPi := float32(gomath.Pi / 2)

	// Floor
	draw(mgl32.Scale3D(backgroundScale, 1.0, backgroundScale))

	// Z axis wall
	draw(mgl32.Translate3D(0.0, 0.0, backgroundScale/2).
		Mul4(mgl32.HomogRotate3DX(-halfPi)).
		Mul4(mgl32.Scale3D(backgroundScale, 1.0, backgroundScale)))

	// X axis wall
	draw(mgl32.Translate3D(backgroundScale/2, 0.0, 0.0).
		Mul4(mgl32.HomogRotate3DZ(halfPi)).
		Mul4(mgl32.Scale3D(backgroundScale, 1.0, backgroundScale)))
}

// DrawObjects renders the instanced cubes, using the adjacency topology for
// shadow volume extrusion, and the light marker during the ambient sub-pass.
func (s *Scene) DrawObjects(program uint32, pass Pass, cam *camera.Camera, light *lights.Light, lightSpace mgl32.Mat4) {
	gl.UseProgram(program)
	s.updateProgramData(program, pass, cam, light, lightSpace)

	s.instances.Bind()

	if pass.IsLightPass() {
		s.bindTextures(s.materials.Diffuse, s.materials.Normal, s.materials.Specular, s.materials.Occlusion)
	}

	count := int32(len(s.cubePositions))
	if pass.Kind == KindShadowVolume {
		s.cubeAdjacency.Bind()
		gl.DrawElementsInstanced(gl.TRIANGLES_ADJACENCY, s.cubeAdjacency.IndexCount(), gl.UNSIGNED_INT, nil, count)
	} else {
		s.cube.Bind()
		gl.DrawElementsInstanced(gl.TRIANGLES, s.cube.IndexCount(), gl.UNSIGNED_INT, nil, count)
	}

	s.instances.Unbind()

	if pass.Ambient && light != nil {
		s.drawLightMarker(light)
	}
}

// drawLightMarker renders a small point at the light position.
func (s *Scene) drawLightMarker(light *lights.Light) {
	program := s.programs.PointMarker
	gl.UseProgram(program)

	p := light.Position
	gl.Uniform3f(shader.GetUniform(program, "position"), p.X(), p.Y(), p.Z())

	c := light.Color.Mul(0.05)
	gl.Uniform3f(shader.GetUniform(program, "color"), c.X(), c.Y(), c.Z())

	// Markers draw opaque regardless of the additive light blending
	gl.Disable(gl.BLEND)

	gl.PointSize(10.0)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.POINTS, 0, 1)
}

// Destroy releases all scene-owned GPU resources.
func (s *Scene) Destroy() {
	if s.transform != nil {
		s.transform.Destroy()
	}
	if s.instances != nil {
		s.instances.Destroy()
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	for _, m := range []*geometry.Mesh{s.quad, s.cube, s.cubeAdjacency} {
		if m != nil {
			m.Destroy()
		}
	}
}
