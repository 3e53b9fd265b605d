package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform block binding points shared by all programs.
const (
	TransformBinding = 0
	InstanceBinding  = 1
)

// Texture units for material and shadow sampling.
const (
	UnitDiffuse   = 0
	UnitNormal    = 1
	UnitSpecular  = 2
	UnitOcclusion = 3
	UnitShadowMap = 4
)

// Programs holds every linked program of the render pipeline.
type Programs struct {
	Default             uint32
	SpotDefault         uint32
	DepthPass           uint32
	Instancing          uint32
	InstancingSpot      uint32
	InstancingDepthPass uint32
	ShadowVolume        uint32
	PointMarker         uint32
	Tonemap             uint32
}

// NewPrograms compiles and links all render programs and wires their uniform
// block bindings and sampler units. Any compile error aborts startup.
func NewPrograms() (*Programs, error) {
	p := &Programs{}

	specs := []struct {
		dst      *uint32
		name     string
		vertex   string
		geometry string
		fragment string
	}{
		{&p.Default, "default", vsDefault, "", fsDefault},
		{&p.SpotDefault, "spot default", vsDefault, "", fsSpot},
		{&p.DepthPass, "depth pass", vsDefault, "", fsNull},
		{&p.Instancing, "instancing", vsInstancing, "", fsDefault},
		{&p.InstancingSpot, "instancing spot", vsInstancing, "", fsSpot},
		{&p.InstancingDepthPass, "instancing depth pass", vsInstancing, "", fsNull},
		{&p.ShadowVolume, "shadow volume", vsShadowVolume, gsShadowVolume, fsNull},
		{&p.PointMarker, "point marker", vsPoint, "", fsSingleColor},
		{&p.Tonemap, "tonemap", vsScreenQuad, "", fsTonemap},
	}

	for _, s := range specs {
		prog, err := CompileProgramGS(s.vertex, s.geometry, s.fragment)
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("compile %s program: %w", s.name, err)
		}
		*s.dst = prog
		bindBlocks(prog)
		bindSamplers(prog)
	}

	return p, nil
}

// All returns the program handles for iteration.
func (p *Programs) All() []uint32 {
	return []uint32{
		p.Default, p.SpotDefault, p.DepthPass,
		p.Instancing, p.InstancingSpot, p.InstancingDepthPass,
		p.ShadowVolume, p.PointMarker, p.Tonemap,
	}
}

// Destroy deletes all programs.
func (p *Programs) Destroy() {
	for _, prog := range p.All() {
		if prog != 0 {
			gl.DeleteProgram(prog)
		}
	}
}

// bindBlocks assigns the shared uniform block binding points. GLSL 410 has no
// binding qualifier, so the blocks are located by name after linking.
func bindBlocks(program uint32) {
	if idx := gl.GetUniformBlockIndex(program, gl.Str("TransformBlock\x00")); idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(program, idx, TransformBinding)
	}
	if idx := gl.GetUniformBlockIndex(program, gl.Str("InstanceBuffer\x00")); idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(program, idx, InstanceBinding)
	}
}

// bindSamplers assigns fixed texture units to the sampler uniforms present in
// the program. The tonemap HDR sampler shares unit 0 with Diffuse; the two
// never appear in the same program.
func bindSamplers(program uint32) {
	gl.UseProgram(program)

	units := []struct {
		name string
		unit int32
	}{
		{"Diffuse", UnitDiffuse},
		{"Normal", UnitNormal},
		{"Specular", UnitSpecular},
		{"Occlusion", UnitOcclusion},
		{"ShadowMap", UnitShadowMap},
		{"HDR", 0},
	}
	for _, u := range units {
		if loc := GetUniform(program, u.name); loc >= 0 {
			gl.Uniform1i(loc, u.unit)
		}
	}

	gl.UseProgram(0)
}

// TransformBlockSize returns the shader-reported std140 size of the
// TransformBlock, used to validate the CPU-side layout at startup.
func TransformBlockSize(program uint32) (int32, error) {
	idx := gl.GetUniformBlockIndex(program, gl.Str("TransformBlock\x00"))
	if idx == gl.INVALID_INDEX {
		return 0, fmt.Errorf("program %d has no TransformBlock", program)
	}
	var size int32
	gl.GetActiveUniformBlockiv(program, idx, gl.UNIFORM_BLOCK_DATA_SIZE, &size)
	return size, nil
}
