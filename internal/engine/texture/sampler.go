package texture

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sampler selects one of the pre-created sampler objects.
type Sampler int

const (
	Nearest Sampler = iota
	Bilinear
	Trilinear
	Anisotropic
	AnisotropicClamp
	AnisotropicMirrored
	numSamplers
)

// Samplers owns the sampler objects shared by all textures.
type Samplers struct {
	samplers [numSamplers]uint32
}

// NewSamplers creates all sampler objects. Anisotropic samplers use the
// maximum level the driver reports.
func NewSamplers() *Samplers {
	s := &Samplers{}
	gl.GenSamplers(int32(numSamplers), &s.samplers[0])

	var maxAnisotropy float32 = 1.0
	gl.GetFloatv(maxTextureMaxAnisotropy, &maxAnisotropy)

	set := func(sampler Sampler, name uint32, value int32) {
		gl.SamplerParameteri(s.samplers[sampler], name, value)
	}

	set(Nearest, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	set(Nearest, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	set(Bilinear, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	set(Bilinear, gl.TEXTURE_MIN_FILTER, gl.LINEAR)

	set(Trilinear, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	set(Trilinear, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)

	for _, a := range []Sampler{Anisotropic, AnisotropicClamp, AnisotropicMirrored} {
		set(a, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		set(a, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.SamplerParameterf(s.samplers[a], textureMaxAnisotropy, maxAnisotropy)
	}

	set(AnisotropicClamp, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	set(AnisotropicClamp, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	set(AnisotropicMirrored, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	set(AnisotropicMirrored, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)

	return s
}

// Get returns the sampler object for the given selection.
func (s *Samplers) Get(sampler Sampler) uint32 {
	return s.samplers[sampler]
}

// Destroy releases all sampler objects.
func (s *Samplers) Destroy() {
	gl.DeleteSamplers(int32(numSamplers), &s.samplers[0])
}
