// Package scene owns the scene content and the draw commands the frame
// orchestrator sequences: background, instanced objects, light markers and
// the shared uniform buffers.
package scene

// Pass flag bits as consumed by the uniform update logic.
const (
	FlagDepthPass    uint32 = 0x0001
	FlagShadowVolume uint32 = 0x0002
	FlagDirectLight  uint32 = 0x0004
	FlagAmbientLight uint32 = 0x0008
	FlagLightPass           = FlagDirectLight | FlagAmbientLight
)

// Kind distinguishes the three pass families.
type Kind int

const (
	KindDepth Kind = iota
	KindShadowVolume
	KindLight
)

// Pass describes which stage of the frame a draw call belongs to. Light
// passes additionally carry whether they contribute direct and/or ambient
// light.
type Pass struct {
	Kind    Kind
	Direct  bool
	Ambient bool
}

// The passes the orchestrator issues.
var (
	DepthPass    = Pass{Kind: KindDepth}
	ShadowVolume = Pass{Kind: KindShadowVolume}
	DirectLight  = Pass{Kind: KindLight, Direct: true}
	AmbientLight = Pass{Kind: KindLight, Ambient: true}
)

// Flags projects the pass onto the flag bits.
func (p Pass) Flags() uint32 {
	var f uint32
	switch p.Kind {
	case KindDepth:
		f |= FlagDepthPass
	case KindShadowVolume:
		f |= FlagShadowVolume
	}
	if p.Direct {
		f |= FlagDirectLight
	}
	if p.Ambient {
		f |= FlagAmbientLight
	}
	return f
}

// IsLightPass reports whether the pass shades with light and material data.
func (p Pass) IsLightPass() bool {
	return p.Flags()&FlagLightPass != 0
}

// NeedsLight reports whether the pass consumes the light position uniform.
func (p Pass) NeedsLight() bool {
	return p.Flags()&(FlagShadowVolume|FlagLightPass) != 0
}
