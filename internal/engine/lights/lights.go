// Package lights owns light state and the parametric motion of light sources.
package lights

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Scaling factor for the light movement curve.
var curveScale = mgl32.Vec3{13.0, 2.0, 13.0}

// Offset for the light movement curve.
var curveOffset = mgl32.Vec3{0.0, 3.0, 0.0}

// The first light is anchored near the camera's default view and follows an
// unscaled curve around a distinct base offset.
var (
	heroAnchor = mgl32.Vec3{-3.0, 3.0, 0.0}
	heroBase   = mgl32.Vec3{-3.0, 2.0, 0.0}
)

// Cone holds the spotlight-only parameters.
type Cone struct {
	Direction mgl32.Vec3
	// Inner and outer cone half-angles in degrees. Intensity is constant
	// inside the inner angle and falls off to zero at the outer one.
	InnerDeg float32
	OuterDeg float32
	// Range is the distance after which the light contributes nothing.
	Range float32
}

// CosInner returns the cosine of the inner half-angle, as uploaded to shaders.
func (c *Cone) CosInner() float32 {
	return float32(gomath.Cos(float64(mgl32.DegToRad(c.InnerDeg))))
}

// CosOuter returns the cosine of the outer half-angle.
func (c *Cone) CosOuter() float32 {
	return float32(gomath.Cos(float64(mgl32.DegToRad(c.OuterDeg))))
}

// Light is a single light source. Cone is nil for point lights; point and
// spot lights share one update and draw path branching on IsSpot.
type Light struct {
	// Position is derived from Movement every animation tick.
	Position mgl32.Vec3
	// Color holds RGB in the first three components and the ambient
	// intensity in the fourth.
	Color mgl32.Vec4
	// Movement parameterizes the lissajous curve the light follows.
	Movement mgl32.Vec4
	Cone     *Cone
}

// IsSpot reports whether the light carries spotlight cone parameters.
func (l *Light) IsSpot() bool { return l.Cone != nil }

// Lissajous evaluates the light motion curve for parameters m at time t.
// Every axis is bounded by [-1, 1] for all finite t.
func Lissajous(m mgl32.Vec4, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Sin(float64(m.X() * t))),
		float32(gomath.Cos(float64(m.Y() * t))),
		float32(gomath.Sin(float64(m.Z()*t)) * gomath.Cos(float64(m.W()*t))),
	}
}

// Store owns all lights in the scene.
type Store struct {
	lights []Light
}

// NewStore creates count lights. The first light is the fixed hero light at
// the anchor position; the rest draw movement parameters and colors from
// uniform distributions. With spotlight set, the hero light becomes the single
// spot light of the reference configuration. Positions are reproducible for a
// fixed seed.
func NewStore(count int, seed int64, spotlight bool) *Store {
	if count < 0 {
		count = 0
	}

	s := &Store{lights: make([]Light, 0, count)}
	if count == 0 {
		return s
	}

	rng := rand.New(rand.NewSource(seed))

	// Ambient intensity shared between the lights
	ambient := 1e-3 / float32(count)

	hero := Light{
		Position: heroAnchor,
		Color:    mgl32.Vec4{10.0, 10.0, 10.0, ambient},
		Movement: mgl32.Vec4{0.0, 1.0, 0.0, 0.0},
	}
	if spotlight {
		hero.Cone = &Cone{
			Direction: aimAtOrigin(hero.Position),
			InnerDeg:  15.0,
			OuterDeg:  25.0,
			Range:     50.0,
		}
	}
	s.lights = append(s.lights, hero)

	for i := 1; i < count; i++ {
		m := mgl32.Vec4{
			uniform(rng, -2.0, 2.0),
			uniform(rng, -2.0, 2.0),
			uniform(rng, -2.0, 2.0),
			uniform(rng, -2.0, 2.0),
		}
		c := mgl32.Vec4{
			uniform(rng, 0.0, 5.0),
			uniform(rng, 0.0, 5.0),
			uniform(rng, 0.0, 5.0),
			ambient,
		}

		pos := curveOffset.Add(mulElem(Lissajous(m, 0.0), curveScale))
		s.lights = append(s.lights, Light{Position: pos, Color: c, Movement: m})
	}

	return s
}

// Advance recomputes every light position for animation time t. Positions are
// a pure function of the initial draw and t. Spotlight directions keep
// tracking the scene origin as the light moves.
func (s *Store) Advance(t float32) {
	if len(s.lights) == 0 {
		return
	}

	// The hero light is a special case: distinct base offset, no scaling
	hero := &s.lights[0]
	hero.Position = heroBase.Add(Lissajous(hero.Movement, t))
	if hero.Cone != nil {
		hero.Cone.Direction = aimAtOrigin(hero.Position)
	}

	for i := 1; i < len(s.lights); i++ {
		l := &s.lights[i]
		l.Position = curveOffset.Add(mulElem(Lissajous(l.Movement, t), curveScale))
		if l.Cone != nil {
			l.Cone.Direction = aimAtOrigin(l.Position)
		}
	}
}

// Count returns the number of lights.
func (s *Store) Count() int { return len(s.lights) }

// Lights returns the light slice for iteration during the per-light passes.
func (s *Store) Lights() []Light { return s.lights }

// At returns a pointer to light i.
func (s *Store) At(i int) *Light { return &s.lights[i] }

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func aimAtOrigin(pos mgl32.Vec3) mgl32.Vec3 {
	if pos.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return pos.Mul(-1).Normalize()
}
