package lights

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewStoreDeterministic(t *testing.T) {
	a := NewStore(8, 42, false)
	b := NewStore(8, 42, false)

	if a.Count() != b.Count() {
		t.Fatalf("counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.Lights() {
		la, lb := a.At(i), b.At(i)
		if la.Position != lb.Position || la.Color != lb.Color || la.Movement != lb.Movement {
			t.Errorf("light %d differs between identically seeded stores", i)
		}
	}
}

func TestNewStoreHeroLight(t *testing.T) {
	s := NewStore(3, 1, false)

	hero := s.At(0)
	if hero.Position != (mgl32.Vec3{-3, 3, 0}) {
		t.Errorf("expected hero anchor (-3,3,0), got %v", hero.Position)
	}
	if hero.IsSpot() {
		t.Error("hero light must be a point light without the spotlight flag")
	}
}

func TestNewStoreSpotlight(t *testing.T) {
	s := NewStore(2, 1, true)

	spots := 0
	for i := range s.Lights() {
		if s.At(i).IsSpot() {
			spots++
		}
	}
	if spots != 1 {
		t.Fatalf("expected exactly one spotlight, got %d", spots)
	}
	if !s.At(0).IsSpot() {
		t.Fatal("the spotlight must be the first light")
	}

	cone := s.At(0).Cone
	if cone.InnerDeg >= cone.OuterDeg {
		t.Errorf("inner angle %f must be below outer angle %f", cone.InnerDeg, cone.OuterDeg)
	}
	if cone.CosInner() <= cone.CosOuter() {
		t.Errorf("cos(inner)=%f must exceed cos(outer)=%f", cone.CosInner(), cone.CosOuter())
	}
	if d := cone.Direction.Len(); d < 0.999 || d > 1.001 {
		t.Errorf("spot direction is not unit length: %v", cone.Direction)
	}
}

func TestNewStoreParameterRanges(t *testing.T) {
	s := NewStore(32, 7, false)

	for i := 1; i < s.Count(); i++ {
		l := s.At(i)
		for axis := 0; axis < 4; axis++ {
			if l.Movement[axis] < -2 || l.Movement[axis] > 2 {
				t.Errorf("light %d movement[%d]=%f out of [-2,2]", i, axis, l.Movement[axis])
			}
		}
		for axis := 0; axis < 3; axis++ {
			if l.Color[axis] < 0 || l.Color[axis] > 5 {
				t.Errorf("light %d color[%d]=%f out of [0,5]", i, axis, l.Color[axis])
			}
		}
	}
}

func TestAmbientIntensityScalesWithCount(t *testing.T) {
	for _, count := range []int{1, 4, 10} {
		s := NewStore(count, 1, false)
		want := 1e-3 / float32(count)
		for i := 0; i < s.Count(); i++ {
			if got := s.At(i).Color.W(); got != want {
				t.Errorf("count=%d light %d ambient=%g, want %g", count, i, got, want)
			}
		}
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	s := NewStore(16, 3, false)

	for step := 0; step < 200; step++ {
		t0 := float32(step) * 0.37
		s.Advance(t0)

		hero := s.At(0)
		for axis := 0; axis < 3; axis++ {
			d := hero.Position[axis] - heroBase[axis]
			if d < -1.001 || d > 1.001 {
				t.Fatalf("t=%f hero axis %d strayed beyond unit curve: %v", t0, axis, hero.Position)
			}
		}

		for i := 1; i < s.Count(); i++ {
			p := s.At(i).Position
			for axis := 0; axis < 3; axis++ {
				d := p[axis] - curveOffset[axis]
				lim := curveScale[axis] + 0.001
				if d < -lim || d > lim {
					t.Fatalf("t=%f light %d axis %d out of bounds: %v", t0, i, axis, p)
				}
			}
		}
	}
}

func TestAdvanceIsPureInTime(t *testing.T) {
	a := NewStore(6, 9, false)
	b := NewStore(6, 9, false)

	// Different histories, same final time, same positions
	a.Advance(1.0)
	a.Advance(2.5)
	b.Advance(2.5)

	for i := 0; i < a.Count(); i++ {
		if a.At(i).Position != b.At(i).Position {
			t.Errorf("light %d position depends on update history", i)
		}
	}
}

func TestLissajousBounded(t *testing.T) {
	m := mgl32.Vec4{1.7, -0.3, 1.1, 0.9}
	for step := 0; step < 1000; step++ {
		p := Lissajous(m, float32(step)*0.111)
		for axis := 0; axis < 3; axis++ {
			if p[axis] < -1 || p[axis] > 1 {
				t.Fatalf("curve escaped unit cube at step %d: %v", step, p)
			}
		}
	}
}

func TestZeroLights(t *testing.T) {
	s := NewStore(0, 1, false)
	if s.Count() != 0 {
		t.Fatalf("expected empty store, got %d", s.Count())
	}
	s.Advance(1.0) // must not panic
}
