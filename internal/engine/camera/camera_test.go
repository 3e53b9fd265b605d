package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func matsClose(a, b mgl32.Mat4) bool {
	for i := 0; i < 16; i++ {
		d := a[i] - b[i]
		if d < -epsilon || d > epsilon {
			return false
		}
	}
	return true
}

func TestSetTransformationInverse(t *testing.T) {
	c := New()
	c.SetTransformation(mgl32.Vec3{-3, 3, -5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	// worldToView * viewToWorld must be identity
	prod := c.WorldToView().Mul4(c.ViewToWorld())
	if !matsClose(prod, mgl32.Ident4()) {
		t.Errorf("view transforms are not inverses:\n%v", prod)
	}
}

func TestSetTransformationMapsEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{-3, 3, -5}
	c := New()
	c.SetTransformation(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	p := c.WorldToView().Mul4x1(eye.Vec4(1))
	for i := 0; i < 3; i++ {
		if p[i] < -epsilon || p[i] > epsilon {
			t.Fatalf("eye does not map to view-space origin: %v", p)
		}
	}
	if c.Position() != eye {
		t.Errorf("expected position %v, got %v", eye, c.Position())
	}
}

func TestSetProjection(t *testing.T) {
	c := New()
	c.SetProjection(45.0, 800.0/600.0, 0.1, 1000.1)

	want := mgl32.Perspective(mgl32.DegToRad(45.0), 800.0/600.0, 0.1, 1000.1)
	if !matsClose(c.Projection(), want) {
		t.Errorf("projection mismatch:\ngot  %v\nwant %v", c.Projection(), want)
	}
	if c.NearClip() != 0.1 {
		t.Errorf("expected near clip 0.1, got %f", c.NearClip())
	}
	if c.FarClip() != 1000.1 {
		t.Errorf("expected far clip 1000.1, got %f", c.FarClip())
	}
}

func TestMoveForwardAdvancesAlongView(t *testing.T) {
	c := New()
	c.SetTransformation(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	c.SetMovementSpeed(2.0)

	c.Move(Forward, 0, 0, 0.5)

	got := c.Position()
	want := mgl32.Vec3{0, 0, 1}
	if got.Sub(want).Len() > epsilon {
		t.Errorf("expected position %v, got %v", want, got)
	}

	// Transforms stay consistent after movement
	prod := c.WorldToView().Mul4(c.ViewToWorld())
	if !matsClose(prod, mgl32.Ident4()) {
		t.Errorf("view transforms diverged after Move:\n%v", prod)
	}
}

func TestMovePitchClamp(t *testing.T) {
	c := New()
	c.SetTransformation(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})

	// A huge mouse delta must not flip the camera over the pole
	c.Move(None, 0, -1e6, 0.016)
	dir := c.forward()
	if dir.Y() < 0.9 {
		t.Errorf("expected pitch clamped near straight up, forward = %v", dir)
	}
	c.Move(None, 0, 2e6, 0.016)
	dir = c.forward()
	if dir.Y() > -0.9 {
		t.Errorf("expected pitch clamped near straight down, forward = %v", dir)
	}
}

func TestOppositeDirectionsCancel(t *testing.T) {
	c := New()
	c.SetTransformation(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 2, 3}, mgl32.Vec3{0, 1, 0})

	start := c.Position()
	c.Move(Forward|Backward|Left|Right|Up|Down, 0, 0, 0.25)
	if c.Position().Sub(start).Len() > epsilon {
		t.Errorf("opposed directions moved the camera: %v -> %v", start, c.Position())
	}
}
