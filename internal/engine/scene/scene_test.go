package scene

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func TestInstanceTransformsFirstCube(t *testing.T) {
	var staging [MaxInstances * instanceFloats]float32
	n := instanceTransforms(staging[:], []mgl32.Vec3{{0, 0.5, 0}})
	if n != 1 {
		t.Fatalf("expected 1 instance, got %d", n)
	}

	// Index 0 rotates by zero degrees, so the rows are the identity basis
	// with the translation in the last component of each row.
	want := [instanceFloats]float32{
		1, 0, 0, 0,
		0, 1, 0, 0.5,
		0, 0, 1, 0,
	}
	for i, w := range want {
		if d := staging[i] - w; d < -epsilon || d > epsilon {
			t.Errorf("staging[%d] = %f, want %f", i, staging[i], w)
		}
	}
}

func TestInstanceTransformsClampsToMax(t *testing.T) {
	positions := make([]mgl32.Vec3, MaxInstances+100)
	var staging [MaxInstances * instanceFloats]float32

	n := instanceTransforms(staging[:], positions)
	if n != MaxInstances {
		t.Fatalf("expected clamp to %d instances, got %d", MaxInstances, n)
	}
}

func TestInstanceTransformsPreservesRigidMotion(t *testing.T) {
	pos := mgl32.Vec3{2, 3, -4}
	var staging [2 * instanceFloats]float32
	instanceTransforms(staging[:], []mgl32.Vec3{{0, 0, 0}, pos})

	// The second instance's translation column sits in the row tails.
	base := instanceFloats
	got := mgl32.Vec3{staging[base+3], staging[base+7], staging[base+11]}
	if got.Sub(pos).Len() > epsilon {
		t.Errorf("instance 1 translation = %v, want %v", got, pos)
	}

	// The rotation rows of a rigid transform stay unit length
	for row := 0; row < 3; row++ {
		r := mgl32.Vec3{staging[base+row*4], staging[base+row*4+1], staging[base+row*4+2]}
		if d := r.Len() - 1; d < -1e-3 || d > 1e-3 {
			t.Errorf("instance 1 row %d has length %f", row, r.Len())
		}
	}
}

func TestPackTransformBlockLayout(t *testing.T) {
	// Recognizable matrices: view[col*4+row] = col*10 + row
	var view, proj mgl32.Mat4
	for i := range view {
		view[i] = float32((i/4)*10 + i%4)
		proj[i] = float32(100 + i)
	}

	out := packTransformBlock(view, proj)

	// First 12 floats are the top 3 rows of the view matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			want := float32(col*10 + row)
			if got := out[row*4+col]; got != want {
				t.Errorf("view row %d col %d: got %f, want %f", row, col, got, want)
			}
		}
	}

	// Projection follows unchanged — the regions must not overlap
	for i := 0; i < 16; i++ {
		if out[12+i] != proj[i] {
			t.Errorf("projection[%d]: got %f, want %f", i, out[12+i], proj[i])
		}
	}

	if TransformBlockBytes != 112 {
		t.Errorf("expected 112 byte block, got %d", TransformBlockBytes)
	}
}

func TestMat4x3(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	out := mat4x3(m)

	// Columns 0..2 are the identity basis, column 3 the translation
	want := [12]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 2, 3,
	}
	if out != want {
		t.Errorf("mat4x3 = %v, want %v", out, want)
	}
}

func TestGenerateCubePositions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	positions := generateCubePositions(10, rng)

	if len(positions) != 10 {
		t.Fatalf("expected 10 positions, got %d", len(positions))
	}
	if positions[0] != (mgl32.Vec3{0, 0.5, 0}) {
		t.Errorf("first cube must sit at (0,0.5,0), got %v", positions[0])
	}
	for i := 1; i < len(positions); i++ {
		p := positions[i]
		if p.X() < -5 || p.X() > 5 || p.Z() < -5 || p.Z() > 5 {
			t.Errorf("cube %d out of floor bounds: %v", i, p)
		}
		if p.Y() < 1 || p.Y() > 5 {
			t.Errorf("cube %d out of height bounds: %v", i, p)
		}
	}

	// Deterministic for a fixed seed
	again := generateCubePositions(10, rand.New(rand.NewSource(1)))
	for i := range positions {
		if positions[i] != again[i] {
			t.Errorf("position %d differs between identically seeded runs", i)
		}
	}
}

func TestPassFlags(t *testing.T) {
	tests := []struct {
		name string
		pass Pass
		want uint32
	}{
		{"depth", DepthPass, FlagDepthPass},
		{"shadow volume", ShadowVolume, FlagShadowVolume},
		{"direct", DirectLight, FlagDirectLight},
		{"ambient", AmbientLight, FlagAmbientLight},
	}
	for _, tt := range tests {
		if got := tt.pass.Flags(); got != tt.want {
			t.Errorf("%s: Flags() = %#x, want %#x", tt.name, got, tt.want)
		}
	}

	if DepthPass.IsLightPass() || ShadowVolume.IsLightPass() {
		t.Error("depth and shadow volume passes must not be light passes")
	}
	if !DirectLight.IsLightPass() || !AmbientLight.IsLightPass() {
		t.Error("direct and ambient passes must be light passes")
	}
	if !ShadowVolume.NeedsLight() {
		t.Error("shadow volume pass needs the light position")
	}
	if DepthPass.NeedsLight() {
		t.Error("depth pass must not consume light uniforms")
	}
	if FlagLightPass != 0xc {
		t.Errorf("light pass mask = %#x, want 0xc", FlagLightPass)
	}
}
