package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// lightView builds the world-to-view matrix of a camera sitting at the light
// looking along its direction. The up vector is fixed; a direction close to
// vertical falls back to a forward up so the basis stays well defined.
func lightView(position, direction mgl32.Vec3) mgl32.Mat4 {
	dir := direction.Normalize()

	up := mgl32.Vec3{0, 1, 0}
	if d := dir.Dot(up); d > 0.999 || d < -0.999 {
		up = mgl32.Vec3{0, 0, 1}
	}

	return mgl32.LookAtV(position, position.Add(dir), up)
}

// lightSpace fuses the light view with the main camera's projection, the
// matrix the shaders use to project world positions into the shadow map.
func lightSpace(projection mgl32.Mat4, position, direction mgl32.Vec3) mgl32.Mat4 {
	return projection.Mul4(lightView(position, direction))
}
