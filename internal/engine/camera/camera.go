// Package camera provides the free-fly camera used for scene and light views.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement direction bitfield for continuous keyboard movement.
type Direction int

const (
	None     Direction = 0x0000
	Forward  Direction = 0x0001
	Backward Direction = 0x0002
	Left     Direction = 0x0004
	Right    Direction = 0x0008
	Up       Direction = 0x0010
	Down     Direction = 0x0020
)

// Camera holds world-to-view and projection transforms for a free-fly camera.
// A throwaway copy repositioned at a light serves as the shadow-map view.
type Camera struct {
	worldToView mgl32.Mat4
	viewToWorld mgl32.Mat4
	projection  mgl32.Mat4

	position mgl32.Vec3
	yaw      float32 // radians, around world Y
	pitch    float32 // radians, clamped to avoid the poles

	movementSpeed float32
	sensitivity   float32
	nearClip      float32
	farClip       float32
}

// New returns a camera with identity transforms and default speeds.
func New() *Camera {
	c := &Camera{
		worldToView:   mgl32.Ident4(),
		viewToWorld:   mgl32.Ident4(),
		projection:    mgl32.Ident4(),
		movementSpeed: 5.0,
		sensitivity:   0.002,
	}
	return c
}

// SetMovementSpeed sets the movement speed in world units per second.
func (c *Camera) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

// SetSensitivity sets the mouse-look sensitivity in radians per pixel.
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// SetTransformation orients the camera at eye looking towards lookAt.
func (c *Camera) SetTransformation(eye, lookAt, up mgl32.Vec3) {
	c.position = eye

	dir := lookAt.Sub(eye).Normalize()
	c.yaw = float32(gomath.Atan2(float64(dir.Z()), float64(dir.X())))
	c.pitch = float32(gomath.Asin(float64(dir.Y())))

	c.worldToView = mgl32.LookAtV(eye, lookAt, up)
	c.viewToWorld = c.worldToView.Inv()
}

// SetProjection sets a perspective projection. fov is in degrees.
func (c *Camera) SetProjection(fov, aspect, nearClip, farClip float32) {
	c.projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, nearClip, farClip)
	c.nearClip = nearClip
	c.farClip = farClip
}

// WorldToView returns the view matrix.
func (c *Camera) WorldToView() mgl32.Mat4 { return c.worldToView }

// ViewToWorld returns the inverse view matrix.
func (c *Camera) ViewToWorld() mgl32.Mat4 { return c.viewToWorld }

// Projection returns the projection matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// Position returns the camera position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// NearClip returns the near clip plane distance.
func (c *Camera) NearClip() float32 { return c.nearClip }

// FarClip returns the far clip plane distance.
func (c *Camera) FarClip() float32 { return c.farClip }

// forward returns the unit view direction derived from yaw and pitch.
func (c *Camera) forward() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.pitch)))
	return mgl32.Vec3{
		cp * float32(gomath.Cos(float64(c.yaw))),
		float32(gomath.Sin(float64(c.pitch))),
		cp * float32(gomath.Sin(float64(c.yaw))),
	}
}

// Move advances the camera along the requested directions and orients it by
// the mouse delta, then rebuilds both view transforms.
func (c *Camera) Move(direction Direction, mouseDX, mouseDY float32, dt float32) {
	c.yaw += mouseDX * c.sensitivity
	c.pitch -= mouseDY * c.sensitivity

	// Clamp pitch short of the poles to avoid lookAt singularities
	limit := mgl32.DegToRad(89.0)
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}

	worldUp := mgl32.Vec3{0, 1, 0}
	dir := c.forward()
	aside := worldUp.Cross(dir).Normalize()
	up := dir.Cross(aside).Normalize()

	step := c.movementSpeed * dt
	if direction&Forward != 0 {
		c.position = c.position.Add(dir.Mul(step))
	}
	if direction&Backward != 0 {
		c.position = c.position.Sub(dir.Mul(step))
	}
	if direction&Left != 0 {
		c.position = c.position.Add(aside.Mul(step))
	}
	if direction&Right != 0 {
		c.position = c.position.Sub(aside.Mul(step))
	}
	if direction&Up != 0 {
		c.position = c.position.Add(up.Mul(step))
	}
	if direction&Down != 0 {
		c.position = c.position.Sub(up.Mul(step))
	}

	c.worldToView = mgl32.LookAtV(c.position, c.position.Add(dir), worldUp)
	c.viewToWorld = c.worldToView.Inv()
}
