// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/pkg/math"
)

// RTSCamera is a perspective camera orbiting a point on the ground, the usual
// strategy-game view. Pitch is measured up from the ground plane; a pitch of
// Pi/2 looks straight down.
type RTSCamera struct {
	// Point on the ground the camera orbits
	Center math.Vec3

	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	FovY float32 // Vertical field of view, radians
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	viewport math.Vec2
}

// NewRTSCamera creates a camera with default settings for a viewport of the given size.
func NewRTSCamera(width, height int) *RTSCamera {
	return &RTSCamera{
		Distance:        30.0,
		Pitch:           1.0,
		Yaw:             0.0,
		FovY:            float32(gomath.Pi / 3),
		Near:            0.1,
		Far:             500.0,
		MinDistance:     5.0,
		MaxDistance:     200.0,
		MinPitch:        0.2,
		MaxPitch:        float32(gomath.Pi / 2),
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		viewport:        math.Vec2{X: float32(width), Y: float32(height)},
	}
}

// SetViewport updates the viewport size in pixels.
func (c *RTSCamera) SetViewport(width, height int) {
	c.viewport = math.Vec2{X: float32(width), Y: float32(height)}
}

// Viewport returns the viewport size in pixels.
func (c *RTSCamera) Viewport() math.Vec2 {
	return c.viewport
}

// Position returns the camera position in world space.
func (c *RTSCamera) Position() math.Vec3 {
	cp, sp := cosSin(c.Pitch)
	cy, sy := cosSin(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	})
}

// Up returns the camera's up vector. It stays perpendicular to the view
// direction, so a straight-down view is well defined.
func (c *RTSCamera) Up() math.Vec3 {
	cp, sp := cosSin(c.Pitch)
	cy, sy := cosSin(c.Yaw)
	return math.Vec3{X: -sp * sy, Y: cp, Z: -sp * cy}
}

// ViewMatrix returns the view matrix for this camera.
func (c *RTSCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, c.Up())
}

// ProjectionMatrix returns the perspective projection for the current viewport.
func (c *RTSCamera) ProjectionMatrix() math.Mat4 {
	aspect := float32(1)
	if c.viewport.Y > 0 {
		aspect = c.viewport.X / c.viewport.Y
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *RTSCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// ScreenPointToRay returns the world-space ray through a screen pixel.
func (c *RTSCamera) ScreenPointToRay(p math.Vec2) picking.Ray {
	return picking.ScreenToRay(p, c.viewport, c.ViewProjection().Inverse())
}

// WorldToScreen projects a world point to screen pixels.
// ok is false when the point is behind the camera.
func (c *RTSCamera) WorldToScreen(p math.Vec3) (screen math.Vec2, ok bool) {
	clip := c.ViewProjection().MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] <= 0 {
		return math.Vec2{}, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return math.Vec2{
		X: (ndcX + 1) / 2 * c.viewport.X,
		Y: (1 - ndcY) / 2 * c.viewport.Y,
	}, true
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *RTSCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *RTSCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point on the ground relative to the current yaw.
func (c *RTSCamera) HandleMovement(forward, right float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	cy, sy := cosSin(c.Yaw)
	c.Center.X += (-sy*forward + cy*right) * speed
	c.Center.Z += (-cy*forward - sy*right) * speed
}

func cosSin(a float32) (float32, float32) {
	return float32(gomath.Cos(float64(a))), float32(gomath.Sin(float64(a)))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
