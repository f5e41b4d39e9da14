// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/boxselect/pkg/math"
)

// Unbounded is the max distance to pass for a ray cast with no range limit.
const Unbounded = float32(gomath.MaxFloat32)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screen is in pixels with the origin at the top-left, viewport is the viewport size in pixels.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screen, viewport math.Vec2, invViewProj math.Mat4) Ray {
	// Normalized device coords (-1 to 1), Y flipped
	ndcX := 2.0*screen.X/viewport.X - 1.0
	ndcY := 1.0 - 2.0*screen.Y/viewport.Y

	nearWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	farWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the distance along the ray and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (t float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return 0, false // Ray parallel to plane
	}

	t = (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	bmin := box.Min.Array()
	bmax := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return 0, false
			}
			continue
		}
		t1 := (bmin[axis] - origin[axis]) / dir[axis]
		t2 := (bmax[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectSphere tests ray intersection with a sphere.
// If the ray starts inside the sphere, returns the exit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}

	sq := float32(gomath.Sqrt(float64(discriminant)))
	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NewAABB creates an AABB from two opposite corners, in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// AABBFromCenter creates an AABB from a center point and half-extents.
func AABBFromCenter(center, halfExtents math.Vec3) AABB {
	return NewAABB(center.Sub(halfExtents), center.Add(halfExtents))
}
