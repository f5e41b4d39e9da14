package physics

import (
	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/pkg/math"
)

// Hit describes the closest intersection of a ray with a body.
type Hit struct {
	Body     *Body
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
}

// Raycast returns the closest body hit by the ray within maxDistance whose
// layer matches mask. Pass picking.Unbounded for no range limit.
func (w *World) Raycast(ray picking.Ray, maxDistance float32, mask Layer) (Hit, bool) {
	ray.Direction = ray.Direction.Normalize()

	closest := Hit{Distance: maxDistance}
	found := false

	for _, b := range w.bodies {
		if !b.Layer.Matches(mask) {
			continue
		}
		t, normal, ok := raycastBody(ray, b)
		if !ok || t > closest.Distance {
			continue
		}
		// Equal distances resolve to the lower ID so results do not depend on map order.
		if found && t == closest.Distance && b.ID > closest.Body.ID {
			continue
		}
		closest = Hit{Body: b, Point: ray.At(t), Normal: normal, Distance: t}
		found = true
	}

	return closest, found
}

func raycastBody(ray picking.Ray, b *Body) (float32, math.Vec3, bool) {
	switch s := b.Shape.(type) {
	case Box:
		return raycastBox(ray, b.Position, b.Rotation, s.HalfExtents)
	case Sphere:
		t, ok := ray.IntersectSphere(b.Position, s.Radius)
		if !ok {
			return 0, math.Vec3{}, false
		}
		return t, ray.At(t).Sub(b.Position).Normalize(), true
	case Plane:
		t, ok := ray.IntersectPlaneY(b.Position.Y)
		if !ok {
			return 0, math.Vec3{}, false
		}
		return t, math.Vec3UnitY, true
	}
	return 0, math.Vec3{}, false
}

// raycastBox intersects in the box's local frame, where it is an AABB.
func raycastBox(ray picking.Ray, pos math.Vec3, rot math.Quat, halfExtents math.Vec3) (float32, math.Vec3, bool) {
	inv := rot.Conjugate()
	local := picking.Ray{
		Origin:    inv.Rotate(ray.Origin.Sub(pos)),
		Direction: inv.Rotate(ray.Direction),
	}

	t, ok := local.IntersectAABB(picking.AABB{Min: halfExtents.Scale(-1), Max: halfExtents})
	if !ok {
		return 0, math.Vec3{}, false
	}

	return t, rot.Rotate(boxFaceNormal(local.At(t), halfExtents)), true
}

// boxFaceNormal picks the face whose plane the local point is closest to.
func boxFaceNormal(p, halfExtents math.Vec3) math.Vec3 {
	coords := p.Array()
	extents := halfExtents.Array()

	best, bestRatio := 0, float32(-1)
	for i := 0; i < 3; i++ {
		if extents[i] == 0 {
			continue
		}
		if r := abs(coords[i]) / extents[i]; r > bestRatio {
			best, bestRatio = i, r
		}
	}

	var n [3]float32
	n[best] = 1
	if coords[best] < 0 {
		n[best] = -1
	}
	return math.Vec3{X: n[0], Y: n[1], Z: n[2]}
}
