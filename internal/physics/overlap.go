package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/pkg/math"
)

// parallelEpsilon skips separating-axis candidates from near-parallel edges.
const parallelEpsilon = 1e-6

// obb is an oriented box in the narrowphase representation.
type obb struct {
	center mgl32.Vec3
	half   mgl32.Vec3
	axes   [3]mgl32.Vec3
}

func newOBB(center, halfExtents math.Vec3, rot math.Quat) obb {
	m := toMglQuat(rot).Normalize().Mat4()
	return obb{
		center: toMgl(center),
		half:   toMgl(halfExtents),
		axes: [3]mgl32.Vec3{
			m.Col(0).Vec3(),
			m.Col(1).Vec3(),
			m.Col(2).Vec3(),
		},
	}
}

// OverlapBox returns every body whose collider intersects the oriented box
// and whose layer matches mask, ordered by ID. Touching counts as overlapping.
func (w *World) OverlapBox(center, halfExtents math.Vec3, rot math.Quat, mask Layer) []*Body {
	query := newOBB(center, halfExtents, rot)
	broad := picking.AABBFromCenter(center, projectedExtents(halfExtents, rot))

	var out []*Body
	for _, b := range w.candidates(broad) {
		if !b.Layer.Matches(mask) {
			continue
		}
		if overlapsBody(query, b) {
			out = append(out, b)
		}
	}
	sortByID(out)
	return out
}

func overlapsBody(q obb, b *Body) bool {
	switch s := b.Shape.(type) {
	case Box:
		return q.intersectsOBB(newOBB(b.Position, s.HalfExtents, b.Rotation))
	case Sphere:
		return q.intersectsSphere(toMgl(b.Position), s.Radius)
	case Plane:
		return q.intersectsPlaneY(b.Position.Y)
	}
	return false
}

// intersectsOBB runs the separating axis test over the 15 candidate axes.
func (a obb) intersectsOBB(b obb) bool {
	t := b.center.Sub(a.center)

	for i := 0; i < 3; i++ {
		if separated(a, b, a.axes[i], t) || separated(a, b, b.axes[i], t) {
			return false
		}
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := a.axes[i].Cross(b.axes[j])
			if axis.LenSqr() < parallelEpsilon {
				continue
			}
			if separated(a, b, axis.Normalize(), t) {
				return false
			}
		}
	}
	return true
}

// separated reports whether axis separates the projections of a and b.
func separated(a, b obb, axis, t mgl32.Vec3) bool {
	distance := abs(t.Dot(axis))
	return distance > a.radiusAlong(axis)+b.radiusAlong(axis)
}

// radiusAlong is the half-length of the box's projection onto axis.
func (a obb) radiusAlong(axis mgl32.Vec3) float32 {
	var r float32
	for i := 0; i < 3; i++ {
		r += a.half[i] * abs(a.axes[i].Dot(axis))
	}
	return r
}

func (a obb) intersectsSphere(center mgl32.Vec3, radius float32) bool {
	d := center.Sub(a.center)

	// Closest point on the box in local coordinates
	var distSq float32
	for i := 0; i < 3; i++ {
		local := d.Dot(a.axes[i])
		closest := clampf(local, -a.half[i], a.half[i])
		delta := local - closest
		distSq += delta * delta
	}
	return distSq <= radius*radius
}

func (a obb) intersectsPlaneY(height float32) bool {
	return abs(a.center.Y()-height) <= a.radiusAlong(mgl32.Vec3{0, 1, 0})
}

func toMgl(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func toMglQuat(q math.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
