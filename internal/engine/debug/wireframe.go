// Package debug provides debug visualization utilities: line geometry for
// boxes, spheres, the ground grid and the drag rectangle.
package debug

import (
	gomath "math"

	"github.com/Faultbox/boxselect/pkg/math"
)

// BoxEdgeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxEdgeVertexCount = 24

// boxEdges indexes corners laid out as a -Z face (-x-y, +x-y, +x+y, -x+y)
// followed by the same order on the +Z face.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // -Z face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // +Z face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// BoxEdges returns line-list vertices for the 12 edges of a box given its
// corners in BoxFrame.Vertices order.
func BoxEdges(corners [8]math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, 0, BoxEdgeVertexCount)
	for _, e := range boxEdges {
		out = append(out, corners[e[0]], corners[e[1]])
	}
	return out
}

// OrientedBoxCorners returns the corners of a box in BoxFrame.Vertices order.
func OrientedBoxCorners(center, halfExtents math.Vec3, rot math.Quat) [8]math.Vec3 {
	signs := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	var out [8]math.Vec3
	for i, s := range signs {
		for j, z := range [2]float32{-1, 1} {
			local := math.Vec3{X: s[0] * halfExtents.X, Y: s[1] * halfExtents.Y, Z: z * halfExtents.Z}
			out[i+4*j] = center.Add(rot.Rotate(local))
		}
	}
	return out
}

// OrientedBoxEdges returns line-list vertices for a rotated box.
func OrientedBoxEdges(center, halfExtents math.Vec3, rot math.Quat) []math.Vec3 {
	return BoxEdges(OrientedBoxCorners(center, halfExtents, rot))
}

// SphereRings returns line-list vertices for three axis-aligned circles.
func SphereRings(center math.Vec3, radius float32, segments int) []math.Vec3 {
	if segments < 3 {
		segments = 3
	}
	out := make([]math.Vec3, 0, 3*segments*2)
	point := func(axis, i int) math.Vec3 {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		c := radius * float32(gomath.Cos(a))
		s := radius * float32(gomath.Sin(a))
		switch axis {
		case 0:
			return center.Add(math.Vec3{Y: c, Z: s})
		case 1:
			return center.Add(math.Vec3{X: c, Z: s})
		default:
			return center.Add(math.Vec3{X: c, Y: s})
		}
	}
	for axis := 0; axis < 3; axis++ {
		for i := 0; i < segments; i++ {
			out = append(out, point(axis, i), point(axis, i+1))
		}
	}
	return out
}

// GroundGrid returns line-list vertices for a square grid of the given half
// size centered on the origin at height y.
func GroundGrid(halfSize, step, y float32) []math.Vec3 {
	if step <= 0 || halfSize <= 0 {
		return nil
	}
	n := int(halfSize / step)
	out := make([]math.Vec3, 0, (2*n+1)*4)
	for i := -n; i <= n; i++ {
		v := float32(i) * step
		out = append(out,
			math.Vec3{X: v, Y: y, Z: -halfSize}, math.Vec3{X: v, Y: y, Z: halfSize},
			math.Vec3{X: -halfSize, Y: y, Z: v}, math.Vec3{X: halfSize, Y: y, Z: v},
		)
	}
	return out
}

// RectOutline returns line-list vertices for the border of a screen rectangle.
func RectOutline(lo, hi math.Vec2) []math.Vec2 {
	tl := lo
	tr := math.Vec2{X: hi.X, Y: lo.Y}
	br := hi
	bl := math.Vec2{X: lo.X, Y: hi.Y}
	return []math.Vec2{tl, tr, tr, br, br, bl, bl, tl}
}

// RectFill returns triangle-list vertices covering a screen rectangle.
func RectFill(lo, hi math.Vec2) []math.Vec2 {
	tr := math.Vec2{X: hi.X, Y: lo.Y}
	bl := math.Vec2{X: lo.X, Y: hi.Y}
	return []math.Vec2{lo, tr, hi, lo, hi, bl}
}
