package selection

import "github.com/Faultbox/boxselect/pkg/math"

// Indices into OrientedCorners.
const (
	BottomLeft  = 0
	TopLeft     = 1
	TopRight    = 2
	BottomRight = 3
)

// OrientedCorners holds the box corners as [bottomLeft, topLeft, topRight, bottomRight].
//
// "Bottom" and "left" refer to the smaller screen Y and X of the drag. In
// window coordinates, where Y grows downward, the bottom edge is the one
// nearer the top of the window. Only the consistency of the labelling matters:
// the width and length vectors keep the same handedness for every drag direction.
type OrientedCorners [4]math.Vec3

// orientationTables maps each drag direction to the raycast index that fills
// each canonical slot.
var orientationTables = [4][4]int{
	{0, 1, 3, 2}, // start.x <  end.x, start.y <  end.y
	{1, 0, 2, 3}, // start.x <  end.x, start.y >= end.y
	{3, 2, 0, 1}, // start.x >= end.x, start.y >= end.y
	{2, 3, 1, 0}, // start.x >= end.x, start.y <  end.y
}

// dragQuadrant classifies a drag by direction. Ties fall into the >= cases.
func dragQuadrant(start, end math.Vec2) int {
	switch {
	case start.X < end.X && start.Y < end.Y:
		return 0
	case start.X < end.X:
		return 1
	case start.Y >= end.Y:
		return 2
	default:
		return 3
	}
}

// ResolveOrientation reorders corners, given in raycast order, into canonical order.
func ResolveOrientation(start, end math.Vec2, corners CornerSet) OrientedCorners {
	table := orientationTables[dragQuadrant(start, end)]

	var out OrientedCorners
	for slot, idx := range table {
		out[slot] = corners[idx]
	}
	return out
}
