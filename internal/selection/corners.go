// Package selection implements drag-box selection: the screen rectangle's four
// corners are cast into the scene, the hits are reinterpreted as the corners of
// an oriented box, and that box is overlapped against the collision world.
package selection

import (
	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

// Indices into a CornerSet, in raycast order.
const (
	CornerStart      = 0 // (start.x, start.y)
	CornerStartXEndY = 1 // (start.x, end.y)
	CornerEndXStartY = 2 // (end.x, start.y)
	CornerEnd        = 3 // (end.x, end.y)
)

// CornerSet holds the world-space hit points of the four corner rays in raycast order.
type CornerSet [4]math.Vec3

// RayProjector turns a screen pixel into a world-space ray. *camera.RTSCamera implements it.
type RayProjector interface {
	ScreenPointToRay(p math.Vec2) picking.Ray
}

// RayCaster casts a ray into the scene. *physics.World implements it.
type RayCaster interface {
	Raycast(ray picking.Ray, maxDistance float32, mask physics.Layer) (physics.Hit, bool)
}

// ScreenCorners returns the four screen corners of a drag in raycast order.
func ScreenCorners(start, end math.Vec2) [4]math.Vec2 {
	return [4]math.Vec2{
		start,
		{X: start.X, Y: end.Y},
		{X: end.X, Y: start.Y},
		end,
	}
}

// CornerCaster owns the corner buffer for one drag. A corner whose ray misses
// keeps the point from the last cast that hit, so a single missed frame does not
// collapse the box. Slots that have never been hit hold the zero vector and are
// reported by Complete.
type CornerCaster struct {
	corners CornerSet
	hit     [4]bool

	// MaxDistance limits the corner rays; picking.Unbounded by default.
	MaxDistance float32
	// Mask selects which layers the corner rays can hit.
	Mask physics.Layer
}

// NewCornerCaster returns a caster with unbounded rays against the given layers.
func NewCornerCaster(mask physics.Layer) *CornerCaster {
	return &CornerCaster{MaxDistance: picking.Unbounded, Mask: mask}
}

// Cast casts the four corner rays of the drag and updates the buffer in place.
// Returns how many rays hit on this cast.
func (c *CornerCaster) Cast(start, end math.Vec2, cam RayProjector, scene RayCaster) int {
	hits := 0
	for i, p := range ScreenCorners(start, end) {
		hit, ok := scene.Raycast(cam.ScreenPointToRay(p), c.MaxDistance, c.Mask)
		if !ok {
			continue
		}
		c.corners[i] = hit.Point
		c.hit[i] = true
		hits++
	}
	return hits
}

// Corners returns a copy of the buffer.
func (c *CornerCaster) Corners() CornerSet {
	return c.corners
}

// Complete reports whether every corner has been hit at least once since the last Reset.
func (c *CornerCaster) Complete() bool {
	return c.hit[0] && c.hit[1] && c.hit[2] && c.hit[3]
}

// Reset forgets all corners.
func (c *CornerCaster) Reset() {
	c.corners = CornerSet{}
	c.hit = [4]bool{}
}
