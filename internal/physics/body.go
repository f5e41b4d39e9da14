// Package physics is the collision world the selection box is cast into.
// It answers ray casts and oriented-box overlap queries against box, sphere
// and ground-plane colliders, filtered by layer.
package physics

import (
	"fmt"
	"strings"

	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/pkg/math"
)

// BodyID identifies a body within a World. Zero is never assigned.
type BodyID uint32

// Layer is a collision category bitmask.
type Layer uint32

// Common layers.
const (
	LayerNone    Layer = 0
	LayerDefault Layer = 1 << 0
	LayerGround  Layer = 1 << 1
	LayerUnits   Layer = 1 << 2
	LayerAll     Layer = ^Layer(0)
)

// Matches reports whether l shares at least one bit with mask.
func (l Layer) Matches(mask Layer) bool {
	return l&mask != 0
}

// Shape is a collider shape in body-local space.
type Shape interface {
	// worldBounds returns the world-space AABB of the shape placed at pos/rot.
	// ok is false for unbounded shapes.
	worldBounds(pos math.Vec3, rot math.Quat) (box picking.AABB, ok bool)
}

// Box is an oriented box collider.
type Box struct {
	HalfExtents math.Vec3
}

// Sphere is a sphere collider.
type Sphere struct {
	Radius float32
}

// Plane is an infinite horizontal plane at the body's Y position.
// Body rotation is ignored.
type Plane struct{}

func (b Box) worldBounds(pos math.Vec3, rot math.Quat) (picking.AABB, bool) {
	return picking.AABBFromCenter(pos, projectedExtents(b.HalfExtents, rot)), true
}

func (s Sphere) worldBounds(pos math.Vec3, _ math.Quat) (picking.AABB, bool) {
	r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return picking.AABBFromCenter(pos, r), true
}

func (Plane) worldBounds(math.Vec3, math.Quat) (picking.AABB, bool) {
	return picking.AABB{}, false
}

// Body is a collider placed in the world.
type Body struct {
	ID       BodyID
	Name     string
	Layer    Layer
	Position math.Vec3
	Rotation math.Quat
	Shape    Shape
}

// projectedExtents returns the world-axis half-extents of an oriented box.
func projectedExtents(halfExtents math.Vec3, rot math.Quat) math.Vec3 {
	ax := rot.Rotate(math.Vec3UnitX).Scale(halfExtents.X)
	ay := rot.Rotate(math.Vec3UnitY).Scale(halfExtents.Y)
	az := rot.Rotate(math.Vec3UnitZ).Scale(halfExtents.Z)
	return math.Vec3{
		X: abs(ax.X) + abs(ay.X) + abs(az.X),
		Y: abs(ax.Y) + abs(ay.Y) + abs(az.Y),
		Z: abs(ax.Z) + abs(ay.Z) + abs(az.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

var layerNames = map[string]Layer{
	"none":    LayerNone,
	"default": LayerDefault,
	"ground":  LayerGround,
	"units":   LayerUnits,
	"all":     LayerAll,
}

// ParseLayer returns the layer with the given name.
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LayerNone, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// ParseLayers returns the union of the named layers.
func ParseLayers(names []string) (Layer, error) {
	var mask Layer
	for _, name := range names {
		l, err := ParseLayer(name)
		if err != nil {
			return LayerNone, err
		}
		mask |= l
	}
	return mask, nil
}
