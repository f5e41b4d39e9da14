package selection

import (
	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

// topDownCamera maps screen pixel (x, y) to a vertical ray landing on world (x, 0, y).
type topDownCamera struct{}

func (topDownCamera) ScreenPointToRay(p math.Vec2) picking.Ray {
	return picking.Ray{
		Origin:    math.Vec3{X: p.X, Y: 100, Z: p.Y},
		Direction: math.Vec3{Y: -1},
	}
}

// flatScene answers every vertical ray with a hit on y=0 unless the ray's
// screen position is listed in misses. It records overlap queries.
type flatScene struct {
	misses   map[math.Vec2]bool
	raycasts int

	overlaps []overlapCall
	result   []*physics.Body
}

type overlapCall struct {
	center, half math.Vec3
	rot          math.Quat
	mask         physics.Layer
}

func (s *flatScene) Raycast(ray picking.Ray, _ float32, _ physics.Layer) (physics.Hit, bool) {
	s.raycasts++
	if s.misses[math.Vec2{X: ray.Origin.X, Y: ray.Origin.Z}] {
		return physics.Hit{}, false
	}
	p := math.Vec3{X: ray.Origin.X, Z: ray.Origin.Z}
	return physics.Hit{Point: p, Normal: math.Vec3UnitY, Distance: ray.Origin.Y}, true
}

func (s *flatScene) OverlapBox(center, half math.Vec3, rot math.Quat, mask physics.Layer) []*physics.Body {
	s.overlaps = append(s.overlaps, overlapCall{center, half, rot, mask})
	return s.result
}

// groundPoint is where topDownCamera's ray through p lands.
func groundPoint(p math.Vec2) math.Vec3 {
	return math.Vec3{X: p.X, Z: p.Y}
}

// castAll returns the corner set a fully hitting cast of the drag produces.
func castAll(start, end math.Vec2) CornerSet {
	var out CornerSet
	for i, p := range ScreenCorners(start, end) {
		out[i] = groundPoint(p)
	}
	return out
}

type testUnit struct {
	name      string
	selected  bool
	selects   int
	deselects int
}

func (u *testUnit) OnSelect() {
	u.selected = true
	u.selects++
}

func (u *testUnit) OnDeselect() {
	u.selected = false
	u.deselects++
}
