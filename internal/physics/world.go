package physics

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/engine/picking"
	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/pkg/math"
)

// R-tree branching factors for the broadphase.
const (
	treeMinChildren = 25
	treeMaxChildren = 50
)

// boundsPadding grows every broadphase rectangle so touching shapes are still
// reported to the narrowphase.
const boundsPadding = 1e-3

// treeEntry is a bounded body as stored in the R-tree.
type treeEntry struct {
	body *Body
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *treeEntry) Bounds() rtreego.Rect {
	return e.rect
}

// World holds bodies and answers spatial queries against them.
// It is not safe for concurrent use.
type World struct {
	bodies  map[BodyID]*Body
	entries map[BodyID]*treeEntry
	planes  []*Body
	tree    *rtreego.Rtree
	nextID  BodyID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		bodies:  make(map[BodyID]*Body),
		entries: make(map[BodyID]*treeEntry),
		tree:    rtreego.NewTree(3, treeMinChildren, treeMaxChildren),
	}
}

// Add inserts a body, assigns its ID and returns it.
// A zero rotation is replaced with the identity.
func (w *World) Add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	if b.Rotation == (math.Quat{}) {
		b.Rotation = math.QuatIdentity()
	}
	w.bodies[b.ID] = b
	w.index(b)

	logger.Debug("body added",
		zap.Uint32("id", uint32(b.ID)),
		zap.String("name", b.Name),
		zap.Uint32("layer", uint32(b.Layer)),
	)
	return b.ID
}

// Remove deletes a body. Returns false if the ID is unknown.
func (w *World) Remove(id BodyID) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	w.unindex(b)
	delete(w.bodies, id)
	return true
}

// SetTransform moves a body and refreshes its broadphase entry.
func (w *World) SetTransform(id BodyID, pos math.Vec3, rot math.Quat) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	w.unindex(b)
	b.Position = pos
	b.Rotation = rot
	w.index(b)
	return true
}

// Body returns the body with the given ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Bodies returns all bodies ordered by ID.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b)
	}
	sortByID(out)
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) index(b *Body) {
	box, bounded := b.Shape.worldBounds(b.Position, b.Rotation)
	if !bounded {
		w.planes = append(w.planes, b)
		return
	}
	e := &treeEntry{body: b, rect: toRect(box)}
	w.entries[b.ID] = e
	w.tree.Insert(e)
}

func (w *World) unindex(b *Body) {
	if e, ok := w.entries[b.ID]; ok {
		w.tree.Delete(e)
		delete(w.entries, b.ID)
		return
	}
	for i, p := range w.planes {
		if p == b {
			w.planes = append(w.planes[:i], w.planes[i+1:]...)
			return
		}
	}
}

// candidates returns bounded bodies whose AABB intersects box, plus all planes.
func (w *World) candidates(box picking.AABB) []*Body {
	found := w.tree.SearchIntersect(toRect(box))
	out := make([]*Body, 0, len(found)+len(w.planes))
	for _, s := range found {
		out = append(out, s.(*treeEntry).body)
	}
	return append(out, w.planes...)
}

func toRect(box picking.AABB) rtreego.Rect {
	p := rtreego.Point{
		float64(box.Min.X) - boundsPadding,
		float64(box.Min.Y) - boundsPadding,
		float64(box.Min.Z) - boundsPadding,
	}
	lengths := []float64{
		float64(box.Max.X-box.Min.X) + 2*boundsPadding,
		float64(box.Max.Y-box.Min.Y) + 2*boundsPadding,
		float64(box.Max.Z-box.Min.Z) + 2*boundsPadding,
	}
	// Lengths are strictly positive thanks to the padding.
	rect, _ := rtreego.NewRect(p, lengths)
	return rect
}

func sortByID(bodies []*Body) {
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].ID < bodies[j].ID })
}
