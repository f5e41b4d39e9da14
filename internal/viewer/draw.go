package viewer

import (
	"github.com/Faultbox/boxselect/internal/engine/debug"
	"github.com/Faultbox/boxselect/internal/engine/renderer"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

var (
	gridColor     = renderer.Color{0.3, 0.3, 0.35, 1}
	obstacleColor = renderer.Color{0.55, 0.55, 0.55, 1}
	gizmoColor    = renderer.Color{1, 0.4, 0.1, 1}
)

const (
	gridStep       = 2
	sphereSegments = 24
)

func (v *Viewer) render() {
	v.renderer.Begin()

	half := v.scene.GroundSize / 2
	v.renderer.Lines(debug.GroundGrid(half, gridStep, v.scene.Ground.Position.Y), gridColor)

	for _, b := range v.scene.Obstacles {
		v.renderer.Lines(bodyEdges(b), obstacleColor)
	}
	for _, u := range v.scene.Units {
		v.renderer.Lines(bodyEdges(u.Body), renderer.RGB(u.DisplayColor()))
	}

	if v.showGizmo {
		if frame, ok := v.manager.LastFrame(); ok {
			v.renderer.Lines(debug.BoxEdges(frame.Vertices()), gizmoColor)
		}
	}

	if rect, visible := v.manager.Rect(); visible && !rect.Empty() {
		c := renderer.Color(v.cfg.Selection.BoxColor)
		fill := c
		fill[3] *= 0.2
		v.renderer.OverlayTriangles(debug.RectFill(rect.Min, rect.Max()), fill)
		v.renderer.OverlayLines(debug.RectOutline(rect.Min, rect.Max()), c)
	}

	v.renderer.End(v.camera.ViewProjection())
}

func bodyEdges(b *physics.Body) []math.Vec3 {
	switch s := b.Shape.(type) {
	case physics.Box:
		return debug.OrientedBoxEdges(b.Position, s.HalfExtents, b.Rotation)
	case physics.Sphere:
		return debug.SphereRings(b.Position, s.Radius, sphereSegments)
	}
	return nil
}
