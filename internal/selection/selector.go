package selection

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

// ErrIncompleteCorners is returned by Capture when some corner ray has never hit anything.
var ErrIncompleteCorners = errors.New("selection: corner never hit")

// DefaultBoxHeight is the box height used when none is configured.
const DefaultBoxHeight float32 = 1

// Scene is the collision world the selector casts into and queries.
type Scene interface {
	RayCaster
	OverlapQuerier
}

// Capture is the result of a finished drag.
type Capture struct {
	Frame  BoxFrame
	Bodies []*physics.Body
}

// Selector runs the corner, orientation, frame and query steps for one camera and scene.
type Selector struct {
	camera RayProjector
	scene  Scene
	caster *CornerCaster

	// Height is the box extent along the footprint normal.
	Height float32
	// Mask filters which bodies the box query may return.
	Mask physics.Layer
	// MinEdgeLength is the degeneracy tolerance passed to the frame builder.
	MinEdgeLength float32
}

// NewSelector creates a selector whose corner rays hit rayMask and whose box
// query returns bodies on queryMask.
func NewSelector(cam RayProjector, scene Scene, rayMask, queryMask physics.Layer) *Selector {
	return &Selector{
		camera:        cam,
		scene:         scene,
		caster:        NewCornerCaster(rayMask),
		Height:        DefaultBoxHeight,
		Mask:          queryMask,
		MinEdgeLength: MinEdgeLength,
	}
}

// Track casts the corners for the current drag. Called every frame the drag is held.
func (s *Selector) Track(start, end math.Vec2) {
	s.caster.Cast(start, end, s.camera, s.scene)
}

// Corners returns the current corner buffer and whether every slot has been hit.
func (s *Selector) Corners() (CornerSet, bool) {
	return s.caster.Corners(), s.caster.Complete()
}

// Reset forgets the corners of any previous drag.
func (s *Selector) Reset() {
	s.caster.Reset()
}

// Capture casts the corners one last time and queries the swept box.
// It returns ErrIncompleteCorners or ErrDegenerateFrame when no box can be
// built; the caller treats both as an empty selection.
func (s *Selector) Capture(start, end math.Vec2) (Capture, error) {
	hits := s.caster.Cast(start, end, s.camera, s.scene)
	if !s.caster.Complete() {
		logger.Debug("selection capture skipped",
			zap.String("reason", "incomplete corners"),
			zap.Int("hits", hits))
		return Capture{}, ErrIncompleteCorners
	}

	raw := s.caster.Corners()
	oriented := ResolveOrientation(start, end, raw)
	frame, err := buildFrame(raw, oriented, s.Height, s.MinEdgeLength)
	if err != nil {
		logger.Debug("selection capture skipped",
			zap.String("reason", "degenerate frame"),
			zap.Float32("startX", start.X), zap.Float32("startY", start.Y),
			zap.Float32("endX", end.X), zap.Float32("endY", end.Y))
		return Capture{}, err
	}

	bodies := QueryVolume(s.scene, frame, s.Mask)
	logger.Debug("selection captured",
		zap.Int("bodies", len(bodies)),
		zap.Float32("width", frame.HalfExtents.X*2),
		zap.Float32("length", frame.HalfExtents.Y*2))
	return Capture{Frame: frame, Bodies: bodies}, nil
}
