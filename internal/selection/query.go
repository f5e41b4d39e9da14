package selection

import (
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

// OverlapQuerier finds bodies overlapping an oriented box. *physics.World implements it.
type OverlapQuerier interface {
	OverlapBox(center, halfExtents math.Vec3, rot math.Quat, mask physics.Layer) []*physics.Body
}

// QueryVolume returns the bodies on mask that overlap the frame's box.
func QueryVolume(scene OverlapQuerier, frame BoxFrame, mask physics.Layer) []*physics.Body {
	return scene.OverlapBox(frame.Center, frame.HalfExtents, frame.Rotation, mask)
}
