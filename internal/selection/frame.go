package selection

import (
	"errors"

	"github.com/Faultbox/boxselect/pkg/math"
)

// MinEdgeLength is the default tolerance below which a footprint edge or the
// footprint normal is treated as zero.
const MinEdgeLength float32 = 1e-4

// ErrDegenerateFrame is returned when the corners do not span an area, e.g. a
// click without a drag or a drag whose corners landed on one line.
var ErrDegenerateFrame = errors.New("selection: degenerate box frame")

// BoxFrame is the oriented box swept by a drag.
//
// LocalX runs from bottom-left to bottom-right, LocalY from bottom-left to
// top-left, and LocalZ is their cross product, the normal of the dragged
// footprint. The height is measured along LocalZ, so HalfExtents is
// (width, length, height) / 2. The axes come straight from the hit points and
// are not re-orthogonalized; a perspective view of tilted ground can leave them
// slightly skewed.
type BoxFrame struct {
	Center       math.Vec3
	LocalX       math.Vec3
	LocalY       math.Vec3
	LocalZ       math.Vec3
	Rotation     math.Quat
	HalfExtents  math.Vec3
	WidthVector  math.Vec3
	LengthVector math.Vec3
}

// Axes returns the orthonormal box axes implied by Rotation.
func (f BoxFrame) Axes() [3]math.Vec3 {
	return [3]math.Vec3{
		f.Rotation.Rotate(math.Vec3UnitX),
		f.Rotation.Rotate(math.Vec3UnitY),
		f.Rotation.Rotate(math.Vec3UnitZ),
	}
}

// Vertices returns the eight box corners. The first four form the face at
// -HalfExtents.Z in the order (-x,-y), (+x,-y), (+x,+y), (-x,+y); the last four
// repeat that order on the +Z face.
func (f BoxFrame) Vertices() [8]math.Vec3 {
	axes := f.Axes()
	ex := axes[0].Scale(f.HalfExtents.X)
	ey := axes[1].Scale(f.HalfExtents.Y)
	ez := axes[2].Scale(f.HalfExtents.Z)

	signs := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	var out [8]math.Vec3
	for i, s := range signs {
		base := f.Center.Add(ex.Scale(s[0])).Add(ey.Scale(s[1]))
		out[i] = base.Sub(ez)
		out[i+4] = base.Add(ez)
	}
	return out
}

// BuildFrame derives the box frame from the raw corners (raycast order) and
// the same corners in canonical order. Returns ErrDegenerateFrame and the zero
// frame when the footprint has no area.
func BuildFrame(raw CornerSet, oriented OrientedCorners, height float32) (BoxFrame, error) {
	return buildFrame(raw, oriented, height, MinEdgeLength)
}

func buildFrame(raw CornerSet, oriented OrientedCorners, height, minEdge float32) (BoxFrame, error) {
	bl := oriented[BottomLeft]
	tl := oriented[TopLeft]
	tr := oriented[TopRight]
	br := oriented[BottomRight]

	xEdge := br.Sub(bl)
	yEdge := tl.Sub(bl)
	if xEdge.Length() < minEdge || yEdge.Length() < minEdge {
		return BoxFrame{}, ErrDegenerateFrame
	}

	localX := xEdge.Normalize()
	localY := yEdge.Normalize()
	localZ := localX.Cross(localY)
	if localZ.Length() < minEdge {
		return BoxFrame{}, ErrDegenerateFrame
	}

	length := tl.Sub(bl).Add(tr.Sub(br)).Scale(0.5)
	width := tr.Sub(tl).Add(br.Sub(bl)).Scale(0.5)

	return BoxFrame{
		Center:       math.Centroid(raw[:]...),
		LocalX:       localX,
		LocalY:       localY,
		LocalZ:       localZ,
		Rotation:     math.QuatFromAxes(localX, localY, localZ),
		HalfExtents:  math.Vec3{X: width.Length(), Y: length.Length(), Z: height}.Scale(0.5),
		WidthVector:  width,
		LengthVector: length,
	}, nil
}
