package selection

import "github.com/Faultbox/boxselect/pkg/math"

// ScreenRect is the drag rectangle in window pixels.
type ScreenRect struct {
	Min  math.Vec2
	Size math.Vec2
}

// NewScreenRect returns the rectangle spanned by two points in any order.
func NewScreenRect(a, b math.Vec2) ScreenRect {
	lo := a.Min(b)
	return ScreenRect{Min: lo, Size: a.Max(b).Sub(lo)}
}

// Max returns the corner opposite Min.
func (r ScreenRect) Max() math.Vec2 {
	return r.Min.Add(r.Size)
}

// Center returns the rectangle's midpoint.
func (r ScreenRect) Center() math.Vec2 {
	return r.Min.Add(r.Size.Scale(0.5))
}

// Empty reports whether the rectangle has no area.
func (r ScreenRect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}
