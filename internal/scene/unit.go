package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/internal/selection"
)

var _ selection.Selectable = (*Unit)(nil)

// HighlightColor is drawn for selected units.
var HighlightColor = [3]float32{1, 0.85, 0.2}

// Unit is a selectable scene object backed by one collider.
type Unit struct {
	Body     *physics.Body
	Color    [3]float32
	selected bool
}

// NewUnit creates an unselected unit.
func NewUnit(body *physics.Body, color [3]float32) *Unit {
	return &Unit{Body: body, Color: color}
}

// Name returns the collider name.
func (u *Unit) Name() string {
	return u.Body.Name
}

// OnSelect marks the unit selected.
func (u *Unit) OnSelect() {
	u.selected = true
	logger.Debug("unit selected", zap.String("name", u.Body.Name))
}

// OnDeselect marks the unit not selected.
func (u *Unit) OnDeselect() {
	u.selected = false
	logger.Debug("unit deselected", zap.String("name", u.Body.Name))
}

// Selected reports the unit's selection state.
func (u *Unit) Selected() bool {
	return u.selected
}

// DisplayColor returns the color to draw the unit with.
func (u *Unit) DisplayColor() [3]float32 {
	if u.selected {
		return HighlightColor
	}
	return u.Color
}
