package input

// DragState is the per-frame state of the left mouse button.
type DragState struct {
	X, Y     int
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool // down at the end of this frame
	Shift    bool
	Ctrl     bool
}

// dragTracker turns button transitions into per-frame edge flags.
// A press and release within one frame report both edges.
type dragTracker struct {
	down  bool
	state DragState
}

func (d *dragTracker) beginFrame() {
	d.state.Pressed = false
	d.state.Released = false
}

func (d *dragTracker) move(x, y int) {
	d.state.X, d.state.Y = x, y
}

func (d *dragTracker) press(x, y int) {
	d.move(x, y)
	if !d.down {
		d.down = true
		d.state.Pressed = true
	}
}

func (d *dragTracker) release(x, y int) {
	d.move(x, y)
	if d.down {
		d.down = false
		d.state.Released = true
	}
}

func (d *dragTracker) modifiers(shift, ctrl bool) {
	d.state.Shift, d.state.Ctrl = shift, ctrl
}

func (d *dragTracker) frame() DragState {
	d.state.Held = d.down
	return d.state
}
