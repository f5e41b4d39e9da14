package selection

import (
	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/pkg/math"
)

// Pointer is the per-frame state of the selection button.
type Pointer struct {
	Position math.Vec2
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool // down this frame
	Shift    bool
	Ctrl     bool
}

// ChangeKind says how the selection list changed.
type ChangeKind int

const (
	ChangeSelect ChangeKind = iota
	ChangeDeselect
	ChangeClear
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeDeselect:
		return "deselect"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change describes one update of the selection list.
type Change struct {
	Kind ChangeKind
	// Affected is the number of members added or removed by this change.
	Affected int
	// Count is the size of the selection after the change.
	Count int
}

// Listener is notified after the selection list changes.
type Listener func(Change)

// Manager owns the selection list and drives a Selector from pointer input.
//
// A press starts a drag, forgets the previous drag's corners and, unless
// Shift or Ctrl is held, clears the list.
// While held, the corners are tracked and the drag rectangle is visible. On
// release the swept box is captured: with Ctrl the captured members are
// removed, otherwise captured selectables are added.
type Manager struct {
	selector *Selector
	registry *Registry
	log      *zap.Logger

	selected []Selectable
	members  map[Selectable]struct{}

	start, end math.Vec2
	dragging   bool

	frame    BoxFrame
	hasFrame bool

	listeners    map[int]Listener
	nextListener int
}

// NewManager creates a manager for the given selector and registry.
func NewManager(selector *Selector, registry *Registry) *Manager {
	return &Manager{
		selector:  selector,
		registry:  registry,
		log:       logger.Named("selection"),
		members:   make(map[Selectable]struct{}),
		listeners: make(map[int]Listener),
	}
}

// Update advances the drag with this frame's pointer state.
func (m *Manager) Update(p Pointer) {
	if p.Pressed {
		m.start = p.Position
		m.end = p.Position
		m.dragging = true
		m.selector.Reset()
		if !p.Shift && !p.Ctrl {
			m.Clear()
		}
	}

	if !m.dragging {
		return
	}

	if p.Released {
		m.end = p.Position
		m.dragging = false
		m.finish(p.Ctrl)
		return
	}

	if p.Held {
		m.end = p.Position
		m.selector.Track(m.start, m.end)
	}
}

func (m *Manager) finish(ctrl bool) {
	capture, err := m.selector.Capture(m.start, m.end)
	if err != nil {
		return
	}
	m.frame = capture.Frame
	m.hasFrame = true

	found := m.registry.Resolve(capture.Bodies)
	if ctrl {
		m.Deselect(found)
	} else {
		m.Select(found)
	}
}

// Select adds selectables to the list, calling OnSelect on each new member.
// Members already in the list are left alone.
func (m *Manager) Select(items []Selectable) {
	added := 0
	for _, s := range items {
		if _, ok := m.members[s]; ok {
			continue
		}
		m.members[s] = struct{}{}
		m.selected = append(m.selected, s)
		s.OnSelect()
		added++
	}
	m.log.Debug("select", zap.Int("added", added), zap.Int("count", len(m.selected)))
	m.notify(Change{Kind: ChangeSelect, Affected: added, Count: len(m.selected)})
}

// Deselect removes selectables from the list, calling OnDeselect on each removed member.
func (m *Manager) Deselect(items []Selectable) {
	removed := 0
	for _, s := range items {
		if _, ok := m.members[s]; !ok {
			continue
		}
		delete(m.members, s)
		s.OnDeselect()
		removed++
	}
	if removed > 0 {
		kept := m.selected[:0]
		for _, s := range m.selected {
			if _, ok := m.members[s]; ok {
				kept = append(kept, s)
			}
		}
		clear(m.selected[len(kept):])
		m.selected = kept
	}
	m.log.Debug("deselect", zap.Int("removed", removed), zap.Int("count", len(m.selected)))
	m.notify(Change{Kind: ChangeDeselect, Affected: removed, Count: len(m.selected)})
}

// Clear deselects every member.
func (m *Manager) Clear() {
	if len(m.selected) == 0 {
		return
	}

	removed := len(m.selected)
	for _, s := range m.selected {
		s.OnDeselect()
	}
	m.selected = nil
	m.members = make(map[Selectable]struct{})
	m.log.Debug("clear", zap.Int("removed", removed))
	m.notify(Change{Kind: ChangeClear, Affected: removed})
}

// Selected returns a copy of the list in selection order.
func (m *Manager) Selected() []Selectable {
	out := make([]Selectable, len(m.selected))
	copy(out, m.selected)
	return out
}

// IsSelected reports whether s is in the list.
func (m *Manager) IsSelected(s Selectable) bool {
	_, ok := m.members[s]
	return ok
}

// Len returns the size of the list.
func (m *Manager) Len() int {
	return len(m.selected)
}

// Dragging reports whether a drag is in progress.
func (m *Manager) Dragging() bool {
	return m.dragging
}

// Rect returns the drag rectangle and whether it should be drawn.
func (m *Manager) Rect() (ScreenRect, bool) {
	return NewScreenRect(m.start, m.end), m.dragging
}

// LastFrame returns the box of the most recent successful capture.
func (m *Manager) LastFrame() (BoxFrame, bool) {
	return m.frame, m.hasFrame
}

// Subscribe registers a listener and returns a function that removes it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = l
	return func() { delete(m.listeners, id) }
}

func (m *Manager) notify(c Change) {
	for _, l := range m.listeners {
		l(c)
	}
}
