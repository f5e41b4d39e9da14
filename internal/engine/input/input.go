// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Wheel  float32
}

// Input handles all input processing.
type Input struct {
	events []Event
	drag   dragTracker

	// Right-button camera orbit
	orbiting         bool
	orbitDX, orbitDY int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events for this frame.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.drag.beginFrame()
	i.orbitDX, i.orbitDY = 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.drag.move(int(e.X), int(e.Y))
			if i.orbiting {
				i.orbitDX += int(e.XRel)
				i.orbitDY += int(e.YRel)
			}

		case *sdl.MouseButtonEvent:
			i.handleButton(e)

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: float32(e.Y)})
		}
	}

	mod := sdl.GetModState()
	i.drag.modifiers(mod&sdl.KMOD_SHIFT != 0, mod&sdl.KMOD_CTRL != 0)

	return quit
}

func (i *Input) handleButton(e *sdl.MouseButtonEvent) {
	down := e.Type == sdl.MOUSEBUTTONDOWN
	switch e.Button {
	case sdl.BUTTON_LEFT:
		if down {
			i.drag.press(int(e.X), int(e.Y))
		} else {
			i.drag.release(int(e.X), int(e.Y))
		}
	case sdl.BUTTON_RIGHT:
		i.orbiting = down
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Drag returns the left-button state for this frame.
func (i *Input) Drag() DragState {
	return i.drag.frame()
}

// Orbit returns the right-drag mouse motion accumulated this frame.
func (i *Input) Orbit() (dx, dy int) {
	return i.orbitDX, i.orbitDY
}

// Wheel returns the total scroll this frame.
func (i *Input) Wheel() float32 {
	var total float32
	for _, e := range i.events {
		if e.Type == EventMouseWheel {
			total += e.Wheel
		}
	}
	return total
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyDown checks if a key is currently held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return sdl.GetKeyboardState()[scancode] != 0
}
