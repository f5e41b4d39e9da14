package selection

import (
	"testing"

	"github.com/Faultbox/boxselect/pkg/math"
)

func TestScreenCornersOrder(t *testing.T) {
	start := math.Vec2{X: 10, Y: 20}
	end := math.Vec2{X: 30, Y: 40}

	want := [4]math.Vec2{{X: 10, Y: 20}, {X: 10, Y: 40}, {X: 30, Y: 20}, {X: 30, Y: 40}}
	if got := ScreenCorners(start, end); got != want {
		t.Errorf("ScreenCorners() = %v, want %v", got, want)
	}
}

func TestCornerCasterCast(t *testing.T) {
	scene := &flatScene{}
	c := NewCornerCaster(0)

	start := math.Vec2{X: 1, Y: 2}
	end := math.Vec2{X: 5, Y: 7}
	if hits := c.Cast(start, end, topDownCamera{}, scene); hits != 4 {
		t.Errorf("Cast() hits = %d, want 4", hits)
	}
	if !c.Complete() {
		t.Error("Complete() = false after four hits")
	}
	if got, want := c.Corners(), castAll(start, end); got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}
	if scene.raycasts != 4 {
		t.Errorf("raycasts = %d, want 4", scene.raycasts)
	}
}

func TestCornerCasterStaleRetention(t *testing.T) {
	scene := &flatScene{}
	c := NewCornerCaster(0)

	start := math.Vec2{X: 0, Y: 0}
	end := math.Vec2{X: 10, Y: 10}
	c.Cast(start, end, topDownCamera{}, scene)
	first := c.Corners()

	// Frame 2: the end corner moves off the scene.
	moved := math.Vec2{X: 20, Y: 20}
	scene.misses = map[math.Vec2]bool{moved: true}
	if hits := c.Cast(start, moved, topDownCamera{}, scene); hits != 3 {
		t.Errorf("Cast() hits = %d, want 3", hits)
	}

	got := c.Corners()
	if got[CornerEnd] != first[CornerEnd] {
		t.Errorf("missed corner = %v, want retained %v", got[CornerEnd], first[CornerEnd])
	}
	if want := groundPoint(math.Vec2{X: 0, Y: 20}); got[CornerStartXEndY] != want {
		t.Errorf("hit corner = %v, want updated %v", got[CornerStartXEndY], want)
	}
	if !c.Complete() {
		t.Error("Complete() = false, want true with a retained corner")
	}
}

func TestCornerCasterNeverHit(t *testing.T) {
	start := math.Vec2{X: 0, Y: 0}
	end := math.Vec2{X: 10, Y: 10}
	scene := &flatScene{misses: map[math.Vec2]bool{end: true}}
	c := NewCornerCaster(0)

	c.Cast(start, end, topDownCamera{}, scene)
	if c.Complete() {
		t.Error("Complete() = true with a corner that never hit")
	}
	if got := c.Corners()[CornerEnd]; got != (math.Vec3{}) {
		t.Errorf("never-hit corner = %v, want zero", got)
	}
}

func TestCornerCasterCornersIsCopy(t *testing.T) {
	c := NewCornerCaster(0)
	c.Cast(math.Vec2{}, math.Vec2{X: 4, Y: 4}, topDownCamera{}, &flatScene{})

	corners := c.Corners()
	corners[0] = math.Vec3{X: 99}
	if c.Corners()[0] == corners[0] {
		t.Error("mutating the returned set changed the caster's buffer")
	}
}

func TestCornerCasterReset(t *testing.T) {
	c := NewCornerCaster(0)
	c.Cast(math.Vec2{}, math.Vec2{X: 4, Y: 4}, topDownCamera{}, &flatScene{})
	c.Reset()

	if c.Complete() {
		t.Error("Complete() = true after Reset")
	}
	if c.Corners() != (CornerSet{}) {
		t.Errorf("Corners() = %v after Reset, want zero", c.Corners())
	}
}
