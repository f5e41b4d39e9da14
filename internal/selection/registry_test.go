package selection

import (
	"testing"

	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	u := &testUnit{name: "a"}
	r.Register(4, u)

	if got, ok := r.Lookup(4); !ok || got != u {
		t.Errorf("Lookup(4) = %v, %v", got, ok)
	}
	if _, ok := r.Lookup(5); ok {
		t.Error("Lookup(5) found an unregistered body")
	}

	r.Unregister(4)
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Unregister, want 0", r.Len())
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	a := &testUnit{name: "a"}
	b := &testUnit{name: "b"}
	r.Register(1, a)
	r.Register(2, b)
	r.Register(3, a) // second collider of a

	bodies := []*physics.Body{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 9}}
	got := r.Resolve(bodies)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Resolve() = %v, want [a b]", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := NewScreenRect(math.Vec2{X: 50, Y: 10}, math.Vec2{X: 20, Y: 30})

	if want := (math.Vec2{X: 20, Y: 10}); r.Min != want {
		t.Errorf("Min = %v, want %v", r.Min, want)
	}
	if want := (math.Vec2{X: 30, Y: 20}); r.Size != want {
		t.Errorf("Size = %v, want %v", r.Size, want)
	}
	if want := (math.Vec2{X: 50, Y: 30}); r.Max() != want {
		t.Errorf("Max() = %v, want %v", r.Max(), want)
	}
	if want := (math.Vec2{X: 35, Y: 20}); r.Center() != want {
		t.Errorf("Center() = %v, want %v", r.Center(), want)
	}
	if r.Empty() {
		t.Error("Empty() = true")
	}
	if !NewScreenRect(math.Vec2{X: 5, Y: 5}, math.Vec2{X: 5, Y: 9}).Empty() {
		t.Error("zero-width rect not Empty()")
	}
}
