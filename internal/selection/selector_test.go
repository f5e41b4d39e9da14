package selection

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/boxselect/internal/engine/camera"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/pkg/math"
)

func TestQueryVolumePassesFrame(t *testing.T) {
	scene := &flatScene{result: []*physics.Body{{ID: 3}}}
	frame := BoxFrame{
		Center:      math.Vec3{X: 1, Y: 2, Z: 3},
		HalfExtents: math.Vec3{X: 4, Y: 5, Z: 0.5},
		Rotation:    math.QuatFromAxisAngle(math.Vec3UnitY, 0.3),
	}

	got := QueryVolume(scene, frame, physics.LayerUnits)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("QueryVolume() = %v, want body 3", got)
	}
	if len(scene.overlaps) != 1 {
		t.Fatalf("overlap calls = %d, want 1", len(scene.overlaps))
	}
	call := scene.overlaps[0]
	if call.center != frame.Center || call.half != frame.HalfExtents || call.rot != frame.Rotation {
		t.Errorf("OverlapBox(%v, %v, %v), want frame values", call.center, call.half, call.rot)
	}
	if call.mask != physics.LayerUnits {
		t.Errorf("mask = %v, want %v", call.mask, physics.LayerUnits)
	}
}

func TestSelectorCaptureIncomplete(t *testing.T) {
	end := math.Vec2{X: 10, Y: 10}
	scene := &flatScene{misses: map[math.Vec2]bool{end: true}}
	s := NewSelector(topDownCamera{}, scene, physics.LayerAll, physics.LayerAll)

	got, err := s.Capture(math.Vec2{}, end)
	if !errors.Is(err, ErrIncompleteCorners) {
		t.Errorf("Capture() error = %v, want ErrIncompleteCorners", err)
	}
	if len(got.Bodies) != 0 {
		t.Errorf("Capture() bodies = %v, want none", got.Bodies)
	}
	if len(scene.overlaps) != 0 {
		t.Errorf("overlap calls = %d, want 0", len(scene.overlaps))
	}
}

func TestSelectorCaptureUsesRetainedCorner(t *testing.T) {
	scene := &flatScene{}
	s := NewSelector(topDownCamera{}, scene, physics.LayerAll, physics.LayerAll)

	start := math.Vec2{X: 0, Y: 0}
	end := math.Vec2{X: 10, Y: 10}
	s.Track(start, end)

	scene.misses = map[math.Vec2]bool{end: true}
	got, err := s.Capture(start, end)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if !got.Frame.Center.ApproxEqual(math.Vec3{X: 5, Z: 5}, 1e-5) {
		t.Errorf("Center = %v, want (5, 0, 5)", got.Frame.Center)
	}
}

func TestSelectorCaptureDegenerate(t *testing.T) {
	scene := &flatScene{}
	s := NewSelector(topDownCamera{}, scene, physics.LayerAll, physics.LayerAll)

	p := math.Vec2{X: 4, Y: 4}
	if _, err := s.Capture(p, p); !errors.Is(err, ErrDegenerateFrame) {
		t.Errorf("Capture() error = %v, want ErrDegenerateFrame", err)
	}
	if len(scene.overlaps) != 0 {
		t.Errorf("overlap calls = %d, want 0", len(scene.overlaps))
	}
}

func TestSelectorHeight(t *testing.T) {
	scene := &flatScene{}
	s := NewSelector(topDownCamera{}, scene, physics.LayerAll, physics.LayerUnits)
	s.Height = 3

	got, err := s.Capture(math.Vec2{X: 0, Y: 0}, math.Vec2{X: 6, Y: 2})
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if want := (math.Vec3{X: 3, Y: 1, Z: 1.5}); !got.Frame.HalfExtents.ApproxEqual(want, 1e-5) {
		t.Errorf("HalfExtents = %v, want %v", got.Frame.HalfExtents, want)
	}
	if scene.overlaps[0].mask != physics.LayerUnits {
		t.Errorf("query mask = %v, want units", scene.overlaps[0].mask)
	}
}

// End-to-end: a perspective camera looking straight down at a ground plane.
func TestSelectorTopDownDrag(t *testing.T) {
	const (
		width    = 800
		height   = 600
		distance = 20
	)

	cam := camera.NewRTSCamera(width, height)
	cam.Pitch = float32(gomath.Pi / 2)
	cam.Yaw = 0
	cam.Distance = distance

	// Screen x maps to world +X and screen y to world +Z.
	tanHalf := float32(gomath.Tan(float64(cam.FovY) / 2))
	toWorld := func(p math.Vec2) math.Vec3 {
		x := (p.X/width*2 - 1) * tanHalf * (width / float32(height)) * distance
		z := (p.Y/height*2 - 1) * tanHalf * distance
		return math.Vec3{X: x, Z: z}
	}

	world := physics.NewWorld()
	world.Add(&physics.Body{Name: "ground", Layer: physics.LayerGround, Shape: physics.Plane{}})

	unit := func(name string, x, z float32) physics.BodyID {
		return world.Add(&physics.Body{
			Name:     name,
			Layer:    physics.LayerUnits,
			Position: math.Vec3{X: x, Y: 0.5, Z: z},
			Shape:    physics.Box{HalfExtents: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
		})
	}
	inside := make(map[physics.BodyID]bool)
	inside[unit("center", -5, 2)] = true
	inside[unit("near corner", -10, -3)] = true
	inside[unit("far corner", -1, 7)] = true
	unit("right", 3, 0)
	unit("below", -5, 10)
	unit("above", -5, -6)
	world.Add(&physics.Body{
		Name:     "sphere outside",
		Layer:    physics.LayerUnits,
		Position: math.Vec3{X: -20, Y: 0.5},
		Shape:    physics.Sphere{Radius: 0.5},
	})

	s := NewSelector(cam, world, physics.LayerGround, physics.LayerUnits)
	start := math.Vec2{X: 100, Y: 500}
	end := math.Vec2{X: 400, Y: 200}
	s.Track(start, end)

	got, err := s.Capture(start, end)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	lo := toWorld(math.Vec2{X: 100, Y: 200})
	hi := toWorld(math.Vec2{X: 400, Y: 500})
	frame := got.Frame

	const tol = 0.05
	if want := lo.Add(hi).Scale(0.5); !frame.Center.ApproxEqual(want, tol) {
		t.Errorf("Center = %v, want %v", frame.Center, want)
	}
	wantHalf := math.Vec3{X: (hi.X - lo.X) / 2, Y: (hi.Z - lo.Z) / 2, Z: DefaultBoxHeight / 2}
	if !frame.HalfExtents.ApproxEqual(wantHalf, tol) {
		t.Errorf("HalfExtents = %v, want %v", frame.HalfExtents, wantHalf)
	}
	axes := frame.Axes()
	wantAxes := [3]math.Vec3{math.Vec3UnitX, math.Vec3UnitZ, {Y: -1}}
	for i := range axes {
		if !axes[i].ApproxEqual(wantAxes[i], 0.01) {
			t.Errorf("axis %d = %v, want %v", i, axes[i], wantAxes[i])
		}
	}

	if len(got.Bodies) != len(inside) {
		t.Errorf("captured %d bodies, want %d", len(got.Bodies), len(inside))
	}
	for _, b := range got.Bodies {
		if !inside[b.ID] {
			t.Errorf("captured %q, which is outside the footprint", b.Name)
		}
	}
}
