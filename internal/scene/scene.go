// Package scene loads scene files into a collision world and a selection registry.
package scene

import (
	gomath "math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/physics"
	"github.com/Faultbox/boxselect/internal/selection"
	"github.com/Faultbox/boxselect/pkg/math"
)

// File is the on-disk scene description.
type File struct {
	Name      string       `yaml:"name"`
	Camera    CameraSpec   `yaml:"camera"`
	Ground    GroundSpec   `yaml:"ground"`
	Units     []ObjectSpec `yaml:"units"`
	Obstacles []ObjectSpec `yaml:"obstacles"`
}

// CameraSpec optionally overrides the configured camera. Angles are in degrees.
type CameraSpec struct {
	Center   [3]float32 `yaml:"center,flow"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
}

// GroundSpec describes the ground plane. Size is only used for drawing.
type GroundSpec struct {
	Height float32 `yaml:"height"`
	Size   float32 `yaml:"size"`
}

// ObjectSpec describes one collider.
type ObjectSpec struct {
	Name     string     `yaml:"name"`
	Shape    string     `yaml:"shape"` // box or sphere
	Position [3]float32 `yaml:"position,flow"`
	Size     [3]float32 `yaml:"size,flow"` // box full extents
	Radius   float32    `yaml:"radius"`
	Yaw      float32    `yaml:"yaw"` // degrees about +Y
	Layer    string     `yaml:"layer"`
	Color    [3]float32 `yaml:"color,flow"`
}

// Scene is a loaded scene.
type Scene struct {
	Name       string
	World      *physics.World
	Registry   *selection.Registry
	Ground     *physics.Body
	GroundSize float32
	Units      []*Unit
	Obstacles  []*physics.Body
	Camera     CameraSpec
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}

	logger.Info("scene loaded",
		zap.String("path", path),
		zap.String("name", sc.Name),
		zap.Int("units", len(sc.Units)),
		zap.Int("obstacles", len(sc.Obstacles)))
	return sc, nil
}

// Parse builds a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	return Build(&f)
}

// Build populates a world and registry from a scene description. Units are
// registered as selectables; obstacles only collide.
func Build(f *File) (*Scene, error) {
	sc := &Scene{
		Name:       f.Name,
		World:      physics.NewWorld(),
		Registry:   selection.NewRegistry(),
		GroundSize: f.Ground.Size,
		Camera:     f.Camera,
	}
	if sc.GroundSize <= 0 {
		sc.GroundSize = defaultGroundSize
	}

	sc.Ground = &physics.Body{
		Name:     "ground",
		Layer:    physics.LayerGround,
		Position: math.Vec3{Y: f.Ground.Height},
		Shape:    physics.Plane{},
	}
	sc.World.Add(sc.Ground)

	for i, spec := range f.Units {
		body, err := spec.body(physics.LayerUnits)
		if err != nil {
			return nil, errors.Wrapf(err, "unit %d (%q)", i, spec.Name)
		}
		sc.World.Add(body)

		u := NewUnit(body, colorOr(spec.Color, defaultUnitColor))
		sc.Registry.Register(body.ID, u)
		sc.Units = append(sc.Units, u)
	}

	for i, spec := range f.Obstacles {
		body, err := spec.body(physics.LayerDefault)
		if err != nil {
			return nil, errors.Wrapf(err, "obstacle %d (%q)", i, spec.Name)
		}
		sc.World.Add(body)
		sc.Obstacles = append(sc.Obstacles, body)
	}

	return sc, nil
}

const defaultGroundSize = 100

var defaultUnitColor = [3]float32{0.3, 0.5, 0.9}

func (s ObjectSpec) body(defaultLayer physics.Layer) (*physics.Body, error) {
	layer := defaultLayer
	if s.Layer != "" {
		l, err := physics.ParseLayer(s.Layer)
		if err != nil {
			return nil, err
		}
		layer = l
	}

	var shape physics.Shape
	switch s.Shape {
	case "", "box":
		if s.Size[0] <= 0 || s.Size[1] <= 0 || s.Size[2] <= 0 {
			return nil, errors.Errorf("box size %v must be positive", s.Size)
		}
		shape = physics.Box{HalfExtents: math.Vec3{X: s.Size[0], Y: s.Size[1], Z: s.Size[2]}.Scale(0.5)}
	case "sphere":
		if s.Radius <= 0 {
			return nil, errors.Errorf("sphere radius %v must be positive", s.Radius)
		}
		shape = physics.Sphere{Radius: s.Radius}
	default:
		return nil, errors.Errorf("unknown shape %q", s.Shape)
	}

	return &physics.Body{
		Name:     s.Name,
		Layer:    layer,
		Position: math.Vec3{X: s.Position[0], Y: s.Position[1], Z: s.Position[2]},
		Rotation: math.QuatFromAxisAngle(math.Vec3UnitY, s.Yaw*gomath.Pi/180),
		Shape:    shape,
	}, nil
}

func colorOr(c, fallback [3]float32) [3]float32 {
	if c == ([3]float32{}) {
		return fallback
	}
	return c
}
