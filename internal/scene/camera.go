package scene

import (
	gomath "math"

	"github.com/Faultbox/boxselect/internal/config"
	"github.com/Faultbox/boxselect/internal/engine/camera"
	"github.com/Faultbox/boxselect/pkg/math"
)

// ConfigureCamera poses cam from the configured defaults, then applies the
// scene's own camera settings where it sets them.
func (s *Scene) ConfigureCamera(cam *camera.RTSCamera, cfg config.CameraConfig) {
	cam.Distance = cfg.Distance
	cam.Pitch = radians(cfg.Pitch)
	cam.Yaw = radians(cfg.Yaw)
	cam.FovY = radians(cfg.FovY)

	c := s.Camera
	cam.Center = math.Vec3{X: c.Center[0], Y: c.Center[1], Z: c.Center[2]}
	if c.Distance > 0 {
		cam.Distance = c.Distance
	}
	if c.Pitch > 0 {
		cam.Pitch = radians(c.Pitch)
	}
	if c.Yaw != 0 {
		cam.Yaw = radians(c.Yaw)
	}
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
