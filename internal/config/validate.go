package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/physics"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if c.Camera.Distance <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera: distance %v must be positive", c.Camera.Distance))
	}
	if c.Camera.Pitch <= 0 || c.Camera.Pitch > 90 {
		err = multierr.Append(err, fmt.Errorf("camera: pitch %v must be in (0, 90]", c.Camera.Pitch))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov %v must be in (0, 180)", c.Camera.FovY))
	}

	if c.Selection.BoxHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("selection: box_height %v must be positive", c.Selection.BoxHeight))
	}
	if c.Selection.MinEdgeLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("selection: min_edge_length %v must be positive", c.Selection.MinEdgeLength))
	}
	if _, lerr := c.RayMask(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("selection: ray_layers: %w", lerr))
	}
	if _, lerr := c.QueryMask(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("selection: query_layers: %w", lerr))
	}
	for i, v := range c.Selection.BoxColor {
		if v < 0 || v > 1 {
			err = multierr.Append(err, fmt.Errorf("selection: box_color[%d] = %v out of [0, 1]", i, v))
		}
	}

	if !logger.ValidLevel(c.Logging.Level) {
		err = multierr.Append(err, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return err
}

// RayMask returns the layers the corner rays may hit.
func (c *Config) RayMask() (physics.Layer, error) {
	return physics.ParseLayers(c.Selection.RayLayers)
}

// QueryMask returns the layers the selection box may return.
func (c *Config) QueryMask() (physics.Layer, error) {
	return physics.ParseLayers(c.Selection.QueryLayers)
}
