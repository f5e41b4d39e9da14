// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Selection SelectionConfig `yaml:"selection"`
	Scene     SceneConfig     `yaml:"scene"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial camera pose. Angles are in degrees.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
	FovY     float32 `yaml:"fov"`
	PanSpeed float32 `yaml:"pan_speed"` // World units per second at distance 100
}

// SelectionConfig holds drag-box selection settings.
type SelectionConfig struct {
	BoxHeight     float32    `yaml:"box_height"`
	RayLayers     []string   `yaml:"ray_layers"`   // Layers the corner rays hit
	QueryLayers   []string   `yaml:"query_layers"` // Layers the box may select
	MinEdgeLength float32    `yaml:"min_edge_length"`
	BoxColor      [4]float32 `yaml:"box_color,flow"` // RGBA of the drag rectangle
	ShowGizmo     bool       `yaml:"show_gizmo"`     // Draw the last query box
}

// SceneConfig holds the scene to load.
type SceneConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Box Select",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Distance: 40,
			Pitch:    60,
			Yaw:      0,
			FovY:     60,
			PanSpeed: 60,
		},
		Selection: SelectionConfig{
			BoxHeight:     1,
			RayLayers:     []string{"ground"},
			QueryLayers:   []string{"units"},
			MinEdgeLength: 1e-4,
			BoxColor:      [4]float32{0.2, 0.8, 0.3, 1},
			ShowGizmo:     true,
		},
		Scene: SceneConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
