// Package viewer runs the interactive drag-box selection window.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/config"
	"github.com/Faultbox/boxselect/internal/engine/camera"
	"github.com/Faultbox/boxselect/internal/engine/debug"
	"github.com/Faultbox/boxselect/internal/engine/input"
	"github.com/Faultbox/boxselect/internal/engine/renderer"
	"github.com/Faultbox/boxselect/internal/engine/window"
	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/scene"
	"github.com/Faultbox/boxselect/internal/selection"
	"github.com/Faultbox/boxselect/pkg/math"
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera  *camera.RTSCamera
	scene   *scene.Scene
	manager *selection.Manager

	screenshots *debug.ScreenshotCapture
	showGizmo   bool
	unsubscribe func()
}

// New creates the window and GL renderer and wires the scene into a selection manager.
func New(cfg *config.Config, sc *scene.Scene) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	rayMask, err := cfg.RayMask()
	if err != nil {
		return nil, fmt.Errorf("ray layers: %w", err)
	}
	queryMask, err := cfg.QueryMask()
	if err != nil {
		return nil, fmt.Errorf("query layers: %w", err)
	}

	v := &Viewer{
		cfg:         cfg,
		scene:       sc,
		showGizmo:   cfg.Selection.ShowGizmo,
		screenshots: debug.NewScreenshotCapture("screenshots", "boxselect"),
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	pw, ph := v.window.DrawableSize()
	v.renderer.Resize(pw, ph, width, height)

	v.input = input.New()

	v.camera = camera.NewRTSCamera(width, height)
	sc.ConfigureCamera(v.camera, cfg.Camera)

	selector := selection.NewSelector(v.camera, sc.World, rayMask, queryMask)
	selector.Height = cfg.Selection.BoxHeight
	selector.MinEdgeLength = cfg.Selection.MinEdgeLength
	v.manager = selection.NewManager(selector, sc.Registry)
	v.unsubscribe = v.manager.Subscribe(v.onSelectionChanged)

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Update camera and selection
		v.update(dt)

		// 3. Render
		v.render()

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dtMs", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			pw, ph := v.window.DrawableSize()
			v.renderer.Resize(pw, ph, event.Width, event.Height)
			v.camera.SetViewport(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_G:
				v.showGizmo = !v.showGizmo
			case sdl.SCANCODE_F12:
				v.screenshot()
			}
		}
	}
}

func (v *Viewer) update(dt float32) {
	if dx, dy := v.input.Orbit(); dx != 0 || dy != 0 {
		v.camera.HandleDrag(float32(dx), float32(dy))
	}
	if wheel := v.input.Wheel(); wheel != 0 {
		v.camera.HandleZoom(wheel)
	}

	var forward, right float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) || v.input.IsKeyDown(sdl.SCANCODE_UP) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) || v.input.IsKeyDown(sdl.SCANCODE_DOWN) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) || v.input.IsKeyDown(sdl.SCANCODE_RIGHT) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) || v.input.IsKeyDown(sdl.SCANCODE_LEFT) {
		right--
	}
	if forward != 0 || right != 0 {
		step := v.cfg.Camera.PanSpeed * dt
		v.camera.HandleMovement(forward*step, right*step)
	}

	v.manager.Update(pointer(v.input.Drag()))
}

func pointer(d input.DragState) selection.Pointer {
	return selection.Pointer{
		Position: math.Vec2{X: float32(d.X), Y: float32(d.Y)},
		Pressed:  d.Pressed,
		Released: d.Released,
		Held:     d.Held,
		Shift:    d.Shift,
		Ctrl:     d.Ctrl,
	}
}

func (v *Viewer) onSelectionChanged(c selection.Change) {
	logger.Info("selection changed",
		zap.Stringer("kind", c.Kind),
		zap.Int("affected", c.Affected),
		zap.Int("count", c.Count),
	)
	v.window.SetTitle(fmt.Sprintf("%s - %d selected", v.cfg.Window.Title, c.Count))
}

func (v *Viewer) screenshot() {
	pw, ph := v.window.DrawableSize()
	path, err := v.screenshots.CaptureFromPixels(v.renderer.ReadPixels(pw, ph), pw, ph)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.unsubscribe != nil {
		v.unsubscribe()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
