// Command selectprobe runs one drag-box selection against a scene file without
// opening a window and prints what was selected.
//
// Usage:
//
//	selectprobe -scene scenes/demo.yaml -from 100,500 -to 400,200 [-ctrl] [-dump]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/Faultbox/boxselect/internal/config"
	"github.com/Faultbox/boxselect/internal/engine/camera"
	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/scene"
	"github.com/Faultbox/boxselect/internal/selection"
	"github.com/Faultbox/boxselect/pkg/math"
)

var (
	flagFrom = flag.String("from", "", "Drag start in window pixels, as x,y")
	flagTo   = flag.String("to", "", "Drag end in window pixels, as x,y")
	flagCtrl = flag.Bool("ctrl", false, "Select every unit first, then drag with Ctrl held to deselect")
	flagDump = flag.Bool("dump", false, "Dump the query box and captured bodies")
)

type probe struct {
	from, to math.Vec2
	ctrl     bool
	dump     bool
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Quiet unless -debug
	if cfg.Logging.Level == "debug" {
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	} else {
		logger.InitNop()
	}

	p := probe{ctrl: *flagCtrl, dump: *flagDump}
	if p.from, err = parsePoint(*flagFrom); err != nil {
		fmt.Fprintf(os.Stderr, "-from: %v\n", err)
		os.Exit(2)
	}
	if p.to, err = parsePoint(*flagTo); err != nil {
		fmt.Fprintf(os.Stderr, "-to: %v\n", err)
		os.Exit(2)
	}

	if err := run(os.Stdout, cfg, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parsePoint(s string) (math.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math.Vec2{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("y: %w", err)
	}
	return math.Vec2{X: float32(x), Y: float32(y)}, nil
}

func run(w io.Writer, cfg *config.Config, p probe) error {
	if cfg.Scene.Path == "" {
		return fmt.Errorf("no scene given; use -scene")
	}
	sc, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}

	rayMask, err := cfg.RayMask()
	if err != nil {
		return err
	}
	queryMask, err := cfg.QueryMask()
	if err != nil {
		return err
	}

	cam := camera.NewRTSCamera(cfg.Window.Width, cfg.Window.Height)
	sc.ConfigureCamera(cam, cfg.Camera)

	selector := selection.NewSelector(cam, sc.World, rayMask, queryMask)
	selector.Height = cfg.Selection.BoxHeight
	selector.MinEdgeLength = cfg.Selection.MinEdgeLength
	manager := selection.NewManager(selector, sc.Registry)

	if p.ctrl {
		all := make([]selection.Selectable, len(sc.Units))
		for i, u := range sc.Units {
			all[i] = u
		}
		manager.Select(all)
	}

	manager.Update(selection.Pointer{Position: p.from, Pressed: true, Held: true, Ctrl: p.ctrl})
	manager.Update(selection.Pointer{Position: p.to, Held: true, Ctrl: p.ctrl})
	manager.Update(selection.Pointer{Position: p.to, Released: true, Ctrl: p.ctrl})

	frame, ok := manager.LastFrame()
	if !ok {
		fmt.Fprintln(w, "no box: a corner missed the scene or the drag has no area")
	} else {
		c := frame.Center
		fmt.Fprintf(w, "box center (%.3f, %.3f, %.3f) size %.3f x %.3f x %.3f\n",
			c.X, c.Y, c.Z, frame.HalfExtents.X*2, frame.HalfExtents.Y*2, frame.HalfExtents.Z*2)
	}

	selected := manager.Selected()
	fmt.Fprintf(w, "selected %d:\n", len(selected))
	for _, s := range selected {
		fmt.Fprintf(w, "  %s\n", s.(*scene.Unit).Name())
	}

	if p.dump && ok {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		fmt.Fprint(w, dumper.Sdump(frame))
	}
	return nil
}
