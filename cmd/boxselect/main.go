// Package main is the entry point for the drag-box selection viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/config"
	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/internal/scene"
	"github.com/Faultbox/boxselect/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	opts := logger.Options{Level: cfg.Logging.Level, Console: true, JSON: cfg.Logging.JSON}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Box Select ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Scene.Path == "" {
		logger.Error("no scene given; use -scene or scene.path in the config file")
		os.Exit(1)
	}
	sc, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, sc)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
