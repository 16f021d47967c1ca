// Package main is the entry point for the meshpick viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tessellab/meshpick/internal/config"
	"github.com/tessellab/meshpick/internal/logger"
	"github.com/tessellab/meshpick/internal/viewer"
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
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("meshpick starting",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("gpu_picking", cfg.Picking.UseGPU))

	v, err := viewer.New(cfg, logger.Log)
	if err != nil {
		logger.Log.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Log.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("viewer closed normally")
}
