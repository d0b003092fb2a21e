// Package main is the entry point for the satellite demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/app"
	"github.com/Faultbox/satellite/internal/config"
	"github.com/Faultbox/satellite/internal/engine/input"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Satellite ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("satellite failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	if cfg.Run.Headless {
		w, err := sim.New(cfg, input.NewSnapshot())
		if err != nil {
			return fmt.Errorf("build world: %w", err)
		}
		sim.RunHeadless(w, cfg.Run.Frames)
		return nil
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}()

	return a.Run()
}
