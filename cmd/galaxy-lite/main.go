// Package main is the panel-less galaxy viewer.
//
// Controls: drag to orbit, wheel to zoom, R reseeds, Space pauses the spin,
// +/- change the star count, F12 saves a screenshot and Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/logger"
	"github.com/Faultbox/galaxy/internal/viewer"
)

var (
	flagShot   = flag.String("shot", "", "Render to a hidden window, save the image here (.png or .bmp) and exit")
	flagFrames = flag.Int("frames", 60, "Frames to render before taking --shot")
)

func main() {
	// SDL and OpenGL must stay on the main thread.
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Galaxy (lite) ===")

	v, err := viewer.New(cfg, viewer.Options{
		Title:      "Galaxy",
		ShotPath:   *flagShot,
		ShotFrames: *flagFrames,
	})
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
