package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spritemill/spritemill/internal/atlas"
	"github.com/spritemill/spritemill/internal/config"
	"github.com/spritemill/spritemill/internal/logger"
	"github.com/spritemill/spritemill/internal/pipeline"
	"github.com/spritemill/spritemill/internal/render"
	"github.com/spritemill/spritemill/internal/rig"
)

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	output := fs.String("output", "", "Atlas output path (.png or .bmp); sidecar written alongside as .json")
	manifest := fs.String("manifest", "", "Rig manifest path (default: <output stem>.rig.yaml)")
	configPath := fs.String("config", "", "Config file path")
	overrides := config.RegisterFlags(fs)
	fs.Parse(args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: spritemill render -output <atlas.png> [options]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("%v", err)
	}
	overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fatal("%v", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal("initializing logger: %v", err)
	}
	defer logger.Sync()

	manifestPath := *manifest
	if manifestPath == "" {
		manifestPath = rig.DefaultPath(*output)
	}
	m, err := rig.Load(manifestPath)
	if err != nil {
		fatal("%v", err)
	}

	scratch, err := pipeline.NewScratch()
	if err != nil {
		fatal("%v", err)
	}

	renderer := &render.ExecRenderer{
		Command:    cfg.Renderer.Command,
		Args:       cfg.Renderer.Args,
		Rig:        m.RigPath(manifestPath),
		ScratchDir: scratch,
		Timeout:    cfg.Renderer.FrameTimeout,
		FlipY:      cfg.Renderer.FlipY,
		Camera: render.CameraHints{
			AngleDeg: cfg.Camera.AngleDeg,
			Distance: cfg.Camera.Distance,
			Outline:  cfg.Camera.Outline,
		},
	}

	// Interrupt aborts the run; the pipeline publishes atomically, so no
	// partial files appear at the output path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, pipeline.Options{
		OutputPath: *output,
		Layout:     atlas.Layout{CellSize: cfg.Sheet.CellSize, Columns: cfg.Sheet.Columns},
		Roles:      cfg.RoleTable(),
		Clips:      m.Clips,
		Renderer:   renderer,
		Workers:    cfg.Renderer.Workers,
		ScratchDir: scratch,
	})
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Written: %s\n", result.AtlasPath)
	fmt.Printf("Written: %s\n", result.MetadataPath)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(os.Stderr, "\nCompleted with %d warning(s):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "  - %s\n", w)
		}
	}
}
