package config

import (
	"flag"
	"time"
)

// Flags holds the CLI overrides for a render run. Register them on a
// subcommand's FlagSet, parse, then Apply on top of the loaded config.
type Flags struct {
	size           *int
	columns        *int
	cameraAngle    *float64
	cameraDistance *float64
	outline        *bool
	workers        *int
	frameTimeout   *time.Duration
	debug          *bool
}

// RegisterFlags attaches the render override flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		size:           fs.Int("size", 0, "Frame cell size in pixels"),
		columns:        fs.Int("columns", 0, "Columns in the sprite sheet"),
		cameraAngle:    fs.Float64("camera-angle", -1, "Camera tilt from vertical in degrees"),
		cameraDistance: fs.Float64("camera-distance", -1, "Camera distance from origin"),
		outline:        fs.Bool("outline", false, "Ask the renderer for a 1px silhouette outline"),
		workers:        fs.Int("workers", 0, "Concurrent renderer calls"),
		frameTimeout:   fs.Duration("frame-timeout", 0, "Per-frame render timeout"),
		debug:          fs.Bool("debug", false, "Enable debug logging"),
	}
}

// Apply copies set flags onto cfg. Zero values mean "not set" and leave the
// config alone, matching the defaults < file < flags priority.
func (f *Flags) Apply(cfg *Config) {
	if *f.size > 0 {
		cfg.Sheet.CellSize = *f.size
	}
	if *f.columns > 0 {
		cfg.Sheet.Columns = *f.columns
	}
	if *f.cameraAngle >= 0 {
		cfg.Camera.AngleDeg = *f.cameraAngle
	}
	if *f.cameraDistance >= 0 {
		cfg.Camera.Distance = *f.cameraDistance
	}
	if *f.outline {
		cfg.Camera.Outline = true
	}
	if *f.workers > 0 {
		cfg.Renderer.Workers = *f.workers
	}
	if *f.frameTimeout > 0 {
		cfg.Renderer.FrameTimeout = *f.frameTimeout
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
}
