// Package config handles tool configuration: built-in defaults, an optional
// YAML file, and CLI flag overrides, in that priority order.
package config

import (
	"fmt"
	"time"

	"github.com/spritemill/spritemill/internal/anim"
)

// Config holds all settings for a sprite sheet run.
type Config struct {
	Sheet    SheetConfig    `yaml:"sheet"`
	Camera   CameraConfig   `yaml:"camera"`
	Renderer RendererConfig `yaml:"renderer"`
	Roles    []anim.Role    `yaml:"roles"` // empty means the built-in table
	Logging  LoggingConfig  `yaml:"logging"`
}

// SheetConfig holds atlas grid geometry.
type SheetConfig struct {
	CellSize int `yaml:"cell_size"` // pixel width/height of one square cell
	Columns  int `yaml:"columns"`
}

// CameraConfig holds hints forwarded to the pose renderer. The compositor
// never reads them.
type CameraConfig struct {
	AngleDeg float64 `yaml:"angle_deg"` // tilt from vertical
	Distance float64 `yaml:"distance"`
	Outline  bool    `yaml:"outline"` // silhouette outline
}

// RendererConfig describes the external pose renderer invocation.
type RendererConfig struct {
	Command      string        `yaml:"command"`
	Args         []string      `yaml:"args"` // placeholder templates, see internal/render
	Workers      int           `yaml:"workers"`
	FrameTimeout time.Duration `yaml:"frame_timeout"`
	FlipY        bool          `yaml:"flip_y"` // backend emits bottom-left-origin frames
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The renderer
// template matches a headless Blender pose script; any command accepting
// the same placeholders works.
func Default() *Config {
	return &Config{
		Sheet: SheetConfig{
			CellSize: 64,
			Columns:  8,
		},
		Camera: CameraConfig{
			AngleDeg: 35,
			Distance: 4.0,
			Outline:  false,
		},
		Renderer: RendererConfig{
			Command: "blender",
			Args: []string{
				"-b", "{rig}",
				"-P", "render_pose.py",
				"--",
				"--clip", "{clip}",
				"--frame", "{frame}",
				"--rotation", "{rotation}",
				"--size", "{width}",
				"--camera-angle", "{camera_angle}",
				"--camera-distance", "{camera_distance}",
				"--outline", "{outline}",
				"--output", "{output}",
			},
			Workers:      4,
			FrameTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// RoleTable returns the configured role table, falling back to the
// built-in one when the file defines none.
func (c *Config) RoleTable() []anim.Role {
	if len(c.Roles) == 0 {
		return anim.DefaultRoles()
	}
	return c.Roles
}

// Validate rejects structurally invalid configuration before any work
// starts.
func (c *Config) Validate() error {
	if c.Sheet.CellSize < 1 {
		return fmt.Errorf("config: cell size %d, want >= 1", c.Sheet.CellSize)
	}
	if c.Sheet.Columns < 1 {
		return fmt.Errorf("config: columns %d, want >= 1", c.Sheet.Columns)
	}
	if c.Renderer.Workers < 1 {
		return fmt.Errorf("config: workers %d, want >= 1", c.Renderer.Workers)
	}
	if c.Renderer.Command == "" {
		return fmt.Errorf("config: renderer command is empty")
	}
	if err := anim.ValidateRoles(c.RoleTable()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
