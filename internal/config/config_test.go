package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spritemill/spritemill/internal/anim"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sheet.CellSize != 64 {
		t.Errorf("expected cell size 64, got %d", cfg.Sheet.CellSize)
	}
	if cfg.Sheet.Columns != 8 {
		t.Errorf("expected 8 columns, got %d", cfg.Sheet.Columns)
	}
	if cfg.Camera.AngleDeg != 35 {
		t.Errorf("expected camera angle 35, got %v", cfg.Camera.AngleDeg)
	}
	if cfg.Camera.Distance != 4.0 {
		t.Errorf("expected camera distance 4.0, got %v", cfg.Camera.Distance)
	}
	if cfg.Camera.Outline {
		t.Error("expected outline off by default")
	}
	if cfg.Renderer.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Renderer.Workers)
	}
	if cfg.Renderer.FrameTimeout != 30*time.Second {
		t.Errorf("expected 30s frame timeout, got %v", cfg.Renderer.FrameTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	// No roles configured: the built-in table applies.
	roles := cfg.RoleTable()
	if len(roles) != 4 || roles[0].Name != "walk" {
		t.Errorf("unexpected default role table: %+v", roles)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spritemill.yaml")
	content := `sheet:
  cell_size: 32
  columns: 16
renderer:
  workers: 2
  frame_timeout: 5s
  flip_y: true
roles:
  - name: spin
    search: ["spin", "turn"]
    directional: true
    frames: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Sheet.CellSize != 32 || cfg.Sheet.Columns != 16 {
		t.Errorf("sheet overrides lost: %+v", cfg.Sheet)
	}
	if cfg.Renderer.Workers != 2 || cfg.Renderer.FrameTimeout != 5*time.Second || !cfg.Renderer.FlipY {
		t.Errorf("renderer overrides lost: %+v", cfg.Renderer)
	}
	// Untouched fields keep defaults.
	if cfg.Camera.AngleDeg != 35 {
		t.Errorf("camera default lost: %v", cfg.Camera.AngleDeg)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level %q", cfg.Logging.Level)
	}

	roles := cfg.RoleTable()
	if len(roles) != 1 || roles[0].Name != "spin" || !roles[0].Directional || roles[0].FrameCount != 8 {
		t.Errorf("role table override lost: %+v", roles)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	err := fs.Parse([]string{"-size", "128", "-columns", "4", "-outline", "-workers", "1", "-frame-timeout", "90s", "-debug"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	flags.Apply(cfg)

	if cfg.Sheet.CellSize != 128 || cfg.Sheet.Columns != 4 {
		t.Errorf("sheet flags not applied: %+v", cfg.Sheet)
	}
	if !cfg.Camera.Outline {
		t.Error("outline flag not applied")
	}
	if cfg.Renderer.Workers != 1 || cfg.Renderer.FrameTimeout != 90*time.Second {
		t.Errorf("renderer flags not applied: %+v", cfg.Renderer)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug flag not applied: %q", cfg.Logging.Level)
	}
}

func TestFlagsUnsetLeaveConfigAlone(t *testing.T) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Sheet.CellSize = 48
	flags.Apply(cfg)

	if cfg.Sheet.CellSize != 48 {
		t.Errorf("unset flag clobbered config: %d", cfg.Sheet.CellSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.Sheet.CellSize = 0 }},
		{"zero columns", func(c *Config) { c.Sheet.Columns = 0 }},
		{"zero workers", func(c *Config) { c.Renderer.Workers = 0 }},
		{"empty command", func(c *Config) { c.Renderer.Command = "" }},
		{"bad role", func(c *Config) {
			c.Roles = []anim.Role{{Name: "walk", Search: []string{"walk"}, FrameCount: 0}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
