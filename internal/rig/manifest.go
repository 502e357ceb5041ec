// Package rig loads rig manifests: the clip inventory of a character rig.
//
// The renderer owns the rig file itself; the pipeline only needs to know
// which clips exist and their frame ranges, which the manifest describes in
// a YAML sidecar next to the rig.
package rig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spritemill/spritemill/internal/anim"
)

// ErrNoClips is returned for a manifest that lists no clips; there is
// nothing renderable on such a rig.
var ErrNoClips = errors.New("rig: manifest lists no clips")

// Manifest describes one rig's renderable content.
type Manifest struct {
	Rig   string      `yaml:"rig"` // rig file path, relative to the manifest
	Clips []anim.Clip `yaml:"clips"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rig manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing rig manifest %s: %w", path, err)
	}
	if len(m.Clips) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoClips, path)
	}
	for i, clip := range m.Clips {
		if clip.Name == "" {
			return nil, fmt.Errorf("rig manifest %s: clip %d has no name", path, i)
		}
		if clip.End < clip.Start {
			return nil, fmt.Errorf("rig manifest %s: clip %q range [%d, %d] is inverted",
				path, clip.Name, clip.Start, clip.End)
		}
	}
	return &m, nil
}

// RigPath resolves the manifest's rig file relative to the manifest's own
// directory. Absolute rig paths are returned unchanged.
func (m *Manifest) RigPath(manifestPath string) string {
	if m.Rig == "" || filepath.IsAbs(m.Rig) {
		return m.Rig
	}
	return filepath.Join(filepath.Dir(manifestPath), m.Rig)
}

// DefaultPath derives the conventional manifest location for an atlas
// output path: the same stem with a .rig.yaml extension.
func DefaultPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".rig.yaml"
}
