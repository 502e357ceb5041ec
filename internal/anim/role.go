// Package anim defines the animation role table and the pure functions that
// turn a rig's clip inventory into an ordered list of rendering units:
// role-to-clip matching, deterministic frame sampling, and 4-way
// directional expansion.
package anim

import "fmt"

// Role is one logical animation slot in the sprite sheet. The order of the
// role list defines the final atlas ordering.
type Role struct {
	Name        string   `yaml:"name"`
	Search      []string `yaml:"search"`      // case-insensitive clip name substrings
	Directional bool     `yaml:"directional"` // rendered at 4 yaw rotations
	FrameCount  int      `yaml:"frames"`
}

// Clip is a named animation on the source rig with an inclusive frame
// range. start == end is a valid single-pose clip.
type Clip struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// DefaultRoles returns the built-in role table: walk, idle, attack, death.
// FrameCount may exceed a clip's natural keyframe density; short clips then
// repeat frames, which is accepted content tuning.
func DefaultRoles() []Role {
	return []Role{
		{Name: "walk", Search: []string{"walk"}, Directional: true, FrameCount: 6},
		{Name: "idle", Search: []string{"idle"}, Directional: false, FrameCount: 2},
		{Name: "attack", Search: []string{"attack", "melee", "slash"}, Directional: true, FrameCount: 4},
		{Name: "death", Search: []string{"death", "die"}, Directional: false, FrameCount: 4},
	}
}

// ValidateRoles checks a role table for structural problems: empty names,
// empty search lists, or a frame count below 1.
func ValidateRoles(roles []Role) error {
	for i, role := range roles {
		if role.Name == "" {
			return fmt.Errorf("role %d: empty name", i)
		}
		if len(role.Search) == 0 {
			return fmt.Errorf("role %q: no search terms", role.Name)
		}
		if role.FrameCount < 1 {
			return fmt.Errorf("role %q: frame count %d, want >= 1", role.Name, role.FrameCount)
		}
	}
	return nil
}
