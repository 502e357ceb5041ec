package anim

import "fmt"

// Unit is one rendering unit: a (role, facing) pair with its sampled frame
// list. Directional roles expand to four units; others to one.
type Unit struct {
	Role        Role
	Clip        Clip
	Direction   Direction // None for non-directional roles
	RotationDeg float64
	Frames      []int // clip frame indices, shared across a role's facings
}

// Key returns the metadata key for the unit: the role name, suffixed with
// the facing for directional roles ("walk_down").
func (u Unit) Key() string {
	if u.Direction == None {
		return u.Role.Name
	}
	return u.Role.Name + "_" + u.Direction.String()
}

// Expand turns selections into rendering units in emission order.
//
// Frames are sampled once per role and shared by all four facings, so every
// facing of a directional role renders identical clip frames. An invalid
// role or clip range fails the whole expansion; those are configuration
// errors, not per-frame conditions.
func Expand(selections []Selection) ([]Unit, error) {
	var units []Unit
	for _, sel := range selections {
		frames, err := SampleFrames(sel.Clip.Start, sel.Clip.End, sel.Role.FrameCount)
		if err != nil {
			return nil, fmt.Errorf("sampling role %q from clip %q: %w", sel.Role.Name, sel.Clip.Name, err)
		}

		if !sel.Role.Directional {
			units = append(units, Unit{
				Role:      sel.Role,
				Clip:      sel.Clip,
				Direction: None,
				Frames:    frames,
			})
			continue
		}
		for _, dir := range Directions {
			units = append(units, Unit{
				Role:        sel.Role,
				Clip:        sel.Clip,
				Direction:   dir,
				RotationDeg: dir.RotationDeg(),
				Frames:      frames,
			})
		}
	}
	return units, nil
}
