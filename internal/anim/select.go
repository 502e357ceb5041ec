package anim

import (
	"sort"
	"strings"
)

// Selection pairs a role with the clip chosen for it.
type Selection struct {
	Role Role
	Clip Clip
}

// Select matches each role against the available clips, in role order.
//
// Clips are matched in lexical name order so the result does not depend on
// how the rig manifest happens to be laid out. A role matches the first
// clip whose name contains any of the role's search substrings,
// case-insensitive. Roles with no matching clip are returned in skipped;
// they contribute nothing to the sheet.
func Select(roles []Role, clips []Clip) (selected []Selection, skipped []Role) {
	ordered := make([]Clip, len(clips))
	copy(ordered, clips)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	for _, role := range roles {
		clip, ok := findClip(ordered, role.Search)
		if !ok {
			skipped = append(skipped, role)
			continue
		}
		selected = append(selected, Selection{Role: role, Clip: clip})
	}
	return selected, skipped
}

func findClip(clips []Clip, terms []string) (Clip, bool) {
	for _, clip := range clips {
		name := strings.ToLower(clip.Name)
		for _, term := range terms {
			if strings.Contains(name, strings.ToLower(term)) {
				return clip, true
			}
		}
	}
	return Clip{}, false
}
