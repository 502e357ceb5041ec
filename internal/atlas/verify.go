package atlas

import "fmt"

// Verify checks a sidecar record against the atlas image dimensions and
// the layout invariants the pipeline guarantees: grid geometry matches the
// image, every range is contiguous starting at zero, and no range runs
// past the grid. Returns one error per problem found.
func (m Metadata) Verify(imgW, imgH int) []error {
	var problems []error

	if m.FrameSize[0] < 1 || m.FrameSize[1] < 1 {
		problems = append(problems, fmt.Errorf("frame size %dx%d is not positive", m.FrameSize[0], m.FrameSize[1]))
	}
	if m.Columns < 1 {
		problems = append(problems, fmt.Errorf("columns %d, want >= 1", m.Columns))
	}
	if m.Rows < 1 {
		problems = append(problems, fmt.Errorf("rows %d, want >= 1", m.Rows))
	}
	if len(problems) > 0 {
		return problems
	}

	if wantW := m.Columns * m.FrameSize[0]; imgW != wantW {
		problems = append(problems, fmt.Errorf("image width %d, metadata implies %d", imgW, wantW))
	}
	if wantH := m.Rows * m.FrameSize[1]; imgH != wantH {
		problems = append(problems, fmt.Errorf("image height %d, metadata implies %d", imgH, wantH))
	}

	if len(m.Animations) == 0 {
		problems = append(problems, fmt.Errorf("no animations"))
		return problems
	}

	cells := m.Columns * m.Rows
	next := 0
	for _, entry := range m.Animations {
		if entry.Count < 1 {
			problems = append(problems, fmt.Errorf("animation %q: count %d, want >= 1", entry.Key, entry.Count))
		}
		if entry.Start != next {
			problems = append(problems, fmt.Errorf("animation %q: starts at %d, want %d (ranges must be contiguous)",
				entry.Key, entry.Start, next))
		}
		if entry.Start+entry.Count > cells {
			problems = append(problems, fmt.Errorf("animation %q: range [%d, %d) exceeds %d grid cells",
				entry.Key, entry.Start, entry.Start+entry.Count, cells))
		}
		next = entry.Start + entry.Count
	}
	return problems
}
