package anim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSampleCount is returned when fewer than one frame is requested.
	ErrInvalidSampleCount = errors.New("anim: sample count must be >= 1")
	// ErrInvalidFrameRange is returned when a clip range has end < start.
	ErrInvalidFrameRange = errors.New("anim: frame range end before start")
)

// SampleFrames picks count evenly spaced frame indices from the inclusive
// range [start, end].
//
// The first index is always start; for count > 1 the last is always end.
// The sequence is non-decreasing, with repeats when the range is shorter
// than the requested density (a one-frame clip samples to count copies of
// start).
func SampleFrames(start, end, count int) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, count)
	}
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidFrameRange, start, end)
	}
	if count == 1 {
		return []int{start}, nil
	}

	step := float64(end-start) / float64(count-1)
	frames := make([]int, count)
	for i := range frames {
		frames[i] = int(math.Floor(float64(start) + float64(i)*step))
	}
	// Guard against float error pushing the final sample past the clip.
	frames[count-1] = end
	return frames, nil
}
