package anim

import (
	"errors"
	"reflect"
	"testing"
)

func TestSampleFrames(t *testing.T) {
	tests := []struct {
		name          string
		start, end, n int
		want          []int
	}{
		{"even spread", 0, 10, 6, []int{0, 2, 4, 6, 8, 10}},
		{"single pose clip", 5, 5, 3, []int{5, 5, 5}},
		{"one frame", 0, 10, 1, []int{0}},
		{"two frames", 1, 24, 2, []int{1, 24}},
		{"short clip repeats", 0, 2, 6, []int{0, 0, 0, 1, 1, 2}},
		{"dense clip", 1, 100, 4, []int{1, 34, 67, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleFrames(tt.start, tt.end, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleFramesGuarantees(t *testing.T) {
	for start := 0; start <= 5; start++ {
		for end := start; end <= start+30; end += 3 {
			for count := 1; count <= 12; count++ {
				frames, err := SampleFrames(start, end, count)
				if err != nil {
					t.Fatalf("sample(%d,%d,%d): %v", start, end, count, err)
				}
				if len(frames) != count {
					t.Fatalf("sample(%d,%d,%d): len %d", start, end, count, len(frames))
				}
				if frames[0] != start {
					t.Errorf("sample(%d,%d,%d): first %d", start, end, count, frames[0])
				}
				if count > 1 && frames[count-1] != end {
					t.Errorf("sample(%d,%d,%d): last %d", start, end, count, frames[count-1])
				}
				for i := 1; i < count; i++ {
					if frames[i] < frames[i-1] {
						t.Errorf("sample(%d,%d,%d): decreasing at %d: %v", start, end, count, i, frames)
					}
				}
			}
		}
	}
}

func TestSampleFramesInvalidArgs(t *testing.T) {
	if _, err := SampleFrames(0, 10, 0); !errors.Is(err, ErrInvalidSampleCount) {
		t.Errorf("count 0: got %v", err)
	}
	if _, err := SampleFrames(0, 10, -1); !errors.Is(err, ErrInvalidSampleCount) {
		t.Errorf("count -1: got %v", err)
	}
	if _, err := SampleFrames(10, 9, 2); !errors.Is(err, ErrInvalidFrameRange) {
		t.Errorf("inverted range: got %v", err)
	}
}
