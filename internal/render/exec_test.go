package render

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spritemill/spritemill/pkg/raster"
)

func TestExpandArgs(t *testing.T) {
	r := &ExecRenderer{
		Rig: "art/soldier.blend",
		Args: []string{
			"-b", "{rig}",
			"--clip", "{clip}",
			"--frame", "{frame}",
			"--rotation", "{rotation}",
			"--size", "{width}x{height}",
			"--camera-angle", "{camera_angle}",
			"--camera-distance", "{camera_distance}",
			"--outline", "{outline}",
			"-o", "{output}",
		},
		Camera: CameraHints{AngleDeg: 35, Distance: 4, Outline: true},
	}

	req := Request{Clip: "Armature|Walk", Frame: 12, RotationDeg: 270, Width: 64, Height: 64}
	got := r.expandArgs(req, "/tmp/scratch/pose-1.png")

	want := []string{
		"-b", "art/soldier.blend",
		"--clip", "Armature|Walk",
		"--frame", "12",
		"--rotation", "270",
		"--size", "64x64",
		"--camera-angle", "35",
		"--camera-distance", "4",
		"--outline", "1",
		"-o", "/tmp/scratch/pose-1.png",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d args, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecRendererCopiesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on cp")
	}

	src := filepath.Join(t.TempDir(), "pose.png")
	frame := raster.New(8, 8)
	frame.Set(3, 3, 200, 100, 50, 255)
	if err := frame.WriteFile(src); err != nil {
		t.Fatal(err)
	}

	r := &ExecRenderer{
		Command:    "cp",
		Args:       []string{src, "{output}"},
		ScratchDir: t.TempDir(),
		Timeout:    10 * time.Second,
	}

	buf, err := r.Render(context.Background(), Request{Clip: "walk", Frame: 0, Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width != 8 || buf.Height != 8 {
		t.Fatalf("got %dx%d", buf.Width, buf.Height)
	}
	if r, _, _, _ := buf.At(3, 3); r != 200 {
		t.Error("rendered pixel lost through exec round trip")
	}
}

func TestExecRendererFlipY(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on cp")
	}

	src := filepath.Join(t.TempDir(), "pose.png")
	frame := raster.New(2, 2)
	frame.Set(0, 0, 0, 0, 0, 255) // top-left in the backend's file
	if err := frame.WriteFile(src); err != nil {
		t.Fatal(err)
	}

	r := &ExecRenderer{
		Command:    "cp",
		Args:       []string{src, "{output}"},
		ScratchDir: t.TempDir(),
		FlipY:      true,
	}

	buf, err := r.Render(context.Background(), Request{Clip: "walk"})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Alpha(0, 1) != 255 || buf.Alpha(0, 0) != 0 {
		t.Error("bottom-left-origin frame was not normalized")
	}
}

func TestExecRendererCommandFailure(t *testing.T) {
	r := &ExecRenderer{
		Command:    "spritemill-renderer-that-does-not-exist",
		ScratchDir: t.TempDir(),
	}
	if _, err := r.Render(context.Background(), Request{Clip: "walk"}); err == nil {
		t.Fatal("expected error for missing renderer command")
	}
}

func TestExecRendererMissingOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on true")
	}
	// Command succeeds but writes nothing; decoding must fail cleanly.
	r := &ExecRenderer{Command: "true", ScratchDir: t.TempDir()}
	if _, err := r.Render(context.Background(), Request{Clip: "walk"}); err == nil {
		t.Fatal("expected error when renderer produced no file")
	}
}
