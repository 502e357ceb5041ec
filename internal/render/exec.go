package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spritemill/spritemill/pkg/raster"
)

// CameraHints are renderer-side parameters passed through to the pose
// renderer untouched; the compositor never reads them.
type CameraHints struct {
	AngleDeg float64
	Distance float64
	Outline  bool
}

// ExecRenderer rasterizes poses by running an external command once per
// request. Argument templates may reference these placeholders:
//
//	{rig} {clip} {frame} {rotation} {width} {height} {output}
//	{camera_angle} {camera_distance} {outline}
//
// The command must write a PNG to {output}; ExecRenderer decodes it and
// removes the file. Each request renders into a unique file under
// ScratchDir, so concurrent calls never collide.
type ExecRenderer struct {
	Command    string
	Args       []string // argument templates, expanded per request
	Rig        string   // rig file path, substituted for {rig}
	ScratchDir string
	Timeout    time.Duration // per-call limit; 0 means no limit
	FlipY      bool          // set when the backend emits bottom-left-origin frames
	Camera     CameraHints
}

// Render runs one pose render, honoring the per-call timeout.
func (r *ExecRenderer) Render(ctx context.Context, req Request) (*raster.Buffer, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	outPath := filepath.Join(r.ScratchDir, "pose-"+uuid.NewString()+".png")
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, r.Command, r.expandArgs(req, outPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("rendering %s frame %d: %w", req.Clip, req.Frame, ctx.Err())
		}
		return nil, fmt.Errorf("rendering %s frame %d: %w (stderr: %s)",
			req.Clip, req.Frame, err, strings.TrimSpace(stderr.String()))
	}

	buf, err := raster.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("rendering %s frame %d: %w", req.Clip, req.Frame, err)
	}
	if r.FlipY {
		buf.FlipVertical()
	}
	return buf, nil
}

// expandArgs substitutes request values into the argument templates.
func (r *ExecRenderer) expandArgs(req Request, outPath string) []string {
	outline := "0"
	if r.Camera.Outline {
		outline = "1"
	}
	rep := strings.NewReplacer(
		"{rig}", r.Rig,
		"{clip}", req.Clip,
		"{frame}", strconv.Itoa(req.Frame),
		"{rotation}", strconv.FormatFloat(req.RotationDeg, 'f', -1, 64),
		"{width}", strconv.Itoa(req.Width),
		"{height}", strconv.Itoa(req.Height),
		"{output}", outPath,
		"{camera_angle}", strconv.FormatFloat(r.Camera.AngleDeg, 'f', -1, 64),
		"{camera_distance}", strconv.FormatFloat(r.Camera.Distance, 'f', -1, 64),
		"{outline}", outline,
	)

	args := make([]string, len(r.Args))
	for i, tmpl := range r.Args {
		args[i] = rep.Replace(tmpl)
	}
	return args
}
