// Package render defines the frame renderer capability consumed by the
// pipeline and an implementation that delegates to an external pose
// renderer process.
//
// The pipeline never rasterizes anything itself. It issues independent pose
// requests against a renderer already configured for one character and
// consumes the returned RGBA buffers.
package render

import (
	"context"

	"github.com/spritemill/spritemill/pkg/raster"
)

// Request describes one pose to rasterize.
type Request struct {
	Clip        string  // source clip name on the rig
	Frame       int     // clip frame index
	RotationDeg float64 // clockwise yaw applied to the rig
	Width       int     // output size in pixels
	Height      int
}

// Renderer rasterizes a single pose. Implementations must be safe for
// concurrent calls; each call depends only on its own request.
//
// The returned buffer uses a top-left origin. Implementations wrapping
// bottom-left-origin backends normalize before returning.
type Renderer interface {
	Render(ctx context.Context, req Request) (*raster.Buffer, error)
}

// Func adapts a function to the Renderer interface.
type Func func(ctx context.Context, req Request) (*raster.Buffer, error)

// Render calls f.
func (f Func) Render(ctx context.Context, req Request) (*raster.Buffer, error) {
	return f(ctx, req)
}
