// Package pipeline assembles one character's sprite atlas: role selection,
// frame sampling, directional expansion, concurrent pose rendering, grid
// compositing, and sidecar emission, published atomically.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spritemill/spritemill/internal/anim"
	"github.com/spritemill/spritemill/internal/atlas"
	"github.com/spritemill/spritemill/internal/logger"
	"github.com/spritemill/spritemill/internal/render"
	"github.com/spritemill/spritemill/pkg/raster"
)

// ErrNothingToRender is returned when no animation role matched any clip;
// an empty sheet is a structural failure, not a degraded run.
var ErrNothingToRender = errors.New("pipeline: no animation role matched any clip")

// Options configures one pipeline invocation. Everything is passed
// explicitly; the pipeline reads no ambient state, so identical options
// and clip data always produce identical outputs.
type Options struct {
	OutputPath string        // atlas image path; sidecar derived with a .json extension
	Layout     atlas.Layout  // cell size and column count
	Roles      []anim.Role   // role table in sheet order
	Clips      []anim.Clip   // the rig's clip inventory
	Renderer   render.Renderer
	Workers    int    // concurrent renderer calls
	ScratchDir string // optional; removed best-effort when the run ends
}

func (o *Options) validate() error {
	if o.OutputPath == "" {
		return fmt.Errorf("pipeline: output path is empty")
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Workers < 1 {
		return fmt.Errorf("pipeline: workers %d, want >= 1", o.Workers)
	}
	if o.Renderer == nil {
		return fmt.Errorf("pipeline: no renderer configured")
	}
	return anim.ValidateRoles(o.Roles)
}

// Result reports what a successful (possibly degraded) run produced.
type Result struct {
	AtlasPath    string
	MetadataPath string
	Metadata     atlas.Metadata
	TotalFrames  int
	Warnings     []string // skipped roles and degraded frame slots
}

// Run executes the full pipeline. Structural failures (nothing matched,
// invalid options, write errors, cancellation) return an error and leave
// no file at the final output paths. Per-role and per-frame failures
// degrade to warnings and transparent cells.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.ScratchDir != "" {
		defer removeScratch(opts.ScratchDir)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	selected, skipped := anim.Select(opts.Roles, opts.Clips)
	var warnings []string
	for _, role := range skipped {
		msg := fmt.Sprintf("no clip matched role %q (searched %v)", role.Name, role.Search)
		logger.Warn("skipping role", zap.String("role", role.Name), zap.Strings("search", role.Search))
		warnings = append(warnings, msg)
	}

	units, err := anim.Expand(selected)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, ErrNothingToRender
	}

	plan := buildPlan(units, opts.Layout)
	logger.Info("rendering frames",
		zap.Int("frames", len(plan.tasks)),
		zap.Int("animations", len(units)),
		zap.Int("workers", opts.Workers))

	frames, frameWarnings, err := renderAll(ctx, opts, plan)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, frameWarnings...)

	sheet, err := atlas.Composite(frames, opts.Layout)
	if err != nil {
		return nil, err
	}
	meta := plan.emitter.Finalize()

	result := &Result{
		Metadata:    meta,
		TotalFrames: plan.emitter.Total(),
		Warnings:    warnings,
	}
	if err := publish(opts.OutputPath, sheet, meta, result); err != nil {
		return nil, err
	}

	logger.Info("atlas written",
		zap.String("atlas", result.AtlasPath),
		zap.String("metadata", result.MetadataPath),
		zap.Int("frames", result.TotalFrames),
		zap.Int("rows", meta.Rows),
		zap.Int("warnings", len(warnings)))
	return result, nil
}

// renderAll issues every planned pose request, at most opts.Workers at a
// time. Results land in their pre-assigned sheet slots, so completion
// order never changes the sheet. A failed frame leaves a nil slot and a
// warning; only cancellation aborts the run.
func renderAll(ctx context.Context, opts Options, plan *plan) ([]*raster.Buffer, []string, error) {
	frames := make([]*raster.Buffer, len(plan.tasks))
	warnSlots := make([]string, len(plan.tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, task := range plan.tasks {
		task := task
		g.Go(func() error {
			buf, err := opts.Renderer.Render(ctx, task.req)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("frame render failed, slot degrades to transparent",
					zap.String("animation", task.key),
					zap.Int("frame", task.req.Frame),
					zap.Int("sheet_index", task.sheetIndex),
					zap.Error(err))
				warnSlots[task.sheetIndex] = fmt.Sprintf("%s frame %d (sheet index %d): %v",
					task.key, task.req.Frame, task.sheetIndex, err)
				return nil
			}
			frames[task.sheetIndex] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("rendering aborted: %w", err)
	}

	var warnings []string
	for _, w := range warnSlots {
		if w != "" {
			warnings = append(warnings, w)
		}
	}
	return frames, warnings, nil
}
