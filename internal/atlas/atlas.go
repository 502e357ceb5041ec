// Package atlas packs rendered frames into a fixed-cell grid sheet and
// emits the index metadata downstream game code reads back.
package atlas

import (
	"errors"
	"fmt"

	"github.com/spritemill/spritemill/pkg/raster"
)

// ErrNoFrames is returned when a sheet is requested for zero frames.
var ErrNoFrames = errors.New("atlas: no frames to composite")

// Layout is the grid geometry of a sheet: square cells of CellSize pixels,
// Columns cells per row.
type Layout struct {
	CellSize int
	Columns  int
}

// Validate rejects degenerate grid parameters.
func (l Layout) Validate() error {
	if l.CellSize < 1 {
		return fmt.Errorf("atlas: cell size %d, want >= 1", l.CellSize)
	}
	if l.Columns < 1 {
		return fmt.Errorf("atlas: columns %d, want >= 1", l.Columns)
	}
	return nil
}

// Rows returns the row count needed for total frames.
func (l Layout) Rows(total int) int {
	return (total + l.Columns - 1) / l.Columns
}

// CellOrigin returns the top-left pixel of sheet index i. Cells fill left
// to right, top to bottom.
func (l Layout) CellOrigin(i int) (x, y int) {
	return (i % l.Columns) * l.CellSize, (i / l.Columns) * l.CellSize
}

// SheetSize returns the pixel dimensions of a sheet holding total frames.
func (l Layout) SheetSize(total int) (w, h int) {
	return l.Columns * l.CellSize, l.Rows(total) * l.CellSize
}

// Composite lays the frame sequence out on the grid.
//
// The sheet starts fully transparent; nil frames (failed renders) keep
// their slot but leave the cell transparent, so sheet indices stay aligned
// with the metadata. Frames whose size differs from the cell are copied
// without scaling, clipped to the overlap. The result is a pure function of
// the inputs: identical frames and layout produce identical bytes.
func Composite(frames []*raster.Buffer, layout Layout) (*raster.Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	w, h := layout.SheetSize(len(frames))
	sheet := raster.New(w, h)
	for i, frame := range frames {
		if frame == nil {
			continue
		}
		x, y := layout.CellOrigin(i)
		sheet.BlitRect(frame, x, y, layout.CellSize, layout.CellSize)
	}
	return sheet, nil
}
