package pipeline

import (
	"github.com/spritemill/spritemill/internal/anim"
	"github.com/spritemill/spritemill/internal/atlas"
	"github.com/spritemill/spritemill/internal/render"
)

// task is one pose render bound to its fixed sheet slot.
type task struct {
	sheetIndex int
	key        string
	req        render.Request
}

// plan fixes the complete sheet layout before any rendering happens:
// every frame gets its sheet index and every animation its metadata range
// up front, so render failures can never shift later frames.
type plan struct {
	tasks   []task
	emitter *atlas.Emitter
}

func buildPlan(units []anim.Unit, layout atlas.Layout) *plan {
	p := &plan{emitter: atlas.NewEmitter(layout)}
	for _, unit := range units {
		rng := p.emitter.Add(unit.Key(), len(unit.Frames))
		for i, frame := range unit.Frames {
			p.tasks = append(p.tasks, task{
				sheetIndex: rng.Start + i,
				key:        unit.Key(),
				req: render.Request{
					Clip:        unit.Clip.Name,
					Frame:       frame,
					RotationDeg: unit.RotationDeg,
					Width:       layout.CellSize,
					Height:      layout.CellSize,
				},
			})
		}
	}
	return p
}
