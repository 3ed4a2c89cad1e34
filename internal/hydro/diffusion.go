package hydro

import (
	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

// DiffusionParams is the thermal diffusion parameter record. The
// scheme models no diffusion, so the record carries no fields; it
// exists so every lifecycle call site stays uniform and a future
// diffusion model gains fields here without touching callers.
type DiffusionParams struct{}

func (d *DiffusionParams) Name() string { return "diffusion" }

func (d *DiffusionParams) Resolve(p *params.Store, us *units.System, pc *phys.Constants) error {
	return nil
}

func (d *DiffusionParams) Mock() {}

func (d *DiffusionParams) Report(log *zap.SugaredLogger) {}

func (d *DiffusionParams) Export(g snapshot.AttributeWriter) error { return nil }
