package hydro

import (
	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

// Module is the uniform lifecycle contract every physics parameter
// record implements. Exactly one of Resolve or Mock initializes a
// record; Report and Export assume an initialized record.
type Module interface {
	Name() string

	// Resolve populates the record from the parameter file. On error
	// the record must not be observed.
	Resolve(p *params.Store, us *units.System, pc *phys.Constants) error

	// Mock populates the record without a parameter file.
	Mock()

	Report(log *zap.SugaredLogger)
	Export(g snapshot.AttributeWriter) error
}

var (
	_ Module = (*ViscosityParams)(nil)
	_ Module = (*DiffusionParams)(nil)
	_ Module = (*MhdParams)(nil)
)
