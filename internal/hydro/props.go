package hydro

import (
	"fmt"

	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

// SchemeName identifies the SPH flavor these records parameterize.
// Exported headers carry it as the Scheme attribute.
const SchemeName = "Gadget-2 version of SPH (Springel 2005)"

// Props aggregates the hydro parameter records of one run.
type Props struct {
	Viscosity ViscosityParams
	Diffusion DiffusionParams

	// MHD is nil unless the run was constructed WithMHD. A nil MHD
	// produces no report lines and no attribute writes anywhere.
	MHD *MhdParams
}

// Option enables optional physics on a Props under construction.
type Option func(*Props)

// WithMHD enables the magnetohydrodynamics module.
func WithMHD() Option {
	return func(h *Props) { h.MHD = &MhdParams{} }
}

func newProps(opts ...Option) *Props {
	h := &Props{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Resolve initializes every enabled module from the parameter file,
// viscosity first, MHD last. The first failure aborts and no Props is
// returned.
func Resolve(p *params.Store, us *units.System, pc *phys.Constants, opts ...Option) (*Props, error) {
	h := newProps(opts...)
	for _, m := range h.Modules() {
		if err := m.Resolve(p, us, pc); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", m.Name(), err)
		}
	}
	return h, nil
}

// Mock initializes every enabled module without a parameter file.
func Mock(opts ...Option) *Props {
	h := newProps(opts...)
	for _, m := range h.Modules() {
		m.Mock()
	}
	return h
}

// Report prints every enabled module once, in resolve order.
func (h *Props) Report(log *zap.SugaredLogger) {
	for _, m := range h.Modules() {
		m.Report(log)
	}
}

// Export writes every enabled module into an open snapshot group.
// Callers serialize exports against a shared sink; Props holds no
// lock.
func (h *Props) Export(g snapshot.AttributeWriter) error {
	for _, m := range h.Modules() {
		if err := m.Export(g); err != nil {
			return fmt.Errorf("export %s: %w", m.Name(), err)
		}
	}
	return nil
}

// Modules lists the enabled parameter records in lifecycle order.
func (h *Props) Modules() []Module {
	mods := []Module{&h.Viscosity, &h.Diffusion}
	if h.MHD != nil {
		mods = append(mods, h.MHD)
	}
	return mods
}
