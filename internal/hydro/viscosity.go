package hydro

import (
	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

const (
	// ViscosityBeta is the fixed beta coefficient of the artificial
	// viscosity, as in Price (2010) eqn 103.
	ViscosityBeta = 3.0

	// DefaultViscosityAlpha is the fixed coefficient for non-variable
	// schemes and the initial coefficient for variable ones.
	DefaultViscosityAlpha = 0.8

	// ViscosityAlphaFeedbackReset is the coefficient particles are
	// reset to after a feedback event. Must match
	// DefaultViscosityAlpha for fixed schemes.
	ViscosityAlphaFeedbackReset = 0.8
)

// ViscosityParams is the artificial viscosity parameter record.
type ViscosityParams struct {
	Alpha float64
}

func (v *ViscosityParams) Name() string { return "viscosity" }

// Resolve reads SPH:viscosity_alpha, falling back to the default.
// Alpha is deliberately not range-checked; any finite value the file
// supplies is accepted as-is.
func (v *ViscosityParams) Resolve(p *params.Store, us *units.System, pc *phys.Constants) error {
	alpha, err := p.OptFloat("SPH:viscosity_alpha", DefaultViscosityAlpha)
	if err != nil {
		return err
	}
	v.Alpha = alpha
	return nil
}

// Mock fills the record with the default coefficient.
func (v *ViscosityParams) Mock() { v.Alpha = DefaultViscosityAlpha }

// Report prints the resolved parameters at the start of a run.
func (v *ViscosityParams) Report(log *zap.SugaredLogger) {
	log.Infof("Artificial viscosity parameters set to alpha: %.3f", v.Alpha)
}

// Export writes the viscosity attributes to an open snapshot group.
func (v *ViscosityParams) Export(g snapshot.AttributeWriter) error {
	if err := g.WriteFloat("Alpha viscosity", v.Alpha); err != nil {
		return err
	}
	return g.WriteFloat("Beta viscosity", ViscosityBeta)
}
