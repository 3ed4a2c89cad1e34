package hydro

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

// ErrOverCleanFactor rejects configurations where the divergence
// cleaning over-clean factor drops below one.
var ErrOverCleanFactor = errors.New("cannot have div_B_over_clean_factor < 1")

// MhdParams is the magnetohydrodynamics parameter record.
type MhdParams struct {
	ArtificialDissipationConstant  float64
	ArtificialDissipationMinimum   float64
	ArtificialDissipationSource    float64
	ArtificialDissipationTimescale float64

	// WithDivBCleaning enables divergence cleaning. The two fields
	// below are only meaningful while it is set.
	WithDivBCleaning    bool
	DivBParabolicSigma  float64
	DivBOverCleanFactor float64
}

func (m *MhdParams) Name() string { return "mhd" }

// Resolve reads the SPH dissipation and divergence cleaning keys. The
// four dissipation knobs and the parabolic sigma are required. The
// cleaning flag is optional and defaults to disabled; the over-clean
// factor is optional with default 1.0 and must stay >= 1.
func (m *MhdParams) Resolve(p *params.Store, us *units.System, pc *phys.Constants) error {
	var err error
	if m.ArtificialDissipationConstant, err = p.Float("SPH:artificial_dissipation_constant"); err != nil {
		return err
	}
	if m.ArtificialDissipationMinimum, err = p.Float("SPH:artificial_dissipation_minimum"); err != nil {
		return err
	}
	if m.ArtificialDissipationSource, err = p.Float("SPH:artificial_dissipation_source"); err != nil {
		return err
	}
	if m.ArtificialDissipationTimescale, err = p.Float("SPH:artificial_dissipation_timescale"); err != nil {
		return err
	}

	cleaning, err := p.OptInt("SPH:with_div_B_cleaning", 0)
	if err != nil {
		return err
	}
	m.WithDivBCleaning = cleaning != 0

	if m.DivBParabolicSigma, err = p.Float("SPH:div_B_parabolic_sigma"); err != nil {
		return err
	}
	if m.DivBOverCleanFactor, err = p.OptFloat("SPH:div_B_over_clean_factor", 1.0); err != nil {
		return err
	}
	if m.DivBOverCleanFactor < 1.0 {
		return fmt.Errorf("%w: got %g", ErrOverCleanFactor, m.DivBOverCleanFactor)
	}
	return nil
}

// Mock zeroes the record, cleaning off.
// TODO: pick physically motivated mock values once a dissipation
// scheme consumes these.
func (m *MhdParams) Mock() { *m = MhdParams{} }

// Report prints the dissipation values, then the cleaning state and
// its tuning when enabled.
func (m *MhdParams) Report(log *zap.SugaredLogger) {
	log.Infof("MHD artificial_dissipation_constant = %g", m.ArtificialDissipationConstant)
	log.Infof("MHD artificial_dissipation_minimum = %g", m.ArtificialDissipationMinimum)
	log.Infof("MHD artificial_dissipation_source = %g", m.ArtificialDissipationSource)
	log.Infof("MHD artificial_dissipation_timescale = %g", m.ArtificialDissipationTimescale)

	if m.WithDivBCleaning {
		log.Info("MHD is running with divB cleaning ON.")
		log.Infof("MHD div_B_parabolic_sigma = %g", m.DivBParabolicSigma)
		log.Infof("MHD div_B_over_clean_factor = %g", m.DivBOverCleanFactor)
	} else {
		log.Info("MHD is running with divB cleaning OFF.")
	}
}

// Export writes the dissipation attributes and the cleaning flag. The
// two cleaning attributes are present only when cleaning is on, which
// downstream readers rely on.
func (m *MhdParams) Export(g snapshot.AttributeWriter) error {
	if err := g.WriteFloat("Artificial dissipation constant", m.ArtificialDissipationConstant); err != nil {
		return err
	}
	if err := g.WriteFloat("Artificial dissipation minimum", m.ArtificialDissipationMinimum); err != nil {
		return err
	}
	if err := g.WriteFloat("Artificial dissipation source", m.ArtificialDissipationSource); err != nil {
		return err
	}
	if err := g.WriteFloat("Artificial dissipation timescale", m.ArtificialDissipationTimescale); err != nil {
		return err
	}

	flag := 0
	if m.WithDivBCleaning {
		flag = 1
	}
	if err := g.WriteInt("divB cleaning turned on", flag); err != nil {
		return err
	}
	if !m.WithDivBCleaning {
		return nil
	}

	if err := g.WriteFloat("divB parabolic sigma", m.DivBParabolicSigma); err != nil {
		return err
	}
	return g.WriteFloat("divB over-cleaning factor", m.DivBOverCleanFactor)
}

// DampingEnvelope samples the dimensionless parabolic damping factor
// exp(-sigma*tau) on tau in [0, 5]. Returns nil unless cleaning is on
// with a positive sigma, or when fewer than two samples are asked for.
func (m *MhdParams) DampingEnvelope(samples int) []float64 {
	if !m.WithDivBCleaning || m.DivBParabolicSigma <= 0 || samples < 2 {
		return nil
	}
	const tauMax = 5.0
	env := make([]float64, samples)
	for i := range env {
		tau := tauMax * float64(i) / float64(samples-1)
		env[i] = math.Exp(-m.DivBParabolicSigma * tau)
	}
	return env
}
