// Package phys derives physical constants in the internal unit system.
package phys

import (
	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/units"
)

// CODATA 2018 values in CGS.
const (
	newtonGCGS      = 6.67430e-8        // cm^3 g^-1 s^-2
	speedOfLightCGS = 2.99792458e10     // cm/s
	boltzmannKCGS   = 1.380649e-16      // erg/K
	protonMassCGS   = 1.67262192369e-24 // g
	solarMassCGS    = 1.98841e33        // g
)

// Constants carries the derived constants, expressed in internal units.
type Constants struct {
	NewtonG      float64
	SpeedOfLight float64
	BoltzmannK   float64
	ProtonMass   float64
	SolarMass    float64
}

// Resolve converts the CGS constants through the unit system. The
// parameter file may overwrite G via PhysicalConstants:G, given in
// internal units.
func Resolve(p *params.Store, us *units.System) (*Constants, error) {
	c := derive(us)
	g, err := p.OptFloat("PhysicalConstants:G", c.NewtonG)
	if err != nil {
		return nil, err
	}
	c.NewtonG = g
	return c, nil
}

// CGS returns the constants in the trivial unit system.
func CGS() *Constants { return derive(units.CGS()) }

func derive(us *units.System) *Constants {
	t := us.Time()
	return &Constants{
		NewtonG:      newtonGCGS * us.Mass * t * t / (us.Length * us.Length * us.Length),
		SpeedOfLight: speedOfLightCGS / us.Velocity,
		BoltzmannK:   boltzmannKCGS * us.Temperature / us.Energy(),
		ProtonMass:   protonMassCGS / us.Mass,
		SolarMass:    solarMassCGS / us.Mass,
	}
}

// Report logs the constants one per line, names right-aligned.
func (c *Constants) Report(log *zap.SugaredLogger) {
	log.Infof("%25s = %e", "Gravitational constant", c.NewtonG)
	log.Infof("%25s = %e", "Speed of light", c.SpeedOfLight)
	log.Infof("%25s = %e", "Boltzmann constant", c.BoltzmannK)
	log.Infof("%25s = %e", "Proton mass", c.ProtonMass)
	log.Infof("%25s = %e", "Solar mass", c.SolarMass)
}
