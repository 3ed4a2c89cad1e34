// Package units holds the internal unit system of a run: the size of
// each basic internal unit expressed in CGS.
package units

import (
	"fmt"

	"go.uber.org/zap"

	"sphlab/internal/params"
	"sphlab/internal/snapshot"
)

// System is a set of conversion factors from internal units to CGS.
// A value of 1.98841e33 for Mass means one internal mass unit is one
// solar mass in grams.
type System struct {
	Mass        float64 // g
	Length      float64 // cm
	Velocity    float64 // cm/s
	Current     float64 // A
	Temperature float64 // K
}

// CGS returns the trivial system where every internal unit equals its
// CGS counterpart. Used when mocking a run without a parameter file.
func CGS() *System {
	return &System{Mass: 1, Length: 1, Velocity: 1, Current: 1, Temperature: 1}
}

// Resolve reads the InternalUnitSystem section. All five entries are
// required and every conversion factor must be strictly positive.
func Resolve(p *params.Store) (*System, error) {
	s := &System{}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"InternalUnitSystem:UnitMass_in_cgs", &s.Mass},
		{"InternalUnitSystem:UnitLength_in_cgs", &s.Length},
		{"InternalUnitSystem:UnitVelocity_in_cgs", &s.Velocity},
		{"InternalUnitSystem:UnitCurrent_in_cgs", &s.Current},
		{"InternalUnitSystem:UnitTemp_in_cgs", &s.Temperature},
	} {
		v, err := p.Float(f.key)
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("units: %s must be positive, got %g", f.key, v)
		}
		*f.dst = v
	}
	return s, nil
}

// Time returns the internal time unit in seconds.
func (s *System) Time() float64 { return s.Length / s.Velocity }

// Density returns the internal density unit in g/cm^3.
func (s *System) Density() float64 { return s.Mass / (s.Length * s.Length * s.Length) }

// Energy returns the internal energy unit in erg.
func (s *System) Energy() float64 { return s.Mass * s.Velocity * s.Velocity }

// Report logs the resolved system, one line per basic unit.
func (s *System) Report(log *zap.SugaredLogger) {
	log.Infof("Internal unit system: U_M = %e g.", s.Mass)
	log.Infof("Internal unit system: U_L = %e cm.", s.Length)
	log.Infof("Internal unit system: U_t = %e s.", s.Time())
	log.Infof("Internal unit system: U_I = %e A.", s.Current)
	log.Infof("Internal unit system: U_T = %e K.", s.Temperature)
}

// Export writes the system into a snapshot group under the attribute
// names downstream readers expect.
func (s *System) Export(g snapshot.AttributeWriter) error {
	if err := g.WriteFloat("Unit mass in cgs (U_M)", s.Mass); err != nil {
		return err
	}
	if err := g.WriteFloat("Unit length in cgs (U_L)", s.Length); err != nil {
		return err
	}
	if err := g.WriteFloat("Unit time in cgs (U_t)", s.Time()); err != nil {
		return err
	}
	if err := g.WriteFloat("Unit current in cgs (U_I)", s.Current); err != nil {
		return err
	}
	return g.WriteFloat("Unit temperature in cgs (U_T)", s.Temperature)
}
