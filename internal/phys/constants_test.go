package phys

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"sphlab/internal/params"
	"sphlab/internal/units"
)

// Mpc, solar masses, km/s.
func astroUnits() *units.System {
	return &units.System{
		Mass:        1.98841e33,
		Length:      3.085677581e24,
		Velocity:    1e5,
		Current:     1,
		Temperature: 1,
	}
}

func TestCGSValues(t *testing.T) {
	c := CGS()
	assert.Equal(t, 6.67430e-8, c.NewtonG)
	assert.Equal(t, 2.99792458e10, c.SpeedOfLight)
	assert.Equal(t, 1.380649e-16, c.BoltzmannK)
	assert.Equal(t, 1.67262192369e-24, c.ProtonMass)
	assert.Equal(t, 1.98841e33, c.SolarMass)
}

func TestDeriveAstroSystem(t *testing.T) {
	c := derive(astroUnits())

	// G in Mpc (km/s)^2 / Msun
	assert.InEpsilon(t, 4.3009e-9, c.NewtonG, 1e-4)
	// c in km/s
	assert.InEpsilon(t, 2.99792458e5, c.SpeedOfLight, 1e-12)
	// one internal mass unit is one solar mass
	assert.InEpsilon(t, 1.0, c.SolarMass, 1e-12)
}

func TestResolveDefaultsToDerived(t *testing.T) {
	p, err := params.Parse([]byte("SPH:\n  scheme: gadget2\n"))
	require.NoError(t, err)

	c, err := Resolve(p, astroUnits())
	require.NoError(t, err)
	assert.Equal(t, derive(astroUnits()).NewtonG, c.NewtonG)
}

func TestResolveOverridesG(t *testing.T) {
	p, err := params.Parse([]byte("PhysicalConstants:\n  G: 4.300927e-9\n"))
	require.NoError(t, err)

	c, err := Resolve(p, astroUnits())
	require.NoError(t, err)
	assert.Equal(t, 4.300927e-9, c.NewtonG)
	// the override touches G only
	assert.Equal(t, derive(astroUnits()).SpeedOfLight, c.SpeedOfLight)
}

func TestReport(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	c := CGS()
	c.Report(log)

	entries := logs.All()
	require.Len(t, entries, 5)
	assert.Equal(t, fmt.Sprintf("%25s = %e", "Gravitational constant", c.NewtonG), entries[0].Message)
	assert.Equal(t, fmt.Sprintf("%25s = %e", "Solar mass", c.SolarMass), entries[4].Message)
}
