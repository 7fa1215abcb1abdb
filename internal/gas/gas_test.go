package gas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flying-tiger/jflow/internal/gas"
)

func TestRoundTripPressureDensityTemperature(t *testing.T) {
	m := gas.NewDefault()
	const p, temperature = 101325.0, 288.0

	rho := m.ComputeDensity(p, temperature)
	e := m.ComputeEnergy(temperature)
	got := m.ComputePressure(e, rho)

	assert.InDelta(t, p, got, 1e-6)
}

func TestSetGasPropsReturnsIndependentCopy(t *testing.T) {
	original := gas.NewDefault()
	modified := original.SetGasProps(1.667, 2077)

	assert.Equal(t, gas.DefaultGamma, original.Gamma)
	assert.Equal(t, 1.667, modified.Gamma)
	assert.Equal(t, 2077.0, modified.RGas)
}

func TestSoundSpeedScalesWithSqrtTemperature(t *testing.T) {
	m := gas.NewDefault()
	e1 := m.ComputeEnergy(288)
	e2 := m.ComputeEnergy(288 * 4)

	c1 := m.ComputeSoundSpeed(e1, 1.0)
	c2 := m.ComputeSoundSpeed(e2, 1.0)

	assert.InDelta(t, 2*c1, c2, 1e-9)
}
