// Package gas implements the perfect-gas equation of state used by the
// euler package, with gamma and gas constant configurable per Model value.
package gas

import "math"

// DefaultGamma and DefaultRGas are the default specific heat ratio and
// specific gas constant (SI units, dry air).
const (
	DefaultGamma = 1.4
	DefaultRGas  = 287.058
)

// Model holds the two perfect-gas parameters, kept injectable by
// attaching them to a Model value that callers construct once and
// thread through the euler package rather than mutating package
// globals.
type Model struct {
	Gamma float64
	RGas  float64
}

// NewDefault returns the default perfect-gas model: gamma=1.4,
// R_gas=287.058.
func NewDefault() Model {
	return Model{Gamma: DefaultGamma, RGas: DefaultRGas}
}

// SetGasProps returns a copy of m with updated parameters, mirroring the
// source's set_gas_props(gamma, R).
func (m Model) SetGasProps(gamma, rGas float64) Model {
	return Model{Gamma: gamma, RGas: rGas}
}

// ComputeEnergy returns the specific internal energy of quiescent gas at
// temperature T: e(T) = R*T/(gamma-1).
func (m Model) ComputeEnergy(t float64) float64 {
	return m.RGas * t / (m.Gamma - 1)
}

// ComputeDensity returns rho = p/(R*T).
func (m Model) ComputeDensity(p, t float64) float64 {
	return p / (m.RGas * t)
}

// ComputePressure returns p = (gamma-1)*rho*e.
func (m Model) ComputePressure(e, rho float64) float64 {
	return (m.Gamma - 1) * rho * e
}

// ComputeSoundSpeed returns c = sqrt(gamma*(gamma-1)*e).
func (m Model) ComputeSoundSpeed(e, rho float64) float64 {
	_ = rho // sound speed depends only on specific internal energy for a perfect gas
	return math.Sqrt(m.Gamma * (m.Gamma - 1) * e)
}
