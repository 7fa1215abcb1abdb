// Package euler implements the compressible Euler equations: the
// conservative state vector, primitive recovery, the inviscid flux, and
// the per-boundary numerical flux functions the finite-volume assembler
// dispatches to.
package euler

import (
	"math"

	"github.com/flying-tiger/jflow/internal/gas"
	"github.com/flying-tiger/jflow/internal/numeric"
)

// Field indices into a Conservative or Flux vector.
const (
	Density = iota
	MomentumX
	MomentumY
	TotalEnergy
)

// Conservative is the 4-component conservative state (rho, rho*u, rho*v,
// rho*E).
type Conservative [4]float64

// Velocity returns the primitive velocity components recovered from q.
func (q Conservative) Velocity() (u, v float64) {
	return q[MomentumX] / q[Density], q[MomentumY] / q[Density]
}

// InternalEnergy returns e = E - 1/2*(u^2+v^2).
func (q Conservative) InternalEnergy() float64 {
	u, v := q.Velocity()
	return q[TotalEnergy]/q[Density] - 0.5*(u*u+v*v)
}

// Add returns the state obtained by applying flux f to q, q+f
// componentwise. This is what lets a StateField be advanced by a scaled
// ResidualField in the generic time integrators.
func (q Conservative) Add(f Flux) Conservative {
	return Conservative{q[0] + f[0], q[1] + f[1], q[2] + f[2], q[3] + f[3]}
}

// Flux is a 4-component flux vector with the same field layout as
// Conservative: mass, x-momentum, y-momentum and energy flux rates per
// unit area.
type Flux [4]float64

// Add returns the componentwise sum f+o.
func (f Flux) Add(o Flux) Flux {
	return Flux{f[0] + o[0], f[1] + o[1], f[2] + o[2], f[3] + o[3]}
}

// Sub returns the componentwise difference f-o.
func (f Flux) Sub(o Flux) Flux {
	return Flux{f[0] - o[0], f[1] - o[1], f[2] - o[2], f[3] - o[3]}
}

// Scale returns f scaled by s.
func (f Flux) Scale(s float64) Flux {
	return Flux{s * f[0], s * f[1], s * f[2], s * f[3]}
}

// StateField is a dense, cell-indexed array of conservative states.
type StateField []Conservative

// Add applies a ResidualField to every cell of s, returning the updated
// field. r is expected to already carry any time-step scaling.
func (s StateField) Add(r ResidualField) StateField {
	out := make(StateField, len(s))
	for i := range s {
		out[i] = s[i].Add(r[i])
	}
	return out
}

// ResidualField is a dense, cell-indexed array of flux-shaped time
// derivatives (dU/dt per cell).
type ResidualField []Flux

// Add returns the componentwise sum of two residual fields.
func (r ResidualField) Add(o ResidualField) ResidualField {
	out := make(ResidualField, len(r))
	for i := range r {
		out[i] = r[i].Add(o[i])
	}
	return out
}

// Scale returns r scaled by s.
func (r ResidualField) Scale(s float64) ResidualField {
	out := make(ResidualField, len(r))
	for i := range r {
		out[i] = r[i].Scale(s)
	}
	return out
}

// RMSNorm reduces r to a componentwise root-mean-square norm over cells.
func (r ResidualField) RMSNorm() [4]float64 {
	vecs := make([]numeric.Vec4, len(r))
	for i, f := range r {
		vecs[i] = numeric.Vec4(f)
	}
	return numeric.RMS(vecs)
}

// MakeStateVector allocates a state field of the given length, every
// cell initialized to init.
func MakeStateVector(n int, init Conservative) StateField {
	out := make(StateField, n)
	for i := range out {
		out[i] = init
	}
	return out
}

// MakeResidualVector allocates a zero-initialized residual field of the
// given length.
func MakeResidualVector(n int) ResidualField {
	return make(ResidualField, n)
}

// Physics bundles a gas model and a freestream reference state. The
// source treats both as process-wide singletons; here they are carried
// on a value the caller constructs once and threads through the solver,
// so the gas model and freestream are injectable rather than global.
type Physics struct {
	Gas        gas.Model
	Freestream Conservative
}

// NewPhysics returns a Physics using the given gas model and a zeroed
// freestream state; call SetFreestream before evaluating any freestream
// flux.
func NewPhysics(g gas.Model) *Physics {
	return &Physics{Gas: g}
}

// MakeState returns the conservative state of a uniform flow at the
// given pressure, temperature and velocity, without storing it.
func (p *Physics) MakeState(pressure, temperature, u, v float64) Conservative {
	rho := p.Gas.ComputeDensity(pressure, temperature)
	e := p.Gas.ComputeEnergy(temperature) + 0.5*(u*u+v*v)
	return Conservative{rho, rho * u, rho * v, rho * e}
}

// SetFreestream computes and stores the freestream reference state used
// by ComputeFreestreamFlux.
func (p *Physics) SetFreestream(pressure, temperature, u, v float64) {
	p.Freestream = p.MakeState(pressure, temperature, u, v)
}

func (p *Physics) primitivePressure(q Conservative) float64 {
	return p.Gas.ComputePressure(q.InternalEnergy(), q[Density])
}

// ComputeFlux returns the physical inviscid flux F(q).n for the signed
// area vector n (callers pass the face's signed area vector, so the
// result is already scaled by face area).
func (p *Physics) ComputeFlux(q Conservative, n numeric.Vec2) Flux {
	u, v := q.Velocity()
	pressure := p.primitivePressure(q)
	un := u*n.X + v*n.Y
	return Flux{
		un * q[Density],
		un*q[MomentumX] + pressure*n.X,
		un*q[MomentumY] + pressure*n.Y,
		un * (q[TotalEnergy] + pressure),
	}
}

// ComputeWallFlux returns the slip-wall flux: zero mass and energy
// transport, pressure-only momentum transport, using the interior
// pressure.
func (p *Physics) ComputeWallFlux(q Conservative, n numeric.Vec2) Flux {
	pressure := p.primitivePressure(q)
	return Flux{0, pressure * n.X, pressure * n.Y, 0}
}

// ComputeFreestreamFlux ignores q and returns the physical flux of the
// freestream state stored on p.
func (p *Physics) ComputeFreestreamFlux(q Conservative, n numeric.Vec2) Flux {
	return p.ComputeFlux(p.Freestream, n)
}

// spectralRadius estimates the largest signal speed crossing a face
// with area vector n: c + |u.n|.
func (p *Physics) spectralRadius(q Conservative, n numeric.Vec2) float64 {
	u, v := q.Velocity()
	c := p.Gas.ComputeSoundSpeed(q.InternalEnergy(), q[Density])
	return c + math.Abs(u*n.X+v*n.Y)
}

// ComputeJumpFlux is the Rusanov (local Lax-Friedrichs) numerical flux
// across an interior face with left state qL and right state qR:
// 1/2*(F(qL).n + F(qR).n - lambda*(qR-qL)), lambda the larger of the two
// sides' spectral radii.
func (p *Physics) ComputeJumpFlux(qL, qR Conservative, n numeric.Vec2) Flux {
	lambda := math.Max(p.spectralRadius(qL, n), p.spectralRadius(qR, n))
	fl := p.ComputeFlux(qL, n)
	fr := p.ComputeFlux(qR, n)
	var out Flux
	for i := range out {
		out[i] = 0.5 * (fl[i] + fr[i] - lambda*(qR[i]-qL[i]))
	}
	return out
}
