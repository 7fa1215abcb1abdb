// Package integrate implements a generic explicit time-integration
// framework over any type satisfying a minimal "system" contract: a
// state type and a residual type with componentwise arithmetic, and a
// ComputeRHS(t, x) -> R method. Forward Euler, Shu-Osher (SSP-RK2) and
// classical RK4 are provided, plus a generic driver that steps a system
// across a time span.
package integrate

// Residual is the arithmetic a residual type must support: addition
// (used to combine RK stage derivatives) and scalar scaling (used to
// apply a time step), plus a componentwise RMS reduction so every step
// function can report a residual norm for convergence monitoring.
type Residual[R any] interface {
	Add(R) R
	Scale(float64) R
	RMSNorm() [4]float64
}

// State is the arithmetic a state type must support: advancing by an
// already-scaled residual.
type State[S any, R any] interface {
	Add(R) S
}

// System is the minimal contract any type must satisfy to be advanced
// by this package's integrators: it exposes a state type S and a
// residual type R, and computes R at a point in time.
type System[S State[S, R], R Residual[R]] interface {
	ComputeRHS(t float64, x S) R
}

// Step advances a system's state by one time step of size dt starting
// at time t, returning the new state and the RMS norm of the residual
// evaluated at the start of the step.
type Step[S State[S, R], R Residual[R]] func(sys System[S, R], dt, t float64, x S) (S, [4]float64)

// StepEuler is the first-order forward Euler update: x <- x + dt*R(t,x).
func StepEuler[S State[S, R], R Residual[R]](sys System[S, R], dt, t float64, x S) (S, [4]float64) {
	k1 := sys.ComputeRHS(t, x)
	return x.Add(k1.Scale(dt)), k1.RMSNorm()
}

// StepShuOsher is the Shu-Osher / SSP-RK2 update:
//
//	k1 = R(t, x)
//	k2 = R(t+dt, x+dt*k1)
//	x <- x + dt*(k1+k2)/2
func StepShuOsher[S State[S, R], R Residual[R]](sys System[S, R], dt, t float64, x S) (S, [4]float64) {
	k1 := sys.ComputeRHS(t, x)
	x1 := x.Add(k1.Scale(dt))
	k2 := sys.ComputeRHS(t+dt, x1)
	update := k1.Add(k2).Scale(dt / 2)
	return x.Add(update), k1.RMSNorm()
}

// StepRK4 is the classical fourth-order Runge-Kutta update:
//
//	k1 = R(t, x)
//	k2 = R(t+dt/2, x+dt*k1/2)
//	k3 = R(t+dt/2, x+dt*k2/2)
//	k4 = R(t+dt, x+dt*k3)
//	x <- x + dt*(k1+2*k2+2*k3+k4)/6
func StepRK4[S State[S, R], R Residual[R]](sys System[S, R], dt, t float64, x S) (S, [4]float64) {
	k1 := sys.ComputeRHS(t, x)
	x1 := x.Add(k1.Scale(dt / 2))
	k2 := sys.ComputeRHS(t+dt/2, x1)
	x2 := x.Add(k2.Scale(dt / 2))
	k3 := sys.ComputeRHS(t+dt/2, x2)
	x3 := x.Add(k3.Scale(dt))
	k4 := sys.ComputeRHS(t+dt, x3)

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return x.Add(sum.Scale(dt / 6)), k1.RMSNorm()
}

// Result is the outcome of a full Integrate run.
type Result[S any] struct {
	Time  float64
	State S
	// Residuals holds the RMS residual norm reported by each step, in
	// order, so callers can inspect convergence or detect a NaN without
	// re-running the integration.
	Residuals [][4]float64
}

// Integrate drives sys from x0 across tspan=(t_start,t_end) using
// nsteps applications of step, returning the final time, final state,
// and the per-step RMS residual norms.
func Integrate[S State[S, R], R Residual[R]](
	step Step[S, R],
	sys System[S, R],
	x0 S,
	tspan [2]float64,
	nsteps int,
) Result[S] {
	t := tspan[0]
	dt := (tspan[1] - tspan[0]) / float64(nsteps)
	x := x0
	residuals := make([][4]float64, 0, nsteps)
	for i := 0; i < nsteps; i++ {
		var rms [4]float64
		x, rms = step(sys, dt, t, x)
		residuals = append(residuals, rms)
		t += dt
	}
	return Result[S]{Time: t, State: x, Residuals: residuals}
}
