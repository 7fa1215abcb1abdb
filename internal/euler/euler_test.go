package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flying-tiger/jflow/internal/euler"
	"github.com/flying-tiger/jflow/internal/gas"
	"github.com/flying-tiger/jflow/internal/numeric"
)

func TestJumpFluxOfEqualStatesIsPlainFlux(t *testing.T) {
	p := euler.NewPhysics(gas.NewDefault())
	q := p.MakeState(101325, 288, 50, 10)
	n := numeric.Vec2{X: 0.3, Y: 0.7}

	jump := p.ComputeJumpFlux(q, q, n)
	plain := p.ComputeFlux(q, n)

	for i := range jump {
		assert.InDelta(t, plain[i], jump[i], 1e-9)
	}
}

func TestSetFreestreamMatchesMakeState(t *testing.T) {
	p := euler.NewPhysics(gas.NewDefault())
	p.SetFreestream(1000, 300, 0, 500)
	want := p.MakeState(1000, 300, 0, 500)
	assert.Equal(t, want, p.Freestream)
}

func TestMakeStateRecoversVelocity(t *testing.T) {
	p := euler.NewPhysics(gas.NewDefault())
	q := p.MakeState(1000, 300, 12.5, -4.25)
	u, v := q.Velocity()
	assert.InDelta(t, 12.5, u, 1e-9)
	assert.InDelta(t, -4.25, v, 1e-9)
}
