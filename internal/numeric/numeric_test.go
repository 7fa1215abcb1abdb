package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flying-tiger/jflow/internal/numeric"
)

func TestRot90CWIsOrthogonalAndLengthPreserving(t *testing.T) {
	v := numeric.Vec2{X: 3, Y: 4}
	r := numeric.Rot90CW(v)
	assert.InDelta(t, 0, numeric.Dot(v, r), 1e-12)
	assert.InDelta(t, v.X*v.X+v.Y*v.Y, r.X*r.X+r.Y*r.Y, 1e-12)
}

func TestCross2DOfOrthogonalUnitVectorsIsOne(t *testing.T) {
	x := numeric.Vec2{X: 1, Y: 0}
	y := numeric.Vec2{X: 0, Y: 1}
	assert.Equal(t, 1.0, numeric.Cross2D(x, y))
	assert.Equal(t, -1.0, numeric.Cross2D(y, x))
}

func TestRMSOfConstantSamplesIsThatConstant(t *testing.T) {
	samples := make([]numeric.Vec4, 5)
	for i := range samples {
		samples[i] = numeric.Vec4{1, -2, 3, -4}
	}
	got := numeric.RMS(samples)
	assert.InDelta(t, 1, got[0], 1e-12)
	assert.InDelta(t, 2, got[1], 1e-12)
	assert.InDelta(t, 3, got[2], 1e-12)
	assert.InDelta(t, 4, got[3], 1e-12)
}
