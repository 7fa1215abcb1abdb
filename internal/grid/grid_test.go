package grid_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flying-tiger/jflow/internal/grid"
	"github.com/flying-tiger/jflow/internal/numeric"
)

func TestMakeCartesianLiteralValues(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{-2, 2}, [2]float64{-1, 1}, [2]int{5, 3})
	require.NoError(t, err)

	v := g.Vertex(2, 1)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)

	v = g.Vertex(0, 2)
	assert.InDelta(t, -2, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)

	v = g.Vertex(4, 0)
	assert.InDelta(t, 2, v.X, 1e-12)
	assert.InDelta(t, -1, v.Y, 1e-12)

	assert.InDelta(t, 1.0, g.Cell(0, 0).Volume(), 1e-12)

	area := g.IFace(0, 0).Area()
	assert.InDelta(t, 1, area.X, 1e-12)
	assert.InDelta(t, 0, area.Y, 1e-12)

	area = g.JFace(0, 0).Area()
	assert.InDelta(t, 0, area.X, 1e-12)
	assert.InDelta(t, 1, area.Y, 1e-12)

	assert.Equal(t, 6, g.InteriorIFaces().Len())
}

func TestMakeEllipticTotalArea(t *testing.T) {
	a := 2.0
	g, err := grid.MakeElliptic(a, [2]float64{0, 1}, [2]float64{math.Pi / 6, math.Pi / 3}, [2]int{21, 17})
	require.NoError(t, err)

	exact := math.Pi * a * a * math.Sinh(2.0) / 24
	assert.InDelta(t, exact, g.TotalVolume(), 0.001)
}

func TestMakeHyperbolicForebodyLiteralVertices(t *testing.T) {
	g, err := grid.MakeHyperbolicForebody(2.0, 1.0, 0.2, math.Pi/4, [2]int{11, 11})
	require.NoError(t, err)

	v := g.Vertex(0, 0)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	v = g.Vertex(0, 10)
	assert.InDelta(t, -7.136646549690036e-01, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	v = g.Vertex(10, 10)
	assert.InDelta(t, 9.295030175464944e-01, v.X, 1e-9)
	assert.InDelta(t, 2.738612787525831e+00, v.Y, 1e-9)
}

func TestCellVolumesArePositive(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{5, 7})
	require.NoError(t, err)
	for _, c := range g.Cells().Slice() {
		assert.Greater(t, c.Volume(), 0.0)
	}
}

func TestTranslationInvariance(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 2}, [2]int{4, 5})
	require.NoError(t, err)

	volumesBefore := make([]float64, 0)
	for _, c := range g.Cells().Slice() {
		volumesBefore = append(volumesBefore, c.Volume())
	}
	areasBefore := make([]numeric.Vec2, 0)
	for _, f := range g.IFaces().Slice() {
		areasBefore = append(areasBefore, f.Area())
	}

	offset := numeric.Vec2{X: 3.5, Y: -1.25}
	v0 := g.Vertex(0, 0)
	g.Translate(offset)

	assert.InDelta(t, v0.X+offset.X, g.Vertex(0, 0).X, 1e-12)
	assert.InDelta(t, v0.Y+offset.Y, g.Vertex(0, 0).Y, 1e-12)

	for i, c := range g.Cells().Slice() {
		assert.InDelta(t, volumesBefore[i], c.Volume(), 1e-12)
	}
	for i, f := range g.IFaces().Slice() {
		assert.InDelta(t, areasBefore[i].X, f.Area().X, 1e-12)
		assert.InDelta(t, areasBefore[i].Y, f.Area().Y, 1e-12)
	}
}

func TestAreaVectorOrientation(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{4, 4})
	require.NoError(t, err)
	for _, f := range g.IFaces().Slice() {
		v0, v1 := f.Vertex(0), f.Vertex(1)
		tangent := numeric.Sub(v1, v0)
		assert.Greater(t, numeric.Cross2D(tangent, f.Area()), 0.0)
	}
	for _, f := range g.JFaces().Slice() {
		v0, v1 := f.Vertex(0), f.Vertex(1)
		tangent := numeric.Sub(v1, v0)
		assert.Greater(t, numeric.Cross2D(tangent, f.Area()), 0.0)
	}
}

func TestInteriorIFaceNeighbors(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{5, 4})
	require.NoError(t, err)
	// i=2 is interior for Nvi=5 (iface size is 5 along i, interior is [1,4))
	f := g.IFace(2, 1)
	assert.True(t, f.Cell(0).Equal(g.Cell(1, 1)))
	assert.True(t, f.Cell(1).Equal(g.Cell(2, 1)))
}

func TestRangeClosure(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{6, 5})
	require.NoError(t, err)
	assert.Equal(t, g.SizeCell(0)*g.SizeCell(1), g.Cells().Len())
	assert.Equal(t, g.SizeIFace(1), g.MinIFaces().Len())
	assert.Equal(t, (g.SizeIFace(0)-2)*g.SizeIFace(1), g.InteriorIFaces().Len())
	assert.Equal(t, g.SizeJFace(0), g.MinJFaces().Len())
	assert.Equal(t, g.SizeJFace(0)*(g.SizeJFace(1)-2), g.InteriorJFaces().Len())
}

func TestPlot3DRoundTrip(t *testing.T) {
	g, err := grid.MakeElliptic(1.5, [2]float64{0, 1}, [2]float64{0, math.Pi / 2}, [2]int{6, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))

	g2, err := grid.Read(&buf)
	require.NoError(t, err)

	require.Equal(t, g.SizeVertex(0), g2.SizeVertex(0))
	require.Equal(t, g.SizeVertex(1), g2.SizeVertex(1))
	for i := 0; i < g.SizeVertex(0); i++ {
		for j := 0; j < g.SizeVertex(1); j++ {
			v1, v2 := g.Vertex(i, j), g2.Vertex(i, j)
			assert.InDelta(t, v1.X, v2.X, 1e-14)
			assert.InDelta(t, v1.Y, v2.Y, 1e-14)
		}
	}
}

func TestNoNeighborOnBoundaryIFace(t *testing.T) {
	g, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{4, 4})
	require.NoError(t, err)
	f := g.IFace(0, 0)
	assert.Panics(t, func() { f.Cell(0) })
}

func TestInvalidGridSize(t *testing.T) {
	_, err := grid.MakeCartesian([2]float64{0, 1}, [2]float64{0, 1}, [2]int{1, 4})
	require.Error(t, err)
}
