package grid

import (
	"math"

	"github.com/flying-tiger/jflow/internal/errs"
	"github.com/flying-tiger/jflow/internal/numeric"
)

// MakeCartesian builds a uniform rectangular grid over
// [xRange[0],xRange[1]] x [yRange[0],yRange[1]].
func MakeCartesian(xRange, yRange [2]float64, size [2]int) (*StructuredGrid, error) {
	if size[0] < 2 {
		return nil, errs.New(errs.InvalidGrid, "nx is too small: %d", size[0])
	}
	if size[1] < 2 {
		return nil, errs.New(errs.InvalidGrid, "ny is too small: %d", size[1])
	}
	vertices := make([]numeric.Vec2, 0, size[0]*size[1])
	dx := (xRange[1] - xRange[0]) / float64(size[0]-1)
	dy := (yRange[1] - yRange[0]) / float64(size[1]-1)
	for i := 0; i < size[0]; i++ {
		for j := 0; j < size[1]; j++ {
			x := xRange[0] + float64(i)*dx
			y := yRange[0] + float64(j)*dy
			vertices = append(vertices, numeric.Vec2{X: x, Y: y})
		}
	}
	return NewFromVertices(size, vertices)
}

// MakeElliptic builds a grid in elliptic coordinates with linear
// eccentricity a: x = a*cosh(mu)*cos(nu), y = a*sinh(mu)*sin(nu).
func MakeElliptic(a float64, muRange, nuRange [2]float64, size [2]int) (*StructuredGrid, error) {
	if a < 0 {
		return nil, errs.New(errs.InvalidGrid, "eccentricity must be non-negative, got %g", a)
	}
	if size[0] < 2 {
		return nil, errs.New(errs.InvalidGrid, "nx is too small: %d", size[0])
	}
	if size[1] < 2 {
		return nil, errs.New(errs.InvalidGrid, "ny is too small: %d", size[1])
	}
	vertices := make([]numeric.Vec2, 0, size[0]*size[1])
	dmu := (muRange[1] - muRange[0]) / float64(size[0]-1)
	dnu := (nuRange[1] - nuRange[0]) / float64(size[1]-1)
	for i := 0; i < size[0]; i++ {
		for j := 0; j < size[1]; j++ {
			mu := muRange[0] + float64(i)*dmu
			nu := nuRange[0] + float64(j)*dnu
			x := a * math.Cosh(mu) * math.Cos(nu)
			y := a * math.Sinh(mu) * math.Sin(nu)
			vertices = append(vertices, numeric.Vec2{X: x, Y: y})
		}
	}
	return NewFromVertices(size, vertices)
}

// MakeHyperbolicForebody constructs an elliptic grid whose inner contour
// is a hyperboloid forebody with the given length, base radius, nose
// radius of curvature, and outer boundary angle. After construction, the
// grid is translated so the nose tip vertex(0,0) lies at the origin.
func MakeHyperbolicForebody(length, baseRadius, noseRadius, boundaryAngle float64, size [2]int) (*StructuredGrid, error) {
	ratio := baseRadius * baseRadius / (length * noseRadius)
	if ratio < 2 {
		return nil, errs.New(errs.InvalidGrid,
			"base_radius^2/(length*nose_radius) must be >= 2, got %g", ratio)
	}
	muMax := math.Acosh(ratio - 1)
	a := length / (math.Cosh(muMax) - 1)
	b := baseRadius / math.Sinh(muMax)
	c := math.Sqrt(a*a + b*b)
	nuMin := math.Atan(b / a)
	nuMax := math.Atan(math.Tan(boundaryAngle) * math.Tanh(muMax))

	g, err := MakeElliptic(c, [2]float64{0, muMax}, [2]float64{nuMin, nuMax}, size)
	if err != nil {
		return nil, err
	}
	nose := g.Vertex(0, 0)
	g.Translate(numeric.Vec2{X: -nose.X, Y: -nose.Y})
	return g, nil
}
