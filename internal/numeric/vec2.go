// Package numeric supplies the small fixed-size vector types used by the
// grid and physics packages: a 2-element vector for geometry (grounded on
// gonum's spatial/r2 package) and a hand-rolled 4-element vector for
// conservative/flux state.
package numeric

import "gonum.org/v1/gonum/spatial/r2"

// Vec2 is a 2D point or vector. It is an alias for gonum's r2.Vec so that
// grid geometry can use gonum's Add/Sub/Scale directly.
type Vec2 = r2.Vec

// Add returns a+b.
func Add(a, b Vec2) Vec2 { return r2.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec2) Vec2 { return r2.Sub(a, b) }

// Scale returns s*v.
func Scale(s float64, v Vec2) Vec2 { return r2.Scale(s, v) }

// Dot returns the dot product a.b.
func Dot(a, b Vec2) float64 { return r2.Dot(a, b) }

// Cross2D returns the z-component of the 3D cross product of a and b
// treated as vectors in the xy-plane: a.X*b.Y - a.Y*b.X. Gonum's r2
// package has no cross product (it is not generally meaningful for
// planar vectors), so this is a small bespoke addition.
func Cross2D(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rot90CW returns (-v.Y, v.X), the quarter turn of v counter-clockwise in
// the x-y plane, so Cross2D(v, Rot90CW(v)) > 0. It turns a face tangent
// into the face's signed area vector.
func Rot90CW(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}
