package numeric

import "math"

// Vec4 is a fixed-size 4-element numeric vector: the common storage shape
// for conservative state and flux vectors. No example in the reference
// corpus supplies a fixed 4-vector (gonum's spatial package stops at r3),
// so this one small type is hand-rolled rather than imported.
type Vec4 [4]float64

// Add returns the componentwise sum v+o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns the componentwise difference v-o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// AbsSquared returns the componentwise square of v, used when
// accumulating an RMS norm across many Vec4 samples.
func (v Vec4) AbsSquared() Vec4 {
	return Vec4{v[0] * v[0], v[1] * v[1], v[2] * v[2], v[3] * v[3]}
}

// RMS reduces a slice of per-cell Vec4 samples to a componentwise root-
// mean-square 4-vector: sqrt(mean_over_cells(x[c]^2)).
func RMS(xs []Vec4) [4]float64 {
	var sumSq Vec4
	for _, x := range xs {
		sumSq = sumSq.Add(x.AbsSquared())
	}
	n := float64(len(xs))
	var out [4]float64
	for i := range out {
		out[i] = math.Sqrt(sumSq[i] / n)
	}
	return out
}
