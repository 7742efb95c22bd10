package lotus

import (
	"math"

	"github.com/golang/geo/r3"
)

// Affine is a 3x3 linear map followed by a translation.
type Affine struct {
	M [3][3]float64
	T r3.Vector
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Transform is a scene-graph node transform: scale, then XYZ Euler rotation,
// then translation.
type Transform struct {
	Rotation r3.Vector
	Position r3.Vector
	Scale    float64
}

// Affine returns the matrix form of t.
func (t Transform) Affine() Affine {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	r := mul3(mul3(rotX(t.Rotation.X), rotY(t.Rotation.Y)), rotZ(t.Rotation.Z))
	for i := range 3 {
		for j := range 3 {
			r[i][j] *= s
		}
	}
	return Affine{M: r, T: t.Position}
}

// Then returns the transform applying a first and b second.
func (a Affine) Then(b Affine) Affine {
	return Affine{
		M: mul3(b.M, a.M),
		T: b.Apply(a.T),
	}
}

// Apply maps v through a.
func (a Affine) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.T.X,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.T.Y,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.T.Z,
	}
}

func mul3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := range 3 {
		for j := range 3 {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

func rotX(a float64) [3][3]float64 {
	s, c := math.Sincos(a)
	return [3][3]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotY(a float64) [3][3]float64 {
	s, c := math.Sincos(a)
	return [3][3]float64{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotZ(a float64) [3][3]float64 {
	s, c := math.Sincos(a)
	return [3][3]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}
