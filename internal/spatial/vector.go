package spatial

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a 6-component spatial vector, angular part first:
// [wx, wy, wz, vx, vy, vz].
type Vector []float64

// Zero returns a fresh all-zero spatial vector.
func Zero() Vector {
	return make(Vector, 6)
}

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Angular returns the first three components.
func (v Vector) Angular() []float64 { return v[:3] }

// Linear returns the last three components.
func (v Vector) Linear() []float64 { return v[3:] }

func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] + other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Sub(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] - other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

func (v Vector) Dot(other Vector) float64 {
	sum := 0.0
	for i := range v {
		if i < len(other) {
			sum += v[i] * other[i]
		}
	}
	return sum
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// apply multiplies a dense matrix by a vector, returning a fresh Vector.
func apply(m mat.Matrix, v []float64) Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(v), v))
	return Vector(out.RawVector().Data)
}
