package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/spatial"
)

// SpatialInertia assembles the 6×6 spatial inertia of a rigid body from its
// mass, center of mass (in the body frame), and 3×3 rotational inertia
// about the center of mass (nil means a point mass):
//
//	I = [ Ic + m·C·Cᵀ   m·C  ]
//	    [ m·Cᵀ          m·1₃ ]
//
// where C = skew(com).
func SpatialInertia(mass float64, com []float64, ic *mat.Dense) (*mat.Dense, error) {
	c, err := spatial.Skew(com)
	if err != nil {
		return nil, err
	}
	if ic == nil {
		ic = mat.NewDense(3, 3, nil)
	} else if r, cols := ic.Dims(); r != 3 || cols != 3 {
		return nil, fmt.Errorf("%w: rotational inertia must be 3×3, got %d×%d", spatial.ErrShape, r, cols)
	}

	var cct mat.Dense
	cct.Mul(c, c.T())

	out := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, ic.At(i, j)+mass*cct.At(i, j))
			out.Set(i, j+3, mass*c.At(i, j))
			out.Set(i+3, j, mass*c.At(j, i))
			if i == j {
				out.Set(i+3, j+3, mass)
			}
		}
	}
	return out, nil
}

// PointMass returns the spatial inertia of a point mass at com.
func PointMass(mass float64, com []float64) (*mat.Dense, error) {
	return SpatialInertia(mass, com, nil)
}

// RodInertia returns the spatial inertia of a thin uniform rod of the given
// mass lying along the body x-axis from the origin to length.
func RodInertia(mass, length float64) (*mat.Dense, error) {
	// About the rod's own center: Iyy = Izz = m·L²/12.
	moment := mass * length * length / 12.0
	ic := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, moment, 0,
		0, 0, moment,
	})
	return SpatialInertia(mass, []float64{length / 2, 0, 0}, ic)
}
