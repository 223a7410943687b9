package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// rotTol bounds how far a rotation matrix may stray from orthonormality.
const rotTol = 1e-6

// RotX returns the 3×3 rotation by q radians about the x-axis.
func RotX(q float64) *mat.Dense {
	c, s := math.Cos(q), math.Sin(q)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the 3×3 rotation by q radians about the y-axis.
func RotY(q float64) *mat.Dense {
	c, s := math.Cos(q), math.Sin(q)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the 3×3 rotation by q radians about the z-axis.
func RotZ(q float64) *mat.Dense {
	c, s := math.Cos(q), math.Sin(q)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// Identity returns the 6×6 identity transform.
func Identity() *mat.Dense {
	m := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Xrot builds the block-diagonal 6×6 transform [[E,0],[0,E]] for a pure
// rotation E. E must be orthonormal with determinant within rotTol of 1.
func Xrot(e mat.Matrix) (*mat.Dense, error) {
	if err := checkRotation(e); err != nil {
		return nil, err
	}
	x := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i, j, e.At(i, j))
			x.Set(i+3, j+3, e.At(i, j))
		}
	}
	return x, nil
}

// Xlt builds the 6×6 transform [[I,0],[-skew(r),I]] for a pure translation
// by r, motion-vector convention.
func Xlt(r []float64) (*mat.Dense, error) {
	if len(r) != 3 {
		return nil, fmt.Errorf("%w: xlt wants a 3-vector, got length %d", ErrShape, len(r))
	}
	x := Identity()
	rs := skew3(r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i+3, j, -rs.At(i, j))
		}
	}
	return x, nil
}

// Xtrans builds the general Plücker transform [[E,0],[-E·skew(r),E]] for a
// rotation E and translation r. For motion vectors v_A = X·v_B; for force
// vectors f_B = Xᵀ·f_A. Use TransformMotion and TransformForce to apply the
// correct side.
func Xtrans(e mat.Matrix, r []float64) (*mat.Dense, error) {
	if err := checkRotation(e); err != nil {
		return nil, err
	}
	if len(r) != 3 {
		return nil, fmt.Errorf("%w: xtrans wants a 3-vector, got length %d", ErrShape, len(r))
	}

	var lower mat.Dense
	lower.Mul(e, skew3(r))

	x := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i, j, e.At(i, j))
			x.Set(i+3, j+3, e.At(i, j))
			x.Set(i+3, j, -lower.At(i, j))
		}
	}
	return x, nil
}

// InvXtrans builds the closed-form inverse of Xtrans(E, r),
// [[Eᵀ,0],[skew(r)·Eᵀ,Eᵀ]], cheaper than a general matrix inversion.
func InvXtrans(e mat.Matrix, r []float64) (*mat.Dense, error) {
	if err := checkRotation(e); err != nil {
		return nil, err
	}
	if len(r) != 3 {
		return nil, fmt.Errorf("%w: inv xtrans wants a 3-vector, got length %d", ErrShape, len(r))
	}

	var lower mat.Dense
	lower.Mul(skew3(r), e.T())

	x := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i, j, e.At(j, i))
			x.Set(i+3, j+3, e.At(j, i))
			x.Set(i+3, j, lower.At(i, j))
		}
	}
	return x, nil
}

// TransformMotion maps a motion vector across frames: v_A = X·v_B.
// X must be 6×6 and v length 6.
func TransformMotion(x mat.Matrix, v Vector) Vector {
	return apply(x, v)
}

// TransformForce maps a force vector across frames using the transpose
// side of the same transform: f_B = Xᵀ·f_A.
func TransformForce(x mat.Matrix, f Vector) Vector {
	return apply(x.T(), f)
}

func checkRotation(e mat.Matrix) error {
	r, c := e.Dims()
	if r != 3 || c != 3 {
		return fmt.Errorf("%w: rotation must be 3×3, got %d×%d", ErrShape, r, c)
	}

	det := mat.Det(e)
	if math.Abs(det-1) > rotTol {
		return fmt.Errorf("%w: det = %g", ErrInvalidRotation, det)
	}

	var ete mat.Dense
	ete.Mul(e.T(), e)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(ete.At(i, j)-want) > rotTol {
				return fmt.Errorf("%w: columns are not orthonormal", ErrInvalidRotation)
			}
		}
	}
	return nil
}
