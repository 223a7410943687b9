package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FitPolynomial fits y(t) ≈ c0 + c1·t + … + c_degree·t^degree by least
// squares over the samples and returns the fitted polynomial. Used to
// condense a torque profile into a handful of coefficients.
func FitPolynomial(t, y []float64, degree int) (Polynomial, error) {
	if len(t) != len(y) {
		return Polynomial{}, fmt.Errorf("trajectory: t and y must have the same length, got %d and %d", len(t), len(y))
	}
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("trajectory: degree must be non-negative, got %d", degree)
	}
	if len(t) < degree+1 {
		return Polynomial{}, fmt.Errorf("trajectory: need at least %d samples for degree %d, got %d", degree+1, degree, len(t))
	}

	a := mat.NewDense(len(t), degree+1, nil)
	for i, ti := range t {
		pow := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, pow)
			pow *= ti
		}
	}

	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(len(y), y)); err != nil {
		return Polynomial{}, fmt.Errorf("trajectory: fit failed: %w", err)
	}

	coeffs := make([]float64, degree+1)
	copy(coeffs, c.RawVector().Data)
	return Polynomial{Coeffs: coeffs}, nil
}
