package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/model"
	"github.com/san-kum/treedyn/internal/spatial"
)

// GravityTorques returns the torques that hold the tree static at q.
func GravityTorques(tree *model.Tree, q []float64) ([]float64, error) {
	zero := make([]float64, tree.NB())
	return RNEA(tree, q, zero, zero, nil)
}

// BiasForces returns the torques due to gravity plus the velocity-product
// (Coriolis and centrifugal) effects: an RNEA sweep with qdd = 0.
func BiasForces(tree *model.Tree, q, qd []float64) ([]float64, error) {
	return RNEA(tree, q, qd, make([]float64, tree.NB()), nil)
}

// MassMatrix returns the joint-space inertia matrix H(q), assembled one
// column at a time from unit-acceleration RNEA sweeps with gravity
// removed: H[:,j] = RNEA(q, 0, e_j) at zero gravity.
func MassMatrix(tree *model.Tree, q []float64) (*mat.SymDense, error) {
	nb := tree.NB()
	if len(q) != nb {
		return nil, fmt.Errorf("%w: q must have length %d, got %d", ErrDimensionMismatch, nb, len(q))
	}

	weightless := tree.WithGravity(spatial.Zero())
	zero := make([]float64, nb)
	unit := make([]float64, nb)

	h := mat.NewSymDense(nb, nil)
	for j := 0; j < nb; j++ {
		unit[j] = 1
		col, err := RNEA(weightless, q, zero, unit, nil)
		if err != nil {
			return nil, err
		}
		unit[j] = 0

		for i := j; i < nb; i++ {
			h.SetSym(i, j, col[i])
		}
	}
	return h, nil
}
