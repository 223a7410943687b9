package dynamics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/joint"
	"github.com/san-kum/treedyn/internal/model"
	"github.com/san-kum/treedyn/internal/spatial"
)

// ErrDimensionMismatch indicates per-call inputs whose lengths do not match
// the tree's body count.
var ErrDimensionMismatch = errors.New("dynamics: dimension mismatch")

// RNEA computes the joint torques required to produce the motion (q, qd,
// qdd) of the tree. fext optionally supplies one external wrench per body,
// expressed in that body's frame; nil means no external forces.
//
// The forward sweep propagates velocities and accelerations from the base
// out, with gravity folded in as the base's effective acceleration. The
// backward sweep accumulates the Newton-Euler wrench on each body, projects
// it onto the joint axis, and hands the reaction to the parent through the
// transpose of the same composed transform used on the way out.
func RNEA(tree *model.Tree, q, qd, qdd []float64, fext []spatial.Vector) ([]float64, error) {
	nb := tree.NB()
	if len(q) != nb || len(qd) != nb || len(qdd) != nb {
		return nil, fmt.Errorf("%w: q/qd/qdd must have length %d, got %d/%d/%d",
			ErrDimensionMismatch, nb, len(q), len(qd), len(qdd))
	}
	if fext != nil {
		if len(fext) != nb {
			return nil, fmt.Errorf("%w: fext must have one wrench per body (%d), got %d",
				ErrDimensionMismatch, nb, len(fext))
		}
		for i, w := range fext {
			if len(w) != 6 {
				return nil, fmt.Errorf("%w: fext[%d] has length %d, want 6",
					ErrDimensionMismatch, i, len(w))
			}
		}
	}

	v := make([]spatial.Vector, nb)
	a := make([]spatial.Vector, nb)
	f := make([]spatial.Vector, nb)
	s := make([]spatial.Vector, nb)
	xup := make([]*mat.Dense, nb)
	tau := make([]float64, nb)

	minusG := tree.Gravity().Scale(-1)

	for i := 0; i < nb; i++ {
		b := tree.Body(i)
		xj, si, err := joint.Calc(b.Joint, q[i])
		if err != nil {
			return nil, err
		}
		s[i] = si
		vj := si.Scale(qd[i])

		if b.Parent == -1 {
			// Base bodies compose against the fixed base with Xj alone;
			// Xtree does not enter, and the parent velocity is zero.
			xup[i] = xj
			v[i] = vj
			a[i] = spatial.TransformMotion(xj, minusG).Add(si.Scale(qdd[i]))
			f[i] = spatial.Zero()
			continue
		}

		var x mat.Dense
		x.Mul(xj, b.Xtree)
		xup[i] = &x

		p := b.Parent
		v[i] = spatial.TransformMotion(&x, v[p]).Add(vj)

		bias, err := spatial.Cross(v[i], vj, spatial.Motion)
		if err != nil {
			return nil, err
		}
		a[i] = spatial.TransformMotion(&x, a[p]).Add(si.Scale(qdd[i])).Add(bias)
		f[i] = spatial.Zero()
	}

	for i := nb - 1; i >= 0; i-- {
		b := tree.Body(i)

		iv := mulVec(b.Inertia, v[i])
		biasWrench, err := spatial.Cross(v[i], iv, spatial.Force)
		if err != nil {
			return nil, err
		}

		wrench := mulVec(b.Inertia, a[i]).Add(biasWrench)
		if fext != nil {
			wrench = wrench.Sub(fext[i])
		}

		// Children sit later in the ordering and have already pushed their
		// reactions onto f[i].
		f[i] = f[i].Add(wrench)
		tau[i] = s[i].Dot(f[i])

		if b.Parent != -1 {
			p := b.Parent
			f[p] = f[p].Add(spatial.TransformForce(xup[i], f[i]))
		}
	}

	return tau, nil
}

func mulVec(m mat.Matrix, v spatial.Vector) spatial.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(v), v))
	return spatial.Vector(out.RawVector().Data)
}
