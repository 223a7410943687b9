package spatial

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CrossKind selects between the motion and force cross products.
type CrossKind int

const (
	Motion CrossKind = iota
	Force
)

// Skew returns the 3×3 skew-symmetric matrix M with M·u = v×u for all u.
func Skew(v []float64) (*mat.Dense, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("%w: skew wants a 3-vector, got length %d", ErrShape, len(v))
	}
	return skew3(v), nil
}

func skew3(v []float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	})
}

// Crm returns the 6×6 cross operator for motion vectors:
//
//	crm(v) = [ skew(w)       0   ]
//	         [ skew(u)   skew(w) ]
//
// with v = [w; u].
func Crm(v Vector) (*mat.Dense, error) {
	if len(v) != 6 {
		return nil, fmt.Errorf("%w: crm wants a 6-vector, got length %d", ErrShape, len(v))
	}
	w := skew3(v.Angular())
	m := mat.NewDense(6, 6, nil)
	copyBlock(m, 0, 0, w)
	copyBlock(m, 3, 0, skew3(v.Linear()))
	copyBlock(m, 3, 3, w)
	return m, nil
}

// Crf returns the 6×6 cross operator for force vectors, the dual of Crm:
// crf(v) = -crm(v)ᵀ. It appears in the velocity-product bias wrench
// v ×* (I·v).
func Crf(v Vector) (*mat.Dense, error) {
	if len(v) != 6 {
		return nil, fmt.Errorf("%w: crf wants a 6-vector, got length %d", ErrShape, len(v))
	}
	w := skew3(v.Angular())
	m := mat.NewDense(6, 6, nil)
	copyBlock(m, 0, 0, w)
	copyBlock(m, 0, 3, skew3(v.Linear()))
	copyBlock(m, 3, 3, w)
	return m, nil
}

// Cross computes the spatial cross product of v with u, dispatching on kind:
// crm(v)·u for Motion, crf(v)·u for Force.
func Cross(v, u Vector, kind CrossKind) (Vector, error) {
	if len(u) != 6 {
		return nil, fmt.Errorf("%w: cross wants a 6-vector operand, got length %d", ErrShape, len(u))
	}

	var (
		op  *mat.Dense
		err error
	)
	switch kind {
	case Motion:
		op, err = Crm(v)
	case Force:
		op, err = Crf(v)
	default:
		return nil, fmt.Errorf("%w: %d", ErrCrossKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return apply(op, u), nil
}

// copyBlock writes the 3×3 block b into m at (row, col).
func copyBlock(m *mat.Dense, row, col int, b *mat.Dense) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(row+i, col+j, b.At(i, j))
		}
	}
}
