// Package joint maps single-DOF joint types to their spatial transform and
// motion subspace. The set of joint types is closed: three revolute and
// three prismatic axes. Multi-DOF joints are modeled upstream as chains of
// single-DOF bodies linked by massless intermediate bodies.
package joint

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/spatial"
)

// ErrUnsupportedType indicates a joint type outside the closed set.
var ErrUnsupportedType = errors.New("joint: unsupported joint type")

// Type identifies a single-DOF joint.
type Type int

const (
	RevoluteX Type = iota
	RevoluteY
	RevoluteZ
	PrismaticX
	PrismaticY
	PrismaticZ
)

func (t Type) String() string {
	switch t {
	case RevoluteX:
		return "Rx"
	case RevoluteY:
		return "Ry"
	case RevoluteZ:
		return "Rz"
	case PrismaticX:
		return "Px"
	case PrismaticY:
		return "Py"
	case PrismaticZ:
		return "Pz"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Parse converts a joint tag (Rx, Ry, Rz, Px, Py, Pz) to its Type.
func Parse(tag string) (Type, error) {
	switch tag {
	case "Rx":
		return RevoluteX, nil
	case "Ry":
		return RevoluteY, nil
	case "Rz":
		return RevoluteZ, nil
	case "Px":
		return PrismaticX, nil
	case "Py":
		return PrismaticY, nil
	case "Pz":
		return PrismaticZ, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: Rx, Ry, Rz, Px, Py, Pz)", ErrUnsupportedType, tag)
	}
}

// Calc returns the joint transform Xj and motion subspace S for a joint of
// type t at generalized coordinate q (radians for revolute joints, meters
// for prismatic joints). S is the fixed unit basis of the joint's free
// axis: the joint contributes S·qd to velocity and S·qdd to acceleration.
func Calc(t Type, q float64) (*mat.Dense, spatial.Vector, error) {
	var (
		xj  *mat.Dense
		s   spatial.Vector
		err error
	)

	switch t {
	case RevoluteX:
		xj, err = spatial.Xrot(spatial.RotX(q))
		s = spatial.Vector{1, 0, 0, 0, 0, 0}
	case RevoluteY:
		xj, err = spatial.Xrot(spatial.RotY(q))
		s = spatial.Vector{0, 1, 0, 0, 0, 0}
	case RevoluteZ:
		xj, err = spatial.Xrot(spatial.RotZ(q))
		s = spatial.Vector{0, 0, 1, 0, 0, 0}
	case PrismaticX:
		xj, err = spatial.Xlt([]float64{q, 0, 0})
		s = spatial.Vector{0, 0, 0, 1, 0, 0}
	case PrismaticY:
		xj, err = spatial.Xlt([]float64{0, q, 0})
		s = spatial.Vector{0, 0, 0, 0, 1, 0}
	case PrismaticZ:
		xj, err = spatial.Xlt([]float64{0, 0, q})
		s = spatial.Vector{0, 0, 0, 0, 0, 1}
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
	if err != nil {
		return nil, nil, err
	}
	return xj, s, nil
}
