// Package model defines the read-only kinematic tree consumed by the
// dynamics engine: one record per body holding its parent index, joint
// type, fixed parent-to-joint transform, and spatial inertia.
//
// A Tree is validated once at construction and never mutated afterwards,
// so it may be shared across concurrent inverse-dynamics calls.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/joint"
	"github.com/san-kum/treedyn/internal/spatial"
)

// DefaultGravity is the magnitude of the default gravity vector, which
// points along -z.
const DefaultGravity = 9.81

var (
	// ErrTopology indicates a parent index that breaks the strict
	// parent-before-child ordering.
	ErrTopology = errors.New("model: bodies must be ordered parent before child")

	// ErrBadBody indicates a body with invalid joint, transform, or
	// inertia data.
	ErrBadBody = errors.New("model: invalid body")
)

// Body is one rigid body of the tree, indexed by position. Parent is the
// index of the parent body, or -1 for bodies attached to the fixed base.
// Xtree maps spatial vectors from the parent frame to this body's
// joint-predecessor frame. A nil Xtree means identity; a nil Inertia means
// a massless body (used as the intermediate link of a multi-DOF joint).
type Body struct {
	Parent  int
	Joint   joint.Type
	Xtree   *mat.Dense
	Inertia *mat.Dense
}

// Tree is an immutable kinematic tree rooted at a fixed base.
type Tree struct {
	bodies  []Body
	gravity spatial.Vector
}

// Option adjusts tree construction.
type Option func(*Tree)

// WithGravity overrides the default gravity vector.
func WithGravity(g spatial.Vector) Option {
	return func(t *Tree) { t.gravity = g.Clone() }
}

// DefaultGravityVector returns [0,0,0,0,0,-9.81].
func DefaultGravityVector() spatial.Vector {
	return spatial.Vector{0, 0, 0, 0, 0, -DefaultGravity}
}

// New validates the body records and builds a tree. Bodies must be listed
// parent before child: parent[i] in [-1, i). Joint types are checked here
// once so the per-call sweeps never see an unknown type.
func New(bodies []Body, opts ...Option) (*Tree, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: tree needs at least one body", ErrBadBody)
	}

	t := &Tree{
		bodies:  make([]Body, len(bodies)),
		gravity: DefaultGravityVector(),
	}

	for i, b := range bodies {
		if b.Parent < -1 || b.Parent >= i {
			return nil, fmt.Errorf("%w: body %d has parent %d", ErrTopology, i, b.Parent)
		}
		if _, _, err := joint.Calc(b.Joint, 0); err != nil {
			return nil, fmt.Errorf("%w: body %d: %v", ErrBadBody, i, err)
		}

		if b.Xtree == nil {
			b.Xtree = spatial.Identity()
		} else if err := check6x6(b.Xtree); err != nil {
			return nil, fmt.Errorf("%w: body %d Xtree: %v", ErrBadBody, i, err)
		}

		if b.Inertia == nil {
			b.Inertia = mat.NewDense(6, 6, nil)
		} else if err := check6x6(b.Inertia); err != nil {
			return nil, fmt.Errorf("%w: body %d inertia: %v", ErrBadBody, i, err)
		}

		t.bodies[i] = b
	}

	for _, opt := range opts {
		opt(t)
	}
	if len(t.gravity) != 6 {
		return nil, fmt.Errorf("%w: gravity must be a 6-vector, got length %d", ErrBadBody, len(t.gravity))
	}

	return t, nil
}

// NB returns the number of bodies.
func (t *Tree) NB() int { return len(t.bodies) }

// Body returns body i. The contained matrices are shared and must be
// treated as read-only.
func (t *Tree) Body(i int) Body { return t.bodies[i] }

// Gravity returns the tree's gravity vector; treat it as read-only.
func (t *Tree) Gravity() spatial.Vector { return t.gravity }

// WithGravity returns a tree sharing this tree's bodies but using a
// different gravity vector.
func (t *Tree) WithGravity(g spatial.Vector) *Tree {
	return &Tree{bodies: t.bodies, gravity: g.Clone()}
}

func check6x6(m *mat.Dense) error {
	r, c := m.Dims()
	if r != 6 || c != 6 {
		return fmt.Errorf("want 6×6, got %d×%d", r, c)
	}
	return nil
}
