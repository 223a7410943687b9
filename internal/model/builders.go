package model

import (
	"fmt"

	"github.com/san-kum/treedyn/internal/joint"
	"github.com/san-kum/treedyn/internal/spatial"
)

// Pendulum builds a one-body tree: a point mass at distance length along
// the body x-axis, swinging about the joint y-axis.
func Pendulum(mass, length float64) (*Tree, error) {
	inertia, err := PointMass(mass, []float64{length, 0, 0})
	if err != nil {
		return nil, err
	}
	return New([]Body{
		{Parent: -1, Joint: joint.RevoluteY, Inertia: inertia},
	})
}

// PlanarChain builds a serial chain of point masses swinging about the
// y-axis: body i carries masses[i] at the tip of a link of lengths[i], and
// each child joint sits at the tip of its parent's link.
func PlanarChain(masses, lengths []float64) (*Tree, error) {
	if len(masses) == 0 || len(masses) != len(lengths) {
		return nil, fmt.Errorf("%w: chain needs equal, non-empty masses and lengths (got %d and %d)",
			ErrBadBody, len(masses), len(lengths))
	}

	bodies := make([]Body, len(masses))
	for i := range masses {
		inertia, err := PointMass(masses[i], []float64{lengths[i], 0, 0})
		if err != nil {
			return nil, err
		}
		b := Body{Parent: i - 1, Joint: joint.RevoluteY, Inertia: inertia}
		if i > 0 {
			xtree, err := spatial.Xlt([]float64{lengths[i-1], 0, 0})
			if err != nil {
				return nil, err
			}
			b.Xtree = xtree
		}
		bodies[i] = b
	}
	return New(bodies)
}

// DoublePendulum builds a two-link planar chain.
func DoublePendulum(m1, l1, m2, l2 float64) (*Tree, error) {
	return PlanarChain([]float64{m1, m2}, []float64{l1, l2})
}

// GolfSwing builds a two-segment swing model: the arms as a uniform rod and
// the club as a lighter rod with most of its mass toward the head, both
// rotating about the y-axis.
func GolfSwing() (*Tree, error) {
	const (
		armMass    = 7.0
		armLength  = 0.62
		clubMass   = 0.31
		clubLength = 1.12
	)

	armInertia, err := RodInertia(armMass, armLength)
	if err != nil {
		return nil, err
	}
	// Club head dominates: lump the mass 80% of the way down the shaft.
	clubInertia, err := PointMass(clubMass, []float64{0.8 * clubLength, 0, 0})
	if err != nil {
		return nil, err
	}
	wrist, err := spatial.Xlt([]float64{armLength, 0, 0})
	if err != nil {
		return nil, err
	}

	return New([]Body{
		{Parent: -1, Joint: joint.RevoluteY, Inertia: armInertia},
		{Parent: 0, Joint: joint.RevoluteY, Xtree: wrist, Inertia: clubInertia},
	})
}
