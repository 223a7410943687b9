package dynamics

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/treedyn/internal/model"
	"github.com/san-kum/treedyn/internal/spatial"
)

func TestRNEADimensionMismatch(t *testing.T) {
	tree, err := model.Pendulum(1, 1)
	if err != nil {
		t.Fatalf("pendulum failed: %v", err)
	}

	one := []float64{0}
	two := []float64{0, 0}

	cases := []struct {
		name          string
		q, qd, qdd    []float64
		fext          []spatial.Vector
	}{
		{"short q", two[:0], one, one, nil},
		{"long q", two, one, one, nil},
		{"short qd", one, nil, one, nil},
		{"long qdd", one, one, two, nil},
		{"long fext", one, one, one, []spatial.Vector{spatial.Zero(), spatial.Zero()}},
		{"short wrench", one, one, one, []spatial.Vector{{1, 2, 3}}},
	}

	for _, tc := range cases {
		if _, err := RNEA(tree, tc.q, tc.qd, tc.qdd, tc.fext); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: expected ErrDimensionMismatch, got %v", tc.name, err)
		}
	}
}

func TestRNEAStaticPendulum(t *testing.T) {
	g := NewWithT(t)

	const (
		mass   = 2.0
		length = 0.5
	)
	tree, err := model.Pendulum(mass, length)
	g.Expect(err).NotTo(HaveOccurred())

	// Point mass at +x, swinging about +y under -z gravity. The potential
	// is V(q) = -m·g·L·sin(q), so the holding torque is
	// tau = dV/dq = -m·g·L·cos(q).
	zero := []float64{0}
	tau, err := RNEA(tree, []float64{0}, zero, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tau).To(HaveLen(1))
	g.Expect(tau[0]).To(BeNumerically("~", -mass*model.DefaultGravity*length, 1e-9))

	// Arm hanging straight down: no moment arm, no holding torque.
	tau, err = RNEA(tree, []float64{math.Pi / 2}, zero, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tau[0]).To(BeNumerically("~", 0, 1e-9))

	// Halfway: cos(q) scales the moment arm.
	tau, err = RNEA(tree, []float64{math.Pi / 4}, zero, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tau[0]).To(BeNumerically("~", -mass*model.DefaultGravity*length*math.Cos(math.Pi/4), 1e-9))
}

func TestRNEAWeightlessRestNeedsNoTorque(t *testing.T) {
	g := NewWithT(t)

	tree, err := model.DoublePendulum(1.0, 1.0, 0.5, 0.8)
	g.Expect(err).NotTo(HaveOccurred())

	zero := []float64{0, 0}
	tau, err := RNEA(tree.WithGravity(spatial.Zero()), []float64{0.7, -0.3}, zero, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())
	for i := range tau {
		g.Expect(tau[i]).To(BeNumerically("~", 0, 1e-12))
	}
}

func TestRNEASpinningPointMassHasNoAxialTorque(t *testing.T) {
	g := NewWithT(t)

	// A spinning point-mass pendulum in zero gravity: the centrifugal force
	// is radial, so it exerts no moment about the joint axis.
	tree, err := model.Pendulum(1.3, 0.9)
	g.Expect(err).NotTo(HaveOccurred())

	zero := []float64{0}
	tau, err := RNEA(tree.WithGravity(spatial.Zero()), []float64{0.4}, []float64{2.5}, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tau[0]).To(BeNumerically("~", 0, 1e-12))
}

func TestRNEAPureInertialTorque(t *testing.T) {
	g := NewWithT(t)

	const (
		mass   = 1.5
		length = 0.7
	)
	tree, err := model.Pendulum(mass, length)
	g.Expect(err).NotTo(HaveOccurred())

	// Zero gravity, zero velocity: tau = m·L²·qdd.
	const qdd = 3.2
	tau, err := RNEA(tree.WithGravity(spatial.Zero()), []float64{0.6}, []float64{0}, []float64{qdd}, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tau[0]).To(BeNumerically("~", mass*length*length*qdd, 1e-9))
}

func TestRNEAExternalWrenchProjectsOntoAxis(t *testing.T) {
	g := NewWithT(t)

	tree, err := model.Pendulum(1, 1)
	g.Expect(err).NotTo(HaveOccurred())

	zero := []float64{0}
	base, err := RNEA(tree, []float64{0.3}, zero, zero, nil)
	g.Expect(err).NotTo(HaveOccurred())

	// An external wrench on the only body shifts its torque by -S·w.
	w := spatial.Vector{0.2, 1.5, -0.4, 0, 2, 0}
	loaded, err := RNEA(tree, []float64{0.3}, zero, zero, []spatial.Vector{w})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded[0]).To(BeNumerically("~", base[0]-w[1], 1e-12))
}

func TestRNEAInverseRecoversForwardDynamics(t *testing.T) {
	g := NewWithT(t)

	tree, err := model.DoublePendulum(1.0, 1.0, 0.5, 0.8)
	g.Expect(err).NotTo(HaveOccurred())

	q := []float64{0.3, -0.5}
	qd := []float64{0.4, 0.2}
	applied := []float64{1.2, -0.7}

	// Forward dynamics by the joint-space route: H·qdd = tau - C.
	h, err := MassMatrix(tree, q)
	g.Expect(err).NotTo(HaveOccurred())
	bias, err := BiasForces(tree, q, qd)
	g.Expect(err).NotTo(HaveOccurred())

	rhs := mat.NewVecDense(2, []float64{applied[0] - bias[0], applied[1] - bias[1]})
	var qddVec mat.VecDense
	g.Expect(qddVec.SolveVec(h, rhs)).To(Succeed())

	qdd := []float64{qddVec.AtVec(0), qddVec.AtVec(1)}
	recovered, err := RNEA(tree, q, qd, qdd, nil)
	g.Expect(err).NotTo(HaveOccurred())

	for i := range applied {
		g.Expect(recovered[i]).To(BeNumerically("~", applied[i], 1e-9))
	}
}

func BenchmarkRNEAChain8(b *testing.B) {
	masses := make([]float64, 8)
	lengths := make([]float64, 8)
	q := make([]float64, 8)
	qd := make([]float64, 8)
	qdd := make([]float64, 8)
	for i := range masses {
		masses[i] = 1.0
		lengths[i] = 0.5
		q[i] = 0.1 * float64(i)
		qd[i] = 0.05 * float64(i)
		qdd[i] = 0.01 * float64(i)
	}

	tree, err := model.PlanarChain(masses, lengths)
	if err != nil {
		b.Fatalf("chain failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RNEA(tree, q, qd, qdd, nil); err != nil {
			b.Fatal(err)
		}
	}
}
