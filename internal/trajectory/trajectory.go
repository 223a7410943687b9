// Package trajectory prescribes joint motion over time for inverse
// dynamics sweeps. A Profile yields position, velocity, and acceleration
// analytically, so the sampled motion is exactly consistent with its
// derivatives.
package trajectory

import "math"

// Profile prescribes the motion of one joint.
type Profile interface {
	At(t float64) (q, qd, qdd float64)
}

// Constant holds a joint at a fixed coordinate.
type Constant float64

func (c Constant) At(t float64) (float64, float64, float64) {
	return float64(c), 0, 0
}

// Sine is a sinusoidal profile q(t) = Offset + Amplitude·sin(Omega·t + Phase).
type Sine struct {
	Amplitude float64
	Omega     float64 // angular frequency, rad/s
	Phase     float64
	Offset    float64
}

func (s Sine) At(t float64) (float64, float64, float64) {
	arg := s.Omega*t + s.Phase
	q := s.Offset + s.Amplitude*math.Sin(arg)
	qd := s.Amplitude * s.Omega * math.Cos(arg)
	qdd := -s.Amplitude * s.Omega * s.Omega * math.Sin(arg)
	return q, qd, qdd
}

// Polynomial evaluates q(t) = c0 + c1·t + c2·t² + … (ascending
// coefficients) with analytic first and second derivatives.
type Polynomial struct {
	Coeffs []float64
}

func (p Polynomial) At(t float64) (float64, float64, float64) {
	var q, qd, qdd float64
	// Horner's rule, highest coefficient first.
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		qdd = qdd*t + 2*qd
		qd = qd*t + q
		q = q*t + p.Coeffs[i]
	}
	return q, qd, qdd
}

// Set samples one profile per joint.
type Set []Profile

// At evaluates every profile at t, returning fresh q, qd, qdd slices.
func (s Set) At(t float64) (q, qd, qdd []float64) {
	q = make([]float64, len(s))
	qd = make([]float64, len(s))
	qdd = make([]float64, len(s))
	for i, p := range s {
		q[i], qd[i], qdd[i] = p.At(t)
	}
	return q, qd, qdd
}
