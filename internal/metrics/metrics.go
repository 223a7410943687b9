// Package metrics accumulates summary statistics over a torque profile as
// an inverse-dynamics sweep produces it sample by sample.
package metrics

import "math"

// Metric observes one torque sample per step and reduces the profile to a
// single value.
type Metric interface {
	Name() string
	Observe(tau, qd []float64, t float64)
	Value() float64
	Reset()
}

// Defaults returns the standard set of torque metrics.
func Defaults() []Metric {
	return []Metric{NewPeak(), NewRMS(), NewEffort(), NewPeakPower()}
}

// Peak tracks the largest absolute torque component seen.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak_torque"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(tau, qd []float64, t float64) {
	for _, val := range tau {
		if math.Abs(val) > p.max {
			p.max = math.Abs(val)
		}
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }

// RMS tracks the root-mean-square torque over all joints and samples.
type RMS struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMS() *RMS {
	return &RMS{name: "rms_torque"}
}

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(tau, qd []float64, t float64) {
	for _, val := range tau {
		r.sumSq += val * val
		r.samples++
	}
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumSq = 0
	r.samples = 0
}

// Effort tracks the mean absolute torque, a proxy for actuator load.
type Effort struct {
	name    string
	sum     float64
	samples int
}

func NewEffort() *Effort {
	return &Effort{name: "effort"}
}

func (e *Effort) Name() string { return e.name }

func (e *Effort) Observe(tau, qd []float64, t float64) {
	for _, val := range tau {
		e.sum += math.Abs(val)
	}
	e.samples++
}

func (e *Effort) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *Effort) Reset() {
	e.sum = 0
	e.samples = 0
}

// PeakPower tracks the largest absolute mechanical power tau·qd delivered
// across the joints at any sample.
type PeakPower struct {
	name string
	max  float64
}

func NewPeakPower() *PeakPower {
	return &PeakPower{name: "peak_power"}
}

func (p *PeakPower) Name() string { return p.name }

func (p *PeakPower) Observe(tau, qd []float64, t float64) {
	power := 0.0
	for i, val := range tau {
		if i < len(qd) {
			power += val * qd[i]
		}
	}
	if math.Abs(power) > p.max {
		p.max = math.Abs(power)
	}
}

func (p *PeakPower) Value() float64 { return p.max }

func (p *PeakPower) Reset() { p.max = 0 }
