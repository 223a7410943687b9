// Package experiment wires a kinematic tree to a motion profile and sweeps
// the inverse dynamics over time, collecting torque profiles and metrics.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/treedyn/internal/dynamics"
	"github.com/san-kum/treedyn/internal/metrics"
	"github.com/san-kum/treedyn/internal/model"
	"github.com/san-kum/treedyn/internal/trajectory"
)

type Config struct {
	Dt       float64
	Duration float64
}

type Result struct {
	Times     []float64
	Positions [][]float64
	Torques   [][]float64
	Metrics   map[string]float64
}

type Experiment struct {
	tree    *model.Tree
	profile trajectory.Set
	metrics []metrics.Metric
}

func New(tree *model.Tree, profile trajectory.Set, ms []metrics.Metric) (*Experiment, error) {
	if len(profile) != tree.NB() {
		return nil, fmt.Errorf("experiment: profile has %d joints, tree has %d", len(profile), tree.NB())
	}
	return &Experiment{tree: tree, profile: profile, metrics: ms}, nil
}

func (e *Experiment) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("experiment: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("experiment: duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration/cfg.Dt) + 1
	result := &Result{
		Times:     make([]float64, 0, steps),
		Positions: make([][]float64, 0, steps),
		Torques:   make([][]float64, 0, steps),
		Metrics:   make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		q, qd, qdd := e.profile.At(t)

		tau, err := dynamics.RNEA(e.tree, q, qd, qdd, nil)
		if err != nil {
			return nil, err
		}

		for _, m := range e.metrics {
			m.Observe(tau, qd, t)
		}

		result.Times = append(result.Times, t)
		result.Positions = append(result.Positions, q)
		result.Torques = append(result.Torques, tau)
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
