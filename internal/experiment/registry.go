package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/treedyn/internal/model"
	"github.com/san-kum/treedyn/internal/trajectory"
)

// Registry maps model names to tree builders parameterized by name/value
// pairs.
type Registry struct {
	models map[string]func(params map[string]float64) (*model.Tree, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func(map[string]float64) (*model.Tree, error)),
	}

	r.models["pendulum"] = func(params map[string]float64) (*model.Tree, error) {
		return model.Pendulum(param(params, "mass", 1.0), param(params, "length", 1.0))
	}
	r.models["double_pendulum"] = func(params map[string]float64) (*model.Tree, error) {
		return model.DoublePendulum(
			param(params, "mass1", 1.0), param(params, "length1", 1.0),
			param(params, "mass2", 0.5), param(params, "length2", 0.8),
		)
	}
	r.models["chain"] = func(params map[string]float64) (*model.Tree, error) {
		links := int(param(params, "links", 4))
		if links < 1 {
			return nil, fmt.Errorf("chain needs at least one link, got %d", links)
		}
		masses := make([]float64, links)
		lengths := make([]float64, links)
		for i := range masses {
			masses[i] = param(params, "mass", 1.0)
			lengths[i] = param(params, "length", 0.5)
		}
		return model.PlanarChain(masses, lengths)
	}
	r.models["golf_swing"] = func(params map[string]float64) (*model.Tree, error) {
		return model.GolfSwing()
	}

	return r
}

func (r *Registry) GetModel(name string, params map[string]float64) (*model.Tree, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(params)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkLengths reports the drawing lengths of a registered model's links,
// falling back to unit links for anything it does not recognize.
func LinkLengths(name string, params map[string]float64, nb int) []float64 {
	switch name {
	case "pendulum":
		return []float64{param(params, "length", 1.0)}
	case "double_pendulum":
		return []float64{param(params, "length1", 1.0), param(params, "length2", 0.8)}
	case "chain":
		links := int(param(params, "links", 4))
		lengths := make([]float64, links)
		for i := range lengths {
			lengths[i] = param(params, "length", 0.5)
		}
		return lengths
	case "golf_swing":
		return []float64{0.62, 1.12}
	}
	lengths := make([]float64, nb)
	for i := range lengths {
		lengths[i] = 1.0
	}
	return lengths
}

// DefaultTrajectory returns a gentle staggered sine sweep, one profile per
// joint.
func DefaultTrajectory(nb int) trajectory.Set {
	set := make(trajectory.Set, nb)
	for i := range set {
		set[i] = trajectory.Sine{
			Amplitude: 0.5,
			Omega:     1.0 + 0.5*float64(i),
			Phase:     0.3 * float64(i),
		}
	}
	return set
}

func param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}
