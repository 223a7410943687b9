// Package config loads and saves inverse-dynamics run configurations from
// YAML, with built-in presets per model.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/treedyn/internal/trajectory"
)

const (
	DefaultDt       = 0.005
	DefaultDuration = 5.0
)

type Config struct {
	Model      string             `yaml:"model"`
	Dt         float64            `yaml:"dt"`
	Duration   float64            `yaml:"duration"`
	Gravity    float64            `yaml:"gravity,omitempty"` // magnitude along -z; 0 means the default 9.81
	Params     map[string]float64 `yaml:"params,omitempty"`
	Trajectory []ProfileConfig    `yaml:"trajectory,omitempty"`
}

// ProfileConfig describes one joint's motion profile. Type selects the
// profile; the remaining fields apply depending on it:
//
//	sine:       amplitude, frequency (Hz), phase, offset
//	polynomial: coeffs (ascending)
//	constant:   value
type ProfileConfig struct {
	Type      string    `yaml:"type"`
	Amplitude float64   `yaml:"amplitude,omitempty"`
	Frequency float64   `yaml:"frequency,omitempty"`
	Phase     float64   `yaml:"phase,omitempty"`
	Offset    float64   `yaml:"offset,omitempty"`
	Value     float64   `yaml:"value,omitempty"`
	Coeffs    []float64 `yaml:"coeffs,omitempty"`
}

// Build converts the profile description to a trajectory profile.
func (p ProfileConfig) Build() (trajectory.Profile, error) {
	switch p.Type {
	case "sine":
		return trajectory.Sine{
			Amplitude: p.Amplitude,
			Omega:     2 * math.Pi * p.Frequency,
			Phase:     p.Phase,
			Offset:    p.Offset,
		}, nil
	case "polynomial":
		if len(p.Coeffs) == 0 {
			return nil, fmt.Errorf("config: polynomial profile needs coeffs")
		}
		coeffs := make([]float64, len(p.Coeffs))
		copy(coeffs, p.Coeffs)
		return trajectory.Polynomial{Coeffs: coeffs}, nil
	case "constant":
		return trajectory.Constant(p.Value), nil
	default:
		return nil, fmt.Errorf("config: unknown profile type: %s", p.Type)
	}
}

// BuildTrajectory converts all profile descriptions into a sampling set.
func (c *Config) BuildTrajectory() (trajectory.Set, error) {
	set := make(trajectory.Set, len(c.Trajectory))
	for i, pc := range c.Trajectory {
		p, err := pc.Build()
		if err != nil {
			return nil, fmt.Errorf("joint %d: %w", i, err)
		}
		set[i] = p
	}
	return set, nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "pendulum",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Trajectory: []ProfileConfig{
			{Type: "sine", Amplitude: 0.5, Frequency: 0.5},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
