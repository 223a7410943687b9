package config

var Presets = map[string]map[string]*Config{
	"pendulum": {
		"slow": {
			Model: "pendulum", Dt: 0.005, Duration: 10.0,
			Trajectory: []ProfileConfig{
				{Type: "sine", Amplitude: 0.3, Frequency: 0.25},
			},
		},
		"swing": {
			Model: "pendulum", Dt: 0.005, Duration: 5.0,
			Trajectory: []ProfileConfig{
				{Type: "sine", Amplitude: 1.2, Frequency: 0.5},
			},
		},
		"hold": {
			Model: "pendulum", Dt: 0.01, Duration: 2.0,
			Trajectory: []ProfileConfig{
				{Type: "constant", Value: 0.0},
			},
		},
	},
	"double_pendulum": {
		"gentle": {
			Model: "double_pendulum", Dt: 0.005, Duration: 8.0,
			Trajectory: []ProfileConfig{
				{Type: "sine", Amplitude: 0.4, Frequency: 0.3},
				{Type: "sine", Amplitude: 0.4, Frequency: 0.45, Phase: 0.5},
			},
		},
		"whip": {
			Model: "double_pendulum", Dt: 0.002, Duration: 4.0,
			Trajectory: []ProfileConfig{
				{Type: "sine", Amplitude: 0.8, Frequency: 0.8},
				{Type: "sine", Amplitude: 1.4, Frequency: 1.2, Phase: 1.0},
			},
		},
	},
	"golf_swing": {
		"downswing": {
			Model: "golf_swing", Dt: 0.001, Duration: 0.4,
			Trajectory: []ProfileConfig{
				{Type: "polynomial", Coeffs: []float64{-1.8, 0.0, 28.0, -32.0}},
				{Type: "polynomial", Coeffs: []float64{-1.2, 0.0, 12.0, 24.0}},
			},
		},
		"putt": {
			Model: "golf_swing", Dt: 0.005, Duration: 2.0,
			Trajectory: []ProfileConfig{
				{Type: "sine", Amplitude: 0.15, Frequency: 0.5},
				{Type: "constant", Value: 0.0},
			},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
