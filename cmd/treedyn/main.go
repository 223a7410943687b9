package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/treedyn/internal/config"
	"github.com/san-kum/treedyn/internal/experiment"
	"github.com/san-kum/treedyn/internal/metrics"
	"github.com/san-kum/treedyn/internal/spatial"
	"github.com/san-kum/treedyn/internal/storage"
	"github.com/san-kum/treedyn/internal/trajectory"
	"github.com/san-kum/treedyn/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	configFile string
	preset     string
	paramFlags []string
	fitJoint   int
	fitDegree  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treedyn",
		Short: "inverse dynamics of tree-structured rigid-body mechanisms",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".treedyn", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "compute joint torques along a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTorques,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot torque profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export torque data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export torque data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	fitCmd := &cobra.Command{
		Use:   "fit [run_id]",
		Short: "fit a polynomial to one joint's torque profile",
		Args:  cobra.ExactArgs(1),
		RunE:  fitRun,
	}
	fitCmd.Flags().IntVar(&fitJoint, "joint", 0, "joint index")
	fitCmd.Flags().IntVar(&fitDegree, "degree", 5, "polynomial degree")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark torque computation",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list registered models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range experiment.NewRegistry().ListModels() {
				fmt.Println(name)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "compute torques and play the motion back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, fitCmd, benchCmd, presetsCmd, modelsCmd, initCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "model parameter as name=value (repeatable)")
}

// resolveConfig layers the run configuration: defaults, then preset, then
// config file, with explicit CLI flags winning.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := &config.Config{Model: model, Dt: config.DefaultDt, Duration: config.DefaultDuration}

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Model == "" {
			loaded.Model = model
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}

	params, err := parseParams(paramFlags)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		for k, v := range params {
			cfg.Params[k] = v
		}
	}

	return cfg, nil
}

func parseParams(flags []string) (map[string]float64, error) {
	params := make(map[string]float64)
	for _, f := range flags {
		name, val, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid param %q, want name=value", f)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid param %q: %w", f, err)
		}
		params[name] = v
	}
	return params, nil
}

func buildExperiment(cfg *config.Config) (*experiment.Experiment, int, error) {
	registry := experiment.NewRegistry()
	tree, err := registry.GetModel(cfg.Model, cfg.Params)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Gravity != 0 {
		tree = tree.WithGravity(spatial.Vector{0, 0, 0, 0, 0, -cfg.Gravity})
	}

	var profile trajectory.Set
	if len(cfg.Trajectory) > 0 {
		profile, err = cfg.BuildTrajectory()
		if err != nil {
			return nil, 0, err
		}
	} else {
		profile = experiment.DefaultTrajectory(tree.NB())
	}

	exp, err := experiment.New(tree, profile, metrics.Defaults())
	if err != nil {
		return nil, 0, err
	}
	return exp, tree.NB(), nil
}

func runTorques(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, _, err := buildExperiment(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("computing torques for %s...\n", cfg.Model)
	start := time.Now()

	result, err := exp.Run(context.Background(), experiment.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Model, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	exp, nb, err := buildExperiment(cfg)
	if err != nil {
		return err
	}

	result, err := exp.Run(context.Background(), experiment.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	lengths := experiment.LinkLengths(cfg.Model, cfg.Params, nb)
	return tui.Run(cfg.Model, lengths, result)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tJOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Joints,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	torques, _, err := st.LoadTorques(runID)
	if err != nil {
		return err
	}

	if len(torques) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(torques))

	joints := len(torques[0])
	maxPlots := 6
	if joints > maxPlots {
		joints = maxPlots
	}

	for j := 0; j < joints; j++ {
		data := make([]float64, len(torques))
		for i := range torques {
			data[i] = torques[i][j]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("tau%d [N·m]", j)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	torques, times, err := st.LoadTorques(args[0])
	if err != nil {
		return err
	}

	if len(torques) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range torques[0] {
		header = append(header, fmt.Sprintf("tau%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range torques {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range torques[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	torques, times, err := st.LoadTorques(args[0])
	if err != nil {
		return err
	}

	out := struct {
		*storage.RunMetadata
		Times   []float64   `json:"times"`
		Torques [][]float64 `json:"torques"`
	}{meta, times, torques}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func fitRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	torques, times, err := st.LoadTorques(args[0])
	if err != nil {
		return err
	}

	if len(torques) == 0 {
		return fmt.Errorf("no data to fit")
	}
	if fitJoint < 0 || fitJoint >= meta.Joints {
		return fmt.Errorf("joint %d out of range [0, %d)", fitJoint, meta.Joints)
	}

	y := make([]float64, len(torques))
	for i := range torques {
		y[i] = torques[i][fitJoint]
	}

	poly, err := trajectory.FitPolynomial(times, y, fitDegree)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("joint: %d, degree: %d\n\ncoeffs (ascending powers of t):\n", fitJoint, fitDegree)
	for i, c := range poly.Coeffs {
		fmt.Printf("  t^%d: %+.6e\n", i, c)
	}

	var sse float64
	for i, t := range times {
		v, _, _ := poly.At(t)
		sse += (v - y[i]) * (v - y[i])
	}
	rms := 0.0
	if len(times) > 0 {
		rms = sse / float64(len(times))
	}
	fmt.Printf("\nmean squared residual: %.6e\n", rms)

	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	tree, err := registry.GetModel(model, nil)
	if err != nil {
		return err
	}
	profile := experiment.DefaultTrajectory(tree.NB())

	exp, err := experiment.New(tree, profile, nil)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.005, 0.01}

	fmt.Printf("benchmarking %s (%d joints)\n\n", model, tree.NB())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSAMPLES\tTIME\tSAMPLES/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			start := time.Now()
			result, err := exp.Run(context.Background(), experiment.Config{Dt: step, Duration: dur})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			samples := len(result.Times)
			perSec := float64(samples) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n", dur, step, samples, elapsed, perSec)
		}
	}

	return w.Flush()
}
