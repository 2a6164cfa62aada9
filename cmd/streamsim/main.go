package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mkuiper/streamsim/internal/analysis"
	"github.com/mkuiper/streamsim/internal/calib"
	"github.com/mkuiper/streamsim/internal/config"
	"github.com/mkuiper/streamsim/internal/experiment"
	"github.com/mkuiper/streamsim/internal/forcing"
	"github.com/mkuiper/streamsim/internal/hydro"
	"github.com/mkuiper/streamsim/internal/sim"
	"github.com/mkuiper/streamsim/internal/storage"
	"github.com/mkuiper/streamsim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	seed       int64
	integrator string
	// Forcing selection
	forcingName string
	dlyFile     string
	precip      float64
	evap        float64
	station     string
	// Initial storages
	initInterception float64
	initUnsaturated  float64
	initSlow         float64
	initFast         float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Frame rate for live view
	frameRate int
	// Calibration
	paramSpecs []string
	objective  string
	warmup     int
)

// main is the entry point for the streamsim CLI; it registers commands and
// flags and executes the root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "streamsim",
		Short: "lumped rainfall-runoff simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".streamsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&station, "station", "", "station label for the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchModel,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "flow duration and baseflow analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same catchment",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)

	calibrateCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "grid search against observed streamflow",
		RunE:  calibrateModel,
	}
	calibrateCmd.Flags().StringVar(&dlyFile, "file", "", "daily forcing file with observed flow (.dly)")
	calibrateCmd.Flags().StringArrayVar(&paramSpecs, "param", nil, "parameter grid, name=min:max:steps (repeatable)")
	calibrateCmd.Flags().StringVar(&objective, "objective", "rmse", "objective: rmse or nse")
	calibrateCmd.Flags().IntVar(&warmup, "warmup", 30, "days excluded from scoring")
	calibrateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (days)")
	calibrateCmd.MarkFlagRequired("file")
	calibrateCmd.MarkFlagRequired("param")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := modelArg(args)
			presets := config.ListPresets(model)
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", model)
				return nil
			}
			fmt.Printf("presets for %s:\n", model)
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run simulation with live hydrograph",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		benchCmd, analyzeCmd, compareCmd, calibrateCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (days)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (days)")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().StringVar(&forcingName, "forcing", "zero", "forcing: zero, constant, series")
	cmd.Flags().StringVar(&dlyFile, "file", "", "daily forcing file (.dly)")
	cmd.Flags().Float64Var(&precip, "precip", 0, "constant precipitation (mm/day)")
	cmd.Flags().Float64Var(&evap, "evap", 0, "constant potential evaporation (mm/day)")
	cmd.Flags().Float64Var(&initInterception, "s-i", 0, "initial interception storage")
	cmd.Flags().Float64Var(&initUnsaturated, "s-u", 0, "initial unsaturated storage")
	cmd.Flags().Float64Var(&initSlow, "s-s", 0, "initial slow reservoir")
	cmd.Flags().Float64Var(&initFast, "s-f", 0, "initial fast reservoir")
}

func modelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultModel
}

// resolveConfig layers preset, config file and CLI flags in increasing
// priority and returns the effective run configuration.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("forcing") {
		cfg.Forcing.Source = forcingName
	}
	if cmd.Flags().Changed("file") {
		cfg.Forcing.Source = "series"
		cfg.Forcing.File = dlyFile
	}
	if cmd.Flags().Changed("precip") {
		cfg.Forcing.Precip = precip
	}
	if cmd.Flags().Changed("evap") {
		cfg.Forcing.Evap = evap
	}
	if cmd.Flags().Changed("s-i") {
		cfg.InitState.Interception = initInterception
	}
	if cmd.Flags().Changed("s-u") {
		cfg.InitState.Unsaturated = initUnsaturated
	}
	if cmd.Flags().Changed("s-s") {
		cfg.InitState.Slow = initSlow
	}
	if cmd.Flags().Changed("s-f") {
		cfg.InitState.Fast = initFast
	}
	if cmd.Flags().Changed("station") {
		cfg.Station = station
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cfg.Forcing.Source == "" {
		cfg.Forcing.Source = "zero"
	}

	return cfg, nil
}

// buildForcing resolves the forcing source named by cfg. Series forcing is
// loaded from the configured .dly file.
func buildForcing(registry *experiment.Registry, cfg *config.Config) (sim.ForcingSource, error) {
	if cfg.Forcing.Source == "series" {
		if cfg.Forcing.File == "" {
			return nil, fmt.Errorf("series forcing requires a .dly file")
		}
		return forcing.LoadDLY(cfg.Forcing.File)
	}
	return registry.GetForcing(cfg.Forcing.Source, cfg.GetForcingParams())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	model := modelArg(args)

	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	dyn, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	source, err := buildForcing(registry, cfg)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Model:      model,
		Integrator: cfg.Integrator,
		Forcing:    cfg.Forcing.Source,
		InitState:  cfg.GetInitState(),
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Seed:       cfg.Seed,
		Params:     cfg.GetModelParams(),
	}

	// Apply tuned parameters before building metrics; the flow metrics
	// capture the reservoir time constants at construction.
	if tunable, ok := dyn.(sim.Configurable); ok {
		for name, v := range expCfg.Params {
			if err := tunable.SetParam(name, v); err != nil {
				return err
			}
		}
	}

	exp := experiment.New(expCfg)
	metrics := registry.DefaultMetrics(dyn)
	if err := exp.Setup(dyn, integ, source, metrics); err != nil {
		return err
	}

	fmt.Printf("running %s simulation (%.0f days, dt=%.3g)...\n", model, cfg.Duration, cfg.Dt)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	discharge := dischargeSeries(dyn, result.States)

	meta := storage.RunMetadata{
		Model:      model,
		Station:    cfg.Station,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Integrator: cfg.Integrator,
		Forcing:    cfg.Forcing.Source,
		Params:     cfg.GetModelParams(),
	}

	runID, err := st.Save(meta, result, discharge)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	if len(result.Errors) > 0 {
		fmt.Printf("stopped early: %v\n", result.Errors[0])
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if len(discharge) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(discharge,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("discharge (mm/day)"),
		)
		fmt.Println(graph)
	}

	return nil
}

// dischargeSeries computes the streamflow implied by each stored state.
func dischargeSeries(dyn sim.Dynamics, states []sim.State) []float64 {
	rm, ok := dyn.(*hydro.RiverModel)
	if !ok {
		return nil
	}
	q := make([]float64, len(states))
	for i := range states {
		q[i] = rm.Discharge(states[i])
	}
	return q
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSTATION\tTIME\tDAYS\tDT\tINTEG\tFORCING")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%.3g\t%s\t%s\n",
			run.ID,
			run.Model,
			run.Station,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Forcing,
		)
	}

	return w.Flush()
}

var plotCaptions = []string{
	"interception storage (mm)",
	"unsaturated storage (mm)",
	"slow reservoir (mm)",
	"fast reservoir (mm)",
	"cumulative outflow (mm)",
	"discharge (mm/day)",
	"precipitation (mm/day)",
	"potential evaporation (mm/day)",
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	for col, caption := range plotCaptions {
		if col >= len(states[0]) {
			break
		}

		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "s_i", "s_u", "s_s", "s_f", "z", "discharge", "precip", "evap"}
	if err := w.Write(header[:len(states[0])+1]); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Times    []float64            `json:"times"`
		States   [][]float64          `json:"states"`
	}{meta, times, states}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := modelArg(args)

	registry := experiment.NewRegistry()
	dyn, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator("rk4")
	if err != nil {
		return err
	}

	source := forcing.Constant{Precip: 5.0, Evap: 2.0}

	durations := []float64{30.0, 365.0, 3650.0}
	dts := []float64{0.05, 0.25, 1.0}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAYS\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			cfg := experiment.Config{
				Model:      model,
				Integrator: "rk4",
				Forcing:    "constant",
				InitState:  make([]float64, dyn.StateDim()),
				Dt:         step,
				Duration:   dur,
				Seed:       42,
			}

			exp := experiment.New(cfg)
			if err := exp.Setup(dyn, integ, source, nil); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := len(result.States)
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.0f\t%.3g\t%d\t%v\t%.0f\n",
				dur, step, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	const dischargeCol = 5
	if len(states) == 0 || len(states[0]) <= dischargeCol {
		return fmt.Errorf("no discharge data in run %s", runID)
	}

	q := make([]float64, len(states))
	for i := range states {
		q[i] = states[i][dischargeCol]
	}

	fmt.Printf("flow analysis: %s\n", meta.ID)
	fmt.Printf("model: %s\n\n", meta.Model)

	points, err := analysis.FlowDuration(q, 80)
	if err != nil {
		return err
	}

	curve := make([]float64, len(points))
	for i, p := range points {
		curve[i] = p.Discharge
	}

	graph := asciigraph.Plot(curve,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("flow duration curve (exceedance 0-100%)"),
	)
	fmt.Println(graph)
	fmt.Println()

	const filterAlpha = 0.925
	bfi, err := analysis.BaseflowIndex(q, filterAlpha)
	if err != nil {
		return err
	}
	fmt.Printf("baseflow index: %.3f\n", bfi)

	base, _, err := analysis.Baseflow(q, filterAlpha)
	if err != nil {
		return err
	}

	fmt.Println()
	graph = asciigraph.PlotMany([][]float64{q, base},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("discharge vs baseflow"),
	)
	fmt.Println(graph)

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	integrators := args

	cfg, err := resolveConfig(cmd, config.DefaultModel)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	source, err := buildForcing(registry, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators (dt=%.3g, %.0f days)\n\n", cfg.Dt, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL_Q\tTOTAL_OUTFLOW\tSTEPS\tTIME")

	for _, intName := range integrators {
		integ, err := registry.GetIntegrator(intName)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", intName, err)
			continue
		}

		// Fresh model per run so tuned parameters do not leak between rows.
		dyn, err := registry.GetModel(cfg.Model)
		if err != nil {
			return err
		}

		expCfg := experiment.Config{
			Model:      cfg.Model,
			Integrator: intName,
			Forcing:    cfg.Forcing.Source,
			InitState:  cfg.GetInitState(),
			Dt:         cfg.Dt,
			Duration:   cfg.Duration,
			Seed:       cfg.Seed,
			Params:     cfg.GetModelParams(),
		}

		exp := experiment.New(expCfg)
		if err := exp.Setup(dyn, integ, source, nil); err != nil {
			return err
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", intName, err)
			continue
		}

		finalQ := 0.0
		totalOut := 0.0
		if n := len(result.States); n > 0 {
			last := result.States[n-1]
			if rm, ok := dyn.(*hydro.RiverModel); ok {
				finalQ = rm.Discharge(last)
			}
			totalOut = last[hydro.StateOutflow]
		}

		fmt.Fprintf(w, "%s\t%.6f\t%.4f\t%d\t%v\n",
			intName, finalQ, totalOut, len(result.States), elapsed)
	}

	return w.Flush()
}

func calibrateModel(cmd *cobra.Command, args []string) error {
	series, err := forcing.LoadDLY(dlyFile)
	if err != nil {
		return err
	}
	if series.Flow() == nil {
		return fmt.Errorf("%s has no observed streamflow column", dlyFile)
	}

	names, ranges, err := parseParamSpecs(paramSpecs)
	if err != nil {
		return err
	}

	evaluator := calib.NewEvaluator(series)
	evaluator.Dt = dt
	evaluator.Warmup = warmup

	switch objective {
	case "rmse":
		evaluator.Objective = calib.RMSE
	case "nse":
		// Grid search minimizes, so negate the efficiency.
		evaluator.Objective = func(simulated, observed []float64) (float64, error) {
			nse, err := calib.NashSutcliffe(simulated, observed)
			if err != nil {
				return 0, err
			}
			return -nse, nil
		}
	default:
		return fmt.Errorf("unknown objective: %s (rmse, nse)", objective)
	}

	total := 1
	for _, r := range ranges {
		total *= len(r)
	}
	fmt.Printf("calibrating %v over %d candidates (%d days, warmup %d)...\n",
		names, total, series.Len(), warmup)

	start := time.Now()
	search := calib.NewGridSearch(names, ranges)
	best, score, err := search.Search(context.Background(), evaluator.Evaluate)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if best == nil {
		return fmt.Errorf("no candidate produced a valid simulation")
	}

	fmt.Printf("completed in %v\n\n", elapsed)
	if objective == "nse" {
		fmt.Printf("best nse: %.4f\n", -score)
	} else {
		fmt.Printf("best rmse: %.4f\n", score)
	}
	fmt.Println("best parameters:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, best[name])
	}

	return nil
}

// parseParamSpecs expands name=min:max:steps grid specs into candidate
// value lists.
func parseParamSpecs(specs []string) ([]string, [][]float64, error) {
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))

	for _, spec := range specs {
		name, grid, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf("invalid param spec %q, want name=min:max:steps", spec)
		}

		parts := strings.Split(grid, ":")
		if len(parts) != 3 {
			return nil, nil, fmt.Errorf("invalid param spec %q, want name=min:max:steps", spec)
		}

		min, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid min in %q: %w", spec, err)
		}
		max, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid max in %q: %w", spec, err)
		}
		steps, err := strconv.Atoi(parts[2])
		if err != nil || steps < 1 {
			return nil, nil, fmt.Errorf("invalid steps in %q", spec)
		}

		values := make([]float64, steps)
		if steps == 1 {
			values[0] = min
		} else {
			for i := 0; i < steps; i++ {
				values[i] = min + (max-min)*float64(i)/float64(steps-1)
			}
		}

		names = append(names, name)
		ranges = append(ranges, values)
	}

	return names, ranges, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model := modelArg(args)

	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	dyn, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	rm, ok := dyn.(*hydro.RiverModel)
	if !ok {
		return fmt.Errorf("live view supports the river model only")
	}
	for name, v := range cfg.GetModelParams() {
		if err := rm.SetParam(name, v); err != nil {
			return err
		}
	}

	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	source, err := buildForcing(registry, cfg)
	if err != nil {
		return err
	}

	m := tui.NewModel(rm, integ, source, sim.State(cfg.GetInitState()), cfg.Dt, cfg.Duration, frameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
