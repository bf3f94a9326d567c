package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/san-kum/pitchlab/internal/config"
	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/integrators"
	"github.com/san-kum/pitchlab/internal/interp"
	"github.com/san-kum/pitchlab/internal/metrics"
	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/sim"
	"github.com/san-kum/pitchlab/internal/squad"
	"github.com/san-kum/pitchlab/internal/storage"
	"github.com/san-kum/pitchlab/internal/tracking"
	"github.com/san-kum/pitchlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool

	configFile string
	preset     string
	integrator string
	dt         float64
	maxSteps   int
	speed      float64
	elevation  float64
	distance   float64
	offsetY    float64
	spinZ      float64
	drag       bool
	magnus     bool
	noPlot     bool

	sampleDt   float64
	upsample   float64
	window     int
	speedOut   string
	rosterFile string
	stride     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pitchlab",
		Short: "football shot and tracking analysis",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pitchlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	shootCmd := &cobra.Command{
		Use:   "shoot",
		Short: "simulate a shot at goal",
		Args:  cobra.NoArgs,
		RunE:  runShot,
	}
	shootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	shootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	shootCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4, euler)")
	shootCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	shootCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "step limit (0 = unbounded)")
	shootCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	shootCmd.Flags().Float64Var(&elevation, "elevation", config.DefaultElevation, "launch elevation (degrees)")
	shootCmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "distance from the goal line (m)")
	shootCmd.Flags().Float64Var(&offsetY, "offset", config.DefaultOffsetY, "lateral offset from the centre line (m)")
	shootCmd.Flags().Float64Var(&spinZ, "spin", physics.DefaultSpinZ, "spin about the vertical axis (rad/s)")
	shootCmd.Flags().BoolVar(&drag, "drag", false, "enable air drag")
	shootCmd.Flags().BoolVar(&magnus, "magnus", false, "enable Magnus force")
	shootCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the height plot")

	interpCmd := &cobra.Command{
		Use:   "interp [speed...]",
		Short: "interpolate the power curve at the given speeds",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInterp,
	}

	energyCmd := &cobra.Command{
		Use:   "energy [speed_file]",
		Short: "energy expended over a speed time series",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnergy,
	}

	speedCmd := &cobra.Command{
		Use:   "speed [track_file]",
		Short: "player speed from a tracking file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpeed,
	}
	speedCmd.Flags().Float64Var(&sampleDt, "dt", 0, "sample spacing (default: from file)")
	speedCmd.Flags().Float64Var(&upsample, "upsample", 0, "resample speed at this rate in Hz")
	speedCmd.Flags().IntVar(&window, "points", 4, "interpolation window for --upsample")
	speedCmd.Flags().StringVarP(&speedOut, "output", "o", "player_speed.dat", "speed output file")

	teamCmd := &cobra.Command{
		Use:   "team",
		Short: "print a roster and team abilities",
		Args:  cobra.NoArgs,
		RunE:  runTeam,
	}
	teamCmd.Flags().StringVar(&rosterFile, "roster", "", "roster file (yaml); demo squad if empty")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored shots",
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "animate a stored shot",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().IntVar(&stride, "stride", 1, "rows advanced per frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available shot presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(shootCmd, interpCmd, energyCmd, speedCmd, teamCmd, listCmd, replayCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// shotConfig layers preset, config file and explicitly set flags, in that order.
func shotConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if flags.Changed("speed") {
		cfg.Shot.Speed = speed
	}
	if flags.Changed("elevation") {
		cfg.Shot.Elevation = elevation
	}
	if flags.Changed("distance") {
		cfg.Shot.Distance = distance
	}
	if flags.Changed("offset") {
		cfg.Shot.OffsetY = offsetY
	}
	if flags.Changed("spin") {
		cfg.Force.Spin[2] = spinZ
	}
	if flags.Changed("drag") {
		cfg.Force.Drag = drag
	}
	if flags.Changed("magnus") {
		cfg.Force.Magnus = magnus
	}

	return cfg, cfg.Validate()
}

func runShot(cmd *cobra.Command, args []string) error {
	cfg, err := shotConfig(cmd)
	if err != nil {
		return err
	}

	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ball := physics.NewBall(cfg.Force)
	s := sim.New(ball, integ, cfg.Pitch, cfg.Force.Radius)
	shotMetrics := []metrics.Metric{metrics.NewEnergyDrift(ball), metrics.NewTopSpeed()}
	for _, m := range shotMetrics {
		s.AddObserver(m)
	}
	s.AddObserver(sim.ObserverFunc(func(t float64, x dynamo.State, phase sim.Phase) {
		if phase.Terminal() {
			slog.Debug("terminal state", "t", t, "x", x[physics.X], "y", x[physics.Y], "z", x[physics.Z], "phase", phase)
		}
	}))

	slog.Debug("simulating shot",
		"speed", cfg.Shot.Speed, "elevation", cfg.Shot.Elevation,
		"drag", cfg.Force.Drag, "magnus", cfg.Force.Magnus,
		"integrator", cfg.Integrator, "dt", cfg.Dt)

	start := time.Now()
	result, err := s.Run(context.Background(), cfg.InitState(), cfg.SimConfig())
	if err != nil {
		if errors.Is(err, dynamo.ErrStepLimit) && result != nil {
			slog.Warn("ball still in flight", "steps", result.StepsTaken)
		}
		return err
	}
	elapsed := time.Since(start)

	report := sim.Analyze(result, cfg.Pitch, cfg.Force.Radius)
	slog.Info("shot finished", "report", report, "elapsed", elapsed)

	runID, err := st.Save(storage.RunMetadata{
		Integrator: cfg.Integrator,
		Dt:         cfg.Dt,
		Speed:      cfg.Shot.Speed,
		Elevation:  cfg.Shot.Elevation,
		Drag:       cfg.Force.Drag,
		Magnus:     cfg.Force.Magnus,
		Radius:     cfg.Force.Radius,
		Verdict:    report.Verdict.String(),
	}, result)
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderReport(report))
	fmt.Println("\nmetrics:")
	for _, m := range shotMetrics {
		fmt.Printf("  %s: %.6f\n", m.Name(), m.Value())
	}
	if !noPlot {
		fmt.Println(viz.PlotHeight(storage.Rows(result, cfg.Force.Radius), 60, 10))
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runInterp(cmd *cobra.Command, args []string) error {
	xi, yi := tracking.DefaultPowerTable.Speed, tracking.DefaultPowerTable.Power
	basis, err := interp.NewBasis(xi, yi)
	if err != nil {
		return err
	}
	newton, err := interp.NewNewton(xi, yi)
	if err != nil {
		return err
	}

	fmt.Printf("newton coefficients: %v\n", newton.Coeffs())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED\tLAGRANGE\tNEWTON")
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid speed %q: %w", arg, err)
		}
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\n", v, basis.Eval(v), newton.Eval(v))
	}
	return w.Flush()
}

func runEnergy(cmd *cobra.Command, args []string) error {
	t, v, err := tracking.ReadSpeed(args[0])
	if err != nil {
		return err
	}
	if len(t) < 2 {
		return fmt.Errorf("%s: need at least two samples, got %d", args[0], len(t))
	}

	h := t[1] - t[0]
	power := tracking.DefaultPowerCurve().Series(v)
	est, err := tracking.Energy(power, h)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d\n", len(t))
	fmt.Printf("trapezoid energy: %.4f J\n", est.Trapezoid)
	if est.HasNewtonCotes {
		fmt.Printf("newton-cotes energy: %.4f J\n", est.NewtonCotes)
	} else {
		slog.Warn("sample count does not fit the 3/8 rule", "samples", len(t))
	}
	return nil
}

func runSpeed(cmd *cobra.Command, args []string) error {
	track, err := tracking.ReadTrack(args[0])
	if err != nil {
		return err
	}
	if track.Len() < 3 {
		return fmt.Errorf("%s: need at least three samples, got %d", args[0], track.Len())
	}

	h := sampleDt
	if h <= 0 {
		h = track.T[1] - track.T[0]
	}

	kin, err := track.ToPitch(physics.DefaultPitch()).Derive(h)
	if err != nil {
		return err
	}

	ts, vs := kin.VT, kin.Speed
	if upsample > 0 {
		ts, vs, err = tracking.Upsample(kin.VT, kin.Speed, upsample, window)
		if err != nil {
			return err
		}
		slog.Debug("resampled speed", "rate", upsample, "samples", len(ts))
	}

	f, err := os.Create(speedOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tracking.WriteSpeed(f, ts, vs); err != nil {
		return err
	}

	fmt.Printf("max speed: %.3f m/s\n", kin.MaxSpeed())
	fmt.Printf("wrote %d samples to %s\n", len(ts), filepath.Clean(speedOut))
	fmt.Println(viz.PlotSeries(vs, 60, 8, "speed (m/s)"))
	return nil
}

func runTeam(cmd *cobra.Command, args []string) error {
	team := squad.DemoTeam()
	if rosterFile != "" {
		var err error
		team, err = squad.LoadRoster(rosterFile)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s (%s)\n", team.Name, team.Colour)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tPHYSICAL\tOFFENCE\tDEFENCE")
	for _, p := range team.Players() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", p, p.Physical(), p.Offence(), p.Defence())
	}
	fmt.Fprintf(w, "TEAM\t%d\t%d\t%d\n", team.Physical(), team.Offence(), team.Defence())
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tTIME\tSPEED\tELEV\tFORCES\tVERDICT\tFLIGHT")

	for _, run := range runs {
		forces := "gravity"
		if run.Drag {
			forces += "+drag"
		}
		if run.Magnus {
			forces += "+magnus"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%s\t%s\t%.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Speed,
			run.Elevation,
			forces,
			run.Verdict,
			run.Duration,
		)
	}

	return w.Flush()
}

func runReplay(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded trajectory", "id", meta.ID, "rows", len(rows))

	title := fmt.Sprintf("%.0f m/s  %s", meta.Speed, meta.Verdict)
	return viz.RunReplay(viz.NewReplay(title, rows, physics.DefaultPitch(), stride))
}
