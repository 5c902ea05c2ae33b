// montyhall estimates Monty Hall win rates by Monte Carlo simulation and
// charts how they converge to theory.
//
// Usage:
//
//	montyhall [command] [options]
//
// Commands:
//
//	classic      - Three doors, varying the number of trials
//	generalized  - Fixed trials, varying the number of doors
//	all          - Run both experiments from the same seed
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/cheggaaa/pb.v1"

	"github.com/lawnchairsociety/montyhall/internal/chart"
	"github.com/lawnchairsociety/montyhall/internal/config"
	"github.com/lawnchairsociety/montyhall/internal/experiment"
	"github.com/lawnchairsociety/montyhall/internal/logger"
	"github.com/lawnchairsociety/montyhall/internal/random"
	"github.com/lawnchairsociety/montyhall/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "classic":
		err = runClassic(os.Args[2:], os.Stdout)
	case "generalized":
		err = runGeneralized(os.Args[2:], os.Stdout)
	case "all":
		err = runAll(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("Experiment failed", "error", err)
		fmt.Fprintf(os.Stderr, "montyhall: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Monty Hall Simulator

Estimates win rates for the stay and switch strategies by Monte Carlo
simulation and compares them with theory.

Usage: montyhall <command> [options]

Commands:
  classic      Three doors, varying the number of trials
  generalized  Fixed trials, varying the number of doors
  all          Run both experiments from the same seed

Examples:
  montyhall classic -trials=10,100,1000,10000
  montyhall generalized -doors=3,5,10,25 -num-trials=20000 -ci
  montyhall all -seed=42 -no-chart

Use "montyhall <command> -h" for more information about a command.`)
}

// commonFlags are shared by every command.
type commonFlags struct {
	configPath  string
	loggingPath string
	seed        uint64
	noChart     bool
	progress    bool
	skipInvalid bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "data/montyhall.yaml", "Path to experiment config YAML file")
	fs.StringVar(&c.loggingPath, "logging", "data/logging.yaml", "Path to logging config YAML file")
	fs.Uint64Var(&c.seed, "seed", 0, "Random seed (default: config seed, or random when zero)")
	fs.BoolVar(&c.noChart, "no-chart", false, "Skip writing the PNG chart")
	fs.BoolVar(&c.progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&c.skipInvalid, "skip-invalid", false, "Skip parameter values the simulator rejects instead of aborting")
}

// session is the state shared by the experiments of one invocation.
type session struct {
	cfg    *config.Config
	common commonFlags
	runner *experiment.Runner
	out    io.Writer
}

func newSession(common commonFlags, out io.Writer) (*session, error) {
	logConfig, err := logger.LoadConfig(common.loggingPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(logConfig); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	cfg, err := config.LoadConfig(common.configPath)
	if err != nil {
		return nil, err
	}
	if common.seed != 0 {
		cfg.Seed = common.seed
	}
	if common.noChart {
		cfg.Chart.Enabled = false
	}

	seed, fresh, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info("Seed selected", "seed", seed, "random", fresh)

	return &session{
		cfg:    cfg,
		common: common,
		runner: experiment.NewRunner(random.New(seed)),
		out:    out,
	}, nil
}

// visited returns the names of the flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func runClassic(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("classic", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	trials := fs.String("trials", "", "Comma separated trial counts (default from config)")
	intervals := fs.Bool("ci", false, "Compute 95% confidence half-widths")
	output := fs.String("out", "", "Chart output path (default from config)")
	fs.Parse(args)

	s, err := newSession(common, out)
	if err != nil {
		return err
	}

	set := visited(fs)
	if set["trials"] {
		if s.cfg.Classic.TrialCounts, err = config.ParseIntList(*trials); err != nil {
			return fmt.Errorf("-trials: %w", err)
		}
	}
	if set["ci"] {
		s.cfg.Classic.Intervals = *intervals
	}
	if set["out"] {
		s.cfg.Classic.Output = *output
	}

	return s.classic()
}

func runGeneralized(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generalized", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	doors := fs.String("doors", "", "Comma separated door counts (default from config)")
	numTrials := fs.Int("num-trials", 0, "Trials per door count (default from config)")
	intervals := fs.Bool("ci", true, "Compute 95% confidence half-widths")
	output := fs.String("out", "", "Chart output path (default from config)")
	fs.Parse(args)

	s, err := newSession(common, out)
	if err != nil {
		return err
	}

	set := visited(fs)
	if set["doors"] {
		if s.cfg.Generalized.DoorCounts, err = config.ParseIntList(*doors); err != nil {
			return fmt.Errorf("-doors: %w", err)
		}
	}
	if set["num-trials"] {
		s.cfg.Generalized.Trials = *numTrials
	}
	if set["ci"] {
		s.cfg.Generalized.Intervals = *intervals
	}
	if set["out"] {
		s.cfg.Generalized.Output = *output
	}

	return s.generalized()
}

func runAll(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("all", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(args)

	s, err := newSession(common, out)
	if err != nil {
		return err
	}
	if err := s.classic(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return s.generalized()
}

func (s *session) classic() error {
	if err := s.validate(&s.cfg.Classic); err != nil {
		return err
	}
	spec := experiment.Spec{
		Vary:        experiment.TrialCount,
		Values:      s.cfg.Classic.TrialCounts,
		Intervals:   s.cfg.Classic.Intervals,
		SkipInvalid: s.common.skipInvalid,
	}
	fmt.Fprintln(s.out, "=== Classic Monty Hall (3 doors) ===")
	return s.run(spec, s.cfg.Classic.Output)
}

func (s *session) generalized() error {
	if err := s.validate(&s.cfg.Generalized); err != nil {
		return err
	}
	spec := experiment.Spec{
		Vary:        experiment.DoorCount,
		Values:      s.cfg.Generalized.DoorCounts,
		Trials:      s.cfg.Generalized.Trials,
		Intervals:   s.cfg.Generalized.Intervals,
		SkipInvalid: s.common.skipInvalid,
	}
	fmt.Fprintf(s.out, "=== Generalized Monty Hall (%d trials per door count) ===\n", spec.Trials)
	return s.run(spec, s.cfg.Generalized.Output)
}

// section is the validation surface of one experiment's configuration.
type section interface {
	Validate() error
	ValidateFixed() error
}

// validate checks one experiment section and the chart settings. With
// -skip-invalid only individual parameter values are left to the runner;
// empty lists and the fixed trial count are still rejected here.
func (s *session) validate(sec section) error {
	check := sec.Validate
	if s.common.skipInvalid {
		check = sec.ValidateFixed
	}
	if err := errors.Join(s.cfg.Chart.Validate(), check()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (s *session) run(spec experiment.Spec, output string) error {
	logger.Info("Starting experiment", "vary", spec.Vary.String(), "points", len(spec.Values), "intervals", spec.Intervals)

	var bar *pb.ProgressBar
	if s.common.progress && logger.Enabled(slog.LevelDebug) {
		logger.Info("Progress bar disabled while debug logging is on")
	} else if s.common.progress {
		bar = pb.New(len(spec.Values))
		bar.Output = os.Stderr
		bar.Prefix(spec.Vary.String() + " ")
		bar.ShowTimeLeft = false
		bar.Start()
		s.runner.OnPoint = func(done, total int) { bar.Set(done) }
		defer func() { s.runner.OnPoint = nil }()
	}

	result, err := s.runner.Run(spec)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if err := report.WriteTable(s.out, result); err != nil {
		return err
	}
	if summary, err := experiment.Summarize(result); err == nil {
		if err := report.WriteSummary(s.out, summary); err != nil {
			return err
		}
	} else {
		logger.Warning("No points to summarize", "vary", spec.Vary.String())
	}

	if !s.cfg.Chart.Enabled || len(result.Points) == 0 {
		return nil
	}
	opts := chart.DefaultOptions(spec.Vary)
	opts.Path = output
	opts.Width, opts.Height = s.cfg.Chart.Width, s.cfg.Chart.Height
	if err := chart.Render(result, opts); err != nil {
		return err
	}
	logger.Info("Chart written", "path", output)
	return nil
}
