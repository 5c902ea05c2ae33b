// Package experiment drives the Monty Hall simulators across a list of
// parameter values and collects the win rates for both strategies.
package experiment

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lawnchairsociety/montyhall/internal/logger"
	"github.com/lawnchairsociety/montyhall/internal/montyhall"
	"github.com/lawnchairsociety/montyhall/internal/random"
)

// Variable names the parameter an experiment varies.
type Variable int

const (
	// TrialCount varies the number of trials of the three door game.
	TrialCount Variable = iota
	// DoorCount varies the number of doors at a fixed trial count.
	DoorCount
)

func (v Variable) String() string {
	switch v {
	case TrialCount:
		return "trials"
	case DoorCount:
		return "doors"
	default:
		return fmt.Sprintf("Variable(%d)", int(v))
	}
}

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// ConfidenceHalfWidth returns the half-width of the 95% normal approximation
// interval around an observed rate p over n trials.
func ConfidenceHalfWidth(p float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return z95 * math.Sqrt(p*(1-p)/float64(n))
}

// Spec describes one experiment.
type Spec struct {
	Vary Variable

	// Values are the parameter values, run in order.
	Values []int

	// Trials is the fixed trial count when varying door count. It is ignored
	// when varying trial count.
	Trials int

	// Intervals computes 95% confidence half-widths for every point.
	Intervals bool

	// SkipInvalid drops values the simulators reject instead of aborting.
	SkipInvalid bool
}

// Point is the outcome for one parameter value.
type Point struct {
	Value  int
	Trials int
	Doors  int

	Stay   montyhall.Result
	Switch montyhall.Result

	// Half-widths of the 95% interval; zero unless Spec.Intervals was set.
	StayCI   float64
	SwitchCI float64
}

// Result returns the simulation result for a strategy.
func (p Point) Result(strategy montyhall.Strategy) montyhall.Result {
	if strategy == montyhall.Switch {
		return p.Switch
	}
	return p.Stay
}

// HalfWidth returns the confidence half-width for a strategy.
func (p Point) HalfWidth(strategy montyhall.Strategy) float64 {
	if strategy == montyhall.Switch {
		return p.SwitchCI
	}
	return p.StayCI
}

// Result is the ordered outcome of an experiment.
type Result struct {
	Vary      Variable
	Intervals bool
	Points    []Point
}

// Runner runs experiments against a single random source. A Runner is not
// safe for concurrent use.
type Runner struct {
	rng *rand.Rand

	// OnPoint, if set, is called after each point completes with the number
	// of values handled so far and the total.
	OnPoint func(done, total int)
}

// NewRunner returns a Runner drawing from rng. A nil rng is replaced by a
// generator seeded from the runtime's random source.
func NewRunner(rng *rand.Rand) *Runner {
	if rng == nil {
		seed := rand.Uint64()
		logger.Debug("Runner seeded without a source", "seed", seed)
		rng = random.New(seed)
	}
	return &Runner{rng: rng}
}

// Run executes the experiment. Each value produces one Stay and one Switch
// simulation. A rejected value aborts the run unless spec.SkipInvalid is set.
func (r *Runner) Run(spec Spec) (Result, error) {
	if spec.Vary != TrialCount && spec.Vary != DoorCount {
		return Result{}, fmt.Errorf("%w: unknown experiment variable %v", montyhall.ErrInvalidArgument, spec.Vary)
	}
	// The fixed trial count applies to every point, so it is never skipped.
	if spec.Vary == DoorCount && spec.Trials < 1 {
		return Result{}, fmt.Errorf("trials=%d: %w", spec.Trials, montyhall.ErrNonPositiveTrialCount)
	}

	result := Result{
		Vary:      spec.Vary,
		Intervals: spec.Intervals,
		Points:    make([]Point, 0, len(spec.Values)),
	}

	for i, value := range spec.Values {
		point, err := r.runPoint(spec, value)
		if err != nil {
			err = fmt.Errorf("%s=%d: %w", spec.Vary, value, err)
			if spec.SkipInvalid && errors.Is(err, montyhall.ErrInvalidArgument) {
				logger.Warning("Skipping parameter value", "vary", spec.Vary.String(), "value", value, "error", err)
				r.progress(i+1, len(spec.Values))
				continue
			}
			return Result{}, err
		}

		logger.Debug("Point complete",
			"vary", spec.Vary.String(),
			"value", value,
			"trials", point.Trials,
			"doors", point.Doors,
			"stay", point.Stay.WinRate,
			"switch", point.Switch.WinRate)

		result.Points = append(result.Points, point)
		r.progress(i+1, len(spec.Values))
	}

	return result, nil
}

func (r *Runner) runPoint(spec Spec, value int) (Point, error) {
	point := Point{Value: value}

	for _, strategy := range montyhall.Strategies {
		var (
			res montyhall.Result
			err error
		)
		switch spec.Vary {
		case TrialCount:
			res, err = montyhall.SimulateClassic(r.rng, value, strategy)
		case DoorCount:
			res, err = montyhall.SimulateGeneralized(r.rng, spec.Trials, value, strategy)
		}
		if err != nil {
			return Point{}, err
		}

		var ci float64
		if spec.Intervals {
			ci = ConfidenceHalfWidth(res.WinRate, res.Trials)
		}

		if strategy == montyhall.Switch {
			point.Switch, point.SwitchCI = res, ci
		} else {
			point.Stay, point.StayCI = res, ci
		}
		point.Trials, point.Doors = res.Trials, res.Doors
	}

	return point, nil
}

func (r *Runner) progress(done, total int) {
	if r.OnPoint != nil {
		r.OnPoint(done, total)
	}
}
