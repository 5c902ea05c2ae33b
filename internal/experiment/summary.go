package experiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/lawnchairsociety/montyhall/internal/montyhall"
)

// StrategySummary measures how far one strategy's empirical rates sit from
// theory across an experiment.
type StrategySummary struct {
	Strategy montyhall.Strategy

	MeanAbsError float64
	MaxAbsError  float64
	StdDevError  float64 // population standard deviation of signed errors

	// Coverage is the fraction of points whose interval contains the
	// theoretical rate. It is NaN when the experiment had no intervals.
	Coverage float64
}

// Summary holds one StrategySummary per strategy, Stay first.
type Summary struct {
	Points     int
	Strategies []StrategySummary
}

// ErrNoPoints is returned when summarizing an experiment with no points.
var ErrNoPoints = errors.New("experiment has no points")

// Summarize compares every point of result to the theoretical win rates.
func Summarize(result Result) (Summary, error) {
	if len(result.Points) == 0 {
		return Summary{}, ErrNoPoints
	}

	summary := Summary{Points: len(result.Points)}
	for _, strategy := range montyhall.Strategies {
		s, err := summarizeStrategy(result, strategy)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize %s: %w", strategy, err)
		}
		summary.Strategies = append(summary.Strategies, s)
	}
	return summary, nil
}

func summarizeStrategy(result Result, strategy montyhall.Strategy) (StrategySummary, error) {
	signed := make(stats.Float64Data, 0, len(result.Points))
	absolute := make(stats.Float64Data, 0, len(result.Points))
	covered := 0

	for _, p := range result.Points {
		res := p.Result(strategy)
		diff := res.WinRate - res.Expected()
		signed = append(signed, diff)
		absolute = append(absolute, math.Abs(diff))
		if math.Abs(diff) <= p.HalfWidth(strategy) {
			covered++
		}
	}

	s := StrategySummary{Strategy: strategy, Coverage: math.NaN()}
	var err error
	if s.MeanAbsError, err = absolute.Mean(); err != nil {
		return s, err
	}
	if s.MaxAbsError, err = absolute.Max(); err != nil {
		return s, err
	}
	if s.StdDevError, err = signed.StandardDeviationPopulation(); err != nil {
		return s, err
	}
	if result.Intervals {
		s.Coverage = float64(covered) / float64(len(result.Points))
	}
	return s, nil
}
