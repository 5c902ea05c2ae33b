// Package chart draws experiment results as a PNG line chart with the
// theoretical win rates for reference.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lawnchairsociety/montyhall/internal/experiment"
	"github.com/lawnchairsociety/montyhall/internal/montyhall"
)

// Default output paths, relative to the working directory.
const (
	ClassicPath     = "figures/classic_win_rates.png"
	GeneralizedPath = "figures/generalized_win_rates.png"
)

var (
	stayColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	switchColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// Options controls the rendered figure.
type Options struct {
	Path   string
	Title  string
	Width  float64 // inches
	Height float64 // inches
}

// DefaultOptions returns the stock title, path and 10x6 inch size for the
// kind of experiment in result.
func DefaultOptions(vary experiment.Variable) Options {
	opts := Options{Width: 10, Height: 6}
	switch vary {
	case experiment.DoorCount:
		opts.Path = GeneralizedPath
		opts.Title = "Generalized Monty Hall Problem (n Doors)"
	default:
		opts.Path = ClassicPath
		opts.Title = "Monty Hall Problem: Stay vs Switch Strategy"
	}
	return opts
}

// Render draws result on a log-scaled x axis and saves it to opts.Path,
// creating the parent directory if needed.
func Render(result experiment.Result, opts Options) error {
	if len(result.Points) == 0 {
		return errors.New("chart: no points to plot")
	}
	if opts.Path == "" {
		return errors.New("chart: empty output path")
	}

	p, err := build(result, opts.Title)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("chart: create %s: %w", dir, err)
		}
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 10, 6
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, opts.Path); err != nil {
		return fmt.Errorf("chart: save %s: %w", opts.Path, err)
	}
	return nil
}

func build(result experiment.Result, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Winning Probability"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	if result.Vary == experiment.DoorCount {
		p.X.Label.Text = "Number of Doors (log scale)"
	} else {
		p.X.Label.Text = "Number of Simulations (log scale)"
	}
	p.Add(plotter.NewGrid())

	for _, strategy := range montyhall.Strategies {
		c := strategyColor(strategy)

		empirical, theory, errs := series(result, strategy)

		line, points, err := plotter.NewLinePoints(empirical)
		if err != nil {
			return nil, fmt.Errorf("chart: %s series: %w", strategy, err)
		}
		line.Color = c
		points.Color = c
		p.Add(line, points)
		p.Legend.Add(label(strategy), line, points)

		if result.Intervals {
			bars, err := plotter.NewYErrorBars(errorPoints{XYs: empirical, YErrors: errs})
			if err != nil {
				return nil, fmt.Errorf("chart: %s error bars: %w", strategy, err)
			}
			bars.Color = c
			p.Add(bars)
		}

		expected, err := plotter.NewLine(theory)
		if err != nil {
			return nil, fmt.Errorf("chart: %s theory: %w", strategy, err)
		}
		expected.Color = c
		expected.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(expected)
		p.Legend.Add(theoryLabel(strategy, result.Vary), expected)
	}

	// Add widens the axes to fit the data, so the probability range is
	// pinned once every plotter is in place.
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = false
	return p, nil
}

// errorPoints pairs the empirical series with symmetric interval bounds.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func series(result experiment.Result, strategy montyhall.Strategy) (plotter.XYs, plotter.XYs, plotter.YErrors) {
	empirical := make(plotter.XYs, len(result.Points))
	theory := make(plotter.XYs, len(result.Points))
	errs := make(plotter.YErrors, len(result.Points))

	for i, pt := range result.Points {
		res := pt.Result(strategy)
		x := float64(pt.Value)
		empirical[i].X, empirical[i].Y = x, res.WinRate
		theory[i].X, theory[i].Y = x, res.Expected()
		hw := pt.HalfWidth(strategy)
		errs[i].Low, errs[i].High = hw, hw
	}
	return empirical, theory, errs
}

func strategyColor(s montyhall.Strategy) color.Color {
	if s == montyhall.Switch {
		return switchColor
	}
	return stayColor
}

func label(s montyhall.Strategy) string {
	if s == montyhall.Switch {
		return "Switch Strategy"
	}
	return "Stay Strategy"
}

func theoryLabel(s montyhall.Strategy, vary experiment.Variable) string {
	switch {
	case vary == experiment.DoorCount && s == montyhall.Switch:
		return "Theoretical Switch ((n-1)/n)"
	case vary == experiment.DoorCount:
		return "Theoretical Stay (1/n)"
	case s == montyhall.Switch:
		return "Expected Switch (2/3)"
	default:
		return "Expected Stay (1/3)"
	}
}
