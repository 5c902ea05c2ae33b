// Package report renders experiment results as text tables.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lawnchairsociety/montyhall/internal/experiment"
	"github.com/lawnchairsociety/montyhall/internal/montyhall"
)

var printer = message.NewPrinter(language.English)

// WriteTable writes one row per point: the parameter, the trial and door
// counts, and empirical against theoretical rates for both strategies.
func WriteTable(w io.Writer, result experiment.Result) error {
	headers := []string{"Trials", "Doors", "Stay", "Expected", "Switch", "Expected"}
	if result.Vary == experiment.DoorCount {
		headers[0], headers[1] = "Doors", "Trials"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)

	for _, p := range result.Points {
		first, second := p.Trials, p.Doors
		if result.Vary == experiment.DoorCount {
			first, second = p.Doors, p.Trials
		}
		table.Append([]string{
			printer.Sprintf("%d", first),
			printer.Sprintf("%d", second),
			formatRate(p.Stay.WinRate, p.StayCI, result.Intervals),
			formatRate(p.Stay.Expected(), 0, false),
			formatRate(p.Switch.WinRate, p.SwitchCI, result.Intervals),
			formatRate(p.Switch.Expected(), 0, false),
		})
	}

	table.Render()
	return nil
}

func formatRate(rate, halfWidth float64, withInterval bool) string {
	if withInterval {
		return fmt.Sprintf("%.4f ± %.4f", rate, halfWidth)
	}
	return fmt.Sprintf("%.4f", rate)
}

// WriteSummary writes the convergence summary below a results table.
func WriteSummary(w io.Writer, summary experiment.Summary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Strategy", "Mean |err|", "Max |err|", "Std dev", "CI coverage"})
	table.SetAutoFormatHeaders(false)

	for _, s := range summary.Strategies {
		coverage := "n/a"
		if !math.IsNaN(s.Coverage) {
			coverage = fmt.Sprintf("%.0f%%", s.Coverage*100)
		}
		table.Append([]string{
			strategyLabel(s.Strategy),
			fmt.Sprintf("%.4f", s.MeanAbsError),
			fmt.Sprintf("%.4f", s.MaxAbsError),
			fmt.Sprintf("%.4f", s.StdDevError),
			coverage,
		})
	}

	table.Render()
	_, err := printer.Fprintf(w, "%d points compared against theory\n", summary.Points)
	return err
}

func strategyLabel(s montyhall.Strategy) string {
	if s == montyhall.Switch {
		return "Switch"
	}
	return "Stay"
}
