package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/lawnchairsociety/montyhall/internal/experiment"
	"github.com/lawnchairsociety/montyhall/internal/montyhall"
)

func samplePoint(doors, trials int, stay, sw, ci float64) experiment.Point {
	return experiment.Point{
		Value:    doors,
		Doors:    doors,
		Trials:   trials,
		Stay:     montyhall.Result{Doors: doors, Strategy: montyhall.Stay, Trials: trials, WinRate: stay},
		Switch:   montyhall.Result{Doors: doors, Strategy: montyhall.Switch, Trials: trials, WinRate: sw},
		StayCI:   ci,
		SwitchCI: ci,
	}
}

func TestWriteTableTrialCount(t *testing.T) {
	var buf bytes.Buffer
	result := experiment.Result{
		Vary:   experiment.TrialCount,
		Points: []experiment.Point{samplePoint(3, 100000, 0.3341, 0.6662, 0)},
	}

	if err := WriteTable(&buf, result); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Trials", "100,000", "0.3341", "0.6662", "0.3333", "0.6667"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "±") {
		t.Errorf("output has intervals without Intervals set:\n%s", output)
	}
}

func TestWriteTableDoorCountWithIntervals(t *testing.T) {
	var buf bytes.Buffer
	result := experiment.Result{
		Vary:      experiment.DoorCount,
		Intervals: true,
		Points: []experiment.Point{
			samplePoint(10, 10000, 0.1012, 0.8990, 0.0059),
			samplePoint(100, 10000, 0.0101, 0.9899, 0.0020),
		},
	}

	if err := WriteTable(&buf, result); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}

	output := buf.String()
	lines := strings.Split(output, "\n")
	if !strings.Contains(lines[1], "Doors") {
		t.Errorf("header should start with Doors when varying doors:\n%s", output)
	}
	for _, want := range []string{"10,000", "0.1012 ± 0.0059", "0.9899 ± 0.0020", "0.9900"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := experiment.Summary{
		Points: 6,
		Strategies: []experiment.StrategySummary{
			{Strategy: montyhall.Stay, MeanAbsError: 0.0021, MaxAbsError: 0.004, Coverage: 1},
			{Strategy: montyhall.Switch, MeanAbsError: 0.0031, MaxAbsError: 0.006, Coverage: math.NaN()},
		},
	}

	if err := WriteSummary(&buf, summary); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Stay", "Switch", "0.0021", "100%", "n/a", "6 points"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
