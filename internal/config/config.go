// Package config loads experiment settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig.
const EnvPrefix = "MONTYHALL_"

// Config holds the settings for both experiments and the chart output.
type Config struct {
	// Seed feeds the random source. Zero draws a fresh seed per run.
	Seed uint64 `yaml:"seed" env:"SEED"`

	Classic     ClassicConfig     `yaml:"classic" envPrefix:"CLASSIC_"`
	Generalized GeneralizedConfig `yaml:"generalized" envPrefix:"GENERALIZED_"`
	Chart       ChartConfig       `yaml:"chart" envPrefix:"CHART_"`
}

// ClassicConfig configures the three door experiment that varies trial count.
type ClassicConfig struct {
	// TrialCounts are the trial counts to run, one point each.
	TrialCounts []int `yaml:"trial_counts" env:"TRIAL_COUNTS" envSeparator:","`

	// Intervals enables 95% confidence half-widths per point.
	Intervals bool `yaml:"intervals" env:"INTERVALS"`

	// Output is the PNG path for the chart.
	Output string `yaml:"output" env:"OUTPUT"`
}

// GeneralizedConfig configures the n-door experiment that varies door count.
type GeneralizedConfig struct {
	// DoorCounts are the door counts to run, one point each.
	DoorCounts []int `yaml:"door_counts" env:"DOOR_COUNTS" envSeparator:","`

	// Trials is the fixed number of trials per point.
	Trials int `yaml:"trials" env:"TRIALS"`

	Intervals bool   `yaml:"intervals" env:"INTERVALS"`
	Output    string `yaml:"output" env:"OUTPUT"`
}

// ChartConfig holds figure dimensions in inches.
type ChartConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Width   float64 `yaml:"width" env:"WIDTH"`
	Height  float64 `yaml:"height" env:"HEIGHT"`
}

// DefaultConfig returns the stock experiment parameters.
func DefaultConfig() *Config {
	return &Config{
		Classic: ClassicConfig{
			TrialCounts: []int{10, 100, 500, 1000, 5000, 10000, 50000, 100000},
			Intervals:   false,
			Output:      "figures/classic_win_rates.png",
		},
		Generalized: GeneralizedConfig{
			DoorCounts: []int{3, 5, 10, 25, 50, 100},
			Trials:     10000,
			Intervals:  true,
			Output:     "figures/generalized_win_rates.png",
		},
		Chart: ChartConfig{
			Enabled: true,
			Width:   10,
			Height:  6,
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies MONTYHALL_*
// environment variables. A missing file is not an error and yields the
// defaults with environment overrides applied.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return DefaultConfig(), fmt.Errorf("parse environment: %w", err)
	}

	return config, nil
}

// Validate checks that every parameter list is usable by the simulators.
func (c *Config) Validate() error {
	return errors.Join(c.Classic.Validate(), c.Generalized.Validate(), c.Chart.Validate())
}

// Validate rejects empty or non-positive trial counts.
func (c *ClassicConfig) Validate() error {
	errs := []error{c.ValidateFixed()}
	for _, n := range c.TrialCounts {
		if n < 1 {
			errs = append(errs, fmt.Errorf("classic.trial_counts: %d is not positive", n))
		}
	}
	return errors.Join(errs...)
}

// ValidateFixed checks only settings shared by every point, leaving
// individual trial counts to the runner.
func (c *ClassicConfig) ValidateFixed() error {
	if len(c.TrialCounts) == 0 {
		return errors.New("classic.trial_counts is empty")
	}
	return nil
}

// Validate rejects door counts below three and a non-positive trial count.
func (c *GeneralizedConfig) Validate() error {
	errs := []error{c.ValidateFixed()}
	for _, n := range c.DoorCounts {
		if n < 3 {
			errs = append(errs, fmt.Errorf("generalized.door_counts: %d is below 3", n))
		}
	}
	return errors.Join(errs...)
}

// ValidateFixed checks the trial count and that door counts are present,
// leaving individual door counts to the runner.
func (c *GeneralizedConfig) ValidateFixed() error {
	var errs []error
	if len(c.DoorCounts) == 0 {
		errs = append(errs, errors.New("generalized.door_counts is empty"))
	}
	if c.Trials < 1 {
		errs = append(errs, fmt.Errorf("generalized.trials: %d is not positive", c.Trials))
	}
	return errors.Join(errs...)
}

// Validate requires a positive size when charts are enabled.
func (c *ChartConfig) Validate() error {
	if c.Enabled && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("chart size %gx%g must be positive", c.Width, c.Height)
	}
	return nil
}

// ParseIntList parses a comma separated list such as "3,5,10".
func ParseIntList(s string) ([]int, error) {
	var values []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return values, nil
}
