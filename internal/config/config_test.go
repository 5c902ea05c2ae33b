package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	wantTrials := []int{10, 100, 500, 1000, 5000, 10000, 50000, 100000}
	if !reflect.DeepEqual(cfg.Classic.TrialCounts, wantTrials) {
		t.Errorf("classic trial counts = %v, want %v", cfg.Classic.TrialCounts, wantTrials)
	}

	wantDoors := []int{3, 5, 10, 25, 50, 100}
	if !reflect.DeepEqual(cfg.Generalized.DoorCounts, wantDoors) {
		t.Errorf("door counts = %v, want %v", cfg.Generalized.DoorCounts, wantDoors)
	}

	if cfg.Generalized.Trials != 10000 {
		t.Errorf("expected 10000 generalized trials, got %d", cfg.Generalized.Trials)
	}
	if cfg.Classic.Output != "figures/classic_win_rates.png" {
		t.Errorf("unexpected classic output %q", cfg.Classic.Output)
	}
	if cfg.Generalized.Output != "figures/generalized_win_rates.png" {
		t.Errorf("unexpected generalized output %q", cfg.Generalized.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/montyhall.yaml")
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
	if cfg.Generalized.Trials != 10000 {
		t.Errorf("expected default trials, got %d", cfg.Generalized.Trials)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "montyhall.yaml")

	content := `
seed: 42
classic:
  trial_counts: [10, 20]
  intervals: true
generalized:
  door_counts: [4, 8]
  trials: 500
chart:
  width: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !reflect.DeepEqual(cfg.Classic.TrialCounts, []int{10, 20}) {
		t.Errorf("unexpected trial counts %v", cfg.Classic.TrialCounts)
	}
	if !cfg.Classic.Intervals {
		t.Error("expected classic intervals enabled")
	}
	if !reflect.DeepEqual(cfg.Generalized.DoorCounts, []int{4, 8}) {
		t.Errorf("unexpected door counts %v", cfg.Generalized.DoorCounts)
	}
	if cfg.Generalized.Trials != 500 {
		t.Errorf("expected 500 trials, got %d", cfg.Generalized.Trials)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Classic.Output != "figures/classic_win_rates.png" {
		t.Errorf("expected default classic output, got %q", cfg.Classic.Output)
	}
	if cfg.Chart.Width != 8 || cfg.Chart.Height != 6 {
		t.Errorf("unexpected chart size %gx%g", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "montyhall.yaml")
	if err := os.WriteFile(configPath, []byte("classic: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if cfg == nil || cfg.Generalized.Trials != 10000 {
		t.Error("expected default config alongside the error")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MONTYHALL_SEED", "7")
	t.Setenv("MONTYHALL_CLASSIC_TRIAL_COUNTS", "1,2,3")
	t.Setenv("MONTYHALL_GENERALIZED_TRIALS", "250")
	t.Setenv("MONTYHALL_GENERALIZED_OUTPUT", "out/doors.png")
	t.Setenv("MONTYHALL_CHART_ENABLED", "false")

	configPath := filepath.Join(t.TempDir(), "montyhall.yaml")
	if err := os.WriteFile(configPath, []byte("seed: 42\ngeneralized:\n  trials: 999\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Seed != 7 {
		t.Errorf("expected env seed 7 to win over file, got %d", cfg.Seed)
	}
	if !reflect.DeepEqual(cfg.Classic.TrialCounts, []int{1, 2, 3}) {
		t.Errorf("unexpected trial counts %v", cfg.Classic.TrialCounts)
	}
	if cfg.Generalized.Trials != 250 {
		t.Errorf("expected 250 trials, got %d", cfg.Generalized.Trials)
	}
	if cfg.Generalized.Output != "out/doors.png" {
		t.Errorf("unexpected output %q", cfg.Generalized.Output)
	}
	if cfg.Chart.Enabled {
		t.Error("expected chart disabled from env")
	}
}

func TestLoadConfig_BadEnv(t *testing.T) {
	t.Setenv("MONTYHALL_GENERALIZED_TRIALS", "many")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for non-numeric env value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty trial counts", func(c *Config) { c.Classic.TrialCounts = nil }, "classic.trial_counts is empty"},
		{"zero trial count", func(c *Config) { c.Classic.TrialCounts = []int{10, 0} }, "0 is not positive"},
		{"two doors", func(c *Config) { c.Generalized.DoorCounts = []int{2} }, "2 is below 3"},
		{"no trials", func(c *Config) { c.Generalized.Trials = 0 }, "generalized.trials"},
		{"bad chart", func(c *Config) { c.Chart.Height = 0 }, "chart size"},
		{"bad chart disabled", func(c *Config) { c.Chart.Enabled = false; c.Chart.Height = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFixed(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad values pass", func(c *Config) {
			c.Classic.TrialCounts = []int{0, 10}
			c.Generalized.DoorCounts = []int{2, 4}
		}, ""},
		{"empty trial counts", func(c *Config) { c.Classic.TrialCounts = nil }, "classic.trial_counts is empty"},
		{"empty door counts", func(c *Config) { c.Generalized.DoorCounts = nil }, "generalized.door_counts is empty"},
		{"no trials", func(c *Config) { c.Generalized.Trials = 0 }, "generalized.trials: 0"},
		{"negative trials", func(c *Config) { c.Generalized.Trials = -3 }, "generalized.trials: -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := errors.Join(cfg.Classic.ValidateFixed(), cfg.Generalized.ValidateFixed())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseIntList(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"3,5,10", []int{3, 5, 10}, false},
		{" 1 , 2 ,", []int{1, 2}, false},
		{"100", []int{100}, false},
		{"", nil, true},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIntList(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIntList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
