// Package config handles loading and managing mcda configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for mcda.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Report  ReportConfig  `yaml:"report"`
}

// ScoringConfig holds the criterion weight table.
type ScoringConfig struct {
	Weights map[string]float64 `yaml:"weights"`
}

// ReportConfig controls chart output.
type ReportConfig struct {
	TopN   int    `yaml:"top_n"`
	Output string `yaml:"output"`
	DPI    int    `yaml:"dpi"`
}

// DefaultConfig returns the stakeholder-derived criterion weights and
// default report settings.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights: map[string]float64{
				"ease_of_use":           0.20, // non-technical staff
				"integration_readiness": 0.20, // system compatibility
				"cost_efficiency":       0.15,
				"scalability":           0.15,
				"paperwork_automation":  0.15,
				"real_time_visibility":  0.15,
			},
		},
		Report: ReportConfig{
			TopN:   10,
			Output: "evaluation_results.png",
			DPI:    300,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config. A weights
// table in the file replaces the default table entirely, so criteria can
// be removed as well as reweighted.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(file.Scoring.Weights) > 0 {
		cfg.Scoring.Weights = file.Scoring.Weights
	}
	if file.Report.TopN > 0 {
		cfg.Report.TopN = file.Report.TopN
	}
	if file.Report.Output != "" {
		cfg.Report.Output = file.Report.Output
	}
	if file.Report.DPI > 0 {
		cfg.Report.DPI = file.Report.DPI
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects weight tables the scorer cannot use. The sum of the
// weights is deliberately unchecked: the table is not required to be
// normalized.
func (c *Config) Validate() error {
	if len(c.Scoring.Weights) == 0 {
		return fmt.Errorf("scoring.weights is empty")
	}
	for criterion, w := range c.Scoring.Weights {
		if w < 0 {
			return fmt.Errorf("scoring.weights.%s: negative weight %g", criterion, w)
		}
	}
	return nil
}

// FindConfigFile looks for .mcda/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".mcda", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
