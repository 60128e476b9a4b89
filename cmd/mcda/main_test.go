package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEvaluateCmdFlags(t *testing.T) {
	cmd := newEvaluateCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	topN, _ := f.GetInt("top-n")
	if topN != 0 {
		t.Errorf("default top-n = %d, want 0", topN)
	}

	for _, flag := range []string{"input", "config", "top-n", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestChartCmdFlags(t *testing.T) {
	cmd := newChartCmd()
	f := cmd.Flags()

	for _, flag := range []string{"input", "config", "out", "top-n", "dpi"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestCriteriaCmdFlags(t *testing.T) {
	cmd := newCriteriaCmd()
	if cmd.Flags().Lookup("config") == nil {
		t.Error("missing flag: config")
	}
}

func TestRunEvaluateUnknownFormat(t *testing.T) {
	input := filepath.Join(t.TempDir(), "tools.csv")
	if err := os.WriteFile(input, []byte("tool_name,ease_of_use\nx,4\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := runEvaluate(evaluateOpts{inputPath: input, outputFmt: "xml"})
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "scoring:\n  weights:\n    speed: 1.0\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := resolveConfig(path)
		if err != nil {
			t.Fatalf("resolveConfig() error: %v", err)
		}
		if cfg.Scoring.Weights["speed"] != 1.0 {
			t.Errorf("expected speed weight 1.0, got %f", cfg.Scoring.Weights["speed"])
		}
	})

	t.Run("defaults without a config file", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("getwd: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := resolveConfig("")
		if err != nil {
			t.Fatalf("resolveConfig() error: %v", err)
		}
		if len(cfg.Scoring.Weights) != 6 {
			t.Errorf("expected 6 default criteria, got %d", len(cfg.Scoring.Weights))
		}
	})
}
