package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/config"
	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/dataset"
	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/scoring"
	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/surface"
)

func newEvaluateCmd() *cobra.Command {
	var (
		inputPath  string
		configPath string
		topN       int
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score and rank tools from a rating table",
		Long: `Loads a rating table (csv, json, or yaml), computes weighted business
fit scores, and prints the dense-ranked results best-first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(evaluateOpts{
				inputPath:  inputPath,
				configPath: configPath,
				topN:       topN,
				outputFmt:  outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the rating table (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: discover .mcda/config.yaml)")
	cmd.Flags().IntVar(&topN, "top-n", 0, "Limit output to the N best-ranked tools (0 = all)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or csv")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type evaluateOpts struct {
	inputPath  string
	configPath string
	topN       int
	outputFmt  string
}

func runEvaluate(opts evaluateOpts) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	records, err := dataset.Load(opts.inputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Evaluating %d tools against %d criteria\n",
		len(records), len(cfg.Scoring.Weights))

	ranked, err := scoring.Evaluate(records, cfg.Scoring.Weights)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if opts.topN > 0 && len(ranked) > opts.topN {
		ranked = ranked[:opts.topN]
	}
	rep := surface.NewReport(ranked, cfg.Scoring.Weights)

	var renderer surface.Renderer
	switch opts.outputFmt {
	case "text":
		renderer = &surface.TerminalRenderer{}
	case "json":
		renderer = &surface.JSONRenderer{}
	case "csv":
		renderer = &surface.CSVRenderer{}
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or csv)", opts.outputFmt)
	}

	if err := renderer.Render(os.Stdout, rep); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// resolveConfig loads configuration from an explicit path, a discovered
// .mcda/config.yaml, or built-in defaults, in that order.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	if found := config.FindConfigFile(cwd); found != "" {
		return config.Load(found)
	}
	return config.DefaultConfig(), nil
}
