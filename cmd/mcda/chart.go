package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/dataset"
	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/scoring"
	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/surface"
)

func newChartCmd() *cobra.Command {
	var (
		inputPath  string
		configPath string
		outPath    string
		topN       int
		dpi        int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the top-ranked tools as a bar chart PNG",
		Long: `Loads a rating table, evaluates it, and saves a horizontal bar chart of
the top-ranked tools with their scores labeled on each bar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(chartOpts{
				inputPath:  inputPath,
				configPath: configPath,
				outPath:    outPath,
				topN:       topN,
				dpi:        dpi,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the rating table (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: discover .mcda/config.yaml)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output PNG path (default: from config, evaluation_results.png)")
	cmd.Flags().IntVar(&topN, "top-n", 0, "Number of top-ranked tools to chart (default: from config, 10)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "Raster resolution (default: from config, 300)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type chartOpts struct {
	inputPath  string
	configPath string
	outPath    string
	topN       int
	dpi        int
}

func runChart(opts chartOpts) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	records, err := dataset.Load(opts.inputPath)
	if err != nil {
		return err
	}

	ranked, err := scoring.Evaluate(records, cfg.Scoring.Weights)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	rep := surface.NewReport(ranked, cfg.Scoring.Weights)

	topN := opts.topN
	if topN <= 0 {
		topN = cfg.Report.TopN
	}
	dpi := opts.dpi
	if dpi <= 0 {
		dpi = cfg.Report.DPI
	}
	outPath := opts.outPath
	if outPath == "" {
		outPath = cfg.Report.Output
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	renderer := &surface.ChartRenderer{TopN: topN, DPI: dpi}
	if err := renderer.Render(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("rendering chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stderr, "Chart saved: %s\n", outPath)
	return nil
}
